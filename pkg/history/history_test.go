package history

import (
	"fmt"
	"testing"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
)

// stateWithContent builds a one-block state whose content identifies the edit.
func stateWithContent(content string) document.State {
	return document.State{
		Blocks: []*document.Block{{
			ID:      "b1",
			Type:    document.TypeText,
			Content: content,
			Visible: true,
		}},
		BlockTypeCounter: map[document.Type]int{document.TypeText: 1},
	}
}

func contentOf(s document.State) string {
	if len(s.Blocks) == 0 {
		return ""
	}
	return s.Blocks[0].Content
}

func TestUndoEmptyIsNoOp(t *testing.T) {
	m := New(0)
	if _, ok := m.Undo(stateWithContent("current")); ok {
		t.Error("Undo() on empty history = true, want false")
	}
	if _, ok := m.Redo(stateWithContent("current")); ok {
		t.Error("Redo() on empty future = true, want false")
	}
}

func TestCommitUndoRedo(t *testing.T) {
	m := New(0)

	v1 := stateWithContent("v1")
	v2 := stateWithContent("v2")

	m.Commit(v1) // mutate v1 → v2

	restored, ok := m.Undo(v2)
	if !ok {
		t.Fatal("Undo() = false, want true")
	}
	if contentOf(restored) != "v1" {
		t.Errorf("Undo() restored %q, want v1", contentOf(restored))
	}
	if !m.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}

	redone, ok := m.Redo(restored)
	if !ok {
		t.Fatal("Redo() = false, want true")
	}
	if contentOf(redone) != "v2" {
		t.Errorf("Redo() restored %q, want v2", contentOf(redone))
	}
}

func TestCommitClearsFuture(t *testing.T) {
	m := New(0)

	m.Commit(stateWithContent("v1"))
	m.Undo(stateWithContent("v2"))
	if !m.CanRedo() {
		t.Fatal("CanRedo() = false, want true")
	}

	m.Commit(stateWithContent("v1b"))
	if m.CanRedo() {
		t.Error("CanRedo() = true after new commit, want false")
	}
}

func TestDepthEviction(t *testing.T) {
	// 51 sequential distinct edits with a depth-50 cap: undoing everything
	// reaches edit 1's pre-state... except the oldest snapshot (state 0) was
	// evicted, so the earliest restorable state is the one before edit 2.
	m := New(50)

	for i := 0; i < 51; i++ {
		m.Commit(stateWithContent(fmt.Sprintf("v%d", i)))
	}
	if m.Len() != 50 {
		t.Fatalf("Len() = %d, want 50 after eviction", m.Len())
	}

	current := stateWithContent("v51")
	var last document.State
	undos := 0
	for {
		s, ok := m.Undo(current)
		if !ok {
			break
		}
		last = s
		current = s
		undos++
	}

	if undos != 50 {
		t.Errorf("performed %d undos, want 50", undos)
	}
	// v0 was evicted; the oldest reachable snapshot is v1.
	if contentOf(last) != "v1" {
		t.Errorf("deepest undo = %q, want v1 (v0 evicted)", contentOf(last))
	}
}

func TestSingleUndoAfterManyEdits(t *testing.T) {
	// One undo leaves the document one step behind the latest edit.
	m := New(50)
	for i := 0; i < 51; i++ {
		m.Commit(stateWithContent(fmt.Sprintf("v%d", i)))
	}
	restored, ok := m.Undo(stateWithContent("v51"))
	if !ok {
		t.Fatal("Undo() = false")
	}
	if contentOf(restored) != "v50" {
		t.Errorf("Undo() = %q, want v50", contentOf(restored))
	}
}

func TestClear(t *testing.T) {
	m := New(0)
	m.Commit(stateWithContent("v1"))
	m.Undo(stateWithContent("v2"))
	m.Clear()
	if m.CanUndo() || m.CanRedo() {
		t.Error("Clear() left history behind")
	}
}
