// Package history implements a bounded, linear undo/redo log over the
// serializable subset of document state.
//
// The manager owns two stacks. Committing a mutation pushes the pre-mutation
// snapshot onto the past stack and clears the future stack; undo moves the
// current state to the future stack and restores the most recent past entry;
// redo is symmetric. The past stack is capped: pushing beyond the cap evicts
// the oldest entry, so older history is permanently lost rather than
// compacted.
//
// Snapshots are gesture-granular, not per-frame: a drag-to-resize commits
// once on gesture end, never per intermediate update.
package history

import "github.com/SharadhNaidu/mailcanvas/pkg/document"

// DefaultDepth is the retention cap for the past stack.
const DefaultDepth = 50

// Manager is the undo/redo service. Construct one per document and inject it
// into the mutation layer; there is no ambient global instance.
type Manager struct {
	past   []document.State
	future []document.State
	depth  int
}

// New creates a history manager with the given retention depth.
// A non-positive depth falls back to DefaultDepth.
func New(depth int) *Manager {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Manager{depth: depth}
}

// Commit records the pre-mutation snapshot and invalidates any redo entries.
// Call it once per logical user action with the state as it was before the
// mutation.
func (m *Manager) Commit(before document.State) {
	m.past = append(m.past, before)
	if len(m.past) > m.depth {
		// Evict the oldest entry; shift rather than re-slice so the backing
		// array does not grow without bound.
		copy(m.past, m.past[1:])
		m.past = m.past[:m.depth]
	}
	m.future = m.future[:0]
}

// Undo pops the most recent past snapshot, pushing current onto the future
// stack. Returns the restored state and true, or the zero state and false
// when there is nothing to undo.
func (m *Manager) Undo(current document.State) (document.State, bool) {
	if len(m.past) == 0 {
		return document.State{}, false
	}
	last := m.past[len(m.past)-1]
	m.past = m.past[:len(m.past)-1]
	m.future = append(m.future, current)
	return last, true
}

// Redo pops the most recent future snapshot, pushing current back onto the
// past stack. Returns the restored state and true, or the zero state and
// false when there is nothing to redo.
func (m *Manager) Redo(current document.State) (document.State, bool) {
	if len(m.future) == 0 {
		return document.State{}, false
	}
	next := m.future[len(m.future)-1]
	m.future = m.future[:len(m.future)-1]
	m.past = append(m.past, current)
	return next, true
}

// CanUndo reports whether the past stack is non-empty.
func (m *Manager) CanUndo() bool { return len(m.past) > 0 }

// CanRedo reports whether the future stack is non-empty.
func (m *Manager) CanRedo() bool { return len(m.future) > 0 }

// Len returns the number of retained past snapshots.
func (m *Manager) Len() int { return len(m.past) }

// Clear drops all history, past and future.
func (m *Manager) Clear() {
	m.past = nil
	m.future = nil
}
