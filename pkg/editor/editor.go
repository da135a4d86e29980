// Package editor provides the mutation API over a document: block CRUD,
// grouping, alignment, clipboard, canvas resizing, and undo/redo.
//
// Every mutation except pure view-state changes is history-tracked. Commits
// are gesture-granular: wrap a drag in BeginGesture/EndGesture so the many
// intermediate layout updates coalesce into a single undo step.
//
// # Usage
//
//	ed := editor.New(document.New(), editor.Options{})
//	b := ed.AddBlock(document.TypeText, document.Layout{X: 20, Y: 20, Width: 200, Height: 40})
//	ed.UpdateContent(b.ID, "Hello")
//	ed.Undo()
package editor

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/SharadhNaidu/mailcanvas/pkg/constraint"
	"github.com/SharadhNaidu/mailcanvas/pkg/document"
	"github.com/SharadhNaidu/mailcanvas/pkg/geometry"
	"github.com/SharadhNaidu/mailcanvas/pkg/history"
	"github.com/SharadhNaidu/mailcanvas/pkg/snap"
)

// Options configures an Editor.
type Options struct {
	// HistoryDepth caps the undo stack. Zero means history.DefaultDepth.
	HistoryDepth int

	// SnapThreshold is the snapping distance in pixels. Zero means
	// snap.DefaultThreshold.
	SnapThreshold float64

	// Logger receives debug events. Nil means discard.
	Logger *log.Logger
}

// Editor owns a document and the history service wrapping its mutations.
type Editor struct {
	doc    *document.Document
	hist   *history.Manager
	logger *log.Logger

	snapThreshold float64
	clipboard     []*document.Block

	// gesture, when non-nil, holds the pre-gesture snapshot awaiting commit.
	gesture *document.State
	dirty   bool
}

// New creates an editor over the given document.
func New(doc *document.Document, opts Options) *Editor {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Editor{
		doc:           doc,
		hist:          history.New(opts.HistoryDepth),
		logger:        logger,
		snapThreshold: opts.SnapThreshold,
	}
}

// Document returns the underlying document for read access.
func (e *Editor) Document() *document.Document { return e.doc }

// History returns the history manager, mainly for inspection in callers.
func (e *Editor) History() *history.Manager { return e.hist }

// =============================================================================
// Commit Discipline
// =============================================================================

// mutate runs fn as one history-tracked mutation. Inside a gesture the
// pre-gesture snapshot is already held, so intermediate updates commit
// nothing.
func (e *Editor) mutate(fn func()) {
	if e.gesture != nil {
		e.dirty = true
		fn()
		return
	}
	before := e.doc.Snapshot()
	fn()
	e.hist.Commit(before)
}

// BeginGesture captures the pre-gesture snapshot. Mutations until EndGesture
// coalesce into a single history entry. Nested calls are ignored.
func (e *Editor) BeginGesture() {
	if e.gesture != nil {
		return
	}
	s := e.doc.Snapshot()
	e.gesture = &s
	e.dirty = false
}

// EndGesture commits the captured snapshot if any mutation happened during
// the gesture.
func (e *Editor) EndGesture() {
	if e.gesture == nil {
		return
	}
	if e.dirty {
		e.hist.Commit(*e.gesture)
	}
	e.gesture = nil
	e.dirty = false
}

// Undo restores the previous committed state. No-op when history is empty.
func (e *Editor) Undo() bool {
	restored, ok := e.hist.Undo(e.doc.Snapshot())
	if !ok {
		return false
	}
	e.doc.Restore(restored)
	e.logger.Debug("undo applied")
	return true
}

// Redo restores the next state on the future stack. No-op when empty.
func (e *Editor) Redo() bool {
	restored, ok := e.hist.Redo(e.doc.Snapshot())
	if !ok {
		return false
	}
	e.doc.Restore(restored)
	e.logger.Debug("redo applied")
	return true
}

// =============================================================================
// Block Mutations
// =============================================================================

// AddBlock creates a block of the given type at the given layout and stacks
// it above everything else.
func (e *Editor) AddBlock(t document.Type, layout document.Layout) *document.Block {
	var b *document.Block
	e.mutate(func() {
		layout.ZIndex = e.doc.MaxZIndex() + 1
		b = e.doc.Add(&document.Block{
			Type:    t,
			Visible: true,
			Layout:  layout,
		})
	})
	e.logger.Debug("block added", "type", t, "id", b.ID)
	return b
}

// RemoveBlock deletes a block. Removing a group releases its children to the
// top level. Returns false (without a history entry) for unknown ids.
func (e *Editor) RemoveBlock(id string) bool {
	if _, ok := e.doc.Block(id); !ok {
		return false
	}
	e.mutate(func() { e.doc.Remove(id) })
	return true
}

// UpdateContent replaces a block's content payload.
func (e *Editor) UpdateContent(id, content string) bool {
	b, ok := e.doc.Block(id)
	if !ok {
		return false
	}
	e.mutate(func() { b.Content = content })
	return true
}

// UpdateStyle sets one style key on a block. Unknown keys land in the
// style's extension bag.
func (e *Editor) UpdateStyle(id, key, value string) bool {
	b, ok := e.doc.Block(id)
	if !ok {
		return false
	}
	e.mutate(func() { b.Style.Set(key, value) })
	return true
}

// UpdateLayout replaces a block's layout record. Locked blocks refuse the
// update.
func (e *Editor) UpdateLayout(id string, layout document.Layout) bool {
	b, ok := e.doc.Block(id)
	if !ok || b.Locked {
		return false
	}
	e.mutate(func() { b.Layout = layout })
	return true
}

// MoveBlock updates only a block's position, preserving size and stacking.
func (e *Editor) MoveBlock(id string, x, y float64) bool {
	b, ok := e.doc.Block(id)
	if !ok || b.Locked {
		return false
	}
	e.mutate(func() {
		b.Layout.X = x
		b.Layout.Y = y
	})
	return true
}

// SetVisible toggles a block's visibility.
func (e *Editor) SetVisible(id string, visible bool) bool {
	b, ok := e.doc.Block(id)
	if !ok {
		return false
	}
	e.mutate(func() { b.Visible = visible })
	return true
}

// SetLocked toggles a block's lock flag.
func (e *Editor) SetLocked(id string, locked bool) bool {
	b, ok := e.doc.Block(id)
	if !ok {
		return false
	}
	e.mutate(func() { b.Locked = locked })
	return true
}

// DuplicateBlock clones a block 10px down-right of the original. Duplicating
// a group clones its children too. Returns nil for unknown ids.
func (e *Editor) DuplicateBlock(id string) *document.Block {
	src, ok := e.doc.Block(id)
	if !ok {
		return nil
	}
	var dup *document.Block
	e.mutate(func() {
		dup = e.cloneInto(src, pasteOffset, pasteOffset)
	})
	return dup
}

// pasteOffset is the down-right shift applied to pasted and duplicated blocks.
const pasteOffset = 10.0

// cloneInto inserts a deep copy of src shifted by dx,dy, cloning group
// children along with their group.
func (e *Editor) cloneInto(src *document.Block, dx, dy float64) *document.Block {
	cp := src.Clone()
	cp.ID = uuid.NewString()
	cp.ParentID = ""
	cp.Layout.X += dx
	cp.Layout.Y += dy
	cp.Layout.ZIndex = e.doc.MaxZIndex() + 1
	e.doc.Add(cp)

	if src.IsGroup() {
		for _, child := range e.doc.Children(src.ID) {
			cc := child.Clone()
			cc.ID = uuid.NewString()
			cc.ParentID = cp.ID
			e.doc.Add(cc)
		}
	}
	return cp
}

// =============================================================================
// Hierarchy
// =============================================================================

// Group wraps the selected top-level blocks in a new group. Silent no-op
// (no history entry) when fewer than two eligible blocks are selected.
func (e *Editor) Group(blockIDs []string) (*document.Block, bool) {
	// Check the precondition up front so a failed group leaves no history.
	eligible := 0
	for _, id := range blockIDs {
		if b, ok := e.doc.Block(id); ok && b.IsTopLevel() && !b.IsGroup() {
			eligible++
		}
	}
	if eligible < 2 {
		return nil, false
	}

	var group *document.Block
	e.mutate(func() { group, _ = e.doc.Group(blockIDs) })
	return group, true
}

// Ungroup dissolves a group into its children. Silent no-op for non-groups.
func (e *Editor) Ungroup(groupID string) ([]*document.Block, bool) {
	b, ok := e.doc.Block(groupID)
	if !ok || !b.IsGroup() {
		return nil, false
	}
	var children []*document.Block
	e.mutate(func() { children, _ = e.doc.Ungroup(groupID) })
	return children, true
}

// =============================================================================
// Canvas
// =============================================================================

// ResizeCanvas changes the canvas width, re-deriving every top-level block's
// layout through its anchoring mode.
func (e *Editor) ResizeCanvas(newWidth float64) {
	if newWidth <= 0 || newWidth == e.doc.Canvas.Width {
		return
	}
	e.mutate(func() { constraint.Resize(e.doc, newWidth) })
	e.logger.Debug("canvas resized", "width", newWidth)
}

// SetCanvasBackground updates the canvas background color.
func (e *Editor) SetCanvasBackground(color string) {
	e.mutate(func() { e.doc.Canvas.BackgroundColor = color })
}

// =============================================================================
// Tokens
// =============================================================================
//
// Token mutations are not history-tracked: the checkpointed state shape is
// blocks plus name counters only, so an undo could not restore a token table
// anyway.

// AddToken inserts a design token.
func (e *Editor) AddToken(t document.Token) document.Token {
	return e.doc.AddToken(t)
}

// UpdateToken replaces a token by id.
func (e *Editor) UpdateToken(t document.Token) bool {
	return e.doc.UpdateToken(t)
}

// RemoveToken deletes a token by id. References degrade to their raw form.
func (e *Editor) RemoveToken(id string) bool {
	return e.doc.RemoveToken(id)
}

// =============================================================================
// Drag Support
// =============================================================================

// BeginDrag builds a snap engine for dragging the given block: candidates
// are the absolute bounds of every visible top-level block except the moving
// one. The engine is valid for the whole gesture; pair it with
// BeginGesture/EndGesture for history coalescing.
func (e *Editor) BeginDrag(movingID string) *snap.Engine {
	var candidates []geometry.Bounds
	for _, b := range e.doc.TopLevel() {
		if b.ID == movingID || !b.Visible {
			continue
		}
		candidates = append(candidates, e.doc.AbsoluteBounds(b))
	}
	return snap.NewEngine(candidates, e.snapThreshold)
}
