package editor

import (
	"slices"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
	"github.com/SharadhNaidu/mailcanvas/pkg/geometry"
)

// =============================================================================
// Align / Distribute
// =============================================================================

// AlignMode selects the edge or center blocks align against.
type AlignMode string

// Alignment modes. Horizontal modes move blocks on the X axis, vertical
// modes on Y; the reference line comes from the selection's union bounds.
const (
	AlignLeft    AlignMode = "left"
	AlignRight   AlignMode = "right"
	AlignCenterH AlignMode = "center-h"
	AlignTop     AlignMode = "top"
	AlignBottom  AlignMode = "bottom"
	AlignCenterV AlignMode = "center-v"
)

// DistributeAxis selects the axis for equal-gap distribution.
type DistributeAxis string

// Distribution axes.
const (
	DistributeHorizontal DistributeAxis = "horizontal"
	DistributeVertical   DistributeAxis = "vertical"
)

// selectTopLevel resolves ids to unlocked top-level blocks, dropping
// everything else.
func (e *Editor) selectTopLevel(ids []string) []*document.Block {
	var out []*document.Block
	for _, id := range ids {
		b, ok := e.doc.Block(id)
		if !ok || !b.IsTopLevel() || b.Locked {
			continue
		}
		out = append(out, b)
	}
	return out
}

// AlignSelection lines the selected top-level blocks up against the
// selection's union bounding box. Silent no-op for fewer than two blocks.
func (e *Editor) AlignSelection(ids []string, mode AlignMode) bool {
	blocks := e.selectTopLevel(ids)
	if len(blocks) < 2 {
		return false
	}

	bounds := make([]geometry.Bounds, len(blocks))
	for i, b := range blocks {
		bounds[i] = b.Layout.Bounds()
	}
	box := geometry.UnionAll(bounds)

	e.mutate(func() {
		for _, b := range blocks {
			switch mode {
			case AlignLeft:
				b.Layout.X = box.Left
			case AlignRight:
				b.Layout.X = box.Right - b.Layout.Width
			case AlignCenterH:
				b.Layout.X = box.CenterX() - b.Layout.Width/2
			case AlignTop:
				b.Layout.Y = box.Top
			case AlignBottom:
				b.Layout.Y = box.Bottom - b.Layout.Height
			case AlignCenterV:
				b.Layout.Y = box.CenterY() - b.Layout.Height/2
			}
		}
	})
	return true
}

// DistributeSelection spaces the selected top-level blocks with equal gaps
// along one axis. The outermost blocks stay put. Silent no-op for fewer
// than three blocks.
func (e *Editor) DistributeSelection(ids []string, axis DistributeAxis) bool {
	blocks := e.selectTopLevel(ids)
	if len(blocks) < 3 {
		return false
	}

	horizontal := axis == DistributeHorizontal
	slices.SortStableFunc(blocks, func(a, b *document.Block) int {
		av, bv := a.Layout.Y, b.Layout.Y
		if horizontal {
			av, bv = a.Layout.X, b.Layout.X
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	})

	first, last := blocks[0], blocks[len(blocks)-1]
	var span, occupied float64
	if horizontal {
		span = (last.Layout.X + last.Layout.Width) - first.Layout.X
	} else {
		span = (last.Layout.Y + last.Layout.Height) - first.Layout.Y
	}
	for _, b := range blocks {
		if horizontal {
			occupied += b.Layout.Width
		} else {
			occupied += b.Layout.Height
		}
	}
	gap := (span - occupied) / float64(len(blocks)-1)

	e.mutate(func() {
		cursor := first.Layout.X
		if !horizontal {
			cursor = first.Layout.Y
		}
		for _, b := range blocks {
			if horizontal {
				b.Layout.X = cursor
				cursor += b.Layout.Width + gap
			} else {
				b.Layout.Y = cursor
				cursor += b.Layout.Height + gap
			}
		}
	})
	return true
}

// =============================================================================
// Clipboard
// =============================================================================

// CopySelection deep-copies the given blocks into the editor clipboard.
// Copying a group carries its children. Copying is a pure view-state change
// and is not history-tracked.
func (e *Editor) CopySelection(ids []string) int {
	var copied []*document.Block
	for _, id := range ids {
		b, ok := e.doc.Block(id)
		if !ok {
			continue
		}
		copied = append(copied, b.Clone())
		if b.IsGroup() {
			for _, child := range e.doc.Children(b.ID) {
				copied = append(copied, child.Clone())
			}
		}
	}
	e.clipboard = copied
	return len(copied)
}

// Paste inserts clones of the clipboard contents, shifted 10px down-right,
// with fresh ids. Group membership inside the clipboard is preserved.
// Returns the newly created blocks; nil when the clipboard is empty.
func (e *Editor) Paste() []*document.Block {
	if len(e.clipboard) == 0 {
		return nil
	}

	var pasted []*document.Block
	e.mutate(func() {
		idMap := make(map[string]string, len(e.clipboard))
		z := e.doc.MaxZIndex()
		for _, src := range e.clipboard {
			cp := src.Clone()
			oldID := cp.ID
			cp.ID = ""
			if cp.ParentID == "" {
				cp.Layout.X += pasteOffset
				cp.Layout.Y += pasteOffset
				z++
				cp.Layout.ZIndex = z
			}
			e.doc.Add(cp)
			idMap[oldID] = cp.ID
			pasted = append(pasted, cp)
		}
		// Re-point children at the pasted copies of their groups.
		for _, b := range pasted {
			if b.ParentID != "" {
				if newID, ok := idMap[b.ParentID]; ok {
					b.ParentID = newID
				}
			}
		}
	})
	return pasted
}
