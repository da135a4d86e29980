package document

import "github.com/SharadhNaidu/mailcanvas/pkg/geometry"

// =============================================================================
// Hierarchy Engine - Group / Ungroup
// =============================================================================

// Group collects the given blocks into a new group block.
//
// Only top-level, non-group blocks among the ids participate; ids referring
// to grouped, nonexistent, or group-type blocks are ignored (nesting beyond
// one level is rejected here rather than flattened later). At least two
// participating blocks are required, otherwise the call is a silent no-op
// and returns nil, false.
//
// The new group's layout is the union bounding box of the selected blocks,
// its z-index is the current document maximum plus one, and every selected
// block's position is re-expressed relative to the box origin.
func (d *Document) Group(blockIDs []string) (*Block, bool) {
	var members []*Block
	for _, id := range blockIDs {
		b, ok := d.index[id]
		if !ok || !b.IsTopLevel() || b.IsGroup() {
			continue
		}
		members = append(members, b)
	}
	if len(members) < 2 {
		return nil, false
	}

	bounds := make([]geometry.Bounds, len(members))
	for i, b := range members {
		bounds[i] = b.Layout.Bounds()
	}
	box := geometry.UnionAll(bounds)

	group := d.Add(&Block{
		Type:    TypeGroup,
		Visible: true,
		Layout: Layout{
			X:      box.Left,
			Y:      box.Top,
			Width:  box.Width(),
			Height: box.Height(),
			ZIndex: d.MaxZIndex() + 1,
		},
	})

	for _, b := range members {
		b.Layout.X -= box.Left
		b.Layout.Y -= box.Top
		b.ParentID = group.ID
	}

	return group, true
}

// Ungroup dissolves a group, re-expressing every child's position in canvas
// space and clearing its parent reference. The group block itself is removed.
//
// The call is a silent no-op and returns nil, false when the id does not
// refer to a group block. A group with zero children is simply removed.
// The former children are returned so callers can re-select them.
func (d *Document) Ungroup(groupID string) ([]*Block, bool) {
	group, ok := d.index[groupID]
	if !ok || !group.IsGroup() {
		return nil, false
	}

	children := d.Children(groupID)
	for _, child := range children {
		child.Layout.X += group.Layout.X
		child.Layout.Y += group.Layout.Y
		child.ParentID = ""
	}

	d.Remove(groupID)
	return children, true
}
