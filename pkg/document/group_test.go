package document

import "testing"

func TestGroupComputesBoundingBox(t *testing.T) {
	d := New()
	a := d.Add(newTestBlock(TypeText, 100, 50, 40, 20))
	b := d.Add(newTestBlock(TypeImage, 200, 150, 60, 80))

	group, ok := d.Group([]string{a.ID, b.ID})
	if !ok {
		t.Fatal("Group() = false, want true")
	}

	if group.Layout.X != 100 || group.Layout.Y != 50 {
		t.Errorf("group origin = (%v,%v), want (100,50)", group.Layout.X, group.Layout.Y)
	}
	if group.Layout.Width != 160 || group.Layout.Height != 180 {
		t.Errorf("group size = (%v,%v), want (160,180)", group.Layout.Width, group.Layout.Height)
	}

	// Children are re-expressed in group-local coordinates.
	if a.Layout.X != 0 || a.Layout.Y != 0 {
		t.Errorf("a local = (%v,%v), want (0,0)", a.Layout.X, a.Layout.Y)
	}
	if b.Layout.X != 100 || b.Layout.Y != 100 {
		t.Errorf("b local = (%v,%v), want (100,100)", b.Layout.X, b.Layout.Y)
	}
	if a.ParentID != group.ID || b.ParentID != group.ID {
		t.Error("children not parented to group")
	}
}

func TestGroupZIndexIsMaxPlusOne(t *testing.T) {
	d := New()
	a := newTestBlock(TypeText, 0, 0, 10, 10)
	a.Layout.ZIndex = 3
	b := newTestBlock(TypeText, 20, 20, 10, 10)
	b.Layout.ZIndex = 9
	d.Add(a)
	d.Add(b)

	group, _ := d.Group([]string{a.ID, b.ID})
	if group.Layout.ZIndex != 10 {
		t.Errorf("group z-index = %d, want 10", group.Layout.ZIndex)
	}
}

func TestGroupPreconditions(t *testing.T) {
	d := New()
	a := d.Add(newTestBlock(TypeText, 0, 0, 10, 10))
	b := d.Add(newTestBlock(TypeText, 20, 0, 10, 10))
	existing, _ := d.Group([]string{a.ID, b.ID})

	tests := []struct {
		name string
		ids  []string
	}{
		{"single block", []string{a.ID}},
		{"nonexistent ids ignored", []string{"nope", "also-nope"}},
		{"already-grouped blocks ignored", []string{a.ID, b.ID}},
		{"group blocks rejected", []string{existing.ID, a.ID}},
		{"empty selection", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := d.Len()
			if _, ok := d.Group(tt.ids); ok {
				t.Error("Group() = true, want false")
			}
			if d.Len() != before {
				t.Error("failed Group() mutated the document")
			}
		})
	}
}

func TestUngroupPreconditions(t *testing.T) {
	d := New()
	a := d.Add(newTestBlock(TypeText, 0, 0, 10, 10))

	if _, ok := d.Ungroup(a.ID); ok {
		t.Error("Ungroup(non-group) = true, want false")
	}
	if _, ok := d.Ungroup("missing"); ok {
		t.Error("Ungroup(missing) = true, want false")
	}
}

func TestGroupUngroupRoundTrip(t *testing.T) {
	d := New()
	positions := [][2]float64{{100, 50}, {250, 80}, {40, 300}}
	var ids []string
	for _, p := range positions {
		b := d.Add(newTestBlock(TypeText, p[0], p[1], 50, 25))
		ids = append(ids, b.ID)
	}

	group, ok := d.Group(ids)
	if !ok {
		t.Fatal("Group() failed")
	}
	children, ok := d.Ungroup(group.ID)
	if !ok {
		t.Fatal("Ungroup() failed")
	}
	if len(children) != 3 {
		t.Fatalf("Ungroup() returned %d children, want 3", len(children))
	}

	// Round-trip law: every child's absolute position is restored exactly.
	for i, id := range ids {
		b, _ := d.Block(id)
		if b.Layout.X != positions[i][0] || b.Layout.Y != positions[i][1] {
			t.Errorf("block %d position = (%v,%v), want (%v,%v)",
				i, b.Layout.X, b.Layout.Y, positions[i][0], positions[i][1])
		}
		if b.ParentID != "" {
			t.Errorf("block %d still parented", i)
		}
	}

	if _, ok := d.Block(group.ID); ok {
		t.Error("group block still present after ungroup")
	}
}

func TestUngroupEmptyGroup(t *testing.T) {
	d := New()
	a := d.Add(newTestBlock(TypeText, 0, 0, 10, 10))
	b := d.Add(newTestBlock(TypeText, 20, 0, 10, 10))
	group, _ := d.Group([]string{a.ID, b.ID})

	// Orphan the children by hand, leaving an empty group.
	a.ParentID = ""
	b.ParentID = ""

	children, ok := d.Ungroup(group.ID)
	if !ok {
		t.Fatal("Ungroup(empty group) = false, want true")
	}
	if len(children) != 0 {
		t.Errorf("children = %d, want 0", len(children))
	}
	if _, ok := d.Block(group.ID); ok {
		t.Error("empty group not removed")
	}
}
