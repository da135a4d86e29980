package document

import (
	"testing"
)

func newTestBlock(t Type, x, y, w, h float64) *Block {
	return &Block{
		Type:    t,
		Visible: true,
		Layout:  Layout{X: x, Y: y, Width: w, Height: h},
	}
}

func TestAddAssignsIDAndName(t *testing.T) {
	d := New()

	first := d.Add(newTestBlock(TypeText, 0, 0, 100, 40))
	second := d.Add(newTestBlock(TypeText, 0, 60, 100, 40))
	img := d.Add(newTestBlock(TypeImage, 0, 120, 100, 80))

	if first.ID == "" || second.ID == "" {
		t.Fatal("Add() left block id empty")
	}
	if first.ID == second.ID {
		t.Fatal("Add() assigned duplicate ids")
	}
	if first.Name != "Text 1" || second.Name != "Text 2" {
		t.Errorf("names = %q, %q, want Text 1, Text 2", first.Name, second.Name)
	}
	if img.Name != "Image 1" {
		t.Errorf("image name = %q, want Image 1", img.Name)
	}
}

func TestAddStartsVisible(t *testing.T) {
	d := New()
	b := d.Add(&Block{
		Type:   TypeText,
		Layout: Layout{Width: 100, Height: 40},
	})
	if !b.Visible {
		t.Error("Add() left block hidden")
	}

	// Deserialization must not flip blocks that were saved hidden.
	loaded, err := Unmarshal([]byte(`{"blocks":[{"id":"h","type":"text","visible":false}]}`))
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	blk, found := loaded.Block("h")
	if !found {
		t.Fatal("Block(h) not found after Unmarshal")
	}
	if blk.Visible {
		t.Error("deserialization flipped a hidden block visible")
	}
}

func TestAddKeepsExplicitName(t *testing.T) {
	d := New()
	b := newTestBlock(TypeButton, 0, 0, 120, 40)
	b.Name = "Buy Now"
	d.Add(b)
	if b.Name != "Buy Now" {
		t.Errorf("name = %q, want Buy Now", b.Name)
	}
}

func TestRemove(t *testing.T) {
	d := New()
	b := d.Add(newTestBlock(TypeText, 0, 0, 100, 40))

	if !d.Remove(b.ID) {
		t.Fatal("Remove() = false, want true")
	}
	if _, ok := d.Block(b.ID); ok {
		t.Error("Block() found removed block")
	}
	if d.Remove("missing") {
		t.Error("Remove(missing) = true, want false")
	}
}

func TestRemoveGroupReparentsChildren(t *testing.T) {
	d := New()
	a := d.Add(newTestBlock(TypeText, 10, 10, 100, 40))
	b := d.Add(newTestBlock(TypeText, 10, 100, 100, 40))
	group, ok := d.Group([]string{a.ID, b.ID})
	if !ok {
		t.Fatal("Group() failed")
	}

	if !d.Remove(group.ID) {
		t.Fatal("Remove(group) = false")
	}
	if a.ParentID != "" || b.ParentID != "" {
		t.Error("children still parented after group removal")
	}
	if a.Layout.X != 10 || a.Layout.Y != 10 {
		t.Errorf("child position = (%v,%v), want (10,10)", a.Layout.X, a.Layout.Y)
	}
}

func TestChildrenAndTopLevel(t *testing.T) {
	d := New()
	a := d.Add(newTestBlock(TypeText, 0, 0, 100, 40))
	b := d.Add(newTestBlock(TypeText, 0, 60, 100, 40))
	c := d.Add(newTestBlock(TypeImage, 300, 0, 100, 100))
	group, _ := d.Group([]string{a.ID, b.ID})

	kids := d.Children(group.ID)
	if len(kids) != 2 {
		t.Fatalf("Children() = %d blocks, want 2", len(kids))
	}

	top := d.TopLevel()
	if len(top) != 2 {
		t.Fatalf("TopLevel() = %d blocks, want 2 (group + image)", len(top))
	}
	for _, blk := range top {
		if blk.ID != group.ID && blk.ID != c.ID {
			t.Errorf("unexpected top-level block %s", blk.ID)
		}
	}
}

func TestOrphanedChildTreatedAsTopLevel(t *testing.T) {
	d := New()
	b := newTestBlock(TypeText, 5, 5, 50, 20)
	b.ParentID = "gone"
	d.Add(b)

	top := d.TopLevel()
	if len(top) != 1 || top[0].ID != b.ID {
		t.Fatal("orphaned child not treated as top-level")
	}

	bounds := d.AbsoluteBounds(b)
	if bounds.Left != 5 || bounds.Top != 5 {
		t.Errorf("AbsoluteBounds() = %+v, want origin (5,5)", bounds)
	}
}

func TestAbsoluteBounds(t *testing.T) {
	d := New()
	a := d.Add(newTestBlock(TypeText, 100, 50, 40, 20))
	b := d.Add(newTestBlock(TypeText, 200, 150, 40, 20))
	d.Group([]string{a.ID, b.ID})

	got := d.AbsoluteBounds(b)
	if got.Left != 200 || got.Top != 150 {
		t.Errorf("AbsoluteBounds() = (%v,%v), want (200,150)", got.Left, got.Top)
	}
}

func TestMaxZIndex(t *testing.T) {
	d := New()
	if got := d.MaxZIndex(); got != 0 {
		t.Errorf("MaxZIndex() on empty = %d, want 0", got)
	}
	b := newTestBlock(TypeText, 0, 0, 10, 10)
	b.Layout.ZIndex = 7
	d.Add(b)
	if got := d.MaxZIndex(); got != 7 {
		t.Errorf("MaxZIndex() = %d, want 7", got)
	}
}

func TestTokens(t *testing.T) {
	d := New()
	tok := d.AddToken(Token{Name: "brand", Value: "#ff5500", Kind: TokenColor})
	if tok.ID == "" {
		t.Fatal("AddToken() left id empty")
	}

	tok.Value = "#00ff55"
	if !d.UpdateToken(tok) {
		t.Fatal("UpdateToken() = false")
	}
	if got := d.TokenTable()[tok.ID].Value; got != "#00ff55" {
		t.Errorf("token value = %q, want #00ff55", got)
	}

	if !d.RemoveToken(tok.ID) {
		t.Fatal("RemoveToken() = false")
	}
	if d.UpdateToken(tok) {
		t.Error("UpdateToken() after removal = true, want false")
	}
}

func TestResolveToken(t *testing.T) {
	tokens := map[string]Token{
		"t1": {ID: "t1", Name: "brand", Value: "#ff5500", Kind: TokenColor},
	}

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"literal passthrough", "#123456", "#123456"},
		{"resolved reference", TokenRef("t1"), "#ff5500"},
		{"dangling reference falls back to raw", TokenRef("missing"), "token:missing"},
		{"empty value", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveToken(tt.value, tokens); got != tt.want {
				t.Errorf("ResolveToken(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSnapshotRestoreIsolation(t *testing.T) {
	d := New()
	b := d.Add(newTestBlock(TypeText, 0, 0, 100, 40))
	snap := d.Snapshot()

	b.Layout.X = 500
	b.Content = "changed"

	d.Restore(snap)
	restored, ok := d.Block(b.ID)
	if !ok {
		t.Fatal("block missing after restore")
	}
	if restored.Layout.X != 0 || restored.Content != "" {
		t.Errorf("restore leaked later edits: x=%v content=%q", restored.Layout.X, restored.Content)
	}
}

func TestStyleGetSet(t *testing.T) {
	var s Style
	s.Set(StyleColor, "#111111")
	s.Set("customKey", "value")

	if got := s.Get(StyleColor); got != "#111111" {
		t.Errorf("Get(color) = %q, want #111111", got)
	}
	if got := s.Get("customKey"); got != "value" {
		t.Errorf("Get(customKey) = %q, want value", got)
	}
	if s.Color != "#111111" {
		t.Error("Set(color) did not populate semantic field")
	}
	if s.Extra["customKey"] != "value" {
		t.Error("Set(customKey) did not populate extension bag")
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	d := New()
	d.Canvas = CanvasSettings{Width: 640, BackgroundColor: "#fafafa"}
	d.AddToken(Token{Name: "brand", Value: "#ff5500", Kind: TokenColor})
	b := newTestBlock(TypeButton, 20, 30, 160, 44)
	b.Content = "https://example.com"
	b.Style.Set(StyleBackground, "#222222")
	d.Add(b)

	data, err := Marshal(d, "newsletter")
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if got.Canvas != d.Canvas {
		t.Errorf("canvas = %+v, want %+v", got.Canvas, d.Canvas)
	}
	if got.Len() != 1 {
		t.Fatalf("block count = %d, want 1", got.Len())
	}
	rb, ok := got.Block(b.ID)
	if !ok {
		t.Fatal("block missing after round trip")
	}
	if rb.Content != b.Content || rb.Style.Background != "#222222" {
		t.Errorf("block fields lost in round trip: %+v", rb)
	}
	if len(got.Tokens()) != 1 {
		t.Errorf("token count = %d, want 1", len(got.Tokens()))
	}
}
