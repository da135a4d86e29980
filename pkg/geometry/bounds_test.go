package geometry

import "testing"

func TestFromRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		want       Bounds
	}{
		{
			name: "origin",
			x:    0, y: 0, w: 100, h: 50,
			want: Bounds{Left: 0, Right: 100, Top: 0, Bottom: 50},
		},
		{
			name: "offset",
			x:    20, y: 30, w: 60, h: 40,
			want: Bounds{Left: 20, Right: 80, Top: 30, Bottom: 70},
		},
		{
			name: "zero size",
			x:    10, y: 10, w: 0, h: 0,
			want: Bounds{Left: 10, Right: 10, Top: 10, Bottom: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromRect(tt.x, tt.y, tt.w, tt.h); got != tt.want {
				t.Errorf("FromRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundsDerivedPoints(t *testing.T) {
	b := FromRect(10, 20, 50, 30)

	if b.Width() != 50 {
		t.Errorf("Width() = %v, want 50", b.Width())
	}
	if b.Height() != 30 {
		t.Errorf("Height() = %v, want 30", b.Height())
	}
	if b.CenterX() != 35 {
		t.Errorf("CenterX() = %v, want 35", b.CenterX())
	}
	if b.CenterY() != 35 {
		t.Errorf("CenterY() = %v, want 35", b.CenterY())
	}
}

func TestTranslate(t *testing.T) {
	b := FromRect(10, 10, 20, 20).Translate(5, -5)
	want := Bounds{Left: 15, Right: 35, Top: 5, Bottom: 25}
	if b != want {
		t.Errorf("Translate() = %+v, want %+v", b, want)
	}
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Bounds
		want Bounds
	}{
		{
			name: "disjoint",
			a:    FromRect(0, 0, 10, 10),
			b:    FromRect(20, 20, 10, 10),
			want: Bounds{Left: 0, Right: 30, Top: 0, Bottom: 30},
		},
		{
			name: "contained",
			a:    FromRect(0, 0, 100, 100),
			b:    FromRect(10, 10, 10, 10),
			want: Bounds{Left: 0, Right: 100, Top: 0, Bottom: 100},
		},
		{
			name: "overlapping",
			a:    FromRect(0, 0, 50, 50),
			b:    FromRect(25, 25, 50, 50),
			want: Bounds{Left: 0, Right: 75, Top: 0, Bottom: 75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnionAll(t *testing.T) {
	bs := []Bounds{
		FromRect(100, 50, 20, 20),
		FromRect(10, 200, 30, 10),
		FromRect(50, 5, 10, 10),
	}
	got := UnionAll(bs)
	want := Bounds{Left: 10, Right: 120, Top: 5, Bottom: 210}
	if got != want {
		t.Errorf("UnionAll() = %+v, want %+v", got, want)
	}

	if got := UnionAll(nil); got != (Bounds{}) {
		t.Errorf("UnionAll(nil) = %+v, want zero bounds", got)
	}
}
