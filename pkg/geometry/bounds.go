// Package geometry provides axis-aligned bounding boxes and derived points
// for positioned canvas elements. Coordinates are in canvas pixels with the
// origin at the top-left corner and Y growing downward.
package geometry

// Bounds represents the axis-aligned bounding box of a positioned element.
type Bounds struct {
	Left, Right float64
	Top, Bottom float64
}

// FromRect builds a Bounds from a top-left position and size.
func FromRect(x, y, width, height float64) Bounds {
	return Bounds{Left: x, Right: x + width, Top: y, Bottom: y + height}
}

// Width returns the horizontal span of the bounds.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns the vertical span of the bounds.
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// CenterX returns the horizontal center point.
func (b Bounds) CenterX() float64 { return (b.Left + b.Right) / 2 }

// CenterY returns the vertical center point.
func (b Bounds) CenterY() float64 { return (b.Top + b.Bottom) / 2 }

// Translate returns the bounds shifted by dx, dy.
func (b Bounds) Translate(dx, dy float64) Bounds {
	return Bounds{Left: b.Left + dx, Right: b.Right + dx, Top: b.Top + dy, Bottom: b.Bottom + dy}
}

// Union returns the smallest bounds covering both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Left:   min(b.Left, o.Left),
		Right:  max(b.Right, o.Right),
		Top:    min(b.Top, o.Top),
		Bottom: max(b.Bottom, o.Bottom),
	}
}

// UnionAll returns the smallest bounds covering every element of bs.
// The zero Bounds is returned for an empty slice.
func UnionAll(bs []Bounds) Bounds {
	if len(bs) == 0 {
		return Bounds{}
	}
	out := bs[0]
	for _, b := range bs[1:] {
		out = out.Union(b)
	}
	return out
}
