// Package constraint implements anchoring-based layout resolution for canvas
// resizes. When the canvas width changes, every top-level block's position
// and size are re-derived from its horizontal anchor mode; group children
// keep their relative coordinates and ride along with their group's envelope.
package constraint

import (
	"math"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
)

// Apply re-derives a single layout for a canvas width change from oldWidth
// to newWidth, according to the horizontal anchor mode:
//
//	left:   x unchanged
//	right:  distance from the right edge is preserved
//	center: the block center stays at the same fraction of canvas width
//	scale:  position and width both scale with the width ratio (rounded)
//
// The resulting x is clamped to [0, newWidth-width]. A block that still
// exceeds the new canvas is forced to full width at x=0 with its height
// scaled by the same factor when numeric; this safety clamp is not a
// constraint mode and always wins.
func Apply(l document.Layout, a document.Anchor, oldWidth, newWidth float64) document.Layout {
	if oldWidth <= 0 || newWidth <= 0 || oldWidth == newWidth {
		return l
	}

	out := l
	switch a.Horizontal {
	case document.AnchorRight:
		rightGap := oldWidth - (l.X + l.Width)
		out.X = newWidth - l.Width - rightGap
	case document.AnchorCenter:
		centerFrac := (l.X + l.Width/2) / oldWidth
		out.X = newWidth*centerFrac - l.Width/2
	case document.AnchorScale:
		ratio := newWidth / oldWidth
		out.Width = math.Round(l.Width * ratio)
		out.X = math.Round(l.X * ratio)
	default: // left, or anything unrecognized
	}

	// Hard safety clamp: a block wider than the new canvas goes full width.
	if out.Width > newWidth {
		factor := newWidth / out.Width
		out.Width = newWidth
		out.X = 0
		if !out.AutoHeight {
			out.Height = math.Round(out.Height * factor)
		}
		return out
	}

	out.X = clamp(out.X, 0, newWidth-out.Width)
	return out
}

// Resize applies Apply to every top-level block of the document and updates
// the canvas width. Group children are not recursed into: the group's own
// constraint governs the whole envelope.
func Resize(d *document.Document, newWidth float64) {
	oldWidth := d.Canvas.Width
	if oldWidth == newWidth || newWidth <= 0 {
		return
	}
	for _, b := range d.TopLevel() {
		b.Layout = Apply(b.Layout, b.Anchor, oldWidth, newWidth)
	}
	d.Canvas.Width = newWidth
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
