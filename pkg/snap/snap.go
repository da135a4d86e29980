// Package snap implements the alignment engine used during interactive block
// placement. Given a block's tentative drag position and its visible siblings,
// it returns a corrected position plus the alignment guide lines to display.
//
// The engine is pure and side-effect free: it never mutates document state,
// it only advises. Snapping runs on every pointer move during a drag, so an
// Engine holds the candidate set for the duration of a gesture instead of
// rebuilding it per call.
package snap

import (
	"math"
	"slices"

	"github.com/SharadhNaidu/mailcanvas/pkg/geometry"
)

// DefaultThreshold is the pixel distance below which an edge or center pair
// counts as aligned for snapping purposes.
const DefaultThreshold = 5.0

// guideEpsilon bounds what counts as exactly aligned when emitting guides
// after the winning snap position is fixed.
const guideEpsilon = 1.0

// Axis identifies the orientation of a guide line.
type Axis string

// Guide axes. A vertical guide marks a shared x coordinate; a horizontal
// guide marks a shared y coordinate.
const (
	AxisVertical   Axis = "vertical"
	AxisHorizontal Axis = "horizontal"
)

// Guide is one alignment line to display. Position is the shared coordinate
// on the guide's axis; Start and End span the union of the aligned elements'
// extents along the perpendicular axis, so the rendered line visibly
// connects both shapes.
type Guide struct {
	Axis     Axis    `json:"axis"`
	Position float64 `json:"position"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
}

// Result is the outcome of a snap evaluation. X and Y hold the corrected
// position (the proposed position when no snap applied on that axis); the
// booleans report per-axis whether a snap won.
type Result struct {
	X, Y               float64
	SnappedX, SnappedY bool
	Guides             []Guide
}

// Engine evaluates snap positions against a fixed candidate set. Candidates
// are the absolute bounds of all visible, top-level blocks other than the
// moving one; build the set once per gesture.
type Engine struct {
	candidates []geometry.Bounds
	threshold  float64
}

// NewEngine creates a snap engine over the given candidate bounds.
// A non-positive threshold falls back to DefaultThreshold.
func NewEngine(candidates []geometry.Bounds, threshold float64) *Engine {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Engine{candidates: candidates, threshold: threshold}
}

// Snap evaluates a moving block of the given size at the proposed position.
//
// Pass one picks, independently per axis, the single closest alignment below
// threshold among all candidates; pass two recomputes which edge/center pairs
// are exactly aligned at the winning position and emits one deduplicated
// guide per (axis, position). Resolving the axes independently means a block
// can snap on X only, Y only, both, or neither; the two-pass design lets
// multiple far-apart blocks light up together when they share one alignment
// line.
func (e *Engine) Snap(width, height, proposedX, proposedY float64) Result {
	res := Result{X: proposedX, Y: proposedY}

	moving := geometry.FromRect(proposedX, proposedY, width, height)

	// Pass 1: closest alignment per axis wins.
	bestX, bestY := e.threshold, e.threshold
	for _, c := range e.candidates {
		for _, pair := range xPairs(moving, c) {
			if d := math.Abs(pair.target - pair.value); d < bestX {
				bestX = d
				res.X = proposedX + (pair.target - pair.value)
				res.SnappedX = true
			}
		}
		for _, pair := range yPairs(moving, c) {
			if d := math.Abs(pair.target - pair.value); d < bestY {
				bestY = d
				res.Y = proposedY + (pair.target - pair.value)
				res.SnappedY = true
			}
		}
	}

	// Pass 2: with the winner fixed, find every exactly-aligned pair and
	// collapse guides sharing (axis, position) into one line whose span
	// covers all participants.
	final := geometry.FromRect(res.X, res.Y, width, height)
	type key struct {
		axis Axis
		pos  float64
	}
	merged := make(map[key]Guide)
	for _, c := range e.candidates {
		for _, pair := range xPairs(final, c) {
			if math.Abs(pair.target-pair.value) < guideEpsilon {
				k := key{AxisVertical, pair.target}
				g := Guide{
					Axis:     AxisVertical,
					Position: pair.target,
					Start:    math.Min(final.Top, c.Top),
					End:      math.Max(final.Bottom, c.Bottom),
				}
				if prev, ok := merged[k]; ok {
					g.Start = math.Min(g.Start, prev.Start)
					g.End = math.Max(g.End, prev.End)
				}
				merged[k] = g
			}
		}
		for _, pair := range yPairs(final, c) {
			if math.Abs(pair.target-pair.value) < guideEpsilon {
				k := key{AxisHorizontal, pair.target}
				g := Guide{
					Axis:     AxisHorizontal,
					Position: pair.target,
					Start:    math.Min(final.Left, c.Left),
					End:      math.Max(final.Right, c.Right),
				}
				if prev, ok := merged[k]; ok {
					g.Start = math.Min(g.Start, prev.Start)
					g.End = math.Max(g.End, prev.End)
				}
				merged[k] = g
			}
		}
	}

	for _, g := range merged {
		res.Guides = append(res.Guides, g)
	}
	slices.SortFunc(res.Guides, func(a, b Guide) int {
		if a.Axis != b.Axis {
			if a.Axis == AxisVertical {
				return -1
			}
			return 1
		}
		switch {
		case a.Position < b.Position:
			return -1
		case a.Position > b.Position:
			return 1
		default:
			return 0
		}
	})

	return res
}

// Snap is a one-shot convenience over NewEngine for callers outside a drag
// gesture.
func Snap(width, height, proposedX, proposedY float64, candidates []geometry.Bounds) Result {
	return NewEngine(candidates, DefaultThreshold).Snap(width, height, proposedX, proposedY)
}

// alignPair is one edge/center comparison: the moving block's value against
// the candidate's target coordinate.
type alignPair struct {
	value  float64
	target float64
}

// xPairs returns the horizontal alignment tests between a moving block and a
// candidate: left-to-left, right-to-right, left-to-right, right-to-left, and
// center-to-center.
func xPairs(m, c geometry.Bounds) [5]alignPair {
	return [5]alignPair{
		{m.Left, c.Left},
		{m.Right, c.Right},
		{m.Left, c.Right},
		{m.Right, c.Left},
		{m.CenterX(), c.CenterX()},
	}
}

// yPairs returns the vertical analogues plus center-to-center.
func yPairs(m, c geometry.Bounds) [5]alignPair {
	return [5]alignPair{
		{m.Top, c.Top},
		{m.Bottom, c.Bottom},
		{m.Top, c.Bottom},
		{m.Bottom, c.Top},
		{m.CenterY(), c.CenterY()},
	}
}
