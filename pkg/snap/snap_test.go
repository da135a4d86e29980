package snap

import (
	"testing"

	"github.com/SharadhNaidu/mailcanvas/pkg/geometry"
)

func TestSnapLeftEdgeWithinThreshold(t *testing.T) {
	// Candidate with left edge at x=100; dragging a block to x=103±4 snaps
	// to 100 with exactly one vertical guide at 100.
	candidate := geometry.FromRect(100, 0, 50, 30)

	// The moving block is wider than the candidate so only its left edge can
	// align; the spec'd outcome is exactly one vertical guide.
	for _, proposed := range []float64{99, 101, 103, 104} {
		res := Snap(80, 30, proposed, 200, []geometry.Bounds{candidate})
		if !res.SnappedX {
			t.Errorf("proposed x=%v: SnappedX = false, want true", proposed)
			continue
		}
		if res.X != 100 {
			t.Errorf("proposed x=%v: X = %v, want 100", proposed, res.X)
		}

		var vertical []Guide
		for _, g := range res.Guides {
			if g.Axis == AxisVertical {
				vertical = append(vertical, g)
			}
		}
		if len(vertical) != 1 {
			t.Errorf("proposed x=%v: %d vertical guides, want 1", proposed, len(vertical))
			continue
		}
		if vertical[0].Position != 100 {
			t.Errorf("guide position = %v, want 100", vertical[0].Position)
		}
	}
}

func TestSnapOutsideThreshold(t *testing.T) {
	candidate := geometry.FromRect(100, 0, 50, 30)
	res := Snap(50, 30, 106, 200, []geometry.Bounds{candidate})
	if res.SnappedX {
		t.Errorf("x=106 snapped to %v, want no snap beyond threshold", res.X)
	}
	if res.X != 106 {
		t.Errorf("X = %v, want proposed 106", res.X)
	}
}

func TestSnapAxesIndependent(t *testing.T) {
	// Candidate aligned on X only; Y stays at the proposed value.
	candidate := geometry.FromRect(100, 500, 50, 30)
	res := Snap(50, 30, 102, 200, []geometry.Bounds{candidate})

	if !res.SnappedX {
		t.Error("SnappedX = false, want true")
	}
	if res.SnappedY {
		t.Error("SnappedY = true, want false")
	}
	if res.Y != 200 {
		t.Errorf("Y = %v, want proposed 200", res.Y)
	}
}

func TestSnapClosestWins(t *testing.T) {
	// Two candidates within threshold: the closer one determines the snap.
	near := geometry.FromRect(101, 0, 50, 30)
	far := geometry.FromRect(104, 100, 50, 30)
	res := Snap(50, 30, 100, 300, []geometry.Bounds{far, near})

	if !res.SnappedX || res.X != 101 {
		t.Errorf("X = %v (snapped=%v), want 101 from nearest candidate", res.X, res.SnappedX)
	}
}

func TestSnapCenterAlignment(t *testing.T) {
	// Candidate centered at x=125; moving block of width 50 proposed so its
	// center lands within threshold of 125.
	candidate := geometry.FromRect(100, 0, 50, 30)
	res := Snap(50, 30, 103, 200, []geometry.Bounds{candidate})

	if !res.SnappedX {
		t.Fatal("SnappedX = false, want true")
	}
	// Closest test is center-to-center (distance 3 via centers at 128 vs 125
	// equals left-left distance... left edges 103 vs 100 also distance 3);
	// either way the corrected position is 100.
	if res.X != 100 {
		t.Errorf("X = %v, want 100", res.X)
	}
}

func TestGuideDeduplication(t *testing.T) {
	// Three candidates whose vertical centers are already equal; moving a
	// fourth block's center within threshold produces one horizontal guide,
	// not three duplicates.
	candidates := []geometry.Bounds{
		geometry.FromRect(0, 100, 40, 20),   // centerY = 110
		geometry.FromRect(200, 100, 40, 20), // centerY = 110
		geometry.FromRect(400, 100, 40, 20), // centerY = 110
	}

	// Moving block 40x20 proposed at y=103 → centerY=113, within threshold.
	res := Snap(40, 20, 600, 103, candidates)
	if !res.SnappedY {
		t.Fatal("SnappedY = false, want true")
	}
	if res.Y != 100 {
		t.Errorf("Y = %v, want 100 (centerY 110)", res.Y)
	}

	var horizontal []Guide
	for _, g := range res.Guides {
		if g.Axis == AxisHorizontal && g.Position == 110 {
			horizontal = append(horizontal, g)
		}
	}
	if len(horizontal) != 1 {
		t.Fatalf("%d horizontal guides at 110, want 1 deduplicated", len(horizontal))
	}

	// Span covers the union of all aligned elements' horizontal extents.
	g := horizontal[0]
	if g.Start != 0 || g.End != 640 {
		t.Errorf("guide span = [%v,%v], want [0,640]", g.Start, g.End)
	}
}

func TestGuideSpanConnectsBothShapes(t *testing.T) {
	candidate := geometry.FromRect(100, 300, 50, 30)
	res := Snap(50, 30, 100, 50, []geometry.Bounds{candidate})

	var found *Guide
	for i, g := range res.Guides {
		if g.Axis == AxisVertical && g.Position == 100 {
			found = &res.Guides[i]
			break
		}
	}
	if found == nil {
		t.Fatal("no vertical guide at 100")
	}
	if found.Start != 50 || found.End != 330 {
		t.Errorf("span = [%v,%v], want [50,330]", found.Start, found.End)
	}
}

func TestEngineReusableAcrossGesture(t *testing.T) {
	e := NewEngine([]geometry.Bounds{geometry.FromRect(100, 0, 50, 30)}, 0)

	// Simulate successive pointer moves with one engine.
	positions := []float64{120, 110, 104, 102}
	var last Result
	for _, x := range positions {
		last = e.Snap(50, 30, x, 200)
	}
	if !last.SnappedX || last.X != 100 {
		t.Errorf("final X = %v (snapped=%v), want 100", last.X, last.SnappedX)
	}
}

func TestSnapNoCandidates(t *testing.T) {
	res := Snap(50, 30, 42, 17, nil)
	if res.SnappedX || res.SnappedY || len(res.Guides) != 0 {
		t.Errorf("snap with no candidates = %+v, want passthrough", res)
	}
	if res.X != 42 || res.Y != 17 {
		t.Errorf("position = (%v,%v), want (42,17)", res.X, res.Y)
	}
}
