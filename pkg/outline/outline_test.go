package outline

import (
	"strings"
	"testing"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
)

func TestToDOTHierarchy(t *testing.T) {
	d := document.New()
	a := d.Add(&document.Block{Type: document.TypeText, Layout: document.Layout{Width: 100, Height: 20}})
	b := d.Add(&document.Block{Type: document.TypeText, Layout: document.Layout{Y: 40, Width: 100, Height: 20}})
	group, ok := d.Group([]string{a.ID, b.ID})
	if !ok {
		t.Fatal("group failed")
	}
	solo := d.Add(&document.Block{Type: document.TypeImage, Layout: document.Layout{Y: 200, Width: 100, Height: 80}})

	dot := ToDOT(d, Options{})

	if !strings.HasPrefix(dot, "digraph blocks {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	for _, edge := range []string{
		`"` + canvasNodeID + `" -> "` + group.ID + `"`,
		`"` + canvasNodeID + `" -> "` + solo.ID + `"`,
		`"` + group.ID + `" -> "` + a.ID + `"`,
		`"` + group.ID + `" -> "` + b.ID + `"`,
	} {
		if !strings.Contains(dot, edge) {
			t.Errorf("missing edge %s in:\n%s", edge, dot)
		}
	}
}

func TestToDOTOrphanAttachesToCanvas(t *testing.T) {
	d := document.New()
	orphan := d.Add(&document.Block{Type: document.TypeText, Layout: document.Layout{Width: 100, Height: 20}})
	orphan.ParentID = "missing-group"

	dot := ToDOT(d, Options{})
	if !strings.Contains(dot, `"`+canvasNodeID+`" -> "`+orphan.ID+`"`) {
		t.Errorf("orphan not attached to canvas:\n%s", dot)
	}
	if strings.Contains(dot, "missing-group") {
		t.Error("dangling parent id leaked into DOT")
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	d := document.New()
	b := d.Add(&document.Block{Type: document.TypeText, Layout: document.Layout{X: 5, Y: 10, Width: 100, Height: 20}})
	b.Locked = true

	dot := ToDOT(d, Options{Detailed: true})
	if !strings.Contains(dot, "at: 5,10") {
		t.Errorf("detailed label missing geometry:\n%s", dot)
	}
	if !strings.Contains(dot, "locked") {
		t.Error("detailed label missing locked flag")
	}
}
