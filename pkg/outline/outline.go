// Package outline renders the block hierarchy as a node-link diagram: canvas
// at the root, top-level blocks beneath it, grouped children hanging off
// their group. It is a debugging view, not the export path.
package outline

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
)

const canvasNodeID = "__canvas__"

// Options configures outline rendering.
type Options struct {
	// Detailed includes each block's geometry and z-index in node labels.
	// When false, only the block's name and type are shown.
	Detailed bool
}

// ToDOT converts a document's hierarchy to Graphviz DOT format. The resulting
// string can be rendered with [RenderSVG] or [RenderPNG]. Blocks are emitted
// in insertion order so the output is deterministic.
func ToDOT(d *document.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph blocks {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightgrey];\n",
		canvasNodeID, fmt.Sprintf("canvas\n%gpx %s", d.Canvas.Width, d.Canvas.BackgroundColor))

	for _, b := range d.Blocks() {
		attrs := fmtAttrs(b, fmtLabel(b, opts.Detailed))
		fmt.Fprintf(&buf, "  %q [%s];\n", b.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, b := range d.Blocks() {
		parent := canvasNodeID
		if b.ParentID != "" {
			if _, ok := d.Block(b.ParentID); ok {
				parent = b.ParentID
			}
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", parent, b.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(b *document.Block, detailed bool) string {
	label := fmt.Sprintf("%s\n%s", b.Name, b.Type)
	if !detailed {
		return label
	}
	parts := []string{
		fmt.Sprintf("at: %g,%g", b.Layout.X, b.Layout.Y),
		fmt.Sprintf("size: %gx%g", b.Layout.Width, b.Layout.Height),
		fmt.Sprintf("z: %d", b.Layout.ZIndex),
	}
	if !b.Visible {
		parts = append(parts, "hidden")
	}
	if b.Locked {
		parts = append(parts, "locked")
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(b *document.Block, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if b.IsGroup() {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightyellow")
	}
	if !b.Visible {
		attrs = append(attrs, "fontcolor=grey")
	}
	return attrs
}

// RenderSVG renders a DOT outline to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT outline to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
