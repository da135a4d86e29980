// Package export implements the flow-approximation compiler: it linearizes
// the absolutely-positioned canvas into a strictly top-to-bottom markup
// document.
//
// The target format has no concept of free placement, so vertical order is
// approximated by sorting top-level blocks on their y coordinate. Groups are
// transparent in the output: their children are flattened in place, sorted by
// y among themselves. The compiler is pure and deterministic — recompiling an
// unchanged document yields a byte-identical string.
package export

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
	"github.com/SharadhNaidu/mailcanvas/pkg/errors"
)

// =============================================================================
// Public Types
// =============================================================================

// Warning flags content that could not be carried into the output format.
// Warnings are non-fatal: the affected block is replaced with a visible
// placeholder and compilation continues.
type Warning struct {
	BlockID   string `json:"blockId"`
	BlockName string `json:"blockName"`
	Message   string `json:"message"`
}

// Diagnostic is a structural finding reported by the downstream markup-to-HTML
// compiler. Diagnostics are surfaced verbatim and never escalate to a hard
// failure of the export.
type Diagnostic struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
	TagName string `json:"tagName"`
}

// HTMLCompiler converts the intermediate markup into final HTML. It is an
// external collaborator treated as a black box: its diagnostics are collected
// alongside a best-effort HTML result.
type HTMLCompiler interface {
	CompileHTML(ctx context.Context, markup string) (string, []Diagnostic, error)
}

// Result is the output of an export run.
type Result struct {
	Markup      string       `json:"markup"`
	HTML        string       `json:"html,omitempty"`
	Warnings    []Warning    `json:"warnings,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// =============================================================================
// Options
// =============================================================================

const defaultLinkColor = "#1a73e8"

// Option configures a compilation run.
type Option func(*compiler)

// WithLinkColor overrides the global link color rule emitted in the document
// head.
func WithLinkColor(color string) Option {
	return func(c *compiler) { c.linkColor = color }
}

// WithHTMLCompiler attaches a downstream markup-to-HTML compiler; Export runs
// it after markup generation and merges its diagnostics into the result.
func WithHTMLCompiler(hc HTMLCompiler) Option {
	return func(c *compiler) { c.html = hc }
}

type compiler struct {
	doc       *document.Document
	tokens    map[string]document.Token
	linkColor string
	html      HTMLCompiler
	warnings  []Warning
}

// =============================================================================
// Compilation
// =============================================================================

// Compile flattens the document into the intermediate markup string. It never
// fails: unexportable content degrades to placeholders recorded as warnings.
func Compile(d *document.Document, opts ...Option) Result {
	c := &compiler{
		doc:       d,
		tokens:    d.TokenTable(),
		linkColor: defaultLinkColor,
	}
	for _, opt := range opts {
		opt(c)
	}

	var buf bytes.Buffer
	buf.WriteString("<mjml>\n")
	buf.WriteString("  <mj-head>\n")
	fmt.Fprintf(&buf, "    <mj-style>a { color: %s; }</mj-style>\n", c.resolve(c.linkColor))
	buf.WriteString("  </mj-head>\n")
	fmt.Fprintf(&buf, "  <mj-body width=%q background-color=%q>\n",
		px(d.Canvas.Width), c.resolve(d.Canvas.BackgroundColor))

	for _, b := range sortByY(d.TopLevel()) {
		c.renderTopLevel(&buf, b)
	}

	buf.WriteString("  </mj-body>\n")
	buf.WriteString("</mjml>\n")

	return Result{Markup: buf.String(), Warnings: c.warnings}
}

// Export compiles the document and, when a downstream compiler is configured,
// converts the markup to HTML. Downstream diagnostics are merged into the
// result; only a failure to run the compiler at all is returned as an error.
func Export(ctx context.Context, d *document.Document, opts ...Option) (Result, error) {
	c := &compiler{}
	for _, opt := range opts {
		opt(c)
	}
	res := Compile(d, opts...)
	if c.html == nil {
		return res, nil
	}

	html, diags, err := c.html.CompileHTML(ctx, res.Markup)
	if err != nil {
		return res, errors.Wrap(errors.ErrCodeCompile, err, "markup-to-HTML compilation failed")
	}
	res.HTML = html
	res.Diagnostics = diags
	return res, nil
}

// renderTopLevel emits one top-level block, flattening groups in place. The
// data model supports a single nesting level, so flattening never recurses
// past a group's direct children.
func (c *compiler) renderTopLevel(buf *bytes.Buffer, b *document.Block) {
	if !b.Visible {
		return
	}
	if b.IsGroup() {
		for _, child := range sortByY(c.doc.Children(b.ID)) {
			if !child.Visible || child.IsGroup() {
				continue
			}
			c.renderSection(buf, child)
		}
		return
	}
	c.renderSection(buf, b)
}

// renderSection wraps one concrete block in its section/column scaffolding.
// Blocks that render to empty output are dropped rather than wrapped in an
// empty container.
func (c *compiler) renderSection(buf *bytes.Buffer, b *document.Block) {
	element := c.renderBlock(b)
	if element == "" {
		return
	}
	buf.WriteString("    <mj-section padding=\"0\">\n")
	buf.WriteString("      <mj-column>\n")
	buf.WriteString(element)
	buf.WriteString("      </mj-column>\n")
	buf.WriteString("    </mj-section>\n")
}

// sortByY orders blocks ascending by y. The sort is stable so blocks sharing
// a y coordinate keep their insertion order.
func sortByY(blocks []*document.Block) []*document.Block {
	sorted := make([]*document.Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Layout.Y < sorted[j].Layout.Y
	})
	return sorted
}

// resolve maps a design-token reference to its current value, leaving literal
// values untouched. A dangling reference falls back to the raw string.
func (c *compiler) resolve(value string) string {
	return document.ResolveToken(value, c.tokens)
}

func (c *compiler) warn(b *document.Block, message string) {
	c.warnings = append(c.warnings, Warning{
		BlockID:   b.ID,
		BlockName: b.Name,
		Message:   message,
	})
}
