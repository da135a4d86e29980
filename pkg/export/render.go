package export

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
)

// =============================================================================
// Per-Type Renderers
// =============================================================================

// renderBlock dispatches to the renderer for the block's type. An empty return
// means the block contributes nothing to the output and its section is dropped.
func (c *compiler) renderBlock(b *document.Block) string {
	switch b.Type {
	case document.TypeText:
		return c.renderText(b)
	case document.TypeButton:
		return c.renderButton(b)
	case document.TypeImage:
		return c.renderImage(b)
	case document.TypeSpacer:
		return c.renderSpacer(b)
	case document.TypeDivider:
		return c.renderDivider(b)
	case document.TypeShape:
		return c.renderShape(b)
	case document.TypeSocial:
		return c.renderSocial(b)
	case document.TypeTable:
		return c.renderTable(b)
	case document.TypeList:
		return c.renderList(b)
	default:
		return ""
	}
}

func (c *compiler) renderText(b *document.Block) string {
	content := c.resolve(b.Content)
	if strings.TrimSpace(content) == "" {
		return ""
	}
	attrs := c.typography(b)
	return element("mj-text", attrs, html.EscapeString(content))
}

func (c *compiler) renderButton(b *document.Block) string {
	label := c.resolve(b.Content)
	if strings.TrimSpace(label) == "" {
		return ""
	}
	href := c.resolve(b.Style.Get("href"))
	if href == "" {
		href = "#"
	}
	attrs := []attr{{"href", href}}
	attrs = append(attrs, c.styleAttr("background-color", b.Style.Background)...)
	attrs = append(attrs, c.styleAttr("color", b.Style.Color)...)
	attrs = append(attrs, c.styleAttr("font-family", b.Style.FontFamily)...)
	attrs = append(attrs, c.styleAttr("font-size", b.Style.FontSize)...)
	attrs = append(attrs, c.styleAttr("border-radius", b.Style.BorderRadius)...)
	attrs = append(attrs, attr{"width", px(b.Layout.Width)})
	return element("mj-button", attrs, html.EscapeString(label))
}

func (c *compiler) renderImage(b *document.Block) string {
	src := c.resolve(b.Content)
	if src == "" {
		return ""
	}
	// Locally-held image data cannot survive into the output format: reject
	// it with a visible placeholder and keep compiling.
	if strings.HasPrefix(src, "data:") || strings.HasPrefix(src, "blob:") {
		c.warn(b, "image uses local data that cannot be exported; replace it with a hosted URL")
		placeholder := fmt.Sprintf("[image %q could not be exported]", b.Name)
		return element("mj-text",
			[]attr{{"color", "#b91c1c"}, {"align", "center"}},
			html.EscapeString(placeholder))
	}
	attrs := []attr{
		{"src", src},
		{"alt", b.Name},
		{"width", px(b.Layout.Width)},
	}
	attrs = append(attrs, c.styleAttr("border-radius", b.Style.BorderRadius)...)
	return selfClosing("mj-image", attrs)
}

func (c *compiler) renderSpacer(b *document.Block) string {
	if b.Layout.Height <= 0 {
		return ""
	}
	return selfClosing("mj-spacer", []attr{{"height", px(b.Layout.Height)}})
}

func (c *compiler) renderDivider(b *document.Block) string {
	attrs := c.ruleAttrs(b)
	return selfClosing("mj-divider", attrs)
}

// renderShape approximates free shapes in a format without free rectangles: a
// line collapses to a horizontal rule, everything else to a background-filled
// strip of the shape's height (circles get full corner rounding).
func (c *compiler) renderShape(b *document.Block) string {
	if b.Content == document.ShapeLine {
		return selfClosing("mj-divider", c.ruleAttrs(b))
	}
	fill := c.resolve(b.Style.Background)
	if fill == "" {
		return ""
	}
	attrs := []attr{
		{"height", px(b.Layout.Height)},
		{"container-background-color", fill},
	}
	if b.Content == document.ShapeCircle {
		attrs = append(attrs, attr{"border-radius", "50%"})
	} else if b.Style.BorderRadius != "" {
		attrs = append(attrs, attr{"border-radius", c.resolve(b.Style.BorderRadius)})
	}
	return selfClosing("mj-spacer", attrs)
}

func (c *compiler) renderSocial(b *document.Block) string {
	if b.Social == nil {
		return ""
	}
	var sb strings.Builder
	for _, link := range b.Social.Links {
		if !link.Enabled {
			continue
		}
		attrs := []attr{{"name", link.Network}, {"href", link.URL}}
		if color := c.socialColor(b.Social); color != "" {
			attrs = append(attrs, attr{"icon-color", color})
		}
		sb.WriteString("          ")
		sb.WriteString(openTag("mj-social-element", attrs, true))
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		return ""
	}
	return "        <mj-social mode=\"horizontal\">\n" + sb.String() + "        </mj-social>\n"
}

// socialColor maps the block's color mode to an explicit icon color; brand
// mode returns empty so each network keeps its own color.
func (c *compiler) socialColor(s *document.SocialData) string {
	switch s.ColorMode {
	case document.SocialColorMonoDark:
		return "#000000"
	case document.SocialColorMonoLight:
		return "#ffffff"
	case document.SocialColorCustom:
		return c.resolve(s.CustomColor)
	default:
		return ""
	}
}

func (c *compiler) renderTable(b *document.Block) string {
	if b.Table == nil || len(b.Table.Rows) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("        ")
	sb.WriteString(openTag("mj-table", c.typography(b), false))
	sb.WriteString("\n")
	for i, row := range b.Table.Rows {
		cell := "td"
		if i == 0 && b.Table.HeaderRow {
			cell = "th"
		}
		sb.WriteString("          <tr>")
		for _, col := range row {
			fmt.Fprintf(&sb, "<%s>%s</%s>", cell, html.EscapeString(c.resolve(col)), cell)
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("        </mj-table>\n")
	return sb.String()
}

func (c *compiler) renderList(b *document.Block) string {
	if b.List == nil || len(b.List.Items) == 0 {
		return ""
	}
	tag := "ul"
	if b.List.Ordered {
		tag = "ol"
	}
	itemStyle := ""
	if b.List.ItemSpacing > 0 {
		itemStyle = fmt.Sprintf(" style=\"padding-bottom:%s\"", px(b.List.ItemSpacing))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "<%s>", tag)
	for _, item := range b.List.Items {
		fmt.Fprintf(&sb, "<li%s>%s</li>", itemStyle, html.EscapeString(c.resolve(item)))
	}
	fmt.Fprintf(&sb, "</%s>", tag)
	return element("mj-text", c.typography(b), sb.String())
}

// =============================================================================
// Attribute Helpers
// =============================================================================

type attr struct {
	key   string
	value string
}

// typography collects the text-bearing style attributes shared by text, table
// and list renderers. Color-bearing values resolve through the token table.
func (c *compiler) typography(b *document.Block) []attr {
	var attrs []attr
	attrs = append(attrs, c.styleAttr("color", b.Style.Color)...)
	attrs = append(attrs, c.styleAttr("font-family", b.Style.FontFamily)...)
	attrs = append(attrs, c.styleAttr("font-size", b.Style.FontSize)...)
	attrs = append(attrs, c.styleAttr("font-weight", b.Style.FontWeight)...)
	attrs = append(attrs, c.styleAttr("align", b.Style.TextAlign)...)
	attrs = append(attrs, c.styleAttr("line-height", b.Style.LineHeight)...)
	attrs = append(attrs, c.styleAttr("padding", b.Style.Padding)...)
	attrs = append(attrs, c.styleAttr("container-background-color", b.Style.Background)...)
	return attrs
}

func (c *compiler) ruleAttrs(b *document.Block) []attr {
	color := c.resolve(b.Style.BorderColor)
	if color == "" {
		color = c.resolve(b.Style.Background)
	}
	width := b.Style.BorderWidth
	if width == "" {
		width = "1px"
	}
	var attrs []attr
	if color != "" {
		attrs = append(attrs, attr{"border-color", color})
	}
	attrs = append(attrs, attr{"border-width", c.resolve(width)})
	return attrs
}

func (c *compiler) styleAttr(name, value string) []attr {
	if value == "" {
		return nil
	}
	return []attr{{name, c.resolve(value)}}
}

// =============================================================================
// Markup Emission
// =============================================================================

func element(tag string, attrs []attr, content string) string {
	return "        " + openTag(tag, attrs, false) + content + "</" + tag + ">\n"
}

func selfClosing(tag string, attrs []attr) string {
	return "        " + openTag(tag, attrs, true) + "\n"
}

func openTag(tag string, attrs []attr, selfClose bool) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(tag)
	for _, a := range attrs {
		fmt.Fprintf(&sb, " %s=%q", a.key, html.EscapeString(a.value))
	}
	if selfClose {
		sb.WriteString(" />")
	} else {
		sb.WriteString(">")
	}
	return sb.String()
}

// px formats a pixel dimension without a trailing fractional zero, so equal
// inputs always produce byte-identical output.
func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
