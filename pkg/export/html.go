package export

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Basic is a built-in, best-effort HTMLCompiler. It maps each intermediate
// element to a plain HTML equivalent and reports anything it does not
// recognize as a diagnostic instead of failing. The output trades email-client
// fidelity for having zero external dependencies; callers wanting
// production-grade HTML should plug in a real compiler via WithHTMLCompiler.
type Basic struct{}

var tagPattern = regexp.MustCompile(`</?(mj-[a-z-]+)`)

// tagSubstitutions maps intermediate tags to their HTML renditions. Tags
// absent from this table are stripped and reported.
var tagSubstitutions = map[string][2]string{
	"mj-text":    {"<div", "</div>"},
	"mj-button":  {"<a", "</a>"},
	"mj-table":   {"<table", "</table>"},
	"mj-social":  {"<div", "</div>"},
	"mj-section": {"<div", "</div>"},
	"mj-column":  {"<div", "</div>"},
}

// CompileHTML implements HTMLCompiler.
func (Basic) CompileHTML(ctx context.Context, markup string) (string, []Diagnostic, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	var (
		out   strings.Builder
		diags []Diagnostic
	)
	lines := strings.Split(markup, "\n")
	for i, line := range lines {
		switch {
		case strings.Contains(line, "<mjml>"):
			out.WriteString("<!DOCTYPE html>\n<html>\n")
		case strings.Contains(line, "<mj-head>"):
			out.WriteString("<head>\n")
		case strings.Contains(line, "</mjml>"):
			out.WriteString("</html>\n")
		case strings.Contains(line, "</mj-head>"):
			out.WriteString("</head>\n")
		case strings.Contains(line, "<mj-style>"):
			style := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(line), "<mj-style>"), "</mj-style>")
			fmt.Fprintf(&out, "<style>%s</style>\n", style)
		case strings.Contains(line, "<mj-body"):
			out.WriteString(convertBody(line))
		case strings.Contains(line, "</mj-body>"):
			out.WriteString("</body>\n")
		default:
			converted, lineDiags := convertLine(line, i+1)
			out.WriteString(converted)
			diags = append(diags, lineDiags...)
		}
	}
	return out.String(), diags, nil
}

func convertBody(line string) string {
	body := strings.Replace(line, "<mj-body", "<body", 1)
	body = strings.Replace(body, " width=", " data-width=", 1)
	body = strings.Replace(body, " background-color=", " bgcolor=", 1)
	return strings.TrimLeft(body, " ") + "\n"
}

// convertLine rewrites the intermediate tags on one line. Unknown mj- tags are
// dropped from the output and surfaced as diagnostics.
func convertLine(line string, lineNo int) (string, []Diagnostic) {
	var diags []Diagnostic
	converted := line
	for _, match := range tagPattern.FindAllStringSubmatch(line, -1) {
		tag := match[1]
		if sub, ok := tagSubstitutions[tag]; ok {
			converted = strings.ReplaceAll(converted, "<"+tag, sub[0])
			converted = strings.ReplaceAll(converted, "</"+tag+">", sub[1])
			continue
		}
		switch tag {
		case "mj-image":
			converted = strings.ReplaceAll(converted, "<mj-image", "<img")
		case "mj-spacer":
			converted = strings.ReplaceAll(converted, "<mj-spacer", "<div")
			converted = strings.ReplaceAll(converted, " />", "></div>")
		case "mj-divider":
			converted = strings.ReplaceAll(converted, "<mj-divider", "<hr")
		case "mj-social-element":
			converted = strings.ReplaceAll(converted, "<mj-social-element", "<a")
			converted = strings.ReplaceAll(converted, " />", "></a>")
		default:
			diags = append(diags, Diagnostic{
				Line:    lineNo,
				Message: "unsupported element dropped from output",
				TagName: tag,
			})
			converted = ""
		}
	}
	if strings.TrimSpace(converted) == "" {
		return "", diags
	}
	return strings.TrimLeft(converted, " ") + "\n", diags
}
