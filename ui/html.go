package ui

import (
	"html/template"
	"strings"

	"github.com/dhamidi/taml/ast"
)

// palette holds the 16 ANSI colors as hex values (the VS Code default
// terminal theme).
var palette = map[string]string{
	"black":   "#000000",
	"red":     "#cd3131",
	"green":   "#0dbc79",
	"yellow":  "#e5e510",
	"blue":    "#2472c8",
	"magenta": "#bc3fbc",
	"cyan":    "#11a8cd",
	"white":   "#e5e5e5",

	"brightBlack":   "#666666",
	"brightRed":     "#f14c4c",
	"brightGreen":   "#23d18b",
	"brightYellow":  "#f5f543",
	"brightBlue":    "#3b8eea",
	"brightMagenta": "#d670d6",
	"brightCyan":    "#29b8db",
	"brightWhite":   "#ffffff",
}

var styleCSS = map[string]string{
	"bold":          "font-weight: bold",
	"dim":           "opacity: 0.6",
	"italic":        "font-style: italic",
	"underline":     "text-decoration: underline",
	"strikethrough": "text-decoration: line-through",
}

// cssFor returns the inline CSS declaration a tag name selects, or ""
// for unknown names.
func cssFor(tag string) string {
	group, ok := ast.GroupOf(tag)
	if !ok {
		return ""
	}
	switch group {
	case ast.GroupColor, ast.GroupBrightColor:
		return "color: " + palette[tag]
	case ast.GroupBackground:
		return "background-color: " + palette[colorKey(tag, "bg")]
	case ast.GroupBrightBackground:
		return "background-color: " + palette["bright"+strings.TrimPrefix(tag, "bgBright")]
	case ast.GroupStyle:
		return styleCSS[tag]
	}
	return ""
}

func colorKey(tag, prefix string) string {
	name := strings.TrimPrefix(tag, prefix)
	return strings.ToLower(name[:1]) + name[1:]
}

// HTML renders a parsed tree as nested spans with inline styles. Text
// content is escaped.
func HTML(node *ast.Node) template.HTML {
	var sb strings.Builder
	writeHTML(node, &sb)
	return template.HTML(sb.String())
}

func writeHTML(n *ast.Node, sb *strings.Builder) {
	switch n.Kind {
	case ast.KindText:
		sb.WriteString(template.HTMLEscapeString(n.Content))
	case ast.KindElement:
		sb.WriteString(`<span style="` + cssFor(n.TagName) + `">`)
		for _, child := range n.Children {
			writeHTML(child, sb)
		}
		sb.WriteString("</span>")
	case ast.KindDocument:
		for _, child := range n.Children {
			writeHTML(child, sb)
		}
	}
}
