package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dhamidi/taml/ast"
)

// ansiIndex maps a base color name to its ANSI palette index 0-7.
// Bright variants add 8.
var ansiIndex = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// StyleFor returns the lipgloss style a tag name selects. Unknown names
// map to the empty style.
func StyleFor(tag string) lipgloss.Style {
	style := lipgloss.NewStyle()
	group, ok := ast.GroupOf(tag)
	if !ok {
		return style
	}

	switch group {
	case ast.GroupColor:
		return style.Foreground(ansiColor(tag, "", 0))
	case ast.GroupBrightColor:
		return style.Foreground(ansiColor(tag, "bright", 8))
	case ast.GroupBackground:
		return style.Background(ansiColor(tag, "bg", 0))
	case ast.GroupBrightBackground:
		return style.Background(ansiColor(tag, "bgBright", 8))
	case ast.GroupStyle:
		switch tag {
		case "bold":
			return style.Bold(true)
		case "dim":
			return style.Faint(true)
		case "italic":
			return style.Italic(true)
		case "underline":
			return style.Underline(true)
		case "strikethrough":
			return style.Strikethrough(true)
		}
	}
	return style
}

func ansiColor(tag, prefix string, offset int) lipgloss.Color {
	name := strings.TrimPrefix(tag, prefix)
	name = strings.ToLower(name[:1]) + name[1:]
	return lipgloss.Color(strconv.Itoa(ansiIndex[name] + offset))
}

// Render converts a parsed tree into styled terminal output. Element
// styling applies to the fully rendered content of its children, so
// nested elements compose.
func Render(node *ast.Node) string {
	var sb strings.Builder
	renderNode(node, &sb)
	return sb.String()
}

func renderNode(n *ast.Node, sb *strings.Builder) {
	switch n.Kind {
	case ast.KindText:
		sb.WriteString(n.Content)
	case ast.KindElement:
		var inner strings.Builder
		for _, child := range n.Children {
			renderNode(child, &inner)
		}
		sb.WriteString(StyleFor(n.TagName).Render(inner.String()))
	case ast.KindDocument:
		for _, child := range n.Children {
			renderNode(child, sb)
		}
	}
}
