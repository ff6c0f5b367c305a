package ast

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KindDocument Kind = iota
	KindElement
	KindText
)

var kindNames = map[Kind]string{
	KindDocument: "Document",
	KindElement:  "Element",
	KindText:     "Text",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is a single tree node. Document and Element nodes own their
// children exclusively; a built tree has no sharing and no back-references.
type Node struct {
	Kind     Kind
	TagName  string
	Content  string
	Start    int
	End      int
	Children []*Node
}

func NewDocument(children []*Node, start, end int) *Node {
	return &Node{
		Kind:     KindDocument,
		Start:    start,
		End:      end,
		Children: children,
	}
}

func NewElement(tagName string, children []*Node, start, end int) *Node {
	return &Node{
		Kind:     KindElement,
		TagName:  tagName,
		Start:    start,
		End:      end,
		Children: children,
	}
}

func NewText(content string, start, end int) *Node {
	return &Node{
		Kind:    KindText,
		Content: content,
		Start:   start,
		End:     end,
	}
}

func IsDocument(n *Node) bool {
	return n != nil && n.Kind == KindDocument
}

func IsElement(n *Node) bool {
	return n != nil && n.Kind == KindElement
}

func IsText(n *Node) bool {
	return n != nil && n.Kind == KindText
}

// Walk visits n and its descendants in depth-first order. If visit
// returns false for a node, its children are skipped.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, visit)
	}
}

// AllText concatenates the content of every text node under n, in
// document order. Entities are already decoded by the tokenizer, so for
// a well-formed parse this equals the source with all tags removed.
func (n *Node) AllText() string {
	var sb strings.Builder
	Walk(n, func(node *Node) bool {
		if node.Kind == KindText {
			sb.WriteString(node.Content)
		}
		return true
	})
	return sb.String()
}

func (n *Node) String() string {
	return n.stringIndent(0, false)
}

func (n *Node) StringWithPositions() string {
	return n.stringIndent(0, true)
}

func (n *Node) stringIndent(indent int, showPositions bool) string {
	prefix := strings.Repeat("  ", indent)

	result := prefix + n.Kind.String()
	if n.TagName != "" {
		result += " " + n.TagName
	}
	if n.Kind == KindText {
		result += " " + strconv.Quote(n.Content)
	}
	if showPositions {
		result += " [" + strconv.Itoa(n.Start) + "-" + strconv.Itoa(n.End) + "]"
	}
	result += "\n"

	for _, child := range n.Children {
		result += child.stringIndent(indent+1, showPositions)
	}
	return result
}
