package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/taml/ast"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node *ast.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(node *ast.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	TagName  string         `json:"tagName,omitempty"`
	Content  string         `json:"content,omitempty"`
	Start    int            `json:"start"`
	End      int            `json:"end"`
	Children []*astJSONNode `json:"children,omitempty"`
}

func nodeToJSON(n *ast.Node) *astJSONNode {
	jn := &astJSONNode{
		Kind:    n.Kind.String(),
		TagName: n.TagName,
		Content: n.Content,
		Start:   n.Start,
		End:     n.End,
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*astJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}

	return jn
}
