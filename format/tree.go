package format

import (
	"io"

	"github.com/dhamidi/taml/ast"
)

// TreeEncoder writes the indented textual dump of a tree, one node per
// line, optionally with the [start-end] span of each node.
type TreeEncoder struct {
	w             io.Writer
	showPositions bool
}

func NewTreeEncoder(w io.Writer, showPositions bool) *TreeEncoder {
	return &TreeEncoder{w: w, showPositions: showPositions}
}

func (e *TreeEncoder) Encode(node *ast.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText(node *ast.Node) ([]byte, error) {
	if e.showPositions {
		return []byte(node.StringWithPositions()), nil
	}
	return []byte(node.String()), nil
}
