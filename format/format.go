package format

import (
	"encoding"

	"github.com/dhamidi/taml/ast"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(node *ast.Node) error
}
