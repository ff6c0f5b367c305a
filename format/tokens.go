package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/taml/parser"
)

// TokensJSONEncoder writes a token sequence as a JSON array, for the
// standalone tokenizer surface.
type TokensJSONEncoder struct {
	w io.Writer
}

func NewTokensJSONEncoder(w io.Writer) *TokensJSONEncoder {
	return &TokensJSONEncoder{w: w}
}

func (e *TokensJSONEncoder) Encode(tokens []parser.Token) error {
	text, err := e.MarshalText(tokens)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TokensJSONEncoder) MarshalText(tokens []parser.Token) ([]byte, error) {
	out := make([]tokenJSON, len(tokens))
	for i, tok := range tokens {
		out[i] = tokenJSON{
			Kind:    tok.Kind.String(),
			TagName: tok.TagName,
			Content: tok.Content,
			Value:   tok.Value,
			Start:   tok.Start,
			End:     tok.End,
			Line:    tok.Line,
			Column:  tok.Column,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

type tokenJSON struct {
	Kind    string `json:"kind"`
	TagName string `json:"tagName,omitempty"`
	Content string `json:"content,omitempty"`
	Value   string `json:"value,omitempty"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}
