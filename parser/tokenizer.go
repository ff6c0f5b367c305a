package parser

import (
	"strings"

	"github.com/dhamidi/taml/ast"
)

// Tokenizer scans TAML source in a single forward pass, producing a
// flat token sequence terminated by exactly one End token. Errors are
// fatal to the whole call: no partial token list is returned.
type Tokenizer struct {
	source string
	pos    int
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{source: source}
}

// Position reports the current scan offset with its line and column.
func (t *Tokenizer) Position() Position {
	line, column := LineColumn(t.source, t.pos)
	return Position{Offset: t.pos, Line: line, Column: column}
}

// Tokenize scans the entire source.
func Tokenize(source string) ([]Token, error) {
	return NewTokenizer(source).Tokenize()
}

func (t *Tokenizer) Tokenize() ([]Token, error) {
	var tokens []Token
	for t.pos < len(t.source) {
		var tok Token
		var err error
		if t.source[t.pos] == '<' {
			tok, err = t.scanTag()
		} else {
			tok = t.scanText()
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	line, column := LineColumn(t.source, len(t.source))
	tokens = append(tokens, Token{
		Kind:   TokenEnd,
		Start:  len(t.source),
		End:    len(t.source),
		Line:   line,
		Column: column,
	})
	return tokens, nil
}

// scanTag consumes "<", an optional "/", a candidate name, and ">".
// The candidate name is the maximal run of characters before ">" or end
// of input; its checks apply in order: empty name, non-letter
// characters, missing ">", unknown name.
func (t *Tokenizer) scanTag() (Token, error) {
	start := t.pos
	t.pos++
	closing := false
	if t.pos < len(t.source) && t.source[t.pos] == '/' {
		closing = true
		t.pos++
	}
	nameStart := t.pos
	for t.pos < len(t.source) && t.source[t.pos] != '>' {
		t.pos++
	}
	name := t.source[nameStart:t.pos]
	terminated := t.pos < len(t.source)
	if terminated {
		t.pos++
	}
	value := t.source[start:t.pos]

	if name == "" {
		return Token{}, newMalformedTagError(at(t.source, start), value)
	}
	if !isTagName(name) {
		return Token{}, newMalformedTagError(at(t.source, start), value)
	}
	if !terminated {
		return Token{}, newUnexpectedEOFError(at(t.source, start), "parsing tag")
	}
	if !ast.IsValidTag(name) {
		return Token{}, newInvalidTagError(at(t.source, start), name)
	}

	kind := TokenOpenTag
	if closing {
		kind = TokenCloseTag
	}
	line, column := LineColumn(t.source, start)
	return Token{
		Kind:    kind,
		TagName: name,
		Value:   value,
		Start:   start,
		End:     t.pos,
		Line:    line,
		Column:  column,
	}, nil
}

// scanText consumes the maximal run of characters up to the next "<" or
// end of input. Exactly two entities decode, by direct prefix match:
// "&lt;" and "&amp;". Every other "&", including incomplete entities,
// is copied literally.
func (t *Tokenizer) scanText() Token {
	start := t.pos
	var content strings.Builder
	for t.pos < len(t.source) && t.source[t.pos] != '<' {
		if t.source[t.pos] == '&' {
			if strings.HasPrefix(t.source[t.pos:], "&lt;") {
				content.WriteByte('<')
				t.pos += len("&lt;")
				continue
			}
			if strings.HasPrefix(t.source[t.pos:], "&amp;") {
				content.WriteByte('&')
				t.pos += len("&amp;")
				continue
			}
		}
		content.WriteByte(t.source[t.pos])
		t.pos++
	}
	line, column := LineColumn(t.source, start)
	return Token{
		Kind:    TokenText,
		Content: content.String(),
		Value:   t.source[start:t.pos],
		Start:   start,
		End:     t.pos,
		Line:    line,
		Column:  column,
	}
}

// isTagName reports whether name is one or more ASCII letters. Digits,
// hyphens, underscores, and spaces disqualify the name as malformed
// before the vocabulary check even runs.
func isTagName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if !((ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')) {
			return false
		}
	}
	return true
}
