package parser

import (
	"fmt"
	"strings"
)

// Positioned is implemented by every error in the syntax taxonomy. Use
// errors.As with a *Positioned target to get position information from
// any parse error without caring about its variant. DepthError is not
// part of the taxonomy and does not implement it.
type Positioned interface {
	error
	Pos() Position
	DetailedMessage() string
}

// SyntaxError is the base of every positioned parse error. Position is
// a 0-based offset into Source; Line and Column are 1-based. Source is
// the whole original text when available and enables DetailedMessage's
// context rendering.
type SyntaxError struct {
	Message  string
	Position int
	Line     int
	Column   int
	Source   string
}

func (e *SyntaxError) Error() string {
	return e.Message
}

func (e *SyntaxError) Pos() Position {
	return Position{Offset: e.Position, Line: e.Line, Column: e.Column}
}

// DetailedMessage renders the message together with the offending source
// line, a caret marking the column, and a position footer. Without a
// source it is just the message. Line numbers beyond the source render
// an empty context line rather than failing.
func (e *SyntaxError) DetailedMessage() string {
	if e.Source == "" {
		return e.Message
	}
	lines := strings.Split(e.Source, "\n")
	srcLine := ""
	if e.Line >= 1 && e.Line <= len(lines) {
		srcLine = lines[e.Line-1]
	}
	var sb strings.Builder
	sb.WriteString(e.Message)
	sb.WriteString("\n\n")
	sb.WriteString(srcLine)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", e.Column-1))
	sb.WriteString("^\n\n")
	fmt.Fprintf(&sb, "Position: line %d, column %d", e.Line, e.Column)
	return sb.String()
}

// InvalidTagError reports a well-formed tag whose name is not in the
// fixed vocabulary.
type InvalidTagError struct {
	SyntaxError
	TagName string
}

// UnclosedTagError reports an open tag with no matching closing tag
// before the end of input.
type UnclosedTagError struct {
	SyntaxError
	TagName string
}

// MismatchedTagError reports a closing tag whose name differs from the
// innermost open tag. Expected is "(none)" when no tag was open at all.
type MismatchedTagError struct {
	SyntaxError
	Expected string
	Actual   string
}

// MalformedTagError reports broken tag delimiter syntax: an empty name,
// non-letter characters in the name, and the like. Content is the
// offending slice.
type MalformedTagError struct {
	SyntaxError
	Content string
}

// UnexpectedEOFError reports input that ends in the middle of a
// construct. Context, when set, names what was being scanned.
type UnexpectedEOFError struct {
	SyntaxError
	Context string
}

// UnexpectedCharacterError reports a character that does not belong at
// its position, with an optional hint of what was expected.
type UnexpectedCharacterError struct {
	SyntaxError
	Character string
	Expected  string
}

// DepthError reports that parsing exceeded the configured nesting depth.
// It is a resource guard, not a syntax problem: it carries no position
// and is never collected by the validator.
type DepthError struct {
	MaxDepth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("maximum nesting depth exceeded (limit %d)", e.MaxDepth)
}

// errorPos is where an error occurred. Every constructor goes through
// one of the two builders below so all errors are positioned the same
// way, whether they come from the tokenizer, the tree builder, or the
// token-level validator.
type errorPos struct {
	source   string
	position int
	line     int
	column   int
}

func at(source string, position int) errorPos {
	line, column := LineColumn(source, position)
	return errorPos{source: source, position: position, line: line, column: column}
}

func atToken(tok Token) errorPos {
	return errorPos{position: tok.Start, line: tok.Line, column: tok.Column}
}

func (p errorPos) base(message string) SyntaxError {
	return SyntaxError{
		Message:  message,
		Position: p.position,
		Line:     p.line,
		Column:   p.column,
		Source:   p.source,
	}
}

func newInvalidTagError(pos errorPos, tagName string) *InvalidTagError {
	return &InvalidTagError{
		SyntaxError: pos.base(fmt.Sprintf("invalid tag name %q", tagName)),
		TagName:     tagName,
	}
}

func newUnclosedTagError(pos errorPos, tagName string) *UnclosedTagError {
	return &UnclosedTagError{
		SyntaxError: pos.base(fmt.Sprintf("unclosed tag <%s>: missing </%s>", tagName, tagName)),
		TagName:     tagName,
	}
}

func newMismatchedTagError(pos errorPos, expected, actual string) *MismatchedTagError {
	return &MismatchedTagError{
		SyntaxError: pos.base(fmt.Sprintf("mismatched closing tag: expected </%s>, got </%s>", expected, actual)),
		Expected:    expected,
		Actual:      actual,
	}
}

func newMalformedTagError(pos errorPos, content string) *MalformedTagError {
	return &MalformedTagError{
		SyntaxError: pos.base(fmt.Sprintf("malformed tag %q", content)),
		Content:     content,
	}
}

func newUnexpectedEOFError(pos errorPos, context string) *UnexpectedEOFError {
	message := "unexpected end of input"
	if context != "" {
		message += " while " + context
	}
	return &UnexpectedEOFError{
		SyntaxError: pos.base(message),
		Context:     context,
	}
}

func newUnexpectedCharacterError(pos errorPos, character, expected string) *UnexpectedCharacterError {
	message := fmt.Sprintf("unexpected character %q", character)
	if expected != "" {
		message += fmt.Sprintf(", expected %q", expected)
	}
	return &UnexpectedCharacterError{
		SyntaxError: pos.base(message),
		Character:   character,
		Expected:    expected,
	}
}
