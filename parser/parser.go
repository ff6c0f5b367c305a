package parser

import "github.com/dhamidi/taml/ast"

// DefaultMaxDepth caps element nesting unless overridden with
// WithMaxDepth.
const DefaultMaxDepth = 100

type Option func(*Parser)

// WithMaxDepth sets the maximum element nesting depth. Exceeding it
// aborts the parse with a DepthError.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// WithoutPositions zeroes the Start/End fields of every node in the
// returned tree. The tree is built with positions first and stripped in
// a post-pass.
func WithoutPositions() Option {
	return func(p *Parser) {
		p.includePositions = false
	}
}

type stackEntry struct {
	tagName string
	token   Token
}

// Parser builds a document tree from a token sequence, enforcing proper
// nesting with an explicit tag stack and depth counter. It is fail-fast:
// the first fault aborts the call with no partial tree.
type Parser struct {
	source           string
	maxDepth         int
	includePositions bool
	tokens           []Token
	pos              int
	stack            []stackEntry
}

// Parse tokenizes source and builds its document tree.
func Parse(source string, opts ...Option) (*ast.Node, error) {
	p := &Parser{
		source:           source,
		maxDepth:         DefaultMaxDepth,
		includePositions: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p.parse()
}

// MustParse is Parse but panics on error.
func MustParse(source string, opts ...Option) *ast.Node {
	node, err := Parse(source, opts...)
	if err != nil {
		panic(err)
	}
	return node
}

func (p *Parser) parse() (*ast.Node, error) {
	tokens, err := Tokenize(p.source)
	if err != nil {
		return nil, err
	}
	p.tokens = tokens

	children, err := p.parseChildren(0)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind == TokenCloseTag {
		return nil, newMismatchedTagError(at(p.source, tok.Start), "(none)", tok.TagName)
	}
	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		return nil, newUnclosedTagError(at(p.source, top.token.Start), top.tagName)
	}

	doc := ast.NewDocument(children, 0, len(p.source))
	if !p.includePositions {
		stripPositions(doc)
	}
	return doc, nil
}

// parseChildren consumes tokens until a CloseTag or the End token,
// which is left for the caller to inspect.
func (p *Parser) parseChildren(depth int) ([]*ast.Node, error) {
	if depth > p.maxDepth {
		return nil, &DepthError{MaxDepth: p.maxDepth}
	}
	var children []*ast.Node
	for {
		tok := p.peek()
		switch tok.Kind {
		case TokenEnd, TokenCloseTag:
			return children, nil
		case TokenText:
			p.advance()
			children = append(children, ast.NewText(tok.Content, tok.Start, tok.End))
		case TokenOpenTag:
			node, err := p.parseElement(depth)
			if err != nil {
				return nil, err
			}
			children = append(children, node)
		}
	}
}

// parseElement consumes an open tag, its children, and the matching
// close tag. A mismatch is always reported against the innermost open
// tag, never one further up the stack.
func (p *Parser) parseElement(depth int) (*ast.Node, error) {
	open := p.advance()
	p.stack = append(p.stack, stackEntry{tagName: open.TagName, token: open})

	children, err := p.parseChildren(depth + 1)
	if err != nil {
		return nil, err
	}

	closer := p.peek()
	if closer.Kind != TokenCloseTag {
		return nil, newUnclosedTagError(at(p.source, open.Start), open.TagName)
	}
	if closer.TagName != open.TagName {
		return nil, newMismatchedTagError(at(p.source, closer.Start), open.TagName, closer.TagName)
	}
	p.advance()
	p.stack = p.stack[:len(p.stack)-1]

	return ast.NewElement(open.TagName, children, open.Start, closer.End), nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEnd}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func stripPositions(n *ast.Node) {
	ast.Walk(n, func(node *ast.Node) bool {
		node.Start, node.End = 0, 0
		return true
	})
}
