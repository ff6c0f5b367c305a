package lsp

import (
	"errors"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/taml/ast"
	"github.com/dhamidi/taml/parser"
)

const lsName = "taml"

// Server is a stdio language server that publishes TAML diagnostics.
// Structural diagnostics come from the accumulating validator; a
// lexical fault produces a single diagnostic, since tokenizing is
// fail-fast.
type Server struct {
	handler   protocol.Handler
	server    *server.Server
	version   string
	documents map[string]string
}

func NewServer(version string) *Server {
	s := &Server{
		version:   version,
		documents: make(map[string]string),
	}

	s.handler = protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.textDocumentDidOpen,
		TextDocumentDidChange:  s.textDocumentDidChange,
		TextDocumentDidClose:   s.textDocumentDidClose,
		TextDocumentCompletion: s.textDocumentCompletion,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}

	triggerChars := []string{"<"}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: triggerChars,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.documents[uri] = params.TextDocument.Text
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.documents[uri] = textChange.Text
		}
	}
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	delete(s.documents, params.TextDocument.URI)
	return nil
}

func (s *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	text, ok := s.documents[params.TextDocument.URI]
	if !ok {
		return nil, nil
	}

	line := int(params.Position.Line)
	col := int(params.Position.Character)
	if !afterTagOpener(text, line, col) {
		return nil, nil
	}

	var items []protocol.CompletionItem
	kind := protocol.CompletionItemKindKeyword
	for _, tag := range ast.Tags() {
		group, _ := ast.GroupOf(tag)
		detail := group.String()
		items = append(items, protocol.CompletionItem{
			Label:  tag,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	return items, nil
}

// afterTagOpener reports whether the character just before the cursor
// is "<", the completion trigger. line and col are 0-based per LSP.
func afterTagOpener(text string, line, col int) bool {
	lines := strings.Split(text, "\n")
	if line < 0 || line >= len(lines) {
		return false
	}
	lineContent := lines[line]
	return col >= 1 && col-1 < len(lineContent) && lineContent[col-1] == '<'
}

func (s *Server) publishDiagnostics(ctx *glsp.Context, uri string) {
	text := s.documents[uri]
	diagnostics := Diagnose(text)
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// Diagnose converts every fault in text into an LSP diagnostic.
func Diagnose(text string) []protocol.Diagnostic {
	tokens, err := parser.Tokenize(text)
	if err != nil {
		return []protocol.Diagnostic{toDiagnostic(err)}
	}

	result := parser.ValidateTokens(tokens)
	var diagnostics []protocol.Diagnostic
	for _, verr := range result.Errors {
		diagnostics = append(diagnostics, toDiagnostic(verr))
	}
	return diagnostics
}

func toDiagnostic(err error) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName

	var start protocol.Position
	var positioned parser.Positioned
	if errors.As(err, &positioned) {
		pos := positioned.Pos()
		start = protocol.Position{
			Line:      protocol.UInteger(pos.Line - 1),
			Character: protocol.UInteger(pos.Column - 1),
		}
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: start,
			End:   protocol.Position{Line: start.Line, Character: start.Character + 1},
		},
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
