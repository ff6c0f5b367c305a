package ui

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/dhamidi/taml/format"
	"github.com/dhamidi/taml/parser"
)

//go:embed templates
var embeddedFS embed.FS

// Server is a local playground: paste TAML, get back the parsed tree,
// diagnostics, and an HTML preview.
type Server struct {
	templates *template.Template
	mux       *http.ServeMux
}

func NewServer() (*Server, error) {
	tmpl, err := template.New("").ParseFS(mustSub(embeddedFS, "templates"), "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /parse", s.handleParse)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.templates.ExecuteTemplate(w, "index.html", nil)
}

type parseResponse struct {
	Tree    json.RawMessage `json:"tree,omitempty"`
	Errors  []parseError    `json:"errors,omitempty"`
	Preview string          `json:"preview,omitempty"`
}

type parseError struct {
	Message  string `json:"message"`
	Detailed string `json:"detailed,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
		return
	}
	source := r.FormValue("source")

	var resp parseResponse
	node, err := parser.Parse(source)
	if err != nil {
		resp.Errors = collectErrors(source, err)
	} else {
		var buf bytes.Buffer
		if encErr := format.NewASTJSONEncoder(&buf).Encode(node); encErr != nil {
			http.Error(w, "encode tree: "+encErr.Error(), http.StatusInternalServerError)
			return
		}
		resp.Tree = buf.Bytes()
		resp.Preview = string(HTML(node))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// collectErrors reports every structural problem when the tokens are
// clean, or the single lexical fault otherwise.
func collectErrors(source string, parseErr error) []parseError {
	tokens, err := parser.Tokenize(source)
	if err != nil {
		return []parseError{toParseError(parseErr)}
	}
	result := parser.ValidateTokens(tokens)
	if len(result.Errors) == 0 {
		return []parseError{toParseError(parseErr)}
	}
	out := make([]parseError, len(result.Errors))
	for i, verr := range result.Errors {
		out[i] = toParseError(verr)
	}
	return out
}

func toParseError(err error) parseError {
	pe := parseError{Message: err.Error()}
	if positioned, ok := err.(parser.Positioned); ok {
		pos := positioned.Pos()
		pe.Detailed = positioned.DetailedMessage()
		pe.Line = pos.Line
		pe.Column = pos.Column
	}
	return pe
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
