package ui

import (
	"strings"
	"testing"

	"github.com/dhamidi/taml/parser"
)

func TestHTMLPreview(t *testing.T) {
	doc, err := parser.Parse("<red>Hello <bold>world</bold></red>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := string(HTML(doc))
	if !strings.Contains(got, `<span style="color: #cd3131">`) {
		t.Errorf("HTML() = %q, missing red span", got)
	}
	if !strings.Contains(got, `<span style="font-weight: bold">world</span>`) {
		t.Errorf("HTML() = %q, missing bold span", got)
	}
	if strings.Count(got, "</span>") != 2 {
		t.Errorf("HTML() = %q, want two closed spans", got)
	}
}

func TestHTMLEscapesText(t *testing.T) {
	doc, err := parser.Parse("<green>5 &lt; 10 &amp; x</green>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := string(HTML(doc))
	if !strings.Contains(got, "5 &lt; 10 &amp; x") {
		t.Errorf("HTML() = %q, text content must be re-escaped", got)
	}
}

func TestCSSFor(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"blue", "color: #2472c8"},
		{"brightGreen", "color: #23d18b"},
		{"bgRed", "background-color: #cd3131"},
		{"bgBrightYellow", "background-color: #f5f543"},
		{"underline", "text-decoration: underline"},
		{"nope", ""},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := cssFor(tt.tag); got != tt.want {
				t.Errorf("cssFor(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}
