package parser

import "testing"

func TestLineColumn(t *testing.T) {
	tests := []struct {
		name   string
		source string
		index  int
		line   int
		column int
	}{
		{"empty source at zero", "", 0, 1, 1},
		{"start of source", "hello", 0, 1, 1},
		{"middle of first line", "hello", 3, 1, 4},
		{"end of first line", "hello", 5, 1, 6},
		{"after newline", "ab\ncd", 3, 2, 1},
		{"middle of second line", "ab\ncd", 4, 2, 2},
		{"newline itself", "ab\ncd", 2, 1, 3},
		{"several lines", "a\nb\nc\nd", 6, 4, 1},
		{"beyond source length clamps", "ab", 10, 1, 3},
		{"beyond multiline source clamps", "ab\ncd", 99, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, column := LineColumn(tt.source, tt.index)
			if line != tt.line {
				t.Errorf("line = %d, want %d", line, tt.line)
			}
			if column != tt.column {
				t.Errorf("column = %d, want %d", column, tt.column)
			}
		})
	}
}
