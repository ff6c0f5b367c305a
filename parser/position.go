package parser

// Position is a location in the source text. Offset is 0-based, Line
// and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

// LineColumn maps a 0-based offset into source to a 1-based
// (line, column) pair. The scan runs from the start of the source up to
// min(index, len(source)), so offsets past the end of the source clamp
// to the position just after the last character. O(index), which is fine
// because it is only called at token boundaries.
func LineColumn(source string, index int) (line, column int) {
	line, column = 1, 1
	limit := index
	if limit > len(source) {
		limit = len(source)
	}
	for i := 0; i < limit; i++ {
		if source[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
