package parser

type TokenKind int

const (
	TokenOpenTag TokenKind = iota
	TokenCloseTag
	TokenText
	TokenEnd
)

var tokenKindNames = map[TokenKind]string{
	TokenOpenTag:  "OpenTag",
	TokenCloseTag: "CloseTag",
	TokenText:     "Text",
	TokenEnd:      "End",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is one classified, positioned fragment of source.
//
// TagName is set for OpenTag and CloseTag. Content is set for Text and
// holds the decoded text; Value always holds the raw source slice.
// Start < End for every kind except End, whose Start and End both equal
// len(source). Line and Column are computed at Start.
type Token struct {
	Kind    TokenKind
	TagName string
	Content string
	Value   string
	Start   int
	End     int
	Line    int
	Column  int
}
