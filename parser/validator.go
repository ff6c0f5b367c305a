package parser

import "github.com/dhamidi/taml/ast"

// ValidationResult is the outcome of a validation pass.
type ValidationResult struct {
	Valid  bool
	Errors []error
}

// ValidateSyntax parses source purely to validate it, discarding any
// built tree. It is fail-fast, so it reports at most one error: the
// first fault. For an accumulating report over all structural problems,
// tokenize and use ValidateTokens.
func ValidateSyntax(source string) ValidationResult {
	if _, err := Parse(source); err != nil {
		return ValidationResult{Errors: []error{err}}
	}
	return ValidationResult{Valid: true}
}

// ValidateTokens checks the structure of a token sequence in a single
// linear pass, accumulating every problem instead of stopping at the
// first. Unknown tag names never touch the stack.
//
// A mismatched closing tag does not pop the stack and no
// resynchronization is attempted: the open tag stays behind and is
// additionally reported as unclosed at the end of the stream. This
// pass-through behavior is intentional and kept for compatibility.
func ValidateTokens(tokens []Token) ValidationResult {
	var errs []error
	var stack []stackEntry

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenOpenTag:
			if !ast.IsValidTag(tok.TagName) {
				errs = append(errs, newInvalidTagError(atToken(tok), tok.TagName))
				continue
			}
			stack = append(stack, stackEntry{tagName: tok.TagName, token: tok})
		case TokenCloseTag:
			if !ast.IsValidTag(tok.TagName) {
				errs = append(errs, newInvalidTagError(atToken(tok), tok.TagName))
				continue
			}
			if len(stack) == 0 {
				errs = append(errs, newMismatchedTagError(atToken(tok), "(none)", tok.TagName))
				continue
			}
			top := stack[len(stack)-1]
			if top.tagName != tok.TagName {
				errs = append(errs, newMismatchedTagError(atToken(tok), top.tagName, tok.TagName))
				continue
			}
			stack = stack[:len(stack)-1]
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		errs = append(errs, newUnclosedTagError(atToken(stack[i].token), stack[i].tagName))
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// NestingResult reports nesting validity plus the raw tag names
// involved, without position detail.
type NestingResult struct {
	Valid          bool
	UnclosedTags   []string
	MismatchedTags []string
}

// CheckNesting is a lightweight view over the same rules as
// ValidateTokens: it reports which tag names were left unclosed and
// which closing tags failed to match, nothing more. Unknown names are
// ignored entirely.
func CheckNesting(tokens []Token) NestingResult {
	var stack []string
	var mismatched []string

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenOpenTag:
			if ast.IsValidTag(tok.TagName) {
				stack = append(stack, tok.TagName)
			}
		case TokenCloseTag:
			if !ast.IsValidTag(tok.TagName) {
				continue
			}
			if len(stack) > 0 && stack[len(stack)-1] == tok.TagName {
				stack = stack[:len(stack)-1]
			} else {
				mismatched = append(mismatched, tok.TagName)
			}
		}
	}

	var unclosed []string
	for i := len(stack) - 1; i >= 0; i-- {
		unclosed = append(unclosed, stack[i])
	}

	return NestingResult{
		Valid:          len(unclosed) == 0 && len(mismatched) == 0,
		UnclosedTags:   unclosed,
		MismatchedTags: mismatched,
	}
}

// ClosureKind tags a closure issue reported by CheckClosure.
type ClosureKind string

const (
	ClosureUnclosed   ClosureKind = "unclosed"
	ClosureExtra      ClosureKind = "extra"
	ClosureMismatched ClosureKind = "mismatched"
)

// ClosureIssue is a closure problem with its position but without a
// full error value.
type ClosureIssue struct {
	Kind     ClosureKind
	TagName  string
	Position int
}

// CheckClosure reports closure-only issues tagged by kind, for callers
// that want positions but not the full error taxonomy. It applies the
// same no-pop-on-mismatch rule as ValidateTokens.
func CheckClosure(tokens []Token) []ClosureIssue {
	var issues []ClosureIssue
	var stack []stackEntry

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenOpenTag:
			if ast.IsValidTag(tok.TagName) {
				stack = append(stack, stackEntry{tagName: tok.TagName, token: tok})
			}
		case TokenCloseTag:
			if !ast.IsValidTag(tok.TagName) {
				continue
			}
			if len(stack) == 0 {
				issues = append(issues, ClosureIssue{Kind: ClosureExtra, TagName: tok.TagName, Position: tok.Start})
				continue
			}
			if stack[len(stack)-1].tagName != tok.TagName {
				issues = append(issues, ClosureIssue{Kind: ClosureMismatched, TagName: tok.TagName, Position: tok.Start})
				continue
			}
			stack = stack[:len(stack)-1]
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		issues = append(issues, ClosureIssue{Kind: ClosureUnclosed, TagName: stack[i].tagName, Position: stack[i].token.Start})
	}

	return issues
}
