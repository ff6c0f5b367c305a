package parser

import (
	"errors"
	"testing"
)

func mustTokenize(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := Tokenize(source)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", source, err)
	}
	return tokens
}

func TestValidateTokensValid(t *testing.T) {
	tests := []string{
		"",
		"plain text",
		"<red>ok</red>",
		"<red><bold>nested</bold></red>",
		"<red>a</red><blue>b</blue>",
	}

	for _, source := range tests {
		t.Run(source, func(t *testing.T) {
			result := ValidateTokens(mustTokenize(t, source))
			if !result.Valid {
				t.Errorf("Valid = false, errors: %v", result.Errors)
			}
			if len(result.Errors) != 0 {
				t.Errorf("len(Errors) = %d, want 0", len(result.Errors))
			}
		})
	}
}

func TestValidateTokensMismatchDoesNotPop(t *testing.T) {
	// The open tag survives the mismatch and is reported as unclosed
	// too. No resynchronization is attempted.
	result := ValidateTokens(mustTokenize(t, "<red>text</blue>"))
	if result.Valid {
		t.Fatal("Valid = true, want false")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2: %v", len(result.Errors), result.Errors)
	}

	var mismatched *MismatchedTagError
	if !errors.As(result.Errors[0], &mismatched) {
		t.Fatalf("Errors[0] = %T, want MismatchedTagError", result.Errors[0])
	}
	if mismatched.Expected != "red" || mismatched.Actual != "blue" {
		t.Errorf("Expected/Actual = %q/%q, want red/blue", mismatched.Expected, mismatched.Actual)
	}

	var unclosed *UnclosedTagError
	if !errors.As(result.Errors[1], &unclosed) {
		t.Fatalf("Errors[1] = %T, want UnclosedTagError", result.Errors[1])
	}
	if unclosed.TagName != "red" {
		t.Errorf("TagName = %q, want %q", unclosed.TagName, "red")
	}
}

func TestValidateTokensExtraClosingTag(t *testing.T) {
	result := ValidateTokens(mustTokenize(t, "text</red>"))
	if len(result.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1: %v", len(result.Errors), result.Errors)
	}
	var mismatched *MismatchedTagError
	if !errors.As(result.Errors[0], &mismatched) {
		t.Fatalf("Errors[0] = %T, want MismatchedTagError", result.Errors[0])
	}
	if mismatched.Expected != "(none)" || mismatched.Actual != "red" {
		t.Errorf("Expected/Actual = %q/%q, want (none)/red", mismatched.Expected, mismatched.Actual)
	}
}

func TestValidateTokensUnknownNames(t *testing.T) {
	// Hand-built tokens: the tokenizer itself would reject these names.
	tokens := []Token{
		{Kind: TokenOpenTag, TagName: "shiny", Start: 0, End: 7, Line: 1, Column: 1},
		{Kind: TokenText, Content: "x", Start: 7, End: 8, Line: 1, Column: 8},
		{Kind: TokenCloseTag, TagName: "shiny", Start: 8, End: 16, Line: 1, Column: 9},
		{Kind: TokenEnd, Start: 16, End: 16, Line: 1, Column: 17},
	}
	result := ValidateTokens(tokens)
	if len(result.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2 invalid-tag errors: %v", len(result.Errors), result.Errors)
	}
	for i, err := range result.Errors {
		var invalid *InvalidTagError
		if !errors.As(err, &invalid) {
			t.Errorf("Errors[%d] = %T, want InvalidTagError", i, err)
			continue
		}
		if invalid.TagName != "shiny" {
			t.Errorf("Errors[%d].TagName = %q, want %q", i, invalid.TagName, "shiny")
		}
	}
}

func TestValidateTokensAccumulates(t *testing.T) {
	result := ValidateTokens(mustTokenize(t, "</red><blue>a</bold><green>"))
	// extra </red>, mismatched </bold>, then blue and green unclosed
	if len(result.Errors) != 4 {
		t.Fatalf("len(Errors) = %d, want 4: %v", len(result.Errors), result.Errors)
	}

	var unclosedNames []string
	for _, err := range result.Errors {
		var unclosed *UnclosedTagError
		if errors.As(err, &unclosed) {
			unclosedNames = append(unclosedNames, unclosed.TagName)
		}
	}
	// innermost first
	if len(unclosedNames) != 2 || unclosedNames[0] != "green" || unclosedNames[1] != "blue" {
		t.Errorf("unclosed = %v, want [green blue]", unclosedNames)
	}
}

func TestValidateSyntax(t *testing.T) {
	valid := ValidateSyntax("<red>ok</red>")
	if !valid.Valid || len(valid.Errors) != 0 {
		t.Errorf("ValidateSyntax(valid) = %+v", valid)
	}

	invalid := ValidateSyntax("<red>a</blue><green>b")
	if invalid.Valid {
		t.Error("Valid = true, want false")
	}
	if len(invalid.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want exactly the first fault", len(invalid.Errors))
	}
	var mismatched *MismatchedTagError
	if !errors.As(invalid.Errors[0], &mismatched) {
		t.Errorf("Errors[0] = %T, want MismatchedTagError", invalid.Errors[0])
	}
}

func TestCheckNesting(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		valid      bool
		unclosed   []string
		mismatched []string
	}{
		{"valid", "<red><bold>x</bold></red>", true, nil, nil},
		{"unclosed", "<red><bold>x</bold>", false, []string{"red"}, nil},
		{"mismatched", "<red>x</blue>", false, []string{"red"}, []string{"blue"}},
		{"extra close", "x</red>", false, nil, []string{"red"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckNesting(mustTokenize(t, tt.source))
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v", result.Valid, tt.valid)
			}
			if !equalStrings(result.UnclosedTags, tt.unclosed) {
				t.Errorf("UnclosedTags = %v, want %v", result.UnclosedTags, tt.unclosed)
			}
			if !equalStrings(result.MismatchedTags, tt.mismatched) {
				t.Errorf("MismatchedTags = %v, want %v", result.MismatchedTags, tt.mismatched)
			}
		})
	}
}

func TestCheckClosure(t *testing.T) {
	issues := CheckClosure(mustTokenize(t, "</red><blue>a</bold>"))
	want := []ClosureIssue{
		{Kind: ClosureExtra, TagName: "red", Position: 0},
		{Kind: ClosureMismatched, TagName: "bold", Position: 13},
		{Kind: ClosureUnclosed, TagName: "blue", Position: 6},
	}
	if len(issues) != len(want) {
		t.Fatalf("len(issues) = %d, want %d: %v", len(issues), len(want), issues)
	}
	for i := range want {
		if issues[i] != want[i] {
			t.Errorf("issues[%d] = %+v, want %+v", i, issues[i], want[i])
		}
	}
}

func TestCheckClosureClean(t *testing.T) {
	if issues := CheckClosure(mustTokenize(t, "<red>x</red>")); len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
