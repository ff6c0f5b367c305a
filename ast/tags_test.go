package ast

import "testing"

func TestTagsCount(t *testing.T) {
	if got := len(Tags()); got != 37 {
		t.Errorf("len(Tags()) = %d, want 37", got)
	}
}

func TestTagGroupSizes(t *testing.T) {
	tests := []struct {
		group TagGroup
		want  int
	}{
		{GroupColor, 8},
		{GroupBrightColor, 8},
		{GroupBackground, 8},
		{GroupBrightBackground, 8},
		{GroupStyle, 5},
	}

	for _, tt := range tests {
		t.Run(tt.group.String(), func(t *testing.T) {
			if got := len(TagsInGroup(tt.group)); got != tt.want {
				t.Errorf("len(TagsInGroup(%v)) = %d, want %d", tt.group, got, tt.want)
			}
		})
	}
}

func TestIsValidTag(t *testing.T) {
	for _, tag := range Tags() {
		if !IsValidTag(tag) {
			t.Errorf("IsValidTag(%q) = false, want true", tag)
		}
	}

	invalid := []string{
		"", "Red", "RED", "reddish", "bright", "bg", "bgbrightred",
		"strike", "faint", "blink", "color", "invalidTag",
	}
	for _, name := range invalid {
		if IsValidTag(name) {
			t.Errorf("IsValidTag(%q) = true, want false", name)
		}
	}
}

func TestGroupOf(t *testing.T) {
	tests := []struct {
		tag   string
		group TagGroup
	}{
		{"red", GroupColor},
		{"brightMagenta", GroupBrightColor},
		{"bgYellow", GroupBackground},
		{"bgBrightCyan", GroupBrightBackground},
		{"strikethrough", GroupStyle},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			group, ok := GroupOf(tt.tag)
			if !ok {
				t.Fatalf("GroupOf(%q) ok = false", tt.tag)
			}
			if group != tt.group {
				t.Errorf("GroupOf(%q) = %v, want %v", tt.tag, group, tt.group)
			}
		})
	}

	if _, ok := GroupOf("nope"); ok {
		t.Error("GroupOf(nope) ok = true, want false")
	}
}

func TestTagsReturnsCopy(t *testing.T) {
	tags := Tags()
	tags[0] = "mutated"
	if Tags()[0] != "black" {
		t.Error("Tags() must not expose internal state")
	}
}
