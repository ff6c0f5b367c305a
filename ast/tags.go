package ast

// TagGroup classifies a tag name within the fixed vocabulary.
type TagGroup int

const (
	GroupColor TagGroup = iota
	GroupBrightColor
	GroupBackground
	GroupBrightBackground
	GroupStyle
)

var tagGroupNames = map[TagGroup]string{
	GroupColor:            "color",
	GroupBrightColor:      "brightColor",
	GroupBackground:       "background",
	GroupBrightBackground: "brightBackground",
	GroupStyle:            "style",
}

func (g TagGroup) String() string {
	if name, ok := tagGroupNames[g]; ok {
		return name
	}
	return "unknown"
}

// The vocabulary is closed: 37 names, no attributes, no extensions.
var tagGroups = map[string]TagGroup{
	"black":   GroupColor,
	"red":     GroupColor,
	"green":   GroupColor,
	"yellow":  GroupColor,
	"blue":    GroupColor,
	"magenta": GroupColor,
	"cyan":    GroupColor,
	"white":   GroupColor,

	"brightBlack":   GroupBrightColor,
	"brightRed":     GroupBrightColor,
	"brightGreen":   GroupBrightColor,
	"brightYellow":  GroupBrightColor,
	"brightBlue":    GroupBrightColor,
	"brightMagenta": GroupBrightColor,
	"brightCyan":    GroupBrightColor,
	"brightWhite":   GroupBrightColor,

	"bgBlack":   GroupBackground,
	"bgRed":     GroupBackground,
	"bgGreen":   GroupBackground,
	"bgYellow":  GroupBackground,
	"bgBlue":    GroupBackground,
	"bgMagenta": GroupBackground,
	"bgCyan":    GroupBackground,
	"bgWhite":   GroupBackground,

	"bgBrightBlack":   GroupBrightBackground,
	"bgBrightRed":     GroupBrightBackground,
	"bgBrightGreen":   GroupBrightBackground,
	"bgBrightYellow":  GroupBrightBackground,
	"bgBrightBlue":    GroupBrightBackground,
	"bgBrightMagenta": GroupBrightBackground,
	"bgBrightCyan":    GroupBrightBackground,
	"bgBrightWhite":   GroupBrightBackground,

	"bold":          GroupStyle,
	"dim":           GroupStyle,
	"italic":        GroupStyle,
	"underline":     GroupStyle,
	"strikethrough": GroupStyle,
}

// tagOrder fixes a stable listing order: colors, bright colors,
// backgrounds, bright backgrounds, styles.
var tagOrder = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"brightBlack", "brightRed", "brightGreen", "brightYellow",
	"brightBlue", "brightMagenta", "brightCyan", "brightWhite",
	"bgBlack", "bgRed", "bgGreen", "bgYellow",
	"bgBlue", "bgMagenta", "bgCyan", "bgWhite",
	"bgBrightBlack", "bgBrightRed", "bgBrightGreen", "bgBrightYellow",
	"bgBrightBlue", "bgBrightMagenta", "bgBrightCyan", "bgBrightWhite",
	"bold", "dim", "italic", "underline", "strikethrough",
}

// IsValidTag reports whether name is one of the 37 tag names. Validity
// is a pure membership test; it does not depend on parse state.
func IsValidTag(name string) bool {
	_, ok := tagGroups[name]
	return ok
}

// GroupOf returns the group a tag name belongs to.
func GroupOf(name string) (TagGroup, bool) {
	g, ok := tagGroups[name]
	return g, ok
}

// Tags returns all valid tag names in stable order.
func Tags() []string {
	out := make([]string, len(tagOrder))
	copy(out, tagOrder)
	return out
}

// TagsInGroup returns the tag names belonging to g, in stable order.
func TagsInGroup(g TagGroup) []string {
	var out []string
	for _, name := range tagOrder {
		if tagGroups[name] == g {
			out = append(out, name)
		}
	}
	return out
}
