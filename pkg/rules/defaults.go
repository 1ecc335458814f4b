package rules

// DefaultRules returns the built-in rule set. These decorate the plain-text
// note markers the tool grew up around: "nab : <name>" headers, "[notecard]"
// delimiters, and "[q]"/"[a]" card fields in .txt files.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:       "note-header",
			Pattern:    `nab\s*:\s*(.+)`,
			FileFilter: `\.txt$`,
			Decorations: []Decoration{
				{Color: "#c586c0", FontWeight: "bold"},
			},
			Origin: OriginDefault,
		},
		{
			Name:       "notecard",
			Pattern:    `\[notecard\]`,
			FileFilter: `\.txt$`,
			Decorations: []Decoration{
				{Color: "#4ec9b0", FontWeight: "bold"},
			},
			Origin: OriginDefault,
		},
		{
			Name:       "card-field",
			Pattern:    `\[([qa])\]`,
			FileFilter: `\.txt$`,
			Decorations: []Decoration{
				{Color: "#dcdcaa", FontStyle: "italic", TextDecoration: "underline"},
			},
			Origin: OriginDefault,
		},
	}
}
