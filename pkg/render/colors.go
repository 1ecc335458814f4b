package render

// cssColors maps the CSS color names decorations commonly use to hex values
// lipgloss understands. Names outside this table render unstyled.
var cssColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
	"lime":    "#00ff00",
	"navy":    "#000080",
	"teal":    "#008080",
	"olive":   "#808000",
	"maroon":  "#800000",
	"silver":  "#c0c0c0",
	"gold":    "#ffd700",
}

// resolveColor turns a decoration color value into something lipgloss can
// use: hex passes through, known names map to hex, anything else is empty.
func resolveColor(value string) string {
	if value == "" {
		return ""
	}
	if value[0] == '#' {
		return value
	}
	if hex, ok := cssColors[value]; ok {
		return hex
	}
	return ""
}
