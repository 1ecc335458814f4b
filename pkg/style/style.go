// Package style centralizes pterm styles for report output (scan, check,
// rules listings).
package style

import (
	"strings"

	"github.com/pterm/pterm"
)

// Status types for report lines
type Status string

const (
	StatusOK   Status = "ok"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusInfo Status = "info"
)

var (
	// TitleStyle is used for section headers
	TitleStyle = pterm.NewStyle(pterm.Bold)

	// MutedStyle is used for secondary information like paths and origins
	MutedStyle = pterm.NewStyle(pterm.FgGray)

	// RuleStyle is used for rule names
	RuleStyle = pterm.NewStyle(pterm.FgCyan)

	// CountStyle is used for match counts
	CountStyle = pterm.NewStyle(pterm.FgMagenta)
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusOK:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusFail:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case StatusWarn:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgDefault)
	}
}

// Indicator returns a styled one-character status marker
func Indicator(status Status) string {
	switch status {
	case StatusOK:
		return StatusStyle(StatusOK).Sprint("✓")
	case StatusFail:
		return StatusStyle(StatusFail).Sprint("✗")
	case StatusWarn:
		return StatusStyle(StatusWarn).Sprint("!")
	default:
		return StatusStyle(StatusInfo).Sprint("·")
	}
}

// Bold makes text bold
func Bold(text string) string {
	return pterm.Bold.Sprint(text)
}

// Indent indents every line of text by level*2 spaces
func Indent(text string, level int) string {
	prefix := strings.Repeat("  ", level)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
