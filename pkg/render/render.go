// Package render turns highlighted documents into terminal, plain-text, or
// JSON output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwpeters/hilite/pkg/engine"
	"github.com/mwpeters/hilite/pkg/errors"
	"github.com/mwpeters/hilite/pkg/rules"
	"github.com/mwpeters/hilite/pkg/ui"
)

// Renderer writes highlighted output in a fixed format. The format must be
// concrete (not FormatAuto); resolve it with ui.Resolve first.
type Renderer struct {
	format ui.Format
	out    io.Writer
}

// New creates a renderer for the given concrete format.
func New(format ui.Format, out io.Writer) *Renderer {
	return &Renderer{format: format, out: out}
}

// Document writes one highlighted document.
func (r *Renderer) Document(doc engine.Document) error {
	switch r.format {
	case ui.FormatTerminal:
		for _, line := range doc.Lines {
			if _, err := fmt.Fprintln(r.out, renderLine(line)); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "write failed")
			}
		}
	case ui.FormatText:
		for _, line := range doc.Lines {
			if _, err := fmt.Fprintln(r.out, line.Text); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "write failed")
			}
		}
	default:
		return errors.Newf(errors.ErrInternal, "document rendering does not support format %s", r.format)
	}
	return nil
}

// Matches writes match records as a JSON array.
func (r *Renderer) Matches(matches []engine.Match) error {
	if matches == nil {
		matches = []engine.Match{}
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(matches); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "JSON encoding failed")
	}
	return nil
}

// renderLine styles each span and passes the rest of the line through.
func renderLine(line engine.Line) string {
	if len(line.Spans) == 0 {
		return line.Text
	}

	var b strings.Builder
	cursor := 0
	for _, span := range line.Spans {
		b.WriteString(line.Text[cursor:span.Start])
		segment := line.Text[span.Start:span.End]
		if span.Decoration != nil {
			segment = StyleFor(*span.Decoration).Render(segment)
		}
		b.WriteString(segment)
		cursor = span.End
	}
	b.WriteString(line.Text[cursor:])
	return b.String()
}

// StyleFor builds the lipgloss style for one decoration. The overline text
// decoration has no ANSI equivalent and renders unstyled.
func StyleFor(d rules.Decoration) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c := resolveColor(d.Color); c != "" {
		style = style.Foreground(lipgloss.Color(c))
	}
	if c := resolveColor(d.BackgroundColor); c != "" {
		style = style.Background(lipgloss.Color(c))
	}
	if d.Bold() {
		style = style.Bold(true)
	}
	if d.FontStyle == "italic" || d.FontStyle == "oblique" {
		style = style.Italic(true)
	}
	switch d.TextDecoration {
	case "underline":
		style = style.Underline(true)
	case "line-through":
		style = style.Strikethrough(true)
	}
	return style
}
