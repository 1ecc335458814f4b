// Test Type: Unit Test
// Description: Tests for the render package - document and JSON output

package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwpeters/hilite/pkg/engine"
	"github.com/mwpeters/hilite/pkg/render"
	"github.com/mwpeters/hilite/pkg/rules"
	"github.com/mwpeters/hilite/pkg/ui"
)

func highlighted(t *testing.T, path, text string) engine.Document {
	t.Helper()
	set, err := rules.Compile(rules.DefaultRules())
	require.NoError(t, err)
	return engine.New(set).Document(path, text)
}

func TestDocument_TextFormatIsPassthrough(t *testing.T) {
	doc := highlighted(t, "notes.txt", "nab : Title\nbody")

	var buf bytes.Buffer
	r := render.New(ui.FormatText, &buf)
	require.NoError(t, r.Document(doc))

	assert.Equal(t, "nab : Title\nbody\n", buf.String())
}

func TestDocument_TerminalFormatStylesSpans(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	doc := highlighted(t, "notes.txt", "nab : Title")

	var buf bytes.Buffer
	r := render.New(ui.FormatTerminal, &buf)
	require.NoError(t, r.Document(doc))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "nab : Title")
}

func TestDocument_TerminalFormatLeavesUnmatchedTextAlone(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	doc := highlighted(t, "notes.txt", "no markers here")

	var buf bytes.Buffer
	r := render.New(ui.FormatTerminal, &buf)
	require.NoError(t, r.Document(doc))

	assert.Equal(t, "no markers here\n", buf.String())
}

func TestDocument_JSONFormatRejected(t *testing.T) {
	doc := highlighted(t, "notes.txt", "x")
	r := render.New(ui.FormatJSON, new(bytes.Buffer))
	assert.Error(t, r.Document(doc))
}

func TestMatches_JSON(t *testing.T) {
	matches := []engine.Match{
		{File: "a.txt", Line: 1, Column: 1, Rule: "note-header", Text: "nab : x"},
	}

	var buf bytes.Buffer
	r := render.New(ui.FormatJSON, &buf)
	require.NoError(t, r.Matches(matches))

	var decoded []engine.Match
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, matches, decoded)
}

func TestMatches_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(ui.FormatJSON, &buf)
	require.NoError(t, r.Matches(nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestStyleFor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	t.Run("bold_and_color", func(t *testing.T) {
		style := render.StyleFor(rules.Decoration{Color: "#c586c0", FontWeight: "bold"})
		out := style.Render("x")
		// lipgloss emits one combined SGR sequence: bold first, then the
		// truecolor foreground.
		assert.Contains(t, out, "\x1b[1;")
		assert.Contains(t, out, "38;2;197;134;192")
	})

	t.Run("unknown_color_name_renders_plain", func(t *testing.T) {
		style := render.StyleFor(rules.Decoration{Color: "chartreuse-ish"})
		assert.Equal(t, "x", style.Render("x"))
	})

	t.Run("named_color_resolves", func(t *testing.T) {
		style := render.StyleFor(rules.Decoration{Color: "cyan"})
		assert.NotEqual(t, "x", style.Render("x"))
	})
}
