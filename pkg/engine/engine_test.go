// Test Type: Unit Test
// Description: Tests for the engine package - span production and overlap resolution

package engine_test

import (
	"testing"

	"github.com/mwpeters/hilite/pkg/engine"
	"github.com/mwpeters/hilite/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, ruleList ...rules.Rule) *rules.RuleSet {
	t.Helper()
	set, err := rules.Compile(ruleList)
	require.NoError(t, err)
	return set
}

func TestDocument_WholeMatchDecoration(t *testing.T) {
	set := compile(t, rules.Rule{
		Name:        "note-header",
		Pattern:     `nab\s*:\s*(.+)`,
		FileFilter:  `\.txt$`,
		Decorations: []rules.Decoration{{Color: "#c586c0", FontWeight: "bold"}},
	})
	h := engine.New(set)

	doc := h.Document("notes.txt", "nab : Groceries\nsome body text")
	require.Len(t, doc.Lines, 2)

	require.Len(t, doc.Lines[0].Spans, 1)
	span := doc.Lines[0].Spans[0]
	assert.Equal(t, 0, span.Start)
	assert.Equal(t, len("nab : Groceries"), span.End)
	require.NotNil(t, span.Decoration)
	assert.Equal(t, "#c586c0", span.Decoration.Color)

	assert.Empty(t, doc.Lines[1].Spans)
}

func TestDocument_FileFilterExcludes(t *testing.T) {
	set := compile(t, rules.Rule{
		Pattern:    `nab`,
		FileFilter: `\.txt$`,
	})
	h := engine.New(set)

	doc := h.Document("main.go", "nab : not a note file")
	assert.Empty(t, doc.Lines[0].Spans)
}

func TestDocument_CaptureGroupDecorations(t *testing.T) {
	set := compile(t, rules.Rule{
		Name:    "kv",
		Pattern: `(\w+)=(\w+)`,
		Decorations: []rules.Decoration{
			{Color: "cyan"},
			{Color: "yellow"},
		},
	})
	h := engine.New(set)

	doc := h.Document("conf.txt", "debounce=250")
	require.Len(t, doc.Lines[0].Spans, 2)

	key, value := doc.Lines[0].Spans[0], doc.Lines[0].Spans[1]
	assert.Equal(t, "cyan", key.Decoration.Color)
	assert.Equal(t, 0, key.Start)
	assert.Equal(t, len("debounce"), key.End)
	assert.Equal(t, "yellow", value.Decoration.Color)
	assert.Equal(t, len("debounce="), value.Start)
	assert.Equal(t, len("debounce=250"), value.End)
}

func TestDocument_OptionalGroupSkipped(t *testing.T) {
	set := compile(t, rules.Rule{
		Pattern: `(foo)(bar)?`,
		Decorations: []rules.Decoration{
			{Color: "red"},
			{Color: "blue"},
		},
	})
	h := engine.New(set)

	doc := h.Document("x.txt", "foo")
	require.Len(t, doc.Lines[0].Spans, 1)
	assert.Equal(t, "red", doc.Lines[0].Spans[0].Decoration.Color)
}

func TestDocument_FirstRuleWinsOnOverlap(t *testing.T) {
	set := compile(t,
		rules.Rule{Name: "first", Pattern: `abc`, Decorations: []rules.Decoration{{Color: "red"}}},
		rules.Rule{Name: "second", Pattern: `bcd`, Decorations: []rules.Decoration{{Color: "blue"}}},
	)
	h := engine.New(set)

	doc := h.Document("x.txt", "abcd")
	require.Len(t, doc.Lines[0].Spans, 1)
	assert.Equal(t, "first", doc.Lines[0].Spans[0].Rule.Label())
}

func TestDocument_NonOverlappingRulesCoexist(t *testing.T) {
	set := compile(t,
		rules.Rule{Name: "header", Pattern: `nab`, Decorations: []rules.Decoration{{Color: "red"}}},
		rules.Rule{Name: "field", Pattern: `\[[qa]\]`, Decorations: []rules.Decoration{{Color: "blue"}}},
	)
	h := engine.New(set)

	doc := h.Document("x.txt", "[q] what is nab?")
	require.Len(t, doc.Lines[0].Spans, 2)
	// Sorted by start offset regardless of rule order.
	assert.Equal(t, "field", doc.Lines[0].Spans[0].Rule.Label())
	assert.Equal(t, "header", doc.Lines[0].Spans[1].Rule.Label())
}

func TestDocument_ZeroWidthMatchesDropped(t *testing.T) {
	set := compile(t, rules.Rule{Pattern: `a*`})
	h := engine.New(set)

	doc := h.Document("x.txt", "bbb")
	assert.Empty(t, doc.Lines[0].Spans)
}

func TestDocument_NoDecorationsStillMatches(t *testing.T) {
	set := compile(t, rules.Rule{Name: "bare", Pattern: `match`})
	h := engine.New(set)

	doc := h.Document("x.txt", "a match here")
	require.Len(t, doc.Lines[0].Spans, 1)
	assert.Nil(t, doc.Lines[0].Spans[0].Decoration)
}

func TestMatches(t *testing.T) {
	set := compile(t, rules.Rule{
		Name:        "notecard",
		Pattern:     `\[notecard\]`,
		Decorations: []rules.Decoration{{Color: "#4ec9b0"}},
	})
	h := engine.New(set)

	matches := h.Matches("cards.txt", "[notecard]\n[q] capital of France?\n[notecard]")
	require.Len(t, matches, 2)

	assert.Equal(t, "cards.txt", matches[0].File)
	assert.Equal(t, 1, matches[0].Line)
	assert.Equal(t, 1, matches[0].Column)
	assert.Equal(t, "notecard", matches[0].Rule)
	assert.Equal(t, "[notecard]", matches[0].Text)

	assert.Equal(t, 3, matches[1].Line)
}

func TestMatches_MultiplePerLine(t *testing.T) {
	set := compile(t, rules.Rule{Name: "num", Pattern: `\d+`})
	h := engine.New(set)

	matches := h.Matches("x.txt", "1 and 22 and 333")
	require.Len(t, matches, 3)
	assert.Equal(t, "22", matches[1].Text)
	assert.Equal(t, 7, matches[1].Column)
}
