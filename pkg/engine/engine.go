// Package engine applies compiled highlight rules to text, producing
// non-overlapping decorated spans.
package engine

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mwpeters/hilite/pkg/logging"
	"github.com/mwpeters/hilite/pkg/rules"
)

// Span is a decorated region of a single line, in byte offsets.
type Span struct {
	Start int
	End   int
	Rule  *rules.CompiledRule
	// Decoration is nil when the matching rule declares no decorations.
	Decoration *rules.Decoration
}

// Line is one line of input with its resolved spans, sorted by start offset.
type Line struct {
	Text  string
	Spans []Span
}

// Document is the highlighted form of one input.
type Document struct {
	Path  string
	Lines []Line
}

// Match is a machine-readable record of one span, used for JSON output and
// scan reports. Line and Column are 1-based.
type Match struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Rule   string `json:"rule"`
	Text   string `json:"text"`
}

// Highlighter applies a rule set to documents.
type Highlighter struct {
	set    *rules.RuleSet
	logger zerolog.Logger
}

// New creates a highlighter over the given rule set.
func New(set *rules.RuleSet) *Highlighter {
	return &Highlighter{
		set:    set,
		logger: logging.GetLogger("engine"),
	}
}

// Document highlights text addressed by path. The path selects which rules
// apply; matching is per line and patterns never span newlines.
func (h *Highlighter) Document(path, text string) Document {
	applicable := h.set.RulesFor(path)
	h.logger.Debug().
		Str("path", path).
		Int("applicableRules", len(applicable)).
		Msg("Highlighting document")

	rawLines := strings.Split(text, "\n")
	doc := Document{Path: path, Lines: make([]Line, len(rawLines))}
	for i, raw := range rawLines {
		doc.Lines[i] = Line{Text: raw, Spans: lineSpans(raw, applicable)}
	}
	return doc
}

// Matches flattens a highlighted document into match records.
func (h *Highlighter) Matches(path, text string) []Match {
	doc := h.Document(path, text)
	var matches []Match
	for i, line := range doc.Lines {
		for _, span := range line.Spans {
			matches = append(matches, Match{
				File:   path,
				Line:   i + 1,
				Column: span.Start + 1,
				Rule:   span.Rule.Label(),
				Text:   line.Text[span.Start:span.End],
			})
		}
	}
	return matches
}

// lineSpans collects the spans of every applicable rule on one line and
// resolves overlaps: rules are applied in precedence order and an earlier
// span wins over any later overlapping one. Zero-width matches are dropped.
func lineSpans(line string, applicable []*rules.CompiledRule) []Span {
	var kept []Span
	for _, rule := range applicable {
		for _, loc := range rule.Pattern.FindAllStringSubmatchIndex(line, -1) {
			for _, candidate := range spanCandidates(rule, loc) {
				if candidate.Start == candidate.End {
					continue
				}
				if !overlapsAny(kept, candidate) {
					kept = append(kept, candidate)
				}
			}
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	return kept
}

// spanCandidates binds decorations to one submatch location. A rule with at
// most one decoration decorates the whole match; a rule with N decorations
// binds decoration i to capture group i. Unmatched groups yield nothing.
func spanCandidates(rule *rules.CompiledRule, loc []int) []Span {
	if len(rule.Decorations) <= 1 {
		span := Span{Start: loc[0], End: loc[1], Rule: rule}
		if len(rule.Decorations) == 1 {
			span.Decoration = &rule.Decorations[0]
		}
		return []Span{span}
	}

	var candidates []Span
	for i := range rule.Decorations {
		group := i + 1
		if 2*group+1 >= len(loc) {
			break
		}
		start, end := loc[2*group], loc[2*group+1]
		if start < 0 {
			continue
		}
		candidates = append(candidates, Span{
			Start:      start,
			End:        end,
			Rule:       rule,
			Decoration: &rule.Decorations[i],
		})
	}
	return candidates
}

func overlapsAny(spans []Span, candidate Span) bool {
	for _, s := range spans {
		if candidate.Start < s.End && s.Start < candidate.End {
			return true
		}
	}
	return false
}
