// Package rules defines highlight rules: a regular-expression pattern paired
// with a file filter and the visual decorations applied where the pattern
// matches.
package rules

import (
	"regexp"
	"strings"

	"github.com/mwpeters/hilite/pkg/errors"
)

// Origin identifies which configuration layer a rule came from.
type Origin string

const (
	OriginDefault Origin = "defaults"
	OriginUser    Origin = "user"
	OriginProject Origin = "project"
)

// Decoration attribute names as they appear in configuration files.
const (
	AttrColor           = "color"
	AttrBackgroundColor = "backgroundColor"
	AttrFontWeight      = "fontWeight"
	AttrFontStyle       = "fontStyle"
	AttrTextDecoration  = "textDecoration"
)

// Decoration is one set of visual style attributes. A rule carries an ordered
// sequence of these; see Rule.Decorations for how they bind to matches.
type Decoration struct {
	Color           string `koanf:"color" toml:"color,omitempty" yaml:"color,omitempty" json:"color,omitempty"`
	BackgroundColor string `koanf:"backgroundColor" toml:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	FontWeight      string `koanf:"fontWeight" toml:"fontWeight,omitempty" yaml:"fontWeight,omitempty" json:"fontWeight,omitempty"`
	FontStyle       string `koanf:"fontStyle" toml:"fontStyle,omitempty" yaml:"fontStyle,omitempty" json:"fontStyle,omitempty"`
	TextDecoration  string `koanf:"textDecoration" toml:"textDecoration,omitempty" yaml:"textDecoration,omitempty" json:"textDecoration,omitempty"`
}

// DecorationFromMap builds a Decoration from a raw attribute map, rejecting
// unrecognized attribute names.
func DecorationFromMap(attrs map[string]string) (Decoration, error) {
	var d Decoration
	for key, value := range attrs {
		switch key {
		case AttrColor:
			d.Color = value
		case AttrBackgroundColor:
			d.BackgroundColor = value
		case AttrFontWeight:
			d.FontWeight = value
		case AttrFontStyle:
			d.FontStyle = value
		case AttrTextDecoration:
			d.TextDecoration = value
		default:
			return Decoration{}, errors.Newf(errors.ErrDecorationInvalid,
				"unrecognized decoration attribute %q", key)
		}
	}
	if err := d.Validate(); err != nil {
		return Decoration{}, err
	}
	return d, nil
}

// ToMap returns the decoration as a raw attribute map, omitting empty
// attributes. The inverse of DecorationFromMap.
func (d Decoration) ToMap() map[string]string {
	m := make(map[string]string)
	if d.Color != "" {
		m[AttrColor] = d.Color
	}
	if d.BackgroundColor != "" {
		m[AttrBackgroundColor] = d.BackgroundColor
	}
	if d.FontWeight != "" {
		m[AttrFontWeight] = d.FontWeight
	}
	if d.FontStyle != "" {
		m[AttrFontStyle] = d.FontStyle
	}
	if d.TextDecoration != "" {
		m[AttrTextDecoration] = d.TextDecoration
	}
	return m
}

// IsZero reports whether no attribute is set.
func (d Decoration) IsZero() bool {
	return d == Decoration{}
}

var (
	fontWeights     = map[string]bool{"normal": true, "bold": true, "bolder": true, "lighter": true}
	fontStyles      = map[string]bool{"normal": true, "italic": true, "oblique": true}
	textDecorations = map[string]bool{"none": true, "underline": true, "line-through": true, "overline": true}

	hexColorRe      = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	numericWeightRe = regexp.MustCompile(`^[1-9]00$`)
)

// Validate checks attribute values. Color attributes accept hex notation or
// any non-empty name; names the renderer does not know fall back unstyled
// rather than failing the load.
func (d Decoration) Validate() error {
	if d.FontWeight != "" && !fontWeights[d.FontWeight] && !numericWeightRe.MatchString(d.FontWeight) {
		return errors.Newf(errors.ErrDecorationInvalid, "invalid fontWeight %q", d.FontWeight)
	}
	if d.FontStyle != "" && !fontStyles[d.FontStyle] {
		return errors.Newf(errors.ErrDecorationInvalid, "invalid fontStyle %q", d.FontStyle)
	}
	if d.TextDecoration != "" && !textDecorations[d.TextDecoration] {
		return errors.Newf(errors.ErrDecorationInvalid, "invalid textDecoration %q", d.TextDecoration)
	}
	for _, color := range []string{d.Color, d.BackgroundColor} {
		if strings.HasPrefix(color, "#") && !hexColorRe.MatchString(color) {
			return errors.Newf(errors.ErrDecorationInvalid, "invalid hex color %q", color)
		}
	}
	return nil
}

// Bold reports whether the decoration requests bold text.
func (d Decoration) Bold() bool {
	if d.FontWeight == "bold" || d.FontWeight == "bolder" {
		return true
	}
	// Numeric weights of 600 and up render bold.
	if numericWeightRe.MatchString(d.FontWeight) {
		return d.FontWeight >= "600"
	}
	return false
}

// Rule pairs a content pattern with a file filter and decorations.
//
// A rule with a single decoration applies it to the whole match. A rule with
// N decorations applies decoration i to capture group i (1-based); groups
// beyond N and text outside groups stay undecorated.
type Rule struct {
	Name        string       `koanf:"name" toml:"name,omitempty" yaml:"name,omitempty"`
	Pattern     string       `koanf:"pattern" toml:"pattern" yaml:"pattern"`
	FileFilter  string       `koanf:"file_filter" toml:"file_filter,omitempty" yaml:"file_filter,omitempty"`
	Decorations []Decoration `koanf:"decorations" toml:"decorations,omitempty" yaml:"decorations,omitempty"`

	// Origin records the configuration layer that contributed the rule.
	Origin Origin `koanf:"-" toml:"-" yaml:"-"`
}

// Label returns the rule's display name, falling back to its pattern.
func (r Rule) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Pattern
}

// Validate checks the rule for well-formedness without compiling it into a
// set: non-empty pattern, compilable regexes, valid decorations.
func (r Rule) Validate() error {
	if r.Pattern == "" {
		return errors.Newf(errors.ErrRuleInvalid, "rule %q has empty pattern", r.Label())
	}
	if _, err := regexp.Compile(r.Pattern); err != nil {
		return errors.Wrapf(err, errors.ErrPatternInvalid,
			"rule %q has invalid pattern", r.Label())
	}
	if r.FileFilter != "" {
		if _, err := regexp.Compile(r.FileFilter); err != nil {
			return errors.Wrapf(err, errors.ErrFilterInvalid,
				"rule %q has invalid file filter", r.Label())
		}
	}
	for i, d := range r.Decorations {
		if err := d.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrDecorationInvalid,
				"rule %q decoration %d", r.Label(), i)
		}
	}
	return nil
}

// ValidateAll validates every rule, returning one error per invalid rule.
func ValidateAll(ruleList []Rule) []error {
	var errs []error
	for _, r := range ruleList {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Merge layers rule lists so that earlier lists take precedence: rules from
// higher-precedence layers come first and match first.
func Merge(layers ...[]Rule) []Rule {
	var merged []Rule
	for _, layer := range layers {
		merged = append(merged, layer...)
	}
	return merged
}
