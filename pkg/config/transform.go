package config

import (
	"sort"

	"github.com/mwpeters/hilite/pkg/errors"
	"github.com/mwpeters/hilite/pkg/rules"
)

// TransformRegexes converts the pattern-keyed wire schema
//
//	{ "<pattern>": { "filterFileRegex": "...", "decorations": [ {...}, ... ] } }
//
// into native rules, in sorted key order so layering stays deterministic.
func TransformRegexes(raw interface{}) ([]rules.Rule, error) {
	table, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errors.New(errors.ErrConfigValid, "regexes must be a table keyed by pattern")
	}

	patterns := make([]string, 0, len(table))
	for pattern := range table {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	var transformed []rules.Rule
	for _, pattern := range patterns {
		rule, err := transformEntry(pattern, table[pattern])
		if err != nil {
			return nil, err
		}
		transformed = append(transformed, rule)
	}
	return transformed, nil
}

func transformEntry(pattern string, raw interface{}) (rules.Rule, error) {
	entry, ok := raw.(map[string]interface{})
	if !ok {
		return rules.Rule{}, errors.Newf(errors.ErrConfigValid,
			"regexes entry %q must be a table", pattern)
	}

	rule := rules.Rule{Pattern: pattern}
	for key, value := range entry {
		switch key {
		case "filterFileRegex":
			filter, ok := value.(string)
			if !ok {
				return rules.Rule{}, errors.Newf(errors.ErrConfigValid,
					"regexes entry %q: filterFileRegex must be a string", pattern)
			}
			rule.FileFilter = filter
		case "decorations":
			decorations, err := transformDecorations(pattern, value)
			if err != nil {
				return rules.Rule{}, err
			}
			rule.Decorations = decorations
		case "name":
			name, ok := value.(string)
			if !ok {
				return rules.Rule{}, errors.Newf(errors.ErrConfigValid,
					"regexes entry %q: name must be a string", pattern)
			}
			rule.Name = name
		default:
			return rules.Rule{}, errors.Newf(errors.ErrConfigValid,
				"regexes entry %q has unrecognized key %q", pattern, key)
		}
	}
	return rule, nil
}

func transformDecorations(pattern string, raw interface{}) ([]rules.Decoration, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrConfigValid,
			"regexes entry %q: decorations must be a list", pattern)
	}

	decorations := make([]rules.Decoration, 0, len(items))
	for i, item := range items {
		attrs, ok := item.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrConfigValid,
				"regexes entry %q: decoration %d must be a table", pattern, i)
		}
		strAttrs := make(map[string]string, len(attrs))
		for key, value := range attrs {
			str, ok := value.(string)
			if !ok {
				return nil, errors.Newf(errors.ErrConfigValid,
					"regexes entry %q: decoration %d attribute %q must be a string", pattern, i, key)
			}
			strAttrs[key] = str
		}
		decoration, err := rules.DecorationFromMap(strAttrs)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid,
				"regexes entry %q: decoration %d", pattern, i)
		}
		decorations = append(decorations, decoration)
	}
	return decorations, nil
}
