package rules

import (
	"regexp"

	"github.com/mwpeters/hilite/pkg/errors"
	"github.com/mwpeters/hilite/pkg/logging"
)

// CompiledRule is a Rule with its regular expressions compiled.
type CompiledRule struct {
	Rule
	Pattern *regexp.Regexp
	// Filter is nil when the rule applies to every file.
	Filter *regexp.Regexp
}

// RuleSet holds compiled rules in precedence order.
type RuleSet struct {
	Rules []*CompiledRule
}

// Compile validates and compiles a rule list into a RuleSet. The first
// invalid rule aborts compilation.
func Compile(ruleList []Rule) (*RuleSet, error) {
	logger := logging.GetLogger("rules.compile")

	set := &RuleSet{Rules: make([]*CompiledRule, 0, len(ruleList))}
	for _, r := range ruleList {
		if r.Pattern == "" {
			return nil, errors.Newf(errors.ErrRuleInvalid, "rule %q has empty pattern", r.Label())
		}
		pattern, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPatternInvalid,
				"rule %q has invalid pattern", r.Label())
		}
		var filter *regexp.Regexp
		if r.FileFilter != "" {
			filter, err = regexp.Compile(r.FileFilter)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrFilterInvalid,
					"rule %q has invalid file filter", r.Label())
			}
		}
		for i, d := range r.Decorations {
			if err := d.Validate(); err != nil {
				return nil, errors.Wrapf(err, errors.ErrDecorationInvalid,
					"rule %q decoration %d", r.Label(), i)
			}
		}
		set.Rules = append(set.Rules, &CompiledRule{Rule: r, Pattern: pattern, Filter: filter})
	}

	logger.Debug().Int("ruleCount", len(set.Rules)).Msg("Compiled rule set")
	return set, nil
}

// RulesFor returns the rules applicable to the given file path, in
// precedence order. Rules without a file filter always apply.
func (s *RuleSet) RulesFor(path string) []*CompiledRule {
	var applicable []*CompiledRule
	for _, r := range s.Rules {
		if r.Filter == nil || r.Filter.MatchString(path) {
			applicable = append(applicable, r)
		}
	}
	return applicable
}

// Named returns the subset of rules whose label is in names, preserving
// order. Unknown names yield a NOT_FOUND error.
func (s *RuleSet) Named(names []string) (*RuleSet, error) {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	sub := &RuleSet{}
	for _, r := range s.Rules {
		if wanted[r.Label()] {
			sub.Rules = append(sub.Rules, r)
			delete(wanted, r.Label())
		}
	}
	for n := range wanted {
		return nil, errors.Newf(errors.ErrNotFound, "no rule named %q", n)
	}
	return sub, nil
}
