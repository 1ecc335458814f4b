package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/mwpeters/hilite/pkg/errors"
	"github.com/mwpeters/hilite/pkg/rules"
)

const starterHeader = `# hilite configuration
#
# Rules are tried in order; the first rule whose span claims a region wins.
# Project config (.hilite.toml) takes precedence over the user config, which
# takes precedence over these built-ins. Set no_defaults = true to drop the
# built-in rules entirely.

`

type starterDoc struct {
	Rules []rules.Rule `toml:"rules"`
}

// GenerateStarter returns a starter project config seeded with the built-in
// rules, ready to edit.
func GenerateStarter() (string, error) {
	defaults := rules.DefaultRules()
	for i := range defaults {
		defaults[i].Origin = ""
	}
	data, err := toml.Marshal(starterDoc{Rules: defaults})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "TOML encoding failed")
	}
	return starterHeader + string(data), nil
}
