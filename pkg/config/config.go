// Package config loads hilite's layered configuration: compiled-in defaults,
// the user-level config file, a project-local config file, and environment
// overrides, in increasing order of precedence.
package config

import (
	"github.com/mwpeters/hilite/pkg/rules"
)

// Config is the fully merged configuration.
type Config struct {
	// NoDefaults disables the built-in rules.
	NoDefaults bool `koanf:"no_defaults"`

	Output OutputConfig `koanf:"output"`
	Watch  WatchConfig  `koanf:"watch"`
	Scan   ScanConfig   `koanf:"scan"`

	// Rules is the effective rule list after layering: project rules first,
	// then user rules, then the built-in defaults.
	Rules []rules.Rule `koanf:"-"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	// Format is one of auto, term, text, json.
	Format string `koanf:"format"`
	// Theme is the glamour style used for docs topics.
	Theme string `koanf:"theme"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	DebounceMs int `koanf:"debounce_ms"`
}

// ScanConfig controls directory scanning.
type ScanConfig struct {
	MaxFileSize   int64 `koanf:"max_file_size"`
	IncludeHidden bool  `koanf:"include_hidden"`
}
