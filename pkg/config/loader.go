package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	kjson "github.com/knadh/koanf/parsers/json"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mwpeters/hilite/pkg/errors"
	"github.com/mwpeters/hilite/pkg/logging"
	"github.com/mwpeters/hilite/pkg/paths"
	"github.com/mwpeters/hilite/pkg/rules"
)

// LoadOptions controls which files participate in a load.
type LoadOptions struct {
	// ConfigPath is an explicit project config file. When set it replaces
	// project config discovery.
	ConfigPath string

	// WorkDir is the directory searched for a project config. Defaults to
	// the current directory.
	WorkDir string
}

// Load builds the effective configuration: embedded defaults, then the user
// config, then the project config, then HILITE_* environment overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.loader")

	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, ktoml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	var userRules, projectRules []rules.Rule

	// User layer.
	userPath := paths.UserConfigPath()
	if _, err := os.Stat(userPath); err == nil {
		layerRules, err := mergeLayer(k, userPath, rules.OriginUser)
		if err != nil {
			return nil, err
		}
		userRules = layerRules
		logger.Debug().Str("path", userPath).Int("rules", len(userRules)).Msg("Loaded user config")
	}

	// Project layer.
	projectPath := opts.ConfigPath
	if projectPath == "" {
		workDir := opts.WorkDir
		if workDir == "" {
			workDir = "."
		}
		projectPath = paths.FindProjectConfig(workDir)
	}
	if projectPath != "" {
		if _, err := os.Stat(projectPath); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"config file %s not accessible", projectPath)
		}
		layerRules, err := mergeLayer(k, projectPath, rules.OriginProject)
		if err != nil {
			return nil, err
		}
		projectRules = layerRules
		logger.Debug().Str("path", projectPath).Int("rules", len(projectRules)).Msg("Loaded project config")
	}

	// Environment layer. Settings only; rules cannot come from env vars.
	err := k.Load(env.Provider("HILITE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "HILITE_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.NoDefaults {
		cfg.Rules = rules.Merge(projectRules, userRules)
	} else {
		cfg.Rules = rules.Merge(projectRules, userRules, rules.DefaultRules())
	}

	logger.Info().
		Int("ruleCount", len(cfg.Rules)).
		Bool("noDefaults", cfg.NoDefaults).
		Msg("Configuration loaded")

	return &cfg, nil
}

// mergeLayer loads one config file into the settings tree and returns the
// rules it contributes, tagged with their origin.
func mergeLayer(k *koanf.Koanf, path string, origin rules.Origin) ([]rules.Rule, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	layer := koanf.New(".")
	if err := layer.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}

	layerRules, err := extractRules(layer, origin)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid rules in %s", path)
	}
	return layerRules, nil
}

// extractRules pulls rules out of one config layer: the native [[rules]]
// list, then any pattern-keyed regexes table.
func extractRules(k *koanf.Koanf, origin rules.Origin) ([]rules.Rule, error) {
	var extracted []rules.Rule

	if k.Exists("rules") {
		var listed []rules.Rule
		if err := k.UnmarshalWithConf("rules", &listed, koanf.UnmarshalConf{
			Tag: "koanf",
			DecoderConfig: &mapstructure.DecoderConfig{
				Result:      &listed,
				ErrorUnused: true,
			},
		}); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid rule entry")
		}
		extracted = append(extracted, listed...)
	}

	if k.Exists("regexes") {
		keyed, err := TransformRegexes(k.Get("regexes"))
		if err != nil {
			return nil, err
		}
		extracted = append(extracted, keyed...)
	}

	for i := range extracted {
		extracted[i].Origin = origin
		if err := extracted[i].Validate(); err != nil {
			return nil, err
		}
	}
	return extracted, nil
}

// Lint parses a single config file and returns every problem found, one
// error per invalid rule. A parse failure yields a single error.
func Lint(path string) []error {
	parser, err := parserFor(path)
	if err != nil {
		return []error{err}
	}

	layer := koanf.New(".")
	if err := layer.Load(file.Provider(path), parser); err != nil {
		return []error{errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)}
	}

	var problems []error
	var listed []rules.Rule
	if layer.Exists("rules") {
		if err := layer.UnmarshalWithConf("rules", &listed, koanf.UnmarshalConf{
			Tag: "koanf",
			DecoderConfig: &mapstructure.DecoderConfig{
				Result:      &listed,
				ErrorUnused: true,
			},
		}); err != nil {
			problems = append(problems, errors.Wrap(err, errors.ErrConfigValid, "invalid rule entry"))
		}
	}
	if layer.Exists("regexes") {
		keyed, err := TransformRegexes(layer.Get("regexes"))
		if err != nil {
			problems = append(problems, err)
		} else {
			listed = append(listed, keyed...)
		}
	}

	problems = append(problems, rules.ValidateAll(listed)...)
	return problems
}

// parserFor picks a koanf parser from the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ktoml.Parser(), nil
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	case ".json":
		return kjson.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad,
			"unsupported config file extension: %s", filepath.Ext(path))
	}
}
