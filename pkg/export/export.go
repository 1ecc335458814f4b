// Package export converts rule sets to and from editor configuration
// formats.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/beevik/etree"
	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"

	"github.com/mwpeters/hilite/pkg/config"
	"github.com/mwpeters/hilite/pkg/errors"
	"github.com/mwpeters/hilite/pkg/rules"
)

// SettingsKey is the key a VS Code settings file stores highlight rules
// under.
const SettingsKey = "highlight.regexes"

// wireRule is one entry of the pattern-keyed wire schema.
type wireRule struct {
	Name            string              `json:"name,omitempty"`
	FilterFileRegex string              `json:"filterFileRegex,omitempty"`
	Decorations     []map[string]string `json:"decorations,omitempty"`
}

// ToVSCode renders rules as a VS Code settings fragment:
//
//	{ "highlight.regexes": { "<pattern>": { ... } } }
//
// The wire schema is keyed by pattern, so rules sharing a pattern collapse
// into the last one.
func ToVSCode(ruleList []rules.Rule) ([]byte, error) {
	regexes := make(map[string]wireRule, len(ruleList))
	for _, r := range ruleList {
		entry := wireRule{
			Name:            r.Name,
			FilterFileRegex: r.FileFilter,
		}
		for _, d := range r.Decorations {
			entry.Decorations = append(entry.Decorations, d.ToMap())
		}
		regexes[r.Pattern] = entry
	}

	fragment := map[string]map[string]wireRule{SettingsKey: regexes}
	data, err := json.MarshalIndent(fragment, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "JSON encoding failed")
	}
	return append(data, '\n'), nil
}

// FromVSCode reads a VS Code settings document (or a bare regexes table)
// and returns the rules it defines.
func FromVSCode(data []byte) ([]rules.Rule, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrImportParse, "settings are not valid JSON")
	}

	raw, ok := doc[SettingsKey]
	if !ok {
		// A bare regexes table has rule entries at the top level.
		raw = map[string]interface{}(doc)
	}

	imported, err := config.TransformRegexes(raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrImportParse, "cannot convert settings")
	}
	for _, r := range imported {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	return imported, nil
}

// tomlDoc is the native config file shape.
type tomlDoc struct {
	Rules []rules.Rule `toml:"rules" yaml:"rules"`
}

// ToTOML renders rules as a native hilite config.
func ToTOML(ruleList []rules.Rule) ([]byte, error) {
	data, err := toml.Marshal(tomlDoc{Rules: ruleList})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "TOML encoding failed")
	}
	return data, nil
}

// ToYAML renders rules as a native hilite config in YAML.
func ToYAML(ruleList []rules.Rule) ([]byte, error) {
	data, err := yaml.Marshal(tomlDoc{Rules: ruleList})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "YAML encoding failed")
	}
	return data, nil
}

// ToIDEA renders rules as a JetBrains-style XML fragment.
func ToIDEA(ruleList []rules.Rule) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("highlighting")

	for _, r := range ruleList {
		rule := root.CreateElement("rule")
		if r.Name != "" {
			rule.CreateAttr("name", r.Name)
		}
		rule.CreateAttr("pattern", r.Pattern)
		if r.FileFilter != "" {
			rule.CreateAttr("filterFileRegex", r.FileFilter)
		}
		for _, d := range r.Decorations {
			decoration := rule.CreateElement("decoration")
			for _, attr := range []string{
				rules.AttrColor, rules.AttrBackgroundColor,
				rules.AttrFontWeight, rules.AttrFontStyle, rules.AttrTextDecoration,
			} {
				if value, ok := d.ToMap()[attr]; ok {
					decoration.CreateAttr(attr, value)
				}
			}
		}
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "XML encoding failed")
	}
	return data, nil
}

// To dispatches on a format name: vscode, idea, yaml, or toml.
func To(format string, ruleList []rules.Rule) ([]byte, error) {
	switch format {
	case "vscode":
		return ToVSCode(ruleList)
	case "idea":
		return ToIDEA(ruleList)
	case "yaml":
		return ToYAML(ruleList)
	case "toml":
		return ToTOML(ruleList)
	default:
		return nil, errors.Newf(errors.ErrExportFormat, "unknown export format %q", format)
	}
}

// Formats lists the supported export formats.
func Formats() string {
	return fmt.Sprintf("%s, %s, %s, %s", "vscode", "idea", "yaml", "toml")
}
