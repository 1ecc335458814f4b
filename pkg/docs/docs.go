// Package docs serves the embedded documentation topics shown by the docs
// command.
package docs

import (
	"embed"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mwpeters/hilite/pkg/errors"
)

//go:embed topics/*.md
var topicsFS embed.FS

// Topics returns the available topic names, sorted.
func Topics() []string {
	entries, err := topicsFS.ReadDir("topics")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Render returns a topic rendered for the terminal. theme is a glamour
// style name; "auto" detects from the terminal.
func Render(topic, theme string) (string, error) {
	content, err := topicsFS.ReadFile("topics/" + topic + ".md")
	if err != nil {
		return "", errors.Newf(errors.ErrNotFound, "no topic %q (available: %s)",
			topic, strings.Join(Topics(), ", "))
	}

	var options []glamour.TermRendererOption
	if theme != "" && theme != "auto" {
		options = append(options, glamour.WithStylePath(theme))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		// Fall back to the raw markdown.
		return string(content), nil
	}
	rendered, err := renderer.Render(string(content))
	if err != nil {
		return string(content), nil
	}
	return rendered, nil
}
