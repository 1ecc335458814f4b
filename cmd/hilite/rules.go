package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwpeters/hilite/pkg/rules"
	"github.com/mwpeters/hilite/pkg/style"
)

func newRulesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: MsgRulesShort,
		Long:  MsgRulesLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, set, err := loadRules(opts, nil)
			if err != nil {
				return err
			}

			if len(set.Rules) == 0 {
				cmd.Println(MsgNoRules)
				return nil
			}

			for _, r := range set.Rules {
				cmd.Printf("%s %s\n", style.RuleStyle.Sprint(r.Label()), style.MutedStyle.Sprintf("(%s)", r.Origin))
				cmd.Printf("  pattern: %s\n", r.Rule.Pattern)
				if r.Rule.FileFilter != "" {
					cmd.Printf("  files:   %s\n", r.Rule.FileFilter)
				}
				for i, d := range r.Rule.Decorations {
					cmd.Printf("  deco %d:  %s\n", i+1, describeDecoration(d))
				}
			}
			return nil
		},
	}
}

// describeDecoration renders one decoration as "key=value" pairs in a
// stable order.
func describeDecoration(d rules.Decoration) string {
	attrs := d.ToMap()
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, attrs[k]))
	}
	return strings.Join(parts, " ")
}
