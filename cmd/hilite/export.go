package main

import (
	"github.com/spf13/cobra"

	"github.com/mwpeters/hilite/pkg/export"
	"github.com/mwpeters/hilite/pkg/rules"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "export",
		Short: MsgExportShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, set, err := loadRules(opts, nil)
			if err != nil {
				return err
			}

			data, err := export.To(target, plainRules(set))
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&target, "to", "t", "vscode", MsgFlagTo)
	return cmd
}

// plainRules unwraps a compiled rule set back into its rule list.
func plainRules(set *rules.RuleSet) []rules.Rule {
	plain := make([]rules.Rule, 0, len(set.Rules))
	for _, r := range set.Rules {
		plain = append(plain, r.Rule)
	}
	return plain
}
