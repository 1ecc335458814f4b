package main

import (
	"github.com/spf13/cobra"

	"github.com/mwpeters/hilite/pkg/config"
	"github.com/mwpeters/hilite/pkg/docs"
)

func newDocsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "docs [topic]",
		Short:     MsgDocsShort,
		Long:      MsgDocsLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: docs.Topics(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Println(MsgAvailableTopics)
				for _, topic := range docs.Topics() {
					cmd.Printf("  %s\n", topic)
				}
				return nil
			}

			theme := "auto"
			if cfg, err := config.Load(config.LoadOptions{ConfigPath: opts.configPath}); err == nil && cfg.Output.Theme != "" {
				theme = cfg.Output.Theme
			}

			rendered, err := docs.Render(args[0], theme)
			if err != nil {
				return err
			}
			cmd.Print(rendered)
			return nil
		},
	}
}
