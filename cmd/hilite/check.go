package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwpeters/hilite/pkg/config"
	"github.com/mwpeters/hilite/pkg/errors"
	"github.com/mwpeters/hilite/pkg/paths"
	"github.com/mwpeters/hilite/pkg/style"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [config-file]",
		Short: MsgCheckShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = paths.FindProjectConfig(".")
			}
			if path == "" {
				return errors.New(errors.ErrConfigLoad, MsgErrNoConfig)
			}

			problems := config.Lint(path)
			if len(problems) == 0 {
				cmd.Printf("%s %s: %s\n", style.Indicator(style.StatusOK), path, MsgConfigValid)
				return nil
			}

			for _, p := range problems {
				cmd.Printf("%s %s\n", style.Indicator(style.StatusFail), p)
			}
			return fmt.Errorf(MsgErrConfigCheck, len(problems), path)
		},
	}
}
