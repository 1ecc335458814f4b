package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwpeters/hilite/pkg/config"
)

func newGenConfigCmd() *cobra.Command {
	var (
		force    bool
		toStdout bool
	)

	cmd := &cobra.Command{
		Use:   "genconfig [path]",
		Short: MsgGenConfigShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateStarter()
			if err != nil {
				return err
			}

			if toStdout {
				cmd.Print(content)
				return nil
			}

			path := ".hilite.toml"
			if len(args) == 1 {
				path = args[0]
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf(MsgErrFileExists, path)
				}
			}

			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return err
			}
			cmd.Printf(MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the configuration instead of writing a file")
	return cmd
}
