package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mwpeters/hilite/pkg/errors"
	"github.com/mwpeters/hilite/pkg/export"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <settings.json>",
		Short: MsgImportShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", args[0])
			}

			imported, err := export.FromVSCode(data)
			if err != nil {
				return err
			}

			out, err := export.ToTOML(imported)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
