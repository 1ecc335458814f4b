package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mwpeters/hilite/pkg/scan"
	"github.com/mwpeters/hilite/pkg/style"
	"github.com/mwpeters/hilite/pkg/ui"
)

func newScanCmd(opts *rootOptions) *cobra.Command {
	var includeHidden bool

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: MsgScanShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfg, set, err := loadRules(opts, nil)
			if err != nil {
				return err
			}

			format, err := resolveFormat(opts, cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			scanner := scan.New(set, scan.Options{
				MaxFileSize:   cfg.Scan.MaxFileSize,
				IncludeHidden: includeHidden || cfg.Scan.IncludeHidden,
			})
			report, err := scanner.Run(root)
			if err != nil {
				return err
			}

			if format == ui.FormatJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeHidden, "hidden", false, MsgFlagHidden)
	return cmd
}

func printReport(cmd *cobra.Command, report *scan.Report) {
	cmd.Printf("%s\n", style.TitleStyle.Sprintf("Scanned %d file(s) in %s (%d skipped)",
		report.Scanned, report.Root, report.Skipped))

	if report.TotalMatches() == 0 {
		cmd.Println(MsgNoMatches)
		return
	}

	for _, rr := range report.Rules {
		if len(rr.Files) == 0 {
			continue
		}
		cmd.Printf("\n%s\n", style.RuleStyle.Sprint(rr.Rule))
		for _, f := range rr.Files {
			marker := style.Indicator(style.StatusInfo)
			if f.Matches > 0 {
				marker = style.Indicator(style.StatusOK)
			}
			cmd.Printf("  %s %s %s\n", marker, f.Path,
				style.CountStyle.Sprintf("(%d)", f.Matches))
		}
	}
}
