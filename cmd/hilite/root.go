package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mwpeters/hilite/internal/version"
	"github.com/mwpeters/hilite/pkg/config"
	"github.com/mwpeters/hilite/pkg/engine"
	"github.com/mwpeters/hilite/pkg/logging"
	"github.com/mwpeters/hilite/pkg/render"
	"github.com/mwpeters/hilite/pkg/rules"
	"github.com/mwpeters/hilite/pkg/ui"
)

// rootOptions carries the persistent flags shared by all commands.
type rootOptions struct {
	verbosity  int
	configPath string
	format     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	var (
		ruleNames []string
		asName    string
	)

	rootCmd := &cobra.Command{
		Use:     "hilite [files...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		// Positional args are files to highlight, not subcommands.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args, opts, ruleNames, asName)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)

	// Root-only flags
	rootCmd.Flags().StringArrayVarP(&ruleNames, "rule", "r", nil, MsgFlagRule)
	rootCmd.Flags().StringVar(&asName, "as", "stdin.txt", MsgFlagAs)

	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newRulesCmd(opts))
	rootCmd.AddCommand(newScanCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newDocsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadRules loads the layered configuration and compiles its rules,
// optionally restricted to an explicit list of rule names.
func loadRules(opts *rootOptions, ruleNames []string) (*config.Config, *rules.RuleSet, error) {
	cfg, err := config.Load(config.LoadOptions{ConfigPath: opts.configPath})
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	set, err := rules.Compile(cfg.Rules)
	if err != nil {
		return nil, nil, err
	}

	if len(ruleNames) > 0 {
		set, err = set.Named(ruleNames)
		if err != nil {
			return nil, nil, err
		}
	}

	return cfg, set, nil
}

// resolveFormat picks the output format from the flag, the configuration
// and the terminal the command writes to, in that order. Output that is
// not a real file (a buffer in tests, for instance) resolves to plain text.
func resolveFormat(opts *rootOptions, cfg *config.Config, out io.Writer) (ui.Format, error) {
	requested := opts.format
	if requested == "" {
		requested = cfg.Output.Format
	}

	format, err := ui.ParseFormat(requested)
	if err != nil {
		return ui.FormatText, err
	}

	if format == ui.FormatAuto {
		if f, ok := out.(*os.File); ok {
			return ui.DetectFormat(f), nil
		}
		return ui.FormatText, nil
	}
	return format, nil
}

func runHighlight(cmd *cobra.Command, args []string, opts *rootOptions, ruleNames []string, asName string) error {
	logger := logging.GetLogger("cmd.root")

	cfg, set, err := loadRules(opts, ruleNames)
	if err != nil {
		return err
	}

	format, err := resolveFormat(opts, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	h := engine.New(set)
	renderer := render.New(format, cmd.OutOrStdout())

	// No file arguments: highlight stdin under a synthetic filename so
	// file filters still apply.
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		text := string(data)

		if format == ui.FormatJSON {
			return renderer.Matches(h.Matches(asName, text))
		}
		return renderer.Document(h.Document(asName, text))
	}

	logger.Debug().Strs("files", args).Msg("Highlighting files")

	var allMatches []engine.Match
	for _, path := range args {
		text, err := engine.ReadFile(path, cfg.Scan.MaxFileSize)
		if err != nil {
			return err
		}

		if format == ui.FormatJSON {
			allMatches = append(allMatches, h.Matches(path, text)...)
			continue
		}
		if err := renderer.Document(h.Document(path, text)); err != nil {
			return err
		}
	}

	if format == ui.FormatJSON {
		return renderer.Matches(allMatches)
	}
	return nil
}
