package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwpeters/hilite/pkg/engine"
	"github.com/mwpeters/hilite/pkg/logging"
	"github.com/mwpeters/hilite/pkg/render"
	"github.com/mwpeters/hilite/pkg/style"
	"github.com/mwpeters/hilite/pkg/watch"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <files...>",
		Short: MsgWatchShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.watch")

			cfg, set, err := loadRules(opts, nil)
			if err != nil {
				return err
			}

			format, err := resolveFormat(opts, cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			h := engine.New(set)
			renderer := render.New(format, cmd.OutOrStdout())

			show := func(path string) {
				text, err := engine.ReadFile(path, cfg.Scan.MaxFileSize)
				if err != nil {
					logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable file")
					return
				}
				cmd.Printf("%s\n", style.TitleStyle.Sprintf("── %s ──", path))
				if err := renderer.Document(h.Document(path, text)); err != nil {
					logger.Error().Err(err).Str("path", path).Msg("Render failed")
				}
			}

			debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
			w, err := watch.New(args, debounce, show)
			if err != nil {
				return err
			}

			// Initial pass before waiting for changes.
			for _, path := range args {
				show(path)
			}

			cmd.Printf(MsgWatchingFormat, len(args))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return w.Run(ctx)
		},
	}
}
