package main

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/f4ah6o/postindex-go/internal/pipeline"
	"github.com/f4ah6o/postindex-go/internal/watcher"
)

func watchCmd(opts *options) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the index whenever the content directory changes",
		Long: `Watch builds the index once, then rebuilds it in full after every change
under the content directory. With --strict, skipped posts are logged as
warnings instead of stopping the watch. Press Ctrl+C to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			// In strict mode skipped posts are reported but do not stop
			// the watch loop; the index has already been written.
			if err := build(cmd, cfg, opts.quiet); err != nil {
				if !errors.Is(err, pipeline.ErrSkippedUnits) {
					return err
				}
				log.Printf("Warning: %v", err)
			}

			rebuild := func() error {
				var logger *log.Logger
				if opts.quiet {
					logger = pipeline.Quiet()
				}
				report, err := pipeline.New(cfg, logger).Run(cmd.Context())
				if report != nil {
					log.Print(summaryLine(report))
				}
				return err
			}
			return watcher.New(cfg.Source, debounce, rebuild).Run(cmd.Context())
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "Quiet period before a rebuild")
	return cmd
}
