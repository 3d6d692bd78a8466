package main

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/f4ah6o/postindex-go/internal/config"
	"github.com/f4ah6o/postindex-go/internal/pipeline"
)

var (
	colorOK   = color.New(color.FgGreen, color.Bold)
	colorWarn = color.New(color.FgYellow)
)

func buildCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Scan the content directory and write the index",
		Long: `Build performs one full pass over the content directory:

  1. Scan      - list post directories that contain the primary document
  2. Extract   - parse YAML (---) or TOML (+++) front matter
  3. Validate  - require non-empty title and summary, drop drafts
  4. Write     - replace the JSON index atomically

A missing content directory or output directory is an error and leaves the
previous index untouched. Zero posts is not an error: the index becomes [].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}
}

func runBuild(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	return build(cmd, cfg, opts.quiet)
}

func build(cmd *cobra.Command, cfg config.Config, quiet bool) error {
	var logger *log.Logger
	if quiet {
		logger = pipeline.Quiet()
	}

	log.Printf("=== Indexing %s ===", cfg.Source)
	report, err := pipeline.New(cfg, logger).Run(cmd.Context())
	if report != nil {
		printSummary(cmd.OutOrStdout(), report)
	}
	return err
}

func printSummary(w io.Writer, report *pipeline.Report) {
	if len(report.Records) == 0 {
		colorWarn.Fprintf(w, "Warning: no posts indexed; %s contains []\n", report.Output)
	} else {
		colorOK.Fprintf(w, "Indexed %d posts -> %s\n", len(report.Records), report.Output)
	}
	if len(report.Skipped) > 0 {
		colorWarn.Fprintf(w, "Skipped %d\n", len(report.Skipped))
	}
}

// summaryLine is logged after each rebuild in watch mode.
func summaryLine(report *pipeline.Report) string {
	return fmt.Sprintf("Indexed %d posts, skipped %d -> %s", len(report.Records), len(report.Skipped), report.Output)
}
