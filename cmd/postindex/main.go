// Package main is the entry point for the postindex tool.
// postindex scans a blog content directory, reads each post's front matter,
// and writes the JSON index consumed by the site's search and filter widget.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/f4ah6o/postindex-go/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

// options carries the persistent flags shared by every subcommand.
type options struct {
	configPath    string
	source        string
	output        string
	document      string
	urlPrefix     string
	includeDrafts bool
	strict        bool
	quiet         bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "postindex",
		Short: "Build the blog post search index",
		Long: `postindex walks a content directory with one subdirectory per post,
reads the front matter of each post's primary document, and writes a JSON
array of {title, summary, url} records for the site's search widget.

Running postindex with no subcommand is the same as "postindex build".`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (default ./"+config.DefaultFile+" if present)")
	pf.StringVar(&opts.source, "source", "", "Content root with one subdirectory per post")
	pf.StringVar(&opts.output, "output", "", "Path of the JSON index to write")
	pf.StringVar(&opts.document, "document", "", "Primary document name inside each post directory")
	pf.StringVar(&opts.urlPrefix, "url-prefix", "", "Prefix joined with the post slug to form its URL")
	pf.BoolVar(&opts.includeDrafts, "include-drafts", false, "Index posts marked draft: true")
	pf.BoolVar(&opts.strict, "strict", false, "Exit non-zero if any post is skipped")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "Do not log skipped posts")

	root.AddCommand(buildCmd(opts))
	root.AddCommand(watchCmd(opts))
	root.AddCommand(searchCmd(opts))
	root.AddCommand(serveCmd(opts))

	return root
}

// resolveConfig layers flags that were set explicitly over the config file.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = opts.source
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("document") {
		cfg.Document = opts.document
	}
	if flags.Changed("url-prefix") {
		cfg.URLPrefix = opts.urlPrefix
	}
	if flags.Changed("include-drafts") {
		cfg.IncludeDrafts = opts.includeDrafts
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}

	return cfg, cfg.Validate()
}
