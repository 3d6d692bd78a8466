package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/f4ah6o/postindex-go/internal/search"
)

func searchCmd(opts *options) *cobra.Command {
	var (
		maxResults int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "search <QUERY>",
		Short: "Search the written index by title and summary",
		Long: `Search reads the JSON index (not the markdown sources) and lists posts whose
title or summary contains any of the query keywords, most matches first.`,
		Example: `  postindex search "dependency injection"
  postindex search linq --max-results 5 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			results, err := search.SearchIndex(search.SearchOptions{
				IndexPath:  cfg.Output,
				Query:      query,
				MaxResults: maxResults,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return search.FormatJSON(cmd.OutOrStdout(), results)
			}
			search.FormatResults(cmd.OutOrStdout(), results, query)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxResults, "max-results", 10, "Maximum number of results to display")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	return cmd
}
