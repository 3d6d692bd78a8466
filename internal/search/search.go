// Package search runs keyword queries against a written index artifact.
// It matches the way the site's search widget works: case-insensitive
// substring matching of each keyword against title and summary.
package search

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/f4ah6o/postindex-go/internal/content"
	"github.com/f4ah6o/postindex-go/internal/writer"
)

var (
	// ANSI colors for terminal output
	colorHeader = color.New(color.FgHiMagenta, color.Bold)
	colorBold   = color.New(color.Bold)
	colorCyan   = color.New(color.FgCyan)
)

// Match ranks records against query. Keywords are OR-ed; a record's score is
// the total number of keyword occurrences in its title and summary. Ties keep
// index order.
func Match(records []content.IndexRecord, query string) []SearchResult {
	keywords := strings.Fields(strings.ToLower(query))
	if len(keywords) == 0 {
		return nil
	}

	var results []SearchResult
	for _, rec := range records {
		text := strings.ToLower(rec.Title + "\n" + rec.Summary)
		matches := 0
		for _, kw := range keywords {
			matches += strings.Count(text, kw)
		}
		if matches > 0 {
			results = append(results, SearchResult{IndexRecord: rec, Matches: matches})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Matches > results[j].Matches
	})
	return results
}

// SearchIndex loads the artifact at opts.IndexPath and ranks its records.
func SearchIndex(opts SearchOptions) ([]SearchResult, error) {
	records, err := writer.Read(opts.IndexPath)
	if err != nil {
		return nil, err
	}

	results := Match(records, opts.Query)
	if opts.MaxResults > 0 && len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return results, nil
}

// FormatResults prints results in a human-readable format
func FormatResults(w io.Writer, results []SearchResult, query string) {
	if len(results) == 0 {
		fmt.Fprintf(w, "No matches found for '%s'.\n", query)
		return
	}

	colorHeader.Fprintf(w, "\nSearch Results for '%s'\n", query)
	fmt.Fprintf(w, "Found %d matching posts.\n\n", len(results))

	for i, res := range results {
		colorBold.Fprintf(w, "%d. %s\n", i+1, res.Title)
		fmt.Fprintf(w, "   Matches: %d | URL: %s\n", res.Matches, res.URL)
		colorCyan.Fprintln(w, strings.Repeat("-", 40))
		fmt.Fprintf(w, "   %s\n\n", res.Summary)
	}
}

// FormatJSON prints results as JSON
func FormatJSON(w io.Writer, results []SearchResult) error {
	if results == nil {
		results = []SearchResult{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
