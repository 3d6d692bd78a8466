package search

import "github.com/f4ah6o/postindex-go/internal/content"

// SearchResult is one matching index record.
type SearchResult struct {
	content.IndexRecord
	Matches int `json:"matches"`
}

// SearchOptions contains configuration for search operations
type SearchOptions struct {
	IndexPath  string
	Query      string
	MaxResults int
}
