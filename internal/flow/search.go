// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/medvision/internal/normalize"
	"github.com/pdiddy/medvision/pkg/types"
)

// DefaultTopK is the result-count limit when the caller gives none.
const DefaultTopK = 5

// Searcher is the part of the service a knowledge search needs.
type Searcher interface {
	Search(ctx context.Context, req types.SearchRequest) (types.SearchResponse, error)
}

// SearchInput is a free-text knowledge query.
type SearchInput struct {
	Query     string
	TopK      int
	Specialty string
}

// Search is the knowledge-search controller.
type Search = Controller[SearchInput, types.SearchResult]

// NewSearch returns an idle knowledge-search controller.
func NewSearch(svc Searcher, opts Options) *Search {
	return newController(definition[SearchInput, types.SearchResult]{
		name: "search",
		validate: func(in SearchInput) error {
			if strings.TrimSpace(in.Query) == "" {
				return &ValidationError{Message: "Please enter a search query"}
			}
			return nil
		},
		run: func(ctx context.Context, in SearchInput) (types.SearchResult, error) {
			query := strings.TrimSpace(in.Query)
			topK := in.TopK
			if topK <= 0 {
				topK = DefaultTopK
			}
			resp, err := svc.Search(ctx, types.SearchRequest{
				Query:     query,
				TopK:      topK,
				Specialty: strings.TrimSpace(in.Specialty),
			})
			if err != nil {
				return types.SearchResult{}, err
			}
			if resp.Query != "" {
				query = resp.Query
			}
			return types.SearchResult{
				Query:    query,
				Evidence: normalize.EvidenceList(resp.Results, opts.Logger),
			}, nil
		},
		fallback: "Search failed. Please try again.",
		success: func(r types.SearchResult) string {
			return fmt.Sprintf("Found %d relevant results", len(r.Evidence))
		},
		describe: func(in SearchInput) string {
			return fmt.Sprintf("query=%q top_k=%d", summarize(in.Query), in.TopK)
		},
		count: func(r types.SearchResult) int { return len(r.Evidence) },
	}, opts)
}

// summarize shortens free text for journal entries.
func summarize(s string) string {
	return normalize.Truncate(strings.Join(strings.Fields(s), " "), 80)
}
