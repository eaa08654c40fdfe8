// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medvision/internal/flow"
	"github.com/pdiddy/medvision/internal/render"
	"github.com/pdiddy/medvision/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the medical knowledge base",
	Long: `Search sends a free-text query to the knowledge base and lists the
matching evidence in the order the service ranked it.`,
	Example: `  medvision search "first-line treatment for community acquired pneumonia"
  medvision search --top-k 10 --specialty cardiology "atrial fibrillation"`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	defer s.Close()

	topK, _ := cmd.Flags().GetInt("top-k")
	if topK <= 0 {
		topK = s.cfg.TopK
	}
	specialty, _ := cmd.Flags().GetString("specialty")
	window, _ := cmd.Flags().GetInt("show")

	c := flow.NewSearch(s.client, s.opts)
	in := flow.SearchInput{Query: strings.Join(args, " "), TopK: topK, Specialty: specialty}
	return runFlow(cmd, s, c, in, "Searching medical knowledge...", func(w io.Writer, r types.SearchResult) {
		render.Search(w, r, window)
	})
}

func init() {
	searchCmd.Flags().Int("top-k", 0, "maximum number of results to request (default from config, 5)")
	searchCmd.Flags().String("specialty", "", "restrict results to one specialty")
	searchCmd.Flags().Int("show", 0, "show only the first N results (0 shows all)")

	rootCmd.AddCommand(searchCmd)
}
