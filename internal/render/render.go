// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes flow results for a terminal: fixed-width tables
// for people, JSON and YAML for scripts.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/medvision/internal/normalize"
	"github.com/pdiddy/medvision/pkg/types"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat maps a flag value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q: use table, json, or yaml", s)
	}
}

// Encode writes v as JSON or YAML. Table output is handled by the typed
// writers below.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not an encoding", format)
	}
}

// Bar draws fraction (clamped to [0, 1]) as an ASCII bar of width cells.
func Bar(fraction float64, width int) string {
	f := normalize.ClampScore(fraction)
	filled := int(f*float64(width) + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

const barWidth = 10

// Evidence writes ranked evidence. window > 0 shows only the leading
// items; the footer still reports the full count.
func Evidence(w io.Writer, items []types.EvidenceItem, window int) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No matching evidence found.")
		return
	}

	shown := normalize.Window(items, window)
	fmt.Fprintf(w, "%-4s  %-6s  %-12s  %-60s  %s\n", "Rank", "Score", "Relevance", "Title", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for i, item := range shown {
		fmt.Fprintf(w, "%-4d  %5.1f%%  %-12s  %-60s  %s\n",
			i+1, item.RelevanceScore*100, Bar(item.RelevanceScore, barWidth),
			normalize.Label(item), sourceLine(item))
	}

	fmt.Fprintf(w, "\n%d results", len(items))
	if len(shown) < len(items) {
		fmt.Fprintf(w, " (showing top %d)", len(shown))
	}
	fmt.Fprintln(w)
}

func sourceLine(item types.EvidenceItem) string {
	var parts []string
	for _, p := range []string{item.Source, item.Category, item.Specialty} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " / ")
}

// Search writes a knowledge-search result.
func Search(w io.Writer, r types.SearchResult, window int) {
	fmt.Fprintf(w, "Query: %s\n\n", r.Query)
	Evidence(w, r.Evidence, window)
}

// Diagnosis writes a diagnosis with its supporting evidence.
func Diagnosis(w io.Writer, r types.DiagnosisResult, window int) {
	fmt.Fprintf(w, "Patient: %s", r.PatientID)
	if r.HistoryUsed {
		fmt.Fprint(w, " (history used)")
	}
	fmt.Fprint(w, "\n\n")
	fmt.Fprintln(w, strings.TrimSpace(r.NarrativeText))
	fmt.Fprintln(w, "\nSupporting evidence")
	Evidence(w, r.Evidence, window)
}

// Treatment writes recommendations, warnings, alternatives, and evidence.
func Treatment(w io.Writer, r types.TreatmentResult, window int) {
	fmt.Fprintln(w, strings.TrimSpace(r.RecommendationText))
	list(w, "Warnings", r.Warnings)
	list(w, "Alternatives", r.Alternatives)
	fmt.Fprintln(w, "\nEvidence sources")
	Evidence(w, r.Evidence, window)
}

func list(w io.Writer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", heading)
	for _, it := range items {
		fmt.Fprintf(w, "  - %s\n", it)
	}
}
