// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize reshapes raw service payloads into the display
// contracts in pkg/types. Every optional wire field is resolved here once;
// nothing downstream re-interprets a raw record.
//
// The single-record functions are pure. The list variants accept a logger
// so that recovered anomalies (clamped scores, unknown event types) leave a
// diagnostic trace without changing the result.
package normalize

import (
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/medvision/pkg/types"
)

// DefaultScore substitutes for a missing relevance score.
const DefaultScore = 0.8

// LabelLength bounds the label synthesized from content when a record has
// no title.
const LabelLength = 60

// Evidence converts one raw record into an EvidenceItem. Top-level fields
// take precedence over the nested metadata block.
func Evidence(raw types.RawEvidence) types.EvidenceItem {
	item := types.EvidenceItem{
		Title:          strings.TrimSpace(raw.Title),
		Content:        raw.Content,
		RelevanceScore: ClampScore(rawScore(raw)),
		Category:       raw.Category,
		Specialty:      raw.Specialty,
		Source:         raw.Source,
	}
	if md := raw.Metadata; md != nil {
		item.Title = firstNonEmpty(item.Title, strings.TrimSpace(md.Title))
		item.Category = firstNonEmpty(item.Category, md.Category)
		item.Specialty = firstNonEmpty(item.Specialty, md.Specialty)
		item.Source = firstNonEmpty(item.Source, md.Source)
	}
	return item
}

// EvidenceList normalizes raws in order. The result is never nil.
func EvidenceList(raws []types.RawEvidence, logger zerolog.Logger) []types.EvidenceItem {
	items := make([]types.EvidenceItem, 0, len(raws))
	for i, raw := range raws {
		if s := rawScore(raw); s != ClampScore(s) {
			logger.Debug().Int("rank", i+1).Float64("score", s).Msg("relevance score out of range, clamped")
		}
		items = append(items, Evidence(raw))
	}
	return items
}

// ClampScore bounds s to [0, 1]. NaN maps to 0.
func ClampScore(s float64) float64 {
	switch {
	case math.IsNaN(s), s < 0:
		return 0
	case s > 1:
		return 1
	default:
		return s
	}
}

// rawScore picks relevance_score, then score, then DefaultScore.
func rawScore(raw types.RawEvidence) float64 {
	switch {
	case raw.RelevanceScore != nil:
		return *raw.RelevanceScore
	case raw.Score != nil:
		return *raw.Score
	default:
		return DefaultScore
	}
}

// Label returns the heading to display for item: its title, or the first
// LabelLength characters of its whitespace-collapsed content.
func Label(item types.EvidenceItem) string {
	if item.Title != "" {
		return item.Title
	}
	return Truncate(strings.Join(strings.Fields(item.Content), " "), LabelLength)
}

// Truncate shortens s to at most max runes, marking the cut with "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// Window returns at most n leading items; n <= 0 returns all of them.
// The service order is authoritative, so the window never re-sorts.
func Window(items []types.EvidenceItem, n int) []types.EvidenceItem {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
