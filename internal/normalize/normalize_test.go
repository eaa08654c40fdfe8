// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/medvision/pkg/types"
)

func ptr(f float64) *float64 { return &f }

func TestEvidenceScoreAlwaysInRange(t *testing.T) {
	tests := []struct {
		name string
		raw  types.RawEvidence
		want float64
	}{
		{"missing score uses default", types.RawEvidence{Content: "x"}, DefaultScore},
		{"relevance_score kept", types.RawEvidence{RelevanceScore: ptr(0.91)}, 0.91},
		{"score kept", types.RawEvidence{Score: ptr(0.52)}, 0.52},
		{"relevance_score wins over score", types.RawEvidence{Score: ptr(0.1), RelevanceScore: ptr(0.7)}, 0.7},
		{"negative clamps to zero", types.RawEvidence{Score: ptr(-0.4)}, 0},
		{"above one clamps to one", types.RawEvidence{Score: ptr(1.7)}, 1},
		{"zero is a real score", types.RawEvidence{Score: ptr(0)}, 0},
		{"positive infinity", types.RawEvidence{Score: ptr(math.Inf(1))}, 1},
		{"negative infinity", types.RawEvidence{Score: ptr(math.Inf(-1))}, 0},
		{"NaN", types.RawEvidence{Score: ptr(math.NaN())}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evidence(tt.raw).RelevanceScore
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestEvidenceIsIdempotent(t *testing.T) {
	raw := types.RawEvidence{
		Content:  "Metformin is first-line therapy.",
		Score:    ptr(1.3),
		Metadata: &types.RawEvidenceMetadata{Source: "ADA", Category: "treatment"},
	}
	assert.Equal(t, Evidence(raw), Evidence(raw))
}

func TestEvidenceMergesMetadata(t *testing.T) {
	raw := types.RawEvidence{
		Content:  "content",
		Category: "diagnosis",
		Metadata: &types.RawEvidenceMetadata{
			Title:     "From metadata",
			Source:    "WHO Clinical Guidelines",
			Category:  "treatment",
			Specialty: "pulmonology",
		},
	}
	got := Evidence(raw)
	assert.Equal(t, "From metadata", got.Title)
	assert.Equal(t, "WHO Clinical Guidelines", got.Source)
	assert.Equal(t, "diagnosis", got.Category, "top-level field takes precedence")
	assert.Equal(t, "pulmonology", got.Specialty)
}

func TestEvidenceListPreservesOrder(t *testing.T) {
	raws := []types.RawEvidence{
		{Content: "a", Score: ptr(0.91)},
		{Content: "b", Score: ptr(0.77)},
		{Content: "c", Score: ptr(0.52)},
	}
	items := EvidenceList(raws, zerolog.Nop())
	require.Len(t, items, 3)
	assert.Equal(t, []float64{0.91, 0.77, 0.52},
		[]float64{items[0].RelevanceScore, items[1].RelevanceScore, items[2].RelevanceScore})
	assert.Equal(t, "a", items[0].Content)
	assert.Equal(t, "c", items[2].Content)
}

func TestEvidenceListNeverNil(t *testing.T) {
	items := EvidenceList(nil, zerolog.Nop())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLabel(t *testing.T) {
	long := strings.Repeat("hypertension ", 10)
	tests := []struct {
		name string
		item types.EvidenceItem
		want string
	}{
		{"title wins", types.EvidenceItem{Title: "Migraine", Content: "text"}, "Migraine"},
		{"short content", types.EvidenceItem{Content: "Short snippet"}, "Short snippet"},
		{"collapses whitespace", types.EvidenceItem{Content: "Line one\n        line two"}, "Line one line two"},
		{"long content truncated", types.EvidenceItem{Content: long}, strings.Repeat("hypertension ", 10)[:57] + "..."},
		{"empty", types.EvidenceItem{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Label(tt.item)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), LabelLength)
		})
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	assert.Equal(t, "fever ≥38°C", Truncate("fever ≥38°C", 11))
	assert.Equal(t, "fev...", Truncate("fever ≥38°C", 6))
	assert.Equal(t, "fe", Truncate("fever", 2))
}

func TestWindow(t *testing.T) {
	items := []types.EvidenceItem{{Content: "1"}, {Content: "2"}, {Content: "3"}, {Content: "4"}}
	assert.Len(t, Window(items, 3), 3)
	assert.Equal(t, "1", Window(items, 3)[0].Content)
	assert.Len(t, Window(items, 0), 4)
	assert.Len(t, Window(items, 10), 4)
}
