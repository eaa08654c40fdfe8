// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/medvision/pkg/types"
)

func intPtr(n int) *int { return &n }

func TestPercent(t *testing.T) {
	tests := []struct {
		name string
		stat types.CollectionStat
		want float64
	}{
		{"no vectors", types.CollectionStat{VectorCount: 0, IndexedVectorCount: 0}, 0},
		{"no vectors but indexed count", types.CollectionStat{VectorCount: 0, IndexedVectorCount: 5}, 0},
		{"half indexed", types.CollectionStat{VectorCount: 200, IndexedVectorCount: 100}, 50},
		{"fully indexed", types.CollectionStat{VectorCount: 10, IndexedVectorCount: 10}, 100},
		{"over-indexed clamps", types.CollectionStat{VectorCount: 10, IndexedVectorCount: 15}, 100},
		{"nothing indexed", types.CollectionStat{VectorCount: 10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percent(tt.stat)
			assert.False(t, math.IsNaN(got))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCollectionsDefaultsMissingCounts(t *testing.T) {
	got := Collections([]types.RawCollection{
		{Name: "medical_texts", VectorsCount: intPtr(120), IndexedVectorsCount: intPtr(60)},
		{Name: "medical_images"},
		{Name: "patient_memory", VectorsCount: intPtr(-1)},
	})

	assert.Equal(t, []types.CollectionStat{
		{Name: "medical_texts", VectorCount: 120, IndexedVectorCount: 60},
		{Name: "medical_images"},
		{Name: "patient_memory"},
	}, got)
}
