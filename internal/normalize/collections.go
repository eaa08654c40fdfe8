// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"math"

	"github.com/pdiddy/medvision/pkg/types"
)

// Collections converts the collection list, treating missing or negative
// counts as zero.
func Collections(raws []types.RawCollection) []types.CollectionStat {
	stats := make([]types.CollectionStat, 0, len(raws))
	for _, c := range raws {
		stats = append(stats, types.CollectionStat{
			Name:               c.Name,
			VectorCount:        count(c.VectorsCount),
			IndexedVectorCount: count(c.IndexedVectorsCount),
		})
	}
	return stats
}

func count(n *int) int {
	if n == nil || *n < 0 {
		return 0
	}
	return *n
}

// Percent returns how much of a collection is indexed, in [0, 100].
// A collection with no vectors is 0% indexed.
func Percent(stat types.CollectionStat) float64 {
	if stat.VectorCount <= 0 || stat.IndexedVectorCount <= 0 {
		return 0
	}
	p := float64(stat.IndexedVectorCount) / float64(stat.VectorCount) * 100
	return math.Min(100, math.Max(0, p))
}
