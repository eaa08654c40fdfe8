// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientSummaryEchoesID(t *testing.T) {
	for _, id := range []string{PatientID, "P001", "anything"} {
		s := PatientSummary(id)
		assert.Equal(t, id, s.PatientID)
		assert.Equal(t, 12, s.TotalInteractions)
		assert.True(t, s.Demo)
	}
}

func TestPatientSummaryDeterministic(t *testing.T) {
	a, b := PatientSummary("X"), PatientSummary("X")
	assert.Equal(t, a, b)

	// Callers may mutate their copy without affecting later summaries.
	a.KeyConditions[0] = "changed"
	assert.Equal(t, "Type 2 Diabetes", PatientSummary("X").KeyConditions[0])
}

func TestPatientSummaryHistoryMostRecentFirst(t *testing.T) {
	h := PatientSummary(PatientID).RecentHistory
	require.Len(t, h, 4)

	var prev time.Time
	for i, ev := range h {
		ts, err := time.Parse("2006-01-02T15:04:05", ev.Timestamp)
		require.NoError(t, err)
		if i > 0 {
			assert.True(t, ts.Before(prev), "event %d should be older than event %d", i, i-1)
		}
		prev = ts
	}

	first, _ := time.Parse("2006-01-02T15:04:05", h[0].Timestamp)
	last, _ := time.Parse("2006-01-02T15:04:05", h[3].Timestamp)
	span := first.Sub(last)
	assert.True(t, span > 20*24*time.Hour && span < 40*24*time.Hour, "history spans about a month, got %v", span)
}

func TestFindScenario(t *testing.T) {
	s, err := FindScenario(DiagnosisScenarios, "s002")
	require.NoError(t, err)
	assert.Equal(t, "Migraine", s.Name)

	s, err = FindScenario(TreatmentScenarios, "hypertension")
	require.NoError(t, err)
	assert.Equal(t, "T002", s.ID)
	assert.NotEmpty(t, s.Context)

	_, err = FindScenario(DiagnosisScenarios, "S999")
	assert.ErrorContains(t, err, "S001, S002, S003")
}
