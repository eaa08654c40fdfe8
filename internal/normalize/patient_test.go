// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/medvision/pkg/types"
)

func TestEventType(t *testing.T) {
	tests := []struct {
		in   string
		want types.EventType
	}{
		{"diagnosis", types.EventDiagnosis},
		{"prescription", types.EventPrescription},
		{"lab_results", types.EventLabResults},
		{"Lab Results", types.EventLabResults},
		{"follow-up", types.EventFollowUp},
		{" FOLLOW_UP ", types.EventFollowUp},
		{"imaging", types.EventOther},
		{"", types.EventOther},
		{"other", types.EventOther},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EventType(tt.in))
		})
	}
}

func TestPatientSummaryDefaults(t *testing.T) {
	got := PatientSummary(types.PatientResponse{PatientID: "P9", TotalInteractions: -3}, zerolog.Nop())

	assert.Equal(t, "P9", got.PatientID)
	assert.Equal(t, 0, got.TotalInteractions)
	assert.NotNil(t, got.KeyConditions)
	assert.NotNil(t, got.Medications)
	assert.NotNil(t, got.RiskFactors)
	assert.NotNil(t, got.RecentHistory)
	assert.Empty(t, got.RecentHistory)
}

func TestPatientSummaryHistory(t *testing.T) {
	raw := types.PatientResponse{
		PatientID:         "P001",
		TotalInteractions: 3,
		KeyConditions:     []string{"Hypertension"},
		RecentHistory: []types.RawPatientEvent{
			{Timestamp: "2024-01-15T10:30:00", EventType: "diagnosis", Content: "BP elevated"},
			{Timestamp: "2024-01-10T14:15:00", EventType: "imaging", Content: "Chest X-ray"},
			{Timestamp: "2024-01-05T09:00:00", Type: "lab_results", Content: "HbA1c 7.2%"},
		},
	}
	got := PatientSummary(raw, zerolog.Nop())

	require.Len(t, got.RecentHistory, 3)
	assert.Equal(t, types.EventDiagnosis, got.RecentHistory[0].EventType)
	assert.Equal(t, types.EventOther, got.RecentHistory[1].EventType)
	assert.Equal(t, types.EventLabResults, got.RecentHistory[2].EventType)
	assert.Equal(t, "2024-01-15T10:30:00", got.RecentHistory[0].Timestamp)
	assert.Equal(t, []string{"Hypertension"}, got.KeyConditions)
}

func TestPatientSummaryFallsBackToRecentInteractions(t *testing.T) {
	raw := types.PatientResponse{
		PatientID: "P002",
		RecentInteractions: []types.RawPatientEvent{
			{Timestamp: "2024-02-01T08:00:00", Type: "diagnosis", Content: "Symptoms: cough"},
		},
	}
	got := PatientSummary(raw, zerolog.Nop())
	require.Len(t, got.RecentHistory, 1)
	assert.Equal(t, types.EventDiagnosis, got.RecentHistory[0].EventType)
}
