// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/medvision/internal/demo"
	"github.com/pdiddy/medvision/pkg/types"
)

func sampleEvidence() []types.EvidenceItem {
	return []types.EvidenceItem{
		{Content: "first", Title: "Community pneumonia guideline", RelevanceScore: 0.92, Source: "pubmed"},
		{Content: "second body text", RelevanceScore: 0.75, Category: "guideline", Specialty: "pulmonology"},
		{Content: "third", Title: "Third", RelevanceScore: 0.5},
		{Content: "fourth", Title: "Fourth", RelevanceScore: 0.2},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTable, "table": FormatTable, "JSON": FormatJSON, " yaml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestBar(t *testing.T) {
	assert.Equal(t, "[..........]", Bar(0, 10))
	assert.Equal(t, "[#####.....]", Bar(0.5, 10))
	assert.Equal(t, "[##########]", Bar(1, 10))
	assert.Equal(t, "[##########]", Bar(3, 10))
	assert.Equal(t, "[..........]", Bar(-1, 10))
}

func TestEvidenceEmpty(t *testing.T) {
	var buf bytes.Buffer
	Evidence(&buf, nil, 0)
	assert.Equal(t, "No matching evidence found.\n", buf.String())
}

func TestEvidenceKeepsServiceOrder(t *testing.T) {
	var buf bytes.Buffer
	Evidence(&buf, sampleEvidence(), 0)
	out := buf.String()

	first := strings.Index(out, "Community pneumonia guideline")
	second := strings.Index(out, "second body text")
	third := strings.Index(out, "Third")
	require.True(t, first > 0 && second > 0 && third > 0, out)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
	assert.Contains(t, out, " 92.0%")
	assert.Contains(t, out, "guideline / pulmonology")
	assert.Contains(t, out, "4 results\n")
}

func TestDiagnosisWindow(t *testing.T) {
	var buf bytes.Buffer
	Diagnosis(&buf, types.DiagnosisResult{
		PatientID:     "P001",
		NarrativeText: "## Likely pneumonia\n",
		Evidence:      sampleEvidence(),
		HistoryUsed:   true,
	}, 3)
	out := buf.String()

	assert.Contains(t, out, "Patient: P001 (history used)")
	assert.Contains(t, out, "## Likely pneumonia")
	assert.Contains(t, out, "Third")
	assert.NotContains(t, out, "Fourth")
	assert.Contains(t, out, "4 results (showing top 3)")
}

func TestTreatmentLists(t *testing.T) {
	var buf bytes.Buffer
	Treatment(&buf, types.TreatmentResult{
		RecommendationText: "Start metformin.",
		Warnings:           []string{"Check renal function"},
		Evidence:           []types.EvidenceItem{},
	}, 0)
	out := buf.String()

	assert.Contains(t, out, "Start metformin.")
	assert.Contains(t, out, "Warnings\n  - Check renal function\n")
	assert.NotContains(t, out, "Alternatives")
	assert.Contains(t, out, "No matching evidence found.")
}

func TestPatientDemo(t *testing.T) {
	var buf bytes.Buffer
	Patient(&buf, demo.PatientSummary(demo.PatientID))
	out := buf.String()

	assert.Contains(t, out, "Patient: DEMO_P001 (demo data)")
	assert.Contains(t, out, "Total interactions: 12")
	assert.Contains(t, out, "  - Metformin 500mg")
	assert.Contains(t, out, "2024-01-15T10:30:00  diagnosis")
	assert.Less(t, strings.Index(out, "2024-01-15"), strings.Index(out, "2023-12-20"))
}

func TestPatientWithoutHistory(t *testing.T) {
	var buf bytes.Buffer
	Patient(&buf, types.PatientSummary{PatientID: "P9"})
	assert.Contains(t, buf.String(), "No recorded history.")
}

func TestSystem(t *testing.T) {
	var buf bytes.Buffer
	System(&buf, types.SystemInfo{
		Status: types.SystemStatus{Status: "online", Service: "medvision", Version: "1.2.0"},
		Collections: []types.CollectionStat{
			{Name: "medical_knowledge", VectorCount: 200, IndexedVectorCount: 150},
			{Name: "empty", VectorCount: 0, IndexedVectorCount: 0},
		},
	})
	out := buf.String()

	assert.Contains(t, out, "Service: medvision 1.2.0")
	assert.Contains(t, out, "Status:  online")
	assert.Contains(t, out, "  75.0%")
	assert.Contains(t, out, "   0.0%")
}

func TestJournal(t *testing.T) {
	var buf bytes.Buffer
	Journal(&buf, nil)
	assert.Equal(t, "No dispatches recorded.\n", buf.String())

	buf.Reset()
	Journal(&buf, []types.JournalEntry{{
		Flow: "search", Phase: "success", Message: "Found 2 relevant results",
		Count: 2, Duration: 1500 * time.Millisecond, At: time.Now(),
	}})
	assert.Contains(t, buf.String(), "Found 2 relevant results")
	assert.Contains(t, buf.String(), "1.5s")
	assert.Contains(t, buf.String(), "1 entries")
}

func TestScenarios(t *testing.T) {
	var buf bytes.Buffer
	Scenarios(&buf, "Treatment scenarios", demo.TreatmentScenarios)
	out := buf.String()
	assert.Contains(t, out, "T001")
	assert.Contains(t, out, "context: Adult patient, BMI 32")
}

func TestEncode(t *testing.T) {
	r := types.SearchResult{Query: "chest pain", Evidence: sampleEvidence()[:1]}

	var js bytes.Buffer
	require.NoError(t, Encode(&js, FormatJSON, r))
	var back types.SearchResult
	require.NoError(t, json.Unmarshal(js.Bytes(), &back))
	assert.Equal(t, r, back)

	var ym bytes.Buffer
	require.NoError(t, Encode(&ym, FormatYAML, r))
	var m map[string]any
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &m))
	assert.Equal(t, "chest pain", m["query"])

	assert.Error(t, Encode(&js, FormatTable, r))
}
