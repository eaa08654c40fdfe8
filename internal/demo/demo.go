// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package demo supplies canned data for running the client without a
// reachable service: a fixed patient timeline and the sample diagnosis and
// treatment scenarios.
package demo

import (
	"fmt"
	"strings"

	"github.com/pdiddy/medvision/pkg/types"
)

// PatientID is the reserved identifier that puts a patient lookup into
// demo mode.
const PatientID = "DEMO_P001"

// PatientSummary returns the canned summary for id. Only PatientID varies
// with the input; history is ordered most recent first.
func PatientSummary(id string) types.PatientSummary {
	return types.PatientSummary{
		PatientID:         id,
		TotalInteractions: 12,
		KeyConditions:     []string{"Type 2 Diabetes", "Hypertension", "Mild Asthma"},
		Medications:       []string{"Metformin 500mg", "Lisinopril 10mg", "Albuterol Inhaler"},
		RiskFactors:       []string{"Family history of heart disease", "Sedentary lifestyle", "High stress"},
		RecentHistory: []types.PatientEvent{
			{
				Timestamp: "2024-01-15T10:30:00",
				EventType: types.EventDiagnosis,
				Content:   "Routine checkup - Blood pressure elevated at 145/92",
			},
			{
				Timestamp: "2024-01-10T14:15:00",
				EventType: types.EventPrescription,
				Content:   "Prescribed Lisinopril 10mg for hypertension management",
			},
			{
				Timestamp: "2024-01-05T09:00:00",
				EventType: types.EventLabResults,
				Content:   "HbA1c: 7.2% - Diabetes control fair, recommend diet adjustment",
			},
			{
				Timestamp: "2023-12-20T11:45:00",
				EventType: types.EventFollowUp,
				Content:   "Follow-up visit - Patient reports improved energy levels",
			},
		},
		Demo: true,
	}
}

// Scenario is a sample input for the diagnosis or treatment flow.
type Scenario struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	// Text is the symptom description (diagnosis) or the diagnosis
	// (treatment).
	Text string `json:"text" yaml:"text"`

	// Context is the patient context; treatment scenarios only.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
}

// DiagnosisScenarios are sample symptom descriptions.
var DiagnosisScenarios = []Scenario{
	{
		ID:   "S001",
		Name: "Pneumonia",
		Text: "Patient reports productive cough with yellow sputum, fever (39°C), shortness of breath, and chest pain when breathing deeply. Symptoms started 4 days ago.",
	},
	{
		ID:   "S002",
		Name: "Migraine",
		Text: "Patient complains of severe unilateral throbbing headache lasting 6 hours, associated with nausea and sensitivity to light and sound. Has history of similar episodes monthly.",
	},
	{
		ID:   "S003",
		Name: "Diabetes",
		Text: "Patient reports increased thirst, frequent urination (especially at night), unexplained weight loss of 15 lbs in 2 months, and persistent fatigue. No fever.",
	},
}

// TreatmentScenarios are sample diagnoses with patient context.
var TreatmentScenarios = []Scenario{
	{
		ID:      "T001",
		Name:    "Type 2 Diabetes",
		Text:    "Type 2 Diabetes Mellitus with HbA1c 8.2%",
		Context: "Adult patient, BMI 32, sedentary lifestyle, no complications",
	},
	{
		ID:      "T002",
		Name:    "Hypertension",
		Text:    "Primary Hypertension, Stage 2 (BP 165/98)",
		Context: "Middle-aged patient, family history of CVD, mild obesity",
	},
	{
		ID:      "T003",
		Name:    "Community Pneumonia",
		Text:    "Community-Acquired Pneumonia, moderate severity",
		Context: "Adult patient, no comorbidities, normal immune function",
	},
}

// FindScenario looks up a scenario by ID (case-insensitive) or name.
func FindScenario(scenarios []Scenario, key string) (Scenario, error) {
	k := strings.TrimSpace(key)
	for _, s := range scenarios {
		if strings.EqualFold(s.ID, k) || strings.EqualFold(s.Name, k) {
			return s, nil
		}
	}
	ids := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		ids = append(ids, s.ID)
	}
	return Scenario{}, fmt.Errorf("unknown scenario %q (available: %s)", key, strings.Join(ids, ", "))
}
