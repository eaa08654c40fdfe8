// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EventType categorizes a patient history event.
type EventType string

const (
	EventDiagnosis    EventType = "diagnosis"
	EventPrescription EventType = "prescription"
	EventLabResults   EventType = "lab_results"
	EventFollowUp     EventType = "follow_up"
	EventOther        EventType = "other"
)

// KnownEventTypes lists every event type other than EventOther.
var KnownEventTypes = []EventType{EventDiagnosis, EventPrescription, EventLabResults, EventFollowUp}

// PatientEvent is one entry of a patient's recent history.
type PatientEvent struct {
	// Timestamp is an ISO-8601 string as sent by the service.
	Timestamp string    `json:"timestamp" yaml:"timestamp"`
	EventType EventType `json:"event_type" yaml:"event_type"`
	Content   string    `json:"content" yaml:"content"`
}

// PatientSummary is the normalized patient timeline. All slices are
// non-nil and RecentHistory keeps the service order.
type PatientSummary struct {
	PatientID         string         `json:"patient_id" yaml:"patient_id"`
	TotalInteractions int            `json:"total_interactions" yaml:"total_interactions"`
	KeyConditions     []string       `json:"key_conditions" yaml:"key_conditions"`
	Medications       []string       `json:"medications" yaml:"medications"`
	RiskFactors       []string       `json:"risk_factors" yaml:"risk_factors"`
	RecentHistory     []PatientEvent `json:"recent_history" yaml:"recent_history"`

	// Demo reports that the summary was synthesized locally.
	Demo bool `json:"demo,omitempty" yaml:"demo,omitempty"`
}
