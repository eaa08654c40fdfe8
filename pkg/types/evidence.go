// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the request and response contracts shared by the
// medvision client: the wire shapes sent to and received from the
// medical-assistant API, and the normalized shapes handed to presentation.
//
// Wire shapes are the union of every observed payload variant. Any field
// the service does not guarantee is a pointer or an omittable value, and
// is resolved exactly once by the normalize package.
package types

// EvidenceItem is a single ranked snippet of supporting content after
// normalization. It is read-only once built.
type EvidenceItem struct {
	// Title is the snippet heading. It may be empty; presentation then
	// synthesizes a label from Content.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Content is the snippet text.
	Content string `json:"content" yaml:"content"`

	// RelevanceScore is always within [0, 1].
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`

	Category  string `json:"category,omitempty" yaml:"category,omitempty"`
	Specialty string `json:"specialty,omitempty" yaml:"specialty,omitempty"`
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
}

// SearchResult is the normalized outcome of a knowledge search. Evidence is
// in service rank order and is empty, not nil, when nothing matched.
type SearchResult struct {
	Query    string         `json:"query" yaml:"query"`
	Evidence []EvidenceItem `json:"evidence" yaml:"evidence"`
}

// DiagnosisResult is the normalized outcome of a diagnosis request.
type DiagnosisResult struct {
	// PatientID echoes the patient the diagnosis was generated for.
	PatientID string `json:"patient_id" yaml:"patient_id"`

	// NarrativeText is markdown generated by the service.
	NarrativeText string `json:"narrative_text" yaml:"narrative_text"`

	// Evidence is in service rank order.
	Evidence []EvidenceItem `json:"evidence" yaml:"evidence"`

	// HistoryUsed reports whether the service folded patient history in.
	HistoryUsed bool `json:"history_used" yaml:"history_used"`
}

// TreatmentResult is the normalized outcome of a treatment request.
// Warnings and Alternatives are never nil.
type TreatmentResult struct {
	PatientID          string         `json:"patient_id,omitempty" yaml:"patient_id,omitempty"`
	RecommendationText string         `json:"recommendation_text" yaml:"recommendation_text"`
	Evidence           []EvidenceItem `json:"evidence" yaml:"evidence"`
	Warnings           []string       `json:"warnings" yaml:"warnings"`
	Alternatives       []string       `json:"alternatives" yaml:"alternatives"`
}
