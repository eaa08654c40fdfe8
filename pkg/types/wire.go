// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RawEvidenceMetadata is the nested metadata block carried by search
// results. Diagnosis and treatment evidence put the same fields at the top
// level instead.
type RawEvidenceMetadata struct {
	Title     string `json:"title,omitempty"`
	Source    string `json:"source,omitempty"`
	Category  string `json:"category,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

// RawEvidence is an evidence record exactly as the service sends it. The
// score arrives as "relevance_score" on some endpoints and "score" on
// others, and may be absent.
type RawEvidence struct {
	Content        string               `json:"content"`
	Title          string               `json:"title,omitempty"`
	Score          *float64             `json:"score,omitempty"`
	RelevanceScore *float64             `json:"relevance_score,omitempty"`
	Category       string               `json:"category,omitempty"`
	Specialty      string               `json:"specialty,omitempty"`
	Source         string               `json:"source,omitempty"`
	Metadata       *RawEvidenceMetadata `json:"metadata,omitempty"`
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`

	// Specialty optionally narrows the search to one specialty.
	Specialty string `json:"specialty,omitempty"`
}

// SearchResponse is the body returned by POST /api/search.
type SearchResponse struct {
	Query   string        `json:"query"`
	Results []RawEvidence `json:"results"`
	Count   int           `json:"count,omitempty"`
}

// DiagnoseRequest is the body of POST /api/diagnose.
type DiagnoseRequest struct {
	PatientID  string `json:"patient_id"`
	Symptoms   string `json:"symptoms"`
	UseHistory bool   `json:"use_history"`
}

// DiagnoseResponse is the body returned by POST /api/diagnose.
type DiagnoseResponse struct {
	PatientID   string        `json:"patient_id,omitempty"`
	Diagnosis   string        `json:"diagnosis"`
	Evidence    []RawEvidence `json:"evidence"`
	HistoryUsed bool          `json:"history_used,omitempty"`
}

// TreatmentRequest is the body of POST /api/treatment.
type TreatmentRequest struct {
	PatientID         string   `json:"patient_id,omitempty"`
	Diagnosis         string   `json:"diagnosis"`
	Contraindications []string `json:"contraindications"`
}

// TreatmentResponse is the body returned by POST /api/treatment.
type TreatmentResponse struct {
	PatientID       string        `json:"patient_id,omitempty"`
	Recommendations string        `json:"recommendations"`
	Evidence        []RawEvidence `json:"evidence"`
	Warnings        []string      `json:"warnings,omitempty"`
	Alternatives    []string      `json:"alternatives,omitempty"`
}

// RawPatientEvent is a history entry as sent by the service. Older
// deployments name the event kind "type" instead of "event_type".
type RawPatientEvent struct {
	Timestamp string `json:"timestamp"`
	EventType string `json:"event_type,omitempty"`
	Type      string `json:"type,omitempty"`
	Content   string `json:"content"`
}

// PatientResponse is the body returned by GET /api/patients/{id}. The
// history list is named "recent_history" or "recent_interactions"
// depending on the deployment.
type PatientResponse struct {
	PatientID          string            `json:"patient_id"`
	TotalInteractions  int               `json:"total_interactions"`
	KeyConditions      []string          `json:"key_conditions,omitempty"`
	Medications        []string          `json:"medications,omitempty"`
	RiskFactors        []string          `json:"risk_factors,omitempty"`
	RecentHistory      []RawPatientEvent `json:"recent_history,omitempty"`
	RecentInteractions []RawPatientEvent `json:"recent_interactions,omitempty"`
}

// StatusResponse is the body returned by GET /.
type StatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// RawCollection is one entry of GET /api/collections. Counts may be
// missing or null.
type RawCollection struct {
	Name                string `json:"name"`
	VectorsCount        *int   `json:"vectors_count,omitempty"`
	IndexedVectorsCount *int   `json:"indexed_vectors_count,omitempty"`
}

// CollectionsResponse is the body returned by GET /api/collections.
type CollectionsResponse struct {
	Collections []RawCollection `json:"collections"`
	Count       int             `json:"count,omitempty"`
}
