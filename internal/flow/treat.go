// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/medvision/internal/normalize"
	"github.com/pdiddy/medvision/pkg/types"
)

// ContextDelimiter joins a diagnosis and its patient context.
const ContextDelimiter = ". Patient context: "

// Recommender is the part of the service a treatment request needs.
type Recommender interface {
	Treatment(ctx context.Context, req types.TreatmentRequest) (types.TreatmentResponse, error)
}

// TreatInput is a diagnosis with optional patient context.
type TreatInput struct {
	PatientID         string
	Diagnosis         string
	Context           string
	Contraindications []string
}

// Treat is the treatment-recommendation controller.
type Treat = Controller[TreatInput, types.TreatmentResult]

// CombinedDiagnosis appends the patient context to the diagnosis when the
// context is not blank. The diagnosis itself is sent as entered.
func CombinedDiagnosis(diagnosis, patientContext string) string {
	pc := strings.TrimSpace(patientContext)
	if pc == "" {
		return diagnosis
	}
	return diagnosis + ContextDelimiter + pc
}

// NewTreat returns an idle treatment controller.
func NewTreat(svc Recommender, opts Options) *Treat {
	return newController(definition[TreatInput, types.TreatmentResult]{
		name: "treat",
		validate: func(in TreatInput) error {
			if strings.TrimSpace(in.Diagnosis) == "" {
				return &ValidationError{Message: "Please enter a diagnosis"}
			}
			return nil
		},
		run: func(ctx context.Context, in TreatInput) (types.TreatmentResult, error) {
			contra := make([]string, 0, len(in.Contraindications))
			for _, c := range in.Contraindications {
				if c = strings.TrimSpace(c); c != "" {
					contra = append(contra, c)
				}
			}
			resp, err := svc.Treatment(ctx, types.TreatmentRequest{
				PatientID:         strings.TrimSpace(in.PatientID),
				Diagnosis:         CombinedDiagnosis(in.Diagnosis, in.Context),
				Contraindications: contra,
			})
			if err != nil {
				return types.TreatmentResult{}, err
			}
			return types.TreatmentResult{
				PatientID:          resp.PatientID,
				RecommendationText: resp.Recommendations,
				Evidence:           normalize.EvidenceList(resp.Evidence, opts.Logger),
				Warnings:           normalize.Strings(resp.Warnings),
				Alternatives:       normalize.Strings(resp.Alternatives),
			}, nil
		},
		fallback: "Failed to generate recommendations",
		success:  func(types.TreatmentResult) string { return "Treatment recommendations generated" },
		describe: func(in TreatInput) string {
			return fmt.Sprintf("diagnosis=%q context=%q", summarize(in.Diagnosis), summarize(in.Context))
		},
		count: func(r types.TreatmentResult) int { return len(r.Evidence) },
	}, opts)
}
