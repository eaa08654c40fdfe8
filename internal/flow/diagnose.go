// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/medvision/internal/normalize"
	"github.com/pdiddy/medvision/pkg/types"
)

// Diagnoser is the part of the service a diagnosis needs.
type Diagnoser interface {
	Diagnose(ctx context.Context, req types.DiagnoseRequest) (types.DiagnoseResponse, error)
}

// DiagnoseInput pairs a patient with a symptom description.
type DiagnoseInput struct {
	PatientID  string
	Symptoms   string
	UseHistory bool
}

// Diagnose is the diagnosis controller.
type Diagnose = Controller[DiagnoseInput, types.DiagnosisResult]

// NewDiagnose returns an idle diagnosis controller.
func NewDiagnose(svc Diagnoser, opts Options) *Diagnose {
	return newController(definition[DiagnoseInput, types.DiagnosisResult]{
		name: "diagnose",
		validate: func(in DiagnoseInput) error {
			if strings.TrimSpace(in.PatientID) == "" || strings.TrimSpace(in.Symptoms) == "" {
				return &ValidationError{Message: "Please provide Patient ID and symptoms"}
			}
			return nil
		},
		run: func(ctx context.Context, in DiagnoseInput) (types.DiagnosisResult, error) {
			patientID := strings.TrimSpace(in.PatientID)
			resp, err := svc.Diagnose(ctx, types.DiagnoseRequest{
				PatientID:  patientID,
				Symptoms:   strings.TrimSpace(in.Symptoms),
				UseHistory: in.UseHistory,
			})
			if err != nil {
				return types.DiagnosisResult{}, err
			}
			if resp.PatientID != "" {
				patientID = resp.PatientID
			}
			return types.DiagnosisResult{
				PatientID:     patientID,
				NarrativeText: resp.Diagnosis,
				Evidence:      normalize.EvidenceList(resp.Evidence, opts.Logger),
				HistoryUsed:   resp.HistoryUsed,
			}, nil
		},
		fallback: "Failed to generate diagnosis",
		success:  func(types.DiagnosisResult) string { return "Diagnosis complete" },
		describe: func(in DiagnoseInput) string {
			return fmt.Sprintf("patient=%s history=%t symptoms=%q", in.PatientID, in.UseHistory, summarize(in.Symptoms))
		},
		count: func(r types.DiagnosisResult) int { return len(r.Evidence) },
	}, opts)
}
