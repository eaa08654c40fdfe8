// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/medvision/internal/demo"
	"github.com/pdiddy/medvision/internal/normalize"
	"github.com/pdiddy/medvision/pkg/types"
)

// DefaultDemoDelay is the simulated latency of a demo lookup.
const DefaultDemoDelay = 500 * time.Millisecond

// PatientFetcher is the part of the service a patient lookup needs.
type PatientFetcher interface {
	Patient(ctx context.Context, patientID string) (types.PatientResponse, error)
}

// PatientInput identifies the patient to load. Demo forces demo mode for
// any identifier.
type PatientInput struct {
	PatientID string
	Demo      bool
}

// IsDemo reports whether the lookup bypasses the service.
func (in PatientInput) IsDemo() bool {
	return in.Demo || strings.TrimSpace(in.PatientID) == demo.PatientID
}

// PatientLookup is the patient-history controller.
type PatientLookup = Controller[PatientInput, types.PatientSummary]

// NewPatientLookup returns an idle patient-history controller. Demo
// lookups resolve from the canned summary after demoDelay without
// contacting svc; a delay of zero or less resolves immediately.
func NewPatientLookup(svc PatientFetcher, demoDelay time.Duration, opts Options) *PatientLookup {
	return newController(definition[PatientInput, types.PatientSummary]{
		name: "patient",
		validate: func(in PatientInput) error {
			if strings.TrimSpace(in.PatientID) == "" {
				return &ValidationError{Message: "Please enter a patient ID"}
			}
			return nil
		},
		run: func(ctx context.Context, in PatientInput) (types.PatientSummary, error) {
			id := strings.TrimSpace(in.PatientID)
			if in.IsDemo() {
				if err := sleep(ctx, demoDelay); err != nil {
					return types.PatientSummary{}, err
				}
				return demo.PatientSummary(id), nil
			}
			resp, err := svc.Patient(ctx, id)
			if err != nil {
				return types.PatientSummary{}, err
			}
			summary := normalize.PatientSummary(resp, opts.Logger)
			if summary.PatientID == "" {
				summary.PatientID = id
			}
			return summary, nil
		},
		fallback: "Failed to load patient data",
		success: func(s types.PatientSummary) string {
			if s.Demo {
				return "Demo patient loaded"
			}
			return "Patient data loaded successfully"
		},
		describe: func(in PatientInput) string {
			return fmt.Sprintf("patient=%s demo=%t", in.PatientID, in.IsDemo())
		},
		count: func(s types.PatientSummary) int { return len(s.RecentHistory) },
	}, opts)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
