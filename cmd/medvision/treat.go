// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medvision/internal/demo"
	"github.com/pdiddy/medvision/internal/flow"
	"github.com/pdiddy/medvision/internal/render"
	"github.com/pdiddy/medvision/pkg/types"
)

var treatCmd = &cobra.Command{
	Use:   "treat [diagnosis]",
	Short: "Ask for treatment recommendations for a diagnosis",
	Long: `Treat sends a diagnosis, optionally with patient context, to the service
and prints the recommended treatment, warnings, alternatives, and the
evidence behind them.`,
	Example: `  medvision treat "Type 2 Diabetes Mellitus" --context "BMI 32, no complications"
  medvision treat --scenario T002 --contraindication "ACE inhibitors"`,
	RunE: runTreat,
}

func runTreat(cmd *cobra.Command, args []string) error {
	patientID, _ := cmd.Flags().GetString("patient")
	patientContext, _ := cmd.Flags().GetString("context")
	contraindications, _ := cmd.Flags().GetStringSlice("contraindication")
	scenario, _ := cmd.Flags().GetString("scenario")
	window, _ := cmd.Flags().GetInt("show")

	diagnosis := strings.Join(args, " ")
	if scenario != "" {
		sc, err := demo.FindScenario(demo.TreatmentScenarios, scenario)
		if err != nil {
			return err
		}
		diagnosis = sc.Text
		if patientContext == "" {
			patientContext = sc.Context
		}
	}

	s := newSession(cmd)
	defer s.Close()

	c := flow.NewTreat(s.client, s.opts)
	in := flow.TreatInput{
		PatientID:         patientID,
		Diagnosis:         diagnosis,
		Context:           patientContext,
		Contraindications: contraindications,
	}
	return runFlow(cmd, s, c, in, "Generating treatment recommendations...", func(w io.Writer, r types.TreatmentResult) {
		render.Treatment(w, r, window)
	})
}

func init() {
	treatCmd.Flags().String("patient", "", "patient ID (optional)")
	treatCmd.Flags().String("context", "", "patient context appended to the diagnosis")
	treatCmd.Flags().StringSlice("contraindication", nil, "known contraindication (repeatable)")
	treatCmd.Flags().String("scenario", "", "use a sample diagnosis and context (T001-T003)")
	treatCmd.Flags().Int("show", 0, "number of evidence items to show (0 shows all)")

	rootCmd.AddCommand(treatCmd)
}
