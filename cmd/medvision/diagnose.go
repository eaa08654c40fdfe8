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

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [symptoms]",
	Short: "Ask for a diagnosis from a symptom description",
	Long: `Diagnose sends a patient ID and a symptom description to the service and
prints the generated assessment with its supporting evidence. By default
the service may use the patient's recorded history.

Use --scenario with one of the sample IDs from "medvision scenarios" to
fill in the symptoms.`,
	Example: `  medvision diagnose --patient P001 "productive cough, fever, chest pain"
  medvision diagnose --patient P001 --scenario S002`,
	RunE: runDiagnose,
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	patientID, _ := cmd.Flags().GetString("patient")
	useHistory, _ := cmd.Flags().GetBool("history")
	scenario, _ := cmd.Flags().GetString("scenario")
	window, _ := cmd.Flags().GetInt("show")

	symptoms := strings.Join(args, " ")
	if scenario != "" {
		sc, err := demo.FindScenario(demo.DiagnosisScenarios, scenario)
		if err != nil {
			return err
		}
		symptoms = sc.Text
	}

	s := newSession(cmd)
	defer s.Close()

	c := flow.NewDiagnose(s.client, s.opts)
	in := flow.DiagnoseInput{PatientID: patientID, Symptoms: symptoms, UseHistory: useHistory}
	return runFlow(cmd, s, c, in, "Analyzing symptoms...", func(w io.Writer, r types.DiagnosisResult) {
		render.Diagnosis(w, r, window)
	})
}

func init() {
	diagnoseCmd.Flags().String("patient", "", "patient ID")
	diagnoseCmd.Flags().Bool("history", true, "let the service use the patient's history")
	diagnoseCmd.Flags().String("scenario", "", "use a sample symptom description (S001-S003)")
	diagnoseCmd.Flags().Int("show", 3, "number of evidence items to show (0 shows all)")

	rootCmd.AddCommand(diagnoseCmd)
}
