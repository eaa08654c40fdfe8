// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medvision/internal/demo"
	"github.com/pdiddy/medvision/internal/flow"
	"github.com/pdiddy/medvision/internal/render"
)

var patientCmd = &cobra.Command{
	Use:   "patient [patient-id]",
	Short: "Load a patient's summary and recent history",
	Long: fmt.Sprintf(`Patient loads a patient's conditions, medications, risk factors, and
recent history from the service.

The ID %s, or the --demo flag, loads canned data without contacting
the service.`, demo.PatientID),
	Args: cobra.MaximumNArgs(1),
	RunE: runPatient,
}

func runPatient(cmd *cobra.Command, args []string) error {
	useDemo, _ := cmd.Flags().GetBool("demo")
	var id string
	if len(args) == 1 {
		id = args[0]
	} else if useDemo {
		id = demo.PatientID
	}

	s := newSession(cmd)
	defer s.Close()

	c := flow.NewPatientLookup(s.client, s.cfg.DemoDelay, s.opts)
	in := flow.PatientInput{PatientID: id, Demo: useDemo}
	return runFlow(cmd, s, c, in, "Loading patient data...", render.Patient)
}

func init() {
	patientCmd.Flags().Bool("demo", false, "load demo data instead of calling the service")

	rootCmd.AddCommand(patientCmd)
}
