// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medvision/internal/demo"
	"github.com/pdiddy/medvision/internal/render"
)

var scenariosCmd = &cobra.Command{
	Use:       "scenarios [diagnosis|treatment]",
	Short:     "List the sample inputs for diagnose and treat",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"diagnosis", "treatment"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		kind := ""
		if len(args) == 1 {
			kind = strings.ToLower(args[0])
		}
		sets := map[string][]demo.Scenario{}
		switch kind {
		case "":
			sets["diagnosis"] = demo.DiagnosisScenarios
			sets["treatment"] = demo.TreatmentScenarios
		case "diagnosis":
			sets[kind] = demo.DiagnosisScenarios
		case "treatment":
			sets[kind] = demo.TreatmentScenarios
		default:
			return fmt.Errorf("unknown scenario kind %q: use diagnosis or treatment", args[0])
		}

		out := cmd.OutOrStdout()
		if format != render.FormatTable {
			return render.Encode(out, format, sets)
		}
		if s, ok := sets["diagnosis"]; ok {
			render.Scenarios(out, "Diagnosis scenarios (medvision diagnose --scenario ID)", s)
		}
		if s, ok := sets["treatment"]; ok {
			if len(sets) > 1 {
				fmt.Fprintln(out)
			}
			render.Scenarios(out, "Treatment scenarios (medvision treat --scenario ID)", s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}
