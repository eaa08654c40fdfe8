// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/medvision/internal/journal"
	"github.com/pdiddy/medvision/internal/render"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, export, or prune recorded dispatches",
	Long: `History reads the local journal of dispatch outcomes. Every search,
diagnosis, treatment, patient lookup, and status check records its flow,
input summary, outcome message, result count, and duration.

Use --export to write matching entries to a .json or .yaml file, and
--purge to delete entries older than a duration.`,
	Example: `  medvision history --flow diagnose --phase error
  medvision history --since 24h --export last-day.yaml
  medvision history --purge 720h`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	path := viper.GetString("journal_path")
	if path == "" {
		return fmt.Errorf("journal is disabled (journal_path is empty)")
	}
	store, err := journal.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if purge, _ := cmd.Flags().GetDuration("purge"); purge > 0 {
		n, err := store.Purge(ctx, time.Now().Add(-purge))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Purged %d entries older than %s\n", n, purge)
		return nil
	}

	f := journal.Filter{}
	f.Flow, _ = cmd.Flags().GetString("flow")
	f.Phase, _ = cmd.Flags().GetString("phase")
	f.Limit, _ = cmd.Flags().GetInt("limit")
	if since, _ := cmd.Flags().GetDuration("since"); since > 0 {
		f.Since = time.Now().Add(-since)
	}

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		n, err := store.Export(ctx, f, exportPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported %d entries to %s\n", n, exportPath)
		return nil
	}

	entries, err := store.Recent(ctx, f)
	if err != nil {
		return err
	}
	if format == render.FormatTable {
		render.Journal(out, entries)
		return nil
	}
	return render.Encode(out, format, entries)
}

func init() {
	historyCmd.Flags().String("flow", "", "only show one flow (search, diagnose, treat, patient, status)")
	historyCmd.Flags().String("phase", "", "only show success or error outcomes")
	historyCmd.Flags().Duration("since", 0, "only show entries newer than this (e.g. 24h)")
	historyCmd.Flags().Int("limit", 20, "maximum number of entries")
	historyCmd.Flags().String("export", "", "write matching entries to a .json or .yaml file")
	historyCmd.Flags().Duration("purge", 0, "delete entries older than this duration")

	rootCmd.AddCommand(historyCmd)
}
