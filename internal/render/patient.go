// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/medvision/internal/demo"
	"github.com/pdiddy/medvision/internal/normalize"
	"github.com/pdiddy/medvision/pkg/types"
)

// Patient writes a patient summary and timeline.
func Patient(w io.Writer, s types.PatientSummary) {
	fmt.Fprintf(w, "Patient: %s", s.PatientID)
	if s.Demo {
		fmt.Fprint(w, " (demo data)")
	}
	fmt.Fprintf(w, "\nTotal interactions: %d\n", s.TotalInteractions)
	list(w, "Key conditions", s.KeyConditions)
	list(w, "Medications", s.Medications)
	list(w, "Risk factors", s.RiskFactors)

	fmt.Fprintln(w, "\nRecent history")
	if len(s.RecentHistory) == 0 {
		fmt.Fprintln(w, "No recorded history.")
		return
	}
	fmt.Fprintf(w, "%-19s  %-12s  %s\n", "Timestamp", "Event", "Details")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, ev := range s.RecentHistory {
		fmt.Fprintf(w, "%-19s  %-12s  %s\n",
			normalize.Truncate(ev.Timestamp, 19), ev.EventType, normalize.Truncate(ev.Content, 65))
	}
}

// System writes the service status and collection indexing progress.
func System(w io.Writer, info types.SystemInfo) {
	st := info.Status
	fmt.Fprintf(w, "Service: %s %s\nStatus:  %s\n\n", st.Service, st.Version, st.Status)

	if len(info.Collections) == 0 {
		fmt.Fprintln(w, "No collections.")
		return
	}
	fmt.Fprintf(w, "%-24s  %10s  %10s  %7s  %s\n", "Collection", "Vectors", "Indexed", "Percent", "Progress")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, c := range info.Collections {
		pct := normalize.Percent(c)
		fmt.Fprintf(w, "%-24s  %10d  %10d  %6.1f%%  %s\n",
			normalize.Truncate(c.Name, 24), c.VectorCount, c.IndexedVectorCount, pct, Bar(pct/100, 20))
	}
}

// Journal writes dispatch history entries.
func Journal(w io.Writer, entries []types.JournalEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No dispatches recorded.")
		return
	}
	fmt.Fprintf(w, "%-19s  %-8s  %-7s  %5s  %8s  %s\n", "Time", "Flow", "Phase", "Count", "Duration", "Message")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, e := range entries {
		fmt.Fprintf(w, "%-19s  %-8s  %-7s  %5d  %8s  %s\n",
			e.At.Local().Format("2006-01-02 15:04:05"), e.Flow, e.Phase, e.Count,
			e.Duration.Round(1e6).String(), normalize.Truncate(e.Message, 45))
	}
	fmt.Fprintf(w, "\n%d entries\n", len(entries))
}

// Scenarios writes a list of demo scenarios.
func Scenarios(w io.Writer, heading string, scenarios []demo.Scenario) {
	fmt.Fprintln(w, heading)
	for _, s := range scenarios {
		fmt.Fprintf(w, "  %-5s %-20s %s\n", s.ID, s.Name, normalize.Truncate(s.Text, 70))
		if s.Context != "" {
			fmt.Fprintf(w, "  %-5s %-20s context: %s\n", "", "", s.Context)
		}
	}
}
