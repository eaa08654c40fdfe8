// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/medvision/pkg/types"
)

// EventType maps a raw event kind onto the known set. Unknown or empty
// kinds become types.EventOther.
func EventType(raw string) types.EventType {
	k := strings.ToLower(strings.TrimSpace(raw))
	k = strings.NewReplacer("-", "_", " ", "_").Replace(k)
	for _, t := range types.KnownEventTypes {
		if k == string(t) {
			return t
		}
	}
	return types.EventOther
}

// PatientSummary converts a patient response. History order is kept as
// sent; lists are never nil.
func PatientSummary(raw types.PatientResponse, logger zerolog.Logger) types.PatientSummary {
	total := raw.TotalInteractions
	if total < 0 {
		logger.Debug().Int("total_interactions", total).Msg("negative interaction count, using 0")
		total = 0
	}

	history := raw.RecentHistory
	if len(history) == 0 {
		history = raw.RecentInteractions
	}

	events := make([]types.PatientEvent, 0, len(history))
	for _, ev := range history {
		kind := firstNonEmpty(ev.EventType, ev.Type)
		et := EventType(kind)
		if et == types.EventOther && kind != "" && !strings.EqualFold(kind, string(types.EventOther)) {
			logger.Debug().Str("event_type", kind).Msg("unknown event type, using other")
		}
		events = append(events, types.PatientEvent{
			Timestamp: ev.Timestamp,
			EventType: et,
			Content:   ev.Content,
		})
	}

	return types.PatientSummary{
		PatientID:         raw.PatientID,
		TotalInteractions: total,
		KeyConditions:     nonNil(raw.KeyConditions),
		Medications:       nonNil(raw.Medications),
		RiskFactors:       nonNil(raw.RiskFactors),
		RecentHistory:     events,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Strings returns s, or an empty slice when s is nil.
func Strings(s []string) []string { return nonNil(s) }
