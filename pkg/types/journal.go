// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// JournalEntry records the terminal outcome of one dispatch.
type JournalEntry struct {
	// Flow names the controller ("search", "diagnose", "treat", "patient", "status").
	Flow string `json:"flow" yaml:"flow"`

	// RequestID correlates the entry with the X-Request-ID header sent to
	// the service. Empty for dispatches that never reached the network.
	RequestID string `json:"request_id,omitempty" yaml:"request_id,omitempty"`

	// Input is a short human-readable summary of the dispatch input.
	Input string `json:"input" yaml:"input"`

	// Phase is "success" or "error".
	Phase string `json:"phase" yaml:"phase"`

	// Message is the user-facing outcome message.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Count is the number of evidence items or events in a successful result.
	Count int `json:"count" yaml:"count"`

	Duration time.Duration `json:"duration" yaml:"duration"`
	At       time.Time     `json:"at" yaml:"at"`
}
