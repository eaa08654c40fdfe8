// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by every call to the service.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. A transport timeout surfaces as a
	// normal error resolution.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "medvision/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClientConfig holds the settings for talking to the medical-assistant API.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the service root (API_BASE_URL), e.g. "http://localhost:8000".
	BaseURL string `json:"base_url" yaml:"base_url"`

	// TopK is the default result-count limit for knowledge searches (default 5).
	TopK int `json:"top_k" yaml:"top_k"`

	// DemoDelay is the simulated latency before a demo patient resolves
	// (default 500ms).
	DemoDelay time.Duration `json:"demo_delay" yaml:"demo_delay"`

	// JournalPath is the SQLite file that records dispatch outcomes.
	// Empty disables the journal.
	JournalPath string `json:"journal_path,omitempty" yaml:"journal_path,omitempty"`
}
