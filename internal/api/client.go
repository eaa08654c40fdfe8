// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api is the HTTP boundary to the medical-assistant service.
// Every call is a single JSON request with no retry; any failure is
// returned as an *Error so callers can pick the user-facing message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdiddy/medvision/pkg/types"
)

// RequestIDHeader carries the per-call correlation id.
const RequestIDHeader = "X-Request-ID"

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 30 * time.Second

	// maxErrorBody bounds how much of a failed response is read while
	// looking for a detail field.
	maxErrorBody = 64 << 10
)

type requestIDKey struct{}

// WithRequestID returns a context whose API calls use id as their
// X-Request-ID instead of a freshly generated one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id set by WithRequestID, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Client talks to one service instance.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	logger    zerolog.Logger
}

// NewClient builds a client for cfg. A nil httpClient gets a client with
// cfg.Timeout (default 30s).
func NewClient(cfg types.ClientConfig, httpClient *http.Client, logger zerolog.Logger) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:   base,
		userAgent: cfg.UserAgent,
		http:      httpClient,
		logger:    logger,
	}
}

// BaseURL returns the service root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// Search runs POST /api/search.
func (c *Client) Search(ctx context.Context, req types.SearchRequest) (types.SearchResponse, error) {
	var out types.SearchResponse
	err := c.do(ctx, http.MethodPost, "/api/search", req, &out)
	return out, err
}

// Diagnose runs POST /api/diagnose.
func (c *Client) Diagnose(ctx context.Context, req types.DiagnoseRequest) (types.DiagnoseResponse, error) {
	var out types.DiagnoseResponse
	err := c.do(ctx, http.MethodPost, "/api/diagnose", req, &out)
	return out, err
}

// Treatment runs POST /api/treatment.
func (c *Client) Treatment(ctx context.Context, req types.TreatmentRequest) (types.TreatmentResponse, error) {
	if req.Contraindications == nil {
		req.Contraindications = []string{}
	}
	var out types.TreatmentResponse
	err := c.do(ctx, http.MethodPost, "/api/treatment", req, &out)
	return out, err
}

// Patient runs GET /api/patients/{id}.
func (c *Client) Patient(ctx context.Context, patientID string) (types.PatientResponse, error) {
	var out types.PatientResponse
	err := c.do(ctx, http.MethodGet, "/api/patients/"+url.PathEscape(patientID), nil, &out)
	return out, err
}

// Status runs GET /.
func (c *Client) Status(ctx context.Context) (types.StatusResponse, error) {
	var out types.StatusResponse
	err := c.do(ctx, http.MethodGet, "/", nil, &out)
	return out, err
}

// Collections runs GET /api/collections.
func (c *Client) Collections(ctx context.Context) (types.CollectionsResponse, error) {
	var out types.CollectionsResponse
	err := c.do(ctx, http.MethodGet, "/api/collections", nil, &out)
	return out, err
}

// do sends one JSON request and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Path: path, Err: fmt.Errorf("encoding request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Path: path, Err: fmt.Errorf("creating request: %w", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	reqID := RequestID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, reqID)

	log := c.logger.With().Str("request_id", reqID).Str("method", method).Str("path", path).Logger()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("request failed")
		return &Error{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &Error{Path: path, StatusCode: resp.StatusCode, Detail: ExtractDetail(data)}
		log.Warn().Int("status", resp.StatusCode).Str("detail", apiErr.Detail).Msg("service returned error status")
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Warn().Err(err).Msg("malformed response body")
		return &Error{Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("parsing response: %w", err)}
	}

	log.Debug().Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("request complete")
	return nil
}
