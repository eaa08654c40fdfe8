// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error is a failed call: unreachable service, non-2xx status, or a body
// that is not the expected JSON.
type Error struct {
	// Path is the API path that was called.
	Path string

	// StatusCode is the HTTP status, or 0 when no response arrived.
	StatusCode int

	// Detail is the service's own explanation, normalized to display text.
	// Empty when the response carried none.
	Detail string

	// Err is the underlying transport or decoding error, if any.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Detail != "":
		return fmt.Sprintf("%s: HTTP %d: %s", e.Path, e.StatusCode, e.Detail)
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("%s: HTTP %d: %v", e.Path, e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("%s: HTTP %d", e.Path, e.StatusCode)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Message returns the text to show for err: the service detail when one
// was extracted, fallback otherwise.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// ExtractDetail pulls the "detail" field out of an error body. The service
// sends it either as a plain string or as validation objects (one object,
// or a list of them with "msg" and "loc"); all forms become one string.
func ExtractDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}
	return detailText(envelope.Detail)
}

func detailText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		var parts []string
		for _, item := range list {
			if t := detailText(item); t != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, "; ")
	}

	var obj validationDetail
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.String()
	}

	// Numbers, booleans, null.
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}

// validationDetail is one entry of a request-validation error.
type validationDetail struct {
	Loc     []any  `json:"loc"`
	Msg     string `json:"msg"`
	Message string `json:"message"`
}

func (v validationDetail) String() string {
	msg := v.Msg
	if msg == "" {
		msg = v.Message
	}
	if msg == "" {
		return ""
	}
	if len(v.Loc) == 0 {
		return msg
	}
	loc := make([]string, 0, len(v.Loc))
	for _, l := range v.Loc {
		loc = append(loc, fmt.Sprint(l))
	}
	return strings.Join(loc, ".") + ": " + msg
}
