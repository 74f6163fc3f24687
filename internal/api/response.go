// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/middleware"
	"github.com/tomtom215/cinematch/internal/validation"
)

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata describes the response itself.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms"`
}

// APIError is the error body of a failed request.
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// sanitizeLogValue escapes control characters to prevent log injection.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON writes response. The ETag covers only Data so that identical
// payloads validate across requests despite per-request metadata.
func respondJSON(w http.ResponseWriter, status int, response *APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if response.Data != nil {
		if payload, err := json.Marshal(response.Data); err == nil {
			w.Header().Set("ETag", generateETag(payload))
		}
	}
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, start time.Time, data any) {
	respondJSON(w, http.StatusOK, &APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: newMetadata(r, start),
	})
}

// respondError writes an error envelope. err is logged, never sent.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &APIResponse{
		Status:   "error",
		Metadata: newMetadata(r, time.Time{}),
		Error:    &APIError{Code: code, Message: message},
	})
}

// respondAPIError writes a prepared APIError.
func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *APIError) {
	respondJSON(w, status, &APIResponse{
		Status:   "error",
		Metadata: newMetadata(r, time.Time{}),
		Error:    apiErr,
	})
}

func newMetadata(r *http.Request, start time.Time) Metadata {
	m := Metadata{
		Timestamp: time.Now().UTC(),
		RequestID: middleware.GetRequestID(r.Context()),
	}
	if !start.IsZero() {
		m.QueryTimeMS = time.Since(start).Milliseconds()
	}
	return m
}

// generateETag hashes data with FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.Quote(strconv.FormatUint(uint64(hash), 16))
}

// validateRequest runs struct validation and converts failures to APIError.
func validateRequest(v any) *APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	apiErr := validationErr.ToAPIError()
	return &APIError{Code: apiErr.Code, Message: apiErr.Message, Details: apiErr.Details}
}

// getIntParam reads an integer query parameter. Unparseable values yield
// defaultValue.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return intValue
}
