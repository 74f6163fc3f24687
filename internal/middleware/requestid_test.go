// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/cinematch/internal/logging"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()
	var ctxID, logID, correlationID string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		ctxID = GetRequestID(r.Context())
		logID = logging.RequestIDFromContext(r.Context())
		correlationID = logging.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil))

	responseID := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(responseID); err != nil {
		t.Fatalf("X-Request-ID %q is not a UUID: %v", responseID, err)
	}
	if ctxID != responseID || logID != responseID {
		t.Errorf("context IDs %q/%q do not match header %q", ctxID, logID, responseID)
	}
	if correlationID == "" {
		t.Error("expected a correlation ID in the logging context")
	}
}

func TestRequestID_UpstreamHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"preserves upstream id", "proxy-id-12345", true},
		{"replaces oversized id", strings.Repeat("x", maxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var captured string
			handler := RequestID(func(_ http.ResponseWriter, r *http.Request) {
				captured = GetRequestID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, tt.incoming)
			rec := httptest.NewRecorder()
			handler(rec, req)

			if got := captured == tt.incoming; got != tt.keep {
				t.Errorf("captured %q, incoming kept = %v, want %v", captured, got, tt.keep)
			}
			if rec.Header().Get(RequestIDHeader) != captured {
				t.Errorf("header %q != context %q", rec.Header().Get(RequestIDHeader), captured)
			}
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	t.Parallel()
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
}
