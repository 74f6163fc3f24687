// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// maxSentimentBody bounds the request body of Sentiment.
const maxSentimentBody = 64 * 1024

// SentimentRequest is the body of POST /sentiment.
type SentimentRequest struct {
	Text string `json:"text" validate:"required,notblank,max=10000"`
}

// Sentiment labels arbitrary text as positive, negative or neutral.
func (h *Handler) Sentiment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, maxSentimentBody)

	var req SentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, codeBadRequest, "Invalid JSON body", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	respondSuccess(w, r, start, h.analyzer.Analyze(req.Text))
}
