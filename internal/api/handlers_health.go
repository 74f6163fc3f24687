// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"
)

// HealthLive reports that the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, time.Now(), map[string]any{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady reports 200 once a non-empty catalog is loaded and 503
// otherwise. Cache statistics are included when a cache backend is set.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	size := 0
	if h.catalog != nil {
		size = h.catalog.Len()
	}

	data := map[string]any{
		"ready_to_serve": size > 0,
		"catalog_size":   size,
		"uptime":         time.Since(h.startTime).Seconds(),
	}
	if h.cache != nil {
		data["cache_persistent"] = h.cache.Persistent()
		data["caches"] = h.cache.Stats()
	}

	if size == 0 {
		respondJSON(w, http.StatusServiceUnavailable, &APIResponse{
			Status:   "not_ready",
			Data:     data,
			Metadata: newMetadata(r, start),
			Error:    &APIError{Code: codeNotReady, Message: "catalog not loaded"},
		})
		return
	}
	respondSuccess(w, r, start, data)
}
