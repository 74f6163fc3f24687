// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
)

const defaultListLimit = 100

// ListMoviesRequest holds the query parameters of ListMovies.
type ListMoviesRequest struct {
	Query  string `json:"q" validate:"max=200"`
	Limit  int    `json:"limit" validate:"min=1,max=1000"`
	Offset int    `json:"offset" validate:"min=0"`
}

// MovieList is one page of catalog titles.
type MovieList struct {
	Titles []string `json:"titles"`
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
}

// titleRequest validates the {title} path segment.
type titleRequest struct {
	Title string `json:"title" validate:"required,notblank,max=500"`
}

// ListMovies returns catalog titles in catalog order, optionally filtered by
// a case-insensitive substring q.
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := ListMoviesRequest{
		Query:  r.URL.Query().Get("q"),
		Limit:  getIntParam(r, "limit", defaultListLimit),
		Offset: getIntParam(r, "offset", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	var titles []string
	if req.Query == "" {
		titles = h.catalog.Titles()
	} else {
		titles = h.catalog.TitlesContaining(req.Query)
	}

	total := len(titles)
	lo := min(req.Offset, total)
	hi := min(lo+req.Limit, total)

	respondSuccess(w, r, start, MovieList{
		Titles: titles[lo:hi],
		Total:  total,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
}

// Recommendations returns up to five similar titles with summaries. An
// unknown title yields empty lists, not an error.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	title, ok := h.requireTitle(w, r)
	if !ok {
		return
	}

	result := h.recommender.Recommend(r.Context(), title)
	logging.Ctx(r.Context()).Debug().Str("title", sanitizeLogValue(title)).
		Int("count", result.Len()).Msg("recommendations served")
	respondSuccess(w, r, start, result)
}

// Metadata returns the defaulted metadata record for a title.
func (h *Handler) Metadata(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	title, ok := h.requireTitle(w, r)
	if !ok {
		return
	}
	respondSuccess(w, r, start, h.metadata.FetchMetadata(r.Context(), title))
}

// Cast returns up to five cast members with portrait URLs.
func (h *Handler) Cast(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	title, ok := h.requireTitle(w, r)
	if !ok {
		return
	}
	respondSuccess(w, r, start, h.metadata.FetchCastPhotos(r.Context(), title))
}

// Discover returns metadata, cast, plot sentiment and recommendations for a
// title in one response.
func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	title, ok := h.requireTitle(w, r)
	if !ok {
		return
	}
	respondSuccess(w, r, start, h.discover.Discover(r.Context(), title))
}

func (h *Handler) requireTitle(w http.ResponseWriter, r *http.Request) (string, bool) {
	req := titleRequest{Title: titleParam(r)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return "", false
	}
	return req.Title, true
}
