// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package api serves the JSON HTTP API using the chi router.
package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/discover"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/sentiment"
)

// Dependencies are the services behind the handlers. Cache is optional.
type Dependencies struct {
	Catalog     *catalog.Catalog
	Recommender recommend.Recommender
	Metadata    discover.MetadataSource
	Analyzer    *sentiment.Analyzer
	Cache       *cache.Backend
}

// Handler implements the HTTP endpoints.
type Handler struct {
	catalog     *catalog.Catalog
	recommender recommend.Recommender
	metadata    discover.MetadataSource
	analyzer    *sentiment.Analyzer
	discover    *discover.Service
	cache       *cache.Backend
	startTime   time.Time
}

// NewHandler creates a Handler from deps.
func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		catalog:     deps.Catalog,
		recommender: deps.Recommender,
		metadata:    deps.Metadata,
		analyzer:    deps.Analyzer,
		discover:    discover.NewService(deps.Recommender, deps.Metadata, deps.Analyzer),
		cache:       deps.Cache,
		startTime:   time.Now(),
	}
}

// titleParam returns the decoded {title} path segment. Titles containing an
// escaped slash arrive undecoded because chi routes on the raw path.
func titleParam(r *http.Request) string {
	title := chi.URLParam(r, "title")
	if r.URL.RawPath == "" {
		return title
	}
	if decoded, err := url.PathUnescape(title); err == nil {
		return decoded
	}
	return title
}
