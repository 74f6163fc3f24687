// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package discover composes everything shown for a selected movie: its
// metadata, cast, plot sentiment and recommendations with posters.
package discover

import (
	"context"
	"sync"

	"github.com/tomtom215/cinematch/internal/metadata"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/sentiment"
)

// MetadataSource fetches defaulted metadata and cast lists.
type MetadataSource interface {
	FetchMetadata(ctx context.Context, title string) metadata.Metadata
	FetchCastPhotos(ctx context.Context, title string) []metadata.CastMember
}

// Recommendation is one suggested movie.
type Recommendation struct {
	Title   string `json:"title"`
	Poster  string `json:"poster"`
	Summary string `json:"summary"`
}

// Result is the composite payload for one selected title.
type Result struct {
	Title           string                `json:"title"`
	Metadata        metadata.Metadata     `json:"metadata"`
	Cast            []metadata.CastMember `json:"cast"`
	Sentiment       sentiment.Result      `json:"sentiment"`
	Recommendations []Recommendation      `json:"recommendations"`
}

// Service builds discover results.
type Service struct {
	recommender recommend.Recommender
	meta        MetadataSource
	analyzer    *sentiment.Analyzer
}

// NewService creates a Service.
func NewService(r recommend.Recommender, meta MetadataSource, analyzer *sentiment.Analyzer) *Service {
	return &Service{recommender: r, meta: meta, analyzer: analyzer}
}

// Discover assembles the result for title. Sentiment is computed over the
// fetched plot. Upstream lookups run concurrently; none of them fail.
func (s *Service) Discover(ctx context.Context, title string) Result {
	var (
		wg   sync.WaitGroup
		info metadata.Metadata
		cast []metadata.CastMember
		recs recommend.Result
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		info = s.meta.FetchMetadata(ctx, title)
	}()
	go func() {
		defer wg.Done()
		cast = s.meta.FetchCastPhotos(ctx, title)
	}()
	go func() {
		defer wg.Done()
		recs = s.recommender.Recommend(ctx, title)
	}()
	wg.Wait()

	return Result{
		Title:           title,
		Metadata:        info,
		Cast:            cast,
		Sentiment:       s.analyzer.Analyze(info.Plot),
		Recommendations: s.withPosters(ctx, recs),
	}
}

// withPosters attaches a poster to each recommendation, preserving order.
func (s *Service) withPosters(ctx context.Context, recs recommend.Result) []Recommendation {
	out := make([]Recommendation, len(recs.Titles))
	var wg sync.WaitGroup
	for i, title := range recs.Titles {
		out[i] = Recommendation{Title: title, Summary: recs.Summaries[i]}
		wg.Add(1)
		go func(i int, title string) {
			defer wg.Done()
			out[i].Poster = s.meta.FetchMetadata(ctx, title).Poster
		}(i, title)
	}
	wg.Wait()
	return out
}
