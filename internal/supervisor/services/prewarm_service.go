// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Warmer is a memoizing recommender that can report what it already holds.
type Warmer interface {
	recommend.Recommender
	Cached(title string) bool
}

// PrewarmService fills the recommendation cache for every catalog title and
// then exits. Titles that are already cached (for example from a persistent
// cache) are skipped, so a restart resumes where the last run stopped.
type PrewarmService struct {
	warmer  Warmer
	titles  []string
	workers int
	logger  zerolog.Logger
}

// NewPrewarmService creates a prewarm service. workers <= 0 uses NumCPU.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPrewarmService(warmer Warmer, titles []string, workers int, logger zerolog.Logger) *PrewarmService {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &PrewarmService{
		warmer:  warmer,
		titles:  titles,
		workers: workers,
		logger:  logger.With().Str("service", "prewarm").Logger(),
	}
}

// Serve implements suture.Service. It returns suture.ErrDoNotRestart once
// every title is warm, or ctx.Err() if interrupted.
func (s *PrewarmService) Serve(ctx context.Context) error {
	start := time.Now()
	s.logger.Info().
		Int("titles", len(s.titles)).
		Int("workers", s.workers).
		Msg("recommendation prewarm starting")

	var done, computed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, title := range s.titles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if !s.warmer.Cached(title) {
				s.warmer.Recommend(gctx, title)
				computed.Add(1)
			}
			metrics.PrewarmProgress.Set(float64(done.Add(1)))
			return nil
		})
	}

	err := g.Wait()
	metrics.PrewarmProgress.Set(float64(done.Load()))
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.logger.Info().
		Int64("computed", computed.Load()).
		Int64("skipped", done.Load()-computed.Load()).
		Dur("duration", time.Since(start)).
		Msg("recommendation prewarm complete")

	return suture.ErrDoNotRestart
}

func (s *PrewarmService) String() string {
	return "prewarm"
}
