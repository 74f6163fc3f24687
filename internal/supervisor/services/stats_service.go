// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/metrics"
)

const defaultStatsInterval = 15 * time.Second

// CacheStatter reports per-cache statistics keyed by cache name.
type CacheStatter interface {
	Stats() map[string]cache.Stats
}

// StatsService periodically samples cache sizes and process uptime into
// Prometheus gauges.
type StatsService struct {
	caches   CacheStatter
	interval time.Duration
	started  time.Time
	logger   zerolog.Logger
}

// NewStatsService creates a stats publisher. interval <= 0 uses 15s.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStatsService(caches CacheStatter, interval time.Duration, logger zerolog.Logger) *StatsService {
	if interval <= 0 {
		interval = defaultStatsInterval
	}
	return &StatsService{
		caches:   caches,
		interval: interval,
		started:  time.Now(),
		logger:   logger.With().Str("service", "stats").Logger(),
	}
}

// Serve implements suture.Service.
func (s *StatsService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.publish()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.publish()
		}
	}
}

func (s *StatsService) publish() {
	metrics.AppUptime.Set(time.Since(s.started).Seconds())

	for name, st := range s.caches.Stats() {
		metrics.CacheEntries.WithLabelValues(name).Set(float64(st.Entries))
		s.logger.Debug().
			Str("cache", name).
			Int("entries", st.Entries).
			Float64("hit_rate", st.HitRate()).
			Msg("cache stats")
	}
}

func (s *StatsService) String() string {
	return "stats"
}
