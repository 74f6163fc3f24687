// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/metrics"
)

func TestStatsService_PublishesCacheEntries(t *testing.T) {
	backend, err := cache.NewBackend(config.CacheConfig{Backend: config.CacheBackendMemory})
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	defer backend.Close()

	c := backend.Cache("stats-test")
	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	svc := NewStatsService(backend, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Serve() = %v, want context.DeadlineExceeded", err)
	}

	if got := testutil.ToFloat64(metrics.CacheEntries.WithLabelValues("stats-test")); got != 2 {
		t.Errorf("cache_entries{stats-test} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.AppUptime); got < 0 {
		t.Errorf("app_uptime_seconds = %v", got)
	}
}

func TestNewStatsService_DefaultInterval(t *testing.T) {
	svc := NewStatsService(nil, 0, zerolog.Nop())
	if svc.interval != defaultStatsInterval {
		t.Errorf("interval = %v, want %v", svc.interval, defaultStatsInterval)
	}
}
