// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metadata

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// BreakerSettings tunes a circuit breaker. Zero values fall back to the
// defaults used in production.
type BreakerSettings struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

// DefaultBreakerSettings opens after a 60% failure rate over at least 10
// requests and probes again after 2 minutes.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// breaker wraps gobreaker with metrics and logging.
//
// The breaker uses real time for its interval and timeout; tests drive it
// through request outcomes rather than clocks.
type breaker struct {
	cb   *gobreaker.CircuitBreaker[any]
	name string
}

func newBreaker(name string, s BreakerSettings) *breaker {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= s.FailureRatio
			if shouldTrip {
				logging.Warn().Str("breaker", name).Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		// An unknown title or a disabled provider says nothing about upstream health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrDisabled) ||
				errors.Is(err, context.Canceled)
		},
	})

	return &breaker{cb: cb, name: name}
}

// execute runs fn under circuit breaker protection.
func (b *breaker) execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Debug().Err(err).Str("breaker", b.name).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
			counts := b.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// State returns the current breaker state as a string.
func (b *breaker) State() string {
	return stateToString(b.cb.State())
}

// castResult type-asserts a breaker result.
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// CircuitBreakerOMDb guards an OMDbAPI.
type CircuitBreakerOMDb struct {
	client OMDbAPI
	*breaker
}

var _ OMDbAPI = (*CircuitBreakerOMDb)(nil)

// NewCircuitBreakerOMDb wraps client.
func NewCircuitBreakerOMDb(client OMDbAPI, s BreakerSettings) *CircuitBreakerOMDb {
	return &CircuitBreakerOMDb{client: client, breaker: newBreaker("omdb-api", s)}
}

// GetMovie implements OMDbAPI.
func (c *CircuitBreakerOMDb) GetMovie(ctx context.Context, title string) (*OMDbMovie, error) {
	return castResult[*OMDbMovie](c.execute(func() (any, error) {
		return c.client.GetMovie(ctx, title)
	}))
}

// CircuitBreakerTMDB guards a TMDBAPI. Search and credits share one breaker.
type CircuitBreakerTMDB struct {
	client TMDBAPI
	*breaker
}

var _ TMDBAPI = (*CircuitBreakerTMDB)(nil)

// NewCircuitBreakerTMDB wraps client.
func NewCircuitBreakerTMDB(client TMDBAPI, s BreakerSettings) *CircuitBreakerTMDB {
	return &CircuitBreakerTMDB{client: client, breaker: newBreaker("tmdb-api", s)}
}

// SearchMovie implements TMDBAPI.
func (c *CircuitBreakerTMDB) SearchMovie(ctx context.Context, query string) (int, error) {
	return castResult[int](c.execute(func() (any, error) {
		return c.client.SearchMovie(ctx, query)
	}))
}

// Credits implements TMDBAPI.
func (c *CircuitBreakerTMDB) Credits(ctx context.Context, movieID int) ([]TMDBCastMember, error) {
	return castResult[[]TMDBCastMember](c.execute(func() (any, error) {
		return c.client.Credits(ctx, movieID)
	}))
}
