// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Memo memoizes a pure function of a string key into a Cacher. Concurrent
// misses for the same key share one computation.
type Memo[T any] struct {
	name  string
	cache Cacher
	group singleflight.Group
}

// NewMemo returns a memoizer storing JSON-encoded values in c.
func NewMemo[T any](name string, c Cacher) *Memo[T] {
	return &Memo[T]{name: name, cache: c}
}

// Do returns the cached value for key or computes, stores and returns it.
func (m *Memo[T]) Do(key string, compute func() T) T {
	v, _ := m.Load(key, func() (T, error) {
		return compute(), nil
	})
	return v
}

// Load is like Do, but compute may fail. A failed computation is returned
// to every waiting caller and is not stored.
func (m *Memo[T]) Load(key string, compute func() (T, error)) (T, error) {
	if v, ok := m.lookup(key); ok {
		metrics.CacheHits.WithLabelValues(m.name).Inc()
		return v, nil
	}
	metrics.CacheMisses.WithLabelValues(m.name).Inc()

	shared, err, _ := m.group.Do(key, func() (any, error) {
		value, err := compute()
		if err != nil {
			return value, err
		}
		m.store(key, value)
		return value, nil
	})
	v, _ := shared.(T)
	return v, err
}

// Peek returns the cached value without computing it.
func (m *Memo[T]) Peek(key string) (T, bool) {
	return m.lookup(key)
}

func (m *Memo[T]) lookup(key string) (T, bool) {
	var v T
	raw, ok := m.cache.Get(key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		logging.Warn().Err(err).Str("cache", m.name).Str("key", key).Msg("discarding undecodable cache entry")
		return v, false
	}
	return v, true
}

func (m *Memo[T]) store(key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		logging.Warn().Err(err).Str("cache", m.name).Str("key", key).Msg("cache entry not encodable")
		return
	}
	m.cache.Set(key, raw)
}
