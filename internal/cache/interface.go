// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package cache provides the memo caches that sit in front of upstream
// lookups and recommendation results.
//
// Entries never expire and are never evicted: the catalog is immutable and
// upstream metadata for a title is treated as stable for the life of the
// process (or of the badger directory, when persistence is enabled).
//
//	backend, _ := cache.NewBackend(cfg.Cache)
//	posters := cache.NewMemo[metadata.Metadata]("omdb", backend.Cache("omdb"))
//	md := posters.Do(title, func() metadata.Metadata { return fetch(title) })
package cache

// Cacher stores opaque values by key.
type Cacher interface {
	// Get returns the value stored under key.
	Get(key string) ([]byte, bool)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte)

	// Len returns the number of stored entries.
	Len() int

	// GetStats returns hit and miss counters.
	GetStats() Stats
}

// Stats tracks cache effectiveness.
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`
}

// HitRate returns hits as a percentage of lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

var (
	_ Cacher = (*Memory)(nil)
	_ Cacher = (*Badger)(nil)
)
