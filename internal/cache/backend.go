// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/cinematch/internal/config"
)

// Backend hands out named caches backed by memory or a shared BadgerDB.
type Backend struct {
	db *badger.DB

	mu     sync.Mutex
	caches map[string]Cacher
}

// NewBackend builds the backend selected by cfg.
func NewBackend(cfg config.CacheConfig) (*Backend, error) {
	b := &Backend{caches: make(map[string]Cacher)}

	switch cfg.Backend {
	case config.CacheBackendMemory, "":
	case config.CacheBackendBadger:
		db, err := OpenBadger(cfg.Path)
		if err != nil {
			return nil, err
		}
		b.db = db
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
	return b, nil
}

// NewBackendWithDB wraps an already open BadgerDB.
func NewBackendWithDB(db *badger.DB) *Backend {
	return &Backend{db: db, caches: make(map[string]Cacher)}
}

// Persistent reports whether caches survive restarts.
func (b *Backend) Persistent() bool {
	return b.db != nil
}

// Cache returns the cache for name, creating it on first use.
func (b *Backend) Cache(name string) Cacher {
	b.mu.Lock()
	defer b.mu.Unlock()

	if c, ok := b.caches[name]; ok {
		return c
	}

	var c Cacher
	if b.db != nil {
		c = NewBadger(b.db, name)
	} else {
		c = NewMemory()
	}
	b.caches[name] = c
	return c
}

// Stats returns per-cache statistics keyed by cache name.
func (b *Backend) Stats() map[string]Stats {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(map[string]Stats, len(b.caches))
	for name, c := range b.caches {
		out[name] = c.GetStats()
	}
	return out
}

// Close releases the BadgerDB, if any.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}
