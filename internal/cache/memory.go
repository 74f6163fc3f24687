// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"sync"
	"sync/atomic"
)

// Memory is an unbounded, thread-safe in-process cache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte

	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemory returns an empty Memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Get implements Cacher.
func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	value, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		m.misses.Add(1)
		return nil, false
	}
	m.hits.Add(1)
	return value, true
}

// Set implements Cacher. The cache keeps value; callers must not modify it.
func (m *Memory) Set(key string, value []byte) {
	m.mu.Lock()
	m.entries[key] = value
	m.mu.Unlock()
}

// Len implements Cacher.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// GetStats implements Cacher.
func (m *Memory) GetStats() Stats {
	return Stats{
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
		Entries: m.Len(),
	}
}
