// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestMemory_GetSet(t *testing.T) {
	t.Parallel()
	m := NewMemory()

	if _, ok := m.Get("Inception"); ok {
		t.Fatal("expected miss on empty cache")
	}

	m.Set("Inception", []byte(`"dreams"`))
	got, ok := m.Get("Inception")
	if !ok || string(got) != `"dreams"` {
		t.Fatalf("Get() = %q, %v", got, ok)
	}

	m.Set("Inception", []byte(`"replaced"`))
	if got, _ := m.Get("Inception"); string(got) != `"replaced"` {
		t.Errorf("Set() should replace, got %q", got)
	}

	stats := m.GetStats()
	if stats.Hits != 2 || stats.Misses != 1 || stats.Entries != 1 {
		t.Errorf("GetStats() = %+v", stats)
	}
}

func TestMemory_NoEviction(t *testing.T) {
	t.Parallel()
	m := NewMemory()

	const n = 10000
	for i := 0; i < n; i++ {
		m.Set(fmt.Sprintf("title-%d", i), []byte("x"))
	}
	if m.Len() != n {
		t.Fatalf("Len() = %d, want %d", m.Len(), n)
	}
	if _, ok := m.Get("title-0"); !ok {
		t.Error("oldest entry should still be present")
	}
}

func TestMemory_Concurrent(t *testing.T) {
	t.Parallel()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			m.Set(key, []byte("v"))
			m.Get(key)
		}(i)
	}
	wg.Wait()

	if m.Len() != 5 {
		t.Errorf("Len() = %d, want 5", m.Len())
	}
}

func TestStats_HitRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stats Stats
		want  float64
	}{
		{Stats{}, 0},
		{Stats{Hits: 3, Misses: 1}, 75},
		{Stats{Misses: 4}, 0},
	}
	for _, tt := range tests {
		if got := tt.stats.HitRate(); got != tt.want {
			t.Errorf("HitRate(%+v) = %v, want %v", tt.stats, got, tt.want)
		}
	}
}
