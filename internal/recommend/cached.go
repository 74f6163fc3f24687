// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"

	"github.com/tomtom215/cinematch/internal/cache"
)

// CacheName is the cache namespace used for recommendation results.
const CacheName = "recommend"

// Cached memoizes another Recommender by title. Results never go stale
// because the catalog is immutable.
type Cached struct {
	next Recommender
	memo *cache.Memo[Result]
}

// NewCached wraps next with memoization into c.
func NewCached(next Recommender, c cache.Cacher) *Cached {
	return &Cached{next: next, memo: cache.NewMemo[Result](CacheName, c)}
}

// Recommend implements Recommender.
func (c *Cached) Recommend(ctx context.Context, title string) Result {
	return c.memo.Do(title, func() Result {
		return c.next.Recommend(ctx, title)
	})
}

// Cached reports whether title already has a stored result.
func (c *Cached) Cached(title string) bool {
	_, ok := c.memo.Peek(title)
	return ok
}

var (
	_ Recommender = (*Selector)(nil)
	_ Recommender = (*Cached)(nil)
)
