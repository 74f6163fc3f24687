// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Selector ranks catalog movies by similarity. It holds no mutable state and
// is safe for concurrent use.
type Selector struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewSelector returns a Selector over c.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSelector(c *catalog.Catalog, logger zerolog.Logger) *Selector {
	return &Selector{
		catalog: c,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}
}

// Recommend returns up to MaxRecommendations titles similar to title.
func (s *Selector) Recommend(ctx context.Context, title string) Result {
	start := time.Now()

	idx, ok := s.catalog.LookupByTitle(title)
	if !ok {
		metrics.RecordRecommendation(false, 0, time.Since(start))
		logging.Ctx(ctx).Debug().Str("title", title).Msg("title not in catalog")
		return emptyResult()
	}

	selected, _ := s.catalog.Entry(idx)
	ranked := s.rank(idx)
	series := s.seriesMembers(title)
	picks, seriesPicks := s.selectTop(ranked, series, selected.Title)

	result := Result{
		Titles:    make([]string, len(picks)),
		Summaries: make([]string, len(picks)),
	}
	for i, t := range picks {
		result.Titles[i] = t
		result.Summaries[i] = s.catalog.OverviewOf(t)
	}

	metrics.RecordRecommendation(true, seriesPicks, time.Since(start))
	s.logger.Debug().
		Str("title", title).
		Int("candidates", len(ranked)).
		Int("series_size", len(series)).
		Int("returned", result.Len()).
		Msg("recommendations selected")

	return result
}

// rank returns every other movie ordered by descending similarity. Equal
// scores keep catalog order.
func (s *Selector) rank(idx int) []candidate {
	row := s.catalog.Row(idx)
	ranked := make([]candidate, 0, len(row))
	for j, score := range row {
		if j == idx {
			continue
		}
		ranked = append(ranked, candidate{index: j, score: score})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})
	return ranked
}

// seriesMembers returns the titles containing the series base of title.
func (s *Selector) seriesMembers(title string) map[string]struct{} {
	titles := s.catalog.TitlesContaining(SeriesBase(title))
	members := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		members[t] = struct{}{}
	}
	return members
}

// selectTop walks ranked candidates, admitting series members at any rank
// and others while slots remain, and stops once the cap is reached. It also
// reports how many picks were series members.
//
// Titles are deduplicated case-insensitively, and the selected title counts
// as already chosen so a case variant of it is never returned.
func (s *Selector) selectTop(ranked []candidate, series map[string]struct{}, selected string) ([]string, int) {
	picks := make([]string, 0, MaxRecommendations)
	chosen := make(map[string]struct{}, MaxRecommendations+1)
	chosen[strings.ToLower(selected)] = struct{}{}
	seriesPicks := 0

	for _, c := range ranked {
		e, _ := s.catalog.Entry(c.index)
		key := strings.ToLower(e.Title)
		if _, dup := chosen[key]; dup {
			continue
		}

		_, inSeries := series[e.Title]
		if inSeries || len(picks) < MaxRecommendations {
			picks = append(picks, e.Title)
			chosen[key] = struct{}{}
			if inSeries {
				seriesPicks++
			}
		}

		if len(picks) >= MaxRecommendations {
			break
		}
	}
	return picks, seriesPicks
}

// SeriesBase normalizes a title to its franchise name: lowercase, cut at the
// first colon, drop every "part" and "the", trim spaces.
//
//	SeriesBase("The Hobbit: An Unexpected Journey") == "hobbit"
//	SeriesBase("Kill Bill: Vol. 1")                 == "kill bill"
//
// The substring removal also hits words such as "other" ("oer"); callers rely
// on that exact behavior.
func SeriesBase(title string) string {
	base := strings.ToLower(title)
	if i := strings.Index(base, ":"); i >= 0 {
		base = base[:i]
	}
	base = strings.ReplaceAll(base, "part", "")
	base = strings.ReplaceAll(base, "the", "")
	return strings.TrimSpace(base)
}
