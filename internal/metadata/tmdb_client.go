// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metadata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/metrics"
)

const providerTMDB = "tmdb"

// TMDBAPI resolves a title to a TMDB id and fetches its credits.
type TMDBAPI interface {
	SearchMovie(ctx context.Context, query string) (int, error)
	Credits(ctx context.Context, movieID int) ([]TMDBCastMember, error)
}

var _ TMDBAPI = (*TMDBClient)(nil)

// TMDBCastMember is one entry of the credits cast array.
type TMDBCastMember struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

type tmdbSearchResponse struct {
	Results []struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	} `json:"results"`
}

type tmdbCreditsResponse struct {
	ID   int              `json:"id"`
	Cast []TMDBCastMember `json:"cast"`
}

// TMDBClient queries the TMDB v3 API. Outbound calls are throttled by a
// token bucket so warm-up bursts stay under TMDB's request limits.
type TMDBClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewTMDBClient creates a client from cfg.
func NewTMDBClient(cfg *config.TMDBConfig) *TMDBClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &TMDBClient{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
	}
}

// SearchMovie returns the id of the first search result for query.
func (c *TMDBClient) SearchMovie(ctx context.Context, query string) (int, error) {
	q := url.Values{}
	q.Set("query", query)

	var resp tmdbSearchResponse
	if err := c.get(ctx, "/search/movie", q, &resp); err != nil {
		return 0, fmt.Errorf("tmdb search %q: %w", query, err)
	}
	if len(resp.Results) == 0 || resp.Results[0].ID == 0 {
		return 0, fmt.Errorf("tmdb search %q: %w", query, ErrNotFound)
	}
	return resp.Results[0].ID, nil
}

// Credits returns the billed cast of a movie in TMDB order.
func (c *TMDBClient) Credits(ctx context.Context, movieID int) ([]TMDBCastMember, error) {
	var resp tmdbCreditsResponse
	if err := c.get(ctx, "/movie/"+strconv.Itoa(movieID)+"/credits", url.Values{}, &resp); err != nil {
		return nil, fmt.Errorf("tmdb credits %d: %w", movieID, err)
	}
	return resp.Cast, nil
}

func (c *TMDBClient) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	if c.apiKey == "" {
		return ErrDisabled
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	q.Set("api_key", c.apiKey)
	fullURL := c.baseURL + endpoint + "?" + q.Encode()

	start := time.Now()
	err := getJSON(ctx, c.httpClient, fullURL, out)
	metrics.RecordUpstream(providerTMDB, resultLabel(err), time.Since(start))
	return err
}
