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
	"strings"
	"time"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/metrics"
)

const providerOMDb = "omdb"

// OMDbAPI looks up a movie by exact title.
type OMDbAPI interface {
	GetMovie(ctx context.Context, title string) (*OMDbMovie, error)
}

var _ OMDbAPI = (*OMDbClient)(nil)

// OMDbMovie is the subset of the OMDb title response we use.
type OMDbMovie struct {
	Title      string `json:"Title"`
	Poster     string `json:"Poster"`
	Plot       string `json:"Plot"`
	Actors     string `json:"Actors"`
	IMDbRating string `json:"imdbRating"`
	Genre      string `json:"Genre"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// OMDbClient queries the OMDb title endpoint.
type OMDbClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewOMDbClient creates a client from cfg.
func NewOMDbClient(cfg *config.OMDbConfig) *OMDbClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OMDbClient{
		baseURL:    cfg.URL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetMovie fetches the record for title. A response with Response other than
// "True" yields ErrNotFound when OMDb reports an unknown title.
func (c *OMDbClient) GetMovie(ctx context.Context, title string) (*OMDbMovie, error) {
	if c.apiKey == "" {
		return nil, ErrDisabled
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid omdb url: %w", err)
	}
	q := url.Values{}
	q.Set("t", title)
	q.Set("apikey", c.apiKey)
	u.RawQuery = q.Encode()

	start := time.Now()
	var movie OMDbMovie
	err = getJSON(ctx, c.httpClient, u.String(), &movie)
	if err == nil && movie.Response != "True" {
		err = omdbError(movie.Error)
	}
	metrics.RecordUpstream(providerOMDb, resultLabel(err), time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("omdb lookup %q: %w", title, err)
	}
	return &movie, nil
}

func omdbError(message string) error {
	if message == "" || strings.Contains(strings.ToLower(message), "not found") {
		return ErrNotFound
	}
	return fmt.Errorf("omdb error: %s", message)
}
