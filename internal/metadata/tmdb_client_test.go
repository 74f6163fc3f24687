// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/cinematch/internal/config"
)

func newTMDBTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search/movie", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "tmdb-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Query().Get("query") {
		case "Inception":
			_, _ = w.Write([]byte(`{"results":[{"id":27205,"title":"Inception"},{"id":1,"title":"Other"}]}`))
		default:
			_, _ = w.Write([]byte(`{"results":[]}`))
		}
	})
	mux.HandleFunc("/movie/27205/credits", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":27205,"cast":[` +
			`{"name":"Leonardo DiCaprio","profile_path":"/leo.jpg","order":0},` +
			`{"name":"Joseph Gordon-Levitt","profile_path":null,"order":1}]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestTMDBClient_SearchAndCredits(t *testing.T) {
	t.Parallel()
	server := newTMDBTestServer(t)
	client := NewTMDBClient(&config.TMDBConfig{URL: server.URL, APIKey: "tmdb-key", RequestsPerSecond: 100, Burst: 5})
	ctx := context.Background()

	id, err := client.SearchMovie(ctx, "Inception")
	if err != nil {
		t.Fatalf("SearchMovie() error = %v", err)
	}
	if id != 27205 {
		t.Errorf("SearchMovie() = %d, want first result 27205", id)
	}

	cast, err := client.Credits(ctx, id)
	if err != nil {
		t.Fatalf("Credits() error = %v", err)
	}
	if len(cast) != 2 || cast[0].Name != "Leonardo DiCaprio" || cast[1].ProfilePath != "" {
		t.Errorf("Credits() = %+v", cast)
	}
}

func TestTMDBClient_NoResults(t *testing.T) {
	t.Parallel()
	server := newTMDBTestServer(t)
	client := NewTMDBClient(&config.TMDBConfig{URL: server.URL, APIKey: "tmdb-key"})

	if _, err := client.SearchMovie(context.Background(), "Nothing Like This"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SearchMovie() error = %v, want ErrNotFound", err)
	}
}

func TestTMDBClient_UnknownMovieCredits(t *testing.T) {
	t.Parallel()
	server := newTMDBTestServer(t)
	client := NewTMDBClient(&config.TMDBConfig{URL: server.URL, APIKey: "tmdb-key"})

	if _, err := client.Credits(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Credits() error = %v, want ErrNotFound", err)
	}
}

func TestTMDBClient_BadKey(t *testing.T) {
	t.Parallel()
	server := newTMDBTestServer(t)
	client := NewTMDBClient(&config.TMDBConfig{URL: server.URL, APIKey: "wrong"})

	_, err := client.SearchMovie(context.Background(), "Inception")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("SearchMovie() error = %v, want non-NotFound failure", err)
	}
}

func TestTMDBClient_RateLimiterHonorsContext(t *testing.T) {
	t.Parallel()
	server := newTMDBTestServer(t)
	client := NewTMDBClient(&config.TMDBConfig{URL: server.URL, APIKey: "tmdb-key", RequestsPerSecond: 0.001, Burst: 1})

	if _, err := client.SearchMovie(context.Background(), "Inception"); err != nil {
		t.Fatalf("first SearchMovie() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.SearchMovie(ctx, "Inception"); err == nil {
		t.Error("SearchMovie() with exhausted limiter and cancelled context should fail")
	}
}
