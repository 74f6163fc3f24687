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
	"time"

	"github.com/tomtom215/cinematch/internal/config"
)

func newOMDbTestClient(t *testing.T, handler http.HandlerFunc) *OMDbClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewOMDbClient(&config.OMDbConfig{URL: server.URL + "/", APIKey: "test-key", Timeout: 5 * time.Second})
}

func TestOMDbClient_GetMovie(t *testing.T) {
	t.Parallel()
	client := newOMDbTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("t"); got != "The Dark Knight" {
			t.Errorf("t = %q, want %q", got, "The Dark Knight")
		}
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Errorf("apikey = %q, want test-key", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Title":"The Dark Knight","Poster":"https://img/tdk.jpg","Plot":"Batman faces the Joker.",` +
			`"Actors":"Christian Bale","imdbRating":"9.0","Genre":"Action","Released":"18 Jul 2008","Runtime":"152 min","Response":"True"}`))
	})

	movie, err := client.GetMovie(context.Background(), "The Dark Knight")
	if err != nil {
		t.Fatalf("GetMovie() error = %v", err)
	}
	if movie.IMDbRating != "9.0" || movie.Released != "18 Jul 2008" || movie.Poster != "https://img/tdk.jpg" {
		t.Errorf("GetMovie() = %+v", movie)
	}
}

func TestOMDbClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		body         string
		wantNotFound bool
	}{
		{"unknown title", http.StatusOK, `{"Response":"False","Error":"Movie not found!"}`, true},
		{"false without message", http.StatusOK, `{"Response":"False"}`, true},
		{"invalid key", http.StatusOK, `{"Response":"False","Error":"Invalid API key!"}`, false},
		{"server error", http.StatusInternalServerError, `oops`, false},
		{"malformed json", http.StatusOK, `{"Response":`, false},
		{"http not found", http.StatusNotFound, ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := newOMDbTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetMovie(context.Background(), "Whatever")
			if err == nil {
				t.Fatal("GetMovie() error = nil")
			}
			if got := errors.Is(err, ErrNotFound); got != tt.wantNotFound {
				t.Errorf("errors.Is(err, ErrNotFound) = %v, want %v (err = %v)", got, tt.wantNotFound, err)
			}
		})
	}
}

func TestOMDbClient_NoKey(t *testing.T) {
	t.Parallel()
	client := NewOMDbClient(&config.OMDbConfig{URL: "http://127.0.0.1:1/"})
	if _, err := client.GetMovie(context.Background(), "Heat"); !errors.Is(err, ErrDisabled) {
		t.Errorf("GetMovie() error = %v, want ErrDisabled", err)
	}
}
