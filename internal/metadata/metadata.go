// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metadata fetches movie details from OMDb and cast photos from TMDB.

The Provider type is the only entry point used by the rest of the service.
It never returns an error: failures of either upstream degrade to a record
whose fields are "N/A" (with a placeholder poster) or to an empty cast list.

Both clients are wrapped in circuit breakers so a dead upstream is skipped
quickly, and successful lookups are memoized by title.
*/
package metadata

import "errors"

// Placeholder values used when an upstream field is missing.
const (
	NotAvailable       = "N/A"
	NoPlot             = "No plot available"
	PlaceholderPoster  = "https://via.placeholder.com/150"
	PlaceholderProfile = "https://via.placeholder.com/100"
)

// MaxCastMembers caps the cast list.
const MaxCastMembers = 5

var (
	// ErrNotFound means the upstream answered but knows no such movie.
	ErrNotFound = errors.New("movie not found")

	// ErrDisabled means the provider has no API key configured.
	ErrDisabled = errors.New("provider disabled")
)

// Metadata is the descriptive record for a movie.
type Metadata struct {
	Poster      string `json:"poster"`
	Plot        string `json:"plot"`
	Actors      string `json:"actors"`
	Rating      string `json:"rating"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"release_date"`
	Runtime     string `json:"runtime"`
}

// DefaultMetadata returns the record used when no lookup succeeded.
func DefaultMetadata() Metadata {
	return Metadata{
		Poster:      PlaceholderPoster,
		Plot:        NotAvailable,
		Actors:      NotAvailable,
		Rating:      NotAvailable,
		Genre:       NotAvailable,
		ReleaseDate: NotAvailable,
		Runtime:     NotAvailable,
	}
}

// CastMember is one billed actor with a portrait URL.
type CastMember struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}
