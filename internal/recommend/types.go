// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend selects up to five movies similar to a chosen title.
//
// Candidates are ranked by the precomputed similarity row of the chosen
// movie. Titles sharing the chosen movie's series name (see SeriesBase) are
// admitted regardless of rank, but the five-slot cap is never exceeded.
package recommend

import "context"

// MaxRecommendations caps every result.
const MaxRecommendations = 5

// Result holds recommended titles and their overviews. Summaries[i]
// describes Titles[i]. An unknown title yields two empty slices.
type Result struct {
	Titles    []string `json:"titles"`
	Summaries []string `json:"summaries"`
}

// Len returns the number of recommendations.
func (r Result) Len() int {
	return len(r.Titles)
}

func emptyResult() Result {
	return Result{Titles: []string{}, Summaries: []string{}}
}

// Recommender produces recommendations for a title.
type Recommender interface {
	Recommend(ctx context.Context, title string) Result
}

// candidate is one other movie with its similarity to the selected movie.
type candidate struct {
	index int
	score float64
}
