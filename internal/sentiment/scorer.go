// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package sentiment

import "github.com/jonreiter/govader"

// Scorer returns the compound polarity of text in [-1, 1].
type Scorer interface {
	Compound(text string) float64
}

// ScorerFunc adapts a function to Scorer.
type ScorerFunc func(text string) float64

// Compound implements Scorer.
func (f ScorerFunc) Compound(text string) float64 { return f(text) }

// Vader scores text with the VADER lexicon.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVader loads the VADER lexicon.
func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound implements Scorer.
func (v *Vader) Compound(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}
