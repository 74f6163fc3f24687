// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package sentiment

import "github.com/tomtom215/cinematch/internal/metrics"

// Analyzer classifies text with a Scorer.
type Analyzer struct {
	scorer Scorer
}

// NewAnalyzer returns an Analyzer backed by s.
func NewAnalyzer(s Scorer) *Analyzer {
	return &Analyzer{scorer: s}
}

// Analyze scores and labels text.
func (a *Analyzer) Analyze(text string) Result {
	compound := a.scorer.Compound(text)
	label := Classify(compound)
	metrics.SentimentLabels.WithLabelValues(string(label)).Inc()
	return Result{Label: label, Message: label.Message(), Compound: compound}
}
