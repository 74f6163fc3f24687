// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package sentiment labels plot text as positive, negative or neutral from a
// compound polarity score in [-1, 1].
package sentiment

// Label is a three-way sentiment class.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Classification thresholds. Both bounds are inclusive.
const (
	PositiveThreshold = 0.2
	NegativeThreshold = -0.2
)

var messages = map[Label]string{
	Positive: "😊🌟 This movie gives off a *Great Vibe*!",
	Negative: "🙁⚠ This movie might feel a little *Sad or Intense*, but that's okay!",
	Neutral:  "😐🤔 This movie feels a bit *Neutral*.",
}

// Classify maps a compound score to a Label.
func Classify(compound float64) Label {
	switch {
	case compound >= PositiveThreshold:
		return Positive
	case compound <= NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Message returns the display text for l.
func (l Label) Message() string {
	if m, ok := messages[l]; ok {
		return m
	}
	return messages[Neutral]
}

// Result is the outcome of analyzing one text.
type Result struct {
	Label    Label   `json:"label"`
	Message  string  `json:"message"`
	Compound float64 `json:"compound"`
}
