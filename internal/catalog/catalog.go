// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package catalog holds the immutable movie table and its precomputed
// similarity matrix. Row i of the matrix describes movie i.
//
// A Catalog is built once at startup by one of the loaders and shared by
// pointer afterwards. All methods are safe for concurrent use because
// nothing is mutated after construction.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultOverview replaces missing or blank overviews.
const DefaultOverview = "No description available"

var (
	// ErrDataIntegrity means the movie table and similarity matrix disagree.
	// The server must not start with such an artifact.
	ErrDataIntegrity = errors.New("catalog data integrity violation")

	// ErrEmptyCatalog means the artifact contained no movies.
	ErrEmptyCatalog = errors.New("catalog is empty")
)

// Entry is one movie in the catalog.
type Entry struct {
	Title    string `json:"title"`
	Overview string `json:"overview"`
}

// Catalog is the read-only movie table plus similarity matrix.
type Catalog struct {
	entries []Entry
	matrix  [][]float64

	lowerTitles []string
	byExact     map[string]int
	byLower     map[string]int
}

// New validates entries against matrix and builds the lookup indexes.
// The catalog takes ownership of both slices; callers must not modify them
// afterwards.
func New(entries []Entry, matrix [][]float64) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	if err := validateShape(entries, matrix); err != nil {
		return nil, err
	}

	c := &Catalog{
		entries:     entries,
		matrix:      matrix,
		lowerTitles: make([]string, len(entries)),
		byExact:     make(map[string]int, len(entries)),
		byLower:     make(map[string]int, len(entries)),
	}

	for i := range c.entries {
		e := &c.entries[i]
		if strings.TrimSpace(e.Overview) == "" {
			e.Overview = DefaultOverview
		}

		lower := strings.ToLower(e.Title)
		c.lowerTitles[i] = lower

		// First occurrence wins for duplicate titles.
		if _, ok := c.byExact[e.Title]; !ok {
			c.byExact[e.Title] = i
		}
		if _, ok := c.byLower[lower]; !ok {
			c.byLower[lower] = i
		}
	}

	return c, nil
}

func validateShape(entries []Entry, matrix [][]float64) error {
	n := len(entries)
	if len(matrix) != n {
		return fmt.Errorf("%w: similarity matrix has %d rows for %d movies", ErrDataIntegrity, len(matrix), n)
	}
	for i, row := range matrix {
		if len(row) != n {
			return fmt.Errorf("%w: similarity row %d has %d columns, want %d", ErrDataIntegrity, i, len(row), n)
		}
	}
	for i, e := range entries {
		if e.Title == "" {
			return fmt.Errorf("%w: movie %d has no title", ErrDataIntegrity, i)
		}
	}
	return nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Titles returns every title in catalog order.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.entries))
	for i, e := range c.entries {
		titles[i] = e.Title
	}
	return titles
}

// Entry returns the movie at index i.
func (c *Catalog) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Row returns the similarity scores of movie i against every movie,
// including itself. The slice is shared and must not be modified.
func (c *Catalog) Row(i int) []float64 {
	if i < 0 || i >= len(c.matrix) {
		return nil
	}
	return c.matrix[i]
}

// LookupByTitle finds the first movie whose title equals title ignoring case.
func (c *Catalog) LookupByTitle(title string) (int, bool) {
	idx, ok := c.byLower[strings.ToLower(title)]
	return idx, ok
}

// TitlesContaining returns, in catalog order, every title containing substr
// ignoring case. An empty substr matches everything.
func (c *Catalog) TitlesContaining(substr string) []string {
	needle := strings.ToLower(substr)
	matches := make([]string, 0)
	for i, lower := range c.lowerTitles {
		if strings.Contains(lower, needle) {
			matches = append(matches, c.entries[i].Title)
		}
	}
	return matches
}

// OverviewOf returns the overview of the first exact title match, falling
// back to a case-insensitive match and finally to DefaultOverview.
func (c *Catalog) OverviewOf(title string) string {
	if idx, ok := c.byExact[title]; ok {
		return c.entries[idx].Overview
	}
	if idx, ok := c.LookupByTitle(title); ok {
		return c.entries[idx].Overview
	}
	return DefaultOverview
}
