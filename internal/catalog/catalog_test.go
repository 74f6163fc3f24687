// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func identity(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	return m
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	entries := []Entry{
		{Title: "Inception", Overview: "Dreams within dreams."},
		{Title: "The Dark Knight", Overview: "Batman faces the Joker."},
		{Title: "Avatar", Overview: ""},
		{Title: "avatar", Overview: "Lowercase duplicate."},
		{Title: "Interstellar", Overview: "   "},
	}
	c, err := New(entries, identity(len(entries)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNew_Integrity(t *testing.T) {
	t.Parallel()

	entries := []Entry{{Title: "A"}, {Title: "B"}}

	tests := []struct {
		name    string
		entries []Entry
		matrix  [][]float64
		wantErr error
	}{
		{"consistent", entries, identity(2), nil},
		{"too few rows", entries, identity(1), ErrDataIntegrity},
		{"too many rows", entries, identity(3)[:3], ErrDataIntegrity},
		{"ragged row", entries, [][]float64{{1, 0}, {0}}, ErrDataIntegrity},
		{"missing title", []Entry{{Title: "A"}, {Title: ""}}, identity(2), ErrDataIntegrity},
		{"empty", nil, nil, ErrEmptyCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.entries, tt.matrix)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("New() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLookupByTitle(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	tests := []struct {
		title   string
		wantIdx int
		wantOK  bool
	}{
		{"Inception", 0, true},
		{"INCEPTION", 0, true},
		{"inception", 0, true},
		{"the dark knight", 1, true},
		{"AVATAR", 2, true}, // first match wins over the later lowercase duplicate
		{"Incep", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()
			idx, ok := c.LookupByTitle(tt.title)
			if ok != tt.wantOK {
				t.Fatalf("LookupByTitle(%q) ok = %v, want %v", tt.title, ok, tt.wantOK)
			}
			if ok && idx != tt.wantIdx {
				t.Errorf("LookupByTitle(%q) = %d, want %d", tt.title, idx, tt.wantIdx)
			}
		})
	}
}

func TestTitlesContaining(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	tests := []struct {
		substr string
		want   []string
	}{
		{"avat", []string{"Avatar", "avatar"}},
		{"KNIGHT", []string{"The Dark Knight"}},
		{"in", []string{"Inception", "Interstellar"}},
		{"t", []string{"Inception", "The Dark Knight", "Avatar", "avatar", "Interstellar"}},
		{"zzz", []string{}},
		{"", []string{"Inception", "The Dark Knight", "Avatar", "avatar", "Interstellar"}},
	}

	for _, tt := range tests {
		t.Run(tt.substr, func(t *testing.T) {
			t.Parallel()
			got := c.TitlesContaining(tt.substr)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TitlesContaining(%q) = %v, want %v", tt.substr, got, tt.want)
			}
		})
	}
}

func TestOverviewOf(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"exact match", "Inception", "Dreams within dreams."},
		{"exact match beats case-insensitive", "avatar", "Lowercase duplicate."},
		{"case-insensitive fallback", "inception", "Dreams within dreams."},
		{"empty overview defaulted", "Avatar", DefaultOverview},
		{"blank overview defaulted", "Interstellar", DefaultOverview},
		{"unknown title", "Nope", DefaultOverview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := c.OverviewOf(tt.title); got != tt.want {
				t.Errorf("OverviewOf(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	if c.Len() != 5 {
		t.Errorf("Len() = %d, want 5", c.Len())
	}
	if titles := c.Titles(); titles[1] != "The Dark Knight" || len(titles) != 5 {
		t.Errorf("Titles() = %v", titles)
	}
	if e, ok := c.Entry(0); !ok || e.Title != "Inception" {
		t.Errorf("Entry(0) = %+v, %v", e, ok)
	}
	if _, ok := c.Entry(5); ok {
		t.Error("Entry(5) should be out of range")
	}
	if row := c.Row(1); len(row) != 5 || row[1] != 1 {
		t.Errorf("Row(1) = %v", row)
	}
	if row := c.Row(-1); row != nil {
		t.Errorf("Row(-1) = %v, want nil", row)
	}
}
