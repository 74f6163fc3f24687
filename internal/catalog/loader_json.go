// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
)

// LoadJSON reads the movie table from moviesPath and the similarity matrix
// from similarityPath.
func LoadJSON(moviesPath, similarityPath string) (*Catalog, error) {
	moviesFile, err := os.Open(moviesPath) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open movies: %w", err)
	}
	defer moviesFile.Close()

	entries, err := DecodeMovies(moviesFile)
	if err != nil {
		return nil, fmt.Errorf("decode movies %s: %w", moviesPath, err)
	}

	simFile, err := os.Open(similarityPath) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open similarity matrix: %w", err)
	}
	defer simFile.Close()

	matrix, err := DecodeMatrix(simFile)
	if err != nil {
		return nil, fmt.Errorf("decode similarity matrix %s: %w", similarityPath, err)
	}

	return New(entries, matrix)
}

// DecodeMovies accepts either a records array
//
//	[{"title": "Avatar", "overview": "..."}, ...]
//
// or the column-oriented shape produced by exporting a data frame
//
//	{"title": {"0": "Avatar", ...}, "overview": {"0": "...", ...}}
//
// Column-oriented rows are ordered by their numeric index.
func DecodeMovies(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, ErrEmptyCatalog
	}

	switch trimmed[0] {
	case '[':
		return decodeRecords(trimmed)
	case '{':
		return decodeColumns(trimmed)
	default:
		return nil, fmt.Errorf("unrecognized movies document starting with %q", trimmed[0])
	}
}

type movieRecord struct {
	Title    *string `json:"title"`
	Overview *string `json:"overview"`
}

func decodeRecords(data []byte) ([]Entry, error) {
	var records []movieRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	entries := make([]Entry, len(records))
	for i, rec := range records {
		if rec.Title == nil {
			return nil, fmt.Errorf("%w: record %d has no title", ErrDataIntegrity, i)
		}
		entries[i].Title = *rec.Title
		if rec.Overview != nil {
			entries[i].Overview = *rec.Overview
		}
	}
	return entries, nil
}

type movieColumns struct {
	Title    map[string]*string `json:"title"`
	Overview map[string]*string `json:"overview"`
}

func decodeColumns(data []byte) ([]Entry, error) {
	var cols movieColumns
	if err := json.Unmarshal(data, &cols); err != nil {
		return nil, err
	}
	if len(cols.Title) == 0 {
		return nil, ErrEmptyCatalog
	}

	type keyed struct {
		index int
		key   string
	}
	keys := make([]keyed, 0, len(cols.Title))
	for k := range cols.Title {
		idx, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric row index %q", ErrDataIntegrity, k)
		}
		keys = append(keys, keyed{index: idx, key: k})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].index < keys[j].index })

	entries := make([]Entry, len(keys))
	for i, k := range keys {
		title := cols.Title[k.key]
		if title == nil {
			return nil, fmt.Errorf("%w: row %s has no title", ErrDataIntegrity, k.key)
		}
		entries[i].Title = *title
		if ov := cols.Overview[k.key]; ov != nil {
			entries[i].Overview = *ov
		}
	}
	return entries, nil
}

// DecodeMatrix reads a JSON array of rows of numbers.
func DecodeMatrix(r io.Reader) ([][]float64, error) {
	var matrix [][]float64
	if err := json.NewDecoder(bufio.NewReader(r)).Decode(&matrix); err != nil {
		return nil, err
	}
	return matrix, nil
}
