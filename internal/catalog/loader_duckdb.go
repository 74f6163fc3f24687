// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
)

// The DuckDB artifact layout:
//
//	CREATE TABLE movies (idx INTEGER PRIMARY KEY, title VARCHAR NOT NULL, overview VARCHAR);
//	CREATE TABLE similarity (idx INTEGER PRIMARY KEY, scores DOUBLE[] NOT NULL);
//
// idx must run 0..n-1 in both tables.
const (
	selectMoviesSQL     = `SELECT idx, title, overview FROM movies ORDER BY idx`
	selectSimilaritySQL = `SELECT idx, scores FROM similarity ORDER BY idx`
)

// LoadDuckDB opens the database at path read-only and loads the catalog.
func LoadDuckDB(ctx context.Context, path string) (*Catalog, error) {
	connStr := fmt.Sprintf("%s?access_mode=read_only&autoinstall_known_extensions=false&autoload_known_extensions=false", path)
	db, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer closeQuietly(db)

	return FromDB(ctx, db)
}

// FromDB loads the catalog from an open database holding the movies and
// similarity tables.
func FromDB(ctx context.Context, db *sql.DB) (*Catalog, error) {
	entries, err := queryMovies(ctx, db)
	if err != nil {
		return nil, err
	}
	matrix, err := querySimilarity(ctx, db)
	if err != nil {
		return nil, err
	}
	return New(entries, matrix)
}

func queryMovies(ctx context.Context, db *sql.DB) ([]Entry, error) {
	rows, err := db.QueryContext(ctx, selectMoviesSQL)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			idx      int
			title    string
			overview sql.NullString
		)
		if err := rows.Scan(&idx, &title, &overview); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		if idx != len(entries) {
			return nil, fmt.Errorf("%w: movies idx %d found at position %d", ErrDataIntegrity, idx, len(entries))
		}
		entries = append(entries, Entry{Title: title, Overview: overview.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return entries, nil
}

func querySimilarity(ctx context.Context, db *sql.DB) ([][]float64, error) {
	rows, err := db.QueryContext(ctx, selectSimilaritySQL)
	if err != nil {
		return nil, fmt.Errorf("query similarity: %w", err)
	}
	defer rows.Close()

	var matrix [][]float64
	for rows.Next() {
		var (
			idx    int
			scores any
		)
		if err := rows.Scan(&idx, &scores); err != nil {
			return nil, fmt.Errorf("scan similarity row: %w", err)
		}
		if idx != len(matrix) {
			return nil, fmt.Errorf("%w: similarity idx %d found at position %d", ErrDataIntegrity, idx, len(matrix))
		}
		row, err := toFloatRow(scores)
		if err != nil {
			return nil, fmt.Errorf("%w: similarity row %d: %v", ErrDataIntegrity, idx, err)
		}
		matrix = append(matrix, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate similarity: %w", err)
	}
	return matrix, nil
}

// toFloatRow converts a scanned LIST value into float64 scores.
func toFloatRow(v any) ([]float64, error) {
	switch list := v.(type) {
	case []float64:
		return list, nil
	case []any:
		row := make([]float64, len(list))
		for i, item := range list {
			switch n := item.(type) {
			case float64:
				row[i] = n
			case float32:
				row[i] = float64(n)
			case int32:
				row[i] = float64(n)
			case int64:
				row[i] = float64(n)
			default:
				return nil, fmt.Errorf("unsupported score type %T at column %d", item, i)
			}
		}
		return row, nil
	default:
		return nil, fmt.Errorf("unsupported scores column type %T", v)
	}
}

func closeQuietly(db *sql.DB) {
	_ = db.Close()
}
