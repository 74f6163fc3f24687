// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/duckdb/duckdb-go/v2"
)

func openMemoryDB(t *testing.T, statements ...string) *sql.DB {
	t.Helper()
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		t.Fatalf("failed to open duckdb: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := []string{
		`CREATE TABLE movies (idx INTEGER PRIMARY KEY, title VARCHAR NOT NULL, overview VARCHAR)`,
		`CREATE TABLE similarity (idx INTEGER PRIMARY KEY, scores DOUBLE[] NOT NULL)`,
	}
	for _, stmt := range append(schema, statements...) {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	return db
}

func TestFromDB(t *testing.T) {
	db := openMemoryDB(t,
		`INSERT INTO movies VALUES (0, 'Alien', 'In space.'), (1, 'Aliens', NULL)`,
		`INSERT INTO similarity VALUES (0, [1.0, 0.8]), (1, [0.8, 1.0])`,
	)

	c, err := FromDB(context.Background(), db)
	if err != nil {
		t.Fatalf("FromDB() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if got := c.OverviewOf("Aliens"); got != DefaultOverview {
		t.Errorf("OverviewOf(Aliens) = %q, want default", got)
	}
	if got := c.Row(1)[0]; got != 0.8 {
		t.Errorf("Row(1)[0] = %v, want 0.8", got)
	}
}

func TestFromDB_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		stmts []string
	}{
		{
			name: "missing similarity row",
			stmts: []string{
				`INSERT INTO movies VALUES (0, 'Alien', ''), (1, 'Aliens', '')`,
				`INSERT INTO similarity VALUES (0, [1.0, 0.8])`,
			},
		},
		{
			name: "gap in movie idx",
			stmts: []string{
				`INSERT INTO movies VALUES (0, 'Alien', ''), (2, 'Aliens', '')`,
				`INSERT INTO similarity VALUES (0, [1.0, 0.8]), (1, [0.8, 1.0])`,
			},
		},
		{
			name: "short similarity row",
			stmts: []string{
				`INSERT INTO movies VALUES (0, 'Alien', ''), (1, 'Aliens', '')`,
				`INSERT INTO similarity VALUES (0, [1.0]), (1, [0.8, 1.0])`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openMemoryDB(t, tt.stmts...)
			if _, err := FromDB(context.Background(), db); !errors.Is(err, ErrDataIntegrity) {
				t.Errorf("FromDB() error = %v, want ErrDataIntegrity", err)
			}
		})
	}
}

func TestToFloatRow(t *testing.T) {
	t.Parallel()

	row, err := toFloatRow([]any{float64(1), float32(0.5), int64(0)})
	if err != nil {
		t.Fatalf("toFloatRow() error = %v", err)
	}
	if row[0] != 1 || row[1] != 0.5 || row[2] != 0 {
		t.Errorf("toFloatRow() = %v", row)
	}
	if _, err := toFloatRow([]any{"x"}); err == nil {
		t.Error("toFloatRow() should reject strings")
	}
	if _, err := toFloatRow("x"); err == nil {
		t.Error("toFloatRow() should reject non-lists")
	}
}
