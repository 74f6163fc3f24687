// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"context"
	"testing"

	"github.com/tomtom215/cinematch/internal/config"
)

func TestOpen(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	cfg := &config.CatalogConfig{
		Source:         config.CatalogSourceJSON,
		MoviesPath:     writeFile(t, dir, "movies.json", `[{"title":"A","overview":"first"},{"title":"B","overview":"second"}]`),
		SimilarityPath: writeFile(t, dir, "similarity.json", `[[1,0.5],[0.5,1]]`),
	}

	c, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	cfg.Source = "csv"
	if _, err := Open(context.Background(), cfg); err == nil {
		t.Error("Open() with unknown source should fail")
	}
}
