// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"context"
	"fmt"

	"github.com/tomtom215/cinematch/internal/config"
)

// Open loads the catalog from the source named in cfg.
func Open(ctx context.Context, cfg *config.CatalogConfig) (*Catalog, error) {
	switch cfg.Source {
	case config.CatalogSourceJSON:
		return LoadJSON(cfg.MoviesPath, cfg.SimilarityPath)
	case config.CatalogSourceDuckDB:
		return LoadDuckDB(ctx, cfg.DuckDBPath)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}
