// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package main is the entry point for the Cinematch server.

Cinematch recommends movies similar to a selected title from a precomputed
similarity matrix, preferring other entries of the same series. Each title
can be enriched with OMDb metadata, TMDB cast photos and a sentiment label
computed over its plot.

# Application Architecture

	RootSupervisor ("cinematch")
	├── BackgroundSupervisor ("background-layer")
	│   ├── Stats publisher (cache sizes, uptime)
	│   └── Recommendation prewarm (optional, RECOMMEND_PREWARM=true)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: JSON files or a DuckDB database, validated before serving
 4. Caches: in-memory, or BadgerDB when CACHE_BACKEND=badger
 5. Providers: OMDb and TMDB clients behind circuit breakers
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

# Configuration

Common environment variables:

	CATALOG_SOURCE=json|duckdb
	CATALOG_PATH=/data/movies.json
	SIMILARITY_PATH=/data/similarity.json
	CATALOG_DUCKDB_PATH=/data/catalog.duckdb
	OMDB_API_KEY=...            # metadata is defaulted when unset
	TMDB_API_KEY=...            # cast lists are empty when unset
	CACHE_BACKEND=memory|badger
	HTTP_PORT=8501
	LOG_LEVEL=info
	LOG_FORMAT=json|console

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for HTTP_SHUTDOWN_TIMEOUT before the process exits.
*/
package main
