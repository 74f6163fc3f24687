// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package config loads Cinematch configuration from defaults, an optional
// YAML file and environment variables, in that order of precedence.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("invalid configuration")
//	}
//
// Config is immutable after Load and safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	OMDb      OMDbConfig      `koanf:"omdb"`
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Cache     CacheConfig     `koanf:"cache"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// Catalog sources.
const (
	CatalogSourceJSON   = "json"
	CatalogSourceDuckDB = "duckdb"
)

// CatalogConfig locates the precomputed catalog artifact.
//
// With source "json", MoviesPath holds the movie table and SimilarityPath the
// square similarity matrix. With source "duckdb", DuckDBPath points at a
// database containing the movies and similarity tables.
type CatalogConfig struct {
	Source         string `koanf:"source"`
	MoviesPath     string `koanf:"movies_path"`
	SimilarityPath string `koanf:"similarity_path"`
	DuckDBPath     string `koanf:"duckdb_path"`
}

// RecommendConfig controls the recommendation selector.
type RecommendConfig struct {
	// Prewarm computes recommendations for every catalog title at startup.
	Prewarm bool `koanf:"prewarm"`

	// PrewarmWorkers bounds prewarm concurrency. 0 means runtime.NumCPU().
	PrewarmWorkers int `koanf:"prewarm_workers"`
}

// OMDbConfig configures the movie metadata provider. An empty APIKey
// disables lookups and every request returns the defaulted record.
type OMDbConfig struct {
	URL     string        `koanf:"url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

// Enabled reports whether OMDb lookups are configured.
func (c OMDbConfig) Enabled() bool { return c.APIKey != "" }

// TMDBConfig configures the cast photo provider.
type TMDBConfig struct {
	URL          string        `koanf:"url"`
	ImageBaseURL string        `koanf:"image_base_url"`
	APIKey       string        `koanf:"api_key"`
	Timeout      time.Duration `koanf:"timeout"`

	// RequestsPerSecond limits outbound TMDB calls. 0 disables limiting.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// Enabled reports whether TMDB lookups are configured.
func (c TMDBConfig) Enabled() bool { return c.APIKey != "" }

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendBadger = "badger"
)

// CacheConfig selects the memo cache used for upstream lookups and
// recommendations. Entries never expire.
type CacheConfig struct {
	Backend string `koanf:"backend"`
	Path    string `koanf:"path"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns host:port for net/http.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SecurityConfig holds inbound rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration with koanf and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
