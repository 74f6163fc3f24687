// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"time"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateCatalog,
		c.validateRecommend,
		c.validateOMDb,
		c.validateTMDB,
		c.validateCache,
		c.validateServer,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case CatalogSourceJSON:
		if c.Catalog.MoviesPath == "" {
			return fmt.Errorf("CATALOG_PATH is required when CATALOG_SOURCE=json")
		}
		if c.Catalog.SimilarityPath == "" {
			return fmt.Errorf("SIMILARITY_PATH is required when CATALOG_SOURCE=json")
		}
	case CatalogSourceDuckDB:
		if c.Catalog.DuckDBPath == "" {
			return fmt.Errorf("CATALOG_DUCKDB_PATH is required when CATALOG_SOURCE=duckdb")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be one of: json, duckdb")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.PrewarmWorkers < 0 {
		return fmt.Errorf("RECOMMEND_PREWARM_WORKERS must not be negative")
	}
	return nil
}

func (c *Config) validateOMDb() error {
	if err := validateHTTPURL(c.OMDb.URL, "OMDB_URL"); err != nil {
		return err
	}
	if c.OMDb.Timeout <= 0 {
		return fmt.Errorf("OMDB_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if err := validateHTTPURL(c.TMDB.URL, "TMDB_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.TMDB.ImageBaseURL, "TMDB_IMAGE_BASE_URL"); err != nil {
		return err
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive")
	}
	if c.TMDB.RequestsPerSecond < 0 {
		return fmt.Errorf("TMDB_REQUESTS_PER_SECOND must not be negative")
	}
	if c.TMDB.RequestsPerSecond > 0 && c.TMDB.Burst < 1 {
		return fmt.Errorf("TMDB_BURST must be at least 1 when rate limiting is enabled")
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case CacheBackendMemory:
		return nil
	case CacheBackendBadger:
		if c.Cache.Path == "" {
			return fmt.Errorf("CACHE_PATH is required when CACHE_BACKEND=badger")
		}
		return nil
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, badger")
	}
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
