// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinematch/internal/api"
	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metadata"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/sentiment"
	"github.com/tomtom215/cinematch/internal/supervisor"
	"github.com/tomtom215/cinematch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("catalog_source", cfg.Catalog.Source).
		Str("cache_backend", cfg.Cache.Backend).
		Bool("omdb_enabled", cfg.OMDb.Enabled()).
		Bool("tmdb_enabled", cfg.TMDB.Enabled()).
		Msg("Starting Cinematch")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loadStart := time.Now()
	movies, err := catalog.Open(ctx, &cfg.Catalog)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}
	metrics.RecordCatalogLoad(cfg.Catalog.Source, movies.Len(), time.Since(loadStart))
	logging.Info().
		Int("movies", movies.Len()).
		Dur("duration", time.Since(loadStart)).
		Msg("Catalog loaded")

	backend, err := cache.NewBackend(cfg.Cache)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open cache backend")
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing cache backend")
		}
	}()

	provider := metadata.New(cfg, backend)
	analyzer := sentiment.NewAnalyzer(sentiment.NewVader())
	recommender := recommend.NewCached(
		recommend.NewSelector(movies, logging.WithComponent("recommend")),
		backend.Cache(recommend.CacheName),
	)

	handler := api.NewHandler(api.Dependencies{
		Catalog:     movies,
		Recommender: recommender,
		Metadata:    provider,
		Analyzer:    analyzer,
		Cache:       backend,
	})
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	svcLogger := logging.Logger()
	tree.AddBackgroundService(services.NewStatsService(backend, 0, svcLogger))
	if cfg.Recommend.Prewarm {
		tree.AddBackgroundService(services.NewPrewarmService(recommender, movies.Titles(), cfg.Recommend.PrewarmWorkers, svcLogger))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, svcLogger))

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	if err := awaitShutdown(ctx, stop, errCh); err != nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Cinematch stopped")
}

// awaitShutdown blocks until the tree stops. ServeBackground delivers exactly
// one value and never closes the channel. stop releases the signal handler
// once shutdown starts, so a second SIGINT kills the process.
func awaitShutdown(ctx context.Context, stop context.CancelFunc, errCh <-chan error) error {
	var err error
	select {
	case <-ctx.Done():
		stop()
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
		err = <-errCh
	case err = <-errCh:
		stop()
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
