// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package services provides suture.Service implementations for Cinematch.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe pattern to Serve
  - Runs in the api layer

Recommendation Prewarm (PrewarmService):
  - Computes recommendations for every catalog title into the cache
  - Bounded worker pool (errgroup with SetLimit)
  - Returns suture.ErrDoNotRestart when finished
  - Runs in the background layer

Stats Publisher (StatsService):
  - Samples cache sizes and uptime into Prometheus gauges on a ticker
  - Runs in the background layer

# Error Handling

Return values determine supervisor behavior:

	nil                     -> service stopped, supervisor restarts it
	error                   -> service crashed, supervisor restarts it with backoff
	suture.ErrDoNotRestart  -> service finished its work, not restarted
	ctx.Err()               -> shutdown requested, normal termination

# Usage

	tree, _ := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	tree.AddAPIService(services.NewHTTPServerService(srv, addr, 10*time.Second, log))
	tree.AddBackgroundService(services.NewStatsService(backend, 0, log))
	if cfg.Recommend.Prewarm {
	    tree.AddBackgroundService(services.NewPrewarmService(rec, cat.Titles(), cfg.Recommend.PrewarmWorkers, log))
	}
	err := tree.Serve(ctx)
*/
package services
