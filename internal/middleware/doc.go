// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package middleware provides HTTP middleware for the API.

Key Components:

  - RequestID: UUID-based request tracking, propagated into the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - Compression: gzip for clients that accept it

All middleware has the http.HandlerFunc signature; the api package adapts it
for chi.
*/
package middleware
