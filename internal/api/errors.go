// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

// Error codes returned in APIError.Code.
const (
	codeBadRequest       = "BAD_REQUEST"
	codeNotReady         = "NOT_READY"
	codeRateLimited      = "RATE_LIMITED"
	codeNotFound         = "NOT_FOUND"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)
