// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting concerns.

# Logging

WithLogging logs request start/completion with a per-request UUID, method,
path, client IP, and duration.

# Metrics

WithMetrics records a Prometheus counter and latency histogram per method
and route pattern, exported at /metrics.

# JSON Helpers

JSONResponse, ErrorResponse, and ParseJSONBody centralize JSON
encoding/decoding. Errors are always the shape:

	{"error": "Conflict", "message": "organism name already exists"}

# CORS

CORS allows cross-origin requests from reporting dashboards and handles
preflight.
*/
package middleware
