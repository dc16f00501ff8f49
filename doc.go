// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ExtremoDB API server.

ExtremoDB is a catalog of extremophile organisms, their taxonomic
classification, the ecosystems and environments they inhabit, their
environmental tolerance ranges, and the research projects that study
them, exposed through role-oriented reporting endpoints.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	ADMIN_TOKEN=... go run .

Or with flags:

	go run . -p 4100 -t sqlite -d "file:extremodb.db" -admin-token ... -seed

# Configuration

Required settings:

  - ADMIN_TOKEN (-admin-token): Token required on mutating endpoints
  - DATABASE_URL (-d): Connection string (required for postgres)

Optional settings:

  - PORT (-p): Server port (default: 4100)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SEED_DB=1 (-seed): Load the reference dataset on startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (student, researcher, admin, curation, search)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - models: Entity, request, and view row types
  - auth: Admin token validation
  - db: Engine-aware schema, views, seed data, and error classification
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
