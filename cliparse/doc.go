// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags, environment
variables, and an optional .env file (loaded via godotenv).

Precedence: CLI flags > environment variables > defaults.

Settings:

  - Port (-p, PORT): server port, default 4100
  - DatabaseType (-t, DATABASE_TYPE): sqlite (default) or postgres
  - DatabaseURL (-d, DATABASE_URL): connection string; defaults to
    file:extremodb.db for sqlite, required for postgres
  - AdminToken (-admin-token, ADMIN_TOKEN): required; gates mutating
    endpoints
  - Seed (-seed, SEED_DB=1): load the seed dataset on startup
*/
package cliparse
