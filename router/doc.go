// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ExtremoDB API.

# Route Registration

NewRouter creates a configured handler with all endpoints:

	h := router.NewRouter(database, cfg)

# Endpoints

Health and telemetry:

	GET /health
	GET /metrics

Student reporting (public):

	GET /student/organisms  - Organisms with taxonomy and ecosystem (?domain= filter)
	GET /student/avg-temps  - Average optimum temperature per ecosystem

Researcher reporting (public):

	GET /researcher/extreme-temps    - Organisms below 10 C or above 100 C
	GET /researcher/aquatic-funding  - Funding sources for aquatic projects
	GET /researcher/domain-ecosystem - Counts per (domain, ecosystem)
	GET /researcher/temp-projects    - Hot M-named organisms and their projects

Admin reporting (public):

	GET /admin/project-status    - Projects with status and organism counts
	GET /admin/orphan-organisms  - Organisms without projects
	GET /admin/project-durations - Day-level durations with organisms
	GET /admin/temp-stats        - Temperature stats per ecosystem
	GET /admin/high-funded       - Projects funded above $2.00 million

Search:

	GET /search?q=                  - Organism names and project titles
	GET /organisms/{name}/profile   - Full organism profile

Curation (requires X-Admin-Token):

	POST   /organisms                 - Create organism with conditions and citations
	DELETE /organisms/{id}            - Delete organism (cascades)
	POST   /organisms/{id}/sources    - Add citation URL
	POST   /organisms/{id}/projects   - Link organism to project
	POST   /projects                  - Create project with status
	POST   /projects/{id}/funding     - Record a funding source
	DELETE /taxonomy/{id}             - Delete taxonomy (cascades to organisms)

# Middleware

Every application route is wrapped in request logging and Prometheus
metrics; the returned handler applies CORS to the whole mux.
*/
package router
