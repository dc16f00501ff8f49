// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ExtremoDB API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - StudentHandler: Browsing views for the student role
  - ResearcherHandler: Analytical views for the researcher role
  - AdminHandler: Operational reporting views for the admin role
  - OrganismHandler: Organism writes (create, delete, citations, project links)
  - ProjectHandler: Project writes (create, funding, taxonomy deletion)
  - SearchHandler: Cross-entity search and organism profiles

Handlers are created via constructor functions that accept *db.DB and Config:

	studentHandler := handlers.NewStudentHandler(database, cfg)

# Read Surface

Each reporting endpoint reads from a database view, so the SQL that
defines a report lives in one place (db/views.go) and every consumer
sees the same rows:

	GET /student/organisms        → Student_Organism_Taxonomy_Ecosystem
	GET /student/avg-temps        → Student_Avg_Optimum_Temp_By_Ecosystem
	GET /researcher/extreme-temps → Researcher_Extreme_Temperature_Organisms
	GET /admin/high-funded        → Admin_High_Funded_Projects

# Write Surface

Mutating endpoints require the X-Admin-Token header. Multi-table writes
(an organism plus its conditions and citations, a project plus its
status row) run in a single transaction.

Constraint violations surface as structured errors: unique conflicts
map to 409, check and not-null failures to 400, and missing foreign
keys to 404.
*/
package handlers
