// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database access, schema creation, reporting views, and
the seed dataset.

# Engines

Open selects the driver from the configured database type:

  - sqlite (modernc.org/sqlite): the default; pure Go, used by all tests.
    Foreign key enforcement is enabled via the foreign_keys pragma.
  - postgres (lib/pq): production deployments.

Query text is shared between both: statements use $N placeholders in
strictly ascending order, and the DB/Tx wrappers rewrite them to ? for
SQLite. The only dialect-specific SQL is the identity clause on id columns
and the day-difference expression inside one view.

# Schema

CreateSchema initializes all tables:

  - Taxonomy, Ecosystem, Environment: reference tables
  - ProjectInfo, ProjectStatus (1:1), ProjectFunding (composite key)
  - Organism: references all three reference tables
  - EnvironmentalCondition: 1:1 tolerance ranges per organism
  - BioSource: citation URLs, unique per (organism, URL)
  - Organism_ResearchProject: many-to-many join, unique pairs

Enumerated domains, range bounds (pH 0-14, the -273.15 temperature floor,
non-negative salinity/pressure/funding), ordering constraints (Min <= Max,
EndDate > StartDate), and uniqueness rules are all CHECK/UNIQUE constraints
checked atomically at statement time. Every foreign key is ON DELETE
CASCADE ON UPDATE CASCADE; deleting a reference row removes its organisms
and, transitively, their conditions, citations, and project associations.

# Views

CreateViews defines the twelve read-only reporting views consumed by the
role endpoints and by external reporting tools:

  - Student_Organism_Taxonomy_Ecosystem
  - Student_Avg_Optimum_Temp_By_Ecosystem
  - Researcher_Extreme_Temperature_Organisms
  - Researcher_Funding_Aquatic_Projects
  - Researcher_Organisms_Projects_Domain_Ecosystem
  - Researcher_Organism_Temperature_Project
  - Admin_Projects_Status_OrganismCount
  - Admin_Organisms_Without_Projects
  - Admin_Project_Duration_Organisms
  - Admin_Temperature_Stats_By_Ecosystem
  - Admin_High_Funded_Projects
  - Organism_Profile

# Seed

Seed loads seven fixed rows per base table (ids 1-7) in one transaction
and is a no-op on a non-empty database.

# Errors

IsUniqueViolation, IsCheckViolation, and IsForeignKeyViolation classify
driver errors into the constraint taxonomy so handlers can map them to
HTTP statuses.
*/
package db
