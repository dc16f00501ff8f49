// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "fmt"

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(d *DB) error {
	if _, err := d.DB.Exec(schemaSQL(d.kind)); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// idColumn is the one DDL fragment that differs between engines: SQLite
// auto-assigns rowid-aliased INTEGER PRIMARY KEYs, Postgres needs an
// identity clause.
func idColumn(k Kind) string {
	if k == KindPostgres {
		return "INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY"
	}
	return "INTEGER PRIMARY KEY"
}

func schemaSQL(k Kind) string {
	return fmt.Sprintf(schemaTemplate, idColumn(k))
}

// Dates are stored as ISO-8601 TEXT (YYYY-MM-DD); lexical comparison is
// chronological, so the EndDate > StartDate check holds on both engines.
// Funding amounts and salinity are non-negative REALs; pressure fields
// default to 1.0 (standard atmosphere).
const schemaTemplate = `
-- Reference tables
CREATE TABLE IF NOT EXISTS Taxonomy (
    TaxonomyID %[1]s,
    Domain TEXT NOT NULL CHECK (Domain IN ('Archaea', 'Bacteria', 'Eukarya')),
    Phylum TEXT NOT NULL,
    Class TEXT NOT NULL,
    OrderName TEXT NOT NULL,
    Family TEXT NOT NULL,
    UNIQUE (TaxonomyID, Domain)
);

CREATE TABLE IF NOT EXISTS Ecosystem (
    EcosystemID %[1]s,
    EcosystemName TEXT NOT NULL UNIQUE,
    Description TEXT NOT NULL DEFAULT '',
    LocationType TEXT NOT NULL CHECK (LocationType IN ('Natural', 'Artificial'))
);

CREATE TABLE IF NOT EXISTS Environment (
    EnvironmentID %[1]s,
    EnvironmentName TEXT NOT NULL UNIQUE,
    ClimateType TEXT NOT NULL CHECK (ClimateType IN ('Tropical', 'Arid', 'Temperate', 'Cold', 'Polar')),
    Flora TEXT NOT NULL DEFAULT '',
    Fauna TEXT NOT NULL DEFAULT ''
);

-- Projects
CREATE TABLE IF NOT EXISTS ProjectInfo (
    ProjectID %[1]s,
    Title TEXT NOT NULL UNIQUE,
    Description TEXT NOT NULL DEFAULT '',
    StartDate TEXT NOT NULL,
    EndDate TEXT NOT NULL,
    CHECK (EndDate > StartDate)
);

CREATE TABLE IF NOT EXISTS ProjectStatus (
    ProjectID INTEGER PRIMARY KEY REFERENCES ProjectInfo(ProjectID) ON DELETE CASCADE ON UPDATE CASCADE,
    Status TEXT NOT NULL DEFAULT 'Ongoing' CHECK (Status IN ('Ongoing', 'Completed', 'Cancelled', 'On Hold'))
);

CREATE TABLE IF NOT EXISTS ProjectFunding (
    ProjectID INTEGER NOT NULL REFERENCES ProjectInfo(ProjectID) ON DELETE CASCADE ON UPDATE CASCADE,
    FundingSource TEXT NOT NULL,
    Amount REAL NOT NULL CHECK (Amount >= 0),
    PRIMARY KEY (ProjectID, FundingSource)
);

-- Organisms
CREATE TABLE IF NOT EXISTS Organism (
    OrganismID %[1]s,
    Name TEXT NOT NULL UNIQUE,
    TaxonomyID INTEGER NOT NULL REFERENCES Taxonomy(TaxonomyID) ON DELETE CASCADE ON UPDATE CASCADE,
    EcosystemID INTEGER NOT NULL REFERENCES Ecosystem(EcosystemID) ON DELETE CASCADE ON UPDATE CASCADE,
    EnvironmentID INTEGER NOT NULL REFERENCES Environment(EnvironmentID) ON DELETE CASCADE ON UPDATE CASCADE,
    EnergySource TEXT NOT NULL CHECK (EnergySource IN ('Organotroph', 'Chemoautotroph', 'Heterotroph')),
    Metabolism TEXT NOT NULL CHECK (Metabolism IN ('Methanotroph', 'Autotroph', 'Respiratory', 'Fermentative')),
    MetabolismDetail TEXT NOT NULL DEFAULT '',
    OxygenRequirement TEXT NOT NULL CHECK (OxygenRequirement IN ('Aerobic', 'Anaerobic', 'Facultative Anaerobic')),
    Note TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_organism_taxonomy ON Organism(TaxonomyID);
CREATE INDEX IF NOT EXISTS idx_organism_ecosystem ON Organism(EcosystemID);
CREATE INDEX IF NOT EXISTS idx_organism_environment ON Organism(EnvironmentID);

CREATE TABLE IF NOT EXISTS EnvironmentalCondition (
    OrganismID INTEGER NOT NULL UNIQUE REFERENCES Organism(OrganismID) ON DELETE CASCADE ON UPDATE CASCADE,
    MinpH REAL NOT NULL CHECK (MinpH >= 0),
    MaxpH REAL NOT NULL CHECK (MaxpH <= 14),
    AvgOptpH REAL,
    MinTemp REAL NOT NULL CHECK (MinTemp >= -273.15),
    MaxTemp REAL NOT NULL,
    AvgOptimumTemp REAL,
    MinPressure REAL NOT NULL DEFAULT 1.0 CHECK (MinPressure >= 0),
    MaxPressure REAL NOT NULL DEFAULT 1.0 CHECK (MaxPressure >= 0),
    AvgOptPressure REAL NOT NULL DEFAULT 1.0 CHECK (AvgOptPressure >= 0),
    AvgOptSalinity REAL NOT NULL DEFAULT 0 CHECK (AvgOptSalinity >= 0),
    CHECK (MinpH <= MaxpH),
    CHECK (MinTemp <= MaxTemp),
    CHECK (MinPressure <= MaxPressure)
);

CREATE TABLE IF NOT EXISTS BioSource (
    SourceID %[1]s,
    OrganismID INTEGER NOT NULL REFERENCES Organism(OrganismID) ON DELETE CASCADE ON UPDATE CASCADE,
    SourceURL TEXT NOT NULL,
    UNIQUE (OrganismID, SourceURL)
);

CREATE INDEX IF NOT EXISTS idx_biosource_organism ON BioSource(OrganismID);

CREATE TABLE IF NOT EXISTS Organism_ResearchProject (
    OrganismID INTEGER NOT NULL REFERENCES Organism(OrganismID) ON DELETE CASCADE ON UPDATE CASCADE,
    ProjectID INTEGER NOT NULL REFERENCES ProjectInfo(ProjectID) ON DELETE CASCADE ON UPDATE CASCADE,
    PRIMARY KEY (OrganismID, ProjectID)
);

CREATE INDEX IF NOT EXISTS idx_orp_project ON Organism_ResearchProject(ProjectID);
`
