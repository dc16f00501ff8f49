// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines enumerated domains, entity types, view row types,
and request/response types for the API.

# Enumerated Domains

Closed value sets mirrored by CHECK constraints in the schema. Each has a
Valid* function used at the write boundary before a statement is attempted:

	Domain:            Archaea, Bacteria, Eukarya
	LocationType:      Natural, Artificial
	ClimateType:       Tropical, Arid, Temperate, Cold, Polar
	Status:            Ongoing, Completed, Cancelled, On Hold
	EnergySource:      Organotroph, Chemoautotroph, Heterotroph
	Metabolism:        Methanotroph, Autotroph, Respiratory, Fermentative
	OxygenRequirement: Aerobic, Anaerobic, Facultative Anaerobic

# Entity Types

One struct per base table:

  - Taxonomy: Domain > Phylum > Class > Order > Family classification
  - Ecosystem: named habitat with location type
  - Environment: named climate with free-text flora/fauna
  - ProjectInfo / ProjectStatus / ProjectFunding: research project metadata
  - Organism: the central entity, referencing all three reference tables
  - EnvironmentalCondition: 1:1 tolerance ranges per organism
  - BioSource: citation URLs per organism

The "Order" taxonomic rank is stored and exposed as OrderName because ORDER
is an SQL keyword.

# View Row Types

One struct per reporting view, with field order matching the view's column
list. View names and column lists are a stable external contract.
*/
package models
