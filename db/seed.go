// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "fmt"

// Seed loads the initial dataset (ids 1-7 in each base table) inside one
// transaction. A database that already holds taxonomy rows is left alone.
func Seed(d *DB) error {
	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM Taxonomy").Scan(&count); err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := d.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Tx.Exec(seedSQL); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	// Explicit ids bypass identity generation on Postgres; move the
	// sequences past the seeded range so later inserts do not collide.
	if d.kind == KindPostgres {
		for _, t := range [][2]string{
			{"Taxonomy", "TaxonomyID"},
			{"Ecosystem", "EcosystemID"},
			{"Environment", "EnvironmentID"},
			{"ProjectInfo", "ProjectID"},
			{"Organism", "OrganismID"},
			{"BioSource", "SourceID"},
		} {
			stmt := fmt.Sprintf(
				"SELECT setval(pg_get_serial_sequence('%s', '%s'), (SELECT MAX(%s) FROM %s))",
				t[0], t[1], t[1], t[0],
			)
			if _, err := tx.Tx.Exec(stmt); err != nil {
				return fmt.Errorf("failed to advance %s sequence: %w", t[0], err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

const seedSQL = `
INSERT INTO Taxonomy (TaxonomyID, Domain, Phylum, Class, OrderName, Family) VALUES
    (1, 'Archaea', 'Euryarchaeota', 'Methanopyri', 'Methanopyrales', 'Methanopyraceae'),
    (2, 'Archaea', 'Crenarchaeota', 'Thermoprotei', 'Desulfurococcales', 'Pyrodictiaceae'),
    (3, 'Bacteria', 'Deinococcota', 'Deinococci', 'Deinococcales', 'Deinococcaceae'),
    (4, 'Bacteria', 'Pseudomonadota', 'Gammaproteobacteria', 'Moraxellales', 'Moraxellaceae'),
    (5, 'Archaea', 'Euryarchaeota', 'Thermoplasmata', 'Thermoplasmatales', 'Picrophilaceae'),
    (6, 'Archaea', 'Euryarchaeota', 'Halobacteria', 'Halobacteriales', 'Halobacteriaceae'),
    (7, 'Eukarya', 'Tardigrada', 'Eutardigrada', 'Parachela', 'Ramazzottiidae');

INSERT INTO Ecosystem (EcosystemID, EcosystemName, Description, LocationType) VALUES
    (1, 'Aquatic', 'Deep-sea hydrothermal vent fields', 'Natural'),
    (2, 'Marine', 'Open-ocean and seafloor volcanic systems', 'Natural'),
    (3, 'Desert', 'Hyper-arid soil and rock surfaces', 'Natural'),
    (4, 'Glacier', 'Permafrost and glacial ice', 'Natural'),
    (5, 'Hot Spring', 'Acidic geothermal springs and solfatara fields', 'Natural'),
    (6, 'Solar Saltern', 'Engineered evaporation ponds for salt production', 'Artificial'),
    (7, 'Freshwater', 'Mosses and sediments of ponds and streams', 'Natural');

INSERT INTO Environment (EnvironmentID, EnvironmentName, ClimateType, Flora, Fauna) VALUES
    (1, 'Deep-Sea Vent Field', 'Temperate', 'None (aphotic zone)', 'Tube worms, vent shrimp'),
    (2, 'Submarine Volcano', 'Tropical', 'None (aphotic zone)', 'Iron-oxidizing microbial mats'),
    (3, 'Sonoran Desert', 'Arid', 'Cacti, desert lichens', 'Desert rodents, reptiles'),
    (4, 'Siberian Permafrost', 'Polar', 'Lichens, dwarf mosses', 'Arctic ground squirrels'),
    (5, 'Solfatara Field', 'Temperate', 'Thermoacidophilic algae', 'Thermophilic insects'),
    (6, 'Coastal Saltern', 'Arid', 'Salt-tolerant algae', 'Brine shrimp, flamingos'),
    (7, 'Alpine Meltwater Pond', 'Cold', 'Aquatic mosses', 'Rotifers, nematodes');

INSERT INTO ProjectInfo (ProjectID, Title, Description, StartDate, EndDate) VALUES
    (1, 'Hyperthermophile Methanogenesis Survey', 'Methane production pathways at vent-field temperatures', '2021-03-01', '2023-08-31'),
    (2, 'Strain 121 Thermal Limit Study', 'Upper temperature bound of iron-reducing archaea', '2022-01-15', '2024-06-30'),
    (3, 'Radiation Resistance Genomics', 'DNA repair machinery of polyextremophilic bacteria', '2020-05-01', '2022-04-30'),
    (4, 'Permafrost Microbiome Monitoring', 'Long-term activity of subzero heterotrophs', '2023-02-01', '2025-12-31'),
    (5, 'Acidophile Enzyme Prospecting', 'Industrial enzymes stable at pH 0', '2021-09-01', '2023-03-31'),
    (6, 'Haloarchaeal Retinal Proteins', 'Bacteriorhodopsin variants from saturated brine', '2022-06-01', '2026-05-31'),
    (7, 'Tardigrade Cryptobiosis Program', 'Desiccation and freezing tolerance mechanisms', '2020-10-01', '2024-09-30');

INSERT INTO ProjectStatus (ProjectID, Status) VALUES
    (1, 'Completed'),
    (2, 'Ongoing'),
    (3, 'Completed'),
    (4, 'Ongoing'),
    (5, 'Cancelled'),
    (6, 'Ongoing'),
    (7, 'On Hold');

INSERT INTO ProjectFunding (ProjectID, FundingSource, Amount) VALUES
    (1, 'NSF', 1.80),
    (1, 'NASA Astrobiology Institute', 1.50),
    (2, 'NOAA Ocean Exploration', 0.95),
    (3, 'DOE Joint Genome Institute', 2.40),
    (4, 'NSF', 0.60),
    (5, 'BioCatalyst Consortium', 1.25),
    (6, 'ESA', 0.85),
    (6, 'Max Planck Society', 0.40),
    (7, 'JAXA', 1.10),
    (7, 'NASA Astrobiology Institute', 1.20);

INSERT INTO Organism (OrganismID, Name, TaxonomyID, EcosystemID, EnvironmentID, EnergySource, Metabolism, MetabolismDetail, OxygenRequirement, Note) VALUES
    (1, 'Methanopyrus kandleri 116', 1, 1, 1, 'Chemoautotroph', 'Methanotroph', 'Hydrogenotrophic methanogenesis', 'Anaerobic', 'Grows at 122 C under high hydrostatic pressure'),
    (2, 'Geogemma barossii 121', 2, 2, 2, 'Chemoautotroph', 'Autotroph', 'Fe(III) reduction with hydrogen', 'Anaerobic', 'Survives autoclaving at 121 C'),
    (3, 'Deinococcus radiodurans', 3, 3, 3, 'Organotroph', 'Respiratory', 'Aerobic heterotrophy on rich media', 'Aerobic', 'Extreme ionizing-radiation resistance'),
    (4, 'Psychrobacter arcticus', 4, 4, 4, 'Heterotroph', 'Respiratory', 'Acetate oxidation at subzero temperatures', 'Facultative Anaerobic', 'Isolated from 20,000-year-old permafrost'),
    (5, 'Picrophilus torridus', 5, 5, 5, 'Heterotroph', 'Fermentative', 'Sugar fermentation near pH 0', 'Aerobic', 'Most acidophilic organism known'),
    (6, 'Halobacterium salinarum', 6, 6, 6, 'Organotroph', 'Respiratory', 'Amino acid oxidation; light-driven ATP via bacteriorhodopsin', 'Facultative Anaerobic', 'Requires near-saturating salt'),
    (7, 'Ramazzottius varieornatus', 7, 7, 7, 'Heterotroph', 'Respiratory', 'Grazes algae and detritus', 'Aerobic', 'Cryptobiotic tardigrade, strain YOKOZUNA-1');

INSERT INTO EnvironmentalCondition (OrganismID, MinpH, MaxpH, AvgOptpH, MinTemp, MaxTemp, AvgOptimumTemp, MinPressure, MaxPressure, AvgOptPressure, AvgOptSalinity) VALUES
    (1, 5.5, 7.5, 6.5, 84, 122, 105, 1, 400, 200, 35),
    (2, 5.0, 8.0, 6.0, 85, 121, 106, 1, 400, 200, 35),
    (3, 5.0, 9.0, 7.0, 4, 45, 32, 1, 1, 1, 5),
    (4, 6.0, 8.5, 7.0, -10, 25, 22, 1, 1, 1, 30),
    (5, 0.0, 3.5, 0.7, 45, 65, 60, 1, 1, 1, 2),
    (6, 6.0, 8.5, 7.2, 20, 55, 42, 1, 1, 1, 250),
    (7, 4.5, 9.0, 7.0, -20, 40, 30, 1, 1, 1, 0.5);

INSERT INTO BioSource (SourceID, OrganismID, SourceURL) VALUES
    (1, 1, 'https://doi.org/10.1073/pnas.0712334105'),
    (2, 2, 'https://doi.org/10.1126/science.1086823'),
    (3, 3, 'https://doi.org/10.1128/MMBR.00015-10'),
    (4, 4, 'https://doi.org/10.1128/AEM.02101-05'),
    (5, 5, 'https://doi.org/10.1073/pnas.0401356101'),
    (6, 6, 'https://doi.org/10.1016/S0723-2020(11)80158-9'),
    (7, 7, 'https://doi.org/10.1371/journal.pone.0064793');

INSERT INTO Organism_ResearchProject (OrganismID, ProjectID) VALUES
    (1, 1),
    (2, 2),
    (3, 3),
    (4, 4),
    (5, 5),
    (6, 6),
    (7, 7);
`
