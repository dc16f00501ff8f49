// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "fmt"

// view pairs a reporting view name with its defining query. Names and
// column lists are a stable contract for external reporting tools; do not
// rename them.
type view struct {
	name string
	body string
}

// CreateViews creates the twelve reporting views. Safe to call multiple
// times: SQLite uses IF NOT EXISTS, Postgres uses OR REPLACE.
func CreateViews(d *DB) error {
	prefix := "CREATE VIEW IF NOT EXISTS"
	if d.kind == KindPostgres {
		prefix = "CREATE OR REPLACE VIEW"
	}
	for _, v := range viewDefs(d.kind) {
		stmt := fmt.Sprintf("%s %s AS %s", prefix, v.name, v.body)
		if _, err := d.DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create view %s: %w", v.name, err)
		}
	}
	return nil
}

// dayDiff is the one expression the engines disagree on: the number of
// whole days between two ISO date strings.
func dayDiff(k Kind, end, start string) string {
	if k == KindPostgres {
		return fmt.Sprintf("(%s::date - %s::date)", end, start)
	}
	return fmt.Sprintf("CAST(julianday(%s) - julianday(%s) AS INTEGER)", end, start)
}

func viewDefs(k Kind) []view {
	return []view{
		{
			// Organisms joined to their classification and habitat.
			name: "Student_Organism_Taxonomy_Ecosystem",
			body: `
SELECT DISTINCT o.OrganismID, o.Name, t.Domain, t.Phylum, t.Class, t.OrderName, t.Family,
       e.EcosystemName, e.LocationType
FROM Organism o
JOIN Taxonomy t ON o.TaxonomyID = t.TaxonomyID
JOIN Ecosystem e ON o.EcosystemID = e.EcosystemID`,
		},
		{
			// Ecosystems ranked by mean optimum temperature; ecosystems
			// with no recorded temperature drop out via the HAVING clause.
			name: "Student_Avg_Optimum_Temp_By_Ecosystem",
			body: `
SELECT e.EcosystemName, AVG(ec.AvgOptimumTemp) AS AverageOptimalTemp
FROM Ecosystem e
LEFT JOIN Organism o ON o.EcosystemID = e.EcosystemID
LEFT JOIN EnvironmentalCondition ec ON ec.OrganismID = o.OrganismID
GROUP BY e.EcosystemName
HAVING AVG(ec.AvgOptimumTemp) IS NOT NULL
ORDER BY AverageOptimalTemp DESC`,
		},
		{
			name: "Researcher_Extreme_Temperature_Organisms",
			body: `
SELECT o.Name, ec.MinTemp, ec.MaxTemp, ec.MaxTemp - ec.MinTemp AS TemperatureRange
FROM Organism o
JOIN EnvironmentalCondition ec ON ec.OrganismID = o.OrganismID
WHERE ec.MinTemp < 10 OR ec.MaxTemp > 100
ORDER BY TemperatureRange DESC`,
		},
		{
			name: "Researcher_Funding_Aquatic_Projects",
			body: `
SELECT DISTINCT pf.FundingSource, pi.Title
FROM ProjectFunding pf
JOIN ProjectInfo pi ON pf.ProjectID = pi.ProjectID
JOIN Organism_ResearchProject orp ON pi.ProjectID = orp.ProjectID
JOIN Organism o ON orp.OrganismID = o.OrganismID
JOIN Ecosystem e ON o.EcosystemID = e.EcosystemID
WHERE e.EcosystemName IN ('Aquatic', 'Marine', 'Freshwater')
ORDER BY pf.FundingSource`,
		},
		{
			name: "Researcher_Organisms_Projects_Domain_Ecosystem",
			body: `
SELECT t.Domain, e.EcosystemName,
       COUNT(DISTINCT o.OrganismID) AS OrganismCount,
       COUNT(DISTINCT orp.ProjectID) AS ProjectCount
FROM Organism o
JOIN Taxonomy t ON o.TaxonomyID = t.TaxonomyID
JOIN Ecosystem e ON o.EcosystemID = e.EcosystemID
JOIN Organism_ResearchProject orp ON o.OrganismID = orp.OrganismID
GROUP BY t.Domain, e.EcosystemName
HAVING COUNT(DISTINCT o.OrganismID) > 0
ORDER BY t.Domain, OrganismCount DESC`,
		},
		{
			// The WHERE on AvgOptimumTemp narrows the left-joined
			// condition row; the project side of the chain stays outer so
			// unassigned organisms still list with NULL project columns.
			name: "Researcher_Organism_Temperature_Project",
			body: `
SELECT o.Name, ec.AvgOptimumTemp, pi.Title, ps.Status
FROM Organism o
LEFT JOIN EnvironmentalCondition ec ON ec.OrganismID = o.OrganismID
LEFT JOIN Organism_ResearchProject orp ON o.OrganismID = orp.OrganismID
LEFT JOIN ProjectInfo pi ON orp.ProjectID = pi.ProjectID
LEFT JOIN ProjectStatus ps ON pi.ProjectID = ps.ProjectID
WHERE ec.AvgOptimumTemp > 50 AND o.Name LIKE 'M%'
ORDER BY ec.AvgOptimumTemp DESC`,
		},
		{
			name: "Admin_Projects_Status_OrganismCount",
			body: `
SELECT pi.Title, ps.Status, COUNT(orp.OrganismID) AS OrganismCount
FROM ProjectInfo pi
JOIN ProjectStatus ps ON pi.ProjectID = ps.ProjectID
LEFT JOIN Organism_ResearchProject orp ON pi.ProjectID = orp.ProjectID
GROUP BY pi.ProjectID, pi.Title, ps.Status
HAVING COUNT(orp.OrganismID) > 0`,
		},
		{
			// Taxonomy is inner-joined on purpose: Organism.TaxonomyID is
			// NOT NULL, so the join cannot drop rows.
			name: "Admin_Organisms_Without_Projects",
			body: `
SELECT o.OrganismID, o.Name, t.Domain, t.Phylum
FROM Organism o
LEFT JOIN Organism_ResearchProject orp ON o.OrganismID = orp.OrganismID
JOIN Taxonomy t ON o.TaxonomyID = t.TaxonomyID
WHERE orp.ProjectID IS NULL`,
		},
		{
			name: "Admin_Project_Duration_Organisms",
			body: `
WITH ProjectDurations AS (
    SELECT ProjectID, Title, ` + dayDiff(k, "EndDate", "StartDate") + ` AS DurationDays
    FROM ProjectInfo
)
SELECT pd.Title, pd.DurationDays, o.Name AS OrganismName, t.Domain
FROM ProjectDurations pd
JOIN Organism_ResearchProject orp ON pd.ProjectID = orp.ProjectID
JOIN Organism o ON orp.OrganismID = o.OrganismID
JOIN Taxonomy t ON o.TaxonomyID = t.TaxonomyID
ORDER BY pd.DurationDays DESC, o.Name`,
		},
		{
			name: "Admin_Temperature_Stats_By_Ecosystem",
			body: `
SELECT e.EcosystemName,
       COUNT(o.OrganismID) AS TotalOrganisms,
       AVG(ec.AvgOptimumTemp) AS AvgOptimalTemp,
       MAX(ec.MaxTemp) AS MaxTemp,
       MIN(ec.MinTemp) AS MinTemp
FROM Ecosystem e
JOIN Organism o ON o.EcosystemID = e.EcosystemID
JOIN EnvironmentalCondition ec ON ec.OrganismID = o.OrganismID
WHERE e.EcosystemName IN ('Aquatic', 'Marine', 'Freshwater', 'Hot Spring')
GROUP BY e.EcosystemName
ORDER BY TotalOrganisms DESC, AvgOptimalTemp DESC`,
		},
		{
			name: "Admin_High_Funded_Projects",
			body: `
WITH ProjectTotals AS (
    SELECT ProjectID, SUM(Amount) AS TotalFunding
    FROM ProjectFunding
    GROUP BY ProjectID
    HAVING SUM(Amount) > 2.00
)
SELECT pi.Title AS ProjectTitle, pt.TotalFunding, ps.Status AS ProjectStatus,
       o.Name AS OrganismName, t.Domain, e.EcosystemName
FROM ProjectTotals pt
JOIN ProjectInfo pi ON pt.ProjectID = pi.ProjectID
JOIN ProjectStatus ps ON pi.ProjectID = ps.ProjectID
LEFT JOIN Organism_ResearchProject orp ON pi.ProjectID = orp.ProjectID
LEFT JOIN Organism o ON orp.OrganismID = o.OrganismID
LEFT JOIN Taxonomy t ON o.TaxonomyID = t.TaxonomyID
LEFT JOIN Ecosystem e ON o.EcosystemID = e.EcosystemID
ORDER BY pt.TotalFunding DESC, pi.Title, o.Name`,
		},
		{
			name: "Organism_Profile",
			body: `
SELECT o.OrganismID, o.Name, t.Domain, t.Phylum, t.Class, t.OrderName, t.Family,
       e.EcosystemName, e.LocationType,
       env.EnvironmentName, env.ClimateType, env.Flora, env.Fauna,
       o.EnergySource, o.Metabolism, o.MetabolismDetail, o.OxygenRequirement, o.Note
FROM Organism o
JOIN Taxonomy t ON o.TaxonomyID = t.TaxonomyID
JOIN Ecosystem e ON o.EcosystemID = e.EcosystemID
JOIN Environment env ON o.EnvironmentID = env.EnvironmentID`,
		},
	}
}
