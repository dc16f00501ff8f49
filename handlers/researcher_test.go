// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/extremodb/models"
	"github.com/danielhkuo/extremodb/testutil"
)

func TestExtremeTemps(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewResearcherHandler(database, cfg)

	req := testutil.MakeRequest("GET", "/researcher/extreme-temps", nil, nil)
	w := httptest.NewRecorder()
	handler.ExtremeTemps(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var rows []models.ExtremeTemperatureRow
	testutil.AssertJSON(t, w, &rows)

	if len(rows) != 5 {
		t.Fatalf("Expected 5 extreme organisms, got %d", len(rows))
	}
	// The tardigrade has the widest tolerance band
	if rows[0].Name != "Ramazzottius varieornatus" {
		t.Errorf("Expected Ramazzottius varieornatus first, got %s", rows[0].Name)
	}
	for _, row := range rows {
		if row.MinTemp >= 10 && row.MaxTemp <= 100 {
			t.Errorf("Organism %s is not extreme (%v to %v)", row.Name, row.MinTemp, row.MaxTemp)
		}
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].TemperatureRange > rows[i-1].TemperatureRange {
			t.Errorf("Expected descending ranges, got %v after %v",
				rows[i].TemperatureRange, rows[i-1].TemperatureRange)
		}
	}
}

func TestAquaticFunding(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewResearcherHandler(database, cfg)

	req := testutil.MakeRequest("GET", "/researcher/aquatic-funding", nil, nil)
	w := httptest.NewRecorder()
	handler.AquaticFunding(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var rows []models.AquaticFundingRow
	testutil.AssertJSON(t, w, &rows)

	if len(rows) != 5 {
		t.Fatalf("Expected 5 funding pairs, got %d: %v", len(rows), rows)
	}
	if rows[0].FundingSource != "JAXA" {
		t.Errorf("Expected JAXA first (alphabetical), got %s", rows[0].FundingSource)
	}
	// Desert and saltern projects must not leak in
	for _, row := range rows {
		switch row.Title {
		case "Radiation Resistance Genomics", "Haloarchaeal Retinal Proteins",
			"Acidophile Enzyme Prospecting", "Permafrost Microbiome Monitoring":
			t.Errorf("Non-aquatic project %q in aquatic funding report", row.Title)
		}
	}
}

func TestDomainEcosystem(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewResearcherHandler(database, cfg)

	req := testutil.MakeRequest("GET", "/researcher/domain-ecosystem", nil, nil)
	w := httptest.NewRecorder()
	handler.DomainEcosystem(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var rows []models.DomainEcosystemCountRow
	testutil.AssertJSON(t, w, &rows)

	if len(rows) != 7 {
		t.Fatalf("Expected 7 groups, got %d", len(rows))
	}
	for _, row := range rows {
		if row.OrganismCount != 1 || row.ProjectCount != 1 {
			t.Errorf("Expected 1/1 counts for %s/%s, got %d/%d",
				row.Domain, row.EcosystemName, row.OrganismCount, row.ProjectCount)
		}
	}
}

func TestTempProjects(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewResearcherHandler(database, cfg)

	req := testutil.MakeRequest("GET", "/researcher/temp-projects", nil, nil)
	w := httptest.NewRecorder()
	handler.TempProjects(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var rows []models.OrganismTempProjectRow
	testutil.AssertJSON(t, w, &rows)

	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Name != "Methanopyrus kandleri 116" {
		t.Errorf("Expected Methanopyrus kandleri 116, got %s", row.Name)
	}
	if row.Title == nil || *row.Title != "Hyperthermophile Methanogenesis Survey" {
		t.Errorf("Unexpected title: %v", row.Title)
	}
	if row.Status == nil || *row.Status != "Completed" {
		t.Errorf("Unexpected status: %v", row.Status)
	}
}
