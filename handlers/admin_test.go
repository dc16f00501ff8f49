// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/extremodb/models"
	"github.com/danielhkuo/extremodb/testutil"
)

func TestAdminProjectStatus(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(database, cfg)

	req := testutil.MakeRequest("GET", "/admin/project-status", nil, nil)
	w := httptest.NewRecorder()
	handler.ProjectStatus(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var rows []models.ProjectStatusCountRow
	testutil.AssertJSON(t, w, &rows)

	if len(rows) != 7 {
		t.Fatalf("Expected 7 projects, got %d", len(rows))
	}
	for _, row := range rows {
		if row.OrganismCount != 1 {
			t.Errorf("Expected 1 organism for %s, got %d", row.Title, row.OrganismCount)
		}
	}
}

func TestAdminOrphanOrganisms(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(database, cfg)

	req := testutil.MakeRequest("GET", "/admin/orphan-organisms", nil, nil)
	w := httptest.NewRecorder()
	handler.OrphanOrganisms(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var rows []models.OrphanOrganismRow
	testutil.AssertJSON(t, w, &rows)
	if len(rows) != 0 {
		t.Errorf("Expected no orphans on seed data, got %d", len(rows))
	}

	// Add an organism with no project and ask again
	testutil.CreateTestOrganism(t, database, "Chloroflexus aurantiacus", 3, 5, 5)

	w = httptest.NewRecorder()
	handler.OrphanOrganisms(w, testutil.MakeRequest("GET", "/admin/orphan-organisms", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &rows)

	if len(rows) != 1 {
		t.Fatalf("Expected 1 orphan, got %d", len(rows))
	}
	if rows[0].Name != "Chloroflexus aurantiacus" {
		t.Errorf("Unexpected orphan %s", rows[0].Name)
	}
}

func TestAdminProjectDurations(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(database, cfg)

	req := testutil.MakeRequest("GET", "/admin/project-durations", nil, nil)
	w := httptest.NewRecorder()
	handler.ProjectDurations(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var rows []models.ProjectDurationRow
	testutil.AssertJSON(t, w, &rows)

	if len(rows) != 7 {
		t.Fatalf("Expected 7 rows, got %d", len(rows))
	}
	if rows[0].DurationDays != 1460 {
		t.Errorf("Expected longest project at 1460 days, got %d", rows[0].DurationDays)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].DurationDays > rows[i-1].DurationDays {
			t.Errorf("Expected descending durations, got %d after %d",
				rows[i].DurationDays, rows[i-1].DurationDays)
		}
	}
}

func TestAdminTempStats(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(database, cfg)

	req := testutil.MakeRequest("GET", "/admin/temp-stats", nil, nil)
	w := httptest.NewRecorder()
	handler.TempStats(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var rows []models.TemperatureStatsRow
	testutil.AssertJSON(t, w, &rows)

	if len(rows) != 4 {
		t.Fatalf("Expected 4 watched ecosystems, got %d", len(rows))
	}
	if rows[0].EcosystemName != "Marine" {
		t.Errorf("Expected Marine first, got %s", rows[0].EcosystemName)
	}
	for _, row := range rows {
		switch row.EcosystemName {
		case "Aquatic", "Marine", "Freshwater", "Hot Spring":
		default:
			t.Errorf("Unexpected ecosystem %s in temp stats", row.EcosystemName)
		}
		if row.MinTemp > row.MaxTemp {
			t.Errorf("Inverted temperature bounds for %s", row.EcosystemName)
		}
	}
}

func TestAdminHighFunded(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(database, cfg)

	req := testutil.MakeRequest("GET", "/admin/high-funded", nil, nil)
	w := httptest.NewRecorder()
	handler.HighFunded(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var rows []models.HighFundedProjectRow
	testutil.AssertJSON(t, w, &rows)

	if len(rows) != 3 {
		t.Fatalf("Expected 3 high-funded projects, got %d", len(rows))
	}
	if rows[0].ProjectTitle != "Hyperthermophile Methanogenesis Survey" {
		t.Errorf("Expected Hyperthermophile Methanogenesis Survey first, got %s", rows[0].ProjectTitle)
	}
	if !strings.HasPrefix(rows[0].FundingDisplay, "$3.3") || !strings.HasSuffix(rows[0].FundingDisplay, " million") {
		t.Errorf("Unexpected funding display %q", rows[0].FundingDisplay)
	}
	for _, row := range rows {
		if row.TotalFunding <= 2.00 {
			t.Errorf("Project %s total %v is not above the bar", row.ProjectTitle, row.TotalFunding)
		}
		if row.FundingDisplay == "" {
			t.Errorf("Missing funding display for %s", row.ProjectTitle)
		}
	}
}
