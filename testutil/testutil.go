// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/extremodb/cliparse"
	"github.com/danielhkuo/extremodb/db"
)

// TestAdminToken is the token accepted by handlers in tests
const TestAdminToken = "test-admin-token"

// SetupTestDB creates a fresh in-memory database with the full schema
// and all reporting views. The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := db.CreateSchema(database); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.CreateViews(database); err != nil {
		t.Fatalf("Failed to create views: %v", err)
	}

	return database
}

// SeedTestDB loads the reference dataset (organisms and projects 1-7)
func SeedTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := db.Seed(database); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4100,
		DatabaseType: "sqlite",
		DatabaseURL:  "file::memory:",
		AdminToken:   TestAdminToken,
	}
}

// CreateTestOrganism inserts an organism referencing the seeded taxonomy,
// ecosystem, and environment rows, with a matching conditions row, and
// returns its id. No project association is created.
func CreateTestOrganism(t *testing.T, database *db.DB, name string, taxonomyID, ecosystemID, environmentID int) int {
	t.Helper()

	var organismID int
	err := database.QueryRow(`
		INSERT INTO Organism (Name, TaxonomyID, EcosystemID, EnvironmentID, EnergySource, Metabolism, MetabolismDetail, OxygenRequirement, Note)
		VALUES ($1, $2, $3, $4, 'Heterotroph', 'Respiratory', '', 'Aerobic', '')
		RETURNING OrganismID
	`, name, taxonomyID, ecosystemID, environmentID).Scan(&organismID)
	if err != nil {
		t.Fatalf("Failed to create test organism: %v", err)
	}

	_, err = database.Exec(`
		INSERT INTO EnvironmentalCondition (OrganismID, MinpH, MaxpH, AvgOptpH, MinTemp, MaxTemp, AvgOptimumTemp, MinPressure, MaxPressure, AvgOptPressure, AvgOptSalinity)
		VALUES ($1, 6.0, 8.0, 7.0, 10, 40, 25, 1, 1, 1, 5)
	`, organismID)
	if err != nil {
		t.Fatalf("Failed to create test conditions: %v", err)
	}

	return organismID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AdminHeaders returns headers carrying the test admin token
func AdminHeaders() map[string]string {
	return map[string]string{"X-Admin-Token": TestAdminToken}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
