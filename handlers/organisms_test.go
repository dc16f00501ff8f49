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

func validOrganismRequest() models.CreateOrganismRequest {
	return models.CreateOrganismRequest{
		Name:              "Thermus aquaticus",
		TaxonomyID:        3,
		EcosystemID:       5,
		EnvironmentID:     5,
		EnergySource:      "Heterotroph",
		Metabolism:        "Respiratory",
		OxygenRequirement: "Aerobic",
		Conditions: models.ConditionInput{
			MinPH:          6.0,
			MaxPH:          9.5,
			MinTemp:        40,
			MaxTemp:        80,
			AvgOptSalinity: 1,
		},
		SourceURLs: []string{"https://doi.org/10.1099/00207713-21-1-75"},
	}
}

func TestCreateOrganism(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewOrganismHandler(database, cfg)

	badPH := validOrganismRequest()
	badPH.Name = "Bad pH organism"
	badPH.Conditions.MaxPH = 15

	reversedTemps := validOrganismRequest()
	reversedTemps.Name = "Reversed temps organism"
	reversedTemps.Conditions.MinTemp = 90
	reversedTemps.Conditions.MaxTemp = 20

	badEnum := validOrganismRequest()
	badEnum.Name = "Bad enum organism"
	badEnum.EnergySource = "Phototroph"

	badFK := validOrganismRequest()
	badFK.Name = "Bad taxonomy organism"
	badFK.TaxonomyID = 999

	duplicate := validOrganismRequest()
	duplicate.Name = "Methanopyrus kandleri 116"

	tests := []struct {
		name           string
		token          string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "valid organism",
			token:          testutil.TestAdminToken,
			requestBody:    validOrganismRequest(),
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing admin token",
			token:          "",
			requestBody:    validOrganismRequest(),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong admin token",
			token:          "wrong-token",
			requestBody:    validOrganismRequest(),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:  "missing name",
			token: testutil.TestAdminToken,
			requestBody: func() models.CreateOrganismRequest {
				r := validOrganismRequest()
				r.Name = ""
				return r
			}(),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			token:          testutil.TestAdminToken,
			requestBody:    "{not json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "pH above 14",
			token:          testutil.TestAdminToken,
			requestBody:    badPH,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "min temp above max temp",
			token:          testutil.TestAdminToken,
			requestBody:    reversedTemps,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid energy source",
			token:          testutil.TestAdminToken,
			requestBody:    badEnum,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing taxonomy",
			token:          testutil.TestAdminToken,
			requestBody:    badFK,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "duplicate name",
			token:          testutil.TestAdminToken,
			requestBody:    duplicate,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.token != "" {
				headers["X-Admin-Token"] = tt.token
			}
			var req *http.Request
			if str, ok := tt.requestBody.(string); ok {
				req = httptest.NewRequest("POST", "/organisms", strings.NewReader(str))
				for k, v := range headers {
					req.Header.Set(k, v)
				}
			} else {
				req = testutil.MakeRequest("POST", "/organisms", tt.requestBody, headers)
			}
			w := httptest.NewRecorder()

			handler.CreateOrganism(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.CreateOrganismResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.OrganismID == 0 {
					t.Error("Expected non-zero organism_id")
				}

				// The organism, its conditions, and its citation landed
				var name string
				if err := database.QueryRow("SELECT Name FROM Organism WHERE OrganismID = $1", resp.OrganismID).Scan(&name); err != nil {
					t.Fatalf("Failed to query organism: %v", err)
				}
				if name != "Thermus aquaticus" {
					t.Errorf("Expected name 'Thermus aquaticus', got %q", name)
				}
				var conditions, sources int
				if err := database.QueryRow("SELECT COUNT(*) FROM EnvironmentalCondition WHERE OrganismID = $1", resp.OrganismID).Scan(&conditions); err != nil {
					t.Fatalf("Failed to count conditions: %v", err)
				}
				if err := database.QueryRow("SELECT COUNT(*) FROM BioSource WHERE OrganismID = $1", resp.OrganismID).Scan(&sources); err != nil {
					t.Fatalf("Failed to count sources: %v", err)
				}
				if conditions != 1 || sources != 1 {
					t.Errorf("Expected 1 condition and 1 source, got %d/%d", conditions, sources)
				}
			}
		})
	}
}

func TestCreateOrganismRollsBackOnDuplicateCitation(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewOrganismHandler(database, cfg)

	// Same URL twice in one request trips the unique constraint on the
	// second insert; the whole transaction must roll back.
	req := validOrganismRequest()
	req.SourceURLs = []string{"https://doi.org/10.1000/dup", "https://doi.org/10.1000/dup"}

	httpReq := testutil.MakeRequest("POST", "/organisms", req, testutil.AdminHeaders())
	w := httptest.NewRecorder()
	handler.CreateOrganism(w, httpReq)

	testutil.AssertStatus(t, w, http.StatusConflict)

	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM Organism WHERE Name = $1", req.Name).Scan(&count); err != nil {
		t.Fatalf("Failed to count organisms: %v", err)
	}
	if count != 0 {
		t.Error("Expected organism insert to roll back")
	}
}

func TestCreateOrganismPressureDefaults(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewOrganismHandler(database, cfg)

	body := validOrganismRequest()
	httpReq := testutil.MakeRequest("POST", "/organisms", body, testutil.AdminHeaders())
	w := httptest.NewRecorder()
	handler.CreateOrganism(w, httpReq)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateOrganismResponse
	testutil.AssertJSON(t, w, &resp)

	var minP, maxP, optP float64
	err := database.QueryRow(`
		SELECT MinPressure, MaxPressure, AvgOptPressure FROM EnvironmentalCondition WHERE OrganismID = $1
	`, resp.OrganismID).Scan(&minP, &maxP, &optP)
	if err != nil {
		t.Fatalf("Failed to read conditions: %v", err)
	}
	if minP != 1.0 || maxP != 1.0 || optP != 1.0 {
		t.Errorf("Expected pressure defaults of 1.0, got %v/%v/%v", minP, maxP, optP)
	}
}

func TestDeleteOrganism(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewOrganismHandler(database, cfg)

	t.Run("missing admin token", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/organisms/1", nil, nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		handler.DeleteOrganism(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/organisms/abc", nil, testutil.AdminHeaders())
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()
		handler.DeleteOrganism(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("missing organism", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/organisms/999", nil, testutil.AdminHeaders())
		req.SetPathValue("id", "999")
		w := httptest.NewRecorder()
		handler.DeleteOrganism(w, req)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("valid delete cascades", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/organisms/2", nil, testutil.AdminHeaders())
		req.SetPathValue("id", "2")
		w := httptest.NewRecorder()
		handler.DeleteOrganism(w, req)
		testutil.AssertStatus(t, w, http.StatusNoContent)

		var conditions, sources, links int
		if err := database.QueryRow("SELECT COUNT(*) FROM EnvironmentalCondition WHERE OrganismID = 2").Scan(&conditions); err != nil {
			t.Fatalf("Failed to count conditions: %v", err)
		}
		if err := database.QueryRow("SELECT COUNT(*) FROM BioSource WHERE OrganismID = 2").Scan(&sources); err != nil {
			t.Fatalf("Failed to count sources: %v", err)
		}
		if err := database.QueryRow("SELECT COUNT(*) FROM Organism_ResearchProject WHERE OrganismID = 2").Scan(&links); err != nil {
			t.Fatalf("Failed to count links: %v", err)
		}
		if conditions != 0 || sources != 0 || links != 0 {
			t.Errorf("Expected cascade to clear dependents, got %d/%d/%d", conditions, sources, links)
		}
	})
}

func TestAddSource(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewOrganismHandler(database, cfg)

	tests := []struct {
		name           string
		organismID     string
		token          string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "valid citation",
			organismID:     "1",
			token:          testutil.TestAdminToken,
			body:           models.AddSourceRequest{SourceURL: "https://doi.org/10.1038/newpaper"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing token",
			organismID:     "1",
			token:          "",
			body:           models.AddSourceRequest{SourceURL: "https://doi.org/10.1038/x"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty URL",
			organismID:     "1",
			token:          testutil.TestAdminToken,
			body:           models.AddSourceRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate citation",
			organismID:     "1",
			token:          testutil.TestAdminToken,
			body:           models.AddSourceRequest{SourceURL: "https://doi.org/10.1073/pnas.0712334105"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing organism",
			organismID:     "999",
			token:          testutil.TestAdminToken,
			body:           models.AddSourceRequest{SourceURL: "https://doi.org/10.1038/y"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.token != "" {
				headers["X-Admin-Token"] = tt.token
			}
			req := testutil.MakeRequest("POST", "/organisms/"+tt.organismID+"/sources", tt.body, headers)
			req.SetPathValue("id", tt.organismID)
			w := httptest.NewRecorder()

			handler.AddSource(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.BioSource
				testutil.AssertJSON(t, w, &resp)
				if resp.SourceID == 0 {
					t.Error("Expected non-zero source_id")
				}
			}
		})
	}
}

func TestLinkProject(t *testing.T) {
	database := testutil.SetupTestDB(t)
	testutil.SeedTestDB(t, database)

	cfg := testutil.GetTestConfig()
	handler := NewOrganismHandler(database, cfg)

	tests := []struct {
		name           string
		organismID     string
		token          string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "valid link",
			organismID:     "1",
			token:          testutil.TestAdminToken,
			body:           models.LinkProjectRequest{ProjectID: 3},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing token",
			organismID:     "1",
			token:          "",
			body:           models.LinkProjectRequest{ProjectID: 3},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing project id",
			organismID:     "1",
			token:          testutil.TestAdminToken,
			body:           models.LinkProjectRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate association",
			organismID:     "1",
			token:          testutil.TestAdminToken,
			body:           models.LinkProjectRequest{ProjectID: 1},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing project",
			organismID:     "1",
			token:          testutil.TestAdminToken,
			body:           models.LinkProjectRequest{ProjectID: 999},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.token != "" {
				headers["X-Admin-Token"] = tt.token
			}
			req := testutil.MakeRequest("POST", "/organisms/"+tt.organismID+"/projects", tt.body, headers)
			req.SetPathValue("id", tt.organismID)
			w := httptest.NewRecorder()

			handler.LinkProject(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	// The valid link is visible to reporting
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM Organism_ResearchProject WHERE OrganismID = 1 AND ProjectID = 3").Scan(&count); err != nil {
		t.Fatalf("Failed to count links: %v", err)
	}
	if count != 1 {
		t.Error("Expected link to be persisted")
	}
}
