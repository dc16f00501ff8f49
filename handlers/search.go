// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/extremodb/cliparse"
	"github.com/danielhkuo/extremodb/db"
	"github.com/danielhkuo/extremodb/middleware"
	"github.com/danielhkuo/extremodb/models"
)

type SearchHandler struct {
	db  *db.DB
	cfg cliparse.Config
}

func NewSearchHandler(d *db.DB, cfg cliparse.Config) *SearchHandler {
	return &SearchHandler{db: d, cfg: cfg}
}

// Search handles GET /search?q=
// Substring search across organism names and project titles.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "q is required")
		return
	}
	pattern := "%" + term + "%"

	rows, err := h.db.Query(`
		SELECT 'Organism' AS Type, Name AS Result FROM Organism WHERE Name LIKE $1
		UNION
		SELECT 'Project' AS Type, Title AS Result FROM ProjectInfo WHERE Title LIKE $2
		ORDER BY Result
	`, pattern, pattern)
	if err != nil {
		slog.Error("failed to run search", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.SearchResult{}
	for rows.Next() {
		var res models.SearchResult
		if err := rows.Scan(&res.Type, &res.Result); err != nil {
			slog.Error("failed to scan search row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		slog.Error("search iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// Profile handles GET /organisms/{name}/profile
// Full denormalized organism profile, its tolerance ranges, citations, and
// associated projects with status.
func (h *SearchHandler) Profile(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	var p models.OrganismProfileRow
	err := h.db.QueryRow(`
		SELECT OrganismID, Name, Domain, Phylum, Class, OrderName, Family,
		       EcosystemName, LocationType, EnvironmentName, ClimateType, Flora, Fauna,
		       EnergySource, Metabolism, MetabolismDetail, OxygenRequirement, Note
		FROM Organism_Profile
		WHERE Name = $1
	`, name).Scan(
		&p.OrganismID, &p.Name, &p.Domain, &p.Phylum, &p.Class, &p.OrderName, &p.Family,
		&p.EcosystemName, &p.LocationType, &p.EnvironmentName, &p.ClimateType, &p.Flora, &p.Fauna,
		&p.EnergySource, &p.Metabolism, &p.MetabolismDetail, &p.OxygenRequirement, &p.Note,
	)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Organism not found")
		return
	}
	if err != nil {
		slog.Error("failed to query organism profile", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	response := models.OrganismProfileResponse{Profile: p}

	var cond models.EnvironmentalCondition
	err = h.db.QueryRow(`
		SELECT OrganismID, MinpH, MaxpH, AvgOptpH, MinTemp, MaxTemp, AvgOptimumTemp,
		       MinPressure, MaxPressure, AvgOptPressure, AvgOptSalinity
		FROM EnvironmentalCondition
		WHERE OrganismID = $1
	`, p.OrganismID).Scan(
		&cond.OrganismID, &cond.MinPH, &cond.MaxPH, &cond.AvgOptPH,
		&cond.MinTemp, &cond.MaxTemp, &cond.AvgOptimumTemp,
		&cond.MinPressure, &cond.MaxPressure, &cond.AvgOptPressure, &cond.AvgOptSalinity,
	)
	if err != nil && err != sql.ErrNoRows {
		slog.Error("failed to query conditions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if err == nil {
		response.Conditions = &cond
	}

	srcRows, err := h.db.Query(`
		SELECT SourceID, OrganismID, SourceURL
		FROM BioSource
		WHERE OrganismID = $1
		ORDER BY SourceID
	`, p.OrganismID)
	if err != nil {
		slog.Error("failed to query sources", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer srcRows.Close()

	sources := []models.BioSource{}
	for srcRows.Next() {
		var src models.BioSource
		if err := srcRows.Scan(&src.SourceID, &src.OrganismID, &src.SourceURL); err != nil {
			slog.Error("failed to scan source row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		sources = append(sources, src)
	}
	if err := srcRows.Err(); err != nil {
		slog.Error("sources iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	response.Sources = sources

	projRows, err := h.db.Query(`
		SELECT pi.Title, pi.Description, pi.StartDate, pi.EndDate, ps.Status
		FROM ProjectInfo pi
		JOIN Organism_ResearchProject orp ON pi.ProjectID = orp.ProjectID
		JOIN ProjectStatus ps ON pi.ProjectID = ps.ProjectID
		WHERE orp.OrganismID = $1
		ORDER BY pi.Title
	`, p.OrganismID)
	if err != nil {
		slog.Error("failed to query organism projects", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer projRows.Close()

	projects := []models.ProjectWithStatus{}
	for projRows.Next() {
		var proj models.ProjectWithStatus
		if err := projRows.Scan(&proj.Title, &proj.Description, &proj.StartDate, &proj.EndDate, &proj.Status); err != nil {
			slog.Error("failed to scan project row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		projects = append(projects, proj)
	}
	if err := projRows.Err(); err != nil {
		slog.Error("organism projects iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	response.Projects = projects

	middleware.JSONResponse(w, http.StatusOK, response)
}
