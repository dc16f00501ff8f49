// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/extremodb/cliparse"
	"github.com/danielhkuo/extremodb/db"
	"github.com/danielhkuo/extremodb/middleware"
	"github.com/danielhkuo/extremodb/models"
)

type ResearcherHandler struct {
	db  *db.DB
	cfg cliparse.Config
}

func NewResearcherHandler(d *db.DB, cfg cliparse.Config) *ResearcherHandler {
	return &ResearcherHandler{db: d, cfg: cfg}
}

// ExtremeTemps handles GET /researcher/extreme-temps
// Organisms tolerating below 10 C or above 100 C, widest range first.
func (h *ResearcherHandler) ExtremeTemps(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT Name, MinTemp, MaxTemp, TemperatureRange
		FROM Researcher_Extreme_Temperature_Organisms
	`)
	if err != nil {
		slog.Error("failed to query extreme temps", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.ExtremeTemperatureRow{}
	for rows.Next() {
		var row models.ExtremeTemperatureRow
		if err := rows.Scan(&row.Name, &row.MinTemp, &row.MaxTemp, &row.TemperatureRange); err != nil {
			slog.Error("failed to scan extreme temp row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("extreme temps iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// AquaticFunding handles GET /researcher/aquatic-funding
// Distinct (funding source, project title) pairs for projects studying
// organisms from aquatic-family ecosystems.
func (h *ResearcherHandler) AquaticFunding(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT FundingSource, Title
		FROM Researcher_Funding_Aquatic_Projects
	`)
	if err != nil {
		slog.Error("failed to query aquatic funding", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.AquaticFundingRow{}
	for rows.Next() {
		var row models.AquaticFundingRow
		if err := rows.Scan(&row.FundingSource, &row.Title); err != nil {
			slog.Error("failed to scan aquatic funding row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("aquatic funding iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// DomainEcosystem handles GET /researcher/domain-ecosystem
// Organism and project counts grouped by (domain, ecosystem).
func (h *ResearcherHandler) DomainEcosystem(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT Domain, EcosystemName, OrganismCount, ProjectCount
		FROM Researcher_Organisms_Projects_Domain_Ecosystem
	`)
	if err != nil {
		slog.Error("failed to query domain/ecosystem counts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.DomainEcosystemCountRow{}
	for rows.Next() {
		var row models.DomainEcosystemCountRow
		if err := rows.Scan(&row.Domain, &row.EcosystemName, &row.OrganismCount, &row.ProjectCount); err != nil {
			slog.Error("failed to scan domain/ecosystem row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("domain/ecosystem iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// TempProjects handles GET /researcher/temp-projects
// High-temperature organisms whose name starts with M, with their project
// and status where one exists.
func (h *ResearcherHandler) TempProjects(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT Name, AvgOptimumTemp, Title, Status
		FROM Researcher_Organism_Temperature_Project
	`)
	if err != nil {
		slog.Error("failed to query temp projects", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.OrganismTempProjectRow{}
	for rows.Next() {
		var row models.OrganismTempProjectRow
		if err := rows.Scan(&row.Name, &row.AvgOptimumTemp, &row.Title, &row.Status); err != nil {
			slog.Error("failed to scan temp project row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("temp projects iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
