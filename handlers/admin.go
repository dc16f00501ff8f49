// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/extremodb/cliparse"
	"github.com/danielhkuo/extremodb/db"
	"github.com/danielhkuo/extremodb/middleware"
	"github.com/danielhkuo/extremodb/models"
)

type AdminHandler struct {
	db  *db.DB
	cfg cliparse.Config
}

func NewAdminHandler(d *db.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: d, cfg: cfg}
}

// ProjectStatus handles GET /admin/project-status
// Projects with their status and associated organism counts.
func (h *AdminHandler) ProjectStatus(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT Title, Status, OrganismCount
		FROM Admin_Projects_Status_OrganismCount
	`)
	if err != nil {
		slog.Error("failed to query project status counts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.ProjectStatusCountRow{}
	for rows.Next() {
		var row models.ProjectStatusCountRow
		if err := rows.Scan(&row.Title, &row.Status, &row.OrganismCount); err != nil {
			slog.Error("failed to scan project status row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("project status iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// OrphanOrganisms handles GET /admin/orphan-organisms
// Organisms with no project association.
func (h *AdminHandler) OrphanOrganisms(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT OrganismID, Name, Domain, Phylum
		FROM Admin_Organisms_Without_Projects
	`)
	if err != nil {
		slog.Error("failed to query orphan organisms", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.OrphanOrganismRow{}
	for rows.Next() {
		var row models.OrphanOrganismRow
		if err := rows.Scan(&row.OrganismID, &row.Name, &row.Domain, &row.Phylum); err != nil {
			slog.Error("failed to scan orphan organism row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("orphan organisms iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// ProjectDurations handles GET /admin/project-durations
// Day-level project durations with the organisms under study.
func (h *AdminHandler) ProjectDurations(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT Title, DurationDays, OrganismName, Domain
		FROM Admin_Project_Duration_Organisms
	`)
	if err != nil {
		slog.Error("failed to query project durations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.ProjectDurationRow{}
	for rows.Next() {
		var row models.ProjectDurationRow
		if err := rows.Scan(&row.Title, &row.DurationDays, &row.OrganismName, &row.Domain); err != nil {
			slog.Error("failed to scan project duration row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("project durations iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// TempStats handles GET /admin/temp-stats
// Temperature statistics for the fixed ecosystem set.
func (h *AdminHandler) TempStats(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT EcosystemName, TotalOrganisms, AvgOptimalTemp, MaxTemp, MinTemp
		FROM Admin_Temperature_Stats_By_Ecosystem
	`)
	if err != nil {
		slog.Error("failed to query temperature stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.TemperatureStatsRow{}
	for rows.Next() {
		var row models.TemperatureStatsRow
		if err := rows.Scan(&row.EcosystemName, &row.TotalOrganisms, &row.AvgOptimalTemp, &row.MaxTemp, &row.MinTemp); err != nil {
			slog.Error("failed to scan temperature stats row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("temperature stats iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// HighFunded handles GET /admin/high-funded
// Projects whose summed funding exceeds $2.00 million, with their
// organisms. FundingDisplay is a formatted convenience column for
// dashboards.
func (h *AdminHandler) HighFunded(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT ProjectTitle, TotalFunding, ProjectStatus, OrganismName, Domain, EcosystemName
		FROM Admin_High_Funded_Projects
	`)
	if err != nil {
		slog.Error("failed to query high-funded projects", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.HighFundedProjectRow{}
	for rows.Next() {
		var row models.HighFundedProjectRow
		if err := rows.Scan(
			&row.ProjectTitle, &row.TotalFunding, &row.ProjectStatus,
			&row.OrganismName, &row.Domain, &row.EcosystemName,
		); err != nil {
			slog.Error("failed to scan high-funded row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		row.FundingDisplay = "$" + humanize.CommafWithDigits(row.TotalFunding, 2) + " million"
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("high-funded iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
