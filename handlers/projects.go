// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/extremodb/auth"
	"github.com/danielhkuo/extremodb/cliparse"
	"github.com/danielhkuo/extremodb/db"
	"github.com/danielhkuo/extremodb/middleware"
	"github.com/danielhkuo/extremodb/models"
)

type ProjectHandler struct {
	db  *db.DB
	cfg cliparse.Config
}

func NewProjectHandler(d *db.DB, cfg cliparse.Config) *ProjectHandler {
	return &ProjectHandler{db: d, cfg: cfg}
}

// CreateProject handles POST /projects
// Inserts the project and its status row in one transaction. Status
// defaults to Ongoing when omitted.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	var req models.CreateProjectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}
	if !end.After(start) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "end_date must be after start_date")
		return
	}
	status := req.Status
	if status == "" {
		status = models.StatusOngoing
	}
	if !models.ValidStatus(status) {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid status %q", status))
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	var projectID int
	err = tx.QueryRow(`
		INSERT INTO ProjectInfo (Title, Description, StartDate, EndDate)
		VALUES ($1, $2, $3, $4)
		RETURNING ProjectID
	`, req.Title, req.Description, req.StartDate, req.EndDate).Scan(&projectID)

	if err != nil {
		if db.IsCheckViolation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "end_date must be after start_date")
			return
		}
		slog.Error("failed to insert project", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	if _, err := tx.Exec(`
		INSERT INTO ProjectStatus (ProjectID, Status)
		VALUES ($1, $2)
	`, projectID, status); err != nil {
		slog.Error("failed to insert project status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit project", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	slog.Info("project created", "project_id", projectID, "title", req.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateProjectResponse{
		ProjectID: projectID,
		Status:    status,
	})
}

// AddFunding handles POST /projects/{id}/funding
// One row per (project, source); repeat sources are rejected rather than
// summed.
func (h *ProjectHandler) AddFunding(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req models.AddFundingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.FundingSource == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "funding_source is required")
		return
	}
	if req.Amount < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "amount must be non-negative")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO ProjectFunding (ProjectID, FundingSource, Amount)
		VALUES ($1, $2, $3)
	`, id, req.FundingSource, req.Amount)

	if err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "funding source already recorded for this project")
			return
		}
		if db.IsForeignKeyViolation(err) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Project not found")
			return
		}
		if db.IsCheckViolation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "amount must be non-negative")
			return
		}
		slog.Error("failed to insert funding", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add funding")
		return
	}

	slog.Info("funding added", "project_id", id, "funding_source", req.FundingSource, "amount", req.Amount)

	middleware.JSONResponse(w, http.StatusCreated, models.ProjectFunding{
		ProjectID:     id,
		FundingSource: req.FundingSource,
		Amount:        req.Amount,
	})
}

// DeleteTaxonomy handles DELETE /taxonomy/{id}
// Removing a taxonomy record cascades through every organism classified
// under it, along with their conditions, citations, and project links.
func (h *ProjectHandler) DeleteTaxonomy(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid taxonomy id")
		return
	}

	res, err := h.db.Exec("DELETE FROM Taxonomy WHERE TaxonomyID = $1", id)
	if err != nil {
		slog.Error("failed to delete taxonomy", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete taxonomy")
		return
	}
	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete taxonomy")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Taxonomy not found")
		return
	}

	slog.Info("taxonomy deleted", "taxonomy_id", id)
	w.WriteHeader(http.StatusNoContent)
}
