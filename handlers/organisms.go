// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/extremodb/auth"
	"github.com/danielhkuo/extremodb/cliparse"
	"github.com/danielhkuo/extremodb/db"
	"github.com/danielhkuo/extremodb/middleware"
	"github.com/danielhkuo/extremodb/models"
)

type OrganismHandler struct {
	db  *db.DB
	cfg cliparse.Config
}

func NewOrganismHandler(d *db.DB, cfg cliparse.Config) *OrganismHandler {
	return &OrganismHandler{db: d, cfg: cfg}
}

// validateConditions checks tolerance ranges at the boundary before any
// statement runs; the schema CHECK constraints enforce the same rules a
// second time at write time.
func validateConditions(c models.ConditionInput) error {
	if c.MinPH < 0 || c.MaxPH > 14 {
		return fmt.Errorf("pH bounds must lie in [0, 14]")
	}
	if c.MinPH > c.MaxPH {
		return fmt.Errorf("min_ph must not exceed max_ph")
	}
	if c.MinTemp < models.AbsoluteZeroC {
		return fmt.Errorf("min_temp below absolute zero")
	}
	if c.MinTemp > c.MaxTemp {
		return fmt.Errorf("min_temp must not exceed max_temp")
	}
	if c.AvgOptSalinity < 0 {
		return fmt.Errorf("avg_opt_salinity must be non-negative")
	}
	minP, maxP := 1.0, 1.0
	if c.MinPressure != nil {
		minP = *c.MinPressure
	}
	if c.MaxPressure != nil {
		maxP = *c.MaxPressure
	}
	if minP < 0 || maxP < 0 || (c.AvgOptPressure != nil && *c.AvgOptPressure < 0) {
		return fmt.Errorf("pressure fields must be non-negative")
	}
	if minP > maxP {
		return fmt.Errorf("min_pressure must not exceed max_pressure")
	}
	return nil
}

// CreateOrganism handles POST /organisms
// Inserts the organism, its environmental conditions, and any citation
// URLs in one transaction; a constraint violation rolls everything back.
func (h *OrganismHandler) CreateOrganism(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	var req models.CreateOrganismRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.TaxonomyID <= 0 || req.EcosystemID <= 0 || req.EnvironmentID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "taxonomy_id, ecosystem_id, and environment_id are required")
		return
	}
	if !models.ValidEnergySource(req.EnergySource) {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid energy_source %q", req.EnergySource))
		return
	}
	if !models.ValidMetabolism(req.Metabolism) {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid metabolism %q", req.Metabolism))
		return
	}
	if !models.ValidOxygenRequirement(req.OxygenRequirement) {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid oxygen_requirement %q", req.OxygenRequirement))
		return
	}
	if err := validateConditions(req.Conditions); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	var organismID int
	err = tx.QueryRow(`
		INSERT INTO Organism (Name, TaxonomyID, EcosystemID, EnvironmentID, EnergySource, Metabolism, MetabolismDetail, OxygenRequirement, Note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING OrganismID
	`, req.Name, req.TaxonomyID, req.EcosystemID, req.EnvironmentID,
		req.EnergySource, req.Metabolism, req.MetabolismDetail, req.OxygenRequirement, req.Note,
	).Scan(&organismID)

	if err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "organism name already exists")
			return
		}
		if db.IsForeignKeyViolation(err) {
			middleware.ErrorResponse(w, http.StatusNotFound, "referenced taxonomy, ecosystem, or environment does not exist")
			return
		}
		if db.IsCheckViolation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "organism violates a schema constraint")
			return
		}
		slog.Error("failed to insert organism", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create organism")
		return
	}

	c := req.Conditions
	minP, maxP, optP := 1.0, 1.0, 1.0
	if c.MinPressure != nil {
		minP = *c.MinPressure
	}
	if c.MaxPressure != nil {
		maxP = *c.MaxPressure
	}
	if c.AvgOptPressure != nil {
		optP = *c.AvgOptPressure
	}

	_, err = tx.Exec(`
		INSERT INTO EnvironmentalCondition (OrganismID, MinpH, MaxpH, AvgOptpH, MinTemp, MaxTemp, AvgOptimumTemp, MinPressure, MaxPressure, AvgOptPressure, AvgOptSalinity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, organismID, c.MinPH, c.MaxPH, c.AvgOptPH, c.MinTemp, c.MaxTemp, c.AvgOptimumTemp,
		minP, maxP, optP, c.AvgOptSalinity)

	if err != nil {
		if db.IsCheckViolation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "conditions violate a schema constraint")
			return
		}
		slog.Error("failed to insert conditions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create organism")
		return
	}

	for _, url := range req.SourceURLs {
		if _, err := tx.Exec(`
			INSERT INTO BioSource (OrganismID, SourceURL)
			VALUES ($1, $2)
		`, organismID, url); err != nil {
			if db.IsUniqueViolation(err) {
				middleware.ErrorResponse(w, http.StatusConflict, fmt.Sprintf("duplicate citation URL %q", url))
				return
			}
			slog.Error("failed to insert citation", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create organism")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit organism", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create organism")
		return
	}

	slog.Info("organism created", "organism_id", organismID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateOrganismResponse{
		OrganismID: organismID,
	})
}

// DeleteOrganism handles DELETE /organisms/{id}
// Cascades to conditions, citations, and project associations.
func (h *OrganismHandler) DeleteOrganism(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid organism id")
		return
	}

	res, err := h.db.Exec("DELETE FROM Organism WHERE OrganismID = $1", id)
	if err != nil {
		slog.Error("failed to delete organism", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete organism")
		return
	}
	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete organism")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Organism not found")
		return
	}

	slog.Info("organism deleted", "organism_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// AddSource handles POST /organisms/{id}/sources
func (h *OrganismHandler) AddSource(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid organism id")
		return
	}

	var req models.AddSourceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.SourceURL == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "source_url is required")
		return
	}

	var sourceID int
	err = h.db.QueryRow(`
		INSERT INTO BioSource (OrganismID, SourceURL)
		VALUES ($1, $2)
		RETURNING SourceID
	`, id, req.SourceURL).Scan(&sourceID)

	if err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "citation already recorded for this organism")
			return
		}
		if db.IsForeignKeyViolation(err) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Organism not found")
			return
		}
		slog.Error("failed to insert citation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add citation")
		return
	}

	slog.Info("citation added", "organism_id", id, "source_id", sourceID)

	middleware.JSONResponse(w, http.StatusCreated, models.BioSource{
		SourceID:   sourceID,
		OrganismID: id,
		SourceURL:  req.SourceURL,
	})
}

// LinkProject handles POST /organisms/{id}/projects
func (h *OrganismHandler) LinkProject(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid organism id")
		return
	}

	var req models.LinkProjectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ProjectID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "project_id is required")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO Organism_ResearchProject (OrganismID, ProjectID)
		VALUES ($1, $2)
	`, id, req.ProjectID)

	if err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "organism already associated with this project")
			return
		}
		if db.IsForeignKeyViolation(err) {
			middleware.ErrorResponse(w, http.StatusNotFound, "organism or project does not exist")
			return
		}
		slog.Error("failed to link project", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to link project")
		return
	}

	slog.Info("organism linked to project", "organism_id", id, "project_id", req.ProjectID)
	w.WriteHeader(http.StatusCreated)
}
