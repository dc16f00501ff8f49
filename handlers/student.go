// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/extremodb/cliparse"
	"github.com/danielhkuo/extremodb/db"
	"github.com/danielhkuo/extremodb/middleware"
	"github.com/danielhkuo/extremodb/models"
)

type StudentHandler struct {
	db  *db.DB
	cfg cliparse.Config
}

func NewStudentHandler(d *db.DB, cfg cliparse.Config) *StudentHandler {
	return &StudentHandler{db: d, cfg: cfg}
}

// ListOrganisms handles GET /student/organisms
// Optional repeatable ?domain= parameter filters by taxonomic domain.
func (h *StudentHandler) ListOrganisms(w http.ResponseWriter, r *http.Request) {
	domains := r.URL.Query()["domain"]
	for _, d := range domains {
		if !models.ValidDomain(d) {
			middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid domain %q", d))
			return
		}
	}

	query := `
		SELECT OrganismID, Name, Domain, Phylum, Class, OrderName, Family, EcosystemName, LocationType
		FROM Student_Organism_Taxonomy_Ecosystem
	`
	args := []any{}
	if len(domains) > 0 {
		placeholders := make([]string, len(domains))
		for i, d := range domains {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
			args = append(args, d)
		}
		query += " WHERE Domain IN (" + strings.Join(placeholders, ", ") + ")"
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		slog.Error("failed to query organism listing", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.OrganismTaxonomyEcosystemRow{}
	for rows.Next() {
		var row models.OrganismTaxonomyEcosystemRow
		if err := rows.Scan(
			&row.OrganismID, &row.Name, &row.Domain, &row.Phylum, &row.Class,
			&row.OrderName, &row.Family, &row.EcosystemName, &row.LocationType,
		); err != nil {
			slog.Error("failed to scan organism listing row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("organism listing iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// AvgTemps handles GET /student/avg-temps
// Average optimum temperature per ecosystem, descending.
func (h *StudentHandler) AvgTemps(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT EcosystemName, AverageOptimalTemp
		FROM Student_Avg_Optimum_Temp_By_Ecosystem
	`)
	if err != nil {
		slog.Error("failed to query avg temps", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.EcosystemAvgTempRow{}
	for rows.Next() {
		var row models.EcosystemAvgTempRow
		if err := rows.Scan(&row.EcosystemName, &row.AverageOptimalTemp); err != nil {
			slog.Error("failed to scan avg temp row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("avg temps iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
