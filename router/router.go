// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/extremodb/cliparse"
	"github.com/danielhkuo/extremodb/db"
	"github.com/danielhkuo/extremodb/handlers"
	"github.com/danielhkuo/extremodb/middleware"
)

func NewRouter(database *db.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	studentHandler := handlers.NewStudentHandler(database, cfg)
	researcherHandler := handlers.NewResearcherHandler(database, cfg)
	adminHandler := handlers.NewAdminHandler(database, cfg)
	organismHandler := handlers.NewOrganismHandler(database, cfg)
	projectHandler := handlers.NewProjectHandler(database, cfg)
	searchHandler := handlers.NewSearchHandler(database, cfg)

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Student reporting (public)
	mux.HandleFunc("GET /student/organisms", wrap(studentHandler.ListOrganisms))
	mux.HandleFunc("GET /student/avg-temps", wrap(studentHandler.AvgTemps))

	// Researcher reporting (public)
	mux.HandleFunc("GET /researcher/extreme-temps", wrap(researcherHandler.ExtremeTemps))
	mux.HandleFunc("GET /researcher/aquatic-funding", wrap(researcherHandler.AquaticFunding))
	mux.HandleFunc("GET /researcher/domain-ecosystem", wrap(researcherHandler.DomainEcosystem))
	mux.HandleFunc("GET /researcher/temp-projects", wrap(researcherHandler.TempProjects))

	// Admin reporting (public reads; writes below require the token)
	mux.HandleFunc("GET /admin/project-status", wrap(adminHandler.ProjectStatus))
	mux.HandleFunc("GET /admin/orphan-organisms", wrap(adminHandler.OrphanOrganisms))
	mux.HandleFunc("GET /admin/project-durations", wrap(adminHandler.ProjectDurations))
	mux.HandleFunc("GET /admin/temp-stats", wrap(adminHandler.TempStats))
	mux.HandleFunc("GET /admin/high-funded", wrap(adminHandler.HighFunded))

	// Search and profiles
	mux.HandleFunc("GET /search", wrap(searchHandler.Search))
	mux.HandleFunc("GET /organisms/{name}/profile", wrap(searchHandler.Profile))

	// Curation (requires X-Admin-Token)
	mux.HandleFunc("POST /organisms", wrap(organismHandler.CreateOrganism))
	mux.HandleFunc("DELETE /organisms/{id}", wrap(organismHandler.DeleteOrganism))
	mux.HandleFunc("POST /organisms/{id}/sources", wrap(organismHandler.AddSource))
	mux.HandleFunc("POST /organisms/{id}/projects", wrap(organismHandler.LinkProject))
	mux.HandleFunc("POST /projects", wrap(projectHandler.CreateProject))
	mux.HandleFunc("POST /projects/{id}/funding", wrap(projectHandler.AddFunding))
	mux.HandleFunc("DELETE /taxonomy/{id}", wrap(projectHandler.DeleteTaxonomy))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("extremodb API v1"))
	})

	return middleware.CORS(mux)
}
