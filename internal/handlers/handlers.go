package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"portfolio.dev/internal/config"
	"portfolio.dev/internal/middleware"
	"portfolio.dev/internal/services"
	"portfolio.dev/internal/views"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, logger *zap.Logger) (http.Handler, error) {
	renderer, err := views.New(cfg.BasePath, cfg.GitHubUser)
	if err != nil {
		return nil, fmt.Errorf("init views: %w", err)
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize services
	projectService := services.NewProjectService(cfg.Projects)
	siteService := services.NewSiteService(cfg.Site)

	// Initialize handlers
	pageHandler := NewPageHandler(projectService, siteService, renderer, logger)
	projectHandler := NewProjectHandler(projectService, siteService, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(rate.Limit(cfg.APIRateLimit), cfg.APIRateBurst))

		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)
		r.Get("/projects/{slug}/related", projectHandler.GetRelated)
		r.Get("/nav", projectHandler.GetNav)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, logger, http.StatusNotFound, "Not found")
		})
	})

	// Static files
	fileServer := http.FileServerFS(views.Static())
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	r.Get("/placeholder.svg", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, views.Static(), "placeholder.svg")
	})

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/projects/{slug}", pageHandler.Project)
	r.NotFound(pageHandler.NotFound)

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
