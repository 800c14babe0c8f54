package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"portfolio.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	siteService    *services.SiteService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, ss *services.SiteService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, siteService: ss, logger: logger}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	respondJSON(w, h.logger, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projectService.GetBySlug(slug)
	if err != nil {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, project)
}

// GetRelated handles GET /api/projects/{slug}/related?limit=N
func (h *ProjectHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	limit := services.DefaultRelatedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, h.logger, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	respondJSON(w, h.logger, http.StatusOK, h.projectService.GetRelated(slug, limit))
}

// GetNav handles GET /api/nav
func (h *ProjectHandler) GetNav(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.siteService.NavItems())
}
