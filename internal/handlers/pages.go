package handlers

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"portfolio.dev/internal/nav"
	"portfolio.dev/internal/services"
	"portfolio.dev/internal/views"
)

// PageHandler renders the HTML pages
type PageHandler struct {
	projectService *services.ProjectService
	siteService    *services.SiteService
	renderer       *views.Renderer
	logger         *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, ss *services.SiteService, rd *views.Renderer, logger *zap.Logger) *PageHandler {
	return &PageHandler{projectService: ps, siteService: ss, renderer: rd, logger: logger}
}

// page builds the layout data for the route at path. The header is
// rendered in its at-rest state: unscrolled, menu closed.
func (h *PageHandler) page(path, title string) views.Page {
	header := nav.NewHeader(h.siteService.NavItems(), path, nav.Offsets{}, nil)
	header.BasePath = h.renderer.BasePath()
	header.HandleScroll()

	info := h.siteService.PersonalInfo()
	return views.Page{
		Title:    title,
		Header:   h.renderer.NewHeaderView(header, info),
		Personal: info,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := views.HomePage{
		Page:       h.page(nav.HomePath, ""),
		Projects:   h.renderer.Cards(h.projectService.GetAll()),
		Experience: h.siteService.Experience(),
	}
	h.render(w, http.StatusOK, views.PageHome, data)
}

// Project handles GET /projects/{slug}
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projectService.GetBySlug(slug)
	if err != nil {
		h.notFound(w, r.URL.Path, "We couldn't find the project you're looking for.")
		return
	}

	data := views.ProjectPage{
		Page:    h.page(r.URL.Path, project.Title),
		Project: *project,
		Related: h.projectService.GetRelated(slug, services.DefaultRelatedLimit),
	}
	h.render(w, http.StatusOK, views.PageProject, data)
}

// NotFound handles every unmatched route
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r.URL.Path, "The page you're looking for doesn't exist.")
}

func (h *PageHandler) notFound(w http.ResponseWriter, path, message string) {
	data := views.NotFoundPage{
		Page:    h.page(path, "Not Found"),
		Path:    path,
		Message: message,
	}
	h.render(w, http.StatusNotFound, views.PageNotFound, data)
}

// render writes a page, falling back to a plain 500 if the template fails
func (h *PageHandler) render(w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		h.logger.Error("rendering page", zap.String("page", page), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("writing page", zap.String("page", page), zap.Error(err))
	}
}
