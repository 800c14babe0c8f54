// Package views renders the site's HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"portfolio.dev/internal/models"
	"portfolio.dev/internal/nav"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render
const (
	PageHome     = "home"
	PageProject  = "project"
	PageNotFound = "notfound"
)

var pages = []string{PageHome, PageProject, PageNotFound}

// Static returns the embedded static assets rooted at the static directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("static assets missing: " + err.Error())
	}
	return sub
}

// Renderer executes page templates
type Renderer struct {
	basePath   string
	githubUser string
	pages      map[string]*template.Template
}

// New parses every page template. basePath is prepended to all site links.
func New(basePath, githubUser string) (*Renderer, error) {
	r := &Renderer{
		basePath:   strings.TrimRight(basePath, "/"),
		githubUser: githubUser,
		pages:      make(map[string]*template.Template, len(pages)),
	}

	funcs := template.FuncMap{
		"url":   r.URL,
		"upper": upper,
	}

	for _, name := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// BasePath returns the prefix applied to site links
func (r *Renderer) BasePath() string {
	return r.basePath
}

// URL prefixes a site-absolute path with the base path. External URLs and
// in-page anchors pass through unchanged.
func (r *Renderer) URL(path string) string {
	if path == "" || nav.IsAnchor(path) || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return path
	}
	return r.basePath + path
}

// RepoURL is the outbound repository link of a project card
func (r *Renderer) RepoURL(slug string) string {
	return "https://github.com/" + r.githubUser + "/" + slug
}

// Render writes the named page. Nothing is written if execution fails.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// upper builds a Caser per call; Casers are stateful and pages render concurrently.
func upper(s string) string {
	return cases.Upper(language.English).String(s)
}

// Card is the view model of a project card
type Card struct {
	Slug     string
	Title    string
	Category string
	Image    string
	RepoURL  string
}

// NewCard maps a project to its card
func (r *Renderer) NewCard(ref models.RelatedProject) Card {
	return Card{
		Slug:     ref.Slug,
		Title:    ref.Title,
		Category: ref.Category,
		Image:    ref.Image,
		RepoURL:  r.RepoURL(ref.Slug),
	}
}

// Cards maps projects to cards, preserving order
func (r *Renderer) Cards(projects []models.Project) []Card {
	out := make([]Card, len(projects))
	for i, p := range projects {
		out[i] = r.NewCard(p.Ref())
	}
	return out
}

// NavLink is one rendered header link
type NavLink struct {
	Label  string
	Href   string
	Target string
	Active bool
}

// HeaderView is the initial render of the header
type HeaderView struct {
	Name           string
	Title          string
	OnHome         bool
	Scrolled       bool
	MobileMenuOpen bool
	Links          []NavLink

	ScrolledOffset      int
	ActivationThreshold int
	TopOffset           int
}

// NewHeaderView snapshots header state for rendering. Anchor links point
// back to the home page when the header is not on it.
func (r *Renderer) NewHeaderView(h *nav.Header, info models.PersonalInfo) HeaderView {
	v := HeaderView{
		Name:                info.Name,
		Title:               info.Title,
		OnHome:              h.OnHome(),
		Scrolled:            h.Scrolled,
		MobileMenuOpen:      h.MobileMenuOpen,
		ScrolledOffset:      nav.ScrolledOffset,
		ActivationThreshold: nav.ActivationThreshold,
		TopOffset:           nav.TopOffset,
	}
	for _, item := range h.Items {
		target := r.URL(item.Href)
		if nav.IsAnchor(item.Href) && !h.OnHome() {
			target = r.URL(nav.HomePath) + item.Href
		}
		v.Links = append(v.Links, NavLink{
			Label:  item.Label,
			Href:   item.Href,
			Target: target,
			Active: h.IsActive(item),
		})
	}
	return v
}

// Page carries what every page's layout needs
type Page struct {
	Title    string
	Header   HeaderView
	Personal models.PersonalInfo
}

// HomePage is the data of the home page
type HomePage struct {
	Page
	Projects   []Card
	Experience []models.Experience
}

// ProjectPage is the data of a project detail page
type ProjectPage struct {
	Page
	Project models.Project
	Related []models.RelatedProject
}

// NotFoundPage is the data of the not-found page
type NotFoundPage struct {
	Page
	Path    string
	Message string
}
