// Package content holds the portfolio's baked-in records. The files are
// embedded in the binary and decoded once at startup; nothing mutates them
// afterwards.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"portfolio.dev/internal/models"
)

//go:embed projects.yaml
var projectsYAML []byte

//go:embed site.yaml
var siteYAML []byte

// ErrInvalidContent is returned when embedded records break an invariant
var ErrInvalidContent = errors.New("invalid content")

// LoadProjects decodes the embedded project list
func LoadProjects() (*models.ProjectList, error) {
	return ParseProjects(projectsYAML)
}

// LoadSite decodes the embedded site content
func LoadSite() (*models.Site, error) {
	return ParseSite(siteYAML)
}

// ParseProjects decodes a project list and checks that ids and slugs are unique
func ParseProjects(data []byte) (*models.ProjectList, error) {
	var projects models.ProjectList
	if err := yaml.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parse projects: %w", err)
	}

	ids := make(map[int]bool, len(projects.Projects))
	slugs := make(map[string]bool, len(projects.Projects))
	for _, p := range projects.Projects {
		if p.Slug == "" {
			return nil, fmt.Errorf("%w: project %d has no slug", ErrInvalidContent, p.ID)
		}
		if ids[p.ID] {
			return nil, fmt.Errorf("%w: duplicate project id %d", ErrInvalidContent, p.ID)
		}
		if slugs[p.Slug] {
			return nil, fmt.Errorf("%w: duplicate project slug %q", ErrInvalidContent, p.Slug)
		}
		ids[p.ID] = true
		slugs[p.Slug] = true
	}

	return &projects, nil
}

// ParseSite decodes site content
func ParseSite(data []byte) (*models.Site, error) {
	var site models.Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse site: %w", err)
	}
	for _, item := range site.Nav {
		if item.Href == "" {
			return nil, fmt.Errorf("%w: nav item %q has no href", ErrInvalidContent, item.Label)
		}
	}
	return &site, nil
}
