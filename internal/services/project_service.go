package services

import (
	"errors"
	"fmt"

	"portfolio.dev/internal/models"
)

// DefaultRelatedLimit is the number of related projects shown when no limit is given
const DefaultRelatedLimit = 2

// ErrProjectNotFound is returned when no project matches a slug
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations.
// The underlying list is never mutated after construction.
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	if projects == nil {
		projects = &models.ProjectList{}
	}
	return &ProjectService{projects: projects}
}

// GetAll returns all projects in declaration order
func (s *ProjectService) GetAll() []models.Project {
	out := make([]models.Project, len(s.projects.Projects))
	for i, p := range s.projects.Projects {
		out[i] = p.Clone()
	}
	return out
}

// GetBySlug returns the project with the given slug
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].Slug == slug {
			p := s.projects.Projects[i].Clone()
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
}

// GetRelated returns up to limit cross-references for slug. A declared
// relatedProjects list wins; otherwise the first other projects in store
// order are used. A limit <= 0 yields no entries.
func (s *ProjectService) GetRelated(slug string, limit int) []models.RelatedProject {
	if limit <= 0 {
		return []models.RelatedProject{}
	}

	if current, err := s.GetBySlug(slug); err == nil && current.RelatedProjects != nil {
		declared := current.RelatedProjects
		if len(declared) > limit {
			declared = declared[:limit]
		}
		out := make([]models.RelatedProject, len(declared))
		copy(out, declared)
		return out
	}

	out := make([]models.RelatedProject, 0, limit)
	for _, p := range s.projects.Projects {
		if len(out) == limit {
			break
		}
		if p.Slug == slug {
			continue
		}
		out = append(out, p.Ref())
	}
	return out
}
