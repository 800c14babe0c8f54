package models

import "slices"

// GalleryImage is one screenshot shown on a project detail page
type GalleryImage struct {
	URL     string `json:"url" yaml:"url"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// RelatedProject is a denormalized pointer to another project.
// It is a copy of a few fields, not a live reference.
type RelatedProject struct {
	Slug     string `json:"slug" yaml:"slug"`
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category" yaml:"category"`
	Image    string `json:"image" yaml:"image"`
}

// Project represents a portfolio project
type Project struct {
	ID               int              `json:"id" yaml:"id"`
	Slug             string           `json:"slug" yaml:"slug"`
	Title            string           `json:"title" yaml:"title"`
	Category         string           `json:"category" yaml:"category"`
	ShortDescription string           `json:"shortDescription" yaml:"shortDescription"`
	Description      []string         `json:"description" yaml:"description"`
	Features         []string         `json:"features" yaml:"features"`
	Technologies     []string         `json:"technologies" yaml:"technologies"`
	CoverImage       string           `json:"coverImage" yaml:"coverImage"`
	ThumbnailImage   string           `json:"thumbnailImage" yaml:"thumbnailImage"`
	Gallery          []GalleryImage   `json:"gallery,omitempty" yaml:"gallery,omitempty"`
	Client           string           `json:"client,omitempty" yaml:"client,omitempty"`
	Timeline         string           `json:"timeline" yaml:"timeline"`
	Role             string           `json:"role" yaml:"role"`
	LiveURL          string           `json:"liveUrl,omitempty" yaml:"liveUrl,omitempty"`
	GitHubURL        string           `json:"githubUrl,omitempty" yaml:"githubUrl,omitempty"`
	RelatedProjects  []RelatedProject `json:"relatedProjects,omitempty" yaml:"relatedProjects,omitempty"`
}

// Ref returns the lightweight cross-reference form of the project
func (p Project) Ref() RelatedProject {
	return RelatedProject{
		Slug:     p.Slug,
		Title:    p.Title,
		Category: p.Category,
		Image:    p.ThumbnailImage,
	}
}

// Clone returns a copy of the project that shares no slices with p
func (p Project) Clone() Project {
	p.Description = slices.Clone(p.Description)
	p.Features = slices.Clone(p.Features)
	p.Technologies = slices.Clone(p.Technologies)
	p.Gallery = slices.Clone(p.Gallery)
	p.RelatedProjects = slices.Clone(p.RelatedProjects)
	return p
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}
