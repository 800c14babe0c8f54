package services

import (
	"portfolio.dev/internal/models"
)

// SiteService exposes the non-project page content
type SiteService struct {
	site *models.Site
}

// NewSiteService creates a new SiteService
func NewSiteService(site *models.Site) *SiteService {
	if site == nil {
		site = &models.Site{}
	}
	return &SiteService{site: site}
}

// NavItems returns the header navigation in declaration order
func (s *SiteService) NavItems() []models.NavItem {
	out := make([]models.NavItem, len(s.site.Nav))
	copy(out, s.site.Nav)
	return out
}

// PersonalInfo returns the owner details
func (s *SiteService) PersonalInfo() models.PersonalInfo {
	return s.site.Personal
}

// Experience returns the experience timeline
func (s *SiteService) Experience() []models.Experience {
	return s.site.Experience
}
