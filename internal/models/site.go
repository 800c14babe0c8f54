package models

// NavItem is a header link. Href is either an in-page anchor ("#about")
// or a route path ("/projects/x").
type NavItem struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// SocialLink is an outbound profile link shown in the contact section
type SocialLink struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Experience is one entry of the experience timeline
type Experience struct {
	Role    string   `json:"role" yaml:"role"`
	Company string   `json:"company" yaml:"company"`
	Period  string   `json:"period" yaml:"period"`
	Bullets []string `json:"bullets" yaml:"bullets"`
}

// PersonalInfo holds the owner details rendered in the header and hero
type PersonalInfo struct {
	Name    string       `json:"name" yaml:"name"`
	Title   string       `json:"title" yaml:"title"`
	Tagline string       `json:"tagline" yaml:"tagline"`
	About   []string     `json:"about" yaml:"about"`
	Email   string       `json:"email" yaml:"email"`
	Socials []SocialLink `json:"socials,omitempty" yaml:"socials,omitempty"`
}

// Site is the static, process-wide page content outside of projects
type Site struct {
	Personal   PersonalInfo `json:"personal" yaml:"personal"`
	Nav        []NavItem    `json:"nav" yaml:"nav"`
	Experience []Experience `json:"experience" yaml:"experience"`
}
