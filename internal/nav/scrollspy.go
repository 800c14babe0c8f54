// Package nav implements the header navigation behavior: which section is
// highlighted while the page scrolls, what a nav click does, and the mobile
// menu toggle. Host capabilities (scroll position, element geometry,
// scrolling, location changes) come in through small interfaces so the
// logic runs the same against a fake, a headless browser, or a server-side
// initial render.
package nav

import (
	"strings"

	"portfolio.dev/internal/models"
)

const (
	// ScrolledOffset is the scrollY past which the header switches to its compact style
	ScrolledOffset = 20
	// ActivationThreshold is the maximum viewport-relative top of a section that can be active
	ActivationThreshold = 150
	// TopOffset is the scrollY under which no section is active
	TopOffset = 100

	// TopAnchor is the anchor of the implicit page-top item
	TopAnchor = "#top"
	// HomePath is the only route that has sections
	HomePath = "/"
)

// Viewport reports scroll position and section geometry
type Viewport interface {
	// ScrollY is the document's vertical scroll offset in pixels
	ScrollY() float64
	// SectionTop is the top of the element with the given id relative to
	// the viewport; ok is false when no such element is rendered
	SectionTop(id string) (top float64, ok bool)
}

// IsAnchor reports whether href points inside the current page
func IsAnchor(href string) bool {
	return strings.HasPrefix(href, "#")
}

// SectionAnchors returns the anchor ids of items, without '#', in reverse
// declaration order so the bottom-most section is checked first
func SectionAnchors(items []models.NavItem) []string {
	var ids []string
	for i := len(items) - 1; i >= 0; i-- {
		if IsAnchor(items[i].Href) {
			ids = append(ids, strings.TrimPrefix(items[i].Href, "#"))
		}
	}
	return ids
}

// ActiveSection returns the id of the section to highlight, or "" when the
// page is at the top or no section has crossed ActivationThreshold
func ActiveSection(items []models.NavItem, vp Viewport) string {
	if vp.ScrollY() < TopOffset {
		return ""
	}
	for _, id := range SectionAnchors(items) {
		top, ok := vp.SectionTop(id)
		if !ok {
			continue
		}
		if top <= ActivationThreshold {
			return id
		}
	}
	return ""
}

// Offsets is a fixed-geometry Viewport, used for server-side rendering and tests
type Offsets struct {
	Y        float64
	Sections map[string]float64
}

// ScrollY implements Viewport
func (o Offsets) ScrollY() float64 { return o.Y }

// SectionTop implements Viewport
func (o Offsets) SectionTop(id string) (float64, bool) {
	top, ok := o.Sections[id]
	return top, ok
}
