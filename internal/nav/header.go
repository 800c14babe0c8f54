package nav

import (
	"strings"

	"portfolio.dev/internal/models"
)

// Container is a scrollable element, such as the page's <main>
type Container interface {
	ScrollTop() float64
	ScrollHeight() float64
	ClientHeight() float64
	ScrollToOrigin()
}

// Scroller performs navigation side effects in the host
type Scroller interface {
	// ScrollToOrigin smooth-scrolls the window to the top.
	ScrollToOrigin()
	// MainContainer returns the main content container, if rendered.
	MainContainer() (Container, bool)
	// ScrollIntoView smooth-scrolls the element with id into view and
	// reports whether it exists.
	ScrollIntoView(id string) bool
	// Navigate performs a full location change.
	Navigate(url string)
}

// ScrollSource delivers scroll events. The returned release func
// unregisters the listener.
type ScrollSource interface {
	OnScroll(fn func()) (release func())
}

// Header is the state of the navigation bar for one mounted page
type Header struct {
	Items    []models.NavItem
	Path     string
	BasePath string

	Scrolled       bool
	MobileMenuOpen bool
	ActiveSection  string

	viewport Viewport
	scroller Scroller
	release  func()
}

// NewHeader creates a header for the page at path
func NewHeader(items []models.NavItem, path string, vp Viewport, sc Scroller) *Header {
	return &Header{
		Items:    items,
		Path:     path,
		viewport: vp,
		scroller: sc,
	}
}

// OnHome reports whether the header is mounted on the home route
func (h *Header) OnHome() bool {
	return h.Path == HomePath
}

// Mount registers the scroll listener. Calling it again while mounted is a no-op.
func (h *Header) Mount(src ScrollSource) {
	if h.release != nil || src == nil {
		return
	}
	h.release = src.OnScroll(h.HandleScroll)
}

// Unmount releases the scroll listener
func (h *Header) Unmount() {
	if h.release == nil {
		return
	}
	h.release()
	h.release = nil
}

// Mounted reports whether a scroll listener is registered
func (h *Header) Mounted() bool {
	return h.release != nil
}

// HandleScroll recomputes the scroll-derived state
func (h *Header) HandleScroll() {
	if h.viewport == nil {
		return
	}
	h.Scrolled = h.viewport.ScrollY() > ScrolledOffset
	if !h.OnHome() {
		return
	}
	h.ActiveSection = ActiveSection(h.Items, h.viewport)
}

// Click handles selection of the nav item with href
func (h *Header) Click(href string) {
	defer h.CloseMobileMenu()

	if !IsAnchor(href) || h.scroller == nil {
		return
	}

	if !h.OnHome() {
		h.scroller.Navigate(strings.TrimSuffix(h.BasePath, "/") + "/" + href)
		return
	}

	if href == TopAnchor {
		h.scroller.ScrollToOrigin()
		if main, ok := h.scroller.MainContainer(); ok && (main.ScrollTop() > 0 || main.ScrollHeight() > main.ClientHeight()) {
			main.ScrollToOrigin()
		}
		return
	}

	h.scroller.ScrollIntoView(strings.TrimPrefix(href, "#"))
}

// ToggleMobileMenu flips the mobile menu overlay
func (h *Header) ToggleMobileMenu() {
	h.MobileMenuOpen = !h.MobileMenuOpen
}

// CloseMobileMenu closes the mobile menu overlay
func (h *Header) CloseMobileMenu() {
	h.MobileMenuOpen = false
}

// OverlayKeyDown handles a key pressed while the mobile overlay has focus
func (h *Header) OverlayKeyDown(key string) {
	if key == "Escape" {
		h.CloseMobileMenu()
	}
}

// ItemKeyDown handles a key pressed on a focused nav item.
// Enter and Space activate it like a click.
func (h *Header) ItemKeyDown(href, key string) {
	if key == "Enter" || key == " " {
		h.Click(href)
	}
}

// IsActive reports whether item should be highlighted
func (h *Header) IsActive(item models.NavItem) bool {
	if !h.OnHome() {
		return false
	}
	if item.Href == TopAnchor && h.ActiveSection == "" {
		return true
	}
	return IsAnchor(item.Href) && strings.TrimPrefix(item.Href, "#") == h.ActiveSection
}
