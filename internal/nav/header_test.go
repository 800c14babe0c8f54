package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.dev/internal/models"
)

var homeItems = []models.NavItem{
	{Label: "Home", Href: "#top"},
	{Label: "About", Href: "#about"},
	{Label: "Projects", Href: "#projects"},
	{Label: "Contact", Href: "#contact"},
}

type fakeSource struct {
	listeners map[int]func()
	next      int
}

func newFakeSource() *fakeSource {
	return &fakeSource{listeners: map[int]func(){}}
}

func (s *fakeSource) OnScroll(fn func()) func() {
	id := s.next
	s.next++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

func (s *fakeSource) fire() {
	for _, fn := range s.listeners {
		fn()
	}
}

type fakeContainer struct {
	top, height, client float64
	reset               int
}

func (c *fakeContainer) ScrollTop() float64    { return c.top }
func (c *fakeContainer) ScrollHeight() float64 { return c.height }
func (c *fakeContainer) ClientHeight() float64 { return c.client }
func (c *fakeContainer) ScrollToOrigin()       { c.reset++ }

type fakeScroller struct {
	origin    int
	intoView  []string
	navigated []string
	main      *fakeContainer
	present   map[string]bool
}

func (s *fakeScroller) ScrollToOrigin() { s.origin++ }

func (s *fakeScroller) MainContainer() (Container, bool) {
	if s.main == nil {
		return nil, false
	}
	return s.main, true
}

func (s *fakeScroller) ScrollIntoView(id string) bool {
	if !s.present[id] {
		return false
	}
	s.intoView = append(s.intoView, id)
	return true
}

func (s *fakeScroller) Navigate(url string) { s.navigated = append(s.navigated, url) }

func TestHeader_MountUnmountReleasesListener(t *testing.T) {
	src := newFakeSource()
	h := NewHeader(homeItems, HomePath, &Offsets{}, &fakeScroller{})

	h.Mount(src)
	h.Mount(src)
	require.Len(t, src.listeners, 1)
	assert.True(t, h.Mounted())

	h.Unmount()
	assert.Empty(t, src.listeners)
	assert.False(t, h.Mounted())

	h.Unmount()
	assert.Empty(t, src.listeners)
}

func TestHeader_ScrollUpdatesState(t *testing.T) {
	src := newFakeSource()
	vp := &Offsets{Sections: map[string]float64{"top": 0, "about": 700, "projects": 1400, "contact": 2100}}
	h := NewHeader(homeItems, HomePath, vp, &fakeScroller{})
	h.Mount(src)
	defer h.Unmount()

	vp.Y = 10
	src.fire()
	assert.False(t, h.Scrolled)
	assert.Equal(t, "", h.ActiveSection)
	assert.True(t, h.IsActive(homeItems[0]))

	vp.Y = 50
	src.fire()
	assert.True(t, h.Scrolled)
	assert.Equal(t, "", h.ActiveSection)

	vp.Y = 800
	vp.Sections = map[string]float64{"top": -800, "about": -100, "projects": 600, "contact": 1300}
	src.fire()
	assert.Equal(t, "about", h.ActiveSection)
	assert.True(t, h.IsActive(homeItems[1]))
	assert.False(t, h.IsActive(homeItems[0]))

	vp.Y = 1500
	vp.Sections = map[string]float64{"top": -1500, "about": -800, "projects": 140, "contact": 600}
	src.fire()
	assert.Equal(t, "projects", h.ActiveSection)

	vp.Y = 40
	vp.Sections = map[string]float64{"top": -40, "about": 660, "projects": 1360, "contact": 2060}
	src.fire()
	assert.Equal(t, "", h.ActiveSection)
}

func TestHeader_ScrollOffHomeSkipsSections(t *testing.T) {
	vp := &Offsets{Y: 900, Sections: map[string]float64{"about": -10}}
	h := NewHeader(homeItems, "/projects/job-finder-app", vp, &fakeScroller{})

	h.HandleScroll()
	assert.True(t, h.Scrolled)
	assert.Equal(t, "", h.ActiveSection)
	for _, item := range homeItems {
		assert.False(t, h.IsActive(item), item.Href)
	}
}

func TestHeader_NoEventsAfterUnmount(t *testing.T) {
	src := newFakeSource()
	vp := &Offsets{Y: 0}
	h := NewHeader(homeItems, HomePath, vp, &fakeScroller{})
	h.Mount(src)
	h.Unmount()

	vp.Y = 500
	src.fire()
	assert.False(t, h.Scrolled)
}

func TestHeader_ClickTopOnHome(t *testing.T) {
	sc := &fakeScroller{}
	h := NewHeader(homeItems, HomePath, &Offsets{}, sc)

	h.Click("#top")
	assert.Equal(t, 1, sc.origin)
	assert.Empty(t, sc.navigated)
}

func TestHeader_ClickTopResetsScrolledMain(t *testing.T) {
	tests := []struct {
		name string
		main *fakeContainer
		want int
	}{
		{"scrolled", &fakeContainer{top: 300, height: 900, client: 900}, 1},
		{"overflowing", &fakeContainer{top: 0, height: 2000, client: 900}, 1},
		{"static", &fakeContainer{top: 0, height: 900, client: 900}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := &fakeScroller{main: tt.main}
			h := NewHeader(homeItems, HomePath, &Offsets{}, sc)
			h.Click(TopAnchor)
			assert.Equal(t, 1, sc.origin)
			assert.Equal(t, tt.want, tt.main.reset)
		})
	}
}

func TestHeader_ClickSectionOnHome(t *testing.T) {
	sc := &fakeScroller{present: map[string]bool{"about": true}}
	h := NewHeader(homeItems, HomePath, &Offsets{}, sc)

	h.Click("#about")
	assert.Equal(t, []string{"about"}, sc.intoView)

	// absent element is a silent no-op
	h.Click("#contact")
	assert.Equal(t, []string{"about"}, sc.intoView)
	assert.Zero(t, sc.origin)
	assert.Empty(t, sc.navigated)
}

func TestHeader_ClickAnchorOffHomeNavigates(t *testing.T) {
	sc := &fakeScroller{}
	h := NewHeader(homeItems, "/projects/finance-dashboard", &Offsets{}, sc)

	h.Click("#top")
	h.Click("#projects")
	assert.Equal(t, []string{"/#top", "/#projects"}, sc.navigated)
	assert.Zero(t, sc.origin)
}

func TestHeader_ClickAnchorOffHomeKeepsBasePath(t *testing.T) {
	sc := &fakeScroller{}
	h := NewHeader(homeItems, "/projects/finance-dashboard", &Offsets{}, sc)
	h.BasePath = "/portfolio-website"

	h.Click("#about")
	assert.Equal(t, []string{"/portfolio-website/#about"}, sc.navigated)
}

func TestHeader_ClickRoutePathDoesNothingButClose(t *testing.T) {
	sc := &fakeScroller{}
	h := NewHeader(homeItems, HomePath, &Offsets{}, sc)
	h.MobileMenuOpen = true

	h.Click("/resume")
	assert.False(t, h.MobileMenuOpen)
	assert.Empty(t, sc.navigated)
	assert.Zero(t, sc.origin)
}

func TestHeader_MobileMenu(t *testing.T) {
	sc := &fakeScroller{present: map[string]bool{"about": true}}
	h := NewHeader(homeItems, HomePath, &Offsets{}, sc)

	h.ToggleMobileMenu()
	assert.True(t, h.MobileMenuOpen)
	h.ToggleMobileMenu()
	assert.False(t, h.MobileMenuOpen)

	h.ToggleMobileMenu()
	h.Click("#about")
	assert.False(t, h.MobileMenuOpen)

	h.ToggleMobileMenu()
	h.OverlayKeyDown("Enter")
	assert.True(t, h.MobileMenuOpen)
	h.OverlayKeyDown("Escape")
	assert.False(t, h.MobileMenuOpen)
}

func TestHeader_ItemKeyDown(t *testing.T) {
	sc := &fakeScroller{present: map[string]bool{"about": true, "contact": true}}
	h := NewHeader(homeItems, HomePath, &Offsets{}, sc)

	h.ItemKeyDown("#about", "Enter")
	h.ItemKeyDown("#contact", " ")
	h.ItemKeyDown("#contact", "Tab")
	assert.Equal(t, []string{"about", "contact"}, sc.intoView)
}

func TestHeader_NilHostIsSafe(t *testing.T) {
	h := NewHeader(homeItems, HomePath, nil, nil)
	h.MobileMenuOpen = true

	h.HandleScroll()
	h.Click("#about")
	h.Mount(nil)

	assert.False(t, h.MobileMenuOpen)
	assert.False(t, h.Mounted())
}
