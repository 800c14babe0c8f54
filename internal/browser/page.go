// Package browser drives a headless Chrome through go-rod to evaluate the
// header navigation logic against a live page's geometry.
package browser

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"portfolio.dev/internal/nav"
)

// Page adapts a rod page to the nav host interfaces. Geometry reads that
// fail are reported as missing elements, matching the header's
// silent-skip behavior.
type Page struct {
	page   *rod.Page
	logger *zap.Logger
}

var (
	_ nav.Viewport = (*Page)(nil)
	_ nav.Scroller = (*Page)(nil)
)

// NewPage wraps a rod page
func NewPage(page *rod.Page, logger *zap.Logger) *Page {
	return &Page{page: page, logger: logger}
}

func (p *Page) eval(js string, args ...interface{}) (*proto.RuntimeRemoteObject, error) {
	res, err := p.page.Eval(js, args...)
	if err != nil {
		p.logger.Debug("page eval failed", zap.String("js", js), zap.Error(err))
		return nil, err
	}
	return res, nil
}

// ScrollY implements nav.Viewport
func (p *Page) ScrollY() float64 {
	res, err := p.eval(`() => window.scrollY`)
	if err != nil {
		return 0
	}
	return res.Value.Num()
}

// SectionTop implements nav.Viewport
func (p *Page) SectionTop(id string) (float64, bool) {
	res, err := p.eval(`(id) => {
		const el = document.getElementById(id);
		return el ? el.getBoundingClientRect().top : null;
	}`, id)
	if err != nil || res.Value.Nil() {
		return 0, false
	}
	return res.Value.Num(), true
}

// ScrollTo jumps to y without smoothing so geometry is final when it returns
func (p *Page) ScrollTo(y float64) error {
	_, err := p.eval(`(y) => new Promise((resolve) => {
		window.scrollTo({ top: y, behavior: "instant" });
		requestAnimationFrame(() => requestAnimationFrame(resolve));
	})`, y)
	if err != nil {
		return fmt.Errorf("scroll to %v: %w", y, err)
	}
	return nil
}

// ScrollToOrigin implements nav.Scroller
func (p *Page) ScrollToOrigin() {
	_, _ = p.eval(`() => window.scrollTo({ top: 0, behavior: "smooth" })`)
}

// MainContainer implements nav.Scroller
func (p *Page) MainContainer() (nav.Container, bool) {
	res, err := p.eval(`() => document.querySelector("main") !== null`)
	if err != nil || !res.Value.Bool() {
		return nil, false
	}
	return &mainContainer{page: p}, true
}

// ScrollIntoView implements nav.Scroller
func (p *Page) ScrollIntoView(id string) bool {
	res, err := p.eval(`(id) => {
		const el = document.getElementById(id);
		if (!el) return false;
		el.scrollIntoView({ behavior: "smooth" });
		return true;
	}`, id)
	return err == nil && res.Value.Bool()
}

// Navigate implements nav.Scroller
func (p *Page) Navigate(url string) {
	if err := p.page.Navigate(url); err != nil {
		p.logger.Debug("navigate failed", zap.String("url", url), zap.Error(err))
		return
	}
	_ = p.page.WaitLoad()
}

// Path is the current location's path
func (p *Page) Path() string {
	res, err := p.eval(`() => window.location.pathname`)
	if err != nil {
		return ""
	}
	return res.Value.Str()
}

// HighlightedHref is the href of the desktop nav link the client script
// marked active, or "" if none.
func (p *Page) HighlightedHref() string {
	res, err := p.eval(`() => {
		const el = document.querySelector(".nav-desktop .is-active");
		return el ? el.dataset.navHref : "";
	}`)
	if err != nil {
		return ""
	}
	return res.Value.Str()
}

// WithContext returns a Page whose calls are bound to ctx
func (p *Page) WithContext(ctx context.Context) *Page {
	return &Page{page: p.page.Context(ctx), logger: p.logger}
}

type mainContainer struct {
	page *Page
}

func (c *mainContainer) prop(name string) float64 {
	res, err := c.page.eval(`(name) => document.querySelector("main")[name]`, name)
	if err != nil {
		return 0
	}
	return res.Value.Num()
}

func (c *mainContainer) ScrollTop() float64    { return c.prop("scrollTop") }
func (c *mainContainer) ScrollHeight() float64 { return c.prop("scrollHeight") }
func (c *mainContainer) ClientHeight() float64 { return c.prop("clientHeight") }

func (c *mainContainer) ScrollToOrigin() {
	_, _ = c.page.eval(`() => document.querySelector("main").scrollTo({ top: 0, behavior: "smooth" })`)
}
