package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"portfolio.dev/internal/models"
	"portfolio.dev/internal/nav"
)

// Options configures the browser used by Probe
type Options struct {
	// ControlURL connects to an already running Chrome instead of launching one.
	ControlURL string
	// Bin overrides the Chrome binary.
	Bin      string
	Headless bool
	Width    int
	Height   int
}

// Result is what the header computes for one scroll position
type Result struct {
	Path          string  `json:"path"`
	ScrollY       float64 `json:"scrollY"`
	Scrolled      bool    `json:"scrolled"`
	ActiveSection string  `json:"activeSection"`
	// Highlighted is the nav href the page's own script marked active.
	Highlighted string `json:"highlighted"`
}

// Session is a connected browser
type Session struct {
	browser *rod.Browser
	opts    Options
	logger  *zap.Logger
}

// Connect launches (or attaches to) Chrome
func Connect(ctx context.Context, opts Options, logger *zap.Logger) (*Session, error) {
	controlURL := opts.ControlURL
	if controlURL == "" {
		l := launcher.New().Headless(opts.Headless)
		if opts.Bin != "" {
			l = l.Bin(opts.Bin)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch chrome: %w", err)
		}
		controlURL = u
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	return &Session{browser: b, opts: opts, logger: logger}, nil
}

// Close shuts the browser down
func (s *Session) Close() error {
	return s.browser.Close()
}

// Open loads url in a new tab sized to the configured viewport
func (s *Session) Open(ctx context.Context, url string) (*Page, error) {
	page, err := s.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", url, err)
	}
	if s.opts.Width > 0 && s.opts.Height > 0 {
		if err := (proto.EmulationSetDeviceMetricsOverride{
			Width:             s.opts.Width,
			Height:            s.opts.Height,
			DeviceScaleFactor: 1,
		}).Call(page); err != nil {
			return nil, fmt.Errorf("set viewport: %w", err)
		}
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load %s: %w", url, err)
	}
	return NewPage(page, s.logger), nil
}

// RoutePath strips basePath from a location path
func RoutePath(path, basePath string) string {
	path = strings.TrimPrefix(path, strings.TrimRight(basePath, "/"))
	if path == "" {
		return nav.HomePath
	}
	return path
}

// Probe scrolls page to each y and evaluates the header against the live DOM
func Probe(page *Page, items []models.NavItem, basePath string, ys []float64) ([]Result, error) {
	results := make([]Result, 0, len(ys))
	for _, y := range ys {
		if err := page.ScrollTo(y); err != nil {
			return nil, err
		}

		h := nav.NewHeader(items, RoutePath(page.Path(), basePath), page, page)
		h.BasePath = basePath
		h.HandleScroll()

		results = append(results, Result{
			Path:          h.Path,
			ScrollY:       page.ScrollY(),
			Scrolled:      h.Scrolled,
			ActiveSection: h.ActiveSection,
			Highlighted:   page.HighlightedHref(),
		})
	}
	return results, nil
}

// Expected is the nav href that should be highlighted for r
func (r Result) Expected(items []models.NavItem) string {
	h := nav.Header{Items: items, Path: r.Path, ActiveSection: r.ActiveSection}
	for _, item := range items {
		if h.IsActive(item) {
			return item.Href
		}
	}
	return ""
}

// Agrees reports whether the page's script highlighted what the Go header computed
func (r Result) Agrees(items []models.NavItem) bool {
	return r.Expected(items) == r.Highlighted
}
