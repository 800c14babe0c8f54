package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio.dev/internal/browser"
	"portfolio.dev/internal/services"
)

var (
	scrollPositions []float64
	browserOpts     browser.Options
	probeTimeout    time.Duration
)

var scrollspyCmd = &cobra.Command{
	Use:   "scrollspy <url>",
	Short: "Check header highlighting against a live page",
	Long: `Opens url in Chrome, scrolls to each --at position and prints, as JSON
lines, the active section computed from the live DOM next to the nav item the
page's own script highlighted. Exits non-zero if they disagree.

Example:
  portfolio scrollspy http://localhost:8080/ --at 0,600,1800`,
	Args: cobra.ExactArgs(1),
	RunE: runScrollspy,
}

func init() {
	scrollspyCmd.Flags().Float64SliceVar(&scrollPositions, "at", []float64{0}, "Scroll positions to probe, in pixels")
	scrollspyCmd.Flags().StringVar(&browserOpts.ControlURL, "control-url", "", "Attach to a running Chrome instead of launching one")
	scrollspyCmd.Flags().StringVar(&browserOpts.Bin, "chrome", "", "Chrome binary to launch")
	scrollspyCmd.Flags().BoolVar(&browserOpts.Headless, "headless", true, "Run Chrome headless")
	scrollspyCmd.Flags().IntVar(&browserOpts.Width, "width", 1280, "Viewport width")
	scrollspyCmd.Flags().IntVar(&browserOpts.Height, "height", 800, "Viewport height")
	scrollspyCmd.Flags().DurationVar(&probeTimeout, "timeout", time.Minute, "Overall timeout")
}

func runScrollspy(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(background(cmd), probeTimeout)
	defer cancel()

	session, err := browser.Connect(ctx, browserOpts, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Debug("closing browser", zap.Error(err))
		}
	}()

	page, err := session.Open(ctx, args[0])
	if err != nil {
		return err
	}

	items := services.NewSiteService(cfg.Site).NavItems()
	results, err := browser.Probe(page.WithContext(ctx), items, cfg.BasePath, scrollPositions)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	disagreements := 0
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
		if !r.Agrees(items) {
			disagreements++
			logger.Warn("highlight mismatch",
				zap.Float64("scroll_y", r.ScrollY),
				zap.String("expected", r.Expected(items)),
				zap.String("highlighted", r.Highlighted),
			)
		}
	}
	if disagreements > 0 {
		return fmt.Errorf("%d of %d positions disagree", disagreements, len(results))
	}
	return nil
}
