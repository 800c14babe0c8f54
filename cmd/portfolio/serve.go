package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"portfolio.dev/internal/handlers"
	"portfolio.dev/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, err := handlers.SetupRoutes(cfg, logger)
	if err != nil {
		return err
	}
	return server.ListenAndRun(ctx, cfg.ServerAddr, router, cfg.ShutdownTimeout, logger)
}

// background is used when a command runs outside Execute (tests)
func background(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
