package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio.dev/internal/export"
	"portfolio.dev/internal/handlers"
	"portfolio.dev/internal/services"
	"portfolio.dev/internal/views"
)

var exportWorkers int

var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Render every page into a static site",
	Long: `Renders the home page, one page per project and the not-found page,
then copies the static assets. Links honor BASE_PATH so the output can be
hosted under a sub-path.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().IntVar(&exportWorkers, "workers", 4, "Pages rendered concurrently")
}

func runExport(cmd *cobra.Command, args []string) error {
	outputDir := args[0]

	router, err := handlers.SetupRoutes(cfg, logger)
	if err != nil {
		return err
	}

	var slugs []string
	for _, p := range services.NewProjectService(cfg.Projects).GetAll() {
		slugs = append(slugs, p.Slug)
	}

	e := &export.Exporter{
		Handler: router,
		Assets:  views.Static(),
		Logger:  logger,
		Workers: exportWorkers,
	}
	files, err := e.Run(background(cmd), outputDir, export.Pages(slugs))
	if err != nil {
		return err
	}

	logger.Info("export complete", zap.String("dir", outputDir), zap.Int("files", len(files)))
	for _, f := range files {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
