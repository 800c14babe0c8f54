package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio.dev/internal/config"
	"portfolio.dev/internal/logging"
)

var (
	// Global flags
	verbose bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio website server and static exporter",
	Long: `portfolio serves a server-rendered portfolio site from content baked into
the binary, and can export the same pages as a static site.

Configuration comes from the environment (and a .env file, if present):
  SERVER_ADDR, BASE_PATH, APP_ENV, LOG_LEVEL, GITHUB_USER,
  API_RATE_LIMIT, API_RATE_BURST, SHUTDOWN_TIMEOUT`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.IsDevelopment())
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	projectsCmd.AddCommand(projectsRelatedCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(scrollspyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
