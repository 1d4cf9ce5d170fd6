package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/config"
	"resume-builder/internal/logger"
)

//nolint:gochecknoglobals // Cobra boilerplate
var envFile string

//nolint:gochecknoglobals // Cobra boilerplate
var logLevel string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "resume-builder",
	Short: "Edit, score and export a single resume",
	Long: `resume-builder keeps one resume in a key-value store, serves a local
editor API with a live preview, and exports print-ready HTML and PDF files.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides LOG_LEVEL")
}

// loadConfig reads configuration, applying flag overrides.
func loadConfig() (cfg config.Config, err error) {
	cfg, err = config.Load(envFile)
	if err != nil {
		return cfg, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// newLogger also installs the logger as the slog default so packages that log
// through slog directly share the level.
func newLogger(cfg config.Config) *slog.Logger {
	l := logger.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(l)
	return l
}
