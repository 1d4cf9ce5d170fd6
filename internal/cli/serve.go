package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/export"
	"resume-builder/internal/notify"
	"resume-builder/internal/persistence"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/schedule"
)

const printTimeout = 60 * time.Second

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the editor API and live preview",
	Long: `Starts the editor HTTP API on PORT. The saved resume is restored after
LOAD_DELAY and edits are written back AUTOSAVE_DELAY after the last change.`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	queue := notify.NewQueue(schedule.RealClock(), notify.DefaultTTL)
	defer queue.Close()

	session := usecase.NewSession(persistence.NewAdapter(store, queue, log), queue, usecase.SessionOptions{
		AutosaveDelay: cfg.AutosaveDelay,
		LoadDelay:     cfg.LoadDelay,
		Logger:        log,
	})
	defer session.Close()

	go func() {
		if err := session.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("initial load failed", "error", err)
		}
	}()

	renderer, err := render.NewRenderer()
	if err != nil {
		return err
	}
	exporter := export.NewExporter(infra.NewChromeSurface(cfg.ChromePath, printTimeout), cfg.OutputDir, queue, log)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httpadapter.NewHandler(session, renderer, exporter, queue, log).Register(app)

	errCh := make(chan error, 1)
	go func() {
		log.Info("editor listening", "port", cfg.Port)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err = <-errCh:
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
	}

	log.Info("shutting down")
	return app.ShutdownWithTimeout(5 * time.Second)
}
