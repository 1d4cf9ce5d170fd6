package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-builder/internal/export"
	"resume-builder/internal/render"
	infra "resume-builder/pkg/infrastructure"
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportOut string

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the saved resume to HTML and PDF",
	Long: `Renders the saved resume with its chosen template, theme, font and
spacing and writes the print HTML and PDF into the output directory.

Examples:
  resume-builder export
  resume-builder export --out ~/Documents/resumes`,
	RunE: runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output directory (default OUTPUT_DIR)")
}

func runExport(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	if exportOut != "" {
		cfg.OutputDir = exportOut
	}

	ctx := cmd.Context()
	adapter, closeStore, err := openSaved(ctx, cfg, log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeStore()

	renderer, err := render.NewRenderer()
	if err != nil {
		return err
	}
	doc, err := renderer.Render(loadSaved(ctx, adapter, log))
	if err != nil {
		return err
	}

	exporter := export.NewExporter(infra.NewChromeSurface(cfg.ChromePath, printTimeout), cfg.OutputDir, printNotifier{w: cmd.ErrOrStderr()}, log)
	res, err := exporter.Export(ctx, doc)
	if res.HTMLPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "HTML: %s\n", res.HTMLPath)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "PDF:  %s\n", res.PDFPath)
	return nil
}
