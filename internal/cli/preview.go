package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-builder/internal/domain"
	"resume-builder/internal/export"
	"resume-builder/internal/persistence"
	"resume-builder/internal/render"
)

//nolint:gochecknoglobals // Cobra boilerplate
var previewCmd = &cobra.Command{
	Use:   "preview [resume.json]",
	Short: "Write the print HTML of a resume to stdout",
	Long: `Renders a resume record to the print HTML used for export, without
starting a browser. With no argument the saved resume is rendered.

Examples:
  resume-builder preview > resume.html
  resume-builder preview backup.json > resume.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	var doc domain.Resume
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "read resume: %s", args[0])
		}
		doc, err = persistence.Decode(b)
		if err != nil {
			return errors.Wrapf(err, "decode resume: %s", args[0])
		}
	} else {
		adapter, closeStore, err := openSaved(cmd.Context(), cfg, log, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closeStore()
		doc = loadSaved(cmd.Context(), adapter, log)
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		return err
	}
	rendered, err := renderer.Render(doc)
	if err != nil {
		return err
	}
	page, err := export.PrintDocument(rendered)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), page)
	return err
}
