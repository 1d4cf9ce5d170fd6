package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"resume-builder/internal/notify"
	"resume-builder/internal/render"
)

// ErrSurfaceUnavailable is returned when no print surface could be opened.
var ErrSurfaceUnavailable = errors.New("print surface unavailable")

// Surface loads a standalone HTML page and prints it.
type Surface interface {
	Print(ctx context.Context, html string) ([]byte, error)
}

// Result lists the artifacts an export produced. PDFPath is empty when the
// print surface failed.
type Result struct {
	Title    string `json:"title"`
	HTMLPath string `json:"htmlPath"`
	PDFPath  string `json:"pdfPath,omitempty"`
}

type Exporter struct {
	surface  Surface
	outDir   string
	notifier notify.Notifier
	log      *slog.Logger
	now      func() time.Time
}

func NewExporter(surface Surface, outDir string, notifier notify.Notifier, log *slog.Logger) *Exporter {
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{surface: surface, outDir: outDir, notifier: notifier, log: log, now: time.Now}
}

// Export writes the print document next to its PDF. Surface failures are
// reported once through the notifier and returned; there is no retry.
func (e *Exporter) Export(ctx context.Context, doc render.Document) (Result, error) {
	e.notify("Preparing your resume for export...", notify.Info)

	page, err := PrintDocument(doc)
	if err != nil {
		e.fail(err)
		return Result{}, err
	}

	if err := os.MkdirAll(e.outDir, 0o750); err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", e.outDir)
		e.fail(err)
		return Result{}, err
	}

	base := artifactName(doc.Name, e.now())
	res := Result{Title: Title(doc.Name), HTMLPath: filepath.Join(e.outDir, base+".html")}

	// the HTML is kept even if printing fails
	if err := os.WriteFile(res.HTMLPath, []byte(page), 0o600); err != nil {
		err = errors.Wrapf(err, "failed to write %s", res.HTMLPath)
		e.fail(err)
		return Result{}, err
	}

	if e.surface == nil {
		e.fail(ErrSurfaceUnavailable)
		return res, ErrSurfaceUnavailable
	}
	pdf, err := e.surface.Print(ctx, page)
	if err == nil && !strings.HasPrefix(string(pdf), "%PDF") {
		err = errors.Errorf("invalid PDF output (len=%d)", len(pdf))
	}
	if err != nil {
		err = errors.Wrap(ErrSurfaceUnavailable, err.Error())
		e.fail(err)
		return res, err
	}

	pdfPath := filepath.Join(e.outDir, base+".pdf")
	if err := os.WriteFile(pdfPath, pdf, 0o600); err != nil {
		err = errors.Wrapf(err, "failed to write %s", pdfPath)
		e.fail(err)
		return res, err
	}
	res.PDFPath = pdfPath

	e.log.Info("resume exported", "html", res.HTMLPath, "pdf", res.PDFPath)
	e.notify("PDF exported successfully!", notify.Success)
	return res, nil
}

func (e *Exporter) fail(err error) {
	e.log.Error("export failed", "error", err)
	e.notify("Export failed. Please try again.", notify.Error)
}

func (e *Exporter) notify(message string, severity notify.Severity) {
	if e.notifier != nil {
		e.notifier.Push(message, severity)
	}
}

func artifactName(name string, at time.Time) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(name))
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "resume"
	}
	return fmt.Sprintf("%s_%s", slug, at.Format("20060102T150405"))
}
