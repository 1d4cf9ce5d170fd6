package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
)

// ChromeSurface prints HTML pages with a headless Chrome instance started per
// call.
type ChromeSurface struct {
	execPath string
	timeout  time.Duration
}

func NewChromeSurface(execPath string, timeout time.Duration) *ChromeSurface {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromeSurface{execPath: execPath, timeout: timeout}
}

// Print loads html from a temporary file, waits for the body to be ready and
// prints it to an A4 PDF with backgrounds.
func (s *ChromeSurface) Print(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if s.execPath != "" {
		opts = append(opts, chromedp.ExecPath(s.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, s.timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-print-")
	if err != nil {
		return nil, errors.Wrap(err, "create print directory")
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, errors.Wrap(err, "write print page")
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "chrome print")
	}
	return pdfBuf, nil
}
