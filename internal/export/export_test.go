package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"resume-builder/internal/notify"
	"resume-builder/internal/render"
	"resume-builder/pkg/schedule"
)

type stubSurface struct {
	pdf  []byte
	err  error
	seen string
}

func (s *stubSurface) Print(_ context.Context, html string) ([]byte, error) {
	s.seen = html
	return s.pdf, s.err
}

func sampleDocument() render.Document {
	return render.Document{
		Name:       "Alex Kim",
		FontFamily: "'Roboto', sans-serif",
		HTML:       `<div class="resume">Alex Kim</div>`,
	}
}

func TestTitle(t *testing.T) {
	if got := Title("Alex Kim"); got != "Alex Kim - ResumeCraft Pro" {
		t.Errorf("unexpected title %q", got)
	}
	if got := Title(""); got != "Resume - ResumeCraft Pro" {
		t.Errorf("unexpected fallback title %q", got)
	}
}

func TestPrintDocument(t *testing.T) {
	page, err := PrintDocument(sampleDocument())
	if err != nil {
		t.Fatalf("print document: %v", err)
	}
	for _, want := range []string{
		"<title>Alex Kim - ResumeCraft Pro</title>",
		"size: A4;",
		"print-color-adjust: exact !important;",
		`<div class="resume">Alex Kim</div>`,
		"Roboto",
		Attribution,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("expected print document to contain %q", want)
		}
	}
}

func TestPrintDocumentEscapesTitle(t *testing.T) {
	doc := sampleDocument()
	doc.Name = "<b>Alex</b>"
	page, err := PrintDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(page, "<title><b>") {
		t.Error("title must be escaped")
	}
}

func newTestExporter(t *testing.T, surface Surface) (*Exporter, *notify.Queue, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "generated")
	q := notify.NewQueue(schedule.NewFakeClock(), time.Second)
	e := NewExporter(surface, dir, q, nil)
	e.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }
	return e, q, dir
}

func lastMessage(q *notify.Queue) notify.Notification {
	l := q.List()
	return l[len(l)-1]
}

func TestExportWritesArtifacts(t *testing.T) {
	surface := &stubSurface{pdf: []byte("%PDF-1.7 fake")}
	e, q, dir := newTestExporter(t, surface)

	res, err := e.Export(context.Background(), sampleDocument())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if res.HTMLPath != filepath.Join(dir, "alex-kim_20240301T093000.html") {
		t.Errorf("unexpected html path %s", res.HTMLPath)
	}
	pdf, err := os.ReadFile(res.PDFPath)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if string(pdf) != "%PDF-1.7 fake" {
		t.Errorf("unexpected pdf contents %q", pdf)
	}
	if !strings.Contains(surface.seen, Attribution) {
		t.Error("surface did not receive the print document")
	}
	if m := lastMessage(q); m.Severity != notify.Success {
		t.Errorf("expected success notification, got %+v", m)
	}
}

func TestExportSurfaceFailure(t *testing.T) {
	tests := []struct {
		name    string
		surface Surface
	}{
		{name: "blocked", surface: &stubSurface{err: errors.New("chrome not found")}},
		{name: "garbage output", surface: &stubSurface{pdf: []byte("<html>")}},
		{name: "no surface", surface: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, q, _ := newTestExporter(t, tt.surface)

			res, err := e.Export(context.Background(), sampleDocument())
			if !errors.Is(err, ErrSurfaceUnavailable) {
				t.Fatalf("expected ErrSurfaceUnavailable, got %v", err)
			}
			if res.PDFPath != "" {
				t.Error("no PDF should be reported")
			}
			if _, err := os.Stat(res.HTMLPath); err != nil {
				t.Errorf("html artifact should be kept: %v", err)
			}
			m := lastMessage(q)
			if m.Severity != notify.Error || m.Message != "Export failed. Please try again." {
				t.Errorf("unexpected notification %+v", m)
			}
		})
	}
}

func TestArtifactName(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	tests := map[string]string{
		"Alex Kim":  "alex-kim_20240301T093000",
		"":          "resume_20240301T093000",
		"  José  ":  "jos_20240301T093000",
		"../../etc": "etc_20240301T093000",
	}
	for in, want := range tests {
		if got := artifactName(in, at); got != want {
			t.Errorf("artifactName(%q) = %q, want %q", in, got, want)
		}
	}
}
