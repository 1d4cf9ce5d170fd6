package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"resume-builder/internal/config"
	"resume-builder/internal/domain"
	"resume-builder/internal/notify"
	"resume-builder/internal/persistence"
)

// printNotifier writes notifications as lines for one-shot commands, where
// there is no queue to poll.
type printNotifier struct {
	w io.Writer
}

func (p printNotifier) Push(message string, severity notify.Severity) notify.Notification {
	n := notify.Notification{ID: uuid.NewString(), Message: message, Severity: severity}
	fmt.Fprintf(p.w, "[%s] %s\n", severity, message)
	return n
}

// openSaved opens the configured store and returns an adapter over it.
func openSaved(ctx context.Context, cfg config.Config, log *slog.Logger, out io.Writer) (*persistence.Adapter, func(), error) {
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return persistence.NewAdapter(store, printNotifier{w: out}, log), closeStore, nil
}

// loadSaved returns the stored resume, or the empty default when nothing
// worth restoring is stored.
func loadSaved(ctx context.Context, adapter *persistence.Adapter, log *slog.Logger) domain.Resume {
	doc, ok := adapter.Load(ctx)
	if !ok {
		log.Info("no saved resume, using the empty default")
		return domain.Default()
	}
	return doc
}
