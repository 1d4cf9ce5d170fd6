// Package persistence saves and restores the resume under a single storage
// record.
package persistence

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/notify"
)

// Key is the storage record holding the resume.
const Key = "resume-pro-data"

// Adapter never propagates storage failures: they are logged and reported
// through the notifier so editing can continue on the in-memory document.
type Adapter struct {
	store    repository.Store
	notifier notify.Notifier
	log      *slog.Logger
}

func NewAdapter(store repository.Store, notifier notify.Notifier, log *slog.Logger) *Adapter {
	if log == nil {
		log = slog.Default()
	}
	return &Adapter{store: store, notifier: notifier, log: log}
}

// Save overwrites the stored record with doc. It reports whether the write
// succeeded.
func (a *Adapter) Save(ctx context.Context, doc domain.Resume) bool {
	b, err := json.Marshal(doc)
	if err != nil {
		a.fail("Failed to save your resume", errors.Wrap(err, "encode resume"))
		return false
	}
	if err := a.store.Put(ctx, Key, b); err != nil {
		a.fail("Failed to save your resume", err)
		return false
	}
	a.log.Debug("resume saved", "bytes", len(b))
	return true
}

// Load returns the stored resume. The second result is false when there is
// nothing worth restoring: no record, a malformed record, or a record without
// any user content.
func (a *Adapter) Load(ctx context.Context) (domain.Resume, bool) {
	b, err := a.store.Get(ctx, Key)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.Resume{}, false
	}
	if err != nil {
		a.fail("Failed to load saved data", err)
		return domain.Resume{}, false
	}

	doc, err := Decode(b)
	if err != nil {
		a.log.Warn("ignoring malformed saved resume", "error", err)
		return domain.Resume{}, false
	}
	if !doc.HasSignal() {
		a.log.Debug("saved resume has no content")
		return domain.Resume{}, false
	}
	return doc, true
}

// Clear removes the stored record.
func (a *Adapter) Clear(ctx context.Context) bool {
	if err := a.store.Delete(ctx, Key); err != nil {
		a.fail("Failed to clear saved data", err)
		return false
	}
	return true
}

func (a *Adapter) fail(message string, err error) {
	a.log.Error(message, "key", Key, "error", err)
	if a.notifier != nil {
		a.notifier.Push(message, notify.Error)
	}
}

// Decode validates and parses a storage record, restoring structural
// invariants on the result.
func Decode(b []byte) (domain.Resume, error) {
	if err := model.ValidateRecord(b); err != nil {
		return domain.Resume{}, err
	}
	var doc domain.Resume
	if err := json.Unmarshal(b, &doc); err != nil {
		return domain.Resume{}, errors.Wrap(err, "decode resume")
	}
	return doc.Normalize(), nil
}
