package usecase

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/internal/notify"
	"resume-builder/pkg/schedule"
)

const (
	DefaultAutosaveDelay = 2 * time.Second
	DefaultLoadDelay     = 800 * time.Millisecond
)

// Persister stores the resume between sessions.
type Persister interface {
	Save(ctx context.Context, doc domain.Resume) bool
	Load(ctx context.Context) (domain.Resume, bool)
	Clear(ctx context.Context) bool
}

type SessionOptions struct {
	Clock         schedule.Clock
	AutosaveDelay time.Duration
	// LoadDelay is the minimum wait before the initial load. Zero loads
	// immediately.
	LoadDelay     time.Duration
	Logger        *slog.Logger
	// NewID generates entry identifiers. Defaults to random UUIDs.
	NewID func() string
}

// Session owns the resume being edited. Each mutation replaces the current
// snapshot wholesale and returns it; readers always observe a complete
// snapshot. Writes to the Persister are debounced and only start once the
// initial load has finished.
type Session struct {
	mu      sync.Mutex
	current atomic.Pointer[domain.Resume]

	// saveMu serializes Save and Clear so a write that is already in flight
	// lands before a reset clears storage.
	saveMu sync.Mutex

	store    Persister
	notifier notify.Notifier
	clock    schedule.Clock
	autosave *schedule.Debouncer
	log      *slog.Logger
	newID    func() string

	loadDelay time.Duration
	started   atomic.Bool
	loaded    atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
}

func NewSession(store Persister, notifier notify.Notifier, opts SessionOptions) *Session {
	if opts.Clock == nil {
		opts.Clock = schedule.RealClock()
	}
	if opts.AutosaveDelay <= 0 {
		opts.AutosaveDelay = DefaultAutosaveDelay
	}
	if opts.LoadDelay < 0 {
		opts.LoadDelay = 0
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		store:     store,
		notifier:  notifier,
		clock:     opts.Clock,
		autosave:  schedule.NewDebouncer(opts.Clock, opts.AutosaveDelay),
		log:       opts.Logger,
		newID:     opts.NewID,
		loadDelay: opts.LoadDelay,
		ctx:       ctx,
		cancel:    cancel,
	}
	doc := domain.Default()
	s.current.Store(&doc)
	return s
}

// Start seeds the session from storage once, after the configured load delay.
// Calling it again is a no-op.
func (s *Session) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}
	if err := schedule.Sleep(ctx, s.clock, s.loadDelay); err != nil {
		return err
	}
	if s.ctx.Err() != nil {
		return s.ctx.Err()
	}

	if doc, ok := s.store.Load(ctx); ok {
		s.mu.Lock()
		s.current.Store(&doc)
		s.mu.Unlock()
		s.notify("Your saved resume loaded!", notify.Success)
		s.log.Info("restored saved resume", "completion", CompletionScore(doc))
	}
	s.loaded.Store(true)
	return nil
}

// Loaded reports whether the initial load has finished.
func (s *Session) Loaded() bool { return s.loaded.Load() }

// Snapshot returns the current document.
func (s *Session) Snapshot() domain.Resume {
	return *s.current.Load()
}

// Close cancels pending autosaves. The session must not be used afterwards.
func (s *Session) Close() {
	s.autosave.Stop()
	s.cancel()
}

func (s *Session) apply(fn func(domain.Resume) (domain.Resume, error)) (domain.Resume, error) {
	s.mu.Lock()
	cur := *s.current.Load()
	next, err := fn(cur)
	if err != nil {
		s.mu.Unlock()
		return cur, err
	}
	s.current.Store(&next)
	s.mu.Unlock()

	s.scheduleSave()
	return next, nil
}

func (s *Session) scheduleSave() {
	if !s.loaded.Load() || s.ctx.Err() != nil {
		return
	}
	s.autosave.Trigger(s.flush)
}

// flush reads the snapshot only once it holds saveMu, so serialized writes
// land in snapshot order.
func (s *Session) flush() {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	doc := s.Snapshot()
	if !doc.HasSignal() {
		return
	}
	s.store.Save(s.ctx, doc)
}

func (s *Session) notify(message string, severity notify.Severity) {
	if s.notifier != nil {
		s.notifier.Push(message, severity)
	}
}

func (s *Session) SetPersonalField(field domain.PersonalField, value string) (domain.Resume, error) {
	return s.apply(func(r domain.Resume) (domain.Resume, error) {
		return r.WithPersonalField(field, value)
	})
}

// AddWorkEntry appends an empty role and returns the snapshot together with
// the new entry's id.
func (s *Session) AddWorkEntry() (domain.Resume, string) {
	id := s.newID()
	doc, _ := s.apply(func(r domain.Resume) (domain.Resume, error) {
		return r.WithWorkEntry(id), nil
	})
	s.notify("New work experience added", notify.Success)
	return doc, id
}

func (s *Session) UpdateWorkEntry(id string, field domain.WorkField, value string) (domain.Resume, error) {
	return s.apply(func(r domain.Resume) (domain.Resume, error) {
		return r.UpdateWorkEntry(id, field, value)
	})
}

func (s *Session) RemoveWorkEntry(id string) domain.Resume {
	doc, _ := s.apply(func(r domain.Resume) (domain.Resume, error) {
		return r.WithoutWorkEntry(id), nil
	})
	s.notify("Work experience removed", notify.Info)
	return doc
}

func (s *Session) AddEducationEntry() (domain.Resume, string) {
	id := s.newID()
	doc, _ := s.apply(func(r domain.Resume) (domain.Resume, error) {
		return r.WithEducationEntry(id), nil
	})
	s.notify("New education added", notify.Success)
	return doc, id
}

func (s *Session) UpdateEducationEntry(id string, field domain.EducationField, value string) (domain.Resume, error) {
	return s.apply(func(r domain.Resume) (domain.Resume, error) {
		return r.UpdateEducationEntry(id, field, value)
	})
}

func (s *Session) RemoveEducationEntry(id string) domain.Resume {
	doc, _ := s.apply(func(r domain.Resume) (domain.Resume, error) {
		return r.WithoutEducationEntry(id), nil
	})
	s.notify("Education removed", notify.Info)
	return doc
}

// AddSkill appends a label to a category. Blank labels change nothing.
func (s *Session) AddSkill(category domain.SkillCategory, label string) (domain.Resume, error) {
	added := false
	doc, err := s.apply(func(r domain.Resume) (domain.Resume, error) {
		next, err := r.WithSkill(category, label)
		added = err == nil && next.SkillCount() > r.SkillCount()
		return next, err
	})
	if added {
		s.notify("Skill added successfully", notify.Success)
	}
	return doc, err
}

func (s *Session) RemoveSkill(category domain.SkillCategory, index int) (domain.Resume, error) {
	return s.apply(func(r domain.Resume) (domain.Resume, error) {
		return r.WithoutSkill(category, index)
	})
}

func (s *Session) SetCustomization(field domain.CustomizationField, value string) (domain.Resume, error) {
	return s.apply(func(r domain.Resume) (domain.Resume, error) {
		return r.WithCustomization(field, value)
	})
}

// ResetToDefault discards the document and clears storage.
func (s *Session) ResetToDefault() domain.Resume {
	doc := domain.Default()
	s.mu.Lock()
	s.current.Store(&doc)
	s.mu.Unlock()

	s.autosave.Stop()
	s.saveMu.Lock()
	s.store.Clear(s.ctx)
	s.saveMu.Unlock()
	s.notify("Resume reset to default", notify.Info)
	return doc
}

// LoadSkeleton empties the content sections but keeps the chosen look.
func (s *Session) LoadSkeleton() domain.Resume {
	doc, _ := s.apply(func(r domain.Resume) (domain.Resume, error) {
		return r.Skeleton(), nil
	})
	s.notify("Template structure loaded. Fill in your information.", notify.Info)
	return doc
}
