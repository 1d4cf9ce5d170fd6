// Package notify holds transient, auto-expiring status messages for the
// editor.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-builder/pkg/schedule"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3 * time.Second

type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

type Notification struct {
	ID       string   `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Notifier accepts user-facing messages.
type Notifier interface {
	Push(message string, severity Severity) Notification
}

// Queue is a FIFO of notifications that remove themselves after a TTL.
type Queue struct {
	mu     sync.Mutex
	clock  schedule.Clock
	ttl    time.Duration
	items  []Notification
	timers map[string]schedule.Timer
	closed bool
}

func NewQueue(clock schedule.Clock, ttl time.Duration) *Queue {
	if clock == nil {
		clock = schedule.RealClock()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{clock: clock, ttl: ttl, timers: map[string]schedule.Timer{}}
}

// Push appends a message and schedules its removal.
func (q *Queue) Push(message string, severity Severity) Notification {
	n := Notification{ID: uuid.NewString(), Message: message, Severity: severity}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return n
	}
	q.items = append(q.items, n)
	q.timers[n.ID] = q.clock.AfterFunc(q.ttl, func() { q.Remove(n.ID) })
	return n
}

// Remove drops the notification with id. Unknown ids are ignored.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i:i], q.items[i+1:]...)
			return
		}
	}
}

// List returns the visible notifications, oldest first.
func (q *Queue) List() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Notification{}, q.items...)
}

// Close cancels every pending expiry and drops further pushes.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.closed = true
}
