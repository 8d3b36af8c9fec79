// Package analytics records product events on a best-effort basis.
package analytics

import (
	"context"
	"sync"

	"github.com/abhisek/moneypath/internal/logger"
	"github.com/abhisek/moneypath/internal/store"
)

// Event names.
const (
	LessonCompleted = "lesson_completed"
	QuizSubmitted   = "quiz_submitted"
	ChatAsked       = "chat_asked"
)

// Event is one analytics event.
type Event struct {
	UserID     string
	Name       string
	Properties map[string]any
}

// Sink receives events. Record never fails from the caller's point of
// view; implementations log and drop what they cannot deliver.
type Sink interface {
	Record(ctx context.Context, e Event)
}

// Appender is the store capability StoreSink needs.
type Appender interface {
	AppendAnalytics(ctx context.Context, data store.AnalyticsEventData) error
}

// StoreSink writes events to the analytics_event table.
type StoreSink struct {
	repo Appender
	log  *logger.Logger
}

// NewStoreSink returns a sink backed by repo. A nil logger discards output.
func NewStoreSink(repo Appender, log *logger.Logger) *StoreSink {
	if log == nil {
		log = logger.Nop()
	}
	return &StoreSink{repo: repo, log: log}
}

func (s *StoreSink) Record(ctx context.Context, e Event) {
	err := s.repo.AppendAnalytics(ctx, store.AnalyticsEventData{
		UserID:     e.UserID,
		Name:       e.Name,
		Properties: e.Properties,
	})
	if err != nil {
		s.log.Warn("analytics event dropped", "event", e.Name, "user_id", e.UserID, "error", err)
	}
}

// Nop discards every event.
type Nop struct{}

func (Nop) Record(context.Context, Event) {}

// Memory keeps events in memory. It is used by tests and the offline demo.
type Memory struct {
	mu     sync.Mutex
	events []Event
}

func (m *Memory) Record(_ context.Context, e Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
}

// Events returns a copy of the recorded events.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Count returns how many events named name were recorded.
func (m *Memory) Count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.events {
		if e.Name == name {
			n++
		}
	}
	return n
}
