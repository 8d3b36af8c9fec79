package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/moneypath/internal/store"
)

type fakeAppender struct {
	got []store.AnalyticsEventData
	err error
}

func (f *fakeAppender) AppendAnalytics(_ context.Context, data store.AnalyticsEventData) error {
	if f.err != nil {
		return f.err
	}
	f.got = append(f.got, data)
	return nil
}

func TestStoreSinkWrites(t *testing.T) {
	repo := &fakeAppender{}
	sink := NewStoreSink(repo, nil)

	sink.Record(context.Background(), Event{
		UserID:     "u1",
		Name:       LessonCompleted,
		Properties: map[string]any{"lesson_id": "l1"},
	})

	if len(repo.got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.got))
	}
	if repo.got[0].Name != LessonCompleted || repo.got[0].Properties["lesson_id"] != "l1" {
		t.Errorf("unexpected event: %+v", repo.got[0])
	}
}

func TestStoreSinkSwallowsErrors(t *testing.T) {
	sink := NewStoreSink(&fakeAppender{err: errors.New("disk full")}, nil)
	// Must not panic or block.
	sink.Record(context.Background(), Event{Name: LessonCompleted})
}

func TestMemoryCount(t *testing.T) {
	var m Memory
	m.Record(context.Background(), Event{Name: LessonCompleted})
	m.Record(context.Background(), Event{Name: QuizSubmitted})
	m.Record(context.Background(), Event{Name: LessonCompleted})
	if m.Count(LessonCompleted) != 2 {
		t.Errorf("expected 2 lesson_completed, got %d", m.Count(LessonCompleted))
	}
	if len(m.Events()) != 3 {
		t.Errorf("expected 3 events, got %d", len(m.Events()))
	}
}
