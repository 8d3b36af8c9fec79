package lesson

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/milestones"
	"github.com/abhisek/moneypath/internal/progress"
)

var errWrite = errors.New("store unavailable")

type memStore struct {
	mu      sync.Mutex
	records map[string]progress.Record
	err     error
	writes  int
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]progress.Record)}
}

func (m *memStore) Read(_ context.Context, userID, lessonID string) (*progress.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[userID+"/"+lessonID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memStore) Write(_ context.Context, rec progress.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.err != nil {
		return m.err
	}
	m.records[rec.UserID+"/"+rec.LessonID] = rec
	return nil
}

type recordingEvaluator struct {
	triggers []milestones.Trigger
}

func (r *recordingEvaluator) Evaluate(_ context.Context, t milestones.Trigger) {
	r.triggers = append(r.triggers, t)
}

type scrollCall struct {
	index   int
	animate bool
	top     bool
}

type fakeScroller struct {
	calls []scrollCall
}

func (f *fakeScroller) ScrollToIndex(index int, animate bool) {
	f.calls = append(f.calls, scrollCall{index: index, animate: animate})
}

func (f *fakeScroller) ScrollToTop() {
	f.calls = append(f.calls, scrollCall{top: true})
}

func (f *fakeScroller) last() scrollCall {
	return f.calls[len(f.calls)-1]
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func body() content.Blocks {
	return content.Blocks(`[{"_type":"block","children":[{"text":"Budgeting 101"}]}]`)
}

// fullLesson has every page.
func fullLesson(id string) *content.Lesson {
	return &content.Lesson{
		ID:           id,
		Slug:         id,
		Title:        "Lesson " + id,
		Type:         content.TypeReading,
		Body:         body(),
		KeyTakeaways: body(),
		Tasks: []content.Task{
			{Key: "req1"},
			{Key: "opt1", Optional: true},
		},
		Deliverables: []content.Task{{Key: "req2"}},
		Quiz: &content.Quiz{
			Title: "Check",
			Questions: []content.Question{
				{Text: "Pick b", Type: content.QuestionMultipleChoice, Options: []content.Option{{Text: "a"}, {Text: "b", Correct: true}}},
			},
		},
		Module: content.ModuleRef{ID: "m1"},
	}
}

func threeModulePath() *content.Path {
	return &content.Path{
		ID:    "path-1",
		Slug:  "credit-basics",
		Title: "Credit basics",
		Modules: []content.Module{
			{ID: "c", Title: "C", Order: 3, Lessons: []content.LessonSummary{{ID: "l3", Slug: "l3", Title: "L3", Order: 1}}},
			{ID: "a", Title: "A", Order: 1, Lessons: []content.LessonSummary{
				{ID: "l2", Slug: "l2", Title: "L2", Order: 2},
				{ID: "l1", Slug: "l1", Title: "L1", Order: 1},
			}},
			{ID: "b", Title: "B", Order: 2},
		},
	}
}
