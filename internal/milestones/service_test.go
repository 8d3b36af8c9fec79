package milestones

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/store"
)

type fakeProgress struct {
	completed []string
}

func (f *fakeProgress) CompletedCount(context.Context, string) (int, error) {
	return len(f.completed), nil
}

func (f *fakeProgress) CompletedLessonIDs(context.Context, string) ([]string, error) {
	return f.completed, nil
}

type fakeRepo struct {
	mu   sync.Mutex
	rows map[string]store.MilestoneRecord
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]store.MilestoneRecord)}
}

func (r *fakeRepo) Award(_ context.Context, m store.MilestoneRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := m.UserID + "|" + m.Code
	if _, ok := r.rows[key]; ok {
		return false, nil
	}
	r.rows[key] = m
	return true, nil
}

func (r *fakeRepo) List(_ context.Context, userID string) ([]store.MilestoneRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []store.MilestoneRecord
	for _, m := range r.rows {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func drain(s *Service) []Milestone {
	s.Close()
	var out []Milestone
	for {
		select {
		case m := <-s.Notifications():
			out = append(out, m)
		default:
			return out
		}
	}
}

func codes(ms []Milestone) map[string]bool {
	out := make(map[string]bool, len(ms))
	for _, m := range ms {
		out[m.Code] = true
	}
	return out
}

func testPath() *content.Path {
	return &content.Path{Slug: "credit-basics", Title: "Credit Basics", Modules: []content.Module{
		{Lessons: []content.LessonSummary{{ID: "l1", Slug: "a"}, {ID: "l2", Slug: "b"}}},
		{},
	}}
}

func TestFirstLessonEarnedOnce(t *testing.T) {
	prog := &fakeProgress{completed: []string{"l1"}}
	svc := NewService(prog, newFakeRepo(), nil, DefaultConfig())

	trig := Trigger{UserID: "u1", Kind: KindLesson, ID: "l1", Path: testPath()}
	svc.Evaluate(context.Background(), trig)
	svc.Evaluate(context.Background(), trig)

	got := drain(svc)
	if len(got) != 1 || got[0].Code != CodeFirstLesson {
		t.Fatalf("expected exactly first_lesson, got %+v", got)
	}
	if got[0].LessonID != "l1" || got[0].UserID != "u1" {
		t.Errorf("unexpected milestone fields: %+v", got[0])
	}
}

func TestPathCompleteAndCounts(t *testing.T) {
	prog := &fakeProgress{completed: []string{"l1", "l2", "x1", "x2", "x3"}}
	svc := NewService(prog, newFakeRepo(), nil, DefaultConfig())

	svc.Evaluate(context.Background(), Trigger{UserID: "u1", Kind: KindLesson, ID: "l2", Path: testPath()})
	got := codes(drain(svc))

	for _, want := range []string{CodeFirstLesson, CodeLessons5, PathCode("credit-basics")} {
		if !got[want] {
			t.Errorf("expected %s to be earned, got %v", want, got)
		}
	}
	if got[CodeLessons10] {
		t.Error("lessons_10 earned too early")
	}
}

func TestPathIncomplete(t *testing.T) {
	prog := &fakeProgress{completed: []string{"l1"}}
	svc := NewService(prog, newFakeRepo(), nil, DefaultConfig())

	svc.Evaluate(context.Background(), Trigger{UserID: "u1", Kind: KindLesson, ID: "l1", Path: testPath()})
	if codes(drain(svc))[PathCode("credit-basics")] {
		t.Error("path milestone earned with a lesson left")
	}
}

func TestUnknownKindIgnored(t *testing.T) {
	prog := &fakeProgress{completed: []string{"l1"}}
	svc := NewService(prog, newFakeRepo(), nil, DefaultConfig())
	svc.Evaluate(context.Background(), Trigger{UserID: "u1", Kind: "quiz", ID: "q1"})
	if got := drain(svc); len(got) != 0 {
		t.Fatalf("expected nothing, got %+v", got)
	}
}

func TestList(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(&fakeProgress{completed: []string{"l1"}}, repo, nil, Config{Timeout: time.Second})
	svc.Evaluate(context.Background(), Trigger{UserID: "u1", Kind: KindLesson, ID: "l1"})
	drain(svc)

	list, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Title == "" {
		t.Fatalf("unexpected list: %+v", list)
	}
	if list[0].Icon() == "" {
		t.Error("expected an icon")
	}
}

func TestSilentStoresWithoutPublishing(t *testing.T) {
	repo := newFakeRepo()
	cfg := DefaultConfig()
	cfg.Silent = true
	svc := NewService(&fakeProgress{completed: []string{"l1"}}, repo, nil, cfg)

	for _, user := range []string{"u1", "u2", "u3"} {
		svc.Evaluate(context.Background(), Trigger{UserID: user, Kind: KindLesson, ID: "l1", Path: testPath()})
	}
	if got := drain(svc); len(got) != 0 {
		t.Fatalf("silent service published %+v", got)
	}
	for _, user := range []string{"u1", "u2", "u3"} {
		list, err := svc.List(context.Background(), user)
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 1 || list[0].Code != CodeFirstLesson {
			t.Errorf("%s milestones = %+v", user, list)
		}
	}
}
