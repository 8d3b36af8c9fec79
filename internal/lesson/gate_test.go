package lesson

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/abhisek/moneypath/internal/analytics"
	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/milestones"
	"github.com/abhisek/moneypath/internal/progress"
)

type gateFixture struct {
	gate   *Gate
	store  *memStore
	events *analytics.Memory
	ms     *recordingEvaluator
}

func newGateFixture(t *testing.T, l *content.Lesson, rec *progress.Record) *gateFixture {
	t.Helper()
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f := &gateFixture{store: newMemStore(), events: &analytics.Memory{}, ms: &recordingEvaluator{}}
	f.gate = NewGate(l, threeModulePath(), "u1", rec, started, Deps{
		Store:      f.store,
		Analytics:  f.events,
		Milestones: f.ms,
		Now:        fixedClock(started.Add(90 * time.Second)),
	})
	return f
}

func (f *gateFixture) toggleTask(t *testing.T, key string, checked bool) {
	t.Helper()
	w := f.gate.ToggleTask(key, checked)
	if err := f.gate.Apply(context.Background(), w); err != nil {
		t.Fatalf("apply toggle %s: %v", key, err)
	}
}

func (f *gateFixture) toggleCompletion(t *testing.T) error {
	t.Helper()
	w, err := f.gate.ToggleCompletion(time.Now())
	if err != nil {
		return err
	}
	if err := f.gate.Apply(context.Background(), w); err != nil {
		t.Fatalf("apply completion: %v", err)
	}
	return nil
}

func TestRequiredKeys(t *testing.T) {
	got := RequiredKeys(fullLesson("l1"))
	if !slices.Equal(got, []string{"req1", "req2"}) {
		t.Errorf("RequiredKeys = %v, want [req1 req2]", got)
	}
	if got := RequiredKeys(&content.Lesson{ID: "x"}); len(got) != 0 {
		t.Errorf("RequiredKeys of lesson without tasks = %v", got)
	}
}

func TestGateRequiresEveryRequiredTask(t *testing.T) {
	tests := []struct {
		name    string
		checked []string
		ok      bool
	}{
		{"both required", []string{"req1", "req2"}, true},
		{"required and optional", []string{"req1", "req2", "opt1"}, true},
		{"one required and optional", []string{"req1", "opt1"}, false},
		{"none", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGateFixture(t, fullLesson("l1"), nil)
			for _, k := range tt.checked {
				f.toggleTask(t, k, true)
			}

			err := f.toggleCompletion(t)
			if tt.ok {
				if err != nil {
					t.Fatalf("completion rejected: %v", err)
				}
				if !f.gate.Completed() {
					t.Error("expected lesson completed")
				}
				return
			}

			var incomplete *ErrTasksIncomplete
			if !errors.As(err, &incomplete) {
				t.Fatalf("err = %v, want ErrTasksIncomplete", err)
			}
			if f.gate.Completed() {
				t.Error("rejected completion changed local state")
			}
			rec, _ := f.store.Read(context.Background(), "u1", "l1")
			if rec != nil && rec.Completed {
				t.Error("rejected completion reached the store")
			}
		})
	}
}

func TestGateRejectionListsMissing(t *testing.T) {
	f := newGateFixture(t, fullLesson("l1"), nil)
	f.toggleTask(t, "req1", true)

	_, err := f.gate.ToggleCompletion(time.Now())
	var incomplete *ErrTasksIncomplete
	if !errors.As(err, &incomplete) || !slices.Equal(incomplete.Missing, []string{"req2"}) {
		t.Fatalf("err = %v, want missing [req2]", err)
	}
}

func TestGateTaskToggleIdempotent(t *testing.T) {
	f := newGateFixture(t, fullLesson("l1"), nil)

	f.toggleTask(t, "req1", true)
	if w := f.gate.ToggleTask("req1", true); w != nil {
		t.Errorf("second check returned write %+v, want nil", w)
	}
	if !slices.Equal(f.gate.CheckedKeys(), []string{"req1"}) {
		t.Errorf("checked = %v", f.gate.CheckedKeys())
	}
	if f.store.writes != 1 {
		t.Errorf("writes = %d, want 1", f.store.writes)
	}
}

func TestGateCompletionSideEffectsFireOnce(t *testing.T) {
	f := newGateFixture(t, fullLesson("l1"), nil)
	f.toggleTask(t, "req1", true)
	f.toggleTask(t, "req2", true)

	for i := 0; i < 3; i++ {
		if err := f.toggleCompletion(t); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
	}
	if !f.gate.Completed() {
		t.Fatal("expected completed after odd number of toggles")
	}

	if n := f.events.Count(analytics.LessonCompleted); n != 1 {
		t.Errorf("lesson_completed events = %d, want 1", n)
	}
	if len(f.ms.triggers) != 1 {
		t.Fatalf("milestone triggers = %d, want 1", len(f.ms.triggers))
	}
	want := milestones.Trigger{UserID: "u1", Kind: milestones.KindLesson, ID: "l1"}
	got := f.ms.triggers[0]
	if got.UserID != want.UserID || got.Kind != want.Kind || got.ID != want.ID || got.Path == nil {
		t.Errorf("trigger = %+v", got)
	}

	props := f.events.Events()[0].Properties
	if props["lesson_id"] != "l1" || props["title"] != "Lesson l1" || props["elapsed_seconds"] != 90 {
		t.Errorf("event properties = %v", props)
	}
}

func TestGateAlreadyCompleteDoesNotRefire(t *testing.T) {
	done := time.Now()
	rec := &progress.Record{UserID: "u1", LessonID: "l1", Completed: true, CompletedTaskKeys: []string{"req1", "req2"}, CompletedAt: &done}
	f := newGateFixture(t, fullLesson("l1"), rec)

	if err := f.toggleCompletion(t); err != nil {
		t.Fatal(err)
	}
	if err := f.toggleCompletion(t); err != nil {
		t.Fatal(err)
	}
	if n := f.events.Count(analytics.LessonCompleted); n != 0 {
		t.Errorf("lesson_completed events = %d, want 0", n)
	}
	if len(f.ms.triggers) != 0 {
		t.Errorf("milestone triggers = %d, want 0", len(f.ms.triggers))
	}
}

func TestGateReopenedLessonDoesNotRefireAfterReload(t *testing.T) {
	f := newGateFixture(t, fullLesson("l1"), nil)
	f.toggleTask(t, "req1", true)
	f.toggleTask(t, "req2", true)
	if err := f.toggleCompletion(t); err != nil {
		t.Fatal(err)
	}

	// Each request builds a fresh gate from the stored record.
	reload := func() {
		rec, err := f.store.Read(context.Background(), "u1", "l1")
		if err != nil {
			t.Fatal(err)
		}
		f.gate = NewGate(fullLesson("l1"), threeModulePath(), "u1", rec, time.Now(), Deps{
			Store:      f.store,
			Analytics:  f.events,
			Milestones: f.ms,
		})
	}

	reload()
	if err := f.toggleCompletion(t); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	stored, _ := f.store.Read(context.Background(), "u1", "l1")
	if stored.Completed || stored.CompletedAt != nil || stored.FirstCompletedAt == nil {
		t.Fatalf("stored after reopen = %+v", stored)
	}

	reload()
	if err := f.toggleCompletion(t); err != nil {
		t.Fatalf("complete again: %v", err)
	}
	if !f.gate.Completed() {
		t.Fatal("expected completed")
	}
	if n := f.events.Count(analytics.LessonCompleted); n != 1 {
		t.Errorf("lesson_completed events = %d, want 1", n)
	}
	if len(f.ms.triggers) != 1 {
		t.Errorf("milestone triggers = %d, want 1", len(f.ms.triggers))
	}
}

func TestGateReopenIsUnconditional(t *testing.T) {
	done := time.Now()
	// The record predates a new required task.
	rec := &progress.Record{UserID: "u1", LessonID: "l1", Completed: true, CompletedTaskKeys: []string{"req1"}, CompletedAt: &done}
	f := newGateFixture(t, fullLesson("l1"), rec)

	if err := f.toggleCompletion(t); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if f.gate.Completed() {
		t.Error("expected reopened lesson")
	}
	stored, _ := f.store.Read(context.Background(), "u1", "l1")
	if stored.Completed || stored.CompletedAt != nil {
		t.Errorf("stored = %+v", stored)
	}
}

func TestGateTasksToggleAfterCompletion(t *testing.T) {
	f := newGateFixture(t, fullLesson("l1"), nil)
	f.toggleTask(t, "req1", true)
	f.toggleTask(t, "req2", true)
	if err := f.toggleCompletion(t); err != nil {
		t.Fatal(err)
	}

	f.toggleTask(t, "req1", false)
	if !f.gate.Completed() {
		t.Error("unchecking a task must not reopen the lesson")
	}
	if f.gate.IsChecked("req1") {
		t.Error("req1 still checked")
	}
}

func TestGateRollbackOnWriteError(t *testing.T) {
	f := newGateFixture(t, fullLesson("l1"), nil)
	f.toggleTask(t, "req1", true)
	f.store.err = errWrite

	w := f.gate.ToggleTask("req2", true)
	if !f.gate.IsChecked("req2") {
		t.Fatal("toggle should apply locally before the write")
	}
	if err := f.gate.Apply(context.Background(), w); !errors.Is(err, errWrite) {
		t.Fatalf("apply err = %v", err)
	}
	if f.gate.IsChecked("req2") {
		t.Error("failed write was not rolled back")
	}
	if !f.gate.IsChecked("req1") {
		t.Error("rollback touched an unrelated task")
	}

	// A failed completion write restores the incomplete state and fires nothing.
	f.store.err = nil
	f.toggleTask(t, "req2", true)
	f.store.err = errWrite
	w, err := f.gate.ToggleCompletion(time.Now())
	if err != nil {
		t.Fatal(err)
	}
	_ = f.gate.Apply(context.Background(), w)
	if f.gate.Completed() {
		t.Error("failed completion was not rolled back")
	}
	if n := f.events.Count(analytics.LessonCompleted); n != 0 {
		t.Errorf("lesson_completed events = %d after failed write", n)
	}

	// The celebration edge is still available after a failed attempt.
	f.store.err = nil
	if err := f.toggleCompletion(t); err != nil {
		t.Fatal(err)
	}
	if n := f.events.Count(analytics.LessonCompleted); n != 1 {
		t.Errorf("lesson_completed events = %d, want 1", n)
	}
}

func TestGatePersistSendsLatestState(t *testing.T) {
	f := newGateFixture(t, fullLesson("l1"), nil)

	first := f.gate.ToggleTask("req1", true)
	second := f.gate.ToggleTask("req2", true)

	// Acknowledgements arrive out of order.
	if err := f.gate.Persist(context.Background(), second); err != nil {
		t.Fatal(err)
	}
	if err := f.gate.Persist(context.Background(), first); err != nil {
		t.Fatal(err)
	}

	rec, _ := f.store.Read(context.Background(), "u1", "l1")
	if !slices.Equal(rec.CompletedTaskKeys, []string{"req1", "req2"}) {
		t.Errorf("stored keys = %v", rec.CompletedTaskKeys)
	}
	if rec.CourseID != "path-1" || rec.ModuleID != "m1" {
		t.Errorf("stored ids = %q/%q", rec.CourseID, rec.ModuleID)
	}
}

func TestGateLessonWithoutTasksCompletes(t *testing.T) {
	f := newGateFixture(t, &content.Lesson{ID: "l9", Title: "Intro"}, nil)
	if !f.gate.CanComplete() {
		t.Fatal("lesson without tasks should be completable")
	}
	if err := f.toggleCompletion(t); err != nil {
		t.Fatal(err)
	}
}

func TestGatePersistWithoutStore(t *testing.T) {
	g := NewGate(fullLesson("l1"), nil, "u1", nil, time.Now(), Deps{})
	w := g.ToggleTask("req1", true)
	if err := g.Apply(context.Background(), w); err == nil {
		t.Fatal("expected error without a store")
	}
	if g.IsChecked("req1") {
		t.Error("expected rollback")
	}
}
