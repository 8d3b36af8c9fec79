package lesson

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/moneypath/internal/analytics"
	"github.com/abhisek/moneypath/internal/progress"
)

func newTestViewer() (*Viewer, *memStore, *analytics.Memory, *fakeScroller) {
	st := newMemStore()
	events := &analytics.Memory{}
	sc := &fakeScroller{}
	v := NewViewer("u1", sc, Deps{Store: st, Analytics: events, Now: fixedClock(time.Now())})
	return v, st, events, sc
}

func TestViewerLessonSwitchResets(t *testing.T) {
	v, _, _, sc := newTestViewer()
	path := threeModulePath()

	v.Load(path, fullLesson("l1"), nil, false)
	if err := v.Pager.GoTo(PageActions); err != nil {
		t.Fatal(err)
	}
	_, _ = v.ToggleTask("req1", true)
	_ = v.Quiz.Select(0, 1)

	// Reloading the same lesson keeps local state.
	v.Load(path, fullLesson("l1"), nil, false)
	if v.Pager.Current() != PageActions || !v.Gate.IsChecked("req1") {
		t.Fatal("reloading the same lesson reset its state")
	}

	v.Load(path, fullLesson("l2"), nil, false)
	if v.Pager.Current() != PageIntro {
		t.Errorf("current = %v after switching lesson, want intro", v.Pager.Current())
	}
	if !sc.last().top {
		t.Error("expected scroll to top on lesson switch")
	}
	if v.Gate.IsChecked("req1") || v.Gate.LessonID() != "l2" {
		t.Error("gate carried over from the previous lesson")
	}
	if v.Quiz.Answer(0).Answered() {
		t.Error("quiz answers carried over from the previous lesson")
	}
	if v.Neighbors.Previous == nil || v.Neighbors.Previous.Slug != "l1" {
		t.Errorf("neighbors = %+v", v.Neighbors)
	}
}

func TestViewerDropsStaleWrites(t *testing.T) {
	v, st, _, _ := newTestViewer()
	path := threeModulePath()
	ctx := context.Background()

	v.Load(path, fullLesson("l1"), nil, false)
	w, err := v.ToggleTask("req1", true)
	if err != nil {
		t.Fatal(err)
	}
	if err := v.Gate.Persist(ctx, w); err != nil {
		t.Fatal(err)
	}

	v.Load(path, fullLesson("l2"), nil, false)
	_, _ = v.ToggleTask("req1", true)

	// The failed write from l1 arrives after l2 is showing.
	if v.Settle(ctx, w, errWrite) {
		t.Error("stale write should not roll back")
	}
	if !v.Gate.IsChecked("req1") {
		t.Error("stale result changed the new lesson's state")
	}
	if !v.Stale(w) {
		t.Error("expected write to be stale")
	}
	if st.writes != 1 {
		t.Errorf("writes = %d, want 1", st.writes)
	}
}

func TestViewerSettleRollsBackCurrentLesson(t *testing.T) {
	v, _, _, _ := newTestViewer()
	v.Load(threeModulePath(), fullLesson("l1"), nil, false)

	w, _ := v.ToggleTask("req1", true)
	if !v.Settle(context.Background(), w, errWrite) {
		t.Error("expected rollback")
	}
	if v.Gate.IsChecked("req1") {
		t.Error("task still checked after rollback")
	}
}

func TestViewerPremiumLocked(t *testing.T) {
	v, _, _, _ := newTestViewer()
	l := fullLesson("l1")
	l.Premium = true

	v.Load(threeModulePath(), l, nil, false)
	if !v.PremiumRequired || v.Gate != nil || v.Quiz != nil {
		t.Fatal("expected locked viewer")
	}
	if pages := v.Pager.Pages(); len(pages) != 1 || pages[0] != PageIntro {
		t.Errorf("locked pages = %v", pages)
	}
	if _, err := v.ToggleTask("req1", true); !errors.Is(err, ErrPremiumRequired) {
		t.Errorf("toggle task err = %v", err)
	}
	if _, err := v.ToggleCompletion(); !errors.Is(err, ErrPremiumRequired) {
		t.Errorf("toggle completion err = %v", err)
	}
	if _, err := v.SubmitQuiz(context.Background()); !errors.Is(err, ErrPremiumRequired) {
		t.Errorf("submit quiz err = %v", err)
	}

	// Gaining access rebuilds the full lesson.
	v.Load(threeModulePath(), l, nil, true)
	if v.PremiumRequired || v.Gate == nil || len(v.Pager.Pages()) != 5 {
		t.Error("expected unlocked viewer")
	}
}

func TestViewerUnknownTask(t *testing.T) {
	v, _, _, _ := newTestViewer()
	v.Load(threeModulePath(), fullLesson("l1"), nil, false)
	if _, err := v.ToggleTask("nope", true); err == nil {
		t.Error("expected error for unknown task key")
	}
}

func TestViewerFinalAction(t *testing.T) {
	v, _, _, _ := newTestViewer()
	path := threeModulePath()

	v.Load(path, fullLesson("l2"), nil, false)
	if v.FinalAction() != FinalNone {
		t.Errorf("final action on intro = %v", v.FinalAction())
	}
	for v.Pager.Next() {
	}
	if v.FinalAction() != FinalNextLesson {
		t.Errorf("final action = %v, want next_lesson", v.FinalAction())
	}
	if got := v.NextURL(); got != "/courses/credit-basics/lessons/l3" {
		t.Errorf("NextURL = %q", got)
	}
	if got := v.PreviousURL(); got != "/courses/credit-basics/lessons/l1" {
		t.Errorf("PreviousURL = %q", got)
	}

	v.Load(path, fullLesson("l3"), nil, false)
	for v.Pager.Next() {
	}
	if v.FinalAction() != FinalCompleteCourse || v.NextURL() != "" {
		t.Errorf("final action = %v, next = %q", v.FinalAction(), v.NextURL())
	}
}

func TestViewerLoadsPersistedProgress(t *testing.T) {
	v, _, _, _ := newTestViewer()
	rec := &progress.Record{UserID: "u1", LessonID: "l1", CompletedTaskKeys: []string{"req1", "req2"}}
	v.Load(threeModulePath(), fullLesson("l1"), rec, false)
	if !v.Gate.CanComplete() {
		t.Error("expected persisted tasks to satisfy the gate")
	}
}

func TestViewerSubmitQuizRecordsOnce(t *testing.T) {
	v, _, events, _ := newTestViewer()
	v.Load(threeModulePath(), fullLesson("l1"), nil, false)

	if _, err := v.SubmitQuiz(context.Background()); !errors.Is(err, ErrQuizUnanswered) {
		t.Fatalf("err = %v, want ErrQuizUnanswered", err)
	}
	_ = v.Quiz.Select(0, 1)
	for i := 0; i < 2; i++ {
		res, err := v.SubmitQuiz(context.Background())
		if err != nil || res.Correct != 1 {
			t.Fatalf("submit %d: %+v %v", i, res, err)
		}
	}
	if n := events.Count(analytics.QuizSubmitted); n != 1 {
		t.Errorf("quiz_submitted events = %d, want 1", n)
	}
}
