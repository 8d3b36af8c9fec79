package lesson

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/moneypath/internal/analytics"
	"github.com/abhisek/moneypath/internal/auth"
	"github.com/abhisek/moneypath/internal/content"
	lsn "github.com/abhisek/moneypath/internal/lesson"
	"github.com/abhisek/moneypath/internal/progress"
	"github.com/abhisek/moneypath/internal/router"
	"github.com/abhisek/moneypath/internal/screen"
	"github.com/abhisek/moneypath/internal/screens/complete"
	"github.com/abhisek/moneypath/internal/settings"
)

// fakeContent serves documents from maps.
type fakeContent struct {
	paths   map[string]*content.Path
	lessons map[string]*content.Lesson
}

func (f *fakeContent) FetchPath(_ context.Context, slug string) (*content.Path, error) {
	return f.paths[slug], nil
}

func (f *fakeContent) FetchLesson(_ context.Context, slug string) (*content.Lesson, error) {
	return f.lessons[slug], nil
}

// fakeProgress is an in-memory screen.ProgressStore.
type fakeProgress struct {
	mu       sync.Mutex
	records  map[string]progress.Record
	failNext bool
	writes   int
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{records: make(map[string]progress.Record)}
}

func (f *fakeProgress) Read(_ context.Context, userID, lessonID string) (*progress.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[userID+"/"+lessonID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeProgress) Write(_ context.Context, rec progress.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.failNext {
		f.failNext = false
		return errors.New("disk full")
	}
	f.records[rec.UserID+"/"+rec.LessonID] = rec
	return nil
}

func (f *fakeProgress) ListByCourse(context.Context, string, string) ([]progress.Record, error) {
	return nil, nil
}

func (f *fakeProgress) CompletedCount(context.Context, string) (int, error) { return 0, nil }

func (f *fakeProgress) get(lessonID string) (progress.Record, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records["u1/"+lessonID]
	return rec, ok
}

func testLesson(id, slug string) *content.Lesson {
	return &content.Lesson{
		ID:     id,
		Slug:   slug,
		Title:  "Lesson " + id,
		Type:   content.TypeExercise,
		Module: content.ModuleRef{ID: "m1", Title: "Budgeting"},
		Tasks: []content.Task{
			{Key: "list-income"},
			{Key: "list-bills"},
			{Key: "share", Optional: true},
		},
		Quiz: &content.Quiz{Questions: []content.Question{{
			Text: "What comes first?",
			Type: content.QuestionMultipleChoice,
			Options: []content.Option{
				{Text: "Spending"},
				{Text: "Saving", Correct: true},
			},
		}}},
	}
}

func testEnv() (*screen.Env, *fakeProgress, *analytics.Memory) {
	path := &content.Path{
		ID: "p1", Slug: "money-basics", Title: "Money Basics",
		Modules: []content.Module{{
			ID: "m1", Title: "Budgeting", Order: 1,
			Lessons: []content.LessonSummary{
				{ID: "l1", Slug: "why-budget", Title: "Why budget", Order: 1},
				{ID: "l2", Slug: "track-spending", Title: "Track spending", Order: 2},
			},
		}},
	}
	store := newFakeProgress()
	events := &analytics.Memory{}
	env := &screen.Env{
		Content: &fakeContent{
			paths: map[string]*content.Path{"money-basics": path},
			lessons: map[string]*content.Lesson{
				"why-budget":     testLesson("l1", "why-budget"),
				"track-spending": testLesson("l2", "track-spending"),
			},
		},
		Progress:  store,
		Analytics: events,
		Identity:  &auth.Identity{UserID: "u1"},
	}
	return env, store, events
}

// staticSettings is a settings repo holding fixed values.
type staticSettings map[string]string

func (s staticSettings) All(context.Context) (map[string]string, error) { return s, nil }

func (s staticSettings) Set(_ context.Context, key, value string) error {
	s[key] = value
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// loaded returns a screen showing lesson slug with its load finished.
func loaded(t *testing.T, env *screen.Env, slug string) *LessonScreen {
	t.Helper()
	s := New(env, "money-basics", slug)
	s.Update(s.load(slug)())
	if !s.interactive() {
		t.Fatalf("lesson %s did not load: notFound=%q err=%v", slug, s.notFound, s.loadErr)
	}
	return s
}

// run executes cmd and feeds its message back to the screen.
func run(t *testing.T, s *LessonScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	s.Update(cmd())
}

func TestLoadingUntilResolved(t *testing.T) {
	env, _, _ := testEnv()
	s := New(env, "money-basics", "why-budget")
	if !strings.Contains(s.View(100, 30), "Loading") {
		t.Error("expected loading view before the lesson resolves")
	}

	s.Update(s.load("why-budget")())
	if s.loading || !s.viewer.Loaded() {
		t.Fatal("expected lesson to be showing")
	}
	pages := s.viewer.Pager.Pages()
	want := []lsn.Page{lsn.PageIntro, lsn.PageContent, lsn.PageActions, lsn.PageQuiz}
	if len(pages) != len(want) {
		t.Fatalf("pages = %v, want %v", pages, want)
	}
}

func TestNotFound(t *testing.T) {
	env, _, _ := testEnv()
	s := New(env, "money-basics", "missing")
	s.Update(s.load("missing")())

	view := s.View(100, 30)
	if !strings.Contains(view, "We couldn't find that lesson.") {
		t.Errorf("expected not-found message:\n%s", view)
	}
	if !strings.Contains(view, "esc") {
		t.Errorf("expected recovery hint:\n%s", view)
	}

	s = New(env, "no-such-path", "why-budget")
	s.Update(s.load("why-budget")())
	if !strings.Contains(s.View(100, 30), "learning path") {
		t.Error("expected path not-found message")
	}
}

func TestPagingKeys(t *testing.T) {
	env, _, _ := testEnv()
	s := loaded(t, env, "why-budget")

	s.Update(keyPress('l'))
	if s.viewer.Pager.Current() != lsn.PageContent {
		t.Errorf("after l: %v", s.viewer.Pager.Current())
	}
	s.Update(specialKey(tea.KeyRight))
	if s.viewer.Pager.Current() != lsn.PageActions {
		t.Errorf("after right: %v", s.viewer.Pager.Current())
	}
	s.Update(keyPress('h'))
	if s.viewer.Pager.Current() != lsn.PageContent {
		t.Errorf("after h: %v", s.viewer.Pager.Current())
	}
	s.Update(keyPress('4'))
	if s.viewer.Pager.Current() != lsn.PageQuiz {
		t.Errorf("after 4: %v", s.viewer.Pager.Current())
	}
	s.Update(keyPress('5'))
	if s.viewer.Pager.Current() != lsn.PageQuiz {
		t.Errorf("jumping past the last dot moved to %v", s.viewer.Pager.Current())
	}
}

func TestMouseDragSwipes(t *testing.T) {
	env, _, _ := testEnv()
	s := loaded(t, env, "why-budget")

	// Five cells is 40px, below the swipe threshold.
	s.Update(tea.MouseClickMsg{X: 40, Button: tea.MouseLeft})
	s.Update(tea.MouseReleaseMsg{X: 35, Button: tea.MouseLeft})
	if s.viewer.Pager.Current() != lsn.PageIntro {
		t.Fatalf("short drag changed page to %v", s.viewer.Pager.Current())
	}

	s.Update(tea.MouseClickMsg{X: 40, Button: tea.MouseLeft})
	s.Update(tea.MouseReleaseMsg{X: 20, Button: tea.MouseLeft})
	if s.viewer.Pager.Current() != lsn.PageContent {
		t.Errorf("leftward drag: %v, want content", s.viewer.Pager.Current())
	}

	s.Update(tea.MouseClickMsg{X: 20, Button: tea.MouseLeft})
	s.Update(tea.MouseReleaseMsg{X: 40, Button: tea.MouseLeft})
	if s.viewer.Pager.Current() != lsn.PageIntro {
		t.Errorf("rightward drag: %v, want intro", s.viewer.Pager.Current())
	}
}

func TestCompletionGate(t *testing.T) {
	env, store, events := testEnv()
	s := loaded(t, env, "why-budget")

	_, cmd := s.Update(keyPress('c'))
	if cmd != nil {
		t.Error("rejected completion should not write")
	}
	if !s.noticeBad || !strings.Contains(s.notice, "2 required") {
		t.Errorf("notice = %q", s.notice)
	}

	s.Update(keyPress('3'))
	_, cmd = s.Update(specialKey(tea.KeySpace))
	run(t, s, cmd)
	s.Update(keyPress('j'))
	_, cmd = s.Update(specialKey(tea.KeySpace))
	run(t, s, cmd)

	rec, ok := store.get("l1")
	if !ok || len(rec.CompletedTaskKeys) != 2 {
		t.Fatalf("stored record = %+v", rec)
	}

	_, cmd = s.Update(keyPress('c'))
	run(t, s, cmd)
	if !s.viewer.Gate.Completed() {
		t.Fatal("expected lesson completed")
	}
	if rec, _ := store.get("l1"); !rec.Completed || rec.CompletedAt == nil {
		t.Errorf("stored record not completed: %+v", rec)
	}
	if n := events.Count(analytics.LessonCompleted); n != 1 {
		t.Errorf("lesson_completed events = %d, want 1", n)
	}
	if s.noticeBad {
		t.Errorf("unexpected error notice %q", s.notice)
	}

	// Reopening is always allowed.
	_, cmd = s.Update(keyPress('c'))
	run(t, s, cmd)
	if s.viewer.Gate.Completed() {
		t.Error("expected lesson reopened")
	}
}

func TestFailedWriteRollsBack(t *testing.T) {
	env, store, _ := testEnv()
	s := loaded(t, env, "why-budget")

	s.Update(keyPress('3'))
	store.failNext = true
	_, cmd := s.Update(specialKey(tea.KeySpace))
	if !s.viewer.Gate.IsChecked("list-income") {
		t.Fatal("task should be checked before the write finishes")
	}

	_, resync := s.Update(cmd())
	if s.viewer.Gate.IsChecked("list-income") {
		t.Error("task still checked after failed write")
	}
	if !s.noticeBad || !strings.Contains(s.notice, "couldn't save") {
		t.Errorf("notice = %q", s.notice)
	}

	run(t, s, resync)
	if rec, ok := store.get("l1"); !ok || len(rec.CompletedTaskKeys) != 0 {
		t.Errorf("resync stored %+v", rec)
	}
}

func TestStaleWriteDroppedAfterLessonChange(t *testing.T) {
	env, store, _ := testEnv()
	s := loaded(t, env, "why-budget")

	s.Update(keyPress('3'))
	store.failNext = true
	_, cmd := s.Update(specialKey(tea.KeySpace))
	saved := cmd()

	s.lessonSlug = "track-spending"
	s.Update(s.load("track-spending")())
	if s.viewer.LessonID() != "l2" {
		t.Fatalf("showing %q, want l2", s.viewer.LessonID())
	}

	_, resync := s.Update(saved)
	if resync != nil {
		t.Error("stale result should not trigger a resync")
	}
	if s.noticeBad {
		t.Errorf("stale result set notice %q", s.notice)
	}
}

func TestQuiz(t *testing.T) {
	env, _, events := testEnv()
	s := loaded(t, env, "why-budget")
	s.Update(keyPress('4'))

	s.Update(keyPress('s'))
	if !strings.Contains(s.notice, "Answer every question") {
		t.Errorf("notice = %q", s.notice)
	}

	s.Update(keyPress('j'))
	s.Update(specialKey(tea.KeySpace))
	s.Update(keyPress('s'))
	if res := s.viewer.Quiz.Result(); res == nil || res.Correct != 1 {
		t.Fatalf("result = %+v", res)
	}
	if !strings.Contains(s.notice, "1 of 1") {
		t.Errorf("notice = %q", s.notice)
	}
	if n := events.Count(analytics.QuizSubmitted); n != 1 {
		t.Errorf("quiz_submitted events = %d", n)
	}

	s.Update(keyPress('r'))
	if s.viewer.Quiz.Result() != nil {
		t.Error("expected quiz reset")
	}
}

func TestFinalAction(t *testing.T) {
	env, _, _ := testEnv()
	s := loaded(t, env, "why-budget")

	if _, cmd := s.Update(keyPress('n')); cmd != nil {
		t.Error("n before the last page should do nothing")
	}

	s.Update(keyPress('4'))
	_, cmd := s.Update(keyPress('n'))
	if cmd == nil || !s.loading || s.lessonSlug != "track-spending" {
		t.Fatalf("expected next lesson to load, slug=%q loading=%v", s.lessonSlug, s.loading)
	}
	s.Update(s.load("track-spending")())
	if s.viewer.LessonID() != "l2" || s.viewer.Pager.Current() != lsn.PageIntro {
		t.Fatalf("showing %q on %v", s.viewer.LessonID(), s.viewer.Pager.Current())
	}

	s.Update(keyPress('4'))
	_, cmd = s.Update(keyPress('n'))
	if cmd == nil {
		t.Fatal("expected complete course command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := msg.Screen.(*complete.CompleteScreen); !ok {
		t.Errorf("replaced with %T", msg.Screen)
	}
}

func TestPremiumLocked(t *testing.T) {
	env, _, _ := testEnv()
	locked := testLesson("l1", "why-budget")
	locked.Premium = true
	env.Content.(*fakeContent).lessons["why-budget"] = locked

	s := loaded(t, env, "why-budget")
	if !s.viewer.PremiumRequired {
		t.Fatal("expected premium lock without an access checker")
	}
	if len(s.viewer.Pager.Pages()) != 1 {
		t.Errorf("locked pages = %v", s.viewer.Pager.Pages())
	}
	if !strings.Contains(s.View(100, 30), "Premium") {
		t.Error("expected premium message on intro")
	}

	s.Update(keyPress('c'))
	if !strings.Contains(s.notice, "Premium") {
		t.Errorf("notice = %q", s.notice)
	}
}

func TestReducedMotionDisablesSlide(t *testing.T) {
	env, _, _ := testEnv()
	s := loaded(t, env, "why-budget")
	s.View(100, 30)

	_, cmd := s.Update(keyPress('l'))
	if cmd == nil || !s.slide.animating() {
		t.Fatal("expected slide animation")
	}
	for s.slide.animating() {
		s.Update(slideTickMsg{})
	}

	s.viewer.Pager.SetAnimate(false)
	if _, cmd := s.Update(keyPress('l')); cmd != nil || s.slide.animating() {
		t.Error("expected no animation with animation off")
	}
}

func TestLabelsFollowLocale(t *testing.T) {
	env, _, _ := testEnv()
	st, err := settings.Load(context.Background(), staticSettings{}, "es")
	if err != nil {
		t.Fatal(err)
	}
	env.Settings = st
	yes := true
	lesson := env.Content.(*fakeContent).lessons["why-budget"]
	lesson.Quiz = &content.Quiz{Questions: []content.Question{{
		Text: "Un presupuesto ayuda a ahorrar.", Type: content.QuestionTrueFalse, CorrectAnswer: &yes,
	}}}

	s := loaded(t, env, "why-budget")
	if got := s.choices[0].Options; len(got) != 2 || got[0] != "Verdadero" || got[1] != "Falso" {
		t.Errorf("options = %q", got)
	}
	var descs []string
	for _, h := range s.KeyHints() {
		descs = append(descs, h.Description)
	}
	joined := strings.Join(descs, ",")
	for _, want := range []string{"Página", "Volver"} {
		if !strings.Contains(joined, want) {
			t.Errorf("hints %q missing %q", joined, want)
		}
	}
	if strings.Contains(joined, "Back") {
		t.Errorf("hints %q still in English", joined)
	}
}
