package pathmap

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/router"
	"github.com/abhisek/moneypath/internal/screen"
	lessonscreen "github.com/abhisek/moneypath/internal/screens/lesson"
)

type fakeContent struct{ path *content.Path }

func (f fakeContent) FetchPath(_ context.Context, slug string) (*content.Path, error) {
	if f.path == nil || f.path.Slug != slug {
		return nil, nil
	}
	return f.path, nil
}

func (fakeContent) FetchLesson(context.Context, string) (*content.Lesson, error) { return nil, nil }

func testPath() *content.Path {
	return &content.Path{
		ID: "p1", Slug: "money-basics", Title: "Money Basics",
		Modules: []content.Module{
			{ID: "m2", Title: "Saving", Order: 2, Lessons: []content.LessonSummary{
				{ID: "l3", Slug: "emergency-fund", Title: "Emergency fund", Order: 1, Premium: true},
			}},
			{ID: "m1", Title: "Budgeting", Order: 1, Lessons: []content.LessonSummary{
				{ID: "l2", Slug: "track-spending", Title: "Track spending", Order: 2},
				{ID: "l1", Slug: "why-budget", Title: "Why budget", Order: 1},
			}},
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func loadedScreen(done map[string]bool) *PathMapScreen {
	env := &screen.Env{Content: fakeContent{path: testPath()}}
	s := New(env, "money-basics")
	s.Update(pathLoadedMsg{Path: testPath().Sorted(), Done: done})
	return s
}

func TestRowsSortedAndCursorOnFirstIncomplete(t *testing.T) {
	s := loadedScreen(map[string]bool{"l1": true})

	var order []string
	for _, r := range s.rows {
		if r.kind == rowLesson {
			order = append(order, r.lesson.ID)
		}
	}
	if strings.Join(order, ",") != "l1,l2,l3" {
		t.Errorf("lesson order = %v", order)
	}
	if s.rows[s.cursor].lesson.ID != "l2" {
		t.Errorf("cursor on %s, want l2", s.rows[s.cursor].lesson.ID)
	}
}

func TestCursorSkipsHeaders(t *testing.T) {
	s := loadedScreen(nil)
	s.Update(keyPress('j'))
	s.Update(keyPress('j'))
	if s.rows[s.cursor].lesson.ID != "l3" {
		t.Errorf("cursor on %s, want l3", s.rows[s.cursor].lesson.ID)
	}
	s.Update(keyPress('j'))
	if s.rows[s.cursor].lesson.ID != "l3" {
		t.Error("cursor moved past the last lesson")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.rows[s.cursor].lesson.ID != "l1" {
		t.Errorf("tab wrapped to %s, want l1", s.rows[s.cursor].lesson.ID)
	}
}

func TestEnterOpensLesson(t *testing.T) {
	s := loadedScreen(nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if !s.stale {
		t.Error("expected marks to reload after returning")
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		batch = tea.BatchMsg{func() tea.Msg { return msg }}
	}
	found := false
	for _, c := range batch {
		if c == nil {
			continue
		}
		if push, ok := c().(router.PushScreenMsg); ok {
			_, found = push.Screen.(*lessonscreen.LessonScreen)
		}
	}
	if !found {
		t.Error("expected a lesson screen to be pushed")
	}
}

func TestViewMarks(t *testing.T) {
	s := loadedScreen(map[string]bool{"l1": true})
	view := s.View(100, 20)
	for _, want := range []string{"BUDGETING", "✓", "🔒", "1/3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestInitMissingPath(t *testing.T) {
	env := &screen.Env{Content: fakeContent{}}
	s := New(env, "nope")
	s.Update(s.Init()())
	if !strings.Contains(s.View(100, 20), "learning path") {
		t.Error("expected path not-found message")
	}
}
