package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/moneypath/internal/auth"
	"github.com/abhisek/moneypath/internal/milestones"
	"github.com/abhisek/moneypath/internal/router"
	"github.com/abhisek/moneypath/internal/screen"
)

type stubScreen struct {
	title     string
	capturing bool
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "body of " + s.title }
func (s *stubScreen) Title() string                           { return s.title }
func (s *stubScreen) CapturingInput() bool                    { return s.capturing }

func newModel() AppModel {
	env := &screen.Env{Identity: &auth.Identity{UserID: "u1"}}
	m := NewAppModel(env, &stubScreen{title: "Home"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(AppModel)
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestMilestoneToastExpires(t *testing.T) {
	m := newModel()
	m, _ = update(m, milestoneMsg(milestones.Milestone{Code: milestones.CodeFirstLesson, Title: "First lesson complete", UserID: "u1"}))
	if !strings.Contains(m.toast, "First lesson complete") {
		t.Fatalf("toast = %q", m.toast)
	}

	// An expiry from an older toast leaves the newer one up.
	m, _ = update(m, milestoneMsg(milestones.Milestone{Code: milestones.CodeLessons5, Title: "Five lessons complete", UserID: "u1"}))
	m, _ = update(m, toastExpiredMsg{seq: 1})
	if !strings.Contains(m.toast, "Five lessons") {
		t.Errorf("newer toast cleared early: %q", m.toast)
	}
	m, _ = update(m, toastExpiredMsg{seq: 2})
	if m.toast != "" {
		t.Errorf("toast = %q, want cleared", m.toast)
	}
}

func TestMilestoneForOtherUserIgnored(t *testing.T) {
	m := newModel()
	m, _ = update(m, milestoneMsg(milestones.Milestone{Title: "x", UserID: "someone-else"}))
	if m.toast != "" {
		t.Errorf("toast = %q, want none", m.toast)
	}
}

func TestEscAndQPop(t *testing.T) {
	m := newModel()
	m, _ = update(m, router.PushScreenMsg{Screen: &stubScreen{title: "Lesson"}})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d", m.router.Depth())
	}

	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop")
	}
	_, cmd = update(m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("q should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("q should pop")
	}
}

func TestQTypedIntoCapturingScreen(t *testing.T) {
	m := newModel()
	m, _ = update(m, router.PushScreenMsg{Screen: &stubScreen{title: "Chat", capturing: true}})
	_, cmd := update(m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Error("q should reach the screen while it captures input")
		}
	}
}

func TestViewFrame(t *testing.T) {
	m := newModel()
	view := m.View()
	if !view.AltScreen {
		t.Error("expected alt screen")
	}
	if view.MouseMode != tea.MouseModeCellMotion {
		t.Error("expected cell motion mouse mode")
	}
}
