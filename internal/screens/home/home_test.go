package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/moneypath/internal/router"
	"github.com/abhisek/moneypath/internal/screen"
	"github.com/abhisek/moneypath/internal/screens/pathmap"
	"github.com/abhisek/moneypath/internal/screens/settings"
)

func TestChatDisabledWithoutAssistant(t *testing.T) {
	h := New(&screen.Env{PathSlug: "money-basics"})
	if !h.menu.Items[2].Disabled {
		t.Error("chat should be disabled without an assistant")
	}
	if h.menu.Items[0].Hint != "money-basics" {
		t.Errorf("continue hint = %q", h.menu.Items[0].Hint)
	}
}

func TestContinueOpensPathMap(t *testing.T) {
	h := New(&screen.Env{PathSlug: "money-basics"})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*pathmap.PathMapScreen); !ok {
		t.Errorf("pushed %T, want path map", push.Screen)
	}
}

func TestDownSkipsDisabledChat(t *testing.T) {
	h := New(&screen.Env{})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*settings.SettingsScreen); !ok {
		t.Errorf("pushed %T, want settings", push.Screen)
	}
}

func TestViewShowsCompletedCount(t *testing.T) {
	h := New(&screen.Env{})
	h.Update(statsMsg{Completed: 3})
	if !strings.Contains(h.View(100, 30), "3 lessons completed") {
		t.Error("expected completed count in view")
	}
}
