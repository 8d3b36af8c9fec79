package settings

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/moneypath/internal/screen"
	appsettings "github.com/abhisek/moneypath/internal/settings"
	"github.com/abhisek/moneypath/internal/ui/theme"
)

type memRepo struct {
	values map[string]string
	fail   bool
}

func (m *memRepo) All(context.Context) (map[string]string, error) {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func (m *memRepo) Set(_ context.Context, key, value string) error {
	if m.fail {
		return errors.New("disk full")
	}
	m.values[key] = value
	return nil
}

func newScreen(t *testing.T, repo *memRepo) *SettingsScreen {
	t.Helper()
	st, err := appsettings.Load(context.Background(), repo, "en")
	if err != nil {
		t.Fatal(err)
	}
	return New(&screen.Env{Settings: st})
}

// press sends key and runs the resulting save.
func press(s *SettingsScreen, key tea.KeyPressMsg) {
	_, cmd := s.Update(key)
	if cmd != nil {
		s.Update(cmd())
	}
}

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
)

func TestToggleHighContrast(t *testing.T) {
	t.Cleanup(func() { theme.SetHighContrast(false) })
	repo := &memRepo{values: map[string]string{}}
	s := newScreen(t, repo)

	press(s, enter)
	if !s.env.Settings.HighContrast() || !theme.IsHighContrast() {
		t.Fatal("expected high contrast on")
	}
	if repo.values[appsettings.KeyHighContrast] != "true" {
		t.Error("setting not written through")
	}
	if s.notice != "Saved." {
		t.Errorf("notice = %q", s.notice)
	}
	if s.menu.Items[0].Hint != "On" {
		t.Errorf("hint = %q, want On", s.menu.Items[0].Hint)
	}
}

func TestToggleReducedMotionKeepsSelection(t *testing.T) {
	s := newScreen(t, &memRepo{values: map[string]string{}})
	press(s, down)
	press(s, enter)
	if !s.env.Settings.ReducedMotion() {
		t.Error("expected reduced motion on")
	}
	if s.menu.Selected != 1 {
		t.Errorf("selected = %d, want 1", s.menu.Selected)
	}
}

func TestCycleLocale(t *testing.T) {
	s := newScreen(t, &memRepo{values: map[string]string{}})
	press(s, down)
	press(s, down)
	press(s, enter)
	if s.env.Locale() != "es" {
		t.Fatalf("locale = %q, want es", s.env.Locale())
	}
	if s.menu.Items[0].Label != "Alto contraste" {
		t.Errorf("labels not translated: %q", s.menu.Items[0].Label)
	}
	press(s, enter)
	if s.env.Locale() != "en" {
		t.Errorf("locale = %q, want en", s.env.Locale())
	}
}

func TestSaveFailureKeepsValue(t *testing.T) {
	repo := &memRepo{values: map[string]string{}, fail: true}
	s := newScreen(t, repo)
	press(s, enter)
	if s.env.Settings.HighContrast() {
		t.Error("value changed despite failed write")
	}
	if !s.noticeBad {
		t.Error("expected failure notice")
	}
}
