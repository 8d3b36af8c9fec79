package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Locked", Disabled: true},
		{Label: "Learn"},
		{Label: "Soon", Disabled: true},
		{Label: "Exit"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}
	m, _ = m.Update(keyPress('j'))
	if m.Selected != 3 {
		t.Errorf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(keyPress('k'))
	if m.Selected != 1 {
		t.Errorf("after up = %d, want 1", m.Selected)
	}
}

func TestChecklistCursor(t *testing.T) {
	c := NewChecklist([]ChecklistItem{{Key: "a", Label: "A"}, {Key: "b", Label: "B"}})
	c = c.Update(keyPress('j'))
	c = c.Update(keyPress('j'))
	if c.Focused() != "b" {
		t.Errorf("focused = %q, want b", c.Focused())
	}

	view := c.View(func(key string) bool { return key == "a" }, 40)
	if !strings.Contains(view, "[✓]") || !strings.Contains(view, "[ ]") {
		t.Errorf("view missing check boxes:\n%s", view)
	}

	if NewChecklist(nil).Focused() != "" {
		t.Error("empty checklist should focus nothing")
	}
}

func TestPageDots(t *testing.T) {
	s := PageDots(3, 1, "Lesson")
	if strings.Count(s, "●") != 1 || strings.Count(s, "○") != 2 {
		t.Errorf("dots = %q", s)
	}
	if !strings.Contains(s, "Lesson") {
		t.Errorf("missing label: %q", s)
	}
}

func TestProgressBarPercent(t *testing.T) {
	if p := NewProgressBar("", 3, 4, 40).Percent(); p != 0.75 {
		t.Errorf("percent = %v", p)
	}
	if p := NewProgressBar("", 1, 0, 40).Percent(); p != 0 {
		t.Errorf("percent with no lessons = %v", p)
	}
}
