package milestones

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/moneypath/internal/milestones"
	"github.com/abhisek/moneypath/internal/screen"
)

func TestEmptyState(t *testing.T) {
	s := New(&screen.Env{})
	s.Update(s.Init()())
	if !strings.Contains(s.View(80, 20), "earn your first milestone") {
		t.Errorf("expected empty state, got:\n%s", s.View(80, 20))
	}
}

func TestListsMilestones(t *testing.T) {
	s := New(&screen.Env{})
	s.Update(milestonesLoadedMsg{Milestones: []milestones.Milestone{
		{Code: milestones.CodeFirstLesson, Title: "First lesson complete"},
		{Code: milestones.PathCode("money-basics"), Title: "Finished Money Basics"},
	}})

	view := s.View(80, 20)
	for _, want := range []string{"🌱", "First lesson complete", "🏆", "Finished Money Basics"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if s.scrollOffset != 1 {
		t.Errorf("scrollOffset = %d, want 1", s.scrollOffset)
	}
}

func TestLoadError(t *testing.T) {
	s := New(&screen.Env{})
	s.Update(milestonesLoadedMsg{Err: errors.New("db closed")})
	if !strings.Contains(s.View(80, 20), "Something went wrong") {
		t.Error("expected error message")
	}
}
