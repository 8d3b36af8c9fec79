package complete

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/router"
	"github.com/abhisek/moneypath/internal/screen"
)

func testPath() *content.Path {
	return &content.Path{
		ID: "p1", Slug: "money-basics", Title: "Money Basics",
		Modules: []content.Module{
			{ID: "m2", Title: "Saving", Order: 2, Lessons: []content.LessonSummary{
				{ID: "l3", Slug: "emergency-fund", Title: "Emergency fund", Order: 1},
			}},
			{ID: "m1", Title: "Budgeting", Order: 1, Lessons: []content.LessonSummary{
				{ID: "l1", Slug: "why-budget", Title: "Why budget", Order: 1},
				{ID: "l2", Slug: "fifty-thirty-twenty", Title: "50/30/20", Order: 2},
			}},
			{ID: "m3", Title: "Empty", Order: 3},
		},
	}
}

func TestSummarize(t *testing.T) {
	got := summarize(testPath(), map[string]bool{"l1": true, "l3": true})
	if len(got) != 2 {
		t.Fatalf("modules = %+v, want 2 (empty module skipped)", got)
	}
	if got[0].Title != "Budgeting" || got[0].Done != 1 || got[0].Total != 2 {
		t.Errorf("first module = %+v", got[0])
	}
	if got[1].Title != "Saving" || got[1].Done != 1 || got[1].Total != 1 {
		t.Errorf("second module = %+v", got[1])
	}
}

func TestViewAndEnter(t *testing.T) {
	s := New(&screen.Env{}, testPath())
	s.Update(summaryLoadedMsg{Modules: summarize(testPath(), map[string]bool{"l1": true})})

	view := s.View(100, 30)
	if !strings.Contains(view, "Money Basics") {
		t.Errorf("view missing path title:\n%s", view)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg on enter")
	}
}
