// Package complete shows the end-of-course summary.
package complete

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/router"
	"github.com/abhisek/moneypath/internal/screen"
	"github.com/abhisek/moneypath/internal/ui/components"
	"github.com/abhisek/moneypath/internal/ui/layout"
	"github.com/abhisek/moneypath/internal/ui/theme"
)

// moduleResult is one module's row in the summary.
type moduleResult struct {
	Title string
	Done  int
	Total int
}

type summaryLoadedMsg struct {
	Modules []moduleResult
	Err     error
}

// CompleteScreen congratulates the learner at the end of a path.
type CompleteScreen struct {
	env     *screen.Env
	path    *content.Path
	modules []moduleResult
	loaded  bool
}

var _ screen.Screen = (*CompleteScreen)(nil)
var _ screen.KeyHintProvider = (*CompleteScreen)(nil)

// New creates a CompleteScreen for path.
func New(env *screen.Env, path *content.Path) *CompleteScreen {
	return &CompleteScreen{env: env, path: path}
}

func (s *CompleteScreen) Init() tea.Cmd {
	env, path := s.env, s.path
	return func() tea.Msg {
		if env.Progress == nil || path == nil {
			return summaryLoadedMsg{}
		}
		recs, err := env.Progress.ListByCourse(context.Background(), env.UserID(), path.ID)
		if err != nil {
			return summaryLoadedMsg{Err: err}
		}
		done := make(map[string]bool, len(recs))
		for _, r := range recs {
			if r.Completed {
				done[r.LessonID] = true
			}
		}
		return summaryLoadedMsg{Modules: summarize(path, done)}
	}
}

func summarize(path *content.Path, done map[string]bool) []moduleResult {
	sorted := path.Sorted()
	out := make([]moduleResult, 0, len(sorted.Modules))
	for _, m := range sorted.Modules {
		if len(m.Lessons) == 0 {
			continue
		}
		r := moduleResult{Title: m.Title, Total: len(m.Lessons)}
		for _, l := range m.Lessons {
			if done[l.ID] {
				r.Done++
			}
		}
		out = append(out, r)
	}
	return out
}

func (s *CompleteScreen) Title() string {
	return s.env.T(i18n.CompleteCourse)
}

func (s *CompleteScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.env.T(i18n.HintHome)},
		{Key: "Esc", Description: s.env.T(i18n.HintBack)},
	}
}

func (s *CompleteScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.env.Logger().Warn("load course summary failed", "error", msg.Err)
			return s, nil
		}
		s.modules = msg.Modules
	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *CompleteScreen) View(width, height int) string {
	title := ""
	if s.path != nil {
		title = s.path.Title
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(s.env.T(i18n.CourseCompleted, title)))
	b.WriteString("\n\n")

	if !s.loaded {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(s.env.T(i18n.Loading))))
		return b.String()
	}

	var done, total int
	for _, m := range s.modules {
		done += m.Done
		total += m.Total
	}
	cw := components.ContentWidth(width)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewProgressBar(s.env.T(i18n.CourseSummary, done, total), done, total, cw).View()))
	b.WriteString("\n\n")

	for _, m := range s.modules {
		mark := "  "
		style := theme.Body
		if m.Done == m.Total {
			mark = "✓ "
			style = theme.Correct
		}
		line := fmt.Sprintf("%s%-40s %d/%d", mark, m.Title, m.Done, m.Total)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
