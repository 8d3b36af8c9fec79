// Package milestones lists the achievements the learner has earned.
package milestones

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/milestones"
	"github.com/abhisek/moneypath/internal/screen"
	"github.com/abhisek/moneypath/internal/ui/layout"
	"github.com/abhisek/moneypath/internal/ui/theme"
)

type milestonesLoadedMsg struct {
	Milestones []milestones.Milestone
	Err        error
}

// MilestonesScreen displays earned milestones, oldest first.
type MilestonesScreen struct {
	env          *screen.Env
	earned       []milestones.Milestone
	scrollOffset int
	loaded       bool
	err          error
}

var _ screen.Screen = (*MilestonesScreen)(nil)
var _ screen.KeyHintProvider = (*MilestonesScreen)(nil)

// New creates a new MilestonesScreen.
func New(env *screen.Env) *MilestonesScreen {
	return &MilestonesScreen{env: env}
}

func (s *MilestonesScreen) Init() tea.Cmd {
	svc, userID := s.env.Milestones, s.env.UserID()
	return func() tea.Msg {
		if svc == nil {
			return milestonesLoadedMsg{}
		}
		list, err := svc.List(context.Background(), userID)
		return milestonesLoadedMsg{Milestones: list, Err: err}
	}
}

func (s *MilestonesScreen) Title() string {
	return s.env.T(i18n.MenuMilestones)
}

func (s *MilestonesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.env.T(i18n.HintScroll)},
		{Key: "Esc", Description: s.env.T(i18n.HintBack)},
	}
}

func (s *MilestonesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case milestonesLoadedMsg:
		s.loaded = true
		s.err = msg.Err
		s.earned = msg.Milestones
		if msg.Err != nil {
			s.env.Logger().Error("list milestones failed", "user_id", s.env.UserID(), "error", msg.Err)
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.earned)-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *MilestonesScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case !s.loaded:
		return center.Foreground(theme.TextDim).Render("\n\n" + s.env.T(i18n.Loading))
	case s.err != nil:
		return center.Foreground(theme.Error).Render("\n\n" + s.env.T(i18n.Unexpected))
	case len(s.earned) == 0:
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\n" + s.env.T(i18n.NoMilestones))
	}

	var b strings.Builder
	b.WriteString(center.Foreground(theme.Text).Render(fmt.Sprintf("\n%s: %d\n", s.env.T(i18n.MenuMilestones), len(s.earned))))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	visible := max(height-6, 1)
	end := min(s.scrollOffset+visible, len(s.earned))
	var rows []string
	for _, m := range s.earned[s.scrollOffset:end] {
		rows = append(rows, fmt.Sprintf("%s  %s", m.Icon(), theme.Selected.Render(m.Title)))
	}
	list := lipgloss.NewStyle().Width(min(width-8, 60)).Render(strings.Join(rows, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list))

	if end < len(s.earned) {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf("… %d more", len(s.earned)-end)))
	}
	return b.String()
}
