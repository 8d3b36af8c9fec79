package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/router"
	"github.com/abhisek/moneypath/internal/screen"
	chatscreen "github.com/abhisek/moneypath/internal/screens/chat"
	"github.com/abhisek/moneypath/internal/screens/milestones"
	"github.com/abhisek/moneypath/internal/screens/pathmap"
	"github.com/abhisek/moneypath/internal/screens/settings"
	"github.com/abhisek/moneypath/internal/ui/components"
	"github.com/abhisek/moneypath/internal/ui/theme"
)

const tagline = "Build money skills one lesson at a time."

// statsMsg carries the learner's completed lesson count.
type statsMsg struct {
	Completed int
	Err       error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	env       *screen.Env
	menu      components.Menu
	locale    string
	completed int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	h := &HomeScreen{env: env, locale: env.Locale()}
	h.menu = components.NewMenu(h.items())
	return h
}

// refresh rebuilds the menu labels after the locale changed.
func (h *HomeScreen) refresh() {
	if h.env.Locale() == h.locale {
		return
	}
	h.locale = h.env.Locale()
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.items())
	h.menu.Selected = selected
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) items() []components.MenuItem {
	env := h.env
	return []components.MenuItem{
		{Label: env.T(i18n.MenuContinue), Hint: env.PathSlug, Action: func() tea.Cmd {
			return push(pathmap.New(env, env.PathSlug))
		}},
		{Label: env.T(i18n.MenuMilestones), Action: func() tea.Cmd {
			return push(milestones.New(env))
		}},
		{Label: env.T(i18n.MenuChat), Disabled: env.Assistant == nil, Action: func() tea.Cmd {
			return push(chatscreen.New(env))
		}},
		{Label: env.T(i18n.MenuSettings), Action: func() tea.Cmd {
			return push(settings.New(env))
		}},
		{Label: env.T(i18n.MenuExit), Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

// Init loads the completed lesson count.
func (h *HomeScreen) Init() tea.Cmd {
	env := h.env
	return func() tea.Msg {
		if env.Progress == nil {
			return statsMsg{}
		}
		n, err := env.Progress.CompletedCount(context.Background(), env.UserID())
		return statsMsg{Completed: n, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		if msg.Err != nil {
			h.env.Logger().Warn("load completed count failed", "error", msg.Err)
		}
		h.completed = msg.Completed
		return h, nil
	}
	h.refresh()

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	h.refresh()
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("MoneyPath"))
	sections = append(sections, theme.Subtitle.Width(cw).Render(tagline))
	sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).
		Render("✓ "+h.env.T(i18n.LessonsCompleted, h.completed)))
	sections = append(sections, components.Card(h.menu.View(), cw))

	return components.Centered(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
