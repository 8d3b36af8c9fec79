// Package app hosts the root Bubble Tea model: the screen stack, the frame
// around it and milestone toasts.
package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/milestones"
	"github.com/abhisek/moneypath/internal/router"
	"github.com/abhisek/moneypath/internal/screen"
	"github.com/abhisek/moneypath/internal/ui/layout"
	"github.com/abhisek/moneypath/internal/ui/theme"
)

// toastDuration is how long a milestone toast stays in the header.
const toastDuration = 4 * time.Second

type milestoneMsg milestones.Milestone

type toastExpiredMsg struct{ seq int }

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int

	toast    string
	toastSeq int
}

// NewAppModel creates an AppModel showing root first.
func NewAppModel(env *screen.Env, root screen.Screen) AppModel {
	return AppModel{
		env:    env,
		router: router.New(root),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.listen())
}

// listen waits for the next earned milestone.
func (m AppModel) listen() tea.Cmd {
	if m.env == nil || m.env.Milestones == nil {
		return nil
	}
	ch := m.env.Milestones.Notifications()
	return func() tea.Msg {
		ms, ok := <-ch
		if !ok {
			return nil
		}
		return milestoneMsg(ms)
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case milestoneMsg:
		ms := milestones.Milestone(msg)
		if ms.UserID != "" && ms.UserID != m.env.UserID() {
			return m, m.listen()
		}
		m.toastSeq++
		m.toast = ms.Icon() + " " + m.env.T(i18n.MilestoneEarned, ms.Title)
		seq := m.toastSeq
		return m, tea.Batch(m.listen(), tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return toastExpiredMsg{seq: seq}
		}))

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case "q":
			if m.router.Depth() > 1 && !m.capturing() {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if m.toast != "" {
		status = theme.Toast.Render(m.toast)
	}
	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: m.env.T(i18n.HintBack)},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: m.env.T(i18n.HintNavigate)},
			{Key: "Enter", Description: m.env.T(i18n.HintSelect)},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: m.env.T(i18n.HintQuit)})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program with root as the first screen.
func Run(env *screen.Env, root screen.Screen) error {
	if env.Settings != nil {
		theme.SetHighContrast(env.Settings.HighContrast())
	}
	p := tea.NewProgram(NewAppModel(env, root))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
