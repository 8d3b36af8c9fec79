// Package welcome is the splash shown at startup.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moneypath/internal/router"
	"github.com/abhisek/moneypath/internal/screen"
	"github.com/abhisek/moneypath/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	coinsEnd     = 500 * time.Millisecond
	bannerEnd    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const jarArt = `    ╭─────╮
   ╭┴─────┴╮
   │  $ $  │
   │ ▁▃▅▇  │
   │ ▔▔▔▔▔ │
   ╰───────╯`

// coin frames drop into the jar
var coinFrames = []string{"●", "◐", "○", "◑"}

type tickMsg time.Time

// WelcomeScreen shows a short splash, then replaces itself with the screen
// produced by homeFactory on the first key press.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
	still        bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. With reducedMotion the splash is drawn in
// its final state and never ticks.
func New(homeFactory func() screen.Screen, reducedMotion bool) *WelcomeScreen {
	w := &WelcomeScreen{homeFactory: homeFactory, still: reducedMotion}
	if reducedMotion {
		w.elapsed = totalDur
	}
	return w
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	if w.still {
		return nil
	}
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.still || w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(jarArt)

	if w.elapsed >= coinsEnd {
		coin := coinFrames[w.tickCount%len(coinFrames)]
		if w.still {
			coin = coinFrames[0]
		}
		gold := lipgloss.NewStyle().Foreground(theme.Accent).Render(coin)
		rendered = strings.Repeat(" ", 7) + gold + "\n" + rendered
	} else {
		rendered = "\n" + rendered
	}
	sections = append(sections, rendered)

	if w.elapsed >= bannerEnd {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Small steps to smarter money."))
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
