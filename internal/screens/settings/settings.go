// Package settings is the preferences screen.
package settings

import (
	"context"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/screen"
	"github.com/abhisek/moneypath/internal/ui/components"
	"github.com/abhisek/moneypath/internal/ui/layout"
	"github.com/abhisek/moneypath/internal/ui/theme"
)

type savedMsg struct {
	Key i18n.Key
	Err error
}

// SettingsScreen toggles accessibility options, the language and the chat
// thread.
type SettingsScreen struct {
	env       *screen.Env
	menu      components.Menu
	notice    string
	noticeBad bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a new SettingsScreen.
func New(env *screen.Env) *SettingsScreen {
	s := &SettingsScreen{env: env}
	s.rebuild()
	return s
}

func (s *SettingsScreen) rebuild() {
	selected := s.menu.Selected
	onOff := func(on bool) string {
		if on {
			return s.env.T(i18n.On)
		}
		return s.env.T(i18n.Off)
	}

	st := s.env.Settings
	disabled := st == nil
	var contrast, motion bool
	if st != nil {
		contrast, motion = st.HighContrast(), st.ReducedMotion()
	}

	items := []components.MenuItem{
		{
			Label:    s.env.T(i18n.SettingHighContrast),
			Hint:     onOff(contrast),
			Disabled: disabled,
			Action:   func() tea.Cmd { return s.save(i18n.SettingHighContrast, s.toggleContrast) },
		},
		{
			Label:    s.env.T(i18n.SettingReducedMotion),
			Hint:     onOff(motion),
			Disabled: disabled,
			Action:   func() tea.Cmd { return s.save(i18n.SettingReducedMotion, s.toggleMotion) },
		},
		{
			Label:    s.env.T(i18n.SettingLanguage),
			Hint:     strings.ToUpper(s.env.Locale()),
			Disabled: disabled,
			Action:   func() tea.Cmd { return s.save(i18n.SettingLanguage, s.nextLocale) },
		},
		{
			Label:    s.env.T(i18n.SettingNewChat),
			Disabled: disabled,
			Action:   func() tea.Cmd { return s.save(i18n.SettingNewChat, s.newThread) },
		},
	}
	s.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) {
		s.menu.Selected = selected
	}
}

func (s *SettingsScreen) toggleContrast(ctx context.Context) error {
	return s.env.Settings.SetHighContrast(ctx, !s.env.Settings.HighContrast())
}

func (s *SettingsScreen) toggleMotion(ctx context.Context) error {
	return s.env.Settings.SetReducedMotion(ctx, !s.env.Settings.ReducedMotion())
}

func (s *SettingsScreen) nextLocale(ctx context.Context) error {
	locales := i18n.Locales()
	i := slices.Index(locales, s.env.Locale())
	return s.env.Settings.SetLocale(ctx, locales[(i+1)%len(locales)])
}

func (s *SettingsScreen) newThread(ctx context.Context) error {
	_, err := s.env.Settings.NewChatThread(ctx)
	return err
}

func (s *SettingsScreen) save(key i18n.Key, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{Key: key, Err: fn(context.Background())}
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return s.env.T(i18n.MenuSettings)
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.env.T(i18n.HintNavigate)},
		{Key: "Enter", Description: s.env.T(i18n.HintChange)},
		{Key: "Esc", Description: s.env.T(i18n.HintBack)},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			s.env.Logger().Error("save setting failed", "setting", string(msg.Key), "error", msg.Err)
			s.notice = s.env.T(i18n.SaveFailed)
			s.noticeBad = true
			return s, nil
		}
		if msg.Key == i18n.SettingHighContrast {
			theme.SetHighContrast(s.env.Settings.HighContrast())
		}
		s.notice = s.env.T(i18n.SettingSaved)
		if msg.Key == i18n.SettingNewChat {
			s.notice = s.env.T(i18n.ChatNewThread)
		}
		s.noticeBad = false
		s.rebuild()
		return s, nil

	case tea.KeyPressMsg:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(s.env.T(i18n.MenuSettings)))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	if s.notice != "" {
		style := theme.Correct
		if s.noticeBad {
			style = theme.Incorrect
		}
		b.WriteString("\n")
		b.WriteString(style.Render(s.notice))
	}

	cw := components.ContentWidth(width)
	card := components.Card(lipgloss.NewStyle().Width(cw).Render(b.String()), cw)
	return components.Centered(card, width, height)
}

