// Package chat is the assistant conversation screen.
package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moneypath/internal/chat"
	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/llm"
	"github.com/abhisek/moneypath/internal/screen"
	"github.com/abhisek/moneypath/internal/store"
	"github.com/abhisek/moneypath/internal/ui/components"
	"github.com/abhisek/moneypath/internal/ui/layout"
	"github.com/abhisek/moneypath/internal/ui/richtext"
	"github.com/abhisek/moneypath/internal/ui/theme"
)

const askTimeout = 60 * time.Second

// assistant is the part of chat.Assistant the screen drives.
type assistant interface {
	Ask(ctx context.Context, question string, lc chat.LessonContext) (chat.Reply, error)
	History(ctx context.Context) ([]store.ChatMessageRecord, error)
	Reset(ctx context.Context) error
}

type turn struct {
	user      bool
	text      string
	followUps []string
	fallback  bool
}

type historyLoadedMsg struct {
	Records []store.ChatMessageRecord
	Err     error
}

type replyMsg struct {
	Reply chat.Reply
	Err   error
}

type resetMsg struct{ Err error }

// ChatScreen is a conversation with the study assistant, optionally about
// the lesson the learner has open.
type ChatScreen struct {
	env      *screen.Env
	asst     assistant
	lesson   chat.LessonContext
	input    components.TextInput
	turns    []turn
	thinking bool
	notice   string
	spinner  int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.InputCapturer = (*ChatScreen)(nil)

// New creates a ChatScreen with no lesson context.
func New(env *screen.Env) *ChatScreen {
	return NewForLesson(env, chat.LessonContext{})
}

// NewForLesson creates a ChatScreen whose questions carry lc.
func NewForLesson(env *screen.Env, lc chat.LessonContext) *ChatScreen {
	s := &ChatScreen{
		env:    env,
		lesson: lc,
		input:  components.NewTextInput(env.T(i18n.ChatPlaceholder), 500, 60),
	}
	if env.Assistant != nil {
		s.asst = env.Assistant
	}
	return s
}

func (s *ChatScreen) Init() tea.Cmd {
	if s.asst == nil {
		return nil
	}
	asst := s.asst
	return tea.Batch(s.input.Init(), func() tea.Msg {
		recs, err := asst.History(context.Background())
		return historyLoadedMsg{Records: recs, Err: err}
	})
}

func (s *ChatScreen) Title() string {
	if s.lesson.LessonTitle != "" {
		return s.env.T(i18n.MenuChat) + " · " + s.lesson.LessonTitle
	}
	return s.env.T(i18n.MenuChat)
}

// CapturingInput keeps typed characters out of global shortcuts.
func (s *ChatScreen) CapturingInput() bool {
	return s.asst != nil && s.input.Focused()
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.env.T(i18n.HintAsk)},
		{Key: "Ctrl+N", Description: s.env.T(i18n.HintNewChat)},
		{Key: "Esc", Description: s.env.T(i18n.HintBack)},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.env.Logger().Warn("load chat history failed", "error", msg.Err)
			return s, nil
		}
		s.turns = s.turns[:0]
		for _, r := range msg.Records {
			s.turns = append(s.turns, turn{
				user:     r.Role == string(llm.RoleUser),
				text:     r.Content,
				fallback: r.Fallback,
			})
		}
		return s, nil

	case replyMsg:
		s.thinking = false
		if msg.Err != nil {
			s.env.Logger().Error("chat ask failed", "error", msg.Err)
			s.notice = s.env.T(i18n.Unexpected)
			if msg.Reply.Text == "" {
				return s, s.input.Focus()
			}
		}
		s.turns = append(s.turns, turn{
			text:      msg.Reply.Text,
			followUps: msg.Reply.FollowUps,
			fallback:  msg.Reply.Fallback,
		})
		return s, s.input.Focus()

	case resetMsg:
		if msg.Err != nil {
			s.env.Logger().Error("new chat thread failed", "error", msg.Err)
			s.notice = s.env.T(i18n.Unexpected)
			return s, nil
		}
		s.turns = nil
		s.notice = s.env.T(i18n.ChatNewThread)
		return s, nil

	case spinnerTickMsg:
		if !s.thinking {
			return s, nil
		}
		s.spinner++
		return s, spinnerTick()

	case tea.KeyPressMsg:
		if s.asst == nil || s.thinking {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s, s.ask()
		case "ctrl+n":
			asst := s.asst
			return s, func() tea.Msg {
				return resetMsg{Err: asst.Reset(context.Background())}
			}
		}
	}

	if s.asst == nil || s.thinking {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) ask() tea.Cmd {
	q := s.input.Value()
	if q == "" {
		return nil
	}
	s.input.Reset()
	s.input.Blur()
	s.turns = append(s.turns, turn{user: true, text: q})
	s.thinking = true
	s.notice = ""

	asst, lc := s.asst, s.lesson
	ask := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
		defer cancel()
		reply, err := asst.Ask(ctx, q, lc)
		return replyMsg{Reply: reply, Err: err}
	}
	if s.env.ReducedMotion() {
		return ask
	}
	return tea.Batch(ask, spinnerTick())
}

type spinnerTickMsg struct{}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg { return spinnerTickMsg{} })
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *ChatScreen) View(width, height int) string {
	tw := layout.TextWidth(width)
	if s.asst == nil {
		return components.Centered(theme.Hint.Render(s.env.T(i18n.ChatDisabled)), width, height)
	}

	var blocks []string
	for _, t := range s.turns {
		blocks = append(blocks, s.renderTurn(t, tw))
	}
	if s.thinking {
		text := s.env.T(i18n.ChatThinking)
		if !s.env.ReducedMotion() {
			text = spinnerFrames[s.spinner%len(spinnerFrames)] + " " + text
		}
		blocks = append(blocks, theme.Hint.Render(text))
	}

	var bottom strings.Builder
	if s.notice != "" {
		bottom.WriteString(theme.Hint.Render(s.notice))
		bottom.WriteString("\n")
	}
	bottom.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", tw)))
	bottom.WriteString("\n")
	bottom.WriteString(s.input.View())

	// Keep the newest turns in view.
	convo := strings.Join(blocks, "\n\n")
	avail := max(height-lipgloss.Height(bottom.String())-1, 1)
	lines := strings.Split(convo, "\n")
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}
	convo = strings.Join(lines, "\n")
	pad := max(avail-len(lines), 0)

	block := strings.Repeat("\n", pad) + convo + "\n" + bottom.String()
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(tw).Render(block))
}

func (s *ChatScreen) renderTurn(t turn, width int) string {
	if t.user {
		return theme.Selected.Render("› ") + theme.Body.Width(width-2).Render(t.text)
	}
	if t.fallback {
		return theme.Incorrect.Width(width).Render(t.text)
	}

	out := strings.TrimRight(richtext.Render(t.text, width), "\n")
	if len(t.followUps) > 0 {
		var b strings.Builder
		b.WriteString(out)
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(s.env.T(i18n.ChatFollowUps)))
		for _, f := range t.followUps {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("  • " + f))
		}
		out = b.String()
	}
	return out
}
