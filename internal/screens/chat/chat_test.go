package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/moneypath/internal/chat"
	"github.com/abhisek/moneypath/internal/screen"
	"github.com/abhisek/moneypath/internal/store"
)

type fakeAssistant struct {
	history []store.ChatMessageRecord
	reply   chat.Reply
	err     error
	asked   []string
	lastCtx chat.LessonContext
	resets  int
}

func (f *fakeAssistant) Ask(_ context.Context, q string, lc chat.LessonContext) (chat.Reply, error) {
	f.asked = append(f.asked, q)
	f.lastCtx = lc
	return f.reply, f.err
}

func (f *fakeAssistant) History(context.Context) ([]store.ChatMessageRecord, error) {
	return f.history, nil
}

func (f *fakeAssistant) Reset(context.Context) error {
	f.resets++
	return nil
}

func newScreen(f *fakeAssistant, lc chat.LessonContext) *ChatScreen {
	s := NewForLesson(&screen.Env{}, lc)
	s.asst = f
	return s
}

func typeText(s *ChatScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// runCmd executes cmd and feeds any non-tick result back into the screen.
func runCmd(s *ChatScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			runCmd(s, c)
		}
	case spinnerTickMsg:
	default:
		s.Update(msg)
	}
}

func TestDisabledWithoutAssistant(t *testing.T) {
	s := New(&screen.Env{})
	if s.CapturingInput() {
		t.Error("disabled chat should not capture input")
	}
	if !strings.Contains(s.View(80, 20), "isn't set up") {
		t.Errorf("expected disabled message, got:\n%s", s.View(80, 20))
	}
}

func TestAskShowsReply(t *testing.T) {
	f := &fakeAssistant{reply: chat.Reply{Text: "Save first.", FollowUps: []string{"How much?"}}}
	lc := chat.LessonContext{LessonTitle: "Why budget"}
	s := newScreen(f, lc)

	typeText(s, "what now")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.thinking {
		t.Fatal("expected thinking state")
	}
	runCmd(s, cmd)

	if s.thinking {
		t.Error("thinking should end after the reply")
	}
	if len(f.asked) != 1 || f.asked[0] != "what now" {
		t.Errorf("asked = %v", f.asked)
	}
	if f.lastCtx.LessonTitle != "Why budget" {
		t.Error("lesson context not passed")
	}
	if len(s.turns) != 2 || !s.turns[0].user || s.turns[1].text != "Save first." {
		t.Errorf("turns = %+v", s.turns)
	}
	if view := s.View(100, 30); !strings.Contains(view, "How much?") {
		t.Errorf("view missing follow-up:\n%s", view)
	}
}

func TestBlankQuestionIgnored(t *testing.T) {
	f := &fakeAssistant{}
	s := newScreen(f, chat.LessonContext{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil || s.thinking || len(s.turns) != 0 {
		t.Error("blank question should do nothing")
	}
}

func TestAskErrorShowsNotice(t *testing.T) {
	f := &fakeAssistant{err: errors.New("disk full")}
	s := newScreen(f, chat.LessonContext{})
	typeText(s, "hi")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	runCmd(s, cmd)
	if s.notice == "" {
		t.Error("expected an error notice")
	}
	if len(s.turns) != 1 {
		t.Errorf("turns = %d, want only the question", len(s.turns))
	}
}

func TestHistoryAndNewThread(t *testing.T) {
	f := &fakeAssistant{history: []store.ChatMessageRecord{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
	}}
	s := newScreen(f, chat.LessonContext{})
	runCmd(s, s.Init())
	if len(s.turns) != 2 || !s.turns[0].user || s.turns[1].user {
		t.Fatalf("turns = %+v", s.turns)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	runCmd(s, cmd)
	if f.resets != 1 || len(s.turns) != 0 {
		t.Errorf("resets = %d, turns = %d", f.resets, len(s.turns))
	}
}
