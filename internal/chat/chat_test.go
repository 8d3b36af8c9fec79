package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/moneypath/internal/analytics"
	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/llm"
	"github.com/abhisek/moneypath/internal/settings"
	"github.com/abhisek/moneypath/internal/store"
)

type memSettings struct{ values map[string]string }

func (m *memSettings) All(context.Context) (map[string]string, error) {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func (m *memSettings) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

type memChat struct {
	msgs []store.ChatMessageRecord
	err  error
}

func (m *memChat) Append(_ context.Context, msg store.ChatMessageRecord) error {
	if m.err != nil {
		return m.err
	}
	m.msgs = append(m.msgs, msg)
	return nil
}

func (m *memChat) Recent(_ context.Context, thread string, limit int) ([]store.ChatMessageRecord, error) {
	var out []store.ChatMessageRecord
	for _, msg := range m.msgs {
		if msg.ThreadID == thread {
			out = append(out, msg)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *memChat) LatestThread(_ context.Context, userID string) (string, error) {
	for i := len(m.msgs) - 1; i >= 0; i-- {
		if m.msgs[i].UserID == userID {
			return m.msgs[i].ThreadID, nil
		}
	}
	return "", nil
}

type fixture struct {
	assistant *Assistant
	provider  *llm.MockProvider
	history   *memChat
	settings  *settings.Settings
	events    *analytics.Memory
}

func newFixture(t *testing.T, locale string, script ...llm.MockResponse) *fixture {
	t.Helper()
	s, err := settings.Load(context.Background(), &memSettings{values: map[string]string{}}, locale)
	if err != nil {
		t.Fatal(err)
	}
	f := &fixture{
		provider: llm.NewMockProvider(script...),
		history:  &memChat{},
		settings: s,
		events:   &analytics.Memory{},
	}
	f.assistant = New(f.provider, f.history, s, Options{Analytics: f.events, UserID: "u1"})
	return f
}

func answer(reply string, followUps ...string) llm.MockResponse {
	if followUps == nil {
		followUps = []string{}
	}
	raw, _ := json.Marshal(map[string]any{"reply": reply, "follow_ups": followUps})
	return llm.MockResponse{Content: raw}
}

var budgetLesson = LessonContext{
	PathTitle:   "Money Basics",
	ModuleTitle: "Budgeting",
	LessonTitle: "The 50/30/20 rule",
	Summary:     "Split take-home pay into needs, wants and savings.",
}

func TestAskAnswersAndStoresBothTurns(t *testing.T) {
	f := newFixture(t, "en", answer("Put 20% toward savings.", "What counts as a need?"))

	reply, err := f.assistant.Ask(context.Background(), "  How much should I save?  ", budgetLesson)
	if err != nil {
		t.Fatal(err)
	}
	if reply.Fallback || reply.Text != "Put 20% toward savings." {
		t.Errorf("reply = %+v", reply)
	}
	if len(reply.FollowUps) != 1 || reply.FollowUps[0] != "What counts as a need?" {
		t.Errorf("follow ups = %v", reply.FollowUps)
	}

	if len(f.history.msgs) != 2 {
		t.Fatalf("stored %d turns, want 2", len(f.history.msgs))
	}
	user, bot := f.history.msgs[0], f.history.msgs[1]
	if user.Role != "user" || user.Content != "How much should I save?" {
		t.Errorf("user turn = %+v", user)
	}
	if bot.Role != "assistant" || bot.Fallback || user.ThreadID != bot.ThreadID || user.ThreadID == "" {
		t.Errorf("assistant turn = %+v", bot)
	}

	req := f.provider.Calls()[0]
	if req.Schema == nil || req.Schema.Name != replySchema.Name {
		t.Error("expected the reply schema on the request")
	}
	last := req.Messages[len(req.Messages)-1].Content
	for _, want := range []string{"The 50/30/20 rule", "Budgeting", "needs, wants and savings", "Question: How much should I save?"} {
		if !strings.Contains(last, want) {
			t.Errorf("prompt missing %q:\n%s", want, last)
		}
	}
	if f.events.Count(analytics.ChatAsked) != 1 {
		t.Error("expected chat_asked event")
	}
}

func TestAskReplaysHistory(t *testing.T) {
	f := newFixture(t, "en", answer("First."), answer("Second."))
	ctx := context.Background()

	if _, err := f.assistant.Ask(ctx, "one", LessonContext{}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.assistant.Ask(ctx, "two", LessonContext{}); err != nil {
		t.Fatal(err)
	}

	msgs := f.provider.Calls()[1].Messages
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want 3", len(msgs))
	}
	if msgs[0].Content != "one" || msgs[1].Role != llm.RoleAssistant || msgs[2].Content != "two" {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestAskFallsBackWhenProviderFails(t *testing.T) {
	f := newFixture(t, "es", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}, answer("ok"))

	reply, err := f.assistant.Ask(context.Background(), "¿Qué es el APR?", LessonContext{})
	if err != nil {
		t.Fatal(err)
	}
	if !reply.Fallback || reply.Text != i18n.T("es", i18n.ChatUnavailable) {
		t.Errorf("reply = %+v", reply)
	}
	if f.provider.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", f.provider.CallCount())
	}
	if len(f.history.msgs) != 2 || !f.history.msgs[1].Fallback {
		t.Fatalf("history = %+v", f.history.msgs)
	}

	// The apology is not replayed to the model.
	if _, err := f.assistant.Ask(context.Background(), "otra vez", LessonContext{}); err != nil {
		t.Fatal(err)
	}
	for _, m := range f.provider.Calls()[1].Messages {
		if m.Role == llm.RoleAssistant {
			t.Errorf("fallback replayed: %+v", m)
		}
	}
}

func TestAskInvalidReplyFallsBack(t *testing.T) {
	f := newFixture(t, "en", llm.MockResponse{Content: json.RawMessage(`{"reply":"","follow_ups":[]}`)})
	reply, err := f.assistant.Ask(context.Background(), "hi", LessonContext{})
	if err != nil {
		t.Fatal(err)
	}
	if !reply.Fallback {
		t.Errorf("reply = %+v, want fallback", reply)
	}
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	f := newFixture(t, "en")
	if _, err := f.assistant.Ask(context.Background(), "   ", LessonContext{}); !errors.Is(err, ErrEmptyQuestion) {
		t.Fatalf("err = %v", err)
	}
	if f.provider.CallCount() != 0 {
		t.Error("provider called for empty question")
	}
}

func TestAskCancelledReturnsError(t *testing.T) {
	f := newFixture(t, "en", llm.MockResponse{Err: context.Canceled})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.assistant.Ask(ctx, "hi", LessonContext{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(f.history.msgs) != 0 {
		t.Error("cancelled question was stored")
	}
}

func TestAskStoreFailure(t *testing.T) {
	f := newFixture(t, "en", answer("ok"))
	f.history.err = errors.New("disk full")
	if _, err := f.assistant.Ask(context.Background(), "hi", LessonContext{}); err == nil {
		t.Fatal("expected storage error")
	}
}

func TestResetStartsNewThread(t *testing.T) {
	f := newFixture(t, "en", answer("First."), answer("Second."))
	ctx := context.Background()

	if _, err := f.assistant.Ask(ctx, "one", LessonContext{}); err != nil {
		t.Fatal(err)
	}
	before, _ := f.settings.ChatThread(ctx)
	if err := f.assistant.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	after, _ := f.settings.ChatThread(ctx)
	if before == after {
		t.Fatal("thread id unchanged")
	}

	history, err := f.assistant.History(ctx)
	if err != nil || len(history) != 0 {
		t.Fatalf("history = %v, %v", history, err)
	}
	if _, err := f.assistant.Ask(ctx, "two", LessonContext{}); err != nil {
		t.Fatal(err)
	}
	if n := len(f.provider.Calls()[1].Messages); n != 1 {
		t.Errorf("messages after reset = %d, want 1", n)
	}
}

func TestAskForKeepsLearnersApart(t *testing.T) {
	f := newFixture(t, "en", answer("Noted."), answer("Hi!"), answer("Still here."))
	ctx := context.Background()
	u1 := Learner{UserID: "u1"}
	u2 := Learner{UserID: "u2"}

	if _, err := f.assistant.AskFor(ctx, u1, "my SSN is 123-45-6789", LessonContext{}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.assistant.AskFor(ctx, u2, "hello", LessonContext{}); err != nil {
		t.Fatal(err)
	}
	for _, m := range f.provider.Calls()[1].Messages {
		if strings.Contains(m.Content, "123-45-6789") {
			t.Fatalf("u2's request carries u1's message: %q", m.Content)
		}
	}

	// u1 resumes their own thread.
	if _, err := f.assistant.AskFor(ctx, u1, "what did I say?", LessonContext{}); err != nil {
		t.Fatal(err)
	}
	msgs := f.provider.Calls()[2].Messages
	if len(msgs) != 3 || msgs[0].Content != "my SSN is 123-45-6789" {
		t.Errorf("u1 history = %+v", msgs)
	}

	if f.history.msgs[0].ThreadID == f.history.msgs[2].ThreadID {
		t.Error("learners share a thread")
	}
	for _, m := range f.history.msgs {
		if m.UserID == "" {
			t.Errorf("turn stored without user: %+v", m)
		}
	}
	if got := f.events.Events()[1].UserID; got != "u2" {
		t.Errorf("chat_asked user = %q, want u2", got)
	}

	// The settings-backed thread of the terminal learner is untouched.
	history, err := f.assistant.History(ctx)
	if err != nil || len(history) != 0 {
		t.Errorf("terminal history = %v, %v", history, err)
	}
}

func TestAskForUsesLearnerLocale(t *testing.T) {
	f := newFixture(t, "en")
	reply, err := f.assistant.AskFor(context.Background(), Learner{UserID: "u1", Locale: "es"}, "hola", LessonContext{})
	if err != nil {
		t.Fatal(err)
	}
	if !reply.Fallback || reply.Text != i18n.T("es", i18n.ChatUnavailable) {
		t.Errorf("reply = %+v", reply)
	}
}

func TestContextFor(t *testing.T) {
	p := &content.Path{Title: "Money Basics"}
	l := &content.Lesson{
		Title:        "Emergency funds",
		Module:       content.ModuleRef{Title: "Saving"},
		Body:         content.Blocks(`"Long body text."`),
		KeyTakeaways: content.Blocks(`"Aim for three months of expenses."`),
	}

	lc := ContextFor(p, l)
	if lc.PathTitle != "Money Basics" || lc.ModuleTitle != "Saving" || lc.Summary != "Aim for three months of expenses." {
		t.Errorf("context = %+v", lc)
	}
	if got := ContextFor(nil, nil); !got.empty() {
		t.Errorf("nil context = %+v", got)
	}
}
