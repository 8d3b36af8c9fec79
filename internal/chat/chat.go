// Package chat is the lesson-aware study assistant.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/moneypath/internal/analytics"
	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/llm"
	"github.com/abhisek/moneypath/internal/logger"
	"github.com/abhisek/moneypath/internal/settings"
	"github.com/abhisek/moneypath/internal/store"
)

// ErrEmptyQuestion is returned by Ask for a blank question.
var ErrEmptyQuestion = errors.New("question is empty")

// Reply is the assistant's answer. Fallback is set when the provider could
// not answer and Text is the localized apology; the caller should not retry.
type Reply struct {
	Text      string   `json:"text"`
	FollowUps []string `json:"follow_ups"`
	Fallback  bool     `json:"fallback"`
}

// LessonContext describes what the learner is looking at. The zero value
// means no lesson is open.
type LessonContext struct {
	PathTitle   string
	ModuleTitle string
	LessonTitle string
	Summary     string
}

// ContextFor builds the context for lesson l of path p. Either may be nil.
func ContextFor(p *content.Path, l *content.Lesson) LessonContext {
	var lc LessonContext
	if p != nil {
		lc.PathTitle = p.Title
	}
	if l != nil {
		lc.LessonTitle = l.Title
		lc.ModuleTitle = l.Module.Title
		lc.Summary = l.KeyTakeaways.PlainText()
		if lc.Summary == "" {
			lc.Summary = l.Body.PlainText()
		}
		lc.Summary = truncate(lc.Summary, maxSummary)
	}
	return lc
}

const maxSummary = 1200

func (lc LessonContext) empty() bool { return lc.LessonTitle == "" && lc.PathTitle == "" }

// Config tunes the assistant.
type Config struct {
	// HistoryLimit is how many stored turns are replayed to the provider.
	HistoryLimit int
	MaxTokens    int
	Temperature  float64
}

func DefaultConfig() Config {
	return Config{HistoryLimit: 10, MaxTokens: 800, Temperature: 0.3}
}

// threadSource tracks which conversation new questions join.
type threadSource interface {
	Current(ctx context.Context) (string, error)
	Start(ctx context.Context) (string, error)
}

// settingsThreads keeps the terminal learner's thread id in settings so
// it survives restarts.
type settingsThreads struct{ s *settings.Settings }

func (t settingsThreads) Current(ctx context.Context) (string, error) { return t.s.ChatThread(ctx) }
func (t settingsThreads) Start(ctx context.Context) (string, error) { return t.s.NewChatThread(ctx) }

// userThreads resumes a learner's most recent stored thread.
type userThreads struct {
	repo   store.ChatRepo
	userID string
}

func (t userThreads) Current(ctx context.Context) (string, error) {
	id, err := t.repo.LatestThread(ctx, t.userID)
	if err != nil {
		return "", err
	}
	if id == "" {
		return uuid.NewString(), nil
	}
	return id, nil
}

func (t userThreads) Start(context.Context) (string, error) { return uuid.NewString(), nil }

// Learner names whose conversation a question belongs to. An empty
// Locale keeps the assistant's.
type Learner struct {
	UserID string
	Locale string
}

// Assistant answers questions on one conversation thread. The assistant
// returned by New follows the thread kept in settings; ForUser scopes a
// copy to one learner's own threads.
type Assistant struct {
	provider  llm.Provider
	history   store.ChatRepo
	settings  *settings.Settings
	threads   threadSource
	analytics analytics.Sink
	log       *logger.Logger
	userID    string
	locale    string
	cfg       Config
	now       func() time.Time
}

// Options are the optional collaborators of an Assistant.
type Options struct {
	Analytics analytics.Sink
	Log       *logger.Logger
	UserID    string
	Config    Config
	Now       func() time.Time
}

// New returns an assistant. provider is expected to retry transient
// failures itself, as llm.NewProvider does.
func New(provider llm.Provider, history store.ChatRepo, s *settings.Settings, opts Options) *Assistant {
	a := &Assistant{
		provider:  provider,
		history:   history,
		settings:  s,
		threads:   settingsThreads{s},
		analytics: opts.Analytics,
		log:       opts.Log,
		userID:    opts.UserID,
		cfg:       opts.Config,
		now:       opts.Now,
	}
	if a.analytics == nil {
		a.analytics = analytics.Nop{}
	}
	if a.log == nil {
		a.log = logger.Nop()
	}
	if a.cfg.HistoryLimit <= 0 {
		a.cfg = DefaultConfig()
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

// ForUser returns a copy of a that reads and writes only who's threads.
// It is what a multi-user surface such as the HTTP API asks through.
func (a *Assistant) ForUser(who Learner) *Assistant {
	c := *a
	c.userID = who.UserID
	c.threads = userThreads{repo: a.history, userID: who.UserID}
	if who.Locale != "" {
		c.locale = who.Locale
	}
	return &c
}

// AskFor answers question on who's own thread.
func (a *Assistant) AskFor(ctx context.Context, who Learner, question string, lc LessonContext) (Reply, error) {
	return a.ForUser(who).Ask(ctx, question, lc)
}

func (a *Assistant) lang() string {
	if a.locale != "" {
		return a.locale
	}
	if a.settings == nil {
		return i18n.DefaultLocale
	}
	return a.settings.Locale()
}

type replyOutput struct {
	Reply     string   `json:"reply"`
	FollowUps []string `json:"follow_ups"`
}

// Ask answers question. Provider failures, after the provider's own
// retries, produce the localized fallback reply instead of an error;
// errors are reserved for storage failures and cancellation.
func (a *Assistant) Ask(ctx context.Context, question string, lc LessonContext) (Reply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Reply{}, ErrEmptyQuestion
	}

	thread, err := a.threads.Current(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("chat thread: %w", err)
	}
	past, err := a.history.Recent(ctx, thread, a.cfg.HistoryLimit)
	if err != nil {
		return Reply{}, err
	}

	asked := a.now()
	reply, genErr := a.generate(ctx, past, question, lc)
	if genErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Reply{}, ctxErr
		}
		a.log.Warn("chat reply failed, using fallback", "thread_id", thread, "error", genErr)
		reply = Reply{Text: i18n.T(a.lang(), i18n.ChatUnavailable), Fallback: true}
	}

	turns := []store.ChatMessageRecord{
		{ThreadID: thread, UserID: a.userID, Role: string(llm.RoleUser), Content: question, CreatedAt: asked},
		{ThreadID: thread, UserID: a.userID, Role: string(llm.RoleAssistant), Content: reply.Text, Fallback: reply.Fallback, CreatedAt: a.now()},
	}
	for _, t := range turns {
		if err := a.history.Append(ctx, t); err != nil {
			return reply, fmt.Errorf("save chat turn: %w", err)
		}
	}

	a.analytics.Record(ctx, analytics.Event{
		UserID: a.userID,
		Name:   analytics.ChatAsked,
		Properties: map[string]any{
			"lesson":   lc.LessonTitle,
			"fallback": reply.Fallback,
		},
	})
	return reply, nil
}

func (a *Assistant) generate(ctx context.Context, past []store.ChatMessageRecord, question string, lc LessonContext) (Reply, error) {
	msgs := make([]llm.Message, 0, len(past)+1)
	for _, m := range past {
		// Fallback apologies carry no information for the model.
		if m.Fallback {
			continue
		}
		msgs = append(msgs, llm.Message{Role: llm.Role(m.Role), Content: m.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: userMessage(question, lc)})

	resp, err := a.provider.Generate(llm.WithPurpose(ctx, llm.PurposeChat), llm.Request{
		System:      fmt.Sprintf(systemPrompt, a.lang()),
		Messages:    msgs,
		Schema:      replySchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return Reply{}, err
	}

	var out replyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Reply{}, fmt.Errorf("parse chat reply: %w", err)
	}
	if strings.TrimSpace(out.Reply) == "" {
		return Reply{}, errors.New("empty chat reply")
	}
	if len(out.FollowUps) > maxFollowUps {
		out.FollowUps = out.FollowUps[:maxFollowUps]
	}
	return Reply{Text: strings.TrimSpace(out.Reply), FollowUps: out.FollowUps}, nil
}

func userMessage(question string, lc LessonContext) string {
	if lc.empty() {
		return question
	}
	var b strings.Builder
	b.WriteString("Current lesson:\n")
	if lc.PathTitle != "" {
		fmt.Fprintf(&b, "- Path: %s\n", lc.PathTitle)
	}
	if lc.ModuleTitle != "" {
		fmt.Fprintf(&b, "- Module: %s\n", lc.ModuleTitle)
	}
	if lc.LessonTitle != "" {
		fmt.Fprintf(&b, "- Lesson: %s\n", lc.LessonTitle)
	}
	if lc.Summary != "" {
		fmt.Fprintf(&b, "- Key points:\n%s\n", lc.Summary)
	}
	fmt.Fprintf(&b, "\nQuestion: %s", question)
	return b.String()
}

// History returns the stored turns of the current thread, oldest first.
func (a *Assistant) History(ctx context.Context) ([]store.ChatMessageRecord, error) {
	thread, err := a.threads.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("chat thread: %w", err)
	}
	return a.history.Recent(ctx, thread, a.cfg.HistoryLimit)
}

// Reset starts a new thread. Old turns stay in the store.
func (a *Assistant) Reset(ctx context.Context) error {
	thread, err := a.threads.Start(ctx)
	if err != nil {
		return err
	}
	a.log.Debug("chat thread reset", "thread_id", thread)
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
