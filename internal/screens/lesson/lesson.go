// Package lesson is the lesson reader screen: paged lesson content, the
// action-step checklist, the quiz and the completion toggle.
package lesson

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/moneypath/internal/chat"
	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/i18n"
	lsn "github.com/abhisek/moneypath/internal/lesson"
	"github.com/abhisek/moneypath/internal/progress"
	"github.com/abhisek/moneypath/internal/router"
	"github.com/abhisek/moneypath/internal/screen"
	chatscreen "github.com/abhisek/moneypath/internal/screens/chat"
	"github.com/abhisek/moneypath/internal/screens/complete"
	"github.com/abhisek/moneypath/internal/ui/components"
	"github.com/abhisek/moneypath/internal/ui/layout"
)

// pixelsPerCell converts mouse drags in cells to swipe distance.
const pixelsPerCell = 8

const spinnerInterval = 120 * time.Millisecond

// LessonScreen implements screen.Screen for one lesson of a path.
type LessonScreen struct {
	env        *screen.Env
	pathSlug   string
	lessonSlug string

	viewer *lsn.Viewer
	slide  *slider
	saver  *saver

	loading  bool
	notFound i18n.Key
	loadErr  error
	spinner  int

	tasks   components.Checklist
	choices []components.Choices
	focusQ  int

	notice    string
	noticeBad bool

	dragging bool
	dragX    int
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a screen that opens lessonSlug of pathSlug.
func New(env *screen.Env, pathSlug, lessonSlug string) *LessonScreen {
	s := &LessonScreen{
		env:        env,
		pathSlug:   pathSlug,
		lessonSlug: lessonSlug,
		slide:      newSlider(),
		saver:      newSaver(env.Progress),
		loading:    true,
	}
	s.viewer = lsn.NewViewer(env.UserID(), s.slide, env.LessonDeps())
	return s
}

func (s *LessonScreen) Init() tea.Cmd {
	return tea.Batch(s.load(s.lessonSlug), spinnerTick())
}

func (s *LessonScreen) Title() string {
	if s.viewer.Loaded() {
		return s.viewer.Lesson.Title
	}
	return s.env.T(i18n.Loading)
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonLoadedMsg:
		return s.handleLoaded(msg)

	case progressSavedMsg:
		return s.handleSaved(msg)

	case spinnerTickMsg:
		if !s.loading {
			return s, nil
		}
		s.spinner++
		return s, spinnerTick()

	case slideTickMsg:
		s.slide.advance()
		if s.slide.animating() {
			return s, slideTick()
		}
		return s, nil

	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button == tea.MouseLeft {
			s.dragging = true
			s.dragX = m.X
		}
		return s, nil

	case tea.MouseReleaseMsg:
		if !s.dragging {
			return s, nil
		}
		s.dragging = false
		if !s.interactive() {
			return s, nil
		}
		delta := float64((msg.Mouse().X - s.dragX) * pixelsPerCell)
		if s.viewer.Pager.Swipe(delta) {
			return s, s.afterPageChange()
		}
		return s, nil

	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		s.slide.vp, cmd = s.slide.vp.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// interactive reports whether a lesson is showing.
func (s *LessonScreen) interactive() bool {
	return !s.loading && s.notFound == "" && s.loadErr == nil && s.viewer.Loaded()
}

func (s *LessonScreen) load(slug string) tea.Cmd {
	env := s.env
	pathSlug := s.pathSlug
	return func() tea.Msg {
		ctx := context.Background()
		path, l, err := content.LoadLesson(ctx, env.Content, pathSlug, slug)
		msg := lessonLoadedMsg{Slug: slug, Path: path, Lesson: l, Err: err}
		if err != nil || path == nil || l == nil {
			return msg
		}

		if env.Progress != nil {
			rec, err := env.Progress.Read(ctx, env.UserID(), l.ID)
			if err != nil {
				env.Logger().Warn("read progress failed", "lesson_id", l.ID, "error", err)
			}
			msg.Record = rec
		}

		if l.Premium {
			ent, err := env.Entitlement(ctx)
			if err != nil {
				env.Logger().Warn("entitlement check failed", "user_id", env.UserID(), "error", err)
			}
			msg.Premium = ent.Premium
		}
		return msg
	}
}

func (s *LessonScreen) open(slug string) tea.Cmd {
	s.lessonSlug = slug
	s.loading = true
	s.loadErr = nil
	s.notFound = ""
	s.notice = ""
	return tea.Batch(s.load(slug), spinnerTick())
}

func (s *LessonScreen) handleLoaded(msg lessonLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Slug != s.lessonSlug {
		return s, nil
	}
	s.loading = false

	switch {
	case msg.Err != nil:
		s.loadErr = msg.Err
		s.env.Logger().Error("load lesson failed", "path", s.pathSlug, "lesson", msg.Slug, "error", msg.Err)
		return s, nil
	case msg.Path == nil:
		s.notFound = i18n.PathNotFound
		return s, nil
	case msg.Lesson == nil:
		s.notFound = i18n.LessonNotFound
		return s, nil
	}

	path := msg.Path.Sorted()
	s.viewer.Load(path, msg.Lesson, msg.Record, msg.Premium)
	s.viewer.Pager.SetAnimate(!s.env.ReducedMotion())
	s.resetWidgets()
	return s, nil
}

// resetWidgets rebuilds the checklist and quiz cursors for the lesson
// showing.
func (s *LessonScreen) resetWidgets() {
	l := s.viewer.Lesson
	var items []components.ChecklistItem
	if !s.viewer.PremiumRequired {
		for _, t := range content.AllTasks(l) {
			label := t.Description.PlainText()
			if label == "" {
				label = t.Key
			}
			items = append(items, components.ChecklistItem{Key: t.Key, Label: label, Optional: t.Optional})
		}
	}
	s.tasks = components.NewChecklist(items)

	s.choices = nil
	s.focusQ = 0
	if s.viewer.Quiz == nil {
		return
	}
	for _, q := range s.viewer.Quiz.Questions() {
		s.choices = append(s.choices, components.NewChoices(optionLabels(q, s.env.T)))
	}
}

func optionLabels(q content.Question, t func(i18n.Key, ...any) string) []string {
	if q.Type == content.QuestionTrueFalse {
		return []string{t(i18n.AnswerTrue), t(i18n.AnswerFalse)}
	}
	out := make([]string, len(q.Options))
	for i, o := range q.Options {
		out[i] = o.Text
	}
	return out
}

func (s *LessonScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.loadErr != nil && key == "r" {
		return s, s.open(s.lessonSlug)
	}
	if !s.interactive() {
		return s, nil
	}
	s.notice = ""

	switch key {
	case "right", "l":
		if s.viewer.Pager.Next() {
			return s, s.afterPageChange()
		}
		return s, nil
	case "left", "h":
		if s.viewer.Pager.Previous() {
			return s, s.afterPageChange()
		}
		return s, nil
	case "1", "2", "3", "4", "5":
		idx := int(key[0] - '1')
		if err := s.viewer.Pager.GoToIndex(idx); err == nil {
			return s, s.afterPageChange()
		}
		return s, nil
	case "c":
		return s, s.toggleCompletion()
	case "n":
		return s, s.finalAction()
	case "p":
		if prev := s.viewer.Neighbors.Previous; prev != nil {
			return s, s.open(prev.Slug)
		}
		return s, nil
	case "?":
		if s.env.Assistant == nil {
			return s, nil
		}
		ask := chatscreen.NewForLesson(s.env, chat.ContextFor(s.viewer.Path, s.viewer.Lesson))
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: ask} }
	case "pgup", "pgdown":
		var cmd tea.Cmd
		s.slide.vp, cmd = s.slide.vp.Update(msg)
		return s, cmd
	}

	switch s.viewer.Pager.Current() {
	case lsn.PageActions:
		return s.handleActionsKey(msg)
	case lsn.PageQuiz:
		return s.handleQuizKey(msg)
	default:
		var cmd tea.Cmd
		s.slide.vp, cmd = s.slide.vp.Update(msg)
		return s, cmd
	}
}

func (s *LessonScreen) afterPageChange() tea.Cmd {
	if s.slide.animating() {
		return slideTick()
	}
	return nil
}

func (s *LessonScreen) handleActionsKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "space", " ", "enter", "x":
		key := s.tasks.Focused()
		if key == "" || s.viewer.Gate == nil {
			return s, nil
		}
		w, err := s.viewer.ToggleTask(key, !s.viewer.Gate.IsChecked(key))
		if err != nil {
			s.setNotice(err)
			return s, nil
		}
		return s, s.persist(w)
	default:
		s.tasks = s.tasks.Update(msg)
		return s, nil
	}
}

func (s *LessonScreen) handleQuizKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	quiz := s.viewer.Quiz
	if quiz == nil || len(s.choices) == 0 {
		return s, nil
	}

	switch msg.String() {
	case "tab":
		s.focusQ = (s.focusQ + 1) % len(s.choices)
	case "shift+tab":
		s.focusQ = (s.focusQ + len(s.choices) - 1) % len(s.choices)
	case "space", " ", "enter":
		if quiz.Result() != nil {
			return s, nil
		}
		s.selectFocused()
		if s.focusQ < len(s.choices)-1 {
			s.focusQ++
		}
	case "s":
		res, err := s.viewer.SubmitQuiz(context.Background())
		switch {
		case errors.Is(err, lsn.ErrQuizUnanswered):
			s.notice, s.noticeBad = s.env.T(i18n.QuizUnanswered), true
		case err != nil:
			s.setNotice(err)
		default:
			s.notice, s.noticeBad = s.env.T(i18n.QuizScore, res.Correct, res.Total), false
		}
	case "r":
		if quiz.Result() != nil {
			quiz.Reset()
			s.focusQ = 0
		}
	default:
		s.choices[s.focusQ] = s.choices[s.focusQ].Update(msg)
	}
	return s, nil
}

func (s *LessonScreen) selectFocused() {
	quiz := s.viewer.Quiz
	q := quiz.Questions()[s.focusQ]
	cursor := s.choices[s.focusQ].Cursor

	var err error
	if q.Type == content.QuestionTrueFalse {
		err = quiz.SelectBool(s.focusQ, cursor == 0)
	} else {
		err = quiz.Select(s.focusQ, cursor)
	}
	if err != nil {
		s.setNotice(err)
	}
}

func (s *LessonScreen) toggleCompletion() tea.Cmd {
	w, err := s.viewer.ToggleCompletion()
	if err != nil {
		s.setNotice(err)
		return nil
	}
	return s.persist(w)
}

func (s *LessonScreen) finalAction() tea.Cmd {
	switch s.viewer.FinalAction() {
	case lsn.FinalNextLesson:
		return s.open(s.viewer.Neighbors.Next.Slug)
	case lsn.FinalCompleteCourse:
		next := complete.New(s.env, s.viewer.Path)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return nil
}

// setNotice shows err in the learner's language.
func (s *LessonScreen) setNotice(err error) {
	s.noticeBad = true
	var incomplete *lsn.ErrTasksIncomplete
	switch {
	case errors.As(err, &incomplete):
		s.notice = s.env.T(i18n.TasksIncomplete, len(incomplete.Missing))
	case errors.Is(err, lsn.ErrPremiumRequired):
		s.notice = s.env.T(i18n.PremiumRequired)
	case errors.Is(err, lsn.ErrNoQuiz):
		s.notice = s.env.T(i18n.NoQuiz)
	default:
		s.env.Logger().Warn("lesson action failed", "lesson_id", s.viewer.LessonID(), "error", err)
		s.notice = s.env.T(i18n.Unexpected)
	}
}

// persist stages the gate's current record and writes it in the
// background. w may be nil when nothing changed.
func (s *LessonScreen) persist(w *lsn.Write) tea.Cmd {
	if w == nil {
		return nil
	}
	s.saver.stage(s.viewer.Gate.Record())
	return s.saver.save(w.LessonID, []*lsn.Write{w})
}

func (s *LessonScreen) handleSaved(msg progressSavedMsg) (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	if len(msg.Writes) == 0 {
		if msg.Err != nil {
			s.env.Logger().Warn("progress resync failed", "error", msg.Err)
		}
		return s, nil
	}

	rolledBack := false
	for _, w := range msg.Writes {
		if s.viewer.Settle(ctx, w, msg.Err) {
			rolledBack = true
		}
	}

	if rolledBack {
		s.notice, s.noticeBad = s.env.T(i18n.SaveFailed), true
		// Store the rolled back state so it matches the screen.
		s.saver.stage(s.viewer.Gate.Record())
		return s, s.saver.save(s.viewer.LessonID(), nil)
	}

	last := msg.Writes[len(msg.Writes)-1]
	if msg.Err == nil && last.Kind == lsn.WriteCompletion && !s.viewer.Stale(last) {
		if last.Completed {
			s.notice, s.noticeBad = s.env.T(i18n.LessonCompleted), false
		} else {
			s.notice, s.noticeBad = s.env.T(i18n.LessonReopened), false
		}
	}
	return s, nil
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.loadErr != nil {
		return []layout.KeyHint{{Key: "r", Description: s.env.T(i18n.HintRetry)}, {Key: "Esc", Description: s.env.T(i18n.HintBack)}}
	}
	if !s.interactive() {
		return []layout.KeyHint{{Key: "Esc", Description: s.env.T(i18n.HintBack)}}
	}
	hints := []layout.KeyHint{{Key: "←→", Description: s.env.T(i18n.HintPage)}}
	switch s.viewer.Pager.Current() {
	case lsn.PageActions:
		hints = append(hints, layout.KeyHint{Key: "Space", Description: s.env.T(i18n.HintCheckTask)})
	case lsn.PageQuiz:
		hints = append(hints,
			layout.KeyHint{Key: "Space", Description: s.env.T(i18n.HintChoose)},
			layout.KeyHint{Key: "Tab", Description: s.env.T(i18n.HintQuestion)},
			layout.KeyHint{Key: "s", Description: s.env.T(i18n.HintSubmit)})
	}
	if !s.viewer.PremiumRequired {
		hints = append(hints, layout.KeyHint{Key: "c", Description: s.env.T(i18n.HintComplete)})
	}
	switch s.viewer.FinalAction() {
	case lsn.FinalNextLesson:
		hints = append(hints, layout.KeyHint{Key: "n", Description: s.env.T(i18n.NextLesson)})
	case lsn.FinalCompleteCourse:
		hints = append(hints, layout.KeyHint{Key: "n", Description: s.env.T(i18n.CompleteCourse)})
	}
	if s.env.Assistant != nil {
		hints = append(hints, layout.KeyHint{Key: "?", Description: s.env.T(i18n.HintAsk)})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: s.env.T(i18n.HintBack)})
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// saver writes progress records one at a time. Each write sends the
// newest record staged for its lesson, so writes finishing out of order
// still leave the latest local state stored.
type saver struct {
	store progress.Store

	mu     sync.Mutex
	latest map[string]progress.Record
}

func newSaver(store progress.Store) *saver {
	return &saver{store: store, latest: make(map[string]progress.Record)}
}

func (s *saver) stage(rec progress.Record) {
	s.mu.Lock()
	s.latest[rec.LessonID] = rec
	s.mu.Unlock()
}

func (s *saver) save(lessonID string, writes []*lsn.Write) tea.Cmd {
	return func() tea.Msg {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.store == nil {
			return progressSavedMsg{Writes: writes, Err: errors.New("no progress store configured")}
		}
		err := s.store.Write(context.Background(), s.latest[lessonID])
		return progressSavedMsg{Writes: writes, Err: err}
	}
}
