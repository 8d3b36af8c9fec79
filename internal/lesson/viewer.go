package lesson

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/moneypath/internal/analytics"
	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/progress"
)

// ErrPremiumRequired is returned for interactions with a premium lesson
// the learner is not entitled to.
var ErrPremiumRequired = errors.New("lesson requires premium access")

// ErrNoQuiz is returned when submitting answers for a lesson without a quiz.
var ErrNoQuiz = errors.New("lesson has no quiz")

// Viewer is the state of one lesson screen: the loaded documents, the
// pager, the completion gate and the neighbors used at the last page.
// It is built only once both the path and the lesson have resolved.
// A Viewer is not safe for concurrent use.
type Viewer struct {
	Path      *content.Path
	Lesson    *content.Lesson
	Pager     *Pager
	Gate      *Gate
	Quiz      *QuizState
	Neighbors Neighbors

	// PremiumRequired is set when the lesson is premium and the learner
	// has no access. Only the intro page is shown and Gate is nil.
	PremiumRequired bool

	userID   string
	scroller Scroller
	deps     Deps
}

// NewViewer returns an empty viewer for userID. scroller may be nil.
func NewViewer(userID string, scroller Scroller, deps Deps) *Viewer {
	return &Viewer{userID: userID, scroller: scroller, deps: deps.withDefaults()}
}

// Load shows lesson l of path. rec is the persisted progress, nil when
// there is none. When l is the lesson already showing and its access is
// unchanged, local state is kept and only the path and neighbors are
// refreshed; otherwise paging, tasks and quiz answers start over.
func (v *Viewer) Load(path *content.Path, l *content.Lesson, rec *progress.Record, premium bool) {
	locked := l.Premium && !premium
	same := v.Lesson != nil && v.Lesson.ID == l.ID && v.PremiumRequired == locked

	v.Path = path
	v.Neighbors = ResolveNeighbors(path, l.Slug)
	if same {
		v.Lesson = l
		return
	}

	v.Lesson = l
	v.PremiumRequired = locked
	if locked {
		v.Pager = NewPager(nil, v.scroller)
		v.Gate = nil
		v.Quiz = nil
		return
	}
	v.Pager = NewPager(l, v.scroller)
	v.Gate = NewGate(l, path, v.userID, rec, v.deps.Now(), v.deps)
	v.Quiz = NewQuizState(l.Quiz)
}

// Loaded reports whether a lesson is showing.
func (v *Viewer) Loaded() bool { return v.Lesson != nil }

// LessonID returns the id of the lesson showing, or "".
func (v *Viewer) LessonID() string {
	if v.Lesson == nil {
		return ""
	}
	return v.Lesson.ID
}

func (v *Viewer) gate() (*Gate, error) {
	if v.Lesson == nil {
		return nil, fmt.Errorf("no lesson loaded")
	}
	if v.PremiumRequired {
		return nil, ErrPremiumRequired
	}
	return v.Gate, nil
}

// ToggleTask checks or unchecks a task of the lesson showing. The
// returned write is nil when nothing changed.
func (v *Viewer) ToggleTask(key string, checked bool) (*Write, error) {
	g, err := v.gate()
	if err != nil {
		return nil, err
	}
	if !g.HasTask(key) {
		return nil, fmt.Errorf("lesson %s has no task %q", v.Lesson.ID, key)
	}
	return g.ToggleTask(key, checked), nil
}

// ToggleCompletion flips the completion state of the lesson showing.
func (v *Viewer) ToggleCompletion() (*Write, error) {
	g, err := v.gate()
	if err != nil {
		return nil, err
	}
	return g.ToggleCompletion(v.deps.Now())
}

// Stale reports whether w belongs to a lesson that is no longer showing.
func (v *Viewer) Stale(w *Write) bool {
	return w == nil || v.Gate == nil || w.LessonID != v.Gate.LessonID()
}

// Settle finishes a write once the store answered. Results for a lesson
// that is no longer showing are dropped. It reports whether the write
// was rolled back.
func (v *Viewer) Settle(ctx context.Context, w *Write, err error) bool {
	if v.Stale(w) {
		if w != nil {
			v.deps.Log.Debug("dropped progress result for previous lesson",
				"lesson_id", w.LessonID, "current", v.LessonID())
		}
		return false
	}
	return v.Gate.Settle(ctx, w, err)
}

// FinalAction is the action offered on the last page.
func (v *Viewer) FinalAction() FinalAction {
	if v.Pager == nil || !v.Pager.AtLast() {
		return FinalNone
	}
	return v.Neighbors.Final()
}

// NextURL is the route of the next lesson, or "" at the end of the path.
func (v *Viewer) NextURL() string {
	if v.Path == nil || v.Neighbors.Next == nil {
		return ""
	}
	return LessonURL(v.Path.Slug, v.Neighbors.Next.Slug)
}

// PreviousURL is the route of the previous lesson, or "" at the start.
func (v *Viewer) PreviousURL() string {
	if v.Path == nil || v.Neighbors.Previous == nil {
		return ""
	}
	return LessonURL(v.Path.Slug, v.Neighbors.Previous.Slug)
}

// SubmitQuiz scores the quiz answers. The first successful submission
// records a quiz_submitted event.
func (v *Viewer) SubmitQuiz(ctx context.Context) (QuizResult, error) {
	if v.PremiumRequired {
		return QuizResult{}, ErrPremiumRequired
	}
	if v.Quiz == nil {
		return QuizResult{}, ErrNoQuiz
	}
	already := v.Quiz.Result() != nil
	res, err := v.Quiz.Submit()
	if err != nil || already {
		return res, err
	}
	v.deps.Analytics.Record(ctx, analytics.Event{
		UserID: v.userID,
		Name:   analytics.QuizSubmitted,
		Properties: map[string]any{
			"lesson_id": v.Lesson.ID,
			"correct":   res.Correct,
			"total":     res.Total,
		},
	})
	return res, nil
}
