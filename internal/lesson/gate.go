package lesson

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/abhisek/moneypath/internal/analytics"
	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/logger"
	"github.com/abhisek/moneypath/internal/milestones"
	"github.com/abhisek/moneypath/internal/progress"
)

// ErrTasksIncomplete rejects marking a lesson complete while required
// tasks are unchecked.
type ErrTasksIncomplete struct {
	Missing []string
}

func (e *ErrTasksIncomplete) Error() string {
	return fmt.Sprintf("%d required task(s) not done: %s", len(e.Missing), strings.Join(e.Missing, ", "))
}

// MilestoneEvaluator is notified when a lesson is completed. It must not
// block.
type MilestoneEvaluator interface {
	Evaluate(ctx context.Context, t milestones.Trigger)
}

// Deps are the collaborators a Gate writes through.
type Deps struct {
	Store      progress.Store
	Analytics  analytics.Sink
	Milestones MilestoneEvaluator
	Log        *logger.Logger
	Now        func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Analytics == nil {
		d.Analytics = analytics.Nop{}
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// WriteKind distinguishes task toggles from completion toggles.
type WriteKind int

const (
	WriteTask WriteKind = iota
	WriteCompletion
)

func (k WriteKind) String() string {
	if k == WriteCompletion {
		return "completion"
	}
	return "task"
}

// Write is a change already applied to the gate's local state and waiting
// to be persisted. It remembers the prior state so a failed write can be
// undone.
type Write struct {
	LessonID string
	Kind     WriteKind

	// TaskKey and Checked describe a task toggle.
	TaskKey string
	Checked bool

	// Completed is the completion state a completion toggle moved to.
	Completed bool

	prevCompleted   bool
	prevCompletedAt *time.Time
	prevFirstAt     *time.Time
}

// RequiredKeys returns the keys of every non-optional task and
// deliverable of l, sorted.
func RequiredKeys(l *content.Lesson) []string {
	var keys []string
	for _, t := range content.AllTasks(l) {
		if !t.Optional {
			keys = append(keys, t.Key)
		}
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}

// Gate owns one user's completion state for one lesson. Local state is
// the source of truth for rendering; remote writes reconcile against it.
// A Gate is not safe for concurrent use.
type Gate struct {
	lesson   *content.Lesson
	path     *content.Path
	userID   string
	required []string

	completed   bool
	completedAt *time.Time
	firstAt     *time.Time
	keys        map[string]bool

	started time.Time

	// celebrated is set once completion side effects have fired, or when
	// the record shows the lesson was completed before.
	celebrated bool

	deps Deps
}

// NewGate builds a gate from the persisted record, which may be nil.
// started is when the learner opened the lesson.
func NewGate(l *content.Lesson, path *content.Path, userID string, rec *progress.Record, started time.Time, deps Deps) *Gate {
	r := progress.OrEmpty(rec, userID, l.ID)
	g := &Gate{
		lesson:      l,
		path:        path,
		userID:      userID,
		required:    RequiredKeys(l),
		completed:   r.Completed,
		completedAt: r.CompletedAt,
		firstAt:     r.FirstCompletedAt,
		keys:        make(map[string]bool, len(r.CompletedTaskKeys)),
		started:     started,
		celebrated:  r.EverCompleted(),
		deps:        deps.withDefaults(),
	}
	for _, k := range r.CompletedTaskKeys {
		g.keys[k] = true
	}
	return g
}

// LessonID is the id of the lesson the gate tracks.
func (g *Gate) LessonID() string { return g.lesson.ID }

// Completed reports the local completion state.
func (g *Gate) Completed() bool { return g.completed }

// IsChecked reports whether the task with key is checked.
func (g *Gate) IsChecked(key string) bool { return g.keys[key] }

// HasTask reports whether key names a task or deliverable of the lesson.
func (g *Gate) HasTask(key string) bool {
	for _, t := range content.AllTasks(g.lesson) {
		if t.Key == key {
			return true
		}
	}
	return false
}

// CheckedKeys returns the checked task keys, sorted.
func (g *Gate) CheckedKeys() []string {
	return slices.Sorted(maps.Keys(g.keys))
}

// RequiredKeys returns the keys that must be checked before completion.
func (g *Gate) RequiredKeys() []string { return slices.Clone(g.required) }

// Missing returns required keys that are not checked.
func (g *Gate) Missing() []string {
	var out []string
	for _, k := range g.required {
		if !g.keys[k] {
			out = append(out, k)
		}
	}
	return out
}

// CanComplete reports whether every required task is checked.
func (g *Gate) CanComplete() bool { return len(g.Missing()) == 0 }

// ToggleTask checks or unchecks a task. Tasks are never gated, even on a
// completed lesson. It returns nil when the task is already in the
// requested state.
func (g *Gate) ToggleTask(key string, checked bool) *Write {
	if g.keys[key] == checked {
		return nil
	}
	g.setKey(key, checked)
	return &Write{
		LessonID: g.lesson.ID,
		Kind:     WriteTask,
		TaskKey:  key,
		Checked:  checked,
	}
}

// ToggleCompletion flips the completion flag. Reopening is always
// allowed; completing requires every required task to be checked and
// otherwise fails with *ErrTasksIncomplete without changing anything.
func (g *Gate) ToggleCompletion(now time.Time) (*Write, error) {
	w := &Write{
		LessonID:        g.lesson.ID,
		Kind:            WriteCompletion,
		prevCompleted:   g.completed,
		prevCompletedAt: g.completedAt,
		prevFirstAt:     g.firstAt,
	}
	if g.completed {
		g.completed = false
		g.completedAt = nil
		return w, nil
	}

	if missing := g.Missing(); len(missing) > 0 {
		return nil, &ErrTasksIncomplete{Missing: missing}
	}
	g.completed = true
	g.completedAt = &now
	if g.firstAt == nil {
		g.firstAt = &now
	}
	w.Completed = true
	return w, nil
}

// Record builds the progress record from the current local state.
func (g *Gate) Record() progress.Record {
	rec := progress.Record{
		UserID:            g.userID,
		LessonID:          g.lesson.ID,
		ModuleID:          g.lesson.Module.ID,
		Completed:         g.completed,
		CompletedTaskKeys: g.CheckedKeys(),
		CompletedAt:       g.completedAt,
		FirstCompletedAt:  g.firstAt,
		UpdatedAt:         g.deps.Now(),
	}
	if g.path != nil {
		rec.CourseID = g.path.ID
	}
	return rec
}

// Persist writes the gate's current state, not the state at the time w
// was created, so out-of-order acknowledgements still converge on the
// latest local view.
func (g *Gate) Persist(ctx context.Context, w *Write) error {
	if w == nil {
		return nil
	}
	if g.deps.Store == nil {
		return fmt.Errorf("no progress store configured")
	}
	return g.deps.Store.Write(ctx, g.Record())
}

// Settle finishes w once its write returned err. A failed write is undone
// locally and logged; it reports true in that case. A successful write
// that completed the lesson for the first time fires the completion
// analytics event and milestone evaluation.
func (g *Gate) Settle(ctx context.Context, w *Write, err error) bool {
	if w == nil {
		return false
	}
	if err != nil {
		g.undo(w)
		g.deps.Log.Warn("progress write failed, rolled back",
			"lesson_id", w.LessonID, "kind", w.Kind, "task", w.TaskKey, "user_id", g.userID, "error", err)
		return true
	}

	if w.Kind == WriteCompletion && w.Completed && !g.celebrated {
		g.celebrated = true
		g.fireCompleted(ctx)
	}
	return false
}

// Apply persists w and settles it. It is for callers that can block on
// the write, such as HTTP handlers.
func (g *Gate) Apply(ctx context.Context, w *Write) error {
	err := g.Persist(ctx, w)
	g.Settle(ctx, w, err)
	return err
}

func (g *Gate) undo(w *Write) {
	switch w.Kind {
	case WriteTask:
		g.setKey(w.TaskKey, !w.Checked)
	case WriteCompletion:
		g.completed = w.prevCompleted
		g.completedAt = w.prevCompletedAt
		g.firstAt = w.prevFirstAt
	}
}

func (g *Gate) setKey(key string, checked bool) {
	if checked {
		g.keys[key] = true
	} else {
		delete(g.keys, key)
	}
}

func (g *Gate) fireCompleted(ctx context.Context) {
	elapsed := int(g.deps.Now().Sub(g.started).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	g.deps.Analytics.Record(ctx, analytics.Event{
		UserID: g.userID,
		Name:   analytics.LessonCompleted,
		Properties: map[string]any{
			"lesson_id":       g.lesson.ID,
			"title":           g.lesson.Title,
			"elapsed_seconds": elapsed,
		},
	})
	if g.deps.Milestones != nil {
		g.deps.Milestones.Evaluate(ctx, milestones.Trigger{
			UserID: g.userID,
			Kind:   milestones.KindLesson,
			ID:     g.lesson.ID,
			Path:   g.path,
		})
	}
}
