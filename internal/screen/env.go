package screen

import (
	"context"

	"github.com/abhisek/moneypath/internal/access"
	"github.com/abhisek/moneypath/internal/analytics"
	"github.com/abhisek/moneypath/internal/auth"
	"github.com/abhisek/moneypath/internal/chat"
	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/lesson"
	"github.com/abhisek/moneypath/internal/logger"
	"github.com/abhisek/moneypath/internal/milestones"
	"github.com/abhisek/moneypath/internal/progress"
	"github.com/abhisek/moneypath/internal/settings"
)

// ProgressStore reads and writes lesson progress and summarizes it for
// overview screens.
type ProgressStore interface {
	progress.Store
	ListByCourse(ctx context.Context, userID, courseID string) ([]progress.Record, error)
	CompletedCount(ctx context.Context, userID string) (int, error)
}

// AccessChecker resolves premium entitlements.
type AccessChecker interface {
	Check(ctx context.Context, id *auth.Identity) (access.Entitlement, error)
}

// Env carries the services shared by every screen. Milestones and
// Assistant may be nil.
type Env struct {
	Content    content.Provider
	Progress   ProgressStore
	Access     AccessChecker
	Identity   *auth.Identity
	Milestones *milestones.Service
	Analytics  analytics.Sink
	Assistant  *chat.Assistant
	Settings   *settings.Settings
	Log        *logger.Logger

	// PathSlug is the learning path opened by "Continue learning".
	PathSlug string
}

// UserID returns the signed-in learner's id.
func (e *Env) UserID() string {
	if e.Identity == nil {
		return ""
	}
	return e.Identity.UserID
}

// Locale returns the learner's locale.
func (e *Env) Locale() string {
	if e == nil || e.Settings == nil {
		return i18n.DefaultLocale
	}
	return e.Settings.Locale()
}

// T translates key in the learner's locale.
func (e *Env) T(key i18n.Key, args ...any) string {
	return i18n.T(e.Locale(), key, args...)
}

// ReducedMotion reports whether animations are disabled.
func (e *Env) ReducedMotion() bool {
	return e.Settings != nil && e.Settings.ReducedMotion()
}

// Entitlement checks premium access for the signed-in learner.
func (e *Env) Entitlement(ctx context.Context) (access.Entitlement, error) {
	if e.Access == nil {
		return access.Entitlement{Reason: access.ReasonNone}, nil
	}
	return e.Access.Check(ctx, e.Identity)
}

// LessonDeps returns the collaborators a lesson viewer writes through.
func (e *Env) LessonDeps() lesson.Deps {
	d := lesson.Deps{
		Store:     e.Progress,
		Analytics: e.Analytics,
		Log:       e.Log,
	}
	if e.Milestones != nil {
		d.Milestones = e.Milestones
	}
	return d
}

// Logger returns the configured logger or a no-op one.
func (e *Env) Logger() *logger.Logger {
	if e.Log == nil {
		return logger.Nop()
	}
	return e.Log
}
