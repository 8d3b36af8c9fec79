// Package server is the JSON API the web front end talks to. It exposes
// the same lesson, progress and chat operations as the terminal app.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/moneypath/internal/access"
	"github.com/abhisek/moneypath/internal/analytics"
	"github.com/abhisek/moneypath/internal/auth"
	"github.com/abhisek/moneypath/internal/chat"
	"github.com/abhisek/moneypath/internal/config"
	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/lesson"
	"github.com/abhisek/moneypath/internal/logger"
	"github.com/abhisek/moneypath/internal/milestones"
	"github.com/abhisek/moneypath/internal/progress"
)

// ProgressStore is the progress capability the API needs.
type ProgressStore interface {
	progress.Store
	ListByCourse(ctx context.Context, userID, courseID string) ([]progress.Record, error)
}

// Entitlements answers premium access checks.
type Entitlements interface {
	Check(ctx context.Context, id *auth.Identity) (access.Entitlement, error)
}

// Milestones evaluates and lists earned milestones.
type Milestones interface {
	lesson.MilestoneEvaluator
	List(ctx context.Context, userID string) ([]milestones.Milestone, error)
}

// Assistant answers chat questions on each learner's own thread.
type Assistant interface {
	AskFor(ctx context.Context, who chat.Learner, question string, lc chat.LessonContext) (chat.Reply, error)
}

// Deps are the services behind the API. Milestones, Analytics and Chat
// may be nil.
type Deps struct {
	Content    content.Provider
	Progress   ProgressStore
	Access     Entitlements
	Milestones Milestones
	Analytics  analytics.Sink
	Chat       Assistant
	Verifier   *auth.Verifier
	Log        *logger.Logger

	// Locale is used when the request does not ask for a supported one.
	Locale string
	Now    func() time.Time
}

// Server owns the gin engine and the listening http.Server.
type Server struct {
	cfg    config.HTTPConfig
	deps   Deps
	engine *gin.Engine
}

// New builds the API. It does not start listening.
func New(cfg config.HTTPConfig, deps Deps) *Server {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Analytics == nil {
		deps.Analytics = analytics.Nop{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if !i18n.Supported(deps.Locale) {
		deps.Locale = i18n.DefaultLocale
	}
	s := &Server{cfg: cfg, deps: deps}
	s.engine = s.routes()
	return s
}

// Handler returns the API as an http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(s.deps.Log), corsMiddleware(s.cfg.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api", requireAuth(s.deps.Verifier, s.deps.Locale))
	{
		api.GET("/paths/:path", s.getPath)
		api.GET("/paths/:path/lessons/:lesson", s.getLesson)
		api.PUT("/paths/:path/lessons/:lesson/tasks/:key", s.putTask)
		api.POST("/paths/:path/lessons/:lesson/completion", s.postCompletion)
		api.POST("/paths/:path/lessons/:lesson/quiz", s.postQuiz)
		api.POST("/chat", s.postChat)
		api.GET("/milestones", s.getMilestones)
		api.GET("/me/access", s.getAccess)
	}
	return r
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.deps.Log.Info("http server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	s.deps.Log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
