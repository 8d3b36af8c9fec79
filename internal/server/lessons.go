package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/moneypath/internal/access"
	"github.com/abhisek/moneypath/internal/auth"
	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/lesson"
	"github.com/abhisek/moneypath/internal/progress"
)

type lessonLink struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type lessonView struct {
	Lesson       *content.Lesson    `json:"lesson"`
	Pages        []lesson.Page      `json:"pages"`
	Progress     progress.Record    `json:"progress"`
	RequiredKeys []string           `json:"requiredKeys"`
	MissingKeys  []string           `json:"missingKeys"`
	CanComplete  bool               `json:"canComplete"`
	Previous     *lessonLink        `json:"previous,omitempty"`
	Next         *lessonLink        `json:"next,omitempty"`
	FinalAction  lesson.FinalAction `json:"finalAction"`
	Access       access.Entitlement `json:"access"`
}

type progressView struct {
	Progress    progress.Record `json:"progress"`
	MissingKeys []string        `json:"missingKeys"`
	CanComplete bool            `json:"canComplete"`
	Message     string          `json:"message,omitempty"`
}

func link(pathSlug string, l *content.LessonSummary) *lessonLink {
	if l == nil {
		return nil
	}
	return &lessonLink{Slug: l.Slug, Title: l.Title, URL: lesson.LessonURL(pathSlug, l.Slug)}
}

// openLesson loads the path and lesson named by the route, the learner's
// progress and entitlement, and builds a viewer over them. It writes the
// error response and returns nil when the lesson cannot be shown.
func (s *Server) openLesson(c *gin.Context) (*lesson.Viewer, access.Entitlement) {
	ctx := c.Request.Context()
	id := auth.FromContext(ctx)

	path, l, err := content.LoadLesson(ctx, s.deps.Content, c.Param("path"), c.Param("lesson"))
	if err != nil {
		s.respondInternal(c, err, i18n.Unexpected)
		return nil, access.Entitlement{}
	}
	if path == nil {
		s.respondNotFound(c, "path_not_found", i18n.PathNotFound)
		return nil, access.Entitlement{}
	}
	if l == nil {
		s.respondNotFound(c, "lesson_not_found", i18n.LessonNotFound)
		return nil, access.Entitlement{}
	}
	if _, _, ok := path.FindLesson(l.Slug); !ok {
		s.respondNotFound(c, "lesson_not_found", i18n.LessonNotFound)
		return nil, access.Entitlement{}
	}

	ent, err := s.deps.Access.Check(ctx, id)
	if err != nil {
		s.respondInternal(c, err, i18n.Unexpected)
		return nil, access.Entitlement{}
	}
	rec, err := s.deps.Progress.Read(ctx, id.UserID, l.ID)
	if err != nil {
		s.respondInternal(c, err, i18n.Unexpected)
		return nil, access.Entitlement{}
	}

	v := lesson.NewViewer(id.UserID, nil, s.lessonDeps())
	v.Load(path, l, rec, ent.Premium)
	if v.PremiumRequired {
		s.respondPremium(c, v)
		return nil, ent
	}
	return v, ent
}

func (s *Server) lessonDeps() lesson.Deps {
	return lesson.Deps{
		Store:      s.deps.Progress,
		Analytics:  s.deps.Analytics,
		Milestones: s.deps.Milestones,
		Log:        s.deps.Log,
		Now:        s.deps.Now,
	}
}

// respondPremium answers 403 with enough of the lesson to render its
// intro page behind the paywall.
func (s *Server) respondPremium(c *gin.Context, v *lesson.Viewer) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error": apiError{
			Code:    "premium_required",
			Message: i18n.T(s.locale(c), i18n.PremiumRequired),
		},
		"lesson": gin.H{
			"id":       v.Lesson.ID,
			"slug":     v.Lesson.Slug,
			"title":    v.Lesson.Title,
			"duration": v.Lesson.Duration,
			"pages":    v.Pager.Pages(),
		},
	})
}

func (s *Server) progressOf(c *gin.Context, g *lesson.Gate, msg i18n.Key) progressView {
	pv := progressView{
		Progress:    g.Record(),
		MissingKeys: nonNil(g.Missing()),
		CanComplete: g.CanComplete(),
	}
	if msg != "" {
		pv.Message = i18n.T(s.locale(c), msg)
	}
	return pv
}

func (s *Server) getLesson(c *gin.Context) {
	v, ent := s.openLesson(c)
	if v == nil {
		return
	}
	c.JSON(http.StatusOK, lessonView{
		Lesson:       v.Lesson,
		Pages:        v.Pager.Pages(),
		Progress:     v.Gate.Record(),
		RequiredKeys: nonNil(v.Gate.RequiredKeys()),
		MissingKeys:  nonNil(v.Gate.Missing()),
		CanComplete:  v.Gate.CanComplete(),
		Previous:     link(v.Path.Slug, v.Neighbors.Previous),
		Next:         link(v.Path.Slug, v.Neighbors.Next),
		FinalAction:  v.Neighbors.Final(),
		Access:       ent,
	})
}

type taskRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

func (s *Server) putTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		s.respondError(c, http.StatusBadRequest, "invalid_request", i18n.InvalidRequest)
		return
	}
	v, _ := s.openLesson(c)
	if v == nil {
		return
	}
	key := c.Param("key")
	if !v.Gate.HasTask(key) {
		s.respondError(c, http.StatusNotFound, "task_not_found", i18n.TaskNotFound)
		return
	}

	w, err := v.ToggleTask(key, *req.Checked)
	if err != nil {
		s.respondInternal(c, err, i18n.Unexpected)
		return
	}
	if err := v.Gate.Apply(c.Request.Context(), w); err != nil {
		s.respondInternal(c, err, i18n.SaveFailed)
		return
	}
	c.JSON(http.StatusOK, s.progressOf(c, v.Gate, ""))
}

type completionRequest struct {
	// Completed, when set, makes the request idempotent: nothing changes
	// if the lesson is already in that state.
	Completed *bool `json:"completed"`
}

func (s *Server) postCompletion(c *gin.Context) {
	var req completionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(err)
			s.respondError(c, http.StatusBadRequest, "invalid_request", i18n.InvalidRequest)
			return
		}
	}
	v, _ := s.openLesson(c)
	if v == nil {
		return
	}
	if req.Completed != nil && *req.Completed == v.Gate.Completed() {
		c.JSON(http.StatusOK, s.progressOf(c, v.Gate, ""))
		return
	}

	w, err := v.ToggleCompletion()
	var incomplete *lesson.ErrTasksIncomplete
	switch {
	case errors.As(err, &incomplete):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorEnvelope{Error: apiError{
			Code:    "tasks_incomplete",
			Message: i18n.T(s.locale(c), i18n.TasksIncomplete, len(incomplete.Missing)),
			Missing: incomplete.Missing,
		}})
		return
	case err != nil:
		s.respondInternal(c, err, i18n.Unexpected)
		return
	}
	if err := v.Gate.Apply(c.Request.Context(), w); err != nil {
		s.respondInternal(c, err, i18n.SaveFailed)
		return
	}

	msg := i18n.LessonReopened
	if w.Completed {
		msg = i18n.LessonCompleted
	}
	c.JSON(http.StatusOK, s.progressOf(c, v.Gate, msg))
}

type quizRequest struct {
	// Answers holds one entry per question; null leaves it unanswered.
	Answers []*lesson.Answer `json:"answers" binding:"required"`
}

type quizView struct {
	lesson.QuizResult
	Message string `json:"message"`
}

func (s *Server) postQuiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		s.respondError(c, http.StatusBadRequest, "invalid_request", i18n.InvalidRequest)
		return
	}
	v, _ := s.openLesson(c)
	if v == nil {
		return
	}
	if v.Quiz == nil {
		s.respondError(c, http.StatusNotFound, "no_quiz", i18n.NoQuiz)
		return
	}
	for i, a := range req.Answers {
		if a == nil {
			continue
		}
		if err := v.Quiz.Set(i, *a); err != nil {
			_ = c.Error(err)
			s.respondError(c, http.StatusBadRequest, "invalid_answer", i18n.InvalidRequest)
			return
		}
	}

	res, err := v.SubmitQuiz(c.Request.Context())
	switch {
	case errors.Is(err, lesson.ErrQuizUnanswered):
		s.respondError(c, http.StatusUnprocessableEntity, "quiz_unanswered", i18n.QuizUnanswered)
		return
	case err != nil:
		s.respondInternal(c, err, i18n.Unexpected)
		return
	}
	c.JSON(http.StatusOK, quizView{
		QuizResult: res,
		Message:    i18n.T(s.locale(c), i18n.QuizScore, res.Correct, res.Total),
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
