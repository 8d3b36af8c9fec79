package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/moneypath/internal/auth"
	"github.com/abhisek/moneypath/internal/chat"
	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/lesson"
)

type pathLesson struct {
	content.LessonSummary
	URL       string `json:"url"`
	Completed bool   `json:"completed"`
	Locked    bool   `json:"locked"`
}

type pathModule struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Order   int          `json:"order"`
	Lessons []pathLesson `json:"lessons"`
}

type pathView struct {
	ID          string       `json:"id"`
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Modules     []pathModule `json:"modules"`
	Completed   int          `json:"completedCount"`
	Total       int          `json:"totalCount"`
}

func (s *Server) getPath(c *gin.Context) {
	ctx := c.Request.Context()
	id := auth.FromContext(ctx)

	path, err := s.deps.Content.FetchPath(ctx, c.Param("path"))
	if err != nil {
		s.respondInternal(c, err, i18n.Unexpected)
		return
	}
	if path == nil {
		s.respondNotFound(c, "path_not_found", i18n.PathNotFound)
		return
	}
	recs, err := s.deps.Progress.ListByCourse(ctx, id.UserID, path.ID)
	if err != nil {
		s.respondInternal(c, err, i18n.Unexpected)
		return
	}
	ent, err := s.deps.Access.Check(ctx, id)
	if err != nil {
		s.respondInternal(c, err, i18n.Unexpected)
		return
	}

	done := make(map[string]bool, len(recs))
	for _, r := range recs {
		if r.Completed {
			done[r.LessonID] = true
		}
	}

	sorted := path.Sorted()
	view := pathView{
		ID:          sorted.ID,
		Slug:        sorted.Slug,
		Title:       sorted.Title,
		Description: sorted.Description,
		Modules:     make([]pathModule, 0, len(sorted.Modules)),
	}
	for _, m := range sorted.Modules {
		pm := pathModule{ID: m.ID, Title: m.Title, Order: m.Order, Lessons: make([]pathLesson, 0, len(m.Lessons))}
		for _, l := range m.Lessons {
			pm.Lessons = append(pm.Lessons, pathLesson{
				LessonSummary: l,
				URL:           lesson.LessonURL(sorted.Slug, l.Slug),
				Completed:     done[l.ID],
				Locked:        l.Premium && !ent.Premium,
			})
			view.Total++
			if done[l.ID] {
				view.Completed++
			}
		}
		view.Modules = append(view.Modules, pm)
	}
	c.JSON(http.StatusOK, view)
}

type chatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`

	// Lesson optionally names the lesson the learner has open.
	Lesson *struct {
		Path string `json:"path" binding:"required"`
		Slug string `json:"slug" binding:"required"`
	} `json:"lesson"`
}

func (s *Server) postChat(c *gin.Context) {
	if s.deps.Chat == nil {
		s.respondError(c, http.StatusServiceUnavailable, "chat_unavailable", i18n.ChatUnavailable)
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		s.respondError(c, http.StatusBadRequest, "invalid_request", i18n.InvalidRequest)
		return
	}

	ctx := c.Request.Context()
	var lc chat.LessonContext
	if req.Lesson != nil {
		// Context is best effort; a missing lesson still gets an answer.
		path, l, err := content.LoadLesson(ctx, s.deps.Content, req.Lesson.Path, req.Lesson.Slug)
		if err != nil {
			s.deps.Log.Warn("chat lesson context unavailable", "path", req.Lesson.Path, "lesson", req.Lesson.Slug, "error", err)
		}
		if l != nil && l.Premium {
			if ent, err := s.deps.Access.Check(ctx, auth.FromContext(ctx)); err != nil || !ent.Premium {
				l = nil
			}
		}
		lc = chat.ContextFor(path, l)
	}

	who := chat.Learner{Locale: s.locale(c)}
	if id := auth.FromContext(ctx); id != nil {
		who.UserID = id.UserID
	}
	reply, err := s.deps.Chat.AskFor(ctx, who, req.Message, lc)
	if err != nil {
		s.respondInternal(c, err, i18n.ChatUnavailable)
		return
	}
	c.JSON(http.StatusOK, reply)
}

type milestoneView struct {
	Code     string `json:"code"`
	Title    string `json:"title"`
	Icon     string `json:"icon"`
	LessonID string `json:"lessonId,omitempty"`
}

func (s *Server) getMilestones(c *gin.Context) {
	out := []milestoneView{}
	if s.deps.Milestones != nil {
		list, err := s.deps.Milestones.List(c.Request.Context(), auth.FromContext(c.Request.Context()).UserID)
		if err != nil {
			s.respondInternal(c, err, i18n.Unexpected)
			return
		}
		for _, m := range list {
			out = append(out, milestoneView{Code: m.Code, Title: m.Title, Icon: m.Icon(), LessonID: m.LessonID})
		}
	}
	c.JSON(http.StatusOK, gin.H{"milestones": out})
}

func (s *Server) getAccess(c *gin.Context) {
	id := auth.FromContext(c.Request.Context())
	ent, err := s.deps.Access.Check(c.Request.Context(), id)
	if err != nil {
		s.respondInternal(c, err, i18n.Unexpected)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId": id.UserID,
		"role":   id.Role,
		"access": ent,
	})
}
