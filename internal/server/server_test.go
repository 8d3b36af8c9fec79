package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/moneypath/internal/access"
	"github.com/abhisek/moneypath/internal/auth"
	"github.com/abhisek/moneypath/internal/chat"
	"github.com/abhisek/moneypath/internal/config"
	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/milestones"
	"github.com/abhisek/moneypath/internal/progress"
)

func init() { gin.SetMode(gin.TestMode) }

const secret = "test-secret"

type fakeContent struct {
	paths   map[string]*content.Path
	lessons map[string]*content.Lesson
	err     error
}

func (f *fakeContent) FetchPath(_ context.Context, slug string) (*content.Path, error) {
	return f.paths[slug], f.err
}

func (f *fakeContent) FetchLesson(_ context.Context, slug string) (*content.Lesson, error) {
	return f.lessons[slug], f.err
}

type fakeProgress struct {
	recs     map[string]progress.Record
	writes   int
	writeErr error
}

func (f *fakeProgress) Read(_ context.Context, userID, lessonID string) (*progress.Record, error) {
	r, ok := f.recs[userID+"/"+lessonID]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeProgress) Write(_ context.Context, rec progress.Record) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes++
	f.recs[rec.UserID+"/"+rec.LessonID] = rec
	return nil
}

func (f *fakeProgress) ListByCourse(_ context.Context, userID, courseID string) ([]progress.Record, error) {
	var out []progress.Record
	for _, r := range f.recs {
		if r.UserID == userID && r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeAccess struct{ premium bool }

func (f fakeAccess) Check(context.Context, *auth.Identity) (access.Entitlement, error) {
	if f.premium {
		return access.Entitlement{Premium: true, Reason: access.ReasonSubscription}, nil
	}
	return access.Entitlement{Reason: access.ReasonNone}, nil
}

type fakeMilestones struct {
	triggers []milestones.Trigger
}

func (f *fakeMilestones) Evaluate(_ context.Context, t milestones.Trigger) {
	f.triggers = append(f.triggers, t)
}

func (f *fakeMilestones) List(context.Context, string) ([]milestones.Milestone, error) {
	return []milestones.Milestone{{Code: "first_lesson", Title: "First lesson"}}, nil
}

type fakeAssistant struct {
	lc  chat.LessonContext
	who chat.Learner
}

func (f *fakeAssistant) AskFor(_ context.Context, who chat.Learner, q string, lc chat.LessonContext) (chat.Reply, error) {
	f.lc = lc
	f.who = who
	return chat.Reply{Text: "echo: " + q, FollowUps: []string{}}, nil
}

func testLesson(slug string, premium bool) *content.Lesson {
	return &content.Lesson{
		ID:           "id-" + slug,
		Slug:         slug,
		Title:        "Lesson " + slug,
		Body:         content.Blocks(`"Track your spending for a week."`),
		KeyTakeaways: content.Blocks(`"Small leaks sink big ships."`),
		Tasks:        []content.Task{{Key: "list"}, {Key: "share", Optional: true}},
		Deliverables: []content.Task{{Key: "budget"}},
		Quiz: &content.Quiz{Questions: []content.Question{
			{Text: "Pick b", Type: content.QuestionMultipleChoice, Options: []content.Option{{Text: "a"}, {Text: "b", Correct: true}}},
			{Text: "True?", Type: content.QuestionTrueFalse, CorrectAnswer: ptr(true)},
		}},
		Module:  content.ModuleRef{ID: "m1", Title: "Budgeting"},
		Premium: premium,
	}
}

func ptr[T any](v T) *T { return &v }

type harness struct {
	srv       *Server
	progress  *fakeProgress
	content   *fakeContent
	milestone *fakeMilestones
	assistant *fakeAssistant
	token     string
}

func newHarness(t *testing.T, premium bool) *harness {
	t.Helper()
	path := &content.Path{
		ID: "p1", Slug: "money-basics", Title: "Money Basics",
		Modules: []content.Module{
			{ID: "m2", Title: "Saving", Order: 2, Lessons: []content.LessonSummary{{ID: "id-emergency", Slug: "emergency", Title: "Emergency fund", Order: 1, Premium: true}}},
			{ID: "m1", Title: "Budgeting", Order: 1, Lessons: []content.LessonSummary{
				{ID: "id-track", Slug: "track", Title: "Track spending", Order: 1},
				{ID: "id-plan", Slug: "plan", Title: "Make a plan", Order: 2},
			}},
		},
	}
	h := &harness{
		progress:  &fakeProgress{recs: map[string]progress.Record{}},
		milestone: &fakeMilestones{},
		assistant: &fakeAssistant{},
		content: &fakeContent{
			paths: map[string]*content.Path{"money-basics": path},
			lessons: map[string]*content.Lesson{
				"track":     testLesson("track", false),
				"plan":      testLesson("plan", false),
				"emergency": testLesson("emergency", true),
				"orphan":    testLesson("orphan", false),
			},
		},
	}
	v := auth.NewVerifier(secret)
	tok, err := v.Sign(auth.Identity{UserID: "u1", Email: "u1@example.com"}, time.Hour)
	require.NoError(t, err)
	h.token = tok

	h.srv = New(config.HTTPConfig{Addr: ":0"}, Deps{
		Content:    h.content,
		Progress:   h.progress,
		Access:     fakeAccess{premium: premium},
		Milestones: h.milestone,
		Chat:       h.assistant,
		Verifier:   v,
		Locale:     "en",
	})
	return h
}

func (h *harness) do(t *testing.T, method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Authorization", "Bearer "+h.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	e, ok := decode(t, rec)["error"].(map[string]any)
	require.True(t, ok, rec.Body.String())
	return e
}

func TestRequiresBearerToken(t *testing.T) {
	h := newHarness(t, false)

	for _, token := range []string{"", "garbage"} {
		h.token = token
		rec := h.do(t, http.MethodGet, "/api/me/access", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "unauthorized", errorOf(t, rec)["code"])
	}
}

func TestRequestIDEchoed(t *testing.T) {
	h := newHarness(t, false)
	rec := h.do(t, http.MethodGet, "/api/me/access", nil, "X-Request-ID", "req-123")
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	rec = h.do(t, http.MethodGet, "/api/me/access", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestGetPath(t *testing.T) {
	h := newHarness(t, false)
	h.progress.recs["u1/id-track"] = progress.Record{UserID: "u1", LessonID: "id-track", CourseID: "p1", Completed: true}

	rec := h.do(t, http.MethodGet, "/api/paths/money-basics", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var view pathView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Modules, 2)
	assert.Equal(t, "m1", view.Modules[0].ID)
	assert.Equal(t, "track", view.Modules[0].Lessons[0].Slug)
	assert.True(t, view.Modules[0].Lessons[0].Completed)
	assert.False(t, view.Modules[0].Lessons[1].Completed)
	assert.True(t, view.Modules[1].Lessons[0].Locked)
	assert.Equal(t, "/courses/money-basics/lessons/plan", view.Modules[0].Lessons[1].URL)
	assert.Equal(t, 1, view.Completed)
	assert.Equal(t, 3, view.Total)
}

func TestNotFoundCarriesRecoveryLink(t *testing.T) {
	h := newHarness(t, false)

	tests := []struct {
		target string
		code   string
	}{
		{"/api/paths/nope", "path_not_found"},
		{"/api/paths/nope/lessons/track", "path_not_found"},
		{"/api/paths/money-basics/lessons/nope", "lesson_not_found"},
		{"/api/paths/money-basics/lessons/orphan", "lesson_not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := h.do(t, http.MethodGet, tt.target, nil)
			require.Equal(t, http.StatusNotFound, rec.Code)
			e := errorOf(t, rec)
			assert.Equal(t, tt.code, e["code"])
			assert.Equal(t, "/courses", e["link"])
			assert.Equal(t, "Back to courses", e["linkText"])
		})
	}
}

func TestContentFailureIs500(t *testing.T) {
	h := newHarness(t, false)
	h.content.err = errors.New("cms down")
	rec := h.do(t, http.MethodGet, "/api/paths/money-basics/lessons/track", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetLesson(t *testing.T) {
	h := newHarness(t, false)
	h.progress.recs["u1/id-plan"] = progress.Record{UserID: "u1", LessonID: "id-plan", CompletedTaskKeys: []string{"list"}}

	rec := h.do(t, http.MethodGet, "/api/paths/money-basics/lessons/plan", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.Equal(t, []any{"intro", "content", "takeaways", "actions", "quiz"}, body["pages"])
	assert.Equal(t, []any{"budget", "list"}, body["requiredKeys"])
	assert.Equal(t, []any{"budget"}, body["missingKeys"])
	assert.Equal(t, false, body["canComplete"])
	assert.Equal(t, "/courses/money-basics/lessons/track", body["previous"].(map[string]any)["url"])
	assert.Equal(t, "emergency", body["next"].(map[string]any)["slug"])
	assert.Equal(t, "next_lesson", body["finalAction"])
}

func TestPremiumLessonForbidden(t *testing.T) {
	h := newHarness(t, false)

	rec := h.do(t, http.MethodGet, "/api/paths/money-basics/lessons/emergency", nil, "Accept-Language", "es-MX,es;q=0.9")
	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decode(t, rec)
	e := body["error"].(map[string]any)
	assert.Equal(t, "premium_required", e["code"])
	assert.Equal(t, "Esta lección es parte de MoneyPath Premium.", e["message"])
	assert.Equal(t, []any{"intro"}, body["lesson"].(map[string]any)["pages"])

	rec = h.do(t, http.MethodPut, "/api/paths/money-basics/lessons/emergency/tasks/list", gin.H{"checked": true})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, h.progress.writes)
}

func TestPremiumLessonWithAccess(t *testing.T) {
	h := newHarness(t, true)
	rec := h.do(t, http.MethodGet, "/api/paths/money-basics/lessons/emergency", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "complete_course", decode(t, rec)["finalAction"])
}

func TestPutTask(t *testing.T) {
	h := newHarness(t, false)

	rec := h.do(t, http.MethodPut, "/api/paths/money-basics/lessons/track/tasks/list", gin.H{"checked": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"list"}, h.progress.recs["u1/id-track"].CompletedTaskKeys)
	assert.Equal(t, "p1", h.progress.recs["u1/id-track"].CourseID)
	assert.Equal(t, []any{"budget"}, decode(t, rec)["missingKeys"])

	// Same state again writes nothing.
	rec = h.do(t, http.MethodPut, "/api/paths/money-basics/lessons/track/tasks/list", gin.H{"checked": true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, h.progress.writes)

	rec = h.do(t, http.MethodPut, "/api/paths/money-basics/lessons/track/tasks/list", gin.H{"checked": false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, h.progress.recs["u1/id-track"].CompletedTaskKeys)
}

func TestPutTaskErrors(t *testing.T) {
	h := newHarness(t, false)

	rec := h.do(t, http.MethodPut, "/api/paths/money-basics/lessons/track/tasks/nope", gin.H{"checked": true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "task_not_found", errorOf(t, rec)["code"])

	rec = h.do(t, http.MethodPut, "/api/paths/money-basics/lessons/track/tasks/list", gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h.progress.writeErr = errors.New("disk full")
	rec = h.do(t, http.MethodPut, "/api/paths/money-basics/lessons/track/tasks/list", gin.H{"checked": true})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "We couldn't save that change. Please try again.", errorOf(t, rec)["message"])
}

func TestCompletionGate(t *testing.T) {
	h := newHarness(t, false)
	target := "/api/paths/money-basics/lessons/track/completion"

	rec := h.do(t, http.MethodPost, target, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	e := errorOf(t, rec)
	assert.Equal(t, "tasks_incomplete", e["code"])
	assert.Equal(t, []any{"budget", "list"}, e["missing"])
	assert.Contains(t, e["message"], "2 required tasks")
	assert.Zero(t, h.progress.writes)

	h.progress.recs["u1/id-track"] = progress.Record{UserID: "u1", LessonID: "id-track", CompletedTaskKeys: []string{"budget", "list"}}

	rec = h.do(t, http.MethodPost, target, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, h.progress.recs["u1/id-track"].Completed)
	assert.NotNil(t, h.progress.recs["u1/id-track"].CompletedAt)
	assert.Equal(t, "Lesson complete. Nice work!", decode(t, rec)["message"])
	require.Len(t, h.milestone.triggers, 1)
	assert.Equal(t, "id-track", h.milestone.triggers[0].ID)

	// Idempotent form leaves a completed lesson alone.
	writes := h.progress.writes
	rec = h.do(t, http.MethodPost, target, gin.H{"completed": true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, writes, h.progress.writes)

	// Plain toggle reopens.
	rec = h.do(t, http.MethodPost, target, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, h.progress.recs["u1/id-track"].Completed)
	assert.Nil(t, h.progress.recs["u1/id-track"].CompletedAt)
	assert.Equal(t, "Lesson marked as not complete.", decode(t, rec)["message"])
}

func TestCompletionAfterReopenFiresOnce(t *testing.T) {
	h := newHarness(t, false)
	target := "/api/paths/money-basics/lessons/track/completion"
	h.progress.recs["u1/id-track"] = progress.Record{UserID: "u1", LessonID: "id-track", CompletedTaskKeys: []string{"budget", "list"}}

	for i, want := range []bool{true, false, true} {
		rec := h.do(t, http.MethodPost, target, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Equal(t, want, h.progress.recs["u1/id-track"].Completed, "toggle %d", i)
	}
	assert.NotNil(t, h.progress.recs["u1/id-track"].FirstCompletedAt)
	assert.Len(t, h.milestone.triggers, 1)
}

func TestQuiz(t *testing.T) {
	h := newHarness(t, false)
	target := "/api/paths/money-basics/lessons/track/quiz"

	rec := h.do(t, http.MethodPost, target, gin.H{"answers": []any{gin.H{"option": 1}, nil}})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "quiz_unanswered", errorOf(t, rec)["code"])

	rec = h.do(t, http.MethodPost, target, gin.H{"answers": []any{gin.H{"option": 1}, gin.H{"bool": false}}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.EqualValues(t, 1, body["correct"])
	assert.EqualValues(t, 2, body["total"])
	assert.Equal(t, []any{true, false}, body["perQuestion"])
	assert.Equal(t, "You answered 1 of 2 correctly.", body["message"])

	rec = h.do(t, http.MethodPost, target, gin.H{"answers": []any{gin.H{"option": 9}}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat(t *testing.T) {
	h := newHarness(t, false)

	rec := h.do(t, http.MethodPost, "/api/chat", gin.H{
		"message": "What is a sinking fund?",
		"lesson":  gin.H{"path": "money-basics", "slug": "plan"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "echo: What is a sinking fund?", decode(t, rec)["text"])
	assert.Equal(t, "Lesson plan", h.assistant.lc.LessonTitle)
	assert.Equal(t, "Money Basics", h.assistant.lc.PathTitle)
	assert.Equal(t, chat.Learner{UserID: "u1", Locale: "en"}, h.assistant.who)

	// Premium lessons are not leaked into the prompt without access.
	rec = h.do(t, http.MethodPost, "/api/chat", gin.H{
		"message": "hi",
		"lesson":  gin.H{"path": "money-basics", "slug": "emergency"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, h.assistant.lc.LessonTitle)

	rec = h.do(t, http.MethodPost, "/api/chat", gin.H{"message": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMilestonesAndAccess(t *testing.T) {
	h := newHarness(t, true)

	rec := h.do(t, http.MethodGet, "/api/milestones", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode(t, rec)["milestones"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "first_lesson", list[0].(map[string]any)["code"])

	rec = h.do(t, http.MethodGet, "/api/me/access", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "u1", body["userId"])
	assert.Equal(t, true, body["access"].(map[string]any)["premium"])
}

func TestRequestLocale(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"es", "es"},
		{"fr-FR,es;q=0.8", "es"},
		{"ES-es", "es"},
		{"en;q=0.1, es;q=0.9", "es"},
		{"de", "en"},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Accept-Language", tt.header)
		assert.Equal(t, tt.want, requestLocale(c, "en"), tt.header)
	}
}
