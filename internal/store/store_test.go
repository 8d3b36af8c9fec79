package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/moneypath/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestProgressReadMissing(t *testing.T) {
	s := openTestStore(t)
	rec, err := s.ProgressRepo().Read(context.Background(), "u1", "l1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record, got %+v", rec)
	}
}

func TestProgressUpsertKeepsOneRow(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	base := progress.Record{UserID: "u1", LessonID: "l1", CourseID: "credit-basics", ModuleID: "m1"}

	first := base
	first.CompletedTaskKeys = []string{"a"}
	if err := repo.Write(ctx, first); err != nil {
		t.Fatalf("write 1: %v", err)
	}

	done := time.Now().UTC().Truncate(time.Second)
	second := base
	second.Completed = true
	second.CompletedTaskKeys = []string{"b", "a"}
	second.CompletedAt = &done
	if err := repo.Write(ctx, second); err != nil {
		t.Fatalf("write 2: %v", err)
	}

	count, err := s.Client().LessonProgress.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}

	rec, err := repo.Read(ctx, "u1", "l1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !rec.Completed {
		t.Error("expected completed")
	}
	if !slices.Equal(rec.CompletedTaskKeys, []string{"a", "b"}) {
		t.Errorf("keys = %v, want [a b]", rec.CompletedTaskKeys)
	}
	if rec.CompletedAt == nil || !rec.CompletedAt.Equal(done) {
		t.Errorf("completed_at = %v, want %v", rec.CompletedAt, done)
	}

	// Reopening clears the completion time.
	third := base
	third.CompletedTaskKeys = []string{"a"}
	if err := repo.Write(ctx, third); err != nil {
		t.Fatalf("write 3: %v", err)
	}
	rec, _ = repo.Read(ctx, "u1", "l1")
	if rec.Completed || rec.CompletedAt != nil {
		t.Errorf("expected reopened record, got %+v", rec)
	}
}

func TestProgressKeepsFirstCompletion(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	first := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	done := progress.Record{UserID: "u1", LessonID: "l1", CourseID: "p1", Completed: true, CompletedAt: &first, FirstCompletedAt: &first}
	if err := repo.Write(ctx, done); err != nil {
		t.Fatalf("write: %v", err)
	}

	// A reopen that does not carry the marker leaves the stored one alone.
	reopened := progress.Record{UserID: "u1", LessonID: "l1", CourseID: "p1"}
	if err := repo.Write(ctx, reopened); err != nil {
		t.Fatalf("write: %v", err)
	}

	rec, err := repo.Read(ctx, "u1", "l1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rec.Completed || rec.CompletedAt != nil {
		t.Errorf("expected reopened record, got %+v", rec)
	}
	if rec.FirstCompletedAt == nil || !rec.FirstCompletedAt.Equal(first) {
		t.Errorf("first_completed_at = %v, want %v", rec.FirstCompletedAt, first)
	}
	if !rec.EverCompleted() {
		t.Error("EverCompleted = false")
	}
}

func TestProgressCountsPerUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	writes := []progress.Record{
		{UserID: "u1", LessonID: "l1", CourseID: "p1", Completed: true},
		{UserID: "u1", LessonID: "l2", CourseID: "p1"},
		{UserID: "u1", LessonID: "l3", CourseID: "p2", Completed: true},
		{UserID: "u2", LessonID: "l1", CourseID: "p1", Completed: true},
	}
	for _, w := range writes {
		if err := repo.Write(ctx, w); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	n, err := repo.CompletedCount(ctx, "u1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("completed = %d, want 2", n)
	}

	recs, err := repo.ListByCourse(ctx, "u1", "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("records in p1 = %d, want 2", len(recs))
	}

	ids, err := repo.CompletedLessonIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("ids: %v", err)
	}
	slices.Sort(ids)
	if !slices.Equal(ids, []string{"l1", "l3"}) {
		t.Errorf("completed ids = %v", ids)
	}
}

func TestAnalyticsAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, name := range []string{"lesson_completed", "quiz_submitted", "lesson_completed"} {
		err := repo.AppendAnalytics(ctx, AnalyticsEventData{
			UserID:     "u1",
			Name:       name,
			Properties: map[string]any{"n": i},
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryAnalytics(ctx, "lesson_completed", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Error("expected newest first")
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, ok := range []bool{true, false} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "chat",
			InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: ok,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil || e == nil {
		t.Fatalf("get: %v %v", e, err)
	}
	if missing, err := repo.GetLLMEvent(ctx, 9999); err != nil || missing != nil {
		t.Fatalf("expected nil for missing event, got %v %v", missing, err)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 || usage[0].Calls != 2 || usage[0].Failures != 1 || usage[0].AvgLatencyMs != 100 {
		t.Errorf("unexpected usage: %+v", usage)
	}
}

func TestMilestoneAwardOnce(t *testing.T) {
	s := openTestStore(t)
	repo := s.MilestoneRepo()
	ctx := context.Background()

	m := MilestoneRecord{UserID: "u1", Code: "first_lesson", Title: "First lesson"}
	created, err := repo.Award(ctx, m)
	if err != nil || !created {
		t.Fatalf("first award: created=%v err=%v", created, err)
	}
	created, err = repo.Award(ctx, m)
	if err != nil || created {
		t.Fatalf("second award: created=%v err=%v", created, err)
	}

	list, err := repo.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Code != "first_lesson" {
		t.Errorf("unexpected milestones: %+v", list)
	}
}

func TestSettingsUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()

	if err := repo.Set(ctx, "locale", "en"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "locale", "es"); err != nil {
		t.Fatalf("set again: %v", err)
	}
	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 || all["locale"] != "es" {
		t.Errorf("settings = %v", all)
	}
}

func TestChatRecentOldestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChatRepo()
	ctx := context.Background()

	base := time.Now()
	for i, content := range []string{"one", "two", "three"} {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		err := repo.Append(ctx, ChatMessageRecord{
			ThreadID: "t1", Role: role, Content: content,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	_ = repo.Append(ctx, ChatMessageRecord{ThreadID: "t2", Role: "user", Content: "other"})

	msgs, err := repo.Recent(ctx, "t1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Content != "two" || msgs[1].Content != "three" {
		t.Errorf("unexpected history: %+v", msgs)
	}
}

func TestChatLatestThreadPerUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChatRepo()
	ctx := context.Background()

	base := time.Now()
	msgs := []ChatMessageRecord{
		{ThreadID: "t1", UserID: "u1", Role: "user", Content: "a", CreatedAt: base},
		{ThreadID: "t2", UserID: "u2", Role: "user", Content: "b", CreatedAt: base.Add(time.Second)},
		{ThreadID: "t3", UserID: "u1", Role: "user", Content: "c", CreatedAt: base.Add(2 * time.Second)},
	}
	for _, m := range msgs {
		if err := repo.Append(ctx, m); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	tests := []struct {
		user string
		want string
	}{
		{"u1", "t3"},
		{"u2", "t2"},
		{"u3", ""},
	}
	for _, tt := range tests {
		got, err := repo.LatestThread(ctx, tt.user)
		if err != nil {
			t.Fatalf("latest thread %s: %v", tt.user, err)
		}
		if got != tt.want {
			t.Errorf("LatestThread(%s) = %q, want %q", tt.user, got, tt.want)
		}
	}
}

func TestSubscriptionPutGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubscriptionRepo()
	ctx := context.Background()

	sub, err := repo.Get(ctx, "u1")
	if err != nil || sub != nil {
		t.Fatalf("expected no subscription, got %v %v", sub, err)
	}

	end := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	if err := repo.Put(ctx, SubscriptionRecord{UserID: "u1", Status: "active", Plan: "monthly", CurrentPeriodEnd: &end}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, SubscriptionRecord{UserID: "u1", Status: "canceled", Plan: "monthly", CurrentPeriodEnd: &end}); err != nil {
		t.Fatalf("put again: %v", err)
	}

	sub, err = repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sub.Status != "canceled" || sub.CurrentPeriodEnd == nil || !sub.CurrentPeriodEnd.Equal(end) {
		t.Errorf("unexpected subscription: %+v", sub)
	}

	if err := repo.Put(ctx, SubscriptionRecord{UserID: "u1", Status: "lifetime"}); err == nil {
		t.Error("expected unknown status to be rejected")
	}
}
