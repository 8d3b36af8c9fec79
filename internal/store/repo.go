package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates LLM calls by purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
	Failures     int
}

// AnalyticsEventData is one product analytics event.
type AnalyticsEventData struct {
	UserID     string
	Name       string
	Properties map[string]any
}

// AnalyticsEventRecord is a stored analytics event.
type AnalyticsEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnalyticsEventData
}

// EventRepo provides append and query access to events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns nil when no event has the given id.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	AppendAnalytics(ctx context.Context, data AnalyticsEventData) error
	QueryAnalytics(ctx context.Context, name string, opts QueryOpts) ([]AnalyticsEventRecord, error)
}

// MilestoneRecord is an earned milestone.
type MilestoneRecord struct {
	UserID          string
	Code            string
	Title           string
	TriggerLessonID string
	EarnedAt        time.Time
}

// MilestoneRepo stores earned milestones.
type MilestoneRepo interface {
	// Award inserts the milestone unless the user already holds its code.
	// It reports whether a new row was written.
	Award(ctx context.Context, m MilestoneRecord) (bool, error)
	List(ctx context.Context, userID string) ([]MilestoneRecord, error)
}

// SettingsRepo is a string key/value table.
type SettingsRepo interface {
	All(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}

// ChatMessageRecord is one stored chat turn.
type ChatMessageRecord struct {
	ThreadID  string
	UserID    string
	Role      string
	Content   string
	Fallback  bool
	CreatedAt time.Time
}

// ChatRepo stores assistant conversations.
type ChatRepo interface {
	Append(ctx context.Context, msg ChatMessageRecord) error

	// Recent returns up to limit of the newest messages of a thread,
	// oldest first.
	Recent(ctx context.Context, threadID string, limit int) ([]ChatMessageRecord, error)

	// LatestThread returns the thread of the user's newest message, or ""
	// when the user has none.
	LatestThread(ctx context.Context, userID string) (string, error)
}

// SubscriptionRecord is a learner's subscription state.
type SubscriptionRecord struct {
	UserID           string
	Status           string
	Plan             string
	CurrentPeriodEnd *time.Time
	UpdatedAt        time.Time
}

// SubscriptionRepo reads and writes subscriptions.
type SubscriptionRepo interface {
	// Get returns nil when the user has no subscription.
	Get(ctx context.Context, userID string) (*SubscriptionRecord, error)
	Put(ctx context.Context, sub SubscriptionRecord) error
}
