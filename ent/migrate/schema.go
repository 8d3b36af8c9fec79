// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalyticsEventsColumns holds the columns for the "analytics_events" table.
	AnalyticsEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "name", Type: field.TypeString},
		{Name: "properties", Type: field.TypeJSON, Nullable: true},
	}
	// AnalyticsEventsTable holds the schema information for the "analytics_events" table.
	AnalyticsEventsTable = &schema.Table{
		Name:       "analytics_events",
		Columns:    AnalyticsEventsColumns,
		PrimaryKey: []*schema.Column{AnalyticsEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analyticsevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnalyticsEventsColumns[1]},
			},
			{
				Name:    "analyticsevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnalyticsEventsColumns[2]},
			},
			{
				Name:    "analyticsevent_name",
				Unique:  false,
				Columns: []*schema.Column{AnalyticsEventsColumns[4]},
			},
			{
				Name:    "analyticsevent_user_id_name",
				Unique:  false,
				Columns: []*schema.Column{AnalyticsEventsColumns[3], AnalyticsEventsColumns[4]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "thread_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "fallback", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[1], ChatMessagesColumns[6]},
			},
			{
				Name:    "chatmessage_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[2], ChatMessagesColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonProgressesColumns holds the columns for the "lesson_progresses" table.
	LessonProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "completed_task_keys", Type: field.TypeJSON},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LessonProgressesTable holds the schema information for the "lesson_progresses" table.
	LessonProgressesTable = &schema.Table{
		Name:       "lesson_progresses",
		Columns:    LessonProgressesColumns,
		PrimaryKey: []*schema.Column{LessonProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonprogress_user_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{LessonProgressesColumns[1], LessonProgressesColumns[2]},
			},
			{
				Name:    "lessonprogress_user_id_course_id",
				Unique:  false,
				Columns: []*schema.Column{LessonProgressesColumns[1], LessonProgressesColumns[3]},
			},
			{
				Name:    "lessonprogress_user_id_completed",
				Unique:  false,
				Columns: []*schema.Column{LessonProgressesColumns[1], LessonProgressesColumns[5]},
			},
		},
	}
	// MilestonesColumns holds the columns for the "milestones" table.
	MilestonesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "code", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "trigger_lesson_id", Type: field.TypeString, Default: ""},
		{Name: "earned_at", Type: field.TypeTime},
	}
	// MilestonesTable holds the schema information for the "milestones" table.
	MilestonesTable = &schema.Table{
		Name:       "milestones",
		Columns:    MilestonesColumns,
		PrimaryKey: []*schema.Column{MilestonesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "milestone_user_id_code",
				Unique:  true,
				Columns: []*schema.Column{MilestonesColumns[1], MilestonesColumns[2]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Default: ""},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "trialing", "past_due", "canceled", "incomplete", "unpaid"}, Default: "incomplete"},
		{Name: "plan", Type: field.TypeString, Default: ""},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalyticsEventsTable,
		ChatMessagesTable,
		LlmRequestEventsTable,
		LessonProgressesTable,
		MilestonesTable,
		SettingsTable,
		SubscriptionsTable,
	}
)

func init() {
}
