// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/moneypath/ent/analyticsevent"
	"github.com/abhisek/moneypath/ent/chatmessage"
	"github.com/abhisek/moneypath/ent/lessonprogress"
	"github.com/abhisek/moneypath/ent/llmrequestevent"
	"github.com/abhisek/moneypath/ent/milestone"
	"github.com/abhisek/moneypath/ent/schema"
	"github.com/abhisek/moneypath/ent/setting"
	"github.com/abhisek/moneypath/ent/subscription"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analyticseventMixin := schema.AnalyticsEvent{}.Mixin()
	analyticseventMixinFields0 := analyticseventMixin[0].Fields()
	_ = analyticseventMixinFields0
	analyticseventFields := schema.AnalyticsEvent{}.Fields()
	_ = analyticseventFields
	// analyticseventDescTimestamp is the schema descriptor for timestamp field.
	analyticseventDescTimestamp := analyticseventMixinFields0[1].Descriptor()
	// analyticsevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analyticsevent.DefaultTimestamp = analyticseventDescTimestamp.Default.(func() time.Time)
	// analyticseventDescUserID is the schema descriptor for user_id field.
	analyticseventDescUserID := analyticseventFields[0].Descriptor()
	// analyticsevent.DefaultUserID holds the default value on creation for the user_id field.
	analyticsevent.DefaultUserID = analyticseventDescUserID.Default.(string)
	// analyticseventDescName is the schema descriptor for name field.
	analyticseventDescName := analyticseventFields[1].Descriptor()
	// analyticsevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	analyticsevent.NameValidator = analyticseventDescName.Validators[0].(func(string) error)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescThreadID is the schema descriptor for thread_id field.
	chatmessageDescThreadID := chatmessageFields[0].Descriptor()
	// chatmessage.ThreadIDValidator is a validator for the "thread_id" field. It is called by the builders before save.
	chatmessage.ThreadIDValidator = chatmessageDescThreadID.Validators[0].(func(string) error)
	// chatmessageDescUserID is the schema descriptor for user_id field.
	chatmessageDescUserID := chatmessageFields[1].Descriptor()
	// chatmessage.DefaultUserID holds the default value on creation for the user_id field.
	chatmessage.DefaultUserID = chatmessageDescUserID.Default.(string)
	// chatmessageDescFallback is the schema descriptor for fallback field.
	chatmessageDescFallback := chatmessageFields[4].Descriptor()
	// chatmessage.DefaultFallback holds the default value on creation for the fallback field.
	chatmessage.DefaultFallback = chatmessageDescFallback.Default.(bool)
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessonprogressFields := schema.LessonProgress{}.Fields()
	_ = lessonprogressFields
	// lessonprogressDescUserID is the schema descriptor for user_id field.
	lessonprogressDescUserID := lessonprogressFields[0].Descriptor()
	// lessonprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	lessonprogress.UserIDValidator = lessonprogressDescUserID.Validators[0].(func(string) error)
	// lessonprogressDescLessonID is the schema descriptor for lesson_id field.
	lessonprogressDescLessonID := lessonprogressFields[1].Descriptor()
	// lessonprogress.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonprogress.LessonIDValidator = lessonprogressDescLessonID.Validators[0].(func(string) error)
	// lessonprogressDescModuleID is the schema descriptor for module_id field.
	lessonprogressDescModuleID := lessonprogressFields[3].Descriptor()
	// lessonprogress.DefaultModuleID holds the default value on creation for the module_id field.
	lessonprogress.DefaultModuleID = lessonprogressDescModuleID.Default.(string)
	// lessonprogressDescCompleted is the schema descriptor for completed field.
	lessonprogressDescCompleted := lessonprogressFields[4].Descriptor()
	// lessonprogress.DefaultCompleted holds the default value on creation for the completed field.
	lessonprogress.DefaultCompleted = lessonprogressDescCompleted.Default.(bool)
	// lessonprogressDescUpdatedAt is the schema descriptor for updated_at field.
	lessonprogressDescUpdatedAt := lessonprogressFields[8].Descriptor()
	// lessonprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lessonprogress.DefaultUpdatedAt = lessonprogressDescUpdatedAt.Default.(func() time.Time)
	// lessonprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lessonprogress.UpdateDefaultUpdatedAt = lessonprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	milestoneFields := schema.Milestone{}.Fields()
	_ = milestoneFields
	// milestoneDescUserID is the schema descriptor for user_id field.
	milestoneDescUserID := milestoneFields[0].Descriptor()
	// milestone.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	milestone.UserIDValidator = milestoneDescUserID.Validators[0].(func(string) error)
	// milestoneDescCode is the schema descriptor for code field.
	milestoneDescCode := milestoneFields[1].Descriptor()
	// milestone.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	milestone.CodeValidator = milestoneDescCode.Validators[0].(func(string) error)
	// milestoneDescTriggerLessonID is the schema descriptor for trigger_lesson_id field.
	milestoneDescTriggerLessonID := milestoneFields[3].Descriptor()
	// milestone.DefaultTriggerLessonID holds the default value on creation for the trigger_lesson_id field.
	milestone.DefaultTriggerLessonID = milestoneDescTriggerLessonID.Default.(string)
	// milestoneDescEarnedAt is the schema descriptor for earned_at field.
	milestoneDescEarnedAt := milestoneFields[4].Descriptor()
	// milestone.DefaultEarnedAt holds the default value on creation for the earned_at field.
	milestone.DefaultEarnedAt = milestoneDescEarnedAt.Default.(func() time.Time)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	// settingDescValue is the schema descriptor for value field.
	settingDescValue := settingFields[1].Descriptor()
	// setting.DefaultValue holds the default value on creation for the value field.
	setting.DefaultValue = settingDescValue.Default.(string)
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[2].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescUserID is the schema descriptor for user_id field.
	subscriptionDescUserID := subscriptionFields[0].Descriptor()
	// subscription.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	subscription.UserIDValidator = subscriptionDescUserID.Validators[0].(func(string) error)
	// subscriptionDescPlan is the schema descriptor for plan field.
	subscriptionDescPlan := subscriptionFields[2].Descriptor()
	// subscription.DefaultPlan holds the default value on creation for the plan field.
	subscription.DefaultPlan = subscriptionDescPlan.Default.(string)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[4].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
