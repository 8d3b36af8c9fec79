// Code generated by ent, DO NOT EDIT.

package milestone

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/moneypath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldUserID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldCode, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldTitle, v))
}

// TriggerLessonID applies equality check predicate on the "trigger_lesson_id" field. It's identical to TriggerLessonIDEQ.
func TriggerLessonID(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldTriggerLessonID, v))
}

// EarnedAt applies equality check predicate on the "earned_at" field. It's identical to EarnedAtEQ.
func EarnedAt(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldEarnedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContainsFold(FieldUserID, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContainsFold(FieldCode, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContainsFold(FieldTitle, v))
}

// TriggerLessonIDEQ applies the EQ predicate on the "trigger_lesson_id" field.
func TriggerLessonIDEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldTriggerLessonID, v))
}

// TriggerLessonIDNEQ applies the NEQ predicate on the "trigger_lesson_id" field.
func TriggerLessonIDNEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldTriggerLessonID, v))
}

// TriggerLessonIDIn applies the In predicate on the "trigger_lesson_id" field.
func TriggerLessonIDIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldTriggerLessonID, vs...))
}

// TriggerLessonIDNotIn applies the NotIn predicate on the "trigger_lesson_id" field.
func TriggerLessonIDNotIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldTriggerLessonID, vs...))
}

// TriggerLessonIDGT applies the GT predicate on the "trigger_lesson_id" field.
func TriggerLessonIDGT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldTriggerLessonID, v))
}

// TriggerLessonIDGTE applies the GTE predicate on the "trigger_lesson_id" field.
func TriggerLessonIDGTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldTriggerLessonID, v))
}

// TriggerLessonIDLT applies the LT predicate on the "trigger_lesson_id" field.
func TriggerLessonIDLT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldTriggerLessonID, v))
}

// TriggerLessonIDLTE applies the LTE predicate on the "trigger_lesson_id" field.
func TriggerLessonIDLTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldTriggerLessonID, v))
}

// TriggerLessonIDContains applies the Contains predicate on the "trigger_lesson_id" field.
func TriggerLessonIDContains(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContains(FieldTriggerLessonID, v))
}

// TriggerLessonIDHasPrefix applies the HasPrefix predicate on the "trigger_lesson_id" field.
func TriggerLessonIDHasPrefix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasPrefix(FieldTriggerLessonID, v))
}

// TriggerLessonIDHasSuffix applies the HasSuffix predicate on the "trigger_lesson_id" field.
func TriggerLessonIDHasSuffix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasSuffix(FieldTriggerLessonID, v))
}

// TriggerLessonIDEqualFold applies the EqualFold predicate on the "trigger_lesson_id" field.
func TriggerLessonIDEqualFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEqualFold(FieldTriggerLessonID, v))
}

// TriggerLessonIDContainsFold applies the ContainsFold predicate on the "trigger_lesson_id" field.
func TriggerLessonIDContainsFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContainsFold(FieldTriggerLessonID, v))
}

// EarnedAtEQ applies the EQ predicate on the "earned_at" field.
func EarnedAtEQ(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldEarnedAt, v))
}

// EarnedAtNEQ applies the NEQ predicate on the "earned_at" field.
func EarnedAtNEQ(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldEarnedAt, v))
}

// EarnedAtIn applies the In predicate on the "earned_at" field.
func EarnedAtIn(vs ...time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldEarnedAt, vs...))
}

// EarnedAtNotIn applies the NotIn predicate on the "earned_at" field.
func EarnedAtNotIn(vs ...time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldEarnedAt, vs...))
}

// EarnedAtGT applies the GT predicate on the "earned_at" field.
func EarnedAtGT(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldEarnedAt, v))
}

// EarnedAtGTE applies the GTE predicate on the "earned_at" field.
func EarnedAtGTE(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldEarnedAt, v))
}

// EarnedAtLT applies the LT predicate on the "earned_at" field.
func EarnedAtLT(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldEarnedAt, v))
}

// EarnedAtLTE applies the LTE predicate on the "earned_at" field.
func EarnedAtLTE(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldEarnedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Milestone) predicate.Milestone {
	return predicate.Milestone(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Milestone) predicate.Milestone {
	return predicate.Milestone(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Milestone) predicate.Milestone {
	return predicate.Milestone(sql.NotPredicates(p))
}
