// Code generated by ent, DO NOT EDIT.

package lessonprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/moneypath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldUserID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLessonID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCourseID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldModuleID, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompleted, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// FirstCompletedAt applies equality check predicate on the "first_completed_at" field. It's identical to FirstCompletedAtEQ.
func FirstCompletedAt(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldFirstCompletedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContainsFold(FieldUserID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContainsFold(FieldLessonID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContainsFold(FieldCourseID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDIsNil applies the IsNil predicate on the "module_id" field.
func ModuleIDIsNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIsNull(FieldModuleID))
}

// ModuleIDNotNil applies the NotNil predicate on the "module_id" field.
func ModuleIDNotNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotNull(FieldModuleID))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContainsFold(FieldModuleID, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldCompleted, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotNull(FieldCompletedAt))
}

// FirstCompletedAtEQ applies the EQ predicate on the "first_completed_at" field.
func FirstCompletedAtEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldFirstCompletedAt, v))
}

// FirstCompletedAtNEQ applies the NEQ predicate on the "first_completed_at" field.
func FirstCompletedAtNEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldFirstCompletedAt, v))
}

// FirstCompletedAtIn applies the In predicate on the "first_completed_at" field.
func FirstCompletedAtIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldFirstCompletedAt, vs...))
}

// FirstCompletedAtNotIn applies the NotIn predicate on the "first_completed_at" field.
func FirstCompletedAtNotIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldFirstCompletedAt, vs...))
}

// FirstCompletedAtGT applies the GT predicate on the "first_completed_at" field.
func FirstCompletedAtGT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldFirstCompletedAt, v))
}

// FirstCompletedAtGTE applies the GTE predicate on the "first_completed_at" field.
func FirstCompletedAtGTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldFirstCompletedAt, v))
}

// FirstCompletedAtLT applies the LT predicate on the "first_completed_at" field.
func FirstCompletedAtLT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldFirstCompletedAt, v))
}

// FirstCompletedAtLTE applies the LTE predicate on the "first_completed_at" field.
func FirstCompletedAtLTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldFirstCompletedAt, v))
}

// FirstCompletedAtIsNil applies the IsNil predicate on the "first_completed_at" field.
func FirstCompletedAtIsNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIsNull(FieldFirstCompletedAt))
}

// FirstCompletedAtNotNil applies the NotNil predicate on the "first_completed_at" field.
func FirstCompletedAtNotNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotNull(FieldFirstCompletedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.NotPredicates(p))
}
