// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/moneypath/ent/lessonprogress"
	"github.com/abhisek/moneypath/ent/predicate"
)

// LessonProgressUpdate is the builder for updating LessonProgress entities.
type LessonProgressUpdate struct {
	config
	hooks    []Hook
	mutation *LessonProgressMutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (_u *LessonProgressUpdate) Where(ps ...predicate.LessonProgress) *LessonProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LessonProgressUpdate) SetCourseID(v string) *LessonProgressUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableCourseID(v *string) *LessonProgressUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *LessonProgressUpdate) SetModuleID(v string) *LessonProgressUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableModuleID(v *string) *LessonProgressUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// ClearModuleID clears the value of the "module_id" field.
func (_u *LessonProgressUpdate) ClearModuleID() *LessonProgressUpdate {
	_u.mutation.ClearModuleID()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LessonProgressUpdate) SetCompleted(v bool) *LessonProgressUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableCompleted(v *bool) *LessonProgressUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedTaskKeys sets the "completed_task_keys" field.
func (_u *LessonProgressUpdate) SetCompletedTaskKeys(v []string) *LessonProgressUpdate {
	_u.mutation.SetCompletedTaskKeys(v)
	return _u
}

// AppendCompletedTaskKeys appends value to the "completed_task_keys" field.
func (_u *LessonProgressUpdate) AppendCompletedTaskKeys(v []string) *LessonProgressUpdate {
	_u.mutation.AppendCompletedTaskKeys(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LessonProgressUpdate) SetCompletedAt(v time.Time) *LessonProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableCompletedAt(v *time.Time) *LessonProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LessonProgressUpdate) ClearCompletedAt() *LessonProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFirstCompletedAt sets the "first_completed_at" field.
func (_u *LessonProgressUpdate) SetFirstCompletedAt(v time.Time) *LessonProgressUpdate {
	_u.mutation.SetFirstCompletedAt(v)
	return _u
}

// SetNillableFirstCompletedAt sets the "first_completed_at" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableFirstCompletedAt(v *time.Time) *LessonProgressUpdate {
	if v != nil {
		_u.SetFirstCompletedAt(*v)
	}
	return _u
}

// ClearFirstCompletedAt clears the value of the "first_completed_at" field.
func (_u *LessonProgressUpdate) ClearFirstCompletedAt() *LessonProgressUpdate {
	_u.mutation.ClearFirstCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonProgressUpdate) SetUpdatedAt(v time.Time) *LessonProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_u *LessonProgressUpdate) Mutation() *LessonProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LessonProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lessonprogress.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(lessonprogress.FieldModuleID, field.TypeString, value)
	}
	if _u.mutation.ModuleIDCleared() {
		_spec.ClearField(lessonprogress.FieldModuleID, field.TypeString)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(lessonprogress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedTaskKeys(); ok {
		_spec.SetField(lessonprogress.FieldCompletedTaskKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedTaskKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonprogress.FieldCompletedTaskKeys, value)
		})
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lessonprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FirstCompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldFirstCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.FirstCompletedAtCleared() {
		_spec.ClearField(lessonprogress.FieldFirstCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonProgressUpdateOne is the builder for updating a single LessonProgress entity.
type LessonProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonProgressMutation
}

// SetCourseID sets the "course_id" field.
func (_u *LessonProgressUpdateOne) SetCourseID(v string) *LessonProgressUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableCourseID(v *string) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *LessonProgressUpdateOne) SetModuleID(v string) *LessonProgressUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableModuleID(v *string) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// ClearModuleID clears the value of the "module_id" field.
func (_u *LessonProgressUpdateOne) ClearModuleID() *LessonProgressUpdateOne {
	_u.mutation.ClearModuleID()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LessonProgressUpdateOne) SetCompleted(v bool) *LessonProgressUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableCompleted(v *bool) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedTaskKeys sets the "completed_task_keys" field.
func (_u *LessonProgressUpdateOne) SetCompletedTaskKeys(v []string) *LessonProgressUpdateOne {
	_u.mutation.SetCompletedTaskKeys(v)
	return _u
}

// AppendCompletedTaskKeys appends value to the "completed_task_keys" field.
func (_u *LessonProgressUpdateOne) AppendCompletedTaskKeys(v []string) *LessonProgressUpdateOne {
	_u.mutation.AppendCompletedTaskKeys(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LessonProgressUpdateOne) SetCompletedAt(v time.Time) *LessonProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LessonProgressUpdateOne) ClearCompletedAt() *LessonProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFirstCompletedAt sets the "first_completed_at" field.
func (_u *LessonProgressUpdateOne) SetFirstCompletedAt(v time.Time) *LessonProgressUpdateOne {
	_u.mutation.SetFirstCompletedAt(v)
	return _u
}

// SetNillableFirstCompletedAt sets the "first_completed_at" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableFirstCompletedAt(v *time.Time) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetFirstCompletedAt(*v)
	}
	return _u
}

// ClearFirstCompletedAt clears the value of the "first_completed_at" field.
func (_u *LessonProgressUpdateOne) ClearFirstCompletedAt() *LessonProgressUpdateOne {
	_u.mutation.ClearFirstCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonProgressUpdateOne) SetUpdatedAt(v time.Time) *LessonProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_u *LessonProgressUpdateOne) Mutation() *LessonProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (_u *LessonProgressUpdateOne) Where(ps ...predicate.LessonProgress) *LessonProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonProgressUpdateOne) Select(field string, fields ...string) *LessonProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonProgress entity.
func (_u *LessonProgressUpdateOne) Save(ctx context.Context) (*LessonProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProgressUpdateOne) SaveX(ctx context.Context) *LessonProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LessonProgressUpdateOne) sqlSave(ctx context.Context) (_node *LessonProgress, err error) {
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonprogress.FieldID)
		for _, f := range fields {
			if !lessonprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lessonprogress.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(lessonprogress.FieldModuleID, field.TypeString, value)
	}
	if _u.mutation.ModuleIDCleared() {
		_spec.ClearField(lessonprogress.FieldModuleID, field.TypeString)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(lessonprogress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedTaskKeys(); ok {
		_spec.SetField(lessonprogress.FieldCompletedTaskKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedTaskKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonprogress.FieldCompletedTaskKeys, value)
		})
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lessonprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FirstCompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldFirstCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.FirstCompletedAtCleared() {
		_spec.ClearField(lessonprogress.FieldFirstCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LessonProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
