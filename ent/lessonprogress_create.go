// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/moneypath/ent/lessonprogress"
)

// LessonProgressCreate is the builder for creating a LessonProgress entity.
type LessonProgressCreate struct {
	config
	mutation *LessonProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *LessonProgressCreate) SetUserID(v string) *LessonProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *LessonProgressCreate) SetLessonID(v string) *LessonProgressCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *LessonProgressCreate) SetCourseID(v string) *LessonProgressCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *LessonProgressCreate) SetModuleID(v string) *LessonProgressCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableModuleID(v *string) *LessonProgressCreate {
	if v != nil {
		_c.SetModuleID(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *LessonProgressCreate) SetCompleted(v bool) *LessonProgressCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableCompleted(v *bool) *LessonProgressCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetCompletedTaskKeys sets the "completed_task_keys" field.
func (_c *LessonProgressCreate) SetCompletedTaskKeys(v []string) *LessonProgressCreate {
	_c.mutation.SetCompletedTaskKeys(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LessonProgressCreate) SetCompletedAt(v time.Time) *LessonProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableCompletedAt(v *time.Time) *LessonProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetFirstCompletedAt sets the "first_completed_at" field.
func (_c *LessonProgressCreate) SetFirstCompletedAt(v time.Time) *LessonProgressCreate {
	_c.mutation.SetFirstCompletedAt(v)
	return _c
}

// SetNillableFirstCompletedAt sets the "first_completed_at" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableFirstCompletedAt(v *time.Time) *LessonProgressCreate {
	if v != nil {
		_c.SetFirstCompletedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LessonProgressCreate) SetUpdatedAt(v time.Time) *LessonProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableUpdatedAt(v *time.Time) *LessonProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_c *LessonProgressCreate) Mutation() *LessonProgressMutation {
	return _c.mutation
}

// Save creates the LessonProgress in the database.
func (_c *LessonProgressCreate) Save(ctx context.Context) (*LessonProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonProgressCreate) SaveX(ctx context.Context) *LessonProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonProgressCreate) defaults() {
	if _, ok := _c.mutation.ModuleID(); !ok {
		v := lessonprogress.DefaultModuleID
		_c.mutation.SetModuleID(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := lessonprogress.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lessonprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LessonProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := lessonprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonProgress.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := lessonprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "LessonProgress.course_id"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "LessonProgress.completed"`)}
	}
	if _, ok := _c.mutation.CompletedTaskKeys(); !ok {
		return &ValidationError{Name: "completed_task_keys", err: errors.New(`ent: missing required field "LessonProgress.completed_task_keys"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LessonProgress.updated_at"`)}
	}
	return nil
}

func (_c *LessonProgressCreate) sqlSave(ctx context.Context) (*LessonProgress, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonProgressCreate) createSpec() (*LessonProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonprogress.Table, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(lessonprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(lessonprogress.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(lessonprogress.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(lessonprogress.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(lessonprogress.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.CompletedTaskKeys(); ok {
		_spec.SetField(lessonprogress.FieldCompletedTaskKeys, field.TypeJSON, value)
		_node.CompletedTaskKeys = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.FirstCompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldFirstCompletedAt, field.TypeTime, value)
		_node.FirstCompletedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonProgress.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonProgressCreate) OnConflict(opts ...sql.ConflictOption) *LessonProgressUpsertOne {
	_c.conflict = opts
	return &LessonProgressUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonProgressCreate) OnConflictColumns(columns ...string) *LessonProgressUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonProgressUpsertOne{
		create: _c,
	}
}

type (
	// LessonProgressUpsertOne is the builder for "upsert"-ing
	//  one LessonProgress node.
	LessonProgressUpsertOne struct {
		create *LessonProgressCreate
	}

	// LessonProgressUpsert is the "OnConflict" setter.
	LessonProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetCourseID sets the "course_id" field.
func (u *LessonProgressUpsert) SetCourseID(v string) *LessonProgressUpsert {
	u.Set(lessonprogress.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *LessonProgressUpsert) UpdateCourseID() *LessonProgressUpsert {
	u.SetExcluded(lessonprogress.FieldCourseID)
	return u
}

// SetModuleID sets the "module_id" field.
func (u *LessonProgressUpsert) SetModuleID(v string) *LessonProgressUpsert {
	u.Set(lessonprogress.FieldModuleID, v)
	return u
}

// UpdateModuleID sets the "module_id" field to the value that was provided on create.
func (u *LessonProgressUpsert) UpdateModuleID() *LessonProgressUpsert {
	u.SetExcluded(lessonprogress.FieldModuleID)
	return u
}

// ClearModuleID clears the value of the "module_id" field.
func (u *LessonProgressUpsert) ClearModuleID() *LessonProgressUpsert {
	u.SetNull(lessonprogress.FieldModuleID)
	return u
}

// SetCompleted sets the "completed" field.
func (u *LessonProgressUpsert) SetCompleted(v bool) *LessonProgressUpsert {
	u.Set(lessonprogress.FieldCompleted, v)
	return u
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *LessonProgressUpsert) UpdateCompleted() *LessonProgressUpsert {
	u.SetExcluded(lessonprogress.FieldCompleted)
	return u
}

// SetCompletedTaskKeys sets the "completed_task_keys" field.
func (u *LessonProgressUpsert) SetCompletedTaskKeys(v []string) *LessonProgressUpsert {
	u.Set(lessonprogress.FieldCompletedTaskKeys, v)
	return u
}

// UpdateCompletedTaskKeys sets the "completed_task_keys" field to the value that was provided on create.
func (u *LessonProgressUpsert) UpdateCompletedTaskKeys() *LessonProgressUpsert {
	u.SetExcluded(lessonprogress.FieldCompletedTaskKeys)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *LessonProgressUpsert) SetCompletedAt(v time.Time) *LessonProgressUpsert {
	u.Set(lessonprogress.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *LessonProgressUpsert) UpdateCompletedAt() *LessonProgressUpsert {
	u.SetExcluded(lessonprogress.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *LessonProgressUpsert) ClearCompletedAt() *LessonProgressUpsert {
	u.SetNull(lessonprogress.FieldCompletedAt)
	return u
}

// SetFirstCompletedAt sets the "first_completed_at" field.
func (u *LessonProgressUpsert) SetFirstCompletedAt(v time.Time) *LessonProgressUpsert {
	u.Set(lessonprogress.FieldFirstCompletedAt, v)
	return u
}

// UpdateFirstCompletedAt sets the "first_completed_at" field to the value that was provided on create.
func (u *LessonProgressUpsert) UpdateFirstCompletedAt() *LessonProgressUpsert {
	u.SetExcluded(lessonprogress.FieldFirstCompletedAt)
	return u
}

// ClearFirstCompletedAt clears the value of the "first_completed_at" field.
func (u *LessonProgressUpsert) ClearFirstCompletedAt() *LessonProgressUpsert {
	u.SetNull(lessonprogress.FieldFirstCompletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LessonProgressUpsert) SetUpdatedAt(v time.Time) *LessonProgressUpsert {
	u.Set(lessonprogress.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LessonProgressUpsert) UpdateUpdatedAt() *LessonProgressUpsert {
	u.SetExcluded(lessonprogress.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LessonProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LessonProgressUpsertOne) UpdateNewValues() *LessonProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(lessonprogress.FieldUserID)
		}
		if _, exists := u.create.mutation.LessonID(); exists {
			s.SetIgnore(lessonprogress.FieldLessonID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LessonProgressUpsertOne) Ignore() *LessonProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonProgressUpsertOne) DoNothing() *LessonProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonProgressCreate.OnConflict
// documentation for more info.
func (u *LessonProgressUpsertOne) Update(set func(*LessonProgressUpsert)) *LessonProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *LessonProgressUpsertOne) SetCourseID(v string) *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *LessonProgressUpsertOne) UpdateCourseID() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateCourseID()
	})
}

// SetModuleID sets the "module_id" field.
func (u *LessonProgressUpsertOne) SetModuleID(v string) *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetModuleID(v)
	})
}

// UpdateModuleID sets the "module_id" field to the value that was provided on create.
func (u *LessonProgressUpsertOne) UpdateModuleID() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateModuleID()
	})
}

// ClearModuleID clears the value of the "module_id" field.
func (u *LessonProgressUpsertOne) ClearModuleID() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.ClearModuleID()
	})
}

// SetCompleted sets the "completed" field.
func (u *LessonProgressUpsertOne) SetCompleted(v bool) *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *LessonProgressUpsertOne) UpdateCompleted() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateCompleted()
	})
}

// SetCompletedTaskKeys sets the "completed_task_keys" field.
func (u *LessonProgressUpsertOne) SetCompletedTaskKeys(v []string) *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetCompletedTaskKeys(v)
	})
}

// UpdateCompletedTaskKeys sets the "completed_task_keys" field to the value that was provided on create.
func (u *LessonProgressUpsertOne) UpdateCompletedTaskKeys() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateCompletedTaskKeys()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *LessonProgressUpsertOne) SetCompletedAt(v time.Time) *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *LessonProgressUpsertOne) UpdateCompletedAt() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *LessonProgressUpsertOne) ClearCompletedAt() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.ClearCompletedAt()
	})
}

// SetFirstCompletedAt sets the "first_completed_at" field.
func (u *LessonProgressUpsertOne) SetFirstCompletedAt(v time.Time) *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetFirstCompletedAt(v)
	})
}

// UpdateFirstCompletedAt sets the "first_completed_at" field to the value that was provided on create.
func (u *LessonProgressUpsertOne) UpdateFirstCompletedAt() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateFirstCompletedAt()
	})
}

// ClearFirstCompletedAt clears the value of the "first_completed_at" field.
func (u *LessonProgressUpsertOne) ClearFirstCompletedAt() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.ClearFirstCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LessonProgressUpsertOne) SetUpdatedAt(v time.Time) *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LessonProgressUpsertOne) UpdateUpdatedAt() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LessonProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LessonProgressUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LessonProgressUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LessonProgressCreateBulk is the builder for creating many LessonProgress entities in bulk.
type LessonProgressCreateBulk struct {
	config
	err      error
	builders []*LessonProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the LessonProgress entities in the database.
func (_c *LessonProgressCreateBulk) Save(ctx context.Context) ([]*LessonProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonProgressMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LessonProgressCreateBulk) SaveX(ctx context.Context) []*LessonProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *LessonProgressUpsertBulk {
	_c.conflict = opts
	return &LessonProgressUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonProgressCreateBulk) OnConflictColumns(columns ...string) *LessonProgressUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonProgressUpsertBulk{
		create: _c,
	}
}

// LessonProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of LessonProgress nodes.
type LessonProgressUpsertBulk struct {
	create *LessonProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LessonProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LessonProgressUpsertBulk) UpdateNewValues() *LessonProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(lessonprogress.FieldUserID)
			}
			if _, exists := b.mutation.LessonID(); exists {
				s.SetIgnore(lessonprogress.FieldLessonID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LessonProgressUpsertBulk) Ignore() *LessonProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonProgressUpsertBulk) DoNothing() *LessonProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonProgressCreateBulk.OnConflict
// documentation for more info.
func (u *LessonProgressUpsertBulk) Update(set func(*LessonProgressUpsert)) *LessonProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *LessonProgressUpsertBulk) SetCourseID(v string) *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *LessonProgressUpsertBulk) UpdateCourseID() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateCourseID()
	})
}

// SetModuleID sets the "module_id" field.
func (u *LessonProgressUpsertBulk) SetModuleID(v string) *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetModuleID(v)
	})
}

// UpdateModuleID sets the "module_id" field to the value that was provided on create.
func (u *LessonProgressUpsertBulk) UpdateModuleID() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateModuleID()
	})
}

// ClearModuleID clears the value of the "module_id" field.
func (u *LessonProgressUpsertBulk) ClearModuleID() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.ClearModuleID()
	})
}

// SetCompleted sets the "completed" field.
func (u *LessonProgressUpsertBulk) SetCompleted(v bool) *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *LessonProgressUpsertBulk) UpdateCompleted() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateCompleted()
	})
}

// SetCompletedTaskKeys sets the "completed_task_keys" field.
func (u *LessonProgressUpsertBulk) SetCompletedTaskKeys(v []string) *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetCompletedTaskKeys(v)
	})
}

// UpdateCompletedTaskKeys sets the "completed_task_keys" field to the value that was provided on create.
func (u *LessonProgressUpsertBulk) UpdateCompletedTaskKeys() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateCompletedTaskKeys()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *LessonProgressUpsertBulk) SetCompletedAt(v time.Time) *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *LessonProgressUpsertBulk) UpdateCompletedAt() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *LessonProgressUpsertBulk) ClearCompletedAt() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.ClearCompletedAt()
	})
}

// SetFirstCompletedAt sets the "first_completed_at" field.
func (u *LessonProgressUpsertBulk) SetFirstCompletedAt(v time.Time) *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetFirstCompletedAt(v)
	})
}

// UpdateFirstCompletedAt sets the "first_completed_at" field to the value that was provided on create.
func (u *LessonProgressUpsertBulk) UpdateFirstCompletedAt() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateFirstCompletedAt()
	})
}

// ClearFirstCompletedAt clears the value of the "first_completed_at" field.
func (u *LessonProgressUpsertBulk) ClearFirstCompletedAt() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.ClearFirstCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LessonProgressUpsertBulk) SetUpdatedAt(v time.Time) *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LessonProgressUpsertBulk) UpdateUpdatedAt() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LessonProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LessonProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
