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
	"github.com/abhisek/moneypath/ent/milestone"
)

// MilestoneCreate is the builder for creating a Milestone entity.
type MilestoneCreate struct {
	config
	mutation *MilestoneMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *MilestoneCreate) SetUserID(v string) *MilestoneCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *MilestoneCreate) SetCode(v string) *MilestoneCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *MilestoneCreate) SetTitle(v string) *MilestoneCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetTriggerLessonID sets the "trigger_lesson_id" field.
func (_c *MilestoneCreate) SetTriggerLessonID(v string) *MilestoneCreate {
	_c.mutation.SetTriggerLessonID(v)
	return _c
}

// SetNillableTriggerLessonID sets the "trigger_lesson_id" field if the given value is not nil.
func (_c *MilestoneCreate) SetNillableTriggerLessonID(v *string) *MilestoneCreate {
	if v != nil {
		_c.SetTriggerLessonID(*v)
	}
	return _c
}

// SetEarnedAt sets the "earned_at" field.
func (_c *MilestoneCreate) SetEarnedAt(v time.Time) *MilestoneCreate {
	_c.mutation.SetEarnedAt(v)
	return _c
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (_c *MilestoneCreate) SetNillableEarnedAt(v *time.Time) *MilestoneCreate {
	if v != nil {
		_c.SetEarnedAt(*v)
	}
	return _c
}

// Mutation returns the MilestoneMutation object of the builder.
func (_c *MilestoneCreate) Mutation() *MilestoneMutation {
	return _c.mutation
}

// Save creates the Milestone in the database.
func (_c *MilestoneCreate) Save(ctx context.Context) (*Milestone, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MilestoneCreate) SaveX(ctx context.Context) *Milestone {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MilestoneCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MilestoneCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MilestoneCreate) defaults() {
	if _, ok := _c.mutation.TriggerLessonID(); !ok {
		v := milestone.DefaultTriggerLessonID
		_c.mutation.SetTriggerLessonID(v)
	}
	if _, ok := _c.mutation.EarnedAt(); !ok {
		v := milestone.DefaultEarnedAt()
		_c.mutation.SetEarnedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MilestoneCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Milestone.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := milestone.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Milestone.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Milestone.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := milestone.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Milestone.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Milestone.title"`)}
	}
	if _, ok := _c.mutation.TriggerLessonID(); !ok {
		return &ValidationError{Name: "trigger_lesson_id", err: errors.New(`ent: missing required field "Milestone.trigger_lesson_id"`)}
	}
	if _, ok := _c.mutation.EarnedAt(); !ok {
		return &ValidationError{Name: "earned_at", err: errors.New(`ent: missing required field "Milestone.earned_at"`)}
	}
	return nil
}

func (_c *MilestoneCreate) sqlSave(ctx context.Context) (*Milestone, error) {
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

func (_c *MilestoneCreate) createSpec() (*Milestone, *sqlgraph.CreateSpec) {
	var (
		_node = &Milestone{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(milestone.Table, sqlgraph.NewFieldSpec(milestone.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(milestone.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(milestone.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(milestone.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.TriggerLessonID(); ok {
		_spec.SetField(milestone.FieldTriggerLessonID, field.TypeString, value)
		_node.TriggerLessonID = value
	}
	if value, ok := _c.mutation.EarnedAt(); ok {
		_spec.SetField(milestone.FieldEarnedAt, field.TypeTime, value)
		_node.EarnedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Milestone.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MilestoneUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *MilestoneCreate) OnConflict(opts ...sql.ConflictOption) *MilestoneUpsertOne {
	_c.conflict = opts
	return &MilestoneUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Milestone.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MilestoneCreate) OnConflictColumns(columns ...string) *MilestoneUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MilestoneUpsertOne{
		create: _c,
	}
}

type (
	// MilestoneUpsertOne is the builder for "upsert"-ing
	//  one Milestone node.
	MilestoneUpsertOne struct {
		create *MilestoneCreate
	}

	// MilestoneUpsert is the "OnConflict" setter.
	MilestoneUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *MilestoneUpsert) SetTitle(v string) *MilestoneUpsert {
	u.Set(milestone.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *MilestoneUpsert) UpdateTitle() *MilestoneUpsert {
	u.SetExcluded(milestone.FieldTitle)
	return u
}

// SetTriggerLessonID sets the "trigger_lesson_id" field.
func (u *MilestoneUpsert) SetTriggerLessonID(v string) *MilestoneUpsert {
	u.Set(milestone.FieldTriggerLessonID, v)
	return u
}

// UpdateTriggerLessonID sets the "trigger_lesson_id" field to the value that was provided on create.
func (u *MilestoneUpsert) UpdateTriggerLessonID() *MilestoneUpsert {
	u.SetExcluded(milestone.FieldTriggerLessonID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Milestone.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MilestoneUpsertOne) UpdateNewValues() *MilestoneUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(milestone.FieldUserID)
		}
		if _, exists := u.create.mutation.Code(); exists {
			s.SetIgnore(milestone.FieldCode)
		}
		if _, exists := u.create.mutation.EarnedAt(); exists {
			s.SetIgnore(milestone.FieldEarnedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Milestone.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MilestoneUpsertOne) Ignore() *MilestoneUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MilestoneUpsertOne) DoNothing() *MilestoneUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MilestoneCreate.OnConflict
// documentation for more info.
func (u *MilestoneUpsertOne) Update(set func(*MilestoneUpsert)) *MilestoneUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MilestoneUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *MilestoneUpsertOne) SetTitle(v string) *MilestoneUpsertOne {
	return u.Update(func(s *MilestoneUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *MilestoneUpsertOne) UpdateTitle() *MilestoneUpsertOne {
	return u.Update(func(s *MilestoneUpsert) {
		s.UpdateTitle()
	})
}

// SetTriggerLessonID sets the "trigger_lesson_id" field.
func (u *MilestoneUpsertOne) SetTriggerLessonID(v string) *MilestoneUpsertOne {
	return u.Update(func(s *MilestoneUpsert) {
		s.SetTriggerLessonID(v)
	})
}

// UpdateTriggerLessonID sets the "trigger_lesson_id" field to the value that was provided on create.
func (u *MilestoneUpsertOne) UpdateTriggerLessonID() *MilestoneUpsertOne {
	return u.Update(func(s *MilestoneUpsert) {
		s.UpdateTriggerLessonID()
	})
}

// Exec executes the query.
func (u *MilestoneUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MilestoneCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MilestoneUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MilestoneUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MilestoneUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MilestoneCreateBulk is the builder for creating many Milestone entities in bulk.
type MilestoneCreateBulk struct {
	config
	err      error
	builders []*MilestoneCreate
	conflict []sql.ConflictOption
}

// Save creates the Milestone entities in the database.
func (_c *MilestoneCreateBulk) Save(ctx context.Context) ([]*Milestone, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Milestone, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MilestoneMutation)
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
func (_c *MilestoneCreateBulk) SaveX(ctx context.Context) []*Milestone {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MilestoneCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MilestoneCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Milestone.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MilestoneUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *MilestoneCreateBulk) OnConflict(opts ...sql.ConflictOption) *MilestoneUpsertBulk {
	_c.conflict = opts
	return &MilestoneUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Milestone.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MilestoneCreateBulk) OnConflictColumns(columns ...string) *MilestoneUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MilestoneUpsertBulk{
		create: _c,
	}
}

// MilestoneUpsertBulk is the builder for "upsert"-ing
// a bulk of Milestone nodes.
type MilestoneUpsertBulk struct {
	create *MilestoneCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Milestone.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MilestoneUpsertBulk) UpdateNewValues() *MilestoneUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(milestone.FieldUserID)
			}
			if _, exists := b.mutation.Code(); exists {
				s.SetIgnore(milestone.FieldCode)
			}
			if _, exists := b.mutation.EarnedAt(); exists {
				s.SetIgnore(milestone.FieldEarnedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Milestone.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MilestoneUpsertBulk) Ignore() *MilestoneUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MilestoneUpsertBulk) DoNothing() *MilestoneUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MilestoneCreateBulk.OnConflict
// documentation for more info.
func (u *MilestoneUpsertBulk) Update(set func(*MilestoneUpsert)) *MilestoneUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MilestoneUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *MilestoneUpsertBulk) SetTitle(v string) *MilestoneUpsertBulk {
	return u.Update(func(s *MilestoneUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *MilestoneUpsertBulk) UpdateTitle() *MilestoneUpsertBulk {
	return u.Update(func(s *MilestoneUpsert) {
		s.UpdateTitle()
	})
}

// SetTriggerLessonID sets the "trigger_lesson_id" field.
func (u *MilestoneUpsertBulk) SetTriggerLessonID(v string) *MilestoneUpsertBulk {
	return u.Update(func(s *MilestoneUpsert) {
		s.SetTriggerLessonID(v)
	})
}

// UpdateTriggerLessonID sets the "trigger_lesson_id" field to the value that was provided on create.
func (u *MilestoneUpsertBulk) UpdateTriggerLessonID() *MilestoneUpsertBulk {
	return u.Update(func(s *MilestoneUpsert) {
		s.UpdateTriggerLessonID()
	})
}

// Exec executes the query.
func (u *MilestoneUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MilestoneCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MilestoneCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MilestoneUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
