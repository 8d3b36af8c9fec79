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
	"github.com/abhisek/moneypath/ent/analyticsevent"
)

// AnalyticsEventCreate is the builder for creating a AnalyticsEvent entity.
type AnalyticsEventCreate struct {
	config
	mutation *AnalyticsEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *AnalyticsEventCreate) SetSequence(v int64) *AnalyticsEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnalyticsEventCreate) SetTimestamp(v time.Time) *AnalyticsEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnalyticsEventCreate) SetNillableTimestamp(v *time.Time) *AnalyticsEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AnalyticsEventCreate) SetUserID(v string) *AnalyticsEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *AnalyticsEventCreate) SetNillableUserID(v *string) *AnalyticsEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *AnalyticsEventCreate) SetName(v string) *AnalyticsEventCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProperties sets the "properties" field.
func (_c *AnalyticsEventCreate) SetProperties(v map[string]interface{}) *AnalyticsEventCreate {
	_c.mutation.SetProperties(v)
	return _c
}

// Mutation returns the AnalyticsEventMutation object of the builder.
func (_c *AnalyticsEventCreate) Mutation() *AnalyticsEventMutation {
	return _c.mutation
}

// Save creates the AnalyticsEvent in the database.
func (_c *AnalyticsEventCreate) Save(ctx context.Context) (*AnalyticsEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalyticsEventCreate) SaveX(ctx context.Context) *AnalyticsEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyticsEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyticsEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalyticsEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := analyticsevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.UserID(); !ok {
		v := analyticsevent.DefaultUserID
		_c.mutation.SetUserID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalyticsEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnalyticsEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnalyticsEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AnalyticsEvent.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AnalyticsEvent.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := analyticsevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AnalyticsEvent.name": %w`, err)}
		}
	}
	return nil
}

func (_c *AnalyticsEventCreate) sqlSave(ctx context.Context) (*AnalyticsEvent, error) {
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

func (_c *AnalyticsEventCreate) createSpec() (*AnalyticsEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalyticsEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analyticsevent.Table, sqlgraph.NewFieldSpec(analyticsevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(analyticsevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(analyticsevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(analyticsevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(analyticsevent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Properties(); ok {
		_spec.SetField(analyticsevent.FieldProperties, field.TypeJSON, value)
		_node.Properties = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnalyticsEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalyticsEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalyticsEventCreate) OnConflict(opts ...sql.ConflictOption) *AnalyticsEventUpsertOne {
	_c.conflict = opts
	return &AnalyticsEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnalyticsEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalyticsEventCreate) OnConflictColumns(columns ...string) *AnalyticsEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalyticsEventUpsertOne{
		create: _c,
	}
}

type (
	// AnalyticsEventUpsertOne is the builder for "upsert"-ing
	//  one AnalyticsEvent node.
	AnalyticsEventUpsertOne struct {
		create *AnalyticsEventCreate
	}

	// AnalyticsEventUpsert is the "OnConflict" setter.
	AnalyticsEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AnalyticsEventUpsert) SetUserID(v string) *AnalyticsEventUpsert {
	u.Set(analyticsevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnalyticsEventUpsert) UpdateUserID() *AnalyticsEventUpsert {
	u.SetExcluded(analyticsevent.FieldUserID)
	return u
}

// SetName sets the "name" field.
func (u *AnalyticsEventUpsert) SetName(v string) *AnalyticsEventUpsert {
	u.Set(analyticsevent.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AnalyticsEventUpsert) UpdateName() *AnalyticsEventUpsert {
	u.SetExcluded(analyticsevent.FieldName)
	return u
}

// SetProperties sets the "properties" field.
func (u *AnalyticsEventUpsert) SetProperties(v map[string]interface{}) *AnalyticsEventUpsert {
	u.Set(analyticsevent.FieldProperties, v)
	return u
}

// UpdateProperties sets the "properties" field to the value that was provided on create.
func (u *AnalyticsEventUpsert) UpdateProperties() *AnalyticsEventUpsert {
	u.SetExcluded(analyticsevent.FieldProperties)
	return u
}

// ClearProperties clears the value of the "properties" field.
func (u *AnalyticsEventUpsert) ClearProperties() *AnalyticsEventUpsert {
	u.SetNull(analyticsevent.FieldProperties)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AnalyticsEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnalyticsEventUpsertOne) UpdateNewValues() *AnalyticsEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(analyticsevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(analyticsevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnalyticsEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnalyticsEventUpsertOne) Ignore() *AnalyticsEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalyticsEventUpsertOne) DoNothing() *AnalyticsEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalyticsEventCreate.OnConflict
// documentation for more info.
func (u *AnalyticsEventUpsertOne) Update(set func(*AnalyticsEventUpsert)) *AnalyticsEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalyticsEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AnalyticsEventUpsertOne) SetUserID(v string) *AnalyticsEventUpsertOne {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnalyticsEventUpsertOne) UpdateUserID() *AnalyticsEventUpsertOne {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *AnalyticsEventUpsertOne) SetName(v string) *AnalyticsEventUpsertOne {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AnalyticsEventUpsertOne) UpdateName() *AnalyticsEventUpsertOne {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.UpdateName()
	})
}

// SetProperties sets the "properties" field.
func (u *AnalyticsEventUpsertOne) SetProperties(v map[string]interface{}) *AnalyticsEventUpsertOne {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.SetProperties(v)
	})
}

// UpdateProperties sets the "properties" field to the value that was provided on create.
func (u *AnalyticsEventUpsertOne) UpdateProperties() *AnalyticsEventUpsertOne {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.UpdateProperties()
	})
}

// ClearProperties clears the value of the "properties" field.
func (u *AnalyticsEventUpsertOne) ClearProperties() *AnalyticsEventUpsertOne {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.ClearProperties()
	})
}

// Exec executes the query.
func (u *AnalyticsEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalyticsEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalyticsEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnalyticsEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnalyticsEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnalyticsEventCreateBulk is the builder for creating many AnalyticsEvent entities in bulk.
type AnalyticsEventCreateBulk struct {
	config
	err      error
	builders []*AnalyticsEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AnalyticsEvent entities in the database.
func (_c *AnalyticsEventCreateBulk) Save(ctx context.Context) ([]*AnalyticsEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalyticsEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalyticsEventMutation)
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
func (_c *AnalyticsEventCreateBulk) SaveX(ctx context.Context) []*AnalyticsEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyticsEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyticsEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnalyticsEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalyticsEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalyticsEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnalyticsEventUpsertBulk {
	_c.conflict = opts
	return &AnalyticsEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnalyticsEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalyticsEventCreateBulk) OnConflictColumns(columns ...string) *AnalyticsEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalyticsEventUpsertBulk{
		create: _c,
	}
}

// AnalyticsEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AnalyticsEvent nodes.
type AnalyticsEventUpsertBulk struct {
	create *AnalyticsEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AnalyticsEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnalyticsEventUpsertBulk) UpdateNewValues() *AnalyticsEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(analyticsevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(analyticsevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnalyticsEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnalyticsEventUpsertBulk) Ignore() *AnalyticsEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalyticsEventUpsertBulk) DoNothing() *AnalyticsEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalyticsEventCreateBulk.OnConflict
// documentation for more info.
func (u *AnalyticsEventUpsertBulk) Update(set func(*AnalyticsEventUpsert)) *AnalyticsEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalyticsEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AnalyticsEventUpsertBulk) SetUserID(v string) *AnalyticsEventUpsertBulk {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnalyticsEventUpsertBulk) UpdateUserID() *AnalyticsEventUpsertBulk {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *AnalyticsEventUpsertBulk) SetName(v string) *AnalyticsEventUpsertBulk {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AnalyticsEventUpsertBulk) UpdateName() *AnalyticsEventUpsertBulk {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.UpdateName()
	})
}

// SetProperties sets the "properties" field.
func (u *AnalyticsEventUpsertBulk) SetProperties(v map[string]interface{}) *AnalyticsEventUpsertBulk {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.SetProperties(v)
	})
}

// UpdateProperties sets the "properties" field to the value that was provided on create.
func (u *AnalyticsEventUpsertBulk) UpdateProperties() *AnalyticsEventUpsertBulk {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.UpdateProperties()
	})
}

// ClearProperties clears the value of the "properties" field.
func (u *AnalyticsEventUpsertBulk) ClearProperties() *AnalyticsEventUpsertBulk {
	return u.Update(func(s *AnalyticsEventUpsert) {
		s.ClearProperties()
	})
}

// Exec executes the query.
func (u *AnalyticsEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnalyticsEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalyticsEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalyticsEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
