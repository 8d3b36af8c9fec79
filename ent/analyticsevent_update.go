// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/moneypath/ent/analyticsevent"
	"github.com/abhisek/moneypath/ent/predicate"
)

// AnalyticsEventUpdate is the builder for updating AnalyticsEvent entities.
type AnalyticsEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalyticsEventMutation
}

// Where appends a list predicates to the AnalyticsEventUpdate builder.
func (_u *AnalyticsEventUpdate) Where(ps ...predicate.AnalyticsEvent) *AnalyticsEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnalyticsEventUpdate) SetUserID(v string) *AnalyticsEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnalyticsEventUpdate) SetNillableUserID(v *string) *AnalyticsEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AnalyticsEventUpdate) SetName(v string) *AnalyticsEventUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AnalyticsEventUpdate) SetNillableName(v *string) *AnalyticsEventUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProperties sets the "properties" field.
func (_u *AnalyticsEventUpdate) SetProperties(v map[string]interface{}) *AnalyticsEventUpdate {
	_u.mutation.SetProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *AnalyticsEventUpdate) ClearProperties() *AnalyticsEventUpdate {
	_u.mutation.ClearProperties()
	return _u
}

// Mutation returns the AnalyticsEventMutation object of the builder.
func (_u *AnalyticsEventUpdate) Mutation() *AnalyticsEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalyticsEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyticsEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalyticsEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyticsEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalyticsEventUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := analyticsevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AnalyticsEvent.name": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalyticsEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analyticsevent.Table, analyticsevent.Columns, sqlgraph.NewFieldSpec(analyticsevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(analyticsevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(analyticsevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(analyticsevent.FieldProperties, field.TypeJSON, value)
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(analyticsevent.FieldProperties, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analyticsevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalyticsEventUpdateOne is the builder for updating a single AnalyticsEvent entity.
type AnalyticsEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalyticsEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AnalyticsEventUpdateOne) SetUserID(v string) *AnalyticsEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnalyticsEventUpdateOne) SetNillableUserID(v *string) *AnalyticsEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AnalyticsEventUpdateOne) SetName(v string) *AnalyticsEventUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AnalyticsEventUpdateOne) SetNillableName(v *string) *AnalyticsEventUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProperties sets the "properties" field.
func (_u *AnalyticsEventUpdateOne) SetProperties(v map[string]interface{}) *AnalyticsEventUpdateOne {
	_u.mutation.SetProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *AnalyticsEventUpdateOne) ClearProperties() *AnalyticsEventUpdateOne {
	_u.mutation.ClearProperties()
	return _u
}

// Mutation returns the AnalyticsEventMutation object of the builder.
func (_u *AnalyticsEventUpdateOne) Mutation() *AnalyticsEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalyticsEventUpdate builder.
func (_u *AnalyticsEventUpdateOne) Where(ps ...predicate.AnalyticsEvent) *AnalyticsEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalyticsEventUpdateOne) Select(field string, fields ...string) *AnalyticsEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalyticsEvent entity.
func (_u *AnalyticsEventUpdateOne) Save(ctx context.Context) (*AnalyticsEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyticsEventUpdateOne) SaveX(ctx context.Context) *AnalyticsEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalyticsEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyticsEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalyticsEventUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := analyticsevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AnalyticsEvent.name": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalyticsEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalyticsEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analyticsevent.Table, analyticsevent.Columns, sqlgraph.NewFieldSpec(analyticsevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalyticsEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analyticsevent.FieldID)
		for _, f := range fields {
			if !analyticsevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analyticsevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(analyticsevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(analyticsevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(analyticsevent.FieldProperties, field.TypeJSON, value)
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(analyticsevent.FieldProperties, field.TypeJSON)
	}
	_node = &AnalyticsEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analyticsevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
