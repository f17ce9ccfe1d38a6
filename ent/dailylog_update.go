// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tenk/ent/dailylog"
	"github.com/abhisek/tenk/ent/predicate"
)

// DailyLogUpdate is the builder for updating DailyLog entities.
type DailyLogUpdate struct {
	config
	hooks    []Hook
	mutation *DailyLogMutation
}

// Where appends a list predicates to the DailyLogUpdate builder.
func (_u *DailyLogUpdate) Where(ps ...predicate.DailyLog) *DailyLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *DailyLogUpdate) SetSkillID(v string) *DailyLogUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *DailyLogUpdate) SetNillableSkillID(v *string) *DailyLogUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *DailyLogUpdate) SetDate(v string) *DailyLogUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *DailyLogUpdate) SetNillableDate(v *string) *DailyLogUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetMinutes sets the "minutes" field.
func (_u *DailyLogUpdate) SetMinutes(v int) *DailyLogUpdate {
	_u.mutation.ResetMinutes()
	_u.mutation.SetMinutes(v)
	return _u
}

// SetNillableMinutes sets the "minutes" field if the given value is not nil.
func (_u *DailyLogUpdate) SetNillableMinutes(v *int) *DailyLogUpdate {
	if v != nil {
		_u.SetMinutes(*v)
	}
	return _u
}

// AddMinutes adds value to the "minutes" field.
func (_u *DailyLogUpdate) AddMinutes(v int) *DailyLogUpdate {
	_u.mutation.AddMinutes(v)
	return _u
}

// Mutation returns the DailyLogMutation object of the builder.
func (_u *DailyLogUpdate) Mutation() *DailyLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyLogUpdate) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := dailylog.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "DailyLog.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := dailylog.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "DailyLog.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Minutes(); ok {
		if err := dailylog.MinutesValidator(v); err != nil {
			return &ValidationError{Name: "minutes", err: fmt.Errorf(`ent: validator failed for field "DailyLog.minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailylog.Table, dailylog.Columns, sqlgraph.NewFieldSpec(dailylog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(dailylog.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(dailylog.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Minutes(); ok {
		_spec.SetField(dailylog.FieldMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinutes(); ok {
		_spec.AddField(dailylog.FieldMinutes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyLogUpdateOne is the builder for updating a single DailyLog entity.
type DailyLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyLogMutation
}

// SetSkillID sets the "skill_id" field.
func (_u *DailyLogUpdateOne) SetSkillID(v string) *DailyLogUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *DailyLogUpdateOne) SetNillableSkillID(v *string) *DailyLogUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *DailyLogUpdateOne) SetDate(v string) *DailyLogUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *DailyLogUpdateOne) SetNillableDate(v *string) *DailyLogUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetMinutes sets the "minutes" field.
func (_u *DailyLogUpdateOne) SetMinutes(v int) *DailyLogUpdateOne {
	_u.mutation.ResetMinutes()
	_u.mutation.SetMinutes(v)
	return _u
}

// SetNillableMinutes sets the "minutes" field if the given value is not nil.
func (_u *DailyLogUpdateOne) SetNillableMinutes(v *int) *DailyLogUpdateOne {
	if v != nil {
		_u.SetMinutes(*v)
	}
	return _u
}

// AddMinutes adds value to the "minutes" field.
func (_u *DailyLogUpdateOne) AddMinutes(v int) *DailyLogUpdateOne {
	_u.mutation.AddMinutes(v)
	return _u
}

// Mutation returns the DailyLogMutation object of the builder.
func (_u *DailyLogUpdateOne) Mutation() *DailyLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyLogUpdate builder.
func (_u *DailyLogUpdateOne) Where(ps ...predicate.DailyLog) *DailyLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyLogUpdateOne) Select(field string, fields ...string) *DailyLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyLog entity.
func (_u *DailyLogUpdateOne) Save(ctx context.Context) (*DailyLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyLogUpdateOne) SaveX(ctx context.Context) *DailyLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyLogUpdateOne) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := dailylog.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "DailyLog.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := dailylog.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "DailyLog.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Minutes(); ok {
		if err := dailylog.MinutesValidator(v); err != nil {
			return &ValidationError{Name: "minutes", err: fmt.Errorf(`ent: validator failed for field "DailyLog.minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyLogUpdateOne) sqlSave(ctx context.Context) (_node *DailyLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailylog.Table, dailylog.Columns, sqlgraph.NewFieldSpec(dailylog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailylog.FieldID)
		for _, f := range fields {
			if !dailylog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailylog.FieldID {
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
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(dailylog.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(dailylog.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Minutes(); ok {
		_spec.SetField(dailylog.FieldMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinutes(); ok {
		_spec.AddField(dailylog.FieldMinutes, field.TypeInt, value)
	}
	_node = &DailyLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
