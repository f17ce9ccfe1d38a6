// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tenk/ent/dailylog"
)

// DailyLogCreate is the builder for creating a DailyLog entity.
type DailyLogCreate struct {
	config
	mutation *DailyLogMutation
	hooks    []Hook
}

// SetSkillID sets the "skill_id" field.
func (_c *DailyLogCreate) SetSkillID(v string) *DailyLogCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *DailyLogCreate) SetDate(v string) *DailyLogCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetMinutes sets the "minutes" field.
func (_c *DailyLogCreate) SetMinutes(v int) *DailyLogCreate {
	_c.mutation.SetMinutes(v)
	return _c
}

// SetNillableMinutes sets the "minutes" field if the given value is not nil.
func (_c *DailyLogCreate) SetNillableMinutes(v *int) *DailyLogCreate {
	if v != nil {
		_c.SetMinutes(*v)
	}
	return _c
}

// Mutation returns the DailyLogMutation object of the builder.
func (_c *DailyLogCreate) Mutation() *DailyLogMutation {
	return _c.mutation
}

// Save creates the DailyLog in the database.
func (_c *DailyLogCreate) Save(ctx context.Context) (*DailyLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyLogCreate) SaveX(ctx context.Context) *DailyLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyLogCreate) defaults() {
	if _, ok := _c.mutation.Minutes(); !ok {
		v := dailylog.DefaultMinutes
		_c.mutation.SetMinutes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyLogCreate) check() error {
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "DailyLog.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := dailylog.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "DailyLog.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "DailyLog.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := dailylog.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "DailyLog.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Minutes(); !ok {
		return &ValidationError{Name: "minutes", err: errors.New(`ent: missing required field "DailyLog.minutes"`)}
	}
	if v, ok := _c.mutation.Minutes(); ok {
		if err := dailylog.MinutesValidator(v); err != nil {
			return &ValidationError{Name: "minutes", err: fmt.Errorf(`ent: validator failed for field "DailyLog.minutes": %w`, err)}
		}
	}
	return nil
}

func (_c *DailyLogCreate) sqlSave(ctx context.Context) (*DailyLog, error) {
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

func (_c *DailyLogCreate) createSpec() (*DailyLog, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailylog.Table, sqlgraph.NewFieldSpec(dailylog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(dailylog.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(dailylog.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Minutes(); ok {
		_spec.SetField(dailylog.FieldMinutes, field.TypeInt, value)
		_node.Minutes = value
	}
	return _node, _spec
}

// DailyLogCreateBulk is the builder for creating many DailyLog entities in bulk.
type DailyLogCreateBulk struct {
	config
	err      error
	builders []*DailyLogCreate
}

// Save creates the DailyLog entities in the database.
func (_c *DailyLogCreateBulk) Save(ctx context.Context) ([]*DailyLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyLogMutation)
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
func (_c *DailyLogCreateBulk) SaveX(ctx context.Context) []*DailyLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
