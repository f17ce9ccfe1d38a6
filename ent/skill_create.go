// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tenk/ent/skill"
)

// SkillCreate is the builder for creating a Skill entity.
type SkillCreate struct {
	config
	mutation *SkillMutation
	hooks    []Hook
}

// SetSkillID sets the "skill_id" field.
func (_c *SkillCreate) SetSkillID(v string) *SkillCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SkillCreate) SetTitle(v string) *SkillCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *SkillCreate) SetCategory(v string) *SkillCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetMotivation sets the "motivation" field.
func (_c *SkillCreate) SetMotivation(v string) *SkillCreate {
	_c.mutation.SetMotivation(v)
	return _c
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_c *SkillCreate) SetNillableMotivation(v *string) *SkillCreate {
	if v != nil {
		_c.SetMotivation(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SkillCreate) SetCreatedAt(v time.Time) *SkillCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SkillCreate) SetNillableCreatedAt(v *time.Time) *SkillCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTotalMinutes sets the "total_minutes" field.
func (_c *SkillCreate) SetTotalMinutes(v int) *SkillCreate {
	_c.mutation.SetTotalMinutes(v)
	return _c
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_c *SkillCreate) SetNillableTotalMinutes(v *int) *SkillCreate {
	if v != nil {
		_c.SetTotalMinutes(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *SkillCreate) SetIsActive(v bool) *SkillCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *SkillCreate) SetNillableIsActive(v *bool) *SkillCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *SkillCreate) SetStartTime(v time.Time) *SkillCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *SkillCreate) SetNillableStartTime(v *time.Time) *SkillCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetLastActiveAt sets the "last_active_at" field.
func (_c *SkillCreate) SetLastActiveAt(v time.Time) *SkillCreate {
	_c.mutation.SetLastActiveAt(v)
	return _c
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_c *SkillCreate) SetNillableLastActiveAt(v *time.Time) *SkillCreate {
	if v != nil {
		_c.SetLastActiveAt(*v)
	}
	return _c
}

// SetHasShownConfetti sets the "has_shown_confetti" field.
func (_c *SkillCreate) SetHasShownConfetti(v bool) *SkillCreate {
	_c.mutation.SetHasShownConfetti(v)
	return _c
}

// SetNillableHasShownConfetti sets the "has_shown_confetti" field if the given value is not nil.
func (_c *SkillCreate) SetNillableHasShownConfetti(v *bool) *SkillCreate {
	if v != nil {
		_c.SetHasShownConfetti(*v)
	}
	return _c
}

// Mutation returns the SkillMutation object of the builder.
func (_c *SkillCreate) Mutation() *SkillMutation {
	return _c.mutation
}

// Save creates the Skill in the database.
func (_c *SkillCreate) Save(ctx context.Context) (*Skill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillCreate) SaveX(ctx context.Context) *Skill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := skill.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.TotalMinutes(); !ok {
		v := skill.DefaultTotalMinutes
		_c.mutation.SetTotalMinutes(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := skill.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.HasShownConfetti(); !ok {
		v := skill.DefaultHasShownConfetti
		_c.mutation.SetHasShownConfetti(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillCreate) check() error {
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "Skill.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := skill.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Skill.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Skill.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := skill.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Skill.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Skill.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := skill.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Skill.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Skill.created_at"`)}
	}
	if _, ok := _c.mutation.TotalMinutes(); !ok {
		return &ValidationError{Name: "total_minutes", err: errors.New(`ent: missing required field "Skill.total_minutes"`)}
	}
	if v, ok := _c.mutation.TotalMinutes(); ok {
		if err := skill.TotalMinutesValidator(v); err != nil {
			return &ValidationError{Name: "total_minutes", err: fmt.Errorf(`ent: validator failed for field "Skill.total_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Skill.is_active"`)}
	}
	if _, ok := _c.mutation.HasShownConfetti(); !ok {
		return &ValidationError{Name: "has_shown_confetti", err: errors.New(`ent: missing required field "Skill.has_shown_confetti"`)}
	}
	return nil
}

func (_c *SkillCreate) sqlSave(ctx context.Context) (*Skill, error) {
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

func (_c *SkillCreate) createSpec() (*Skill, *sqlgraph.CreateSpec) {
	var (
		_node = &Skill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skill.Table, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(skill.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(skill.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(skill.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Motivation(); ok {
		_spec.SetField(skill.FieldMotivation, field.TypeString, value)
		_node.Motivation = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(skill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.TotalMinutes(); ok {
		_spec.SetField(skill.FieldTotalMinutes, field.TypeInt, value)
		_node.TotalMinutes = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(skill.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(skill.FieldStartTime, field.TypeTime, value)
		_node.StartTime = &value
	}
	if value, ok := _c.mutation.LastActiveAt(); ok {
		_spec.SetField(skill.FieldLastActiveAt, field.TypeTime, value)
		_node.LastActiveAt = &value
	}
	if value, ok := _c.mutation.HasShownConfetti(); ok {
		_spec.SetField(skill.FieldHasShownConfetti, field.TypeBool, value)
		_node.HasShownConfetti = value
	}
	return _node, _spec
}

// SkillCreateBulk is the builder for creating many Skill entities in bulk.
type SkillCreateBulk struct {
	config
	err      error
	builders []*SkillCreate
}

// Save creates the Skill entities in the database.
func (_c *SkillCreateBulk) Save(ctx context.Context) ([]*Skill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Skill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillMutation)
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
func (_c *SkillCreateBulk) SaveX(ctx context.Context) []*Skill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
