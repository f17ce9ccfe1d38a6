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
	"github.com/abhisek/tenk/ent/predicate"
	"github.com/abhisek/tenk/ent/skill"
)

// SkillUpdate is the builder for updating Skill entities.
type SkillUpdate struct {
	config
	hooks    []Hook
	mutation *SkillMutation
}

// Where appends a list predicates to the SkillUpdate builder.
func (_u *SkillUpdate) Where(ps ...predicate.Skill) *SkillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SkillUpdate) SetTitle(v string) *SkillUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableTitle(v *string) *SkillUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *SkillUpdate) SetCategory(v string) *SkillUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableCategory(v *string) *SkillUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetMotivation sets the "motivation" field.
func (_u *SkillUpdate) SetMotivation(v string) *SkillUpdate {
	_u.mutation.SetMotivation(v)
	return _u
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableMotivation(v *string) *SkillUpdate {
	if v != nil {
		_u.SetMotivation(*v)
	}
	return _u
}

// ClearMotivation clears the value of the "motivation" field.
func (_u *SkillUpdate) ClearMotivation() *SkillUpdate {
	_u.mutation.ClearMotivation()
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *SkillUpdate) SetTotalMinutes(v int) *SkillUpdate {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableTotalMinutes(v *int) *SkillUpdate {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *SkillUpdate) AddTotalMinutes(v int) *SkillUpdate {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SkillUpdate) SetIsActive(v bool) *SkillUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableIsActive(v *bool) *SkillUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SkillUpdate) SetStartTime(v time.Time) *SkillUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableStartTime(v *time.Time) *SkillUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *SkillUpdate) ClearStartTime() *SkillUpdate {
	_u.mutation.ClearStartTime()
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *SkillUpdate) SetLastActiveAt(v time.Time) *SkillUpdate {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableLastActiveAt(v *time.Time) *SkillUpdate {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (_u *SkillUpdate) ClearLastActiveAt() *SkillUpdate {
	_u.mutation.ClearLastActiveAt()
	return _u
}

// SetHasShownConfetti sets the "has_shown_confetti" field.
func (_u *SkillUpdate) SetHasShownConfetti(v bool) *SkillUpdate {
	_u.mutation.SetHasShownConfetti(v)
	return _u
}

// SetNillableHasShownConfetti sets the "has_shown_confetti" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableHasShownConfetti(v *bool) *SkillUpdate {
	if v != nil {
		_u.SetHasShownConfetti(*v)
	}
	return _u
}

// Mutation returns the SkillMutation object of the builder.
func (_u *SkillUpdate) Mutation() *SkillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := skill.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Skill.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := skill.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Skill.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalMinutes(); ok {
		if err := skill.TotalMinutesValidator(v); err != nil {
			return &ValidationError{Name: "total_minutes", err: fmt.Errorf(`ent: validator failed for field "Skill.total_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skill.Table, skill.Columns, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(skill.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(skill.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Motivation(); ok {
		_spec.SetField(skill.FieldMotivation, field.TypeString, value)
	}
	if _u.mutation.MotivationCleared() {
		_spec.ClearField(skill.FieldMotivation, field.TypeString)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(skill.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(skill.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(skill.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(skill.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(skill.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(skill.FieldLastActiveAt, field.TypeTime, value)
	}
	if _u.mutation.LastActiveAtCleared() {
		_spec.ClearField(skill.FieldLastActiveAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HasShownConfetti(); ok {
		_spec.SetField(skill.FieldHasShownConfetti, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillUpdateOne is the builder for updating a single Skill entity.
type SkillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillMutation
}

// SetTitle sets the "title" field.
func (_u *SkillUpdateOne) SetTitle(v string) *SkillUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableTitle(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *SkillUpdateOne) SetCategory(v string) *SkillUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableCategory(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetMotivation sets the "motivation" field.
func (_u *SkillUpdateOne) SetMotivation(v string) *SkillUpdateOne {
	_u.mutation.SetMotivation(v)
	return _u
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableMotivation(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetMotivation(*v)
	}
	return _u
}

// ClearMotivation clears the value of the "motivation" field.
func (_u *SkillUpdateOne) ClearMotivation() *SkillUpdateOne {
	_u.mutation.ClearMotivation()
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *SkillUpdateOne) SetTotalMinutes(v int) *SkillUpdateOne {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableTotalMinutes(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *SkillUpdateOne) AddTotalMinutes(v int) *SkillUpdateOne {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SkillUpdateOne) SetIsActive(v bool) *SkillUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableIsActive(v *bool) *SkillUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SkillUpdateOne) SetStartTime(v time.Time) *SkillUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableStartTime(v *time.Time) *SkillUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *SkillUpdateOne) ClearStartTime() *SkillUpdateOne {
	_u.mutation.ClearStartTime()
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *SkillUpdateOne) SetLastActiveAt(v time.Time) *SkillUpdateOne {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableLastActiveAt(v *time.Time) *SkillUpdateOne {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (_u *SkillUpdateOne) ClearLastActiveAt() *SkillUpdateOne {
	_u.mutation.ClearLastActiveAt()
	return _u
}

// SetHasShownConfetti sets the "has_shown_confetti" field.
func (_u *SkillUpdateOne) SetHasShownConfetti(v bool) *SkillUpdateOne {
	_u.mutation.SetHasShownConfetti(v)
	return _u
}

// SetNillableHasShownConfetti sets the "has_shown_confetti" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableHasShownConfetti(v *bool) *SkillUpdateOne {
	if v != nil {
		_u.SetHasShownConfetti(*v)
	}
	return _u
}

// Mutation returns the SkillMutation object of the builder.
func (_u *SkillUpdateOne) Mutation() *SkillMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillUpdate builder.
func (_u *SkillUpdateOne) Where(ps ...predicate.Skill) *SkillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillUpdateOne) Select(field string, fields ...string) *SkillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Skill entity.
func (_u *SkillUpdateOne) Save(ctx context.Context) (*Skill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillUpdateOne) SaveX(ctx context.Context) *Skill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := skill.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Skill.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := skill.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Skill.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalMinutes(); ok {
		if err := skill.TotalMinutesValidator(v); err != nil {
			return &ValidationError{Name: "total_minutes", err: fmt.Errorf(`ent: validator failed for field "Skill.total_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillUpdateOne) sqlSave(ctx context.Context) (_node *Skill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skill.Table, skill.Columns, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Skill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skill.FieldID)
		for _, f := range fields {
			if !skill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skill.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(skill.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(skill.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Motivation(); ok {
		_spec.SetField(skill.FieldMotivation, field.TypeString, value)
	}
	if _u.mutation.MotivationCleared() {
		_spec.ClearField(skill.FieldMotivation, field.TypeString)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(skill.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(skill.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(skill.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(skill.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(skill.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(skill.FieldLastActiveAt, field.TypeTime, value)
	}
	if _u.mutation.LastActiveAtCleared() {
		_spec.ClearField(skill.FieldLastActiveAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HasShownConfetti(); ok {
		_spec.SetField(skill.FieldHasShownConfetti, field.TypeBool, value)
	}
	_node = &Skill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
