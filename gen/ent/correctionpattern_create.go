// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codemarcinu/pantry-tracker/gen/ent/correctionpattern"
	"github.com/google/uuid"
)

// CorrectionPatternCreate is the builder for creating a CorrectionPattern entity.
type CorrectionPatternCreate struct {
	config
	mutation *CorrectionPatternMutation
	hooks    []Hook
}

// SetErrorPattern sets the "error_pattern" field.
func (_c *CorrectionPatternCreate) SetErrorPattern(v string) *CorrectionPatternCreate {
	_c.mutation.SetErrorPattern(v)
	return _c
}

// SetCorrectPattern sets the "correct_pattern" field.
func (_c *CorrectionPatternCreate) SetCorrectPattern(v string) *CorrectionPatternCreate {
	_c.mutation.SetCorrectPattern(v)
	return _c
}

// SetIsRegex sets the "is_regex" field.
func (_c *CorrectionPatternCreate) SetIsRegex(v bool) *CorrectionPatternCreate {
	_c.mutation.SetIsRegex(v)
	return _c
}

// SetNillableIsRegex sets the "is_regex" field if the given value is not nil.
func (_c *CorrectionPatternCreate) SetNillableIsRegex(v *bool) *CorrectionPatternCreate {
	if v != nil {
		_c.SetIsRegex(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *CorrectionPatternCreate) SetConfidence(v float64) *CorrectionPatternCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *CorrectionPatternCreate) SetNillableConfidence(v *float64) *CorrectionPatternCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetTimesApplied sets the "times_applied" field.
func (_c *CorrectionPatternCreate) SetTimesApplied(v int) *CorrectionPatternCreate {
	_c.mutation.SetTimesApplied(v)
	return _c
}

// SetNillableTimesApplied sets the "times_applied" field if the given value is not nil.
func (_c *CorrectionPatternCreate) SetNillableTimesApplied(v *int) *CorrectionPatternCreate {
	if v != nil {
		_c.SetTimesApplied(*v)
	}
	return _c
}

// SetSampleCount sets the "sample_count" field.
func (_c *CorrectionPatternCreate) SetSampleCount(v int) *CorrectionPatternCreate {
	_c.mutation.SetSampleCount(v)
	return _c
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_c *CorrectionPatternCreate) SetNillableSampleCount(v *int) *CorrectionPatternCreate {
	if v != nil {
		_c.SetSampleCount(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *CorrectionPatternCreate) SetIsActive(v bool) *CorrectionPatternCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *CorrectionPatternCreate) SetNillableIsActive(v *bool) *CorrectionPatternCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetHumanDeactivated sets the "human_deactivated" field.
func (_c *CorrectionPatternCreate) SetHumanDeactivated(v bool) *CorrectionPatternCreate {
	_c.mutation.SetHumanDeactivated(v)
	return _c
}

// SetNillableHumanDeactivated sets the "human_deactivated" field if the given value is not nil.
func (_c *CorrectionPatternCreate) SetNillableHumanDeactivated(v *bool) *CorrectionPatternCreate {
	if v != nil {
		_c.SetHumanDeactivated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CorrectionPatternCreate) SetCreatedAt(v time.Time) *CorrectionPatternCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CorrectionPatternCreate) SetNillableCreatedAt(v *time.Time) *CorrectionPatternCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CorrectionPatternCreate) SetUpdatedAt(v time.Time) *CorrectionPatternCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CorrectionPatternCreate) SetNillableUpdatedAt(v *time.Time) *CorrectionPatternCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CorrectionPatternCreate) SetID(v uuid.UUID) *CorrectionPatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CorrectionPatternCreate) SetNillableID(v *uuid.UUID) *CorrectionPatternCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CorrectionPatternMutation object of the builder.
func (_c *CorrectionPatternCreate) Mutation() *CorrectionPatternMutation {
	return _c.mutation
}

// Save creates the CorrectionPattern in the database.
func (_c *CorrectionPatternCreate) Save(ctx context.Context) (*CorrectionPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CorrectionPatternCreate) SaveX(ctx context.Context) *CorrectionPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CorrectionPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CorrectionPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CorrectionPatternCreate) defaults() {
	if _, ok := _c.mutation.IsRegex(); !ok {
		v := correctionpattern.DefaultIsRegex
		_c.mutation.SetIsRegex(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := correctionpattern.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.TimesApplied(); !ok {
		v := correctionpattern.DefaultTimesApplied
		_c.mutation.SetTimesApplied(v)
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		v := correctionpattern.DefaultSampleCount
		_c.mutation.SetSampleCount(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := correctionpattern.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.HumanDeactivated(); !ok {
		v := correctionpattern.DefaultHumanDeactivated
		_c.mutation.SetHumanDeactivated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := correctionpattern.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := correctionpattern.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := correctionpattern.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CorrectionPatternCreate) check() error {
	if _, ok := _c.mutation.ErrorPattern(); !ok {
		return &ValidationError{Name: "error_pattern", err: errors.New(`ent: missing required field "CorrectionPattern.error_pattern"`)}
	}
	if v, ok := _c.mutation.ErrorPattern(); ok {
		if err := correctionpattern.ErrorPatternValidator(v); err != nil {
			return &ValidationError{Name: "error_pattern", err: fmt.Errorf(`ent: validator failed for field "CorrectionPattern.error_pattern": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectPattern(); !ok {
		return &ValidationError{Name: "correct_pattern", err: errors.New(`ent: missing required field "CorrectionPattern.correct_pattern"`)}
	}
	if v, ok := _c.mutation.CorrectPattern(); ok {
		if err := correctionpattern.CorrectPatternValidator(v); err != nil {
			return &ValidationError{Name: "correct_pattern", err: fmt.Errorf(`ent: validator failed for field "CorrectionPattern.correct_pattern": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsRegex(); !ok {
		return &ValidationError{Name: "is_regex", err: errors.New(`ent: missing required field "CorrectionPattern.is_regex"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "CorrectionPattern.confidence"`)}
	}
	if _, ok := _c.mutation.TimesApplied(); !ok {
		return &ValidationError{Name: "times_applied", err: errors.New(`ent: missing required field "CorrectionPattern.times_applied"`)}
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		return &ValidationError{Name: "sample_count", err: errors.New(`ent: missing required field "CorrectionPattern.sample_count"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "CorrectionPattern.is_active"`)}
	}
	if _, ok := _c.mutation.HumanDeactivated(); !ok {
		return &ValidationError{Name: "human_deactivated", err: errors.New(`ent: missing required field "CorrectionPattern.human_deactivated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CorrectionPattern.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CorrectionPattern.updated_at"`)}
	}
	return nil
}

func (_c *CorrectionPatternCreate) sqlSave(ctx context.Context) (*CorrectionPattern, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CorrectionPatternCreate) createSpec() (*CorrectionPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &CorrectionPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(correctionpattern.Table, sqlgraph.NewFieldSpec(correctionpattern.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ErrorPattern(); ok {
		_spec.SetField(correctionpattern.FieldErrorPattern, field.TypeString, value)
		_node.ErrorPattern = value
	}
	if value, ok := _c.mutation.CorrectPattern(); ok {
		_spec.SetField(correctionpattern.FieldCorrectPattern, field.TypeString, value)
		_node.CorrectPattern = value
	}
	if value, ok := _c.mutation.IsRegex(); ok {
		_spec.SetField(correctionpattern.FieldIsRegex, field.TypeBool, value)
		_node.IsRegex = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(correctionpattern.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.TimesApplied(); ok {
		_spec.SetField(correctionpattern.FieldTimesApplied, field.TypeInt, value)
		_node.TimesApplied = value
	}
	if value, ok := _c.mutation.SampleCount(); ok {
		_spec.SetField(correctionpattern.FieldSampleCount, field.TypeInt, value)
		_node.SampleCount = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(correctionpattern.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.HumanDeactivated(); ok {
		_spec.SetField(correctionpattern.FieldHumanDeactivated, field.TypeBool, value)
		_node.HumanDeactivated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(correctionpattern.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(correctionpattern.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CorrectionPatternCreateBulk is the builder for creating many CorrectionPattern entities in bulk.
type CorrectionPatternCreateBulk struct {
	config
	err      error
	builders []*CorrectionPatternCreate
}

// Save creates the CorrectionPattern entities in the database.
func (_c *CorrectionPatternCreateBulk) Save(ctx context.Context) ([]*CorrectionPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CorrectionPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CorrectionPatternMutation)
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
func (_c *CorrectionPatternCreateBulk) SaveX(ctx context.Context) []*CorrectionPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CorrectionPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CorrectionPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
