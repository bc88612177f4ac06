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
	"github.com/codemarcinu/pantry-tracker/gen/ent/correctionpattern"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
)

// CorrectionPatternUpdate is the builder for updating CorrectionPattern entities.
type CorrectionPatternUpdate struct {
	config
	hooks    []Hook
	mutation *CorrectionPatternMutation
}

// Where appends a list predicates to the CorrectionPatternUpdate builder.
func (_u *CorrectionPatternUpdate) Where(ps ...predicate.CorrectionPattern) *CorrectionPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetErrorPattern sets the "error_pattern" field.
func (_u *CorrectionPatternUpdate) SetErrorPattern(v string) *CorrectionPatternUpdate {
	_u.mutation.SetErrorPattern(v)
	return _u
}

// SetNillableErrorPattern sets the "error_pattern" field if the given value is not nil.
func (_u *CorrectionPatternUpdate) SetNillableErrorPattern(v *string) *CorrectionPatternUpdate {
	if v != nil {
		_u.SetErrorPattern(*v)
	}
	return _u
}

// SetCorrectPattern sets the "correct_pattern" field.
func (_u *CorrectionPatternUpdate) SetCorrectPattern(v string) *CorrectionPatternUpdate {
	_u.mutation.SetCorrectPattern(v)
	return _u
}

// SetNillableCorrectPattern sets the "correct_pattern" field if the given value is not nil.
func (_u *CorrectionPatternUpdate) SetNillableCorrectPattern(v *string) *CorrectionPatternUpdate {
	if v != nil {
		_u.SetCorrectPattern(*v)
	}
	return _u
}

// SetIsRegex sets the "is_regex" field.
func (_u *CorrectionPatternUpdate) SetIsRegex(v bool) *CorrectionPatternUpdate {
	_u.mutation.SetIsRegex(v)
	return _u
}

// SetNillableIsRegex sets the "is_regex" field if the given value is not nil.
func (_u *CorrectionPatternUpdate) SetNillableIsRegex(v *bool) *CorrectionPatternUpdate {
	if v != nil {
		_u.SetIsRegex(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CorrectionPatternUpdate) SetConfidence(v float64) *CorrectionPatternUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CorrectionPatternUpdate) SetNillableConfidence(v *float64) *CorrectionPatternUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CorrectionPatternUpdate) AddConfidence(v float64) *CorrectionPatternUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTimesApplied sets the "times_applied" field.
func (_u *CorrectionPatternUpdate) SetTimesApplied(v int) *CorrectionPatternUpdate {
	_u.mutation.ResetTimesApplied()
	_u.mutation.SetTimesApplied(v)
	return _u
}

// SetNillableTimesApplied sets the "times_applied" field if the given value is not nil.
func (_u *CorrectionPatternUpdate) SetNillableTimesApplied(v *int) *CorrectionPatternUpdate {
	if v != nil {
		_u.SetTimesApplied(*v)
	}
	return _u
}

// AddTimesApplied adds value to the "times_applied" field.
func (_u *CorrectionPatternUpdate) AddTimesApplied(v int) *CorrectionPatternUpdate {
	_u.mutation.AddTimesApplied(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *CorrectionPatternUpdate) SetSampleCount(v int) *CorrectionPatternUpdate {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *CorrectionPatternUpdate) SetNillableSampleCount(v *int) *CorrectionPatternUpdate {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *CorrectionPatternUpdate) AddSampleCount(v int) *CorrectionPatternUpdate {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *CorrectionPatternUpdate) SetIsActive(v bool) *CorrectionPatternUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *CorrectionPatternUpdate) SetNillableIsActive(v *bool) *CorrectionPatternUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetHumanDeactivated sets the "human_deactivated" field.
func (_u *CorrectionPatternUpdate) SetHumanDeactivated(v bool) *CorrectionPatternUpdate {
	_u.mutation.SetHumanDeactivated(v)
	return _u
}

// SetNillableHumanDeactivated sets the "human_deactivated" field if the given value is not nil.
func (_u *CorrectionPatternUpdate) SetNillableHumanDeactivated(v *bool) *CorrectionPatternUpdate {
	if v != nil {
		_u.SetHumanDeactivated(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CorrectionPatternUpdate) SetUpdatedAt(v time.Time) *CorrectionPatternUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CorrectionPatternMutation object of the builder.
func (_u *CorrectionPatternUpdate) Mutation() *CorrectionPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CorrectionPatternUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CorrectionPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CorrectionPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CorrectionPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CorrectionPatternUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := correctionpattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CorrectionPatternUpdate) check() error {
	if v, ok := _u.mutation.ErrorPattern(); ok {
		if err := correctionpattern.ErrorPatternValidator(v); err != nil {
			return &ValidationError{Name: "error_pattern", err: fmt.Errorf(`ent: validator failed for field "CorrectionPattern.error_pattern": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectPattern(); ok {
		if err := correctionpattern.CorrectPatternValidator(v); err != nil {
			return &ValidationError{Name: "correct_pattern", err: fmt.Errorf(`ent: validator failed for field "CorrectionPattern.correct_pattern": %w`, err)}
		}
	}
	return nil
}

func (_u *CorrectionPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(correctionpattern.Table, correctionpattern.Columns, sqlgraph.NewFieldSpec(correctionpattern.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ErrorPattern(); ok {
		_spec.SetField(correctionpattern.FieldErrorPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectPattern(); ok {
		_spec.SetField(correctionpattern.FieldCorrectPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsRegex(); ok {
		_spec.SetField(correctionpattern.FieldIsRegex, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(correctionpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(correctionpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimesApplied(); ok {
		_spec.SetField(correctionpattern.FieldTimesApplied, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesApplied(); ok {
		_spec.AddField(correctionpattern.FieldTimesApplied, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(correctionpattern.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(correctionpattern.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(correctionpattern.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HumanDeactivated(); ok {
		_spec.SetField(correctionpattern.FieldHumanDeactivated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(correctionpattern.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{correctionpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CorrectionPatternUpdateOne is the builder for updating a single CorrectionPattern entity.
type CorrectionPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CorrectionPatternMutation
}

// SetErrorPattern sets the "error_pattern" field.
func (_u *CorrectionPatternUpdateOne) SetErrorPattern(v string) *CorrectionPatternUpdateOne {
	_u.mutation.SetErrorPattern(v)
	return _u
}

// SetNillableErrorPattern sets the "error_pattern" field if the given value is not nil.
func (_u *CorrectionPatternUpdateOne) SetNillableErrorPattern(v *string) *CorrectionPatternUpdateOne {
	if v != nil {
		_u.SetErrorPattern(*v)
	}
	return _u
}

// SetCorrectPattern sets the "correct_pattern" field.
func (_u *CorrectionPatternUpdateOne) SetCorrectPattern(v string) *CorrectionPatternUpdateOne {
	_u.mutation.SetCorrectPattern(v)
	return _u
}

// SetNillableCorrectPattern sets the "correct_pattern" field if the given value is not nil.
func (_u *CorrectionPatternUpdateOne) SetNillableCorrectPattern(v *string) *CorrectionPatternUpdateOne {
	if v != nil {
		_u.SetCorrectPattern(*v)
	}
	return _u
}

// SetIsRegex sets the "is_regex" field.
func (_u *CorrectionPatternUpdateOne) SetIsRegex(v bool) *CorrectionPatternUpdateOne {
	_u.mutation.SetIsRegex(v)
	return _u
}

// SetNillableIsRegex sets the "is_regex" field if the given value is not nil.
func (_u *CorrectionPatternUpdateOne) SetNillableIsRegex(v *bool) *CorrectionPatternUpdateOne {
	if v != nil {
		_u.SetIsRegex(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CorrectionPatternUpdateOne) SetConfidence(v float64) *CorrectionPatternUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CorrectionPatternUpdateOne) SetNillableConfidence(v *float64) *CorrectionPatternUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CorrectionPatternUpdateOne) AddConfidence(v float64) *CorrectionPatternUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTimesApplied sets the "times_applied" field.
func (_u *CorrectionPatternUpdateOne) SetTimesApplied(v int) *CorrectionPatternUpdateOne {
	_u.mutation.ResetTimesApplied()
	_u.mutation.SetTimesApplied(v)
	return _u
}

// SetNillableTimesApplied sets the "times_applied" field if the given value is not nil.
func (_u *CorrectionPatternUpdateOne) SetNillableTimesApplied(v *int) *CorrectionPatternUpdateOne {
	if v != nil {
		_u.SetTimesApplied(*v)
	}
	return _u
}

// AddTimesApplied adds value to the "times_applied" field.
func (_u *CorrectionPatternUpdateOne) AddTimesApplied(v int) *CorrectionPatternUpdateOne {
	_u.mutation.AddTimesApplied(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *CorrectionPatternUpdateOne) SetSampleCount(v int) *CorrectionPatternUpdateOne {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *CorrectionPatternUpdateOne) SetNillableSampleCount(v *int) *CorrectionPatternUpdateOne {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *CorrectionPatternUpdateOne) AddSampleCount(v int) *CorrectionPatternUpdateOne {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *CorrectionPatternUpdateOne) SetIsActive(v bool) *CorrectionPatternUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *CorrectionPatternUpdateOne) SetNillableIsActive(v *bool) *CorrectionPatternUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetHumanDeactivated sets the "human_deactivated" field.
func (_u *CorrectionPatternUpdateOne) SetHumanDeactivated(v bool) *CorrectionPatternUpdateOne {
	_u.mutation.SetHumanDeactivated(v)
	return _u
}

// SetNillableHumanDeactivated sets the "human_deactivated" field if the given value is not nil.
func (_u *CorrectionPatternUpdateOne) SetNillableHumanDeactivated(v *bool) *CorrectionPatternUpdateOne {
	if v != nil {
		_u.SetHumanDeactivated(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CorrectionPatternUpdateOne) SetUpdatedAt(v time.Time) *CorrectionPatternUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CorrectionPatternMutation object of the builder.
func (_u *CorrectionPatternUpdateOne) Mutation() *CorrectionPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the CorrectionPatternUpdate builder.
func (_u *CorrectionPatternUpdateOne) Where(ps ...predicate.CorrectionPattern) *CorrectionPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CorrectionPatternUpdateOne) Select(field string, fields ...string) *CorrectionPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CorrectionPattern entity.
func (_u *CorrectionPatternUpdateOne) Save(ctx context.Context) (*CorrectionPattern, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CorrectionPatternUpdateOne) SaveX(ctx context.Context) *CorrectionPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CorrectionPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CorrectionPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CorrectionPatternUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := correctionpattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CorrectionPatternUpdateOne) check() error {
	if v, ok := _u.mutation.ErrorPattern(); ok {
		if err := correctionpattern.ErrorPatternValidator(v); err != nil {
			return &ValidationError{Name: "error_pattern", err: fmt.Errorf(`ent: validator failed for field "CorrectionPattern.error_pattern": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectPattern(); ok {
		if err := correctionpattern.CorrectPatternValidator(v); err != nil {
			return &ValidationError{Name: "correct_pattern", err: fmt.Errorf(`ent: validator failed for field "CorrectionPattern.correct_pattern": %w`, err)}
		}
	}
	return nil
}

func (_u *CorrectionPatternUpdateOne) sqlSave(ctx context.Context) (_node *CorrectionPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(correctionpattern.Table, correctionpattern.Columns, sqlgraph.NewFieldSpec(correctionpattern.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CorrectionPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, correctionpattern.FieldID)
		for _, f := range fields {
			if !correctionpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != correctionpattern.FieldID {
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
	if value, ok := _u.mutation.ErrorPattern(); ok {
		_spec.SetField(correctionpattern.FieldErrorPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectPattern(); ok {
		_spec.SetField(correctionpattern.FieldCorrectPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsRegex(); ok {
		_spec.SetField(correctionpattern.FieldIsRegex, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(correctionpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(correctionpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimesApplied(); ok {
		_spec.SetField(correctionpattern.FieldTimesApplied, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesApplied(); ok {
		_spec.AddField(correctionpattern.FieldTimesApplied, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(correctionpattern.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(correctionpattern.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(correctionpattern.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HumanDeactivated(); ok {
		_spec.SetField(correctionpattern.FieldHumanDeactivated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(correctionpattern.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CorrectionPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{correctionpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
