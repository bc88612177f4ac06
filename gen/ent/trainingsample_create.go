// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receipt"
	"github.com/codemarcinu/pantry-tracker/gen/ent/trainingsample"
	"github.com/google/uuid"
)

// TrainingSampleCreate is the builder for creating a TrainingSample entity.
type TrainingSampleCreate struct {
	config
	mutation *TrainingSampleMutation
	hooks    []Hook
}

// SetReceiptID sets the "receipt_id" field.
func (_c *TrainingSampleCreate) SetReceiptID(v uuid.UUID) *TrainingSampleCreate {
	_c.mutation.SetReceiptID(v)
	return _c
}

// SetWeakText sets the "weak_text" field.
func (_c *TrainingSampleCreate) SetWeakText(v string) *TrainingSampleCreate {
	_c.mutation.SetWeakText(v)
	return _c
}

// SetStrongText sets the "strong_text" field.
func (_c *TrainingSampleCreate) SetStrongText(v string) *TrainingSampleCreate {
	_c.mutation.SetStrongText(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrainingSampleCreate) SetCreatedAt(v time.Time) *TrainingSampleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrainingSampleCreate) SetNillableCreatedAt(v *time.Time) *TrainingSampleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrainingSampleCreate) SetID(v uuid.UUID) *TrainingSampleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TrainingSampleCreate) SetNillableID(v *uuid.UUID) *TrainingSampleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_c *TrainingSampleCreate) SetReceipt(v *Receipt) *TrainingSampleCreate {
	return _c.SetReceiptID(v.ID)
}

// Mutation returns the TrainingSampleMutation object of the builder.
func (_c *TrainingSampleCreate) Mutation() *TrainingSampleMutation {
	return _c.mutation
}

// Save creates the TrainingSample in the database.
func (_c *TrainingSampleCreate) Save(ctx context.Context) (*TrainingSample, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrainingSampleCreate) SaveX(ctx context.Context) *TrainingSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingSampleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingSampleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrainingSampleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trainingsample.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := trainingsample.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrainingSampleCreate) check() error {
	if _, ok := _c.mutation.ReceiptID(); !ok {
		return &ValidationError{Name: "receipt_id", err: errors.New(`ent: missing required field "TrainingSample.receipt_id"`)}
	}
	if _, ok := _c.mutation.WeakText(); !ok {
		return &ValidationError{Name: "weak_text", err: errors.New(`ent: missing required field "TrainingSample.weak_text"`)}
	}
	if _, ok := _c.mutation.StrongText(); !ok {
		return &ValidationError{Name: "strong_text", err: errors.New(`ent: missing required field "TrainingSample.strong_text"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrainingSample.created_at"`)}
	}
	if len(_c.mutation.ReceiptIDs()) == 0 {
		return &ValidationError{Name: "receipt", err: errors.New(`ent: missing required edge "TrainingSample.receipt"`)}
	}
	return nil
}

func (_c *TrainingSampleCreate) sqlSave(ctx context.Context) (*TrainingSample, error) {
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

func (_c *TrainingSampleCreate) createSpec() (*TrainingSample, *sqlgraph.CreateSpec) {
	var (
		_node = &TrainingSample{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trainingsample.Table, sqlgraph.NewFieldSpec(trainingsample.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.WeakText(); ok {
		_spec.SetField(trainingsample.FieldWeakText, field.TypeString, value)
		_node.WeakText = value
	}
	if value, ok := _c.mutation.StrongText(); ok {
		_spec.SetField(trainingsample.FieldStrongText, field.TypeString, value)
		_node.StrongText = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trainingsample.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trainingsample.ReceiptTable,
			Columns: []string{trainingsample.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReceiptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TrainingSampleCreateBulk is the builder for creating many TrainingSample entities in bulk.
type TrainingSampleCreateBulk struct {
	config
	err      error
	builders []*TrainingSampleCreate
}

// Save creates the TrainingSample entities in the database.
func (_c *TrainingSampleCreateBulk) Save(ctx context.Context) ([]*TrainingSample, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrainingSample, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrainingSampleMutation)
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
func (_c *TrainingSampleCreateBulk) SaveX(ctx context.Context) []*TrainingSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingSampleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingSampleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
