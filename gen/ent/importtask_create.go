// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lucasveras/faturahub/gen/ent/billingunit"
	"github.com/lucasveras/faturahub/gen/ent/importtask"
)

// ImportTaskCreate is the builder for creating a ImportTask entity.
type ImportTaskCreate struct {
	config
	mutation *ImportTaskMutation
	hooks    []Hook
}

// SetUnitID sets the "unit_id" field.
func (_c *ImportTaskCreate) SetUnitID(v uuid.UUID) *ImportTaskCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetReferencePeriod sets the "reference_period" field.
func (_c *ImportTaskCreate) SetReferencePeriod(v time.Time) *ImportTaskCreate {
	_c.mutation.SetReferencePeriod(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ImportTaskCreate) SetStatus(v string) *ImportTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ImportTaskCreate) SetNillableStatus(v *string) *ImportTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ImportTaskCreate) SetErrorMessage(v string) *ImportTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ImportTaskCreate) SetNillableErrorMessage(v *string) *ImportTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ImportTaskCreate) SetCompletedAt(v time.Time) *ImportTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ImportTaskCreate) SetNillableCompletedAt(v *time.Time) *ImportTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ImportTaskCreate) SetCreatedAt(v time.Time) *ImportTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ImportTaskCreate) SetNillableCreatedAt(v *time.Time) *ImportTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ImportTaskCreate) SetUpdatedAt(v time.Time) *ImportTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ImportTaskCreate) SetNillableUpdatedAt(v *time.Time) *ImportTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImportTaskCreate) SetID(v uuid.UUID) *ImportTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImportTaskCreate) SetNillableID(v *uuid.UUID) *ImportTaskCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUnit sets the "unit" edge to the BillingUnit entity.
func (_c *ImportTaskCreate) SetUnit(v *BillingUnit) *ImportTaskCreate {
	return _c.SetUnitID(v.ID)
}

// Mutation returns the ImportTaskMutation object of the builder.
func (_c *ImportTaskCreate) Mutation() *ImportTaskMutation {
	return _c.mutation
}

// Save creates the ImportTask in the database.
func (_c *ImportTaskCreate) Save(ctx context.Context) (*ImportTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportTaskCreate) SaveX(ctx context.Context) *ImportTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := importtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := importtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := importtask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := importtask.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportTaskCreate) check() error {
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "ImportTask.unit_id"`)}
	}
	if _, ok := _c.mutation.ReferencePeriod(); !ok {
		return &ValidationError{Name: "reference_period", err: errors.New(`ent: missing required field "ImportTask.reference_period"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ImportTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := importtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ImportTask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ImportTask.updated_at"`)}
	}
	if len(_c.mutation.UnitIDs()) == 0 {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required edge "ImportTask.unit"`)}
	}
	return nil
}

func (_c *ImportTaskCreate) sqlSave(ctx context.Context) (*ImportTask, error) {
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

func (_c *ImportTaskCreate) createSpec() (*ImportTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importtask.Table, sqlgraph.NewFieldSpec(importtask.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ReferencePeriod(); ok {
		_spec.SetField(importtask.FieldReferencePeriod, field.TypeTime, value)
		_node.ReferencePeriod = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(importtask.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(importtask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(importtask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(importtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(importtask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UnitIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importtask.UnitTable,
			Columns: []string{importtask.UnitColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(billingunit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UnitID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ImportTaskCreateBulk is the builder for creating many ImportTask entities in bulk.
type ImportTaskCreateBulk struct {
	config
	err      error
	builders []*ImportTaskCreate
}

// Save creates the ImportTask entities in the database.
func (_c *ImportTaskCreateBulk) Save(ctx context.Context) ([]*ImportTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportTaskMutation)
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
func (_c *ImportTaskCreateBulk) SaveX(ctx context.Context) []*ImportTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
