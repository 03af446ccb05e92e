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
	"github.com/lucasveras/faturahub/gen/ent/customer"
	"github.com/lucasveras/faturahub/gen/ent/importtask"
	"github.com/lucasveras/faturahub/gen/ent/invoice"
)

// BillingUnitCreate is the builder for creating a BillingUnit entity.
type BillingUnitCreate struct {
	config
	mutation *BillingUnitMutation
	hooks    []Hook
}

// SetCustomerID sets the "customer_id" field.
func (_c *BillingUnitCreate) SetCustomerID(v uuid.UUID) *BillingUnitCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *BillingUnitCreate) SetCode(v string) *BillingUnitCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *BillingUnitCreate) SetAddress(v string) *BillingUnitCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *BillingUnitCreate) SetKind(v string) *BillingUnitCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *BillingUnitCreate) SetNillableKind(v *string) *BillingUnitCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *BillingUnitCreate) SetStartedAt(v time.Time) *BillingUnitCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *BillingUnitCreate) SetNillableStartedAt(v *time.Time) *BillingUnitCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetRetiredAt sets the "retired_at" field.
func (_c *BillingUnitCreate) SetRetiredAt(v time.Time) *BillingUnitCreate {
	_c.mutation.SetRetiredAt(v)
	return _c
}

// SetNillableRetiredAt sets the "retired_at" field if the given value is not nil.
func (_c *BillingUnitCreate) SetNillableRetiredAt(v *time.Time) *BillingUnitCreate {
	if v != nil {
		_c.SetRetiredAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillingUnitCreate) SetCreatedAt(v time.Time) *BillingUnitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillingUnitCreate) SetNillableCreatedAt(v *time.Time) *BillingUnitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BillingUnitCreate) SetUpdatedAt(v time.Time) *BillingUnitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BillingUnitCreate) SetNillableUpdatedAt(v *time.Time) *BillingUnitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillingUnitCreate) SetID(v uuid.UUID) *BillingUnitCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BillingUnitCreate) SetNillableID(v *uuid.UUID) *BillingUnitCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_c *BillingUnitCreate) SetCustomer(v *Customer) *BillingUnitCreate {
	return _c.SetCustomerID(v.ID)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_c *BillingUnitCreate) AddInvoiceIDs(ids ...uuid.UUID) *BillingUnitCreate {
	_c.mutation.AddInvoiceIDs(ids...)
	return _c
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_c *BillingUnitCreate) AddInvoices(v ...*Invoice) *BillingUnitCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInvoiceIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the ImportTask entity by IDs.
func (_c *BillingUnitCreate) AddTaskIDs(ids ...uuid.UUID) *BillingUnitCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the ImportTask entity.
func (_c *BillingUnitCreate) AddTasks(v ...*ImportTask) *BillingUnitCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the BillingUnitMutation object of the builder.
func (_c *BillingUnitCreate) Mutation() *BillingUnitMutation {
	return _c.mutation
}

// Save creates the BillingUnit in the database.
func (_c *BillingUnitCreate) Save(ctx context.Context) (*BillingUnit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillingUnitCreate) SaveX(ctx context.Context) *BillingUnit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingUnitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingUnitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillingUnitCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := billingunit.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := billingunit.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := billingunit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := billingunit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := billingunit.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillingUnitCreate) check() error {
	if _, ok := _c.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "BillingUnit.customer_id"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "BillingUnit.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := billingunit.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "BillingUnit.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`ent: missing required field "BillingUnit.address"`)}
	}
	if v, ok := _c.mutation.Address(); ok {
		if err := billingunit.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "BillingUnit.address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "BillingUnit.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := billingunit.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "BillingUnit.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "BillingUnit.started_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BillingUnit.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BillingUnit.updated_at"`)}
	}
	if len(_c.mutation.CustomerIDs()) == 0 {
		return &ValidationError{Name: "customer", err: errors.New(`ent: missing required edge "BillingUnit.customer"`)}
	}
	return nil
}

func (_c *BillingUnitCreate) sqlSave(ctx context.Context) (*BillingUnit, error) {
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

func (_c *BillingUnitCreate) createSpec() (*BillingUnit, *sqlgraph.CreateSpec) {
	var (
		_node = &BillingUnit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(billingunit.Table, sqlgraph.NewFieldSpec(billingunit.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(billingunit.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(billingunit.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(billingunit.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(billingunit.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.RetiredAt(); ok {
		_spec.SetField(billingunit.FieldRetiredAt, field.TypeTime, value)
		_node.RetiredAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(billingunit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(billingunit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billingunit.CustomerTable,
			Columns: []string{billingunit.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CustomerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   billingunit.InvoicesTable,
			Columns: []string{billingunit.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   billingunit.TasksTable,
			Columns: []string{billingunit.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importtask.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BillingUnitCreateBulk is the builder for creating many BillingUnit entities in bulk.
type BillingUnitCreateBulk struct {
	config
	err      error
	builders []*BillingUnitCreate
}

// Save creates the BillingUnit entities in the database.
func (_c *BillingUnitCreateBulk) Save(ctx context.Context) ([]*BillingUnit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BillingUnit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillingUnitMutation)
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
func (_c *BillingUnitCreateBulk) SaveX(ctx context.Context) []*BillingUnit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingUnitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingUnitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
