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
	"github.com/google/uuid"
	"github.com/lucasveras/faturahub/gen/ent/billingunit"
	"github.com/lucasveras/faturahub/gen/ent/customer"
	"github.com/lucasveras/faturahub/gen/ent/importtask"
	"github.com/lucasveras/faturahub/gen/ent/invoice"
	"github.com/lucasveras/faturahub/gen/ent/predicate"
)

// BillingUnitUpdate is the builder for updating BillingUnit entities.
type BillingUnitUpdate struct {
	config
	hooks    []Hook
	mutation *BillingUnitMutation
}

// Where appends a list predicates to the BillingUnitUpdate builder.
func (_u *BillingUnitUpdate) Where(ps ...predicate.BillingUnit) *BillingUnitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *BillingUnitUpdate) SetCustomerID(v uuid.UUID) *BillingUnitUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *BillingUnitUpdate) SetNillableCustomerID(v *uuid.UUID) *BillingUnitUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *BillingUnitUpdate) SetCode(v string) *BillingUnitUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *BillingUnitUpdate) SetNillableCode(v *string) *BillingUnitUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *BillingUnitUpdate) SetAddress(v string) *BillingUnitUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *BillingUnitUpdate) SetNillableAddress(v *string) *BillingUnitUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *BillingUnitUpdate) SetKind(v string) *BillingUnitUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *BillingUnitUpdate) SetNillableKind(v *string) *BillingUnitUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BillingUnitUpdate) SetStartedAt(v time.Time) *BillingUnitUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BillingUnitUpdate) SetNillableStartedAt(v *time.Time) *BillingUnitUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetRetiredAt sets the "retired_at" field.
func (_u *BillingUnitUpdate) SetRetiredAt(v time.Time) *BillingUnitUpdate {
	_u.mutation.SetRetiredAt(v)
	return _u
}

// SetNillableRetiredAt sets the "retired_at" field if the given value is not nil.
func (_u *BillingUnitUpdate) SetNillableRetiredAt(v *time.Time) *BillingUnitUpdate {
	if v != nil {
		_u.SetRetiredAt(*v)
	}
	return _u
}

// ClearRetiredAt clears the value of the "retired_at" field.
func (_u *BillingUnitUpdate) ClearRetiredAt() *BillingUnitUpdate {
	_u.mutation.ClearRetiredAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillingUnitUpdate) SetCreatedAt(v time.Time) *BillingUnitUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillingUnitUpdate) SetNillableCreatedAt(v *time.Time) *BillingUnitUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillingUnitUpdate) SetUpdatedAt(v time.Time) *BillingUnitUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *BillingUnitUpdate) SetCustomer(v *Customer) *BillingUnitUpdate {
	return _u.SetCustomerID(v.ID)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *BillingUnitUpdate) AddInvoiceIDs(ids ...uuid.UUID) *BillingUnitUpdate {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *BillingUnitUpdate) AddInvoices(v ...*Invoice) *BillingUnitUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the ImportTask entity by IDs.
func (_u *BillingUnitUpdate) AddTaskIDs(ids ...uuid.UUID) *BillingUnitUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the ImportTask entity.
func (_u *BillingUnitUpdate) AddTasks(v ...*ImportTask) *BillingUnitUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the BillingUnitMutation object of the builder.
func (_u *BillingUnitUpdate) Mutation() *BillingUnitMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *BillingUnitUpdate) ClearCustomer() *BillingUnitUpdate {
	_u.mutation.ClearCustomer()
	return _u
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *BillingUnitUpdate) ClearInvoices() *BillingUnitUpdate {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *BillingUnitUpdate) RemoveInvoiceIDs(ids ...uuid.UUID) *BillingUnitUpdate {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *BillingUnitUpdate) RemoveInvoices(v ...*Invoice) *BillingUnitUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the ImportTask entity.
func (_u *BillingUnitUpdate) ClearTasks() *BillingUnitUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to ImportTask entities by IDs.
func (_u *BillingUnitUpdate) RemoveTaskIDs(ids ...uuid.UUID) *BillingUnitUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to ImportTask entities.
func (_u *BillingUnitUpdate) RemoveTasks(v ...*ImportTask) *BillingUnitUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillingUnitUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingUnitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillingUnitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingUnitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillingUnitUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := billingunit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillingUnitUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := billingunit.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "BillingUnit.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address(); ok {
		if err := billingunit.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "BillingUnit.address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := billingunit.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "BillingUnit.kind": %w`, err)}
		}
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BillingUnit.customer"`)
	}
	return nil
}

func (_u *BillingUnitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billingunit.Table, billingunit.Columns, sqlgraph.NewFieldSpec(billingunit.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(billingunit.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(billingunit.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(billingunit.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(billingunit.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RetiredAt(); ok {
		_spec.SetField(billingunit.FieldRetiredAt, field.TypeTime, value)
	}
	if _u.mutation.RetiredAtCleared() {
		_spec.ClearField(billingunit.FieldRetiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(billingunit.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(billingunit.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CustomerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingunit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillingUnitUpdateOne is the builder for updating a single BillingUnit entity.
type BillingUnitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillingUnitMutation
}

// SetCustomerID sets the "customer_id" field.
func (_u *BillingUnitUpdateOne) SetCustomerID(v uuid.UUID) *BillingUnitUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *BillingUnitUpdateOne) SetNillableCustomerID(v *uuid.UUID) *BillingUnitUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *BillingUnitUpdateOne) SetCode(v string) *BillingUnitUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *BillingUnitUpdateOne) SetNillableCode(v *string) *BillingUnitUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *BillingUnitUpdateOne) SetAddress(v string) *BillingUnitUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *BillingUnitUpdateOne) SetNillableAddress(v *string) *BillingUnitUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *BillingUnitUpdateOne) SetKind(v string) *BillingUnitUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *BillingUnitUpdateOne) SetNillableKind(v *string) *BillingUnitUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BillingUnitUpdateOne) SetStartedAt(v time.Time) *BillingUnitUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BillingUnitUpdateOne) SetNillableStartedAt(v *time.Time) *BillingUnitUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetRetiredAt sets the "retired_at" field.
func (_u *BillingUnitUpdateOne) SetRetiredAt(v time.Time) *BillingUnitUpdateOne {
	_u.mutation.SetRetiredAt(v)
	return _u
}

// SetNillableRetiredAt sets the "retired_at" field if the given value is not nil.
func (_u *BillingUnitUpdateOne) SetNillableRetiredAt(v *time.Time) *BillingUnitUpdateOne {
	if v != nil {
		_u.SetRetiredAt(*v)
	}
	return _u
}

// ClearRetiredAt clears the value of the "retired_at" field.
func (_u *BillingUnitUpdateOne) ClearRetiredAt() *BillingUnitUpdateOne {
	_u.mutation.ClearRetiredAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillingUnitUpdateOne) SetCreatedAt(v time.Time) *BillingUnitUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillingUnitUpdateOne) SetNillableCreatedAt(v *time.Time) *BillingUnitUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillingUnitUpdateOne) SetUpdatedAt(v time.Time) *BillingUnitUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *BillingUnitUpdateOne) SetCustomer(v *Customer) *BillingUnitUpdateOne {
	return _u.SetCustomerID(v.ID)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *BillingUnitUpdateOne) AddInvoiceIDs(ids ...uuid.UUID) *BillingUnitUpdateOne {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *BillingUnitUpdateOne) AddInvoices(v ...*Invoice) *BillingUnitUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the ImportTask entity by IDs.
func (_u *BillingUnitUpdateOne) AddTaskIDs(ids ...uuid.UUID) *BillingUnitUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the ImportTask entity.
func (_u *BillingUnitUpdateOne) AddTasks(v ...*ImportTask) *BillingUnitUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the BillingUnitMutation object of the builder.
func (_u *BillingUnitUpdateOne) Mutation() *BillingUnitMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *BillingUnitUpdateOne) ClearCustomer() *BillingUnitUpdateOne {
	_u.mutation.ClearCustomer()
	return _u
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *BillingUnitUpdateOne) ClearInvoices() *BillingUnitUpdateOne {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *BillingUnitUpdateOne) RemoveInvoiceIDs(ids ...uuid.UUID) *BillingUnitUpdateOne {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *BillingUnitUpdateOne) RemoveInvoices(v ...*Invoice) *BillingUnitUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the ImportTask entity.
func (_u *BillingUnitUpdateOne) ClearTasks() *BillingUnitUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to ImportTask entities by IDs.
func (_u *BillingUnitUpdateOne) RemoveTaskIDs(ids ...uuid.UUID) *BillingUnitUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to ImportTask entities.
func (_u *BillingUnitUpdateOne) RemoveTasks(v ...*ImportTask) *BillingUnitUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the BillingUnitUpdate builder.
func (_u *BillingUnitUpdateOne) Where(ps ...predicate.BillingUnit) *BillingUnitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillingUnitUpdateOne) Select(field string, fields ...string) *BillingUnitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BillingUnit entity.
func (_u *BillingUnitUpdateOne) Save(ctx context.Context) (*BillingUnit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingUnitUpdateOne) SaveX(ctx context.Context) *BillingUnit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillingUnitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingUnitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillingUnitUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := billingunit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillingUnitUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := billingunit.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "BillingUnit.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address(); ok {
		if err := billingunit.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "BillingUnit.address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := billingunit.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "BillingUnit.kind": %w`, err)}
		}
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BillingUnit.customer"`)
	}
	return nil
}

func (_u *BillingUnitUpdateOne) sqlSave(ctx context.Context) (_node *BillingUnit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billingunit.Table, billingunit.Columns, sqlgraph.NewFieldSpec(billingunit.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BillingUnit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billingunit.FieldID)
		for _, f := range fields {
			if !billingunit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != billingunit.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(billingunit.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(billingunit.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(billingunit.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(billingunit.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RetiredAt(); ok {
		_spec.SetField(billingunit.FieldRetiredAt, field.TypeTime, value)
	}
	if _u.mutation.RetiredAtCleared() {
		_spec.ClearField(billingunit.FieldRetiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(billingunit.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(billingunit.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CustomerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BillingUnit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingunit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
