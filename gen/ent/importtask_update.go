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
	"github.com/lucasveras/faturahub/gen/ent/importtask"
	"github.com/lucasveras/faturahub/gen/ent/predicate"
)

// ImportTaskUpdate is the builder for updating ImportTask entities.
type ImportTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ImportTaskMutation
}

// Where appends a list predicates to the ImportTaskUpdate builder.
func (_u *ImportTaskUpdate) Where(ps ...predicate.ImportTask) *ImportTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *ImportTaskUpdate) SetUnitID(v uuid.UUID) *ImportTaskUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *ImportTaskUpdate) SetNillableUnitID(v *uuid.UUID) *ImportTaskUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetReferencePeriod sets the "reference_period" field.
func (_u *ImportTaskUpdate) SetReferencePeriod(v time.Time) *ImportTaskUpdate {
	_u.mutation.SetReferencePeriod(v)
	return _u
}

// SetNillableReferencePeriod sets the "reference_period" field if the given value is not nil.
func (_u *ImportTaskUpdate) SetNillableReferencePeriod(v *time.Time) *ImportTaskUpdate {
	if v != nil {
		_u.SetReferencePeriod(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportTaskUpdate) SetStatus(v string) *ImportTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportTaskUpdate) SetNillableStatus(v *string) *ImportTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportTaskUpdate) SetErrorMessage(v string) *ImportTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportTaskUpdate) SetNillableErrorMessage(v *string) *ImportTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportTaskUpdate) ClearErrorMessage() *ImportTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ImportTaskUpdate) SetCompletedAt(v time.Time) *ImportTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ImportTaskUpdate) SetNillableCompletedAt(v *time.Time) *ImportTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ImportTaskUpdate) ClearCompletedAt() *ImportTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImportTaskUpdate) SetCreatedAt(v time.Time) *ImportTaskUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImportTaskUpdate) SetNillableCreatedAt(v *time.Time) *ImportTaskUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ImportTaskUpdate) SetUpdatedAt(v time.Time) *ImportTaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUnit sets the "unit" edge to the BillingUnit entity.
func (_u *ImportTaskUpdate) SetUnit(v *BillingUnit) *ImportTaskUpdate {
	return _u.SetUnitID(v.ID)
}

// Mutation returns the ImportTaskMutation object of the builder.
func (_u *ImportTaskUpdate) Mutation() *ImportTaskMutation {
	return _u.mutation
}

// ClearUnit clears the "unit" edge to the BillingUnit entity.
func (_u *ImportTaskUpdate) ClearUnit() *ImportTaskUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportTaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ImportTaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := importtask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportTaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := importtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportTask.status": %w`, err)}
		}
	}
	if _u.mutation.UnitCleared() && len(_u.mutation.UnitIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportTask.unit"`)
	}
	return nil
}

func (_u *ImportTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importtask.Table, importtask.Columns, sqlgraph.NewFieldSpec(importtask.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReferencePeriod(); ok {
		_spec.SetField(importtask.FieldReferencePeriod, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importtask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importtask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importtask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(importtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(importtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(importtask.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(importtask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UnitCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UnitIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportTaskUpdateOne is the builder for updating a single ImportTask entity.
type ImportTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportTaskMutation
}

// SetUnitID sets the "unit_id" field.
func (_u *ImportTaskUpdateOne) SetUnitID(v uuid.UUID) *ImportTaskUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *ImportTaskUpdateOne) SetNillableUnitID(v *uuid.UUID) *ImportTaskUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetReferencePeriod sets the "reference_period" field.
func (_u *ImportTaskUpdateOne) SetReferencePeriod(v time.Time) *ImportTaskUpdateOne {
	_u.mutation.SetReferencePeriod(v)
	return _u
}

// SetNillableReferencePeriod sets the "reference_period" field if the given value is not nil.
func (_u *ImportTaskUpdateOne) SetNillableReferencePeriod(v *time.Time) *ImportTaskUpdateOne {
	if v != nil {
		_u.SetReferencePeriod(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportTaskUpdateOne) SetStatus(v string) *ImportTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportTaskUpdateOne) SetNillableStatus(v *string) *ImportTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportTaskUpdateOne) SetErrorMessage(v string) *ImportTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportTaskUpdateOne) SetNillableErrorMessage(v *string) *ImportTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportTaskUpdateOne) ClearErrorMessage() *ImportTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ImportTaskUpdateOne) SetCompletedAt(v time.Time) *ImportTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ImportTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *ImportTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ImportTaskUpdateOne) ClearCompletedAt() *ImportTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImportTaskUpdateOne) SetCreatedAt(v time.Time) *ImportTaskUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImportTaskUpdateOne) SetNillableCreatedAt(v *time.Time) *ImportTaskUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ImportTaskUpdateOne) SetUpdatedAt(v time.Time) *ImportTaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUnit sets the "unit" edge to the BillingUnit entity.
func (_u *ImportTaskUpdateOne) SetUnit(v *BillingUnit) *ImportTaskUpdateOne {
	return _u.SetUnitID(v.ID)
}

// Mutation returns the ImportTaskMutation object of the builder.
func (_u *ImportTaskUpdateOne) Mutation() *ImportTaskMutation {
	return _u.mutation
}

// ClearUnit clears the "unit" edge to the BillingUnit entity.
func (_u *ImportTaskUpdateOne) ClearUnit() *ImportTaskUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// Where appends a list predicates to the ImportTaskUpdate builder.
func (_u *ImportTaskUpdateOne) Where(ps ...predicate.ImportTask) *ImportTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportTaskUpdateOne) Select(field string, fields ...string) *ImportTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportTask entity.
func (_u *ImportTaskUpdateOne) Save(ctx context.Context) (*ImportTask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportTaskUpdateOne) SaveX(ctx context.Context) *ImportTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ImportTaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := importtask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := importtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportTask.status": %w`, err)}
		}
	}
	if _u.mutation.UnitCleared() && len(_u.mutation.UnitIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportTask.unit"`)
	}
	return nil
}

func (_u *ImportTaskUpdateOne) sqlSave(ctx context.Context) (_node *ImportTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importtask.Table, importtask.Columns, sqlgraph.NewFieldSpec(importtask.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importtask.FieldID)
		for _, f := range fields {
			if !importtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importtask.FieldID {
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
	if value, ok := _u.mutation.ReferencePeriod(); ok {
		_spec.SetField(importtask.FieldReferencePeriod, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importtask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importtask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importtask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(importtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(importtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(importtask.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(importtask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UnitCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UnitIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ImportTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
