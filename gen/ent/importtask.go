// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lucasveras/faturahub/gen/ent/billingunit"
	"github.com/lucasveras/faturahub/gen/ent/importtask"
)

// ImportTask is the model entity for the ImportTask schema.
type ImportTask struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UnitID holds the value of the "unit_id" field.
	UnitID uuid.UUID `json:"unit_id,omitempty"`
	// ReferencePeriod holds the value of the "reference_period" field.
	ReferencePeriod time.Time `json:"reference_period,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ImportTaskQuery when eager-loading is set.
	Edges        ImportTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ImportTaskEdges holds the relations/edges for other nodes in the graph.
type ImportTaskEdges struct {
	// Unit holds the value of the unit edge.
	Unit *BillingUnit `json:"unit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UnitOrErr returns the Unit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ImportTaskEdges) UnitOrErr() (*BillingUnit, error) {
	if e.Unit != nil {
		return e.Unit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: billingunit.Label}
	}
	return nil, &NotLoadedError{edge: "unit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImportTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case importtask.FieldStatus, importtask.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case importtask.FieldReferencePeriod, importtask.FieldCompletedAt, importtask.FieldCreatedAt, importtask.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case importtask.FieldID, importtask.FieldUnitID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImportTask fields.
func (_m *ImportTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case importtask.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case importtask.FieldUnitID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value != nil {
				_m.UnitID = *value
			}
		case importtask.FieldReferencePeriod:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reference_period", values[i])
			} else if value.Valid {
				_m.ReferencePeriod = value.Time
			}
		case importtask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case importtask.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case importtask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case importtask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case importtask.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImportTask.
// This includes values selected through modifiers, order, etc.
func (_m *ImportTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUnit queries the "unit" edge of the ImportTask entity.
func (_m *ImportTask) QueryUnit() *BillingUnitQuery {
	return NewImportTaskClient(_m.config).QueryUnit(_m)
}

// Update returns a builder for updating this ImportTask.
// Note that you need to call ImportTask.Unwrap() before calling this method if this ImportTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImportTask) Update() *ImportTaskUpdateOne {
	return NewImportTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImportTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImportTask) Unwrap() *ImportTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImportTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImportTask) String() string {
	var builder strings.Builder
	builder.WriteString("ImportTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("unit_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitID))
	builder.WriteString(", ")
	builder.WriteString("reference_period=")
	builder.WriteString(_m.ReferencePeriod.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ImportTasks is a parsable slice of ImportTask.
type ImportTasks []*ImportTask
