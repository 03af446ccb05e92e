// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BillingUnitsColumns holds the columns for the "billing_units" table.
	BillingUnitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString, Size: 50},
		{Name: "address", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString, Default: "Residencial"},
		{Name: "started_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "retired_at", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "customer_id", Type: field.TypeUUID},
	}
	// BillingUnitsTable holds the schema information for the "billing_units" table.
	BillingUnitsTable = &schema.Table{
		Name:       "billing_units",
		Columns:    BillingUnitsColumns,
		PrimaryKey: []*schema.Column{BillingUnitsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "billing_units_customers_units",
				Columns:    []*schema.Column{BillingUnitsColumns[8]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "billingunit_customer_id_code",
				Unique:  false,
				Columns: []*schema.Column{BillingUnitsColumns[8], BillingUnitsColumns[1]},
			},
			{
				Name:    "billingunit_code",
				Unique:  false,
				Columns: []*schema.Column{BillingUnitsColumns[1]},
			},
		},
	}
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "tax_id", Type: field.TypeString, Unique: true, Size: 14},
		{Name: "holder_tax_id", Type: field.TypeString, Nullable: true, Size: 14},
		{Name: "birth_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "address", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 15},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
	}
	// ImportTasksColumns holds the columns for the "import_tasks" table.
	ImportTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "reference_period", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "unit_id", Type: field.TypeUUID},
	}
	// ImportTasksTable holds the schema information for the "import_tasks" table.
	ImportTasksTable = &schema.Table{
		Name:       "import_tasks",
		Columns:    ImportTasksColumns,
		PrimaryKey: []*schema.Column{ImportTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "import_tasks_billing_units_tasks",
				Columns:    []*schema.Column{ImportTasksColumns[7]},
				RefColumns: []*schema.Column{BillingUnitsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "importtask_unit_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImportTasksColumns[7], ImportTasksColumns[2], ImportTasksColumns[5]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "reference_period", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "document_ref", Type: field.TypeString},
		{Name: "retrieved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "unit_id", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_billing_units_invoices",
				Columns:    []*schema.Column{InvoicesColumns[8]},
				RefColumns: []*schema.Column{BillingUnitsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_unit_id_reference_period",
				Unique:  true,
				Columns: []*schema.Column{InvoicesColumns[8], InvoicesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BillingUnitsTable,
		CustomersTable,
		ImportTasksTable,
		InvoicesTable,
	}
)

func init() {
	BillingUnitsTable.ForeignKeys[0].RefTable = CustomersTable
	BillingUnitsTable.Annotation = &entsql.Annotation{
		Table: "billing_units",
	}
	CustomersTable.Annotation = &entsql.Annotation{
		Table: "customers",
	}
	ImportTasksTable.ForeignKeys[0].RefTable = BillingUnitsTable
	ImportTasksTable.Annotation = &entsql.Annotation{
		Table: "import_tasks",
	}
	InvoicesTable.ForeignKeys[0].RefTable = BillingUnitsTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
}
