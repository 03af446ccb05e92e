package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK for the (unit_id, reference_period) unique index
		field.UUID("unit_id", uuid.UUID{}),
		// first day of the billed month, DATE semantics
		field.Time("reference_period").
			SchemaType(dateColumn()),
		field.Float("amount").
			Optional().Nillable().
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("due_date").Optional().Nillable().
			SchemaType(dateColumn()),
		// opaque handle to the stored document; byte storage lives elsewhere
		field.String("document_ref").NotEmpty(),
		field.Time("retrieved_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY invoices -> ONE unit (FK: invoices.unit_id)
		edge.From("unit", BillingUnit.Type).
			Ref("invoices").
			Field("unit_id").
			Required().
			Unique(),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		// At most one invoice per unit and calendar month. The atomic
		// check-then-act in the reconciliation workflow leans on this
		// constraint for correctness across processes.
		index.Fields("unit_id", "reference_period").Unique(),
	}
}
