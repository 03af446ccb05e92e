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
	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/db/ent/schema/utils"
)

// dateColumn maps a time field to a DATE column on Postgres.
func dateColumn() map[string]string {
	return map[string]string{dialect.Postgres: "date"}
}

type BillingUnit struct{ ent.Schema }

func (BillingUnit) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "billing_units"},
	}
}

func (BillingUnit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so the (customer_id, code) index can be declared
		field.UUID("customer_id", uuid.UUID{}),
		field.String("code").NotEmpty().MaxLen(50),
		field.String("address").NotEmpty(),
		field.String("kind").Default(constants.DefaultUnitKind).
			Validate(utils.EnumValidator(constants.UnitKinds...)),
		field.Time("started_at").Default(time.Now).
			SchemaType(dateColumn()),
		// Retirement is a timestamp, not a boolean, to preserve history.
		// retired_at nil <=> the unit is active; this is the single
		// canonical activity rule, everywhere.
		field.Time("retired_at").Optional().Nillable().
			SchemaType(dateColumn()),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (BillingUnit) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY units -> ONE customer (FK: billing_units.customer_id)
		edge.From("customer", Customer.Type).
			Ref("units").
			Field("customer_id").
			Required().
			Unique(),
		// ONE unit -> MANY invoices
		edge.To("invoices", Invoice.Type),
		// ONE unit -> MANY import tasks
		edge.To("tasks", ImportTask.Type),
	}
}

func (BillingUnit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("customer_id", "code"),
		index.Fields("code"),
	}
}
