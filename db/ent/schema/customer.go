package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Customer struct{ ent.Schema }

func (Customer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "customers"},
	}
}

func (Customer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("tax_id").NotEmpty().MaxLen(14).Unique(),
		// tax id of the person the unit is registered to, when different
		field.String("holder_tax_id").Optional().Nillable().MaxLen(14),
		field.Time("birth_date").Optional().Nillable().
			SchemaType(dateColumn()),
		field.String("address").NotEmpty(),
		field.String("phone").Optional().Nillable().MaxLen(15),
		field.String("email").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Customer) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE customer -> MANY billing units
		edge.To("units", BillingUnit.Type),
	}
}
