package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/db/ent/schema/utils"
)

type ImportTask struct{ ent.Schema }

func (ImportTask) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "import_tasks"},
	}
}

func (ImportTask) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("unit_id", uuid.UUID{}),
		field.Time("reference_period").
			SchemaType(dateColumn()),
		field.String("status").
			Default(string(constants.TaskPending)).
			Validate(utils.EnumValidator(
				string(constants.TaskPending),
				string(constants.TaskInProgress),
				string(constants.TaskSuccess),
				string(constants.TaskFailure),
			)),
		field.String("error_message").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ImportTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("unit", BillingUnit.Type).
			Ref("tasks").
			Field("unit_id").
			Required().
			Unique(),
	}
}

func (ImportTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_id", "status", "created_at"),
	}
}
