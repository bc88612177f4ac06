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
)

// TrainingSample pairs weak-engine and strong-engine OCR text for one
// receipt. Append-only.
type TrainingSample struct{ ent.Schema }

func (TrainingSample) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_training_samples"},
	}
}

func (TrainingSample) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("receipt_id", uuid.UUID{}),
		field.Text("weak_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Text("strong_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (TrainingSample) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("receipt", Receipt.Type).
			Ref("training_samples").
			Field("receipt_id").
			Unique().
			Required(),
	}
}

func (TrainingSample) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("receipt_id"),
	}
}
