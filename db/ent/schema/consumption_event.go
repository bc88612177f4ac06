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

// ConsumptionEvent records a quantity decrement on an inventory item.
type ConsumptionEvent struct{ ent.Schema }

func (ConsumptionEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "consumption_events"},
	}
}

func (ConsumptionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("inventory_item_id", uuid.UUID{}),
		field.Float("consumed_qty").
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,3)"}),
		field.Time("consumed_at").Default(time.Now),
		field.Text("notes").Default(""),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ConsumptionEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("inventory_item", InventoryItem.Type).
			Ref("consumption_events").
			Field("inventory_item_id").
			Unique().
			Required(),
	}
}

func (ConsumptionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("inventory_item_id"),
		index.Fields("consumed_at"),
	}
}
