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
)

type Product struct{ ent.Schema }

func (Product) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "products"},
	}
}

func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		// normalized_name backs the idempotent ghost-product upsert:
		// concurrent receipts resolving the same unknown line race on this key.
		field.String("normalized_name").NotEmpty().Unique(),
		field.String("brand").Default(""),
		field.String("barcode").Optional().Nillable().Unique(),
		field.UUID("category_id", uuid.UUID{}).Optional().Nillable(),
		field.Bool("is_active").Default(true),
		field.Strings("aliases").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Product) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("products").
			Field("category_id").
			Unique(),
		edge.To("receipt_items", ReceiptLineItem.Type),
		edge.To("inventory_items", InventoryItem.Type),
	}
}

func (Product) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("is_active"),
		index.Fields("category_id"),
	}
}
