package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ReceiptLineItem struct{ ent.Schema }

func (ReceiptLineItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipt_line_items"},
	}
}

func (ReceiptLineItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("receipt_id", uuid.UUID{}),
		field.UUID("matched_product_id", uuid.UUID{}).Optional().Nillable(),
		field.Text("raw_text").NotEmpty(),
		field.String("product_name").NotEmpty(),
		field.Float("quantity").
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,3)"}),
		field.Float("unit_price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("line_total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("vat_code").Optional().Nillable().MaxLen(1),
		field.JSON("meta", json.RawMessage{}).Optional(),
	}
}

func (ReceiptLineItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("receipt", Receipt.Type).
			Ref("line_items").
			Field("receipt_id").
			Unique().
			Required(),
		edge.From("matched_product", Product.Type).
			Ref("receipt_items").
			Field("matched_product_id").
			Unique(),
	}
}

func (ReceiptLineItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("receipt_id"),
		index.Fields("matched_product_id"),
		index.Fields("product_name"),
	}
}
