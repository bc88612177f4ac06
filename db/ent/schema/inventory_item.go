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

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/db/ent/schema/utils"
)

type InventoryItem struct{ ent.Schema }

func (InventoryItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "inventory_items"},
	}
}

func (InventoryItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("product_id", uuid.UUID{}),
		field.Time("purchase_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Immutable(),
		field.Time("expiry_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("quantity_remaining").
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,3)"}),
		field.String("unit").
			Default(string(constants.UnitPiece)).
			Validate(utils.EnumValidator(constants.UnitStrings()...)),
		field.String("storage_location").
			Default(string(constants.StoragePantry)).
			Validate(utils.EnumValidator(constants.StorageStrings()...)),
		field.String("batch_id").Default(""),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (InventoryItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("product", Product.Type).
			Ref("inventory_items").
			Field("product_id").
			Unique().
			Required(),
		edge.To("consumption_events", ConsumptionEvent.Type),
	}
}

func (InventoryItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("product_id"),
		index.Fields("expiry_date"),
		index.Fields("purchase_date"),
		// batch_id groups the items created by one finalizer run so a failed
		// run can be rolled back or diagnosed as a unit.
		index.Fields("batch_id"),
	}
}
