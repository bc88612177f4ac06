package schema

import (
	"encoding/json"
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

var receiptStatuses = []string{
	string(constants.StatusPendingOCR),
	string(constants.StatusOCRInProgress),
	string(constants.StatusOCRCompleted),
	string(constants.StatusParsingInProgress),
	string(constants.StatusParsingCompleted),
	string(constants.StatusMatchingInProgress),
	string(constants.StatusMatchingCompleted),
	string(constants.StatusFinalizingInventory),
	string(constants.StatusCompleted),
	string(constants.StatusReviewPending),
	string(constants.StatusError),
	string(constants.StatusCancelled),
}

type Receipt struct{ ent.Schema }

func (Receipt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipts"},
	}
}

func (Receipt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("store_name").Optional().Nillable(),
		field.Time("purchased_at").Optional().Nillable(),
		field.Float("total").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency").NotEmpty().MinLen(3).MaxLen(3).
			Default("PLN").
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.JSON("raw_extraction", json.RawMessage{}).Optional(),
		field.String("source_path").NotEmpty(),
		// sha256 of the source file, used to skip re-ingesting duplicates
		field.String("content_hash").Default(""),
		field.String("status").
			Default(string(constants.StatusPendingOCR)).
			Validate(utils.EnumValidator(receiptStatuses...)),
		field.Text("processing_notes").Default(""),
		field.Float("total_diff").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Bool("cancelled").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Receipt) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE receipt -> MANY line items
		edge.To("line_items", ReceiptLineItem.Type),
		// ONE receipt -> MANY training samples
		edge.To("training_samples", TrainingSample.Type),
	}
}

func (Receipt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("content_hash"),
		index.Fields("purchased_at"),
		index.Fields("created_at"),
	}
}
