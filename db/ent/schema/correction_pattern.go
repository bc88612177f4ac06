package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CorrectionPattern is a learned OCR rewrite rule. Rows are deactivated,
// never deleted, so the audit trail of applied corrections survives.
type CorrectionPattern struct{ ent.Schema }

func (CorrectionPattern) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_correction_patterns"},
	}
}

func (CorrectionPattern) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("error_pattern").NotEmpty().Unique(),
		field.String("correct_pattern").NotEmpty(),
		field.Bool("is_regex").Default(false),
		field.Float("confidence").Default(0.9),
		field.Int("times_applied").Default(0),
		// sample_count is the number of independent receipts the pattern was
		// mined from; promotion to active requires a configured minimum.
		field.Int("sample_count").Default(1),
		field.Bool("is_active").Default(false),
		field.Bool("human_deactivated").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CorrectionPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
