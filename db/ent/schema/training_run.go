package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrainingRun records one train_model invocation per profile.
type TrainingRun struct{ ent.Schema }

func (TrainingRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "training_run"},
	}
}

func (TrainingRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("model_profile").NotEmpty(),
		field.String("status").NotEmpty(),
		field.String("artifact_path").Optional().Nillable(),
		field.JSON("metrics", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (TrainingRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("model_profile", "created_at"),
	}
}
