package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/db/ent/schema/utils"
)

type ExtractionJob struct{ ent.Schema }

func (ExtractionJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_job"},
	}
}

func (ExtractionJob) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id").Optional().Nillable(),
		field.String("model_profile").NotEmpty(),
		field.String("mode").Default(string(constants.ModeNoTraining)).
			Validate(utils.EnumValidator(constants.JobModes...)),
		field.String("status").Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Int("progress").Default(0).NonNegative(),
		// fixed at creation, never mutated
		field.Int("total").NonNegative().Immutable(),
		field.String("error_message").Optional().Nillable(),
		field.Int("total_triples").Optional().Nillable(),
		field.String("created_by").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (ExtractionJob) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE job -> MANY ordered document memberships
		edge.To("job_documents", JobDocument.Type),
		// ONE job -> MANY triples
		edge.To("triples", Triple.Type),
	}
}

func (ExtractionJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status", "created_at"),
		index.Fields("model_profile", "status"),
	}
}
