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

type Triple struct{ ent.Schema }

func (Triple) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "triples"},
	}
}

func (Triple) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_entity_name").NotEmpty(),
		field.String("source_entity_attr").NotEmpty(),
		field.String("relation_type").NotEmpty(),
		field.String("sink_entity_name").NotEmpty(),
		field.String("sink_entity_attr").NotEmpty(),
		field.Float("confidence").Min(0).Max(1),
		field.String("model_profile").NotEmpty(),
		field.String("status").Default(string(constants.TripleStatusRaw)).
			Validate(utils.EnumValidator(constants.TripleStatuses...)),
		field.String("trait_name").Optional().Nillable(),
		field.String("trait_value").Optional().Nillable(),
		field.String("unit").Optional().Nillable(),
		field.Int("project_id").Optional().Nillable(),
		// explicit FKs
		field.Int("document_id").Optional().Nillable(),
		field.Int("job_id").Optional().Nillable(),
		field.Int("sentence_id"),
		field.String("doi_hash").Optional().Nillable(),
		field.String("contributor_email").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Triple) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("triples").
			Field("document_id").
			Unique(),
		edge.From("job", ExtractionJob.Type).
			Ref("triples").
			Field("job_id").
			Unique(),
		edge.From("sentence", Sentence.Type).
			Ref("triples").
			Field("sentence_id").
			Unique().
			Required(),
	}
}

func (Triple) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("project_id", "status"),
		index.Fields("document_id"),
	}
}
