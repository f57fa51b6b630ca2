package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobDocument is the ordered job<->document join table. position keeps
// submission order so a job's document_ids can be reconstructed exactly.
type JobDocument struct{ ent.Schema }

func (JobDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_document"},
	}
}

func (JobDocument) Fields() []ent.Field {
	return []ent.Field{
		// explicit FKs for the composite unique index
		field.Int("job_id"),
		field.Int("document_id"),
		field.Int("position").NonNegative(),
	}
}

func (JobDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ExtractionJob.Type).
			Ref("job_documents").
			Field("job_id").
			Unique().
			Required(),
		edge.From("document", Document.Type).
			Ref("job_documents").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (JobDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "position").Unique(),
		index.Fields("job_id", "document_id").Unique(),
		index.Fields("document_id"),
	}
}
