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

	"github.com/phenobase/trait-extractor/db/ent/schema/utils"
)

type Document struct {
	ent.Schema
}

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id").Optional().Nillable(),
		field.String("file_path").NotEmpty(),
		field.Text("text_content").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("doi").Optional().Nillable(),
		field.String("doi_hash").Optional().Nillable(),
		field.String("status").Default("registered").
			Validate(utils.EnumValidator("registered", "processed")),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY job memberships
		edge.To("job_documents", JobDocument.Type),
		// ONE document -> MANY sentences / triples
		edge.To("sentences", Sentence.Type),
		edge.To("triples", Triple.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("doi_hash"),
	}
}
