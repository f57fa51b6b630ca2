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
)

// Sentence holds the evidence text a triple was extracted from. Rows are
// created implicitly during batch insertion for triples that arrive
// without a sentence reference.
type Sentence struct{ ent.Schema }

func (Sentence) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sentences"},
	}
}

func (Sentence) Fields() []ent.Field {
	return []ent.Field{
		field.Int("document_id").Optional().Nillable(),
		field.Text("text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Sentence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("sentences").
			Field("document_id").
			Unique(),
		edge.To("triples", Triple.Type),
	}
}

func (Sentence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
	}
}
