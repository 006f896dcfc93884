package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Document holds the schema definition for the Document entity.
// The row references immutable PDF bytes in the object store; the bytes
// themselves are never rewritten, sealing always produces a new artifact.
type Document struct {
	ent.Schema
}

// Mixin of the Document.
func (Document) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("filename").
			NotEmpty(),
		field.String("storage_key").
			NotEmpty().
			Immutable(),
		field.String("sha256").
			Optional(),
		field.Int("version").
			Default(1),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("documents").
			Unique().
			Required(),
		edge.To("envelopes", Envelope.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
