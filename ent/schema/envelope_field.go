package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// EnvelopeField holds the schema definition for the EnvelopeField entity.
// A field is a page-anchored placeholder: rectangle in PDF points with a
// bottom-left origin, matching how marks are later drawn onto the page.
// Named EnvelopeField rather than Field: a Field entity would collide with
// ent's own field package in the generated code.
type EnvelopeField struct {
	ent.Schema
}

// Fields of the EnvelopeField.
func (EnvelopeField) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		// 1-based page number as supplied by the placement UI; the sealing
		// pipeline clamps it into the document's real page range.
		field.Int("page").
			Default(1),
		field.Float("x"),
		field.Float("y"),
		field.Float("w"),
		field.Float("h"),
		field.Enum("type").
			Values("signature", "initials", "text", "date", "checkbox"),
		field.Bool("required").
			Default(true),
		field.String("role").
			Default("Signer"),
		field.String("name").
			Optional(),
		field.String("font_family").
			Optional(),
	}
}

// Edges of the EnvelopeField.
func (EnvelopeField) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("envelope", Envelope.Type).
			Ref("fields").
			Unique().
			Required(),
		// Optional explicit binding. Unbound fields are visible to any signer
		// whose role matches the field's role.
		edge.From("signer", Signer.Type).
			Ref("fields").
			Unique(),
		edge.To("values", SignerFieldValue.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
