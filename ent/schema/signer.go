package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Signer holds the schema definition for the Signer entity.
// Once a signer is completed, status and completed_at never change again.
type Signer struct {
	ent.Schema
}

// Mixin of the Signer.
func (Signer) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Signer.
func (Signer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("email").
			NotEmpty(),
		field.String("role").
			Default("Signer"),
		// Informational ordering only; signing is not sequentially gated.
		field.Int("routing_order").
			Default(1),
		field.Enum("status").
			Values("pending", "completed").
			Default("pending"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("opened_at").
			Optional().
			Nillable(),
		field.String("ip_first").
			Optional(),
		field.String("ua_first").
			Optional(),
	}
}

// Edges of the Signer.
func (Signer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("envelope", Envelope.Type).
			Ref("signers").
			Unique().
			Required(),
		edge.To("fields", EnvelopeField.Type),
		edge.To("values", SignerFieldValue.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Signer.
func (Signer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
