package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// SignerFieldValue holds the schema definition for the SignerFieldValue entity.
// Rows are versioned by full replace-on-save: a save wipes the signer's prior
// rows and inserts the retained submissions.
type SignerFieldValue struct {
	ent.Schema
}

// Mixin of the SignerFieldValue.
func (SignerFieldValue) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the SignerFieldValue.
func (SignerFieldValue) Fields() []ent.Field {
	return []ent.Field{
		// payload carries at least {"value": ...} plus presentation hints
		// such as "font". Stored as-is; canonicalized only for hashing.
		field.JSON("payload", map[string]interface{}{}),
	}
}

// Edges of the SignerFieldValue.
func (SignerFieldValue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("signer", Signer.Type).
			Ref("values").
			Unique().
			Required(),
		edge.From("field", EnvelopeField.Type).
			Ref("values").
			Unique().
			Required(),
	}
}
