package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// FinalArtifact holds the schema definition for the FinalArtifact entity.
// At most one per envelope; the unique envelope edge enforces it at the
// database level so two racing "last signer" completions cannot both commit.
type FinalArtifact struct {
	ent.Schema
}

// Mixin of the FinalArtifact.
func (FinalArtifact) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the FinalArtifact.
func (FinalArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("storage_key_pdf").
			NotEmpty().
			Immutable(),
		field.String("storage_key_audit").
			NotEmpty().
			Immutable(),
		field.String("sha256_final").
			NotEmpty().
			Immutable(),
		field.Time("sealed_at").
			Immutable(),
	}
}

// Edges of the FinalArtifact.
func (FinalArtifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("envelope", Envelope.Type).
			Ref("artifact").
			Unique().
			Required().
			Immutable(),
	}
}
