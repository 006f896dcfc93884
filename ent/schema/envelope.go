package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Envelope holds the schema definition for the Envelope entity.
// One envelope wraps one document plus its signers and fields. Status only
// moves forward: draft -> sent -> completed.
type Envelope struct {
	ent.Schema
}

// Mixin of the Envelope.
func (Envelope) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Envelope.
func (Envelope) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("subject").
			Default("Please sign"),
		field.String("message").
			Default(""),
		field.Enum("status").
			Values("draft", "sent", "completed").
			Default("draft"),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.String("requester_name").
			Optional(),
		field.String("requester_email").
			Optional(),
	}
}

// Edges of the Envelope.
func (Envelope) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("envelopes").
			Unique().
			Required(),
		edge.From("document", Document.Type).
			Ref("envelopes").
			Unique().
			Required(),
		edge.To("signers", Signer.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("fields", EnvelopeField.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		// O2O: the unique FK on final_artifacts is the create-if-absent guard
		// that makes sealing a one-time operation even under races.
		edge.To("artifact", FinalArtifact.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Envelope.
func (Envelope) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
