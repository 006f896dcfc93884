package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Event holds the schema definition for the Event entity.
// Append-only hash-chained audit records. Every column is immutable; the
// auto-increment id is the append order the chain is computed over.
// Hard-delete of individual rows is NOT allowed while an envelope is active.
type Event struct {
	ent.Schema
}

// Mixin of the Event.
func (Event) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("actor").
			NotEmpty().
			Immutable(), // "system" or "signer:<id>"
		field.Enum("type").
			Values("created", "sent", "opened", "filled", "consented", "completed", "sealed").
			Immutable(),
		field.JSON("meta", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("ip").
			Optional().
			Immutable(),
		field.String("ua").
			Optional().
			Immutable(),
		field.String("prev_hash").
			NotEmpty().
			Immutable(),
		field.String("hash").
			NotEmpty().
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("envelope", Envelope.Type).
			Ref("events").
			Unique().
			Required().
			Immutable(),
	}
}
