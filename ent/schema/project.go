package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Project holds the schema definition for the Project entity.
// A project scopes documents, investor rosters and envelopes; its access token
// grants project-scoped API access.
type Project struct {
	ent.Schema
}

// Mixin of the Project.
func (Project) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("status").
			Default("active"),
		field.String("access_token").
			NotEmpty().
			Unique().
			Sensitive(),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("envelopes", Envelope.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("investors", ProjectInvestor.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
