package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProjectInvestor holds the schema definition for the ProjectInvestor entity.
// A reusable per-project roster entry; envelope signers may be resolved from it.
type ProjectInvestor struct {
	ent.Schema
}

// Mixin of the ProjectInvestor.
func (ProjectInvestor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ProjectInvestor.
func (ProjectInvestor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("email").
			NotEmpty(),
		field.String("role").
			Default("Investor"),
		field.Int("routing_order").
			Default(1),
		field.Float("units_invested").
			Default(0),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the ProjectInvestor.
func (ProjectInvestor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("investors").
			Unique().
			Required(),
	}
}

// Indexes of the ProjectInvestor.
func (ProjectInvestor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("routing_order"),
	}
}
