// Code generated by ent, DO NOT EDIT.

package signerfieldvalue

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sealgate.io/sealgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSigner applies the HasEdge predicate on the "signer" edge.
func HasSigner() predicate.SignerFieldValue {
	return predicate.SignerFieldValue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SignerTable, SignerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSignerWith applies the HasEdge predicate on the "signer" edge with a given conditions (other predicates).
func HasSignerWith(preds ...predicate.Signer) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(func(s *sql.Selector) {
		step := newSignerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasField applies the HasEdge predicate on the "field" edge.
func HasField() predicate.SignerFieldValue {
	return predicate.SignerFieldValue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FieldTable, FieldColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldWith applies the HasEdge predicate on the "field" edge with a given conditions (other predicates).
func HasFieldWith(preds ...predicate.EnvelopeField) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(func(s *sql.Selector) {
		step := newFieldStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SignerFieldValue) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SignerFieldValue) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SignerFieldValue) predicate.SignerFieldValue {
	return predicate.SignerFieldValue(sql.NotPredicates(p))
}
