// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sealgate.io/sealgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldActor, v))
}

// IP applies equality check predicate on the "ip" field. It's identical to IPEQ.
func IP(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIP, v))
}

// Ua applies equality check predicate on the "ua" field. It's identical to UaEQ.
func Ua(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUa, v))
}

// PrevHash applies equality check predicate on the "prev_hash" field. It's identical to PrevHashEQ.
func PrevHash(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldPrevHash, v))
}

// Hash applies equality check predicate on the "hash" field. It's identical to HashEQ.
func Hash(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldHash, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldActor, v))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldActor, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldType, vs...))
}

// MetaIsNil applies the IsNil predicate on the "meta" field.
func MetaIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldMeta))
}

// MetaNotNil applies the NotNil predicate on the "meta" field.
func MetaNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldMeta))
}

// IPEQ applies the EQ predicate on the "ip" field.
func IPEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIP, v))
}

// IPNEQ applies the NEQ predicate on the "ip" field.
func IPNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldIP, v))
}

// IPIn applies the In predicate on the "ip" field.
func IPIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldIP, vs...))
}

// IPNotIn applies the NotIn predicate on the "ip" field.
func IPNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldIP, vs...))
}

// IPGT applies the GT predicate on the "ip" field.
func IPGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldIP, v))
}

// IPGTE applies the GTE predicate on the "ip" field.
func IPGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldIP, v))
}

// IPLT applies the LT predicate on the "ip" field.
func IPLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldIP, v))
}

// IPLTE applies the LTE predicate on the "ip" field.
func IPLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldIP, v))
}

// IPContains applies the Contains predicate on the "ip" field.
func IPContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldIP, v))
}

// IPHasPrefix applies the HasPrefix predicate on the "ip" field.
func IPHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldIP, v))
}

// IPHasSuffix applies the HasSuffix predicate on the "ip" field.
func IPHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldIP, v))
}

// IPIsNil applies the IsNil predicate on the "ip" field.
func IPIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldIP))
}

// IPNotNil applies the NotNil predicate on the "ip" field.
func IPNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldIP))
}

// IPEqualFold applies the EqualFold predicate on the "ip" field.
func IPEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldIP, v))
}

// IPContainsFold applies the ContainsFold predicate on the "ip" field.
func IPContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldIP, v))
}

// UaEQ applies the EQ predicate on the "ua" field.
func UaEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUa, v))
}

// UaNEQ applies the NEQ predicate on the "ua" field.
func UaNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldUa, v))
}

// UaIn applies the In predicate on the "ua" field.
func UaIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldUa, vs...))
}

// UaNotIn applies the NotIn predicate on the "ua" field.
func UaNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldUa, vs...))
}

// UaGT applies the GT predicate on the "ua" field.
func UaGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldUa, v))
}

// UaGTE applies the GTE predicate on the "ua" field.
func UaGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldUa, v))
}

// UaLT applies the LT predicate on the "ua" field.
func UaLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldUa, v))
}

// UaLTE applies the LTE predicate on the "ua" field.
func UaLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldUa, v))
}

// UaContains applies the Contains predicate on the "ua" field.
func UaContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldUa, v))
}

// UaHasPrefix applies the HasPrefix predicate on the "ua" field.
func UaHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldUa, v))
}

// UaHasSuffix applies the HasSuffix predicate on the "ua" field.
func UaHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldUa, v))
}

// UaIsNil applies the IsNil predicate on the "ua" field.
func UaIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldUa))
}

// UaNotNil applies the NotNil predicate on the "ua" field.
func UaNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldUa))
}

// UaEqualFold applies the EqualFold predicate on the "ua" field.
func UaEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldUa, v))
}

// UaContainsFold applies the ContainsFold predicate on the "ua" field.
func UaContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldUa, v))
}

// PrevHashEQ applies the EQ predicate on the "prev_hash" field.
func PrevHashEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldPrevHash, v))
}

// PrevHashNEQ applies the NEQ predicate on the "prev_hash" field.
func PrevHashNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldPrevHash, v))
}

// PrevHashIn applies the In predicate on the "prev_hash" field.
func PrevHashIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldPrevHash, vs...))
}

// PrevHashNotIn applies the NotIn predicate on the "prev_hash" field.
func PrevHashNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldPrevHash, vs...))
}

// PrevHashGT applies the GT predicate on the "prev_hash" field.
func PrevHashGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldPrevHash, v))
}

// PrevHashGTE applies the GTE predicate on the "prev_hash" field.
func PrevHashGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldPrevHash, v))
}

// PrevHashLT applies the LT predicate on the "prev_hash" field.
func PrevHashLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldPrevHash, v))
}

// PrevHashLTE applies the LTE predicate on the "prev_hash" field.
func PrevHashLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldPrevHash, v))
}

// PrevHashContains applies the Contains predicate on the "prev_hash" field.
func PrevHashContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldPrevHash, v))
}

// PrevHashHasPrefix applies the HasPrefix predicate on the "prev_hash" field.
func PrevHashHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldPrevHash, v))
}

// PrevHashHasSuffix applies the HasSuffix predicate on the "prev_hash" field.
func PrevHashHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldPrevHash, v))
}

// PrevHashEqualFold applies the EqualFold predicate on the "prev_hash" field.
func PrevHashEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldPrevHash, v))
}

// PrevHashContainsFold applies the ContainsFold predicate on the "prev_hash" field.
func PrevHashContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldPrevHash, v))
}

// HashEQ applies the EQ predicate on the "hash" field.
func HashEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldHash, v))
}

// HashNEQ applies the NEQ predicate on the "hash" field.
func HashNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldHash, v))
}

// HashIn applies the In predicate on the "hash" field.
func HashIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldHash, vs...))
}

// HashNotIn applies the NotIn predicate on the "hash" field.
func HashNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldHash, vs...))
}

// HashGT applies the GT predicate on the "hash" field.
func HashGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldHash, v))
}

// HashGTE applies the GTE predicate on the "hash" field.
func HashGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldHash, v))
}

// HashLT applies the LT predicate on the "hash" field.
func HashLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldHash, v))
}

// HashLTE applies the LTE predicate on the "hash" field.
func HashLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldHash, v))
}

// HashContains applies the Contains predicate on the "hash" field.
func HashContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldHash, v))
}

// HashHasPrefix applies the HasPrefix predicate on the "hash" field.
func HashHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldHash, v))
}

// HashHasSuffix applies the HasSuffix predicate on the "hash" field.
func HashHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldHash, v))
}

// HashEqualFold applies the EqualFold predicate on the "hash" field.
func HashEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldHash, v))
}

// HashContainsFold applies the ContainsFold predicate on the "hash" field.
func HashContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldHash, v))
}

// HasEnvelope applies the HasEdge predicate on the "envelope" edge.
func HasEnvelope() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EnvelopeTable, EnvelopeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEnvelopeWith applies the HasEdge predicate on the "envelope" edge with a given conditions (other predicates).
func HasEnvelopeWith(preds ...predicate.Envelope) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newEnvelopeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
