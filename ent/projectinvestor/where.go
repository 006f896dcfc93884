// Code generated by ent, DO NOT EDIT.

package projectinvestor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sealgate.io/sealgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldEmail, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldRole, v))
}

// RoutingOrder applies equality check predicate on the "routing_order" field. It's identical to RoutingOrderEQ.
func RoutingOrder(v int) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldRoutingOrder, v))
}

// UnitsInvested applies equality check predicate on the "units_invested" field. It's identical to UnitsInvestedEQ.
func UnitsInvested(v float64) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldUnitsInvested, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldContainsFold(FieldEmail, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldContainsFold(FieldRole, v))
}

// RoutingOrderEQ applies the EQ predicate on the "routing_order" field.
func RoutingOrderEQ(v int) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldRoutingOrder, v))
}

// RoutingOrderNEQ applies the NEQ predicate on the "routing_order" field.
func RoutingOrderNEQ(v int) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNEQ(FieldRoutingOrder, v))
}

// RoutingOrderIn applies the In predicate on the "routing_order" field.
func RoutingOrderIn(vs ...int) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldIn(FieldRoutingOrder, vs...))
}

// RoutingOrderNotIn applies the NotIn predicate on the "routing_order" field.
func RoutingOrderNotIn(vs ...int) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNotIn(FieldRoutingOrder, vs...))
}

// RoutingOrderGT applies the GT predicate on the "routing_order" field.
func RoutingOrderGT(v int) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGT(FieldRoutingOrder, v))
}

// RoutingOrderGTE applies the GTE predicate on the "routing_order" field.
func RoutingOrderGTE(v int) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGTE(FieldRoutingOrder, v))
}

// RoutingOrderLT applies the LT predicate on the "routing_order" field.
func RoutingOrderLT(v int) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLT(FieldRoutingOrder, v))
}

// RoutingOrderLTE applies the LTE predicate on the "routing_order" field.
func RoutingOrderLTE(v int) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLTE(FieldRoutingOrder, v))
}

// UnitsInvestedEQ applies the EQ predicate on the "units_invested" field.
func UnitsInvestedEQ(v float64) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldEQ(FieldUnitsInvested, v))
}

// UnitsInvestedNEQ applies the NEQ predicate on the "units_invested" field.
func UnitsInvestedNEQ(v float64) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNEQ(FieldUnitsInvested, v))
}

// UnitsInvestedIn applies the In predicate on the "units_invested" field.
func UnitsInvestedIn(vs ...float64) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldIn(FieldUnitsInvested, vs...))
}

// UnitsInvestedNotIn applies the NotIn predicate on the "units_invested" field.
func UnitsInvestedNotIn(vs ...float64) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNotIn(FieldUnitsInvested, vs...))
}

// UnitsInvestedGT applies the GT predicate on the "units_invested" field.
func UnitsInvestedGT(v float64) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGT(FieldUnitsInvested, v))
}

// UnitsInvestedGTE applies the GTE predicate on the "units_invested" field.
func UnitsInvestedGTE(v float64) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldGTE(FieldUnitsInvested, v))
}

// UnitsInvestedLT applies the LT predicate on the "units_invested" field.
func UnitsInvestedLT(v float64) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLT(FieldUnitsInvested, v))
}

// UnitsInvestedLTE applies the LTE predicate on the "units_invested" field.
func UnitsInvestedLTE(v float64) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldLTE(FieldUnitsInvested, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.FieldNotNull(FieldMetadata))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.ProjectInvestor {
	return predicate.ProjectInvestor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProjectInvestor) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProjectInvestor) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProjectInvestor) predicate.ProjectInvestor {
	return predicate.ProjectInvestor(sql.NotPredicates(p))
}
