// Code generated by ent, DO NOT EDIT.

package signer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sealgate.io/sealgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Signer {
	return predicate.Signer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Signer {
	return predicate.Signer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Signer {
	return predicate.Signer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Signer {
	return predicate.Signer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Signer {
	return predicate.Signer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Signer {
	return predicate.Signer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Signer {
	return predicate.Signer(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Signer {
	return predicate.Signer(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Signer {
	return predicate.Signer(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldEmail, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldRole, v))
}

// RoutingOrder applies equality check predicate on the "routing_order" field. It's identical to RoutingOrderEQ.
func RoutingOrder(v int) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldRoutingOrder, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldCompletedAt, v))
}

// OpenedAt applies equality check predicate on the "opened_at" field. It's identical to OpenedAtEQ.
func OpenedAt(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldOpenedAt, v))
}

// IPFirst applies equality check predicate on the "ip_first" field. It's identical to IPFirstEQ.
func IPFirst(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldIPFirst, v))
}

// UaFirst applies equality check predicate on the "ua_first" field. It's identical to UaFirstEQ.
func UaFirst(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldUaFirst, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Signer {
	return predicate.Signer(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Signer {
	return predicate.Signer(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Signer {
	return predicate.Signer(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Signer {
	return predicate.Signer(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Signer {
	return predicate.Signer(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Signer {
	return predicate.Signer(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Signer {
	return predicate.Signer(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Signer {
	return predicate.Signer(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Signer {
	return predicate.Signer(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Signer {
	return predicate.Signer(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Signer {
	return predicate.Signer(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Signer {
	return predicate.Signer(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Signer {
	return predicate.Signer(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Signer {
	return predicate.Signer(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Signer {
	return predicate.Signer(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Signer {
	return predicate.Signer(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Signer {
	return predicate.Signer(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Signer {
	return predicate.Signer(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Signer {
	return predicate.Signer(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Signer {
	return predicate.Signer(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Signer {
	return predicate.Signer(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Signer {
	return predicate.Signer(sql.FieldContainsFold(FieldEmail, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Signer {
	return predicate.Signer(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Signer {
	return predicate.Signer(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Signer {
	return predicate.Signer(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Signer {
	return predicate.Signer(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Signer {
	return predicate.Signer(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Signer {
	return predicate.Signer(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Signer {
	return predicate.Signer(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Signer {
	return predicate.Signer(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Signer {
	return predicate.Signer(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Signer {
	return predicate.Signer(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Signer {
	return predicate.Signer(sql.FieldContainsFold(FieldRole, v))
}

// RoutingOrderEQ applies the EQ predicate on the "routing_order" field.
func RoutingOrderEQ(v int) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldRoutingOrder, v))
}

// RoutingOrderNEQ applies the NEQ predicate on the "routing_order" field.
func RoutingOrderNEQ(v int) predicate.Signer {
	return predicate.Signer(sql.FieldNEQ(FieldRoutingOrder, v))
}

// RoutingOrderIn applies the In predicate on the "routing_order" field.
func RoutingOrderIn(vs ...int) predicate.Signer {
	return predicate.Signer(sql.FieldIn(FieldRoutingOrder, vs...))
}

// RoutingOrderNotIn applies the NotIn predicate on the "routing_order" field.
func RoutingOrderNotIn(vs ...int) predicate.Signer {
	return predicate.Signer(sql.FieldNotIn(FieldRoutingOrder, vs...))
}

// RoutingOrderGT applies the GT predicate on the "routing_order" field.
func RoutingOrderGT(v int) predicate.Signer {
	return predicate.Signer(sql.FieldGT(FieldRoutingOrder, v))
}

// RoutingOrderGTE applies the GTE predicate on the "routing_order" field.
func RoutingOrderGTE(v int) predicate.Signer {
	return predicate.Signer(sql.FieldGTE(FieldRoutingOrder, v))
}

// RoutingOrderLT applies the LT predicate on the "routing_order" field.
func RoutingOrderLT(v int) predicate.Signer {
	return predicate.Signer(sql.FieldLT(FieldRoutingOrder, v))
}

// RoutingOrderLTE applies the LTE predicate on the "routing_order" field.
func RoutingOrderLTE(v int) predicate.Signer {
	return predicate.Signer(sql.FieldLTE(FieldRoutingOrder, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Signer {
	return predicate.Signer(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Signer {
	return predicate.Signer(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Signer {
	return predicate.Signer(sql.FieldNotIn(FieldStatus, vs...))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Signer {
	return predicate.Signer(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Signer {
	return predicate.Signer(sql.FieldNotNull(FieldCompletedAt))
}

// OpenedAtEQ applies the EQ predicate on the "opened_at" field.
func OpenedAtEQ(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldOpenedAt, v))
}

// OpenedAtNEQ applies the NEQ predicate on the "opened_at" field.
func OpenedAtNEQ(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldNEQ(FieldOpenedAt, v))
}

// OpenedAtIn applies the In predicate on the "opened_at" field.
func OpenedAtIn(vs ...time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldIn(FieldOpenedAt, vs...))
}

// OpenedAtNotIn applies the NotIn predicate on the "opened_at" field.
func OpenedAtNotIn(vs ...time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldNotIn(FieldOpenedAt, vs...))
}

// OpenedAtGT applies the GT predicate on the "opened_at" field.
func OpenedAtGT(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldGT(FieldOpenedAt, v))
}

// OpenedAtGTE applies the GTE predicate on the "opened_at" field.
func OpenedAtGTE(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldGTE(FieldOpenedAt, v))
}

// OpenedAtLT applies the LT predicate on the "opened_at" field.
func OpenedAtLT(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldLT(FieldOpenedAt, v))
}

// OpenedAtLTE applies the LTE predicate on the "opened_at" field.
func OpenedAtLTE(v time.Time) predicate.Signer {
	return predicate.Signer(sql.FieldLTE(FieldOpenedAt, v))
}

// OpenedAtIsNil applies the IsNil predicate on the "opened_at" field.
func OpenedAtIsNil() predicate.Signer {
	return predicate.Signer(sql.FieldIsNull(FieldOpenedAt))
}

// OpenedAtNotNil applies the NotNil predicate on the "opened_at" field.
func OpenedAtNotNil() predicate.Signer {
	return predicate.Signer(sql.FieldNotNull(FieldOpenedAt))
}

// IPFirstEQ applies the EQ predicate on the "ip_first" field.
func IPFirstEQ(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldIPFirst, v))
}

// IPFirstNEQ applies the NEQ predicate on the "ip_first" field.
func IPFirstNEQ(v string) predicate.Signer {
	return predicate.Signer(sql.FieldNEQ(FieldIPFirst, v))
}

// IPFirstIn applies the In predicate on the "ip_first" field.
func IPFirstIn(vs ...string) predicate.Signer {
	return predicate.Signer(sql.FieldIn(FieldIPFirst, vs...))
}

// IPFirstNotIn applies the NotIn predicate on the "ip_first" field.
func IPFirstNotIn(vs ...string) predicate.Signer {
	return predicate.Signer(sql.FieldNotIn(FieldIPFirst, vs...))
}

// IPFirstGT applies the GT predicate on the "ip_first" field.
func IPFirstGT(v string) predicate.Signer {
	return predicate.Signer(sql.FieldGT(FieldIPFirst, v))
}

// IPFirstGTE applies the GTE predicate on the "ip_first" field.
func IPFirstGTE(v string) predicate.Signer {
	return predicate.Signer(sql.FieldGTE(FieldIPFirst, v))
}

// IPFirstLT applies the LT predicate on the "ip_first" field.
func IPFirstLT(v string) predicate.Signer {
	return predicate.Signer(sql.FieldLT(FieldIPFirst, v))
}

// IPFirstLTE applies the LTE predicate on the "ip_first" field.
func IPFirstLTE(v string) predicate.Signer {
	return predicate.Signer(sql.FieldLTE(FieldIPFirst, v))
}

// IPFirstContains applies the Contains predicate on the "ip_first" field.
func IPFirstContains(v string) predicate.Signer {
	return predicate.Signer(sql.FieldContains(FieldIPFirst, v))
}

// IPFirstHasPrefix applies the HasPrefix predicate on the "ip_first" field.
func IPFirstHasPrefix(v string) predicate.Signer {
	return predicate.Signer(sql.FieldHasPrefix(FieldIPFirst, v))
}

// IPFirstHasSuffix applies the HasSuffix predicate on the "ip_first" field.
func IPFirstHasSuffix(v string) predicate.Signer {
	return predicate.Signer(sql.FieldHasSuffix(FieldIPFirst, v))
}

// IPFirstIsNil applies the IsNil predicate on the "ip_first" field.
func IPFirstIsNil() predicate.Signer {
	return predicate.Signer(sql.FieldIsNull(FieldIPFirst))
}

// IPFirstNotNil applies the NotNil predicate on the "ip_first" field.
func IPFirstNotNil() predicate.Signer {
	return predicate.Signer(sql.FieldNotNull(FieldIPFirst))
}

// IPFirstEqualFold applies the EqualFold predicate on the "ip_first" field.
func IPFirstEqualFold(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEqualFold(FieldIPFirst, v))
}

// IPFirstContainsFold applies the ContainsFold predicate on the "ip_first" field.
func IPFirstContainsFold(v string) predicate.Signer {
	return predicate.Signer(sql.FieldContainsFold(FieldIPFirst, v))
}

// UaFirstEQ applies the EQ predicate on the "ua_first" field.
func UaFirstEQ(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEQ(FieldUaFirst, v))
}

// UaFirstNEQ applies the NEQ predicate on the "ua_first" field.
func UaFirstNEQ(v string) predicate.Signer {
	return predicate.Signer(sql.FieldNEQ(FieldUaFirst, v))
}

// UaFirstIn applies the In predicate on the "ua_first" field.
func UaFirstIn(vs ...string) predicate.Signer {
	return predicate.Signer(sql.FieldIn(FieldUaFirst, vs...))
}

// UaFirstNotIn applies the NotIn predicate on the "ua_first" field.
func UaFirstNotIn(vs ...string) predicate.Signer {
	return predicate.Signer(sql.FieldNotIn(FieldUaFirst, vs...))
}

// UaFirstGT applies the GT predicate on the "ua_first" field.
func UaFirstGT(v string) predicate.Signer {
	return predicate.Signer(sql.FieldGT(FieldUaFirst, v))
}

// UaFirstGTE applies the GTE predicate on the "ua_first" field.
func UaFirstGTE(v string) predicate.Signer {
	return predicate.Signer(sql.FieldGTE(FieldUaFirst, v))
}

// UaFirstLT applies the LT predicate on the "ua_first" field.
func UaFirstLT(v string) predicate.Signer {
	return predicate.Signer(sql.FieldLT(FieldUaFirst, v))
}

// UaFirstLTE applies the LTE predicate on the "ua_first" field.
func UaFirstLTE(v string) predicate.Signer {
	return predicate.Signer(sql.FieldLTE(FieldUaFirst, v))
}

// UaFirstContains applies the Contains predicate on the "ua_first" field.
func UaFirstContains(v string) predicate.Signer {
	return predicate.Signer(sql.FieldContains(FieldUaFirst, v))
}

// UaFirstHasPrefix applies the HasPrefix predicate on the "ua_first" field.
func UaFirstHasPrefix(v string) predicate.Signer {
	return predicate.Signer(sql.FieldHasPrefix(FieldUaFirst, v))
}

// UaFirstHasSuffix applies the HasSuffix predicate on the "ua_first" field.
func UaFirstHasSuffix(v string) predicate.Signer {
	return predicate.Signer(sql.FieldHasSuffix(FieldUaFirst, v))
}

// UaFirstIsNil applies the IsNil predicate on the "ua_first" field.
func UaFirstIsNil() predicate.Signer {
	return predicate.Signer(sql.FieldIsNull(FieldUaFirst))
}

// UaFirstNotNil applies the NotNil predicate on the "ua_first" field.
func UaFirstNotNil() predicate.Signer {
	return predicate.Signer(sql.FieldNotNull(FieldUaFirst))
}

// UaFirstEqualFold applies the EqualFold predicate on the "ua_first" field.
func UaFirstEqualFold(v string) predicate.Signer {
	return predicate.Signer(sql.FieldEqualFold(FieldUaFirst, v))
}

// UaFirstContainsFold applies the ContainsFold predicate on the "ua_first" field.
func UaFirstContainsFold(v string) predicate.Signer {
	return predicate.Signer(sql.FieldContainsFold(FieldUaFirst, v))
}

// HasEnvelope applies the HasEdge predicate on the "envelope" edge.
func HasEnvelope() predicate.Signer {
	return predicate.Signer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EnvelopeTable, EnvelopeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEnvelopeWith applies the HasEdge predicate on the "envelope" edge with a given conditions (other predicates).
func HasEnvelopeWith(preds ...predicate.Envelope) predicate.Signer {
	return predicate.Signer(func(s *sql.Selector) {
		step := newEnvelopeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFields applies the HasEdge predicate on the "fields" edge.
func HasFields() predicate.Signer {
	return predicate.Signer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FieldsTable, FieldsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldsWith applies the HasEdge predicate on the "fields" edge with a given conditions (other predicates).
func HasFieldsWith(preds ...predicate.EnvelopeField) predicate.Signer {
	return predicate.Signer(func(s *sql.Selector) {
		step := newFieldsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasValues applies the HasEdge predicate on the "values" edge.
func HasValues() predicate.Signer {
	return predicate.Signer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ValuesTable, ValuesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasValuesWith applies the HasEdge predicate on the "values" edge with a given conditions (other predicates).
func HasValuesWith(preds ...predicate.SignerFieldValue) predicate.Signer {
	return predicate.Signer(func(s *sql.Selector) {
		step := newValuesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Signer) predicate.Signer {
	return predicate.Signer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Signer) predicate.Signer {
	return predicate.Signer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Signer) predicate.Signer {
	return predicate.Signer(sql.NotPredicates(p))
}
