// Code generated by ent, DO NOT EDIT.

package envelopefield

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sealgate.io/sealgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldContainsFold(FieldID, id))
}

// Page applies equality check predicate on the "page" field. It's identical to PageEQ.
func Page(v int) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldPage, v))
}

// X applies equality check predicate on the "x" field. It's identical to XEQ.
func X(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldX, v))
}

// Y applies equality check predicate on the "y" field. It's identical to YEQ.
func Y(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldY, v))
}

// W applies equality check predicate on the "w" field. It's identical to WEQ.
func W(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldW, v))
}

// H applies equality check predicate on the "h" field. It's identical to HEQ.
func H(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldH, v))
}

// Required applies equality check predicate on the "required" field. It's identical to RequiredEQ.
func Required(v bool) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldRequired, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldRole, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldName, v))
}

// FontFamily applies equality check predicate on the "font_family" field. It's identical to FontFamilyEQ.
func FontFamily(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldFontFamily, v))
}

// PageEQ applies the EQ predicate on the "page" field.
func PageEQ(v int) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldPage, v))
}

// PageNEQ applies the NEQ predicate on the "page" field.
func PageNEQ(v int) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNEQ(FieldPage, v))
}

// PageIn applies the In predicate on the "page" field.
func PageIn(vs ...int) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldIn(FieldPage, vs...))
}

// PageNotIn applies the NotIn predicate on the "page" field.
func PageNotIn(vs ...int) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNotIn(FieldPage, vs...))
}

// PageGT applies the GT predicate on the "page" field.
func PageGT(v int) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGT(FieldPage, v))
}

// PageGTE applies the GTE predicate on the "page" field.
func PageGTE(v int) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGTE(FieldPage, v))
}

// PageLT applies the LT predicate on the "page" field.
func PageLT(v int) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLT(FieldPage, v))
}

// PageLTE applies the LTE predicate on the "page" field.
func PageLTE(v int) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLTE(FieldPage, v))
}

// XEQ applies the EQ predicate on the "x" field.
func XEQ(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldX, v))
}

// XNEQ applies the NEQ predicate on the "x" field.
func XNEQ(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNEQ(FieldX, v))
}

// XIn applies the In predicate on the "x" field.
func XIn(vs ...float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldIn(FieldX, vs...))
}

// XNotIn applies the NotIn predicate on the "x" field.
func XNotIn(vs ...float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNotIn(FieldX, vs...))
}

// XGT applies the GT predicate on the "x" field.
func XGT(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGT(FieldX, v))
}

// XGTE applies the GTE predicate on the "x" field.
func XGTE(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGTE(FieldX, v))
}

// XLT applies the LT predicate on the "x" field.
func XLT(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLT(FieldX, v))
}

// XLTE applies the LTE predicate on the "x" field.
func XLTE(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLTE(FieldX, v))
}

// YEQ applies the EQ predicate on the "y" field.
func YEQ(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldY, v))
}

// YNEQ applies the NEQ predicate on the "y" field.
func YNEQ(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNEQ(FieldY, v))
}

// YIn applies the In predicate on the "y" field.
func YIn(vs ...float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldIn(FieldY, vs...))
}

// YNotIn applies the NotIn predicate on the "y" field.
func YNotIn(vs ...float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNotIn(FieldY, vs...))
}

// YGT applies the GT predicate on the "y" field.
func YGT(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGT(FieldY, v))
}

// YGTE applies the GTE predicate on the "y" field.
func YGTE(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGTE(FieldY, v))
}

// YLT applies the LT predicate on the "y" field.
func YLT(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLT(FieldY, v))
}

// YLTE applies the LTE predicate on the "y" field.
func YLTE(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLTE(FieldY, v))
}

// WEQ applies the EQ predicate on the "w" field.
func WEQ(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldW, v))
}

// WNEQ applies the NEQ predicate on the "w" field.
func WNEQ(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNEQ(FieldW, v))
}

// WIn applies the In predicate on the "w" field.
func WIn(vs ...float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldIn(FieldW, vs...))
}

// WNotIn applies the NotIn predicate on the "w" field.
func WNotIn(vs ...float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNotIn(FieldW, vs...))
}

// WGT applies the GT predicate on the "w" field.
func WGT(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGT(FieldW, v))
}

// WGTE applies the GTE predicate on the "w" field.
func WGTE(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGTE(FieldW, v))
}

// WLT applies the LT predicate on the "w" field.
func WLT(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLT(FieldW, v))
}

// WLTE applies the LTE predicate on the "w" field.
func WLTE(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLTE(FieldW, v))
}

// HEQ applies the EQ predicate on the "h" field.
func HEQ(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldH, v))
}

// HNEQ applies the NEQ predicate on the "h" field.
func HNEQ(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNEQ(FieldH, v))
}

// HIn applies the In predicate on the "h" field.
func HIn(vs ...float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldIn(FieldH, vs...))
}

// HNotIn applies the NotIn predicate on the "h" field.
func HNotIn(vs ...float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNotIn(FieldH, vs...))
}

// HGT applies the GT predicate on the "h" field.
func HGT(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGT(FieldH, v))
}

// HGTE applies the GTE predicate on the "h" field.
func HGTE(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGTE(FieldH, v))
}

// HLT applies the LT predicate on the "h" field.
func HLT(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLT(FieldH, v))
}

// HLTE applies the LTE predicate on the "h" field.
func HLTE(v float64) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLTE(FieldH, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNotIn(FieldType, vs...))
}

// RequiredEQ applies the EQ predicate on the "required" field.
func RequiredEQ(v bool) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldRequired, v))
}

// RequiredNEQ applies the NEQ predicate on the "required" field.
func RequiredNEQ(v bool) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNEQ(FieldRequired, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldContainsFold(FieldRole, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldContainsFold(FieldName, v))
}

// FontFamilyEQ applies the EQ predicate on the "font_family" field.
func FontFamilyEQ(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEQ(FieldFontFamily, v))
}

// FontFamilyNEQ applies the NEQ predicate on the "font_family" field.
func FontFamilyNEQ(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNEQ(FieldFontFamily, v))
}

// FontFamilyIn applies the In predicate on the "font_family" field.
func FontFamilyIn(vs ...string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldIn(FieldFontFamily, vs...))
}

// FontFamilyNotIn applies the NotIn predicate on the "font_family" field.
func FontFamilyNotIn(vs ...string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNotIn(FieldFontFamily, vs...))
}

// FontFamilyGT applies the GT predicate on the "font_family" field.
func FontFamilyGT(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGT(FieldFontFamily, v))
}

// FontFamilyGTE applies the GTE predicate on the "font_family" field.
func FontFamilyGTE(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldGTE(FieldFontFamily, v))
}

// FontFamilyLT applies the LT predicate on the "font_family" field.
func FontFamilyLT(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLT(FieldFontFamily, v))
}

// FontFamilyLTE applies the LTE predicate on the "font_family" field.
func FontFamilyLTE(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldLTE(FieldFontFamily, v))
}

// FontFamilyContains applies the Contains predicate on the "font_family" field.
func FontFamilyContains(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldContains(FieldFontFamily, v))
}

// FontFamilyHasPrefix applies the HasPrefix predicate on the "font_family" field.
func FontFamilyHasPrefix(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldHasPrefix(FieldFontFamily, v))
}

// FontFamilyHasSuffix applies the HasSuffix predicate on the "font_family" field.
func FontFamilyHasSuffix(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldHasSuffix(FieldFontFamily, v))
}

// FontFamilyIsNil applies the IsNil predicate on the "font_family" field.
func FontFamilyIsNil() predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldIsNull(FieldFontFamily))
}

// FontFamilyNotNil applies the NotNil predicate on the "font_family" field.
func FontFamilyNotNil() predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldNotNull(FieldFontFamily))
}

// FontFamilyEqualFold applies the EqualFold predicate on the "font_family" field.
func FontFamilyEqualFold(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldEqualFold(FieldFontFamily, v))
}

// FontFamilyContainsFold applies the ContainsFold predicate on the "font_family" field.
func FontFamilyContainsFold(v string) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.FieldContainsFold(FieldFontFamily, v))
}

// HasEnvelope applies the HasEdge predicate on the "envelope" edge.
func HasEnvelope() predicate.EnvelopeField {
	return predicate.EnvelopeField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EnvelopeTable, EnvelopeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEnvelopeWith applies the HasEdge predicate on the "envelope" edge with a given conditions (other predicates).
func HasEnvelopeWith(preds ...predicate.Envelope) predicate.EnvelopeField {
	return predicate.EnvelopeField(func(s *sql.Selector) {
		step := newEnvelopeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSigner applies the HasEdge predicate on the "signer" edge.
func HasSigner() predicate.EnvelopeField {
	return predicate.EnvelopeField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SignerTable, SignerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSignerWith applies the HasEdge predicate on the "signer" edge with a given conditions (other predicates).
func HasSignerWith(preds ...predicate.Signer) predicate.EnvelopeField {
	return predicate.EnvelopeField(func(s *sql.Selector) {
		step := newSignerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasValues applies the HasEdge predicate on the "values" edge.
func HasValues() predicate.EnvelopeField {
	return predicate.EnvelopeField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ValuesTable, ValuesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasValuesWith applies the HasEdge predicate on the "values" edge with a given conditions (other predicates).
func HasValuesWith(preds ...predicate.SignerFieldValue) predicate.EnvelopeField {
	return predicate.EnvelopeField(func(s *sql.Selector) {
		step := newValuesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EnvelopeField) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EnvelopeField) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EnvelopeField) predicate.EnvelopeField {
	return predicate.EnvelopeField(sql.NotPredicates(p))
}
