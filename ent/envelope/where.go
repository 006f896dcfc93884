// Code generated by ent, DO NOT EDIT.

package envelope

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sealgate.io/sealgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Envelope {
	return predicate.Envelope(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldUpdatedAt, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldSubject, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldMessage, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldExpiresAt, v))
}

// RequesterName applies equality check predicate on the "requester_name" field. It's identical to RequesterNameEQ.
func RequesterName(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldRequesterName, v))
}

// RequesterEmail applies equality check predicate on the "requester_email" field. It's identical to RequesterEmailEQ.
func RequesterEmail(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldRequesterEmail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldLTE(FieldUpdatedAt, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldContainsFold(FieldSubject, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldContainsFold(FieldMessage, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Envelope {
	return predicate.Envelope(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Envelope {
	return predicate.Envelope(sql.FieldNotIn(FieldStatus, vs...))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.Envelope {
	return predicate.Envelope(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.Envelope {
	return predicate.Envelope(sql.FieldNotNull(FieldExpiresAt))
}

// RequesterNameEQ applies the EQ predicate on the "requester_name" field.
func RequesterNameEQ(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldRequesterName, v))
}

// RequesterNameNEQ applies the NEQ predicate on the "requester_name" field.
func RequesterNameNEQ(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldRequesterName, v))
}

// RequesterNameIn applies the In predicate on the "requester_name" field.
func RequesterNameIn(vs ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldIn(FieldRequesterName, vs...))
}

// RequesterNameNotIn applies the NotIn predicate on the "requester_name" field.
func RequesterNameNotIn(vs ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNotIn(FieldRequesterName, vs...))
}

// RequesterNameGT applies the GT predicate on the "requester_name" field.
func RequesterNameGT(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGT(FieldRequesterName, v))
}

// RequesterNameGTE applies the GTE predicate on the "requester_name" field.
func RequesterNameGTE(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGTE(FieldRequesterName, v))
}

// RequesterNameLT applies the LT predicate on the "requester_name" field.
func RequesterNameLT(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLT(FieldRequesterName, v))
}

// RequesterNameLTE applies the LTE predicate on the "requester_name" field.
func RequesterNameLTE(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLTE(FieldRequesterName, v))
}

// RequesterNameContains applies the Contains predicate on the "requester_name" field.
func RequesterNameContains(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldContains(FieldRequesterName, v))
}

// RequesterNameHasPrefix applies the HasPrefix predicate on the "requester_name" field.
func RequesterNameHasPrefix(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldHasPrefix(FieldRequesterName, v))
}

// RequesterNameHasSuffix applies the HasSuffix predicate on the "requester_name" field.
func RequesterNameHasSuffix(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldHasSuffix(FieldRequesterName, v))
}

// RequesterNameIsNil applies the IsNil predicate on the "requester_name" field.
func RequesterNameIsNil() predicate.Envelope {
	return predicate.Envelope(sql.FieldIsNull(FieldRequesterName))
}

// RequesterNameNotNil applies the NotNil predicate on the "requester_name" field.
func RequesterNameNotNil() predicate.Envelope {
	return predicate.Envelope(sql.FieldNotNull(FieldRequesterName))
}

// RequesterNameEqualFold applies the EqualFold predicate on the "requester_name" field.
func RequesterNameEqualFold(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEqualFold(FieldRequesterName, v))
}

// RequesterNameContainsFold applies the ContainsFold predicate on the "requester_name" field.
func RequesterNameContainsFold(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldContainsFold(FieldRequesterName, v))
}

// RequesterEmailEQ applies the EQ predicate on the "requester_email" field.
func RequesterEmailEQ(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldRequesterEmail, v))
}

// RequesterEmailNEQ applies the NEQ predicate on the "requester_email" field.
func RequesterEmailNEQ(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldRequesterEmail, v))
}

// RequesterEmailIn applies the In predicate on the "requester_email" field.
func RequesterEmailIn(vs ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldIn(FieldRequesterEmail, vs...))
}

// RequesterEmailNotIn applies the NotIn predicate on the "requester_email" field.
func RequesterEmailNotIn(vs ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNotIn(FieldRequesterEmail, vs...))
}

// RequesterEmailGT applies the GT predicate on the "requester_email" field.
func RequesterEmailGT(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGT(FieldRequesterEmail, v))
}

// RequesterEmailGTE applies the GTE predicate on the "requester_email" field.
func RequesterEmailGTE(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGTE(FieldRequesterEmail, v))
}

// RequesterEmailLT applies the LT predicate on the "requester_email" field.
func RequesterEmailLT(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLT(FieldRequesterEmail, v))
}

// RequesterEmailLTE applies the LTE predicate on the "requester_email" field.
func RequesterEmailLTE(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLTE(FieldRequesterEmail, v))
}

// RequesterEmailContains applies the Contains predicate on the "requester_email" field.
func RequesterEmailContains(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldContains(FieldRequesterEmail, v))
}

// RequesterEmailHasPrefix applies the HasPrefix predicate on the "requester_email" field.
func RequesterEmailHasPrefix(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldHasPrefix(FieldRequesterEmail, v))
}

// RequesterEmailHasSuffix applies the HasSuffix predicate on the "requester_email" field.
func RequesterEmailHasSuffix(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldHasSuffix(FieldRequesterEmail, v))
}

// RequesterEmailIsNil applies the IsNil predicate on the "requester_email" field.
func RequesterEmailIsNil() predicate.Envelope {
	return predicate.Envelope(sql.FieldIsNull(FieldRequesterEmail))
}

// RequesterEmailNotNil applies the NotNil predicate on the "requester_email" field.
func RequesterEmailNotNil() predicate.Envelope {
	return predicate.Envelope(sql.FieldNotNull(FieldRequesterEmail))
}

// RequesterEmailEqualFold applies the EqualFold predicate on the "requester_email" field.
func RequesterEmailEqualFold(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEqualFold(FieldRequesterEmail, v))
}

// RequesterEmailContainsFold applies the ContainsFold predicate on the "requester_email" field.
func RequesterEmailContainsFold(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldContainsFold(FieldRequesterEmail, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Envelope {
	return predicate.Envelope(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Envelope {
	return predicate.Envelope(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Envelope {
	return predicate.Envelope(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Envelope {
	return predicate.Envelope(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSigners applies the HasEdge predicate on the "signers" edge.
func HasSigners() predicate.Envelope {
	return predicate.Envelope(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SignersTable, SignersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSignersWith applies the HasEdge predicate on the "signers" edge with a given conditions (other predicates).
func HasSignersWith(preds ...predicate.Signer) predicate.Envelope {
	return predicate.Envelope(func(s *sql.Selector) {
		step := newSignersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFields applies the HasEdge predicate on the "fields" edge.
func HasFields() predicate.Envelope {
	return predicate.Envelope(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FieldsTable, FieldsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldsWith applies the HasEdge predicate on the "fields" edge with a given conditions (other predicates).
func HasFieldsWith(preds ...predicate.EnvelopeField) predicate.Envelope {
	return predicate.Envelope(func(s *sql.Selector) {
		step := newFieldsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Envelope {
	return predicate.Envelope(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Envelope {
	return predicate.Envelope(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArtifact applies the HasEdge predicate on the "artifact" edge.
func HasArtifact() predicate.Envelope {
	return predicate.Envelope(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ArtifactTable, ArtifactColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArtifactWith applies the HasEdge predicate on the "artifact" edge with a given conditions (other predicates).
func HasArtifactWith(preds ...predicate.FinalArtifact) predicate.Envelope {
	return predicate.Envelope(func(s *sql.Selector) {
		step := newArtifactStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Envelope) predicate.Envelope {
	return predicate.Envelope(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Envelope) predicate.Envelope {
	return predicate.Envelope(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Envelope) predicate.Envelope {
	return predicate.Envelope(sql.NotPredicates(p))
}
