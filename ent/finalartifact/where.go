// Code generated by ent, DO NOT EDIT.

package finalartifact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sealgate.io/sealgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEQ(FieldCreatedAt, v))
}

// StorageKeyPdf applies equality check predicate on the "storage_key_pdf" field. It's identical to StorageKeyPdfEQ.
func StorageKeyPdf(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEQ(FieldStorageKeyPdf, v))
}

// StorageKeyAudit applies equality check predicate on the "storage_key_audit" field. It's identical to StorageKeyAuditEQ.
func StorageKeyAudit(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEQ(FieldStorageKeyAudit, v))
}

// Sha256Final applies equality check predicate on the "sha256_final" field. It's identical to Sha256FinalEQ.
func Sha256Final(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEQ(FieldSha256Final, v))
}

// SealedAt applies equality check predicate on the "sealed_at" field. It's identical to SealedAtEQ.
func SealedAt(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEQ(FieldSealedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldLTE(FieldCreatedAt, v))
}

// StorageKeyPdfEQ applies the EQ predicate on the "storage_key_pdf" field.
func StorageKeyPdfEQ(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEQ(FieldStorageKeyPdf, v))
}

// StorageKeyPdfNEQ applies the NEQ predicate on the "storage_key_pdf" field.
func StorageKeyPdfNEQ(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldNEQ(FieldStorageKeyPdf, v))
}

// StorageKeyPdfIn applies the In predicate on the "storage_key_pdf" field.
func StorageKeyPdfIn(vs ...string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldIn(FieldStorageKeyPdf, vs...))
}

// StorageKeyPdfNotIn applies the NotIn predicate on the "storage_key_pdf" field.
func StorageKeyPdfNotIn(vs ...string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldNotIn(FieldStorageKeyPdf, vs...))
}

// StorageKeyPdfGT applies the GT predicate on the "storage_key_pdf" field.
func StorageKeyPdfGT(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldGT(FieldStorageKeyPdf, v))
}

// StorageKeyPdfGTE applies the GTE predicate on the "storage_key_pdf" field.
func StorageKeyPdfGTE(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldGTE(FieldStorageKeyPdf, v))
}

// StorageKeyPdfLT applies the LT predicate on the "storage_key_pdf" field.
func StorageKeyPdfLT(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldLT(FieldStorageKeyPdf, v))
}

// StorageKeyPdfLTE applies the LTE predicate on the "storage_key_pdf" field.
func StorageKeyPdfLTE(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldLTE(FieldStorageKeyPdf, v))
}

// StorageKeyPdfContains applies the Contains predicate on the "storage_key_pdf" field.
func StorageKeyPdfContains(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldContains(FieldStorageKeyPdf, v))
}

// StorageKeyPdfHasPrefix applies the HasPrefix predicate on the "storage_key_pdf" field.
func StorageKeyPdfHasPrefix(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldHasPrefix(FieldStorageKeyPdf, v))
}

// StorageKeyPdfHasSuffix applies the HasSuffix predicate on the "storage_key_pdf" field.
func StorageKeyPdfHasSuffix(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldHasSuffix(FieldStorageKeyPdf, v))
}

// StorageKeyPdfEqualFold applies the EqualFold predicate on the "storage_key_pdf" field.
func StorageKeyPdfEqualFold(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEqualFold(FieldStorageKeyPdf, v))
}

// StorageKeyPdfContainsFold applies the ContainsFold predicate on the "storage_key_pdf" field.
func StorageKeyPdfContainsFold(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldContainsFold(FieldStorageKeyPdf, v))
}

// StorageKeyAuditEQ applies the EQ predicate on the "storage_key_audit" field.
func StorageKeyAuditEQ(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEQ(FieldStorageKeyAudit, v))
}

// StorageKeyAuditNEQ applies the NEQ predicate on the "storage_key_audit" field.
func StorageKeyAuditNEQ(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldNEQ(FieldStorageKeyAudit, v))
}

// StorageKeyAuditIn applies the In predicate on the "storage_key_audit" field.
func StorageKeyAuditIn(vs ...string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldIn(FieldStorageKeyAudit, vs...))
}

// StorageKeyAuditNotIn applies the NotIn predicate on the "storage_key_audit" field.
func StorageKeyAuditNotIn(vs ...string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldNotIn(FieldStorageKeyAudit, vs...))
}

// StorageKeyAuditGT applies the GT predicate on the "storage_key_audit" field.
func StorageKeyAuditGT(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldGT(FieldStorageKeyAudit, v))
}

// StorageKeyAuditGTE applies the GTE predicate on the "storage_key_audit" field.
func StorageKeyAuditGTE(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldGTE(FieldStorageKeyAudit, v))
}

// StorageKeyAuditLT applies the LT predicate on the "storage_key_audit" field.
func StorageKeyAuditLT(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldLT(FieldStorageKeyAudit, v))
}

// StorageKeyAuditLTE applies the LTE predicate on the "storage_key_audit" field.
func StorageKeyAuditLTE(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldLTE(FieldStorageKeyAudit, v))
}

// StorageKeyAuditContains applies the Contains predicate on the "storage_key_audit" field.
func StorageKeyAuditContains(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldContains(FieldStorageKeyAudit, v))
}

// StorageKeyAuditHasPrefix applies the HasPrefix predicate on the "storage_key_audit" field.
func StorageKeyAuditHasPrefix(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldHasPrefix(FieldStorageKeyAudit, v))
}

// StorageKeyAuditHasSuffix applies the HasSuffix predicate on the "storage_key_audit" field.
func StorageKeyAuditHasSuffix(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldHasSuffix(FieldStorageKeyAudit, v))
}

// StorageKeyAuditEqualFold applies the EqualFold predicate on the "storage_key_audit" field.
func StorageKeyAuditEqualFold(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEqualFold(FieldStorageKeyAudit, v))
}

// StorageKeyAuditContainsFold applies the ContainsFold predicate on the "storage_key_audit" field.
func StorageKeyAuditContainsFold(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldContainsFold(FieldStorageKeyAudit, v))
}

// Sha256FinalEQ applies the EQ predicate on the "sha256_final" field.
func Sha256FinalEQ(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEQ(FieldSha256Final, v))
}

// Sha256FinalNEQ applies the NEQ predicate on the "sha256_final" field.
func Sha256FinalNEQ(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldNEQ(FieldSha256Final, v))
}

// Sha256FinalIn applies the In predicate on the "sha256_final" field.
func Sha256FinalIn(vs ...string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldIn(FieldSha256Final, vs...))
}

// Sha256FinalNotIn applies the NotIn predicate on the "sha256_final" field.
func Sha256FinalNotIn(vs ...string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldNotIn(FieldSha256Final, vs...))
}

// Sha256FinalGT applies the GT predicate on the "sha256_final" field.
func Sha256FinalGT(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldGT(FieldSha256Final, v))
}

// Sha256FinalGTE applies the GTE predicate on the "sha256_final" field.
func Sha256FinalGTE(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldGTE(FieldSha256Final, v))
}

// Sha256FinalLT applies the LT predicate on the "sha256_final" field.
func Sha256FinalLT(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldLT(FieldSha256Final, v))
}

// Sha256FinalLTE applies the LTE predicate on the "sha256_final" field.
func Sha256FinalLTE(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldLTE(FieldSha256Final, v))
}

// Sha256FinalContains applies the Contains predicate on the "sha256_final" field.
func Sha256FinalContains(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldContains(FieldSha256Final, v))
}

// Sha256FinalHasPrefix applies the HasPrefix predicate on the "sha256_final" field.
func Sha256FinalHasPrefix(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldHasPrefix(FieldSha256Final, v))
}

// Sha256FinalHasSuffix applies the HasSuffix predicate on the "sha256_final" field.
func Sha256FinalHasSuffix(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldHasSuffix(FieldSha256Final, v))
}

// Sha256FinalEqualFold applies the EqualFold predicate on the "sha256_final" field.
func Sha256FinalEqualFold(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEqualFold(FieldSha256Final, v))
}

// Sha256FinalContainsFold applies the ContainsFold predicate on the "sha256_final" field.
func Sha256FinalContainsFold(v string) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldContainsFold(FieldSha256Final, v))
}

// SealedAtEQ applies the EQ predicate on the "sealed_at" field.
func SealedAtEQ(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldEQ(FieldSealedAt, v))
}

// SealedAtNEQ applies the NEQ predicate on the "sealed_at" field.
func SealedAtNEQ(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldNEQ(FieldSealedAt, v))
}

// SealedAtIn applies the In predicate on the "sealed_at" field.
func SealedAtIn(vs ...time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldIn(FieldSealedAt, vs...))
}

// SealedAtNotIn applies the NotIn predicate on the "sealed_at" field.
func SealedAtNotIn(vs ...time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldNotIn(FieldSealedAt, vs...))
}

// SealedAtGT applies the GT predicate on the "sealed_at" field.
func SealedAtGT(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldGT(FieldSealedAt, v))
}

// SealedAtGTE applies the GTE predicate on the "sealed_at" field.
func SealedAtGTE(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldGTE(FieldSealedAt, v))
}

// SealedAtLT applies the LT predicate on the "sealed_at" field.
func SealedAtLT(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldLT(FieldSealedAt, v))
}

// SealedAtLTE applies the LTE predicate on the "sealed_at" field.
func SealedAtLTE(v time.Time) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.FieldLTE(FieldSealedAt, v))
}

// HasEnvelope applies the HasEdge predicate on the "envelope" edge.
func HasEnvelope() predicate.FinalArtifact {
	return predicate.FinalArtifact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, EnvelopeTable, EnvelopeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEnvelopeWith applies the HasEdge predicate on the "envelope" edge with a given conditions (other predicates).
func HasEnvelopeWith(preds ...predicate.Envelope) predicate.FinalArtifact {
	return predicate.FinalArtifact(func(s *sql.Selector) {
		step := newEnvelopeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FinalArtifact) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FinalArtifact) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FinalArtifact) predicate.FinalArtifact {
	return predicate.FinalArtifact(sql.NotPredicates(p))
}
