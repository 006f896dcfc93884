// Code generated by ent, DO NOT EDIT.

package finalartifact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the finalartifact type in the database.
	Label = "final_artifact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStorageKeyPdf holds the string denoting the storage_key_pdf field in the database.
	FieldStorageKeyPdf = "storage_key_pdf"
	// FieldStorageKeyAudit holds the string denoting the storage_key_audit field in the database.
	FieldStorageKeyAudit = "storage_key_audit"
	// FieldSha256Final holds the string denoting the sha256_final field in the database.
	FieldSha256Final = "sha256_final"
	// FieldSealedAt holds the string denoting the sealed_at field in the database.
	FieldSealedAt = "sealed_at"
	// EdgeEnvelope holds the string denoting the envelope edge name in mutations.
	EdgeEnvelope = "envelope"
	// Table holds the table name of the finalartifact in the database.
	Table = "final_artifacts"
	// EnvelopeTable is the table that holds the envelope relation/edge.
	EnvelopeTable = "final_artifacts"
	// EnvelopeInverseTable is the table name for the Envelope entity.
	// It exists in this package in order to avoid circular dependency with the "envelope" package.
	EnvelopeInverseTable = "envelopes"
	// EnvelopeColumn is the table column denoting the envelope relation/edge.
	EnvelopeColumn = "envelope_artifact"
)

// Columns holds all SQL columns for finalartifact fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldStorageKeyPdf,
	FieldStorageKeyAudit,
	FieldSha256Final,
	FieldSealedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "final_artifacts"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"envelope_artifact",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// StorageKeyPdfValidator is a validator for the "storage_key_pdf" field. It is called by the builders before save.
	StorageKeyPdfValidator func(string) error
	// StorageKeyAuditValidator is a validator for the "storage_key_audit" field. It is called by the builders before save.
	StorageKeyAuditValidator func(string) error
	// Sha256FinalValidator is a validator for the "sha256_final" field. It is called by the builders before save.
	Sha256FinalValidator func(string) error
)

// OrderOption defines the ordering options for the FinalArtifact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStorageKeyPdf orders the results by the storage_key_pdf field.
func ByStorageKeyPdf(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageKeyPdf, opts...).ToFunc()
}

// ByStorageKeyAudit orders the results by the storage_key_audit field.
func ByStorageKeyAudit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageKeyAudit, opts...).ToFunc()
}

// BySha256Final orders the results by the sha256_final field.
func BySha256Final(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSha256Final, opts...).ToFunc()
}

// BySealedAt orders the results by the sealed_at field.
func BySealedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSealedAt, opts...).ToFunc()
}

// ByEnvelopeField orders the results by envelope field.
func ByEnvelopeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEnvelopeStep(), sql.OrderByField(field, opts...))
	}
}
func newEnvelopeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EnvelopeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, EnvelopeTable, EnvelopeColumn),
	)
}
