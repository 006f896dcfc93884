// Code generated by ent, DO NOT EDIT.

package signerfieldvalue

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the signerfieldvalue type in the database.
	Label = "signer_field_value"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// EdgeSigner holds the string denoting the signer edge name in mutations.
	EdgeSigner = "signer"
	// EdgeField holds the string denoting the field edge name in mutations.
	EdgeField = "field"
	// Table holds the table name of the signerfieldvalue in the database.
	Table = "signer_field_values"
	// SignerTable is the table that holds the signer relation/edge.
	SignerTable = "signer_field_values"
	// SignerInverseTable is the table name for the Signer entity.
	// It exists in this package in order to avoid circular dependency with the "signer" package.
	SignerInverseTable = "signers"
	// SignerColumn is the table column denoting the signer relation/edge.
	SignerColumn = "signer_values"
	// FieldTable is the table that holds the field relation/edge.
	FieldTable = "signer_field_values"
	// FieldInverseTable is the table name for the EnvelopeField entity.
	// It exists in this package in order to avoid circular dependency with the "envelopefield" package.
	FieldInverseTable = "envelope_fields"
	// FieldColumn is the table column denoting the field relation/edge.
	FieldColumn = "envelope_field_values"
)

// Columns holds all SQL columns for signerfieldvalue fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPayload,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "signer_field_values"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"envelope_field_values",
	"signer_values",
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
)

// OrderOption defines the ordering options for the SignerFieldValue queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySignerField orders the results by signer field.
func BySignerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSignerStep(), sql.OrderByField(field, opts...))
	}
}

// ByFieldField orders the results by field field.
func ByFieldField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFieldStep(), sql.OrderByField(field, opts...))
	}
}
func newSignerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SignerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SignerTable, SignerColumn),
	)
}
func newFieldStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FieldInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FieldTable, FieldColumn),
	)
}
