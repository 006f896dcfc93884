// Code generated by ent, DO NOT EDIT.

package envelopefield

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the envelopefield type in the database.
	Label = "envelope_field"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPage holds the string denoting the page field in the database.
	FieldPage = "page"
	// FieldX holds the string denoting the x field in the database.
	FieldX = "x"
	// FieldY holds the string denoting the y field in the database.
	FieldY = "y"
	// FieldW holds the string denoting the w field in the database.
	FieldW = "w"
	// FieldH holds the string denoting the h field in the database.
	FieldH = "h"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldRequired holds the string denoting the required field in the database.
	FieldRequired = "required"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldFontFamily holds the string denoting the font_family field in the database.
	FieldFontFamily = "font_family"
	// EdgeEnvelope holds the string denoting the envelope edge name in mutations.
	EdgeEnvelope = "envelope"
	// EdgeSigner holds the string denoting the signer edge name in mutations.
	EdgeSigner = "signer"
	// EdgeValues holds the string denoting the values edge name in mutations.
	EdgeValues = "values"
	// Table holds the table name of the envelopefield in the database.
	Table = "envelope_fields"
	// EnvelopeTable is the table that holds the envelope relation/edge.
	EnvelopeTable = "envelope_fields"
	// EnvelopeInverseTable is the table name for the Envelope entity.
	// It exists in this package in order to avoid circular dependency with the "envelope" package.
	EnvelopeInverseTable = "envelopes"
	// EnvelopeColumn is the table column denoting the envelope relation/edge.
	EnvelopeColumn = "envelope_fields"
	// SignerTable is the table that holds the signer relation/edge.
	SignerTable = "envelope_fields"
	// SignerInverseTable is the table name for the Signer entity.
	// It exists in this package in order to avoid circular dependency with the "signer" package.
	SignerInverseTable = "signers"
	// SignerColumn is the table column denoting the signer relation/edge.
	SignerColumn = "signer_fields"
	// ValuesTable is the table that holds the values relation/edge.
	ValuesTable = "signer_field_values"
	// ValuesInverseTable is the table name for the SignerFieldValue entity.
	// It exists in this package in order to avoid circular dependency with the "signerfieldvalue" package.
	ValuesInverseTable = "signer_field_values"
	// ValuesColumn is the table column denoting the values relation/edge.
	ValuesColumn = "envelope_field_values"
)

// Columns holds all SQL columns for envelopefield fields.
var Columns = []string{
	FieldID,
	FieldPage,
	FieldX,
	FieldY,
	FieldW,
	FieldH,
	FieldType,
	FieldRequired,
	FieldRole,
	FieldName,
	FieldFontFamily,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "envelope_fields"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"envelope_fields",
	"signer_fields",
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
	// DefaultPage holds the default value on creation for the "page" field.
	DefaultPage int
	// DefaultRequired holds the default value on creation for the "required" field.
	DefaultRequired bool
	// DefaultRole holds the default value on creation for the "role" field.
	DefaultRole string
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeSignature Type = "signature"
	TypeInitials  Type = "initials"
	TypeText      Type = "text"
	TypeDate      Type = "date"
	TypeCheckbox  Type = "checkbox"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeSignature, TypeInitials, TypeText, TypeDate, TypeCheckbox:
		return nil
	default:
		return fmt.Errorf("envelopefield: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the EnvelopeField queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPage orders the results by the page field.
func ByPage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPage, opts...).ToFunc()
}

// ByX orders the results by the x field.
func ByX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldX, opts...).ToFunc()
}

// ByY orders the results by the y field.
func ByY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldY, opts...).ToFunc()
}

// ByW orders the results by the w field.
func ByW(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldW, opts...).ToFunc()
}

// ByH orders the results by the h field.
func ByH(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldH, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByRequired orders the results by the required field.
func ByRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequired, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByFontFamily orders the results by the font_family field.
func ByFontFamily(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFontFamily, opts...).ToFunc()
}

// ByEnvelopeField orders the results by envelope field.
func ByEnvelopeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEnvelopeStep(), sql.OrderByField(field, opts...))
	}
}

// BySignerField orders the results by signer field.
func BySignerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSignerStep(), sql.OrderByField(field, opts...))
	}
}

// ByValuesCount orders the results by values count.
func ByValuesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newValuesStep(), opts...)
	}
}

// ByValues orders the results by values terms.
func ByValues(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newValuesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEnvelopeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EnvelopeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EnvelopeTable, EnvelopeColumn),
	)
}
func newSignerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SignerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SignerTable, SignerColumn),
	)
}
func newValuesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ValuesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ValuesTable, ValuesColumn),
	)
}
