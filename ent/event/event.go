// Code generated by ent, DO NOT EDIT.

package event

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldMeta holds the string denoting the meta field in the database.
	FieldMeta = "meta"
	// FieldIP holds the string denoting the ip field in the database.
	FieldIP = "ip"
	// FieldUa holds the string denoting the ua field in the database.
	FieldUa = "ua"
	// FieldPrevHash holds the string denoting the prev_hash field in the database.
	FieldPrevHash = "prev_hash"
	// FieldHash holds the string denoting the hash field in the database.
	FieldHash = "hash"
	// EdgeEnvelope holds the string denoting the envelope edge name in mutations.
	EdgeEnvelope = "envelope"
	// Table holds the table name of the event in the database.
	Table = "events"
	// EnvelopeTable is the table that holds the envelope relation/edge.
	EnvelopeTable = "events"
	// EnvelopeInverseTable is the table name for the Envelope entity.
	// It exists in this package in order to avoid circular dependency with the "envelope" package.
	EnvelopeInverseTable = "envelopes"
	// EnvelopeColumn is the table column denoting the envelope relation/edge.
	EnvelopeColumn = "envelope_events"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldActor,
	FieldType,
	FieldMeta,
	FieldIP,
	FieldUa,
	FieldPrevHash,
	FieldHash,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "events"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"envelope_events",
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
	// ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	ActorValidator func(string) error
	// PrevHashValidator is a validator for the "prev_hash" field. It is called by the builders before save.
	PrevHashValidator func(string) error
	// HashValidator is a validator for the "hash" field. It is called by the builders before save.
	HashValidator func(string) error
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeCreated   Type = "created"
	TypeSent      Type = "sent"
	TypeOpened    Type = "opened"
	TypeFilled    Type = "filled"
	TypeConsented Type = "consented"
	TypeCompleted Type = "completed"
	TypeSealed    Type = "sealed"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeCreated, TypeSent, TypeOpened, TypeFilled, TypeConsented, TypeCompleted, TypeSealed:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByIP orders the results by the ip field.
func ByIP(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIP, opts...).ToFunc()
}

// ByUa orders the results by the ua field.
func ByUa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUa, opts...).ToFunc()
}

// ByPrevHash orders the results by the prev_hash field.
func ByPrevHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevHash, opts...).ToFunc()
}

// ByHash orders the results by the hash field.
func ByHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHash, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, EnvelopeTable, EnvelopeColumn),
	)
}
