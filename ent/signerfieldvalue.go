// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/ent/signerfieldvalue"
)

// SignerFieldValue is the model entity for the SignerFieldValue schema.
type SignerFieldValue struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SignerFieldValueQuery when eager-loading is set.
	Edges                 SignerFieldValueEdges `json:"edges"`
	envelope_field_values *string
	signer_values         *string
	selectValues          sql.SelectValues
}

// SignerFieldValueEdges holds the relations/edges for other nodes in the graph.
type SignerFieldValueEdges struct {
	// Signer holds the value of the signer edge.
	Signer *Signer `json:"signer,omitempty"`
	// Field holds the value of the field edge.
	Field *EnvelopeField `json:"field,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SignerOrErr returns the Signer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SignerFieldValueEdges) SignerOrErr() (*Signer, error) {
	if e.Signer != nil {
		return e.Signer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: signer.Label}
	}
	return nil, &NotLoadedError{edge: "signer"}
}

// FieldOrErr returns the Field value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SignerFieldValueEdges) FieldOrErr() (*EnvelopeField, error) {
	if e.Field != nil {
		return e.Field, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: envelopefield.Label}
	}
	return nil, &NotLoadedError{edge: "field"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SignerFieldValue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case signerfieldvalue.FieldPayload:
			values[i] = new([]byte)
		case signerfieldvalue.FieldID:
			values[i] = new(sql.NullInt64)
		case signerfieldvalue.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case signerfieldvalue.ForeignKeys[0]: // envelope_field_values
			values[i] = new(sql.NullString)
		case signerfieldvalue.ForeignKeys[1]: // signer_values
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SignerFieldValue fields.
func (_m *SignerFieldValue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case signerfieldvalue.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case signerfieldvalue.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case signerfieldvalue.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case signerfieldvalue.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field envelope_field_values", values[i])
			} else if value.Valid {
				_m.envelope_field_values = new(string)
				*_m.envelope_field_values = value.String
			}
		case signerfieldvalue.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signer_values", values[i])
			} else if value.Valid {
				_m.signer_values = new(string)
				*_m.signer_values = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SignerFieldValue.
// This includes values selected through modifiers, order, etc.
func (_m *SignerFieldValue) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySigner queries the "signer" edge of the SignerFieldValue entity.
func (_m *SignerFieldValue) QuerySigner() *SignerQuery {
	return NewSignerFieldValueClient(_m.config).QuerySigner(_m)
}

// QueryField queries the "field" edge of the SignerFieldValue entity.
func (_m *SignerFieldValue) QueryField() *EnvelopeFieldQuery {
	return NewSignerFieldValueClient(_m.config).QueryField(_m)
}

// Update returns a builder for updating this SignerFieldValue.
// Note that you need to call SignerFieldValue.Unwrap() before calling this method if this SignerFieldValue
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SignerFieldValue) Update() *SignerFieldValueUpdateOne {
	return NewSignerFieldValueClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SignerFieldValue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SignerFieldValue) Unwrap() *SignerFieldValue {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SignerFieldValue is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SignerFieldValue) String() string {
	var builder strings.Builder
	builder.WriteString("SignerFieldValue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteByte(')')
	return builder.String()
}

// SignerFieldValues is a parsable slice of SignerFieldValue.
type SignerFieldValues []*SignerFieldValue
