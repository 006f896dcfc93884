// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/signer"
)

// Signer is the model entity for the Signer schema.
type Signer struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// RoutingOrder holds the value of the "routing_order" field.
	RoutingOrder int `json:"routing_order,omitempty"`
	// Status holds the value of the "status" field.
	Status signer.Status `json:"status,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// OpenedAt holds the value of the "opened_at" field.
	OpenedAt *time.Time `json:"opened_at,omitempty"`
	// IPFirst holds the value of the "ip_first" field.
	IPFirst string `json:"ip_first,omitempty"`
	// UaFirst holds the value of the "ua_first" field.
	UaFirst string `json:"ua_first,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SignerQuery when eager-loading is set.
	Edges            SignerEdges `json:"edges"`
	envelope_signers *string
	selectValues     sql.SelectValues
}

// SignerEdges holds the relations/edges for other nodes in the graph.
type SignerEdges struct {
	// Envelope holds the value of the envelope edge.
	Envelope *Envelope `json:"envelope,omitempty"`
	// Fields holds the value of the fields edge.
	Fields []*EnvelopeField `json:"fields,omitempty"`
	// Values holds the value of the values edge.
	Values []*SignerFieldValue `json:"values,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// EnvelopeOrErr returns the Envelope value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SignerEdges) EnvelopeOrErr() (*Envelope, error) {
	if e.Envelope != nil {
		return e.Envelope, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: envelope.Label}
	}
	return nil, &NotLoadedError{edge: "envelope"}
}

// FieldsOrErr returns the Fields value or an error if the edge
// was not loaded in eager-loading.
func (e SignerEdges) FieldsOrErr() ([]*EnvelopeField, error) {
	if e.loadedTypes[1] {
		return e.Fields, nil
	}
	return nil, &NotLoadedError{edge: "fields"}
}

// ValuesOrErr returns the Values value or an error if the edge
// was not loaded in eager-loading.
func (e SignerEdges) ValuesOrErr() ([]*SignerFieldValue, error) {
	if e.loadedTypes[2] {
		return e.Values, nil
	}
	return nil, &NotLoadedError{edge: "values"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Signer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case signer.FieldRoutingOrder:
			values[i] = new(sql.NullInt64)
		case signer.FieldID, signer.FieldName, signer.FieldEmail, signer.FieldRole, signer.FieldStatus, signer.FieldIPFirst, signer.FieldUaFirst:
			values[i] = new(sql.NullString)
		case signer.FieldCreatedAt, signer.FieldUpdatedAt, signer.FieldCompletedAt, signer.FieldOpenedAt:
			values[i] = new(sql.NullTime)
		case signer.ForeignKeys[0]: // envelope_signers
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Signer fields.
func (_m *Signer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case signer.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case signer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case signer.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case signer.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case signer.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case signer.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case signer.FieldRoutingOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field routing_order", values[i])
			} else if value.Valid {
				_m.RoutingOrder = int(value.Int64)
			}
		case signer.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = signer.Status(value.String)
			}
		case signer.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case signer.FieldOpenedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field opened_at", values[i])
			} else if value.Valid {
				_m.OpenedAt = new(time.Time)
				*_m.OpenedAt = value.Time
			}
		case signer.FieldIPFirst:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_first", values[i])
			} else if value.Valid {
				_m.IPFirst = value.String
			}
		case signer.FieldUaFirst:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ua_first", values[i])
			} else if value.Valid {
				_m.UaFirst = value.String
			}
		case signer.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field envelope_signers", values[i])
			} else if value.Valid {
				_m.envelope_signers = new(string)
				*_m.envelope_signers = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Signer.
// This includes values selected through modifiers, order, etc.
func (_m *Signer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEnvelope queries the "envelope" edge of the Signer entity.
func (_m *Signer) QueryEnvelope() *EnvelopeQuery {
	return NewSignerClient(_m.config).QueryEnvelope(_m)
}

// QueryFields queries the "fields" edge of the Signer entity.
func (_m *Signer) QueryFields() *EnvelopeFieldQuery {
	return NewSignerClient(_m.config).QueryFields(_m)
}

// QueryValues queries the "values" edge of the Signer entity.
func (_m *Signer) QueryValues() *SignerFieldValueQuery {
	return NewSignerClient(_m.config).QueryValues(_m)
}

// Update returns a builder for updating this Signer.
// Note that you need to call Signer.Unwrap() before calling this method if this Signer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Signer) Update() *SignerUpdateOne {
	return NewSignerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Signer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Signer) Unwrap() *Signer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Signer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Signer) String() string {
	var builder strings.Builder
	builder.WriteString("Signer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("routing_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoutingOrder))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.OpenedAt; v != nil {
		builder.WriteString("opened_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("ip_first=")
	builder.WriteString(_m.IPFirst)
	builder.WriteString(", ")
	builder.WriteString("ua_first=")
	builder.WriteString(_m.UaFirst)
	builder.WriteByte(')')
	return builder.String()
}

// Signers is a parsable slice of Signer.
type Signers []*Signer
