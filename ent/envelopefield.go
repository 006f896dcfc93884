// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/signer"
)

// EnvelopeField is the model entity for the EnvelopeField schema.
type EnvelopeField struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Page holds the value of the "page" field.
	Page int `json:"page,omitempty"`
	// X holds the value of the "x" field.
	X float64 `json:"x,omitempty"`
	// Y holds the value of the "y" field.
	Y float64 `json:"y,omitempty"`
	// W holds the value of the "w" field.
	W float64 `json:"w,omitempty"`
	// H holds the value of the "h" field.
	H float64 `json:"h,omitempty"`
	// Type holds the value of the "type" field.
	Type envelopefield.Type `json:"type,omitempty"`
	// Required holds the value of the "required" field.
	Required bool `json:"required,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// FontFamily holds the value of the "font_family" field.
	FontFamily string `json:"font_family,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EnvelopeFieldQuery when eager-loading is set.
	Edges           EnvelopeFieldEdges `json:"edges"`
	envelope_fields *string
	signer_fields   *string
	selectValues    sql.SelectValues
}

// EnvelopeFieldEdges holds the relations/edges for other nodes in the graph.
type EnvelopeFieldEdges struct {
	// Envelope holds the value of the envelope edge.
	Envelope *Envelope `json:"envelope,omitempty"`
	// Signer holds the value of the signer edge.
	Signer *Signer `json:"signer,omitempty"`
	// Values holds the value of the values edge.
	Values []*SignerFieldValue `json:"values,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// EnvelopeOrErr returns the Envelope value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EnvelopeFieldEdges) EnvelopeOrErr() (*Envelope, error) {
	if e.Envelope != nil {
		return e.Envelope, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: envelope.Label}
	}
	return nil, &NotLoadedError{edge: "envelope"}
}

// SignerOrErr returns the Signer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EnvelopeFieldEdges) SignerOrErr() (*Signer, error) {
	if e.Signer != nil {
		return e.Signer, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: signer.Label}
	}
	return nil, &NotLoadedError{edge: "signer"}
}

// ValuesOrErr returns the Values value or an error if the edge
// was not loaded in eager-loading.
func (e EnvelopeFieldEdges) ValuesOrErr() ([]*SignerFieldValue, error) {
	if e.loadedTypes[2] {
		return e.Values, nil
	}
	return nil, &NotLoadedError{edge: "values"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EnvelopeField) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case envelopefield.FieldRequired:
			values[i] = new(sql.NullBool)
		case envelopefield.FieldX, envelopefield.FieldY, envelopefield.FieldW, envelopefield.FieldH:
			values[i] = new(sql.NullFloat64)
		case envelopefield.FieldPage:
			values[i] = new(sql.NullInt64)
		case envelopefield.FieldID, envelopefield.FieldType, envelopefield.FieldRole, envelopefield.FieldName, envelopefield.FieldFontFamily:
			values[i] = new(sql.NullString)
		case envelopefield.ForeignKeys[0]: // envelope_fields
			values[i] = new(sql.NullString)
		case envelopefield.ForeignKeys[1]: // signer_fields
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EnvelopeField fields.
func (_m *EnvelopeField) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case envelopefield.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case envelopefield.FieldPage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page", values[i])
			} else if value.Valid {
				_m.Page = int(value.Int64)
			}
		case envelopefield.FieldX:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field x", values[i])
			} else if value.Valid {
				_m.X = value.Float64
			}
		case envelopefield.FieldY:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field y", values[i])
			} else if value.Valid {
				_m.Y = value.Float64
			}
		case envelopefield.FieldW:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field w", values[i])
			} else if value.Valid {
				_m.W = value.Float64
			}
		case envelopefield.FieldH:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field h", values[i])
			} else if value.Valid {
				_m.H = value.Float64
			}
		case envelopefield.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = envelopefield.Type(value.String)
			}
		case envelopefield.FieldRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field required", values[i])
			} else if value.Valid {
				_m.Required = value.Bool
			}
		case envelopefield.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case envelopefield.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case envelopefield.FieldFontFamily:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field font_family", values[i])
			} else if value.Valid {
				_m.FontFamily = value.String
			}
		case envelopefield.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field envelope_fields", values[i])
			} else if value.Valid {
				_m.envelope_fields = new(string)
				*_m.envelope_fields = value.String
			}
		case envelopefield.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signer_fields", values[i])
			} else if value.Valid {
				_m.signer_fields = new(string)
				*_m.signer_fields = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EnvelopeField.
// This includes values selected through modifiers, order, etc.
func (_m *EnvelopeField) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEnvelope queries the "envelope" edge of the EnvelopeField entity.
func (_m *EnvelopeField) QueryEnvelope() *EnvelopeQuery {
	return NewEnvelopeFieldClient(_m.config).QueryEnvelope(_m)
}

// QuerySigner queries the "signer" edge of the EnvelopeField entity.
func (_m *EnvelopeField) QuerySigner() *SignerQuery {
	return NewEnvelopeFieldClient(_m.config).QuerySigner(_m)
}

// QueryValues queries the "values" edge of the EnvelopeField entity.
func (_m *EnvelopeField) QueryValues() *SignerFieldValueQuery {
	return NewEnvelopeFieldClient(_m.config).QueryValues(_m)
}

// Update returns a builder for updating this EnvelopeField.
// Note that you need to call EnvelopeField.Unwrap() before calling this method if this EnvelopeField
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EnvelopeField) Update() *EnvelopeFieldUpdateOne {
	return NewEnvelopeFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EnvelopeField entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EnvelopeField) Unwrap() *EnvelopeField {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EnvelopeField is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EnvelopeField) String() string {
	var builder strings.Builder
	builder.WriteString("EnvelopeField(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("page=")
	builder.WriteString(fmt.Sprintf("%v", _m.Page))
	builder.WriteString(", ")
	builder.WriteString("x=")
	builder.WriteString(fmt.Sprintf("%v", _m.X))
	builder.WriteString(", ")
	builder.WriteString("y=")
	builder.WriteString(fmt.Sprintf("%v", _m.Y))
	builder.WriteString(", ")
	builder.WriteString("w=")
	builder.WriteString(fmt.Sprintf("%v", _m.W))
	builder.WriteString(", ")
	builder.WriteString("h=")
	builder.WriteString(fmt.Sprintf("%v", _m.H))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("required=")
	builder.WriteString(fmt.Sprintf("%v", _m.Required))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("font_family=")
	builder.WriteString(_m.FontFamily)
	builder.WriteByte(')')
	return builder.String()
}

// EnvelopeFields is a parsable slice of EnvelopeField.
type EnvelopeFields []*EnvelopeField
