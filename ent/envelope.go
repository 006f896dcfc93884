// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sealgate.io/sealgate/ent/document"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/finalartifact"
	"sealgate.io/sealgate/ent/project"
)

// Envelope is the model entity for the Envelope schema.
type Envelope struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Status holds the value of the "status" field.
	Status envelope.Status `json:"status,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// RequesterName holds the value of the "requester_name" field.
	RequesterName string `json:"requester_name,omitempty"`
	// RequesterEmail holds the value of the "requester_email" field.
	RequesterEmail string `json:"requester_email,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EnvelopeQuery when eager-loading is set.
	Edges              EnvelopeEdges `json:"edges"`
	document_envelopes *string
	project_envelopes  *string
	selectValues       sql.SelectValues
}

// EnvelopeEdges holds the relations/edges for other nodes in the graph.
type EnvelopeEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// Signers holds the value of the signers edge.
	Signers []*Signer `json:"signers,omitempty"`
	// Fields holds the value of the fields edge.
	Fields []*EnvelopeField `json:"fields,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// Artifact holds the value of the artifact edge.
	Artifact *FinalArtifact `json:"artifact,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EnvelopeEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EnvelopeEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// SignersOrErr returns the Signers value or an error if the edge
// was not loaded in eager-loading.
func (e EnvelopeEdges) SignersOrErr() ([]*Signer, error) {
	if e.loadedTypes[2] {
		return e.Signers, nil
	}
	return nil, &NotLoadedError{edge: "signers"}
}

// FieldsOrErr returns the Fields value or an error if the edge
// was not loaded in eager-loading.
func (e EnvelopeEdges) FieldsOrErr() ([]*EnvelopeField, error) {
	if e.loadedTypes[3] {
		return e.Fields, nil
	}
	return nil, &NotLoadedError{edge: "fields"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e EnvelopeEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[4] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// ArtifactOrErr returns the Artifact value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EnvelopeEdges) ArtifactOrErr() (*FinalArtifact, error) {
	if e.Artifact != nil {
		return e.Artifact, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: finalartifact.Label}
	}
	return nil, &NotLoadedError{edge: "artifact"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Envelope) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case envelope.FieldID, envelope.FieldSubject, envelope.FieldMessage, envelope.FieldStatus, envelope.FieldRequesterName, envelope.FieldRequesterEmail:
			values[i] = new(sql.NullString)
		case envelope.FieldCreatedAt, envelope.FieldUpdatedAt, envelope.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		case envelope.ForeignKeys[0]: // document_envelopes
			values[i] = new(sql.NullString)
		case envelope.ForeignKeys[1]: // project_envelopes
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Envelope fields.
func (_m *Envelope) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case envelope.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case envelope.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case envelope.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case envelope.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case envelope.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case envelope.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = envelope.Status(value.String)
			}
		case envelope.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case envelope.FieldRequesterName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requester_name", values[i])
			} else if value.Valid {
				_m.RequesterName = value.String
			}
		case envelope.FieldRequesterEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requester_email", values[i])
			} else if value.Valid {
				_m.RequesterEmail = value.String
			}
		case envelope.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_envelopes", values[i])
			} else if value.Valid {
				_m.document_envelopes = new(string)
				*_m.document_envelopes = value.String
			}
		case envelope.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_envelopes", values[i])
			} else if value.Valid {
				_m.project_envelopes = new(string)
				*_m.project_envelopes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Envelope.
// This includes values selected through modifiers, order, etc.
func (_m *Envelope) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Envelope entity.
func (_m *Envelope) QueryProject() *ProjectQuery {
	return NewEnvelopeClient(_m.config).QueryProject(_m)
}

// QueryDocument queries the "document" edge of the Envelope entity.
func (_m *Envelope) QueryDocument() *DocumentQuery {
	return NewEnvelopeClient(_m.config).QueryDocument(_m)
}

// QuerySigners queries the "signers" edge of the Envelope entity.
func (_m *Envelope) QuerySigners() *SignerQuery {
	return NewEnvelopeClient(_m.config).QuerySigners(_m)
}

// QueryFields queries the "fields" edge of the Envelope entity.
func (_m *Envelope) QueryFields() *EnvelopeFieldQuery {
	return NewEnvelopeClient(_m.config).QueryFields(_m)
}

// QueryEvents queries the "events" edge of the Envelope entity.
func (_m *Envelope) QueryEvents() *EventQuery {
	return NewEnvelopeClient(_m.config).QueryEvents(_m)
}

// QueryArtifact queries the "artifact" edge of the Envelope entity.
func (_m *Envelope) QueryArtifact() *FinalArtifactQuery {
	return NewEnvelopeClient(_m.config).QueryArtifact(_m)
}

// Update returns a builder for updating this Envelope.
// Note that you need to call Envelope.Unwrap() before calling this method if this Envelope
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Envelope) Update() *EnvelopeUpdateOne {
	return NewEnvelopeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Envelope entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Envelope) Unwrap() *Envelope {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Envelope is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Envelope) String() string {
	var builder strings.Builder
	builder.WriteString("Envelope(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("requester_name=")
	builder.WriteString(_m.RequesterName)
	builder.WriteString(", ")
	builder.WriteString("requester_email=")
	builder.WriteString(_m.RequesterEmail)
	builder.WriteByte(')')
	return builder.String()
}

// Envelopes is a parsable slice of Envelope.
type Envelopes []*Envelope
