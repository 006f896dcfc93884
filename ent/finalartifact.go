// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/finalartifact"
)

// FinalArtifact is the model entity for the FinalArtifact schema.
type FinalArtifact struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StorageKeyPdf holds the value of the "storage_key_pdf" field.
	StorageKeyPdf string `json:"storage_key_pdf,omitempty"`
	// StorageKeyAudit holds the value of the "storage_key_audit" field.
	StorageKeyAudit string `json:"storage_key_audit,omitempty"`
	// Sha256Final holds the value of the "sha256_final" field.
	Sha256Final string `json:"sha256_final,omitempty"`
	// SealedAt holds the value of the "sealed_at" field.
	SealedAt time.Time `json:"sealed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FinalArtifactQuery when eager-loading is set.
	Edges             FinalArtifactEdges `json:"edges"`
	envelope_artifact *string
	selectValues      sql.SelectValues
}

// FinalArtifactEdges holds the relations/edges for other nodes in the graph.
type FinalArtifactEdges struct {
	// Envelope holds the value of the envelope edge.
	Envelope *Envelope `json:"envelope,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EnvelopeOrErr returns the Envelope value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FinalArtifactEdges) EnvelopeOrErr() (*Envelope, error) {
	if e.Envelope != nil {
		return e.Envelope, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: envelope.Label}
	}
	return nil, &NotLoadedError{edge: "envelope"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FinalArtifact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case finalartifact.FieldID:
			values[i] = new(sql.NullInt64)
		case finalartifact.FieldStorageKeyPdf, finalartifact.FieldStorageKeyAudit, finalartifact.FieldSha256Final:
			values[i] = new(sql.NullString)
		case finalartifact.FieldCreatedAt, finalartifact.FieldSealedAt:
			values[i] = new(sql.NullTime)
		case finalartifact.ForeignKeys[0]: // envelope_artifact
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FinalArtifact fields.
func (_m *FinalArtifact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case finalartifact.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case finalartifact.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case finalartifact.FieldStorageKeyPdf:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_key_pdf", values[i])
			} else if value.Valid {
				_m.StorageKeyPdf = value.String
			}
		case finalartifact.FieldStorageKeyAudit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_key_audit", values[i])
			} else if value.Valid {
				_m.StorageKeyAudit = value.String
			}
		case finalartifact.FieldSha256Final:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sha256_final", values[i])
			} else if value.Valid {
				_m.Sha256Final = value.String
			}
		case finalartifact.FieldSealedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sealed_at", values[i])
			} else if value.Valid {
				_m.SealedAt = value.Time
			}
		case finalartifact.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field envelope_artifact", values[i])
			} else if value.Valid {
				_m.envelope_artifact = new(string)
				*_m.envelope_artifact = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FinalArtifact.
// This includes values selected through modifiers, order, etc.
func (_m *FinalArtifact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEnvelope queries the "envelope" edge of the FinalArtifact entity.
func (_m *FinalArtifact) QueryEnvelope() *EnvelopeQuery {
	return NewFinalArtifactClient(_m.config).QueryEnvelope(_m)
}

// Update returns a builder for updating this FinalArtifact.
// Note that you need to call FinalArtifact.Unwrap() before calling this method if this FinalArtifact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FinalArtifact) Update() *FinalArtifactUpdateOne {
	return NewFinalArtifactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FinalArtifact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FinalArtifact) Unwrap() *FinalArtifact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FinalArtifact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FinalArtifact) String() string {
	var builder strings.Builder
	builder.WriteString("FinalArtifact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("storage_key_pdf=")
	builder.WriteString(_m.StorageKeyPdf)
	builder.WriteString(", ")
	builder.WriteString("storage_key_audit=")
	builder.WriteString(_m.StorageKeyAudit)
	builder.WriteString(", ")
	builder.WriteString("sha256_final=")
	builder.WriteString(_m.Sha256Final)
	builder.WriteString(", ")
	builder.WriteString("sealed_at=")
	builder.WriteString(_m.SealedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FinalArtifacts is a parsable slice of FinalArtifact.
type FinalArtifacts []*FinalArtifact
