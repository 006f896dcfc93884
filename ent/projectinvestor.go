// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sealgate.io/sealgate/ent/project"
	"sealgate.io/sealgate/ent/projectinvestor"
)

// ProjectInvestor is the model entity for the ProjectInvestor schema.
type ProjectInvestor struct {
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
	// UnitsInvested holds the value of the "units_invested" field.
	UnitsInvested float64 `json:"units_invested,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectInvestorQuery when eager-loading is set.
	Edges             ProjectInvestorEdges `json:"edges"`
	project_investors *string
	selectValues      sql.SelectValues
}

// ProjectInvestorEdges holds the relations/edges for other nodes in the graph.
type ProjectInvestorEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectInvestorEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProjectInvestor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case projectinvestor.FieldMetadata:
			values[i] = new([]byte)
		case projectinvestor.FieldUnitsInvested:
			values[i] = new(sql.NullFloat64)
		case projectinvestor.FieldRoutingOrder:
			values[i] = new(sql.NullInt64)
		case projectinvestor.FieldID, projectinvestor.FieldName, projectinvestor.FieldEmail, projectinvestor.FieldRole:
			values[i] = new(sql.NullString)
		case projectinvestor.FieldCreatedAt, projectinvestor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case projectinvestor.ForeignKeys[0]: // project_investors
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProjectInvestor fields.
func (_m *ProjectInvestor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case projectinvestor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case projectinvestor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case projectinvestor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case projectinvestor.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case projectinvestor.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case projectinvestor.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case projectinvestor.FieldRoutingOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field routing_order", values[i])
			} else if value.Valid {
				_m.RoutingOrder = int(value.Int64)
			}
		case projectinvestor.FieldUnitsInvested:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field units_invested", values[i])
			} else if value.Valid {
				_m.UnitsInvested = value.Float64
			}
		case projectinvestor.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case projectinvestor.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_investors", values[i])
			} else if value.Valid {
				_m.project_investors = new(string)
				*_m.project_investors = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProjectInvestor.
// This includes values selected through modifiers, order, etc.
func (_m *ProjectInvestor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the ProjectInvestor entity.
func (_m *ProjectInvestor) QueryProject() *ProjectQuery {
	return NewProjectInvestorClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this ProjectInvestor.
// Note that you need to call ProjectInvestor.Unwrap() before calling this method if this ProjectInvestor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProjectInvestor) Update() *ProjectInvestorUpdateOne {
	return NewProjectInvestorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProjectInvestor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProjectInvestor) Unwrap() *ProjectInvestor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProjectInvestor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProjectInvestor) String() string {
	var builder strings.Builder
	builder.WriteString("ProjectInvestor(")
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
	builder.WriteString("units_invested=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitsInvested))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// ProjectInvestors is a parsable slice of ProjectInvestor.
type ProjectInvestors []*ProjectInvestor
