// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/predicate"
	"sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/ent/signerfieldvalue"
)

// SignerUpdate is the builder for updating Signer entities.
type SignerUpdate struct {
	config
	hooks    []Hook
	mutation *SignerMutation
}

// Where appends a list predicates to the SignerUpdate builder.
func (_u *SignerUpdate) Where(ps ...predicate.Signer) *SignerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SignerUpdate) SetUpdatedAt(v time.Time) *SignerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SignerUpdate) SetName(v string) *SignerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SignerUpdate) SetNillableName(v *string) *SignerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *SignerUpdate) SetEmail(v string) *SignerUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SignerUpdate) SetNillableEmail(v *string) *SignerUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *SignerUpdate) SetRole(v string) *SignerUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *SignerUpdate) SetNillableRole(v *string) *SignerUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetRoutingOrder sets the "routing_order" field.
func (_u *SignerUpdate) SetRoutingOrder(v int) *SignerUpdate {
	_u.mutation.ResetRoutingOrder()
	_u.mutation.SetRoutingOrder(v)
	return _u
}

// SetNillableRoutingOrder sets the "routing_order" field if the given value is not nil.
func (_u *SignerUpdate) SetNillableRoutingOrder(v *int) *SignerUpdate {
	if v != nil {
		_u.SetRoutingOrder(*v)
	}
	return _u
}

// AddRoutingOrder adds value to the "routing_order" field.
func (_u *SignerUpdate) AddRoutingOrder(v int) *SignerUpdate {
	_u.mutation.AddRoutingOrder(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SignerUpdate) SetStatus(v signer.Status) *SignerUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SignerUpdate) SetNillableStatus(v *signer.Status) *SignerUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SignerUpdate) SetCompletedAt(v time.Time) *SignerUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SignerUpdate) SetNillableCompletedAt(v *time.Time) *SignerUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SignerUpdate) ClearCompletedAt() *SignerUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *SignerUpdate) SetOpenedAt(v time.Time) *SignerUpdate {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *SignerUpdate) SetNillableOpenedAt(v *time.Time) *SignerUpdate {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *SignerUpdate) ClearOpenedAt() *SignerUpdate {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetIPFirst sets the "ip_first" field.
func (_u *SignerUpdate) SetIPFirst(v string) *SignerUpdate {
	_u.mutation.SetIPFirst(v)
	return _u
}

// SetNillableIPFirst sets the "ip_first" field if the given value is not nil.
func (_u *SignerUpdate) SetNillableIPFirst(v *string) *SignerUpdate {
	if v != nil {
		_u.SetIPFirst(*v)
	}
	return _u
}

// ClearIPFirst clears the value of the "ip_first" field.
func (_u *SignerUpdate) ClearIPFirst() *SignerUpdate {
	_u.mutation.ClearIPFirst()
	return _u
}

// SetUaFirst sets the "ua_first" field.
func (_u *SignerUpdate) SetUaFirst(v string) *SignerUpdate {
	_u.mutation.SetUaFirst(v)
	return _u
}

// SetNillableUaFirst sets the "ua_first" field if the given value is not nil.
func (_u *SignerUpdate) SetNillableUaFirst(v *string) *SignerUpdate {
	if v != nil {
		_u.SetUaFirst(*v)
	}
	return _u
}

// ClearUaFirst clears the value of the "ua_first" field.
func (_u *SignerUpdate) ClearUaFirst() *SignerUpdate {
	_u.mutation.ClearUaFirst()
	return _u
}

// SetEnvelopeID sets the "envelope" edge to the Envelope entity by ID.
func (_u *SignerUpdate) SetEnvelopeID(id string) *SignerUpdate {
	_u.mutation.SetEnvelopeID(id)
	return _u
}

// SetEnvelope sets the "envelope" edge to the Envelope entity.
func (_u *SignerUpdate) SetEnvelope(v *Envelope) *SignerUpdate {
	return _u.SetEnvelopeID(v.ID)
}

// AddFieldIDs adds the "fields" edge to the EnvelopeField entity by IDs.
func (_u *SignerUpdate) AddFieldIDs(ids ...string) *SignerUpdate {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the EnvelopeField entity.
func (_u *SignerUpdate) AddFields(v ...*EnvelopeField) *SignerUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// AddValueIDs adds the "values" edge to the SignerFieldValue entity by IDs.
func (_u *SignerUpdate) AddValueIDs(ids ...int) *SignerUpdate {
	_u.mutation.AddValueIDs(ids...)
	return _u
}

// AddValues adds the "values" edges to the SignerFieldValue entity.
func (_u *SignerUpdate) AddValues(v ...*SignerFieldValue) *SignerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValueIDs(ids...)
}

// Mutation returns the SignerMutation object of the builder.
func (_u *SignerUpdate) Mutation() *SignerMutation {
	return _u.mutation
}

// ClearEnvelope clears the "envelope" edge to the Envelope entity.
func (_u *SignerUpdate) ClearEnvelope() *SignerUpdate {
	_u.mutation.ClearEnvelope()
	return _u
}

// ClearFields clears all "fields" edges to the EnvelopeField entity.
func (_u *SignerUpdate) ClearFields() *SignerUpdate {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to EnvelopeField entities by IDs.
func (_u *SignerUpdate) RemoveFieldIDs(ids ...string) *SignerUpdate {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to EnvelopeField entities.
func (_u *SignerUpdate) RemoveFields(v ...*EnvelopeField) *SignerUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// ClearValues clears all "values" edges to the SignerFieldValue entity.
func (_u *SignerUpdate) ClearValues() *SignerUpdate {
	_u.mutation.ClearValues()
	return _u
}

// RemoveValueIDs removes the "values" edge to SignerFieldValue entities by IDs.
func (_u *SignerUpdate) RemoveValueIDs(ids ...int) *SignerUpdate {
	_u.mutation.RemoveValueIDs(ids...)
	return _u
}

// RemoveValues removes "values" edges to SignerFieldValue entities.
func (_u *SignerUpdate) RemoveValues(v ...*SignerFieldValue) *SignerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValueIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SignerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SignerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SignerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := signer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SignerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := signer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Signer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := signer.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Signer.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := signer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Signer.status": %w`, err)}
		}
	}
	if _u.mutation.EnvelopeCleared() && len(_u.mutation.EnvelopeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Signer.envelope"`)
	}
	return nil
}

func (_u *SignerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(signer.Table, signer.Columns, sqlgraph.NewFieldSpec(signer.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(signer.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(signer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(signer.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(signer.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoutingOrder(); ok {
		_spec.SetField(signer.FieldRoutingOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoutingOrder(); ok {
		_spec.AddField(signer.FieldRoutingOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(signer.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(signer.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(signer.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(signer.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(signer.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IPFirst(); ok {
		_spec.SetField(signer.FieldIPFirst, field.TypeString, value)
	}
	if _u.mutation.IPFirstCleared() {
		_spec.ClearField(signer.FieldIPFirst, field.TypeString)
	}
	if value, ok := _u.mutation.UaFirst(); ok {
		_spec.SetField(signer.FieldUaFirst, field.TypeString, value)
	}
	if _u.mutation.UaFirstCleared() {
		_spec.ClearField(signer.FieldUaFirst, field.TypeString)
	}
	if _u.mutation.EnvelopeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   signer.EnvelopeTable,
			Columns: []string{signer.EnvelopeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnvelopeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   signer.EnvelopeTable,
			Columns: []string{signer.EnvelopeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   signer.FieldsTable,
			Columns: []string{signer.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelopefield.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   signer.FieldsTable,
			Columns: []string{signer.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelopefield.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   signer.FieldsTable,
			Columns: []string{signer.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelopefield.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   signer.ValuesTable,
			Columns: []string{signer.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValuesIDs(); len(nodes) > 0 && !_u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   signer.ValuesTable,
			Columns: []string{signer.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   signer.ValuesTable,
			Columns: []string{signer.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SignerUpdateOne is the builder for updating a single Signer entity.
type SignerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SignerMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SignerUpdateOne) SetUpdatedAt(v time.Time) *SignerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SignerUpdateOne) SetName(v string) *SignerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SignerUpdateOne) SetNillableName(v *string) *SignerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *SignerUpdateOne) SetEmail(v string) *SignerUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SignerUpdateOne) SetNillableEmail(v *string) *SignerUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *SignerUpdateOne) SetRole(v string) *SignerUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *SignerUpdateOne) SetNillableRole(v *string) *SignerUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetRoutingOrder sets the "routing_order" field.
func (_u *SignerUpdateOne) SetRoutingOrder(v int) *SignerUpdateOne {
	_u.mutation.ResetRoutingOrder()
	_u.mutation.SetRoutingOrder(v)
	return _u
}

// SetNillableRoutingOrder sets the "routing_order" field if the given value is not nil.
func (_u *SignerUpdateOne) SetNillableRoutingOrder(v *int) *SignerUpdateOne {
	if v != nil {
		_u.SetRoutingOrder(*v)
	}
	return _u
}

// AddRoutingOrder adds value to the "routing_order" field.
func (_u *SignerUpdateOne) AddRoutingOrder(v int) *SignerUpdateOne {
	_u.mutation.AddRoutingOrder(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SignerUpdateOne) SetStatus(v signer.Status) *SignerUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SignerUpdateOne) SetNillableStatus(v *signer.Status) *SignerUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SignerUpdateOne) SetCompletedAt(v time.Time) *SignerUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SignerUpdateOne) SetNillableCompletedAt(v *time.Time) *SignerUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SignerUpdateOne) ClearCompletedAt() *SignerUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *SignerUpdateOne) SetOpenedAt(v time.Time) *SignerUpdateOne {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *SignerUpdateOne) SetNillableOpenedAt(v *time.Time) *SignerUpdateOne {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *SignerUpdateOne) ClearOpenedAt() *SignerUpdateOne {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetIPFirst sets the "ip_first" field.
func (_u *SignerUpdateOne) SetIPFirst(v string) *SignerUpdateOne {
	_u.mutation.SetIPFirst(v)
	return _u
}

// SetNillableIPFirst sets the "ip_first" field if the given value is not nil.
func (_u *SignerUpdateOne) SetNillableIPFirst(v *string) *SignerUpdateOne {
	if v != nil {
		_u.SetIPFirst(*v)
	}
	return _u
}

// ClearIPFirst clears the value of the "ip_first" field.
func (_u *SignerUpdateOne) ClearIPFirst() *SignerUpdateOne {
	_u.mutation.ClearIPFirst()
	return _u
}

// SetUaFirst sets the "ua_first" field.
func (_u *SignerUpdateOne) SetUaFirst(v string) *SignerUpdateOne {
	_u.mutation.SetUaFirst(v)
	return _u
}

// SetNillableUaFirst sets the "ua_first" field if the given value is not nil.
func (_u *SignerUpdateOne) SetNillableUaFirst(v *string) *SignerUpdateOne {
	if v != nil {
		_u.SetUaFirst(*v)
	}
	return _u
}

// ClearUaFirst clears the value of the "ua_first" field.
func (_u *SignerUpdateOne) ClearUaFirst() *SignerUpdateOne {
	_u.mutation.ClearUaFirst()
	return _u
}

// SetEnvelopeID sets the "envelope" edge to the Envelope entity by ID.
func (_u *SignerUpdateOne) SetEnvelopeID(id string) *SignerUpdateOne {
	_u.mutation.SetEnvelopeID(id)
	return _u
}

// SetEnvelope sets the "envelope" edge to the Envelope entity.
func (_u *SignerUpdateOne) SetEnvelope(v *Envelope) *SignerUpdateOne {
	return _u.SetEnvelopeID(v.ID)
}

// AddFieldIDs adds the "fields" edge to the EnvelopeField entity by IDs.
func (_u *SignerUpdateOne) AddFieldIDs(ids ...string) *SignerUpdateOne {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the EnvelopeField entity.
func (_u *SignerUpdateOne) AddFields(v ...*EnvelopeField) *SignerUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// AddValueIDs adds the "values" edge to the SignerFieldValue entity by IDs.
func (_u *SignerUpdateOne) AddValueIDs(ids ...int) *SignerUpdateOne {
	_u.mutation.AddValueIDs(ids...)
	return _u
}

// AddValues adds the "values" edges to the SignerFieldValue entity.
func (_u *SignerUpdateOne) AddValues(v ...*SignerFieldValue) *SignerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValueIDs(ids...)
}

// Mutation returns the SignerMutation object of the builder.
func (_u *SignerUpdateOne) Mutation() *SignerMutation {
	return _u.mutation
}

// ClearEnvelope clears the "envelope" edge to the Envelope entity.
func (_u *SignerUpdateOne) ClearEnvelope() *SignerUpdateOne {
	_u.mutation.ClearEnvelope()
	return _u
}

// ClearFields clears all "fields" edges to the EnvelopeField entity.
func (_u *SignerUpdateOne) ClearFields() *SignerUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to EnvelopeField entities by IDs.
func (_u *SignerUpdateOne) RemoveFieldIDs(ids ...string) *SignerUpdateOne {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to EnvelopeField entities.
func (_u *SignerUpdateOne) RemoveFields(v ...*EnvelopeField) *SignerUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// ClearValues clears all "values" edges to the SignerFieldValue entity.
func (_u *SignerUpdateOne) ClearValues() *SignerUpdateOne {
	_u.mutation.ClearValues()
	return _u
}

// RemoveValueIDs removes the "values" edge to SignerFieldValue entities by IDs.
func (_u *SignerUpdateOne) RemoveValueIDs(ids ...int) *SignerUpdateOne {
	_u.mutation.RemoveValueIDs(ids...)
	return _u
}

// RemoveValues removes "values" edges to SignerFieldValue entities.
func (_u *SignerUpdateOne) RemoveValues(v ...*SignerFieldValue) *SignerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValueIDs(ids...)
}

// Where appends a list predicates to the SignerUpdate builder.
func (_u *SignerUpdateOne) Where(ps ...predicate.Signer) *SignerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SignerUpdateOne) Select(field string, fields ...string) *SignerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Signer entity.
func (_u *SignerUpdateOne) Save(ctx context.Context) (*Signer, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignerUpdateOne) SaveX(ctx context.Context) *Signer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SignerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SignerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := signer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SignerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := signer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Signer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := signer.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Signer.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := signer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Signer.status": %w`, err)}
		}
	}
	if _u.mutation.EnvelopeCleared() && len(_u.mutation.EnvelopeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Signer.envelope"`)
	}
	return nil
}

func (_u *SignerUpdateOne) sqlSave(ctx context.Context) (_node *Signer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(signer.Table, signer.Columns, sqlgraph.NewFieldSpec(signer.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Signer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, signer.FieldID)
		for _, f := range fields {
			if !signer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != signer.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(signer.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(signer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(signer.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(signer.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoutingOrder(); ok {
		_spec.SetField(signer.FieldRoutingOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoutingOrder(); ok {
		_spec.AddField(signer.FieldRoutingOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(signer.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(signer.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(signer.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(signer.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(signer.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IPFirst(); ok {
		_spec.SetField(signer.FieldIPFirst, field.TypeString, value)
	}
	if _u.mutation.IPFirstCleared() {
		_spec.ClearField(signer.FieldIPFirst, field.TypeString)
	}
	if value, ok := _u.mutation.UaFirst(); ok {
		_spec.SetField(signer.FieldUaFirst, field.TypeString, value)
	}
	if _u.mutation.UaFirstCleared() {
		_spec.ClearField(signer.FieldUaFirst, field.TypeString)
	}
	if _u.mutation.EnvelopeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   signer.EnvelopeTable,
			Columns: []string{signer.EnvelopeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnvelopeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   signer.EnvelopeTable,
			Columns: []string{signer.EnvelopeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   signer.FieldsTable,
			Columns: []string{signer.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelopefield.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   signer.FieldsTable,
			Columns: []string{signer.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelopefield.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   signer.FieldsTable,
			Columns: []string{signer.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelopefield.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   signer.ValuesTable,
			Columns: []string{signer.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValuesIDs(); len(nodes) > 0 && !_u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   signer.ValuesTable,
			Columns: []string{signer.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   signer.ValuesTable,
			Columns: []string{signer.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Signer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
