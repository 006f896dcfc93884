// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/predicate"
	"sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/ent/signerfieldvalue"
)

// SignerFieldValueUpdate is the builder for updating SignerFieldValue entities.
type SignerFieldValueUpdate struct {
	config
	hooks    []Hook
	mutation *SignerFieldValueMutation
}

// Where appends a list predicates to the SignerFieldValueUpdate builder.
func (_u *SignerFieldValueUpdate) Where(ps ...predicate.SignerFieldValue) *SignerFieldValueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *SignerFieldValueUpdate) SetPayload(v map[string]interface{}) *SignerFieldValueUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetSignerID sets the "signer" edge to the Signer entity by ID.
func (_u *SignerFieldValueUpdate) SetSignerID(id string) *SignerFieldValueUpdate {
	_u.mutation.SetSignerID(id)
	return _u
}

// SetSigner sets the "signer" edge to the Signer entity.
func (_u *SignerFieldValueUpdate) SetSigner(v *Signer) *SignerFieldValueUpdate {
	return _u.SetSignerID(v.ID)
}

// SetFieldID sets the "field" edge to the EnvelopeField entity by ID.
func (_u *SignerFieldValueUpdate) SetFieldID(id string) *SignerFieldValueUpdate {
	_u.mutation.SetFieldID(id)
	return _u
}

// SetField sets the "field" edge to the EnvelopeField entity.
func (_u *SignerFieldValueUpdate) SetField(v *EnvelopeField) *SignerFieldValueUpdate {
	return _u.SetFieldID(v.ID)
}

// Mutation returns the SignerFieldValueMutation object of the builder.
func (_u *SignerFieldValueUpdate) Mutation() *SignerFieldValueMutation {
	return _u.mutation
}

// ClearSigner clears the "signer" edge to the Signer entity.
func (_u *SignerFieldValueUpdate) ClearSigner() *SignerFieldValueUpdate {
	_u.mutation.ClearSigner()
	return _u
}

// ClearFieldEdge clears the "field" edge to the EnvelopeField entity.
func (_u *SignerFieldValueUpdate) ClearFieldEdge() *SignerFieldValueUpdate {
	_u.mutation.ClearFieldEdge()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SignerFieldValueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignerFieldValueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SignerFieldValueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignerFieldValueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SignerFieldValueUpdate) check() error {
	if _u.mutation.SignerCleared() && len(_u.mutation.SignerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SignerFieldValue.signer"`)
	}
	if _u.mutation.FieldEdgeCleared() && len(_u.mutation.FieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SignerFieldValue.field"`)
	}
	return nil
}

func (_u *SignerFieldValueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(signerfieldvalue.Table, signerfieldvalue.Columns, sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(signerfieldvalue.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.SignerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   signerfieldvalue.SignerTable,
			Columns: []string{signerfieldvalue.SignerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signer.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SignerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   signerfieldvalue.SignerTable,
			Columns: []string{signerfieldvalue.SignerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signer.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldEdgeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   signerfieldvalue.FieldTable,
			Columns: []string{signerfieldvalue.FieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelopefield.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   signerfieldvalue.FieldTable,
			Columns: []string{signerfieldvalue.FieldColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signerfieldvalue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SignerFieldValueUpdateOne is the builder for updating a single SignerFieldValue entity.
type SignerFieldValueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SignerFieldValueMutation
}

// SetPayload sets the "payload" field.
func (_u *SignerFieldValueUpdateOne) SetPayload(v map[string]interface{}) *SignerFieldValueUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetSignerID sets the "signer" edge to the Signer entity by ID.
func (_u *SignerFieldValueUpdateOne) SetSignerID(id string) *SignerFieldValueUpdateOne {
	_u.mutation.SetSignerID(id)
	return _u
}

// SetSigner sets the "signer" edge to the Signer entity.
func (_u *SignerFieldValueUpdateOne) SetSigner(v *Signer) *SignerFieldValueUpdateOne {
	return _u.SetSignerID(v.ID)
}

// SetFieldID sets the "field" edge to the EnvelopeField entity by ID.
func (_u *SignerFieldValueUpdateOne) SetFieldID(id string) *SignerFieldValueUpdateOne {
	_u.mutation.SetFieldID(id)
	return _u
}

// SetField sets the "field" edge to the EnvelopeField entity.
func (_u *SignerFieldValueUpdateOne) SetField(v *EnvelopeField) *SignerFieldValueUpdateOne {
	return _u.SetFieldID(v.ID)
}

// Mutation returns the SignerFieldValueMutation object of the builder.
func (_u *SignerFieldValueUpdateOne) Mutation() *SignerFieldValueMutation {
	return _u.mutation
}

// ClearSigner clears the "signer" edge to the Signer entity.
func (_u *SignerFieldValueUpdateOne) ClearSigner() *SignerFieldValueUpdateOne {
	_u.mutation.ClearSigner()
	return _u
}

// ClearFieldEdge clears the "field" edge to the EnvelopeField entity.
func (_u *SignerFieldValueUpdateOne) ClearFieldEdge() *SignerFieldValueUpdateOne {
	_u.mutation.ClearFieldEdge()
	return _u
}

// Where appends a list predicates to the SignerFieldValueUpdate builder.
func (_u *SignerFieldValueUpdateOne) Where(ps ...predicate.SignerFieldValue) *SignerFieldValueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SignerFieldValueUpdateOne) Select(field string, fields ...string) *SignerFieldValueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SignerFieldValue entity.
func (_u *SignerFieldValueUpdateOne) Save(ctx context.Context) (*SignerFieldValue, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignerFieldValueUpdateOne) SaveX(ctx context.Context) *SignerFieldValue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SignerFieldValueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignerFieldValueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SignerFieldValueUpdateOne) check() error {
	if _u.mutation.SignerCleared() && len(_u.mutation.SignerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SignerFieldValue.signer"`)
	}
	if _u.mutation.FieldEdgeCleared() && len(_u.mutation.FieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SignerFieldValue.field"`)
	}
	return nil
}

func (_u *SignerFieldValueUpdateOne) sqlSave(ctx context.Context) (_node *SignerFieldValue, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(signerfieldvalue.Table, signerfieldvalue.Columns, sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SignerFieldValue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, signerfieldvalue.FieldID)
		for _, f := range fields {
			if !signerfieldvalue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != signerfieldvalue.FieldID {
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
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(signerfieldvalue.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.SignerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   signerfieldvalue.SignerTable,
			Columns: []string{signerfieldvalue.SignerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signer.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SignerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   signerfieldvalue.SignerTable,
			Columns: []string{signerfieldvalue.SignerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signer.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldEdgeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   signerfieldvalue.FieldTable,
			Columns: []string{signerfieldvalue.FieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelopefield.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   signerfieldvalue.FieldTable,
			Columns: []string{signerfieldvalue.FieldColumn},
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
	_node = &SignerFieldValue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signerfieldvalue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
