// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/ent/signerfieldvalue"
)

// EnvelopeFieldCreate is the builder for creating a EnvelopeField entity.
type EnvelopeFieldCreate struct {
	config
	mutation *EnvelopeFieldMutation
	hooks    []Hook
}

// SetPage sets the "page" field.
func (_c *EnvelopeFieldCreate) SetPage(v int) *EnvelopeFieldCreate {
	_c.mutation.SetPage(v)
	return _c
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_c *EnvelopeFieldCreate) SetNillablePage(v *int) *EnvelopeFieldCreate {
	if v != nil {
		_c.SetPage(*v)
	}
	return _c
}

// SetX sets the "x" field.
func (_c *EnvelopeFieldCreate) SetX(v float64) *EnvelopeFieldCreate {
	_c.mutation.SetX(v)
	return _c
}

// SetY sets the "y" field.
func (_c *EnvelopeFieldCreate) SetY(v float64) *EnvelopeFieldCreate {
	_c.mutation.SetY(v)
	return _c
}

// SetW sets the "w" field.
func (_c *EnvelopeFieldCreate) SetW(v float64) *EnvelopeFieldCreate {
	_c.mutation.SetW(v)
	return _c
}

// SetH sets the "h" field.
func (_c *EnvelopeFieldCreate) SetH(v float64) *EnvelopeFieldCreate {
	_c.mutation.SetH(v)
	return _c
}

// SetType sets the "type" field.
func (_c *EnvelopeFieldCreate) SetType(v envelopefield.Type) *EnvelopeFieldCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetRequired sets the "required" field.
func (_c *EnvelopeFieldCreate) SetRequired(v bool) *EnvelopeFieldCreate {
	_c.mutation.SetRequired(v)
	return _c
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_c *EnvelopeFieldCreate) SetNillableRequired(v *bool) *EnvelopeFieldCreate {
	if v != nil {
		_c.SetRequired(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *EnvelopeFieldCreate) SetRole(v string) *EnvelopeFieldCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *EnvelopeFieldCreate) SetNillableRole(v *string) *EnvelopeFieldCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *EnvelopeFieldCreate) SetName(v string) *EnvelopeFieldCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *EnvelopeFieldCreate) SetNillableName(v *string) *EnvelopeFieldCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetFontFamily sets the "font_family" field.
func (_c *EnvelopeFieldCreate) SetFontFamily(v string) *EnvelopeFieldCreate {
	_c.mutation.SetFontFamily(v)
	return _c
}

// SetNillableFontFamily sets the "font_family" field if the given value is not nil.
func (_c *EnvelopeFieldCreate) SetNillableFontFamily(v *string) *EnvelopeFieldCreate {
	if v != nil {
		_c.SetFontFamily(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EnvelopeFieldCreate) SetID(v string) *EnvelopeFieldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEnvelopeID sets the "envelope" edge to the Envelope entity by ID.
func (_c *EnvelopeFieldCreate) SetEnvelopeID(id string) *EnvelopeFieldCreate {
	_c.mutation.SetEnvelopeID(id)
	return _c
}

// SetEnvelope sets the "envelope" edge to the Envelope entity.
func (_c *EnvelopeFieldCreate) SetEnvelope(v *Envelope) *EnvelopeFieldCreate {
	return _c.SetEnvelopeID(v.ID)
}

// SetSignerID sets the "signer" edge to the Signer entity by ID.
func (_c *EnvelopeFieldCreate) SetSignerID(id string) *EnvelopeFieldCreate {
	_c.mutation.SetSignerID(id)
	return _c
}

// SetNillableSignerID sets the "signer" edge to the Signer entity by ID if the given value is not nil.
func (_c *EnvelopeFieldCreate) SetNillableSignerID(id *string) *EnvelopeFieldCreate {
	if id != nil {
		_c = _c.SetSignerID(*id)
	}
	return _c
}

// SetSigner sets the "signer" edge to the Signer entity.
func (_c *EnvelopeFieldCreate) SetSigner(v *Signer) *EnvelopeFieldCreate {
	return _c.SetSignerID(v.ID)
}

// AddValueIDs adds the "values" edge to the SignerFieldValue entity by IDs.
func (_c *EnvelopeFieldCreate) AddValueIDs(ids ...int) *EnvelopeFieldCreate {
	_c.mutation.AddValueIDs(ids...)
	return _c
}

// AddValues adds the "values" edges to the SignerFieldValue entity.
func (_c *EnvelopeFieldCreate) AddValues(v ...*SignerFieldValue) *EnvelopeFieldCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddValueIDs(ids...)
}

// Mutation returns the EnvelopeFieldMutation object of the builder.
func (_c *EnvelopeFieldCreate) Mutation() *EnvelopeFieldMutation {
	return _c.mutation
}

// Save creates the EnvelopeField in the database.
func (_c *EnvelopeFieldCreate) Save(ctx context.Context) (*EnvelopeField, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnvelopeFieldCreate) SaveX(ctx context.Context) *EnvelopeField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnvelopeFieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnvelopeFieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnvelopeFieldCreate) defaults() {
	if _, ok := _c.mutation.Page(); !ok {
		v := envelopefield.DefaultPage
		_c.mutation.SetPage(v)
	}
	if _, ok := _c.mutation.Required(); !ok {
		v := envelopefield.DefaultRequired
		_c.mutation.SetRequired(v)
	}
	if _, ok := _c.mutation.Role(); !ok {
		v := envelopefield.DefaultRole
		_c.mutation.SetRole(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnvelopeFieldCreate) check() error {
	if _, ok := _c.mutation.Page(); !ok {
		return &ValidationError{Name: "page", err: errors.New(`ent: missing required field "EnvelopeField.page"`)}
	}
	if _, ok := _c.mutation.X(); !ok {
		return &ValidationError{Name: "x", err: errors.New(`ent: missing required field "EnvelopeField.x"`)}
	}
	if _, ok := _c.mutation.Y(); !ok {
		return &ValidationError{Name: "y", err: errors.New(`ent: missing required field "EnvelopeField.y"`)}
	}
	if _, ok := _c.mutation.W(); !ok {
		return &ValidationError{Name: "w", err: errors.New(`ent: missing required field "EnvelopeField.w"`)}
	}
	if _, ok := _c.mutation.H(); !ok {
		return &ValidationError{Name: "h", err: errors.New(`ent: missing required field "EnvelopeField.h"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "EnvelopeField.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := envelopefield.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "EnvelopeField.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Required(); !ok {
		return &ValidationError{Name: "required", err: errors.New(`ent: missing required field "EnvelopeField.required"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "EnvelopeField.role"`)}
	}
	if len(_c.mutation.EnvelopeIDs()) == 0 {
		return &ValidationError{Name: "envelope", err: errors.New(`ent: missing required edge "EnvelopeField.envelope"`)}
	}
	return nil
}

func (_c *EnvelopeFieldCreate) sqlSave(ctx context.Context) (*EnvelopeField, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected EnvelopeField.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EnvelopeFieldCreate) createSpec() (*EnvelopeField, *sqlgraph.CreateSpec) {
	var (
		_node = &EnvelopeField{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(envelopefield.Table, sqlgraph.NewFieldSpec(envelopefield.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Page(); ok {
		_spec.SetField(envelopefield.FieldPage, field.TypeInt, value)
		_node.Page = value
	}
	if value, ok := _c.mutation.X(); ok {
		_spec.SetField(envelopefield.FieldX, field.TypeFloat64, value)
		_node.X = value
	}
	if value, ok := _c.mutation.Y(); ok {
		_spec.SetField(envelopefield.FieldY, field.TypeFloat64, value)
		_node.Y = value
	}
	if value, ok := _c.mutation.W(); ok {
		_spec.SetField(envelopefield.FieldW, field.TypeFloat64, value)
		_node.W = value
	}
	if value, ok := _c.mutation.H(); ok {
		_spec.SetField(envelopefield.FieldH, field.TypeFloat64, value)
		_node.H = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(envelopefield.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Required(); ok {
		_spec.SetField(envelopefield.FieldRequired, field.TypeBool, value)
		_node.Required = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(envelopefield.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(envelopefield.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.FontFamily(); ok {
		_spec.SetField(envelopefield.FieldFontFamily, field.TypeString, value)
		_node.FontFamily = value
	}
	if nodes := _c.mutation.EnvelopeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   envelopefield.EnvelopeTable,
			Columns: []string{envelopefield.EnvelopeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.envelope_fields = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SignerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   envelopefield.SignerTable,
			Columns: []string{envelopefield.SignerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signer.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.signer_fields = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   envelopefield.ValuesTable,
			Columns: []string{envelopefield.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EnvelopeFieldCreateBulk is the builder for creating many EnvelopeField entities in bulk.
type EnvelopeFieldCreateBulk struct {
	config
	err      error
	builders []*EnvelopeFieldCreate
}

// Save creates the EnvelopeField entities in the database.
func (_c *EnvelopeFieldCreateBulk) Save(ctx context.Context) ([]*EnvelopeField, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EnvelopeField, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnvelopeFieldMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EnvelopeFieldCreateBulk) SaveX(ctx context.Context) []*EnvelopeField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnvelopeFieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnvelopeFieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
