// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/ent/signerfieldvalue"
)

// SignerFieldValueCreate is the builder for creating a SignerFieldValue entity.
type SignerFieldValueCreate struct {
	config
	mutation *SignerFieldValueMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SignerFieldValueCreate) SetCreatedAt(v time.Time) *SignerFieldValueCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SignerFieldValueCreate) SetNillableCreatedAt(v *time.Time) *SignerFieldValueCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *SignerFieldValueCreate) SetPayload(v map[string]interface{}) *SignerFieldValueCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetSignerID sets the "signer" edge to the Signer entity by ID.
func (_c *SignerFieldValueCreate) SetSignerID(id string) *SignerFieldValueCreate {
	_c.mutation.SetSignerID(id)
	return _c
}

// SetSigner sets the "signer" edge to the Signer entity.
func (_c *SignerFieldValueCreate) SetSigner(v *Signer) *SignerFieldValueCreate {
	return _c.SetSignerID(v.ID)
}

// SetFieldID sets the "field" edge to the EnvelopeField entity by ID.
func (_c *SignerFieldValueCreate) SetFieldID(id string) *SignerFieldValueCreate {
	_c.mutation.SetFieldID(id)
	return _c
}

// SetField sets the "field" edge to the EnvelopeField entity.
func (_c *SignerFieldValueCreate) SetField(v *EnvelopeField) *SignerFieldValueCreate {
	return _c.SetFieldID(v.ID)
}

// Mutation returns the SignerFieldValueMutation object of the builder.
func (_c *SignerFieldValueCreate) Mutation() *SignerFieldValueMutation {
	return _c.mutation
}

// Save creates the SignerFieldValue in the database.
func (_c *SignerFieldValueCreate) Save(ctx context.Context) (*SignerFieldValue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SignerFieldValueCreate) SaveX(ctx context.Context) *SignerFieldValue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignerFieldValueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignerFieldValueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SignerFieldValueCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := signerfieldvalue.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SignerFieldValueCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SignerFieldValue.created_at"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "SignerFieldValue.payload"`)}
	}
	if len(_c.mutation.SignerIDs()) == 0 {
		return &ValidationError{Name: "signer", err: errors.New(`ent: missing required edge "SignerFieldValue.signer"`)}
	}
	if len(_c.mutation.FieldIDs()) == 0 {
		return &ValidationError{Name: "field", err: errors.New(`ent: missing required edge "SignerFieldValue.field"`)}
	}
	return nil
}

func (_c *SignerFieldValueCreate) sqlSave(ctx context.Context) (*SignerFieldValue, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SignerFieldValueCreate) createSpec() (*SignerFieldValue, *sqlgraph.CreateSpec) {
	var (
		_node = &SignerFieldValue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(signerfieldvalue.Table, sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(signerfieldvalue.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(signerfieldvalue.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if nodes := _c.mutation.SignerIDs(); len(nodes) > 0 {
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
		_node.signer_values = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FieldIDs(); len(nodes) > 0 {
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
		_node.envelope_field_values = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SignerFieldValueCreateBulk is the builder for creating many SignerFieldValue entities in bulk.
type SignerFieldValueCreateBulk struct {
	config
	err      error
	builders []*SignerFieldValueCreate
}

// Save creates the SignerFieldValue entities in the database.
func (_c *SignerFieldValueCreateBulk) Save(ctx context.Context) ([]*SignerFieldValue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SignerFieldValue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SignerFieldValueMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *SignerFieldValueCreateBulk) SaveX(ctx context.Context) []*SignerFieldValue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignerFieldValueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignerFieldValueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
