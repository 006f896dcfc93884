// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/ent/signerfieldvalue"
)

// SignerCreate is the builder for creating a Signer entity.
type SignerCreate struct {
	config
	mutation *SignerMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SignerCreate) SetCreatedAt(v time.Time) *SignerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SignerCreate) SetNillableCreatedAt(v *time.Time) *SignerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SignerCreate) SetUpdatedAt(v time.Time) *SignerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SignerCreate) SetNillableUpdatedAt(v *time.Time) *SignerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *SignerCreate) SetName(v string) *SignerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *SignerCreate) SetEmail(v string) *SignerCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *SignerCreate) SetRole(v string) *SignerCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *SignerCreate) SetNillableRole(v *string) *SignerCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetRoutingOrder sets the "routing_order" field.
func (_c *SignerCreate) SetRoutingOrder(v int) *SignerCreate {
	_c.mutation.SetRoutingOrder(v)
	return _c
}

// SetNillableRoutingOrder sets the "routing_order" field if the given value is not nil.
func (_c *SignerCreate) SetNillableRoutingOrder(v *int) *SignerCreate {
	if v != nil {
		_c.SetRoutingOrder(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SignerCreate) SetStatus(v signer.Status) *SignerCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SignerCreate) SetNillableStatus(v *signer.Status) *SignerCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SignerCreate) SetCompletedAt(v time.Time) *SignerCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SignerCreate) SetNillableCompletedAt(v *time.Time) *SignerCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetOpenedAt sets the "opened_at" field.
func (_c *SignerCreate) SetOpenedAt(v time.Time) *SignerCreate {
	_c.mutation.SetOpenedAt(v)
	return _c
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_c *SignerCreate) SetNillableOpenedAt(v *time.Time) *SignerCreate {
	if v != nil {
		_c.SetOpenedAt(*v)
	}
	return _c
}

// SetIPFirst sets the "ip_first" field.
func (_c *SignerCreate) SetIPFirst(v string) *SignerCreate {
	_c.mutation.SetIPFirst(v)
	return _c
}

// SetNillableIPFirst sets the "ip_first" field if the given value is not nil.
func (_c *SignerCreate) SetNillableIPFirst(v *string) *SignerCreate {
	if v != nil {
		_c.SetIPFirst(*v)
	}
	return _c
}

// SetUaFirst sets the "ua_first" field.
func (_c *SignerCreate) SetUaFirst(v string) *SignerCreate {
	_c.mutation.SetUaFirst(v)
	return _c
}

// SetNillableUaFirst sets the "ua_first" field if the given value is not nil.
func (_c *SignerCreate) SetNillableUaFirst(v *string) *SignerCreate {
	if v != nil {
		_c.SetUaFirst(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SignerCreate) SetID(v string) *SignerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEnvelopeID sets the "envelope" edge to the Envelope entity by ID.
func (_c *SignerCreate) SetEnvelopeID(id string) *SignerCreate {
	_c.mutation.SetEnvelopeID(id)
	return _c
}

// SetEnvelope sets the "envelope" edge to the Envelope entity.
func (_c *SignerCreate) SetEnvelope(v *Envelope) *SignerCreate {
	return _c.SetEnvelopeID(v.ID)
}

// AddFieldIDs adds the "fields" edge to the EnvelopeField entity by IDs.
func (_c *SignerCreate) AddFieldIDs(ids ...string) *SignerCreate {
	_c.mutation.AddFieldIDs(ids...)
	return _c
}

// AddFields adds the "fields" edges to the EnvelopeField entity.
func (_c *SignerCreate) AddFields(v ...*EnvelopeField) *SignerCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFieldIDs(ids...)
}

// AddValueIDs adds the "values" edge to the SignerFieldValue entity by IDs.
func (_c *SignerCreate) AddValueIDs(ids ...int) *SignerCreate {
	_c.mutation.AddValueIDs(ids...)
	return _c
}

// AddValues adds the "values" edges to the SignerFieldValue entity.
func (_c *SignerCreate) AddValues(v ...*SignerFieldValue) *SignerCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddValueIDs(ids...)
}

// Mutation returns the SignerMutation object of the builder.
func (_c *SignerCreate) Mutation() *SignerMutation {
	return _c.mutation
}

// Save creates the Signer in the database.
func (_c *SignerCreate) Save(ctx context.Context) (*Signer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SignerCreate) SaveX(ctx context.Context) *Signer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SignerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := signer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := signer.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Role(); !ok {
		v := signer.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.RoutingOrder(); !ok {
		v := signer.DefaultRoutingOrder
		_c.mutation.SetRoutingOrder(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := signer.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SignerCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Signer.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Signer.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Signer.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := signer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Signer.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Signer.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := signer.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Signer.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Signer.role"`)}
	}
	if _, ok := _c.mutation.RoutingOrder(); !ok {
		return &ValidationError{Name: "routing_order", err: errors.New(`ent: missing required field "Signer.routing_order"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Signer.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := signer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Signer.status": %w`, err)}
		}
	}
	if len(_c.mutation.EnvelopeIDs()) == 0 {
		return &ValidationError{Name: "envelope", err: errors.New(`ent: missing required edge "Signer.envelope"`)}
	}
	return nil
}

func (_c *SignerCreate) sqlSave(ctx context.Context) (*Signer, error) {
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
			return nil, fmt.Errorf("unexpected Signer.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SignerCreate) createSpec() (*Signer, *sqlgraph.CreateSpec) {
	var (
		_node = &Signer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(signer.Table, sqlgraph.NewFieldSpec(signer.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(signer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(signer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(signer.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(signer.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(signer.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.RoutingOrder(); ok {
		_spec.SetField(signer.FieldRoutingOrder, field.TypeInt, value)
		_node.RoutingOrder = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(signer.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(signer.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.OpenedAt(); ok {
		_spec.SetField(signer.FieldOpenedAt, field.TypeTime, value)
		_node.OpenedAt = &value
	}
	if value, ok := _c.mutation.IPFirst(); ok {
		_spec.SetField(signer.FieldIPFirst, field.TypeString, value)
		_node.IPFirst = value
	}
	if value, ok := _c.mutation.UaFirst(); ok {
		_spec.SetField(signer.FieldUaFirst, field.TypeString, value)
		_node.UaFirst = value
	}
	if nodes := _c.mutation.EnvelopeIDs(); len(nodes) > 0 {
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
		_node.envelope_signers = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FieldsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ValuesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SignerCreateBulk is the builder for creating many Signer entities in bulk.
type SignerCreateBulk struct {
	config
	err      error
	builders []*SignerCreate
}

// Save creates the Signer entities in the database.
func (_c *SignerCreateBulk) Save(ctx context.Context) ([]*Signer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Signer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SignerMutation)
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
func (_c *SignerCreateBulk) SaveX(ctx context.Context) []*Signer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
