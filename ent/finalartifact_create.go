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
	"sealgate.io/sealgate/ent/finalartifact"
)

// FinalArtifactCreate is the builder for creating a FinalArtifact entity.
type FinalArtifactCreate struct {
	config
	mutation *FinalArtifactMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FinalArtifactCreate) SetCreatedAt(v time.Time) *FinalArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FinalArtifactCreate) SetNillableCreatedAt(v *time.Time) *FinalArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStorageKeyPdf sets the "storage_key_pdf" field.
func (_c *FinalArtifactCreate) SetStorageKeyPdf(v string) *FinalArtifactCreate {
	_c.mutation.SetStorageKeyPdf(v)
	return _c
}

// SetStorageKeyAudit sets the "storage_key_audit" field.
func (_c *FinalArtifactCreate) SetStorageKeyAudit(v string) *FinalArtifactCreate {
	_c.mutation.SetStorageKeyAudit(v)
	return _c
}

// SetSha256Final sets the "sha256_final" field.
func (_c *FinalArtifactCreate) SetSha256Final(v string) *FinalArtifactCreate {
	_c.mutation.SetSha256Final(v)
	return _c
}

// SetSealedAt sets the "sealed_at" field.
func (_c *FinalArtifactCreate) SetSealedAt(v time.Time) *FinalArtifactCreate {
	_c.mutation.SetSealedAt(v)
	return _c
}

// SetEnvelopeID sets the "envelope" edge to the Envelope entity by ID.
func (_c *FinalArtifactCreate) SetEnvelopeID(id string) *FinalArtifactCreate {
	_c.mutation.SetEnvelopeID(id)
	return _c
}

// SetEnvelope sets the "envelope" edge to the Envelope entity.
func (_c *FinalArtifactCreate) SetEnvelope(v *Envelope) *FinalArtifactCreate {
	return _c.SetEnvelopeID(v.ID)
}

// Mutation returns the FinalArtifactMutation object of the builder.
func (_c *FinalArtifactCreate) Mutation() *FinalArtifactMutation {
	return _c.mutation
}

// Save creates the FinalArtifact in the database.
func (_c *FinalArtifactCreate) Save(ctx context.Context) (*FinalArtifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FinalArtifactCreate) SaveX(ctx context.Context) *FinalArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinalArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinalArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FinalArtifactCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := finalartifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FinalArtifactCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FinalArtifact.created_at"`)}
	}
	if _, ok := _c.mutation.StorageKeyPdf(); !ok {
		return &ValidationError{Name: "storage_key_pdf", err: errors.New(`ent: missing required field "FinalArtifact.storage_key_pdf"`)}
	}
	if v, ok := _c.mutation.StorageKeyPdf(); ok {
		if err := finalartifact.StorageKeyPdfValidator(v); err != nil {
			return &ValidationError{Name: "storage_key_pdf", err: fmt.Errorf(`ent: validator failed for field "FinalArtifact.storage_key_pdf": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageKeyAudit(); !ok {
		return &ValidationError{Name: "storage_key_audit", err: errors.New(`ent: missing required field "FinalArtifact.storage_key_audit"`)}
	}
	if v, ok := _c.mutation.StorageKeyAudit(); ok {
		if err := finalartifact.StorageKeyAuditValidator(v); err != nil {
			return &ValidationError{Name: "storage_key_audit", err: fmt.Errorf(`ent: validator failed for field "FinalArtifact.storage_key_audit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sha256Final(); !ok {
		return &ValidationError{Name: "sha256_final", err: errors.New(`ent: missing required field "FinalArtifact.sha256_final"`)}
	}
	if v, ok := _c.mutation.Sha256Final(); ok {
		if err := finalartifact.Sha256FinalValidator(v); err != nil {
			return &ValidationError{Name: "sha256_final", err: fmt.Errorf(`ent: validator failed for field "FinalArtifact.sha256_final": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SealedAt(); !ok {
		return &ValidationError{Name: "sealed_at", err: errors.New(`ent: missing required field "FinalArtifact.sealed_at"`)}
	}
	if len(_c.mutation.EnvelopeIDs()) == 0 {
		return &ValidationError{Name: "envelope", err: errors.New(`ent: missing required edge "FinalArtifact.envelope"`)}
	}
	return nil
}

func (_c *FinalArtifactCreate) sqlSave(ctx context.Context) (*FinalArtifact, error) {
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

func (_c *FinalArtifactCreate) createSpec() (*FinalArtifact, *sqlgraph.CreateSpec) {
	var (
		_node = &FinalArtifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(finalartifact.Table, sqlgraph.NewFieldSpec(finalartifact.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(finalartifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StorageKeyPdf(); ok {
		_spec.SetField(finalartifact.FieldStorageKeyPdf, field.TypeString, value)
		_node.StorageKeyPdf = value
	}
	if value, ok := _c.mutation.StorageKeyAudit(); ok {
		_spec.SetField(finalartifact.FieldStorageKeyAudit, field.TypeString, value)
		_node.StorageKeyAudit = value
	}
	if value, ok := _c.mutation.Sha256Final(); ok {
		_spec.SetField(finalartifact.FieldSha256Final, field.TypeString, value)
		_node.Sha256Final = value
	}
	if value, ok := _c.mutation.SealedAt(); ok {
		_spec.SetField(finalartifact.FieldSealedAt, field.TypeTime, value)
		_node.SealedAt = value
	}
	if nodes := _c.mutation.EnvelopeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   finalartifact.EnvelopeTable,
			Columns: []string{finalartifact.EnvelopeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.envelope_artifact = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FinalArtifactCreateBulk is the builder for creating many FinalArtifact entities in bulk.
type FinalArtifactCreateBulk struct {
	config
	err      error
	builders []*FinalArtifactCreate
}

// Save creates the FinalArtifact entities in the database.
func (_c *FinalArtifactCreateBulk) Save(ctx context.Context) ([]*FinalArtifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FinalArtifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FinalArtifactMutation)
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
func (_c *FinalArtifactCreateBulk) SaveX(ctx context.Context) []*FinalArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinalArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinalArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
