// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sealgate.io/sealgate/ent/document"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/event"
	"sealgate.io/sealgate/ent/finalartifact"
	"sealgate.io/sealgate/ent/project"
	"sealgate.io/sealgate/ent/signer"
)

// EnvelopeCreate is the builder for creating a Envelope entity.
type EnvelopeCreate struct {
	config
	mutation *EnvelopeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *EnvelopeCreate) SetCreatedAt(v time.Time) *EnvelopeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EnvelopeCreate) SetNillableCreatedAt(v *time.Time) *EnvelopeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EnvelopeCreate) SetUpdatedAt(v time.Time) *EnvelopeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EnvelopeCreate) SetNillableUpdatedAt(v *time.Time) *EnvelopeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *EnvelopeCreate) SetSubject(v string) *EnvelopeCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *EnvelopeCreate) SetNillableSubject(v *string) *EnvelopeCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *EnvelopeCreate) SetMessage(v string) *EnvelopeCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *EnvelopeCreate) SetNillableMessage(v *string) *EnvelopeCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EnvelopeCreate) SetStatus(v envelope.Status) *EnvelopeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EnvelopeCreate) SetNillableStatus(v *envelope.Status) *EnvelopeCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *EnvelopeCreate) SetExpiresAt(v time.Time) *EnvelopeCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *EnvelopeCreate) SetNillableExpiresAt(v *time.Time) *EnvelopeCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetRequesterName sets the "requester_name" field.
func (_c *EnvelopeCreate) SetRequesterName(v string) *EnvelopeCreate {
	_c.mutation.SetRequesterName(v)
	return _c
}

// SetNillableRequesterName sets the "requester_name" field if the given value is not nil.
func (_c *EnvelopeCreate) SetNillableRequesterName(v *string) *EnvelopeCreate {
	if v != nil {
		_c.SetRequesterName(*v)
	}
	return _c
}

// SetRequesterEmail sets the "requester_email" field.
func (_c *EnvelopeCreate) SetRequesterEmail(v string) *EnvelopeCreate {
	_c.mutation.SetRequesterEmail(v)
	return _c
}

// SetNillableRequesterEmail sets the "requester_email" field if the given value is not nil.
func (_c *EnvelopeCreate) SetNillableRequesterEmail(v *string) *EnvelopeCreate {
	if v != nil {
		_c.SetRequesterEmail(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EnvelopeCreate) SetID(v string) *EnvelopeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_c *EnvelopeCreate) SetProjectID(id string) *EnvelopeCreate {
	_c.mutation.SetProjectID(id)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *EnvelopeCreate) SetProject(v *Project) *EnvelopeCreate {
	return _c.SetProjectID(v.ID)
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_c *EnvelopeCreate) SetDocumentID(id string) *EnvelopeCreate {
	_c.mutation.SetDocumentID(id)
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *EnvelopeCreate) SetDocument(v *Document) *EnvelopeCreate {
	return _c.SetDocumentID(v.ID)
}

// AddSignerIDs adds the "signers" edge to the Signer entity by IDs.
func (_c *EnvelopeCreate) AddSignerIDs(ids ...string) *EnvelopeCreate {
	_c.mutation.AddSignerIDs(ids...)
	return _c
}

// AddSigners adds the "signers" edges to the Signer entity.
func (_c *EnvelopeCreate) AddSigners(v ...*Signer) *EnvelopeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSignerIDs(ids...)
}

// AddFieldIDs adds the "fields" edge to the EnvelopeField entity by IDs.
func (_c *EnvelopeCreate) AddFieldIDs(ids ...string) *EnvelopeCreate {
	_c.mutation.AddFieldIDs(ids...)
	return _c
}

// AddFields adds the "fields" edges to the EnvelopeField entity.
func (_c *EnvelopeCreate) AddFields(v ...*EnvelopeField) *EnvelopeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFieldIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *EnvelopeCreate) AddEventIDs(ids ...int) *EnvelopeCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *EnvelopeCreate) AddEvents(v ...*Event) *EnvelopeCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// SetArtifactID sets the "artifact" edge to the FinalArtifact entity by ID.
func (_c *EnvelopeCreate) SetArtifactID(id int) *EnvelopeCreate {
	_c.mutation.SetArtifactID(id)
	return _c
}

// SetNillableArtifactID sets the "artifact" edge to the FinalArtifact entity by ID if the given value is not nil.
func (_c *EnvelopeCreate) SetNillableArtifactID(id *int) *EnvelopeCreate {
	if id != nil {
		_c = _c.SetArtifactID(*id)
	}
	return _c
}

// SetArtifact sets the "artifact" edge to the FinalArtifact entity.
func (_c *EnvelopeCreate) SetArtifact(v *FinalArtifact) *EnvelopeCreate {
	return _c.SetArtifactID(v.ID)
}

// Mutation returns the EnvelopeMutation object of the builder.
func (_c *EnvelopeCreate) Mutation() *EnvelopeMutation {
	return _c.mutation
}

// Save creates the Envelope in the database.
func (_c *EnvelopeCreate) Save(ctx context.Context) (*Envelope, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnvelopeCreate) SaveX(ctx context.Context) *Envelope {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnvelopeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnvelopeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnvelopeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := envelope.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := envelope.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Subject(); !ok {
		v := envelope.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.Message(); !ok {
		v := envelope.DefaultMessage
		_c.mutation.SetMessage(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := envelope.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnvelopeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Envelope.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Envelope.updated_at"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Envelope.subject"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "Envelope.message"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Envelope.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := envelope.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Envelope.status": %w`, err)}
		}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Envelope.project"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Envelope.document"`)}
	}
	return nil
}

func (_c *EnvelopeCreate) sqlSave(ctx context.Context) (*Envelope, error) {
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
			return nil, fmt.Errorf("unexpected Envelope.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EnvelopeCreate) createSpec() (*Envelope, *sqlgraph.CreateSpec) {
	var (
		_node = &Envelope{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(envelope.Table, sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(envelope.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(envelope.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(envelope.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(envelope.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(envelope.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(envelope.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.RequesterName(); ok {
		_spec.SetField(envelope.FieldRequesterName, field.TypeString, value)
		_node.RequesterName = value
	}
	if value, ok := _c.mutation.RequesterEmail(); ok {
		_spec.SetField(envelope.FieldRequesterEmail, field.TypeString, value)
		_node.RequesterEmail = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   envelope.ProjectTable,
			Columns: []string{envelope.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.project_envelopes = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   envelope.DocumentTable,
			Columns: []string{envelope.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.document_envelopes = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SignersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   envelope.SignersTable,
			Columns: []string{envelope.SignersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signer.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   envelope.FieldsTable,
			Columns: []string{envelope.FieldsColumn},
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
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   envelope.EventsTable,
			Columns: []string{envelope.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArtifactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   envelope.ArtifactTable,
			Columns: []string{envelope.ArtifactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(finalartifact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EnvelopeCreateBulk is the builder for creating many Envelope entities in bulk.
type EnvelopeCreateBulk struct {
	config
	err      error
	builders []*EnvelopeCreate
}

// Save creates the Envelope entities in the database.
func (_c *EnvelopeCreateBulk) Save(ctx context.Context) ([]*Envelope, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Envelope, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnvelopeMutation)
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
func (_c *EnvelopeCreateBulk) SaveX(ctx context.Context) []*Envelope {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnvelopeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnvelopeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
