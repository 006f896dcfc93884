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
	"sealgate.io/sealgate/ent/document"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/event"
	"sealgate.io/sealgate/ent/finalartifact"
	"sealgate.io/sealgate/ent/predicate"
	"sealgate.io/sealgate/ent/project"
	"sealgate.io/sealgate/ent/signer"
)

// EnvelopeUpdate is the builder for updating Envelope entities.
type EnvelopeUpdate struct {
	config
	hooks    []Hook
	mutation *EnvelopeMutation
}

// Where appends a list predicates to the EnvelopeUpdate builder.
func (_u *EnvelopeUpdate) Where(ps ...predicate.Envelope) *EnvelopeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnvelopeUpdate) SetUpdatedAt(v time.Time) *EnvelopeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EnvelopeUpdate) SetSubject(v string) *EnvelopeUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EnvelopeUpdate) SetNillableSubject(v *string) *EnvelopeUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *EnvelopeUpdate) SetMessage(v string) *EnvelopeUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *EnvelopeUpdate) SetNillableMessage(v *string) *EnvelopeUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnvelopeUpdate) SetStatus(v envelope.Status) *EnvelopeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnvelopeUpdate) SetNillableStatus(v *envelope.Status) *EnvelopeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *EnvelopeUpdate) SetExpiresAt(v time.Time) *EnvelopeUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *EnvelopeUpdate) SetNillableExpiresAt(v *time.Time) *EnvelopeUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *EnvelopeUpdate) ClearExpiresAt() *EnvelopeUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetRequesterName sets the "requester_name" field.
func (_u *EnvelopeUpdate) SetRequesterName(v string) *EnvelopeUpdate {
	_u.mutation.SetRequesterName(v)
	return _u
}

// SetNillableRequesterName sets the "requester_name" field if the given value is not nil.
func (_u *EnvelopeUpdate) SetNillableRequesterName(v *string) *EnvelopeUpdate {
	if v != nil {
		_u.SetRequesterName(*v)
	}
	return _u
}

// ClearRequesterName clears the value of the "requester_name" field.
func (_u *EnvelopeUpdate) ClearRequesterName() *EnvelopeUpdate {
	_u.mutation.ClearRequesterName()
	return _u
}

// SetRequesterEmail sets the "requester_email" field.
func (_u *EnvelopeUpdate) SetRequesterEmail(v string) *EnvelopeUpdate {
	_u.mutation.SetRequesterEmail(v)
	return _u
}

// SetNillableRequesterEmail sets the "requester_email" field if the given value is not nil.
func (_u *EnvelopeUpdate) SetNillableRequesterEmail(v *string) *EnvelopeUpdate {
	if v != nil {
		_u.SetRequesterEmail(*v)
	}
	return _u
}

// ClearRequesterEmail clears the value of the "requester_email" field.
func (_u *EnvelopeUpdate) ClearRequesterEmail() *EnvelopeUpdate {
	_u.mutation.ClearRequesterEmail()
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *EnvelopeUpdate) SetProjectID(id string) *EnvelopeUpdate {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *EnvelopeUpdate) SetProject(v *Project) *EnvelopeUpdate {
	return _u.SetProjectID(v.ID)
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_u *EnvelopeUpdate) SetDocumentID(id string) *EnvelopeUpdate {
	_u.mutation.SetDocumentID(id)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *EnvelopeUpdate) SetDocument(v *Document) *EnvelopeUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddSignerIDs adds the "signers" edge to the Signer entity by IDs.
func (_u *EnvelopeUpdate) AddSignerIDs(ids ...string) *EnvelopeUpdate {
	_u.mutation.AddSignerIDs(ids...)
	return _u
}

// AddSigners adds the "signers" edges to the Signer entity.
func (_u *EnvelopeUpdate) AddSigners(v ...*Signer) *EnvelopeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSignerIDs(ids...)
}

// AddFieldIDs adds the "fields" edge to the EnvelopeField entity by IDs.
func (_u *EnvelopeUpdate) AddFieldIDs(ids ...string) *EnvelopeUpdate {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the EnvelopeField entity.
func (_u *EnvelopeUpdate) AddFields(v ...*EnvelopeField) *EnvelopeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *EnvelopeUpdate) AddEventIDs(ids ...int) *EnvelopeUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *EnvelopeUpdate) AddEvents(v ...*Event) *EnvelopeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetArtifactID sets the "artifact" edge to the FinalArtifact entity by ID.
func (_u *EnvelopeUpdate) SetArtifactID(id int) *EnvelopeUpdate {
	_u.mutation.SetArtifactID(id)
	return _u
}

// SetNillableArtifactID sets the "artifact" edge to the FinalArtifact entity by ID if the given value is not nil.
func (_u *EnvelopeUpdate) SetNillableArtifactID(id *int) *EnvelopeUpdate {
	if id != nil {
		_u = _u.SetArtifactID(*id)
	}
	return _u
}

// SetArtifact sets the "artifact" edge to the FinalArtifact entity.
func (_u *EnvelopeUpdate) SetArtifact(v *FinalArtifact) *EnvelopeUpdate {
	return _u.SetArtifactID(v.ID)
}

// Mutation returns the EnvelopeMutation object of the builder.
func (_u *EnvelopeUpdate) Mutation() *EnvelopeMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *EnvelopeUpdate) ClearProject() *EnvelopeUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *EnvelopeUpdate) ClearDocument() *EnvelopeUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearSigners clears all "signers" edges to the Signer entity.
func (_u *EnvelopeUpdate) ClearSigners() *EnvelopeUpdate {
	_u.mutation.ClearSigners()
	return _u
}

// RemoveSignerIDs removes the "signers" edge to Signer entities by IDs.
func (_u *EnvelopeUpdate) RemoveSignerIDs(ids ...string) *EnvelopeUpdate {
	_u.mutation.RemoveSignerIDs(ids...)
	return _u
}

// RemoveSigners removes "signers" edges to Signer entities.
func (_u *EnvelopeUpdate) RemoveSigners(v ...*Signer) *EnvelopeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSignerIDs(ids...)
}

// ClearFields clears all "fields" edges to the EnvelopeField entity.
func (_u *EnvelopeUpdate) ClearFields() *EnvelopeUpdate {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to EnvelopeField entities by IDs.
func (_u *EnvelopeUpdate) RemoveFieldIDs(ids ...string) *EnvelopeUpdate {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to EnvelopeField entities.
func (_u *EnvelopeUpdate) RemoveFields(v ...*EnvelopeField) *EnvelopeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *EnvelopeUpdate) ClearEvents() *EnvelopeUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *EnvelopeUpdate) RemoveEventIDs(ids ...int) *EnvelopeUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *EnvelopeUpdate) RemoveEvents(v ...*Event) *EnvelopeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearArtifact clears the "artifact" edge to the FinalArtifact entity.
func (_u *EnvelopeUpdate) ClearArtifact() *EnvelopeUpdate {
	_u.mutation.ClearArtifact()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnvelopeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnvelopeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnvelopeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnvelopeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnvelopeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := envelope.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnvelopeUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := envelope.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Envelope.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Envelope.project"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Envelope.document"`)
	}
	return nil
}

func (_u *EnvelopeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(envelope.Table, envelope.Columns, sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(envelope.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(envelope.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(envelope.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(envelope.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(envelope.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(envelope.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RequesterName(); ok {
		_spec.SetField(envelope.FieldRequesterName, field.TypeString, value)
	}
	if _u.mutation.RequesterNameCleared() {
		_spec.ClearField(envelope.FieldRequesterName, field.TypeString)
	}
	if value, ok := _u.mutation.RequesterEmail(); ok {
		_spec.SetField(envelope.FieldRequesterEmail, field.TypeString, value)
	}
	if _u.mutation.RequesterEmailCleared() {
		_spec.ClearField(envelope.FieldRequesterEmail, field.TypeString)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SignersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSignersIDs(); len(nodes) > 0 && !_u.mutation.SignersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SignersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{envelope.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnvelopeUpdateOne is the builder for updating a single Envelope entity.
type EnvelopeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnvelopeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnvelopeUpdateOne) SetUpdatedAt(v time.Time) *EnvelopeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EnvelopeUpdateOne) SetSubject(v string) *EnvelopeUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EnvelopeUpdateOne) SetNillableSubject(v *string) *EnvelopeUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *EnvelopeUpdateOne) SetMessage(v string) *EnvelopeUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *EnvelopeUpdateOne) SetNillableMessage(v *string) *EnvelopeUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnvelopeUpdateOne) SetStatus(v envelope.Status) *EnvelopeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnvelopeUpdateOne) SetNillableStatus(v *envelope.Status) *EnvelopeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *EnvelopeUpdateOne) SetExpiresAt(v time.Time) *EnvelopeUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *EnvelopeUpdateOne) SetNillableExpiresAt(v *time.Time) *EnvelopeUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *EnvelopeUpdateOne) ClearExpiresAt() *EnvelopeUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetRequesterName sets the "requester_name" field.
func (_u *EnvelopeUpdateOne) SetRequesterName(v string) *EnvelopeUpdateOne {
	_u.mutation.SetRequesterName(v)
	return _u
}

// SetNillableRequesterName sets the "requester_name" field if the given value is not nil.
func (_u *EnvelopeUpdateOne) SetNillableRequesterName(v *string) *EnvelopeUpdateOne {
	if v != nil {
		_u.SetRequesterName(*v)
	}
	return _u
}

// ClearRequesterName clears the value of the "requester_name" field.
func (_u *EnvelopeUpdateOne) ClearRequesterName() *EnvelopeUpdateOne {
	_u.mutation.ClearRequesterName()
	return _u
}

// SetRequesterEmail sets the "requester_email" field.
func (_u *EnvelopeUpdateOne) SetRequesterEmail(v string) *EnvelopeUpdateOne {
	_u.mutation.SetRequesterEmail(v)
	return _u
}

// SetNillableRequesterEmail sets the "requester_email" field if the given value is not nil.
func (_u *EnvelopeUpdateOne) SetNillableRequesterEmail(v *string) *EnvelopeUpdateOne {
	if v != nil {
		_u.SetRequesterEmail(*v)
	}
	return _u
}

// ClearRequesterEmail clears the value of the "requester_email" field.
func (_u *EnvelopeUpdateOne) ClearRequesterEmail() *EnvelopeUpdateOne {
	_u.mutation.ClearRequesterEmail()
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *EnvelopeUpdateOne) SetProjectID(id string) *EnvelopeUpdateOne {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *EnvelopeUpdateOne) SetProject(v *Project) *EnvelopeUpdateOne {
	return _u.SetProjectID(v.ID)
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_u *EnvelopeUpdateOne) SetDocumentID(id string) *EnvelopeUpdateOne {
	_u.mutation.SetDocumentID(id)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *EnvelopeUpdateOne) SetDocument(v *Document) *EnvelopeUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddSignerIDs adds the "signers" edge to the Signer entity by IDs.
func (_u *EnvelopeUpdateOne) AddSignerIDs(ids ...string) *EnvelopeUpdateOne {
	_u.mutation.AddSignerIDs(ids...)
	return _u
}

// AddSigners adds the "signers" edges to the Signer entity.
func (_u *EnvelopeUpdateOne) AddSigners(v ...*Signer) *EnvelopeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSignerIDs(ids...)
}

// AddFieldIDs adds the "fields" edge to the EnvelopeField entity by IDs.
func (_u *EnvelopeUpdateOne) AddFieldIDs(ids ...string) *EnvelopeUpdateOne {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the EnvelopeField entity.
func (_u *EnvelopeUpdateOne) AddFields(v ...*EnvelopeField) *EnvelopeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *EnvelopeUpdateOne) AddEventIDs(ids ...int) *EnvelopeUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *EnvelopeUpdateOne) AddEvents(v ...*Event) *EnvelopeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetArtifactID sets the "artifact" edge to the FinalArtifact entity by ID.
func (_u *EnvelopeUpdateOne) SetArtifactID(id int) *EnvelopeUpdateOne {
	_u.mutation.SetArtifactID(id)
	return _u
}

// SetNillableArtifactID sets the "artifact" edge to the FinalArtifact entity by ID if the given value is not nil.
func (_u *EnvelopeUpdateOne) SetNillableArtifactID(id *int) *EnvelopeUpdateOne {
	if id != nil {
		_u = _u.SetArtifactID(*id)
	}
	return _u
}

// SetArtifact sets the "artifact" edge to the FinalArtifact entity.
func (_u *EnvelopeUpdateOne) SetArtifact(v *FinalArtifact) *EnvelopeUpdateOne {
	return _u.SetArtifactID(v.ID)
}

// Mutation returns the EnvelopeMutation object of the builder.
func (_u *EnvelopeUpdateOne) Mutation() *EnvelopeMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *EnvelopeUpdateOne) ClearProject() *EnvelopeUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *EnvelopeUpdateOne) ClearDocument() *EnvelopeUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearSigners clears all "signers" edges to the Signer entity.
func (_u *EnvelopeUpdateOne) ClearSigners() *EnvelopeUpdateOne {
	_u.mutation.ClearSigners()
	return _u
}

// RemoveSignerIDs removes the "signers" edge to Signer entities by IDs.
func (_u *EnvelopeUpdateOne) RemoveSignerIDs(ids ...string) *EnvelopeUpdateOne {
	_u.mutation.RemoveSignerIDs(ids...)
	return _u
}

// RemoveSigners removes "signers" edges to Signer entities.
func (_u *EnvelopeUpdateOne) RemoveSigners(v ...*Signer) *EnvelopeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSignerIDs(ids...)
}

// ClearFields clears all "fields" edges to the EnvelopeField entity.
func (_u *EnvelopeUpdateOne) ClearFields() *EnvelopeUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to EnvelopeField entities by IDs.
func (_u *EnvelopeUpdateOne) RemoveFieldIDs(ids ...string) *EnvelopeUpdateOne {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to EnvelopeField entities.
func (_u *EnvelopeUpdateOne) RemoveFields(v ...*EnvelopeField) *EnvelopeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *EnvelopeUpdateOne) ClearEvents() *EnvelopeUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *EnvelopeUpdateOne) RemoveEventIDs(ids ...int) *EnvelopeUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *EnvelopeUpdateOne) RemoveEvents(v ...*Event) *EnvelopeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearArtifact clears the "artifact" edge to the FinalArtifact entity.
func (_u *EnvelopeUpdateOne) ClearArtifact() *EnvelopeUpdateOne {
	_u.mutation.ClearArtifact()
	return _u
}

// Where appends a list predicates to the EnvelopeUpdate builder.
func (_u *EnvelopeUpdateOne) Where(ps ...predicate.Envelope) *EnvelopeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnvelopeUpdateOne) Select(field string, fields ...string) *EnvelopeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Envelope entity.
func (_u *EnvelopeUpdateOne) Save(ctx context.Context) (*Envelope, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnvelopeUpdateOne) SaveX(ctx context.Context) *Envelope {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnvelopeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnvelopeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnvelopeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := envelope.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnvelopeUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := envelope.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Envelope.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Envelope.project"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Envelope.document"`)
	}
	return nil
}

func (_u *EnvelopeUpdateOne) sqlSave(ctx context.Context) (_node *Envelope, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(envelope.Table, envelope.Columns, sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Envelope.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, envelope.FieldID)
		for _, f := range fields {
			if !envelope.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != envelope.FieldID {
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
		_spec.SetField(envelope.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(envelope.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(envelope.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(envelope.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(envelope.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(envelope.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RequesterName(); ok {
		_spec.SetField(envelope.FieldRequesterName, field.TypeString, value)
	}
	if _u.mutation.RequesterNameCleared() {
		_spec.ClearField(envelope.FieldRequesterName, field.TypeString)
	}
	if value, ok := _u.mutation.RequesterEmail(); ok {
		_spec.SetField(envelope.FieldRequesterEmail, field.TypeString, value)
	}
	if _u.mutation.RequesterEmailCleared() {
		_spec.ClearField(envelope.FieldRequesterEmail, field.TypeString)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SignersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSignersIDs(); len(nodes) > 0 && !_u.mutation.SignersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SignersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Envelope{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{envelope.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
