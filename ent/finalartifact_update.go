// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sealgate.io/sealgate/ent/finalartifact"
	"sealgate.io/sealgate/ent/predicate"
)

// FinalArtifactUpdate is the builder for updating FinalArtifact entities.
type FinalArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *FinalArtifactMutation
}

// Where appends a list predicates to the FinalArtifactUpdate builder.
func (_u *FinalArtifactUpdate) Where(ps ...predicate.FinalArtifact) *FinalArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the FinalArtifactMutation object of the builder.
func (_u *FinalArtifactUpdate) Mutation() *FinalArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FinalArtifactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinalArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FinalArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinalArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinalArtifactUpdate) check() error {
	if _u.mutation.EnvelopeCleared() && len(_u.mutation.EnvelopeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinalArtifact.envelope"`)
	}
	return nil
}

func (_u *FinalArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finalartifact.Table, finalartifact.Columns, sqlgraph.NewFieldSpec(finalartifact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finalartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FinalArtifactUpdateOne is the builder for updating a single FinalArtifact entity.
type FinalArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FinalArtifactMutation
}

// Mutation returns the FinalArtifactMutation object of the builder.
func (_u *FinalArtifactUpdateOne) Mutation() *FinalArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the FinalArtifactUpdate builder.
func (_u *FinalArtifactUpdateOne) Where(ps ...predicate.FinalArtifact) *FinalArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FinalArtifactUpdateOne) Select(field string, fields ...string) *FinalArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FinalArtifact entity.
func (_u *FinalArtifactUpdateOne) Save(ctx context.Context) (*FinalArtifact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinalArtifactUpdateOne) SaveX(ctx context.Context) *FinalArtifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FinalArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinalArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinalArtifactUpdateOne) check() error {
	if _u.mutation.EnvelopeCleared() && len(_u.mutation.EnvelopeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinalArtifact.envelope"`)
	}
	return nil
}

func (_u *FinalArtifactUpdateOne) sqlSave(ctx context.Context) (_node *FinalArtifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finalartifact.Table, finalartifact.Columns, sqlgraph.NewFieldSpec(finalartifact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FinalArtifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, finalartifact.FieldID)
		for _, f := range fields {
			if !finalartifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != finalartifact.FieldID {
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
	_node = &FinalArtifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finalartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
