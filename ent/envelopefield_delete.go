// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/predicate"
)

// EnvelopeFieldDelete is the builder for deleting a EnvelopeField entity.
type EnvelopeFieldDelete struct {
	config
	hooks    []Hook
	mutation *EnvelopeFieldMutation
}

// Where appends a list predicates to the EnvelopeFieldDelete builder.
func (_d *EnvelopeFieldDelete) Where(ps ...predicate.EnvelopeField) *EnvelopeFieldDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EnvelopeFieldDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnvelopeFieldDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EnvelopeFieldDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(envelopefield.Table, sqlgraph.NewFieldSpec(envelopefield.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EnvelopeFieldDeleteOne is the builder for deleting a single EnvelopeField entity.
type EnvelopeFieldDeleteOne struct {
	_d *EnvelopeFieldDelete
}

// Where appends a list predicates to the EnvelopeFieldDelete builder.
func (_d *EnvelopeFieldDeleteOne) Where(ps ...predicate.EnvelopeField) *EnvelopeFieldDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EnvelopeFieldDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{envelopefield.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnvelopeFieldDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
