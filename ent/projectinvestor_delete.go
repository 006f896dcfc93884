// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sealgate.io/sealgate/ent/predicate"
	"sealgate.io/sealgate/ent/projectinvestor"
)

// ProjectInvestorDelete is the builder for deleting a ProjectInvestor entity.
type ProjectInvestorDelete struct {
	config
	hooks    []Hook
	mutation *ProjectInvestorMutation
}

// Where appends a list predicates to the ProjectInvestorDelete builder.
func (_d *ProjectInvestorDelete) Where(ps ...predicate.ProjectInvestor) *ProjectInvestorDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProjectInvestorDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProjectInvestorDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProjectInvestorDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(projectinvestor.Table, sqlgraph.NewFieldSpec(projectinvestor.FieldID, field.TypeString))
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

// ProjectInvestorDeleteOne is the builder for deleting a single ProjectInvestor entity.
type ProjectInvestorDeleteOne struct {
	_d *ProjectInvestorDelete
}

// Where appends a list predicates to the ProjectInvestorDelete builder.
func (_d *ProjectInvestorDeleteOne) Where(ps ...predicate.ProjectInvestor) *ProjectInvestorDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProjectInvestorDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{projectinvestor.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProjectInvestorDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
