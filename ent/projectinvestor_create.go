// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sealgate.io/sealgate/ent/project"
	"sealgate.io/sealgate/ent/projectinvestor"
)

// ProjectInvestorCreate is the builder for creating a ProjectInvestor entity.
type ProjectInvestorCreate struct {
	config
	mutation *ProjectInvestorMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectInvestorCreate) SetCreatedAt(v time.Time) *ProjectInvestorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectInvestorCreate) SetNillableCreatedAt(v *time.Time) *ProjectInvestorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectInvestorCreate) SetUpdatedAt(v time.Time) *ProjectInvestorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectInvestorCreate) SetNillableUpdatedAt(v *time.Time) *ProjectInvestorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ProjectInvestorCreate) SetName(v string) *ProjectInvestorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ProjectInvestorCreate) SetEmail(v string) *ProjectInvestorCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ProjectInvestorCreate) SetRole(v string) *ProjectInvestorCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *ProjectInvestorCreate) SetNillableRole(v *string) *ProjectInvestorCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetRoutingOrder sets the "routing_order" field.
func (_c *ProjectInvestorCreate) SetRoutingOrder(v int) *ProjectInvestorCreate {
	_c.mutation.SetRoutingOrder(v)
	return _c
}

// SetNillableRoutingOrder sets the "routing_order" field if the given value is not nil.
func (_c *ProjectInvestorCreate) SetNillableRoutingOrder(v *int) *ProjectInvestorCreate {
	if v != nil {
		_c.SetRoutingOrder(*v)
	}
	return _c
}

// SetUnitsInvested sets the "units_invested" field.
func (_c *ProjectInvestorCreate) SetUnitsInvested(v float64) *ProjectInvestorCreate {
	_c.mutation.SetUnitsInvested(v)
	return _c
}

// SetNillableUnitsInvested sets the "units_invested" field if the given value is not nil.
func (_c *ProjectInvestorCreate) SetNillableUnitsInvested(v *float64) *ProjectInvestorCreate {
	if v != nil {
		_c.SetUnitsInvested(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ProjectInvestorCreate) SetMetadata(v map[string]interface{}) *ProjectInvestorCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectInvestorCreate) SetID(v string) *ProjectInvestorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_c *ProjectInvestorCreate) SetProjectID(id string) *ProjectInvestorCreate {
	_c.mutation.SetProjectID(id)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ProjectInvestorCreate) SetProject(v *Project) *ProjectInvestorCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ProjectInvestorMutation object of the builder.
func (_c *ProjectInvestorCreate) Mutation() *ProjectInvestorMutation {
	return _c.mutation
}

// Save creates the ProjectInvestor in the database.
func (_c *ProjectInvestorCreate) Save(ctx context.Context) (*ProjectInvestor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectInvestorCreate) SaveX(ctx context.Context) *ProjectInvestor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectInvestorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectInvestorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectInvestorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := projectinvestor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := projectinvestor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Role(); !ok {
		v := projectinvestor.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.RoutingOrder(); !ok {
		v := projectinvestor.DefaultRoutingOrder
		_c.mutation.SetRoutingOrder(v)
	}
	if _, ok := _c.mutation.UnitsInvested(); !ok {
		v := projectinvestor.DefaultUnitsInvested
		_c.mutation.SetUnitsInvested(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectInvestorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProjectInvestor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProjectInvestor.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ProjectInvestor.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := projectinvestor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ProjectInvestor.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "ProjectInvestor.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := projectinvestor.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ProjectInvestor.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "ProjectInvestor.role"`)}
	}
	if _, ok := _c.mutation.RoutingOrder(); !ok {
		return &ValidationError{Name: "routing_order", err: errors.New(`ent: missing required field "ProjectInvestor.routing_order"`)}
	}
	if _, ok := _c.mutation.UnitsInvested(); !ok {
		return &ValidationError{Name: "units_invested", err: errors.New(`ent: missing required field "ProjectInvestor.units_invested"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "ProjectInvestor.project"`)}
	}
	return nil
}

func (_c *ProjectInvestorCreate) sqlSave(ctx context.Context) (*ProjectInvestor, error) {
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
			return nil, fmt.Errorf("unexpected ProjectInvestor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectInvestorCreate) createSpec() (*ProjectInvestor, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectInvestor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projectinvestor.Table, sqlgraph.NewFieldSpec(projectinvestor.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(projectinvestor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(projectinvestor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(projectinvestor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(projectinvestor.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(projectinvestor.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.RoutingOrder(); ok {
		_spec.SetField(projectinvestor.FieldRoutingOrder, field.TypeInt, value)
		_node.RoutingOrder = value
	}
	if value, ok := _c.mutation.UnitsInvested(); ok {
		_spec.SetField(projectinvestor.FieldUnitsInvested, field.TypeFloat64, value)
		_node.UnitsInvested = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(projectinvestor.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   projectinvestor.ProjectTable,
			Columns: []string{projectinvestor.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.project_investors = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProjectInvestorCreateBulk is the builder for creating many ProjectInvestor entities in bulk.
type ProjectInvestorCreateBulk struct {
	config
	err      error
	builders []*ProjectInvestorCreate
}

// Save creates the ProjectInvestor entities in the database.
func (_c *ProjectInvestorCreateBulk) Save(ctx context.Context) ([]*ProjectInvestor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectInvestor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectInvestorMutation)
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
func (_c *ProjectInvestorCreateBulk) SaveX(ctx context.Context) []*ProjectInvestor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectInvestorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectInvestorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
