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
	"sealgate.io/sealgate/ent/predicate"
	"sealgate.io/sealgate/ent/project"
	"sealgate.io/sealgate/ent/projectinvestor"
)

// ProjectInvestorUpdate is the builder for updating ProjectInvestor entities.
type ProjectInvestorUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectInvestorMutation
}

// Where appends a list predicates to the ProjectInvestorUpdate builder.
func (_u *ProjectInvestorUpdate) Where(ps ...predicate.ProjectInvestor) *ProjectInvestorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectInvestorUpdate) SetUpdatedAt(v time.Time) *ProjectInvestorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectInvestorUpdate) SetName(v string) *ProjectInvestorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectInvestorUpdate) SetNillableName(v *string) *ProjectInvestorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProjectInvestorUpdate) SetEmail(v string) *ProjectInvestorUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProjectInvestorUpdate) SetNillableEmail(v *string) *ProjectInvestorUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ProjectInvestorUpdate) SetRole(v string) *ProjectInvestorUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ProjectInvestorUpdate) SetNillableRole(v *string) *ProjectInvestorUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetRoutingOrder sets the "routing_order" field.
func (_u *ProjectInvestorUpdate) SetRoutingOrder(v int) *ProjectInvestorUpdate {
	_u.mutation.ResetRoutingOrder()
	_u.mutation.SetRoutingOrder(v)
	return _u
}

// SetNillableRoutingOrder sets the "routing_order" field if the given value is not nil.
func (_u *ProjectInvestorUpdate) SetNillableRoutingOrder(v *int) *ProjectInvestorUpdate {
	if v != nil {
		_u.SetRoutingOrder(*v)
	}
	return _u
}

// AddRoutingOrder adds value to the "routing_order" field.
func (_u *ProjectInvestorUpdate) AddRoutingOrder(v int) *ProjectInvestorUpdate {
	_u.mutation.AddRoutingOrder(v)
	return _u
}

// SetUnitsInvested sets the "units_invested" field.
func (_u *ProjectInvestorUpdate) SetUnitsInvested(v float64) *ProjectInvestorUpdate {
	_u.mutation.ResetUnitsInvested()
	_u.mutation.SetUnitsInvested(v)
	return _u
}

// SetNillableUnitsInvested sets the "units_invested" field if the given value is not nil.
func (_u *ProjectInvestorUpdate) SetNillableUnitsInvested(v *float64) *ProjectInvestorUpdate {
	if v != nil {
		_u.SetUnitsInvested(*v)
	}
	return _u
}

// AddUnitsInvested adds value to the "units_invested" field.
func (_u *ProjectInvestorUpdate) AddUnitsInvested(v float64) *ProjectInvestorUpdate {
	_u.mutation.AddUnitsInvested(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ProjectInvestorUpdate) SetMetadata(v map[string]interface{}) *ProjectInvestorUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ProjectInvestorUpdate) ClearMetadata() *ProjectInvestorUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *ProjectInvestorUpdate) SetProjectID(id string) *ProjectInvestorUpdate {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ProjectInvestorUpdate) SetProject(v *Project) *ProjectInvestorUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ProjectInvestorMutation object of the builder.
func (_u *ProjectInvestorUpdate) Mutation() *ProjectInvestorMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ProjectInvestorUpdate) ClearProject() *ProjectInvestorUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectInvestorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectInvestorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectInvestorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectInvestorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectInvestorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectinvestor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectInvestorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := projectinvestor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ProjectInvestor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := projectinvestor.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ProjectInvestor.email": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProjectInvestor.project"`)
	}
	return nil
}

func (_u *ProjectInvestorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projectinvestor.Table, projectinvestor.Columns, sqlgraph.NewFieldSpec(projectinvestor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectinvestor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(projectinvestor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(projectinvestor.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(projectinvestor.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoutingOrder(); ok {
		_spec.SetField(projectinvestor.FieldRoutingOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoutingOrder(); ok {
		_spec.AddField(projectinvestor.FieldRoutingOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitsInvested(); ok {
		_spec.SetField(projectinvestor.FieldUnitsInvested, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitsInvested(); ok {
		_spec.AddField(projectinvestor.FieldUnitsInvested, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(projectinvestor.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(projectinvestor.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectinvestor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectInvestorUpdateOne is the builder for updating a single ProjectInvestor entity.
type ProjectInvestorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectInvestorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectInvestorUpdateOne) SetUpdatedAt(v time.Time) *ProjectInvestorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectInvestorUpdateOne) SetName(v string) *ProjectInvestorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectInvestorUpdateOne) SetNillableName(v *string) *ProjectInvestorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProjectInvestorUpdateOne) SetEmail(v string) *ProjectInvestorUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProjectInvestorUpdateOne) SetNillableEmail(v *string) *ProjectInvestorUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ProjectInvestorUpdateOne) SetRole(v string) *ProjectInvestorUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ProjectInvestorUpdateOne) SetNillableRole(v *string) *ProjectInvestorUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetRoutingOrder sets the "routing_order" field.
func (_u *ProjectInvestorUpdateOne) SetRoutingOrder(v int) *ProjectInvestorUpdateOne {
	_u.mutation.ResetRoutingOrder()
	_u.mutation.SetRoutingOrder(v)
	return _u
}

// SetNillableRoutingOrder sets the "routing_order" field if the given value is not nil.
func (_u *ProjectInvestorUpdateOne) SetNillableRoutingOrder(v *int) *ProjectInvestorUpdateOne {
	if v != nil {
		_u.SetRoutingOrder(*v)
	}
	return _u
}

// AddRoutingOrder adds value to the "routing_order" field.
func (_u *ProjectInvestorUpdateOne) AddRoutingOrder(v int) *ProjectInvestorUpdateOne {
	_u.mutation.AddRoutingOrder(v)
	return _u
}

// SetUnitsInvested sets the "units_invested" field.
func (_u *ProjectInvestorUpdateOne) SetUnitsInvested(v float64) *ProjectInvestorUpdateOne {
	_u.mutation.ResetUnitsInvested()
	_u.mutation.SetUnitsInvested(v)
	return _u
}

// SetNillableUnitsInvested sets the "units_invested" field if the given value is not nil.
func (_u *ProjectInvestorUpdateOne) SetNillableUnitsInvested(v *float64) *ProjectInvestorUpdateOne {
	if v != nil {
		_u.SetUnitsInvested(*v)
	}
	return _u
}

// AddUnitsInvested adds value to the "units_invested" field.
func (_u *ProjectInvestorUpdateOne) AddUnitsInvested(v float64) *ProjectInvestorUpdateOne {
	_u.mutation.AddUnitsInvested(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ProjectInvestorUpdateOne) SetMetadata(v map[string]interface{}) *ProjectInvestorUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ProjectInvestorUpdateOne) ClearMetadata() *ProjectInvestorUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *ProjectInvestorUpdateOne) SetProjectID(id string) *ProjectInvestorUpdateOne {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ProjectInvestorUpdateOne) SetProject(v *Project) *ProjectInvestorUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ProjectInvestorMutation object of the builder.
func (_u *ProjectInvestorUpdateOne) Mutation() *ProjectInvestorMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ProjectInvestorUpdateOne) ClearProject() *ProjectInvestorUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the ProjectInvestorUpdate builder.
func (_u *ProjectInvestorUpdateOne) Where(ps ...predicate.ProjectInvestor) *ProjectInvestorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectInvestorUpdateOne) Select(field string, fields ...string) *ProjectInvestorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProjectInvestor entity.
func (_u *ProjectInvestorUpdateOne) Save(ctx context.Context) (*ProjectInvestor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectInvestorUpdateOne) SaveX(ctx context.Context) *ProjectInvestor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectInvestorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectInvestorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectInvestorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectinvestor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectInvestorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := projectinvestor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ProjectInvestor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := projectinvestor.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ProjectInvestor.email": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProjectInvestor.project"`)
	}
	return nil
}

func (_u *ProjectInvestorUpdateOne) sqlSave(ctx context.Context) (_node *ProjectInvestor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projectinvestor.Table, projectinvestor.Columns, sqlgraph.NewFieldSpec(projectinvestor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProjectInvestor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projectinvestor.FieldID)
		for _, f := range fields {
			if !projectinvestor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != projectinvestor.FieldID {
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
		_spec.SetField(projectinvestor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(projectinvestor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(projectinvestor.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(projectinvestor.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoutingOrder(); ok {
		_spec.SetField(projectinvestor.FieldRoutingOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoutingOrder(); ok {
		_spec.AddField(projectinvestor.FieldRoutingOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitsInvested(); ok {
		_spec.SetField(projectinvestor.FieldUnitsInvested, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitsInvested(); ok {
		_spec.AddField(projectinvestor.FieldUnitsInvested, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(projectinvestor.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(projectinvestor.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProjectInvestor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectinvestor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
