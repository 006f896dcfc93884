// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/predicate"
	"sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/ent/signerfieldvalue"
)

// EnvelopeFieldUpdate is the builder for updating EnvelopeField entities.
type EnvelopeFieldUpdate struct {
	config
	hooks    []Hook
	mutation *EnvelopeFieldMutation
}

// Where appends a list predicates to the EnvelopeFieldUpdate builder.
func (_u *EnvelopeFieldUpdate) Where(ps ...predicate.EnvelopeField) *EnvelopeFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPage sets the "page" field.
func (_u *EnvelopeFieldUpdate) SetPage(v int) *EnvelopeFieldUpdate {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *EnvelopeFieldUpdate) SetNillablePage(v *int) *EnvelopeFieldUpdate {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *EnvelopeFieldUpdate) AddPage(v int) *EnvelopeFieldUpdate {
	_u.mutation.AddPage(v)
	return _u
}

// SetX sets the "x" field.
func (_u *EnvelopeFieldUpdate) SetX(v float64) *EnvelopeFieldUpdate {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *EnvelopeFieldUpdate) SetNillableX(v *float64) *EnvelopeFieldUpdate {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *EnvelopeFieldUpdate) AddX(v float64) *EnvelopeFieldUpdate {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *EnvelopeFieldUpdate) SetY(v float64) *EnvelopeFieldUpdate {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *EnvelopeFieldUpdate) SetNillableY(v *float64) *EnvelopeFieldUpdate {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *EnvelopeFieldUpdate) AddY(v float64) *EnvelopeFieldUpdate {
	_u.mutation.AddY(v)
	return _u
}

// SetW sets the "w" field.
func (_u *EnvelopeFieldUpdate) SetW(v float64) *EnvelopeFieldUpdate {
	_u.mutation.ResetW()
	_u.mutation.SetW(v)
	return _u
}

// SetNillableW sets the "w" field if the given value is not nil.
func (_u *EnvelopeFieldUpdate) SetNillableW(v *float64) *EnvelopeFieldUpdate {
	if v != nil {
		_u.SetW(*v)
	}
	return _u
}

// AddW adds value to the "w" field.
func (_u *EnvelopeFieldUpdate) AddW(v float64) *EnvelopeFieldUpdate {
	_u.mutation.AddW(v)
	return _u
}

// SetH sets the "h" field.
func (_u *EnvelopeFieldUpdate) SetH(v float64) *EnvelopeFieldUpdate {
	_u.mutation.ResetH()
	_u.mutation.SetH(v)
	return _u
}

// SetNillableH sets the "h" field if the given value is not nil.
func (_u *EnvelopeFieldUpdate) SetNillableH(v *float64) *EnvelopeFieldUpdate {
	if v != nil {
		_u.SetH(*v)
	}
	return _u
}

// AddH adds value to the "h" field.
func (_u *EnvelopeFieldUpdate) AddH(v float64) *EnvelopeFieldUpdate {
	_u.mutation.AddH(v)
	return _u
}

// SetType sets the "type" field.
func (_u *EnvelopeFieldUpdate) SetType(v envelopefield.Type) *EnvelopeFieldUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EnvelopeFieldUpdate) SetNillableType(v *envelopefield.Type) *EnvelopeFieldUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetRequired sets the "required" field.
func (_u *EnvelopeFieldUpdate) SetRequired(v bool) *EnvelopeFieldUpdate {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *EnvelopeFieldUpdate) SetNillableRequired(v *bool) *EnvelopeFieldUpdate {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *EnvelopeFieldUpdate) SetRole(v string) *EnvelopeFieldUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *EnvelopeFieldUpdate) SetNillableRole(v *string) *EnvelopeFieldUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EnvelopeFieldUpdate) SetName(v string) *EnvelopeFieldUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EnvelopeFieldUpdate) SetNillableName(v *string) *EnvelopeFieldUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *EnvelopeFieldUpdate) ClearName() *EnvelopeFieldUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetFontFamily sets the "font_family" field.
func (_u *EnvelopeFieldUpdate) SetFontFamily(v string) *EnvelopeFieldUpdate {
	_u.mutation.SetFontFamily(v)
	return _u
}

// SetNillableFontFamily sets the "font_family" field if the given value is not nil.
func (_u *EnvelopeFieldUpdate) SetNillableFontFamily(v *string) *EnvelopeFieldUpdate {
	if v != nil {
		_u.SetFontFamily(*v)
	}
	return _u
}

// ClearFontFamily clears the value of the "font_family" field.
func (_u *EnvelopeFieldUpdate) ClearFontFamily() *EnvelopeFieldUpdate {
	_u.mutation.ClearFontFamily()
	return _u
}

// SetEnvelopeID sets the "envelope" edge to the Envelope entity by ID.
func (_u *EnvelopeFieldUpdate) SetEnvelopeID(id string) *EnvelopeFieldUpdate {
	_u.mutation.SetEnvelopeID(id)
	return _u
}

// SetEnvelope sets the "envelope" edge to the Envelope entity.
func (_u *EnvelopeFieldUpdate) SetEnvelope(v *Envelope) *EnvelopeFieldUpdate {
	return _u.SetEnvelopeID(v.ID)
}

// SetSignerID sets the "signer" edge to the Signer entity by ID.
func (_u *EnvelopeFieldUpdate) SetSignerID(id string) *EnvelopeFieldUpdate {
	_u.mutation.SetSignerID(id)
	return _u
}

// SetNillableSignerID sets the "signer" edge to the Signer entity by ID if the given value is not nil.
func (_u *EnvelopeFieldUpdate) SetNillableSignerID(id *string) *EnvelopeFieldUpdate {
	if id != nil {
		_u = _u.SetSignerID(*id)
	}
	return _u
}

// SetSigner sets the "signer" edge to the Signer entity.
func (_u *EnvelopeFieldUpdate) SetSigner(v *Signer) *EnvelopeFieldUpdate {
	return _u.SetSignerID(v.ID)
}

// AddValueIDs adds the "values" edge to the SignerFieldValue entity by IDs.
func (_u *EnvelopeFieldUpdate) AddValueIDs(ids ...int) *EnvelopeFieldUpdate {
	_u.mutation.AddValueIDs(ids...)
	return _u
}

// AddValues adds the "values" edges to the SignerFieldValue entity.
func (_u *EnvelopeFieldUpdate) AddValues(v ...*SignerFieldValue) *EnvelopeFieldUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValueIDs(ids...)
}

// Mutation returns the EnvelopeFieldMutation object of the builder.
func (_u *EnvelopeFieldUpdate) Mutation() *EnvelopeFieldMutation {
	return _u.mutation
}

// ClearEnvelope clears the "envelope" edge to the Envelope entity.
func (_u *EnvelopeFieldUpdate) ClearEnvelope() *EnvelopeFieldUpdate {
	_u.mutation.ClearEnvelope()
	return _u
}

// ClearSigner clears the "signer" edge to the Signer entity.
func (_u *EnvelopeFieldUpdate) ClearSigner() *EnvelopeFieldUpdate {
	_u.mutation.ClearSigner()
	return _u
}

// ClearValues clears all "values" edges to the SignerFieldValue entity.
func (_u *EnvelopeFieldUpdate) ClearValues() *EnvelopeFieldUpdate {
	_u.mutation.ClearValues()
	return _u
}

// RemoveValueIDs removes the "values" edge to SignerFieldValue entities by IDs.
func (_u *EnvelopeFieldUpdate) RemoveValueIDs(ids ...int) *EnvelopeFieldUpdate {
	_u.mutation.RemoveValueIDs(ids...)
	return _u
}

// RemoveValues removes "values" edges to SignerFieldValue entities.
func (_u *EnvelopeFieldUpdate) RemoveValues(v ...*SignerFieldValue) *EnvelopeFieldUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValueIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnvelopeFieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnvelopeFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnvelopeFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnvelopeFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnvelopeFieldUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := envelopefield.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "EnvelopeField.type": %w`, err)}
		}
	}
	if _u.mutation.EnvelopeCleared() && len(_u.mutation.EnvelopeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EnvelopeField.envelope"`)
	}
	return nil
}

func (_u *EnvelopeFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(envelopefield.Table, envelopefield.Columns, sqlgraph.NewFieldSpec(envelopefield.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(envelopefield.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(envelopefield.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(envelopefield.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(envelopefield.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(envelopefield.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(envelopefield.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.W(); ok {
		_spec.SetField(envelopefield.FieldW, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedW(); ok {
		_spec.AddField(envelopefield.FieldW, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.H(); ok {
		_spec.SetField(envelopefield.FieldH, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedH(); ok {
		_spec.AddField(envelopefield.FieldH, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(envelopefield.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(envelopefield.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(envelopefield.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(envelopefield.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(envelopefield.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.FontFamily(); ok {
		_spec.SetField(envelopefield.FieldFontFamily, field.TypeString, value)
	}
	if _u.mutation.FontFamilyCleared() {
		_spec.ClearField(envelopefield.FieldFontFamily, field.TypeString)
	}
	if _u.mutation.EnvelopeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   envelopefield.EnvelopeTable,
			Columns: []string{envelopefield.EnvelopeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnvelopeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   envelopefield.EnvelopeTable,
			Columns: []string{envelopefield.EnvelopeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SignerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   envelopefield.SignerTable,
			Columns: []string{envelopefield.SignerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signer.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SignerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   envelopefield.SignerTable,
			Columns: []string{envelopefield.SignerColumn},
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
	if _u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   envelopefield.ValuesTable,
			Columns: []string{envelopefield.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValuesIDs(); len(nodes) > 0 && !_u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   envelopefield.ValuesTable,
			Columns: []string{envelopefield.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   envelopefield.ValuesTable,
			Columns: []string{envelopefield.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{envelopefield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnvelopeFieldUpdateOne is the builder for updating a single EnvelopeField entity.
type EnvelopeFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnvelopeFieldMutation
}

// SetPage sets the "page" field.
func (_u *EnvelopeFieldUpdateOne) SetPage(v int) *EnvelopeFieldUpdateOne {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *EnvelopeFieldUpdateOne) SetNillablePage(v *int) *EnvelopeFieldUpdateOne {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *EnvelopeFieldUpdateOne) AddPage(v int) *EnvelopeFieldUpdateOne {
	_u.mutation.AddPage(v)
	return _u
}

// SetX sets the "x" field.
func (_u *EnvelopeFieldUpdateOne) SetX(v float64) *EnvelopeFieldUpdateOne {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *EnvelopeFieldUpdateOne) SetNillableX(v *float64) *EnvelopeFieldUpdateOne {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *EnvelopeFieldUpdateOne) AddX(v float64) *EnvelopeFieldUpdateOne {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *EnvelopeFieldUpdateOne) SetY(v float64) *EnvelopeFieldUpdateOne {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *EnvelopeFieldUpdateOne) SetNillableY(v *float64) *EnvelopeFieldUpdateOne {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *EnvelopeFieldUpdateOne) AddY(v float64) *EnvelopeFieldUpdateOne {
	_u.mutation.AddY(v)
	return _u
}

// SetW sets the "w" field.
func (_u *EnvelopeFieldUpdateOne) SetW(v float64) *EnvelopeFieldUpdateOne {
	_u.mutation.ResetW()
	_u.mutation.SetW(v)
	return _u
}

// SetNillableW sets the "w" field if the given value is not nil.
func (_u *EnvelopeFieldUpdateOne) SetNillableW(v *float64) *EnvelopeFieldUpdateOne {
	if v != nil {
		_u.SetW(*v)
	}
	return _u
}

// AddW adds value to the "w" field.
func (_u *EnvelopeFieldUpdateOne) AddW(v float64) *EnvelopeFieldUpdateOne {
	_u.mutation.AddW(v)
	return _u
}

// SetH sets the "h" field.
func (_u *EnvelopeFieldUpdateOne) SetH(v float64) *EnvelopeFieldUpdateOne {
	_u.mutation.ResetH()
	_u.mutation.SetH(v)
	return _u
}

// SetNillableH sets the "h" field if the given value is not nil.
func (_u *EnvelopeFieldUpdateOne) SetNillableH(v *float64) *EnvelopeFieldUpdateOne {
	if v != nil {
		_u.SetH(*v)
	}
	return _u
}

// AddH adds value to the "h" field.
func (_u *EnvelopeFieldUpdateOne) AddH(v float64) *EnvelopeFieldUpdateOne {
	_u.mutation.AddH(v)
	return _u
}

// SetType sets the "type" field.
func (_u *EnvelopeFieldUpdateOne) SetType(v envelopefield.Type) *EnvelopeFieldUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EnvelopeFieldUpdateOne) SetNillableType(v *envelopefield.Type) *EnvelopeFieldUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetRequired sets the "required" field.
func (_u *EnvelopeFieldUpdateOne) SetRequired(v bool) *EnvelopeFieldUpdateOne {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *EnvelopeFieldUpdateOne) SetNillableRequired(v *bool) *EnvelopeFieldUpdateOne {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *EnvelopeFieldUpdateOne) SetRole(v string) *EnvelopeFieldUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *EnvelopeFieldUpdateOne) SetNillableRole(v *string) *EnvelopeFieldUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EnvelopeFieldUpdateOne) SetName(v string) *EnvelopeFieldUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EnvelopeFieldUpdateOne) SetNillableName(v *string) *EnvelopeFieldUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *EnvelopeFieldUpdateOne) ClearName() *EnvelopeFieldUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetFontFamily sets the "font_family" field.
func (_u *EnvelopeFieldUpdateOne) SetFontFamily(v string) *EnvelopeFieldUpdateOne {
	_u.mutation.SetFontFamily(v)
	return _u
}

// SetNillableFontFamily sets the "font_family" field if the given value is not nil.
func (_u *EnvelopeFieldUpdateOne) SetNillableFontFamily(v *string) *EnvelopeFieldUpdateOne {
	if v != nil {
		_u.SetFontFamily(*v)
	}
	return _u
}

// ClearFontFamily clears the value of the "font_family" field.
func (_u *EnvelopeFieldUpdateOne) ClearFontFamily() *EnvelopeFieldUpdateOne {
	_u.mutation.ClearFontFamily()
	return _u
}

// SetEnvelopeID sets the "envelope" edge to the Envelope entity by ID.
func (_u *EnvelopeFieldUpdateOne) SetEnvelopeID(id string) *EnvelopeFieldUpdateOne {
	_u.mutation.SetEnvelopeID(id)
	return _u
}

// SetEnvelope sets the "envelope" edge to the Envelope entity.
func (_u *EnvelopeFieldUpdateOne) SetEnvelope(v *Envelope) *EnvelopeFieldUpdateOne {
	return _u.SetEnvelopeID(v.ID)
}

// SetSignerID sets the "signer" edge to the Signer entity by ID.
func (_u *EnvelopeFieldUpdateOne) SetSignerID(id string) *EnvelopeFieldUpdateOne {
	_u.mutation.SetSignerID(id)
	return _u
}

// SetNillableSignerID sets the "signer" edge to the Signer entity by ID if the given value is not nil.
func (_u *EnvelopeFieldUpdateOne) SetNillableSignerID(id *string) *EnvelopeFieldUpdateOne {
	if id != nil {
		_u = _u.SetSignerID(*id)
	}
	return _u
}

// SetSigner sets the "signer" edge to the Signer entity.
func (_u *EnvelopeFieldUpdateOne) SetSigner(v *Signer) *EnvelopeFieldUpdateOne {
	return _u.SetSignerID(v.ID)
}

// AddValueIDs adds the "values" edge to the SignerFieldValue entity by IDs.
func (_u *EnvelopeFieldUpdateOne) AddValueIDs(ids ...int) *EnvelopeFieldUpdateOne {
	_u.mutation.AddValueIDs(ids...)
	return _u
}

// AddValues adds the "values" edges to the SignerFieldValue entity.
func (_u *EnvelopeFieldUpdateOne) AddValues(v ...*SignerFieldValue) *EnvelopeFieldUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValueIDs(ids...)
}

// Mutation returns the EnvelopeFieldMutation object of the builder.
func (_u *EnvelopeFieldUpdateOne) Mutation() *EnvelopeFieldMutation {
	return _u.mutation
}

// ClearEnvelope clears the "envelope" edge to the Envelope entity.
func (_u *EnvelopeFieldUpdateOne) ClearEnvelope() *EnvelopeFieldUpdateOne {
	_u.mutation.ClearEnvelope()
	return _u
}

// ClearSigner clears the "signer" edge to the Signer entity.
func (_u *EnvelopeFieldUpdateOne) ClearSigner() *EnvelopeFieldUpdateOne {
	_u.mutation.ClearSigner()
	return _u
}

// ClearValues clears all "values" edges to the SignerFieldValue entity.
func (_u *EnvelopeFieldUpdateOne) ClearValues() *EnvelopeFieldUpdateOne {
	_u.mutation.ClearValues()
	return _u
}

// RemoveValueIDs removes the "values" edge to SignerFieldValue entities by IDs.
func (_u *EnvelopeFieldUpdateOne) RemoveValueIDs(ids ...int) *EnvelopeFieldUpdateOne {
	_u.mutation.RemoveValueIDs(ids...)
	return _u
}

// RemoveValues removes "values" edges to SignerFieldValue entities.
func (_u *EnvelopeFieldUpdateOne) RemoveValues(v ...*SignerFieldValue) *EnvelopeFieldUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValueIDs(ids...)
}

// Where appends a list predicates to the EnvelopeFieldUpdate builder.
func (_u *EnvelopeFieldUpdateOne) Where(ps ...predicate.EnvelopeField) *EnvelopeFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnvelopeFieldUpdateOne) Select(field string, fields ...string) *EnvelopeFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EnvelopeField entity.
func (_u *EnvelopeFieldUpdateOne) Save(ctx context.Context) (*EnvelopeField, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnvelopeFieldUpdateOne) SaveX(ctx context.Context) *EnvelopeField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnvelopeFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnvelopeFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnvelopeFieldUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := envelopefield.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "EnvelopeField.type": %w`, err)}
		}
	}
	if _u.mutation.EnvelopeCleared() && len(_u.mutation.EnvelopeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EnvelopeField.envelope"`)
	}
	return nil
}

func (_u *EnvelopeFieldUpdateOne) sqlSave(ctx context.Context) (_node *EnvelopeField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(envelopefield.Table, envelopefield.Columns, sqlgraph.NewFieldSpec(envelopefield.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EnvelopeField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, envelopefield.FieldID)
		for _, f := range fields {
			if !envelopefield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != envelopefield.FieldID {
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
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(envelopefield.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(envelopefield.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(envelopefield.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(envelopefield.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(envelopefield.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(envelopefield.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.W(); ok {
		_spec.SetField(envelopefield.FieldW, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedW(); ok {
		_spec.AddField(envelopefield.FieldW, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.H(); ok {
		_spec.SetField(envelopefield.FieldH, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedH(); ok {
		_spec.AddField(envelopefield.FieldH, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(envelopefield.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(envelopefield.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(envelopefield.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(envelopefield.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(envelopefield.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.FontFamily(); ok {
		_spec.SetField(envelopefield.FieldFontFamily, field.TypeString, value)
	}
	if _u.mutation.FontFamilyCleared() {
		_spec.ClearField(envelopefield.FieldFontFamily, field.TypeString)
	}
	if _u.mutation.EnvelopeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   envelopefield.EnvelopeTable,
			Columns: []string{envelopefield.EnvelopeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnvelopeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   envelopefield.EnvelopeTable,
			Columns: []string{envelopefield.EnvelopeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SignerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   envelopefield.SignerTable,
			Columns: []string{envelopefield.SignerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signer.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SignerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   envelopefield.SignerTable,
			Columns: []string{envelopefield.SignerColumn},
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
	if _u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   envelopefield.ValuesTable,
			Columns: []string{envelopefield.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValuesIDs(); len(nodes) > 0 && !_u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   envelopefield.ValuesTable,
			Columns: []string{envelopefield.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   envelopefield.ValuesTable,
			Columns: []string{envelopefield.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signerfieldvalue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EnvelopeField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{envelopefield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
