// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/predicate"
	"sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/ent/signerfieldvalue"
)

// EnvelopeFieldQuery is the builder for querying EnvelopeField entities.
type EnvelopeFieldQuery struct {
	config
	ctx          *QueryContext
	order        []envelopefield.OrderOption
	inters       []Interceptor
	predicates   []predicate.EnvelopeField
	withEnvelope *EnvelopeQuery
	withSigner   *SignerQuery
	withValues   *SignerFieldValueQuery
	withFKs      bool
	modifiers    []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EnvelopeFieldQuery builder.
func (_q *EnvelopeFieldQuery) Where(ps ...predicate.EnvelopeField) *EnvelopeFieldQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EnvelopeFieldQuery) Limit(limit int) *EnvelopeFieldQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EnvelopeFieldQuery) Offset(offset int) *EnvelopeFieldQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EnvelopeFieldQuery) Unique(unique bool) *EnvelopeFieldQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EnvelopeFieldQuery) Order(o ...envelopefield.OrderOption) *EnvelopeFieldQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEnvelope chains the current query on the "envelope" edge.
func (_q *EnvelopeFieldQuery) QueryEnvelope() *EnvelopeQuery {
	query := (&EnvelopeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(envelopefield.Table, envelopefield.FieldID, selector),
			sqlgraph.To(envelope.Table, envelope.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, envelopefield.EnvelopeTable, envelopefield.EnvelopeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySigner chains the current query on the "signer" edge.
func (_q *EnvelopeFieldQuery) QuerySigner() *SignerQuery {
	query := (&SignerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(envelopefield.Table, envelopefield.FieldID, selector),
			sqlgraph.To(signer.Table, signer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, envelopefield.SignerTable, envelopefield.SignerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryValues chains the current query on the "values" edge.
func (_q *EnvelopeFieldQuery) QueryValues() *SignerFieldValueQuery {
	query := (&SignerFieldValueClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(envelopefield.Table, envelopefield.FieldID, selector),
			sqlgraph.To(signerfieldvalue.Table, signerfieldvalue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, envelopefield.ValuesTable, envelopefield.ValuesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first EnvelopeField entity from the query.
// Returns a *NotFoundError when no EnvelopeField was found.
func (_q *EnvelopeFieldQuery) First(ctx context.Context) (*EnvelopeField, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{envelopefield.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EnvelopeFieldQuery) FirstX(ctx context.Context) *EnvelopeField {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EnvelopeField ID from the query.
// Returns a *NotFoundError when no EnvelopeField ID was found.
func (_q *EnvelopeFieldQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{envelopefield.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EnvelopeFieldQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EnvelopeField entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EnvelopeField entity is found.
// Returns a *NotFoundError when no EnvelopeField entities are found.
func (_q *EnvelopeFieldQuery) Only(ctx context.Context) (*EnvelopeField, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{envelopefield.Label}
	default:
		return nil, &NotSingularError{envelopefield.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EnvelopeFieldQuery) OnlyX(ctx context.Context) *EnvelopeField {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EnvelopeField ID in the query.
// Returns a *NotSingularError when more than one EnvelopeField ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EnvelopeFieldQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{envelopefield.Label}
	default:
		err = &NotSingularError{envelopefield.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EnvelopeFieldQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EnvelopeFields.
func (_q *EnvelopeFieldQuery) All(ctx context.Context) ([]*EnvelopeField, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EnvelopeField, *EnvelopeFieldQuery]()
	return withInterceptors[[]*EnvelopeField](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EnvelopeFieldQuery) AllX(ctx context.Context) []*EnvelopeField {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EnvelopeField IDs.
func (_q *EnvelopeFieldQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(envelopefield.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EnvelopeFieldQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EnvelopeFieldQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EnvelopeFieldQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EnvelopeFieldQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EnvelopeFieldQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *EnvelopeFieldQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EnvelopeFieldQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EnvelopeFieldQuery) Clone() *EnvelopeFieldQuery {
	if _q == nil {
		return nil
	}
	return &EnvelopeFieldQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]envelopefield.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.EnvelopeField{}, _q.predicates...),
		withEnvelope: _q.withEnvelope.Clone(),
		withSigner:   _q.withSigner.Clone(),
		withValues:   _q.withValues.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEnvelope tells the query-builder to eager-load the nodes that are connected to
// the "envelope" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EnvelopeFieldQuery) WithEnvelope(opts ...func(*EnvelopeQuery)) *EnvelopeFieldQuery {
	query := (&EnvelopeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEnvelope = query
	return _q
}

// WithSigner tells the query-builder to eager-load the nodes that are connected to
// the "signer" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EnvelopeFieldQuery) WithSigner(opts ...func(*SignerQuery)) *EnvelopeFieldQuery {
	query := (&SignerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSigner = query
	return _q
}

// WithValues tells the query-builder to eager-load the nodes that are connected to
// the "values" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EnvelopeFieldQuery) WithValues(opts ...func(*SignerFieldValueQuery)) *EnvelopeFieldQuery {
	query := (&SignerFieldValueClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withValues = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Page int `json:"page,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.EnvelopeField.Query().
//		GroupBy(envelopefield.FieldPage).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *EnvelopeFieldQuery) GroupBy(field string, fields ...string) *EnvelopeFieldGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EnvelopeFieldGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = envelopefield.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Page int `json:"page,omitempty"`
//	}
//
//	client.EnvelopeField.Query().
//		Select(envelopefield.FieldPage).
//		Scan(ctx, &v)
func (_q *EnvelopeFieldQuery) Select(fields ...string) *EnvelopeFieldSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EnvelopeFieldSelect{EnvelopeFieldQuery: _q}
	sbuild.label = envelopefield.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EnvelopeFieldSelect configured with the given aggregations.
func (_q *EnvelopeFieldQuery) Aggregate(fns ...AggregateFunc) *EnvelopeFieldSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EnvelopeFieldQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !envelopefield.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *EnvelopeFieldQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EnvelopeField, error) {
	var (
		nodes       = []*EnvelopeField{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withEnvelope != nil,
			_q.withSigner != nil,
			_q.withValues != nil,
		}
	)
	if _q.withEnvelope != nil || _q.withSigner != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, envelopefield.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EnvelopeField).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EnvelopeField{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withEnvelope; query != nil {
		if err := _q.loadEnvelope(ctx, query, nodes, nil,
			func(n *EnvelopeField, e *Envelope) { n.Edges.Envelope = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSigner; query != nil {
		if err := _q.loadSigner(ctx, query, nodes, nil,
			func(n *EnvelopeField, e *Signer) { n.Edges.Signer = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withValues; query != nil {
		if err := _q.loadValues(ctx, query, nodes,
			func(n *EnvelopeField) { n.Edges.Values = []*SignerFieldValue{} },
			func(n *EnvelopeField, e *SignerFieldValue) { n.Edges.Values = append(n.Edges.Values, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EnvelopeFieldQuery) loadEnvelope(ctx context.Context, query *EnvelopeQuery, nodes []*EnvelopeField, init func(*EnvelopeField), assign func(*EnvelopeField, *Envelope)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*EnvelopeField)
	for i := range nodes {
		if nodes[i].envelope_fields == nil {
			continue
		}
		fk := *nodes[i].envelope_fields
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(envelope.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "envelope_fields" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *EnvelopeFieldQuery) loadSigner(ctx context.Context, query *SignerQuery, nodes []*EnvelopeField, init func(*EnvelopeField), assign func(*EnvelopeField, *Signer)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*EnvelopeField)
	for i := range nodes {
		if nodes[i].signer_fields == nil {
			continue
		}
		fk := *nodes[i].signer_fields
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(signer.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "signer_fields" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *EnvelopeFieldQuery) loadValues(ctx context.Context, query *SignerFieldValueQuery, nodes []*EnvelopeField, init func(*EnvelopeField), assign func(*EnvelopeField, *SignerFieldValue)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*EnvelopeField)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.SignerFieldValue(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(envelopefield.ValuesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.envelope_field_values
		if fk == nil {
			return fmt.Errorf(`foreign-key "envelope_field_values" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "envelope_field_values" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *EnvelopeFieldQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *EnvelopeFieldQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(envelopefield.Table, envelopefield.Columns, sqlgraph.NewFieldSpec(envelopefield.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, envelopefield.FieldID)
		for i := range fields {
			if fields[i] != envelopefield.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *EnvelopeFieldQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(envelopefield.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = envelopefield.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *EnvelopeFieldQuery) ForUpdate(opts ...sql.LockOption) *EnvelopeFieldQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *EnvelopeFieldQuery) ForShare(opts ...sql.LockOption) *EnvelopeFieldQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// EnvelopeFieldGroupBy is the group-by builder for EnvelopeField entities.
type EnvelopeFieldGroupBy struct {
	selector
	build *EnvelopeFieldQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EnvelopeFieldGroupBy) Aggregate(fns ...AggregateFunc) *EnvelopeFieldGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EnvelopeFieldGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EnvelopeFieldQuery, *EnvelopeFieldGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EnvelopeFieldGroupBy) sqlScan(ctx context.Context, root *EnvelopeFieldQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// EnvelopeFieldSelect is the builder for selecting fields of EnvelopeField entities.
type EnvelopeFieldSelect struct {
	*EnvelopeFieldQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EnvelopeFieldSelect) Aggregate(fns ...AggregateFunc) *EnvelopeFieldSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EnvelopeFieldSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EnvelopeFieldQuery, *EnvelopeFieldSelect](ctx, _s.EnvelopeFieldQuery, _s, _s.inters, v)
}

func (_s *EnvelopeFieldSelect) sqlScan(ctx context.Context, root *EnvelopeFieldQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
