// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"sealgate.io/sealgate/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"sealgate.io/sealgate/ent/document"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/event"
	"sealgate.io/sealgate/ent/finalartifact"
	"sealgate.io/sealgate/ent/project"
	"sealgate.io/sealgate/ent/projectinvestor"
	"sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/ent/signerfieldvalue"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// Envelope is the client for interacting with the Envelope builders.
	Envelope *EnvelopeClient
	// EnvelopeField is the client for interacting with the EnvelopeField builders.
	EnvelopeField *EnvelopeFieldClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// FinalArtifact is the client for interacting with the FinalArtifact builders.
	FinalArtifact *FinalArtifactClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// ProjectInvestor is the client for interacting with the ProjectInvestor builders.
	ProjectInvestor *ProjectInvestorClient
	// Signer is the client for interacting with the Signer builders.
	Signer *SignerClient
	// SignerFieldValue is the client for interacting with the SignerFieldValue builders.
	SignerFieldValue *SignerFieldValueClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Document = NewDocumentClient(c.config)
	c.Envelope = NewEnvelopeClient(c.config)
	c.EnvelopeField = NewEnvelopeFieldClient(c.config)
	c.Event = NewEventClient(c.config)
	c.FinalArtifact = NewFinalArtifactClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.ProjectInvestor = NewProjectInvestorClient(c.config)
	c.Signer = NewSignerClient(c.config)
	c.SignerFieldValue = NewSignerFieldValueClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Document:         NewDocumentClient(cfg),
		Envelope:         NewEnvelopeClient(cfg),
		EnvelopeField:    NewEnvelopeFieldClient(cfg),
		Event:            NewEventClient(cfg),
		FinalArtifact:    NewFinalArtifactClient(cfg),
		Project:          NewProjectClient(cfg),
		ProjectInvestor:  NewProjectInvestorClient(cfg),
		Signer:           NewSignerClient(cfg),
		SignerFieldValue: NewSignerFieldValueClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Document:         NewDocumentClient(cfg),
		Envelope:         NewEnvelopeClient(cfg),
		EnvelopeField:    NewEnvelopeFieldClient(cfg),
		Event:            NewEventClient(cfg),
		FinalArtifact:    NewFinalArtifactClient(cfg),
		Project:          NewProjectClient(cfg),
		ProjectInvestor:  NewProjectInvestorClient(cfg),
		Signer:           NewSignerClient(cfg),
		SignerFieldValue: NewSignerFieldValueClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Document.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Document, c.Envelope, c.EnvelopeField, c.Event, c.FinalArtifact, c.Project,
		c.ProjectInvestor, c.Signer, c.SignerFieldValue,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Document, c.Envelope, c.EnvelopeField, c.Event, c.FinalArtifact, c.Project,
		c.ProjectInvestor, c.Signer, c.SignerFieldValue,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *EnvelopeMutation:
		return c.Envelope.mutate(ctx, m)
	case *EnvelopeFieldMutation:
		return c.EnvelopeField.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *FinalArtifactMutation:
		return c.FinalArtifact.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *ProjectInvestorMutation:
		return c.ProjectInvestor.mutate(ctx, m)
	case *SignerMutation:
		return c.Signer.mutate(ctx, m)
	case *SignerFieldValueMutation:
		return c.SignerFieldValue.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id string) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id string) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id string) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id string) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Document.
func (c *DocumentClient) QueryProject(_m *Document) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.ProjectTable, document.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEnvelopes queries the envelopes edge of a Document.
func (c *DocumentClient) QueryEnvelopes(_m *Document) *EnvelopeQuery {
	query := (&EnvelopeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(envelope.Table, envelope.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.EnvelopesTable, document.EnvelopesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// EnvelopeClient is a client for the Envelope schema.
type EnvelopeClient struct {
	config
}

// NewEnvelopeClient returns a client for the Envelope from the given config.
func NewEnvelopeClient(c config) *EnvelopeClient {
	return &EnvelopeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `envelope.Hooks(f(g(h())))`.
func (c *EnvelopeClient) Use(hooks ...Hook) {
	c.hooks.Envelope = append(c.hooks.Envelope, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `envelope.Intercept(f(g(h())))`.
func (c *EnvelopeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Envelope = append(c.inters.Envelope, interceptors...)
}

// Create returns a builder for creating a Envelope entity.
func (c *EnvelopeClient) Create() *EnvelopeCreate {
	mutation := newEnvelopeMutation(c.config, OpCreate)
	return &EnvelopeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Envelope entities.
func (c *EnvelopeClient) CreateBulk(builders ...*EnvelopeCreate) *EnvelopeCreateBulk {
	return &EnvelopeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnvelopeClient) MapCreateBulk(slice any, setFunc func(*EnvelopeCreate, int)) *EnvelopeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnvelopeCreateBulk{err: fmt.Errorf("calling to EnvelopeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnvelopeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnvelopeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Envelope.
func (c *EnvelopeClient) Update() *EnvelopeUpdate {
	mutation := newEnvelopeMutation(c.config, OpUpdate)
	return &EnvelopeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnvelopeClient) UpdateOne(_m *Envelope) *EnvelopeUpdateOne {
	mutation := newEnvelopeMutation(c.config, OpUpdateOne, withEnvelope(_m))
	return &EnvelopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnvelopeClient) UpdateOneID(id string) *EnvelopeUpdateOne {
	mutation := newEnvelopeMutation(c.config, OpUpdateOne, withEnvelopeID(id))
	return &EnvelopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Envelope.
func (c *EnvelopeClient) Delete() *EnvelopeDelete {
	mutation := newEnvelopeMutation(c.config, OpDelete)
	return &EnvelopeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnvelopeClient) DeleteOne(_m *Envelope) *EnvelopeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnvelopeClient) DeleteOneID(id string) *EnvelopeDeleteOne {
	builder := c.Delete().Where(envelope.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnvelopeDeleteOne{builder}
}

// Query returns a query builder for Envelope.
func (c *EnvelopeClient) Query() *EnvelopeQuery {
	return &EnvelopeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnvelope},
		inters: c.Interceptors(),
	}
}

// Get returns a Envelope entity by its id.
func (c *EnvelopeClient) Get(ctx context.Context, id string) (*Envelope, error) {
	return c.Query().Where(envelope.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnvelopeClient) GetX(ctx context.Context, id string) *Envelope {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Envelope.
func (c *EnvelopeClient) QueryProject(_m *Envelope) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(envelope.Table, envelope.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, envelope.ProjectTable, envelope.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocument queries the document edge of a Envelope.
func (c *EnvelopeClient) QueryDocument(_m *Envelope) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(envelope.Table, envelope.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, envelope.DocumentTable, envelope.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySigners queries the signers edge of a Envelope.
func (c *EnvelopeClient) QuerySigners(_m *Envelope) *SignerQuery {
	query := (&SignerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(envelope.Table, envelope.FieldID, id),
			sqlgraph.To(signer.Table, signer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, envelope.SignersTable, envelope.SignersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFields queries the fields edge of a Envelope.
func (c *EnvelopeClient) QueryFields(_m *Envelope) *EnvelopeFieldQuery {
	query := (&EnvelopeFieldClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(envelope.Table, envelope.FieldID, id),
			sqlgraph.To(envelopefield.Table, envelopefield.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, envelope.FieldsTable, envelope.FieldsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Envelope.
func (c *EnvelopeClient) QueryEvents(_m *Envelope) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(envelope.Table, envelope.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, envelope.EventsTable, envelope.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArtifact queries the artifact edge of a Envelope.
func (c *EnvelopeClient) QueryArtifact(_m *Envelope) *FinalArtifactQuery {
	query := (&FinalArtifactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(envelope.Table, envelope.FieldID, id),
			sqlgraph.To(finalartifact.Table, finalartifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, envelope.ArtifactTable, envelope.ArtifactColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EnvelopeClient) Hooks() []Hook {
	return c.hooks.Envelope
}

// Interceptors returns the client interceptors.
func (c *EnvelopeClient) Interceptors() []Interceptor {
	return c.inters.Envelope
}

func (c *EnvelopeClient) mutate(ctx context.Context, m *EnvelopeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnvelopeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnvelopeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnvelopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnvelopeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Envelope mutation op: %q", m.Op())
	}
}

// EnvelopeFieldClient is a client for the EnvelopeField schema.
type EnvelopeFieldClient struct {
	config
}

// NewEnvelopeFieldClient returns a client for the EnvelopeField from the given config.
func NewEnvelopeFieldClient(c config) *EnvelopeFieldClient {
	return &EnvelopeFieldClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `envelopefield.Hooks(f(g(h())))`.
func (c *EnvelopeFieldClient) Use(hooks ...Hook) {
	c.hooks.EnvelopeField = append(c.hooks.EnvelopeField, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `envelopefield.Intercept(f(g(h())))`.
func (c *EnvelopeFieldClient) Intercept(interceptors ...Interceptor) {
	c.inters.EnvelopeField = append(c.inters.EnvelopeField, interceptors...)
}

// Create returns a builder for creating a EnvelopeField entity.
func (c *EnvelopeFieldClient) Create() *EnvelopeFieldCreate {
	mutation := newEnvelopeFieldMutation(c.config, OpCreate)
	return &EnvelopeFieldCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EnvelopeField entities.
func (c *EnvelopeFieldClient) CreateBulk(builders ...*EnvelopeFieldCreate) *EnvelopeFieldCreateBulk {
	return &EnvelopeFieldCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnvelopeFieldClient) MapCreateBulk(slice any, setFunc func(*EnvelopeFieldCreate, int)) *EnvelopeFieldCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnvelopeFieldCreateBulk{err: fmt.Errorf("calling to EnvelopeFieldClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnvelopeFieldCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnvelopeFieldCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EnvelopeField.
func (c *EnvelopeFieldClient) Update() *EnvelopeFieldUpdate {
	mutation := newEnvelopeFieldMutation(c.config, OpUpdate)
	return &EnvelopeFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnvelopeFieldClient) UpdateOne(_m *EnvelopeField) *EnvelopeFieldUpdateOne {
	mutation := newEnvelopeFieldMutation(c.config, OpUpdateOne, withEnvelopeField(_m))
	return &EnvelopeFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnvelopeFieldClient) UpdateOneID(id string) *EnvelopeFieldUpdateOne {
	mutation := newEnvelopeFieldMutation(c.config, OpUpdateOne, withEnvelopeFieldID(id))
	return &EnvelopeFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EnvelopeField.
func (c *EnvelopeFieldClient) Delete() *EnvelopeFieldDelete {
	mutation := newEnvelopeFieldMutation(c.config, OpDelete)
	return &EnvelopeFieldDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnvelopeFieldClient) DeleteOne(_m *EnvelopeField) *EnvelopeFieldDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnvelopeFieldClient) DeleteOneID(id string) *EnvelopeFieldDeleteOne {
	builder := c.Delete().Where(envelopefield.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnvelopeFieldDeleteOne{builder}
}

// Query returns a query builder for EnvelopeField.
func (c *EnvelopeFieldClient) Query() *EnvelopeFieldQuery {
	return &EnvelopeFieldQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnvelopeField},
		inters: c.Interceptors(),
	}
}

// Get returns a EnvelopeField entity by its id.
func (c *EnvelopeFieldClient) Get(ctx context.Context, id string) (*EnvelopeField, error) {
	return c.Query().Where(envelopefield.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnvelopeFieldClient) GetX(ctx context.Context, id string) *EnvelopeField {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEnvelope queries the envelope edge of a EnvelopeField.
func (c *EnvelopeFieldClient) QueryEnvelope(_m *EnvelopeField) *EnvelopeQuery {
	query := (&EnvelopeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(envelopefield.Table, envelopefield.FieldID, id),
			sqlgraph.To(envelope.Table, envelope.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, envelopefield.EnvelopeTable, envelopefield.EnvelopeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySigner queries the signer edge of a EnvelopeField.
func (c *EnvelopeFieldClient) QuerySigner(_m *EnvelopeField) *SignerQuery {
	query := (&SignerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(envelopefield.Table, envelopefield.FieldID, id),
			sqlgraph.To(signer.Table, signer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, envelopefield.SignerTable, envelopefield.SignerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryValues queries the values edge of a EnvelopeField.
func (c *EnvelopeFieldClient) QueryValues(_m *EnvelopeField) *SignerFieldValueQuery {
	query := (&SignerFieldValueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(envelopefield.Table, envelopefield.FieldID, id),
			sqlgraph.To(signerfieldvalue.Table, signerfieldvalue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, envelopefield.ValuesTable, envelopefield.ValuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EnvelopeFieldClient) Hooks() []Hook {
	return c.hooks.EnvelopeField
}

// Interceptors returns the client interceptors.
func (c *EnvelopeFieldClient) Interceptors() []Interceptor {
	return c.inters.EnvelopeField
}

func (c *EnvelopeFieldClient) mutate(ctx context.Context, m *EnvelopeFieldMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnvelopeFieldCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnvelopeFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnvelopeFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnvelopeFieldDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EnvelopeField mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEnvelope queries the envelope edge of a Event.
func (c *EventClient) QueryEnvelope(_m *Event) *EnvelopeQuery {
	query := (&EnvelopeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(envelope.Table, envelope.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.EnvelopeTable, event.EnvelopeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// FinalArtifactClient is a client for the FinalArtifact schema.
type FinalArtifactClient struct {
	config
}

// NewFinalArtifactClient returns a client for the FinalArtifact from the given config.
func NewFinalArtifactClient(c config) *FinalArtifactClient {
	return &FinalArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `finalartifact.Hooks(f(g(h())))`.
func (c *FinalArtifactClient) Use(hooks ...Hook) {
	c.hooks.FinalArtifact = append(c.hooks.FinalArtifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `finalartifact.Intercept(f(g(h())))`.
func (c *FinalArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.FinalArtifact = append(c.inters.FinalArtifact, interceptors...)
}

// Create returns a builder for creating a FinalArtifact entity.
func (c *FinalArtifactClient) Create() *FinalArtifactCreate {
	mutation := newFinalArtifactMutation(c.config, OpCreate)
	return &FinalArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FinalArtifact entities.
func (c *FinalArtifactClient) CreateBulk(builders ...*FinalArtifactCreate) *FinalArtifactCreateBulk {
	return &FinalArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FinalArtifactClient) MapCreateBulk(slice any, setFunc func(*FinalArtifactCreate, int)) *FinalArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FinalArtifactCreateBulk{err: fmt.Errorf("calling to FinalArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FinalArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FinalArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FinalArtifact.
func (c *FinalArtifactClient) Update() *FinalArtifactUpdate {
	mutation := newFinalArtifactMutation(c.config, OpUpdate)
	return &FinalArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FinalArtifactClient) UpdateOne(_m *FinalArtifact) *FinalArtifactUpdateOne {
	mutation := newFinalArtifactMutation(c.config, OpUpdateOne, withFinalArtifact(_m))
	return &FinalArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FinalArtifactClient) UpdateOneID(id int) *FinalArtifactUpdateOne {
	mutation := newFinalArtifactMutation(c.config, OpUpdateOne, withFinalArtifactID(id))
	return &FinalArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FinalArtifact.
func (c *FinalArtifactClient) Delete() *FinalArtifactDelete {
	mutation := newFinalArtifactMutation(c.config, OpDelete)
	return &FinalArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FinalArtifactClient) DeleteOne(_m *FinalArtifact) *FinalArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FinalArtifactClient) DeleteOneID(id int) *FinalArtifactDeleteOne {
	builder := c.Delete().Where(finalartifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FinalArtifactDeleteOne{builder}
}

// Query returns a query builder for FinalArtifact.
func (c *FinalArtifactClient) Query() *FinalArtifactQuery {
	return &FinalArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFinalArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a FinalArtifact entity by its id.
func (c *FinalArtifactClient) Get(ctx context.Context, id int) (*FinalArtifact, error) {
	return c.Query().Where(finalartifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FinalArtifactClient) GetX(ctx context.Context, id int) *FinalArtifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEnvelope queries the envelope edge of a FinalArtifact.
func (c *FinalArtifactClient) QueryEnvelope(_m *FinalArtifact) *EnvelopeQuery {
	query := (&EnvelopeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(finalartifact.Table, finalartifact.FieldID, id),
			sqlgraph.To(envelope.Table, envelope.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, finalartifact.EnvelopeTable, finalartifact.EnvelopeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FinalArtifactClient) Hooks() []Hook {
	return c.hooks.FinalArtifact
}

// Interceptors returns the client interceptors.
func (c *FinalArtifactClient) Interceptors() []Interceptor {
	return c.inters.FinalArtifact
}

func (c *FinalArtifactClient) mutate(ctx context.Context, m *FinalArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FinalArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FinalArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FinalArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FinalArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FinalArtifact mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocuments queries the documents edge of a Project.
func (c *ProjectClient) QueryDocuments(_m *Project) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.DocumentsTable, project.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEnvelopes queries the envelopes edge of a Project.
func (c *ProjectClient) QueryEnvelopes(_m *Project) *EnvelopeQuery {
	query := (&EnvelopeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(envelope.Table, envelope.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.EnvelopesTable, project.EnvelopesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvestors queries the investors edge of a Project.
func (c *ProjectClient) QueryInvestors(_m *Project) *ProjectInvestorQuery {
	query := (&ProjectInvestorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(projectinvestor.Table, projectinvestor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.InvestorsTable, project.InvestorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// ProjectInvestorClient is a client for the ProjectInvestor schema.
type ProjectInvestorClient struct {
	config
}

// NewProjectInvestorClient returns a client for the ProjectInvestor from the given config.
func NewProjectInvestorClient(c config) *ProjectInvestorClient {
	return &ProjectInvestorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `projectinvestor.Hooks(f(g(h())))`.
func (c *ProjectInvestorClient) Use(hooks ...Hook) {
	c.hooks.ProjectInvestor = append(c.hooks.ProjectInvestor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `projectinvestor.Intercept(f(g(h())))`.
func (c *ProjectInvestorClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProjectInvestor = append(c.inters.ProjectInvestor, interceptors...)
}

// Create returns a builder for creating a ProjectInvestor entity.
func (c *ProjectInvestorClient) Create() *ProjectInvestorCreate {
	mutation := newProjectInvestorMutation(c.config, OpCreate)
	return &ProjectInvestorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProjectInvestor entities.
func (c *ProjectInvestorClient) CreateBulk(builders ...*ProjectInvestorCreate) *ProjectInvestorCreateBulk {
	return &ProjectInvestorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectInvestorClient) MapCreateBulk(slice any, setFunc func(*ProjectInvestorCreate, int)) *ProjectInvestorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectInvestorCreateBulk{err: fmt.Errorf("calling to ProjectInvestorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectInvestorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectInvestorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProjectInvestor.
func (c *ProjectInvestorClient) Update() *ProjectInvestorUpdate {
	mutation := newProjectInvestorMutation(c.config, OpUpdate)
	return &ProjectInvestorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectInvestorClient) UpdateOne(_m *ProjectInvestor) *ProjectInvestorUpdateOne {
	mutation := newProjectInvestorMutation(c.config, OpUpdateOne, withProjectInvestor(_m))
	return &ProjectInvestorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectInvestorClient) UpdateOneID(id string) *ProjectInvestorUpdateOne {
	mutation := newProjectInvestorMutation(c.config, OpUpdateOne, withProjectInvestorID(id))
	return &ProjectInvestorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProjectInvestor.
func (c *ProjectInvestorClient) Delete() *ProjectInvestorDelete {
	mutation := newProjectInvestorMutation(c.config, OpDelete)
	return &ProjectInvestorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectInvestorClient) DeleteOne(_m *ProjectInvestor) *ProjectInvestorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectInvestorClient) DeleteOneID(id string) *ProjectInvestorDeleteOne {
	builder := c.Delete().Where(projectinvestor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectInvestorDeleteOne{builder}
}

// Query returns a query builder for ProjectInvestor.
func (c *ProjectInvestorClient) Query() *ProjectInvestorQuery {
	return &ProjectInvestorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProjectInvestor},
		inters: c.Interceptors(),
	}
}

// Get returns a ProjectInvestor entity by its id.
func (c *ProjectInvestorClient) Get(ctx context.Context, id string) (*ProjectInvestor, error) {
	return c.Query().Where(projectinvestor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectInvestorClient) GetX(ctx context.Context, id string) *ProjectInvestor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a ProjectInvestor.
func (c *ProjectInvestorClient) QueryProject(_m *ProjectInvestor) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(projectinvestor.Table, projectinvestor.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, projectinvestor.ProjectTable, projectinvestor.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectInvestorClient) Hooks() []Hook {
	return c.hooks.ProjectInvestor
}

// Interceptors returns the client interceptors.
func (c *ProjectInvestorClient) Interceptors() []Interceptor {
	return c.inters.ProjectInvestor
}

func (c *ProjectInvestorClient) mutate(ctx context.Context, m *ProjectInvestorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectInvestorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectInvestorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectInvestorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectInvestorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProjectInvestor mutation op: %q", m.Op())
	}
}

// SignerClient is a client for the Signer schema.
type SignerClient struct {
	config
}

// NewSignerClient returns a client for the Signer from the given config.
func NewSignerClient(c config) *SignerClient {
	return &SignerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `signer.Hooks(f(g(h())))`.
func (c *SignerClient) Use(hooks ...Hook) {
	c.hooks.Signer = append(c.hooks.Signer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `signer.Intercept(f(g(h())))`.
func (c *SignerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Signer = append(c.inters.Signer, interceptors...)
}

// Create returns a builder for creating a Signer entity.
func (c *SignerClient) Create() *SignerCreate {
	mutation := newSignerMutation(c.config, OpCreate)
	return &SignerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Signer entities.
func (c *SignerClient) CreateBulk(builders ...*SignerCreate) *SignerCreateBulk {
	return &SignerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SignerClient) MapCreateBulk(slice any, setFunc func(*SignerCreate, int)) *SignerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SignerCreateBulk{err: fmt.Errorf("calling to SignerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SignerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SignerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Signer.
func (c *SignerClient) Update() *SignerUpdate {
	mutation := newSignerMutation(c.config, OpUpdate)
	return &SignerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SignerClient) UpdateOne(_m *Signer) *SignerUpdateOne {
	mutation := newSignerMutation(c.config, OpUpdateOne, withSigner(_m))
	return &SignerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SignerClient) UpdateOneID(id string) *SignerUpdateOne {
	mutation := newSignerMutation(c.config, OpUpdateOne, withSignerID(id))
	return &SignerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Signer.
func (c *SignerClient) Delete() *SignerDelete {
	mutation := newSignerMutation(c.config, OpDelete)
	return &SignerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SignerClient) DeleteOne(_m *Signer) *SignerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SignerClient) DeleteOneID(id string) *SignerDeleteOne {
	builder := c.Delete().Where(signer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SignerDeleteOne{builder}
}

// Query returns a query builder for Signer.
func (c *SignerClient) Query() *SignerQuery {
	return &SignerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSigner},
		inters: c.Interceptors(),
	}
}

// Get returns a Signer entity by its id.
func (c *SignerClient) Get(ctx context.Context, id string) (*Signer, error) {
	return c.Query().Where(signer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SignerClient) GetX(ctx context.Context, id string) *Signer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEnvelope queries the envelope edge of a Signer.
func (c *SignerClient) QueryEnvelope(_m *Signer) *EnvelopeQuery {
	query := (&EnvelopeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(signer.Table, signer.FieldID, id),
			sqlgraph.To(envelope.Table, envelope.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, signer.EnvelopeTable, signer.EnvelopeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFields queries the fields edge of a Signer.
func (c *SignerClient) QueryFields(_m *Signer) *EnvelopeFieldQuery {
	query := (&EnvelopeFieldClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(signer.Table, signer.FieldID, id),
			sqlgraph.To(envelopefield.Table, envelopefield.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, signer.FieldsTable, signer.FieldsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryValues queries the values edge of a Signer.
func (c *SignerClient) QueryValues(_m *Signer) *SignerFieldValueQuery {
	query := (&SignerFieldValueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(signer.Table, signer.FieldID, id),
			sqlgraph.To(signerfieldvalue.Table, signerfieldvalue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, signer.ValuesTable, signer.ValuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SignerClient) Hooks() []Hook {
	return c.hooks.Signer
}

// Interceptors returns the client interceptors.
func (c *SignerClient) Interceptors() []Interceptor {
	return c.inters.Signer
}

func (c *SignerClient) mutate(ctx context.Context, m *SignerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SignerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SignerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SignerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SignerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Signer mutation op: %q", m.Op())
	}
}

// SignerFieldValueClient is a client for the SignerFieldValue schema.
type SignerFieldValueClient struct {
	config
}

// NewSignerFieldValueClient returns a client for the SignerFieldValue from the given config.
func NewSignerFieldValueClient(c config) *SignerFieldValueClient {
	return &SignerFieldValueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `signerfieldvalue.Hooks(f(g(h())))`.
func (c *SignerFieldValueClient) Use(hooks ...Hook) {
	c.hooks.SignerFieldValue = append(c.hooks.SignerFieldValue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `signerfieldvalue.Intercept(f(g(h())))`.
func (c *SignerFieldValueClient) Intercept(interceptors ...Interceptor) {
	c.inters.SignerFieldValue = append(c.inters.SignerFieldValue, interceptors...)
}

// Create returns a builder for creating a SignerFieldValue entity.
func (c *SignerFieldValueClient) Create() *SignerFieldValueCreate {
	mutation := newSignerFieldValueMutation(c.config, OpCreate)
	return &SignerFieldValueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SignerFieldValue entities.
func (c *SignerFieldValueClient) CreateBulk(builders ...*SignerFieldValueCreate) *SignerFieldValueCreateBulk {
	return &SignerFieldValueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SignerFieldValueClient) MapCreateBulk(slice any, setFunc func(*SignerFieldValueCreate, int)) *SignerFieldValueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SignerFieldValueCreateBulk{err: fmt.Errorf("calling to SignerFieldValueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SignerFieldValueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SignerFieldValueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SignerFieldValue.
func (c *SignerFieldValueClient) Update() *SignerFieldValueUpdate {
	mutation := newSignerFieldValueMutation(c.config, OpUpdate)
	return &SignerFieldValueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SignerFieldValueClient) UpdateOne(_m *SignerFieldValue) *SignerFieldValueUpdateOne {
	mutation := newSignerFieldValueMutation(c.config, OpUpdateOne, withSignerFieldValue(_m))
	return &SignerFieldValueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SignerFieldValueClient) UpdateOneID(id int) *SignerFieldValueUpdateOne {
	mutation := newSignerFieldValueMutation(c.config, OpUpdateOne, withSignerFieldValueID(id))
	return &SignerFieldValueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SignerFieldValue.
func (c *SignerFieldValueClient) Delete() *SignerFieldValueDelete {
	mutation := newSignerFieldValueMutation(c.config, OpDelete)
	return &SignerFieldValueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SignerFieldValueClient) DeleteOne(_m *SignerFieldValue) *SignerFieldValueDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SignerFieldValueClient) DeleteOneID(id int) *SignerFieldValueDeleteOne {
	builder := c.Delete().Where(signerfieldvalue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SignerFieldValueDeleteOne{builder}
}

// Query returns a query builder for SignerFieldValue.
func (c *SignerFieldValueClient) Query() *SignerFieldValueQuery {
	return &SignerFieldValueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSignerFieldValue},
		inters: c.Interceptors(),
	}
}

// Get returns a SignerFieldValue entity by its id.
func (c *SignerFieldValueClient) Get(ctx context.Context, id int) (*SignerFieldValue, error) {
	return c.Query().Where(signerfieldvalue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SignerFieldValueClient) GetX(ctx context.Context, id int) *SignerFieldValue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySigner queries the signer edge of a SignerFieldValue.
func (c *SignerFieldValueClient) QuerySigner(_m *SignerFieldValue) *SignerQuery {
	query := (&SignerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(signerfieldvalue.Table, signerfieldvalue.FieldID, id),
			sqlgraph.To(signer.Table, signer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, signerfieldvalue.SignerTable, signerfieldvalue.SignerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryField queries the field edge of a SignerFieldValue.
func (c *SignerFieldValueClient) QueryField(_m *SignerFieldValue) *EnvelopeFieldQuery {
	query := (&EnvelopeFieldClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(signerfieldvalue.Table, signerfieldvalue.FieldID, id),
			sqlgraph.To(envelopefield.Table, envelopefield.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, signerfieldvalue.FieldTable, signerfieldvalue.FieldColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SignerFieldValueClient) Hooks() []Hook {
	return c.hooks.SignerFieldValue
}

// Interceptors returns the client interceptors.
func (c *SignerFieldValueClient) Interceptors() []Interceptor {
	return c.inters.SignerFieldValue
}

func (c *SignerFieldValueClient) mutate(ctx context.Context, m *SignerFieldValueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SignerFieldValueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SignerFieldValueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SignerFieldValueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SignerFieldValueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SignerFieldValue mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Document, Envelope, EnvelopeField, Event, FinalArtifact, Project,
		ProjectInvestor, Signer, SignerFieldValue []ent.Hook
	}
	inters struct {
		Document, Envelope, EnvelopeField, Event, FinalArtifact, Project,
		ProjectInvestor, Signer, SignerFieldValue []ent.Interceptor
	}
)
