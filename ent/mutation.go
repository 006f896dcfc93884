// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sealgate.io/sealgate/ent/document"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/event"
	"sealgate.io/sealgate/ent/finalartifact"
	"sealgate.io/sealgate/ent/predicate"
	"sealgate.io/sealgate/ent/project"
	"sealgate.io/sealgate/ent/projectinvestor"
	"sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/ent/signerfieldvalue"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument         = "Document"
	TypeEnvelope         = "Envelope"
	TypeEnvelopeField    = "EnvelopeField"
	TypeEvent            = "Event"
	TypeFinalArtifact    = "FinalArtifact"
	TypeProject          = "Project"
	TypeProjectInvestor  = "ProjectInvestor"
	TypeSigner           = "Signer"
	TypeSignerFieldValue = "SignerFieldValue"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	filename         *string
	storage_key      *string
	sha256           *string
	version          *int
	addversion       *int
	clearedFields    map[string]struct{}
	project          *string
	clearedproject   bool
	envelopes        map[string]struct{}
	removedenvelopes map[string]struct{}
	clearedenvelopes bool
	done             bool
	oldValue         func(context.Context) (*Document, error)
	predicates       []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id string) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *DocumentMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *DocumentMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *DocumentMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetSha256 sets the "sha256" field.
func (m *DocumentMutation) SetSha256(s string) {
	m.sha256 = &s
}

// Sha256 returns the value of the "sha256" field in the mutation.
func (m *DocumentMutation) Sha256() (r string, exists bool) {
	v := m.sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldSha256 returns the old "sha256" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSha256: %w", err)
	}
	return oldValue.Sha256, nil
}

// ClearSha256 clears the value of the "sha256" field.
func (m *DocumentMutation) ClearSha256() {
	m.sha256 = nil
	m.clearedFields[document.FieldSha256] = struct{}{}
}

// Sha256Cleared returns if the "sha256" field was cleared in this mutation.
func (m *DocumentMutation) Sha256Cleared() bool {
	_, ok := m.clearedFields[document.FieldSha256]
	return ok
}

// ResetSha256 resets all changes to the "sha256" field.
func (m *DocumentMutation) ResetSha256() {
	m.sha256 = nil
	delete(m.clearedFields, document.FieldSha256)
}

// SetVersion sets the "version" field.
func (m *DocumentMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *DocumentMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *DocumentMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *DocumentMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *DocumentMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetProjectID sets the "project" edge to the Project entity by id.
func (m *DocumentMutation) SetProjectID(id string) {
	m.project = &id
}

// ClearProject clears the "project" edge to the Project entity.
func (m *DocumentMutation) ClearProject() {
	m.clearedproject = true
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *DocumentMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectID returns the "project" edge ID in the mutation.
func (m *DocumentMutation) ProjectID() (id string, exists bool) {
	if m.project != nil {
		return *m.project, true
	}
	return
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *DocumentMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddEnvelopeIDs adds the "envelopes" edge to the Envelope entity by ids.
func (m *DocumentMutation) AddEnvelopeIDs(ids ...string) {
	if m.envelopes == nil {
		m.envelopes = make(map[string]struct{})
	}
	for i := range ids {
		m.envelopes[ids[i]] = struct{}{}
	}
}

// ClearEnvelopes clears the "envelopes" edge to the Envelope entity.
func (m *DocumentMutation) ClearEnvelopes() {
	m.clearedenvelopes = true
}

// EnvelopesCleared reports if the "envelopes" edge to the Envelope entity was cleared.
func (m *DocumentMutation) EnvelopesCleared() bool {
	return m.clearedenvelopes
}

// RemoveEnvelopeIDs removes the "envelopes" edge to the Envelope entity by IDs.
func (m *DocumentMutation) RemoveEnvelopeIDs(ids ...string) {
	if m.removedenvelopes == nil {
		m.removedenvelopes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.envelopes, ids[i])
		m.removedenvelopes[ids[i]] = struct{}{}
	}
}

// RemovedEnvelopes returns the removed IDs of the "envelopes" edge to the Envelope entity.
func (m *DocumentMutation) RemovedEnvelopesIDs() (ids []string) {
	for id := range m.removedenvelopes {
		ids = append(ids, id)
	}
	return
}

// EnvelopesIDs returns the "envelopes" edge IDs in the mutation.
func (m *DocumentMutation) EnvelopesIDs() (ids []string) {
	for id := range m.envelopes {
		ids = append(ids, id)
	}
	return
}

// ResetEnvelopes resets all changes to the "envelopes" edge.
func (m *DocumentMutation) ResetEnvelopes() {
	m.envelopes = nil
	m.clearedenvelopes = false
	m.removedenvelopes = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.storage_key != nil {
		fields = append(fields, document.FieldStorageKey)
	}
	if m.sha256 != nil {
		fields = append(fields, document.FieldSha256)
	}
	if m.version != nil {
		fields = append(fields, document.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldStorageKey:
		return m.StorageKey()
	case document.FieldSha256:
		return m.Sha256()
	case document.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case document.FieldSha256:
		return m.OldSha256(ctx)
	case document.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case document.FieldSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSha256(v)
		return nil
	case document.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, document.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldSha256) {
		fields = append(fields, document.FieldSha256)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldSha256:
		m.ClearSha256()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case document.FieldSha256:
		m.ResetSha256()
		return nil
	case document.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, document.EdgeProject)
	}
	if m.envelopes != nil {
		edges = append(edges, document.EdgeEnvelopes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeEnvelopes:
		ids := make([]ent.Value, 0, len(m.envelopes))
		for id := range m.envelopes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedenvelopes != nil {
		edges = append(edges, document.EdgeEnvelopes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeEnvelopes:
		ids := make([]ent.Value, 0, len(m.removedenvelopes))
		for id := range m.removedenvelopes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, document.EdgeProject)
	}
	if m.clearedenvelopes {
		edges = append(edges, document.EdgeEnvelopes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeProject:
		return m.clearedproject
	case document.EdgeEnvelopes:
		return m.clearedenvelopes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeProject:
		m.ResetProject()
		return nil
	case document.EdgeEnvelopes:
		m.ResetEnvelopes()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// EnvelopeMutation represents an operation that mutates the Envelope nodes in the graph.
type EnvelopeMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	updated_at      *time.Time
	subject         *string
	message         *string
	status          *envelope.Status
	expires_at      *time.Time
	requester_name  *string
	requester_email *string
	clearedFields   map[string]struct{}
	project         *string
	clearedproject  bool
	document        *string
	cleareddocument bool
	signers         map[string]struct{}
	removedsigners  map[string]struct{}
	clearedsigners  bool
	fields          map[string]struct{}
	removedfields   map[string]struct{}
	clearedfields   bool
	events          map[int]struct{}
	removedevents   map[int]struct{}
	clearedevents   bool
	artifact        *int
	clearedartifact bool
	done            bool
	oldValue        func(context.Context) (*Envelope, error)
	predicates      []predicate.Envelope
}

var _ ent.Mutation = (*EnvelopeMutation)(nil)

// envelopeOption allows management of the mutation configuration using functional options.
type envelopeOption func(*EnvelopeMutation)

// newEnvelopeMutation creates new mutation for the Envelope entity.
func newEnvelopeMutation(c config, op Op, opts ...envelopeOption) *EnvelopeMutation {
	m := &EnvelopeMutation{
		config:        c,
		op:            op,
		typ:           TypeEnvelope,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnvelopeID sets the ID field of the mutation.
func withEnvelopeID(id string) envelopeOption {
	return func(m *EnvelopeMutation) {
		var (
			err   error
			once  sync.Once
			value *Envelope
		)
		m.oldValue = func(ctx context.Context) (*Envelope, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Envelope.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnvelope sets the old Envelope of the mutation.
func withEnvelope(node *Envelope) envelopeOption {
	return func(m *EnvelopeMutation) {
		m.oldValue = func(context.Context) (*Envelope, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnvelopeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnvelopeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Envelope entities.
func (m *EnvelopeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnvelopeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnvelopeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Envelope.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EnvelopeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EnvelopeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Envelope entity.
// If the Envelope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EnvelopeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EnvelopeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EnvelopeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Envelope entity.
// If the Envelope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EnvelopeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSubject sets the "subject" field.
func (m *EnvelopeMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *EnvelopeMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Envelope entity.
// If the Envelope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *EnvelopeMutation) ResetSubject() {
	m.subject = nil
}

// SetMessage sets the "message" field.
func (m *EnvelopeMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *EnvelopeMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Envelope entity.
// If the Envelope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *EnvelopeMutation) ResetMessage() {
	m.message = nil
}

// SetStatus sets the "status" field.
func (m *EnvelopeMutation) SetStatus(e envelope.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EnvelopeMutation) Status() (r envelope.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Envelope entity.
// If the Envelope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeMutation) OldStatus(ctx context.Context) (v envelope.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EnvelopeMutation) ResetStatus() {
	m.status = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *EnvelopeMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *EnvelopeMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Envelope entity.
// If the Envelope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *EnvelopeMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[envelope.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *EnvelopeMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[envelope.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *EnvelopeMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, envelope.FieldExpiresAt)
}

// SetRequesterName sets the "requester_name" field.
func (m *EnvelopeMutation) SetRequesterName(s string) {
	m.requester_name = &s
}

// RequesterName returns the value of the "requester_name" field in the mutation.
func (m *EnvelopeMutation) RequesterName() (r string, exists bool) {
	v := m.requester_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRequesterName returns the old "requester_name" field's value of the Envelope entity.
// If the Envelope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeMutation) OldRequesterName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequesterName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequesterName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequesterName: %w", err)
	}
	return oldValue.RequesterName, nil
}

// ClearRequesterName clears the value of the "requester_name" field.
func (m *EnvelopeMutation) ClearRequesterName() {
	m.requester_name = nil
	m.clearedFields[envelope.FieldRequesterName] = struct{}{}
}

// RequesterNameCleared returns if the "requester_name" field was cleared in this mutation.
func (m *EnvelopeMutation) RequesterNameCleared() bool {
	_, ok := m.clearedFields[envelope.FieldRequesterName]
	return ok
}

// ResetRequesterName resets all changes to the "requester_name" field.
func (m *EnvelopeMutation) ResetRequesterName() {
	m.requester_name = nil
	delete(m.clearedFields, envelope.FieldRequesterName)
}

// SetRequesterEmail sets the "requester_email" field.
func (m *EnvelopeMutation) SetRequesterEmail(s string) {
	m.requester_email = &s
}

// RequesterEmail returns the value of the "requester_email" field in the mutation.
func (m *EnvelopeMutation) RequesterEmail() (r string, exists bool) {
	v := m.requester_email
	if v == nil {
		return
	}
	return *v, true
}

// OldRequesterEmail returns the old "requester_email" field's value of the Envelope entity.
// If the Envelope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeMutation) OldRequesterEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequesterEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequesterEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequesterEmail: %w", err)
	}
	return oldValue.RequesterEmail, nil
}

// ClearRequesterEmail clears the value of the "requester_email" field.
func (m *EnvelopeMutation) ClearRequesterEmail() {
	m.requester_email = nil
	m.clearedFields[envelope.FieldRequesterEmail] = struct{}{}
}

// RequesterEmailCleared returns if the "requester_email" field was cleared in this mutation.
func (m *EnvelopeMutation) RequesterEmailCleared() bool {
	_, ok := m.clearedFields[envelope.FieldRequesterEmail]
	return ok
}

// ResetRequesterEmail resets all changes to the "requester_email" field.
func (m *EnvelopeMutation) ResetRequesterEmail() {
	m.requester_email = nil
	delete(m.clearedFields, envelope.FieldRequesterEmail)
}

// SetProjectID sets the "project" edge to the Project entity by id.
func (m *EnvelopeMutation) SetProjectID(id string) {
	m.project = &id
}

// ClearProject clears the "project" edge to the Project entity.
func (m *EnvelopeMutation) ClearProject() {
	m.clearedproject = true
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *EnvelopeMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectID returns the "project" edge ID in the mutation.
func (m *EnvelopeMutation) ProjectID() (id string, exists bool) {
	if m.project != nil {
		return *m.project, true
	}
	return
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *EnvelopeMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *EnvelopeMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// SetDocumentID sets the "document" edge to the Document entity by id.
func (m *EnvelopeMutation) SetDocumentID(id string) {
	m.document = &id
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *EnvelopeMutation) ClearDocument() {
	m.cleareddocument = true
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *EnvelopeMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentID returns the "document" edge ID in the mutation.
func (m *EnvelopeMutation) DocumentID() (id string, exists bool) {
	if m.document != nil {
		return *m.document, true
	}
	return
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *EnvelopeMutation) DocumentIDs() (ids []string) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *EnvelopeMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddSignerIDs adds the "signers" edge to the Signer entity by ids.
func (m *EnvelopeMutation) AddSignerIDs(ids ...string) {
	if m.signers == nil {
		m.signers = make(map[string]struct{})
	}
	for i := range ids {
		m.signers[ids[i]] = struct{}{}
	}
}

// ClearSigners clears the "signers" edge to the Signer entity.
func (m *EnvelopeMutation) ClearSigners() {
	m.clearedsigners = true
}

// SignersCleared reports if the "signers" edge to the Signer entity was cleared.
func (m *EnvelopeMutation) SignersCleared() bool {
	return m.clearedsigners
}

// RemoveSignerIDs removes the "signers" edge to the Signer entity by IDs.
func (m *EnvelopeMutation) RemoveSignerIDs(ids ...string) {
	if m.removedsigners == nil {
		m.removedsigners = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.signers, ids[i])
		m.removedsigners[ids[i]] = struct{}{}
	}
}

// RemovedSigners returns the removed IDs of the "signers" edge to the Signer entity.
func (m *EnvelopeMutation) RemovedSignersIDs() (ids []string) {
	for id := range m.removedsigners {
		ids = append(ids, id)
	}
	return
}

// SignersIDs returns the "signers" edge IDs in the mutation.
func (m *EnvelopeMutation) SignersIDs() (ids []string) {
	for id := range m.signers {
		ids = append(ids, id)
	}
	return
}

// ResetSigners resets all changes to the "signers" edge.
func (m *EnvelopeMutation) ResetSigners() {
	m.signers = nil
	m.clearedsigners = false
	m.removedsigners = nil
}

// AddFieldIDs adds the "fields" edge to the EnvelopeField entity by ids.
func (m *EnvelopeMutation) AddFieldIDs(ids ...string) {
	if m.fields == nil {
		m.fields = make(map[string]struct{})
	}
	for i := range ids {
		m.fields[ids[i]] = struct{}{}
	}
}

// ClearFields clears the "fields" edge to the EnvelopeField entity.
func (m *EnvelopeMutation) ClearFields() {
	m.clearedfields = true
}

// FieldsCleared reports if the "fields" edge to the EnvelopeField entity was cleared.
func (m *EnvelopeMutation) FieldsCleared() bool {
	return m.clearedfields
}

// RemoveFieldIDs removes the "fields" edge to the EnvelopeField entity by IDs.
func (m *EnvelopeMutation) RemoveFieldIDs(ids ...string) {
	if m.removedfields == nil {
		m.removedfields = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.fields, ids[i])
		m.removedfields[ids[i]] = struct{}{}
	}
}

// RemovedFields returns the removed IDs of the "fields" edge to the EnvelopeField entity.
func (m *EnvelopeMutation) RemovedFieldsIDs() (ids []string) {
	for id := range m.removedfields {
		ids = append(ids, id)
	}
	return
}

// FieldsIDs returns the "fields" edge IDs in the mutation.
func (m *EnvelopeMutation) FieldsIDs() (ids []string) {
	for id := range m.fields {
		ids = append(ids, id)
	}
	return
}

// ResetFields resets all changes to the "fields" edge.
func (m *EnvelopeMutation) ResetFields() {
	m.fields = nil
	m.clearedfields = false
	m.removedfields = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *EnvelopeMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *EnvelopeMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *EnvelopeMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *EnvelopeMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *EnvelopeMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *EnvelopeMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *EnvelopeMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// SetArtifactID sets the "artifact" edge to the FinalArtifact entity by id.
func (m *EnvelopeMutation) SetArtifactID(id int) {
	m.artifact = &id
}

// ClearArtifact clears the "artifact" edge to the FinalArtifact entity.
func (m *EnvelopeMutation) ClearArtifact() {
	m.clearedartifact = true
}

// ArtifactCleared reports if the "artifact" edge to the FinalArtifact entity was cleared.
func (m *EnvelopeMutation) ArtifactCleared() bool {
	return m.clearedartifact
}

// ArtifactID returns the "artifact" edge ID in the mutation.
func (m *EnvelopeMutation) ArtifactID() (id int, exists bool) {
	if m.artifact != nil {
		return *m.artifact, true
	}
	return
}

// ArtifactIDs returns the "artifact" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArtifactID instead. It exists only for internal usage by the builders.
func (m *EnvelopeMutation) ArtifactIDs() (ids []int) {
	if id := m.artifact; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArtifact resets all changes to the "artifact" edge.
func (m *EnvelopeMutation) ResetArtifact() {
	m.artifact = nil
	m.clearedartifact = false
}

// Where appends a list predicates to the EnvelopeMutation builder.
func (m *EnvelopeMutation) Where(ps ...predicate.Envelope) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnvelopeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnvelopeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Envelope, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnvelopeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnvelopeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Envelope).
func (m *EnvelopeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnvelopeMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, envelope.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, envelope.FieldUpdatedAt)
	}
	if m.subject != nil {
		fields = append(fields, envelope.FieldSubject)
	}
	if m.message != nil {
		fields = append(fields, envelope.FieldMessage)
	}
	if m.status != nil {
		fields = append(fields, envelope.FieldStatus)
	}
	if m.expires_at != nil {
		fields = append(fields, envelope.FieldExpiresAt)
	}
	if m.requester_name != nil {
		fields = append(fields, envelope.FieldRequesterName)
	}
	if m.requester_email != nil {
		fields = append(fields, envelope.FieldRequesterEmail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnvelopeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case envelope.FieldCreatedAt:
		return m.CreatedAt()
	case envelope.FieldUpdatedAt:
		return m.UpdatedAt()
	case envelope.FieldSubject:
		return m.Subject()
	case envelope.FieldMessage:
		return m.Message()
	case envelope.FieldStatus:
		return m.Status()
	case envelope.FieldExpiresAt:
		return m.ExpiresAt()
	case envelope.FieldRequesterName:
		return m.RequesterName()
	case envelope.FieldRequesterEmail:
		return m.RequesterEmail()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnvelopeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case envelope.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case envelope.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case envelope.FieldSubject:
		return m.OldSubject(ctx)
	case envelope.FieldMessage:
		return m.OldMessage(ctx)
	case envelope.FieldStatus:
		return m.OldStatus(ctx)
	case envelope.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case envelope.FieldRequesterName:
		return m.OldRequesterName(ctx)
	case envelope.FieldRequesterEmail:
		return m.OldRequesterEmail(ctx)
	}
	return nil, fmt.Errorf("unknown Envelope field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvelopeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case envelope.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case envelope.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case envelope.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case envelope.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case envelope.FieldStatus:
		v, ok := value.(envelope.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case envelope.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case envelope.FieldRequesterName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequesterName(v)
		return nil
	case envelope.FieldRequesterEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequesterEmail(v)
		return nil
	}
	return fmt.Errorf("unknown Envelope field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnvelopeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnvelopeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvelopeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Envelope numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnvelopeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(envelope.FieldExpiresAt) {
		fields = append(fields, envelope.FieldExpiresAt)
	}
	if m.FieldCleared(envelope.FieldRequesterName) {
		fields = append(fields, envelope.FieldRequesterName)
	}
	if m.FieldCleared(envelope.FieldRequesterEmail) {
		fields = append(fields, envelope.FieldRequesterEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnvelopeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnvelopeMutation) ClearField(name string) error {
	switch name {
	case envelope.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case envelope.FieldRequesterName:
		m.ClearRequesterName()
		return nil
	case envelope.FieldRequesterEmail:
		m.ClearRequesterEmail()
		return nil
	}
	return fmt.Errorf("unknown Envelope nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnvelopeMutation) ResetField(name string) error {
	switch name {
	case envelope.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case envelope.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case envelope.FieldSubject:
		m.ResetSubject()
		return nil
	case envelope.FieldMessage:
		m.ResetMessage()
		return nil
	case envelope.FieldStatus:
		m.ResetStatus()
		return nil
	case envelope.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case envelope.FieldRequesterName:
		m.ResetRequesterName()
		return nil
	case envelope.FieldRequesterEmail:
		m.ResetRequesterEmail()
		return nil
	}
	return fmt.Errorf("unknown Envelope field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnvelopeMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.project != nil {
		edges = append(edges, envelope.EdgeProject)
	}
	if m.document != nil {
		edges = append(edges, envelope.EdgeDocument)
	}
	if m.signers != nil {
		edges = append(edges, envelope.EdgeSigners)
	}
	if m.fields != nil {
		edges = append(edges, envelope.EdgeFields)
	}
	if m.events != nil {
		edges = append(edges, envelope.EdgeEvents)
	}
	if m.artifact != nil {
		edges = append(edges, envelope.EdgeArtifact)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnvelopeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case envelope.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case envelope.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case envelope.EdgeSigners:
		ids := make([]ent.Value, 0, len(m.signers))
		for id := range m.signers {
			ids = append(ids, id)
		}
		return ids
	case envelope.EdgeFields:
		ids := make([]ent.Value, 0, len(m.fields))
		for id := range m.fields {
			ids = append(ids, id)
		}
		return ids
	case envelope.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case envelope.EdgeArtifact:
		if id := m.artifact; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnvelopeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedsigners != nil {
		edges = append(edges, envelope.EdgeSigners)
	}
	if m.removedfields != nil {
		edges = append(edges, envelope.EdgeFields)
	}
	if m.removedevents != nil {
		edges = append(edges, envelope.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnvelopeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case envelope.EdgeSigners:
		ids := make([]ent.Value, 0, len(m.removedsigners))
		for id := range m.removedsigners {
			ids = append(ids, id)
		}
		return ids
	case envelope.EdgeFields:
		ids := make([]ent.Value, 0, len(m.removedfields))
		for id := range m.removedfields {
			ids = append(ids, id)
		}
		return ids
	case envelope.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnvelopeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedproject {
		edges = append(edges, envelope.EdgeProject)
	}
	if m.cleareddocument {
		edges = append(edges, envelope.EdgeDocument)
	}
	if m.clearedsigners {
		edges = append(edges, envelope.EdgeSigners)
	}
	if m.clearedfields {
		edges = append(edges, envelope.EdgeFields)
	}
	if m.clearedevents {
		edges = append(edges, envelope.EdgeEvents)
	}
	if m.clearedartifact {
		edges = append(edges, envelope.EdgeArtifact)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnvelopeMutation) EdgeCleared(name string) bool {
	switch name {
	case envelope.EdgeProject:
		return m.clearedproject
	case envelope.EdgeDocument:
		return m.cleareddocument
	case envelope.EdgeSigners:
		return m.clearedsigners
	case envelope.EdgeFields:
		return m.clearedfields
	case envelope.EdgeEvents:
		return m.clearedevents
	case envelope.EdgeArtifact:
		return m.clearedartifact
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnvelopeMutation) ClearEdge(name string) error {
	switch name {
	case envelope.EdgeProject:
		m.ClearProject()
		return nil
	case envelope.EdgeDocument:
		m.ClearDocument()
		return nil
	case envelope.EdgeArtifact:
		m.ClearArtifact()
		return nil
	}
	return fmt.Errorf("unknown Envelope unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnvelopeMutation) ResetEdge(name string) error {
	switch name {
	case envelope.EdgeProject:
		m.ResetProject()
		return nil
	case envelope.EdgeDocument:
		m.ResetDocument()
		return nil
	case envelope.EdgeSigners:
		m.ResetSigners()
		return nil
	case envelope.EdgeFields:
		m.ResetFields()
		return nil
	case envelope.EdgeEvents:
		m.ResetEvents()
		return nil
	case envelope.EdgeArtifact:
		m.ResetArtifact()
		return nil
	}
	return fmt.Errorf("unknown Envelope edge %s", name)
}

// EnvelopeFieldMutation represents an operation that mutates the EnvelopeField nodes in the graph.
type EnvelopeFieldMutation struct {
	config
	op              Op
	typ             string
	id              *string
	page            *int
	addpage         *int
	x               *float64
	addx            *float64
	y               *float64
	addy            *float64
	w               *float64
	addw            *float64
	h               *float64
	addh            *float64
	_type           *envelopefield.Type
	required        *bool
	role            *string
	name            *string
	font_family     *string
	clearedFields   map[string]struct{}
	envelope        *string
	clearedenvelope bool
	signer          *string
	clearedsigner   bool
	values          map[int]struct{}
	removedvalues   map[int]struct{}
	clearedvalues   bool
	done            bool
	oldValue        func(context.Context) (*EnvelopeField, error)
	predicates      []predicate.EnvelopeField
}

var _ ent.Mutation = (*EnvelopeFieldMutation)(nil)

// envelopefieldOption allows management of the mutation configuration using functional options.
type envelopefieldOption func(*EnvelopeFieldMutation)

// newEnvelopeFieldMutation creates new mutation for the EnvelopeField entity.
func newEnvelopeFieldMutation(c config, op Op, opts ...envelopefieldOption) *EnvelopeFieldMutation {
	m := &EnvelopeFieldMutation{
		config:        c,
		op:            op,
		typ:           TypeEnvelopeField,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnvelopeFieldID sets the ID field of the mutation.
func withEnvelopeFieldID(id string) envelopefieldOption {
	return func(m *EnvelopeFieldMutation) {
		var (
			err   error
			once  sync.Once
			value *EnvelopeField
		)
		m.oldValue = func(ctx context.Context) (*EnvelopeField, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EnvelopeField.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnvelopeField sets the old EnvelopeField of the mutation.
func withEnvelopeField(node *EnvelopeField) envelopefieldOption {
	return func(m *EnvelopeFieldMutation) {
		m.oldValue = func(context.Context) (*EnvelopeField, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnvelopeFieldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnvelopeFieldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EnvelopeField entities.
func (m *EnvelopeFieldMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnvelopeFieldMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnvelopeFieldMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EnvelopeField.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPage sets the "page" field.
func (m *EnvelopeFieldMutation) SetPage(i int) {
	m.page = &i
	m.addpage = nil
}

// Page returns the value of the "page" field in the mutation.
func (m *EnvelopeFieldMutation) Page() (r int, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPage returns the old "page" field's value of the EnvelopeField entity.
// If the EnvelopeField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeFieldMutation) OldPage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPage: %w", err)
	}
	return oldValue.Page, nil
}

// AddPage adds i to the "page" field.
func (m *EnvelopeFieldMutation) AddPage(i int) {
	if m.addpage != nil {
		*m.addpage += i
	} else {
		m.addpage = &i
	}
}

// AddedPage returns the value that was added to the "page" field in this mutation.
func (m *EnvelopeFieldMutation) AddedPage() (r int, exists bool) {
	v := m.addpage
	if v == nil {
		return
	}
	return *v, true
}

// ResetPage resets all changes to the "page" field.
func (m *EnvelopeFieldMutation) ResetPage() {
	m.page = nil
	m.addpage = nil
}

// SetX sets the "x" field.
func (m *EnvelopeFieldMutation) SetX(f float64) {
	m.x = &f
	m.addx = nil
}

// X returns the value of the "x" field in the mutation.
func (m *EnvelopeFieldMutation) X() (r float64, exists bool) {
	v := m.x
	if v == nil {
		return
	}
	return *v, true
}

// OldX returns the old "x" field's value of the EnvelopeField entity.
// If the EnvelopeField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeFieldMutation) OldX(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldX: %w", err)
	}
	return oldValue.X, nil
}

// AddX adds f to the "x" field.
func (m *EnvelopeFieldMutation) AddX(f float64) {
	if m.addx != nil {
		*m.addx += f
	} else {
		m.addx = &f
	}
}

// AddedX returns the value that was added to the "x" field in this mutation.
func (m *EnvelopeFieldMutation) AddedX() (r float64, exists bool) {
	v := m.addx
	if v == nil {
		return
	}
	return *v, true
}

// ResetX resets all changes to the "x" field.
func (m *EnvelopeFieldMutation) ResetX() {
	m.x = nil
	m.addx = nil
}

// SetY sets the "y" field.
func (m *EnvelopeFieldMutation) SetY(f float64) {
	m.y = &f
	m.addy = nil
}

// Y returns the value of the "y" field in the mutation.
func (m *EnvelopeFieldMutation) Y() (r float64, exists bool) {
	v := m.y
	if v == nil {
		return
	}
	return *v, true
}

// OldY returns the old "y" field's value of the EnvelopeField entity.
// If the EnvelopeField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeFieldMutation) OldY(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldY: %w", err)
	}
	return oldValue.Y, nil
}

// AddY adds f to the "y" field.
func (m *EnvelopeFieldMutation) AddY(f float64) {
	if m.addy != nil {
		*m.addy += f
	} else {
		m.addy = &f
	}
}

// AddedY returns the value that was added to the "y" field in this mutation.
func (m *EnvelopeFieldMutation) AddedY() (r float64, exists bool) {
	v := m.addy
	if v == nil {
		return
	}
	return *v, true
}

// ResetY resets all changes to the "y" field.
func (m *EnvelopeFieldMutation) ResetY() {
	m.y = nil
	m.addy = nil
}

// SetW sets the "w" field.
func (m *EnvelopeFieldMutation) SetW(f float64) {
	m.w = &f
	m.addw = nil
}

// W returns the value of the "w" field in the mutation.
func (m *EnvelopeFieldMutation) W() (r float64, exists bool) {
	v := m.w
	if v == nil {
		return
	}
	return *v, true
}

// OldW returns the old "w" field's value of the EnvelopeField entity.
// If the EnvelopeField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeFieldMutation) OldW(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldW is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldW requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldW: %w", err)
	}
	return oldValue.W, nil
}

// AddW adds f to the "w" field.
func (m *EnvelopeFieldMutation) AddW(f float64) {
	if m.addw != nil {
		*m.addw += f
	} else {
		m.addw = &f
	}
}

// AddedW returns the value that was added to the "w" field in this mutation.
func (m *EnvelopeFieldMutation) AddedW() (r float64, exists bool) {
	v := m.addw
	if v == nil {
		return
	}
	return *v, true
}

// ResetW resets all changes to the "w" field.
func (m *EnvelopeFieldMutation) ResetW() {
	m.w = nil
	m.addw = nil
}

// SetH sets the "h" field.
func (m *EnvelopeFieldMutation) SetH(f float64) {
	m.h = &f
	m.addh = nil
}

// H returns the value of the "h" field in the mutation.
func (m *EnvelopeFieldMutation) H() (r float64, exists bool) {
	v := m.h
	if v == nil {
		return
	}
	return *v, true
}

// OldH returns the old "h" field's value of the EnvelopeField entity.
// If the EnvelopeField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeFieldMutation) OldH(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldH is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldH requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldH: %w", err)
	}
	return oldValue.H, nil
}

// AddH adds f to the "h" field.
func (m *EnvelopeFieldMutation) AddH(f float64) {
	if m.addh != nil {
		*m.addh += f
	} else {
		m.addh = &f
	}
}

// AddedH returns the value that was added to the "h" field in this mutation.
func (m *EnvelopeFieldMutation) AddedH() (r float64, exists bool) {
	v := m.addh
	if v == nil {
		return
	}
	return *v, true
}

// ResetH resets all changes to the "h" field.
func (m *EnvelopeFieldMutation) ResetH() {
	m.h = nil
	m.addh = nil
}

// SetType sets the "type" field.
func (m *EnvelopeFieldMutation) SetType(e envelopefield.Type) {
	m._type = &e
}

// GetType returns the value of the "type" field in the mutation.
func (m *EnvelopeFieldMutation) GetType() (r envelopefield.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the EnvelopeField entity.
// If the EnvelopeField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeFieldMutation) OldType(ctx context.Context) (v envelopefield.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EnvelopeFieldMutation) ResetType() {
	m._type = nil
}

// SetRequired sets the "required" field.
func (m *EnvelopeFieldMutation) SetRequired(b bool) {
	m.required = &b
}

// Required returns the value of the "required" field in the mutation.
func (m *EnvelopeFieldMutation) Required() (r bool, exists bool) {
	v := m.required
	if v == nil {
		return
	}
	return *v, true
}

// OldRequired returns the old "required" field's value of the EnvelopeField entity.
// If the EnvelopeField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeFieldMutation) OldRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequired: %w", err)
	}
	return oldValue.Required, nil
}

// ResetRequired resets all changes to the "required" field.
func (m *EnvelopeFieldMutation) ResetRequired() {
	m.required = nil
}

// SetRole sets the "role" field.
func (m *EnvelopeFieldMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *EnvelopeFieldMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the EnvelopeField entity.
// If the EnvelopeField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeFieldMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *EnvelopeFieldMutation) ResetRole() {
	m.role = nil
}

// SetName sets the "name" field.
func (m *EnvelopeFieldMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EnvelopeFieldMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EnvelopeField entity.
// If the EnvelopeField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeFieldMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *EnvelopeFieldMutation) ClearName() {
	m.name = nil
	m.clearedFields[envelopefield.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *EnvelopeFieldMutation) NameCleared() bool {
	_, ok := m.clearedFields[envelopefield.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *EnvelopeFieldMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, envelopefield.FieldName)
}

// SetFontFamily sets the "font_family" field.
func (m *EnvelopeFieldMutation) SetFontFamily(s string) {
	m.font_family = &s
}

// FontFamily returns the value of the "font_family" field in the mutation.
func (m *EnvelopeFieldMutation) FontFamily() (r string, exists bool) {
	v := m.font_family
	if v == nil {
		return
	}
	return *v, true
}

// OldFontFamily returns the old "font_family" field's value of the EnvelopeField entity.
// If the EnvelopeField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeFieldMutation) OldFontFamily(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFontFamily is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFontFamily requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFontFamily: %w", err)
	}
	return oldValue.FontFamily, nil
}

// ClearFontFamily clears the value of the "font_family" field.
func (m *EnvelopeFieldMutation) ClearFontFamily() {
	m.font_family = nil
	m.clearedFields[envelopefield.FieldFontFamily] = struct{}{}
}

// FontFamilyCleared returns if the "font_family" field was cleared in this mutation.
func (m *EnvelopeFieldMutation) FontFamilyCleared() bool {
	_, ok := m.clearedFields[envelopefield.FieldFontFamily]
	return ok
}

// ResetFontFamily resets all changes to the "font_family" field.
func (m *EnvelopeFieldMutation) ResetFontFamily() {
	m.font_family = nil
	delete(m.clearedFields, envelopefield.FieldFontFamily)
}

// SetEnvelopeID sets the "envelope" edge to the Envelope entity by id.
func (m *EnvelopeFieldMutation) SetEnvelopeID(id string) {
	m.envelope = &id
}

// ClearEnvelope clears the "envelope" edge to the Envelope entity.
func (m *EnvelopeFieldMutation) ClearEnvelope() {
	m.clearedenvelope = true
}

// EnvelopeCleared reports if the "envelope" edge to the Envelope entity was cleared.
func (m *EnvelopeFieldMutation) EnvelopeCleared() bool {
	return m.clearedenvelope
}

// EnvelopeID returns the "envelope" edge ID in the mutation.
func (m *EnvelopeFieldMutation) EnvelopeID() (id string, exists bool) {
	if m.envelope != nil {
		return *m.envelope, true
	}
	return
}

// EnvelopeIDs returns the "envelope" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EnvelopeID instead. It exists only for internal usage by the builders.
func (m *EnvelopeFieldMutation) EnvelopeIDs() (ids []string) {
	if id := m.envelope; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEnvelope resets all changes to the "envelope" edge.
func (m *EnvelopeFieldMutation) ResetEnvelope() {
	m.envelope = nil
	m.clearedenvelope = false
}

// SetSignerID sets the "signer" edge to the Signer entity by id.
func (m *EnvelopeFieldMutation) SetSignerID(id string) {
	m.signer = &id
}

// ClearSigner clears the "signer" edge to the Signer entity.
func (m *EnvelopeFieldMutation) ClearSigner() {
	m.clearedsigner = true
}

// SignerCleared reports if the "signer" edge to the Signer entity was cleared.
func (m *EnvelopeFieldMutation) SignerCleared() bool {
	return m.clearedsigner
}

// SignerID returns the "signer" edge ID in the mutation.
func (m *EnvelopeFieldMutation) SignerID() (id string, exists bool) {
	if m.signer != nil {
		return *m.signer, true
	}
	return
}

// SignerIDs returns the "signer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SignerID instead. It exists only for internal usage by the builders.
func (m *EnvelopeFieldMutation) SignerIDs() (ids []string) {
	if id := m.signer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSigner resets all changes to the "signer" edge.
func (m *EnvelopeFieldMutation) ResetSigner() {
	m.signer = nil
	m.clearedsigner = false
}

// AddValueIDs adds the "values" edge to the SignerFieldValue entity by ids.
func (m *EnvelopeFieldMutation) AddValueIDs(ids ...int) {
	if m.values == nil {
		m.values = make(map[int]struct{})
	}
	for i := range ids {
		m.values[ids[i]] = struct{}{}
	}
}

// ClearValues clears the "values" edge to the SignerFieldValue entity.
func (m *EnvelopeFieldMutation) ClearValues() {
	m.clearedvalues = true
}

// ValuesCleared reports if the "values" edge to the SignerFieldValue entity was cleared.
func (m *EnvelopeFieldMutation) ValuesCleared() bool {
	return m.clearedvalues
}

// RemoveValueIDs removes the "values" edge to the SignerFieldValue entity by IDs.
func (m *EnvelopeFieldMutation) RemoveValueIDs(ids ...int) {
	if m.removedvalues == nil {
		m.removedvalues = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.values, ids[i])
		m.removedvalues[ids[i]] = struct{}{}
	}
}

// RemovedValues returns the removed IDs of the "values" edge to the SignerFieldValue entity.
func (m *EnvelopeFieldMutation) RemovedValuesIDs() (ids []int) {
	for id := range m.removedvalues {
		ids = append(ids, id)
	}
	return
}

// ValuesIDs returns the "values" edge IDs in the mutation.
func (m *EnvelopeFieldMutation) ValuesIDs() (ids []int) {
	for id := range m.values {
		ids = append(ids, id)
	}
	return
}

// ResetValues resets all changes to the "values" edge.
func (m *EnvelopeFieldMutation) ResetValues() {
	m.values = nil
	m.clearedvalues = false
	m.removedvalues = nil
}

// Where appends a list predicates to the EnvelopeFieldMutation builder.
func (m *EnvelopeFieldMutation) Where(ps ...predicate.EnvelopeField) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnvelopeFieldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnvelopeFieldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EnvelopeField, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnvelopeFieldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnvelopeFieldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EnvelopeField).
func (m *EnvelopeFieldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnvelopeFieldMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.page != nil {
		fields = append(fields, envelopefield.FieldPage)
	}
	if m.x != nil {
		fields = append(fields, envelopefield.FieldX)
	}
	if m.y != nil {
		fields = append(fields, envelopefield.FieldY)
	}
	if m.w != nil {
		fields = append(fields, envelopefield.FieldW)
	}
	if m.h != nil {
		fields = append(fields, envelopefield.FieldH)
	}
	if m._type != nil {
		fields = append(fields, envelopefield.FieldType)
	}
	if m.required != nil {
		fields = append(fields, envelopefield.FieldRequired)
	}
	if m.role != nil {
		fields = append(fields, envelopefield.FieldRole)
	}
	if m.name != nil {
		fields = append(fields, envelopefield.FieldName)
	}
	if m.font_family != nil {
		fields = append(fields, envelopefield.FieldFontFamily)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnvelopeFieldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case envelopefield.FieldPage:
		return m.Page()
	case envelopefield.FieldX:
		return m.X()
	case envelopefield.FieldY:
		return m.Y()
	case envelopefield.FieldW:
		return m.W()
	case envelopefield.FieldH:
		return m.H()
	case envelopefield.FieldType:
		return m.GetType()
	case envelopefield.FieldRequired:
		return m.Required()
	case envelopefield.FieldRole:
		return m.Role()
	case envelopefield.FieldName:
		return m.Name()
	case envelopefield.FieldFontFamily:
		return m.FontFamily()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnvelopeFieldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case envelopefield.FieldPage:
		return m.OldPage(ctx)
	case envelopefield.FieldX:
		return m.OldX(ctx)
	case envelopefield.FieldY:
		return m.OldY(ctx)
	case envelopefield.FieldW:
		return m.OldW(ctx)
	case envelopefield.FieldH:
		return m.OldH(ctx)
	case envelopefield.FieldType:
		return m.OldType(ctx)
	case envelopefield.FieldRequired:
		return m.OldRequired(ctx)
	case envelopefield.FieldRole:
		return m.OldRole(ctx)
	case envelopefield.FieldName:
		return m.OldName(ctx)
	case envelopefield.FieldFontFamily:
		return m.OldFontFamily(ctx)
	}
	return nil, fmt.Errorf("unknown EnvelopeField field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvelopeFieldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case envelopefield.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPage(v)
		return nil
	case envelopefield.FieldX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetX(v)
		return nil
	case envelopefield.FieldY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetY(v)
		return nil
	case envelopefield.FieldW:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetW(v)
		return nil
	case envelopefield.FieldH:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetH(v)
		return nil
	case envelopefield.FieldType:
		v, ok := value.(envelopefield.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case envelopefield.FieldRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequired(v)
		return nil
	case envelopefield.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case envelopefield.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case envelopefield.FieldFontFamily:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFontFamily(v)
		return nil
	}
	return fmt.Errorf("unknown EnvelopeField field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnvelopeFieldMutation) AddedFields() []string {
	var fields []string
	if m.addpage != nil {
		fields = append(fields, envelopefield.FieldPage)
	}
	if m.addx != nil {
		fields = append(fields, envelopefield.FieldX)
	}
	if m.addy != nil {
		fields = append(fields, envelopefield.FieldY)
	}
	if m.addw != nil {
		fields = append(fields, envelopefield.FieldW)
	}
	if m.addh != nil {
		fields = append(fields, envelopefield.FieldH)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnvelopeFieldMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case envelopefield.FieldPage:
		return m.AddedPage()
	case envelopefield.FieldX:
		return m.AddedX()
	case envelopefield.FieldY:
		return m.AddedY()
	case envelopefield.FieldW:
		return m.AddedW()
	case envelopefield.FieldH:
		return m.AddedH()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvelopeFieldMutation) AddField(name string, value ent.Value) error {
	switch name {
	case envelopefield.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPage(v)
		return nil
	case envelopefield.FieldX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddX(v)
		return nil
	case envelopefield.FieldY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddY(v)
		return nil
	case envelopefield.FieldW:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddW(v)
		return nil
	case envelopefield.FieldH:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddH(v)
		return nil
	}
	return fmt.Errorf("unknown EnvelopeField numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnvelopeFieldMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(envelopefield.FieldName) {
		fields = append(fields, envelopefield.FieldName)
	}
	if m.FieldCleared(envelopefield.FieldFontFamily) {
		fields = append(fields, envelopefield.FieldFontFamily)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnvelopeFieldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnvelopeFieldMutation) ClearField(name string) error {
	switch name {
	case envelopefield.FieldName:
		m.ClearName()
		return nil
	case envelopefield.FieldFontFamily:
		m.ClearFontFamily()
		return nil
	}
	return fmt.Errorf("unknown EnvelopeField nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnvelopeFieldMutation) ResetField(name string) error {
	switch name {
	case envelopefield.FieldPage:
		m.ResetPage()
		return nil
	case envelopefield.FieldX:
		m.ResetX()
		return nil
	case envelopefield.FieldY:
		m.ResetY()
		return nil
	case envelopefield.FieldW:
		m.ResetW()
		return nil
	case envelopefield.FieldH:
		m.ResetH()
		return nil
	case envelopefield.FieldType:
		m.ResetType()
		return nil
	case envelopefield.FieldRequired:
		m.ResetRequired()
		return nil
	case envelopefield.FieldRole:
		m.ResetRole()
		return nil
	case envelopefield.FieldName:
		m.ResetName()
		return nil
	case envelopefield.FieldFontFamily:
		m.ResetFontFamily()
		return nil
	}
	return fmt.Errorf("unknown EnvelopeField field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnvelopeFieldMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.envelope != nil {
		edges = append(edges, envelopefield.EdgeEnvelope)
	}
	if m.signer != nil {
		edges = append(edges, envelopefield.EdgeSigner)
	}
	if m.values != nil {
		edges = append(edges, envelopefield.EdgeValues)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnvelopeFieldMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case envelopefield.EdgeEnvelope:
		if id := m.envelope; id != nil {
			return []ent.Value{*id}
		}
	case envelopefield.EdgeSigner:
		if id := m.signer; id != nil {
			return []ent.Value{*id}
		}
	case envelopefield.EdgeValues:
		ids := make([]ent.Value, 0, len(m.values))
		for id := range m.values {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnvelopeFieldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedvalues != nil {
		edges = append(edges, envelopefield.EdgeValues)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnvelopeFieldMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case envelopefield.EdgeValues:
		ids := make([]ent.Value, 0, len(m.removedvalues))
		for id := range m.removedvalues {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnvelopeFieldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedenvelope {
		edges = append(edges, envelopefield.EdgeEnvelope)
	}
	if m.clearedsigner {
		edges = append(edges, envelopefield.EdgeSigner)
	}
	if m.clearedvalues {
		edges = append(edges, envelopefield.EdgeValues)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnvelopeFieldMutation) EdgeCleared(name string) bool {
	switch name {
	case envelopefield.EdgeEnvelope:
		return m.clearedenvelope
	case envelopefield.EdgeSigner:
		return m.clearedsigner
	case envelopefield.EdgeValues:
		return m.clearedvalues
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnvelopeFieldMutation) ClearEdge(name string) error {
	switch name {
	case envelopefield.EdgeEnvelope:
		m.ClearEnvelope()
		return nil
	case envelopefield.EdgeSigner:
		m.ClearSigner()
		return nil
	}
	return fmt.Errorf("unknown EnvelopeField unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnvelopeFieldMutation) ResetEdge(name string) error {
	switch name {
	case envelopefield.EdgeEnvelope:
		m.ResetEnvelope()
		return nil
	case envelopefield.EdgeSigner:
		m.ResetSigner()
		return nil
	case envelopefield.EdgeValues:
		m.ResetValues()
		return nil
	}
	return fmt.Errorf("unknown EnvelopeField edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	created_at      *time.Time
	actor           *string
	_type           *event.Type
	meta            *map[string]interface{}
	ip              *string
	ua              *string
	prev_hash       *string
	hash            *string
	clearedFields   map[string]struct{}
	envelope        *string
	clearedenvelope bool
	done            bool
	oldValue        func(context.Context) (*Event, error)
	predicates      []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetActor sets the "actor" field.
func (m *EventMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *EventMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *EventMutation) ResetActor() {
	m.actor = nil
}

// SetType sets the "type" field.
func (m *EventMutation) SetType(e event.Type) {
	m._type = &e
}

// GetType returns the value of the "type" field in the mutation.
func (m *EventMutation) GetType() (r event.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldType(ctx context.Context) (v event.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EventMutation) ResetType() {
	m._type = nil
}

// SetMeta sets the "meta" field.
func (m *EventMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *EventMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *EventMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[event.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *EventMutation) MetaCleared() bool {
	_, ok := m.clearedFields[event.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *EventMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, event.FieldMeta)
}

// SetIP sets the "ip" field.
func (m *EventMutation) SetIP(s string) {
	m.ip = &s
}

// IP returns the value of the "ip" field in the mutation.
func (m *EventMutation) IP() (r string, exists bool) {
	v := m.ip
	if v == nil {
		return
	}
	return *v, true
}

// OldIP returns the old "ip" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIP: %w", err)
	}
	return oldValue.IP, nil
}

// ClearIP clears the value of the "ip" field.
func (m *EventMutation) ClearIP() {
	m.ip = nil
	m.clearedFields[event.FieldIP] = struct{}{}
}

// IPCleared returns if the "ip" field was cleared in this mutation.
func (m *EventMutation) IPCleared() bool {
	_, ok := m.clearedFields[event.FieldIP]
	return ok
}

// ResetIP resets all changes to the "ip" field.
func (m *EventMutation) ResetIP() {
	m.ip = nil
	delete(m.clearedFields, event.FieldIP)
}

// SetUa sets the "ua" field.
func (m *EventMutation) SetUa(s string) {
	m.ua = &s
}

// Ua returns the value of the "ua" field in the mutation.
func (m *EventMutation) Ua() (r string, exists bool) {
	v := m.ua
	if v == nil {
		return
	}
	return *v, true
}

// OldUa returns the old "ua" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUa(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUa: %w", err)
	}
	return oldValue.Ua, nil
}

// ClearUa clears the value of the "ua" field.
func (m *EventMutation) ClearUa() {
	m.ua = nil
	m.clearedFields[event.FieldUa] = struct{}{}
}

// UaCleared returns if the "ua" field was cleared in this mutation.
func (m *EventMutation) UaCleared() bool {
	_, ok := m.clearedFields[event.FieldUa]
	return ok
}

// ResetUa resets all changes to the "ua" field.
func (m *EventMutation) ResetUa() {
	m.ua = nil
	delete(m.clearedFields, event.FieldUa)
}

// SetPrevHash sets the "prev_hash" field.
func (m *EventMutation) SetPrevHash(s string) {
	m.prev_hash = &s
}

// PrevHash returns the value of the "prev_hash" field in the mutation.
func (m *EventMutation) PrevHash() (r string, exists bool) {
	v := m.prev_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevHash returns the old "prev_hash" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPrevHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevHash: %w", err)
	}
	return oldValue.PrevHash, nil
}

// ResetPrevHash resets all changes to the "prev_hash" field.
func (m *EventMutation) ResetPrevHash() {
	m.prev_hash = nil
}

// SetHash sets the "hash" field.
func (m *EventMutation) SetHash(s string) {
	m.hash = &s
}

// Hash returns the value of the "hash" field in the mutation.
func (m *EventMutation) Hash() (r string, exists bool) {
	v := m.hash
	if v == nil {
		return
	}
	return *v, true
}

// OldHash returns the old "hash" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHash: %w", err)
	}
	return oldValue.Hash, nil
}

// ResetHash resets all changes to the "hash" field.
func (m *EventMutation) ResetHash() {
	m.hash = nil
}

// SetEnvelopeID sets the "envelope" edge to the Envelope entity by id.
func (m *EventMutation) SetEnvelopeID(id string) {
	m.envelope = &id
}

// ClearEnvelope clears the "envelope" edge to the Envelope entity.
func (m *EventMutation) ClearEnvelope() {
	m.clearedenvelope = true
}

// EnvelopeCleared reports if the "envelope" edge to the Envelope entity was cleared.
func (m *EventMutation) EnvelopeCleared() bool {
	return m.clearedenvelope
}

// EnvelopeID returns the "envelope" edge ID in the mutation.
func (m *EventMutation) EnvelopeID() (id string, exists bool) {
	if m.envelope != nil {
		return *m.envelope, true
	}
	return
}

// EnvelopeIDs returns the "envelope" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EnvelopeID instead. It exists only for internal usage by the builders.
func (m *EventMutation) EnvelopeIDs() (ids []string) {
	if id := m.envelope; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEnvelope resets all changes to the "envelope" edge.
func (m *EventMutation) ResetEnvelope() {
	m.envelope = nil
	m.clearedenvelope = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	if m.actor != nil {
		fields = append(fields, event.FieldActor)
	}
	if m._type != nil {
		fields = append(fields, event.FieldType)
	}
	if m.meta != nil {
		fields = append(fields, event.FieldMeta)
	}
	if m.ip != nil {
		fields = append(fields, event.FieldIP)
	}
	if m.ua != nil {
		fields = append(fields, event.FieldUa)
	}
	if m.prev_hash != nil {
		fields = append(fields, event.FieldPrevHash)
	}
	if m.hash != nil {
		fields = append(fields, event.FieldHash)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldCreatedAt:
		return m.CreatedAt()
	case event.FieldActor:
		return m.Actor()
	case event.FieldType:
		return m.GetType()
	case event.FieldMeta:
		return m.Meta()
	case event.FieldIP:
		return m.IP()
	case event.FieldUa:
		return m.Ua()
	case event.FieldPrevHash:
		return m.PrevHash()
	case event.FieldHash:
		return m.Hash()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case event.FieldActor:
		return m.OldActor(ctx)
	case event.FieldType:
		return m.OldType(ctx)
	case event.FieldMeta:
		return m.OldMeta(ctx)
	case event.FieldIP:
		return m.OldIP(ctx)
	case event.FieldUa:
		return m.OldUa(ctx)
	case event.FieldPrevHash:
		return m.OldPrevHash(ctx)
	case event.FieldHash:
		return m.OldHash(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case event.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case event.FieldType:
		v, ok := value.(event.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case event.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case event.FieldIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIP(v)
		return nil
	case event.FieldUa:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUa(v)
		return nil
	case event.FieldPrevHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevHash(v)
		return nil
	case event.FieldHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHash(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldMeta) {
		fields = append(fields, event.FieldMeta)
	}
	if m.FieldCleared(event.FieldIP) {
		fields = append(fields, event.FieldIP)
	}
	if m.FieldCleared(event.FieldUa) {
		fields = append(fields, event.FieldUa)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldMeta:
		m.ClearMeta()
		return nil
	case event.FieldIP:
		m.ClearIP()
		return nil
	case event.FieldUa:
		m.ClearUa()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case event.FieldActor:
		m.ResetActor()
		return nil
	case event.FieldType:
		m.ResetType()
		return nil
	case event.FieldMeta:
		m.ResetMeta()
		return nil
	case event.FieldIP:
		m.ResetIP()
		return nil
	case event.FieldUa:
		m.ResetUa()
		return nil
	case event.FieldPrevHash:
		m.ResetPrevHash()
		return nil
	case event.FieldHash:
		m.ResetHash()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.envelope != nil {
		edges = append(edges, event.EdgeEnvelope)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeEnvelope:
		if id := m.envelope; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedenvelope {
		edges = append(edges, event.EdgeEnvelope)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeEnvelope:
		return m.clearedenvelope
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeEnvelope:
		m.ClearEnvelope()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeEnvelope:
		m.ResetEnvelope()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// FinalArtifactMutation represents an operation that mutates the FinalArtifact nodes in the graph.
type FinalArtifactMutation struct {
	config
	op                Op
	typ               string
	id                *int
	created_at        *time.Time
	storage_key_pdf   *string
	storage_key_audit *string
	sha256_final      *string
	sealed_at         *time.Time
	clearedFields     map[string]struct{}
	envelope          *string
	clearedenvelope   bool
	done              bool
	oldValue          func(context.Context) (*FinalArtifact, error)
	predicates        []predicate.FinalArtifact
}

var _ ent.Mutation = (*FinalArtifactMutation)(nil)

// finalartifactOption allows management of the mutation configuration using functional options.
type finalartifactOption func(*FinalArtifactMutation)

// newFinalArtifactMutation creates new mutation for the FinalArtifact entity.
func newFinalArtifactMutation(c config, op Op, opts ...finalartifactOption) *FinalArtifactMutation {
	m := &FinalArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeFinalArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFinalArtifactID sets the ID field of the mutation.
func withFinalArtifactID(id int) finalartifactOption {
	return func(m *FinalArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *FinalArtifact
		)
		m.oldValue = func(ctx context.Context) (*FinalArtifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FinalArtifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFinalArtifact sets the old FinalArtifact of the mutation.
func withFinalArtifact(node *FinalArtifact) finalartifactOption {
	return func(m *FinalArtifactMutation) {
		m.oldValue = func(context.Context) (*FinalArtifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FinalArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FinalArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FinalArtifactMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FinalArtifactMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FinalArtifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FinalArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FinalArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FinalArtifact entity.
// If the FinalArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FinalArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStorageKeyPdf sets the "storage_key_pdf" field.
func (m *FinalArtifactMutation) SetStorageKeyPdf(s string) {
	m.storage_key_pdf = &s
}

// StorageKeyPdf returns the value of the "storage_key_pdf" field in the mutation.
func (m *FinalArtifactMutation) StorageKeyPdf() (r string, exists bool) {
	v := m.storage_key_pdf
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKeyPdf returns the old "storage_key_pdf" field's value of the FinalArtifact entity.
// If the FinalArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalArtifactMutation) OldStorageKeyPdf(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKeyPdf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKeyPdf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKeyPdf: %w", err)
	}
	return oldValue.StorageKeyPdf, nil
}

// ResetStorageKeyPdf resets all changes to the "storage_key_pdf" field.
func (m *FinalArtifactMutation) ResetStorageKeyPdf() {
	m.storage_key_pdf = nil
}

// SetStorageKeyAudit sets the "storage_key_audit" field.
func (m *FinalArtifactMutation) SetStorageKeyAudit(s string) {
	m.storage_key_audit = &s
}

// StorageKeyAudit returns the value of the "storage_key_audit" field in the mutation.
func (m *FinalArtifactMutation) StorageKeyAudit() (r string, exists bool) {
	v := m.storage_key_audit
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKeyAudit returns the old "storage_key_audit" field's value of the FinalArtifact entity.
// If the FinalArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalArtifactMutation) OldStorageKeyAudit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKeyAudit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKeyAudit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKeyAudit: %w", err)
	}
	return oldValue.StorageKeyAudit, nil
}

// ResetStorageKeyAudit resets all changes to the "storage_key_audit" field.
func (m *FinalArtifactMutation) ResetStorageKeyAudit() {
	m.storage_key_audit = nil
}

// SetSha256Final sets the "sha256_final" field.
func (m *FinalArtifactMutation) SetSha256Final(s string) {
	m.sha256_final = &s
}

// Sha256Final returns the value of the "sha256_final" field in the mutation.
func (m *FinalArtifactMutation) Sha256Final() (r string, exists bool) {
	v := m.sha256_final
	if v == nil {
		return
	}
	return *v, true
}

// OldSha256Final returns the old "sha256_final" field's value of the FinalArtifact entity.
// If the FinalArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalArtifactMutation) OldSha256Final(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSha256Final is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSha256Final requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSha256Final: %w", err)
	}
	return oldValue.Sha256Final, nil
}

// ResetSha256Final resets all changes to the "sha256_final" field.
func (m *FinalArtifactMutation) ResetSha256Final() {
	m.sha256_final = nil
}

// SetSealedAt sets the "sealed_at" field.
func (m *FinalArtifactMutation) SetSealedAt(t time.Time) {
	m.sealed_at = &t
}

// SealedAt returns the value of the "sealed_at" field in the mutation.
func (m *FinalArtifactMutation) SealedAt() (r time.Time, exists bool) {
	v := m.sealed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSealedAt returns the old "sealed_at" field's value of the FinalArtifact entity.
// If the FinalArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalArtifactMutation) OldSealedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSealedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSealedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSealedAt: %w", err)
	}
	return oldValue.SealedAt, nil
}

// ResetSealedAt resets all changes to the "sealed_at" field.
func (m *FinalArtifactMutation) ResetSealedAt() {
	m.sealed_at = nil
}

// SetEnvelopeID sets the "envelope" edge to the Envelope entity by id.
func (m *FinalArtifactMutation) SetEnvelopeID(id string) {
	m.envelope = &id
}

// ClearEnvelope clears the "envelope" edge to the Envelope entity.
func (m *FinalArtifactMutation) ClearEnvelope() {
	m.clearedenvelope = true
}

// EnvelopeCleared reports if the "envelope" edge to the Envelope entity was cleared.
func (m *FinalArtifactMutation) EnvelopeCleared() bool {
	return m.clearedenvelope
}

// EnvelopeID returns the "envelope" edge ID in the mutation.
func (m *FinalArtifactMutation) EnvelopeID() (id string, exists bool) {
	if m.envelope != nil {
		return *m.envelope, true
	}
	return
}

// EnvelopeIDs returns the "envelope" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EnvelopeID instead. It exists only for internal usage by the builders.
func (m *FinalArtifactMutation) EnvelopeIDs() (ids []string) {
	if id := m.envelope; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEnvelope resets all changes to the "envelope" edge.
func (m *FinalArtifactMutation) ResetEnvelope() {
	m.envelope = nil
	m.clearedenvelope = false
}

// Where appends a list predicates to the FinalArtifactMutation builder.
func (m *FinalArtifactMutation) Where(ps ...predicate.FinalArtifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FinalArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FinalArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FinalArtifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FinalArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FinalArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FinalArtifact).
func (m *FinalArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FinalArtifactMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, finalartifact.FieldCreatedAt)
	}
	if m.storage_key_pdf != nil {
		fields = append(fields, finalartifact.FieldStorageKeyPdf)
	}
	if m.storage_key_audit != nil {
		fields = append(fields, finalartifact.FieldStorageKeyAudit)
	}
	if m.sha256_final != nil {
		fields = append(fields, finalartifact.FieldSha256Final)
	}
	if m.sealed_at != nil {
		fields = append(fields, finalartifact.FieldSealedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FinalArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case finalartifact.FieldCreatedAt:
		return m.CreatedAt()
	case finalartifact.FieldStorageKeyPdf:
		return m.StorageKeyPdf()
	case finalartifact.FieldStorageKeyAudit:
		return m.StorageKeyAudit()
	case finalartifact.FieldSha256Final:
		return m.Sha256Final()
	case finalartifact.FieldSealedAt:
		return m.SealedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FinalArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case finalartifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case finalartifact.FieldStorageKeyPdf:
		return m.OldStorageKeyPdf(ctx)
	case finalartifact.FieldStorageKeyAudit:
		return m.OldStorageKeyAudit(ctx)
	case finalartifact.FieldSha256Final:
		return m.OldSha256Final(ctx)
	case finalartifact.FieldSealedAt:
		return m.OldSealedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FinalArtifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinalArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case finalartifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case finalartifact.FieldStorageKeyPdf:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKeyPdf(v)
		return nil
	case finalartifact.FieldStorageKeyAudit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKeyAudit(v)
		return nil
	case finalartifact.FieldSha256Final:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSha256Final(v)
		return nil
	case finalartifact.FieldSealedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSealedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FinalArtifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FinalArtifactMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FinalArtifactMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinalArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FinalArtifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FinalArtifactMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FinalArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FinalArtifactMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FinalArtifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FinalArtifactMutation) ResetField(name string) error {
	switch name {
	case finalartifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case finalartifact.FieldStorageKeyPdf:
		m.ResetStorageKeyPdf()
		return nil
	case finalartifact.FieldStorageKeyAudit:
		m.ResetStorageKeyAudit()
		return nil
	case finalartifact.FieldSha256Final:
		m.ResetSha256Final()
		return nil
	case finalartifact.FieldSealedAt:
		m.ResetSealedAt()
		return nil
	}
	return fmt.Errorf("unknown FinalArtifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FinalArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.envelope != nil {
		edges = append(edges, finalartifact.EdgeEnvelope)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FinalArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case finalartifact.EdgeEnvelope:
		if id := m.envelope; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FinalArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FinalArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FinalArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedenvelope {
		edges = append(edges, finalartifact.EdgeEnvelope)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FinalArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case finalartifact.EdgeEnvelope:
		return m.clearedenvelope
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FinalArtifactMutation) ClearEdge(name string) error {
	switch name {
	case finalartifact.EdgeEnvelope:
		m.ClearEnvelope()
		return nil
	}
	return fmt.Errorf("unknown FinalArtifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FinalArtifactMutation) ResetEdge(name string) error {
	switch name {
	case finalartifact.EdgeEnvelope:
		m.ResetEnvelope()
		return nil
	}
	return fmt.Errorf("unknown FinalArtifact edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	name             *string
	status           *string
	access_token     *string
	clearedFields    map[string]struct{}
	documents        map[string]struct{}
	removeddocuments map[string]struct{}
	cleareddocuments bool
	envelopes        map[string]struct{}
	removedenvelopes map[string]struct{}
	clearedenvelopes bool
	investors        map[string]struct{}
	removedinvestors map[string]struct{}
	clearedinvestors bool
	done             bool
	oldValue         func(context.Context) (*Project, error)
	predicates       []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *ProjectMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProjectMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProjectMutation) ResetStatus() {
	m.status = nil
}

// SetAccessToken sets the "access_token" field.
func (m *ProjectMutation) SetAccessToken(s string) {
	m.access_token = &s
}

// AccessToken returns the value of the "access_token" field in the mutation.
func (m *ProjectMutation) AccessToken() (r string, exists bool) {
	v := m.access_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessToken returns the old "access_token" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldAccessToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessToken: %w", err)
	}
	return oldValue.AccessToken, nil
}

// ResetAccessToken resets all changes to the "access_token" field.
func (m *ProjectMutation) ResetAccessToken() {
	m.access_token = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *ProjectMutation) AddDocumentIDs(ids ...string) {
	if m.documents == nil {
		m.documents = make(map[string]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *ProjectMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *ProjectMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *ProjectMutation) RemoveDocumentIDs(ids ...string) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *ProjectMutation) RemovedDocumentsIDs() (ids []string) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *ProjectMutation) DocumentsIDs() (ids []string) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *ProjectMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddEnvelopeIDs adds the "envelopes" edge to the Envelope entity by ids.
func (m *ProjectMutation) AddEnvelopeIDs(ids ...string) {
	if m.envelopes == nil {
		m.envelopes = make(map[string]struct{})
	}
	for i := range ids {
		m.envelopes[ids[i]] = struct{}{}
	}
}

// ClearEnvelopes clears the "envelopes" edge to the Envelope entity.
func (m *ProjectMutation) ClearEnvelopes() {
	m.clearedenvelopes = true
}

// EnvelopesCleared reports if the "envelopes" edge to the Envelope entity was cleared.
func (m *ProjectMutation) EnvelopesCleared() bool {
	return m.clearedenvelopes
}

// RemoveEnvelopeIDs removes the "envelopes" edge to the Envelope entity by IDs.
func (m *ProjectMutation) RemoveEnvelopeIDs(ids ...string) {
	if m.removedenvelopes == nil {
		m.removedenvelopes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.envelopes, ids[i])
		m.removedenvelopes[ids[i]] = struct{}{}
	}
}

// RemovedEnvelopes returns the removed IDs of the "envelopes" edge to the Envelope entity.
func (m *ProjectMutation) RemovedEnvelopesIDs() (ids []string) {
	for id := range m.removedenvelopes {
		ids = append(ids, id)
	}
	return
}

// EnvelopesIDs returns the "envelopes" edge IDs in the mutation.
func (m *ProjectMutation) EnvelopesIDs() (ids []string) {
	for id := range m.envelopes {
		ids = append(ids, id)
	}
	return
}

// ResetEnvelopes resets all changes to the "envelopes" edge.
func (m *ProjectMutation) ResetEnvelopes() {
	m.envelopes = nil
	m.clearedenvelopes = false
	m.removedenvelopes = nil
}

// AddInvestorIDs adds the "investors" edge to the ProjectInvestor entity by ids.
func (m *ProjectMutation) AddInvestorIDs(ids ...string) {
	if m.investors == nil {
		m.investors = make(map[string]struct{})
	}
	for i := range ids {
		m.investors[ids[i]] = struct{}{}
	}
}

// ClearInvestors clears the "investors" edge to the ProjectInvestor entity.
func (m *ProjectMutation) ClearInvestors() {
	m.clearedinvestors = true
}

// InvestorsCleared reports if the "investors" edge to the ProjectInvestor entity was cleared.
func (m *ProjectMutation) InvestorsCleared() bool {
	return m.clearedinvestors
}

// RemoveInvestorIDs removes the "investors" edge to the ProjectInvestor entity by IDs.
func (m *ProjectMutation) RemoveInvestorIDs(ids ...string) {
	if m.removedinvestors == nil {
		m.removedinvestors = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.investors, ids[i])
		m.removedinvestors[ids[i]] = struct{}{}
	}
}

// RemovedInvestors returns the removed IDs of the "investors" edge to the ProjectInvestor entity.
func (m *ProjectMutation) RemovedInvestorsIDs() (ids []string) {
	for id := range m.removedinvestors {
		ids = append(ids, id)
	}
	return
}

// InvestorsIDs returns the "investors" edge IDs in the mutation.
func (m *ProjectMutation) InvestorsIDs() (ids []string) {
	for id := range m.investors {
		ids = append(ids, id)
	}
	return
}

// ResetInvestors resets all changes to the "investors" edge.
func (m *ProjectMutation) ResetInvestors() {
	m.investors = nil
	m.clearedinvestors = false
	m.removedinvestors = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.status != nil {
		fields = append(fields, project.FieldStatus)
	}
	if m.access_token != nil {
		fields = append(fields, project.FieldAccessToken)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	case project.FieldName:
		return m.Name()
	case project.FieldStatus:
		return m.Status()
	case project.FieldAccessToken:
		return m.AccessToken()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldStatus:
		return m.OldStatus(ctx)
	case project.FieldAccessToken:
		return m.OldAccessToken(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case project.FieldAccessToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessToken(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldStatus:
		m.ResetStatus()
		return nil
	case project.FieldAccessToken:
		m.ResetAccessToken()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.documents != nil {
		edges = append(edges, project.EdgeDocuments)
	}
	if m.envelopes != nil {
		edges = append(edges, project.EdgeEnvelopes)
	}
	if m.investors != nil {
		edges = append(edges, project.EdgeInvestors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeEnvelopes:
		ids := make([]ent.Value, 0, len(m.envelopes))
		for id := range m.envelopes {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeInvestors:
		ids := make([]ent.Value, 0, len(m.investors))
		for id := range m.investors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddocuments != nil {
		edges = append(edges, project.EdgeDocuments)
	}
	if m.removedenvelopes != nil {
		edges = append(edges, project.EdgeEnvelopes)
	}
	if m.removedinvestors != nil {
		edges = append(edges, project.EdgeInvestors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeEnvelopes:
		ids := make([]ent.Value, 0, len(m.removedenvelopes))
		for id := range m.removedenvelopes {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeInvestors:
		ids := make([]ent.Value, 0, len(m.removedinvestors))
		for id := range m.removedinvestors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddocuments {
		edges = append(edges, project.EdgeDocuments)
	}
	if m.clearedenvelopes {
		edges = append(edges, project.EdgeEnvelopes)
	}
	if m.clearedinvestors {
		edges = append(edges, project.EdgeInvestors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeDocuments:
		return m.cleareddocuments
	case project.EdgeEnvelopes:
		return m.clearedenvelopes
	case project.EdgeInvestors:
		return m.clearedinvestors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case project.EdgeEnvelopes:
		m.ResetEnvelopes()
		return nil
	case project.EdgeInvestors:
		m.ResetInvestors()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// ProjectInvestorMutation represents an operation that mutates the ProjectInvestor nodes in the graph.
type ProjectInvestorMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	name              *string
	email             *string
	role              *string
	routing_order     *int
	addrouting_order  *int
	units_invested    *float64
	addunits_invested *float64
	metadata          *map[string]interface{}
	clearedFields     map[string]struct{}
	project           *string
	clearedproject    bool
	done              bool
	oldValue          func(context.Context) (*ProjectInvestor, error)
	predicates        []predicate.ProjectInvestor
}

var _ ent.Mutation = (*ProjectInvestorMutation)(nil)

// projectinvestorOption allows management of the mutation configuration using functional options.
type projectinvestorOption func(*ProjectInvestorMutation)

// newProjectInvestorMutation creates new mutation for the ProjectInvestor entity.
func newProjectInvestorMutation(c config, op Op, opts ...projectinvestorOption) *ProjectInvestorMutation {
	m := &ProjectInvestorMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectInvestor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectInvestorID sets the ID field of the mutation.
func withProjectInvestorID(id string) projectinvestorOption {
	return func(m *ProjectInvestorMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectInvestor
		)
		m.oldValue = func(ctx context.Context) (*ProjectInvestor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectInvestor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectInvestor sets the old ProjectInvestor of the mutation.
func withProjectInvestor(node *ProjectInvestor) projectinvestorOption {
	return func(m *ProjectInvestorMutation) {
		m.oldValue = func(context.Context) (*ProjectInvestor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectInvestorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectInvestorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProjectInvestor entities.
func (m *ProjectInvestorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectInvestorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectInvestorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectInvestor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectInvestorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectInvestorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProjectInvestor entity.
// If the ProjectInvestor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectInvestorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectInvestorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectInvestorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectInvestorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProjectInvestor entity.
// If the ProjectInvestor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectInvestorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectInvestorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *ProjectInvestorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectInvestorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ProjectInvestor entity.
// If the ProjectInvestor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectInvestorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectInvestorMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *ProjectInvestorMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ProjectInvestorMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the ProjectInvestor entity.
// If the ProjectInvestor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectInvestorMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ProjectInvestorMutation) ResetEmail() {
	m.email = nil
}

// SetRole sets the "role" field.
func (m *ProjectInvestorMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *ProjectInvestorMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ProjectInvestor entity.
// If the ProjectInvestor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectInvestorMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ProjectInvestorMutation) ResetRole() {
	m.role = nil
}

// SetRoutingOrder sets the "routing_order" field.
func (m *ProjectInvestorMutation) SetRoutingOrder(i int) {
	m.routing_order = &i
	m.addrouting_order = nil
}

// RoutingOrder returns the value of the "routing_order" field in the mutation.
func (m *ProjectInvestorMutation) RoutingOrder() (r int, exists bool) {
	v := m.routing_order
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutingOrder returns the old "routing_order" field's value of the ProjectInvestor entity.
// If the ProjectInvestor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectInvestorMutation) OldRoutingOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutingOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutingOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutingOrder: %w", err)
	}
	return oldValue.RoutingOrder, nil
}

// AddRoutingOrder adds i to the "routing_order" field.
func (m *ProjectInvestorMutation) AddRoutingOrder(i int) {
	if m.addrouting_order != nil {
		*m.addrouting_order += i
	} else {
		m.addrouting_order = &i
	}
}

// AddedRoutingOrder returns the value that was added to the "routing_order" field in this mutation.
func (m *ProjectInvestorMutation) AddedRoutingOrder() (r int, exists bool) {
	v := m.addrouting_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetRoutingOrder resets all changes to the "routing_order" field.
func (m *ProjectInvestorMutation) ResetRoutingOrder() {
	m.routing_order = nil
	m.addrouting_order = nil
}

// SetUnitsInvested sets the "units_invested" field.
func (m *ProjectInvestorMutation) SetUnitsInvested(f float64) {
	m.units_invested = &f
	m.addunits_invested = nil
}

// UnitsInvested returns the value of the "units_invested" field in the mutation.
func (m *ProjectInvestorMutation) UnitsInvested() (r float64, exists bool) {
	v := m.units_invested
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitsInvested returns the old "units_invested" field's value of the ProjectInvestor entity.
// If the ProjectInvestor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectInvestorMutation) OldUnitsInvested(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitsInvested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitsInvested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitsInvested: %w", err)
	}
	return oldValue.UnitsInvested, nil
}

// AddUnitsInvested adds f to the "units_invested" field.
func (m *ProjectInvestorMutation) AddUnitsInvested(f float64) {
	if m.addunits_invested != nil {
		*m.addunits_invested += f
	} else {
		m.addunits_invested = &f
	}
}

// AddedUnitsInvested returns the value that was added to the "units_invested" field in this mutation.
func (m *ProjectInvestorMutation) AddedUnitsInvested() (r float64, exists bool) {
	v := m.addunits_invested
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitsInvested resets all changes to the "units_invested" field.
func (m *ProjectInvestorMutation) ResetUnitsInvested() {
	m.units_invested = nil
	m.addunits_invested = nil
}

// SetMetadata sets the "metadata" field.
func (m *ProjectInvestorMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ProjectInvestorMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ProjectInvestor entity.
// If the ProjectInvestor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectInvestorMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ProjectInvestorMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[projectinvestor.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ProjectInvestorMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[projectinvestor.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ProjectInvestorMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, projectinvestor.FieldMetadata)
}

// SetProjectID sets the "project" edge to the Project entity by id.
func (m *ProjectInvestorMutation) SetProjectID(id string) {
	m.project = &id
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ProjectInvestorMutation) ClearProject() {
	m.clearedproject = true
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ProjectInvestorMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectID returns the "project" edge ID in the mutation.
func (m *ProjectInvestorMutation) ProjectID() (id string, exists bool) {
	if m.project != nil {
		return *m.project, true
	}
	return
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ProjectInvestorMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ProjectInvestorMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ProjectInvestorMutation builder.
func (m *ProjectInvestorMutation) Where(ps ...predicate.ProjectInvestor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectInvestorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectInvestorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectInvestor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectInvestorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectInvestorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectInvestor).
func (m *ProjectInvestorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectInvestorMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, projectinvestor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, projectinvestor.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, projectinvestor.FieldName)
	}
	if m.email != nil {
		fields = append(fields, projectinvestor.FieldEmail)
	}
	if m.role != nil {
		fields = append(fields, projectinvestor.FieldRole)
	}
	if m.routing_order != nil {
		fields = append(fields, projectinvestor.FieldRoutingOrder)
	}
	if m.units_invested != nil {
		fields = append(fields, projectinvestor.FieldUnitsInvested)
	}
	if m.metadata != nil {
		fields = append(fields, projectinvestor.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectInvestorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectinvestor.FieldCreatedAt:
		return m.CreatedAt()
	case projectinvestor.FieldUpdatedAt:
		return m.UpdatedAt()
	case projectinvestor.FieldName:
		return m.Name()
	case projectinvestor.FieldEmail:
		return m.Email()
	case projectinvestor.FieldRole:
		return m.Role()
	case projectinvestor.FieldRoutingOrder:
		return m.RoutingOrder()
	case projectinvestor.FieldUnitsInvested:
		return m.UnitsInvested()
	case projectinvestor.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectInvestorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectinvestor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case projectinvestor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case projectinvestor.FieldName:
		return m.OldName(ctx)
	case projectinvestor.FieldEmail:
		return m.OldEmail(ctx)
	case projectinvestor.FieldRole:
		return m.OldRole(ctx)
	case projectinvestor.FieldRoutingOrder:
		return m.OldRoutingOrder(ctx)
	case projectinvestor.FieldUnitsInvested:
		return m.OldUnitsInvested(ctx)
	case projectinvestor.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectInvestor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectInvestorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectinvestor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case projectinvestor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case projectinvestor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case projectinvestor.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case projectinvestor.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case projectinvestor.FieldRoutingOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutingOrder(v)
		return nil
	case projectinvestor.FieldUnitsInvested:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitsInvested(v)
		return nil
	case projectinvestor.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectInvestor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectInvestorMutation) AddedFields() []string {
	var fields []string
	if m.addrouting_order != nil {
		fields = append(fields, projectinvestor.FieldRoutingOrder)
	}
	if m.addunits_invested != nil {
		fields = append(fields, projectinvestor.FieldUnitsInvested)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectInvestorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case projectinvestor.FieldRoutingOrder:
		return m.AddedRoutingOrder()
	case projectinvestor.FieldUnitsInvested:
		return m.AddedUnitsInvested()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectInvestorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case projectinvestor.FieldRoutingOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoutingOrder(v)
		return nil
	case projectinvestor.FieldUnitsInvested:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitsInvested(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectInvestor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectInvestorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(projectinvestor.FieldMetadata) {
		fields = append(fields, projectinvestor.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectInvestorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectInvestorMutation) ClearField(name string) error {
	switch name {
	case projectinvestor.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ProjectInvestor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectInvestorMutation) ResetField(name string) error {
	switch name {
	case projectinvestor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case projectinvestor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case projectinvestor.FieldName:
		m.ResetName()
		return nil
	case projectinvestor.FieldEmail:
		m.ResetEmail()
		return nil
	case projectinvestor.FieldRole:
		m.ResetRole()
		return nil
	case projectinvestor.FieldRoutingOrder:
		m.ResetRoutingOrder()
		return nil
	case projectinvestor.FieldUnitsInvested:
		m.ResetUnitsInvested()
		return nil
	case projectinvestor.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown ProjectInvestor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectInvestorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, projectinvestor.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectInvestorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case projectinvestor.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectInvestorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectInvestorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectInvestorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, projectinvestor.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectInvestorMutation) EdgeCleared(name string) bool {
	switch name {
	case projectinvestor.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectInvestorMutation) ClearEdge(name string) error {
	switch name {
	case projectinvestor.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ProjectInvestor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectInvestorMutation) ResetEdge(name string) error {
	switch name {
	case projectinvestor.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown ProjectInvestor edge %s", name)
}

// SignerMutation represents an operation that mutates the Signer nodes in the graph.
type SignerMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	name             *string
	email            *string
	role             *string
	routing_order    *int
	addrouting_order *int
	status           *signer.Status
	completed_at     *time.Time
	opened_at        *time.Time
	ip_first         *string
	ua_first         *string
	clearedFields    map[string]struct{}
	envelope         *string
	clearedenvelope  bool
	fields           map[string]struct{}
	removedfields    map[string]struct{}
	clearedfields    bool
	values           map[int]struct{}
	removedvalues    map[int]struct{}
	clearedvalues    bool
	done             bool
	oldValue         func(context.Context) (*Signer, error)
	predicates       []predicate.Signer
}

var _ ent.Mutation = (*SignerMutation)(nil)

// signerOption allows management of the mutation configuration using functional options.
type signerOption func(*SignerMutation)

// newSignerMutation creates new mutation for the Signer entity.
func newSignerMutation(c config, op Op, opts ...signerOption) *SignerMutation {
	m := &SignerMutation{
		config:        c,
		op:            op,
		typ:           TypeSigner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSignerID sets the ID field of the mutation.
func withSignerID(id string) signerOption {
	return func(m *SignerMutation) {
		var (
			err   error
			once  sync.Once
			value *Signer
		)
		m.oldValue = func(ctx context.Context) (*Signer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Signer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSigner sets the old Signer of the mutation.
func withSigner(node *Signer) signerOption {
	return func(m *SignerMutation) {
		m.oldValue = func(context.Context) (*Signer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SignerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SignerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Signer entities.
func (m *SignerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SignerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SignerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Signer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SignerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SignerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Signer entity.
// If the Signer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SignerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SignerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SignerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Signer entity.
// If the Signer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SignerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *SignerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SignerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Signer entity.
// If the Signer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SignerMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *SignerMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *SignerMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Signer entity.
// If the Signer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignerMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *SignerMutation) ResetEmail() {
	m.email = nil
}

// SetRole sets the "role" field.
func (m *SignerMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *SignerMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Signer entity.
// If the Signer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignerMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *SignerMutation) ResetRole() {
	m.role = nil
}

// SetRoutingOrder sets the "routing_order" field.
func (m *SignerMutation) SetRoutingOrder(i int) {
	m.routing_order = &i
	m.addrouting_order = nil
}

// RoutingOrder returns the value of the "routing_order" field in the mutation.
func (m *SignerMutation) RoutingOrder() (r int, exists bool) {
	v := m.routing_order
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutingOrder returns the old "routing_order" field's value of the Signer entity.
// If the Signer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignerMutation) OldRoutingOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutingOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutingOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutingOrder: %w", err)
	}
	return oldValue.RoutingOrder, nil
}

// AddRoutingOrder adds i to the "routing_order" field.
func (m *SignerMutation) AddRoutingOrder(i int) {
	if m.addrouting_order != nil {
		*m.addrouting_order += i
	} else {
		m.addrouting_order = &i
	}
}

// AddedRoutingOrder returns the value that was added to the "routing_order" field in this mutation.
func (m *SignerMutation) AddedRoutingOrder() (r int, exists bool) {
	v := m.addrouting_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetRoutingOrder resets all changes to the "routing_order" field.
func (m *SignerMutation) ResetRoutingOrder() {
	m.routing_order = nil
	m.addrouting_order = nil
}

// SetStatus sets the "status" field.
func (m *SignerMutation) SetStatus(s signer.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SignerMutation) Status() (r signer.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Signer entity.
// If the Signer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignerMutation) OldStatus(ctx context.Context) (v signer.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SignerMutation) ResetStatus() {
	m.status = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SignerMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SignerMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Signer entity.
// If the Signer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignerMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SignerMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[signer.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SignerMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[signer.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SignerMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, signer.FieldCompletedAt)
}

// SetOpenedAt sets the "opened_at" field.
func (m *SignerMutation) SetOpenedAt(t time.Time) {
	m.opened_at = &t
}

// OpenedAt returns the value of the "opened_at" field in the mutation.
func (m *SignerMutation) OpenedAt() (r time.Time, exists bool) {
	v := m.opened_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenedAt returns the old "opened_at" field's value of the Signer entity.
// If the Signer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignerMutation) OldOpenedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenedAt: %w", err)
	}
	return oldValue.OpenedAt, nil
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (m *SignerMutation) ClearOpenedAt() {
	m.opened_at = nil
	m.clearedFields[signer.FieldOpenedAt] = struct{}{}
}

// OpenedAtCleared returns if the "opened_at" field was cleared in this mutation.
func (m *SignerMutation) OpenedAtCleared() bool {
	_, ok := m.clearedFields[signer.FieldOpenedAt]
	return ok
}

// ResetOpenedAt resets all changes to the "opened_at" field.
func (m *SignerMutation) ResetOpenedAt() {
	m.opened_at = nil
	delete(m.clearedFields, signer.FieldOpenedAt)
}

// SetIPFirst sets the "ip_first" field.
func (m *SignerMutation) SetIPFirst(s string) {
	m.ip_first = &s
}

// IPFirst returns the value of the "ip_first" field in the mutation.
func (m *SignerMutation) IPFirst() (r string, exists bool) {
	v := m.ip_first
	if v == nil {
		return
	}
	return *v, true
}

// OldIPFirst returns the old "ip_first" field's value of the Signer entity.
// If the Signer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignerMutation) OldIPFirst(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPFirst is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPFirst requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPFirst: %w", err)
	}
	return oldValue.IPFirst, nil
}

// ClearIPFirst clears the value of the "ip_first" field.
func (m *SignerMutation) ClearIPFirst() {
	m.ip_first = nil
	m.clearedFields[signer.FieldIPFirst] = struct{}{}
}

// IPFirstCleared returns if the "ip_first" field was cleared in this mutation.
func (m *SignerMutation) IPFirstCleared() bool {
	_, ok := m.clearedFields[signer.FieldIPFirst]
	return ok
}

// ResetIPFirst resets all changes to the "ip_first" field.
func (m *SignerMutation) ResetIPFirst() {
	m.ip_first = nil
	delete(m.clearedFields, signer.FieldIPFirst)
}

// SetUaFirst sets the "ua_first" field.
func (m *SignerMutation) SetUaFirst(s string) {
	m.ua_first = &s
}

// UaFirst returns the value of the "ua_first" field in the mutation.
func (m *SignerMutation) UaFirst() (r string, exists bool) {
	v := m.ua_first
	if v == nil {
		return
	}
	return *v, true
}

// OldUaFirst returns the old "ua_first" field's value of the Signer entity.
// If the Signer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignerMutation) OldUaFirst(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUaFirst is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUaFirst requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUaFirst: %w", err)
	}
	return oldValue.UaFirst, nil
}

// ClearUaFirst clears the value of the "ua_first" field.
func (m *SignerMutation) ClearUaFirst() {
	m.ua_first = nil
	m.clearedFields[signer.FieldUaFirst] = struct{}{}
}

// UaFirstCleared returns if the "ua_first" field was cleared in this mutation.
func (m *SignerMutation) UaFirstCleared() bool {
	_, ok := m.clearedFields[signer.FieldUaFirst]
	return ok
}

// ResetUaFirst resets all changes to the "ua_first" field.
func (m *SignerMutation) ResetUaFirst() {
	m.ua_first = nil
	delete(m.clearedFields, signer.FieldUaFirst)
}

// SetEnvelopeID sets the "envelope" edge to the Envelope entity by id.
func (m *SignerMutation) SetEnvelopeID(id string) {
	m.envelope = &id
}

// ClearEnvelope clears the "envelope" edge to the Envelope entity.
func (m *SignerMutation) ClearEnvelope() {
	m.clearedenvelope = true
}

// EnvelopeCleared reports if the "envelope" edge to the Envelope entity was cleared.
func (m *SignerMutation) EnvelopeCleared() bool {
	return m.clearedenvelope
}

// EnvelopeID returns the "envelope" edge ID in the mutation.
func (m *SignerMutation) EnvelopeID() (id string, exists bool) {
	if m.envelope != nil {
		return *m.envelope, true
	}
	return
}

// EnvelopeIDs returns the "envelope" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EnvelopeID instead. It exists only for internal usage by the builders.
func (m *SignerMutation) EnvelopeIDs() (ids []string) {
	if id := m.envelope; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEnvelope resets all changes to the "envelope" edge.
func (m *SignerMutation) ResetEnvelope() {
	m.envelope = nil
	m.clearedenvelope = false
}

// AddFieldIDs adds the "fields" edge to the EnvelopeField entity by ids.
func (m *SignerMutation) AddFieldIDs(ids ...string) {
	if m.fields == nil {
		m.fields = make(map[string]struct{})
	}
	for i := range ids {
		m.fields[ids[i]] = struct{}{}
	}
}

// ClearFields clears the "fields" edge to the EnvelopeField entity.
func (m *SignerMutation) ClearFields() {
	m.clearedfields = true
}

// FieldsCleared reports if the "fields" edge to the EnvelopeField entity was cleared.
func (m *SignerMutation) FieldsCleared() bool {
	return m.clearedfields
}

// RemoveFieldIDs removes the "fields" edge to the EnvelopeField entity by IDs.
func (m *SignerMutation) RemoveFieldIDs(ids ...string) {
	if m.removedfields == nil {
		m.removedfields = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.fields, ids[i])
		m.removedfields[ids[i]] = struct{}{}
	}
}

// RemovedFields returns the removed IDs of the "fields" edge to the EnvelopeField entity.
func (m *SignerMutation) RemovedFieldsIDs() (ids []string) {
	for id := range m.removedfields {
		ids = append(ids, id)
	}
	return
}

// FieldsIDs returns the "fields" edge IDs in the mutation.
func (m *SignerMutation) FieldsIDs() (ids []string) {
	for id := range m.fields {
		ids = append(ids, id)
	}
	return
}

// ResetFields resets all changes to the "fields" edge.
func (m *SignerMutation) ResetFields() {
	m.fields = nil
	m.clearedfields = false
	m.removedfields = nil
}

// AddValueIDs adds the "values" edge to the SignerFieldValue entity by ids.
func (m *SignerMutation) AddValueIDs(ids ...int) {
	if m.values == nil {
		m.values = make(map[int]struct{})
	}
	for i := range ids {
		m.values[ids[i]] = struct{}{}
	}
}

// ClearValues clears the "values" edge to the SignerFieldValue entity.
func (m *SignerMutation) ClearValues() {
	m.clearedvalues = true
}

// ValuesCleared reports if the "values" edge to the SignerFieldValue entity was cleared.
func (m *SignerMutation) ValuesCleared() bool {
	return m.clearedvalues
}

// RemoveValueIDs removes the "values" edge to the SignerFieldValue entity by IDs.
func (m *SignerMutation) RemoveValueIDs(ids ...int) {
	if m.removedvalues == nil {
		m.removedvalues = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.values, ids[i])
		m.removedvalues[ids[i]] = struct{}{}
	}
}

// RemovedValues returns the removed IDs of the "values" edge to the SignerFieldValue entity.
func (m *SignerMutation) RemovedValuesIDs() (ids []int) {
	for id := range m.removedvalues {
		ids = append(ids, id)
	}
	return
}

// ValuesIDs returns the "values" edge IDs in the mutation.
func (m *SignerMutation) ValuesIDs() (ids []int) {
	for id := range m.values {
		ids = append(ids, id)
	}
	return
}

// ResetValues resets all changes to the "values" edge.
func (m *SignerMutation) ResetValues() {
	m.values = nil
	m.clearedvalues = false
	m.removedvalues = nil
}

// Where appends a list predicates to the SignerMutation builder.
func (m *SignerMutation) Where(ps ...predicate.Signer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SignerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SignerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Signer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SignerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SignerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Signer).
func (m *SignerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SignerMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, signer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, signer.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, signer.FieldName)
	}
	if m.email != nil {
		fields = append(fields, signer.FieldEmail)
	}
	if m.role != nil {
		fields = append(fields, signer.FieldRole)
	}
	if m.routing_order != nil {
		fields = append(fields, signer.FieldRoutingOrder)
	}
	if m.status != nil {
		fields = append(fields, signer.FieldStatus)
	}
	if m.completed_at != nil {
		fields = append(fields, signer.FieldCompletedAt)
	}
	if m.opened_at != nil {
		fields = append(fields, signer.FieldOpenedAt)
	}
	if m.ip_first != nil {
		fields = append(fields, signer.FieldIPFirst)
	}
	if m.ua_first != nil {
		fields = append(fields, signer.FieldUaFirst)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SignerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case signer.FieldCreatedAt:
		return m.CreatedAt()
	case signer.FieldUpdatedAt:
		return m.UpdatedAt()
	case signer.FieldName:
		return m.Name()
	case signer.FieldEmail:
		return m.Email()
	case signer.FieldRole:
		return m.Role()
	case signer.FieldRoutingOrder:
		return m.RoutingOrder()
	case signer.FieldStatus:
		return m.Status()
	case signer.FieldCompletedAt:
		return m.CompletedAt()
	case signer.FieldOpenedAt:
		return m.OpenedAt()
	case signer.FieldIPFirst:
		return m.IPFirst()
	case signer.FieldUaFirst:
		return m.UaFirst()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SignerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case signer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case signer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case signer.FieldName:
		return m.OldName(ctx)
	case signer.FieldEmail:
		return m.OldEmail(ctx)
	case signer.FieldRole:
		return m.OldRole(ctx)
	case signer.FieldRoutingOrder:
		return m.OldRoutingOrder(ctx)
	case signer.FieldStatus:
		return m.OldStatus(ctx)
	case signer.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case signer.FieldOpenedAt:
		return m.OldOpenedAt(ctx)
	case signer.FieldIPFirst:
		return m.OldIPFirst(ctx)
	case signer.FieldUaFirst:
		return m.OldUaFirst(ctx)
	}
	return nil, fmt.Errorf("unknown Signer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SignerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case signer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case signer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case signer.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case signer.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case signer.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case signer.FieldRoutingOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutingOrder(v)
		return nil
	case signer.FieldStatus:
		v, ok := value.(signer.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case signer.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case signer.FieldOpenedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenedAt(v)
		return nil
	case signer.FieldIPFirst:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPFirst(v)
		return nil
	case signer.FieldUaFirst:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUaFirst(v)
		return nil
	}
	return fmt.Errorf("unknown Signer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SignerMutation) AddedFields() []string {
	var fields []string
	if m.addrouting_order != nil {
		fields = append(fields, signer.FieldRoutingOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SignerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case signer.FieldRoutingOrder:
		return m.AddedRoutingOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SignerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case signer.FieldRoutingOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoutingOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Signer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SignerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(signer.FieldCompletedAt) {
		fields = append(fields, signer.FieldCompletedAt)
	}
	if m.FieldCleared(signer.FieldOpenedAt) {
		fields = append(fields, signer.FieldOpenedAt)
	}
	if m.FieldCleared(signer.FieldIPFirst) {
		fields = append(fields, signer.FieldIPFirst)
	}
	if m.FieldCleared(signer.FieldUaFirst) {
		fields = append(fields, signer.FieldUaFirst)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SignerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SignerMutation) ClearField(name string) error {
	switch name {
	case signer.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case signer.FieldOpenedAt:
		m.ClearOpenedAt()
		return nil
	case signer.FieldIPFirst:
		m.ClearIPFirst()
		return nil
	case signer.FieldUaFirst:
		m.ClearUaFirst()
		return nil
	}
	return fmt.Errorf("unknown Signer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SignerMutation) ResetField(name string) error {
	switch name {
	case signer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case signer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case signer.FieldName:
		m.ResetName()
		return nil
	case signer.FieldEmail:
		m.ResetEmail()
		return nil
	case signer.FieldRole:
		m.ResetRole()
		return nil
	case signer.FieldRoutingOrder:
		m.ResetRoutingOrder()
		return nil
	case signer.FieldStatus:
		m.ResetStatus()
		return nil
	case signer.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case signer.FieldOpenedAt:
		m.ResetOpenedAt()
		return nil
	case signer.FieldIPFirst:
		m.ResetIPFirst()
		return nil
	case signer.FieldUaFirst:
		m.ResetUaFirst()
		return nil
	}
	return fmt.Errorf("unknown Signer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SignerMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.envelope != nil {
		edges = append(edges, signer.EdgeEnvelope)
	}
	if m.fields != nil {
		edges = append(edges, signer.EdgeFields)
	}
	if m.values != nil {
		edges = append(edges, signer.EdgeValues)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SignerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case signer.EdgeEnvelope:
		if id := m.envelope; id != nil {
			return []ent.Value{*id}
		}
	case signer.EdgeFields:
		ids := make([]ent.Value, 0, len(m.fields))
		for id := range m.fields {
			ids = append(ids, id)
		}
		return ids
	case signer.EdgeValues:
		ids := make([]ent.Value, 0, len(m.values))
		for id := range m.values {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SignerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfields != nil {
		edges = append(edges, signer.EdgeFields)
	}
	if m.removedvalues != nil {
		edges = append(edges, signer.EdgeValues)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SignerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case signer.EdgeFields:
		ids := make([]ent.Value, 0, len(m.removedfields))
		for id := range m.removedfields {
			ids = append(ids, id)
		}
		return ids
	case signer.EdgeValues:
		ids := make([]ent.Value, 0, len(m.removedvalues))
		for id := range m.removedvalues {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SignerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedenvelope {
		edges = append(edges, signer.EdgeEnvelope)
	}
	if m.clearedfields {
		edges = append(edges, signer.EdgeFields)
	}
	if m.clearedvalues {
		edges = append(edges, signer.EdgeValues)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SignerMutation) EdgeCleared(name string) bool {
	switch name {
	case signer.EdgeEnvelope:
		return m.clearedenvelope
	case signer.EdgeFields:
		return m.clearedfields
	case signer.EdgeValues:
		return m.clearedvalues
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SignerMutation) ClearEdge(name string) error {
	switch name {
	case signer.EdgeEnvelope:
		m.ClearEnvelope()
		return nil
	}
	return fmt.Errorf("unknown Signer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SignerMutation) ResetEdge(name string) error {
	switch name {
	case signer.EdgeEnvelope:
		m.ResetEnvelope()
		return nil
	case signer.EdgeFields:
		m.ResetFields()
		return nil
	case signer.EdgeValues:
		m.ResetValues()
		return nil
	}
	return fmt.Errorf("unknown Signer edge %s", name)
}

// SignerFieldValueMutation represents an operation that mutates the SignerFieldValue nodes in the graph.
type SignerFieldValueMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	payload       *map[string]interface{}
	clearedFields map[string]struct{}
	signer        *string
	clearedsigner bool
	field         *string
	clearedfield  bool
	done          bool
	oldValue      func(context.Context) (*SignerFieldValue, error)
	predicates    []predicate.SignerFieldValue
}

var _ ent.Mutation = (*SignerFieldValueMutation)(nil)

// signerfieldvalueOption allows management of the mutation configuration using functional options.
type signerfieldvalueOption func(*SignerFieldValueMutation)

// newSignerFieldValueMutation creates new mutation for the SignerFieldValue entity.
func newSignerFieldValueMutation(c config, op Op, opts ...signerfieldvalueOption) *SignerFieldValueMutation {
	m := &SignerFieldValueMutation{
		config:        c,
		op:            op,
		typ:           TypeSignerFieldValue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSignerFieldValueID sets the ID field of the mutation.
func withSignerFieldValueID(id int) signerfieldvalueOption {
	return func(m *SignerFieldValueMutation) {
		var (
			err   error
			once  sync.Once
			value *SignerFieldValue
		)
		m.oldValue = func(ctx context.Context) (*SignerFieldValue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SignerFieldValue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSignerFieldValue sets the old SignerFieldValue of the mutation.
func withSignerFieldValue(node *SignerFieldValue) signerfieldvalueOption {
	return func(m *SignerFieldValueMutation) {
		m.oldValue = func(context.Context) (*SignerFieldValue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SignerFieldValueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SignerFieldValueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SignerFieldValueMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SignerFieldValueMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SignerFieldValue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SignerFieldValueMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SignerFieldValueMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SignerFieldValue entity.
// If the SignerFieldValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignerFieldValueMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SignerFieldValueMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPayload sets the "payload" field.
func (m *SignerFieldValueMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *SignerFieldValueMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the SignerFieldValue entity.
// If the SignerFieldValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignerFieldValueMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *SignerFieldValueMutation) ResetPayload() {
	m.payload = nil
}

// SetSignerID sets the "signer" edge to the Signer entity by id.
func (m *SignerFieldValueMutation) SetSignerID(id string) {
	m.signer = &id
}

// ClearSigner clears the "signer" edge to the Signer entity.
func (m *SignerFieldValueMutation) ClearSigner() {
	m.clearedsigner = true
}

// SignerCleared reports if the "signer" edge to the Signer entity was cleared.
func (m *SignerFieldValueMutation) SignerCleared() bool {
	return m.clearedsigner
}

// SignerID returns the "signer" edge ID in the mutation.
func (m *SignerFieldValueMutation) SignerID() (id string, exists bool) {
	if m.signer != nil {
		return *m.signer, true
	}
	return
}

// SignerIDs returns the "signer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SignerID instead. It exists only for internal usage by the builders.
func (m *SignerFieldValueMutation) SignerIDs() (ids []string) {
	if id := m.signer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSigner resets all changes to the "signer" edge.
func (m *SignerFieldValueMutation) ResetSigner() {
	m.signer = nil
	m.clearedsigner = false
}

// SetFieldID sets the "field" edge to the EnvelopeField entity by id.
func (m *SignerFieldValueMutation) SetFieldID(id string) {
	m.field = &id
}

// ClearFieldEdge clears the "field" edge to the EnvelopeField entity.
func (m *SignerFieldValueMutation) ClearFieldEdge() {
	m.clearedfield = true
}

// FieldEdgeCleared reports if the "field" edge to the EnvelopeField entity was cleared.
func (m *SignerFieldValueMutation) FieldEdgeCleared() bool {
	return m.clearedfield
}

// FieldID returns the "field" edge ID in the mutation.
func (m *SignerFieldValueMutation) FieldID() (id string, exists bool) {
	if m.field != nil {
		return *m.field, true
	}
	return
}

// FieldIDs returns the "field" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FieldID instead. It exists only for internal usage by the builders.
func (m *SignerFieldValueMutation) FieldIDs() (ids []string) {
	if id := m.field; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFieldEdge resets all changes to the "field" edge.
func (m *SignerFieldValueMutation) ResetFieldEdge() {
	m.field = nil
	m.clearedfield = false
}

// Where appends a list predicates to the SignerFieldValueMutation builder.
func (m *SignerFieldValueMutation) Where(ps ...predicate.SignerFieldValue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SignerFieldValueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SignerFieldValueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SignerFieldValue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SignerFieldValueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SignerFieldValueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SignerFieldValue).
func (m *SignerFieldValueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SignerFieldValueMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.created_at != nil {
		fields = append(fields, signerfieldvalue.FieldCreatedAt)
	}
	if m.payload != nil {
		fields = append(fields, signerfieldvalue.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SignerFieldValueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case signerfieldvalue.FieldCreatedAt:
		return m.CreatedAt()
	case signerfieldvalue.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SignerFieldValueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case signerfieldvalue.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case signerfieldvalue.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown SignerFieldValue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SignerFieldValueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case signerfieldvalue.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case signerfieldvalue.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown SignerFieldValue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SignerFieldValueMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SignerFieldValueMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SignerFieldValueMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SignerFieldValue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SignerFieldValueMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SignerFieldValueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SignerFieldValueMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SignerFieldValue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SignerFieldValueMutation) ResetField(name string) error {
	switch name {
	case signerfieldvalue.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case signerfieldvalue.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown SignerFieldValue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SignerFieldValueMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.signer != nil {
		edges = append(edges, signerfieldvalue.EdgeSigner)
	}
	if m.field != nil {
		edges = append(edges, signerfieldvalue.EdgeField)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SignerFieldValueMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case signerfieldvalue.EdgeSigner:
		if id := m.signer; id != nil {
			return []ent.Value{*id}
		}
	case signerfieldvalue.EdgeField:
		if id := m.field; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SignerFieldValueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SignerFieldValueMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SignerFieldValueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsigner {
		edges = append(edges, signerfieldvalue.EdgeSigner)
	}
	if m.clearedfield {
		edges = append(edges, signerfieldvalue.EdgeField)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SignerFieldValueMutation) EdgeCleared(name string) bool {
	switch name {
	case signerfieldvalue.EdgeSigner:
		return m.clearedsigner
	case signerfieldvalue.EdgeField:
		return m.clearedfield
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SignerFieldValueMutation) ClearEdge(name string) error {
	switch name {
	case signerfieldvalue.EdgeSigner:
		m.ClearSigner()
		return nil
	case signerfieldvalue.EdgeField:
		m.ClearFieldEdge()
		return nil
	}
	return fmt.Errorf("unknown SignerFieldValue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SignerFieldValueMutation) ResetEdge(name string) error {
	switch name {
	case signerfieldvalue.EdgeSigner:
		m.ResetSigner()
		return nil
	case signerfieldvalue.EdgeField:
		m.ResetFieldEdge()
		return nil
	}
	return fmt.Errorf("unknown SignerFieldValue edge %s", name)
}
