// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/phenobase/trait-extractor/gen/ent/document"
	"github.com/phenobase/trait-extractor/gen/ent/extractionjob"
	"github.com/phenobase/trait-extractor/gen/ent/jobdocument"
	"github.com/phenobase/trait-extractor/gen/ent/predicate"
	"github.com/phenobase/trait-extractor/gen/ent/sentence"
	"github.com/phenobase/trait-extractor/gen/ent/trainingrun"
	"github.com/phenobase/trait-extractor/gen/ent/triple"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument      = "Document"
	TypeExtractionJob = "ExtractionJob"
	TypeJobDocument   = "JobDocument"
	TypeSentence      = "Sentence"
	TypeTrainingRun   = "TrainingRun"
	TypeTriple        = "Triple"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	project_id           *int
	addproject_id        *int
	file_path            *string
	text_content         *string
	doi                  *string
	doi_hash             *string
	status               *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	job_documents        map[int]struct{}
	removedjob_documents map[int]struct{}
	clearedjob_documents bool
	sentences            map[int]struct{}
	removedsentences     map[int]struct{}
	clearedsentences     bool
	triples              map[int]struct{}
	removedtriples       map[int]struct{}
	clearedtriples       bool
	done                 bool
	oldValue             func(context.Context) (*Document, error)
	predicates           []predicate.Document
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
func withDocumentID(id int) documentOption {
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

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *DocumentMutation) SetProjectID(i int) {
	m.project_id = &i
	m.addproject_id = nil
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *DocumentMutation) ProjectID() (r int, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProjectID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// AddProjectID adds i to the "project_id" field.
func (m *DocumentMutation) AddProjectID(i int) {
	if m.addproject_id != nil {
		*m.addproject_id += i
	} else {
		m.addproject_id = &i
	}
}

// AddedProjectID returns the value that was added to the "project_id" field in this mutation.
func (m *DocumentMutation) AddedProjectID() (r int, exists bool) {
	v := m.addproject_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearProjectID clears the value of the "project_id" field.
func (m *DocumentMutation) ClearProjectID() {
	m.project_id = nil
	m.addproject_id = nil
	m.clearedFields[document.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *DocumentMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[document.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *DocumentMutation) ResetProjectID() {
	m.project_id = nil
	m.addproject_id = nil
	delete(m.clearedFields, document.FieldProjectID)
}

// SetFilePath sets the "file_path" field.
func (m *DocumentMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *DocumentMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *DocumentMutation) ResetFilePath() {
	m.file_path = nil
}

// SetTextContent sets the "text_content" field.
func (m *DocumentMutation) SetTextContent(s string) {
	m.text_content = &s
}

// TextContent returns the value of the "text_content" field in the mutation.
func (m *DocumentMutation) TextContent() (r string, exists bool) {
	v := m.text_content
	if v == nil {
		return
	}
	return *v, true
}

// OldTextContent returns the old "text_content" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTextContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextContent: %w", err)
	}
	return oldValue.TextContent, nil
}

// ResetTextContent resets all changes to the "text_content" field.
func (m *DocumentMutation) ResetTextContent() {
	m.text_content = nil
}

// SetDoi sets the "doi" field.
func (m *DocumentMutation) SetDoi(s string) {
	m.doi = &s
}

// Doi returns the value of the "doi" field in the mutation.
func (m *DocumentMutation) Doi() (r string, exists bool) {
	v := m.doi
	if v == nil {
		return
	}
	return *v, true
}

// OldDoi returns the old "doi" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDoi(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoi: %w", err)
	}
	return oldValue.Doi, nil
}

// ClearDoi clears the value of the "doi" field.
func (m *DocumentMutation) ClearDoi() {
	m.doi = nil
	m.clearedFields[document.FieldDoi] = struct{}{}
}

// DoiCleared returns if the "doi" field was cleared in this mutation.
func (m *DocumentMutation) DoiCleared() bool {
	_, ok := m.clearedFields[document.FieldDoi]
	return ok
}

// ResetDoi resets all changes to the "doi" field.
func (m *DocumentMutation) ResetDoi() {
	m.doi = nil
	delete(m.clearedFields, document.FieldDoi)
}

// SetDoiHash sets the "doi_hash" field.
func (m *DocumentMutation) SetDoiHash(s string) {
	m.doi_hash = &s
}

// DoiHash returns the value of the "doi_hash" field in the mutation.
func (m *DocumentMutation) DoiHash() (r string, exists bool) {
	v := m.doi_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldDoiHash returns the old "doi_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDoiHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoiHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoiHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoiHash: %w", err)
	}
	return oldValue.DoiHash, nil
}

// ClearDoiHash clears the value of the "doi_hash" field.
func (m *DocumentMutation) ClearDoiHash() {
	m.doi_hash = nil
	m.clearedFields[document.FieldDoiHash] = struct{}{}
}

// DoiHashCleared returns if the "doi_hash" field was cleared in this mutation.
func (m *DocumentMutation) DoiHashCleared() bool {
	_, ok := m.clearedFields[document.FieldDoiHash]
	return ok
}

// ResetDoiHash resets all changes to the "doi_hash" field.
func (m *DocumentMutation) ResetDoiHash() {
	m.doi_hash = nil
	delete(m.clearedFields, document.FieldDoiHash)
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
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

// AddJobDocumentIDs adds the "job_documents" edge to the JobDocument entity by ids.
func (m *DocumentMutation) AddJobDocumentIDs(ids ...int) {
	if m.job_documents == nil {
		m.job_documents = make(map[int]struct{})
	}
	for i := range ids {
		m.job_documents[ids[i]] = struct{}{}
	}
}

// ClearJobDocuments clears the "job_documents" edge to the JobDocument entity.
func (m *DocumentMutation) ClearJobDocuments() {
	m.clearedjob_documents = true
}

// JobDocumentsCleared reports if the "job_documents" edge to the JobDocument entity was cleared.
func (m *DocumentMutation) JobDocumentsCleared() bool {
	return m.clearedjob_documents
}

// RemoveJobDocumentIDs removes the "job_documents" edge to the JobDocument entity by IDs.
func (m *DocumentMutation) RemoveJobDocumentIDs(ids ...int) {
	if m.removedjob_documents == nil {
		m.removedjob_documents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.job_documents, ids[i])
		m.removedjob_documents[ids[i]] = struct{}{}
	}
}

// RemovedJobDocuments returns the removed IDs of the "job_documents" edge to the JobDocument entity.
func (m *DocumentMutation) RemovedJobDocumentsIDs() (ids []int) {
	for id := range m.removedjob_documents {
		ids = append(ids, id)
	}
	return
}

// JobDocumentsIDs returns the "job_documents" edge IDs in the mutation.
func (m *DocumentMutation) JobDocumentsIDs() (ids []int) {
	for id := range m.job_documents {
		ids = append(ids, id)
	}
	return
}

// ResetJobDocuments resets all changes to the "job_documents" edge.
func (m *DocumentMutation) ResetJobDocuments() {
	m.job_documents = nil
	m.clearedjob_documents = false
	m.removedjob_documents = nil
}

// AddSentenceIDs adds the "sentences" edge to the Sentence entity by ids.
func (m *DocumentMutation) AddSentenceIDs(ids ...int) {
	if m.sentences == nil {
		m.sentences = make(map[int]struct{})
	}
	for i := range ids {
		m.sentences[ids[i]] = struct{}{}
	}
}

// ClearSentences clears the "sentences" edge to the Sentence entity.
func (m *DocumentMutation) ClearSentences() {
	m.clearedsentences = true
}

// SentencesCleared reports if the "sentences" edge to the Sentence entity was cleared.
func (m *DocumentMutation) SentencesCleared() bool {
	return m.clearedsentences
}

// RemoveSentenceIDs removes the "sentences" edge to the Sentence entity by IDs.
func (m *DocumentMutation) RemoveSentenceIDs(ids ...int) {
	if m.removedsentences == nil {
		m.removedsentences = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.sentences, ids[i])
		m.removedsentences[ids[i]] = struct{}{}
	}
}

// RemovedSentences returns the removed IDs of the "sentences" edge to the Sentence entity.
func (m *DocumentMutation) RemovedSentencesIDs() (ids []int) {
	for id := range m.removedsentences {
		ids = append(ids, id)
	}
	return
}

// SentencesIDs returns the "sentences" edge IDs in the mutation.
func (m *DocumentMutation) SentencesIDs() (ids []int) {
	for id := range m.sentences {
		ids = append(ids, id)
	}
	return
}

// ResetSentences resets all changes to the "sentences" edge.
func (m *DocumentMutation) ResetSentences() {
	m.sentences = nil
	m.clearedsentences = false
	m.removedsentences = nil
}

// AddTripleIDs adds the "triples" edge to the Triple entity by ids.
func (m *DocumentMutation) AddTripleIDs(ids ...int) {
	if m.triples == nil {
		m.triples = make(map[int]struct{})
	}
	for i := range ids {
		m.triples[ids[i]] = struct{}{}
	}
}

// ClearTriples clears the "triples" edge to the Triple entity.
func (m *DocumentMutation) ClearTriples() {
	m.clearedtriples = true
}

// TriplesCleared reports if the "triples" edge to the Triple entity was cleared.
func (m *DocumentMutation) TriplesCleared() bool {
	return m.clearedtriples
}

// RemoveTripleIDs removes the "triples" edge to the Triple entity by IDs.
func (m *DocumentMutation) RemoveTripleIDs(ids ...int) {
	if m.removedtriples == nil {
		m.removedtriples = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.triples, ids[i])
		m.removedtriples[ids[i]] = struct{}{}
	}
}

// RemovedTriples returns the removed IDs of the "triples" edge to the Triple entity.
func (m *DocumentMutation) RemovedTriplesIDs() (ids []int) {
	for id := range m.removedtriples {
		ids = append(ids, id)
	}
	return
}

// TriplesIDs returns the "triples" edge IDs in the mutation.
func (m *DocumentMutation) TriplesIDs() (ids []int) {
	for id := range m.triples {
		ids = append(ids, id)
	}
	return
}

// ResetTriples resets all changes to the "triples" edge.
func (m *DocumentMutation) ResetTriples() {
	m.triples = nil
	m.clearedtriples = false
	m.removedtriples = nil
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
	fields := make([]string, 0, 8)
	if m.project_id != nil {
		fields = append(fields, document.FieldProjectID)
	}
	if m.file_path != nil {
		fields = append(fields, document.FieldFilePath)
	}
	if m.text_content != nil {
		fields = append(fields, document.FieldTextContent)
	}
	if m.doi != nil {
		fields = append(fields, document.FieldDoi)
	}
	if m.doi_hash != nil {
		fields = append(fields, document.FieldDoiHash)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldProjectID:
		return m.ProjectID()
	case document.FieldFilePath:
		return m.FilePath()
	case document.FieldTextContent:
		return m.TextContent()
	case document.FieldDoi:
		return m.Doi()
	case document.FieldDoiHash:
		return m.DoiHash()
	case document.FieldStatus:
		return m.Status()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldProjectID:
		return m.OldProjectID(ctx)
	case document.FieldFilePath:
		return m.OldFilePath(ctx)
	case document.FieldTextContent:
		return m.OldTextContent(ctx)
	case document.FieldDoi:
		return m.OldDoi(ctx)
	case document.FieldDoiHash:
		return m.OldDoiHash(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case document.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case document.FieldTextContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextContent(v)
		return nil
	case document.FieldDoi:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoi(v)
		return nil
	case document.FieldDoiHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoiHash(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
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
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addproject_id != nil {
		fields = append(fields, document.FieldProjectID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldProjectID:
		return m.AddedProjectID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProjectID(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldProjectID) {
		fields = append(fields, document.FieldProjectID)
	}
	if m.FieldCleared(document.FieldDoi) {
		fields = append(fields, document.FieldDoi)
	}
	if m.FieldCleared(document.FieldDoiHash) {
		fields = append(fields, document.FieldDoiHash)
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
	case document.FieldProjectID:
		m.ClearProjectID()
		return nil
	case document.FieldDoi:
		m.ClearDoi()
		return nil
	case document.FieldDoiHash:
		m.ClearDoiHash()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldProjectID:
		m.ResetProjectID()
		return nil
	case document.FieldFilePath:
		m.ResetFilePath()
		return nil
	case document.FieldTextContent:
		m.ResetTextContent()
		return nil
	case document.FieldDoi:
		m.ResetDoi()
		return nil
	case document.FieldDoiHash:
		m.ResetDoiHash()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.job_documents != nil {
		edges = append(edges, document.EdgeJobDocuments)
	}
	if m.sentences != nil {
		edges = append(edges, document.EdgeSentences)
	}
	if m.triples != nil {
		edges = append(edges, document.EdgeTriples)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobDocuments:
		ids := make([]ent.Value, 0, len(m.job_documents))
		for id := range m.job_documents {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeSentences:
		ids := make([]ent.Value, 0, len(m.sentences))
		for id := range m.sentences {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeTriples:
		ids := make([]ent.Value, 0, len(m.triples))
		for id := range m.triples {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedjob_documents != nil {
		edges = append(edges, document.EdgeJobDocuments)
	}
	if m.removedsentences != nil {
		edges = append(edges, document.EdgeSentences)
	}
	if m.removedtriples != nil {
		edges = append(edges, document.EdgeTriples)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobDocuments:
		ids := make([]ent.Value, 0, len(m.removedjob_documents))
		for id := range m.removedjob_documents {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeSentences:
		ids := make([]ent.Value, 0, len(m.removedsentences))
		for id := range m.removedsentences {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeTriples:
		ids := make([]ent.Value, 0, len(m.removedtriples))
		for id := range m.removedtriples {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedjob_documents {
		edges = append(edges, document.EdgeJobDocuments)
	}
	if m.clearedsentences {
		edges = append(edges, document.EdgeSentences)
	}
	if m.clearedtriples {
		edges = append(edges, document.EdgeTriples)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeJobDocuments:
		return m.clearedjob_documents
	case document.EdgeSentences:
		return m.clearedsentences
	case document.EdgeTriples:
		return m.clearedtriples
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeJobDocuments:
		m.ResetJobDocuments()
		return nil
	case document.EdgeSentences:
		m.ResetSentences()
		return nil
	case document.EdgeTriples:
		m.ResetTriples()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractionJobMutation represents an operation that mutates the ExtractionJob nodes in the graph.
type ExtractionJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	project_id           *int
	addproject_id        *int
	model_profile        *string
	mode                 *string
	status               *string
	progress             *int
	addprogress          *int
	total                *int
	addtotal             *int
	error_message        *string
	total_triples        *int
	addtotal_triples     *int
	created_by           *string
	created_at           *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	clearedFields        map[string]struct{}
	job_documents        map[int]struct{}
	removedjob_documents map[int]struct{}
	clearedjob_documents bool
	triples              map[int]struct{}
	removedtriples       map[int]struct{}
	clearedtriples       bool
	done                 bool
	oldValue             func(context.Context) (*ExtractionJob, error)
	predicates           []predicate.ExtractionJob
}

var _ ent.Mutation = (*ExtractionJobMutation)(nil)

// extractionjobOption allows management of the mutation configuration using functional options.
type extractionjobOption func(*ExtractionJobMutation)

// newExtractionJobMutation creates new mutation for the ExtractionJob entity.
func newExtractionJobMutation(c config, op Op, opts ...extractionjobOption) *ExtractionJobMutation {
	m := &ExtractionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionJobID sets the ID field of the mutation.
func withExtractionJobID(id int) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionJob sets the old ExtractionJob of the mutation.
func withExtractionJob(node *ExtractionJob) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		m.oldValue = func(context.Context) (*ExtractionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionJobMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionJobMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ExtractionJobMutation) SetProjectID(i int) {
	m.project_id = &i
	m.addproject_id = nil
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ExtractionJobMutation) ProjectID() (r int, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldProjectID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// AddProjectID adds i to the "project_id" field.
func (m *ExtractionJobMutation) AddProjectID(i int) {
	if m.addproject_id != nil {
		*m.addproject_id += i
	} else {
		m.addproject_id = &i
	}
}

// AddedProjectID returns the value that was added to the "project_id" field in this mutation.
func (m *ExtractionJobMutation) AddedProjectID() (r int, exists bool) {
	v := m.addproject_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearProjectID clears the value of the "project_id" field.
func (m *ExtractionJobMutation) ClearProjectID() {
	m.project_id = nil
	m.addproject_id = nil
	m.clearedFields[extractionjob.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *ExtractionJobMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ExtractionJobMutation) ResetProjectID() {
	m.project_id = nil
	m.addproject_id = nil
	delete(m.clearedFields, extractionjob.FieldProjectID)
}

// SetModelProfile sets the "model_profile" field.
func (m *ExtractionJobMutation) SetModelProfile(s string) {
	m.model_profile = &s
}

// ModelProfile returns the value of the "model_profile" field in the mutation.
func (m *ExtractionJobMutation) ModelProfile() (r string, exists bool) {
	v := m.model_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldModelProfile returns the old "model_profile" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldModelProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelProfile: %w", err)
	}
	return oldValue.ModelProfile, nil
}

// ResetModelProfile resets all changes to the "model_profile" field.
func (m *ExtractionJobMutation) ResetModelProfile() {
	m.model_profile = nil
}

// SetMode sets the "mode" field.
func (m *ExtractionJobMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *ExtractionJobMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *ExtractionJobMutation) ResetMode() {
	m.mode = nil
}

// SetStatus sets the "status" field.
func (m *ExtractionJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ExtractionJobMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *ExtractionJobMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *ExtractionJobMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *ExtractionJobMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *ExtractionJobMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *ExtractionJobMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetTotal sets the "total" field.
func (m *ExtractionJobMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *ExtractionJobMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *ExtractionJobMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *ExtractionJobMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *ExtractionJobMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionjob.FieldErrorMessage)
}

// SetTotalTriples sets the "total_triples" field.
func (m *ExtractionJobMutation) SetTotalTriples(i int) {
	m.total_triples = &i
	m.addtotal_triples = nil
}

// TotalTriples returns the value of the "total_triples" field in the mutation.
func (m *ExtractionJobMutation) TotalTriples() (r int, exists bool) {
	v := m.total_triples
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTriples returns the old "total_triples" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldTotalTriples(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTriples is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTriples requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTriples: %w", err)
	}
	return oldValue.TotalTriples, nil
}

// AddTotalTriples adds i to the "total_triples" field.
func (m *ExtractionJobMutation) AddTotalTriples(i int) {
	if m.addtotal_triples != nil {
		*m.addtotal_triples += i
	} else {
		m.addtotal_triples = &i
	}
}

// AddedTotalTriples returns the value that was added to the "total_triples" field in this mutation.
func (m *ExtractionJobMutation) AddedTotalTriples() (r int, exists bool) {
	v := m.addtotal_triples
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalTriples clears the value of the "total_triples" field.
func (m *ExtractionJobMutation) ClearTotalTriples() {
	m.total_triples = nil
	m.addtotal_triples = nil
	m.clearedFields[extractionjob.FieldTotalTriples] = struct{}{}
}

// TotalTriplesCleared returns if the "total_triples" field was cleared in this mutation.
func (m *ExtractionJobMutation) TotalTriplesCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldTotalTriples]
	return ok
}

// ResetTotalTriples resets all changes to the "total_triples" field.
func (m *ExtractionJobMutation) ResetTotalTriples() {
	m.total_triples = nil
	m.addtotal_triples = nil
	delete(m.clearedFields, extractionjob.FieldTotalTriples)
}

// SetCreatedBy sets the "created_by" field.
func (m *ExtractionJobMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ExtractionJobMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ExtractionJobMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[extractionjob.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ExtractionJobMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ExtractionJobMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, extractionjob.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExtractionJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractionJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractionJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ExtractionJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[extractionjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ExtractionJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractionJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, extractionjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExtractionJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExtractionJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *ExtractionJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[extractionjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExtractionJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExtractionJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, extractionjob.FieldCompletedAt)
}

// AddJobDocumentIDs adds the "job_documents" edge to the JobDocument entity by ids.
func (m *ExtractionJobMutation) AddJobDocumentIDs(ids ...int) {
	if m.job_documents == nil {
		m.job_documents = make(map[int]struct{})
	}
	for i := range ids {
		m.job_documents[ids[i]] = struct{}{}
	}
}

// ClearJobDocuments clears the "job_documents" edge to the JobDocument entity.
func (m *ExtractionJobMutation) ClearJobDocuments() {
	m.clearedjob_documents = true
}

// JobDocumentsCleared reports if the "job_documents" edge to the JobDocument entity was cleared.
func (m *ExtractionJobMutation) JobDocumentsCleared() bool {
	return m.clearedjob_documents
}

// RemoveJobDocumentIDs removes the "job_documents" edge to the JobDocument entity by IDs.
func (m *ExtractionJobMutation) RemoveJobDocumentIDs(ids ...int) {
	if m.removedjob_documents == nil {
		m.removedjob_documents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.job_documents, ids[i])
		m.removedjob_documents[ids[i]] = struct{}{}
	}
}

// RemovedJobDocuments returns the removed IDs of the "job_documents" edge to the JobDocument entity.
func (m *ExtractionJobMutation) RemovedJobDocumentsIDs() (ids []int) {
	for id := range m.removedjob_documents {
		ids = append(ids, id)
	}
	return
}

// JobDocumentsIDs returns the "job_documents" edge IDs in the mutation.
func (m *ExtractionJobMutation) JobDocumentsIDs() (ids []int) {
	for id := range m.job_documents {
		ids = append(ids, id)
	}
	return
}

// ResetJobDocuments resets all changes to the "job_documents" edge.
func (m *ExtractionJobMutation) ResetJobDocuments() {
	m.job_documents = nil
	m.clearedjob_documents = false
	m.removedjob_documents = nil
}

// AddTripleIDs adds the "triples" edge to the Triple entity by ids.
func (m *ExtractionJobMutation) AddTripleIDs(ids ...int) {
	if m.triples == nil {
		m.triples = make(map[int]struct{})
	}
	for i := range ids {
		m.triples[ids[i]] = struct{}{}
	}
}

// ClearTriples clears the "triples" edge to the Triple entity.
func (m *ExtractionJobMutation) ClearTriples() {
	m.clearedtriples = true
}

// TriplesCleared reports if the "triples" edge to the Triple entity was cleared.
func (m *ExtractionJobMutation) TriplesCleared() bool {
	return m.clearedtriples
}

// RemoveTripleIDs removes the "triples" edge to the Triple entity by IDs.
func (m *ExtractionJobMutation) RemoveTripleIDs(ids ...int) {
	if m.removedtriples == nil {
		m.removedtriples = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.triples, ids[i])
		m.removedtriples[ids[i]] = struct{}{}
	}
}

// RemovedTriples returns the removed IDs of the "triples" edge to the Triple entity.
func (m *ExtractionJobMutation) RemovedTriplesIDs() (ids []int) {
	for id := range m.removedtriples {
		ids = append(ids, id)
	}
	return
}

// TriplesIDs returns the "triples" edge IDs in the mutation.
func (m *ExtractionJobMutation) TriplesIDs() (ids []int) {
	for id := range m.triples {
		ids = append(ids, id)
	}
	return
}

// ResetTriples resets all changes to the "triples" edge.
func (m *ExtractionJobMutation) ResetTriples() {
	m.triples = nil
	m.clearedtriples = false
	m.removedtriples = nil
}

// Where appends a list predicates to the ExtractionJobMutation builder.
func (m *ExtractionJobMutation) Where(ps ...predicate.ExtractionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionJob).
func (m *ExtractionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionJobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.project_id != nil {
		fields = append(fields, extractionjob.FieldProjectID)
	}
	if m.model_profile != nil {
		fields = append(fields, extractionjob.FieldModelProfile)
	}
	if m.mode != nil {
		fields = append(fields, extractionjob.FieldMode)
	}
	if m.status != nil {
		fields = append(fields, extractionjob.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, extractionjob.FieldProgress)
	}
	if m.total != nil {
		fields = append(fields, extractionjob.FieldTotal)
	}
	if m.error_message != nil {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.total_triples != nil {
		fields = append(fields, extractionjob.FieldTotalTriples)
	}
	if m.created_by != nil {
		fields = append(fields, extractionjob.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, extractionjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, extractionjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, extractionjob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldProjectID:
		return m.ProjectID()
	case extractionjob.FieldModelProfile:
		return m.ModelProfile()
	case extractionjob.FieldMode:
		return m.Mode()
	case extractionjob.FieldStatus:
		return m.Status()
	case extractionjob.FieldProgress:
		return m.Progress()
	case extractionjob.FieldTotal:
		return m.Total()
	case extractionjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionjob.FieldTotalTriples:
		return m.TotalTriples()
	case extractionjob.FieldCreatedBy:
		return m.CreatedBy()
	case extractionjob.FieldCreatedAt:
		return m.CreatedAt()
	case extractionjob.FieldStartedAt:
		return m.StartedAt()
	case extractionjob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionjob.FieldProjectID:
		return m.OldProjectID(ctx)
	case extractionjob.FieldModelProfile:
		return m.OldModelProfile(ctx)
	case extractionjob.FieldMode:
		return m.OldMode(ctx)
	case extractionjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractionjob.FieldProgress:
		return m.OldProgress(ctx)
	case extractionjob.FieldTotal:
		return m.OldTotal(ctx)
	case extractionjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionjob.FieldTotalTriples:
		return m.OldTotalTriples(ctx)
	case extractionjob.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case extractionjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractionjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractionjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case extractionjob.FieldModelProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelProfile(v)
		return nil
	case extractionjob.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case extractionjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionjob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case extractionjob.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case extractionjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionjob.FieldTotalTriples:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTriples(v)
		return nil
	case extractionjob.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case extractionjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractionjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractionjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionJobMutation) AddedFields() []string {
	var fields []string
	if m.addproject_id != nil {
		fields = append(fields, extractionjob.FieldProjectID)
	}
	if m.addprogress != nil {
		fields = append(fields, extractionjob.FieldProgress)
	}
	if m.addtotal != nil {
		fields = append(fields, extractionjob.FieldTotal)
	}
	if m.addtotal_triples != nil {
		fields = append(fields, extractionjob.FieldTotalTriples)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldProjectID:
		return m.AddedProjectID()
	case extractionjob.FieldProgress:
		return m.AddedProgress()
	case extractionjob.FieldTotal:
		return m.AddedTotal()
	case extractionjob.FieldTotalTriples:
		return m.AddedTotalTriples()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProjectID(v)
		return nil
	case extractionjob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case extractionjob.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case extractionjob.FieldTotalTriples:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTriples(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionjob.FieldProjectID) {
		fields = append(fields, extractionjob.FieldProjectID)
	}
	if m.FieldCleared(extractionjob.FieldErrorMessage) {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractionjob.FieldTotalTriples) {
		fields = append(fields, extractionjob.FieldTotalTriples)
	}
	if m.FieldCleared(extractionjob.FieldCreatedBy) {
		fields = append(fields, extractionjob.FieldCreatedBy)
	}
	if m.FieldCleared(extractionjob.FieldStartedAt) {
		fields = append(fields, extractionjob.FieldStartedAt)
	}
	if m.FieldCleared(extractionjob.FieldCompletedAt) {
		fields = append(fields, extractionjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ClearField(name string) error {
	switch name {
	case extractionjob.FieldProjectID:
		m.ClearProjectID()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractionjob.FieldTotalTriples:
		m.ClearTotalTriples()
		return nil
	case extractionjob.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case extractionjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case extractionjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ResetField(name string) error {
	switch name {
	case extractionjob.FieldProjectID:
		m.ResetProjectID()
		return nil
	case extractionjob.FieldModelProfile:
		m.ResetModelProfile()
		return nil
	case extractionjob.FieldMode:
		m.ResetMode()
		return nil
	case extractionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionjob.FieldProgress:
		m.ResetProgress()
		return nil
	case extractionjob.FieldTotal:
		m.ResetTotal()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionjob.FieldTotalTriples:
		m.ResetTotalTriples()
		return nil
	case extractionjob.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case extractionjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractionjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractionjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job_documents != nil {
		edges = append(edges, extractionjob.EdgeJobDocuments)
	}
	if m.triples != nil {
		edges = append(edges, extractionjob.EdgeTriples)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionjob.EdgeJobDocuments:
		ids := make([]ent.Value, 0, len(m.job_documents))
		for id := range m.job_documents {
			ids = append(ids, id)
		}
		return ids
	case extractionjob.EdgeTriples:
		ids := make([]ent.Value, 0, len(m.triples))
		for id := range m.triples {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjob_documents != nil {
		edges = append(edges, extractionjob.EdgeJobDocuments)
	}
	if m.removedtriples != nil {
		edges = append(edges, extractionjob.EdgeTriples)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractionjob.EdgeJobDocuments:
		ids := make([]ent.Value, 0, len(m.removedjob_documents))
		for id := range m.removedjob_documents {
			ids = append(ids, id)
		}
		return ids
	case extractionjob.EdgeTriples:
		ids := make([]ent.Value, 0, len(m.removedtriples))
		for id := range m.removedtriples {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob_documents {
		edges = append(edges, extractionjob.EdgeJobDocuments)
	}
	if m.clearedtriples {
		edges = append(edges, extractionjob.EdgeTriples)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionjob.EdgeJobDocuments:
		return m.clearedjob_documents
	case extractionjob.EdgeTriples:
		return m.clearedtriples
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionJobMutation) ResetEdge(name string) error {
	switch name {
	case extractionjob.EdgeJobDocuments:
		m.ResetJobDocuments()
		return nil
	case extractionjob.EdgeTriples:
		m.ResetTriples()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob edge %s", name)
}

// JobDocumentMutation represents an operation that mutates the JobDocument nodes in the graph.
type JobDocumentMutation struct {
	config
	op              Op
	typ             string
	id              *int
	position        *int
	addposition     *int
	clearedFields   map[string]struct{}
	job             *int
	clearedjob      bool
	document        *int
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*JobDocument, error)
	predicates      []predicate.JobDocument
}

var _ ent.Mutation = (*JobDocumentMutation)(nil)

// jobdocumentOption allows management of the mutation configuration using functional options.
type jobdocumentOption func(*JobDocumentMutation)

// newJobDocumentMutation creates new mutation for the JobDocument entity.
func newJobDocumentMutation(c config, op Op, opts ...jobdocumentOption) *JobDocumentMutation {
	m := &JobDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeJobDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobDocumentID sets the ID field of the mutation.
func withJobDocumentID(id int) jobdocumentOption {
	return func(m *JobDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *JobDocument
		)
		m.oldValue = func(ctx context.Context) (*JobDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobDocument sets the old JobDocument of the mutation.
func withJobDocument(node *JobDocument) jobdocumentOption {
	return func(m *JobDocumentMutation) {
		m.oldValue = func(context.Context) (*JobDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobDocumentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobDocumentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobDocumentMutation) SetJobID(i int) {
	m.job = &i
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobDocumentMutation) JobID() (r int, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobDocument entity.
// If the JobDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobDocumentMutation) OldJobID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobDocumentMutation) ResetJobID() {
	m.job = nil
}

// SetDocumentID sets the "document_id" field.
func (m *JobDocumentMutation) SetDocumentID(i int) {
	m.document = &i
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *JobDocumentMutation) DocumentID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the JobDocument entity.
// If the JobDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobDocumentMutation) OldDocumentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *JobDocumentMutation) ResetDocumentID() {
	m.document = nil
}

// SetPosition sets the "position" field.
func (m *JobDocumentMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *JobDocumentMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the JobDocument entity.
// If the JobDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobDocumentMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *JobDocumentMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *JobDocumentMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *JobDocumentMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (m *JobDocumentMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobdocument.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ExtractionJob entity was cleared.
func (m *JobDocumentMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobDocumentMutation) JobIDs() (ids []int) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobDocumentMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *JobDocumentMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[jobdocument.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *JobDocumentMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *JobDocumentMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *JobDocumentMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the JobDocumentMutation builder.
func (m *JobDocumentMutation) Where(ps ...predicate.JobDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobDocument).
func (m *JobDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobDocumentMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.job != nil {
		fields = append(fields, jobdocument.FieldJobID)
	}
	if m.document != nil {
		fields = append(fields, jobdocument.FieldDocumentID)
	}
	if m.position != nil {
		fields = append(fields, jobdocument.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobdocument.FieldJobID:
		return m.JobID()
	case jobdocument.FieldDocumentID:
		return m.DocumentID()
	case jobdocument.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobdocument.FieldJobID:
		return m.OldJobID(ctx)
	case jobdocument.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case jobdocument.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown JobDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobdocument.FieldJobID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobdocument.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case jobdocument.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown JobDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, jobdocument.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobdocument.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobdocument.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown JobDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobDocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobDocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown JobDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobDocumentMutation) ResetField(name string) error {
	switch name {
	case jobdocument.FieldJobID:
		m.ResetJobID()
		return nil
	case jobdocument.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case jobdocument.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown JobDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, jobdocument.EdgeJob)
	}
	if m.document != nil {
		edges = append(edges, jobdocument.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobdocument.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case jobdocument.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, jobdocument.EdgeJob)
	}
	if m.cleareddocument {
		edges = append(edges, jobdocument.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case jobdocument.EdgeJob:
		return m.clearedjob
	case jobdocument.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobDocumentMutation) ClearEdge(name string) error {
	switch name {
	case jobdocument.EdgeJob:
		m.ClearJob()
		return nil
	case jobdocument.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown JobDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobDocumentMutation) ResetEdge(name string) error {
	switch name {
	case jobdocument.EdgeJob:
		m.ResetJob()
		return nil
	case jobdocument.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown JobDocument edge %s", name)
}

// SentenceMutation represents an operation that mutates the Sentence nodes in the graph.
type SentenceMutation struct {
	config
	op              Op
	typ             string
	id              *int
	text            *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	document        *int
	cleareddocument bool
	triples         map[int]struct{}
	removedtriples  map[int]struct{}
	clearedtriples  bool
	done            bool
	oldValue        func(context.Context) (*Sentence, error)
	predicates      []predicate.Sentence
}

var _ ent.Mutation = (*SentenceMutation)(nil)

// sentenceOption allows management of the mutation configuration using functional options.
type sentenceOption func(*SentenceMutation)

// newSentenceMutation creates new mutation for the Sentence entity.
func newSentenceMutation(c config, op Op, opts ...sentenceOption) *SentenceMutation {
	m := &SentenceMutation{
		config:        c,
		op:            op,
		typ:           TypeSentence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSentenceID sets the ID field of the mutation.
func withSentenceID(id int) sentenceOption {
	return func(m *SentenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Sentence
		)
		m.oldValue = func(ctx context.Context) (*Sentence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Sentence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSentence sets the old Sentence of the mutation.
func withSentence(node *Sentence) sentenceOption {
	return func(m *SentenceMutation) {
		m.oldValue = func(context.Context) (*Sentence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SentenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SentenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SentenceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SentenceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Sentence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *SentenceMutation) SetDocumentID(i int) {
	m.document = &i
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *SentenceMutation) DocumentID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldDocumentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ClearDocumentID clears the value of the "document_id" field.
func (m *SentenceMutation) ClearDocumentID() {
	m.document = nil
	m.clearedFields[sentence.FieldDocumentID] = struct{}{}
}

// DocumentIDCleared returns if the "document_id" field was cleared in this mutation.
func (m *SentenceMutation) DocumentIDCleared() bool {
	_, ok := m.clearedFields[sentence.FieldDocumentID]
	return ok
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *SentenceMutation) ResetDocumentID() {
	m.document = nil
	delete(m.clearedFields, sentence.FieldDocumentID)
}

// SetText sets the "text" field.
func (m *SentenceMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *SentenceMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *SentenceMutation) ResetText() {
	m.text = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SentenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SentenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SentenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *SentenceMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[sentence.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *SentenceMutation) DocumentCleared() bool {
	return m.DocumentIDCleared() || m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *SentenceMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *SentenceMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddTripleIDs adds the "triples" edge to the Triple entity by ids.
func (m *SentenceMutation) AddTripleIDs(ids ...int) {
	if m.triples == nil {
		m.triples = make(map[int]struct{})
	}
	for i := range ids {
		m.triples[ids[i]] = struct{}{}
	}
}

// ClearTriples clears the "triples" edge to the Triple entity.
func (m *SentenceMutation) ClearTriples() {
	m.clearedtriples = true
}

// TriplesCleared reports if the "triples" edge to the Triple entity was cleared.
func (m *SentenceMutation) TriplesCleared() bool {
	return m.clearedtriples
}

// RemoveTripleIDs removes the "triples" edge to the Triple entity by IDs.
func (m *SentenceMutation) RemoveTripleIDs(ids ...int) {
	if m.removedtriples == nil {
		m.removedtriples = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.triples, ids[i])
		m.removedtriples[ids[i]] = struct{}{}
	}
}

// RemovedTriples returns the removed IDs of the "triples" edge to the Triple entity.
func (m *SentenceMutation) RemovedTriplesIDs() (ids []int) {
	for id := range m.removedtriples {
		ids = append(ids, id)
	}
	return
}

// TriplesIDs returns the "triples" edge IDs in the mutation.
func (m *SentenceMutation) TriplesIDs() (ids []int) {
	for id := range m.triples {
		ids = append(ids, id)
	}
	return
}

// ResetTriples resets all changes to the "triples" edge.
func (m *SentenceMutation) ResetTriples() {
	m.triples = nil
	m.clearedtriples = false
	m.removedtriples = nil
}

// Where appends a list predicates to the SentenceMutation builder.
func (m *SentenceMutation) Where(ps ...predicate.Sentence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SentenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SentenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Sentence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SentenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SentenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Sentence).
func (m *SentenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SentenceMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.document != nil {
		fields = append(fields, sentence.FieldDocumentID)
	}
	if m.text != nil {
		fields = append(fields, sentence.FieldText)
	}
	if m.created_at != nil {
		fields = append(fields, sentence.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SentenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sentence.FieldDocumentID:
		return m.DocumentID()
	case sentence.FieldText:
		return m.Text()
	case sentence.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SentenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sentence.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case sentence.FieldText:
		return m.OldText(ctx)
	case sentence.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Sentence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SentenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sentence.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case sentence.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case sentence.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Sentence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SentenceMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SentenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SentenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Sentence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SentenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sentence.FieldDocumentID) {
		fields = append(fields, sentence.FieldDocumentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SentenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SentenceMutation) ClearField(name string) error {
	switch name {
	case sentence.FieldDocumentID:
		m.ClearDocumentID()
		return nil
	}
	return fmt.Errorf("unknown Sentence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SentenceMutation) ResetField(name string) error {
	switch name {
	case sentence.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case sentence.FieldText:
		m.ResetText()
		return nil
	case sentence.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Sentence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SentenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, sentence.EdgeDocument)
	}
	if m.triples != nil {
		edges = append(edges, sentence.EdgeTriples)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SentenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sentence.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case sentence.EdgeTriples:
		ids := make([]ent.Value, 0, len(m.triples))
		for id := range m.triples {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SentenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtriples != nil {
		edges = append(edges, sentence.EdgeTriples)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SentenceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sentence.EdgeTriples:
		ids := make([]ent.Value, 0, len(m.removedtriples))
		for id := range m.removedtriples {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SentenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, sentence.EdgeDocument)
	}
	if m.clearedtriples {
		edges = append(edges, sentence.EdgeTriples)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SentenceMutation) EdgeCleared(name string) bool {
	switch name {
	case sentence.EdgeDocument:
		return m.cleareddocument
	case sentence.EdgeTriples:
		return m.clearedtriples
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SentenceMutation) ClearEdge(name string) error {
	switch name {
	case sentence.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Sentence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SentenceMutation) ResetEdge(name string) error {
	switch name {
	case sentence.EdgeDocument:
		m.ResetDocument()
		return nil
	case sentence.EdgeTriples:
		m.ResetTriples()
		return nil
	}
	return fmt.Errorf("unknown Sentence edge %s", name)
}

// TrainingRunMutation represents an operation that mutates the TrainingRun nodes in the graph.
type TrainingRunMutation struct {
	config
	op            Op
	typ           string
	id            *int
	model_profile *string
	status        *string
	artifact_path *string
	metrics       *json.RawMessage
	appendmetrics json.RawMessage
	error_message *string
	created_at    *time.Time
	completed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TrainingRun, error)
	predicates    []predicate.TrainingRun
}

var _ ent.Mutation = (*TrainingRunMutation)(nil)

// trainingrunOption allows management of the mutation configuration using functional options.
type trainingrunOption func(*TrainingRunMutation)

// newTrainingRunMutation creates new mutation for the TrainingRun entity.
func newTrainingRunMutation(c config, op Op, opts ...trainingrunOption) *TrainingRunMutation {
	m := &TrainingRunMutation{
		config:        c,
		op:            op,
		typ:           TypeTrainingRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrainingRunID sets the ID field of the mutation.
func withTrainingRunID(id int) trainingrunOption {
	return func(m *TrainingRunMutation) {
		var (
			err   error
			once  sync.Once
			value *TrainingRun
		)
		m.oldValue = func(ctx context.Context) (*TrainingRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrainingRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrainingRun sets the old TrainingRun of the mutation.
func withTrainingRun(node *TrainingRun) trainingrunOption {
	return func(m *TrainingRunMutation) {
		m.oldValue = func(context.Context) (*TrainingRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrainingRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrainingRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrainingRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrainingRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrainingRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetModelProfile sets the "model_profile" field.
func (m *TrainingRunMutation) SetModelProfile(s string) {
	m.model_profile = &s
}

// ModelProfile returns the value of the "model_profile" field in the mutation.
func (m *TrainingRunMutation) ModelProfile() (r string, exists bool) {
	v := m.model_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldModelProfile returns the old "model_profile" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldModelProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelProfile: %w", err)
	}
	return oldValue.ModelProfile, nil
}

// ResetModelProfile resets all changes to the "model_profile" field.
func (m *TrainingRunMutation) ResetModelProfile() {
	m.model_profile = nil
}

// SetStatus sets the "status" field.
func (m *TrainingRunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TrainingRunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *TrainingRunMutation) ResetStatus() {
	m.status = nil
}

// SetArtifactPath sets the "artifact_path" field.
func (m *TrainingRunMutation) SetArtifactPath(s string) {
	m.artifact_path = &s
}

// ArtifactPath returns the value of the "artifact_path" field in the mutation.
func (m *TrainingRunMutation) ArtifactPath() (r string, exists bool) {
	v := m.artifact_path
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactPath returns the old "artifact_path" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldArtifactPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactPath: %w", err)
	}
	return oldValue.ArtifactPath, nil
}

// ClearArtifactPath clears the value of the "artifact_path" field.
func (m *TrainingRunMutation) ClearArtifactPath() {
	m.artifact_path = nil
	m.clearedFields[trainingrun.FieldArtifactPath] = struct{}{}
}

// ArtifactPathCleared returns if the "artifact_path" field was cleared in this mutation.
func (m *TrainingRunMutation) ArtifactPathCleared() bool {
	_, ok := m.clearedFields[trainingrun.FieldArtifactPath]
	return ok
}

// ResetArtifactPath resets all changes to the "artifact_path" field.
func (m *TrainingRunMutation) ResetArtifactPath() {
	m.artifact_path = nil
	delete(m.clearedFields, trainingrun.FieldArtifactPath)
}

// SetMetrics sets the "metrics" field.
func (m *TrainingRunMutation) SetMetrics(jm json.RawMessage) {
	m.metrics = &jm
	m.appendmetrics = nil
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *TrainingRunMutation) Metrics() (r json.RawMessage, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldMetrics(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// AppendMetrics adds jm to the "metrics" field.
func (m *TrainingRunMutation) AppendMetrics(jm json.RawMessage) {
	m.appendmetrics = append(m.appendmetrics, jm...)
}

// AppendedMetrics returns the list of values that were appended to the "metrics" field in this mutation.
func (m *TrainingRunMutation) AppendedMetrics() (json.RawMessage, bool) {
	if len(m.appendmetrics) == 0 {
		return nil, false
	}
	return m.appendmetrics, true
}

// ClearMetrics clears the value of the "metrics" field.
func (m *TrainingRunMutation) ClearMetrics() {
	m.metrics = nil
	m.appendmetrics = nil
	m.clearedFields[trainingrun.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *TrainingRunMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[trainingrun.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *TrainingRunMutation) ResetMetrics() {
	m.metrics = nil
	m.appendmetrics = nil
	delete(m.clearedFields, trainingrun.FieldMetrics)
}

// SetErrorMessage sets the "error_message" field.
func (m *TrainingRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TrainingRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TrainingRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[trainingrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TrainingRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[trainingrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TrainingRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, trainingrun.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *TrainingRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrainingRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TrainingRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TrainingRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TrainingRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *TrainingRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[trainingrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TrainingRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[trainingrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TrainingRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, trainingrun.FieldCompletedAt)
}

// Where appends a list predicates to the TrainingRunMutation builder.
func (m *TrainingRunMutation) Where(ps ...predicate.TrainingRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrainingRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrainingRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrainingRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrainingRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrainingRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrainingRun).
func (m *TrainingRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrainingRunMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.model_profile != nil {
		fields = append(fields, trainingrun.FieldModelProfile)
	}
	if m.status != nil {
		fields = append(fields, trainingrun.FieldStatus)
	}
	if m.artifact_path != nil {
		fields = append(fields, trainingrun.FieldArtifactPath)
	}
	if m.metrics != nil {
		fields = append(fields, trainingrun.FieldMetrics)
	}
	if m.error_message != nil {
		fields = append(fields, trainingrun.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, trainingrun.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, trainingrun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrainingRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trainingrun.FieldModelProfile:
		return m.ModelProfile()
	case trainingrun.FieldStatus:
		return m.Status()
	case trainingrun.FieldArtifactPath:
		return m.ArtifactPath()
	case trainingrun.FieldMetrics:
		return m.Metrics()
	case trainingrun.FieldErrorMessage:
		return m.ErrorMessage()
	case trainingrun.FieldCreatedAt:
		return m.CreatedAt()
	case trainingrun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrainingRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trainingrun.FieldModelProfile:
		return m.OldModelProfile(ctx)
	case trainingrun.FieldStatus:
		return m.OldStatus(ctx)
	case trainingrun.FieldArtifactPath:
		return m.OldArtifactPath(ctx)
	case trainingrun.FieldMetrics:
		return m.OldMetrics(ctx)
	case trainingrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case trainingrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case trainingrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrainingRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trainingrun.FieldModelProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelProfile(v)
		return nil
	case trainingrun.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case trainingrun.FieldArtifactPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactPath(v)
		return nil
	case trainingrun.FieldMetrics:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case trainingrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case trainingrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case trainingrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrainingRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrainingRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrainingRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TrainingRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrainingRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trainingrun.FieldArtifactPath) {
		fields = append(fields, trainingrun.FieldArtifactPath)
	}
	if m.FieldCleared(trainingrun.FieldMetrics) {
		fields = append(fields, trainingrun.FieldMetrics)
	}
	if m.FieldCleared(trainingrun.FieldErrorMessage) {
		fields = append(fields, trainingrun.FieldErrorMessage)
	}
	if m.FieldCleared(trainingrun.FieldCompletedAt) {
		fields = append(fields, trainingrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrainingRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrainingRunMutation) ClearField(name string) error {
	switch name {
	case trainingrun.FieldArtifactPath:
		m.ClearArtifactPath()
		return nil
	case trainingrun.FieldMetrics:
		m.ClearMetrics()
		return nil
	case trainingrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case trainingrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown TrainingRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrainingRunMutation) ResetField(name string) error {
	switch name {
	case trainingrun.FieldModelProfile:
		m.ResetModelProfile()
		return nil
	case trainingrun.FieldStatus:
		m.ResetStatus()
		return nil
	case trainingrun.FieldArtifactPath:
		m.ResetArtifactPath()
		return nil
	case trainingrun.FieldMetrics:
		m.ResetMetrics()
		return nil
	case trainingrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case trainingrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case trainingrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown TrainingRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrainingRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrainingRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrainingRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrainingRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrainingRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrainingRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrainingRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TrainingRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrainingRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TrainingRun edge %s", name)
}

// TripleMutation represents an operation that mutates the Triple nodes in the graph.
type TripleMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	source_entity_name *string
	source_entity_attr *string
	relation_type      *string
	sink_entity_name   *string
	sink_entity_attr   *string
	confidence         *float64
	addconfidence      *float64
	model_profile      *string
	status             *string
	trait_name         *string
	trait_value        *string
	unit               *string
	project_id         *int
	addproject_id      *int
	doi_hash           *string
	contributor_email  *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	document           *int
	cleareddocument    bool
	job                *int
	clearedjob         bool
	sentence           *int
	clearedsentence    bool
	done               bool
	oldValue           func(context.Context) (*Triple, error)
	predicates         []predicate.Triple
}

var _ ent.Mutation = (*TripleMutation)(nil)

// tripleOption allows management of the mutation configuration using functional options.
type tripleOption func(*TripleMutation)

// newTripleMutation creates new mutation for the Triple entity.
func newTripleMutation(c config, op Op, opts ...tripleOption) *TripleMutation {
	m := &TripleMutation{
		config:        c,
		op:            op,
		typ:           TypeTriple,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTripleID sets the ID field of the mutation.
func withTripleID(id int) tripleOption {
	return func(m *TripleMutation) {
		var (
			err   error
			once  sync.Once
			value *Triple
		)
		m.oldValue = func(ctx context.Context) (*Triple, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Triple.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTriple sets the old Triple of the mutation.
func withTriple(node *Triple) tripleOption {
	return func(m *TripleMutation) {
		m.oldValue = func(context.Context) (*Triple, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TripleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TripleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TripleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TripleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Triple.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceEntityName sets the "source_entity_name" field.
func (m *TripleMutation) SetSourceEntityName(s string) {
	m.source_entity_name = &s
}

// SourceEntityName returns the value of the "source_entity_name" field in the mutation.
func (m *TripleMutation) SourceEntityName() (r string, exists bool) {
	v := m.source_entity_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceEntityName returns the old "source_entity_name" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldSourceEntityName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceEntityName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceEntityName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceEntityName: %w", err)
	}
	return oldValue.SourceEntityName, nil
}

// ResetSourceEntityName resets all changes to the "source_entity_name" field.
func (m *TripleMutation) ResetSourceEntityName() {
	m.source_entity_name = nil
}

// SetSourceEntityAttr sets the "source_entity_attr" field.
func (m *TripleMutation) SetSourceEntityAttr(s string) {
	m.source_entity_attr = &s
}

// SourceEntityAttr returns the value of the "source_entity_attr" field in the mutation.
func (m *TripleMutation) SourceEntityAttr() (r string, exists bool) {
	v := m.source_entity_attr
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceEntityAttr returns the old "source_entity_attr" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldSourceEntityAttr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceEntityAttr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceEntityAttr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceEntityAttr: %w", err)
	}
	return oldValue.SourceEntityAttr, nil
}

// ResetSourceEntityAttr resets all changes to the "source_entity_attr" field.
func (m *TripleMutation) ResetSourceEntityAttr() {
	m.source_entity_attr = nil
}

// SetRelationType sets the "relation_type" field.
func (m *TripleMutation) SetRelationType(s string) {
	m.relation_type = &s
}

// RelationType returns the value of the "relation_type" field in the mutation.
func (m *TripleMutation) RelationType() (r string, exists bool) {
	v := m.relation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationType returns the old "relation_type" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldRelationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationType: %w", err)
	}
	return oldValue.RelationType, nil
}

// ResetRelationType resets all changes to the "relation_type" field.
func (m *TripleMutation) ResetRelationType() {
	m.relation_type = nil
}

// SetSinkEntityName sets the "sink_entity_name" field.
func (m *TripleMutation) SetSinkEntityName(s string) {
	m.sink_entity_name = &s
}

// SinkEntityName returns the value of the "sink_entity_name" field in the mutation.
func (m *TripleMutation) SinkEntityName() (r string, exists bool) {
	v := m.sink_entity_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSinkEntityName returns the old "sink_entity_name" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldSinkEntityName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSinkEntityName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSinkEntityName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSinkEntityName: %w", err)
	}
	return oldValue.SinkEntityName, nil
}

// ResetSinkEntityName resets all changes to the "sink_entity_name" field.
func (m *TripleMutation) ResetSinkEntityName() {
	m.sink_entity_name = nil
}

// SetSinkEntityAttr sets the "sink_entity_attr" field.
func (m *TripleMutation) SetSinkEntityAttr(s string) {
	m.sink_entity_attr = &s
}

// SinkEntityAttr returns the value of the "sink_entity_attr" field in the mutation.
func (m *TripleMutation) SinkEntityAttr() (r string, exists bool) {
	v := m.sink_entity_attr
	if v == nil {
		return
	}
	return *v, true
}

// OldSinkEntityAttr returns the old "sink_entity_attr" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldSinkEntityAttr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSinkEntityAttr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSinkEntityAttr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSinkEntityAttr: %w", err)
	}
	return oldValue.SinkEntityAttr, nil
}

// ResetSinkEntityAttr resets all changes to the "sink_entity_attr" field.
func (m *TripleMutation) ResetSinkEntityAttr() {
	m.sink_entity_attr = nil
}

// SetConfidence sets the "confidence" field.
func (m *TripleMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *TripleMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *TripleMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *TripleMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *TripleMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetModelProfile sets the "model_profile" field.
func (m *TripleMutation) SetModelProfile(s string) {
	m.model_profile = &s
}

// ModelProfile returns the value of the "model_profile" field in the mutation.
func (m *TripleMutation) ModelProfile() (r string, exists bool) {
	v := m.model_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldModelProfile returns the old "model_profile" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldModelProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelProfile: %w", err)
	}
	return oldValue.ModelProfile, nil
}

// ResetModelProfile resets all changes to the "model_profile" field.
func (m *TripleMutation) ResetModelProfile() {
	m.model_profile = nil
}

// SetStatus sets the "status" field.
func (m *TripleMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TripleMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *TripleMutation) ResetStatus() {
	m.status = nil
}

// SetTraitName sets the "trait_name" field.
func (m *TripleMutation) SetTraitName(s string) {
	m.trait_name = &s
}

// TraitName returns the value of the "trait_name" field in the mutation.
func (m *TripleMutation) TraitName() (r string, exists bool) {
	v := m.trait_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTraitName returns the old "trait_name" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldTraitName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraitName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraitName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraitName: %w", err)
	}
	return oldValue.TraitName, nil
}

// ClearTraitName clears the value of the "trait_name" field.
func (m *TripleMutation) ClearTraitName() {
	m.trait_name = nil
	m.clearedFields[triple.FieldTraitName] = struct{}{}
}

// TraitNameCleared returns if the "trait_name" field was cleared in this mutation.
func (m *TripleMutation) TraitNameCleared() bool {
	_, ok := m.clearedFields[triple.FieldTraitName]
	return ok
}

// ResetTraitName resets all changes to the "trait_name" field.
func (m *TripleMutation) ResetTraitName() {
	m.trait_name = nil
	delete(m.clearedFields, triple.FieldTraitName)
}

// SetTraitValue sets the "trait_value" field.
func (m *TripleMutation) SetTraitValue(s string) {
	m.trait_value = &s
}

// TraitValue returns the value of the "trait_value" field in the mutation.
func (m *TripleMutation) TraitValue() (r string, exists bool) {
	v := m.trait_value
	if v == nil {
		return
	}
	return *v, true
}

// OldTraitValue returns the old "trait_value" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldTraitValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraitValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraitValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraitValue: %w", err)
	}
	return oldValue.TraitValue, nil
}

// ClearTraitValue clears the value of the "trait_value" field.
func (m *TripleMutation) ClearTraitValue() {
	m.trait_value = nil
	m.clearedFields[triple.FieldTraitValue] = struct{}{}
}

// TraitValueCleared returns if the "trait_value" field was cleared in this mutation.
func (m *TripleMutation) TraitValueCleared() bool {
	_, ok := m.clearedFields[triple.FieldTraitValue]
	return ok
}

// ResetTraitValue resets all changes to the "trait_value" field.
func (m *TripleMutation) ResetTraitValue() {
	m.trait_value = nil
	delete(m.clearedFields, triple.FieldTraitValue)
}

// SetUnit sets the "unit" field.
func (m *TripleMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *TripleMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *TripleMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[triple.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *TripleMutation) UnitCleared() bool {
	_, ok := m.clearedFields[triple.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *TripleMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, triple.FieldUnit)
}

// SetProjectID sets the "project_id" field.
func (m *TripleMutation) SetProjectID(i int) {
	m.project_id = &i
	m.addproject_id = nil
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TripleMutation) ProjectID() (r int, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldProjectID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// AddProjectID adds i to the "project_id" field.
func (m *TripleMutation) AddProjectID(i int) {
	if m.addproject_id != nil {
		*m.addproject_id += i
	} else {
		m.addproject_id = &i
	}
}

// AddedProjectID returns the value that was added to the "project_id" field in this mutation.
func (m *TripleMutation) AddedProjectID() (r int, exists bool) {
	v := m.addproject_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearProjectID clears the value of the "project_id" field.
func (m *TripleMutation) ClearProjectID() {
	m.project_id = nil
	m.addproject_id = nil
	m.clearedFields[triple.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *TripleMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[triple.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TripleMutation) ResetProjectID() {
	m.project_id = nil
	m.addproject_id = nil
	delete(m.clearedFields, triple.FieldProjectID)
}

// SetDocumentID sets the "document_id" field.
func (m *TripleMutation) SetDocumentID(i int) {
	m.document = &i
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *TripleMutation) DocumentID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldDocumentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ClearDocumentID clears the value of the "document_id" field.
func (m *TripleMutation) ClearDocumentID() {
	m.document = nil
	m.clearedFields[triple.FieldDocumentID] = struct{}{}
}

// DocumentIDCleared returns if the "document_id" field was cleared in this mutation.
func (m *TripleMutation) DocumentIDCleared() bool {
	_, ok := m.clearedFields[triple.FieldDocumentID]
	return ok
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *TripleMutation) ResetDocumentID() {
	m.document = nil
	delete(m.clearedFields, triple.FieldDocumentID)
}

// SetJobID sets the "job_id" field.
func (m *TripleMutation) SetJobID(i int) {
	m.job = &i
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *TripleMutation) JobID() (r int, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldJobID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *TripleMutation) ClearJobID() {
	m.job = nil
	m.clearedFields[triple.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *TripleMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[triple.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *TripleMutation) ResetJobID() {
	m.job = nil
	delete(m.clearedFields, triple.FieldJobID)
}

// SetSentenceID sets the "sentence_id" field.
func (m *TripleMutation) SetSentenceID(i int) {
	m.sentence = &i
}

// SentenceID returns the value of the "sentence_id" field in the mutation.
func (m *TripleMutation) SentenceID() (r int, exists bool) {
	v := m.sentence
	if v == nil {
		return
	}
	return *v, true
}

// OldSentenceID returns the old "sentence_id" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldSentenceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentenceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentenceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentenceID: %w", err)
	}
	return oldValue.SentenceID, nil
}

// ResetSentenceID resets all changes to the "sentence_id" field.
func (m *TripleMutation) ResetSentenceID() {
	m.sentence = nil
}

// SetDoiHash sets the "doi_hash" field.
func (m *TripleMutation) SetDoiHash(s string) {
	m.doi_hash = &s
}

// DoiHash returns the value of the "doi_hash" field in the mutation.
func (m *TripleMutation) DoiHash() (r string, exists bool) {
	v := m.doi_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldDoiHash returns the old "doi_hash" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldDoiHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoiHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoiHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoiHash: %w", err)
	}
	return oldValue.DoiHash, nil
}

// ClearDoiHash clears the value of the "doi_hash" field.
func (m *TripleMutation) ClearDoiHash() {
	m.doi_hash = nil
	m.clearedFields[triple.FieldDoiHash] = struct{}{}
}

// DoiHashCleared returns if the "doi_hash" field was cleared in this mutation.
func (m *TripleMutation) DoiHashCleared() bool {
	_, ok := m.clearedFields[triple.FieldDoiHash]
	return ok
}

// ResetDoiHash resets all changes to the "doi_hash" field.
func (m *TripleMutation) ResetDoiHash() {
	m.doi_hash = nil
	delete(m.clearedFields, triple.FieldDoiHash)
}

// SetContributorEmail sets the "contributor_email" field.
func (m *TripleMutation) SetContributorEmail(s string) {
	m.contributor_email = &s
}

// ContributorEmail returns the value of the "contributor_email" field in the mutation.
func (m *TripleMutation) ContributorEmail() (r string, exists bool) {
	v := m.contributor_email
	if v == nil {
		return
	}
	return *v, true
}

// OldContributorEmail returns the old "contributor_email" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldContributorEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributorEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributorEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributorEmail: %w", err)
	}
	return oldValue.ContributorEmail, nil
}

// ClearContributorEmail clears the value of the "contributor_email" field.
func (m *TripleMutation) ClearContributorEmail() {
	m.contributor_email = nil
	m.clearedFields[triple.FieldContributorEmail] = struct{}{}
}

// ContributorEmailCleared returns if the "contributor_email" field was cleared in this mutation.
func (m *TripleMutation) ContributorEmailCleared() bool {
	_, ok := m.clearedFields[triple.FieldContributorEmail]
	return ok
}

// ResetContributorEmail resets all changes to the "contributor_email" field.
func (m *TripleMutation) ResetContributorEmail() {
	m.contributor_email = nil
	delete(m.clearedFields, triple.FieldContributorEmail)
}

// SetCreatedAt sets the "created_at" field.
func (m *TripleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TripleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Triple entity.
// If the Triple object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TripleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *TripleMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[triple.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *TripleMutation) DocumentCleared() bool {
	return m.DocumentIDCleared() || m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *TripleMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *TripleMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (m *TripleMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[triple.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ExtractionJob entity was cleared.
func (m *TripleMutation) JobCleared() bool {
	return m.JobIDCleared() || m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *TripleMutation) JobIDs() (ids []int) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *TripleMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// ClearSentence clears the "sentence" edge to the Sentence entity.
func (m *TripleMutation) ClearSentence() {
	m.clearedsentence = true
	m.clearedFields[triple.FieldSentenceID] = struct{}{}
}

// SentenceCleared reports if the "sentence" edge to the Sentence entity was cleared.
func (m *TripleMutation) SentenceCleared() bool {
	return m.clearedsentence
}

// SentenceIDs returns the "sentence" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SentenceID instead. It exists only for internal usage by the builders.
func (m *TripleMutation) SentenceIDs() (ids []int) {
	if id := m.sentence; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSentence resets all changes to the "sentence" edge.
func (m *TripleMutation) ResetSentence() {
	m.sentence = nil
	m.clearedsentence = false
}

// Where appends a list predicates to the TripleMutation builder.
func (m *TripleMutation) Where(ps ...predicate.Triple) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TripleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TripleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Triple, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TripleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TripleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Triple).
func (m *TripleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TripleMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.source_entity_name != nil {
		fields = append(fields, triple.FieldSourceEntityName)
	}
	if m.source_entity_attr != nil {
		fields = append(fields, triple.FieldSourceEntityAttr)
	}
	if m.relation_type != nil {
		fields = append(fields, triple.FieldRelationType)
	}
	if m.sink_entity_name != nil {
		fields = append(fields, triple.FieldSinkEntityName)
	}
	if m.sink_entity_attr != nil {
		fields = append(fields, triple.FieldSinkEntityAttr)
	}
	if m.confidence != nil {
		fields = append(fields, triple.FieldConfidence)
	}
	if m.model_profile != nil {
		fields = append(fields, triple.FieldModelProfile)
	}
	if m.status != nil {
		fields = append(fields, triple.FieldStatus)
	}
	if m.trait_name != nil {
		fields = append(fields, triple.FieldTraitName)
	}
	if m.trait_value != nil {
		fields = append(fields, triple.FieldTraitValue)
	}
	if m.unit != nil {
		fields = append(fields, triple.FieldUnit)
	}
	if m.project_id != nil {
		fields = append(fields, triple.FieldProjectID)
	}
	if m.document != nil {
		fields = append(fields, triple.FieldDocumentID)
	}
	if m.job != nil {
		fields = append(fields, triple.FieldJobID)
	}
	if m.sentence != nil {
		fields = append(fields, triple.FieldSentenceID)
	}
	if m.doi_hash != nil {
		fields = append(fields, triple.FieldDoiHash)
	}
	if m.contributor_email != nil {
		fields = append(fields, triple.FieldContributorEmail)
	}
	if m.created_at != nil {
		fields = append(fields, triple.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TripleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case triple.FieldSourceEntityName:
		return m.SourceEntityName()
	case triple.FieldSourceEntityAttr:
		return m.SourceEntityAttr()
	case triple.FieldRelationType:
		return m.RelationType()
	case triple.FieldSinkEntityName:
		return m.SinkEntityName()
	case triple.FieldSinkEntityAttr:
		return m.SinkEntityAttr()
	case triple.FieldConfidence:
		return m.Confidence()
	case triple.FieldModelProfile:
		return m.ModelProfile()
	case triple.FieldStatus:
		return m.Status()
	case triple.FieldTraitName:
		return m.TraitName()
	case triple.FieldTraitValue:
		return m.TraitValue()
	case triple.FieldUnit:
		return m.Unit()
	case triple.FieldProjectID:
		return m.ProjectID()
	case triple.FieldDocumentID:
		return m.DocumentID()
	case triple.FieldJobID:
		return m.JobID()
	case triple.FieldSentenceID:
		return m.SentenceID()
	case triple.FieldDoiHash:
		return m.DoiHash()
	case triple.FieldContributorEmail:
		return m.ContributorEmail()
	case triple.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TripleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case triple.FieldSourceEntityName:
		return m.OldSourceEntityName(ctx)
	case triple.FieldSourceEntityAttr:
		return m.OldSourceEntityAttr(ctx)
	case triple.FieldRelationType:
		return m.OldRelationType(ctx)
	case triple.FieldSinkEntityName:
		return m.OldSinkEntityName(ctx)
	case triple.FieldSinkEntityAttr:
		return m.OldSinkEntityAttr(ctx)
	case triple.FieldConfidence:
		return m.OldConfidence(ctx)
	case triple.FieldModelProfile:
		return m.OldModelProfile(ctx)
	case triple.FieldStatus:
		return m.OldStatus(ctx)
	case triple.FieldTraitName:
		return m.OldTraitName(ctx)
	case triple.FieldTraitValue:
		return m.OldTraitValue(ctx)
	case triple.FieldUnit:
		return m.OldUnit(ctx)
	case triple.FieldProjectID:
		return m.OldProjectID(ctx)
	case triple.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case triple.FieldJobID:
		return m.OldJobID(ctx)
	case triple.FieldSentenceID:
		return m.OldSentenceID(ctx)
	case triple.FieldDoiHash:
		return m.OldDoiHash(ctx)
	case triple.FieldContributorEmail:
		return m.OldContributorEmail(ctx)
	case triple.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Triple field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TripleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case triple.FieldSourceEntityName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceEntityName(v)
		return nil
	case triple.FieldSourceEntityAttr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceEntityAttr(v)
		return nil
	case triple.FieldRelationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationType(v)
		return nil
	case triple.FieldSinkEntityName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSinkEntityName(v)
		return nil
	case triple.FieldSinkEntityAttr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSinkEntityAttr(v)
		return nil
	case triple.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case triple.FieldModelProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelProfile(v)
		return nil
	case triple.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case triple.FieldTraitName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraitName(v)
		return nil
	case triple.FieldTraitValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraitValue(v)
		return nil
	case triple.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case triple.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case triple.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case triple.FieldJobID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case triple.FieldSentenceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentenceID(v)
		return nil
	case triple.FieldDoiHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoiHash(v)
		return nil
	case triple.FieldContributorEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributorEmail(v)
		return nil
	case triple.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Triple field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TripleMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, triple.FieldConfidence)
	}
	if m.addproject_id != nil {
		fields = append(fields, triple.FieldProjectID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TripleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case triple.FieldConfidence:
		return m.AddedConfidence()
	case triple.FieldProjectID:
		return m.AddedProjectID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TripleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case triple.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case triple.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProjectID(v)
		return nil
	}
	return fmt.Errorf("unknown Triple numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TripleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(triple.FieldTraitName) {
		fields = append(fields, triple.FieldTraitName)
	}
	if m.FieldCleared(triple.FieldTraitValue) {
		fields = append(fields, triple.FieldTraitValue)
	}
	if m.FieldCleared(triple.FieldUnit) {
		fields = append(fields, triple.FieldUnit)
	}
	if m.FieldCleared(triple.FieldProjectID) {
		fields = append(fields, triple.FieldProjectID)
	}
	if m.FieldCleared(triple.FieldDocumentID) {
		fields = append(fields, triple.FieldDocumentID)
	}
	if m.FieldCleared(triple.FieldJobID) {
		fields = append(fields, triple.FieldJobID)
	}
	if m.FieldCleared(triple.FieldDoiHash) {
		fields = append(fields, triple.FieldDoiHash)
	}
	if m.FieldCleared(triple.FieldContributorEmail) {
		fields = append(fields, triple.FieldContributorEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TripleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TripleMutation) ClearField(name string) error {
	switch name {
	case triple.FieldTraitName:
		m.ClearTraitName()
		return nil
	case triple.FieldTraitValue:
		m.ClearTraitValue()
		return nil
	case triple.FieldUnit:
		m.ClearUnit()
		return nil
	case triple.FieldProjectID:
		m.ClearProjectID()
		return nil
	case triple.FieldDocumentID:
		m.ClearDocumentID()
		return nil
	case triple.FieldJobID:
		m.ClearJobID()
		return nil
	case triple.FieldDoiHash:
		m.ClearDoiHash()
		return nil
	case triple.FieldContributorEmail:
		m.ClearContributorEmail()
		return nil
	}
	return fmt.Errorf("unknown Triple nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TripleMutation) ResetField(name string) error {
	switch name {
	case triple.FieldSourceEntityName:
		m.ResetSourceEntityName()
		return nil
	case triple.FieldSourceEntityAttr:
		m.ResetSourceEntityAttr()
		return nil
	case triple.FieldRelationType:
		m.ResetRelationType()
		return nil
	case triple.FieldSinkEntityName:
		m.ResetSinkEntityName()
		return nil
	case triple.FieldSinkEntityAttr:
		m.ResetSinkEntityAttr()
		return nil
	case triple.FieldConfidence:
		m.ResetConfidence()
		return nil
	case triple.FieldModelProfile:
		m.ResetModelProfile()
		return nil
	case triple.FieldStatus:
		m.ResetStatus()
		return nil
	case triple.FieldTraitName:
		m.ResetTraitName()
		return nil
	case triple.FieldTraitValue:
		m.ResetTraitValue()
		return nil
	case triple.FieldUnit:
		m.ResetUnit()
		return nil
	case triple.FieldProjectID:
		m.ResetProjectID()
		return nil
	case triple.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case triple.FieldJobID:
		m.ResetJobID()
		return nil
	case triple.FieldSentenceID:
		m.ResetSentenceID()
		return nil
	case triple.FieldDoiHash:
		m.ResetDoiHash()
		return nil
	case triple.FieldContributorEmail:
		m.ResetContributorEmail()
		return nil
	case triple.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Triple field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TripleMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.document != nil {
		edges = append(edges, triple.EdgeDocument)
	}
	if m.job != nil {
		edges = append(edges, triple.EdgeJob)
	}
	if m.sentence != nil {
		edges = append(edges, triple.EdgeSentence)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TripleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case triple.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case triple.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case triple.EdgeSentence:
		if id := m.sentence; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TripleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TripleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TripleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddocument {
		edges = append(edges, triple.EdgeDocument)
	}
	if m.clearedjob {
		edges = append(edges, triple.EdgeJob)
	}
	if m.clearedsentence {
		edges = append(edges, triple.EdgeSentence)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TripleMutation) EdgeCleared(name string) bool {
	switch name {
	case triple.EdgeDocument:
		return m.cleareddocument
	case triple.EdgeJob:
		return m.clearedjob
	case triple.EdgeSentence:
		return m.clearedsentence
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TripleMutation) ClearEdge(name string) error {
	switch name {
	case triple.EdgeDocument:
		m.ClearDocument()
		return nil
	case triple.EdgeJob:
		m.ClearJob()
		return nil
	case triple.EdgeSentence:
		m.ClearSentence()
		return nil
	}
	return fmt.Errorf("unknown Triple unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TripleMutation) ResetEdge(name string) error {
	switch name {
	case triple.EdgeDocument:
		m.ResetDocument()
		return nil
	case triple.EdgeJob:
		m.ResetJob()
		return nil
	case triple.EdgeSentence:
		m.ResetSentence()
		return nil
	}
	return fmt.Errorf("unknown Triple edge %s", name)
}
