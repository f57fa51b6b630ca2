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
	"github.com/phenobase/trait-extractor/gen/ent/document"
	"github.com/phenobase/trait-extractor/gen/ent/jobdocument"
	"github.com/phenobase/trait-extractor/gen/ent/predicate"
	"github.com/phenobase/trait-extractor/gen/ent/sentence"
	"github.com/phenobase/trait-extractor/gen/ent/triple"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *DocumentUpdate) SetProjectID(v int) *DocumentUpdate {
	_u.mutation.ResetProjectID()
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProjectID(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// AddProjectID adds value to the "project_id" field.
func (_u *DocumentUpdate) AddProjectID(v int) *DocumentUpdate {
	_u.mutation.AddProjectID(v)
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *DocumentUpdate) ClearProjectID() *DocumentUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentUpdate) SetFilePath(v string) *DocumentUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetTextContent sets the "text_content" field.
func (_u *DocumentUpdate) SetTextContent(v string) *DocumentUpdate {
	_u.mutation.SetTextContent(v)
	return _u
}

// SetNillableTextContent sets the "text_content" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTextContent(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTextContent(*v)
	}
	return _u
}

// SetDoi sets the "doi" field.
func (_u *DocumentUpdate) SetDoi(v string) *DocumentUpdate {
	_u.mutation.SetDoi(v)
	return _u
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDoi(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDoi(*v)
	}
	return _u
}

// ClearDoi clears the value of the "doi" field.
func (_u *DocumentUpdate) ClearDoi() *DocumentUpdate {
	_u.mutation.ClearDoi()
	return _u
}

// SetDoiHash sets the "doi_hash" field.
func (_u *DocumentUpdate) SetDoiHash(v string) *DocumentUpdate {
	_u.mutation.SetDoiHash(v)
	return _u
}

// SetNillableDoiHash sets the "doi_hash" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDoiHash(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDoiHash(*v)
	}
	return _u
}

// ClearDoiHash clears the value of the "doi_hash" field.
func (_u *DocumentUpdate) ClearDoiHash() *DocumentUpdate {
	_u.mutation.ClearDoiHash()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobDocumentIDs adds the "job_documents" edge to the JobDocument entity by IDs.
func (_u *DocumentUpdate) AddJobDocumentIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddJobDocumentIDs(ids...)
	return _u
}

// AddJobDocuments adds the "job_documents" edges to the JobDocument entity.
func (_u *DocumentUpdate) AddJobDocuments(v ...*JobDocument) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobDocumentIDs(ids...)
}

// AddSentenceIDs adds the "sentences" edge to the Sentence entity by IDs.
func (_u *DocumentUpdate) AddSentenceIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddSentenceIDs(ids...)
	return _u
}

// AddSentences adds the "sentences" edges to the Sentence entity.
func (_u *DocumentUpdate) AddSentences(v ...*Sentence) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSentenceIDs(ids...)
}

// AddTripleIDs adds the "triples" edge to the Triple entity by IDs.
func (_u *DocumentUpdate) AddTripleIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddTripleIDs(ids...)
	return _u
}

// AddTriples adds the "triples" edges to the Triple entity.
func (_u *DocumentUpdate) AddTriples(v ...*Triple) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTripleIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearJobDocuments clears all "job_documents" edges to the JobDocument entity.
func (_u *DocumentUpdate) ClearJobDocuments() *DocumentUpdate {
	_u.mutation.ClearJobDocuments()
	return _u
}

// RemoveJobDocumentIDs removes the "job_documents" edge to JobDocument entities by IDs.
func (_u *DocumentUpdate) RemoveJobDocumentIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveJobDocumentIDs(ids...)
	return _u
}

// RemoveJobDocuments removes "job_documents" edges to JobDocument entities.
func (_u *DocumentUpdate) RemoveJobDocuments(v ...*JobDocument) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobDocumentIDs(ids...)
}

// ClearSentences clears all "sentences" edges to the Sentence entity.
func (_u *DocumentUpdate) ClearSentences() *DocumentUpdate {
	_u.mutation.ClearSentences()
	return _u
}

// RemoveSentenceIDs removes the "sentences" edge to Sentence entities by IDs.
func (_u *DocumentUpdate) RemoveSentenceIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveSentenceIDs(ids...)
	return _u
}

// RemoveSentences removes "sentences" edges to Sentence entities.
func (_u *DocumentUpdate) RemoveSentences(v ...*Sentence) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSentenceIDs(ids...)
}

// ClearTriples clears all "triples" edges to the Triple entity.
func (_u *DocumentUpdate) ClearTriples() *DocumentUpdate {
	_u.mutation.ClearTriples()
	return _u
}

// RemoveTripleIDs removes the "triples" edge to Triple entities by IDs.
func (_u *DocumentUpdate) RemoveTripleIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveTripleIDs(ids...)
	return _u
}

// RemoveTriples removes "triples" edges to Triple entities.
func (_u *DocumentUpdate) RemoveTriples(v ...*Triple) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTripleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := document.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Document.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(document.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectID(); ok {
		_spec.AddField(document.FieldProjectID, field.TypeInt, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(document.FieldProjectID, field.TypeInt)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(document.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextContent(); ok {
		_spec.SetField(document.FieldTextContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Doi(); ok {
		_spec.SetField(document.FieldDoi, field.TypeString, value)
	}
	if _u.mutation.DoiCleared() {
		_spec.ClearField(document.FieldDoi, field.TypeString)
	}
	if value, ok := _u.mutation.DoiHash(); ok {
		_spec.SetField(document.FieldDoiHash, field.TypeString, value)
	}
	if _u.mutation.DoiHashCleared() {
		_spec.ClearField(document.FieldDoiHash, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobDocumentsTable,
			Columns: []string{document.JobDocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobdocument.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobDocumentsIDs(); len(nodes) > 0 && !_u.mutation.JobDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobDocumentsTable,
			Columns: []string{document.JobDocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobdocument.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobDocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobDocumentsTable,
			Columns: []string{document.JobDocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobdocument.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SentencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.SentencesTable,
			Columns: []string{document.SentencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSentencesIDs(); len(nodes) > 0 && !_u.mutation.SentencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.SentencesTable,
			Columns: []string{document.SentencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SentencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.SentencesTable,
			Columns: []string{document.SentencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TriplesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TriplesTable,
			Columns: []string{document.TriplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triple.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTriplesIDs(); len(nodes) > 0 && !_u.mutation.TriplesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TriplesTable,
			Columns: []string{document.TriplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triple.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TriplesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TriplesTable,
			Columns: []string{document.TriplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triple.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetProjectID sets the "project_id" field.
func (_u *DocumentUpdateOne) SetProjectID(v int) *DocumentUpdateOne {
	_u.mutation.ResetProjectID()
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProjectID(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// AddProjectID adds value to the "project_id" field.
func (_u *DocumentUpdateOne) AddProjectID(v int) *DocumentUpdateOne {
	_u.mutation.AddProjectID(v)
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *DocumentUpdateOne) ClearProjectID() *DocumentUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentUpdateOne) SetFilePath(v string) *DocumentUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetTextContent sets the "text_content" field.
func (_u *DocumentUpdateOne) SetTextContent(v string) *DocumentUpdateOne {
	_u.mutation.SetTextContent(v)
	return _u
}

// SetNillableTextContent sets the "text_content" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTextContent(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTextContent(*v)
	}
	return _u
}

// SetDoi sets the "doi" field.
func (_u *DocumentUpdateOne) SetDoi(v string) *DocumentUpdateOne {
	_u.mutation.SetDoi(v)
	return _u
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDoi(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDoi(*v)
	}
	return _u
}

// ClearDoi clears the value of the "doi" field.
func (_u *DocumentUpdateOne) ClearDoi() *DocumentUpdateOne {
	_u.mutation.ClearDoi()
	return _u
}

// SetDoiHash sets the "doi_hash" field.
func (_u *DocumentUpdateOne) SetDoiHash(v string) *DocumentUpdateOne {
	_u.mutation.SetDoiHash(v)
	return _u
}

// SetNillableDoiHash sets the "doi_hash" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDoiHash(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDoiHash(*v)
	}
	return _u
}

// ClearDoiHash clears the value of the "doi_hash" field.
func (_u *DocumentUpdateOne) ClearDoiHash() *DocumentUpdateOne {
	_u.mutation.ClearDoiHash()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobDocumentIDs adds the "job_documents" edge to the JobDocument entity by IDs.
func (_u *DocumentUpdateOne) AddJobDocumentIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddJobDocumentIDs(ids...)
	return _u
}

// AddJobDocuments adds the "job_documents" edges to the JobDocument entity.
func (_u *DocumentUpdateOne) AddJobDocuments(v ...*JobDocument) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobDocumentIDs(ids...)
}

// AddSentenceIDs adds the "sentences" edge to the Sentence entity by IDs.
func (_u *DocumentUpdateOne) AddSentenceIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddSentenceIDs(ids...)
	return _u
}

// AddSentences adds the "sentences" edges to the Sentence entity.
func (_u *DocumentUpdateOne) AddSentences(v ...*Sentence) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSentenceIDs(ids...)
}

// AddTripleIDs adds the "triples" edge to the Triple entity by IDs.
func (_u *DocumentUpdateOne) AddTripleIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddTripleIDs(ids...)
	return _u
}

// AddTriples adds the "triples" edges to the Triple entity.
func (_u *DocumentUpdateOne) AddTriples(v ...*Triple) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTripleIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearJobDocuments clears all "job_documents" edges to the JobDocument entity.
func (_u *DocumentUpdateOne) ClearJobDocuments() *DocumentUpdateOne {
	_u.mutation.ClearJobDocuments()
	return _u
}

// RemoveJobDocumentIDs removes the "job_documents" edge to JobDocument entities by IDs.
func (_u *DocumentUpdateOne) RemoveJobDocumentIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveJobDocumentIDs(ids...)
	return _u
}

// RemoveJobDocuments removes "job_documents" edges to JobDocument entities.
func (_u *DocumentUpdateOne) RemoveJobDocuments(v ...*JobDocument) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobDocumentIDs(ids...)
}

// ClearSentences clears all "sentences" edges to the Sentence entity.
func (_u *DocumentUpdateOne) ClearSentences() *DocumentUpdateOne {
	_u.mutation.ClearSentences()
	return _u
}

// RemoveSentenceIDs removes the "sentences" edge to Sentence entities by IDs.
func (_u *DocumentUpdateOne) RemoveSentenceIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveSentenceIDs(ids...)
	return _u
}

// RemoveSentences removes "sentences" edges to Sentence entities.
func (_u *DocumentUpdateOne) RemoveSentences(v ...*Sentence) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSentenceIDs(ids...)
}

// ClearTriples clears all "triples" edges to the Triple entity.
func (_u *DocumentUpdateOne) ClearTriples() *DocumentUpdateOne {
	_u.mutation.ClearTriples()
	return _u
}

// RemoveTripleIDs removes the "triples" edge to Triple entities by IDs.
func (_u *DocumentUpdateOne) RemoveTripleIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveTripleIDs(ids...)
	return _u
}

// RemoveTriples removes "triples" edges to Triple entities.
func (_u *DocumentUpdateOne) RemoveTriples(v ...*Triple) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTripleIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := document.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Document.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(document.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectID(); ok {
		_spec.AddField(document.FieldProjectID, field.TypeInt, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(document.FieldProjectID, field.TypeInt)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(document.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextContent(); ok {
		_spec.SetField(document.FieldTextContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Doi(); ok {
		_spec.SetField(document.FieldDoi, field.TypeString, value)
	}
	if _u.mutation.DoiCleared() {
		_spec.ClearField(document.FieldDoi, field.TypeString)
	}
	if value, ok := _u.mutation.DoiHash(); ok {
		_spec.SetField(document.FieldDoiHash, field.TypeString, value)
	}
	if _u.mutation.DoiHashCleared() {
		_spec.ClearField(document.FieldDoiHash, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobDocumentsTable,
			Columns: []string{document.JobDocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobdocument.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobDocumentsIDs(); len(nodes) > 0 && !_u.mutation.JobDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobDocumentsTable,
			Columns: []string{document.JobDocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobdocument.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobDocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobDocumentsTable,
			Columns: []string{document.JobDocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobdocument.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SentencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.SentencesTable,
			Columns: []string{document.SentencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSentencesIDs(); len(nodes) > 0 && !_u.mutation.SentencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.SentencesTable,
			Columns: []string{document.SentencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SentencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.SentencesTable,
			Columns: []string{document.SentencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TriplesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TriplesTable,
			Columns: []string{document.TriplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triple.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTriplesIDs(); len(nodes) > 0 && !_u.mutation.TriplesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TriplesTable,
			Columns: []string{document.TriplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triple.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TriplesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TriplesTable,
			Columns: []string{document.TriplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triple.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
