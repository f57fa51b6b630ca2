// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/phenobase/trait-extractor/gen/ent/document"
	"github.com/phenobase/trait-extractor/gen/ent/extractionjob"
	"github.com/phenobase/trait-extractor/gen/ent/jobdocument"
	"github.com/phenobase/trait-extractor/gen/ent/predicate"
)

// JobDocumentUpdate is the builder for updating JobDocument entities.
type JobDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *JobDocumentMutation
}

// Where appends a list predicates to the JobDocumentUpdate builder.
func (_u *JobDocumentUpdate) Where(ps ...predicate.JobDocument) *JobDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *JobDocumentUpdate) SetJobID(v int) *JobDocumentUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobDocumentUpdate) SetNillableJobID(v *int) *JobDocumentUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *JobDocumentUpdate) SetDocumentID(v int) *JobDocumentUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *JobDocumentUpdate) SetNillableDocumentID(v *int) *JobDocumentUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *JobDocumentUpdate) SetPosition(v int) *JobDocumentUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *JobDocumentUpdate) SetNillablePosition(v *int) *JobDocumentUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *JobDocumentUpdate) AddPosition(v int) *JobDocumentUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *JobDocumentUpdate) SetJob(v *ExtractionJob) *JobDocumentUpdate {
	return _u.SetJobID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *JobDocumentUpdate) SetDocument(v *Document) *JobDocumentUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the JobDocumentMutation object of the builder.
func (_u *JobDocumentUpdate) Mutation() *JobDocumentMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *JobDocumentUpdate) ClearJob() *JobDocumentUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *JobDocumentUpdate) ClearDocument() *JobDocumentUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobDocumentUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := jobdocument.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "JobDocument.position": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobDocument.job"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobDocument.document"`)
	}
	return nil
}

func (_u *JobDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobdocument.Table, jobdocument.Columns, sqlgraph.NewFieldSpec(jobdocument.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(jobdocument.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(jobdocument.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobdocument.JobTable,
			Columns: []string{jobdocument.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobdocument.JobTable,
			Columns: []string{jobdocument.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobdocument.DocumentTable,
			Columns: []string{jobdocument.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobdocument.DocumentTable,
			Columns: []string{jobdocument.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobDocumentUpdateOne is the builder for updating a single JobDocument entity.
type JobDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobDocumentMutation
}

// SetJobID sets the "job_id" field.
func (_u *JobDocumentUpdateOne) SetJobID(v int) *JobDocumentUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobDocumentUpdateOne) SetNillableJobID(v *int) *JobDocumentUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *JobDocumentUpdateOne) SetDocumentID(v int) *JobDocumentUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *JobDocumentUpdateOne) SetNillableDocumentID(v *int) *JobDocumentUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *JobDocumentUpdateOne) SetPosition(v int) *JobDocumentUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *JobDocumentUpdateOne) SetNillablePosition(v *int) *JobDocumentUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *JobDocumentUpdateOne) AddPosition(v int) *JobDocumentUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *JobDocumentUpdateOne) SetJob(v *ExtractionJob) *JobDocumentUpdateOne {
	return _u.SetJobID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *JobDocumentUpdateOne) SetDocument(v *Document) *JobDocumentUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the JobDocumentMutation object of the builder.
func (_u *JobDocumentUpdateOne) Mutation() *JobDocumentMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *JobDocumentUpdateOne) ClearJob() *JobDocumentUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *JobDocumentUpdateOne) ClearDocument() *JobDocumentUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the JobDocumentUpdate builder.
func (_u *JobDocumentUpdateOne) Where(ps ...predicate.JobDocument) *JobDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobDocumentUpdateOne) Select(field string, fields ...string) *JobDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobDocument entity.
func (_u *JobDocumentUpdateOne) Save(ctx context.Context) (*JobDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobDocumentUpdateOne) SaveX(ctx context.Context) *JobDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := jobdocument.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "JobDocument.position": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobDocument.job"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobDocument.document"`)
	}
	return nil
}

func (_u *JobDocumentUpdateOne) sqlSave(ctx context.Context) (_node *JobDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobdocument.Table, jobdocument.Columns, sqlgraph.NewFieldSpec(jobdocument.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobdocument.FieldID)
		for _, f := range fields {
			if !jobdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobdocument.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(jobdocument.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(jobdocument.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobdocument.JobTable,
			Columns: []string{jobdocument.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobdocument.JobTable,
			Columns: []string{jobdocument.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobdocument.DocumentTable,
			Columns: []string{jobdocument.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobdocument.DocumentTable,
			Columns: []string{jobdocument.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
