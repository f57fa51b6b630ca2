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
	"github.com/phenobase/trait-extractor/gen/ent/extractionjob"
	"github.com/phenobase/trait-extractor/gen/ent/jobdocument"
	"github.com/phenobase/trait-extractor/gen/ent/predicate"
	"github.com/phenobase/trait-extractor/gen/ent/triple"
)

// ExtractionJobUpdate is the builder for updating ExtractionJob entities.
type ExtractionJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdate) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ExtractionJobUpdate) SetProjectID(v int) *ExtractionJobUpdate {
	_u.mutation.ResetProjectID()
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableProjectID(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// AddProjectID adds value to the "project_id" field.
func (_u *ExtractionJobUpdate) AddProjectID(v int) *ExtractionJobUpdate {
	_u.mutation.AddProjectID(v)
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *ExtractionJobUpdate) ClearProjectID() *ExtractionJobUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetModelProfile sets the "model_profile" field.
func (_u *ExtractionJobUpdate) SetModelProfile(v string) *ExtractionJobUpdate {
	_u.mutation.SetModelProfile(v)
	return _u
}

// SetNillableModelProfile sets the "model_profile" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableModelProfile(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetModelProfile(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ExtractionJobUpdate) SetMode(v string) *ExtractionJobUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableMode(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdate) SetStatus(v string) *ExtractionJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStatus(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ExtractionJobUpdate) SetProgress(v int) *ExtractionJobUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableProgress(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ExtractionJobUpdate) AddProgress(v int) *ExtractionJobUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdate) SetErrorMessage(v string) *ExtractionJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableErrorMessage(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdate) ClearErrorMessage() *ExtractionJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTotalTriples sets the "total_triples" field.
func (_u *ExtractionJobUpdate) SetTotalTriples(v int) *ExtractionJobUpdate {
	_u.mutation.ResetTotalTriples()
	_u.mutation.SetTotalTriples(v)
	return _u
}

// SetNillableTotalTriples sets the "total_triples" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableTotalTriples(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetTotalTriples(*v)
	}
	return _u
}

// AddTotalTriples adds value to the "total_triples" field.
func (_u *ExtractionJobUpdate) AddTotalTriples(v int) *ExtractionJobUpdate {
	_u.mutation.AddTotalTriples(v)
	return _u
}

// ClearTotalTriples clears the value of the "total_triples" field.
func (_u *ExtractionJobUpdate) ClearTotalTriples() *ExtractionJobUpdate {
	_u.mutation.ClearTotalTriples()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ExtractionJobUpdate) SetCreatedBy(v string) *ExtractionJobUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableCreatedBy(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ExtractionJobUpdate) ClearCreatedBy() *ExtractionJobUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionJobUpdate) SetStartedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStartedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExtractionJobUpdate) ClearStartedAt() *ExtractionJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExtractionJobUpdate) SetCompletedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableCompletedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExtractionJobUpdate) ClearCompletedAt() *ExtractionJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddJobDocumentIDs adds the "job_documents" edge to the JobDocument entity by IDs.
func (_u *ExtractionJobUpdate) AddJobDocumentIDs(ids ...int) *ExtractionJobUpdate {
	_u.mutation.AddJobDocumentIDs(ids...)
	return _u
}

// AddJobDocuments adds the "job_documents" edges to the JobDocument entity.
func (_u *ExtractionJobUpdate) AddJobDocuments(v ...*JobDocument) *ExtractionJobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobDocumentIDs(ids...)
}

// AddTripleIDs adds the "triples" edge to the Triple entity by IDs.
func (_u *ExtractionJobUpdate) AddTripleIDs(ids ...int) *ExtractionJobUpdate {
	_u.mutation.AddTripleIDs(ids...)
	return _u
}

// AddTriples adds the "triples" edges to the Triple entity.
func (_u *ExtractionJobUpdate) AddTriples(v ...*Triple) *ExtractionJobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTripleIDs(ids...)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdate) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearJobDocuments clears all "job_documents" edges to the JobDocument entity.
func (_u *ExtractionJobUpdate) ClearJobDocuments() *ExtractionJobUpdate {
	_u.mutation.ClearJobDocuments()
	return _u
}

// RemoveJobDocumentIDs removes the "job_documents" edge to JobDocument entities by IDs.
func (_u *ExtractionJobUpdate) RemoveJobDocumentIDs(ids ...int) *ExtractionJobUpdate {
	_u.mutation.RemoveJobDocumentIDs(ids...)
	return _u
}

// RemoveJobDocuments removes "job_documents" edges to JobDocument entities.
func (_u *ExtractionJobUpdate) RemoveJobDocuments(v ...*JobDocument) *ExtractionJobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobDocumentIDs(ids...)
}

// ClearTriples clears all "triples" edges to the Triple entity.
func (_u *ExtractionJobUpdate) ClearTriples() *ExtractionJobUpdate {
	_u.mutation.ClearTriples()
	return _u
}

// RemoveTripleIDs removes the "triples" edge to Triple entities by IDs.
func (_u *ExtractionJobUpdate) RemoveTripleIDs(ids ...int) *ExtractionJobUpdate {
	_u.mutation.RemoveTripleIDs(ids...)
	return _u
}

// RemoveTriples removes "triples" edges to Triple entities.
func (_u *ExtractionJobUpdate) RemoveTriples(v ...*Triple) *ExtractionJobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTripleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdate) check() error {
	if v, ok := _u.mutation.ModelProfile(); ok {
		if err := extractionjob.ModelProfileValidator(v); err != nil {
			return &ValidationError{Name: "model_profile", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.model_profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := extractionjob.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := extractionjob.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.progress": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(extractionjob.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectID(); ok {
		_spec.AddField(extractionjob.FieldProjectID, field.TypeInt, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(extractionjob.FieldProjectID, field.TypeInt)
	}
	if value, ok := _u.mutation.ModelProfile(); ok {
		_spec.SetField(extractionjob.FieldModelProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(extractionjob.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(extractionjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(extractionjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TotalTriples(); ok {
		_spec.SetField(extractionjob.FieldTotalTriples, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTriples(); ok {
		_spec.AddField(extractionjob.FieldTotalTriples, field.TypeInt, value)
	}
	if _u.mutation.TotalTriplesCleared() {
		_spec.ClearField(extractionjob.FieldTotalTriples, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(extractionjob.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(extractionjob.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(extractionjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(extractionjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(extractionjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.JobDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.JobDocumentsTable,
			Columns: []string{extractionjob.JobDocumentsColumn},
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
			Table:   extractionjob.JobDocumentsTable,
			Columns: []string{extractionjob.JobDocumentsColumn},
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
			Table:   extractionjob.JobDocumentsTable,
			Columns: []string{extractionjob.JobDocumentsColumn},
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
	if _u.mutation.TriplesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.TriplesTable,
			Columns: []string{extractionjob.TriplesColumn},
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
			Table:   extractionjob.TriplesTable,
			Columns: []string{extractionjob.TriplesColumn},
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
			Table:   extractionjob.TriplesTable,
			Columns: []string{extractionjob.TriplesColumn},
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
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionJobUpdateOne is the builder for updating a single ExtractionJob entity.
type ExtractionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ExtractionJobUpdateOne) SetProjectID(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetProjectID()
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableProjectID(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// AddProjectID adds value to the "project_id" field.
func (_u *ExtractionJobUpdateOne) AddProjectID(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddProjectID(v)
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *ExtractionJobUpdateOne) ClearProjectID() *ExtractionJobUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetModelProfile sets the "model_profile" field.
func (_u *ExtractionJobUpdateOne) SetModelProfile(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetModelProfile(v)
	return _u
}

// SetNillableModelProfile sets the "model_profile" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableModelProfile(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetModelProfile(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ExtractionJobUpdateOne) SetMode(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableMode(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdateOne) SetStatus(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStatus(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ExtractionJobUpdateOne) SetProgress(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableProgress(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ExtractionJobUpdateOne) AddProgress(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdateOne) SetErrorMessage(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdateOne) ClearErrorMessage() *ExtractionJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTotalTriples sets the "total_triples" field.
func (_u *ExtractionJobUpdateOne) SetTotalTriples(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetTotalTriples()
	_u.mutation.SetTotalTriples(v)
	return _u
}

// SetNillableTotalTriples sets the "total_triples" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableTotalTriples(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetTotalTriples(*v)
	}
	return _u
}

// AddTotalTriples adds value to the "total_triples" field.
func (_u *ExtractionJobUpdateOne) AddTotalTriples(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddTotalTriples(v)
	return _u
}

// ClearTotalTriples clears the value of the "total_triples" field.
func (_u *ExtractionJobUpdateOne) ClearTotalTriples() *ExtractionJobUpdateOne {
	_u.mutation.ClearTotalTriples()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ExtractionJobUpdateOne) SetCreatedBy(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableCreatedBy(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ExtractionJobUpdateOne) ClearCreatedBy() *ExtractionJobUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionJobUpdateOne) SetStartedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExtractionJobUpdateOne) ClearStartedAt() *ExtractionJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExtractionJobUpdateOne) SetCompletedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExtractionJobUpdateOne) ClearCompletedAt() *ExtractionJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddJobDocumentIDs adds the "job_documents" edge to the JobDocument entity by IDs.
func (_u *ExtractionJobUpdateOne) AddJobDocumentIDs(ids ...int) *ExtractionJobUpdateOne {
	_u.mutation.AddJobDocumentIDs(ids...)
	return _u
}

// AddJobDocuments adds the "job_documents" edges to the JobDocument entity.
func (_u *ExtractionJobUpdateOne) AddJobDocuments(v ...*JobDocument) *ExtractionJobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobDocumentIDs(ids...)
}

// AddTripleIDs adds the "triples" edge to the Triple entity by IDs.
func (_u *ExtractionJobUpdateOne) AddTripleIDs(ids ...int) *ExtractionJobUpdateOne {
	_u.mutation.AddTripleIDs(ids...)
	return _u
}

// AddTriples adds the "triples" edges to the Triple entity.
func (_u *ExtractionJobUpdateOne) AddTriples(v ...*Triple) *ExtractionJobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTripleIDs(ids...)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdateOne) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearJobDocuments clears all "job_documents" edges to the JobDocument entity.
func (_u *ExtractionJobUpdateOne) ClearJobDocuments() *ExtractionJobUpdateOne {
	_u.mutation.ClearJobDocuments()
	return _u
}

// RemoveJobDocumentIDs removes the "job_documents" edge to JobDocument entities by IDs.
func (_u *ExtractionJobUpdateOne) RemoveJobDocumentIDs(ids ...int) *ExtractionJobUpdateOne {
	_u.mutation.RemoveJobDocumentIDs(ids...)
	return _u
}

// RemoveJobDocuments removes "job_documents" edges to JobDocument entities.
func (_u *ExtractionJobUpdateOne) RemoveJobDocuments(v ...*JobDocument) *ExtractionJobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobDocumentIDs(ids...)
}

// ClearTriples clears all "triples" edges to the Triple entity.
func (_u *ExtractionJobUpdateOne) ClearTriples() *ExtractionJobUpdateOne {
	_u.mutation.ClearTriples()
	return _u
}

// RemoveTripleIDs removes the "triples" edge to Triple entities by IDs.
func (_u *ExtractionJobUpdateOne) RemoveTripleIDs(ids ...int) *ExtractionJobUpdateOne {
	_u.mutation.RemoveTripleIDs(ids...)
	return _u
}

// RemoveTriples removes "triples" edges to Triple entities.
func (_u *ExtractionJobUpdateOne) RemoveTriples(v ...*Triple) *ExtractionJobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTripleIDs(ids...)
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdateOne) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionJobUpdateOne) Select(field string, fields ...string) *ExtractionJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionJob entity.
func (_u *ExtractionJobUpdateOne) Save(ctx context.Context) (*ExtractionJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) SaveX(ctx context.Context) *ExtractionJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdateOne) check() error {
	if v, ok := _u.mutation.ModelProfile(); ok {
		if err := extractionjob.ModelProfileValidator(v); err != nil {
			return &ValidationError{Name: "model_profile", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.model_profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := extractionjob.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := extractionjob.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.progress": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionjob.FieldID)
		for _, f := range fields {
			if !extractionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionjob.FieldID {
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
		_spec.SetField(extractionjob.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectID(); ok {
		_spec.AddField(extractionjob.FieldProjectID, field.TypeInt, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(extractionjob.FieldProjectID, field.TypeInt)
	}
	if value, ok := _u.mutation.ModelProfile(); ok {
		_spec.SetField(extractionjob.FieldModelProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(extractionjob.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(extractionjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(extractionjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TotalTriples(); ok {
		_spec.SetField(extractionjob.FieldTotalTriples, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTriples(); ok {
		_spec.AddField(extractionjob.FieldTotalTriples, field.TypeInt, value)
	}
	if _u.mutation.TotalTriplesCleared() {
		_spec.ClearField(extractionjob.FieldTotalTriples, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(extractionjob.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(extractionjob.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(extractionjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(extractionjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(extractionjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.JobDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.JobDocumentsTable,
			Columns: []string{extractionjob.JobDocumentsColumn},
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
			Table:   extractionjob.JobDocumentsTable,
			Columns: []string{extractionjob.JobDocumentsColumn},
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
			Table:   extractionjob.JobDocumentsTable,
			Columns: []string{extractionjob.JobDocumentsColumn},
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
	if _u.mutation.TriplesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.TriplesTable,
			Columns: []string{extractionjob.TriplesColumn},
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
			Table:   extractionjob.TriplesTable,
			Columns: []string{extractionjob.TriplesColumn},
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
			Table:   extractionjob.TriplesTable,
			Columns: []string{extractionjob.TriplesColumn},
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
	_node = &ExtractionJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
