// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/phenobase/trait-extractor/gen/ent/predicate"
	"github.com/phenobase/trait-extractor/gen/ent/trainingrun"
)

// TrainingRunUpdate is the builder for updating TrainingRun entities.
type TrainingRunUpdate struct {
	config
	hooks    []Hook
	mutation *TrainingRunMutation
}

// Where appends a list predicates to the TrainingRunUpdate builder.
func (_u *TrainingRunUpdate) Where(ps ...predicate.TrainingRun) *TrainingRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModelProfile sets the "model_profile" field.
func (_u *TrainingRunUpdate) SetModelProfile(v string) *TrainingRunUpdate {
	_u.mutation.SetModelProfile(v)
	return _u
}

// SetNillableModelProfile sets the "model_profile" field if the given value is not nil.
func (_u *TrainingRunUpdate) SetNillableModelProfile(v *string) *TrainingRunUpdate {
	if v != nil {
		_u.SetModelProfile(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TrainingRunUpdate) SetStatus(v string) *TrainingRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TrainingRunUpdate) SetNillableStatus(v *string) *TrainingRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetArtifactPath sets the "artifact_path" field.
func (_u *TrainingRunUpdate) SetArtifactPath(v string) *TrainingRunUpdate {
	_u.mutation.SetArtifactPath(v)
	return _u
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_u *TrainingRunUpdate) SetNillableArtifactPath(v *string) *TrainingRunUpdate {
	if v != nil {
		_u.SetArtifactPath(*v)
	}
	return _u
}

// ClearArtifactPath clears the value of the "artifact_path" field.
func (_u *TrainingRunUpdate) ClearArtifactPath() *TrainingRunUpdate {
	_u.mutation.ClearArtifactPath()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *TrainingRunUpdate) SetMetrics(v json.RawMessage) *TrainingRunUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// AppendMetrics appends value to the "metrics" field.
func (_u *TrainingRunUpdate) AppendMetrics(v json.RawMessage) *TrainingRunUpdate {
	_u.mutation.AppendMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *TrainingRunUpdate) ClearMetrics() *TrainingRunUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TrainingRunUpdate) SetErrorMessage(v string) *TrainingRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TrainingRunUpdate) SetNillableErrorMessage(v *string) *TrainingRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TrainingRunUpdate) ClearErrorMessage() *TrainingRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TrainingRunUpdate) SetCompletedAt(v time.Time) *TrainingRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TrainingRunUpdate) SetNillableCompletedAt(v *time.Time) *TrainingRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TrainingRunUpdate) ClearCompletedAt() *TrainingRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TrainingRunMutation object of the builder.
func (_u *TrainingRunUpdate) Mutation() *TrainingRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrainingRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrainingRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingRunUpdate) check() error {
	if v, ok := _u.mutation.ModelProfile(); ok {
		if err := trainingrun.ModelProfileValidator(v); err != nil {
			return &ValidationError{Name: "model_profile", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.model_profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := trainingrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TrainingRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingrun.Table, trainingrun.Columns, sqlgraph.NewFieldSpec(trainingrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModelProfile(); ok {
		_spec.SetField(trainingrun.FieldModelProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(trainingrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactPath(); ok {
		_spec.SetField(trainingrun.FieldArtifactPath, field.TypeString, value)
	}
	if _u.mutation.ArtifactPathCleared() {
		_spec.ClearField(trainingrun.FieldArtifactPath, field.TypeString)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(trainingrun.FieldMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trainingrun.FieldMetrics, value)
		})
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(trainingrun.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(trainingrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(trainingrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(trainingrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(trainingrun.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrainingRunUpdateOne is the builder for updating a single TrainingRun entity.
type TrainingRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrainingRunMutation
}

// SetModelProfile sets the "model_profile" field.
func (_u *TrainingRunUpdateOne) SetModelProfile(v string) *TrainingRunUpdateOne {
	_u.mutation.SetModelProfile(v)
	return _u
}

// SetNillableModelProfile sets the "model_profile" field if the given value is not nil.
func (_u *TrainingRunUpdateOne) SetNillableModelProfile(v *string) *TrainingRunUpdateOne {
	if v != nil {
		_u.SetModelProfile(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TrainingRunUpdateOne) SetStatus(v string) *TrainingRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TrainingRunUpdateOne) SetNillableStatus(v *string) *TrainingRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetArtifactPath sets the "artifact_path" field.
func (_u *TrainingRunUpdateOne) SetArtifactPath(v string) *TrainingRunUpdateOne {
	_u.mutation.SetArtifactPath(v)
	return _u
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_u *TrainingRunUpdateOne) SetNillableArtifactPath(v *string) *TrainingRunUpdateOne {
	if v != nil {
		_u.SetArtifactPath(*v)
	}
	return _u
}

// ClearArtifactPath clears the value of the "artifact_path" field.
func (_u *TrainingRunUpdateOne) ClearArtifactPath() *TrainingRunUpdateOne {
	_u.mutation.ClearArtifactPath()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *TrainingRunUpdateOne) SetMetrics(v json.RawMessage) *TrainingRunUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// AppendMetrics appends value to the "metrics" field.
func (_u *TrainingRunUpdateOne) AppendMetrics(v json.RawMessage) *TrainingRunUpdateOne {
	_u.mutation.AppendMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *TrainingRunUpdateOne) ClearMetrics() *TrainingRunUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TrainingRunUpdateOne) SetErrorMessage(v string) *TrainingRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TrainingRunUpdateOne) SetNillableErrorMessage(v *string) *TrainingRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TrainingRunUpdateOne) ClearErrorMessage() *TrainingRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TrainingRunUpdateOne) SetCompletedAt(v time.Time) *TrainingRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TrainingRunUpdateOne) SetNillableCompletedAt(v *time.Time) *TrainingRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TrainingRunUpdateOne) ClearCompletedAt() *TrainingRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TrainingRunMutation object of the builder.
func (_u *TrainingRunUpdateOne) Mutation() *TrainingRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrainingRunUpdate builder.
func (_u *TrainingRunUpdateOne) Where(ps ...predicate.TrainingRun) *TrainingRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrainingRunUpdateOne) Select(field string, fields ...string) *TrainingRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrainingRun entity.
func (_u *TrainingRunUpdateOne) Save(ctx context.Context) (*TrainingRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingRunUpdateOne) SaveX(ctx context.Context) *TrainingRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrainingRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingRunUpdateOne) check() error {
	if v, ok := _u.mutation.ModelProfile(); ok {
		if err := trainingrun.ModelProfileValidator(v); err != nil {
			return &ValidationError{Name: "model_profile", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.model_profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := trainingrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TrainingRunUpdateOne) sqlSave(ctx context.Context) (_node *TrainingRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingrun.Table, trainingrun.Columns, sqlgraph.NewFieldSpec(trainingrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrainingRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trainingrun.FieldID)
		for _, f := range fields {
			if !trainingrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trainingrun.FieldID {
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
	if value, ok := _u.mutation.ModelProfile(); ok {
		_spec.SetField(trainingrun.FieldModelProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(trainingrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactPath(); ok {
		_spec.SetField(trainingrun.FieldArtifactPath, field.TypeString, value)
	}
	if _u.mutation.ArtifactPathCleared() {
		_spec.ClearField(trainingrun.FieldArtifactPath, field.TypeString)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(trainingrun.FieldMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trainingrun.FieldMetrics, value)
		})
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(trainingrun.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(trainingrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(trainingrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(trainingrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(trainingrun.FieldCompletedAt, field.TypeTime)
	}
	_node = &TrainingRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
