// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/phenobase/trait-extractor/gen/ent/trainingrun"
)

// TrainingRunCreate is the builder for creating a TrainingRun entity.
type TrainingRunCreate struct {
	config
	mutation *TrainingRunMutation
	hooks    []Hook
}

// SetModelProfile sets the "model_profile" field.
func (_c *TrainingRunCreate) SetModelProfile(v string) *TrainingRunCreate {
	_c.mutation.SetModelProfile(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TrainingRunCreate) SetStatus(v string) *TrainingRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetArtifactPath sets the "artifact_path" field.
func (_c *TrainingRunCreate) SetArtifactPath(v string) *TrainingRunCreate {
	_c.mutation.SetArtifactPath(v)
	return _c
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_c *TrainingRunCreate) SetNillableArtifactPath(v *string) *TrainingRunCreate {
	if v != nil {
		_c.SetArtifactPath(*v)
	}
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *TrainingRunCreate) SetMetrics(v json.RawMessage) *TrainingRunCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TrainingRunCreate) SetErrorMessage(v string) *TrainingRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TrainingRunCreate) SetNillableErrorMessage(v *string) *TrainingRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrainingRunCreate) SetCreatedAt(v time.Time) *TrainingRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrainingRunCreate) SetNillableCreatedAt(v *time.Time) *TrainingRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TrainingRunCreate) SetCompletedAt(v time.Time) *TrainingRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TrainingRunCreate) SetNillableCompletedAt(v *time.Time) *TrainingRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the TrainingRunMutation object of the builder.
func (_c *TrainingRunCreate) Mutation() *TrainingRunMutation {
	return _c.mutation
}

// Save creates the TrainingRun in the database.
func (_c *TrainingRunCreate) Save(ctx context.Context) (*TrainingRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrainingRunCreate) SaveX(ctx context.Context) *TrainingRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrainingRunCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trainingrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrainingRunCreate) check() error {
	if _, ok := _c.mutation.ModelProfile(); !ok {
		return &ValidationError{Name: "model_profile", err: errors.New(`ent: missing required field "TrainingRun.model_profile"`)}
	}
	if v, ok := _c.mutation.ModelProfile(); ok {
		if err := trainingrun.ModelProfileValidator(v); err != nil {
			return &ValidationError{Name: "model_profile", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.model_profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TrainingRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := trainingrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrainingRun.created_at"`)}
	}
	return nil
}

func (_c *TrainingRunCreate) sqlSave(ctx context.Context) (*TrainingRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TrainingRunCreate) createSpec() (*TrainingRun, *sqlgraph.CreateSpec) {
	var (
		_node = &TrainingRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trainingrun.Table, sqlgraph.NewFieldSpec(trainingrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ModelProfile(); ok {
		_spec.SetField(trainingrun.FieldModelProfile, field.TypeString, value)
		_node.ModelProfile = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(trainingrun.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ArtifactPath(); ok {
		_spec.SetField(trainingrun.FieldArtifactPath, field.TypeString, value)
		_node.ArtifactPath = &value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(trainingrun.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(trainingrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trainingrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(trainingrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// TrainingRunCreateBulk is the builder for creating many TrainingRun entities in bulk.
type TrainingRunCreateBulk struct {
	config
	err      error
	builders []*TrainingRunCreate
}

// Save creates the TrainingRun entities in the database.
func (_c *TrainingRunCreateBulk) Save(ctx context.Context) ([]*TrainingRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrainingRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrainingRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TrainingRunCreateBulk) SaveX(ctx context.Context) []*TrainingRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
