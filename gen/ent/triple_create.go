// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/phenobase/trait-extractor/gen/ent/document"
	"github.com/phenobase/trait-extractor/gen/ent/extractionjob"
	"github.com/phenobase/trait-extractor/gen/ent/sentence"
	"github.com/phenobase/trait-extractor/gen/ent/triple"
)

// TripleCreate is the builder for creating a Triple entity.
type TripleCreate struct {
	config
	mutation *TripleMutation
	hooks    []Hook
}

// SetSourceEntityName sets the "source_entity_name" field.
func (_c *TripleCreate) SetSourceEntityName(v string) *TripleCreate {
	_c.mutation.SetSourceEntityName(v)
	return _c
}

// SetSourceEntityAttr sets the "source_entity_attr" field.
func (_c *TripleCreate) SetSourceEntityAttr(v string) *TripleCreate {
	_c.mutation.SetSourceEntityAttr(v)
	return _c
}

// SetRelationType sets the "relation_type" field.
func (_c *TripleCreate) SetRelationType(v string) *TripleCreate {
	_c.mutation.SetRelationType(v)
	return _c
}

// SetSinkEntityName sets the "sink_entity_name" field.
func (_c *TripleCreate) SetSinkEntityName(v string) *TripleCreate {
	_c.mutation.SetSinkEntityName(v)
	return _c
}

// SetSinkEntityAttr sets the "sink_entity_attr" field.
func (_c *TripleCreate) SetSinkEntityAttr(v string) *TripleCreate {
	_c.mutation.SetSinkEntityAttr(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TripleCreate) SetConfidence(v float64) *TripleCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetModelProfile sets the "model_profile" field.
func (_c *TripleCreate) SetModelProfile(v string) *TripleCreate {
	_c.mutation.SetModelProfile(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TripleCreate) SetStatus(v string) *TripleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TripleCreate) SetNillableStatus(v *string) *TripleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTraitName sets the "trait_name" field.
func (_c *TripleCreate) SetTraitName(v string) *TripleCreate {
	_c.mutation.SetTraitName(v)
	return _c
}

// SetNillableTraitName sets the "trait_name" field if the given value is not nil.
func (_c *TripleCreate) SetNillableTraitName(v *string) *TripleCreate {
	if v != nil {
		_c.SetTraitName(*v)
	}
	return _c
}

// SetTraitValue sets the "trait_value" field.
func (_c *TripleCreate) SetTraitValue(v string) *TripleCreate {
	_c.mutation.SetTraitValue(v)
	return _c
}

// SetNillableTraitValue sets the "trait_value" field if the given value is not nil.
func (_c *TripleCreate) SetNillableTraitValue(v *string) *TripleCreate {
	if v != nil {
		_c.SetTraitValue(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *TripleCreate) SetUnit(v string) *TripleCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *TripleCreate) SetNillableUnit(v *string) *TripleCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *TripleCreate) SetProjectID(v int) *TripleCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *TripleCreate) SetNillableProjectID(v *int) *TripleCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *TripleCreate) SetDocumentID(v int) *TripleCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_c *TripleCreate) SetNillableDocumentID(v *int) *TripleCreate {
	if v != nil {
		_c.SetDocumentID(*v)
	}
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *TripleCreate) SetJobID(v int) *TripleCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *TripleCreate) SetNillableJobID(v *int) *TripleCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetSentenceID sets the "sentence_id" field.
func (_c *TripleCreate) SetSentenceID(v int) *TripleCreate {
	_c.mutation.SetSentenceID(v)
	return _c
}

// SetDoiHash sets the "doi_hash" field.
func (_c *TripleCreate) SetDoiHash(v string) *TripleCreate {
	_c.mutation.SetDoiHash(v)
	return _c
}

// SetNillableDoiHash sets the "doi_hash" field if the given value is not nil.
func (_c *TripleCreate) SetNillableDoiHash(v *string) *TripleCreate {
	if v != nil {
		_c.SetDoiHash(*v)
	}
	return _c
}

// SetContributorEmail sets the "contributor_email" field.
func (_c *TripleCreate) SetContributorEmail(v string) *TripleCreate {
	_c.mutation.SetContributorEmail(v)
	return _c
}

// SetNillableContributorEmail sets the "contributor_email" field if the given value is not nil.
func (_c *TripleCreate) SetNillableContributorEmail(v *string) *TripleCreate {
	if v != nil {
		_c.SetContributorEmail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TripleCreate) SetCreatedAt(v time.Time) *TripleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TripleCreate) SetNillableCreatedAt(v *time.Time) *TripleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *TripleCreate) SetDocument(v *Document) *TripleCreate {
	return _c.SetDocumentID(v.ID)
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_c *TripleCreate) SetJob(v *ExtractionJob) *TripleCreate {
	return _c.SetJobID(v.ID)
}

// SetSentence sets the "sentence" edge to the Sentence entity.
func (_c *TripleCreate) SetSentence(v *Sentence) *TripleCreate {
	return _c.SetSentenceID(v.ID)
}

// Mutation returns the TripleMutation object of the builder.
func (_c *TripleCreate) Mutation() *TripleMutation {
	return _c.mutation
}

// Save creates the Triple in the database.
func (_c *TripleCreate) Save(ctx context.Context) (*Triple, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TripleCreate) SaveX(ctx context.Context) *Triple {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TripleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TripleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TripleCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := triple.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := triple.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TripleCreate) check() error {
	if _, ok := _c.mutation.SourceEntityName(); !ok {
		return &ValidationError{Name: "source_entity_name", err: errors.New(`ent: missing required field "Triple.source_entity_name"`)}
	}
	if v, ok := _c.mutation.SourceEntityName(); ok {
		if err := triple.SourceEntityNameValidator(v); err != nil {
			return &ValidationError{Name: "source_entity_name", err: fmt.Errorf(`ent: validator failed for field "Triple.source_entity_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceEntityAttr(); !ok {
		return &ValidationError{Name: "source_entity_attr", err: errors.New(`ent: missing required field "Triple.source_entity_attr"`)}
	}
	if v, ok := _c.mutation.SourceEntityAttr(); ok {
		if err := triple.SourceEntityAttrValidator(v); err != nil {
			return &ValidationError{Name: "source_entity_attr", err: fmt.Errorf(`ent: validator failed for field "Triple.source_entity_attr": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RelationType(); !ok {
		return &ValidationError{Name: "relation_type", err: errors.New(`ent: missing required field "Triple.relation_type"`)}
	}
	if v, ok := _c.mutation.RelationType(); ok {
		if err := triple.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "Triple.relation_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SinkEntityName(); !ok {
		return &ValidationError{Name: "sink_entity_name", err: errors.New(`ent: missing required field "Triple.sink_entity_name"`)}
	}
	if v, ok := _c.mutation.SinkEntityName(); ok {
		if err := triple.SinkEntityNameValidator(v); err != nil {
			return &ValidationError{Name: "sink_entity_name", err: fmt.Errorf(`ent: validator failed for field "Triple.sink_entity_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SinkEntityAttr(); !ok {
		return &ValidationError{Name: "sink_entity_attr", err: errors.New(`ent: missing required field "Triple.sink_entity_attr"`)}
	}
	if v, ok := _c.mutation.SinkEntityAttr(); ok {
		if err := triple.SinkEntityAttrValidator(v); err != nil {
			return &ValidationError{Name: "sink_entity_attr", err: fmt.Errorf(`ent: validator failed for field "Triple.sink_entity_attr": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Triple.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := triple.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Triple.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelProfile(); !ok {
		return &ValidationError{Name: "model_profile", err: errors.New(`ent: missing required field "Triple.model_profile"`)}
	}
	if v, ok := _c.mutation.ModelProfile(); ok {
		if err := triple.ModelProfileValidator(v); err != nil {
			return &ValidationError{Name: "model_profile", err: fmt.Errorf(`ent: validator failed for field "Triple.model_profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Triple.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := triple.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Triple.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SentenceID(); !ok {
		return &ValidationError{Name: "sentence_id", err: errors.New(`ent: missing required field "Triple.sentence_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Triple.created_at"`)}
	}
	if len(_c.mutation.SentenceIDs()) == 0 {
		return &ValidationError{Name: "sentence", err: errors.New(`ent: missing required edge "Triple.sentence"`)}
	}
	return nil
}

func (_c *TripleCreate) sqlSave(ctx context.Context) (*Triple, error) {
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

func (_c *TripleCreate) createSpec() (*Triple, *sqlgraph.CreateSpec) {
	var (
		_node = &Triple{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(triple.Table, sqlgraph.NewFieldSpec(triple.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceEntityName(); ok {
		_spec.SetField(triple.FieldSourceEntityName, field.TypeString, value)
		_node.SourceEntityName = value
	}
	if value, ok := _c.mutation.SourceEntityAttr(); ok {
		_spec.SetField(triple.FieldSourceEntityAttr, field.TypeString, value)
		_node.SourceEntityAttr = value
	}
	if value, ok := _c.mutation.RelationType(); ok {
		_spec.SetField(triple.FieldRelationType, field.TypeString, value)
		_node.RelationType = value
	}
	if value, ok := _c.mutation.SinkEntityName(); ok {
		_spec.SetField(triple.FieldSinkEntityName, field.TypeString, value)
		_node.SinkEntityName = value
	}
	if value, ok := _c.mutation.SinkEntityAttr(); ok {
		_spec.SetField(triple.FieldSinkEntityAttr, field.TypeString, value)
		_node.SinkEntityAttr = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(triple.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ModelProfile(); ok {
		_spec.SetField(triple.FieldModelProfile, field.TypeString, value)
		_node.ModelProfile = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(triple.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TraitName(); ok {
		_spec.SetField(triple.FieldTraitName, field.TypeString, value)
		_node.TraitName = &value
	}
	if value, ok := _c.mutation.TraitValue(); ok {
		_spec.SetField(triple.FieldTraitValue, field.TypeString, value)
		_node.TraitValue = &value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(triple.FieldUnit, field.TypeString, value)
		_node.Unit = &value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(triple.FieldProjectID, field.TypeInt, value)
		_node.ProjectID = &value
	}
	if value, ok := _c.mutation.DoiHash(); ok {
		_spec.SetField(triple.FieldDoiHash, field.TypeString, value)
		_node.DoiHash = &value
	}
	if value, ok := _c.mutation.ContributorEmail(); ok {
		_spec.SetField(triple.FieldContributorEmail, field.TypeString, value)
		_node.ContributorEmail = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(triple.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   triple.DocumentTable,
			Columns: []string{triple.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   triple.JobTable,
			Columns: []string{triple.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SentenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   triple.SentenceTable,
			Columns: []string{triple.SentenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SentenceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TripleCreateBulk is the builder for creating many Triple entities in bulk.
type TripleCreateBulk struct {
	config
	err      error
	builders []*TripleCreate
}

// Save creates the Triple entities in the database.
func (_c *TripleCreateBulk) Save(ctx context.Context) ([]*Triple, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Triple, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TripleMutation)
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
func (_c *TripleCreateBulk) SaveX(ctx context.Context) []*Triple {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TripleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TripleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
