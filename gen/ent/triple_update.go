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
	"github.com/phenobase/trait-extractor/gen/ent/predicate"
	"github.com/phenobase/trait-extractor/gen/ent/sentence"
	"github.com/phenobase/trait-extractor/gen/ent/triple"
)

// TripleUpdate is the builder for updating Triple entities.
type TripleUpdate struct {
	config
	hooks    []Hook
	mutation *TripleMutation
}

// Where appends a list predicates to the TripleUpdate builder.
func (_u *TripleUpdate) Where(ps ...predicate.Triple) *TripleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceEntityName sets the "source_entity_name" field.
func (_u *TripleUpdate) SetSourceEntityName(v string) *TripleUpdate {
	_u.mutation.SetSourceEntityName(v)
	return _u
}

// SetNillableSourceEntityName sets the "source_entity_name" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableSourceEntityName(v *string) *TripleUpdate {
	if v != nil {
		_u.SetSourceEntityName(*v)
	}
	return _u
}

// SetSourceEntityAttr sets the "source_entity_attr" field.
func (_u *TripleUpdate) SetSourceEntityAttr(v string) *TripleUpdate {
	_u.mutation.SetSourceEntityAttr(v)
	return _u
}

// SetNillableSourceEntityAttr sets the "source_entity_attr" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableSourceEntityAttr(v *string) *TripleUpdate {
	if v != nil {
		_u.SetSourceEntityAttr(*v)
	}
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *TripleUpdate) SetRelationType(v string) *TripleUpdate {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableRelationType(v *string) *TripleUpdate {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetSinkEntityName sets the "sink_entity_name" field.
func (_u *TripleUpdate) SetSinkEntityName(v string) *TripleUpdate {
	_u.mutation.SetSinkEntityName(v)
	return _u
}

// SetNillableSinkEntityName sets the "sink_entity_name" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableSinkEntityName(v *string) *TripleUpdate {
	if v != nil {
		_u.SetSinkEntityName(*v)
	}
	return _u
}

// SetSinkEntityAttr sets the "sink_entity_attr" field.
func (_u *TripleUpdate) SetSinkEntityAttr(v string) *TripleUpdate {
	_u.mutation.SetSinkEntityAttr(v)
	return _u
}

// SetNillableSinkEntityAttr sets the "sink_entity_attr" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableSinkEntityAttr(v *string) *TripleUpdate {
	if v != nil {
		_u.SetSinkEntityAttr(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TripleUpdate) SetConfidence(v float64) *TripleUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableConfidence(v *float64) *TripleUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TripleUpdate) AddConfidence(v float64) *TripleUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetModelProfile sets the "model_profile" field.
func (_u *TripleUpdate) SetModelProfile(v string) *TripleUpdate {
	_u.mutation.SetModelProfile(v)
	return _u
}

// SetNillableModelProfile sets the "model_profile" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableModelProfile(v *string) *TripleUpdate {
	if v != nil {
		_u.SetModelProfile(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TripleUpdate) SetStatus(v string) *TripleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableStatus(v *string) *TripleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTraitName sets the "trait_name" field.
func (_u *TripleUpdate) SetTraitName(v string) *TripleUpdate {
	_u.mutation.SetTraitName(v)
	return _u
}

// SetNillableTraitName sets the "trait_name" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableTraitName(v *string) *TripleUpdate {
	if v != nil {
		_u.SetTraitName(*v)
	}
	return _u
}

// ClearTraitName clears the value of the "trait_name" field.
func (_u *TripleUpdate) ClearTraitName() *TripleUpdate {
	_u.mutation.ClearTraitName()
	return _u
}

// SetTraitValue sets the "trait_value" field.
func (_u *TripleUpdate) SetTraitValue(v string) *TripleUpdate {
	_u.mutation.SetTraitValue(v)
	return _u
}

// SetNillableTraitValue sets the "trait_value" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableTraitValue(v *string) *TripleUpdate {
	if v != nil {
		_u.SetTraitValue(*v)
	}
	return _u
}

// ClearTraitValue clears the value of the "trait_value" field.
func (_u *TripleUpdate) ClearTraitValue() *TripleUpdate {
	_u.mutation.ClearTraitValue()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *TripleUpdate) SetUnit(v string) *TripleUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableUnit(v *string) *TripleUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *TripleUpdate) ClearUnit() *TripleUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TripleUpdate) SetProjectID(v int) *TripleUpdate {
	_u.mutation.ResetProjectID()
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableProjectID(v *int) *TripleUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// AddProjectID adds value to the "project_id" field.
func (_u *TripleUpdate) AddProjectID(v int) *TripleUpdate {
	_u.mutation.AddProjectID(v)
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TripleUpdate) ClearProjectID() *TripleUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *TripleUpdate) SetDocumentID(v int) *TripleUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableDocumentID(v *int) *TripleUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *TripleUpdate) ClearDocumentID() *TripleUpdate {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *TripleUpdate) SetJobID(v int) *TripleUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableJobID(v *int) *TripleUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *TripleUpdate) ClearJobID() *TripleUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetSentenceID sets the "sentence_id" field.
func (_u *TripleUpdate) SetSentenceID(v int) *TripleUpdate {
	_u.mutation.SetSentenceID(v)
	return _u
}

// SetNillableSentenceID sets the "sentence_id" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableSentenceID(v *int) *TripleUpdate {
	if v != nil {
		_u.SetSentenceID(*v)
	}
	return _u
}

// SetDoiHash sets the "doi_hash" field.
func (_u *TripleUpdate) SetDoiHash(v string) *TripleUpdate {
	_u.mutation.SetDoiHash(v)
	return _u
}

// SetNillableDoiHash sets the "doi_hash" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableDoiHash(v *string) *TripleUpdate {
	if v != nil {
		_u.SetDoiHash(*v)
	}
	return _u
}

// ClearDoiHash clears the value of the "doi_hash" field.
func (_u *TripleUpdate) ClearDoiHash() *TripleUpdate {
	_u.mutation.ClearDoiHash()
	return _u
}

// SetContributorEmail sets the "contributor_email" field.
func (_u *TripleUpdate) SetContributorEmail(v string) *TripleUpdate {
	_u.mutation.SetContributorEmail(v)
	return _u
}

// SetNillableContributorEmail sets the "contributor_email" field if the given value is not nil.
func (_u *TripleUpdate) SetNillableContributorEmail(v *string) *TripleUpdate {
	if v != nil {
		_u.SetContributorEmail(*v)
	}
	return _u
}

// ClearContributorEmail clears the value of the "contributor_email" field.
func (_u *TripleUpdate) ClearContributorEmail() *TripleUpdate {
	_u.mutation.ClearContributorEmail()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *TripleUpdate) SetDocument(v *Document) *TripleUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *TripleUpdate) SetJob(v *ExtractionJob) *TripleUpdate {
	return _u.SetJobID(v.ID)
}

// SetSentence sets the "sentence" edge to the Sentence entity.
func (_u *TripleUpdate) SetSentence(v *Sentence) *TripleUpdate {
	return _u.SetSentenceID(v.ID)
}

// Mutation returns the TripleMutation object of the builder.
func (_u *TripleUpdate) Mutation() *TripleMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *TripleUpdate) ClearDocument() *TripleUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *TripleUpdate) ClearJob() *TripleUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearSentence clears the "sentence" edge to the Sentence entity.
func (_u *TripleUpdate) ClearSentence() *TripleUpdate {
	_u.mutation.ClearSentence()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TripleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TripleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TripleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TripleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TripleUpdate) check() error {
	if v, ok := _u.mutation.SourceEntityName(); ok {
		if err := triple.SourceEntityNameValidator(v); err != nil {
			return &ValidationError{Name: "source_entity_name", err: fmt.Errorf(`ent: validator failed for field "Triple.source_entity_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceEntityAttr(); ok {
		if err := triple.SourceEntityAttrValidator(v); err != nil {
			return &ValidationError{Name: "source_entity_attr", err: fmt.Errorf(`ent: validator failed for field "Triple.source_entity_attr": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RelationType(); ok {
		if err := triple.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "Triple.relation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SinkEntityName(); ok {
		if err := triple.SinkEntityNameValidator(v); err != nil {
			return &ValidationError{Name: "sink_entity_name", err: fmt.Errorf(`ent: validator failed for field "Triple.sink_entity_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SinkEntityAttr(); ok {
		if err := triple.SinkEntityAttrValidator(v); err != nil {
			return &ValidationError{Name: "sink_entity_attr", err: fmt.Errorf(`ent: validator failed for field "Triple.sink_entity_attr": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := triple.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Triple.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelProfile(); ok {
		if err := triple.ModelProfileValidator(v); err != nil {
			return &ValidationError{Name: "model_profile", err: fmt.Errorf(`ent: validator failed for field "Triple.model_profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := triple.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Triple.status": %w`, err)}
		}
	}
	if _u.mutation.SentenceCleared() && len(_u.mutation.SentenceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Triple.sentence"`)
	}
	return nil
}

func (_u *TripleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triple.Table, triple.Columns, sqlgraph.NewFieldSpec(triple.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceEntityName(); ok {
		_spec.SetField(triple.FieldSourceEntityName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceEntityAttr(); ok {
		_spec.SetField(triple.FieldSourceEntityAttr, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(triple.FieldRelationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SinkEntityName(); ok {
		_spec.SetField(triple.FieldSinkEntityName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SinkEntityAttr(); ok {
		_spec.SetField(triple.FieldSinkEntityAttr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(triple.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(triple.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ModelProfile(); ok {
		_spec.SetField(triple.FieldModelProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(triple.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TraitName(); ok {
		_spec.SetField(triple.FieldTraitName, field.TypeString, value)
	}
	if _u.mutation.TraitNameCleared() {
		_spec.ClearField(triple.FieldTraitName, field.TypeString)
	}
	if value, ok := _u.mutation.TraitValue(); ok {
		_spec.SetField(triple.FieldTraitValue, field.TypeString, value)
	}
	if _u.mutation.TraitValueCleared() {
		_spec.ClearField(triple.FieldTraitValue, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(triple.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(triple.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(triple.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectID(); ok {
		_spec.AddField(triple.FieldProjectID, field.TypeInt, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(triple.FieldProjectID, field.TypeInt)
	}
	if value, ok := _u.mutation.DoiHash(); ok {
		_spec.SetField(triple.FieldDoiHash, field.TypeString, value)
	}
	if _u.mutation.DoiHashCleared() {
		_spec.ClearField(triple.FieldDoiHash, field.TypeString)
	}
	if value, ok := _u.mutation.ContributorEmail(); ok {
		_spec.SetField(triple.FieldContributorEmail, field.TypeString, value)
	}
	if _u.mutation.ContributorEmailCleared() {
		_spec.ClearField(triple.FieldContributorEmail, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SentenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SentenceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triple.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TripleUpdateOne is the builder for updating a single Triple entity.
type TripleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TripleMutation
}

// SetSourceEntityName sets the "source_entity_name" field.
func (_u *TripleUpdateOne) SetSourceEntityName(v string) *TripleUpdateOne {
	_u.mutation.SetSourceEntityName(v)
	return _u
}

// SetNillableSourceEntityName sets the "source_entity_name" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableSourceEntityName(v *string) *TripleUpdateOne {
	if v != nil {
		_u.SetSourceEntityName(*v)
	}
	return _u
}

// SetSourceEntityAttr sets the "source_entity_attr" field.
func (_u *TripleUpdateOne) SetSourceEntityAttr(v string) *TripleUpdateOne {
	_u.mutation.SetSourceEntityAttr(v)
	return _u
}

// SetNillableSourceEntityAttr sets the "source_entity_attr" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableSourceEntityAttr(v *string) *TripleUpdateOne {
	if v != nil {
		_u.SetSourceEntityAttr(*v)
	}
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *TripleUpdateOne) SetRelationType(v string) *TripleUpdateOne {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableRelationType(v *string) *TripleUpdateOne {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetSinkEntityName sets the "sink_entity_name" field.
func (_u *TripleUpdateOne) SetSinkEntityName(v string) *TripleUpdateOne {
	_u.mutation.SetSinkEntityName(v)
	return _u
}

// SetNillableSinkEntityName sets the "sink_entity_name" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableSinkEntityName(v *string) *TripleUpdateOne {
	if v != nil {
		_u.SetSinkEntityName(*v)
	}
	return _u
}

// SetSinkEntityAttr sets the "sink_entity_attr" field.
func (_u *TripleUpdateOne) SetSinkEntityAttr(v string) *TripleUpdateOne {
	_u.mutation.SetSinkEntityAttr(v)
	return _u
}

// SetNillableSinkEntityAttr sets the "sink_entity_attr" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableSinkEntityAttr(v *string) *TripleUpdateOne {
	if v != nil {
		_u.SetSinkEntityAttr(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TripleUpdateOne) SetConfidence(v float64) *TripleUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableConfidence(v *float64) *TripleUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TripleUpdateOne) AddConfidence(v float64) *TripleUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetModelProfile sets the "model_profile" field.
func (_u *TripleUpdateOne) SetModelProfile(v string) *TripleUpdateOne {
	_u.mutation.SetModelProfile(v)
	return _u
}

// SetNillableModelProfile sets the "model_profile" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableModelProfile(v *string) *TripleUpdateOne {
	if v != nil {
		_u.SetModelProfile(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TripleUpdateOne) SetStatus(v string) *TripleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableStatus(v *string) *TripleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTraitName sets the "trait_name" field.
func (_u *TripleUpdateOne) SetTraitName(v string) *TripleUpdateOne {
	_u.mutation.SetTraitName(v)
	return _u
}

// SetNillableTraitName sets the "trait_name" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableTraitName(v *string) *TripleUpdateOne {
	if v != nil {
		_u.SetTraitName(*v)
	}
	return _u
}

// ClearTraitName clears the value of the "trait_name" field.
func (_u *TripleUpdateOne) ClearTraitName() *TripleUpdateOne {
	_u.mutation.ClearTraitName()
	return _u
}

// SetTraitValue sets the "trait_value" field.
func (_u *TripleUpdateOne) SetTraitValue(v string) *TripleUpdateOne {
	_u.mutation.SetTraitValue(v)
	return _u
}

// SetNillableTraitValue sets the "trait_value" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableTraitValue(v *string) *TripleUpdateOne {
	if v != nil {
		_u.SetTraitValue(*v)
	}
	return _u
}

// ClearTraitValue clears the value of the "trait_value" field.
func (_u *TripleUpdateOne) ClearTraitValue() *TripleUpdateOne {
	_u.mutation.ClearTraitValue()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *TripleUpdateOne) SetUnit(v string) *TripleUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableUnit(v *string) *TripleUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *TripleUpdateOne) ClearUnit() *TripleUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TripleUpdateOne) SetProjectID(v int) *TripleUpdateOne {
	_u.mutation.ResetProjectID()
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableProjectID(v *int) *TripleUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// AddProjectID adds value to the "project_id" field.
func (_u *TripleUpdateOne) AddProjectID(v int) *TripleUpdateOne {
	_u.mutation.AddProjectID(v)
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TripleUpdateOne) ClearProjectID() *TripleUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *TripleUpdateOne) SetDocumentID(v int) *TripleUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableDocumentID(v *int) *TripleUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *TripleUpdateOne) ClearDocumentID() *TripleUpdateOne {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *TripleUpdateOne) SetJobID(v int) *TripleUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableJobID(v *int) *TripleUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *TripleUpdateOne) ClearJobID() *TripleUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetSentenceID sets the "sentence_id" field.
func (_u *TripleUpdateOne) SetSentenceID(v int) *TripleUpdateOne {
	_u.mutation.SetSentenceID(v)
	return _u
}

// SetNillableSentenceID sets the "sentence_id" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableSentenceID(v *int) *TripleUpdateOne {
	if v != nil {
		_u.SetSentenceID(*v)
	}
	return _u
}

// SetDoiHash sets the "doi_hash" field.
func (_u *TripleUpdateOne) SetDoiHash(v string) *TripleUpdateOne {
	_u.mutation.SetDoiHash(v)
	return _u
}

// SetNillableDoiHash sets the "doi_hash" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableDoiHash(v *string) *TripleUpdateOne {
	if v != nil {
		_u.SetDoiHash(*v)
	}
	return _u
}

// ClearDoiHash clears the value of the "doi_hash" field.
func (_u *TripleUpdateOne) ClearDoiHash() *TripleUpdateOne {
	_u.mutation.ClearDoiHash()
	return _u
}

// SetContributorEmail sets the "contributor_email" field.
func (_u *TripleUpdateOne) SetContributorEmail(v string) *TripleUpdateOne {
	_u.mutation.SetContributorEmail(v)
	return _u
}

// SetNillableContributorEmail sets the "contributor_email" field if the given value is not nil.
func (_u *TripleUpdateOne) SetNillableContributorEmail(v *string) *TripleUpdateOne {
	if v != nil {
		_u.SetContributorEmail(*v)
	}
	return _u
}

// ClearContributorEmail clears the value of the "contributor_email" field.
func (_u *TripleUpdateOne) ClearContributorEmail() *TripleUpdateOne {
	_u.mutation.ClearContributorEmail()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *TripleUpdateOne) SetDocument(v *Document) *TripleUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *TripleUpdateOne) SetJob(v *ExtractionJob) *TripleUpdateOne {
	return _u.SetJobID(v.ID)
}

// SetSentence sets the "sentence" edge to the Sentence entity.
func (_u *TripleUpdateOne) SetSentence(v *Sentence) *TripleUpdateOne {
	return _u.SetSentenceID(v.ID)
}

// Mutation returns the TripleMutation object of the builder.
func (_u *TripleUpdateOne) Mutation() *TripleMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *TripleUpdateOne) ClearDocument() *TripleUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *TripleUpdateOne) ClearJob() *TripleUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearSentence clears the "sentence" edge to the Sentence entity.
func (_u *TripleUpdateOne) ClearSentence() *TripleUpdateOne {
	_u.mutation.ClearSentence()
	return _u
}

// Where appends a list predicates to the TripleUpdate builder.
func (_u *TripleUpdateOne) Where(ps ...predicate.Triple) *TripleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TripleUpdateOne) Select(field string, fields ...string) *TripleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Triple entity.
func (_u *TripleUpdateOne) Save(ctx context.Context) (*Triple, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TripleUpdateOne) SaveX(ctx context.Context) *Triple {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TripleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TripleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TripleUpdateOne) check() error {
	if v, ok := _u.mutation.SourceEntityName(); ok {
		if err := triple.SourceEntityNameValidator(v); err != nil {
			return &ValidationError{Name: "source_entity_name", err: fmt.Errorf(`ent: validator failed for field "Triple.source_entity_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceEntityAttr(); ok {
		if err := triple.SourceEntityAttrValidator(v); err != nil {
			return &ValidationError{Name: "source_entity_attr", err: fmt.Errorf(`ent: validator failed for field "Triple.source_entity_attr": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RelationType(); ok {
		if err := triple.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "Triple.relation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SinkEntityName(); ok {
		if err := triple.SinkEntityNameValidator(v); err != nil {
			return &ValidationError{Name: "sink_entity_name", err: fmt.Errorf(`ent: validator failed for field "Triple.sink_entity_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SinkEntityAttr(); ok {
		if err := triple.SinkEntityAttrValidator(v); err != nil {
			return &ValidationError{Name: "sink_entity_attr", err: fmt.Errorf(`ent: validator failed for field "Triple.sink_entity_attr": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := triple.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Triple.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelProfile(); ok {
		if err := triple.ModelProfileValidator(v); err != nil {
			return &ValidationError{Name: "model_profile", err: fmt.Errorf(`ent: validator failed for field "Triple.model_profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := triple.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Triple.status": %w`, err)}
		}
	}
	if _u.mutation.SentenceCleared() && len(_u.mutation.SentenceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Triple.sentence"`)
	}
	return nil
}

func (_u *TripleUpdateOne) sqlSave(ctx context.Context) (_node *Triple, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triple.Table, triple.Columns, sqlgraph.NewFieldSpec(triple.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Triple.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, triple.FieldID)
		for _, f := range fields {
			if !triple.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != triple.FieldID {
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
	if value, ok := _u.mutation.SourceEntityName(); ok {
		_spec.SetField(triple.FieldSourceEntityName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceEntityAttr(); ok {
		_spec.SetField(triple.FieldSourceEntityAttr, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(triple.FieldRelationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SinkEntityName(); ok {
		_spec.SetField(triple.FieldSinkEntityName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SinkEntityAttr(); ok {
		_spec.SetField(triple.FieldSinkEntityAttr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(triple.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(triple.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ModelProfile(); ok {
		_spec.SetField(triple.FieldModelProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(triple.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TraitName(); ok {
		_spec.SetField(triple.FieldTraitName, field.TypeString, value)
	}
	if _u.mutation.TraitNameCleared() {
		_spec.ClearField(triple.FieldTraitName, field.TypeString)
	}
	if value, ok := _u.mutation.TraitValue(); ok {
		_spec.SetField(triple.FieldTraitValue, field.TypeString, value)
	}
	if _u.mutation.TraitValueCleared() {
		_spec.ClearField(triple.FieldTraitValue, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(triple.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(triple.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(triple.FieldProjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectID(); ok {
		_spec.AddField(triple.FieldProjectID, field.TypeInt, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(triple.FieldProjectID, field.TypeInt)
	}
	if value, ok := _u.mutation.DoiHash(); ok {
		_spec.SetField(triple.FieldDoiHash, field.TypeString, value)
	}
	if _u.mutation.DoiHashCleared() {
		_spec.ClearField(triple.FieldDoiHash, field.TypeString)
	}
	if value, ok := _u.mutation.ContributorEmail(); ok {
		_spec.SetField(triple.FieldContributorEmail, field.TypeString, value)
	}
	if _u.mutation.ContributorEmailCleared() {
		_spec.ClearField(triple.FieldContributorEmail, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SentenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SentenceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Triple{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triple.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
