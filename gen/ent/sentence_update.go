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
	"github.com/phenobase/trait-extractor/gen/ent/predicate"
	"github.com/phenobase/trait-extractor/gen/ent/sentence"
	"github.com/phenobase/trait-extractor/gen/ent/triple"
)

// SentenceUpdate is the builder for updating Sentence entities.
type SentenceUpdate struct {
	config
	hooks    []Hook
	mutation *SentenceMutation
}

// Where appends a list predicates to the SentenceUpdate builder.
func (_u *SentenceUpdate) Where(ps ...predicate.Sentence) *SentenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *SentenceUpdate) SetDocumentID(v int) *SentenceUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *SentenceUpdate) SetNillableDocumentID(v *int) *SentenceUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *SentenceUpdate) ClearDocumentID() *SentenceUpdate {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetText sets the "text" field.
func (_u *SentenceUpdate) SetText(v string) *SentenceUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SentenceUpdate) SetNillableText(v *string) *SentenceUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *SentenceUpdate) SetDocument(v *Document) *SentenceUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddTripleIDs adds the "triples" edge to the Triple entity by IDs.
func (_u *SentenceUpdate) AddTripleIDs(ids ...int) *SentenceUpdate {
	_u.mutation.AddTripleIDs(ids...)
	return _u
}

// AddTriples adds the "triples" edges to the Triple entity.
func (_u *SentenceUpdate) AddTriples(v ...*Triple) *SentenceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTripleIDs(ids...)
}

// Mutation returns the SentenceMutation object of the builder.
func (_u *SentenceUpdate) Mutation() *SentenceMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *SentenceUpdate) ClearDocument() *SentenceUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearTriples clears all "triples" edges to the Triple entity.
func (_u *SentenceUpdate) ClearTriples() *SentenceUpdate {
	_u.mutation.ClearTriples()
	return _u
}

// RemoveTripleIDs removes the "triples" edge to Triple entities by IDs.
func (_u *SentenceUpdate) RemoveTripleIDs(ids ...int) *SentenceUpdate {
	_u.mutation.RemoveTripleIDs(ids...)
	return _u
}

// RemoveTriples removes "triples" edges to Triple entities.
func (_u *SentenceUpdate) RemoveTriples(v ...*Triple) *SentenceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTripleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SentenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SentenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SentenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SentenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SentenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sentence.Table, sentence.Columns, sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(sentence.FieldText, field.TypeString, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sentence.DocumentTable,
			Columns: []string{sentence.DocumentColumn},
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
			Table:   sentence.DocumentTable,
			Columns: []string{sentence.DocumentColumn},
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
	if _u.mutation.TriplesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sentence.TriplesTable,
			Columns: []string{sentence.TriplesColumn},
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
			Table:   sentence.TriplesTable,
			Columns: []string{sentence.TriplesColumn},
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
			Table:   sentence.TriplesTable,
			Columns: []string{sentence.TriplesColumn},
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
			err = &NotFoundError{sentence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SentenceUpdateOne is the builder for updating a single Sentence entity.
type SentenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SentenceMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *SentenceUpdateOne) SetDocumentID(v int) *SentenceUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *SentenceUpdateOne) SetNillableDocumentID(v *int) *SentenceUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *SentenceUpdateOne) ClearDocumentID() *SentenceUpdateOne {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetText sets the "text" field.
func (_u *SentenceUpdateOne) SetText(v string) *SentenceUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SentenceUpdateOne) SetNillableText(v *string) *SentenceUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *SentenceUpdateOne) SetDocument(v *Document) *SentenceUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddTripleIDs adds the "triples" edge to the Triple entity by IDs.
func (_u *SentenceUpdateOne) AddTripleIDs(ids ...int) *SentenceUpdateOne {
	_u.mutation.AddTripleIDs(ids...)
	return _u
}

// AddTriples adds the "triples" edges to the Triple entity.
func (_u *SentenceUpdateOne) AddTriples(v ...*Triple) *SentenceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTripleIDs(ids...)
}

// Mutation returns the SentenceMutation object of the builder.
func (_u *SentenceUpdateOne) Mutation() *SentenceMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *SentenceUpdateOne) ClearDocument() *SentenceUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearTriples clears all "triples" edges to the Triple entity.
func (_u *SentenceUpdateOne) ClearTriples() *SentenceUpdateOne {
	_u.mutation.ClearTriples()
	return _u
}

// RemoveTripleIDs removes the "triples" edge to Triple entities by IDs.
func (_u *SentenceUpdateOne) RemoveTripleIDs(ids ...int) *SentenceUpdateOne {
	_u.mutation.RemoveTripleIDs(ids...)
	return _u
}

// RemoveTriples removes "triples" edges to Triple entities.
func (_u *SentenceUpdateOne) RemoveTriples(v ...*Triple) *SentenceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTripleIDs(ids...)
}

// Where appends a list predicates to the SentenceUpdate builder.
func (_u *SentenceUpdateOne) Where(ps ...predicate.Sentence) *SentenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SentenceUpdateOne) Select(field string, fields ...string) *SentenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sentence entity.
func (_u *SentenceUpdateOne) Save(ctx context.Context) (*Sentence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SentenceUpdateOne) SaveX(ctx context.Context) *Sentence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SentenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SentenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SentenceUpdateOne) sqlSave(ctx context.Context) (_node *Sentence, err error) {
	_spec := sqlgraph.NewUpdateSpec(sentence.Table, sentence.Columns, sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sentence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sentence.FieldID)
		for _, f := range fields {
			if !sentence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sentence.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(sentence.FieldText, field.TypeString, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sentence.DocumentTable,
			Columns: []string{sentence.DocumentColumn},
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
			Table:   sentence.DocumentTable,
			Columns: []string{sentence.DocumentColumn},
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
	if _u.mutation.TriplesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sentence.TriplesTable,
			Columns: []string{sentence.TriplesColumn},
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
			Table:   sentence.TriplesTable,
			Columns: []string{sentence.TriplesColumn},
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
			Table:   sentence.TriplesTable,
			Columns: []string{sentence.TriplesColumn},
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
	_node = &Sentence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sentence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
