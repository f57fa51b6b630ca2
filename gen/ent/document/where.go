// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/phenobase/trait-extractor/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProjectID, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilePath, v))
}

// TextContent applies equality check predicate on the "text_content" field. It's identical to TextContentEQ.
func TextContent(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTextContent, v))
}

// Doi applies equality check predicate on the "doi" field. It's identical to DoiEQ.
func Doi(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDoi, v))
}

// DoiHash applies equality check predicate on the "doi_hash" field. It's identical to DoiHashEQ.
func DoiHash(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDoiHash, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldProjectID))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilePath, v))
}

// TextContentEQ applies the EQ predicate on the "text_content" field.
func TextContentEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTextContent, v))
}

// TextContentNEQ applies the NEQ predicate on the "text_content" field.
func TextContentNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTextContent, v))
}

// TextContentIn applies the In predicate on the "text_content" field.
func TextContentIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTextContent, vs...))
}

// TextContentNotIn applies the NotIn predicate on the "text_content" field.
func TextContentNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTextContent, vs...))
}

// TextContentGT applies the GT predicate on the "text_content" field.
func TextContentGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTextContent, v))
}

// TextContentGTE applies the GTE predicate on the "text_content" field.
func TextContentGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTextContent, v))
}

// TextContentLT applies the LT predicate on the "text_content" field.
func TextContentLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTextContent, v))
}

// TextContentLTE applies the LTE predicate on the "text_content" field.
func TextContentLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTextContent, v))
}

// TextContentContains applies the Contains predicate on the "text_content" field.
func TextContentContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldTextContent, v))
}

// TextContentHasPrefix applies the HasPrefix predicate on the "text_content" field.
func TextContentHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldTextContent, v))
}

// TextContentHasSuffix applies the HasSuffix predicate on the "text_content" field.
func TextContentHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldTextContent, v))
}

// TextContentEqualFold applies the EqualFold predicate on the "text_content" field.
func TextContentEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldTextContent, v))
}

// TextContentContainsFold applies the ContainsFold predicate on the "text_content" field.
func TextContentContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldTextContent, v))
}

// DoiEQ applies the EQ predicate on the "doi" field.
func DoiEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDoi, v))
}

// DoiNEQ applies the NEQ predicate on the "doi" field.
func DoiNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDoi, v))
}

// DoiIn applies the In predicate on the "doi" field.
func DoiIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDoi, vs...))
}

// DoiNotIn applies the NotIn predicate on the "doi" field.
func DoiNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDoi, vs...))
}

// DoiGT applies the GT predicate on the "doi" field.
func DoiGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDoi, v))
}

// DoiGTE applies the GTE predicate on the "doi" field.
func DoiGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDoi, v))
}

// DoiLT applies the LT predicate on the "doi" field.
func DoiLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDoi, v))
}

// DoiLTE applies the LTE predicate on the "doi" field.
func DoiLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDoi, v))
}

// DoiContains applies the Contains predicate on the "doi" field.
func DoiContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDoi, v))
}

// DoiHasPrefix applies the HasPrefix predicate on the "doi" field.
func DoiHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDoi, v))
}

// DoiHasSuffix applies the HasSuffix predicate on the "doi" field.
func DoiHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDoi, v))
}

// DoiIsNil applies the IsNil predicate on the "doi" field.
func DoiIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDoi))
}

// DoiNotNil applies the NotNil predicate on the "doi" field.
func DoiNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDoi))
}

// DoiEqualFold applies the EqualFold predicate on the "doi" field.
func DoiEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDoi, v))
}

// DoiContainsFold applies the ContainsFold predicate on the "doi" field.
func DoiContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDoi, v))
}

// DoiHashEQ applies the EQ predicate on the "doi_hash" field.
func DoiHashEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDoiHash, v))
}

// DoiHashNEQ applies the NEQ predicate on the "doi_hash" field.
func DoiHashNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDoiHash, v))
}

// DoiHashIn applies the In predicate on the "doi_hash" field.
func DoiHashIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDoiHash, vs...))
}

// DoiHashNotIn applies the NotIn predicate on the "doi_hash" field.
func DoiHashNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDoiHash, vs...))
}

// DoiHashGT applies the GT predicate on the "doi_hash" field.
func DoiHashGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDoiHash, v))
}

// DoiHashGTE applies the GTE predicate on the "doi_hash" field.
func DoiHashGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDoiHash, v))
}

// DoiHashLT applies the LT predicate on the "doi_hash" field.
func DoiHashLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDoiHash, v))
}

// DoiHashLTE applies the LTE predicate on the "doi_hash" field.
func DoiHashLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDoiHash, v))
}

// DoiHashContains applies the Contains predicate on the "doi_hash" field.
func DoiHashContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDoiHash, v))
}

// DoiHashHasPrefix applies the HasPrefix predicate on the "doi_hash" field.
func DoiHashHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDoiHash, v))
}

// DoiHashHasSuffix applies the HasSuffix predicate on the "doi_hash" field.
func DoiHashHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDoiHash, v))
}

// DoiHashIsNil applies the IsNil predicate on the "doi_hash" field.
func DoiHashIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDoiHash))
}

// DoiHashNotNil applies the NotNil predicate on the "doi_hash" field.
func DoiHashNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDoiHash))
}

// DoiHashEqualFold applies the EqualFold predicate on the "doi_hash" field.
func DoiHashEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDoiHash, v))
}

// DoiHashContainsFold applies the ContainsFold predicate on the "doi_hash" field.
func DoiHashContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDoiHash, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJobDocuments applies the HasEdge predicate on the "job_documents" edge.
func HasJobDocuments() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobDocumentsTable, JobDocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobDocumentsWith applies the HasEdge predicate on the "job_documents" edge with a given conditions (other predicates).
func HasJobDocumentsWith(preds ...predicate.JobDocument) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newJobDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSentences applies the HasEdge predicate on the "sentences" edge.
func HasSentences() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SentencesTable, SentencesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSentencesWith applies the HasEdge predicate on the "sentences" edge with a given conditions (other predicates).
func HasSentencesWith(preds ...predicate.Sentence) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newSentencesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTriples applies the HasEdge predicate on the "triples" edge.
func HasTriples() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TriplesTable, TriplesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTriplesWith applies the HasEdge predicate on the "triples" edge with a given conditions (other predicates).
func HasTriplesWith(preds ...predicate.Triple) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newTriplesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
