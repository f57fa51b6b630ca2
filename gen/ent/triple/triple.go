// Code generated by ent, DO NOT EDIT.

package triple

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the triple type in the database.
	Label = "triple"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceEntityName holds the string denoting the source_entity_name field in the database.
	FieldSourceEntityName = "source_entity_name"
	// FieldSourceEntityAttr holds the string denoting the source_entity_attr field in the database.
	FieldSourceEntityAttr = "source_entity_attr"
	// FieldRelationType holds the string denoting the relation_type field in the database.
	FieldRelationType = "relation_type"
	// FieldSinkEntityName holds the string denoting the sink_entity_name field in the database.
	FieldSinkEntityName = "sink_entity_name"
	// FieldSinkEntityAttr holds the string denoting the sink_entity_attr field in the database.
	FieldSinkEntityAttr = "sink_entity_attr"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldModelProfile holds the string denoting the model_profile field in the database.
	FieldModelProfile = "model_profile"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTraitName holds the string denoting the trait_name field in the database.
	FieldTraitName = "trait_name"
	// FieldTraitValue holds the string denoting the trait_value field in the database.
	FieldTraitValue = "trait_value"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldSentenceID holds the string denoting the sentence_id field in the database.
	FieldSentenceID = "sentence_id"
	// FieldDoiHash holds the string denoting the doi_hash field in the database.
	FieldDoiHash = "doi_hash"
	// FieldContributorEmail holds the string denoting the contributor_email field in the database.
	FieldContributorEmail = "contributor_email"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeSentence holds the string denoting the sentence edge name in mutations.
	EdgeSentence = "sentence"
	// Table holds the table name of the triple in the database.
	Table = "triples"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "triples"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "triples"
	// JobInverseTable is the table name for the ExtractionJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractionjob" package.
	JobInverseTable = "extraction_job"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// SentenceTable is the table that holds the sentence relation/edge.
	SentenceTable = "triples"
	// SentenceInverseTable is the table name for the Sentence entity.
	// It exists in this package in order to avoid circular dependency with the "sentence" package.
	SentenceInverseTable = "sentences"
	// SentenceColumn is the table column denoting the sentence relation/edge.
	SentenceColumn = "sentence_id"
)

// Columns holds all SQL columns for triple fields.
var Columns = []string{
	FieldID,
	FieldSourceEntityName,
	FieldSourceEntityAttr,
	FieldRelationType,
	FieldSinkEntityName,
	FieldSinkEntityAttr,
	FieldConfidence,
	FieldModelProfile,
	FieldStatus,
	FieldTraitName,
	FieldTraitValue,
	FieldUnit,
	FieldProjectID,
	FieldDocumentID,
	FieldJobID,
	FieldSentenceID,
	FieldDoiHash,
	FieldContributorEmail,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SourceEntityNameValidator is a validator for the "source_entity_name" field. It is called by the builders before save.
	SourceEntityNameValidator func(string) error
	// SourceEntityAttrValidator is a validator for the "source_entity_attr" field. It is called by the builders before save.
	SourceEntityAttrValidator func(string) error
	// RelationTypeValidator is a validator for the "relation_type" field. It is called by the builders before save.
	RelationTypeValidator func(string) error
	// SinkEntityNameValidator is a validator for the "sink_entity_name" field. It is called by the builders before save.
	SinkEntityNameValidator func(string) error
	// SinkEntityAttrValidator is a validator for the "sink_entity_attr" field. It is called by the builders before save.
	SinkEntityAttrValidator func(string) error
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// ModelProfileValidator is a validator for the "model_profile" field. It is called by the builders before save.
	ModelProfileValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Triple queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceEntityName orders the results by the source_entity_name field.
func BySourceEntityName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceEntityName, opts...).ToFunc()
}

// BySourceEntityAttr orders the results by the source_entity_attr field.
func BySourceEntityAttr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceEntityAttr, opts...).ToFunc()
}

// ByRelationType orders the results by the relation_type field.
func ByRelationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationType, opts...).ToFunc()
}

// BySinkEntityName orders the results by the sink_entity_name field.
func BySinkEntityName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSinkEntityName, opts...).ToFunc()
}

// BySinkEntityAttr orders the results by the sink_entity_attr field.
func BySinkEntityAttr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSinkEntityAttr, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByModelProfile orders the results by the model_profile field.
func ByModelProfile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelProfile, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTraitName orders the results by the trait_name field.
func ByTraitName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraitName, opts...).ToFunc()
}

// ByTraitValue orders the results by the trait_value field.
func ByTraitValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraitValue, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// BySentenceID orders the results by the sentence_id field.
func BySentenceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentenceID, opts...).ToFunc()
}

// ByDoiHash orders the results by the doi_hash field.
func ByDoiHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoiHash, opts...).ToFunc()
}

// ByContributorEmail orders the results by the contributor_email field.
func ByContributorEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContributorEmail, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// BySentenceField orders the results by sentence field.
func BySentenceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSentenceStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newSentenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SentenceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SentenceTable, SentenceColumn),
	)
}
