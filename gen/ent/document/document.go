// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldTextContent holds the string denoting the text_content field in the database.
	FieldTextContent = "text_content"
	// FieldDoi holds the string denoting the doi field in the database.
	FieldDoi = "doi"
	// FieldDoiHash holds the string denoting the doi_hash field in the database.
	FieldDoiHash = "doi_hash"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeJobDocuments holds the string denoting the job_documents edge name in mutations.
	EdgeJobDocuments = "job_documents"
	// EdgeSentences holds the string denoting the sentences edge name in mutations.
	EdgeSentences = "sentences"
	// EdgeTriples holds the string denoting the triples edge name in mutations.
	EdgeTriples = "triples"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// JobDocumentsTable is the table that holds the job_documents relation/edge.
	JobDocumentsTable = "job_document"
	// JobDocumentsInverseTable is the table name for the JobDocument entity.
	// It exists in this package in order to avoid circular dependency with the "jobdocument" package.
	JobDocumentsInverseTable = "job_document"
	// JobDocumentsColumn is the table column denoting the job_documents relation/edge.
	JobDocumentsColumn = "document_id"
	// SentencesTable is the table that holds the sentences relation/edge.
	SentencesTable = "sentences"
	// SentencesInverseTable is the table name for the Sentence entity.
	// It exists in this package in order to avoid circular dependency with the "sentence" package.
	SentencesInverseTable = "sentences"
	// SentencesColumn is the table column denoting the sentences relation/edge.
	SentencesColumn = "document_id"
	// TriplesTable is the table that holds the triples relation/edge.
	TriplesTable = "triples"
	// TriplesInverseTable is the table name for the Triple entity.
	// It exists in this package in order to avoid circular dependency with the "triple" package.
	TriplesInverseTable = "triples"
	// TriplesColumn is the table column denoting the triples relation/edge.
	TriplesColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldFilePath,
	FieldTextContent,
	FieldDoi,
	FieldDoiHash,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	FilePathValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByTextContent orders the results by the text_content field.
func ByTextContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextContent, opts...).ToFunc()
}

// ByDoi orders the results by the doi field.
func ByDoi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoi, opts...).ToFunc()
}

// ByDoiHash orders the results by the doi_hash field.
func ByDoiHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoiHash, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobDocumentsCount orders the results by job_documents count.
func ByJobDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobDocumentsStep(), opts...)
	}
}

// ByJobDocuments orders the results by job_documents terms.
func ByJobDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySentencesCount orders the results by sentences count.
func BySentencesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSentencesStep(), opts...)
	}
}

// BySentences orders the results by sentences terms.
func BySentences(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSentencesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTriplesCount orders the results by triples count.
func ByTriplesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTriplesStep(), opts...)
	}
}

// ByTriples orders the results by triples terms.
func ByTriples(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTriplesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobDocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobDocumentsTable, JobDocumentsColumn),
	)
}
func newSentencesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SentencesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SentencesTable, SentencesColumn),
	)
}
func newTriplesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TriplesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TriplesTable, TriplesColumn),
	)
}
