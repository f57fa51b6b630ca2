// Code generated by ent, DO NOT EDIT.

package extractionjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the extractionjob type in the database.
	Label = "extraction_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldModelProfile holds the string denoting the model_profile field in the database.
	FieldModelProfile = "model_profile"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldTotalTriples holds the string denoting the total_triples field in the database.
	FieldTotalTriples = "total_triples"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeJobDocuments holds the string denoting the job_documents edge name in mutations.
	EdgeJobDocuments = "job_documents"
	// EdgeTriples holds the string denoting the triples edge name in mutations.
	EdgeTriples = "triples"
	// Table holds the table name of the extractionjob in the database.
	Table = "extraction_job"
	// JobDocumentsTable is the table that holds the job_documents relation/edge.
	JobDocumentsTable = "job_document"
	// JobDocumentsInverseTable is the table name for the JobDocument entity.
	// It exists in this package in order to avoid circular dependency with the "jobdocument" package.
	JobDocumentsInverseTable = "job_document"
	// JobDocumentsColumn is the table column denoting the job_documents relation/edge.
	JobDocumentsColumn = "job_id"
	// TriplesTable is the table that holds the triples relation/edge.
	TriplesTable = "triples"
	// TriplesInverseTable is the table name for the Triple entity.
	// It exists in this package in order to avoid circular dependency with the "triple" package.
	TriplesInverseTable = "triples"
	// TriplesColumn is the table column denoting the triples relation/edge.
	TriplesColumn = "job_id"
)

// Columns holds all SQL columns for extractionjob fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldModelProfile,
	FieldMode,
	FieldStatus,
	FieldProgress,
	FieldTotal,
	FieldErrorMessage,
	FieldTotalTriples,
	FieldCreatedBy,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
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
	// ModelProfileValidator is a validator for the "model_profile" field. It is called by the builders before save.
	ModelProfileValidator func(string) error
	// DefaultMode holds the default value on creation for the "mode" field.
	DefaultMode string
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int
	// ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	ProgressValidator func(int) error
	// TotalValidator is a validator for the "total" field. It is called by the builders before save.
	TotalValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExtractionJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByModelProfile orders the results by the model_profile field.
func ByModelProfile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelProfile, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByTotalTriples orders the results by the total_triples field.
func ByTotalTriples(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTriples, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
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
func newTriplesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TriplesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TriplesTable, TriplesColumn),
	)
}
