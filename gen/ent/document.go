// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/phenobase/trait-extractor/gen/ent/document"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID *int `json:"project_id,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// TextContent holds the value of the "text_content" field.
	TextContent string `json:"text_content,omitempty"`
	// Doi holds the value of the "doi" field.
	Doi *string `json:"doi,omitempty"`
	// DoiHash holds the value of the "doi_hash" field.
	DoiHash *string `json:"doi_hash,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// JobDocuments holds the value of the job_documents edge.
	JobDocuments []*JobDocument `json:"job_documents,omitempty"`
	// Sentences holds the value of the sentences edge.
	Sentences []*Sentence `json:"sentences,omitempty"`
	// Triples holds the value of the triples edge.
	Triples []*Triple `json:"triples,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// JobDocumentsOrErr returns the JobDocuments value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) JobDocumentsOrErr() ([]*JobDocument, error) {
	if e.loadedTypes[0] {
		return e.JobDocuments, nil
	}
	return nil, &NotLoadedError{edge: "job_documents"}
}

// SentencesOrErr returns the Sentences value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) SentencesOrErr() ([]*Sentence, error) {
	if e.loadedTypes[1] {
		return e.Sentences, nil
	}
	return nil, &NotLoadedError{edge: "sentences"}
}

// TriplesOrErr returns the Triples value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) TriplesOrErr() ([]*Triple, error) {
	if e.loadedTypes[2] {
		return e.Triples, nil
	}
	return nil, &NotLoadedError{edge: "triples"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldID, document.FieldProjectID:
			values[i] = new(sql.NullInt64)
		case document.FieldFilePath, document.FieldTextContent, document.FieldDoi, document.FieldDoiHash, document.FieldStatus:
			values[i] = new(sql.NullString)
		case document.FieldCreatedAt, document.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case document.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = new(int)
				*_m.ProjectID = int(value.Int64)
			}
		case document.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case document.FieldTextContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_content", values[i])
			} else if value.Valid {
				_m.TextContent = value.String
			}
		case document.FieldDoi:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doi", values[i])
			} else if value.Valid {
				_m.Doi = new(string)
				*_m.Doi = value.String
			}
		case document.FieldDoiHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doi_hash", values[i])
			} else if value.Valid {
				_m.DoiHash = new(string)
				*_m.DoiHash = value.String
			}
		case document.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case document.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case document.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJobDocuments queries the "job_documents" edge of the Document entity.
func (_m *Document) QueryJobDocuments() *JobDocumentQuery {
	return NewDocumentClient(_m.config).QueryJobDocuments(_m)
}

// QuerySentences queries the "sentences" edge of the Document entity.
func (_m *Document) QuerySentences() *SentenceQuery {
	return NewDocumentClient(_m.config).QuerySentences(_m)
}

// QueryTriples queries the "triples" edge of the Document entity.
func (_m *Document) QueryTriples() *TripleQuery {
	return NewDocumentClient(_m.config).QueryTriples(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("text_content=")
	builder.WriteString(_m.TextContent)
	builder.WriteString(", ")
	if v := _m.Doi; v != nil {
		builder.WriteString("doi=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DoiHash; v != nil {
		builder.WriteString("doi_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
