// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/phenobase/trait-extractor/gen/ent/document"
	"github.com/phenobase/trait-extractor/gen/ent/extractionjob"
	"github.com/phenobase/trait-extractor/gen/ent/sentence"
	"github.com/phenobase/trait-extractor/gen/ent/triple"
)

// Triple is the model entity for the Triple schema.
type Triple struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SourceEntityName holds the value of the "source_entity_name" field.
	SourceEntityName string `json:"source_entity_name,omitempty"`
	// SourceEntityAttr holds the value of the "source_entity_attr" field.
	SourceEntityAttr string `json:"source_entity_attr,omitempty"`
	// RelationType holds the value of the "relation_type" field.
	RelationType string `json:"relation_type,omitempty"`
	// SinkEntityName holds the value of the "sink_entity_name" field.
	SinkEntityName string `json:"sink_entity_name,omitempty"`
	// SinkEntityAttr holds the value of the "sink_entity_attr" field.
	SinkEntityAttr string `json:"sink_entity_attr,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// ModelProfile holds the value of the "model_profile" field.
	ModelProfile string `json:"model_profile,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// TraitName holds the value of the "trait_name" field.
	TraitName *string `json:"trait_name,omitempty"`
	// TraitValue holds the value of the "trait_value" field.
	TraitValue *string `json:"trait_value,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit *string `json:"unit,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID *int `json:"project_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID *int `json:"document_id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID *int `json:"job_id,omitempty"`
	// SentenceID holds the value of the "sentence_id" field.
	SentenceID int `json:"sentence_id,omitempty"`
	// DoiHash holds the value of the "doi_hash" field.
	DoiHash *string `json:"doi_hash,omitempty"`
	// ContributorEmail holds the value of the "contributor_email" field.
	ContributorEmail *string `json:"contributor_email,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TripleQuery when eager-loading is set.
	Edges        TripleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TripleEdges holds the relations/edges for other nodes in the graph.
type TripleEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// Job holds the value of the job edge.
	Job *ExtractionJob `json:"job,omitempty"`
	// Sentence holds the value of the sentence edge.
	Sentence *Sentence `json:"sentence,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TripleEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TripleEdges) JobOrErr() (*ExtractionJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: extractionjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// SentenceOrErr returns the Sentence value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TripleEdges) SentenceOrErr() (*Sentence, error) {
	if e.Sentence != nil {
		return e.Sentence, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: sentence.Label}
	}
	return nil, &NotLoadedError{edge: "sentence"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Triple) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case triple.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case triple.FieldID, triple.FieldProjectID, triple.FieldDocumentID, triple.FieldJobID, triple.FieldSentenceID:
			values[i] = new(sql.NullInt64)
		case triple.FieldSourceEntityName, triple.FieldSourceEntityAttr, triple.FieldRelationType, triple.FieldSinkEntityName, triple.FieldSinkEntityAttr, triple.FieldModelProfile, triple.FieldStatus, triple.FieldTraitName, triple.FieldTraitValue, triple.FieldUnit, triple.FieldDoiHash, triple.FieldContributorEmail:
			values[i] = new(sql.NullString)
		case triple.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Triple fields.
func (_m *Triple) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case triple.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case triple.FieldSourceEntityName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_entity_name", values[i])
			} else if value.Valid {
				_m.SourceEntityName = value.String
			}
		case triple.FieldSourceEntityAttr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_entity_attr", values[i])
			} else if value.Valid {
				_m.SourceEntityAttr = value.String
			}
		case triple.FieldRelationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relation_type", values[i])
			} else if value.Valid {
				_m.RelationType = value.String
			}
		case triple.FieldSinkEntityName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sink_entity_name", values[i])
			} else if value.Valid {
				_m.SinkEntityName = value.String
			}
		case triple.FieldSinkEntityAttr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sink_entity_attr", values[i])
			} else if value.Valid {
				_m.SinkEntityAttr = value.String
			}
		case triple.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case triple.FieldModelProfile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_profile", values[i])
			} else if value.Valid {
				_m.ModelProfile = value.String
			}
		case triple.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case triple.FieldTraitName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trait_name", values[i])
			} else if value.Valid {
				_m.TraitName = new(string)
				*_m.TraitName = value.String
			}
		case triple.FieldTraitValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trait_value", values[i])
			} else if value.Valid {
				_m.TraitValue = new(string)
				*_m.TraitValue = value.String
			}
		case triple.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = new(string)
				*_m.Unit = value.String
			}
		case triple.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = new(int)
				*_m.ProjectID = int(value.Int64)
			}
		case triple.FieldDocumentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = new(int)
				*_m.DocumentID = int(value.Int64)
			}
		case triple.FieldJobID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = new(int)
				*_m.JobID = int(value.Int64)
			}
		case triple.FieldSentenceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sentence_id", values[i])
			} else if value.Valid {
				_m.SentenceID = int(value.Int64)
			}
		case triple.FieldDoiHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doi_hash", values[i])
			} else if value.Valid {
				_m.DoiHash = new(string)
				*_m.DoiHash = value.String
			}
		case triple.FieldContributorEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contributor_email", values[i])
			} else if value.Valid {
				_m.ContributorEmail = new(string)
				*_m.ContributorEmail = value.String
			}
		case triple.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Triple.
// This includes values selected through modifiers, order, etc.
func (_m *Triple) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the Triple entity.
func (_m *Triple) QueryDocument() *DocumentQuery {
	return NewTripleClient(_m.config).QueryDocument(_m)
}

// QueryJob queries the "job" edge of the Triple entity.
func (_m *Triple) QueryJob() *ExtractionJobQuery {
	return NewTripleClient(_m.config).QueryJob(_m)
}

// QuerySentence queries the "sentence" edge of the Triple entity.
func (_m *Triple) QuerySentence() *SentenceQuery {
	return NewTripleClient(_m.config).QuerySentence(_m)
}

// Update returns a builder for updating this Triple.
// Note that you need to call Triple.Unwrap() before calling this method if this Triple
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Triple) Update() *TripleUpdateOne {
	return NewTripleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Triple entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Triple) Unwrap() *Triple {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Triple is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Triple) String() string {
	var builder strings.Builder
	builder.WriteString("Triple(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_entity_name=")
	builder.WriteString(_m.SourceEntityName)
	builder.WriteString(", ")
	builder.WriteString("source_entity_attr=")
	builder.WriteString(_m.SourceEntityAttr)
	builder.WriteString(", ")
	builder.WriteString("relation_type=")
	builder.WriteString(_m.RelationType)
	builder.WriteString(", ")
	builder.WriteString("sink_entity_name=")
	builder.WriteString(_m.SinkEntityName)
	builder.WriteString(", ")
	builder.WriteString("sink_entity_attr=")
	builder.WriteString(_m.SinkEntityAttr)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("model_profile=")
	builder.WriteString(_m.ModelProfile)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.TraitName; v != nil {
		builder.WriteString("trait_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TraitValue; v != nil {
		builder.WriteString("trait_value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Unit; v != nil {
		builder.WriteString("unit=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DocumentID; v != nil {
		builder.WriteString("document_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.JobID; v != nil {
		builder.WriteString("job_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("sentence_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentenceID))
	builder.WriteString(", ")
	if v := _m.DoiHash; v != nil {
		builder.WriteString("doi_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContributorEmail; v != nil {
		builder.WriteString("contributor_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Triples is a parsable slice of Triple.
type Triples []*Triple
