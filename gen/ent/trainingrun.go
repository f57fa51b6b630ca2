// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/phenobase/trait-extractor/gen/ent/trainingrun"
)

// TrainingRun is the model entity for the TrainingRun schema.
type TrainingRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ModelProfile holds the value of the "model_profile" field.
	ModelProfile string `json:"model_profile,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ArtifactPath holds the value of the "artifact_path" field.
	ArtifactPath *string `json:"artifact_path,omitempty"`
	// Metrics holds the value of the "metrics" field.
	Metrics json.RawMessage `json:"metrics,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrainingRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trainingrun.FieldMetrics:
			values[i] = new([]byte)
		case trainingrun.FieldID:
			values[i] = new(sql.NullInt64)
		case trainingrun.FieldModelProfile, trainingrun.FieldStatus, trainingrun.FieldArtifactPath, trainingrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case trainingrun.FieldCreatedAt, trainingrun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrainingRun fields.
func (_m *TrainingRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trainingrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case trainingrun.FieldModelProfile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_profile", values[i])
			} else if value.Valid {
				_m.ModelProfile = value.String
			}
		case trainingrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case trainingrun.FieldArtifactPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_path", values[i])
			} else if value.Valid {
				_m.ArtifactPath = new(string)
				*_m.ArtifactPath = value.String
			}
		case trainingrun.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case trainingrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case trainingrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case trainingrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrainingRun.
// This includes values selected through modifiers, order, etc.
func (_m *TrainingRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TrainingRun.
// Note that you need to call TrainingRun.Unwrap() before calling this method if this TrainingRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrainingRun) Update() *TrainingRunUpdateOne {
	return NewTrainingRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrainingRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrainingRun) Unwrap() *TrainingRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrainingRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrainingRun) String() string {
	var builder strings.Builder
	builder.WriteString("TrainingRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("model_profile=")
	builder.WriteString(_m.ModelProfile)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ArtifactPath; v != nil {
		builder.WriteString("artifact_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TrainingRuns is a parsable slice of TrainingRun.
type TrainingRuns []*TrainingRun
