// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractionJob is the predicate function for extractionjob builders.
type ExtractionJob func(*sql.Selector)

// JobDocument is the predicate function for jobdocument builders.
type JobDocument func(*sql.Selector)

// Sentence is the predicate function for sentence builders.
type Sentence func(*sql.Selector)

// TrainingRun is the predicate function for trainingrun builders.
type TrainingRun func(*sql.Selector)

// Triple is the predicate function for triple builders.
type Triple func(*sql.Selector)
