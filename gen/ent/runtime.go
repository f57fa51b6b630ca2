// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/phenobase/trait-extractor/db/ent/schema"
	"github.com/phenobase/trait-extractor/gen/ent/document"
	"github.com/phenobase/trait-extractor/gen/ent/extractionjob"
	"github.com/phenobase/trait-extractor/gen/ent/jobdocument"
	"github.com/phenobase/trait-extractor/gen/ent/sentence"
	"github.com/phenobase/trait-extractor/gen/ent/trainingrun"
	"github.com/phenobase/trait-extractor/gen/ent/triple"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilePath is the schema descriptor for file_path field.
	documentDescFilePath := documentFields[1].Descriptor()
	// document.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	document.FilePathValidator = documentDescFilePath.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[5].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[6].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[7].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	extractionjobFields := schema.ExtractionJob{}.Fields()
	_ = extractionjobFields
	// extractionjobDescModelProfile is the schema descriptor for model_profile field.
	extractionjobDescModelProfile := extractionjobFields[1].Descriptor()
	// extractionjob.ModelProfileValidator is a validator for the "model_profile" field. It is called by the builders before save.
	extractionjob.ModelProfileValidator = extractionjobDescModelProfile.Validators[0].(func(string) error)
	// extractionjobDescMode is the schema descriptor for mode field.
	extractionjobDescMode := extractionjobFields[2].Descriptor()
	// extractionjob.DefaultMode holds the default value on creation for the mode field.
	extractionjob.DefaultMode = extractionjobDescMode.Default.(string)
	// extractionjob.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	extractionjob.ModeValidator = extractionjobDescMode.Validators[0].(func(string) error)
	// extractionjobDescStatus is the schema descriptor for status field.
	extractionjobDescStatus := extractionjobFields[3].Descriptor()
	// extractionjob.DefaultStatus holds the default value on creation for the status field.
	extractionjob.DefaultStatus = extractionjobDescStatus.Default.(string)
	// extractionjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionjob.StatusValidator = extractionjobDescStatus.Validators[0].(func(string) error)
	// extractionjobDescProgress is the schema descriptor for progress field.
	extractionjobDescProgress := extractionjobFields[4].Descriptor()
	// extractionjob.DefaultProgress holds the default value on creation for the progress field.
	extractionjob.DefaultProgress = extractionjobDescProgress.Default.(int)
	// extractionjob.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	extractionjob.ProgressValidator = extractionjobDescProgress.Validators[0].(func(int) error)
	// extractionjobDescTotal is the schema descriptor for total field.
	extractionjobDescTotal := extractionjobFields[5].Descriptor()
	// extractionjob.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	extractionjob.TotalValidator = extractionjobDescTotal.Validators[0].(func(int) error)
	// extractionjobDescCreatedAt is the schema descriptor for created_at field.
	extractionjobDescCreatedAt := extractionjobFields[9].Descriptor()
	// extractionjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionjob.DefaultCreatedAt = extractionjobDescCreatedAt.Default.(func() time.Time)
	jobdocumentFields := schema.JobDocument{}.Fields()
	_ = jobdocumentFields
	// jobdocumentDescPosition is the schema descriptor for position field.
	jobdocumentDescPosition := jobdocumentFields[2].Descriptor()
	// jobdocument.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	jobdocument.PositionValidator = jobdocumentDescPosition.Validators[0].(func(int) error)
	sentenceFields := schema.Sentence{}.Fields()
	_ = sentenceFields
	// sentenceDescCreatedAt is the schema descriptor for created_at field.
	sentenceDescCreatedAt := sentenceFields[2].Descriptor()
	// sentence.DefaultCreatedAt holds the default value on creation for the created_at field.
	sentence.DefaultCreatedAt = sentenceDescCreatedAt.Default.(func() time.Time)
	trainingrunFields := schema.TrainingRun{}.Fields()
	_ = trainingrunFields
	// trainingrunDescModelProfile is the schema descriptor for model_profile field.
	trainingrunDescModelProfile := trainingrunFields[0].Descriptor()
	// trainingrun.ModelProfileValidator is a validator for the "model_profile" field. It is called by the builders before save.
	trainingrun.ModelProfileValidator = trainingrunDescModelProfile.Validators[0].(func(string) error)
	// trainingrunDescStatus is the schema descriptor for status field.
	trainingrunDescStatus := trainingrunFields[1].Descriptor()
	// trainingrun.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	trainingrun.StatusValidator = trainingrunDescStatus.Validators[0].(func(string) error)
	// trainingrunDescCreatedAt is the schema descriptor for created_at field.
	trainingrunDescCreatedAt := trainingrunFields[5].Descriptor()
	// trainingrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	trainingrun.DefaultCreatedAt = trainingrunDescCreatedAt.Default.(func() time.Time)
	tripleFields := schema.Triple{}.Fields()
	_ = tripleFields
	// tripleDescSourceEntityName is the schema descriptor for source_entity_name field.
	tripleDescSourceEntityName := tripleFields[0].Descriptor()
	// triple.SourceEntityNameValidator is a validator for the "source_entity_name" field. It is called by the builders before save.
	triple.SourceEntityNameValidator = tripleDescSourceEntityName.Validators[0].(func(string) error)
	// tripleDescSourceEntityAttr is the schema descriptor for source_entity_attr field.
	tripleDescSourceEntityAttr := tripleFields[1].Descriptor()
	// triple.SourceEntityAttrValidator is a validator for the "source_entity_attr" field. It is called by the builders before save.
	triple.SourceEntityAttrValidator = tripleDescSourceEntityAttr.Validators[0].(func(string) error)
	// tripleDescRelationType is the schema descriptor for relation_type field.
	tripleDescRelationType := tripleFields[2].Descriptor()
	// triple.RelationTypeValidator is a validator for the "relation_type" field. It is called by the builders before save.
	triple.RelationTypeValidator = tripleDescRelationType.Validators[0].(func(string) error)
	// tripleDescSinkEntityName is the schema descriptor for sink_entity_name field.
	tripleDescSinkEntityName := tripleFields[3].Descriptor()
	// triple.SinkEntityNameValidator is a validator for the "sink_entity_name" field. It is called by the builders before save.
	triple.SinkEntityNameValidator = tripleDescSinkEntityName.Validators[0].(func(string) error)
	// tripleDescSinkEntityAttr is the schema descriptor for sink_entity_attr field.
	tripleDescSinkEntityAttr := tripleFields[4].Descriptor()
	// triple.SinkEntityAttrValidator is a validator for the "sink_entity_attr" field. It is called by the builders before save.
	triple.SinkEntityAttrValidator = tripleDescSinkEntityAttr.Validators[0].(func(string) error)
	// tripleDescConfidence is the schema descriptor for confidence field.
	tripleDescConfidence := tripleFields[5].Descriptor()
	// triple.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	triple.ConfidenceValidator = func() func(float64) error {
		validators := tripleDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tripleDescModelProfile is the schema descriptor for model_profile field.
	tripleDescModelProfile := tripleFields[6].Descriptor()
	// triple.ModelProfileValidator is a validator for the "model_profile" field. It is called by the builders before save.
	triple.ModelProfileValidator = tripleDescModelProfile.Validators[0].(func(string) error)
	// tripleDescStatus is the schema descriptor for status field.
	tripleDescStatus := tripleFields[7].Descriptor()
	// triple.DefaultStatus holds the default value on creation for the status field.
	triple.DefaultStatus = tripleDescStatus.Default.(string)
	// triple.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	triple.StatusValidator = tripleDescStatus.Validators[0].(func(string) error)
	// tripleDescCreatedAt is the schema descriptor for created_at field.
	tripleDescCreatedAt := tripleFields[17].Descriptor()
	// triple.DefaultCreatedAt holds the default value on creation for the created_at field.
	triple.DefaultCreatedAt = tripleDescCreatedAt.Default.(func() time.Time)
}
