// Code generated by ent, DO NOT EDIT.

package trainingrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/phenobase/trait-extractor/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldID, id))
}

// ModelProfile applies equality check predicate on the "model_profile" field. It's identical to ModelProfileEQ.
func ModelProfile(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldModelProfile, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldStatus, v))
}

// ArtifactPath applies equality check predicate on the "artifact_path" field. It's identical to ArtifactPathEQ.
func ArtifactPath(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldArtifactPath, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldCompletedAt, v))
}

// ModelProfileEQ applies the EQ predicate on the "model_profile" field.
func ModelProfileEQ(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldModelProfile, v))
}

// ModelProfileNEQ applies the NEQ predicate on the "model_profile" field.
func ModelProfileNEQ(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldModelProfile, v))
}

// ModelProfileIn applies the In predicate on the "model_profile" field.
func ModelProfileIn(vs ...string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldModelProfile, vs...))
}

// ModelProfileNotIn applies the NotIn predicate on the "model_profile" field.
func ModelProfileNotIn(vs ...string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldModelProfile, vs...))
}

// ModelProfileGT applies the GT predicate on the "model_profile" field.
func ModelProfileGT(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldModelProfile, v))
}

// ModelProfileGTE applies the GTE predicate on the "model_profile" field.
func ModelProfileGTE(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldModelProfile, v))
}

// ModelProfileLT applies the LT predicate on the "model_profile" field.
func ModelProfileLT(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldModelProfile, v))
}

// ModelProfileLTE applies the LTE predicate on the "model_profile" field.
func ModelProfileLTE(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldModelProfile, v))
}

// ModelProfileContains applies the Contains predicate on the "model_profile" field.
func ModelProfileContains(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldContains(FieldModelProfile, v))
}

// ModelProfileHasPrefix applies the HasPrefix predicate on the "model_profile" field.
func ModelProfileHasPrefix(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldHasPrefix(FieldModelProfile, v))
}

// ModelProfileHasSuffix applies the HasSuffix predicate on the "model_profile" field.
func ModelProfileHasSuffix(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldHasSuffix(FieldModelProfile, v))
}

// ModelProfileEqualFold applies the EqualFold predicate on the "model_profile" field.
func ModelProfileEqualFold(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEqualFold(FieldModelProfile, v))
}

// ModelProfileContainsFold applies the ContainsFold predicate on the "model_profile" field.
func ModelProfileContainsFold(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldContainsFold(FieldModelProfile, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldContainsFold(FieldStatus, v))
}

// ArtifactPathEQ applies the EQ predicate on the "artifact_path" field.
func ArtifactPathEQ(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldArtifactPath, v))
}

// ArtifactPathNEQ applies the NEQ predicate on the "artifact_path" field.
func ArtifactPathNEQ(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldArtifactPath, v))
}

// ArtifactPathIn applies the In predicate on the "artifact_path" field.
func ArtifactPathIn(vs ...string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldArtifactPath, vs...))
}

// ArtifactPathNotIn applies the NotIn predicate on the "artifact_path" field.
func ArtifactPathNotIn(vs ...string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldArtifactPath, vs...))
}

// ArtifactPathGT applies the GT predicate on the "artifact_path" field.
func ArtifactPathGT(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldArtifactPath, v))
}

// ArtifactPathGTE applies the GTE predicate on the "artifact_path" field.
func ArtifactPathGTE(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldArtifactPath, v))
}

// ArtifactPathLT applies the LT predicate on the "artifact_path" field.
func ArtifactPathLT(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldArtifactPath, v))
}

// ArtifactPathLTE applies the LTE predicate on the "artifact_path" field.
func ArtifactPathLTE(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldArtifactPath, v))
}

// ArtifactPathContains applies the Contains predicate on the "artifact_path" field.
func ArtifactPathContains(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldContains(FieldArtifactPath, v))
}

// ArtifactPathHasPrefix applies the HasPrefix predicate on the "artifact_path" field.
func ArtifactPathHasPrefix(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldHasPrefix(FieldArtifactPath, v))
}

// ArtifactPathHasSuffix applies the HasSuffix predicate on the "artifact_path" field.
func ArtifactPathHasSuffix(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldHasSuffix(FieldArtifactPath, v))
}

// ArtifactPathIsNil applies the IsNil predicate on the "artifact_path" field.
func ArtifactPathIsNil() predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIsNull(FieldArtifactPath))
}

// ArtifactPathNotNil applies the NotNil predicate on the "artifact_path" field.
func ArtifactPathNotNil() predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotNull(FieldArtifactPath))
}

// ArtifactPathEqualFold applies the EqualFold predicate on the "artifact_path" field.
func ArtifactPathEqualFold(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEqualFold(FieldArtifactPath, v))
}

// ArtifactPathContainsFold applies the ContainsFold predicate on the "artifact_path" field.
func ArtifactPathContainsFold(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldContainsFold(FieldArtifactPath, v))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotNull(FieldMetrics))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrainingRun) predicate.TrainingRun {
	return predicate.TrainingRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrainingRun) predicate.TrainingRun {
	return predicate.TrainingRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrainingRun) predicate.TrainingRun {
	return predicate.TrainingRun(sql.NotPredicates(p))
}
