// Code generated by ent, DO NOT EDIT.

package triple

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/phenobase/trait-extractor/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldID, id))
}

// SourceEntityName applies equality check predicate on the "source_entity_name" field. It's identical to SourceEntityNameEQ.
func SourceEntityName(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldSourceEntityName, v))
}

// SourceEntityAttr applies equality check predicate on the "source_entity_attr" field. It's identical to SourceEntityAttrEQ.
func SourceEntityAttr(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldSourceEntityAttr, v))
}

// RelationType applies equality check predicate on the "relation_type" field. It's identical to RelationTypeEQ.
func RelationType(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldRelationType, v))
}

// SinkEntityName applies equality check predicate on the "sink_entity_name" field. It's identical to SinkEntityNameEQ.
func SinkEntityName(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldSinkEntityName, v))
}

// SinkEntityAttr applies equality check predicate on the "sink_entity_attr" field. It's identical to SinkEntityAttrEQ.
func SinkEntityAttr(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldSinkEntityAttr, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldConfidence, v))
}

// ModelProfile applies equality check predicate on the "model_profile" field. It's identical to ModelProfileEQ.
func ModelProfile(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldModelProfile, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldStatus, v))
}

// TraitName applies equality check predicate on the "trait_name" field. It's identical to TraitNameEQ.
func TraitName(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldTraitName, v))
}

// TraitValue applies equality check predicate on the "trait_value" field. It's identical to TraitValueEQ.
func TraitValue(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldTraitValue, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldUnit, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldProjectID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v int) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldDocumentID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v int) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldJobID, v))
}

// SentenceID applies equality check predicate on the "sentence_id" field. It's identical to SentenceIDEQ.
func SentenceID(v int) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldSentenceID, v))
}

// DoiHash applies equality check predicate on the "doi_hash" field. It's identical to DoiHashEQ.
func DoiHash(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldDoiHash, v))
}

// ContributorEmail applies equality check predicate on the "contributor_email" field. It's identical to ContributorEmailEQ.
func ContributorEmail(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldContributorEmail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceEntityNameEQ applies the EQ predicate on the "source_entity_name" field.
func SourceEntityNameEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldSourceEntityName, v))
}

// SourceEntityNameNEQ applies the NEQ predicate on the "source_entity_name" field.
func SourceEntityNameNEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldSourceEntityName, v))
}

// SourceEntityNameIn applies the In predicate on the "source_entity_name" field.
func SourceEntityNameIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldSourceEntityName, vs...))
}

// SourceEntityNameNotIn applies the NotIn predicate on the "source_entity_name" field.
func SourceEntityNameNotIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldSourceEntityName, vs...))
}

// SourceEntityNameGT applies the GT predicate on the "source_entity_name" field.
func SourceEntityNameGT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldSourceEntityName, v))
}

// SourceEntityNameGTE applies the GTE predicate on the "source_entity_name" field.
func SourceEntityNameGTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldSourceEntityName, v))
}

// SourceEntityNameLT applies the LT predicate on the "source_entity_name" field.
func SourceEntityNameLT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldSourceEntityName, v))
}

// SourceEntityNameLTE applies the LTE predicate on the "source_entity_name" field.
func SourceEntityNameLTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldSourceEntityName, v))
}

// SourceEntityNameContains applies the Contains predicate on the "source_entity_name" field.
func SourceEntityNameContains(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContains(FieldSourceEntityName, v))
}

// SourceEntityNameHasPrefix applies the HasPrefix predicate on the "source_entity_name" field.
func SourceEntityNameHasPrefix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasPrefix(FieldSourceEntityName, v))
}

// SourceEntityNameHasSuffix applies the HasSuffix predicate on the "source_entity_name" field.
func SourceEntityNameHasSuffix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasSuffix(FieldSourceEntityName, v))
}

// SourceEntityNameEqualFold applies the EqualFold predicate on the "source_entity_name" field.
func SourceEntityNameEqualFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEqualFold(FieldSourceEntityName, v))
}

// SourceEntityNameContainsFold applies the ContainsFold predicate on the "source_entity_name" field.
func SourceEntityNameContainsFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContainsFold(FieldSourceEntityName, v))
}

// SourceEntityAttrEQ applies the EQ predicate on the "source_entity_attr" field.
func SourceEntityAttrEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldSourceEntityAttr, v))
}

// SourceEntityAttrNEQ applies the NEQ predicate on the "source_entity_attr" field.
func SourceEntityAttrNEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldSourceEntityAttr, v))
}

// SourceEntityAttrIn applies the In predicate on the "source_entity_attr" field.
func SourceEntityAttrIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldSourceEntityAttr, vs...))
}

// SourceEntityAttrNotIn applies the NotIn predicate on the "source_entity_attr" field.
func SourceEntityAttrNotIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldSourceEntityAttr, vs...))
}

// SourceEntityAttrGT applies the GT predicate on the "source_entity_attr" field.
func SourceEntityAttrGT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldSourceEntityAttr, v))
}

// SourceEntityAttrGTE applies the GTE predicate on the "source_entity_attr" field.
func SourceEntityAttrGTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldSourceEntityAttr, v))
}

// SourceEntityAttrLT applies the LT predicate on the "source_entity_attr" field.
func SourceEntityAttrLT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldSourceEntityAttr, v))
}

// SourceEntityAttrLTE applies the LTE predicate on the "source_entity_attr" field.
func SourceEntityAttrLTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldSourceEntityAttr, v))
}

// SourceEntityAttrContains applies the Contains predicate on the "source_entity_attr" field.
func SourceEntityAttrContains(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContains(FieldSourceEntityAttr, v))
}

// SourceEntityAttrHasPrefix applies the HasPrefix predicate on the "source_entity_attr" field.
func SourceEntityAttrHasPrefix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasPrefix(FieldSourceEntityAttr, v))
}

// SourceEntityAttrHasSuffix applies the HasSuffix predicate on the "source_entity_attr" field.
func SourceEntityAttrHasSuffix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasSuffix(FieldSourceEntityAttr, v))
}

// SourceEntityAttrEqualFold applies the EqualFold predicate on the "source_entity_attr" field.
func SourceEntityAttrEqualFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEqualFold(FieldSourceEntityAttr, v))
}

// SourceEntityAttrContainsFold applies the ContainsFold predicate on the "source_entity_attr" field.
func SourceEntityAttrContainsFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContainsFold(FieldSourceEntityAttr, v))
}

// RelationTypeEQ applies the EQ predicate on the "relation_type" field.
func RelationTypeEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldRelationType, v))
}

// RelationTypeNEQ applies the NEQ predicate on the "relation_type" field.
func RelationTypeNEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldRelationType, v))
}

// RelationTypeIn applies the In predicate on the "relation_type" field.
func RelationTypeIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldRelationType, vs...))
}

// RelationTypeNotIn applies the NotIn predicate on the "relation_type" field.
func RelationTypeNotIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldRelationType, vs...))
}

// RelationTypeGT applies the GT predicate on the "relation_type" field.
func RelationTypeGT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldRelationType, v))
}

// RelationTypeGTE applies the GTE predicate on the "relation_type" field.
func RelationTypeGTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldRelationType, v))
}

// RelationTypeLT applies the LT predicate on the "relation_type" field.
func RelationTypeLT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldRelationType, v))
}

// RelationTypeLTE applies the LTE predicate on the "relation_type" field.
func RelationTypeLTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldRelationType, v))
}

// RelationTypeContains applies the Contains predicate on the "relation_type" field.
func RelationTypeContains(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContains(FieldRelationType, v))
}

// RelationTypeHasPrefix applies the HasPrefix predicate on the "relation_type" field.
func RelationTypeHasPrefix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasPrefix(FieldRelationType, v))
}

// RelationTypeHasSuffix applies the HasSuffix predicate on the "relation_type" field.
func RelationTypeHasSuffix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasSuffix(FieldRelationType, v))
}

// RelationTypeEqualFold applies the EqualFold predicate on the "relation_type" field.
func RelationTypeEqualFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEqualFold(FieldRelationType, v))
}

// RelationTypeContainsFold applies the ContainsFold predicate on the "relation_type" field.
func RelationTypeContainsFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContainsFold(FieldRelationType, v))
}

// SinkEntityNameEQ applies the EQ predicate on the "sink_entity_name" field.
func SinkEntityNameEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldSinkEntityName, v))
}

// SinkEntityNameNEQ applies the NEQ predicate on the "sink_entity_name" field.
func SinkEntityNameNEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldSinkEntityName, v))
}

// SinkEntityNameIn applies the In predicate on the "sink_entity_name" field.
func SinkEntityNameIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldSinkEntityName, vs...))
}

// SinkEntityNameNotIn applies the NotIn predicate on the "sink_entity_name" field.
func SinkEntityNameNotIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldSinkEntityName, vs...))
}

// SinkEntityNameGT applies the GT predicate on the "sink_entity_name" field.
func SinkEntityNameGT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldSinkEntityName, v))
}

// SinkEntityNameGTE applies the GTE predicate on the "sink_entity_name" field.
func SinkEntityNameGTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldSinkEntityName, v))
}

// SinkEntityNameLT applies the LT predicate on the "sink_entity_name" field.
func SinkEntityNameLT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldSinkEntityName, v))
}

// SinkEntityNameLTE applies the LTE predicate on the "sink_entity_name" field.
func SinkEntityNameLTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldSinkEntityName, v))
}

// SinkEntityNameContains applies the Contains predicate on the "sink_entity_name" field.
func SinkEntityNameContains(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContains(FieldSinkEntityName, v))
}

// SinkEntityNameHasPrefix applies the HasPrefix predicate on the "sink_entity_name" field.
func SinkEntityNameHasPrefix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasPrefix(FieldSinkEntityName, v))
}

// SinkEntityNameHasSuffix applies the HasSuffix predicate on the "sink_entity_name" field.
func SinkEntityNameHasSuffix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasSuffix(FieldSinkEntityName, v))
}

// SinkEntityNameEqualFold applies the EqualFold predicate on the "sink_entity_name" field.
func SinkEntityNameEqualFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEqualFold(FieldSinkEntityName, v))
}

// SinkEntityNameContainsFold applies the ContainsFold predicate on the "sink_entity_name" field.
func SinkEntityNameContainsFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContainsFold(FieldSinkEntityName, v))
}

// SinkEntityAttrEQ applies the EQ predicate on the "sink_entity_attr" field.
func SinkEntityAttrEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldSinkEntityAttr, v))
}

// SinkEntityAttrNEQ applies the NEQ predicate on the "sink_entity_attr" field.
func SinkEntityAttrNEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldSinkEntityAttr, v))
}

// SinkEntityAttrIn applies the In predicate on the "sink_entity_attr" field.
func SinkEntityAttrIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldSinkEntityAttr, vs...))
}

// SinkEntityAttrNotIn applies the NotIn predicate on the "sink_entity_attr" field.
func SinkEntityAttrNotIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldSinkEntityAttr, vs...))
}

// SinkEntityAttrGT applies the GT predicate on the "sink_entity_attr" field.
func SinkEntityAttrGT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldSinkEntityAttr, v))
}

// SinkEntityAttrGTE applies the GTE predicate on the "sink_entity_attr" field.
func SinkEntityAttrGTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldSinkEntityAttr, v))
}

// SinkEntityAttrLT applies the LT predicate on the "sink_entity_attr" field.
func SinkEntityAttrLT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldSinkEntityAttr, v))
}

// SinkEntityAttrLTE applies the LTE predicate on the "sink_entity_attr" field.
func SinkEntityAttrLTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldSinkEntityAttr, v))
}

// SinkEntityAttrContains applies the Contains predicate on the "sink_entity_attr" field.
func SinkEntityAttrContains(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContains(FieldSinkEntityAttr, v))
}

// SinkEntityAttrHasPrefix applies the HasPrefix predicate on the "sink_entity_attr" field.
func SinkEntityAttrHasPrefix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasPrefix(FieldSinkEntityAttr, v))
}

// SinkEntityAttrHasSuffix applies the HasSuffix predicate on the "sink_entity_attr" field.
func SinkEntityAttrHasSuffix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasSuffix(FieldSinkEntityAttr, v))
}

// SinkEntityAttrEqualFold applies the EqualFold predicate on the "sink_entity_attr" field.
func SinkEntityAttrEqualFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEqualFold(FieldSinkEntityAttr, v))
}

// SinkEntityAttrContainsFold applies the ContainsFold predicate on the "sink_entity_attr" field.
func SinkEntityAttrContainsFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContainsFold(FieldSinkEntityAttr, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldConfidence, v))
}

// ModelProfileEQ applies the EQ predicate on the "model_profile" field.
func ModelProfileEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldModelProfile, v))
}

// ModelProfileNEQ applies the NEQ predicate on the "model_profile" field.
func ModelProfileNEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldModelProfile, v))
}

// ModelProfileIn applies the In predicate on the "model_profile" field.
func ModelProfileIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldModelProfile, vs...))
}

// ModelProfileNotIn applies the NotIn predicate on the "model_profile" field.
func ModelProfileNotIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldModelProfile, vs...))
}

// ModelProfileGT applies the GT predicate on the "model_profile" field.
func ModelProfileGT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldModelProfile, v))
}

// ModelProfileGTE applies the GTE predicate on the "model_profile" field.
func ModelProfileGTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldModelProfile, v))
}

// ModelProfileLT applies the LT predicate on the "model_profile" field.
func ModelProfileLT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldModelProfile, v))
}

// ModelProfileLTE applies the LTE predicate on the "model_profile" field.
func ModelProfileLTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldModelProfile, v))
}

// ModelProfileContains applies the Contains predicate on the "model_profile" field.
func ModelProfileContains(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContains(FieldModelProfile, v))
}

// ModelProfileHasPrefix applies the HasPrefix predicate on the "model_profile" field.
func ModelProfileHasPrefix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasPrefix(FieldModelProfile, v))
}

// ModelProfileHasSuffix applies the HasSuffix predicate on the "model_profile" field.
func ModelProfileHasSuffix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasSuffix(FieldModelProfile, v))
}

// ModelProfileEqualFold applies the EqualFold predicate on the "model_profile" field.
func ModelProfileEqualFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEqualFold(FieldModelProfile, v))
}

// ModelProfileContainsFold applies the ContainsFold predicate on the "model_profile" field.
func ModelProfileContainsFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContainsFold(FieldModelProfile, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContainsFold(FieldStatus, v))
}

// TraitNameEQ applies the EQ predicate on the "trait_name" field.
func TraitNameEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldTraitName, v))
}

// TraitNameNEQ applies the NEQ predicate on the "trait_name" field.
func TraitNameNEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldTraitName, v))
}

// TraitNameIn applies the In predicate on the "trait_name" field.
func TraitNameIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldTraitName, vs...))
}

// TraitNameNotIn applies the NotIn predicate on the "trait_name" field.
func TraitNameNotIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldTraitName, vs...))
}

// TraitNameGT applies the GT predicate on the "trait_name" field.
func TraitNameGT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldTraitName, v))
}

// TraitNameGTE applies the GTE predicate on the "trait_name" field.
func TraitNameGTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldTraitName, v))
}

// TraitNameLT applies the LT predicate on the "trait_name" field.
func TraitNameLT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldTraitName, v))
}

// TraitNameLTE applies the LTE predicate on the "trait_name" field.
func TraitNameLTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldTraitName, v))
}

// TraitNameContains applies the Contains predicate on the "trait_name" field.
func TraitNameContains(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContains(FieldTraitName, v))
}

// TraitNameHasPrefix applies the HasPrefix predicate on the "trait_name" field.
func TraitNameHasPrefix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasPrefix(FieldTraitName, v))
}

// TraitNameHasSuffix applies the HasSuffix predicate on the "trait_name" field.
func TraitNameHasSuffix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasSuffix(FieldTraitName, v))
}

// TraitNameIsNil applies the IsNil predicate on the "trait_name" field.
func TraitNameIsNil() predicate.Triple {
	return predicate.Triple(sql.FieldIsNull(FieldTraitName))
}

// TraitNameNotNil applies the NotNil predicate on the "trait_name" field.
func TraitNameNotNil() predicate.Triple {
	return predicate.Triple(sql.FieldNotNull(FieldTraitName))
}

// TraitNameEqualFold applies the EqualFold predicate on the "trait_name" field.
func TraitNameEqualFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEqualFold(FieldTraitName, v))
}

// TraitNameContainsFold applies the ContainsFold predicate on the "trait_name" field.
func TraitNameContainsFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContainsFold(FieldTraitName, v))
}

// TraitValueEQ applies the EQ predicate on the "trait_value" field.
func TraitValueEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldTraitValue, v))
}

// TraitValueNEQ applies the NEQ predicate on the "trait_value" field.
func TraitValueNEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldTraitValue, v))
}

// TraitValueIn applies the In predicate on the "trait_value" field.
func TraitValueIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldTraitValue, vs...))
}

// TraitValueNotIn applies the NotIn predicate on the "trait_value" field.
func TraitValueNotIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldTraitValue, vs...))
}

// TraitValueGT applies the GT predicate on the "trait_value" field.
func TraitValueGT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldTraitValue, v))
}

// TraitValueGTE applies the GTE predicate on the "trait_value" field.
func TraitValueGTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldTraitValue, v))
}

// TraitValueLT applies the LT predicate on the "trait_value" field.
func TraitValueLT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldTraitValue, v))
}

// TraitValueLTE applies the LTE predicate on the "trait_value" field.
func TraitValueLTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldTraitValue, v))
}

// TraitValueContains applies the Contains predicate on the "trait_value" field.
func TraitValueContains(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContains(FieldTraitValue, v))
}

// TraitValueHasPrefix applies the HasPrefix predicate on the "trait_value" field.
func TraitValueHasPrefix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasPrefix(FieldTraitValue, v))
}

// TraitValueHasSuffix applies the HasSuffix predicate on the "trait_value" field.
func TraitValueHasSuffix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasSuffix(FieldTraitValue, v))
}

// TraitValueIsNil applies the IsNil predicate on the "trait_value" field.
func TraitValueIsNil() predicate.Triple {
	return predicate.Triple(sql.FieldIsNull(FieldTraitValue))
}

// TraitValueNotNil applies the NotNil predicate on the "trait_value" field.
func TraitValueNotNil() predicate.Triple {
	return predicate.Triple(sql.FieldNotNull(FieldTraitValue))
}

// TraitValueEqualFold applies the EqualFold predicate on the "trait_value" field.
func TraitValueEqualFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEqualFold(FieldTraitValue, v))
}

// TraitValueContainsFold applies the ContainsFold predicate on the "trait_value" field.
func TraitValueContainsFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContainsFold(FieldTraitValue, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.Triple {
	return predicate.Triple(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.Triple {
	return predicate.Triple(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContainsFold(FieldUnit, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v int) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v int) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v int) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v int) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.Triple {
	return predicate.Triple(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.Triple {
	return predicate.Triple(sql.FieldNotNull(FieldProjectID))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v int) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v int) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...int) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...int) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDIsNil applies the IsNil predicate on the "document_id" field.
func DocumentIDIsNil() predicate.Triple {
	return predicate.Triple(sql.FieldIsNull(FieldDocumentID))
}

// DocumentIDNotNil applies the NotNil predicate on the "document_id" field.
func DocumentIDNotNil() predicate.Triple {
	return predicate.Triple(sql.FieldNotNull(FieldDocumentID))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v int) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v int) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...int) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...int) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.Triple {
	return predicate.Triple(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.Triple {
	return predicate.Triple(sql.FieldNotNull(FieldJobID))
}

// SentenceIDEQ applies the EQ predicate on the "sentence_id" field.
func SentenceIDEQ(v int) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldSentenceID, v))
}

// SentenceIDNEQ applies the NEQ predicate on the "sentence_id" field.
func SentenceIDNEQ(v int) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldSentenceID, v))
}

// SentenceIDIn applies the In predicate on the "sentence_id" field.
func SentenceIDIn(vs ...int) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldSentenceID, vs...))
}

// SentenceIDNotIn applies the NotIn predicate on the "sentence_id" field.
func SentenceIDNotIn(vs ...int) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldSentenceID, vs...))
}

// DoiHashEQ applies the EQ predicate on the "doi_hash" field.
func DoiHashEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldDoiHash, v))
}

// DoiHashNEQ applies the NEQ predicate on the "doi_hash" field.
func DoiHashNEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldDoiHash, v))
}

// DoiHashIn applies the In predicate on the "doi_hash" field.
func DoiHashIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldDoiHash, vs...))
}

// DoiHashNotIn applies the NotIn predicate on the "doi_hash" field.
func DoiHashNotIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldDoiHash, vs...))
}

// DoiHashGT applies the GT predicate on the "doi_hash" field.
func DoiHashGT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldDoiHash, v))
}

// DoiHashGTE applies the GTE predicate on the "doi_hash" field.
func DoiHashGTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldDoiHash, v))
}

// DoiHashLT applies the LT predicate on the "doi_hash" field.
func DoiHashLT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldDoiHash, v))
}

// DoiHashLTE applies the LTE predicate on the "doi_hash" field.
func DoiHashLTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldDoiHash, v))
}

// DoiHashContains applies the Contains predicate on the "doi_hash" field.
func DoiHashContains(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContains(FieldDoiHash, v))
}

// DoiHashHasPrefix applies the HasPrefix predicate on the "doi_hash" field.
func DoiHashHasPrefix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasPrefix(FieldDoiHash, v))
}

// DoiHashHasSuffix applies the HasSuffix predicate on the "doi_hash" field.
func DoiHashHasSuffix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasSuffix(FieldDoiHash, v))
}

// DoiHashIsNil applies the IsNil predicate on the "doi_hash" field.
func DoiHashIsNil() predicate.Triple {
	return predicate.Triple(sql.FieldIsNull(FieldDoiHash))
}

// DoiHashNotNil applies the NotNil predicate on the "doi_hash" field.
func DoiHashNotNil() predicate.Triple {
	return predicate.Triple(sql.FieldNotNull(FieldDoiHash))
}

// DoiHashEqualFold applies the EqualFold predicate on the "doi_hash" field.
func DoiHashEqualFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEqualFold(FieldDoiHash, v))
}

// DoiHashContainsFold applies the ContainsFold predicate on the "doi_hash" field.
func DoiHashContainsFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContainsFold(FieldDoiHash, v))
}

// ContributorEmailEQ applies the EQ predicate on the "contributor_email" field.
func ContributorEmailEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldContributorEmail, v))
}

// ContributorEmailNEQ applies the NEQ predicate on the "contributor_email" field.
func ContributorEmailNEQ(v string) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldContributorEmail, v))
}

// ContributorEmailIn applies the In predicate on the "contributor_email" field.
func ContributorEmailIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldContributorEmail, vs...))
}

// ContributorEmailNotIn applies the NotIn predicate on the "contributor_email" field.
func ContributorEmailNotIn(vs ...string) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldContributorEmail, vs...))
}

// ContributorEmailGT applies the GT predicate on the "contributor_email" field.
func ContributorEmailGT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldContributorEmail, v))
}

// ContributorEmailGTE applies the GTE predicate on the "contributor_email" field.
func ContributorEmailGTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldContributorEmail, v))
}

// ContributorEmailLT applies the LT predicate on the "contributor_email" field.
func ContributorEmailLT(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldContributorEmail, v))
}

// ContributorEmailLTE applies the LTE predicate on the "contributor_email" field.
func ContributorEmailLTE(v string) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldContributorEmail, v))
}

// ContributorEmailContains applies the Contains predicate on the "contributor_email" field.
func ContributorEmailContains(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContains(FieldContributorEmail, v))
}

// ContributorEmailHasPrefix applies the HasPrefix predicate on the "contributor_email" field.
func ContributorEmailHasPrefix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasPrefix(FieldContributorEmail, v))
}

// ContributorEmailHasSuffix applies the HasSuffix predicate on the "contributor_email" field.
func ContributorEmailHasSuffix(v string) predicate.Triple {
	return predicate.Triple(sql.FieldHasSuffix(FieldContributorEmail, v))
}

// ContributorEmailIsNil applies the IsNil predicate on the "contributor_email" field.
func ContributorEmailIsNil() predicate.Triple {
	return predicate.Triple(sql.FieldIsNull(FieldContributorEmail))
}

// ContributorEmailNotNil applies the NotNil predicate on the "contributor_email" field.
func ContributorEmailNotNil() predicate.Triple {
	return predicate.Triple(sql.FieldNotNull(FieldContributorEmail))
}

// ContributorEmailEqualFold applies the EqualFold predicate on the "contributor_email" field.
func ContributorEmailEqualFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldEqualFold(FieldContributorEmail, v))
}

// ContributorEmailContainsFold applies the ContainsFold predicate on the "contributor_email" field.
func ContributorEmailContainsFold(v string) predicate.Triple {
	return predicate.Triple(sql.FieldContainsFold(FieldContributorEmail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Triple {
	return predicate.Triple(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Triple {
	return predicate.Triple(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Triple {
	return predicate.Triple(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Triple {
	return predicate.Triple(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Triple {
	return predicate.Triple(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Triple {
	return predicate.Triple(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Triple {
	return predicate.Triple(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Triple {
	return predicate.Triple(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Triple {
	return predicate.Triple(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Triple {
	return predicate.Triple(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Triple {
	return predicate.Triple(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ExtractionJob) predicate.Triple {
	return predicate.Triple(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSentence applies the HasEdge predicate on the "sentence" edge.
func HasSentence() predicate.Triple {
	return predicate.Triple(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SentenceTable, SentenceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSentenceWith applies the HasEdge predicate on the "sentence" edge with a given conditions (other predicates).
func HasSentenceWith(preds ...predicate.Sentence) predicate.Triple {
	return predicate.Triple(func(s *sql.Selector) {
		step := newSentenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Triple) predicate.Triple {
	return predicate.Triple(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Triple) predicate.Triple {
	return predicate.Triple(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Triple) predicate.Triple {
	return predicate.Triple(sql.NotPredicates(p))
}
