package constants

import "strings"

// Relation types shared by every backend's normalized output.
const (
	RelationHasTrait   = "has_trait"
	RelationHasValue   = "has_value"
	RelationMeasuredIn = "measured_in"
	RelationFoundIn    = "found_in"
	RelationRelatedTo  = "related_to"
)

var relationSynonyms = map[string]string{
	"hastrait":    RelationHasTrait,
	"has_trait":   RelationHasTrait,
	"trait_of":    RelationHasTrait,
	"exhibits":    RelationHasTrait,
	"hasvalue":    RelationHasValue,
	"has_value":   RelationHasValue,
	"value_of":    RelationHasValue,
	"equals":      RelationHasValue,
	"measuredin":  RelationMeasuredIn,
	"measured_in": RelationMeasuredIn,
	"unit_of":     RelationMeasuredIn,
	"foundin":     RelationFoundIn,
	"found_in":    RelationFoundIn,
	"occurs_in":   RelationFoundIn,
	"located_in":  RelationFoundIn,
}

// CanonicalizeRelation maps a backend relation label onto the shared
// vocabulary, defaulting to RelationRelatedTo for anything unrecognized.
func CanonicalizeRelation(label string) string {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return RelationRelatedTo
	}
	if rel, ok := relationSynonyms[normalized]; ok {
		return rel
	}
	switch normalized {
	case RelationHasTrait, RelationHasValue, RelationMeasuredIn, RelationFoundIn, RelationRelatedTo:
		return normalized
	}
	return RelationRelatedTo
}
