package constants

import (
	"strings"
)

// EntityCategory is the canonical entity vocabulary every backend must
// normalize into. Backend-specific labels (spaCy NER tags, HuggingFace
// id2label entries, ...) are mapped here; anything unmapped falls back
// to GenericEntity instead of failing the run.
type EntityCategory string

const (
	Taxon         EntityCategory = "taxon"
	Trait         EntityCategory = "trait"
	Value         EntityCategory = "value"
	Unit          EntityCategory = "unit"
	Location      EntityCategory = "location"
	Habitat       EntityCategory = "habitat"
	GenericEntity EntityCategory = "entity"
)

var allEntityCategories = []EntityCategory{
	Taxon,
	Trait,
	Value,
	Unit,
	Location,
	Habitat,
	GenericEntity,
}

// EntityCategories returns the canonical vocabulary as strings.
func EntityCategories() []string {
	result := make([]string, len(allEntityCategories))
	for i, cat := range allEntityCategories {
		result[i] = string(cat)
	}
	return result
}

// CanonicalizeEntity maps a backend label onto the canonical vocabulary.
// The second return reports whether the label was recognized; callers
// that need the fallback behavior can use the returned GenericEntity
// regardless.
func CanonicalizeEntity(label string) (EntityCategory, bool) {
	if label == "" {
		return GenericEntity, false
	}

	normalized := strings.ToLower(strings.TrimSpace(label))

	// shared synonyms across backends
	synonyms := map[string]EntityCategory{
		"species":      Taxon,
		"organism":     Taxon,
		"scientific":   Taxon,
		"binomial":     Taxon,
		"phenotype":    Trait,
		"character":    Trait,
		"attribute":    Trait,
		"measurement":  Value,
		"quantity":     Value,
		"number":       Value,
		"cardinal":     Value,
		"uom":          Unit,
		"gpe":          Location,
		"loc":          Location,
		"place":        Location,
		"environment":  Habitat,
		"biome":        Habitat,
		"misc":         GenericEntity,
		"unknown":      GenericEntity,
		"unclassified": GenericEntity,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allEntityCategories {
		if normalized == string(cat) {
			return cat, true
		}
	}

	return GenericEntity, false
}
