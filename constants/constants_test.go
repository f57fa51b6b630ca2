package constants

import "testing"

func TestJobStatusTerminal(t *testing.T) {
	tests := []struct {
		status JobStatus
		want   bool
	}{
		{JobStatusPending, false},
		{JobStatusRunning, false},
		{JobStatusCompleted, true},
		{JobStatusFailed, true},
		{JobStatusCancelled, true},
	}
	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("JobStatus(%q).Terminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		input   string
		want    Backend
		wantErr bool
	}{
		{"spacy", BackendSpacy, false},
		{"SPACY", BackendSpacy, false},
		{"  huggingface ", BackendHuggingFace, false},
		{"lasuie", BackendLasUIE, false},
		{"allennlp", BackendAllenNLP, false},
		{"bert", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBackend(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBackend(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCanonicalizeEntity(t *testing.T) {
	tests := []struct {
		label      string
		want       EntityCategory
		recognized bool
	}{
		{"species", Taxon, true},
		{"  SPECIES ", Taxon, true},
		{"taxon", Taxon, true},
		{"phenotype", Trait, true},
		{"quantity", Value, true},
		{"uom", Unit, true},
		{"gpe", Location, true},
		{"biome", Habitat, true},
		{"misc", GenericEntity, true},
		{"xyzzy", GenericEntity, false},
		{"", GenericEntity, false},
	}
	for _, tt := range tests {
		got, ok := CanonicalizeEntity(tt.label)
		if got != tt.want || ok != tt.recognized {
			t.Errorf("CanonicalizeEntity(%q) = (%q, %v), want (%q, %v)",
				tt.label, got, ok, tt.want, tt.recognized)
		}
	}
}

func TestCanonicalizeRelation(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"has_trait", RelationHasTrait},
		{"exhibits", RelationHasTrait},
		{"HAS_VALUE", RelationHasValue},
		{"unit_of", RelationMeasuredIn},
		{"occurs_in", RelationFoundIn},
		{"related_to", RelationRelatedTo},
		{"something_else", RelationRelatedTo},
		{"", RelationRelatedTo},
	}
	for _, tt := range tests {
		if got := CanonicalizeRelation(tt.label); got != tt.want {
			t.Errorf("CanonicalizeRelation(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
