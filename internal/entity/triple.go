package entity

import (
	"time"

	"github.com/phenobase/trait-extractor/constants"
)

// Triple is the canonical entity-relation-entity record all backends
// normalize into, plus the provenance linkage the service attaches.
type Triple struct {
	ID               int                    `json:"id,omitempty"`
	SourceEntityName string                 `json:"source_entity_name"`
	SourceEntityAttr string                 `json:"source_entity_attr"`
	RelationType     string                 `json:"relation_type"`
	SinkEntityName   string                 `json:"sink_entity_name"`
	SinkEntityAttr   string                 `json:"sink_entity_attr"`
	Confidence       float64                `json:"confidence"`
	ModelProfile     string                 `json:"model_profile"`
	Status           constants.TripleStatus `json:"status"`
	TraitName        *string                `json:"trait_name,omitempty"`
	TraitValue       *string                `json:"trait_value,omitempty"`
	Unit             *string                `json:"unit,omitempty"`
	ProjectID        *int                   `json:"project_id,omitempty"`
	DocumentID       *int                   `json:"document_id,omitempty"`
	JobID            *int                   `json:"job_id,omitempty"`
	SentenceID       int                    `json:"sentence_id,omitempty"`
	Sentence         string                 `json:"sentence"`
	DoiHash          *string                `json:"doi_hash,omitempty"`
	ContributorEmail *string                `json:"contributor_email,omitempty"`
	CreatedAt        time.Time              `json:"created_at,omitempty"`
}

// TripleFilter narrows triple list/export queries.
type TripleFilter struct {
	JobID      *int
	ProjectID  *int
	DocumentID *int
	Status     *constants.TripleStatus
}
