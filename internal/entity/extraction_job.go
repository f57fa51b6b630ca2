package entity

import (
	"time"

	"github.com/phenobase/trait-extractor/constants"
)

// ExtractionJob represents one extraction run for data transfer between layers.
// DocumentIDs preserves submission order (backed by the job_document child
// table, ordered by position).
type ExtractionJob struct {
	ID           int                 `json:"id"`
	ProjectID    *int                `json:"project_id,omitempty"`
	DocumentIDs  []int               `json:"document_ids"`
	ModelProfile string              `json:"model_profile"`
	Mode         constants.JobMode   `json:"mode"`
	Status       constants.JobStatus `json:"status"`
	Progress     int                 `json:"progress"`
	Total        int                 `json:"total"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	TotalTriples *int                `json:"total_triples,omitempty"`
	CreatedBy    *string             `json:"created_by,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	StartedAt    *time.Time          `json:"started_at,omitempty"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
}

// JobFilter narrows ListJobs queries.
type JobFilter struct {
	ProjectID *int
	Status    *constants.JobStatus
	Profile   *string
}

// Page is a limit/offset pair for list queries.
type Page struct {
	Limit  int
	Offset int
}
