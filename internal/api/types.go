// Package api holds the wire types of the extraction peer protocol.
// Both the HTTP server and the remote client speak exactly this shape;
// field names are part of the contract with existing peers.
package api

import (
	"encoding/json"

	"github.com/phenobase/trait-extractor/internal/entity"
)

type DocumentMetadata struct {
	ProjectID *int   `json:"project_id,omitempty"`
	Doi       string `json:"doi,omitempty"`
}

type DocumentPayload struct {
	ID       int              `json:"id"`
	Text     string           `json:"text"`
	Metadata DocumentMetadata `json:"metadata"`
}

type ExtractRequest struct {
	Documents    []DocumentPayload `json:"documents"`
	ModelProfile string            `json:"model_profile"`
	JobID        *int              `json:"job_id,omitempty"`
}

type ExtractResponse struct {
	JobID          *int            `json:"job_id,omitempty"`
	Status         string          `json:"status"`
	TotalDocuments int             `json:"total_documents"`
	TotalTriples   int             `json:"total_triples"`
	Triples        []entity.Triple `json:"triples"`
}

type TrainRequest struct {
	ModelProfile string          `json:"model_profile"`
	TrainingData json.RawMessage `json:"training_data"`
	OutputDir    string          `json:"output_dir,omitempty"`
	NumEpochs    int             `json:"num_epochs"`
	BatchSize    int             `json:"batch_size"`
}

type TrainResponse struct {
	Status    string             `json:"status"`
	ModelPath string             `json:"model_path,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`
	Error     string             `json:"error,omitempty"`
}

type HealthResponse struct {
	Status         string   `json:"status"`
	LoadedAdapters []string `json:"loaded_adapters"`
}

type UnloadRequest struct {
	ModelProfile string `json:"model_profile"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// SubmitJobRequest starts an asynchronous extraction job over stored
// documents; callers poll the job for progress.
type SubmitJobRequest struct {
	DocumentIDs  []int  `json:"document_ids"`
	ModelProfile string `json:"model_profile"`
	ProjectID    *int   `json:"project_id,omitempty"`
	CreatedBy    string `json:"created_by,omitempty"`
	Mode         string `json:"mode,omitempty"`
}

type SubmitJobResponse struct {
	JobID  int    `json:"job_id"`
	Status string `json:"status"`
	Total  int    `json:"total"`
}

type JobListResponse struct {
	Items []entity.ExtractionJob `json:"items"`
	Total int                    `json:"total"`
}
