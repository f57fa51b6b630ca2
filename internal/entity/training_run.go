package entity

import (
	"encoding/json"
	"time"
)

// TrainingRun records one invocation of a backend's train operation.
type TrainingRun struct {
	ID           int             `json:"id"`
	ModelProfile string          `json:"model_profile"`
	Status       string          `json:"status"`
	ArtifactPath *string         `json:"artifact_path,omitempty"`
	Metrics      json.RawMessage `json:"metrics,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
}
