package entity

import "time"

// Document represents a stored source document for data transfer between layers.
// The extraction core reads TextContent, ProjectID and DoiHash; everything
// else is owned by the persistence layer.
type Document struct {
	ID          int       `json:"id"`
	ProjectID   *int      `json:"project_id,omitempty"`
	FilePath    string    `json:"file_path"`
	TextContent string    `json:"text_content"`
	Doi         *string   `json:"doi,omitempty"`
	DoiHash     *string   `json:"doi_hash,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
