package model

import "time"

// JobApplication is a submission from the public careers form. The résumé is
// received as an inline data URI and stored as a PDF asset before the record
// is persisted.
type JobApplication struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Message       string    `json:"message,omitempty"`
	ResumeURL     string    `json:"resume_url"`
	ResumeAssetID string    `json:"resume_asset_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
