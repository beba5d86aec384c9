package dto

import "time"

type AnalysisFiltersDTO struct {
	Search    string `validate:"max=200"`
	Status    string `validate:"omitempty,max=32"`
	Type      string `validate:"omitempty,max=64"`
	DateRange string `validate:"omitempty,oneof=all today week month"`
	SortBy    string `validate:"omitempty,oneof=date name confidence status"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

type AnalysisResponseDTO struct {
	ID             string         `json:"id"`
	Kind           string         `json:"kind" example:"individual"`
	AnalysisType   string         `json:"analysis_type" example:"ux_review"`
	Title          string         `json:"title" example:"home.png"`
	UploadID       string         `json:"upload_id,omitempty"`
	BatchID        *string        `json:"batch_id,omitempty"`
	Status         string         `json:"status,omitempty" example:"completed"`
	Confidence     float64        `json:"confidence_score" example:"0.82"`
	WinnerUploadID *string        `json:"winner_upload_id,omitempty"`
	Results        map[string]any `json:"analysis_results"`
	CreatedAt      time.Time      `json:"created_at"`
}

type AnalysisGroupResponseDTO struct {
	ID           string                `json:"id"`
	Title        string                `json:"title" example:"Batch: home.png"`
	Primary      AnalysisResponseDTO   `json:"primary"`
	Related      []AnalysisResponseDTO `json:"related"`
	LatestDate   time.Time             `json:"latest_date"`
	TotalUploads int                   `json:"total_uploads" example:"2"`
}

type BatchAnalysisResponseDTO struct {
	ID             string         `json:"id"`
	BatchID        string         `json:"batch_id"`
	AnalysisType   string         `json:"analysis_type" example:"batch_comparison"`
	Confidence     float64        `json:"confidence_score" example:"0.9"`
	WinnerUploadID *string        `json:"winner_upload_id,omitempty"`
	Results        map[string]any `json:"analysis_results"`
	CreatedAt      time.Time      `json:"created_at"`
}
