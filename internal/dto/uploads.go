package dto

import "time"

type UploadResponseDTO struct {
	ID          string    `json:"id" example:"3b241101-e2bb-4255-8caf-4136c566a962"`
	BatchID     *string   `json:"batch_id,omitempty" example:"9c5b94b1-35ad-49bb-b118-8e8fc24abf80"`
	FileName    string    `json:"file_name" example:"home.png"`
	FileURL     string    `json:"file_url" example:"http://localhost:9000/design-uploads/uploads/1/3b24/home.png"`
	SourceURL   *string   `json:"source_url,omitempty"`
	ContentType string    `json:"content_type" example:"image/png"`
	Status      string    `json:"status" example:"pending"`
	CreatedAt   time.Time `json:"created_at" example:"2026-10-16T16:09:57+03:00"`
}
