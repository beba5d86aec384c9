package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type UploadStatus string

const (
	UploadPending    UploadStatus = "pending"
	UploadProcessing UploadStatus = "processing"
	UploadCompleted  UploadStatus = "completed"
	UploadFailed     UploadStatus = "failed"
)

// Terminal reports whether the analysis pipeline is done with the upload.
func (s UploadStatus) Terminal() bool {
	return s == UploadCompleted || s == UploadFailed
}

type Upload struct {
	ID          string       `db:"id"`
	UserID      int          `db:"user_id"`
	BatchID     *string      `db:"batch_id"`
	FileName    string       `db:"file_name"`
	FileURL     string       `db:"file_url"`
	SourceURL   *string      `db:"source_url"`
	ContentType string       `db:"content_type"`
	Status      UploadStatus `db:"status"`
	CreatedAt   time.Time    `db:"created_at"`
}

type IndividualAnalysis struct {
	ID           string         `db:"id"`
	UserID       int            `db:"user_id"`
	UploadID     string         `db:"design_upload_id"`
	AnalysisType string         `db:"analysis_type"`
	Confidence   float64        `db:"confidence_score"`
	Results      map[string]any `db:"analysis_results"`
	CreatedAt    time.Time      `db:"created_at"`
}

type BatchAnalysis struct {
	ID             string         `db:"id"`
	UserID         int            `db:"user_id"`
	BatchID        string         `db:"batch_id"`
	AnalysisType   string         `db:"analysis_type"`
	Confidence     float64        `db:"confidence_score"`
	WinnerUploadID *string        `db:"winner_upload_id"`
	Results        map[string]any `db:"analysis_results"`
	CreatedAt      time.Time      `db:"created_at"`
}

type CreditBalance struct {
	UserID         int       `db:"user_id"`
	CurrentBalance int       `db:"current_balance"`
	TotalPurchased int       `db:"total_purchased"`
	TotalUsed      int       `db:"total_used"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type TransactionType string

const (
	TransactionPurchase        TransactionType = "purchase"
	TransactionUsage           TransactionType = "usage"
	TransactionRefund          TransactionType = "refund"
	TransactionAdminAdjustment TransactionType = "admin_adjustment"
)

// CreditDelta is the change a single transaction applies to a CreditBalance row.
type CreditDelta struct {
	Balance   int
	Purchased int
	Used      int
}

type CreditTransaction struct {
	ID          string          `db:"id"`
	UserID      int             `db:"user_id"`
	Type        TransactionType `db:"transaction_type"`
	Amount      int             `db:"amount"`
	Description string          `db:"description"`
	Reference   *string         `db:"reference"`
	CreatedBy   *int            `db:"created_by"`
	CreatedAt   time.Time       `db:"created_at"`
}
