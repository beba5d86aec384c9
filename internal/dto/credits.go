package dto

import "time"

type CreditBalanceResponseDTO struct {
	CurrentBalance int       `json:"current_balance" example:"15"`
	TotalPurchased int       `json:"total_purchased" example:"20"`
	TotalUsed      int       `json:"total_used" example:"5"`
	UpdatedAt      time.Time `json:"updated_at" example:"2026-10-16T16:09:57+03:00"`
}

type PurchaseRequestDTO struct {
	Amount      int    `json:"amount" validate:"gt=0" example:"10"`
	Order       string `json:"order" validate:"required,luhn" example:"2377225624"`
	Description string `json:"description,omitempty" validate:"max=255" example:"Starter pack"`
}

type AdjustRequestDTO struct {
	UserID int    `json:"user_id" validate:"gt=0" example:"42"`
	Amount int    `json:"amount" validate:"gt=0" example:"5"`
	Type   string `json:"type" validate:"required,oneof=admin_adjustment refund" example:"admin_adjustment"`
	Reason string `json:"reason" validate:"required,max=255" example:"Goodwill credit"`
}

type CreditTransactionResponseDTO struct {
	ID          string    `json:"id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Type        string    `json:"transaction_type" example:"purchase"`
	Amount      int       `json:"amount" example:"10"`
	Description string    `json:"description" example:"Starter pack"`
	Reference   *string   `json:"reference,omitempty" example:"2377225624"`
	CreatedBy   *int      `json:"created_by,omitempty" example:"1"`
	CreatedAt   time.Time `json:"created_at" example:"2026-10-16T16:09:57+03:00"`
}
