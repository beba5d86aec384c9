package credits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/dto"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/ledger"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/auth"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/utils"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/validate"
)

//go:generate mockgen -source=credits.go -destination=mock_credits.go -package=credits

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type Service interface {
	CreateBalance(ctx context.Context, userID int) (*domain.CreditBalance, error)
	GetBalance(ctx context.Context, userID int) (*domain.CreditBalance, error)
	ProcessTransaction(ctx context.Context, userID int, txType domain.TransactionType, amount int, description string, reference *string, createdBy *int) (*domain.CreditBalance, error)
	GetTransactions(ctx context.Context, userID int, limit int) ([]domain.CreditTransaction, error)
}

type CreditsHandler struct {
	creditService Service
}

func New(creditService Service) *CreditsHandler {
	return &CreditsHandler{
		creditService: creditService,
	}
}

// GetBalance godoc
//
//	@Summary		Get credit balance
//	@Description	Current credits of the authenticated user with lifetime purchased and used totals.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CreditBalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/credits [get]
func (h *CreditsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	balance, err := h.creditService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBalanceDTO(balance))
}

// Purchase godoc
//
//	@Summary		Buy credits
//	@Description	Record a paid credit purchase. The order number must pass the Luhn check. Repeating a request buys again.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase payload"
//	@Success		200		{object}	dto.CreditBalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/credits/purchase [post]
func (h *CreditsHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	description := req.Description
	if description == "" {
		description = "Credit purchase"
	}
	order := req.Order
	balance, err := h.creditService.ProcessTransaction(r.Context(), userID, domain.TransactionPurchase, req.Amount, description, &order, nil)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBalanceDTO(balance))
}

// Adjust godoc
//
//	@Summary		Adjust a user's credits
//	@Description	Admin-only grant of credits as an admin_adjustment or refund.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdjustRequestDTO	true	"Adjustment payload"
//	@Success		200		{object}	dto.CreditBalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/credits/adjust [post]
func (h *CreditsHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	adminID, _ := auth.UserID(r.Context())

	var req dto.AdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	balance, err := h.creditService.ProcessTransaction(r.Context(), req.UserID, domain.TransactionType(req.Type), req.Amount, req.Reason, nil, &adminID)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBalanceDTO(balance))
}

// GetTransactions godoc
//
//	@Summary		Credit history
//	@Description	Ledger entries of the authenticated user, newest first.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum entries (default 50, max 500)"
//	@Success		200		{array}		dto.CreditTransactionResponseDTO
//	@Success		204		{object}	utils.Response	"No transactions"
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/credits/transactions [get]
func (h *CreditsHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxHistoryLimit {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	transactions, err := h.creditService.GetTransactions(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(transactions) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.CreditTransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.CreditTransactionResponseDTO{
			ID:          tx.ID,
			Type:        string(tx.Type),
			Amount:      tx.Amount,
			Description: tx.Description,
			Reference:   tx.Reference,
			CreatedBy:   tx.CreatedBy,
			CreatedAt:   tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondWithLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrInvalidTransactionType):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ledger.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toBalanceDTO(b *domain.CreditBalance) dto.CreditBalanceResponseDTO {
	return dto.CreditBalanceResponseDTO{
		CurrentBalance: b.CurrentBalance,
		TotalPurchased: b.TotalPurchased,
		TotalUsed:      b.TotalUsed,
		UpdatedAt:      b.UpdatedAt,
	}
}
