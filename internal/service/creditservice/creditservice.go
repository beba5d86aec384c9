package creditservice

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/ledger"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/metrics"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/pg"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

//go:generate mockgen -source=creditservice.go -destination=mock_creditservice.go -package=creditservice

type CreditRepo interface {
	GetBalance(ctx context.Context, userID int) (*domain.CreditBalance, error)
	CreateBalance(ctx context.Context, userID int) (*domain.CreditBalance, error)
	ApplyDelta(ctx context.Context, userID int, d domain.CreditDelta) (*domain.CreditBalance, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.CreditTransaction) (*domain.CreditTransaction, error)
	ListByUserID(ctx context.Context, userID int, limit int) ([]domain.CreditTransaction, error)
}

var (
	ErrInvalidAmount          = ledger.ErrInvalidAmount
	ErrInvalidTransactionType = ledger.ErrInvalidTransactionType
	ErrInsufficientBalance    = ledger.ErrInsufficientBalance
)

type Service struct {
	creditRepo      CreditRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	balances        *cache.Cache
}

func New(creditRepo CreditRepo, transactionRepo TransactionRepo, txManager pg.TXManager, cacheTTL time.Duration) *Service {
	return &Service{
		creditRepo:      creditRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		balances:        cache.New(cacheTTL, 2*cacheTTL),
	}
}

// GetBalance reads through a short-lived cache. A user without a balance row
// has zero credits.
func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.CreditBalance, error) {
	key := strconv.Itoa(userID)
	if cached, ok := s.balances.Get(key); ok {
		b := cached.(domain.CreditBalance)
		return &b, nil
	}

	balance, err := s.creditRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		balance = &domain.CreditBalance{UserID: userID}
	}
	s.balances.SetDefault(key, *balance)
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.CreditBalance, error) {
	balance, err := s.creditRepo.CreateBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	s.balances.Delete(strconv.Itoa(userID))
	return balance, nil
}

// ProcessTransaction records a crediting transaction (purchase, refund or
// admin_adjustment) and applies it to the user's balance, creating the
// balance row if needed. The audit row and the balance change commit
// together. Calls are not idempotent.
func (s *Service) ProcessTransaction(
	ctx context.Context,
	userID int,
	txType domain.TransactionType,
	amount int,
	description string,
	reference *string,
	createdBy *int,
) (*domain.CreditBalance, error) {
	if !ledger.Crediting(txType) {
		if amount <= 0 {
			return nil, ErrInvalidAmount
		}
		return nil, ErrInvalidTransactionType
	}
	return s.record(ctx, userID, txType, amount, description, reference, createdBy)
}

// ConsumeCredits charges amount credits as a usage transaction. It fails
// with ErrInsufficientBalance, and records nothing, when the balance is too
// low.
func (s *Service) ConsumeCredits(ctx context.Context, userID int, amount int, description string, reference *string) (*domain.CreditBalance, error) {
	return s.record(ctx, userID, domain.TransactionUsage, amount, description, reference, nil)
}

// PreviewTransaction returns the balance the user would have after a
// transaction of txType and amount, without recording anything. The balance
// is read from the store, bypassing the cache.
func (s *Service) PreviewTransaction(ctx context.Context, userID int, txType domain.TransactionType, amount int) (*domain.CreditBalance, error) {
	delta, err := ledger.DeltaFor(txType, amount)
	if err != nil {
		return nil, err
	}
	current, err := s.creditRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if current == nil {
		current = &domain.CreditBalance{UserID: userID}
	}
	projected, err := ledger.Apply(*current, delta)
	if err != nil {
		return nil, err
	}
	return &projected, nil
}

func (s *Service) record(
	ctx context.Context,
	userID int,
	txType domain.TransactionType,
	amount int,
	description string,
	reference *string,
	createdBy *int,
) (*domain.CreditBalance, error) {
	delta, err := ledger.DeltaFor(txType, amount)
	if err != nil {
		return nil, err
	}

	var balance *domain.CreditBalance
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		entry := &domain.CreditTransaction{
			ID:          uuid.NewString(),
			UserID:      userID,
			Type:        txType,
			Amount:      ledger.SignedAmount(delta),
			Description: description,
			Reference:   reference,
			CreatedBy:   createdBy,
		}
		if _, err := s.transactionRepo.Create(ctx, entry); err != nil {
			zap.L().Error("failed to create credit transaction", zap.Error(err))
			return err
		}

		updated, err := s.creditRepo.ApplyDelta(ctx, userID, delta)
		if err != nil {
			return err
		}
		balance = updated
		return nil
	})
	s.balances.Delete(strconv.Itoa(userID))

	switch {
	case err == nil:
		metrics.CreditTransactions.WithLabelValues(string(txType), metrics.OutcomeOK).Inc()
	case errors.Is(err, ErrInsufficientBalance):
		metrics.CreditTransactions.WithLabelValues(string(txType), metrics.OutcomeRejected).Inc()
		zap.L().Info("credit transaction rejected", zap.Int("userID", userID), zap.String("type", string(txType)), zap.Int("amount", amount))
		return nil, err
	default:
		metrics.CreditTransactions.WithLabelValues(string(txType), metrics.OutcomeError).Inc()
		zap.L().Error("failed to process credit transaction", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("credit transaction processed",
		zap.Int("userID", userID),
		zap.String("type", string(txType)),
		zap.Int("amount", amount),
		zap.Int("balance", balance.CurrentBalance),
	)
	return balance, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int, limit int) ([]domain.CreditTransaction, error) {
	transactions, err := s.transactionRepo.ListByUserID(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch credit transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
