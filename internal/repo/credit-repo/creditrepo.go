package creditrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/ledger"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, TxManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: TxManager,
	}
}

func (r *Repository) GetBalance(ctx context.Context, userID int) (*domain.CreditBalance, error) {
	query := `
        SELECT user_id, current_balance, total_purchased, total_used, updated_at
        FROM credit_balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.CreditBalance
	err := row.Scan(&balance.UserID, &balance.CurrentBalance, &balance.TotalPurchased, &balance.TotalUsed, &balance.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get credit balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateBalance(ctx context.Context, userID int) (*domain.CreditBalance, error) {
	query := `
        INSERT INTO credit_balances (user_id, current_balance, total_purchased, total_used)
        VALUES ($1, 0, 0, 0)
        RETURNING user_id, current_balance, total_purchased, total_used, updated_at
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.CreditBalance
	err := row.Scan(&balance.UserID, &balance.CurrentBalance, &balance.TotalPurchased, &balance.TotalUsed, &balance.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to create credit balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

const balanceReturning = `RETURNING user_id, current_balance, total_purchased, total_used, updated_at`

// ApplyDelta adds d to the user's balance row. The update only matches while
// the result stays non-negative; otherwise the row is left untouched and
// ledger.ErrInsufficientBalance is returned. A missing row is created for
// non-negative deltas only, so the inserted values never trip the
// current_balance check.
func (r *Repository) ApplyDelta(ctx context.Context, userID int, d domain.CreditDelta) (*domain.CreditBalance, error) {
	var updated domain.CreditBalance
	update := `
		UPDATE credit_balances
		SET current_balance = current_balance + $2,
			total_purchased = total_purchased + $3,
			total_used = total_used + $4,
			updated_at = NOW()
		WHERE user_id = $1 AND current_balance + $2 >= 0
		` + balanceReturning
	insert := `
		INSERT INTO credit_balances (user_id, current_balance, total_purchased, total_used, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO NOTHING
		` + balanceReturning

	scan := func(ctx context.Context, query string) error {
		row := r.db.QueryRow(ctx, query, userID, d.Balance, d.Purchased, d.Used)
		return row.Scan(&updated.UserID, &updated.CurrentBalance, &updated.TotalPurchased, &updated.TotalUsed, &updated.UpdatedAt)
	}

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := scan(ctx, update)
		if !errors.Is(err, pgx.ErrNoRows) {
			return deltaError(err)
		}
		// No row matched: either the user has no balance yet or the delta
		// would overdraw it.
		if d.Balance < 0 {
			return ledger.ErrInsufficientBalance
		}
		err = scan(ctx, insert)
		if !errors.Is(err, pgx.ErrNoRows) {
			return deltaError(err)
		}
		// A concurrent insert created the row first.
		return deltaError(scan(ctx, update))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func deltaError(err error) error {
	switch {
	case err == nil:
		return nil
	case pg.IsCheckViolation(err):
		return ledger.ErrInsufficientBalance
	default:
		zap.L().Error("failed to apply credit delta", zap.Error(err))
		return err
	}
}
