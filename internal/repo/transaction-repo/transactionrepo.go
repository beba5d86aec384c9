package transactionrepo

import (
	"context"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/pg"
	"go.uber.org/zap"
)

const defaultListLimit = 100

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create appends an audit row. Amount is stored with the sign of its effect
// on the balance.
func (r *Repository) Create(ctx context.Context, tx *domain.CreditTransaction) (*domain.CreditTransaction, error) {
	query := `
		INSERT INTO credit_transactions (id, user_id, transaction_type, amount, description, reference, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, tx.ID, tx.UserID, tx.Type, tx.Amount, tx.Description, tx.Reference, tx.CreatedBy).
		Scan(&tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save credit transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int, limit int) ([]domain.CreditTransaction, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	query := `
        SELECT id, user_id, transaction_type, amount, description, reference, created_by, created_at
        FROM credit_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch credit transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	transactions := make([]domain.CreditTransaction, 0)
	for rows.Next() {
		var tx domain.CreditTransaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Description, &tx.Reference, &tx.CreatedBy, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan credit transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate credit transactions", zap.Error(err))
		return nil, err
	}

	return transactions, nil
}
