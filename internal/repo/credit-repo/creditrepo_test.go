package creditrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/ledger"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/pg"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	selectBalanceSQL = `SELECT user_id, current_balance, total_purchased, total_used, updated_at FROM credit_balances WHERE user_id = $1`
	createBalanceSQL = `INSERT INTO credit_balances (user_id, current_balance, total_purchased, total_used) VALUES ($1, 0, 0, 0) RETURNING user_id, current_balance, total_purchased, total_used, updated_at`
)

const (
	updateBalanceSQL = `UPDATE credit_balances SET current_balance = current_balance + $2, total_purchased = total_purchased + $3, total_used = total_used + $4, updated_at = NOW() WHERE user_id = $1 AND current_balance + $2 >= 0 RETURNING user_id, current_balance, total_purchased, total_used, updated_at`
	insertBalanceSQL = `INSERT INTO credit_balances (user_id, current_balance, total_purchased, total_used, updated_at) VALUES ($1, $2, $3, $4, NOW()) ON CONFLICT (user_id) DO NOTHING RETURNING user_id, current_balance, total_purchased, total_used, updated_at`
)

var balanceColumns = []string{"user_id", "current_balance", "total_purchased", "total_used", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_GetBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.CreditBalance
	}{
		{
			name:   "Existing row",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectBalanceSQL)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(balanceColumns).AddRow(1, 10, 10, 0, now))
			},
			result: &domain.CreditBalance{UserID: 1, CurrentBalance: 10, TotalPurchased: 10, UpdatedAt: now},
		},
		{
			name:   "No row reads as nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectBalanceSQL)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectBalanceSQL)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetBalance(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(createBalanceSQL)).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows(balanceColumns).AddRow(7, 0, 0, 0, now))

	result, err := repo.CreateBalance(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, &domain.CreditBalance{UserID: 7, UpdatedAt: now}, result)

	mock.ExpectQuery(regexp.QuoteMeta(createBalanceSQL)).
		WithArgs(7).
		WillReturnError(errors.New("duplicate"))

	result, err = repo.CreateBalance(context.Background(), 7)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRepository_ApplyDelta(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	tests := []struct {
		name        string
		delta       domain.CreditDelta
		mockSetup   func(d domain.CreditDelta)
		expectedErr error
		anyErr      bool
		expected    *domain.CreditBalance
	}{
		{
			name:  "Purchase on existing row",
			delta: domain.CreditDelta{Balance: 5, Purchased: 5},
			mockSetup: func(d domain.CreditDelta) {
				mock.ExpectQuery(regexp.QuoteMeta(updateBalanceSQL)).
					WithArgs(1, d.Balance, d.Purchased, d.Used).
					WillReturnRows(pgxmock.NewRows(balanceColumns).AddRow(1, 15, 15, 0, now))
			},
			expected: &domain.CreditBalance{UserID: 1, CurrentBalance: 15, TotalPurchased: 15, UpdatedAt: now},
		},
		{
			name:  "Usage on existing row with enough credits",
			delta: domain.CreditDelta{Balance: -3, Used: 3},
			mockSetup: func(d domain.CreditDelta) {
				mock.ExpectQuery(regexp.QuoteMeta(updateBalanceSQL)).
					WithArgs(1, d.Balance, d.Purchased, d.Used).
					WillReturnRows(pgxmock.NewRows(balanceColumns).AddRow(1, 7, 10, 3, now))
			},
			expected: &domain.CreditBalance{UserID: 1, CurrentBalance: 7, TotalPurchased: 10, TotalUsed: 3, UpdatedAt: now},
		},
		{
			name:  "Usage beyond balance is rejected by the guard",
			delta: domain.CreditDelta{Balance: -20, Used: 20},
			mockSetup: func(d domain.CreditDelta) {
				mock.ExpectQuery(regexp.QuoteMeta(updateBalanceSQL)).
					WithArgs(1, d.Balance, d.Purchased, d.Used).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: ledger.ErrInsufficientBalance,
		},
		{
			name:  "Purchase on missing row inserts it",
			delta: domain.CreditDelta{Balance: 10, Purchased: 10},
			mockSetup: func(d domain.CreditDelta) {
				mock.ExpectQuery(regexp.QuoteMeta(updateBalanceSQL)).
					WithArgs(1, d.Balance, d.Purchased, d.Used).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(regexp.QuoteMeta(insertBalanceSQL)).
					WithArgs(1, d.Balance, d.Purchased, d.Used).
					WillReturnRows(pgxmock.NewRows(balanceColumns).AddRow(1, 10, 10, 0, now))
			},
			expected: &domain.CreditBalance{UserID: 1, CurrentBalance: 10, TotalPurchased: 10, UpdatedAt: now},
		},
		{
			name:  "Concurrent insert wins, update is retried",
			delta: domain.CreditDelta{Balance: 10, Purchased: 10},
			mockSetup: func(d domain.CreditDelta) {
				mock.ExpectQuery(regexp.QuoteMeta(updateBalanceSQL)).
					WithArgs(1, d.Balance, d.Purchased, d.Used).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(regexp.QuoteMeta(insertBalanceSQL)).
					WithArgs(1, d.Balance, d.Purchased, d.Used).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(regexp.QuoteMeta(updateBalanceSQL)).
					WithArgs(1, d.Balance, d.Purchased, d.Used).
					WillReturnRows(pgxmock.NewRows(balanceColumns).AddRow(1, 20, 20, 0, now))
			},
			expected: &domain.CreditBalance{UserID: 1, CurrentBalance: 20, TotalPurchased: 20, UpdatedAt: now},
		},
		{
			name:  "Check violation maps to insufficient balance",
			delta: domain.CreditDelta{Balance: -1, Used: 1},
			mockSetup: func(d domain.CreditDelta) {
				mock.ExpectQuery(regexp.QuoteMeta(updateBalanceSQL)).
					WithArgs(1, d.Balance, d.Purchased, d.Used).
					WillReturnError(&pgconn.PgError{Code: "23514"})
			},
			expectedErr: ledger.ErrInsufficientBalance,
		},
		{
			name:  "Database error",
			delta: domain.CreditDelta{Balance: 1},
			mockSetup: func(d domain.CreditDelta) {
				mock.ExpectQuery(regexp.QuoteMeta(updateBalanceSQL)).
					WithArgs(1, d.Balance, d.Purchased, d.Used).
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
				tt.mockSetup(tt.delta)
				return fn(ctx)
			})

			result, err := repo.ApplyDelta(context.Background(), 1, tt.delta)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			case tt.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ledger.ErrInsufficientBalance)
				assert.Nil(t, result)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
