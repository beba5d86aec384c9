package credits

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/dto"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/ledger"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CreditsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withUser(r *http.Request, id int, role string) *http.Request {
	return r.WithContext(auth.WithUser(context.Background(), id, role))
}

func TestGetBalanceHandler(t *testing.T) {
	updated := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody dto.CreditBalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(&domain.CreditBalance{
					UserID:         1,
					CurrentBalance: 15,
					TotalPurchased: 20,
					TotalUsed:      5,
					UpdatedAt:      updated,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.CreditBalanceResponseDTO{CurrentBalance: 15, TotalPurchased: 20, TotalUsed: 5, UpdatedAt: updated},
		},
		{
			name: "Internal server error",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := withUser(httptest.NewRequest(http.MethodGet, "/api/user/credits", nil), 1, domain.RoleUser)
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CreditBalanceResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestPurchaseHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Successful purchase",
			body: `{"amount":5,"order":"2377225624"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					ProcessTransaction(gomock.Any(), 1, domain.TransactionPurchase, 5, "Credit purchase", gomock.Any(), nil).
					DoAndReturn(func(_ context.Context, _ int, _ domain.TransactionType, _ int, _ string, reference *string, _ *int) (*domain.CreditBalance, error) {
						assert.Equal(t, "2377225624", *reference)
						return &domain.CreditBalance{CurrentBalance: 15, TotalPurchased: 15}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid body",
			body:         `{"amount":`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Zero amount",
			body:         `{"amount":0,"order":"2377225624"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Order fails Luhn check",
			body:         `{"amount":5,"order":"12345"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Service error",
			body: `{"amount":5,"order":"79927398713","description":"Pro pack"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					ProcessTransaction(gomock.Any(), 1, domain.TransactionPurchase, 5, "Pro pack", gomock.Any(), nil).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := withUser(httptest.NewRequest(http.MethodPost, "/api/user/credits/purchase", bytes.NewBufferString(tt.body)), 1, domain.RoleUser)
			w := httptest.NewRecorder()
			handler.Purchase(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAdjustHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Admin adjustment",
			body: `{"user_id":42,"amount":3,"type":"admin_adjustment","reason":"Goodwill"}`,
			prepareMock: func(service *MockService) {
				admin := 1
				service.EXPECT().
					ProcessTransaction(gomock.Any(), 42, domain.TransactionAdminAdjustment, 3, "Goodwill", nil, &admin).
					Return(&domain.CreditBalance{UserID: 42, CurrentBalance: 3}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Refund",
			body: `{"user_id":42,"amount":1,"type":"refund","reason":"Failed analysis"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					ProcessTransaction(gomock.Any(), 42, domain.TransactionRefund, 1, "Failed analysis", nil, gomock.Any()).
					Return(&domain.CreditBalance{UserID: 42, CurrentBalance: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Usage is not an adjustment",
			body:         `{"user_id":42,"amount":1,"type":"usage","reason":"x"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Missing reason",
			body:         `{"user_id":42,"amount":1,"type":"refund"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Ledger rejects amount",
			body: `{"user_id":42,"amount":1,"type":"refund","reason":"x"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					ProcessTransaction(gomock.Any(), 42, domain.TransactionRefund, 1, "x", nil, gomock.Any()).
					Return(nil, ledger.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := withUser(httptest.NewRequest(http.MethodPost, "/api/admin/credits/adjust", bytes.NewBufferString(tt.body)), 1, domain.RoleAdmin)
			w := httptest.NewRecorder()
			handler.Adjust(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	created := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	ref := "2377225624"

	tests := []struct {
		name         string
		query        string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody []dto.CreditTransactionResponseDTO
	}{
		{
			name: "History with default limit",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetTransactions(gomock.Any(), 1, defaultHistoryLimit).Return([]domain.CreditTransaction{
					{ID: "t2", Type: domain.TransactionUsage, Amount: -1, Description: "Design analysis: a.png", CreatedAt: created},
					{ID: "t1", Type: domain.TransactionPurchase, Amount: 10, Description: "Credit purchase", Reference: &ref, CreatedAt: created},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.CreditTransactionResponseDTO{
				{ID: "t2", Type: "usage", Amount: -1, Description: "Design analysis: a.png", CreatedAt: created},
				{ID: "t1", Type: "purchase", Amount: 10, Description: "Credit purchase", Reference: &ref, CreatedAt: created},
			},
		},
		{
			name:  "Custom limit",
			query: "?limit=5",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetTransactions(gomock.Any(), 1, 5).Return([]domain.CreditTransaction{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Bad limit",
			query:        "?limit=-3",
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service error",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetTransactions(gomock.Any(), 1, defaultHistoryLimit).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := withUser(httptest.NewRequest(http.MethodGet, "/api/user/credits/transactions"+tt.query, nil), 1, domain.RoleUser)
			w := httptest.NewRecorder()
			handler.GetTransactions(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.CreditTransactionResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
