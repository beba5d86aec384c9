// Package ledger holds the arithmetic of credit transactions. It knows nothing
// about storage. Postgres applies a delta inside creditrepo.ApplyDelta; Apply
// computes the same result in memory for previews.
package ledger

import (
	"errors"
	"fmt"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
)

var (
	ErrInvalidAmount          = errors.New("amount must be a positive integer")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInsufficientBalance    = errors.New("insufficient credits")
)

// Crediting reports whether t is one of the types that add to the balance.
func Crediting(t domain.TransactionType) bool {
	switch t {
	case domain.TransactionPurchase, domain.TransactionRefund, domain.TransactionAdminAdjustment:
		return true
	}
	return false
}

// DeltaFor returns the balance change for a transaction of type t and a
// positive amount. Usage subtracts and counts towards TotalUsed; purchase
// adds and counts towards TotalPurchased; refund and admin_adjustment only
// move the current balance.
func DeltaFor(t domain.TransactionType, amount int) (domain.CreditDelta, error) {
	if amount <= 0 {
		return domain.CreditDelta{}, ErrInvalidAmount
	}
	switch t {
	case domain.TransactionPurchase:
		return domain.CreditDelta{Balance: amount, Purchased: amount}, nil
	case domain.TransactionRefund, domain.TransactionAdminAdjustment:
		return domain.CreditDelta{Balance: amount}, nil
	case domain.TransactionUsage:
		return domain.CreditDelta{Balance: -amount, Used: amount}, nil
	}
	return domain.CreditDelta{}, fmt.Errorf("%w: %q", ErrInvalidTransactionType, t)
}

// Apply returns b with d applied. It fails with ErrInsufficientBalance when the
// result would be negative and leaves b untouched.
func Apply(b domain.CreditBalance, d domain.CreditDelta) (domain.CreditBalance, error) {
	if b.CurrentBalance+d.Balance < 0 {
		return b, ErrInsufficientBalance
	}
	b.CurrentBalance += d.Balance
	b.TotalPurchased += d.Purchased
	b.TotalUsed += d.Used
	return b, nil
}

// SignedAmount is the value recorded on the audit row: negative for usage.
func SignedAmount(d domain.CreditDelta) int {
	return d.Balance
}
