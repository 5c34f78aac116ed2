package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceReader defines read operations for balance data
type BalanceReader interface {
	// FindBalance returns the amount on hand for key, zero if no row exists.
	FindBalance(ctx context.Context, key domain.BalanceKey) (decimal.Decimal, error)

	// ListBalances returns the balances matching filter ordered by resource then unit.
	ListBalances(ctx context.Context, filter domain.BalanceFilter) ([]domain.Balance, error)
}

// BalanceWriter defines write operations for balance data.
// These must only be called inside a transaction.
type BalanceWriter interface {
	// LockBalances locks the rows for keys until the enclosing transaction ends and
	// returns their amounts. Keys are locked in (resource, unit) order.
	LockBalances(ctx context.Context, keys []domain.BalanceKey) (map[domain.BalanceKey]decimal.Decimal, error)

	// IncreaseBalance adds qty to the row for key, creating it when absent.
	IncreaseBalance(ctx context.Context, key domain.BalanceKey, qty decimal.Decimal, at time.Time) error

	// DecreaseBalance subtracts qty from the row for key. It fails with
	// apperrors.ErrInsufficientStock when the result would be negative.
	DecreaseBalance(ctx context.Context, key domain.BalanceKey, qty decimal.Decimal, at time.Time) error
}

// BalanceRepositoryFacade combines all balance-related repository interfaces
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
