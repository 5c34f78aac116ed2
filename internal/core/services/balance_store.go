package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// balanceStore is the only writer of balance rows. It is bound to the
// repositories of one transaction and never outlives it.
type balanceStore struct {
	repo portsrepo.BalanceRepositoryFacade
	at   time.Time
}

func newBalanceStore(repo portsrepo.BalanceRepositoryFacade, at time.Time) *balanceStore {
	return &balanceStore{repo: repo, at: at}
}

// Get returns the amount on hand for key; zero when no row exists.
func (b *balanceStore) Get(ctx context.Context, key domain.BalanceKey) (decimal.Decimal, error) {
	return b.repo.FindBalance(ctx, key)
}

// Lock locks keys for the rest of the transaction and returns their amounts.
func (b *balanceStore) Lock(ctx context.Context, keys []domain.BalanceKey) (map[domain.BalanceKey]decimal.Decimal, error) {
	if len(keys) == 0 {
		return map[domain.BalanceKey]decimal.Decimal{}, nil
	}
	return b.repo.LockBalances(ctx, keys)
}

// Increase adds qty to key.
func (b *balanceStore) Increase(ctx context.Context, key domain.BalanceKey, qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return fmt.Errorf("%w: increase of %s must be positive", apperrors.ErrValidation, qty)
	}
	return b.repo.IncreaseBalance(ctx, key, qty, b.at)
}

// Decrease subtracts qty from key, failing with ErrInsufficientStock rather than going negative.
func (b *balanceStore) Decrease(ctx context.Context, key domain.BalanceKey, qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return fmt.Errorf("%w: decrease of %s must be positive", apperrors.ErrValidation, qty)
	}
	return b.repo.DecreaseBalance(ctx, key, qty, b.at)
}
