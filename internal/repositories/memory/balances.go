package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type balanceRepository struct {
	*scope
}

var _ portsrepo.BalanceRepositoryFacade = (*balanceRepository)(nil)

func (r *balanceRepository) FindBalance(_ context.Context, key domain.BalanceKey) (decimal.Decimal, error) {
	var amount decimal.Decimal
	r.read(func() {
		amount = r.store.balances[key].Amount
	})
	return amount, nil
}

func (r *balanceRepository) ListBalances(_ context.Context, filter domain.BalanceFilter) ([]domain.Balance, error) {
	out := []domain.Balance{}
	r.read(func() {
		for _, b := range r.store.balances {
			if filter.Matches(b) {
				out = append(out, b)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Key().Less(out[j].Key()) })
	return out, nil
}

// LockBalances returns the amounts of keys. Inside a transaction the writer
// lock already excludes every other transaction.
func (r *balanceRepository) LockBalances(_ context.Context, keys []domain.BalanceKey) (map[domain.BalanceKey]decimal.Decimal, error) {
	out := make(map[domain.BalanceKey]decimal.Decimal, len(keys))
	r.read(func() {
		for _, k := range keys {
			out[k] = r.store.balances[k].Amount
		}
	})
	return out, nil
}

func (r *balanceRepository) IncreaseBalance(_ context.Context, key domain.BalanceKey, qty decimal.Decimal, at time.Time) error {
	return r.write(func() (func(), error) {
		prev, existed := r.store.balances[key]
		r.store.balances[key] = domain.Balance{
			ResourceID:    key.ResourceID,
			UnitID:        key.UnitID,
			Amount:        prev.Amount.Add(qty),
			LastUpdatedAt: at,
		}
		return r.restore(key, prev, existed), nil
	})
}

func (r *balanceRepository) DecreaseBalance(_ context.Context, key domain.BalanceKey, qty decimal.Decimal, at time.Time) error {
	return r.write(func() (func(), error) {
		prev, existed := r.store.balances[key]
		next := prev.Amount.Sub(qty)
		if next.IsNegative() {
			return nil, fmt.Errorf("%w: resource %s in unit %s has %s, needs %s",
				apperrors.ErrInsufficientStock, key.ResourceID, key.UnitID, prev.Amount, qty)
		}
		r.store.balances[key] = domain.Balance{
			ResourceID:    key.ResourceID,
			UnitID:        key.UnitID,
			Amount:        next,
			LastUpdatedAt: at,
		}
		return r.restore(key, prev, existed), nil
	})
}

func (r *balanceRepository) restore(key domain.BalanceKey, prev domain.Balance, existed bool) func() {
	return func() {
		if existed {
			r.store.balances[key] = prev
		} else {
			delete(r.store.balances, key)
		}
	}
}
