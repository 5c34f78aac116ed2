package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/SscSPs/warehouse_management_app/internal/middleware"
)

// reconcile applies a signed quantity delta to the balance store as one unit:
// every touched key is locked in order, every decrease is checked against the
// locked amount, and only then are the writes issued, decreases first.
// On any shortage nothing is written.
func reconcile(ctx context.Context, store *balanceStore, delta domain.QuantityMap) error {
	if len(delta) == 0 {
		return nil
	}
	keys := delta.Keys()

	current, err := store.Lock(ctx, keys)
	if err != nil {
		return err
	}

	var shortages []domain.BalanceKey
	for _, k := range keys {
		d := delta[k]
		if d.IsNegative() && current[k].Add(d).IsNegative() {
			shortages = append(shortages, k)
		}
	}
	if len(shortages) > 0 {
		k := shortages[0]
		middleware.GetLoggerFromCtx(ctx).Warn("Insufficient stock",
			slog.String("resource_id", k.ResourceID),
			slog.String("unit_id", k.UnitID),
			slog.String("available", current[k].String()),
			slog.String("requested", delta[k].Neg().String()),
			slog.Int("shortages", len(shortages)))
		return fmt.Errorf("%w: resource %s in unit %s has %s, needs %s",
			apperrors.ErrInsufficientStock, k.ResourceID, k.UnitID, current[k], delta[k].Neg())
	}

	for _, k := range keys {
		if d := delta[k]; d.IsNegative() {
			if err := store.Decrease(ctx, k, d.Neg()); err != nil {
				return err
			}
		}
	}
	for _, k := range keys {
		if d := delta[k]; d.IsPositive() {
			if err := store.Increase(ctx, k, d); err != nil {
				return err
			}
		}
	}
	return nil
}
