package pgsql

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/warehouse_management_app/internal/models"
	"github.com/SscSPs/warehouse_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxBalanceRepository struct {
	BaseRepository
}

var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

const (
	findBalanceQuery = `SELECT amount FROM balances WHERE resource_id = $1 AND unit_id = $2`

	// Materialises missing rows so that FOR UPDATE has something to lock.
	ensureBalancesQuery = `
		INSERT INTO balances (resource_id, unit_id, amount, last_updated_at)
		SELECT k.resource_id, k.unit_id, 0, now()
		FROM unnest($1::text[], $2::text[]) AS k(resource_id, unit_id)
		ON CONFLICT (resource_id, unit_id) DO NOTHING`

	lockBalancesQuery = `
		SELECT b.resource_id, b.unit_id, b.amount
		FROM balances b
		JOIN unnest($1::text[], $2::text[]) AS k(resource_id, unit_id)
		  ON b.resource_id = k.resource_id AND b.unit_id = k.unit_id
		ORDER BY b.resource_id COLLATE "C", b.unit_id COLLATE "C"
		FOR UPDATE OF b`

	increaseBalanceQuery = `
		INSERT INTO balances (resource_id, unit_id, amount, last_updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (resource_id, unit_id)
		DO UPDATE SET amount = balances.amount + EXCLUDED.amount, last_updated_at = EXCLUDED.last_updated_at`

	decreaseBalanceQuery = `
		UPDATE balances
		SET amount = amount - $3, last_updated_at = $4
		WHERE resource_id = $1 AND unit_id = $2 AND amount >= $3`
)

// FindBalance returns zero when no row exists for key.
func (r *PgxBalanceRepository) FindBalance(ctx context.Context, key domain.BalanceKey) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := r.db().QueryRow(ctx, findBalanceQuery, key.ResourceID, key.UnitID).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to get balance "+key.String(), err)
	}
	return amount, nil
}

func (r *PgxBalanceRepository) ListBalances(ctx context.Context, filter domain.BalanceFilter) ([]domain.Balance, error) {
	var where whereBuilder
	if len(filter.ResourceIDs) > 0 {
		where.add("resource_id = ANY(" + where.arg(filter.ResourceIDs) + ")")
	}
	if len(filter.UnitIDs) > 0 {
		where.add("unit_id = ANY(" + where.arg(filter.UnitIDs) + ")")
	}
	query := `SELECT resource_id, unit_id, amount, last_updated_at FROM balances` + where.String() +
		` ORDER BY resource_id COLLATE "C", unit_id COLLATE "C"`

	rows, err := r.db().Query(ctx, query, where.args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list balances", err)
	}
	defer rows.Close()

	balances := []models.Balance{}
	for rows.Next() {
		var b models.Balance
		if err := rows.Scan(&b.ResourceID, &b.UnitID, &b.Amount, &b.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to list balances", err)
	}
	return mapping.ToDomainBalanceSlice(balances), nil
}

// LockBalances takes row locks on keys in (resource, unit) order.
func (r *PgxBalanceRepository) LockBalances(ctx context.Context, keys []domain.BalanceKey) (map[domain.BalanceKey]decimal.Decimal, error) {
	if err := r.requireTx("lock balances"); err != nil {
		return nil, err
	}
	sorted := slices.Clone(keys)
	slices.SortFunc(sorted, func(a, b domain.BalanceKey) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	resourceIDs := make([]string, len(sorted))
	unitIDs := make([]string, len(sorted))
	for i, k := range sorted {
		resourceIDs[i], unitIDs[i] = k.ResourceID, k.UnitID
	}

	if _, err := r.db().Exec(ctx, ensureBalancesQuery, resourceIDs, unitIDs); err != nil {
		return nil, mapWriteError(err, "balance rows")
	}

	rows, err := r.db().Query(ctx, lockBalancesQuery, resourceIDs, unitIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock balances", err)
	}
	defer rows.Close()

	out := make(map[domain.BalanceKey]decimal.Decimal, len(sorted))
	for rows.Next() {
		var (
			key    domain.BalanceKey
			amount decimal.Decimal
		)
		if err := rows.Scan(&key.ResourceID, &key.UnitID, &amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked balance", err)
		}
		out[key] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock balances", err)
	}
	return out, nil
}

func (r *PgxBalanceRepository) IncreaseBalance(ctx context.Context, key domain.BalanceKey, qty decimal.Decimal, at time.Time) error {
	if _, err := r.db().Exec(ctx, increaseBalanceQuery, key.ResourceID, key.UnitID, qty, at); err != nil {
		return mapWriteError(err, "balance "+key.String())
	}
	return nil
}

func (r *PgxBalanceRepository) DecreaseBalance(ctx context.Context, key domain.BalanceKey, qty decimal.Decimal, at time.Time) error {
	tag, err := r.db().Exec(ctx, decreaseBalanceQuery, key.ResourceID, key.UnitID, qty, at)
	if err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return fmt.Errorf("%w: resource %s in unit %s, needs %s", apperrors.ErrInsufficientStock, key.ResourceID, key.UnitID, qty)
		}
		return apperrors.NewAppError(500, "failed to decrease balance "+key.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: resource %s in unit %s, needs %s", apperrors.ErrInsufficientStock, key.ResourceID, key.UnitID, qty)
	}
	return nil
}
