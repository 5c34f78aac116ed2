package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/warehouse_management_app/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTxManager runs units of work inside a Postgres transaction.
type PgxTxManager struct {
	BaseRepository
}

func newPgxTxManager(pool *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*PgxTxManager)(nil)

// WithinTransaction commits when fn returns nil and rolls back on error or panic.
func (m *PgxTxManager) WithinTransaction(ctx context.Context, fn portsrepo.TxFunc) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = m.Rollback(context.WithoutCancel(ctx), tx)
			panic(p)
		}
	}()

	if err := fn(ctx, newTxRepositories(m.Pool, tx)); err != nil {
		if rbErr := m.Rollback(context.WithoutCancel(ctx), tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Rollback failed", "error", rbErr)
		}
		return err
	}
	return m.Commit(ctx, tx)
}

// txRepositories binds every repository to one transaction.
type txRepositories struct {
	base BaseRepository
}

func newTxRepositories(pool *pgxpool.Pool, tx pgx.Tx) *txRepositories {
	return &txRepositories{base: BaseRepository{Pool: pool, Tx: tx}}
}

var _ portsrepo.TxRepositories = (*txRepositories)(nil)

func (t *txRepositories) Balances() portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{BaseRepository: t.base}
}

func (t *txRepositories) Receipts() portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{BaseRepository: t.base}
}

func (t *txRepositories) Shipments() portsrepo.ShipmentRepositoryFacade {
	return &PgxShipmentRepository{BaseRepository: t.base}
}

func (t *txRepositories) References() portsrepo.ReferenceRepositoryFacade {
	return &PgxReferenceRepository{BaseRepository: t.base}
}
