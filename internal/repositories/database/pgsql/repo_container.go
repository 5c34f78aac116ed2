package pgsql

import (
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool}

	return portsrepo.RepositoryProvider{
		BalanceRepo:   &PgxBalanceRepository{BaseRepository: base},
		ReceiptRepo:   &PgxReceiptRepository{BaseRepository: base},
		ShipmentRepo:  &PgxShipmentRepository{BaseRepository: base},
		ReferenceRepo: &PgxReferenceRepository{BaseRepository: base},
		TxManager:     newPgxTxManager(dbPool),
	}
}
