package repositories

import (
	"context"
)

// TxRepositories exposes repositories bound to one open transaction.
type TxRepositories interface {
	Balances() BalanceRepositoryFacade
	Receipts() ReceiptRepositoryFacade
	Shipments() ShipmentRepositoryFacade
	References() ReferenceRepositoryFacade
}

// TxFunc is the unit of work run inside a transaction.
type TxFunc func(ctx context.Context, repos TxRepositories) error

// TransactionManager runs units of work atomically.
type TransactionManager interface {
	// WithinTransaction begins a transaction, runs fn with repositories bound to it and
	// commits only if fn returns nil. Any error or panic rolls the transaction back;
	// panics are re-raised after rollback.
	WithinTransaction(ctx context.Context, fn TxFunc) error
}
