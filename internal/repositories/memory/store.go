// Package memory is an in-process implementation of the repository ports.
// Transactions are serialized behind a single writer lock and rolled back
// through an undo log, so every transaction observes a serializable history.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
)

// Store holds all warehouse data in memory.
type Store struct {
	mu         sync.RWMutex
	balances   map[domain.BalanceKey]domain.Balance
	receipts   map[string]domain.Receipt
	shipments  map[string]domain.Shipment
	references map[domain.ReferenceKind]map[string]domain.Reference
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		balances:  make(map[domain.BalanceKey]domain.Balance),
		receipts:  make(map[string]domain.Receipt),
		shipments: make(map[string]domain.Shipment),
		references: map[domain.ReferenceKind]map[string]domain.Reference{
			domain.KindResource: {},
			domain.KindUnit:     {},
			domain.KindClient:   {},
		},
	}
}

// NewRepositoryProvider exposes the store through the repository ports.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	r := &scope{store: s}
	return portsrepo.RepositoryProvider{
		BalanceRepo:   r.Balances(),
		ReceiptRepo:   r.Receipts(),
		ShipmentRepo:  r.Shipments(),
		ReferenceRepo: r.References(),
		TxManager:     s,
	}
}

var _ portsrepo.TransactionManager = (*Store)(nil)

// WithinTransaction runs fn while holding the writer lock. Changes made by fn
// are undone when it returns an error or panics.
func (s *Store) WithinTransaction(ctx context.Context, fn portsrepo.TxFunc) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{}
	defer func() {
		if p := recover(); p != nil {
			t.rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, &scope{store: s, tx: t}); err != nil {
		t.rollback()
		return err
	}
	return nil
}

// tx is the undo log of one open transaction.
type tx struct {
	undo []func()
}

func (t *tx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

// scope binds repositories either to an open transaction or to the store
// directly, in which case each call takes the lock itself.
type scope struct {
	store *Store
	tx    *tx
}

var _ portsrepo.TxRepositories = (*scope)(nil)

func (r *scope) Balances() portsrepo.BalanceRepositoryFacade     { return &balanceRepository{r} }
func (r *scope) Receipts() portsrepo.ReceiptRepositoryFacade     { return &receiptRepository{r} }
func (r *scope) Shipments() portsrepo.ShipmentRepositoryFacade   { return &shipmentRepository{r} }
func (r *scope) References() portsrepo.ReferenceRepositoryFacade { return &referenceRepository{r} }

func (r *scope) read(fn func()) {
	if r.tx == nil {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	fn()
}

// write runs fn, which applies a change and returns the function that reverts it.
func (r *scope) write(fn func() (undo func(), err error)) error {
	if r.tx == nil {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
		_, err := fn()
		return err
	}
	undo, err := fn()
	if err != nil {
		return err
	}
	if undo != nil {
		r.tx.undo = append(r.tx.undo, undo)
	}
	return nil
}
