package repositories

import (
	"context"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
)

// ReceiptReader defines read operations for receipt data
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt with its items.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// ListReceipts retrieves receipts matching filter, newest first.
	ListReceipts(ctx context.Context, filter domain.MovementFilter) ([]domain.Receipt, error)

	// ReceiptNumberExists checks case-insensitively whether number is taken by a receipt other than excludeID.
	ReceiptNumberExists(ctx context.Context, number string, excludeID string) (bool, error)

	// ListReceiptNumbers returns the distinct receipt numbers in ascending order.
	ListReceiptNumbers(ctx context.Context) ([]string, error)
}

// ReceiptWriter defines write operations for receipt data
type ReceiptWriter interface {
	// FindReceiptByIDForUpdate retrieves a receipt and locks it for the rest of the transaction.
	FindReceiptByIDForUpdate(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// SaveReceipt persists a new receipt with its items.
	SaveReceipt(ctx context.Context, receipt domain.Receipt) error

	// UpdateReceipt updates the header and replaces the whole item set.
	UpdateReceipt(ctx context.Context, receipt domain.Receipt) error

	// DeleteReceipt removes the receipt and its items.
	DeleteReceipt(ctx context.Context, receiptID string) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
