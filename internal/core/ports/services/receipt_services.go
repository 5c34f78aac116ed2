package services

import (
	"context"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
)

// ReceiptReaderSvc defines read operations for receipts
type ReceiptReaderSvc interface {
	GetReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)
	SearchReceipts(ctx context.Context, filter domain.MovementFilter) ([]domain.Receipt, error)
	ListReceiptNumbers(ctx context.Context) ([]string, error)
}

// ReceiptWriterSvc defines write operations for receipts. Every write
// reconciles balances in the same transaction.
type ReceiptWriterSvc interface {
	CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, userID string) (*domain.Receipt, error)
	UpdateReceipt(ctx context.Context, receiptID string, req dto.UpdateReceiptRequest, userID string) (*domain.Receipt, error)
	DeleteReceipt(ctx context.Context, receiptID string, userID string) error
}

// ReceiptSvcFacade combines all receipt-related service interfaces
type ReceiptSvcFacade interface {
	ReceiptReaderSvc
	ReceiptWriterSvc
}
