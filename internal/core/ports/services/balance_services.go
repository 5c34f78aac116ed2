package services

import (
	"context"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
)

// BalanceSvcFacade exposes read access to the balance ledger.
type BalanceSvcFacade interface {
	SearchBalances(ctx context.Context, filter domain.BalanceFilter) ([]domain.Balance, error)
	// ExportBalances renders the filtered balances as an xlsx workbook.
	ExportBalances(ctx context.Context, filter domain.BalanceFilter) ([]byte, error)
}

// LedgerAuditSvc recomputes balances from movements and compares them with the stored rows.
type LedgerAuditSvc interface {
	VerifyBalances(ctx context.Context) (*dto.LedgerAuditReport, error)
}
