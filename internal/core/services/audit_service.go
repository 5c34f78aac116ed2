package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
)

// ledgerAuditService recomputes every balance as the sum of receipt items
// minus the items of signed shipments and reports rows that disagree.
type ledgerAuditService struct {
	BaseService
	txManager portsrepo.TransactionManager
}

// NewLedgerAuditService creates a new LedgerAuditSvc.
func NewLedgerAuditService(txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.LedgerAuditSvc {
	return &ledgerAuditService{
		BaseService: newBaseService(options...),
		txManager:   txManager,
	}
}

var _ portssvc.LedgerAuditSvc = (*ledgerAuditService)(nil)

func (s *ledgerAuditService) VerifyBalances(ctx context.Context) (*dto.LedgerAuditReport, error) {
	report := &dto.LedgerAuditReport{Drifts: []dto.BalanceDrift{}}

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		receipts, err := repos.Receipts().ListReceipts(ctx, domain.MovementFilter{})
		if err != nil {
			return err
		}
		signed := domain.ShipmentSigned
		shipments, err := repos.Shipments().ListShipments(ctx, domain.MovementFilter{State: &signed})
		if err != nil {
			return err
		}
		balances, err := repos.Balances().ListBalances(ctx, domain.BalanceFilter{})
		if err != nil {
			return err
		}

		var items []domain.LineItem
		for _, r := range receipts {
			items = append(items, r.Items...)
		}
		expected := domain.Aggregate(items)
		for _, sh := range shipments {
			expected = domain.Delta(domain.Aggregate(sh.Items), expected)
		}

		stored := make(domain.QuantityMap, len(balances))
		for _, b := range balances {
			if !b.Amount.IsZero() {
				stored[b.Key()] = b.Amount
			}
		}

		// every key with a nonzero difference, plus any stored negative amount
		diff := domain.Delta(expected, stored)
		for _, b := range balances {
			if b.Amount.IsNegative() {
				diff[b.Key()] = b.Amount
			}
		}
		for _, k := range diff.Keys() {
			report.Drifts = append(report.Drifts, dto.BalanceDrift{
				ResourceID: k.ResourceID,
				UnitID:     k.UnitID,
				Stored:     stored.Get(k),
				Expected:   expected.Get(k),
			})
		}
		report.CheckedKeys = len(unionKeys(expected, stored))
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Ledger audit failed")
		return nil, err
	}

	if !report.OK() {
		s.GetLogger(ctx).Warn("Ledger audit found drift", slog.Int("drifts", len(report.Drifts)))
	}
	return report, nil
}

func unionKeys(a, b domain.QuantityMap) map[domain.BalanceKey]struct{} {
	out := make(map[domain.BalanceKey]struct{}, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}
