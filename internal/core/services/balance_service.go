package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

const balanceSheet = "Balances"

// balanceService serves read access to balances. It never writes them.
type balanceService struct {
	BaseService
	balanceRepo   portsrepo.BalanceReader
	referenceRepo portsrepo.ReferenceReader
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(balanceRepo portsrepo.BalanceReader, referenceRepo portsrepo.ReferenceReader, options ...ServiceOption) portssvc.BalanceSvcFacade {
	return &balanceService{
		BaseService:   newBaseService(options...),
		balanceRepo:   balanceRepo,
		referenceRepo: referenceRepo,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

func (s *balanceService) SearchBalances(ctx context.Context, filter domain.BalanceFilter) ([]domain.Balance, error) {
	balances, err := s.balanceRepo.ListBalances(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list balances")
		return nil, err
	}
	return balances, nil
}

// ExportBalances writes the filtered balances into a single-sheet workbook
// with reference names resolved.
func (s *balanceService) ExportBalances(ctx context.Context, filter domain.BalanceFilter) ([]byte, error) {
	balances, err := s.SearchBalances(ctx, filter)
	if err != nil {
		return nil, err
	}
	resourceNames, err := s.referenceNames(ctx, domain.KindResource)
	if err != nil {
		return nil, err
	}
	unitNames, err := s.referenceNames(ctx, domain.KindUnit)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), balanceSheet); err != nil {
		return nil, s.exportError(ctx, err)
	}
	if err := f.SetSheetRow(balanceSheet, "A1", &[]any{"Resource", "Unit", "Amount"}); err != nil {
		return nil, s.exportError(ctx, err)
	}
	for i, b := range balances {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, s.exportError(ctx, err)
		}
		amount, _ := b.Amount.Float64()
		row := []any{nameOr(resourceNames, b.ResourceID), nameOr(unitNames, b.UnitID), amount}
		if err := f.SetSheetRow(balanceSheet, cell, &row); err != nil {
			return nil, s.exportError(ctx, err)
		}
	}
	if err := f.SetColWidth(balanceSheet, "A", "B", 32); err != nil {
		return nil, s.exportError(ctx, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, s.exportError(ctx, err)
	}
	return buf.Bytes(), nil
}

func (s *balanceService) referenceNames(ctx context.Context, kind domain.ReferenceKind) (map[string]string, error) {
	refs, err := s.referenceRepo.ListReferences(ctx, kind, nil)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(refs))
	for _, r := range refs {
		names[r.ID] = r.Name
	}
	return names, nil
}

func (s *balanceService) exportError(ctx context.Context, err error) error {
	s.LogError(ctx, err, "Failed to build balance workbook")
	return apperrors.NewAppError(500, "failed to build balance export", fmt.Errorf("%w: %w", apperrors.ErrInternal, err))
}

func nameOr(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}
