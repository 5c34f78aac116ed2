package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/SscSPs/warehouse_management_app/internal/platform/metrics"
	"github.com/google/uuid"
)

// receiptService keeps receipts and balances in step. A receipt's items add
// to balances for as long as the receipt exists.
type receiptService struct {
	BaseService
	receiptRepo portsrepo.ReceiptReader
	txManager   portsrepo.TransactionManager
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(receiptRepo portsrepo.ReceiptReader, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.ReceiptSvcFacade {
	return &receiptService{
		BaseService: newBaseService(options...),
		receiptRepo: receiptRepo,
		txManager:   txManager,
	}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

func (s *receiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, userID string) (receipt *domain.Receipt, err error) {
	start, now := time.Now(), s.Now()
	defer func() { metrics.ObserveLedgerOperation("receipt_create", start, err) }()

	number, err := normalizeNumber(req.Number)
	if err != nil {
		return nil, err
	}
	date, err := resolveDate(req.Date, now)
	if err != nil {
		return nil, err
	}
	items := dto.ToLineItems(req.Items)
	if err = validateLineItems(items); err != nil {
		return nil, err
	}

	newReceipt := domain.Receipt{
		ReceiptID: uuid.NewString(),
		Number:    number,
		Date:      date,
		Items:     items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := ensureReceiptNumberFree(ctx, repos.Receipts(), number, ""); err != nil {
			return err
		}
		if err := checkItemReferences(ctx, repos.References(), items); err != nil {
			return err
		}
		if err := repos.Receipts().SaveReceipt(ctx, newReceipt); err != nil {
			return err
		}
		return reconcile(ctx, newBalanceStore(repos.Balances(), now), domain.Aggregate(items))
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create receipt", slog.String("number", number))
		return nil, err
	}

	s.LogInfo(ctx, "Receipt created", slog.String("receipt_id", newReceipt.ReceiptID), slog.String("number", number), slog.Int("items", len(items)))
	return &newReceipt, nil
}

func (s *receiptService) UpdateReceipt(ctx context.Context, receiptID string, req dto.UpdateReceiptRequest, userID string) (receipt *domain.Receipt, err error) {
	start, now := time.Now(), s.Now()
	defer func() { metrics.ObserveLedgerOperation("receipt_update", start, err) }()

	number, err := normalizeNumber(req.Number)
	if err != nil {
		return nil, err
	}
	items := dto.ToLineItems(req.Items)
	if err = validateLineItems(items); err != nil {
		return nil, err
	}

	var updated domain.Receipt
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		existing, err := repos.Receipts().FindReceiptByIDForUpdate(ctx, receiptID)
		if err != nil {
			return err
		}
		date, err := resolveDate(req.Date, existing.Date)
		if err != nil {
			return err
		}
		if err := ensureReceiptNumberFree(ctx, repos.Receipts(), number, receiptID); err != nil {
			return err
		}
		if err := checkItemReferences(ctx, repos.References(), items); err != nil {
			return err
		}

		delta := domain.Delta(domain.Aggregate(existing.Items), domain.Aggregate(items))
		if err := reconcile(ctx, newBalanceStore(repos.Balances(), now), delta); err != nil {
			return err
		}

		updated = existing.Clone()
		updated.Number = number
		updated.Date = date
		updated.Items = items
		updated.LastUpdatedAt = now
		updated.LastUpdatedBy = userID
		return repos.Receipts().UpdateReceipt(ctx, updated)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update receipt", slog.String("receipt_id", receiptID))
		return nil, err
	}

	s.LogInfo(ctx, "Receipt updated", slog.String("receipt_id", receiptID))
	return &updated, nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, receiptID string, userID string) (err error) {
	start, now := time.Now(), s.Now()
	defer func() { metrics.ObserveLedgerOperation("receipt_delete", start, err) }()

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		existing, err := repos.Receipts().FindReceiptByIDForUpdate(ctx, receiptID)
		if err != nil {
			return err
		}
		if err := reconcile(ctx, newBalanceStore(repos.Balances(), now), domain.Aggregate(existing.Items).Negate()); err != nil {
			return err
		}
		return repos.Receipts().DeleteReceipt(ctx, receiptID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete receipt", slog.String("receipt_id", receiptID))
		return err
	}

	s.LogInfo(ctx, "Receipt deleted", slog.String("receipt_id", receiptID), slog.String("user_id", userID))
	return nil
}

func (s *receiptService) GetReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *receiptService) SearchReceipts(ctx context.Context, filter domain.MovementFilter) ([]domain.Receipt, error) {
	receipts, err := s.receiptRepo.ListReceipts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to search receipts")
		return nil, err
	}
	return receipts, nil
}

func (s *receiptService) ListReceiptNumbers(ctx context.Context) ([]string, error) {
	return s.receiptRepo.ListReceiptNumbers(ctx)
}

func ensureReceiptNumberFree(ctx context.Context, repo portsrepo.ReceiptReader, number, excludeID string) error {
	exists, err := repo.ReceiptNumberExists(ctx, number, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %w: receipt number %q is already used", apperrors.ErrValidation, apperrors.ErrDuplicate, number)
	}
	return nil
}
