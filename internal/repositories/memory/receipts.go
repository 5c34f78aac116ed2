package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
)

type receiptRepository struct {
	*scope
}

var _ portsrepo.ReceiptRepositoryFacade = (*receiptRepository)(nil)

func (r *receiptRepository) FindReceiptByID(_ context.Context, receiptID string) (*domain.Receipt, error) {
	var (
		receipt domain.Receipt
		ok      bool
	)
	r.read(func() {
		receipt, ok = r.store.receipts[receiptID]
		receipt = receipt.Clone()
	})
	if !ok {
		return nil, fmt.Errorf("%w: receipt %s", apperrors.ErrNotFound, receiptID)
	}
	return &receipt, nil
}

func (r *receiptRepository) FindReceiptByIDForUpdate(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	return r.FindReceiptByID(ctx, receiptID)
}

func (r *receiptRepository) ListReceipts(_ context.Context, filter domain.MovementFilter) ([]domain.Receipt, error) {
	out := []domain.Receipt{}
	r.read(func() {
		for _, receipt := range r.store.receipts {
			if filter.MatchesReceipt(receipt) {
				out = append(out, receipt.Clone())
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		return movementBefore(out[i].Date.Unix(), out[j].Date.Unix(), out[i].Number, out[j].Number)
	})
	return out, nil
}

func (r *receiptRepository) ReceiptNumberExists(_ context.Context, number string, excludeID string) (bool, error) {
	var exists bool
	r.read(func() {
		exists = r.receiptNumberTaken(number, excludeID)
	})
	return exists, nil
}

func (r *receiptRepository) ListReceiptNumbers(_ context.Context) ([]string, error) {
	var numbers []string
	r.read(func() {
		for _, receipt := range r.store.receipts {
			numbers = append(numbers, receipt.Number)
		}
	})
	return distinctSorted(numbers), nil
}

func (r *receiptRepository) SaveReceipt(_ context.Context, receipt domain.Receipt) error {
	return r.write(func() (func(), error) {
		if _, exists := r.store.receipts[receipt.ReceiptID]; exists {
			return nil, fmt.Errorf("%w: receipt %s", apperrors.ErrDuplicate, receipt.ReceiptID)
		}
		if r.receiptNumberTaken(receipt.Number, "") {
			return nil, fmt.Errorf("%w: %w: receipt number %q", apperrors.ErrValidation, apperrors.ErrDuplicate, receipt.Number)
		}
		r.store.receipts[receipt.ReceiptID] = receipt.Clone()
		return func() { delete(r.store.receipts, receipt.ReceiptID) }, nil
	})
}

func (r *receiptRepository) UpdateReceipt(_ context.Context, receipt domain.Receipt) error {
	return r.write(func() (func(), error) {
		prev, ok := r.store.receipts[receipt.ReceiptID]
		if !ok {
			return nil, fmt.Errorf("%w: receipt %s", apperrors.ErrNotFound, receipt.ReceiptID)
		}
		if r.receiptNumberTaken(receipt.Number, receipt.ReceiptID) {
			return nil, fmt.Errorf("%w: %w: receipt number %q", apperrors.ErrValidation, apperrors.ErrDuplicate, receipt.Number)
		}
		r.store.receipts[receipt.ReceiptID] = receipt.Clone()
		return func() { r.store.receipts[receipt.ReceiptID] = prev }, nil
	})
}

func (r *receiptRepository) DeleteReceipt(_ context.Context, receiptID string) error {
	return r.write(func() (func(), error) {
		prev, ok := r.store.receipts[receiptID]
		if !ok {
			return nil, fmt.Errorf("%w: receipt %s", apperrors.ErrNotFound, receiptID)
		}
		delete(r.store.receipts, receiptID)
		return func() { r.store.receipts[receiptID] = prev }, nil
	})
}

// receiptNumberTaken must be called with the store lock held.
func (r *receiptRepository) receiptNumberTaken(number, excludeID string) bool {
	for id, receipt := range r.store.receipts {
		if id != excludeID && strings.EqualFold(receipt.Number, number) {
			return true
		}
	}
	return false
}

// movementBefore orders movements by date descending, then number ascending.
func movementBefore(dateA, dateB int64, numberA, numberB string) bool {
	if dateA != dateB {
		return dateA > dateB
	}
	return numberA < numberB
}

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
