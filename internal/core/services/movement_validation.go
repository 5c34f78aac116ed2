package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/SscSPs/warehouse_management_app/internal/utils"
)

// normalizeNumber trims and collapses a movement number; blank numbers are rejected.
func normalizeNumber(raw string) (string, error) {
	number := utils.NormalizeText(raw)
	if number == "" {
		return "", fmt.Errorf("%w: number is required", apperrors.ErrValidation)
	}
	return number, nil
}

// resolveDate parses a wire date, falling back when it is empty.
func resolveDate(raw string, fallback time.Time) (time.Time, error) {
	date, err := dto.ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}
	if date == nil {
		return domain.DateOnly(fallback), nil
	}
	return domain.DateOnly(*date), nil
}

// validateLineItems checks shape and quantities without touching storage.
func validateLineItems(items []domain.LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one item is required", apperrors.ErrValidation)
	}
	for i, item := range items {
		if item.ResourceID == "" || item.UnitID == "" {
			return fmt.Errorf("%w: item %d: resource and unit are required", apperrors.ErrValidation, i+1)
		}
		if err := domain.ValidateQuantity(item.Quantity); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return nil
}

// checkItemReferences verifies every resource and unit exists and is active.
func checkItemReferences(ctx context.Context, refs portsrepo.ReferenceReader, items []domain.LineItem) error {
	seen := make(map[string]struct{})
	check := func(kind domain.ReferenceKind, id string) error {
		k := string(kind) + ":" + id
		if _, ok := seen[k]; ok {
			return nil
		}
		seen[k] = struct{}{}
		_, err := requireActiveReference(ctx, refs, kind, id)
		return err
	}
	for _, item := range items {
		if err := check(domain.KindResource, item.ResourceID); err != nil {
			return err
		}
		if err := check(domain.KindUnit, item.UnitID); err != nil {
			return err
		}
	}
	return nil
}

// requireActiveReference loads a reference and rejects archived ones.
func requireActiveReference(ctx context.Context, refs portsrepo.ReferenceReader, kind domain.ReferenceKind, id string) (*domain.Reference, error) {
	ref, err := refs.FindReferenceByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if !ref.IsActive() {
		return nil, fmt.Errorf("%w: %s %q is archived", apperrors.ErrArchivedReference, kind, ref.Name)
	}
	return ref, nil
}
