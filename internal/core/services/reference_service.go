package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/SscSPs/warehouse_management_app/internal/utils"
	"github.com/google/uuid"
)

// referenceService manages the resource, unit and client catalogues.
type referenceService struct {
	BaseService
	referenceRepo portsrepo.ReferenceReader
	txManager     portsrepo.TransactionManager
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(referenceRepo portsrepo.ReferenceReader, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.ReferenceSvcFacade {
	return &referenceService{
		BaseService:   newBaseService(options...),
		referenceRepo: referenceRepo,
		txManager:     txManager,
	}
}

var _ portssvc.ReferenceSvcFacade = (*referenceService)(nil)

func checkKind(kind domain.ReferenceKind) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: unknown reference kind %q", apperrors.ErrValidation, kind)
	}
	return nil
}

func normalizeName(kind domain.ReferenceKind, raw string) (string, error) {
	name := utils.NormalizeText(raw)
	if name == "" {
		return "", fmt.Errorf("%w: %s name is required", apperrors.ErrValidation, kind)
	}
	return name, nil
}

func ensureNameFree(ctx context.Context, repo portsrepo.ReferenceReader, kind domain.ReferenceKind, name, excludeID string) error {
	exists, err := repo.ReferenceNameExists(ctx, kind, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %w: %s %q already exists", apperrors.ErrValidation, apperrors.ErrDuplicate, kind, name)
	}
	return nil
}

func (s *referenceService) CreateReference(ctx context.Context, kind domain.ReferenceKind, req dto.ReferenceRequest, userID string) (*domain.Reference, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	name, err := normalizeName(kind, req.Name)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	ref := domain.Reference{
		ID:    uuid.NewString(),
		Kind:  kind,
		Name:  name,
		State: domain.StateActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if kind == domain.KindClient {
		ref.Address = utils.NormalizeText(req.Address)
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := ensureNameFree(ctx, repos.References(), kind, name, ""); err != nil {
			return err
		}
		return repos.References().SaveReference(ctx, ref)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create reference", slog.String("kind", string(kind)), slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Reference created", slog.String("kind", string(kind)), slog.String("id", ref.ID))
	return &ref, nil
}

func (s *referenceService) UpdateReference(ctx context.Context, kind domain.ReferenceKind, id string, req dto.ReferenceRequest, userID string) (*domain.Reference, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	name, err := normalizeName(kind, req.Name)
	if err != nil {
		return nil, err
	}

	var updated domain.Reference
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		existing, err := repos.References().FindReferenceByID(ctx, kind, id)
		if err != nil {
			return err
		}
		if err := ensureNameFree(ctx, repos.References(), kind, name, id); err != nil {
			return err
		}
		updated = *existing
		updated.Name = name
		if kind == domain.KindClient {
			updated.Address = utils.NormalizeText(req.Address)
		}
		updated.LastUpdatedAt = s.Now()
		updated.LastUpdatedBy = userID
		return repos.References().UpdateReference(ctx, updated)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update reference", slog.String("kind", string(kind)), slog.String("id", id))
		return nil, err
	}
	return &updated, nil
}

// SetReferenceState archives or re-activates a reference. Archiving never
// affects existing movements.
func (s *referenceService) SetReferenceState(ctx context.Context, kind domain.ReferenceKind, id string, state domain.EntityState, userID string) (*domain.Reference, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	if !state.IsValid() {
		return nil, fmt.Errorf("%w: unknown state %q", apperrors.ErrValidation, state)
	}

	var updated domain.Reference
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		existing, err := repos.References().FindReferenceByID(ctx, kind, id)
		if err != nil {
			return err
		}
		updated = *existing
		if existing.State == state {
			return nil
		}
		updated.State = state
		updated.LastUpdatedAt = s.Now()
		updated.LastUpdatedBy = userID
		return repos.References().UpdateReference(ctx, updated)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to change reference state", slog.String("kind", string(kind)), slog.String("id", id))
		return nil, err
	}
	return &updated, nil
}

// DeleteReference removes a reference nobody points at. Used references must be archived instead.
func (s *referenceService) DeleteReference(ctx context.Context, kind domain.ReferenceKind, id string) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if _, err := repos.References().FindReferenceByID(ctx, kind, id); err != nil {
			return err
		}
		inUse, err := repos.References().IsReferenceInUse(ctx, kind, id)
		if err != nil {
			return err
		}
		if inUse {
			return fmt.Errorf("%w: %s is used, archive it instead", apperrors.ErrInvalidState, kind)
		}
		return repos.References().DeleteReference(ctx, kind, id)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete reference", slog.String("kind", string(kind)), slog.String("id", id))
		return err
	}
	return nil
}

func (s *referenceService) GetReference(ctx context.Context, kind domain.ReferenceKind, id string) (*domain.Reference, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return s.referenceRepo.FindReferenceByID(ctx, kind, id)
}

func (s *referenceService) ListReferences(ctx context.Context, kind domain.ReferenceKind, state *domain.EntityState) ([]domain.Reference, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return s.referenceRepo.ListReferences(ctx, kind, state)
}
