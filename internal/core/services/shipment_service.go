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

// shipmentService manages shipments through DRAFT and SIGNED. Only signing
// and revoking touch balances.
type shipmentService struct {
	BaseService
	shipmentRepo portsrepo.ShipmentReader
	txManager    portsrepo.TransactionManager
}

// NewShipmentService creates a new ShipmentService.
func NewShipmentService(shipmentRepo portsrepo.ShipmentReader, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.ShipmentSvcFacade {
	return &shipmentService{
		BaseService:  newBaseService(options...),
		shipmentRepo: shipmentRepo,
		txManager:    txManager,
	}
}

var _ portssvc.ShipmentSvcFacade = (*shipmentService)(nil)

// shipmentDraft is a validated create/update payload.
type shipmentDraft struct {
	number   string
	date     string
	clientID string
	items    []domain.LineItem
}

func newShipmentDraft(number, date, clientID string, reqItems []dto.LineItemRequest) (shipmentDraft, error) {
	n, err := normalizeNumber(number)
	if err != nil {
		return shipmentDraft{}, err
	}
	if clientID == "" {
		return shipmentDraft{}, fmt.Errorf("%w: client is required", apperrors.ErrValidation)
	}
	items := dto.ToLineItems(reqItems)
	if err := validateLineItems(items); err != nil {
		return shipmentDraft{}, err
	}
	return shipmentDraft{number: n, date: date, clientID: clientID, items: items}, nil
}

// check validates the draft against stored data.
func (d shipmentDraft) check(ctx context.Context, repos portsrepo.TxRepositories, excludeID string) error {
	if err := ensureShipmentNumberFree(ctx, repos.Shipments(), d.number, excludeID); err != nil {
		return err
	}
	if _, err := requireActiveReference(ctx, repos.References(), domain.KindClient, d.clientID); err != nil {
		return err
	}
	return checkItemReferences(ctx, repos.References(), d.items)
}

func (s *shipmentService) CreateShipment(ctx context.Context, req dto.CreateShipmentRequest, userID string) (shipment *domain.Shipment, err error) {
	start, now := time.Now(), s.Now()
	defer func() { metrics.ObserveLedgerOperation("shipment_create", start, err) }()

	draft, err := newShipmentDraft(req.Number, req.Date, req.ClientID, req.Items)
	if err != nil {
		return nil, err
	}
	date, err := resolveDate(draft.date, now)
	if err != nil {
		return nil, err
	}

	newShipment := domain.Shipment{
		ShipmentID: uuid.NewString(),
		Number:     draft.number,
		Date:       date,
		ClientID:   draft.clientID,
		State:      domain.ShipmentDraft,
		Items:      draft.items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := draft.check(ctx, repos, ""); err != nil {
			return err
		}
		return repos.Shipments().SaveShipment(ctx, newShipment)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create shipment", slog.String("number", draft.number))
		return nil, err
	}

	s.LogInfo(ctx, "Shipment drafted", slog.String("shipment_id", newShipment.ShipmentID), slog.String("number", draft.number))
	return &newShipment, nil
}

func (s *shipmentService) UpdateShipment(ctx context.Context, shipmentID string, req dto.UpdateShipmentRequest, userID string) (shipment *domain.Shipment, err error) {
	start, now := time.Now(), s.Now()
	defer func() { metrics.ObserveLedgerOperation("shipment_update", start, err) }()

	draft, err := newShipmentDraft(req.Number, req.Date, req.ClientID, req.Items)
	if err != nil {
		return nil, err
	}

	var updated domain.Shipment
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		existing, err := repos.Shipments().FindShipmentByIDForUpdate(ctx, shipmentID)
		if err != nil {
			return err
		}
		if existing.IsSigned() {
			return fmt.Errorf("%w: shipment %s is signed, revoke it before editing", apperrors.ErrInvalidState, existing.Number)
		}
		date, err := resolveDate(draft.date, existing.Date)
		if err != nil {
			return err
		}
		if err := draft.check(ctx, repos, shipmentID); err != nil {
			return err
		}

		updated = existing.Clone()
		updated.Number = draft.number
		updated.Date = date
		updated.ClientID = draft.clientID
		updated.Items = draft.items
		updated.LastUpdatedAt = now
		updated.LastUpdatedBy = userID
		return repos.Shipments().UpdateShipment(ctx, updated)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update shipment", slog.String("shipment_id", shipmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Shipment updated", slog.String("shipment_id", shipmentID))
	return &updated, nil
}

func (s *shipmentService) DeleteShipment(ctx context.Context, shipmentID string, userID string) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveLedgerOperation("shipment_delete", start, err) }()

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		existing, err := repos.Shipments().FindShipmentByIDForUpdate(ctx, shipmentID)
		if err != nil {
			return err
		}
		if existing.IsSigned() {
			return fmt.Errorf("%w: shipment %s is signed, revoke it before deleting", apperrors.ErrInvalidState, existing.Number)
		}
		return repos.Shipments().DeleteShipment(ctx, shipmentID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete shipment", slog.String("shipment_id", shipmentID))
		return err
	}

	s.LogInfo(ctx, "Shipment deleted", slog.String("shipment_id", shipmentID), slog.String("user_id", userID))
	return nil
}

// SignShipment deducts the shipment's items from stock. Signing a signed
// shipment returns it unchanged.
func (s *shipmentService) SignShipment(ctx context.Context, shipmentID string, userID string) (shipment *domain.Shipment, err error) {
	start, now := time.Now(), s.Now()
	defer func() { metrics.ObserveLedgerOperation("shipment_sign", start, err) }()

	var result domain.Shipment
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		existing, err := repos.Shipments().FindShipmentByIDForUpdate(ctx, shipmentID)
		if err != nil {
			return err
		}
		result = existing.Clone()
		if existing.IsSigned() {
			return nil
		}
		if len(existing.Items) == 0 {
			return fmt.Errorf("%w: shipment %s has no items", apperrors.ErrValidation, existing.Number)
		}
		if err := reconcile(ctx, newBalanceStore(repos.Balances(), now), domain.Aggregate(existing.Items).Negate()); err != nil {
			return err
		}
		if err := repos.Shipments().UpdateShipmentState(ctx, shipmentID, domain.ShipmentSigned, userID, now); err != nil {
			return err
		}
		result.State = domain.ShipmentSigned
		result.LastUpdatedAt = now
		result.LastUpdatedBy = userID
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to sign shipment", slog.String("shipment_id", shipmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Shipment signed", slog.String("shipment_id", shipmentID))
	return &result, nil
}

// RevokeShipment returns a signed shipment's items to stock. Revoking a
// draft returns it unchanged.
func (s *shipmentService) RevokeShipment(ctx context.Context, shipmentID string, userID string) (shipment *domain.Shipment, err error) {
	start, now := time.Now(), s.Now()
	defer func() { metrics.ObserveLedgerOperation("shipment_revoke", start, err) }()

	var result domain.Shipment
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		existing, err := repos.Shipments().FindShipmentByIDForUpdate(ctx, shipmentID)
		if err != nil {
			return err
		}
		result = existing.Clone()
		if !existing.IsSigned() {
			return nil
		}
		if err := reconcile(ctx, newBalanceStore(repos.Balances(), now), domain.Aggregate(existing.Items)); err != nil {
			return err
		}
		if err := repos.Shipments().UpdateShipmentState(ctx, shipmentID, domain.ShipmentDraft, userID, now); err != nil {
			return err
		}
		result.State = domain.ShipmentDraft
		result.LastUpdatedAt = now
		result.LastUpdatedBy = userID
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to revoke shipment", slog.String("shipment_id", shipmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Shipment revoked", slog.String("shipment_id", shipmentID))
	return &result, nil
}

func (s *shipmentService) GetShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	return s.shipmentRepo.FindShipmentByID(ctx, shipmentID)
}

func (s *shipmentService) SearchShipments(ctx context.Context, filter domain.MovementFilter) ([]domain.Shipment, error) {
	shipments, err := s.shipmentRepo.ListShipments(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to search shipments")
		return nil, err
	}
	return shipments, nil
}

func (s *shipmentService) ListShipmentNumbers(ctx context.Context) ([]string, error) {
	return s.shipmentRepo.ListShipmentNumbers(ctx)
}

func ensureShipmentNumberFree(ctx context.Context, repo portsrepo.ShipmentReader, number, excludeID string) error {
	exists, err := repo.ShipmentNumberExists(ctx, number, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %w: shipment number %q is already used", apperrors.ErrValidation, apperrors.ErrDuplicate, number)
	}
	return nil
}
