package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
)

type shipmentRepository struct {
	*scope
}

var _ portsrepo.ShipmentRepositoryFacade = (*shipmentRepository)(nil)

func (r *shipmentRepository) FindShipmentByID(_ context.Context, shipmentID string) (*domain.Shipment, error) {
	var (
		shipment domain.Shipment
		ok       bool
	)
	r.read(func() {
		shipment, ok = r.store.shipments[shipmentID]
		shipment = shipment.Clone()
	})
	if !ok {
		return nil, fmt.Errorf("%w: shipment %s", apperrors.ErrNotFound, shipmentID)
	}
	return &shipment, nil
}

func (r *shipmentRepository) FindShipmentByIDForUpdate(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	return r.FindShipmentByID(ctx, shipmentID)
}

func (r *shipmentRepository) ListShipments(_ context.Context, filter domain.MovementFilter) ([]domain.Shipment, error) {
	out := []domain.Shipment{}
	r.read(func() {
		for _, shipment := range r.store.shipments {
			if filter.MatchesShipment(shipment) {
				out = append(out, shipment.Clone())
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		return movementBefore(out[i].Date.Unix(), out[j].Date.Unix(), out[i].Number, out[j].Number)
	})
	return out, nil
}

func (r *shipmentRepository) ShipmentNumberExists(_ context.Context, number string, excludeID string) (bool, error) {
	var exists bool
	r.read(func() {
		exists = r.shipmentNumberTaken(number, excludeID)
	})
	return exists, nil
}

func (r *shipmentRepository) ListShipmentNumbers(_ context.Context) ([]string, error) {
	var numbers []string
	r.read(func() {
		for _, shipment := range r.store.shipments {
			numbers = append(numbers, shipment.Number)
		}
	})
	return distinctSorted(numbers), nil
}

func (r *shipmentRepository) SaveShipment(_ context.Context, shipment domain.Shipment) error {
	return r.write(func() (func(), error) {
		if _, exists := r.store.shipments[shipment.ShipmentID]; exists {
			return nil, fmt.Errorf("%w: shipment %s", apperrors.ErrDuplicate, shipment.ShipmentID)
		}
		if r.shipmentNumberTaken(shipment.Number, "") {
			return nil, fmt.Errorf("%w: %w: shipment number %q", apperrors.ErrValidation, apperrors.ErrDuplicate, shipment.Number)
		}
		r.store.shipments[shipment.ShipmentID] = shipment.Clone()
		return func() { delete(r.store.shipments, shipment.ShipmentID) }, nil
	})
}

func (r *shipmentRepository) UpdateShipment(_ context.Context, shipment domain.Shipment) error {
	return r.write(func() (func(), error) {
		prev, ok := r.store.shipments[shipment.ShipmentID]
		if !ok {
			return nil, fmt.Errorf("%w: shipment %s", apperrors.ErrNotFound, shipment.ShipmentID)
		}
		if r.shipmentNumberTaken(shipment.Number, shipment.ShipmentID) {
			return nil, fmt.Errorf("%w: %w: shipment number %q", apperrors.ErrValidation, apperrors.ErrDuplicate, shipment.Number)
		}
		r.store.shipments[shipment.ShipmentID] = shipment.Clone()
		return func() { r.store.shipments[shipment.ShipmentID] = prev }, nil
	})
}

func (r *shipmentRepository) UpdateShipmentState(_ context.Context, shipmentID string, state domain.ShipmentState, updatedBy string, updatedAt time.Time) error {
	return r.write(func() (func(), error) {
		prev, ok := r.store.shipments[shipmentID]
		if !ok {
			return nil, fmt.Errorf("%w: shipment %s", apperrors.ErrNotFound, shipmentID)
		}
		next := prev.Clone()
		next.State = state
		next.LastUpdatedAt = updatedAt
		next.LastUpdatedBy = updatedBy
		r.store.shipments[shipmentID] = next
		return func() { r.store.shipments[shipmentID] = prev }, nil
	})
}

func (r *shipmentRepository) DeleteShipment(_ context.Context, shipmentID string) error {
	return r.write(func() (func(), error) {
		prev, ok := r.store.shipments[shipmentID]
		if !ok {
			return nil, fmt.Errorf("%w: shipment %s", apperrors.ErrNotFound, shipmentID)
		}
		delete(r.store.shipments, shipmentID)
		return func() { r.store.shipments[shipmentID] = prev }, nil
	})
}

// shipmentNumberTaken must be called with the store lock held.
func (r *shipmentRepository) shipmentNumberTaken(number, excludeID string) bool {
	for id, shipment := range r.store.shipments {
		if id != excludeID && strings.EqualFold(shipment.Number, number) {
			return true
		}
	}
	return false
}
