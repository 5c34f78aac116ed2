package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
)

// ShipmentReader defines read operations for shipment data
type ShipmentReader interface {
	// FindShipmentByID retrieves a shipment with its items.
	FindShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error)

	// ListShipments retrieves shipments matching filter, newest first.
	ListShipments(ctx context.Context, filter domain.MovementFilter) ([]domain.Shipment, error)

	// ShipmentNumberExists checks case-insensitively whether number is taken by a shipment other than excludeID.
	ShipmentNumberExists(ctx context.Context, number string, excludeID string) (bool, error)

	// ListShipmentNumbers returns the distinct shipment numbers in ascending order.
	ListShipmentNumbers(ctx context.Context) ([]string, error)
}

// ShipmentWriter defines write operations for shipment data
type ShipmentWriter interface {
	// FindShipmentByIDForUpdate retrieves a shipment and locks it for the rest of the transaction.
	FindShipmentByIDForUpdate(ctx context.Context, shipmentID string) (*domain.Shipment, error)

	// SaveShipment persists a new shipment with its items.
	SaveShipment(ctx context.Context, shipment domain.Shipment) error

	// UpdateShipment updates the header and replaces the whole item set.
	UpdateShipment(ctx context.Context, shipment domain.Shipment) error

	// UpdateShipmentState changes only the signing state.
	UpdateShipmentState(ctx context.Context, shipmentID string, state domain.ShipmentState, updatedBy string, updatedAt time.Time) error

	// DeleteShipment removes the shipment and its items.
	DeleteShipment(ctx context.Context, shipmentID string) error
}

// ShipmentRepositoryFacade combines all shipment-related repository interfaces
type ShipmentRepositoryFacade interface {
	ShipmentReader
	ShipmentWriter
}
