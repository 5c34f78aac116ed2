package services

import (
	"context"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
)

// ShipmentReaderSvc defines read operations for shipments
type ShipmentReaderSvc interface {
	GetShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error)
	SearchShipments(ctx context.Context, filter domain.MovementFilter) ([]domain.Shipment, error)
	ListShipmentNumbers(ctx context.Context) ([]string, error)
}

// ShipmentWriterSvc defines write operations on draft shipments.
type ShipmentWriterSvc interface {
	CreateShipment(ctx context.Context, req dto.CreateShipmentRequest, userID string) (*domain.Shipment, error)
	UpdateShipment(ctx context.Context, shipmentID string, req dto.UpdateShipmentRequest, userID string) (*domain.Shipment, error)
	DeleteShipment(ctx context.Context, shipmentID string, userID string) error
}

// ShipmentSigningSvc moves shipments between DRAFT and SIGNED.
// Both operations are idempotent.
type ShipmentSigningSvc interface {
	SignShipment(ctx context.Context, shipmentID string, userID string) (*domain.Shipment, error)
	RevokeShipment(ctx context.Context, shipmentID string, userID string) (*domain.Shipment, error)
}

// ShipmentSvcFacade combines all shipment-related service interfaces
type ShipmentSvcFacade interface {
	ShipmentReaderSvc
	ShipmentWriterSvc
	ShipmentSigningSvc
}
