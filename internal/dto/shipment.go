package dto

import (
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
)

// CreateShipmentRequest is the payload for drafting a shipment.
type CreateShipmentRequest struct {
	Number   string            `json:"number" binding:"required,max=64"`
	Date     string            `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ClientID string            `json:"clientId" binding:"required"`
	Items    []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateShipmentRequest replaces a draft shipment's header and items.
type UpdateShipmentRequest struct {
	Number   string            `json:"number" binding:"required,max=64"`
	Date     string            `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ClientID string            `json:"clientId" binding:"required"`
	Items    []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ShipmentResponse defines the data returned for a shipment.
type ShipmentResponse struct {
	ShipmentID    string             `json:"shipmentId"`
	Number        string             `json:"number"`
	Date          string             `json:"date"`
	ClientID      string             `json:"clientId"`
	State         string             `json:"state"`
	Items         []LineItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ListShipmentsResponse wraps a shipment search result.
type ListShipmentsResponse struct {
	Shipments []ShipmentResponse `json:"shipments"`
}

// ToShipmentResponse converts a domain.Shipment to ShipmentResponse DTO.
func ToShipmentResponse(s *domain.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ShipmentID:    s.ShipmentID,
		Number:        s.Number,
		Date:          FormatDate(s.Date),
		ClientID:      s.ClientID,
		State:         string(s.State),
		Items:         ToLineItemResponses(s.Items),
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}

// ToListShipmentsResponse converts a slice of domain.Shipment to ListShipmentsResponse.
func ToListShipmentsResponse(shipments []domain.Shipment) ListShipmentsResponse {
	out := ListShipmentsResponse{Shipments: make([]ShipmentResponse, len(shipments))}
	for i := range shipments {
		out.Shipments[i] = ToShipmentResponse(&shipments[i])
	}
	return out
}
