package domain

import "time"

// ShipmentState is the signing state of a shipment.
type ShipmentState string

const (
	ShipmentDraft  ShipmentState = "DRAFT"
	ShipmentSigned ShipmentState = "SIGNED"
)

// IsValid reports whether s is a known shipment state.
func (s ShipmentState) IsValid() bool {
	return s == ShipmentDraft || s == ShipmentSigned
}

// Shipment records goods leaving the warehouse for a client. Only a signed
// shipment affects balances; a signed shipment is read-only until revoked.
type Shipment struct {
	ShipmentID string        `json:"shipmentId"`
	Number     string        `json:"number"`
	Date       time.Time     `json:"date"`
	ClientID   string        `json:"clientId"`
	State      ShipmentState `json:"state"`
	Items      []LineItem    `json:"items"`
	AuditFields
}

// IsSigned reports whether the shipment currently holds stock.
func (s Shipment) IsSigned() bool {
	return s.State == ShipmentSigned
}

// Clone returns a deep copy of s.
func (s Shipment) Clone() Shipment {
	s.Items = cloneItems(s.Items)
	return s
}
