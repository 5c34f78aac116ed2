package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementItem is a row of receipt_items or shipment_items.
type MovementItem struct {
	Position   int             `db:"position"`
	ResourceID string          `db:"resource_id"`
	UnitID     string          `db:"unit_id"`
	Quantity   decimal.Decimal `db:"quantity"`
}

// Receipt is a row of the receipts table.
type Receipt struct {
	ReceiptID string    `db:"receipt_id"`
	Number    string    `db:"number"`
	Date      time.Time `db:"receipt_date"`
	AuditFields
	Items []MovementItem `db:"-"`
}

// Shipment is a row of the shipments table.
type Shipment struct {
	ShipmentID string    `db:"shipment_id"`
	Number     string    `db:"number"`
	Date       time.Time `db:"shipment_date"`
	ClientID   string    `db:"client_id"`
	State      string    `db:"state"`
	AuditFields
	Items []MovementItem `db:"-"`
}
