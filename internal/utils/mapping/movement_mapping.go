package mapping

import (
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/SscSPs/warehouse_management_app/internal/models"
)

// ToModelItems numbers line items in their stored order.
func ToModelItems(items []domain.LineItem) []models.MovementItem {
	out := make([]models.MovementItem, len(items))
	for i, item := range items {
		out[i] = models.MovementItem{
			Position:   i + 1,
			ResourceID: item.ResourceID,
			UnitID:     item.UnitID,
			Quantity:   item.Quantity,
		}
	}
	return out
}

// ToDomainItems converts item rows, which must already be ordered by position.
func ToDomainItems(rows []models.MovementItem) []domain.LineItem {
	out := make([]domain.LineItem, len(rows))
	for i, row := range rows {
		out[i] = domain.LineItem{
			ResourceID: row.ResourceID,
			UnitID:     row.UnitID,
			Quantity:   row.Quantity,
		}
	}
	return out
}

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:   d.ReceiptID,
		Number:      d.Number,
		Date:        d.Date,
		AuditFields: ToModelAuditFields(d.AuditFields),
		Items:       ToModelItems(d.Items),
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:   m.ReceiptID,
		Number:      m.Number,
		Date:        domain.DateOnly(m.Date),
		Items:       ToDomainItems(m.Items),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelShipment converts a domain Shipment to a model Shipment
func ToModelShipment(d domain.Shipment) models.Shipment {
	return models.Shipment{
		ShipmentID:  d.ShipmentID,
		Number:      d.Number,
		Date:        d.Date,
		ClientID:    d.ClientID,
		State:       string(d.State),
		AuditFields: ToModelAuditFields(d.AuditFields),
		Items:       ToModelItems(d.Items),
	}
}

// ToDomainShipment converts a model Shipment to a domain Shipment
func ToDomainShipment(m models.Shipment) domain.Shipment {
	return domain.Shipment{
		ShipmentID:  m.ShipmentID,
		Number:      m.Number,
		Date:        domain.DateOnly(m.Date),
		ClientID:    m.ClientID,
		State:       domain.ShipmentState(m.State),
		Items:       ToDomainItems(m.Items),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
