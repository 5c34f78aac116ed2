package dto

import (
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
)

// CreateReceiptRequest is the payload for registering a receipt.
type CreateReceiptRequest struct {
	Number string            `json:"number" binding:"required,max=64"`
	Date   string            `json:"date" binding:"omitempty,datetime=2006-01-02"` // defaults to today
	Items  []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateReceiptRequest replaces a receipt's number, date and items.
type UpdateReceiptRequest struct {
	Number string            `json:"number" binding:"required,max=64"`
	Date   string            `json:"date" binding:"omitempty,datetime=2006-01-02"` // keeps current date when empty
	Items  []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ReceiptResponse defines the data returned for a receipt.
type ReceiptResponse struct {
	ReceiptID     string             `json:"receiptId"`
	Number        string             `json:"number"`
	Date          string             `json:"date"`
	Items         []LineItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ListReceiptsResponse wraps a receipt search result.
type ListReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
}

// ToReceiptResponse converts a domain.Receipt to ReceiptResponse DTO.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:     r.ReceiptID,
		Number:        r.Number,
		Date:          FormatDate(r.Date),
		Items:         ToLineItemResponses(r.Items),
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// ToListReceiptsResponse converts a slice of domain.Receipt to ListReceiptsResponse.
func ToListReceiptsResponse(receipts []domain.Receipt) ListReceiptsResponse {
	out := ListReceiptsResponse{Receipts: make([]ReceiptResponse, len(receipts))}
	for i := range receipts {
		out.Receipts[i] = ToReceiptResponse(&receipts[i])
	}
	return out
}
