package dto

import (
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
)

// ReferenceRequest creates or renames a resource, unit or client.
// Address is only meaningful for clients.
type ReferenceRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Address string `json:"address" binding:"max=500"`
}

// ListReferencesParams filters reference listings.
type ListReferencesParams struct {
	State string `form:"state" binding:"omitempty,oneof=ACTIVE ARCHIVED"`
}

// ReferenceResponse defines the data returned for a reference entity.
type ReferenceResponse struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	State         string    `json:"state"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ListReferencesResponse wraps a reference listing.
type ListReferencesResponse struct {
	Items []ReferenceResponse `json:"items"`
}

// ToReferenceResponse converts a domain.Reference to ReferenceResponse DTO.
func ToReferenceResponse(r *domain.Reference) ReferenceResponse {
	return ReferenceResponse{
		ID:            r.ID,
		Kind:          string(r.Kind),
		Name:          r.Name,
		Address:       r.Address,
		State:         string(r.State),
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// ToListReferencesResponse converts a slice of domain.Reference to ListReferencesResponse.
func ToListReferencesResponse(refs []domain.Reference) ListReferencesResponse {
	out := ListReferencesResponse{Items: make([]ReferenceResponse, len(refs))}
	for i := range refs {
		out.Items[i] = ToReferenceResponse(&refs[i])
	}
	return out
}
