package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of movement dates.
const DateLayout = "2006-01-02"

// LineItemRequest is one item of a receipt or shipment payload.
type LineItemRequest struct {
	ResourceID string          `json:"resourceId" binding:"required"`
	UnitID     string          `json:"unitId" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity" binding:"dpositive,dscale"`
}

// LineItemResponse is one item of a receipt or shipment.
type LineItemResponse struct {
	ResourceID string          `json:"resourceId"`
	UnitID     string          `json:"unitId"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// MovementSearchParams are the query parameters accepted by receipt and shipment searches.
type MovementSearchParams struct {
	From        string   `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To          string   `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Numbers     []string `form:"numbers"`
	ResourceIDs []string `form:"resourceIds"`
	UnitIDs     []string `form:"unitIds"`
	ClientIDs   []string `form:"clientIds"`
	State       string   `form:"state" binding:"omitempty,oneof=DRAFT SIGNED"`
}

// NumbersResponse lists movement numbers for filter pickers.
type NumbersResponse struct {
	Numbers []string `json:"numbers"`
}

// ToLineItems converts request items to domain items.
func ToLineItems(reqs []LineItemRequest) []domain.LineItem {
	items := make([]domain.LineItem, len(reqs))
	for i, r := range reqs {
		items[i] = domain.LineItem{
			ResourceID: strings.TrimSpace(r.ResourceID),
			UnitID:     strings.TrimSpace(r.UnitID),
			Quantity:   r.Quantity,
		}
	}
	return items
}

// ToLineItemResponses converts domain items to their response form.
func ToLineItemResponses(items []domain.LineItem) []LineItemResponse {
	responses := make([]LineItemResponse, len(items))
	for i, item := range items {
		responses[i] = LineItemResponse{
			ResourceID: item.ResourceID,
			UnitID:     item.UnitID,
			Quantity:   item.Quantity,
		}
	}
	return responses
}

// ParseDate parses a wire date. An empty string yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return &t, nil
}

// FormatDate renders a movement date in wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ToFilter converts query parameters into a domain filter.
func (p MovementSearchParams) ToFilter() (domain.MovementFilter, error) {
	from, err := ParseDate(p.From)
	if err != nil {
		return domain.MovementFilter{}, err
	}
	to, err := ParseDate(p.To)
	if err != nil {
		return domain.MovementFilter{}, err
	}
	filter := domain.MovementFilter{
		From:        from,
		To:          to,
		Numbers:     splitCSV(p.Numbers),
		ResourceIDs: splitCSV(p.ResourceIDs),
		UnitIDs:     splitCSV(p.UnitIDs),
		ClientIDs:   splitCSV(p.ClientIDs),
	}
	if p.State != "" {
		state := domain.ShipmentState(p.State)
		if !state.IsValid() {
			return domain.MovementFilter{}, fmt.Errorf("%w: unknown shipment state %q", apperrors.ErrValidation, p.State)
		}
		filter.State = &state
	}
	return filter, nil
}

// splitCSV accepts both repeated parameters and comma separated values.
func splitCSV(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
