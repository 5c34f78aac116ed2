package dto

import (
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSearchParams are the query parameters of the balance listing.
type BalanceSearchParams struct {
	ResourceIDs []string `form:"resourceIds"`
	UnitIDs     []string `form:"unitIds"`
}

// ToFilter converts query parameters into a domain filter.
func (p BalanceSearchParams) ToFilter() domain.BalanceFilter {
	return domain.BalanceFilter{
		ResourceIDs: splitCSV(p.ResourceIDs),
		UnitIDs:     splitCSV(p.UnitIDs),
	}
}

// BalanceResponse defines the data returned for one balance row.
type BalanceResponse struct {
	ResourceID    string          `json:"resourceId"`
	UnitID        string          `json:"unitId"`
	Amount        decimal.Decimal `json:"amount"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListBalancesResponse wraps a balance listing.
type ListBalancesResponse struct {
	Balances []BalanceResponse `json:"balances"`
}

// ToListBalancesResponse converts a slice of domain.Balance to ListBalancesResponse.
func ToListBalancesResponse(balances []domain.Balance) ListBalancesResponse {
	out := ListBalancesResponse{Balances: make([]BalanceResponse, len(balances))}
	for i, b := range balances {
		out.Balances[i] = BalanceResponse{
			ResourceID:    b.ResourceID,
			UnitID:        b.UnitID,
			Amount:        b.Amount,
			LastUpdatedAt: b.LastUpdatedAt,
		}
	}
	return out
}

// BalanceDrift is one discrepancy found by a ledger audit.
type BalanceDrift struct {
	ResourceID string          `json:"resourceId"`
	UnitID     string          `json:"unitId"`
	Stored     decimal.Decimal `json:"stored"`
	Expected   decimal.Decimal `json:"expected"`
}

// LedgerAuditReport is the result of recomputing balances from movements.
type LedgerAuditReport struct {
	CheckedKeys int            `json:"checkedKeys"`
	Drifts      []BalanceDrift `json:"drifts"`
}

// OK reports whether no drift was found.
func (r LedgerAuditReport) OK() bool {
	return len(r.Drifts) == 0
}
