package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceKey identifies one balance row.
type BalanceKey struct {
	ResourceID string
	UnitID     string
}

// Less orders keys by resource then unit. Locks are always taken in this order.
func (k BalanceKey) Less(other BalanceKey) bool {
	if k.ResourceID != other.ResourceID {
		return k.ResourceID < other.ResourceID
	}
	return k.UnitID < other.UnitID
}

func (k BalanceKey) String() string {
	return k.ResourceID + "/" + k.UnitID
}

// Balance is the quantity on hand for a (resource, unit) pair.
type Balance struct {
	ResourceID    string          `json:"resourceId"`
	UnitID        string          `json:"unitId"`
	Amount        decimal.Decimal `json:"amount"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// Key returns the balance key of b.
func (b Balance) Key() BalanceKey {
	return BalanceKey{ResourceID: b.ResourceID, UnitID: b.UnitID}
}

// BalanceFilter narrows a balance query. Empty slices match everything.
type BalanceFilter struct {
	ResourceIDs []string
	UnitIDs     []string
}

// Matches reports whether b passes the filter.
func (f BalanceFilter) Matches(b Balance) bool {
	return matchesAny(f.ResourceIDs, b.ResourceID) && matchesAny(f.UnitIDs, b.UnitID)
}

func matchesAny(set []string, v string) bool {
	return len(set) == 0 || slices.Contains(set, v)
}
