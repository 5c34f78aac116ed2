package domain

import (
	"fmt"
	"sort"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// QuantityScale is the number of fractional digits a quantity may carry.
const QuantityScale = 3

// LineItem is one row of a receipt or a shipment.
type LineItem struct {
	ResourceID string          `json:"resourceId"`
	UnitID     string          `json:"unitId"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// Key returns the balance key the item moves.
func (i LineItem) Key() BalanceKey {
	return BalanceKey{ResourceID: i.ResourceID, UnitID: i.UnitID}
}

// ValidateQuantity checks that q is strictly positive and fits QuantityScale.
func ValidateQuantity(q decimal.Decimal) error {
	if !q.IsPositive() {
		return fmt.Errorf("%w: quantity must be greater than zero, got %s", apperrors.ErrValidation, q)
	}
	if !q.Equal(q.Truncate(QuantityScale)) {
		return fmt.Errorf("%w: quantity %s has more than %d fractional digits", apperrors.ErrValidation, q, QuantityScale)
	}
	return nil
}

// QuantityMap holds a signed quantity per balance key. Zero entries are never stored.
type QuantityMap map[BalanceKey]decimal.Decimal

// Aggregate sums item quantities per key.
func Aggregate(items []LineItem) QuantityMap {
	out := make(QuantityMap, len(items))
	for _, item := range items {
		out.add(item.Key(), item.Quantity)
	}
	return out
}

// Delta returns next - prev for every key present in either map.
func Delta(prev, next QuantityMap) QuantityMap {
	out := make(QuantityMap, len(prev)+len(next))
	for k, q := range next {
		out.add(k, q)
	}
	for k, q := range prev {
		out.add(k, q.Neg())
	}
	return out
}

// Negate returns a copy of m with every quantity sign-flipped.
func (m QuantityMap) Negate() QuantityMap {
	out := make(QuantityMap, len(m))
	for k, q := range m {
		out[k] = q.Neg()
	}
	return out
}

// Keys returns the keys of m ordered by (resource, unit).
func (m QuantityMap) Keys() []BalanceKey {
	keys := make([]BalanceKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Get returns the quantity for k, zero when absent.
func (m QuantityMap) Get(k BalanceKey) decimal.Decimal {
	return m[k]
}

func (m QuantityMap) add(k BalanceKey, q decimal.Decimal) {
	sum := m[k].Add(q)
	if sum.IsZero() {
		delete(m, k)
		return
	}
	m[k] = sum
}
