package domain

import (
	"strings"
	"time"
)

// MovementFilter narrows receipt and shipment searches. Zero values match everything.
type MovementFilter struct {
	From        *time.Time
	To          *time.Time
	Numbers     []string
	ResourceIDs []string
	UnitIDs     []string
	// Shipments only.
	ClientIDs []string
	State     *ShipmentState
}

// MatchesDate reports whether d lies within [From, To].
func (f MovementFilter) MatchesDate(d time.Time) bool {
	if f.From != nil && d.Before(DateOnly(*f.From)) {
		return false
	}
	if f.To != nil && d.After(DateOnly(*f.To)) {
		return false
	}
	return true
}

// MatchesNumber compares numbers case-insensitively after trimming.
func (f MovementFilter) MatchesNumber(number string) bool {
	if len(f.Numbers) == 0 {
		return true
	}
	for _, n := range f.Numbers {
		if strings.EqualFold(strings.TrimSpace(n), number) {
			return true
		}
	}
	return false
}

// MatchesItems reports whether any single item satisfies both the resource and unit sets.
func (f MovementFilter) MatchesItems(items []LineItem) bool {
	if len(f.ResourceIDs) == 0 && len(f.UnitIDs) == 0 {
		return true
	}
	for _, item := range items {
		if matchesAny(f.ResourceIDs, item.ResourceID) && matchesAny(f.UnitIDs, item.UnitID) {
			return true
		}
	}
	return false
}

// MatchesReceipt applies the filter to a receipt.
func (f MovementFilter) MatchesReceipt(r Receipt) bool {
	return f.MatchesDate(r.Date) && f.MatchesNumber(r.Number) && f.MatchesItems(r.Items)
}

// MatchesShipment applies the filter to a shipment.
func (f MovementFilter) MatchesShipment(s Shipment) bool {
	if f.State != nil && s.State != *f.State {
		return false
	}
	if !matchesAny(f.ClientIDs, s.ClientID) {
		return false
	}
	return f.MatchesDate(s.Date) && f.MatchesNumber(s.Number) && f.MatchesItems(s.Items)
}
