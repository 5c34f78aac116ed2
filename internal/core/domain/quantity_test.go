package domain_test

import (
	"testing"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(resourceID, unitID, qty string) domain.LineItem {
	return domain.LineItem{ResourceID: resourceID, UnitID: unitID, Quantity: decimal.RequireFromString(qty)}
}

func key(resourceID, unitID string) domain.BalanceKey {
	return domain.BalanceKey{ResourceID: resourceID, UnitID: unitID}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.LineItem
		want  map[domain.BalanceKey]string
	}{
		{
			name:  "empty",
			items: nil,
			want:  map[domain.BalanceKey]string{},
		},
		{
			name:  "sums duplicate keys",
			items: []domain.LineItem{item("r1", "u1", "1.5"), item("r1", "u1", "2.25"), item("r2", "u1", "3")},
			want:  map[domain.BalanceKey]string{key("r1", "u1"): "3.75", key("r2", "u1"): "3"},
		},
		{
			name:  "keeps units apart",
			items: []domain.LineItem{item("r1", "kg", "1"), item("r1", "pcs", "1")},
			want:  map[domain.BalanceKey]string{key("r1", "kg"): "1", key("r1", "pcs"): "1"},
		},
		{
			name:  "exact decimal arithmetic",
			items: []domain.LineItem{item("r1", "u1", "0.1"), item("r1", "u1", "0.2")},
			want:  map[domain.BalanceKey]string{key("r1", "u1"): "0.3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Aggregate(tt.items)
			assert.Len(t, got, len(tt.want))
			for k, v := range tt.want {
				assert.True(t, decimal.RequireFromString(v).Equal(got.Get(k)), "key %s: want %s got %s", k, v, got.Get(k))
			}
		})
	}
}

func TestDelta(t *testing.T) {
	prev := domain.Aggregate([]domain.LineItem{item("r1", "u1", "10"), item("r2", "u1", "5")})
	next := domain.Aggregate([]domain.LineItem{item("r1", "u1", "4"), item("r3", "u1", "2")})

	d := domain.Delta(prev, next)

	assert.Len(t, d, 3)
	assert.True(t, decimal.NewFromInt(-6).Equal(d.Get(key("r1", "u1"))))
	assert.True(t, decimal.NewFromInt(-5).Equal(d.Get(key("r2", "u1"))))
	assert.True(t, decimal.NewFromInt(2).Equal(d.Get(key("r3", "u1"))))
}

func TestDelta_DropsUnchangedKeys(t *testing.T) {
	prev := domain.Aggregate([]domain.LineItem{item("r1", "u1", "10")})
	next := domain.Aggregate([]domain.LineItem{item("r1", "u1", "4"), item("r1", "u1", "6")})

	assert.Empty(t, domain.Delta(prev, next))
}

func TestQuantityMap_KeysSorted(t *testing.T) {
	m := domain.Aggregate([]domain.LineItem{
		item("b", "u2", "1"),
		item("a", "u9", "1"),
		item("b", "u1", "1"),
		item("a", "u1", "1"),
	})

	assert.Equal(t, []domain.BalanceKey{key("a", "u1"), key("a", "u9"), key("b", "u1"), key("b", "u2")}, m.Keys())
}

func TestQuantityMap_Negate(t *testing.T) {
	m := domain.Aggregate([]domain.LineItem{item("r1", "u1", "2.5")})
	neg := m.Negate()

	assert.True(t, decimal.RequireFromString("-2.5").Equal(neg.Get(key("r1", "u1"))))
	assert.True(t, decimal.RequireFromString("2.5").Equal(m.Get(key("r1", "u1"))), "original untouched")
}

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		qty     string
		wantErr bool
	}{
		{"1", false},
		{"0.001", false},
		{"12.340", false},
		{"0", true},
		{"-1", true},
		{"0.0001", true},
	}

	for _, tt := range tests {
		t.Run(tt.qty, func(t *testing.T) {
			err := domain.ValidateQuantity(decimal.RequireFromString(tt.qty))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
