package mapping

import (
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/SscSPs/warehouse_management_app/internal/models"
)

// ToDomainBalance converts a model Balance to a domain Balance
func ToDomainBalance(m models.Balance) domain.Balance {
	return domain.Balance{
		ResourceID:    m.ResourceID,
		UnitID:        m.UnitID,
		Amount:        m.Amount,
		LastUpdatedAt: m.LastUpdatedAt.UTC(),
	}
}

// ToDomainBalanceSlice converts a slice of model Balances to a slice of domain Balances
func ToDomainBalanceSlice(ms []models.Balance) []domain.Balance {
	ds := make([]domain.Balance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBalance(m)
	}
	return ds
}
