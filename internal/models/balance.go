package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is a row of the balances table.
type Balance struct {
	ResourceID    string          `db:"resource_id"`
	UnitID        string          `db:"unit_id"`
	Amount        decimal.Decimal `db:"amount"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
