package pgsql

import (
	"context"
	"strings"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/SscSPs/warehouse_management_app/internal/models"
	"github.com/jackc/pgx/v5"
)

// itemTable describes receipt_items or shipment_items.
type itemTable struct {
	name     string
	parentFK string
}

var (
	receiptItems  = itemTable{name: "receipt_items", parentFK: "receipt_id"}
	shipmentItems = itemTable{name: "shipment_items", parentFK: "shipment_id"}
)

// insertItems queues one insert per item and sends them as a batch.
func insertItems(ctx context.Context, q querier, t itemTable, parentID string, items []models.MovementItem) error {
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO ` + t.name + ` (` + t.parentFK + `, position, resource_id, unit_id, quantity) VALUES ($1, $2, $3, $4, $5)`
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, parentID, item.Position, item.ResourceID, item.UnitID, item.Quantity)
	}
	if err := q.SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError(err, t.name+" of "+parentID)
	}
	return nil
}

// replaceItems swaps the whole item set of parentID.
func replaceItems(ctx context.Context, q querier, t itemTable, parentID string, items []models.MovementItem) error {
	if _, err := q.Exec(ctx, `DELETE FROM `+t.name+` WHERE `+t.parentFK+` = $1`, parentID); err != nil {
		return apperrors.NewAppError(500, "failed to clear "+t.name+" of "+parentID, err)
	}
	return insertItems(ctx, q, t, parentID, items)
}

// loadItems returns the items of every parent in ids, grouped by parent and ordered by position.
func loadItems(ctx context.Context, q querier, t itemTable, ids []string) (map[string][]models.MovementItem, error) {
	out := make(map[string][]models.MovementItem, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT ` + t.parentFK + `, position, resource_id, unit_id, quantity FROM ` + t.name +
		` WHERE ` + t.parentFK + ` = ANY($1) ORDER BY ` + t.parentFK + `, position`
	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load "+t.name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			parentID string
			item     models.MovementItem
		)
		if err := rows.Scan(&parentID, &item.Position, &item.ResourceID, &item.UnitID, &item.Quantity); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan "+t.name, err)
		}
		out[parentID] = append(out[parentID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to load "+t.name, err)
	}
	return out, nil
}

// movementWhere translates the filter fields shared by receipts and shipments.
// alias is the header table alias; dateCol its date column.
func movementWhere(w *whereBuilder, f domain.MovementFilter, t itemTable, alias, idCol, dateCol string) {
	if f.From != nil {
		w.add(alias + "." + dateCol + " >= " + w.arg(domain.DateOnly(*f.From)))
	}
	if f.To != nil {
		w.add(alias + "." + dateCol + " <= " + w.arg(domain.DateOnly(*f.To)))
	}
	if len(f.Numbers) > 0 {
		numbers := make([]string, len(f.Numbers))
		for i, n := range f.Numbers {
			numbers[i] = strings.ToLower(strings.TrimSpace(n))
		}
		w.add("lower(" + alias + ".number) = ANY(" + w.arg(numbers) + ")")
	}
	if len(f.ResourceIDs) > 0 || len(f.UnitIDs) > 0 {
		var conds []string
		if len(f.ResourceIDs) > 0 {
			conds = append(conds, "i.resource_id = ANY("+w.arg(f.ResourceIDs)+")")
		}
		if len(f.UnitIDs) > 0 {
			conds = append(conds, "i.unit_id = ANY("+w.arg(f.UnitIDs)+")")
		}
		w.add("EXISTS (SELECT 1 FROM " + t.name + " i WHERE i." + t.parentFK + " = " + alias + "." + idCol +
			" AND " + strings.Join(conds, " AND ") + ")")
	}
}
