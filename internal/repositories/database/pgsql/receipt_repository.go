package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/warehouse_management_app/internal/models"
	"github.com/SscSPs/warehouse_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxReceiptRepository struct {
	BaseRepository
}

var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

const (
	selectReceiptFields = `r.receipt_id, r.number, r.receipt_date, r.created_at, r.created_by, r.last_updated_at, r.last_updated_by`

	findReceiptByIDQuery = `SELECT ` + selectReceiptFields + ` FROM receipts r WHERE r.receipt_id = $1`

	insertReceiptQuery = `
		INSERT INTO receipts (receipt_id, number, receipt_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	updateReceiptQuery = `
		UPDATE receipts
		SET number = $2, receipt_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE receipt_id = $1`

	receiptNumberExistsQuery = `SELECT EXISTS (SELECT 1 FROM receipts WHERE lower(number) = lower($1) AND receipt_id <> $2)`

	listReceiptNumbersQuery = `SELECT DISTINCT number FROM receipts ORDER BY number COLLATE "C"`
)

func scanReceipt(row pgx.Row) (models.Receipt, error) {
	var m models.Receipt
	err := row.Scan(&m.ReceiptID, &m.Number, &m.Date, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxReceiptRepository) findReceipt(ctx context.Context, query, receiptID string) (*domain.Receipt, error) {
	m, err := scanReceipt(r.db().QueryRow(ctx, query, receiptID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: receipt %s", apperrors.ErrNotFound, receiptID)
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to get receipt "+receiptID, err)
	}
	items, err := loadItems(ctx, r.db(), receiptItems, []string{receiptID})
	if err != nil {
		return nil, err
	}
	m.Items = items[receiptID]
	receipt := mapping.ToDomainReceipt(m)
	return &receipt, nil
}

func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	return r.findReceipt(ctx, findReceiptByIDQuery, receiptID)
}

func (r *PgxReceiptRepository) FindReceiptByIDForUpdate(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	if err := r.requireTx("lock receipt"); err != nil {
		return nil, err
	}
	return r.findReceipt(ctx, findReceiptByIDQuery+` FOR UPDATE`, receiptID)
}

func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, filter domain.MovementFilter) ([]domain.Receipt, error) {
	var where whereBuilder
	movementWhere(&where, filter, receiptItems, "r", "receipt_id", "receipt_date")
	query := `SELECT ` + selectReceiptFields + ` FROM receipts r` + where.String() +
		` ORDER BY r.receipt_date DESC, r.number COLLATE "C"`

	rows, err := r.db().Query(ctx, query, where.args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list receipts", err)
	}
	defer rows.Close()

	var headers []models.Receipt
	for rows.Next() {
		m, err := scanReceipt(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan receipt", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to list receipts", err)
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.ReceiptID
	}
	items, err := loadItems(ctx, r.db(), receiptItems, ids)
	if err != nil {
		return nil, err
	}

	receipts := make([]domain.Receipt, len(headers))
	for i, h := range headers {
		h.Items = items[h.ReceiptID]
		receipts[i] = mapping.ToDomainReceipt(h)
	}
	return receipts, nil
}

func (r *PgxReceiptRepository) ReceiptNumberExists(ctx context.Context, number string, excludeID string) (bool, error) {
	var exists bool
	if err := r.db().QueryRow(ctx, receiptNumberExistsQuery, number, excludeID).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check receipt number", err)
	}
	return exists, nil
}

func (r *PgxReceiptRepository) ListReceiptNumbers(ctx context.Context) ([]string, error) {
	return listNumbers(ctx, r.db(), listReceiptNumbersQuery)
}

func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	m := mapping.ToModelReceipt(receipt)
	_, err := r.db().Exec(ctx, insertReceiptQuery,
		m.ReceiptID, m.Number, m.Date, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("receipt number %q", m.Number))
	}
	return insertItems(ctx, r.db(), receiptItems, m.ReceiptID, m.Items)
}

func (r *PgxReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) error {
	m := mapping.ToModelReceipt(receipt)
	tag, err := r.db().Exec(ctx, updateReceiptQuery, m.ReceiptID, m.Number, m.Date, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("receipt number %q", m.Number))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: receipt %s", apperrors.ErrNotFound, m.ReceiptID)
	}
	return replaceItems(ctx, r.db(), receiptItems, m.ReceiptID, m.Items)
}

// DeleteReceipt removes the receipt; items go with it through ON DELETE CASCADE.
func (r *PgxReceiptRepository) DeleteReceipt(ctx context.Context, receiptID string) error {
	tag, err := r.db().Exec(ctx, `DELETE FROM receipts WHERE receipt_id = $1`, receiptID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete receipt "+receiptID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: receipt %s", apperrors.ErrNotFound, receiptID)
	}
	return nil
}

func listNumbers(ctx context.Context, q querier, query string) ([]string, error) {
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list numbers", err)
	}
	numbers, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan numbers", err)
	}
	return numbers, nil
}
