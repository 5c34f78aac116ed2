package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/warehouse_management_app/internal/models"
	"github.com/SscSPs/warehouse_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxShipmentRepository struct {
	BaseRepository
}

var _ portsrepo.ShipmentRepositoryFacade = (*PgxShipmentRepository)(nil)

const (
	selectShipmentFields = `s.shipment_id, s.number, s.shipment_date, s.client_id, s.state,
		s.created_at, s.created_by, s.last_updated_at, s.last_updated_by`

	findShipmentByIDQuery = `SELECT ` + selectShipmentFields + ` FROM shipments s WHERE s.shipment_id = $1`

	insertShipmentQuery = `
		INSERT INTO shipments (shipment_id, number, shipment_date, client_id, state, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	updateShipmentQuery = `
		UPDATE shipments
		SET number = $2, shipment_date = $3, client_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE shipment_id = $1`

	updateShipmentStateQuery = `
		UPDATE shipments
		SET state = $2, last_updated_by = $3, last_updated_at = $4
		WHERE shipment_id = $1`

	shipmentNumberExistsQuery = `SELECT EXISTS (SELECT 1 FROM shipments WHERE lower(number) = lower($1) AND shipment_id <> $2)`

	listShipmentNumbersQuery = `SELECT DISTINCT number FROM shipments ORDER BY number COLLATE "C"`
)

func scanShipment(row pgx.Row) (models.Shipment, error) {
	var m models.Shipment
	err := row.Scan(&m.ShipmentID, &m.Number, &m.Date, &m.ClientID, &m.State,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxShipmentRepository) findShipment(ctx context.Context, query, shipmentID string) (*domain.Shipment, error) {
	m, err := scanShipment(r.db().QueryRow(ctx, query, shipmentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: shipment %s", apperrors.ErrNotFound, shipmentID)
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to get shipment "+shipmentID, err)
	}
	items, err := loadItems(ctx, r.db(), shipmentItems, []string{shipmentID})
	if err != nil {
		return nil, err
	}
	m.Items = items[shipmentID]
	shipment := mapping.ToDomainShipment(m)
	return &shipment, nil
}

func (r *PgxShipmentRepository) FindShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	return r.findShipment(ctx, findShipmentByIDQuery, shipmentID)
}

// FindShipmentByIDForUpdate serialises concurrent sign and revoke calls on one shipment.
func (r *PgxShipmentRepository) FindShipmentByIDForUpdate(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	if err := r.requireTx("lock shipment"); err != nil {
		return nil, err
	}
	return r.findShipment(ctx, findShipmentByIDQuery+` FOR UPDATE`, shipmentID)
}

func (r *PgxShipmentRepository) ListShipments(ctx context.Context, filter domain.MovementFilter) ([]domain.Shipment, error) {
	var where whereBuilder
	movementWhere(&where, filter, shipmentItems, "s", "shipment_id", "shipment_date")
	if len(filter.ClientIDs) > 0 {
		where.add("s.client_id = ANY(" + where.arg(filter.ClientIDs) + ")")
	}
	if filter.State != nil {
		where.add("s.state = " + where.arg(string(*filter.State)))
	}
	query := `SELECT ` + selectShipmentFields + ` FROM shipments s` + where.String() +
		` ORDER BY s.shipment_date DESC, s.number COLLATE "C"`

	rows, err := r.db().Query(ctx, query, where.args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list shipments", err)
	}
	defer rows.Close()

	var headers []models.Shipment
	for rows.Next() {
		m, err := scanShipment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan shipment", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to list shipments", err)
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.ShipmentID
	}
	items, err := loadItems(ctx, r.db(), shipmentItems, ids)
	if err != nil {
		return nil, err
	}

	shipments := make([]domain.Shipment, len(headers))
	for i, h := range headers {
		h.Items = items[h.ShipmentID]
		shipments[i] = mapping.ToDomainShipment(h)
	}
	return shipments, nil
}

func (r *PgxShipmentRepository) ShipmentNumberExists(ctx context.Context, number string, excludeID string) (bool, error) {
	var exists bool
	if err := r.db().QueryRow(ctx, shipmentNumberExistsQuery, number, excludeID).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check shipment number", err)
	}
	return exists, nil
}

func (r *PgxShipmentRepository) ListShipmentNumbers(ctx context.Context) ([]string, error) {
	return listNumbers(ctx, r.db(), listShipmentNumbersQuery)
}

func (r *PgxShipmentRepository) SaveShipment(ctx context.Context, shipment domain.Shipment) error {
	m := mapping.ToModelShipment(shipment)
	_, err := r.db().Exec(ctx, insertShipmentQuery,
		m.ShipmentID, m.Number, m.Date, m.ClientID, m.State, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("shipment number %q", m.Number))
	}
	return insertItems(ctx, r.db(), shipmentItems, m.ShipmentID, m.Items)
}

func (r *PgxShipmentRepository) UpdateShipment(ctx context.Context, shipment domain.Shipment) error {
	m := mapping.ToModelShipment(shipment)
	tag, err := r.db().Exec(ctx, updateShipmentQuery, m.ShipmentID, m.Number, m.Date, m.ClientID, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("shipment number %q", m.Number))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: shipment %s", apperrors.ErrNotFound, m.ShipmentID)
	}
	return replaceItems(ctx, r.db(), shipmentItems, m.ShipmentID, m.Items)
}

func (r *PgxShipmentRepository) UpdateShipmentState(ctx context.Context, shipmentID string, state domain.ShipmentState, updatedBy string, updatedAt time.Time) error {
	tag, err := r.db().Exec(ctx, updateShipmentStateQuery, shipmentID, string(state), updatedBy, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update shipment state "+shipmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: shipment %s", apperrors.ErrNotFound, shipmentID)
	}
	return nil
}

func (r *PgxShipmentRepository) DeleteShipment(ctx context.Context, shipmentID string) error {
	tag, err := r.db().Exec(ctx, `DELETE FROM shipments WHERE shipment_id = $1`, shipmentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete shipment "+shipmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: shipment %s", apperrors.ErrNotFound, shipmentID)
	}
	return nil
}
