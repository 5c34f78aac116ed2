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

// PgxReferenceRepository stores resources, units and clients, one table per kind.
type PgxReferenceRepository struct {
	BaseRepository
}

var _ portsrepo.ReferenceRepositoryFacade = (*PgxReferenceRepository)(nil)

type referenceTable struct {
	name       string
	hasAddress bool
	usedQuery  string
}

var referenceTables = map[domain.ReferenceKind]referenceTable{
	domain.KindResource: {
		name: "resources",
		usedQuery: `SELECT EXISTS (SELECT 1 FROM receipt_items WHERE resource_id = $1)
			OR EXISTS (SELECT 1 FROM shipment_items WHERE resource_id = $1)`,
	},
	domain.KindUnit: {
		name: "units",
		usedQuery: `SELECT EXISTS (SELECT 1 FROM receipt_items WHERE unit_id = $1)
			OR EXISTS (SELECT 1 FROM shipment_items WHERE unit_id = $1)`,
	},
	domain.KindClient: {
		name:       "clients",
		hasAddress: true,
		usedQuery:  `SELECT EXISTS (SELECT 1 FROM shipments WHERE client_id = $1)`,
	},
}

func tableFor(kind domain.ReferenceKind) (referenceTable, error) {
	t, ok := referenceTables[kind]
	if !ok {
		return referenceTable{}, fmt.Errorf("%w: unknown reference kind %q", apperrors.ErrValidation, kind)
	}
	return t, nil
}

func (t referenceTable) selectFields() string {
	address := `''`
	if t.hasAddress {
		address = `address`
	}
	return `id, name, ` + address + `, state, created_at, created_by, last_updated_at, last_updated_by`
}

func scanReference(row pgx.Row) (models.Reference, error) {
	var m models.Reference
	err := row.Scan(&m.ID, &m.Name, &m.Address, &m.State, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxReferenceRepository) FindReferenceByID(ctx context.Context, kind domain.ReferenceKind, id string) (*domain.Reference, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + t.selectFields() + ` FROM ` + t.name + ` WHERE id = $1`
	m, err := scanReference(r.db().QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, id)
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to get "+string(kind)+" "+id, err)
	}
	ref := mapping.ToDomainReference(kind, m)
	return &ref, nil
}

func (r *PgxReferenceRepository) ListReferences(ctx context.Context, kind domain.ReferenceKind, state *domain.EntityState) ([]domain.Reference, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	var where whereBuilder
	if state != nil {
		where.add("state = " + where.arg(string(*state)))
	}
	query := `SELECT ` + t.selectFields() + ` FROM ` + t.name + where.String() + ` ORDER BY lower(name)`

	rows, err := r.db().Query(ctx, query, where.args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list "+t.name, err)
	}
	defer rows.Close()

	refs := []domain.Reference{}
	for rows.Next() {
		m, err := scanReference(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan "+string(kind), err)
		}
		refs = append(refs, mapping.ToDomainReference(kind, m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to list "+t.name, err)
	}
	return refs, nil
}

func (r *PgxReferenceRepository) ReferenceNameExists(ctx context.Context, kind domain.ReferenceKind, name string, excludeID string) (bool, error) {
	t, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	query := `SELECT EXISTS (SELECT 1 FROM ` + t.name + ` WHERE lower(name) = lower($1) AND id <> $2)`
	var exists bool
	if err := r.db().QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check "+string(kind)+" name", err)
	}
	return exists, nil
}

func (r *PgxReferenceRepository) IsReferenceInUse(ctx context.Context, kind domain.ReferenceKind, id string) (bool, error) {
	t, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	var used bool
	if err := r.db().QueryRow(ctx, t.usedQuery, id).Scan(&used); err != nil {
		return false, apperrors.NewAppError(500, "failed to check usage of "+string(kind)+" "+id, err)
	}
	return used, nil
}

func (r *PgxReferenceRepository) SaveReference(ctx context.Context, ref domain.Reference) error {
	t, err := tableFor(ref.Kind)
	if err != nil {
		return err
	}
	m := mapping.ToModelReference(ref)
	args := []any{m.ID, m.Name, m.State, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy}
	query := `INSERT INTO ` + t.name + ` (id, name, state, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if t.hasAddress {
		args = append(args, m.Address)
		query = `INSERT INTO ` + t.name + ` (id, name, state, created_at, created_by, last_updated_at, last_updated_by, address)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	}
	if _, err := r.db().Exec(ctx, query, args...); err != nil {
		return mapWriteError(err, fmt.Sprintf("%s %q", ref.Kind, ref.Name))
	}
	return nil
}

func (r *PgxReferenceRepository) UpdateReference(ctx context.Context, ref domain.Reference) error {
	t, err := tableFor(ref.Kind)
	if err != nil {
		return err
	}
	m := mapping.ToModelReference(ref)
	args := []any{m.ID, m.Name, m.State, m.LastUpdatedAt, m.LastUpdatedBy}
	set := `name = $2, state = $3, last_updated_at = $4, last_updated_by = $5`
	if t.hasAddress {
		args = append(args, m.Address)
		set += `, address = $6`
	}
	tag, err := r.db().Exec(ctx, `UPDATE `+t.name+` SET `+set+` WHERE id = $1`, args...)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("%s %q", ref.Kind, ref.Name))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, ref.Kind, ref.ID)
	}
	return nil
}

func (r *PgxReferenceRepository) DeleteReference(ctx context.Context, kind domain.ReferenceKind, id string) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	tag, err := r.db().Exec(ctx, `DELETE FROM `+t.name+` WHERE id = $1`, id)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%w: %s %s is used, archive it instead", apperrors.ErrInvalidState, kind, id)
		}
		return apperrors.NewAppError(500, "failed to delete "+string(kind)+" "+id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, id)
	}
	return nil
}
