package pgsql

import (
	"testing"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhereBuilder_Empty(t *testing.T) {
	var w whereBuilder
	assert.Equal(t, "", w.String())
	assert.Empty(t, w.args)
}

func TestWhereBuilder_NumbersPlaceholders(t *testing.T) {
	var w whereBuilder
	w.add("a = " + w.arg(1))
	w.add("b = ANY(" + w.arg([]string{"x"}) + ")")

	assert.Equal(t, " WHERE a = $1 AND b = ANY($2)", w.String())
	assert.Len(t, w.args, 2)
}

func TestMovementWhere_AllFields(t *testing.T) {
	from := time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	f := domain.MovementFilter{
		From:        &from,
		To:          &to,
		Numbers:     []string{" R-1 "},
		ResourceIDs: []string{"res"},
		UnitIDs:     []string{"unit"},
	}

	var w whereBuilder
	movementWhere(&w, f, receiptItems, "r", "receipt_id", "receipt_date")

	assert.Equal(t, " WHERE r.receipt_date >= $1 AND r.receipt_date <= $2 AND lower(r.number) = ANY($3)"+
		" AND EXISTS (SELECT 1 FROM receipt_items i WHERE i.receipt_id = r.receipt_id AND i.resource_id = ANY($4) AND i.unit_id = ANY($5))",
		w.String())
	require.Len(t, w.args, 5)
	assert.Equal(t, domain.DateOnly(from), w.args[0])
	assert.Equal(t, []string{"r-1"}, w.args[2])
}

func TestMovementWhere_OnlyUnits(t *testing.T) {
	var w whereBuilder
	movementWhere(&w, domain.MovementFilter{UnitIDs: []string{"kg"}}, shipmentItems, "s", "shipment_id", "shipment_date")

	assert.Equal(t, " WHERE EXISTS (SELECT 1 FROM shipment_items i WHERE i.shipment_id = s.shipment_id AND i.unit_id = ANY($1))", w.String())
}

func TestMapWriteError(t *testing.T) {
	dup := mapWriteError(&pgconn.PgError{Code: pgUniqueViolation}, `receipt number "R-1"`)
	assert.ErrorIs(t, dup, apperrors.ErrValidation)
	assert.ErrorIs(t, dup, apperrors.ErrDuplicate)

	fk := mapWriteError(&pgconn.PgError{Code: pgForeignKeyViolation}, "receipt_items of r1")
	assert.ErrorIs(t, fk, apperrors.ErrValidation)
	assert.NotErrorIs(t, fk, apperrors.ErrDuplicate)

	var appErr *apperrors.AppError
	other := mapWriteError(assert.AnError, "balance")
	require.ErrorAs(t, other, &appErr)
	assert.Equal(t, 500, appErr.Code)
}

func TestTableFor(t *testing.T) {
	tbl, err := tableFor(domain.KindClient)
	require.NoError(t, err)
	assert.Equal(t, "clients", tbl.name)
	assert.Contains(t, tbl.selectFields(), "address")

	tbl, err = tableFor(domain.KindUnit)
	require.NoError(t, err)
	assert.Contains(t, tbl.selectFields(), "''")

	_, err = tableFor("warehouse")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
