package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories.
// When Tx is set every statement runs inside that transaction.
type BaseRepository struct {
	Pool *pgxpool.Pool
	Tx   pgx.Tx
}

// db returns the transaction when bound to one, the pool otherwise.
func (r *BaseRepository) db() querier {
	if r.Tx != nil {
		return r.Tx
	}
	return r.Pool
}

// requireTx fails for operations that only make sense under a row lock.
func (r *BaseRepository) requireTx(op string) error {
	if r.Tx == nil {
		return apperrors.NewAppError(500, op+" requires a transaction", apperrors.ErrInternal)
	}
	return nil
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// pgErrorCode returns the SQLSTATE of a Postgres error, or "".
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// mapWriteError turns constraint violations into domain errors.
func mapWriteError(err error, what string) error {
	switch pgErrorCode(err) {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, apperrors.ErrDuplicate, what)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s references a missing or used record", apperrors.ErrValidation, what)
	}
	return apperrors.NewAppError(500, "failed to write "+what, err)
}

// whereBuilder collects SQL conditions with numbered placeholders.
type whereBuilder struct {
	clauses []string
	args    []any
}

// arg registers v and returns its placeholder.
func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) add(clause string) {
	w.clauses = append(w.clauses, clause)
}

func (w *whereBuilder) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	out := " WHERE " + w.clauses[0]
	for _, c := range w.clauses[1:] {
		out += " AND " + c
	}
	return out
}
