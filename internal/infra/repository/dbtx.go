package repository

import (
	"context"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx, so repositories run the
// same statements inside and outside a unit of work.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// wrapPgErr classifies a driver error by SQLSTATE.
func wrapPgErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}

	switch pgconv.PgErrorCode(err) {
	case pgconv.CodeExclusionViolation:
		return infra.WrapRepoErr(msg, err, infra.KindConflict)
	case pgconv.CodeUniqueViolation:
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case pgconv.CodeForeignKeyViolation:
		return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
