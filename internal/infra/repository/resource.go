package repository

import (
	"context"

	"court-booking/internal/domain/resource"
	"court-booking/internal/infra/repository/converter"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const resourceColumns = `id, name, categories, opens_at, closes_at, price_per_hour_cents, created_at, updated_at`

const (
	listResourcesSQL   = `SELECT ` + resourceColumns + ` FROM resources ORDER BY name, id`
	getResourceByIDSQL = `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`
)

var _ shared.ResourceCatalog = (*ResourceRepository)(nil)

type ResourceRepository struct {
	db DBTX
}

func NewResourceRepository(db DBTX) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) ListAll(ctx context.Context) ([]*resource.Resource, error) {
	rows, err := r.db.Query(ctx, listResourcesSQL)
	if err != nil {
		return nil, wrapPgErr("failed to list resources", err)
	}

	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.ResourceRow])
	if err != nil {
		return nil, wrapPgErr("failed to scan resources", err)
	}
	return converter.ResourcesFromRows(collected), nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	rows, err := r.db.Query(ctx, getResourceByIDSQL, id)
	if err != nil {
		return nil, wrapPgErr("failed to find resource by ID", err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.ResourceRow])
	if err != nil {
		return nil, wrapPgErr("failed to find resource by ID", err)
	}
	return converter.ResourceFromRow(row), nil
}
