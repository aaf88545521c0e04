package converter

import (
	"court-booking/internal/domain/interval"
	"court-booking/internal/domain/resource"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceRow struct {
	ID                uuid.UUID          `db:"id"`
	Name              string             `db:"name"`
	Categories        []string           `db:"categories"`
	OpensAt           int32              `db:"opens_at"`
	ClosesAt          int32              `db:"closes_at"`
	PricePerHourCents int64              `db:"price_per_hour_cents"`
	CreatedAt         pgtype.Timestamptz `db:"created_at"`
	UpdatedAt         pgtype.Timestamptz `db:"updated_at"`
}

func ResourceFromRow(row ResourceRow) *resource.Resource {
	return resource.ReconstructResource(
		row.ID,
		row.Name,
		row.Categories,
		interval.TimeOfDay(row.OpensAt),
		interval.TimeOfDay(row.ClosesAt),
		row.PricePerHourCents,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ResourcesFromRows(rows []ResourceRow) []*resource.Resource {
	out := make([]*resource.Resource, len(rows))
	for i, row := range rows {
		out[i] = ResourceFromRow(row)
	}
	return out
}
