//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/interval"
	"court-booking/internal/domain/resource"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID                uuid.UUID
	Name              string
	Categories        []string
	OpensAt           interval.TimeOfDay
	ClosesAt          interval.TimeOfDay
	PricePerHourCents int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	now := time.Now()
	return &ResourceBuilder{
		ID:                uuid.New(),
		Name:              "Elite Sports Complex",
		Categories:        []string{"tennis"},
		OpensAt:           interval.MustTimeOfDay(6, 0),
		ClosesAt:          interval.MustTimeOfDay(22, 0),
		PricePerHourCents: 3000,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

func (r *ResourceBuilder) BuildDomain() *resource.Resource {
	return resource.ReconstructResource(
		r.ID, r.Name, r.Categories, r.OpensAt, r.ClosesAt, r.PricePerHourCents, r.CreatedAt, r.UpdatedAt,
	)
}

func (r *ResourceBuilder) BuildView() *queries.ResourceView {
	return queries.NewResourceView(r.BuildDomain())
}
