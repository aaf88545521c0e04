package resource

import (
	"strings"
	"time"

	"court-booking/internal/domain/interval"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errs.New("resource name cannot be empty")
	ErrResourceNameTooLong = errs.New("resource name is too long (max 255 characters)")
	ErrInvalidHours        = errs.New("operating hours must open before they close")
	ErrNegativePrice       = errs.New("hourly price cannot be negative")
)

const (
	MaxResourceNameLength = 255
)

// Resource is a schedulable court. The core never mutates it.
type Resource struct {
	id                uuid.UUID
	name              string
	categories        []string
	opensAt           interval.TimeOfDay
	closesAt          interval.TimeOfDay
	pricePerHourCents int64
	createdAt         time.Time
	updatedAt         time.Time
}

func NewResource(
	id uuid.UUID,
	name string,
	categories []string,
	opensAt, closesAt interval.TimeOfDay,
	pricePerHourCents int64,
) (*Resource, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if opensAt < 0 || closesAt > interval.MinutesPerDay || opensAt >= closesAt {
		return nil, ErrInvalidHours
	}
	if pricePerHourCents < 0 {
		return nil, ErrNegativePrice
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Resource{
		id:                id,
		name:              strings.TrimSpace(name),
		categories:        normalizeCategories(categories),
		opensAt:           opensAt,
		closesAt:          closesAt,
		pricePerHourCents: pricePerHourCents,
	}, nil
}

func ReconstructResource(
	id uuid.UUID,
	name string,
	categories []string,
	opensAt, closesAt interval.TimeOfDay,
	pricePerHourCents int64,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:                id,
		name:              name,
		categories:        normalizeCategories(categories),
		opensAt:           opensAt,
		closesAt:          closesAt,
		pricePerHourCents: pricePerHourCents,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// SearchTerms are the strings the search index files this resource under:
// the bare name, "{name} {category}" and the bare category for every tag.
func (r *Resource) SearchTerms() []string {
	terms := make([]string, 0, 1+2*len(r.categories))
	terms = append(terms, r.name)
	for _, c := range r.categories {
		terms = append(terms, r.name+" "+c, c)
	}
	return terms
}

// Covers reports whether iv lies entirely inside the operating hours.
func (r *Resource) Covers(iv interval.Interval) bool {
	return iv.Start() >= r.opensAt && iv.End() <= r.closesAt
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func normalizeCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		key := strings.ToLower(c)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

func (r *Resource) ID() uuid.UUID                { return r.id }
func (r *Resource) Name() string                 { return r.name }
func (r *Resource) OpensAt() interval.TimeOfDay  { return r.opensAt }
func (r *Resource) ClosesAt() interval.TimeOfDay { return r.closesAt }
func (r *Resource) PricePerHourCents() int64     { return r.pricePerHourCents }
func (r *Resource) CreatedAt() time.Time         { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time         { return r.updatedAt }

func (r *Resource) Categories() []string {
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}
