package memstore

import (
	"context"
	"encoding/json"
	"os"
	"slices"
	"strings"
	"sync"

	"court-booking/internal/domain/interval"
	"court-booking/internal/domain/resource"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.ResourceCatalog = (*Catalog)(nil)

type Catalog struct {
	mu        sync.RWMutex
	resources map[uuid.UUID]*resource.Resource
}

func NewCatalog(resources ...*resource.Resource) *Catalog {
	c := &Catalog{resources: make(map[uuid.UUID]*resource.Resource, len(resources))}
	for _, r := range resources {
		c.resources[r.ID()] = r
	}
	return c
}

func (c *Catalog) Put(r *resource.Resource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources[r.ID()] = r
}

// ListAll returns resources ordered by name.
func (c *Catalog) ListAll(_ context.Context) ([]*resource.Resource, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*resource.Resource, 0, len(c.resources))
	for _, r := range c.resources {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b *resource.Resource) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return out, nil
}

func (c *Catalog) FindByID(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.resources[id]
	if !ok {
		return nil, infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return r, nil
}

type seedResource struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Categories        []string  `json:"categories"`
	OpensAt           string    `json:"opensAt"`
	ClosesAt          string    `json:"closesAt"`
	PricePerHourCents int64     `json:"pricePerHourCents"`
}

// LoadCatalog reads a JSON array of resources, used when running without Postgres.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read catalog seed %s", path)
	}

	var seeds []seedResource
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, errs.Wrapf(err, "decode catalog seed %s", path)
	}

	resources := make([]*resource.Resource, 0, len(seeds))
	for _, s := range seeds {
		opens, err := interval.ParseTimeOfDay(s.OpensAt)
		if err != nil {
			return nil, errs.Wrapf(err, "resource %q", s.Name)
		}
		closes, err := interval.ParseTimeOfDay(s.ClosesAt)
		if err != nil {
			return nil, errs.Wrapf(err, "resource %q", s.Name)
		}
		r, err := resource.NewResource(s.ID, s.Name, s.Categories, opens, closes, s.PricePerHourCents)
		if err != nil {
			return nil, errs.Wrapf(err, "resource %q", s.Name)
		}
		resources = append(resources, r)
	}
	return NewCatalog(resources...), nil
}
