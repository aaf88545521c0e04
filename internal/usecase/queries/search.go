package queries

import (
	"context"

	"court-booking/internal/domain/resource"
)

//go:generate mockgen -source=search.go -destination=../../../tests/mock/queries/search_mock.go -package=queries

type SearchIndex interface {
	Search(prefix string) []*resource.Resource
	Autocomplete(prefix string, limit int) []string
}

type SearchQueries interface {
	Search(ctx context.Context, prefix string) ([]*ResourceView, error)
	// Autocomplete caps limit at the configured maximum; limit <= 0 selects it.
	Autocomplete(ctx context.Context, prefix string, limit int) ([]string, error)
}

type searchQueriesImpl struct {
	index           SearchIndex
	autocompleteMax int
}

func NewSearchQueries(index SearchIndex, autocompleteMax int) SearchQueries {
	if autocompleteMax <= 0 {
		autocompleteMax = 20
	}
	return &searchQueriesImpl{index: index, autocompleteMax: autocompleteMax}
}

func (q *searchQueriesImpl) Search(_ context.Context, prefix string) ([]*ResourceView, error) {
	found := q.index.Search(prefix)
	views := make([]*ResourceView, len(found))
	for i, r := range found {
		views[i] = NewResourceView(r)
	}
	return views, nil
}

func (q *searchQueriesImpl) Autocomplete(_ context.Context, prefix string, limit int) ([]string, error) {
	if limit <= 0 || limit > q.autocompleteMax {
		limit = q.autocompleteMax
	}
	return q.index.Autocomplete(prefix, limit), nil
}
