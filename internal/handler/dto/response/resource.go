package response

import (
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ResourceResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Categories        []string  `json:"categories"`
	OpensAt           string    `json:"opensAt"`
	ClosesAt          string    `json:"closesAt"`
	PricePerHourCents int64     `json:"pricePerHourCents"`
}

type SearchResponse struct {
	Query   string              `json:"query"`
	Results []*ResourceResponse `json:"results"`
}

type AutocompleteResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

type ReindexResponse struct {
	Indexed int `json:"indexed"`
}

func FromResourceViews(vs []*queries.ResourceView) []*ResourceResponse {
	res := make([]*ResourceResponse, len(vs))
	for i, v := range vs {
		r := &ResourceResponse{}
		_ = copier.CopyWithOption(r, v, copier.Option{DeepCopy: true})
		if r.Categories == nil {
			r.Categories = []string{}
		}
		res[i] = r
	}
	return res
}
