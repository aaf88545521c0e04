package api

import (
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	q queries.SearchQueries
}

func NewSearchHandler(q queries.SearchQueries) *SearchHandler {
	return &SearchHandler{q: q}
}

// @Summary Search resources
// @Description Resources whose name, "name category" or category starts with q (case-insensitive).
// @Tags search
// @Produce json
// @Param q query string false "Prefix"
// @Success 200 {object} resdto.SearchResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var q reqdto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	views, err := h.q.Search(c.Request.Context(), q.Q)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SearchResponse{Query: q.Q, Results: resdto.FromResourceViews(views)})
}

// @Summary Autocomplete
// @Description Up to limit indexed terms under q, in lexicographic order.
// @Tags search
// @Produce json
// @Param q query string false "Prefix"
// @Param limit query int false "Maximum suggestions"
// @Success 200 {object} resdto.AutocompleteResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /search/autocomplete [get]
func (h *SearchHandler) Autocomplete(c *gin.Context) {
	var q reqdto.AutocompleteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	suggestions, err := h.q.Autocomplete(c.Request.Context(), q.Q, q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	c.JSON(http.StatusOK, resdto.AutocompleteResponse{Query: q.Q, Suggestions: suggestions})
}
