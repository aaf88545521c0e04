package api

import (
	"log/slog"
	"net/http"

	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	catalog commands.CatalogCommands
}

func NewAdminHandler(catalog commands.CatalogCommands) *AdminHandler {
	return &AdminHandler{catalog: catalog}
}

// @Summary Reindex catalog
// @Description Rebuild the search index from the resource catalog and tell other instances to do the same.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReindexResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/catalog/reindex [post]
func (h *AdminHandler) Reindex(c *gin.Context) {
	n, err := h.catalog.Reindex(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	if p, ok := middleware.GetPrincipal(c); ok {
		slog.Info("catalog reindexed by operator", "subject", p.Subject, "resources", n)
	}
	c.JSON(http.StatusOK, resdto.ReindexResponse{Indexed: n})
}
