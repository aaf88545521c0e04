package api

import (
	"net/http"

	"court-booking/internal/domain/interval"
	reqdto "court-booking/internal/handler/dto/request"
	"court-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindDate(c *gin.Context) (interval.Date, bool) {
	var q reqdto.DateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return interval.Date{}, false
	}
	date, err := interval.ParseDate(q.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return interval.Date{}, false
	}
	return date, true
}
