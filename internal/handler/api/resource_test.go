//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"court-booking/internal/domain/interval"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/httptest"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityHandler_Slots(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resourceID := uuid.New()
	date := interval.NewDate(2025, 3, 1)
	url := "/resources/" + resourceID.String() + "/slots"

	tests := []struct {
		name       string
		query      string
		setup      func(q *queriesmock.MockAvailabilityQueries)
		expectCode int
		assertBody func(t *testing.T, body resdto.AvailabilityResponse)
	}{
		{
			name:  "success: default slot length",
			query: "?date=2025-03-01",
			setup: func(q *queriesmock.MockAvailabilityQueries) {
				q.EXPECT().AvailableSlots(gomock.Any(), resourceID, date, 0).Return(&queries.AvailabilityView{
					ResourceID:  resourceID,
					Date:        "2025-03-01",
					SlotMinutes: 60,
					Slots: []queries.SlotView{
						{Date: "2025-03-01", Start: "06:00", End: "07:00", PriceCents: 2000},
					},
				}, nil)
			},
			expectCode: http.StatusOK,
			assertBody: func(t *testing.T, body resdto.AvailabilityResponse) {
				assert.Equal(t, 60, body.SlotMinutes)
				assert.Equal(t, []resdto.SlotResponse{
					{Date: "2025-03-01", Start: "06:00", End: "07:00", PriceCents: 2000},
				}, body.Slots)
			},
		},
		{
			name:  "success: explicit slot length and a fully booked day",
			query: "?date=2025-03-01&slotMinutes=90",
			setup: func(q *queriesmock.MockAvailabilityQueries) {
				q.EXPECT().AvailableSlots(gomock.Any(), resourceID, date, 90).Return(&queries.AvailabilityView{
					ResourceID:  resourceID,
					Date:        "2025-03-01",
					SlotMinutes: 90,
					Slots:       []queries.SlotView{},
				}, nil)
			},
			expectCode: http.StatusOK,
			assertBody: func(t *testing.T, body resdto.AvailabilityResponse) {
				assert.NotNil(t, body.Slots)
				assert.Empty(t, body.Slots)
			},
		},
		{
			name:       "error: missing date",
			query:      "",
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "error: slot longer than a day",
			query:      "?date=2025-03-01&slotMinutes=1441",
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "error: malformed date",
			query:      "?date=March-1",
			expectCode: http.StatusBadRequest,
		},
		{
			name:  "error: unknown resource",
			query: "?date=2025-03-01",
			setup: func(q *queriesmock.MockAvailabilityQueries) {
				q.EXPECT().AvailableSlots(gomock.Any(), resourceID, date, 0).
					Return(nil, errs.Wrapf(errs.ErrResourceNotFound, "resource %s", resourceID))
			},
			expectCode: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := queriesmock.NewMockAvailabilityQueries(ctrl)
			if tc.setup != nil {
				tc.setup(q)
			}
			router := gin.New()
			router.GET("/resources/:id/slots", api.NewAvailabilityHandler(q).Slots)

			rec := httptest.PerformRequest(t, router, http.MethodGet, url+tc.query, nil, "")

			if tc.assertBody == nil {
				assert.Equal(t, tc.expectCode, rec.Code, rec.Body.String())
				return
			}
			var body resdto.AvailabilityResponse
			httptest.AssertSuccessResponse(t, rec, tc.expectCode, &body)
			tc.assertBody(t, body)
		})
	}
}
