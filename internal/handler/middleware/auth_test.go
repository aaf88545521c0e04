//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"court-booking/internal/domain/auth"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/jwt"
	"court-booking/tests/common/httptest"
	usecasemock "court-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	mw := middleware.NewAuthMiddleware(s.mockValidator)

	handlers := append(mw.RequireOperator(), func(c *gin.Context) {
		p, _ := middleware.GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"subject": p.Subject})
	})
	s.router.POST("/admin", handlers...)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireOperator() {
	s.Run("success: operator passes", func() {
		s.mockValidator.EXPECT().ValidateToken("good").
			Return(auth.Principal{Subject: "op-1", Role: auth.RoleOperator}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("op-1", body["subject"])
	})

	s.Run("success: admin outranks operator", func() {
		s.mockValidator.EXPECT().ValidateToken("admin").
			Return(auth.Principal{Subject: "root", Role: auth.RoleAdmin}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin", nil, "admin")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 on invalid token", func() {
		s.mockValidator.EXPECT().ValidateToken("bad").Return(auth.Principal{}, jwt.ErrInvalidToken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin", nil, "bad")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 403 for viewers", func() {
		s.mockValidator.EXPECT().ValidateToken("viewer").
			Return(auth.Principal{Subject: "v-1", Role: auth.RoleViewer}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin", nil, "viewer")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}
