//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"court-booking/internal/domain/auth"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret, cfg.Issuer)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject string, role auth.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(subject, role.String(), time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) OperatorToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, "operator@example.com", auth.RoleOperator)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject string, role auth.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(subject, role.String(), time.Millisecond)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
