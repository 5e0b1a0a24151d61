//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"ifuut-api/internal/pkg/config"
	"ifuut-api/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service(t *testing.T) *jwt.Service {
	t.Helper()
	access, refresh, err := h.cfg.Durations()
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, access, refresh)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := h.Service(t).GenerateAccessToken(userID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := h.Service(t).GenerateRefreshToken(userID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID int64) string {
	t.Helper()
	_, refresh, err := h.cfg.Durations()
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond, refresh)
	token, err := service.GenerateAccessToken(userID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
