//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"reminder-scheduler/internal/pkg/config"
	"reminder-scheduler/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

const DefaultCaller = "telegram-bot"

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer)
	token, err := service.GenerateToken(subject, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer)
	token, err := service.GenerateToken(subject, -time.Minute)
	require.NoError(t, err)
	return token
}
