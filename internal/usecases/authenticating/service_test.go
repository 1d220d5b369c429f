package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/chatter-metrics-api/internal/config"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()

	claims := domain.Claims{
		UserID:     42,
		UserName:   "Renata",
		UserRoleID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newTestAuthenticator() Authenticator {
	return NewService(&config.Config{
		Auth: config.Auth{Secret: testSecret},
	})
}

func TestValidateToken_TokenValido(t *testing.T) {
	service := newTestAuthenticator()

	token := signToken(t, testSecret, time.Now().Add(time.Hour))

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "Renata", claims.UserName)
	assert.Equal(t, 1, claims.UserRoleID)
}

func TestValidateToken_TokenExpirado(t *testing.T) {
	service := newTestAuthenticator()

	token := signToken(t, testSecret, time.Now().Add(-time.Hour))

	_, err := service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_AssinaturaInvalida(t *testing.T) {
	service := newTestAuthenticator()

	token := signToken(t, "outro-segredo", time.Now().Add(time.Hour))

	_, err := service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
