package auth

import (
	"testing"
	"time"

	"directorio/config"
	domainerrors "directorio/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing")
	moderatorID := uuid.New()

	token, err := svc.GenerateAccessToken(moderatorID, []string{"moderator"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, moderatorID, claims.ModeratorID)
	assert.Equal(t, []string{"moderator"}, claims.Roles)
	assert.Equal(t, moderatorID.String(), claims.Subject)
	assert.Equal(t, time.Hour, svc.AccessTokenDuration())
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing")
	other := newTestJWTService(t, "another_secret_key_that_does_not_match")

	foreign, err := other.GenerateAccessToken(uuid.New(), []string{"moderator"})
	require.NoError(t, err)

	expired, err := svc.GenerateAccessToken(uuid.New(), []string{"moderator"})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"iss": tokenIssuer}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		clock time.Time
	}{
		{name: "not a jwt", token: "clearly-not-a-jwt-token-format", clock: time.Now()},
		{name: "wrong secret", token: foreign, clock: time.Now()},
		{name: "expired", token: expired, clock: time.Now().Add(2 * time.Hour)},
		{name: "none algorithm", token: unsigned, clock: time.Now()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.now = func() time.Time { return tt.clock }

			claims, err := svc.ValidateToken(tt.token)
			require.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	require.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
