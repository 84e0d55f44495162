package auth

import (
	"testing"
	"time"

	"cashless/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()
	svc, err := NewJWTService(&Secrets{Token: []byte(secret)})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_SignAndParse(t *testing.T) {
	svc := newTestJWTService(t, "test_token_secret_key_very_long_for_testing")
	accountID := uuid.New()
	now := time.Now()

	token, err := svc.Sign("sid-1", entity.TokenLongSession, accountID, now, now.Add(time.Hour))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.Equal(t, entity.TokenLongSession, claims.Kind)

	got, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, "test_token_secret_key_very_long_for_testing")
	other := newTestJWTService(t, "another_secret_key_very_long_for_testing")
	now := time.Now()

	foreign, err := other.Sign("sid", entity.TokenOnetime, uuid.New(), now, now.Add(time.Minute))
	require.NoError(t, err)

	expired, err := svc.Sign("sid", entity.TokenOnetime, uuid.New(), now.Add(-time.Hour), now.Add(-time.Minute))
	require.NoError(t, err)

	badKind, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": "sid", "kind": "root", "sub": uuid.NewString(), "exp": now.Add(time.Minute).Unix(),
	}).SignedString(svc.secret)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": "sid", "kind": "onetime", "sub": uuid.NewString(),
	}).SignedString(svc.secret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "not-a-token"},
		{"Wrong secret", foreign},
		{"Expired", expired},
		{"Unknown kind", badKind},
		{"Missing expiry", noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Parse(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&Secrets{})
	assert.Error(t, err)
}
