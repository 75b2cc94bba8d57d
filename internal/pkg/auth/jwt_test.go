package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/pkg/apperrors"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "campus-test",
	})
}

func Test_JWTService_RoundTrip(t *testing.T) {
	svc := newTestService(time.Hour)

	token, expiresAt, err := svc.GenerateToken("registrar-1", models.RoleRegistrar)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "registrar-1", claims.Subject)
	assert.Equal(t, string(models.RoleRegistrar), claims.RoleType)
	assert.Equal(t, "campus-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func Test_JWTService_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken("registrar-1", models.RoleRegistrar)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func Test_JWTService_WrongSecret(t *testing.T) {
	token, _, err := newTestService(time.Hour).GenerateToken("registrar-1", models.RoleRegistrar)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other", TokenExp: time.Hour, TokenIssuer: "campus-test"})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func Test_JWTService_Malformed(t *testing.T) {
	_, err := newTestService(time.Hour).ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)

	_, err = newTestService(time.Hour).ValidateToken("")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func Test_ExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer a.b.c", want: "a.b.c"},
		{name: "raw", header: "a.b.c", want: "a.b.c"},
		{name: "empty", header: "  ", wantErr: apperrors.ErrTokenNotFound},
		{name: "garbage", header: "Basic dXNlcjpwYXNz", wantErr: apperrors.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
