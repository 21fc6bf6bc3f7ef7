package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomeliGithub/maria-project-sub000/internal/auth/domain"
	"github.com/gomeliGithub/maria-project-sub000/internal/auth/secret"
	"github.com/gomeliGithub/maria-project-sub000/internal/auth/service"
	apperrors "github.com/gomeliGithub/maria-project-sub000/internal/errors"
	"github.com/gomeliGithub/maria-project-sub000/internal/mocks"
	"github.com/gomeliGithub/maria-project-sub000/pkg/constant"
)

func newKeySet(t *testing.T) *secret.KeySet {
	t.Helper()

	keys, err := secret.NewKeySet()
	require.NoError(t, err)

	return keys
}

func testClient() *domain.Client {
	email := "alice@example.com"

	return &domain.Client{
		ID:           "client-1",
		Login:        "alice",
		Type:         constant.ClientTypeMember,
		FullName:     "Alice Example",
		Email:        &email,
		Locale:       "en",
		SignUpAt:     time.Now().Add(-24 * time.Hour).Truncate(time.Second),
		PasswordHash: "irrelevant",
	}
}

func TestTokenService_SignVerifyRoundTrip(t *testing.T) {
	keys := newKeySet(t)
	ts := service.NewTokenService("HS256", keys, nil, 60)

	client := testClient()
	fgp, err := keys.NewFingerprint()
	require.NoError(t, err)

	token, expiresAt, err := ts.Sign(client, fgp.Hash)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), expiresAt, 5*time.Second)

	claims, err := ts.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, client.Login, claims.Login)
	assert.Equal(t, client.Type, claims.Type)
	assert.Equal(t, client.FullName, claims.FullName)
	assert.Equal(t, client.Email, claims.Email)
	assert.Equal(t, client.Locale, claims.Locale)
	assert.Equal(t, fgp.Hash, claims.FgpHash)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
}

func TestTokenService_Verify_WrongKey(t *testing.T) {
	ours := service.NewTokenService("HS256", newKeySet(t), nil, 60)
	theirs := service.NewTokenService("HS256", newKeySet(t), nil, 60)

	token, _, err := theirs.Sign(testClient(), "fgp-hash")
	require.NoError(t, err)

	claims, err := ours.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	ts := service.NewTokenService("HS256", newKeySet(t), nil, 60)

	claims, err := ts.Verify("not.a.token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := service.NewTokenService("HS256", newKeySet(t), nil, -1)

	token, _, err := ts.Sign(testClient(), "fgp-hash")
	require.NoError(t, err)

	claims, err := ts.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestTokenService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keys := newKeySet(t)
	mockRevocations := mocks.NewMockRevocationRepository(ctrl)
	ts := service.NewTokenService("HS256", keys, mockRevocations, 60)

	fgp, err := keys.NewFingerprint()
	require.NoError(t, err)

	token, _, err := ts.Sign(testClient(), fgp.Hash)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		mockRevocations.EXPECT().IsRevoked(gomock.Any(), keys.TokenHash(token)).Return(false, nil)

		claims, err := ts.Validate(context.Background(), token, fgp.Value, true)
		require.NoError(t, err)
		require.NotNil(t, claims)
		assert.Equal(t, "alice", claims.Login)
	})

	t.Run("fingerprint mismatch throws", func(t *testing.T) {
		claims, err := ts.Validate(context.Background(), token, "stolen-or-absent", true)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, apperrors.ErrFingerprintMismatch)
	})

	t.Run("fingerprint mismatch tolerant", func(t *testing.T) {
		claims, err := ts.Validate(context.Background(), token, "stolen-or-absent", false)
		assert.Nil(t, claims)
		assert.NoError(t, err)
	})

	t.Run("empty fingerprint cookie", func(t *testing.T) {
		claims, err := ts.Validate(context.Background(), token, "", true)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, apperrors.ErrFingerprintMismatch)
	})

	t.Run("revoked throws", func(t *testing.T) {
		mockRevocations.EXPECT().IsRevoked(gomock.Any(), keys.TokenHash(token)).Return(true, nil)

		claims, err := ts.Validate(context.Background(), token, fgp.Value, true)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	})

	t.Run("revoked tolerant", func(t *testing.T) {
		mockRevocations.EXPECT().IsRevoked(gomock.Any(), keys.TokenHash(token)).Return(true, nil)

		claims, err := ts.Validate(context.Background(), token, fgp.Value, false)
		assert.Nil(t, claims)
		assert.NoError(t, err)
	})

	t.Run("storage failure never downgraded", func(t *testing.T) {
		mockRevocations.EXPECT().IsRevoked(gomock.Any(), keys.TokenHash(token)).
			Return(false, apperrors.ErrStorageUnavailable)

		claims, err := ts.Validate(context.Background(), token, fgp.Value, false)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	})
}

func TestTokenService_Revoke_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keys := newKeySet(t)
	mockRevocations := mocks.NewMockRevocationRepository(ctrl)
	ts := service.NewTokenService("HS256", keys, mockRevocations, 60)

	token := "some.issued.token"
	hash := keys.TokenHash(token)

	// First revoke writes the row.
	mockRevocations.EXPECT().IsRevoked(gomock.Any(), hash).Return(false, nil)
	mockRevocations.EXPECT().RecordRevoked(gomock.Any(), hash, gomock.Any()).Return(nil)
	require.NoError(t, ts.Revoke(context.Background(), token))

	// Second revoke is a no-op.
	mockRevocations.EXPECT().IsRevoked(gomock.Any(), hash).Return(true, nil)
	require.NoError(t, ts.Revoke(context.Background(), token))
}

func TestTokenService_PersistIssued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keys := newKeySet(t)
	mockRevocations := mocks.NewMockRevocationRepository(ctrl)
	ts := service.NewTokenService("HS256", keys, mockRevocations, 60)

	issuedAt := time.Now()
	expiresAt := issuedAt.Add(time.Hour)

	mockRevocations.EXPECT().
		RecordIssued(gomock.Any(), keys.TokenHash("tok"), issuedAt, expiresAt).
		Return(nil)

	require.NoError(t, ts.PersistIssued(context.Background(), "tok", issuedAt, expiresAt))
}

func TestTokenService_ExtractBearerToken(t *testing.T) {
	ts := service.NewTokenService("HS256", newKeySet(t), nil, 60)

	tests := []struct {
		name          string
		authorization string
		path          string
		tolerantPaths []string
		wantToken     string
		wantErr       error
	}{
		{
			name:          "present",
			authorization: "Bearer abc.def.ghi",
			path:          "/api/v1/admin/whoami",
			wantToken:     "abc.def.ghi",
		},
		{
			name:          "absent on tolerant path",
			path:          constant.ActiveClientPath,
			tolerantPaths: constant.TokenTolerantPaths,
			wantToken:     "",
		},
		{
			name:    "absent on protected path",
			path:    "/api/v1/admin/whoami",
			wantErr: apperrors.ErrMissingToken,
		},
		{
			name:          "wrong scheme",
			authorization: "Basic dXNlcjpwYXNz",
			path:          "/api/v1/admin/whoami",
			wantErr:       apperrors.ErrMissingToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ts.ExtractBearerToken(tt.authorization, tt.path, tt.tolerantPaths)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
