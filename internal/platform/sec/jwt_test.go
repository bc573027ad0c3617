// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/consumo/internal/platform/sec"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService("test-secret", "consumo.app", ttl)
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip verifies that a generated token resolves back to
the same identity within its lifetime.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestTokenService(t, 30*time.Minute)

	token, err := service.Generate("user-123", "ana@example.com", "ana", sec.RoleUser, 0)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", claims.Subject)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "ana", claims.Nickname)
	assert.Equal(t, string(sec.RoleUser), claims.Role)
	assert.Equal(t, "consumo.app", claims.Issuer)
}

/*
TestTokenService_Expired verifies that an expired token fails with the
expiry sentinel error.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newTestTokenService(t, 30*time.Minute)

	// Negative TTL bypasses the default and produces an already-expired token.
	token, err := service.Generate("user-123", "ana@example.com", "ana", sec.RoleUser, -1*time.Minute)
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_VerifyFailures covers the malformed / tampered token paths.
*/
func TestTokenService_VerifyFailures(t *testing.T) {
	service := newTestTokenService(t, 30*time.Minute)

	valid, err := service.Generate("user-123", "ana@example.com", "ana", sec.RoleUser, 0)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"empty", ""},
		{"tampered_signature", valid[:len(valid)-4] + "AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

/*
TestTokenService_WrongSecret verifies that tokens signed with a different
secret are rejected.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuing, err := sec.NewTokenService("secret-a", "consumo.app", time.Minute)
	require.NoError(t, err)
	verifying, err := sec.NewTokenService("secret-b", "consumo.app", time.Minute)
	require.NoError(t, err)

	token, err := issuing.Generate("user-123", "ana@example.com", "ana", sec.RoleUser, 0)
	require.NoError(t, err)

	_, err = verifying.Verify(token)
	assert.ErrorIs(t, err, sec.ErrTokenSignature)
}
