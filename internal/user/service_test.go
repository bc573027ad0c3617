// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/consumo/internal/platform/apperr"
	"github.com/taibuivan/consumo/internal/platform/sec"
	"github.com/taibuivan/consumo/internal/user"
)

// stubTokens records generation calls and returns a fixed token.
type stubTokens struct {
	lastEmail string
	lastRole  sec.Role
}

func (s *stubTokens) Generate(_, email, _ string, role sec.Role, _ time.Duration) (string, error) {
	s.lastEmail = email
	s.lastRole = role
	return "stub-token", nil
}

// recordingInvalidator tracks cache invalidations.
type recordingInvalidator struct {
	invalidated []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, email string) error {
	r.invalidated = append(r.invalidated, email)
	return nil
}

func newTestService(t *testing.T) (*user.Service, *user.MemoryRepository, *stubTokens, *recordingInvalidator) {
	t.Helper()
	repository := user.NewMemoryRepository()
	tokens := &stubTokens{}
	invalidator := &recordingInvalidator{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return user.NewService(repository, tokens, invalidator, logger), repository, tokens, invalidator
}

func register(t *testing.T, service *user.Service, email, nickname string) *user.User {
	t.Helper()
	created, err := service.Register(context.Background(), user.RegisterInput{
		Email:    email,
		Nickname: nickname,
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	return created
}

/*
TestService_Register verifies the enrollment invariants: the stored role is
always USER, self-elevation to EMPLOYEE fails with 401, and duplicate
identities fail with 400.
*/
func TestService_Register(t *testing.T) {
	t.Parallel()

	t.Run("role is forced to USER", func(t *testing.T) {
		t.Parallel()
		service, _, _, _ := newTestService(t)

		created := register(t, service, "ana@example.com", "ana")
		assert.Equal(t, sec.RoleUser, created.Role)
		assert.False(t, created.IsBlocked)
		assert.NotEmpty(t, created.ID)
		assert.NotEmpty(t, created.PasswordHash)
		assert.NotEqual(t, "correct horse battery", created.PasswordHash)
	})

	t.Run("self-registering as employee is unauthorized", func(t *testing.T) {
		t.Parallel()
		service, _, _, _ := newTestService(t)

		_, err := service.Register(context.Background(), user.RegisterInput{
			Email:    "staff@example.com",
			Nickname: "staff",
			Password: "correct horse battery",
			Role:     sec.RoleEmployee,
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)
	})

	t.Run("duplicate email and nickname are rejected", func(t *testing.T) {
		t.Parallel()
		service, _, _, _ := newTestService(t)
		register(t, service, "ana@example.com", "ana")

		_, err := service.Register(context.Background(), user.RegisterInput{
			Email:    "ana@example.com",
			Nickname: "other",
			Password: "correct horse battery",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)

		_, err = service.Register(context.Background(), user.RegisterInput{
			Email:    "other@example.com",
			Nickname: "ana",
			Password: "correct horse battery",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
	})
}

/*
TestService_Login verifies the authentication flow: correct credentials
yield a token, wrong credentials and blocked accounts yield 401.
*/
func TestService_Login(t *testing.T) {
	t.Parallel()

	t.Run("correct credentials issue a token", func(t *testing.T) {
		t.Parallel()
		service, _, tokens, _ := newTestService(t)
		register(t, service, "ana@example.com", "ana")

		token, err := service.Login(context.Background(), "ana@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, "stub-token", token)
		assert.Equal(t, "ana@example.com", tokens.lastEmail)
		assert.Equal(t, sec.RoleUser, tokens.lastRole)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		t.Parallel()
		service, _, _, _ := newTestService(t)
		register(t, service, "ana@example.com", "ana")

		_, err := service.Login(context.Background(), "ana@example.com", "wrong password")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		t.Parallel()
		service, _, _, _ := newTestService(t)

		_, err := service.Login(context.Background(), "ghost@example.com", "whatever password")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)
	})

	t.Run("blocked account cannot log in with correct credentials", func(t *testing.T) {
		t.Parallel()
		service, _, _, _ := newTestService(t)
		created := register(t, service, "ana@example.com", "ana")

		require.NoError(t, service.SetBlocked(context.Background(), created.ID, true))

		_, err := service.Login(context.Background(), "ana@example.com", "correct horse battery")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)
	})
}

/*
TestService_SetBlocked verifies blocking flips the flag, invalidates the
cached gate identity, and 404s on unknown accounts.
*/
func TestService_SetBlocked(t *testing.T) {
	t.Parallel()

	service, repository, _, invalidator := newTestService(t)
	created := register(t, service, "ana@example.com", "ana")

	require.NoError(t, service.SetBlocked(context.Background(), created.ID, true))

	stored, err := repository.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsBlocked)
	assert.Contains(t, invalidator.invalidated, "ana@example.com")

	require.NoError(t, service.SetBlocked(context.Background(), created.ID, false))
	stored, err = repository.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsBlocked)

	err = service.SetBlocked(context.Background(), "11111111-1111-1111-1111-111111111111", true)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

/*
TestService_DeleteUser verifies deletion removes the account, invalidates
the cached identity, and 404s on unknown accounts.
*/
func TestService_DeleteUser(t *testing.T) {
	t.Parallel()

	service, repository, _, invalidator := newTestService(t)
	created := register(t, service, "ana@example.com", "ana")

	require.NoError(t, service.DeleteUser(context.Background(), created.ID))
	assert.Contains(t, invalidator.invalidated, "ana@example.com")

	_, err := repository.FindByID(context.Background(), created.ID)
	require.Error(t, err)

	err = service.DeleteUser(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

/*
TestService_ListUsers verifies the paginated, searchable listing.
*/
func TestService_ListUsers(t *testing.T) {
	t.Parallel()

	service, _, _, _ := newTestService(t)
	register(t, service, "ana@example.com", "ana")
	register(t, service, "bruno@example.com", "bruno")
	register(t, service, "carla@example.com", "carla")

	all, total, err := service.ListUsers(context.Background(), "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, all, 3)

	page, total, err := service.ListUsers(context.Background(), "", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, page, 2)

	matched, total, err := service.ListUsers(context.Background(), "BRUNO", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, matched, 1)
	assert.Equal(t, "bruno", matched[0].Nickname)
}
