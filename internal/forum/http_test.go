// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package forum_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/consumo/internal/forum"
	"github.com/taibuivan/consumo/internal/platform/gate"
	"github.com/taibuivan/consumo/internal/platform/middleware"
	"github.com/taibuivan/consumo/internal/platform/sec"
	"github.com/taibuivan/consumo/internal/user"
	"github.com/taibuivan/consumo/pkg/uuidv7"
)

type testAPI struct {
	router        *chi.Mux
	service       *forum.Service
	userID        string
	userToken     string
	employeeToken string
}

// newTestAPI wires forum and thread routes with the Andalucía board open.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	tokens, err := sec.NewTokenService("test-secret-please-rotate", "consumo.app", 30*time.Minute)
	require.NoError(t, err)

	accounts := user.NewMemoryRepository()
	accessGate := gate.New(user.NewIdentitySource(accounts))

	service := forum.NewService(forum.NewMemoryRepository(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err = service.CreateForum(context.Background(), "ES-AN", "Andalucía")
	require.NoError(t, err)

	handler := forum.NewHandler(service, accessGate)

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokens))
	router.Route("/forums", handler.RegisterForumRoutes)
	router.Route("/threads", handler.RegisterThreadRoutes)

	api := &testAPI{router: router, service: service}
	api.userID, api.userToken = seedAccount(t, accounts, tokens, "ana@example.com", "ana", sec.RoleUser)
	_, api.employeeToken = seedAccount(t, accounts, tokens, "staff@example.com", "staff", sec.RoleEmployee)
	return api
}

func seedAccount(t *testing.T, accounts *user.MemoryRepository, tokens *sec.TokenService, email, nickname string, role sec.Role) (string, string) {
	t.Helper()

	account := &user.User{
		ID:           uuidv7.New(),
		Email:        email,
		Nickname:     nickname,
		Role:         role,
		PasswordHash: "unused",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, accounts.Create(context.Background(), account))

	token, err := tokens.Generate(account.ID, account.Email, account.Nickname, account.Role, 0)
	require.NoError(t, err)
	return account.ID, token
}

func (api *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	api.router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_Forums verifies boards are public to read, employee-only to
open, and unique per region.
*/
func TestHandler_Forums(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	response := api.do(t, http.MethodGet, "/forums/", "", nil)
	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "ES-AN")

	body := map[string]string{"region": "ES-AR", "name": "Aragón"}

	response = api.do(t, http.MethodPost, "/forums/", api.userToken, body)
	assert.Equal(t, http.StatusForbidden, response.Code)

	response = api.do(t, http.MethodPost, "/forums/", api.employeeToken, body)
	require.Equal(t, http.StatusCreated, response.Code, response.Body.String())

	response = api.do(t, http.MethodPost, "/forums/", api.employeeToken, body)
	assert.Equal(t, http.StatusConflict, response.Code)
}

/*
TestHandler_Threads walks a discussion end to end: open a thread, reply to
it as the authenticated user, read the board back, and check the gates on
the way — unknown region 400, unopened board 404, impersonation 401.
*/
func TestHandler_Threads(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	response := api.do(t, http.MethodPost, "/threads/", api.userToken, map[string]string{
		"region":   "ES-AN",
		"language": "es-ES",
		"title":    "Ferias de abril",
	})
	require.Equal(t, http.StatusCreated, response.Code, response.Body.String())

	var envelope struct {
		Data forum.Thread `json:"data"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &envelope))
	threadID := envelope.Data.ID
	require.NotEmpty(t, threadID)

	t.Run("unopened board rejects threads", func(t *testing.T) {
		response := api.do(t, http.MethodPost, "/threads/", api.userToken, map[string]string{
			"region":   "ES-CT",
			"language": "es-ES",
			"title":    "Foro inexistente",
		})
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("anonymous cannot open threads", func(t *testing.T) {
		response := api.do(t, http.MethodPost, "/threads/", "", map[string]string{
			"region":   "ES-AN",
			"language": "es-ES",
			"title":    "Sin identificar",
		})
		assert.Equal(t, http.StatusUnauthorized, response.Code)
	})

	t.Run("own reply is accepted, impersonation is not", func(t *testing.T) {
		response := api.do(t, http.MethodPost, "/threads/comments", api.userToken, map[string]string{
			"thread_id": threadID,
			"user_id":   api.userID,
			"content":   "¡Nos vemos allí!",
		})
		require.Equal(t, http.StatusCreated, response.Code, response.Body.String())

		response = api.do(t, http.MethodPost, "/threads/comments", api.userToken, map[string]string{
			"thread_id": threadID,
			"user_id":   uuidv7.New(),
			"content":   "Suplantación",
		})
		assert.Equal(t, http.StatusUnauthorized, response.Code)
	})

	response = api.do(t, http.MethodGet, "/threads/ES-AN", "", nil)
	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "Ferias de abril")
	assert.Contains(t, response.Body.String(), "¡Nos vemos allí!")

	response = api.do(t, http.MethodGet, "/threads/ES-CT", "", nil)
	assert.Equal(t, http.StatusNotFound, response.Code)

	t.Run("deletion is employee-only and cascades", func(t *testing.T) {
		response := api.do(t, http.MethodDelete, "/threads/"+threadID, api.userToken, nil)
		assert.Equal(t, http.StatusForbidden, response.Code)

		response = api.do(t, http.MethodDelete, "/threads/"+threadID, api.employeeToken, nil)
		require.Equal(t, http.StatusNoContent, response.Code)

		response = api.do(t, http.MethodGet, "/threads/ES-AN", "", nil)
		require.Equal(t, http.StatusOK, response.Code)
		assert.NotContains(t, response.Body.String(), "Ferias de abril")
	})
}
