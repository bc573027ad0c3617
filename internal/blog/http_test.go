// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog_test

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

	"github.com/taibuivan/consumo/internal/blog"
	"github.com/taibuivan/consumo/internal/platform/gate"
	"github.com/taibuivan/consumo/internal/platform/middleware"
	"github.com/taibuivan/consumo/internal/platform/sec"
	"github.com/taibuivan/consumo/internal/product"
	"github.com/taibuivan/consumo/internal/user"
	"github.com/taibuivan/consumo/pkg/uuidv7"
)

// testAPI bundles the wired blog routes with seeded accounts and a product
// to attach blogs to.
type testAPI struct {
	router        *chi.Mux
	service       *blog.Service
	product       *product.Product
	userID        string
	userToken     string
	employeeToken string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	tokens, err := sec.NewTokenService("test-secret-please-rotate", "consumo.app", 30*time.Minute)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	accounts := user.NewMemoryRepository()
	accessGate := gate.New(user.NewIdentitySource(accounts))

	products := product.NewMemoryRepository()
	seeded, err := product.NewService(products, logger).Create(context.Background(), product.CreateInput{
		Regions: []string{"ES-AN"},
		Contents: []product.ContentInput{
			{Language: "es-ES", Name: "Gazpacho", Description: "Frío"},
		},
	})
	require.NoError(t, err)

	service := blog.NewService(blog.NewMemoryRepository(), products, logger)
	handler := blog.NewHandler(service, accessGate)

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokens))
	router.Route("/blogs", handler.RegisterRoutes)

	api := &testAPI{router: router, service: service, product: seeded}
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

func (api *testAPI) createBlog(t *testing.T, title string) *blog.Blog {
	t.Helper()

	created, err := api.service.Create(context.Background(), blog.CreateInput{
		ProductID: api.product.ID,
		Contents: []blog.ContentInput{
			{Language: "es-ES", Title: title, Description: "Sobre " + title},
		},
	})
	require.NoError(t, err)
	return created
}

/*
TestHandler_Create covers the creation gates: employee-only, mandatory
primary-locale content, and the referenced product existing.
*/
func TestHandler_Create(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	payload := func() map[string]any {
		return map[string]any{
			"product_id": api.product.ID,
			"contents": []map[string]string{
				{"language": "es-ES", "title": "Historia del gazpacho", "description": "Andaluza"},
			},
		}
	}

	t.Run("employee creates a blog", func(t *testing.T) {
		response := api.do(t, http.MethodPost, "/blogs/", api.employeeToken, payload())
		require.Equal(t, http.StatusCreated, response.Code, response.Body.String())
		assert.Contains(t, response.Body.String(), `"id"`)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		response := api.do(t, http.MethodPost, "/blogs/", api.userToken, payload())
		assert.Equal(t, http.StatusForbidden, response.Code)
	})

	t.Run("primary language content is mandatory", func(t *testing.T) {
		body := payload()
		body["contents"] = []map[string]string{
			{"language": "en-GB", "title": "Gazpacho's history", "description": "Andalusian"},
		}
		response := api.do(t, http.MethodPost, "/blogs/", api.employeeToken, body)
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("unknown product is a 400", func(t *testing.T) {
		body := payload()
		body["product_id"] = uuidv7.New()
		response := api.do(t, http.MethodPost, "/blogs/", api.employeeToken, body)
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}

func TestHandler_ListAndGet(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)
	created := api.createBlog(t, "Historia del gazpacho")

	response := api.do(t, http.MethodGet, "/blogs/?title=gazpacho", "", nil)
	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), created.ID)

	response = api.do(t, http.MethodGet, "/blogs/?title=paella", "", nil)
	require.Equal(t, http.StatusOK, response.Code)
	assert.NotContains(t, response.Body.String(), created.ID)

	response = api.do(t, http.MethodGet, "/blogs/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "Historia del gazpacho")

	response = api.do(t, http.MethodGet, "/blogs/"+uuidv7.New(), "", nil)
	assert.Equal(t, http.StatusNotFound, response.Code)
}

/*
TestHandler_Comments verifies the ownership gate on commenting: the payload
user must be the authenticated caller, a mismatch is 401. Likes accumulate
without dedup.
*/
func TestHandler_Comments(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)
	created := api.createBlog(t, "Historia del gazpacho")

	t.Run("own comment is accepted", func(t *testing.T) {
		response := api.do(t, http.MethodPost, "/blogs/"+created.ID+"/comments", api.userToken, map[string]string{
			"user_id": api.userID,
			"text":    "Muy interesante",
		})
		require.Equal(t, http.StatusCreated, response.Code, response.Body.String())
		assert.Contains(t, response.Body.String(), `"id"`)
	})

	t.Run("acting as another user is a 401", func(t *testing.T) {
		response := api.do(t, http.MethodPost, "/blogs/"+created.ID+"/comments", api.userToken, map[string]string{
			"user_id": uuidv7.New(),
			"text":    "Suplantación",
		})
		assert.Equal(t, http.StatusUnauthorized, response.Code)
	})

	t.Run("missing blog is a 404", func(t *testing.T) {
		response := api.do(t, http.MethodPost, "/blogs/"+uuidv7.New()+"/comments", api.userToken, map[string]string{
			"user_id": api.userID,
			"text":    "Al vacío",
		})
		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("likes count twice from the same user", func(t *testing.T) {
		comment, err := api.service.AddComment(context.Background(), created.ID, blog.CommentInput{
			UserID: api.userID,
			Text:   "Dale a me gusta",
		})
		require.NoError(t, err)

		response := api.do(t, http.MethodPost, "/blogs/comments/"+comment.ID+"/like", api.userToken, nil)
		require.Equal(t, http.StatusCreated, response.Code)

		response = api.do(t, http.MethodPost, "/blogs/comments/"+comment.ID+"/like", api.userToken, nil)
		require.Equal(t, http.StatusCreated, response.Code)
		assert.Contains(t, response.Body.String(), `"like_count":2`)
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)
	created := api.createBlog(t, "Historia del gazpacho")

	response := api.do(t, http.MethodDelete, "/blogs/"+created.ID, api.userToken, nil)
	assert.Equal(t, http.StatusForbidden, response.Code)

	response = api.do(t, http.MethodDelete, "/blogs/"+created.ID, api.employeeToken, nil)
	require.Equal(t, http.StatusNoContent, response.Code)

	response = api.do(t, http.MethodGet, "/blogs/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, response.Code)
}
