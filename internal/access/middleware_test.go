// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/consumo/internal/platform/middleware"
	"github.com/taibuivan/consumo/internal/platform/sec"
)

// staticVerifier accepts exactly one token and rejects everything else.
type staticVerifier struct {
	token  string
	claims *sec.AuthClaims
}

func (v staticVerifier) Verify(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr != v.token {
		return nil, sec.ErrTokenMalformed
	}
	return v.claims, nil
}

func newMiddlewareChain(t *testing.T) (http.Handler, *MemoryRepository) {
	t.Helper()

	repository := NewMemoryRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := NewRecorder(repository, io.Discard, logger)
	verifier := staticVerifier{
		token:  "valid-token",
		claims: &sec.AuthClaims{UserID: "0191c1a0-0000-7000-8000-0000000000aa"},
	}

	// Same relative order as the server chain: audit first, then the
	// middleware that can reject the request.
	var handler http.Handler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	handler = middleware.Authenticate(verifier)(handler)
	handler = Middleware(recorder, verifier)(handler)
	return handler, repository
}

func waitForRows(t *testing.T, repository *MemoryRepository, want int) []*ResourceAccess {
	t.Helper()

	// Recording is asynchronous; poll until the background writes land.
	require.Eventually(t, func() bool {
		rows, err := repository.List(context.Background(), Filter{}, 10)
		return err == nil && len(rows) == want
	}, time.Second, 10*time.Millisecond)

	rows, err := repository.List(context.Background(), Filter{}, 10)
	require.NoError(t, err)
	return rows
}

/*
TestMiddleware_RecordsRejectedRequests verifies that the audit trail covers
every inbound request: one anonymous and one carrying a garbage token the
authentication middleware aborts with 401 both leave a row, the rejected one
anonymous.
*/
func TestMiddleware_RecordsRejectedRequests(t *testing.T) {
	t.Parallel()

	handler, repository := newMiddlewareChain(t)

	anonymous := httptest.NewRecorder()
	handler.ServeHTTP(anonymous, httptest.NewRequest(http.MethodGet, "/api/v1/blogs", nil))
	assert.Equal(t, http.StatusOK, anonymous.Code)

	rejected := httptest.NewRecorder()
	badToken := httptest.NewRequest(http.MethodGet, "/api/v1/blogs", nil)
	badToken.Header.Set("Authorization", "Bearer not.a.jwt")
	handler.ServeHTTP(rejected, badToken)
	assert.Equal(t, http.StatusUnauthorized, rejected.Code)

	rows := waitForRows(t, repository, 2)
	for _, row := range rows {
		assert.Equal(t, "BLOG", row.ResourceType)
		assert.Nil(t, row.UserID)
	}
}

// TestMiddleware_EnrichesIdentity verifies the best-effort token parse: a
// valid bearer token stamps the caller's user id on the row even though
// authentication runs later in the chain.
func TestMiddleware_EnrichesIdentity(t *testing.T) {
	t.Parallel()

	handler, repository := newMiddlewareChain(t)

	response := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/blogs", nil)
	request.Header.Set("Authorization", "Bearer valid-token")
	handler.ServeHTTP(response, request)
	assert.Equal(t, http.StatusOK, response.Code)

	rows := waitForRows(t, repository, 1)
	require.NotNil(t, rows[0].UserID)
	assert.Equal(t, "0191c1a0-0000-7000-8000-0000000000aa", *rows[0].UserID)
	assert.Equal(t, AccessCreate, rows[0].AccessType)
}
