// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package request_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/consumo/internal/platform/apperr"
	"github.com/taibuivan/consumo/internal/product"
	"github.com/taibuivan/consumo/internal/request"
	"github.com/taibuivan/consumo/pkg/uuidv7"
)

// newTestService wires the request service against in-memory stores with
// one product already in the catalogue.
func newTestService(t *testing.T) (*request.Service, *product.Product) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	products := product.NewMemoryRepository()
	seeded, err := product.NewService(products, logger).Create(context.Background(), product.CreateInput{
		Regions: []string{"ES-VC"},
		Contents: []product.ContentInput{
			{Language: "es-ES", Name: "Paella", Description: "Valenciana"},
		},
	})
	require.NoError(t, err)

	return request.NewService(request.NewMemoryRepository(), products, logger), seeded
}

func TestService_ProductRequests(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t)
	requester := uuidv7.New()

	created, err := service.SubmitProductRequest(context.Background(), request.ProductRequestInput{
		UserID:      requester,
		Name:        "Horchata",
		Description: "De chufa, por favor",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	queue, err := service.ListProductRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, requester, queue[0].UserID)

	require.NoError(t, service.DeleteProductRequest(context.Background(), created.ID))

	queue, err = service.ListProductRequests(context.Background())
	require.NoError(t, err)
	assert.Empty(t, queue)

	err = service.DeleteProductRequest(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)
}

/*
TestService_BlogRequests verifies the referential check on blog
suggestions: the target product must already exist, otherwise the
submission is malformed input (400).
*/
func TestService_BlogRequests(t *testing.T) {
	t.Parallel()

	service, seeded := newTestService(t)
	requester := uuidv7.New()

	created, err := service.SubmitBlogRequest(context.Background(), request.BlogRequestInput{
		UserID:      requester,
		ProductID:   seeded.ID,
		Title:       "El origen de la paella",
		Description: "Historia y polémica de la paella valenciana",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	t.Run("unknown product is a 400", func(t *testing.T) {
		_, err := service.SubmitBlogRequest(context.Background(), request.BlogRequestInput{
			UserID:    requester,
			ProductID: uuidv7.New(),
			Title:     "Sobre nada",
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperr.As(err).HTTPStatus)
	})

	queue, err := service.ListBlogRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, seeded.ID, queue[0].ProductID)

	require.NoError(t, service.DeleteBlogRequest(context.Background(), created.ID))

	err = service.DeleteBlogRequest(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)
}
