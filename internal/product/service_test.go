// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/consumo/internal/platform/apperr"
	"github.com/taibuivan/consumo/internal/product"
	"github.com/taibuivan/consumo/pkg/pointer"
)

func newTestService() *product.Service {
	return product.NewService(product.NewMemoryRepository(), slog.Default())
}

func createProduct(t *testing.T, service *product.Service, name string, regions ...string) *product.Product {
	t.Helper()

	created, err := service.Create(context.Background(), product.CreateInput{
		Regions: regions,
		Contents: []product.ContentInput{
			{Language: "es-ES", Name: name, Description: "Descripción de " + name},
		},
	})
	require.NoError(t, err)
	return created
}

/*
TestService_CreateAndGet verifies that a created product comes back fully
hydrated, with its regions and contents intact.
*/
func TestService_CreateAndGet(t *testing.T) {
	t.Parallel()

	service := newTestService()

	created, err := service.Create(context.Background(), product.CreateInput{
		Image:   pointer.To("covers/tortilla.png"),
		Regions: []string{"ES-AN", "ES-MD"},
		Contents: []product.ContentInput{
			{Language: "es-ES", Name: "Tortilla", Description: "Con cebolla"},
			{Language: "en-GB", Name: "Spanish omelette", Description: "With onion"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	found, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "covers/tortilla.png", *found.Image)
	assert.Len(t, found.Regions, 2)
	assert.Len(t, found.Contents, 2)

	t.Run("unknown product is a 404", func(t *testing.T) {
		_, err := service.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
		require.Error(t, err)
		assert.Equal(t, 404, apperr.As(err).HTTPStatus)
	})
}

/*
TestService_Search covers the three filter modes: name substring, exact
region code, and the intersection of both.
*/
func TestService_Search(t *testing.T) {
	t.Parallel()

	service := newTestService()
	gazpacho := createProduct(t, service, "Gazpacho", "ES-AN")
	paella := createProduct(t, service, "Paella", "ES-VC")
	createProduct(t, service, "Paella de marisco", "ES-AN", "ES-VC")

	t.Run("no filters lists everything", func(t *testing.T) {
		results, err := service.Search(context.Background(), "", "")
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("region match is exact", func(t *testing.T) {
		results, err := service.Search(context.Background(), "", "ES-AN")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, gazpacho.ID, results[0].ID)

		empty, err := service.Search(context.Background(), "", "ES-CT")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("name match is a case-insensitive substring", func(t *testing.T) {
		results, err := service.Search(context.Background(), "paella", "")
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("name and region together intersect", func(t *testing.T) {
		results, err := service.Search(context.Background(), "paella", "ES-AN")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.NotEqual(t, paella.ID, results[0].ID)
	})
}

/*
TestService_AddContent verifies the per-language upsert: a new language is
appended, a repeated language replaces the entry but keeps its id.
*/
func TestService_AddContent(t *testing.T) {
	t.Parallel()

	service := newTestService()
	created := createProduct(t, service, "Fabada", "ES-AS")

	added, err := service.AddContent(context.Background(), created.ID, product.ContentInput{
		Language:    "en-GB",
		Name:        "Asturian bean stew",
		Description: "Hearty",
	})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	replaced, err := service.AddContent(context.Background(), created.ID, product.ContentInput{
		Language:    "en-GB",
		Name:        "Bean stew",
		Description: "Heartier",
	})
	require.NoError(t, err)
	assert.Equal(t, added.ID, replaced.ID)

	found, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, found.Contents, 2)

	t.Run("unknown product is a 404", func(t *testing.T) {
		_, err := service.AddContent(context.Background(), "00000000-0000-0000-0000-000000000000", product.ContentInput{
			Language: "en-GB",
			Name:     "Nothing",
		})
		require.Error(t, err)
		assert.Equal(t, 404, apperr.As(err).HTTPStatus)
	})
}

func TestService_Delete(t *testing.T) {
	t.Parallel()

	service := newTestService()
	created := createProduct(t, service, "Cocido", "ES-MD")

	require.NoError(t, service.Delete(context.Background(), created.ID))

	_, err := service.Get(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)

	err = service.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)
}
