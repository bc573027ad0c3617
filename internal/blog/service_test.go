// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/consumo/internal/blog"
	"github.com/taibuivan/consumo/internal/platform/apperr"
	"github.com/taibuivan/consumo/internal/platform/dberr"
	"github.com/taibuivan/consumo/internal/product"
	"github.com/taibuivan/consumo/pkg/uuidv7"
)

// newTestService wires the blog service against in-memory stores with one
// product already in the catalogue.
func newTestService(t *testing.T) (*blog.Service, *product.Product) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	products := product.NewMemoryRepository()
	productService := product.NewService(products, logger)
	seeded, err := productService.Create(context.Background(), product.CreateInput{
		Regions: []string{"ES-AN"},
		Contents: []product.ContentInput{
			{Language: "es-ES", Name: "Gazpacho", Description: "Frío"},
		},
	})
	require.NoError(t, err)

	return blog.NewService(blog.NewMemoryRepository(), products, logger), seeded
}

func createBlog(t *testing.T, service *blog.Service, productID, title string) *blog.Blog {
	t.Helper()

	created, err := service.Create(context.Background(), blog.CreateInput{
		ProductID: productID,
		Contents: []blog.ContentInput{
			{Language: "es-ES", Title: title, Description: "Sobre " + title},
		},
	})
	require.NoError(t, err)
	return created
}

/*
TestService_Create verifies the referential check: a blog attaches to an
existing product, and an unknown product is rejected as malformed input
(400), not as a missing target.
*/
func TestService_Create(t *testing.T) {
	t.Parallel()

	service, seeded := newTestService(t)

	created := createBlog(t, service, seeded.ID, "Historia del gazpacho")
	require.NotEmpty(t, created.ID)
	assert.Equal(t, seeded.ID, created.ProductID)
	assert.Len(t, created.Contents, 1)

	t.Run("unknown product is a 400", func(t *testing.T) {
		_, err := service.Create(context.Background(), blog.CreateInput{
			ProductID: uuidv7.New(),
			Contents: []blog.ContentInput{
				{Language: "es-ES", Title: "Huérfano"},
			},
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperr.As(err).HTTPStatus)
	})
}

func TestService_List(t *testing.T) {
	t.Parallel()

	service, seeded := newTestService(t)
	first := createBlog(t, service, seeded.ID, "Historia del gazpacho")
	createBlog(t, service, seeded.ID, "Recetas de verano")

	t.Run("title filter is a case-insensitive substring", func(t *testing.T) {
		blogs, err := service.List(context.Background(), blog.Filter{Title: "GAZPACHO"})
		require.NoError(t, err)
		require.Len(t, blogs, 1)
		assert.Equal(t, first.ID, blogs[0].ID)
	})

	t.Run("product filter narrows to one product", func(t *testing.T) {
		blogs, err := service.List(context.Background(), blog.Filter{ProductID: seeded.ID})
		require.NoError(t, err)
		assert.Len(t, blogs, 2)

		blogs, err = service.List(context.Background(), blog.Filter{ProductID: uuidv7.New()})
		require.NoError(t, err)
		assert.Empty(t, blogs)
	})
}

/*
TestService_Comments covers the comment lifecycle: posting on an existing
blog, posting on a missing blog, and the like counter's at-least-once
semantics — two likes from the same user count twice.
*/
func TestService_Comments(t *testing.T) {
	t.Parallel()

	service, seeded := newTestService(t)
	created := createBlog(t, service, seeded.ID, "Historia del gazpacho")
	author := uuidv7.New()

	comment, err := service.AddComment(context.Background(), created.ID, blog.CommentInput{
		UserID: author,
		Text:   "Muy interesante",
	})
	require.NoError(t, err)
	require.NotEmpty(t, comment.ID)
	assert.Equal(t, 0, comment.LikeCount)

	t.Run("missing blog is a 404", func(t *testing.T) {
		_, err := service.AddComment(context.Background(), uuidv7.New(), blog.CommentInput{
			UserID: author,
			Text:   "Nadie me leerá",
		})
		require.Error(t, err)
		assert.Equal(t, 404, apperr.As(err).HTTPStatus)
	})

	t.Run("likes accumulate without dedup", func(t *testing.T) {
		count, err := service.LikeComment(context.Background(), comment.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		count, err = service.LikeComment(context.Background(), comment.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("liking a missing comment is a 404", func(t *testing.T) {
		_, err := service.LikeComment(context.Background(), uuidv7.New())
		require.Error(t, err)
		assert.Equal(t, 404, apperr.As(err).HTTPStatus)
	})
}

/*
TestService_Delete verifies the cascade: once a blog is gone, its comments
and contents are unreachable through any read path.
*/
func TestService_Delete(t *testing.T) {
	t.Parallel()

	service, seeded := newTestService(t)
	created := createBlog(t, service, seeded.ID, "Historia del gazpacho")

	_, err := service.AddComment(context.Background(), created.ID, blog.CommentInput{
		UserID: uuidv7.New(),
		Text:   "Pronto desapareceré",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID))

	_, err = service.Get(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)

	blogs, err := service.List(context.Background(), blog.Filter{ProductID: seeded.ID})
	require.NoError(t, err)
	assert.Empty(t, blogs)

	err = service.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)
}

// fkCommentRepository surfaces comment inserts the way the Postgres store
// does: a missing blog fails the blogid foreign key rather than a pre-check.
type fkCommentRepository struct {
	blog.Repository
}

func (fkCommentRepository) AddComment(context.Context, string, *blog.Comment) error {
	return dberr.WrapParent(&pgconn.PgError{
		Code:           "23503",
		ConstraintName: "blog_comments_blogid_fkey",
	}, "create_blog_comment")
}

// TestService_CommentForeignKeySurface pins the persisted-store error shape:
// a foreign key violation on the comment insert must read as the blog being
// absent (404), never as malformed input (400).
func TestService_CommentForeignKeySurface(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := blog.NewService(fkCommentRepository{blog.NewMemoryRepository()}, product.NewMemoryRepository(), logger)

	_, err := service.AddComment(context.Background(), uuidv7.New(), blog.CommentInput{
		UserID: uuidv7.New(),
		Text:   "Llego tarde",
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
