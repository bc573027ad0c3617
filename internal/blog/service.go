// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/consumo/internal/platform/apperr"
	"github.com/taibuivan/consumo/internal/platform/dberr"
	"github.com/taibuivan/consumo/pkg/slice"
	"github.com/taibuivan/consumo/pkg/uuidv7"
)

// ProductFinder reports whether a product exists. Satisfied by the product
// repository; blogs never need the full aggregate, only the referential
// check at creation time.
type ProductFinder interface {
	Exists(context context.Context, id string) (bool, error)
}

type Service struct {
	repository Repository
	products   ProductFinder
	logger     *slog.Logger
}

func NewService(repository Repository, products ProductFinder, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		products:   products,
		logger:     logger,
	}
}

// # Creation

// ContentInput is one language's content entry in a create payload.
type ContentInput struct {
	Language    string
	Title       string
	Description string
}

// CreateInput holds the data for a new blog.
type CreateInput struct {
	ProductID string
	Image     *string
	Contents  []ContentInput
}

/*
Create persists a new blog attached to an existing product.

Description: The referenced product is on the input side of the contract,
so its absence is a validation failure (400), not a missing target (404).
Shape invariants (the primary-locale content entry) are enforced at the
handler.

Returns:
  - *Blog: Created aggregate
  - err: ValidationError when the product does not exist
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Blog, error) {
	exists, err := service.products.Exists(context, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("blog_service_product_check_failed: %w", err)
	}
	if !exists {
		return nil, apperr.ValidationError("Referenced product does not exist")
	}

	blog := &Blog{
		ID:        uuidv7.New(),
		ProductID: input.ProductID,
		Image:     input.Image,
		CreatedAt: time.Now().UTC(),
		Contents: slice.Map(input.Contents, func(content ContentInput) Content {
			return Content{
				ID:          uuidv7.New(),
				Language:    content.Language,
				Title:       content.Title,
				Description: content.Description,
			}
		}),
		Comments: make([]Comment, 0),
	}

	if err := service.repository.Create(context, blog); err != nil {
		return nil, fmt.Errorf("blog_service_create_failed: %w", err)
	}

	return blog, nil
}

// # Reads

// Get returns the hydrated blog aggregate.
func (service *Service) Get(context context.Context, blogID string) (*Blog, error) {
	blog, err := service.repository.FindByID(context, blogID)
	if err != nil {
		return nil, apperr.NotFound("Blog")
	}
	return blog, nil
}

// List returns hydrated blogs matching the filter, oldest first.
func (service *Service) List(context context.Context, filter Filter) ([]*Blog, error) {
	blogs, err := service.repository.List(context, filter)
	if err != nil {
		return nil, fmt.Errorf("blog_service_list_failed: %w", err)
	}
	return blogs, nil
}

// # Comments

// CommentInput holds the data for a new blog comment. Ownership of UserID
// is checked at the handler before the service runs.
type CommentInput struct {
	UserID string
	Text   string
	Image  *string
}

/*
AddComment appends a reader comment to a blog.

Returns:
  - *Comment: Created comment with a zero like count
  - err: NotFound when the blog does not exist
*/
func (service *Service) AddComment(context context.Context, blogID string, input CommentInput) (*Comment, error) {
	comment := &Comment{
		ID:        uuidv7.New(),
		UserID:    input.UserID,
		Text:      input.Text,
		Image:     input.Image,
		CreatedAt: time.Now().UTC(),
	}

	if err := service.repository.AddComment(context, blogID, comment); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Blog")
		}
		return nil, fmt.Errorf("blog_service_add_comment_failed: %w", err)
	}

	return comment, nil
}

/*
LikeComment increments a comment's like counter and returns the new count.

Description: At-least-once semantics, no per-user dedup. The same caller
liking twice counts twice.
*/
func (service *Service) LikeComment(context context.Context, commentID string) (int, error) {
	likeCount, err := service.repository.LikeComment(context, commentID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return 0, apperr.NotFound("Comment")
		}
		return 0, fmt.Errorf("blog_service_like_comment_failed: %w", err)
	}
	return likeCount, nil
}

// # Deletion

// Delete removes a blog; contents and comments cascade.
func (service *Service) Delete(context context.Context, blogID string) error {
	if err := service.repository.Delete(context, blogID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Blog")
		}
		return fmt.Errorf("blog_service_delete_failed: %w", err)
	}
	return nil
}
