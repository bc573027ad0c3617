// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package request

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/consumo/internal/platform/apperr"
	"github.com/taibuivan/consumo/internal/platform/dberr"
	"github.com/taibuivan/consumo/pkg/uuidv7"
)

// ProductFinder reports whether a product exists; blog suggestions must
// target a product already in the catalogue.
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

// ProductRequestInput holds a product suggestion. Ownership of UserID is
// checked at the handler before the service runs.
type ProductRequestInput struct {
	UserID      string
	Name        string
	Description string
	Image       *string
}

// BlogRequestInput holds a blog suggestion targeting one product.
type BlogRequestInput struct {
	UserID      string
	ProductID   string
	Title       string
	Description string
	Image       *string
}

/*
SubmitProductRequest queues a product suggestion.

Returns:
  - *ProductRequest: Created suggestion
  - err: Storage failures
*/
func (service *Service) SubmitProductRequest(context context.Context, input ProductRequestInput) (*ProductRequest, error) {
	request := &ProductRequest{
		ID:          uuidv7.New(),
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   time.Now().UTC(),
	}

	if err := service.repository.CreateProductRequest(context, request); err != nil {
		return nil, fmt.Errorf("request_service_submit_product_failed: %w", err)
	}
	return request, nil
}

/*
SubmitBlogRequest queues a blog suggestion for an existing product.

Returns:
  - *BlogRequest: Created suggestion
  - err: ValidationError when the target product does not exist
*/
func (service *Service) SubmitBlogRequest(context context.Context, input BlogRequestInput) (*BlogRequest, error) {
	exists, err := service.products.Exists(context, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("request_service_product_check_failed: %w", err)
	}
	if !exists {
		return nil, apperr.ValidationError("Referenced product does not exist")
	}

	request := &BlogRequest{
		ID:          uuidv7.New(),
		UserID:      input.UserID,
		ProductID:   input.ProductID,
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   time.Now().UTC(),
	}

	if err := service.repository.CreateBlogRequest(context, request); err != nil {
		return nil, fmt.Errorf("request_service_submit_blog_failed: %w", err)
	}
	return request, nil
}

// ListProductRequests returns the product suggestion queue, oldest first.
func (service *Service) ListProductRequests(context context.Context) ([]*ProductRequest, error) {
	requests, err := service.repository.ListProductRequests(context)
	if err != nil {
		return nil, fmt.Errorf("request_service_list_products_failed: %w", err)
	}
	return requests, nil
}

// ListBlogRequests returns the blog suggestion queue, oldest first.
func (service *Service) ListBlogRequests(context context.Context) ([]*BlogRequest, error) {
	requests, err := service.repository.ListBlogRequests(context)
	if err != nil {
		return nil, fmt.Errorf("request_service_list_blogs_failed: %w", err)
	}
	return requests, nil
}

// DeleteProductRequest removes one product suggestion from the queue.
func (service *Service) DeleteProductRequest(context context.Context, requestID string) error {
	if err := service.repository.DeleteProductRequest(context, requestID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Product request")
		}
		return fmt.Errorf("request_service_delete_product_failed: %w", err)
	}
	return nil
}

// DeleteBlogRequest removes one blog suggestion from the queue.
func (service *Service) DeleteBlogRequest(context context.Context, requestID string) error {
	if err := service.repository.DeleteBlogRequest(context, requestID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Blog request")
		}
		return fmt.Errorf("request_service_delete_blog_failed: %w", err)
	}
	return nil
}
