// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package request

import "context"

// Repository persists both request queues.
type Repository interface {
	// CreateProductRequest inserts a product suggestion.
	CreateProductRequest(context context.Context, request *ProductRequest) error

	// ListProductRequests returns all product suggestions, oldest first.
	ListProductRequests(context context.Context) ([]*ProductRequest, error)

	// DeleteProductRequest removes one product suggestion, or returns
	// [dberr.ErrNotFound] when absent.
	DeleteProductRequest(context context.Context, id string) error

	// CreateBlogRequest inserts a blog suggestion.
	CreateBlogRequest(context context.Context, request *BlogRequest) error

	// ListBlogRequests returns all blog suggestions, oldest first.
	ListBlogRequests(context context.Context) ([]*BlogRequest, error)

	// DeleteBlogRequest removes one blog suggestion, or returns
	// [dberr.ErrNotFound] when absent.
	DeleteBlogRequest(context context.Context, id string) error
}
