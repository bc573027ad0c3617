// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import "context"

// Filter narrows a blog listing. Zero values mean "no filter".
type Filter struct {
	// Title is a case-insensitive substring matched against content
	// titles in any language.
	Title string

	// ProductID restricts the listing to one product's blogs.
	ProductID string
}

// Repository persists the blog aggregate.
type Repository interface {
	// Create inserts the blog with its contents in one transaction.
	Create(context context.Context, blog *Blog) error

	// FindByID returns the fully hydrated aggregate, or
	// [dberr.ErrNotFound] when absent.
	FindByID(context context.Context, id string) (*Blog, error)

	// Exists reports whether a blog row exists, without hydrating it.
	Exists(context context.Context, id string) (bool, error)

	// List returns hydrated blogs matching the filter, oldest first.
	List(context context.Context, filter Filter) ([]*Blog, error)

	// AddComment appends a comment to the blog, or returns
	// [dberr.ErrNotFound] when the blog is absent.
	AddComment(context context.Context, blogID string, comment *Comment) error

	// LikeComment increments the comment's like counter and returns the
	// new count, or [dberr.ErrNotFound] when the comment is absent.
	LikeComment(context context.Context, commentID string) (int, error)

	// Delete removes the blog; contents and comments cascade at the
	// database level.
	Delete(context context.Context, id string) error
}
