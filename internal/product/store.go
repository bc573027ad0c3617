// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import "context"

// Repository persists the product aggregate.
type Repository interface {
	// Create inserts the product with its regions and contents in one
	// transaction.
	Create(context context.Context, product *Product) error

	// FindByID returns the fully hydrated aggregate, or
	// [dberr.ErrNotFound] when absent.
	FindByID(context context.Context, id string) (*Product, error)

	// Exists reports whether a product row exists, without hydrating it.
	Exists(context context.Context, id string) (bool, error)

	// List returns all products, hydrated, oldest first.
	List(context context.Context) ([]*Product, error)

	// SearchByName returns products whose content name contains the given
	// substring, case-insensitively, in any language.
	SearchByName(context context.Context, name string) ([]*Product, error)

	// SearchByRegion returns products tagged with the exact region code.
	SearchByRegion(context context.Context, region string) ([]*Product, error)

	// UpsertContent inserts or replaces the product's content entry for
	// the content's language. The product must exist.
	UpsertContent(context context.Context, productID string, content *Content) error

	// Delete removes the product; regions, contents, and dependent blogs
	// cascade at the database level.
	Delete(context context.Context, id string) error
}
