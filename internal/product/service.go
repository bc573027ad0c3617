// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

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

type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// # Creation

// ContentInput is one language's content entry in a create/add payload.
type ContentInput struct {
	Language    string
	Name        string
	Description string
}

// CreateInput holds the data for a new product.
type CreateInput struct {
	Image    *string
	Regions  []string
	Contents []ContentInput
}

/*
Create persists a new product with its regions and contents.

Description: The whole aggregate is written in one transaction; a failure
anywhere rolls back everything. Shape invariants (at least one region, the
primary-locale content entry) are enforced at the handler, per the contract
that stores never re-validate payload shape.

Returns:
  - *Product: Created aggregate
  - err: Storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Product, error) {
	product := &Product{
		ID:        uuidv7.New(),
		Image:     input.Image,
		CreatedAt: time.Now().UTC(),
		Regions: slice.Map(input.Regions, func(region string) Region {
			return Region{ID: uuidv7.New(), Region: region}
		}),
		Contents: slice.Map(input.Contents, func(content ContentInput) Content {
			return Content{
				ID:          uuidv7.New(),
				Language:    content.Language,
				Name:        content.Name,
				Description: content.Description,
			}
		}),
	}

	if err := service.repository.Create(context, product); err != nil {
		return nil, fmt.Errorf("product_service_create_failed: %w", err)
	}

	return product, nil
}

// # Reads & Search

// Get returns the hydrated product aggregate.
func (service *Service) Get(context context.Context, productID string) (*Product, error) {
	product, err := service.repository.FindByID(context, productID)
	if err != nil {
		return nil, apperr.NotFound("Product")
	}
	return product, nil
}

/*
Search filters the catalogue by name substring and/or region code.

Description: Name and region are independent queries. The composite filter
is the set intersection of the two result sets, not a combined predicate —
a deliberate simplification kept as documented behavior.

Returns:
  - []*Product: Matching products, oldest first
*/
func (service *Service) Search(context context.Context, name, region string) ([]*Product, error) {
	switch {
	case name == "" && region == "":
		return service.repository.List(context)

	case region == "":
		return service.repository.SearchByName(context, name)

	case name == "":
		return service.repository.SearchByRegion(context, region)
	}

	byName, err := service.repository.SearchByName(context, name)
	if err != nil {
		return nil, err
	}
	byRegion, err := service.repository.SearchByRegion(context, region)
	if err != nil {
		return nil, err
	}

	regionMatches := make(map[string]bool, len(byRegion))
	for _, product := range byRegion {
		regionMatches[product.ID] = true
	}

	return slice.Filter(byName, func(product *Product) bool {
		return regionMatches[product.ID]
	}), nil
}

// # Content Management

/*
AddContent inserts or replaces the product's content entry for one language.

Returns:
  - *Content: The stored entry (existing id on replace)
  - err: NotFound when the product does not exist
*/
func (service *Service) AddContent(context context.Context, productID string, input ContentInput) (*Content, error) {
	exists, err := service.repository.Exists(context, productID)
	if err != nil {
		return nil, fmt.Errorf("product_service_exists_failed: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound("Product")
	}

	content := &Content{
		ID:          uuidv7.New(),
		Language:    input.Language,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := service.repository.UpsertContent(context, productID, content); err != nil {
		return nil, fmt.Errorf("product_service_add_content_failed: %w", err)
	}

	return content, nil
}

// # Deletion

// Delete removes a product; regions, contents, and dependent blogs cascade.
func (service *Service) Delete(context context.Context, productID string) error {
	if err := service.repository.Delete(context, productID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Product")
		}
		return fmt.Errorf("product_service_delete_failed: %w", err)
	}
	return nil
}
