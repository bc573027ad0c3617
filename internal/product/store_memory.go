// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/taibuivan/consumo/internal/platform/dberr"
	"github.com/taibuivan/consumo/pkg/uuidv7"
)

// MemoryRepository is an in-memory [Repository] used by tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	products map[string]*Product
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{products: make(map[string]*Product)}
}

func (repository *MemoryRepository) Create(_ context.Context, product *Product) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.products[product.ID] = cloneProduct(product)
	return nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Product, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	product, ok := repository.products[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return cloneProduct(product), nil
}

func (repository *MemoryRepository) Exists(_ context.Context, id string) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	_, ok := repository.products[id]
	return ok, nil
}

func (repository *MemoryRepository) List(_ context.Context) ([]*Product, error) {
	return repository.collect(func(*Product) bool { return true }), nil
}

func (repository *MemoryRepository) SearchByName(_ context.Context, name string) ([]*Product, error) {
	needle := strings.ToLower(name)
	return repository.collect(func(product *Product) bool {
		for _, content := range product.Contents {
			if strings.Contains(strings.ToLower(content.Name), needle) {
				return true
			}
		}
		return false
	}), nil
}

func (repository *MemoryRepository) SearchByRegion(_ context.Context, region string) ([]*Product, error) {
	return repository.collect(func(product *Product) bool {
		for _, productRegion := range product.Regions {
			if productRegion.Region == region {
				return true
			}
		}
		return false
	}), nil
}

func (repository *MemoryRepository) UpsertContent(_ context.Context, productID string, content *Content) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	product, ok := repository.products[productID]
	if !ok {
		return dberr.ErrNotFound
	}

	for i, existing := range product.Contents {
		if existing.Language == content.Language {
			content.ID = existing.ID
			product.Contents[i].Name = content.Name
			product.Contents[i].Description = content.Description
			return nil
		}
	}

	if content.ID == "" {
		content.ID = uuidv7.New()
	}
	product.Contents = append(product.Contents, *content)
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.products[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repository.products, id)
	return nil
}

func (repository *MemoryRepository) collect(match func(*Product) bool) []*Product {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	results := make([]*Product, 0)
	for _, product := range repository.products {
		if match(product) {
			results = append(results, cloneProduct(product))
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results
}

func cloneProduct(product *Product) *Product {
	copied := *product
	copied.Regions = append([]Region(nil), product.Regions...)
	copied.Contents = append([]Content(nil), product.Contents...)
	return &copied
}
