// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package request

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/consumo/internal/platform/dberr"
)

// MemoryRepository is an in-memory [Repository] used by tests.
type MemoryRepository struct {
	mu              sync.RWMutex
	productRequests map[string]*ProductRequest
	blogRequests    map[string]*BlogRequest
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		productRequests: make(map[string]*ProductRequest),
		blogRequests:    make(map[string]*BlogRequest),
	}
}

func (repository *MemoryRepository) CreateProductRequest(_ context.Context, request *ProductRequest) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	copied := *request
	repository.productRequests[request.ID] = &copied
	return nil
}

func (repository *MemoryRepository) ListProductRequests(_ context.Context) ([]*ProductRequest, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	requests := make([]*ProductRequest, 0, len(repository.productRequests))
	for _, request := range repository.productRequests {
		copied := *request
		requests = append(requests, &copied)
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})
	return requests, nil
}

func (repository *MemoryRepository) DeleteProductRequest(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.productRequests[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repository.productRequests, id)
	return nil
}

func (repository *MemoryRepository) CreateBlogRequest(_ context.Context, request *BlogRequest) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	copied := *request
	repository.blogRequests[request.ID] = &copied
	return nil
}

func (repository *MemoryRepository) ListBlogRequests(_ context.Context) ([]*BlogRequest, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	requests := make([]*BlogRequest, 0, len(repository.blogRequests))
	for _, request := range repository.blogRequests {
		copied := *request
		requests = append(requests, &copied)
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})
	return requests, nil
}

func (repository *MemoryRepository) DeleteBlogRequest(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.blogRequests[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repository.blogRequests, id)
	return nil
}
