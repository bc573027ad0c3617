// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepository is an in-memory [Repository] used by tests.
type MemoryRepository struct {
	mu      sync.Mutex
	records []*ResourceAccess
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (repository *MemoryRepository) Create(_ context.Context, record *ResourceAccess) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored := *record
	repository.records = append(repository.records, &stored)
	return nil
}

func (repository *MemoryRepository) List(_ context.Context, filter Filter, limit int) ([]*ResourceAccess, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	results := make([]*ResourceAccess, 0)
	// Newest first, matching the SQL ORDER BY createdat DESC.
	for i := len(repository.records) - 1; i >= 0; i-- {
		record := repository.records[i]
		if len(filter.ResourceTypes) > 0 && !slices.Contains(filter.ResourceTypes, record.ResourceType) {
			continue
		}
		copied := *record
		results = append(results, &copied)
		if len(results) >= limit {
			break
		}
	}

	return results, nil
}

// Len reports how many rows have been appended. Test helper.
func (repository *MemoryRepository) Len() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.records)
}
