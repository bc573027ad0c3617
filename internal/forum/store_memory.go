// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package forum

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/consumo/internal/platform/dberr"
)

// MemoryRepository is an in-memory [Repository] used by tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	forums  map[string]*Forum
	threads map[string]*Thread
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		forums:  make(map[string]*Forum),
		threads: make(map[string]*Thread),
	}
}

func (repository *MemoryRepository) CreateForum(_ context.Context, forum *Forum) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.forums[forum.Region]; ok {
		return dberr.ErrDuplicate
	}
	copied := *forum
	repository.forums[forum.Region] = &copied
	return nil
}

func (repository *MemoryRepository) ListForums(_ context.Context) ([]*Forum, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	forums := make([]*Forum, 0, len(repository.forums))
	for _, forum := range repository.forums {
		copied := *forum
		forums = append(forums, &copied)
	}
	sort.Slice(forums, func(i, j int) bool {
		return forums[i].Region < forums[j].Region
	})
	return forums, nil
}

func (repository *MemoryRepository) ForumExists(_ context.Context, region string) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	_, ok := repository.forums[region]
	return ok, nil
}

func (repository *MemoryRepository) CreateThread(_ context.Context, thread *Thread) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.threads[thread.ID] = cloneThread(thread)
	return nil
}

func (repository *MemoryRepository) ThreadsByRegion(_ context.Context, region string) ([]*Thread, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	threads := make([]*Thread, 0)
	for _, thread := range repository.threads {
		if thread.Region == region {
			threads = append(threads, cloneThread(thread))
		}
	}
	sort.Slice(threads, func(i, j int) bool {
		return threads[i].CreatedAt.Before(threads[j].CreatedAt)
	})
	return threads, nil
}

func (repository *MemoryRepository) AddComment(_ context.Context, threadID string, comment *ThreadComment) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	thread, ok := repository.threads[threadID]
	if !ok {
		return dberr.ErrNotFound
	}
	thread.Comments = append(thread.Comments, *comment)
	return nil
}

func (repository *MemoryRepository) DeleteThread(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.threads[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repository.threads, id)
	return nil
}

func cloneThread(thread *Thread) *Thread {
	copied := *thread
	copied.Comments = append([]ThreadComment(nil), thread.Comments...)
	return &copied
}
