// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/taibuivan/consumo/internal/platform/dberr"
)

// MemoryRepository is an in-memory [Repository] used by tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	blogs map[string]*Blog
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{blogs: make(map[string]*Blog)}
}

func (repository *MemoryRepository) Create(_ context.Context, blog *Blog) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.blogs[blog.ID] = cloneBlog(blog)
	return nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Blog, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	blog, ok := repository.blogs[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return cloneBlog(blog), nil
}

func (repository *MemoryRepository) Exists(_ context.Context, id string) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	_, ok := repository.blogs[id]
	return ok, nil
}

func (repository *MemoryRepository) List(_ context.Context, filter Filter) ([]*Blog, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	needle := strings.ToLower(filter.Title)

	results := make([]*Blog, 0)
	for _, blog := range repository.blogs {
		if filter.ProductID != "" && blog.ProductID != filter.ProductID {
			continue
		}
		if needle != "" && !titleMatches(blog, needle) {
			continue
		}
		results = append(results, cloneBlog(blog))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results, nil
}

func (repository *MemoryRepository) AddComment(_ context.Context, blogID string, comment *Comment) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	blog, ok := repository.blogs[blogID]
	if !ok {
		return dberr.ErrNotFound
	}
	blog.Comments = append(blog.Comments, *comment)
	return nil
}

func (repository *MemoryRepository) LikeComment(_ context.Context, commentID string) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, blog := range repository.blogs {
		for i := range blog.Comments {
			if blog.Comments[i].ID == commentID {
				blog.Comments[i].LikeCount++
				return blog.Comments[i].LikeCount, nil
			}
		}
	}
	return 0, dberr.ErrNotFound
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.blogs[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repository.blogs, id)
	return nil
}

func titleMatches(blog *Blog, needle string) bool {
	for _, content := range blog.Contents {
		if strings.Contains(strings.ToLower(content.Title), needle) {
			return true
		}
	}
	return false
}

func cloneBlog(blog *Blog) *Blog {
	copied := *blog
	copied.Contents = append([]Content(nil), blog.Contents...)
	copied.Comments = append([]Comment(nil), blog.Comments...)
	return &copied
}
