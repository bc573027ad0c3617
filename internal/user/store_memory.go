// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

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
	users map[string]*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*User)}
}

func (repository *MemoryRepository) Create(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored := *user
	repository.users[user.ID] = &stored
	return nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	user, ok := repository.users[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (repository *MemoryRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	return repository.findBy(func(u *User) bool { return u.Email == email })
}

func (repository *MemoryRepository) FindByNickname(_ context.Context, nickname string) (*User, error) {
	return repository.findBy(func(u *User) bool { return u.Nickname == nickname })
}

func (repository *MemoryRepository) findBy(match func(*User) bool) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, user := range repository.users {
		if match(user) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *MemoryRepository) List(_ context.Context, search string, limit, offset int) ([]*User, int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	needle := strings.ToLower(search)
	matched := make([]*User, 0)
	for _, user := range repository.users {
		if needle != "" &&
			!strings.Contains(strings.ToLower(user.Email), needle) &&
			!strings.Contains(strings.ToLower(user.Nickname), needle) {
			continue
		}
		copied := *user
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := len(matched)
	if offset >= total {
		return []*User{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (repository *MemoryRepository) SetBlocked(_ context.Context, id string, blocked bool) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	user, ok := repository.users[id]
	if !ok {
		return dberr.ErrNotFound
	}
	user.IsBlocked = blocked
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.users[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repository.users, id)
	return nil
}
