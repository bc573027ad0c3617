// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/consumo/internal/platform/constants"
	"github.com/taibuivan/consumo/internal/platform/gate"
	"github.com/taibuivan/consumo/internal/platform/sec"
)

// # Gate Adapter

// IdentitySource adapts the user repository to the authorization gate.
type IdentitySource struct {
	repository Repository
}

func NewIdentitySource(repository Repository) *IdentitySource {
	return &IdentitySource{repository: repository}
}

// IdentityByEmail resolves an account email to a gate identity.
func (source *IdentitySource) IdentityByEmail(context context.Context, email string) (*gate.Identity, error) {
	user, err := source.repository.FindByEmail(context, email)
	if err != nil {
		return nil, err
	}

	return &gate.Identity{
		ID:       user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
		Role:     sec.Role(user.Role),
		Blocked:  user.IsBlocked,
	}, nil
}

// # Redis Read-Through Cache

// CachedIdentitySource fronts an [gate.IdentitySource] with Redis.
//
// # Consistency
//
// Entries live for [constants.IdentityCacheTTL] and are dropped eagerly by
// the service on block/unblock/delete, so a blocked user loses access on
// their next request, not when the TTL expires. Cache failures degrade to
// the underlying source; they are never a reason to reject a request.
type CachedIdentitySource struct {
	next   gate.IdentitySource
	client *redis.Client
	logger *slog.Logger
}

func NewCachedIdentitySource(next gate.IdentitySource, client *redis.Client, logger *slog.Logger) *CachedIdentitySource {
	return &CachedIdentitySource{
		next:   next,
		client: client,
		logger: logger,
	}
}

func identityKey(email string) string {
	return constants.RedisPrefixIdentity + email
}

// IdentityByEmail reads through the cache.
func (source *CachedIdentitySource) IdentityByEmail(context context.Context, email string) (*gate.Identity, error) {
	key := identityKey(email)

	cached, err := source.client.Get(context, key).Result()
	if err == nil {
		identity := &gate.Identity{}
		if err := json.Unmarshal([]byte(cached), identity); err == nil {
			return identity, nil
		}
		// Corrupt entry: fall through and repopulate.
	} else if !errors.Is(err, redis.Nil) {
		source.logger.Warn("identity_cache_read_failed", slog.Any("error", err))
	}

	identity, err := source.next.IdentityByEmail(context, email)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(identity); err == nil {
		if err := source.client.Set(context, key, encoded, constants.IdentityCacheTTL).Err(); err != nil {
			source.logger.Warn("identity_cache_write_failed", slog.Any("error", err))
		}
	}

	return identity, nil
}

// Invalidate drops the cached identity for an email.
func (source *CachedIdentitySource) Invalidate(context context.Context, email string) error {
	if err := source.client.Del(context, identityKey(email)).Err(); err != nil {
		return fmt.Errorf("identity_cache_invalidate_failed: %w", err)
	}
	return nil
}
