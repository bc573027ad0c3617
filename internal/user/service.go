// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/consumo/internal/platform/apperr"
	"github.com/taibuivan/consumo/internal/platform/sec"
	"github.com/taibuivan/consumo/pkg/uuidv7"
)

// # Contracts

// TokenProvider issues signed access tokens.
type TokenProvider interface {
	// Generate creates a signed JWT for the account. A zero timeToLive
	// means the provider's configured default.
	Generate(userID, email, nickname string, role sec.Role, timeToLive time.Duration) (string, error)
}

// IdentityInvalidator drops a cached gate identity after an account
// mutation, so blocking and deletion take effect immediately.
type IdentityInvalidator interface {
	Invalidate(context context.Context, email string) error
}

// NoopInvalidator satisfies [IdentityInvalidator] when no cache is wired
// (tests, cacheless deployments).
type NoopInvalidator struct{}

func (NoopInvalidator) Invalidate(context.Context, string) error { return nil }

// Service implements the account use cases.
type Service struct {
	repository    Repository
	tokenProvider TokenProvider
	invalidator   IdentityInvalidator
	logger        *slog.Logger
}

func NewService(repository Repository, tokenProvider TokenProvider, invalidator IdentityInvalidator, logger *slog.Logger) *Service {
	if invalidator == nil {
		invalidator = NoopInvalidator{}
	}
	return &Service{
		repository:    repository,
		tokenProvider: tokenProvider,
		invalidator:   invalidator,
		logger:        logger,
	}
}

// # Registration

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Email    string
	Nickname string
	Password string
	Image    *string
	Role     sec.Role
}

/*
Register validates, hashes, and persists a new account.

Description: New accounts always receive the USER role. Requesting EMPLOYEE
through self-registration is an authorization failure, not a validation one:
the caller is trying to grant themselves privileges.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Unauthorized (role escalation), ValidationError (duplicate identity)
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Self-registration can never grant the employee role.
	if input.Role == sec.RoleEmployee {
		return nil, apperr.Unauthorized("Cannot self-register as employee")
	}

	// Verify email uniqueness. Surfaces as a client-safe 400.
	if _, err := service.repository.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.ValidationError("Email is already registered")
	}

	// Verify nickname uniqueness.
	if _, err := service.repository.FindByNickname(context, input.Nickname); err == nil {
		return nil, apperr.ValidationError("Nickname is already taken")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user_service_hash_failed: %w", err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuidv7.New(),
		Email:        input.Email,
		Nickname:     input.Nickname,
		Role:         sec.RoleUser,
		PasswordHash: hashedPassword,
		Image:        input.Image,
		IsBlocked:    false,
		CreatedAt:    time.Now().UTC(),
	}

	if err := service.repository.Create(context, user); err != nil {
		return nil, fmt.Errorf("user_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication

/*
Login validates credentials and issues a bearer token.

Description: Verifies the password with a constant-time bcrypt comparison and
rejects blocked accounts even when the credentials are correct. All failure
modes share the 401 status; messages differ only where no account detail
leaks (blocked state is already known to the account owner).

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - string: Signed bearer token (provider-default lifetime)
  - err: Unauthorized on any credential or blocked failure
*/
func (service *Service) Login(context context.Context, email, password string) (string, error) {
	user, err := service.repository.FindByEmail(context, email)

	// Generic message to prevent account enumeration.
	if err != nil {
		return "", apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return "", apperr.Unauthorized("Invalid login credentials")
	}

	// Blocked accounts cannot authenticate, correct password or not.
	if user.IsBlocked {
		return "", apperr.Unauthorized("User is blocked")
	}

	token, err := service.tokenProvider.Generate(user.ID, user.Email, user.Nickname, user.Role, 0)
	if err != nil {
		return "", fmt.Errorf("user_service_token_generation_failed: %w", err)
	}

	return token, nil
}

// # Profile & Administration

// Profile returns the account for the given id.
func (service *Service) Profile(context context.Context, userID string) (*User, error) {
	user, err := service.repository.FindByID(context, userID)
	if err != nil {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

/*
SetBlocked blocks or unblocks an account.

Description: After flipping the flag, the cached gate identity is dropped so
the next request from that account re-reads the database and sees the new
state immediately.

Returns:
  - err: NotFound when the target account does not exist
*/
func (service *Service) SetBlocked(context context.Context, userID string, blocked bool) error {
	user, err := service.repository.FindByID(context, userID)
	if err != nil {
		return apperr.NotFound("User")
	}

	if err := service.repository.SetBlocked(context, userID, blocked); err != nil {
		return fmt.Errorf("user_service_set_blocked_failed: %w", err)
	}

	if err := service.invalidator.Invalidate(context, user.Email); err != nil {
		service.logger.Warn("identity_cache_invalidation_failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	return nil
}

// ListUsers returns a page of accounts plus the unpaged total.
func (service *Service) ListUsers(context context.Context, search string, limit, offset int) ([]*User, int, error) {
	return service.repository.List(context, search, limit, offset)
}

/*
DeleteUser removes an account.

Description: The database cascades the account's comments and requests, and
nulls the user reference on historical resource-access rows. The cached gate
identity is dropped so outstanding tokens die with the account.

Returns:
  - err: NotFound when the target account does not exist
*/
func (service *Service) DeleteUser(context context.Context, userID string) error {
	user, err := service.repository.FindByID(context, userID)
	if err != nil {
		return apperr.NotFound("User")
	}

	if err := service.repository.Delete(context, userID); err != nil {
		return fmt.Errorf("user_service_delete_failed: %w", err)
	}

	if err := service.invalidator.Invalidate(context, user.Email); err != nil {
		service.logger.Warn("identity_cache_invalidation_failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	return nil
}
