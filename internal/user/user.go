// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package user implements the account domain: registration, login, profile
reads, blocking, and administrative listing/deletion.

It also exposes the identity adapter the authorization gate resolves tokens
against, fronted by a short-lived Redis cache that is invalidated eagerly on
any account mutation so blocking takes effect immediately.
*/
package user

import (
	"time"

	"github.com/taibuivan/consumo/internal/platform/sec"
)

// User is a registered account.
//
// PasswordHash never crosses the JSON boundary.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Nickname     string    `json:"nickname"`
	Role         sec.Role  `json:"role"`
	PasswordHash string    `json:"-"`
	Image        *string   `json:"image"`
	IsBlocked    bool      `json:"is_blocked"`
	CreatedAt    time.Time `json:"created_at"`
}
