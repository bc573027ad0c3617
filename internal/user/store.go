// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import "context"

// Repository persists user accounts.
//
// Absence is reported as [dberr.ErrNotFound]; callers translate it to the
// HTTP status their route requires.
type Repository interface {
	Create(context context.Context, user *User) error
	FindByID(context context.Context, id string) (*User, error)
	FindByEmail(context context.Context, email string) (*User, error)
	FindByNickname(context context.Context, nickname string) (*User, error)

	// List returns a page of users plus the unpaged total. search, when
	// non-empty, is a case-insensitive substring match over email and
	// nickname.
	List(context context.Context, search string, limit, offset int) ([]*User, int, error)

	// SetBlocked flips the blocked flag.
	SetBlocked(context context.Context, id string, blocked bool) error

	// Delete removes the account. Owned comments and requests go with it;
	// historical resource-access rows keep their data and lose only the
	// user reference.
	Delete(context context.Context, id string) error
}
