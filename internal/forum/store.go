// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package forum

import "context"

// Repository persists forums, threads, and thread comments.
type Repository interface {
	// CreateForum inserts a board. Region codes are unique; duplicates
	// surface as a conflict from the store.
	CreateForum(context context.Context, forum *Forum) error

	// ListForums returns all boards ordered by region code.
	ListForums(context context.Context) ([]*Forum, error)

	// ForumExists reports whether a board exists for the region code.
	ForumExists(context context.Context, region string) (bool, error)

	// CreateThread inserts a thread. The forum must exist.
	CreateThread(context context.Context, thread *Thread) error

	// ThreadsByRegion returns the region's threads with their comments,
	// oldest first.
	ThreadsByRegion(context context.Context, region string) ([]*Thread, error)

	// AddComment appends a reply to a thread, or returns
	// [dberr.ErrNotFound] when the thread is absent.
	AddComment(context context.Context, threadID string, comment *ThreadComment) error

	// DeleteThread removes the thread; comments cascade at the database
	// level.
	DeleteThread(context context.Context, id string) error
}
