// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package forum implements the regional discussion boards: one forum per
// Spanish region code, each holding threads with their comments. The
// seventeen autonomous-community forums are seeded by migration; staff can
// add further boards.
package forum

import "time"

// Forum is a regional discussion board, keyed by its region code.
type Forum struct {
	Region string `json:"region"`
	Name   string `json:"name"`
}

// Thread is one discussion inside a regional forum.
type Thread struct {
	ID          string    `json:"id"`
	Region      string    `json:"region"`
	Language    string    `json:"language"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	Comments []ThreadComment `json:"comments"`
}

// ThreadComment is one reply inside a thread.
type ThreadComment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
