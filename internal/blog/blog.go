// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package blog implements the editorial layer of the catalogue: articles
// attached to a product, localized per language, with reader comments and
// like counters.
//
// Likes are at-least-once counter increments with no per-user dedup; the
// same reader liking twice counts twice.
package blog

import "time"

// Blog is an article about one product. Reads return the aggregate fully
// hydrated with its contents and comments.
type Blog struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`

	Contents []Content `json:"contents"`
	Comments []Comment `json:"comments"`
}

// Content is the blog's title and body for one language.
type Content struct {
	ID          string `json:"id"`
	Language    string `json:"language"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Comment is one reader comment on a blog.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Image     *string   `json:"image"`
	LikeCount int       `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
}
