// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package request implements the content-request workflow: community
// members suggest products for the catalogue and blog topics for existing
// products, and the editorial staff reviews and clears the queues.
package request

import "time"

// ProductRequest is a community suggestion for a new catalogue product.
type ProductRequest struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

// BlogRequest is a community suggestion for a blog about an existing
// product.
type BlogRequest struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ProductID   string    `json:"product_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}
