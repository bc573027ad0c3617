// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package product implements the catalogue of regional products: the product
aggregate with its region tags and per-language content entries.

Search by name and by region are deliberately independent queries; the
composite name+region search is the set intersection of the two result
sets, not a combined SQL predicate.
*/
package product

import "time"

// Product is the catalogue aggregate root.
type Product struct {
	ID        string    `json:"id"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`

	// Regions and Contents are the owned children, always hydrated on reads.
	Regions  []Region  `json:"regions"`
	Contents []Content `json:"contents"`
}

// Region tags a product with an ISO 3166-2 style region code (e.g. "ES-AN").
type Region struct {
	ID     string `json:"id"`
	Region string `json:"region"`
}

// Content is one language's name and description for a product.
// A product has at most one content entry per language code.
type Content struct {
	ID          string `json:"id"`
	Language    string `json:"language"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
