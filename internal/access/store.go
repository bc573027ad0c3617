// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access

import "context"

// Repository persists and reads audit rows.
//
// The trail is append-only: there is no update or delete operation. User
// deletion nulls the user reference at the database level, not through here.
type Repository interface {
	// Create appends one audit row.
	Create(context context.Context, record *ResourceAccess) error

	// List returns audit rows, newest first, optionally filtered by
	// resource type and capped at limit rows.
	List(context context.Context, filter Filter, limit int) ([]*ResourceAccess, error)
}

// Filter narrows the audit trail listing.
type Filter struct {
	// ResourceTypes keeps only rows touching the named resource kinds.
	// Empty means no filtering.
	ResourceTypes []string
}
