// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package access records the append-only resource-access audit trail.

Every inbound API request produces one ResourceAccess row describing who
touched which resource, how, and from what kind of device. Recording is a
fire-and-forget side effect: it runs on its own detached context and its
failures are logged and swallowed, never surfaced to the caller.

Architecture:

  - ResourceAccess: The audit row entity.
  - Recorder: Dual sink (PostgreSQL row + JSON-lines file) with best-effort delivery.
  - Middleware: Classifies the request (resource, access, device) and hands it off.
*/
package access

import (
	"strings"
	"time"
)

// Device classification derived from the User-Agent header.
const (
	DeviceMobile = "MOBILE"
	DeviceWeb    = "WEB"
)

// Access types derived from the HTTP method.
const (
	AccessRead   = "READ"
	AccessCreate = "CREATE"
	AccessUpdate = "UPDATE"
	AccessDelete = "DELETE"
)

// ResourceAccess is one append-only audit row.
//
// UserID and ResourceID are nullable: anonymous requests carry no user, and
// collection-level requests carry no single resource. Deleting a user nulls
// the reference on their historical rows instead of removing them.
type ResourceAccess struct {
	ID           string    `json:"id"`
	UserID       *string   `json:"user_id"`
	ResourceType string    `json:"resource_type"`
	ResourceID   *string   `json:"resource_id"`
	AccessType   string    `json:"access_type"`
	DeviceType   string    `json:"device_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// DeviceFromUserAgent classifies the requesting device.
//
// The heuristic is a case-insensitive substring match: any agent announcing
// "mobile" is MOBILE, everything else (browsers, curl, bots) is WEB.
func DeviceFromUserAgent(userAgent string) string {
	if strings.Contains(strings.ToLower(userAgent), "mobile") {
		return DeviceMobile
	}
	return DeviceWeb
}

// AccessFromMethod maps an HTTP method to an audit access type.
func AccessFromMethod(method string) string {
	switch method {
	case "POST":
		return AccessCreate
	case "PUT", "PATCH":
		return AccessUpdate
	case "DELETE":
		return AccessDelete
	default:
		return AccessRead
	}
}
