// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/taibuivan/consumo/internal/platform/sec"
)

// resourceTypes maps the first API path segment to its audit resource type.
// Unknown segments fall back to SYSTEM (health probes, future routes).
var resourceTypes = map[string]string{
	"users":    "USER",
	"products": "PRODUCT",
	"blogs":    "BLOG",
	"requests": "REQUEST",
	"forums":   "FORUM",
	"threads":  "THREAD",
}

// TokenParser extracts claims from a bearer token for audit enrichment.
// The authentication middleware's verifier satisfies it.
type TokenParser interface {
	Verify(tokenStr string) (*sec.AuthClaims, error)
}

// Middleware records every inbound request in the audit trail, regardless of
// the outcome further down the chain. It must run ahead of rate limiting and
// authentication so rejected requests are still recorded; identity comes from
// a best-effort parse of the bearer token, leaving the row anonymous when the
// token is absent or invalid.
func Middleware(recorder *Recorder, tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			record := &ResourceAccess{
				ResourceType: classifyResource(request.URL.Path),
				ResourceID:   extractResourceID(request.URL.Path),
				AccessType:   AccessFromMethod(request.Method),
				DeviceType:   DeviceFromUserAgent(request.UserAgent()),
			}

			if userID := bearerUserID(request, tokens); userID != "" {
				record.UserID = &userID
			}

			recorder.Record(record)
			next.ServeHTTP(writer, request)
		})
	}
}

// bearerUserID parses the Authorization header without enforcing it. Parse
// failures are the authentication middleware's problem, not the audit's.
func bearerUserID(request *http.Request, tokens TokenParser) string {
	parts := strings.Split(request.Header.Get("Authorization"), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return ""
	}
	return claims.UserID
}

// classifyResource derives the resource type from the request path,
// skipping the /api/vN version prefix.
func classifyResource(path string) string {
	for _, segment := range splitPath(path) {
		if resourceType, ok := resourceTypes[segment]; ok {
			return resourceType
		}
	}
	return "SYSTEM"
}

// extractResourceID returns the first path segment that parses as a UUID.
// Collection-level requests have none.
func extractResourceID(path string) *string {
	for _, segment := range splitPath(path) {
		if _, err := uuid.Parse(segment); err == nil {
			id := segment
			return &id
		}
	}
	return nil
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}
