// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package gate implements the per-request authorization state machine:

	Anonymous → (token resolves) → Authenticated → (role/ownership check) → Authorized | Denied

It resolves verified token claims to a stored user identity, rejects blocked
accounts, and enforces role and ownership policies. The gate is pure policy —
it has no persistent state of its own beyond the user row it reads.
*/
package gate

import (
	"context"
	"net/http"

	"github.com/taibuivan/consumo/internal/platform/apperr"
	"github.com/taibuivan/consumo/internal/platform/ctxutil"
	"github.com/taibuivan/consumo/internal/platform/respond"
	"github.com/taibuivan/consumo/internal/platform/sec"
)

// Identity is the gate's view of a stored user account.
type Identity struct {
	ID       string
	Email    string
	Nickname string
	Role     sec.Role
	Blocked  bool
}

// IdentitySource resolves a token subject (account email) to a stored identity.
//
// # Implementations
//
// The production implementation is the user store wrapped in a Redis
// read-through cache; tests inject a plain stub.
type IdentitySource interface {
	// IdentityByEmail returns the identity for the given email.
	//
	// Returns [apperr.NotFound] if no such account exists.
	IdentityByEmail(ctx context.Context, email string) (*Identity, error)
}

// identityKey is the private context key for the resolved identity.
type identityKey struct{}

// Gate enforces authentication, role, and ownership policies on routes.
type Gate struct {
	source IdentitySource
}

// New constructs a [Gate] backed by the given identity source.
func New(source IdentitySource) *Gate {
	return &Gate{source: source}
}

// RequireUser blocks requests that are not authenticated as an active user.
//
// # Flow
//  1. Check that verified [*sec.AuthClaims] exist in the context.
//  2. Load the identity for the token subject; absence ⇒ 401.
//  3. Blocked accounts ⇒ 401, regardless of token validity.
//  4. Inject the resolved [*Identity] into the context for downstream use.
func (gate *Gate) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity, err := gate.resolve(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		ctx := context.WithValue(request.Context(), identityKey{}, identity)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// Require blocks requests whose authenticated user may not perform action.
//
// It implies [Gate.RequireUser]; routes need only one of the two.
// Insufficient role ⇒ HTTP 403 Forbidden.
func (gate *Gate) Require(action sec.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			identity, err := gate.resolve(request)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			if !sec.Can(identity.Role, action) {
				respond.Error(writer, request, apperr.Forbidden("Not enough permissions"))
				return
			}

			ctx := context.WithValue(request.Context(), identityKey{}, identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// resolve walks the Anonymous → Authenticated transition for one request.
func (gate *Gate) resolve(request *http.Request) (*Identity, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	identity, err := gate.source.IdentityByEmail(request.Context(), claims.Subject)
	if err != nil {
		// The account behind a syntactically valid token may have been deleted.
		return nil, apperr.Unauthorized("Could not validate credentials")
	}

	if identity.Blocked {
		return nil, apperr.Unauthorized("User is blocked")
	}

	return identity, nil
}

// CurrentIdentity retrieves the resolved [*Identity] from the context.
//
// Returns nil on routes that did not pass through the gate.
func CurrentIdentity(ctx context.Context) *Identity {
	identity, ok := ctx.Value(identityKey{}).(*Identity)
	if !ok {
		return nil
	}
	return identity
}

// OwnUser enforces the ownership policy: operations that act "as" a user
// (posting a comment, submitting a request) must declare the authenticated
// user's own id in their payload.
//
// Returns [apperr.Unauthorized] on mismatch or when no identity is present.
func OwnUser(ctx context.Context, claimedUserID string) error {
	identity := CurrentIdentity(ctx)
	if identity == nil {
		return apperr.Unauthorized("Authentication required")
	}
	if claimedUserID != identity.ID {
		return apperr.Unauthorized("Cannot act as another user")
	}
	return nil
}
