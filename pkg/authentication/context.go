// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/supply-service/internal/types"
)

// Principal is the authenticated caller as resolved from storage, not just
// from token claims, so deactivation and role changes take effect on the
// next request.
type Principal struct {
	ID           string
	Email        string
	Role         string
	MembershipID *string
	Permissions  types.Permissions
}

// Define a private custom type to avoid collisions
type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipal returns a new context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext retrieves the principal from the context.
// Returns nil and false if no principal is present.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	return p, ok
}
