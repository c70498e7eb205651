// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "context"

type contextKey struct{}

var membershipContextKey = contextKey{}

// WithMembershipID returns a new context carrying the tenant scope resolved
// for the request.
func WithMembershipID(ctx context.Context, membershipID string) context.Context {
	return context.WithValue(ctx, membershipContextKey, membershipID)
}

// MembershipIDFromContext retrieves the resolved tenant scope.
func MembershipIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(membershipContextKey).(string)
	return id, ok
}
