// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/supply-service/internal/types"
)

type TokenManagerInterface interface {
	// IssueToken mints a session token for an authenticated user.
	IssueToken(u *types.User) (string, error)
	// VerifyToken verifies a raw JWT string and returns its claims.
	VerifyToken(rawToken string) (*Claims, error)
	// IssueResetToken mints a short lived single purpose password reset token.
	IssueResetToken(userID string) (string, error)
	// VerifyResetToken verifies a reset token and returns the subject user ID.
	VerifyResetToken(rawToken string) (string, error)
}

type UserLoaderInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
}
