// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"

	"github.com/canonical/supply-service/internal/types"
)

// Registration carries a signup. The business fields are required when
// registering a root-admin, whose tenant is created together with the
// account.
type Registration struct {
	Email    string
	Password string
	Role     string

	BusinessName string
	BusinessType string
	ContactName  string
	Phone        string
}

type ServiceInterface interface {
	Register(ctx context.Context, reg *Registration) (*types.User, error)
	Login(ctx context.Context, email, password string) (string, *types.User, error)
	RenewPassword(ctx context.Context, userID, oldPassword, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type StorageInterface interface {
	CreateMembership(context.Context, *types.Membership) (*types.Membership, error)
	CreateUser(context.Context, *types.User) (*types.User, error)
	GetUserByID(context.Context, string) (*types.User, error)
	GetUserByEmail(context.Context, string) (*types.User, error)
	UpdateUserPassword(ctx context.Context, userID, passwordHash string) error
	SetUserLastLogin(ctx context.Context, userID string) error
}
