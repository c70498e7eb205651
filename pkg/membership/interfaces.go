// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"

	"github.com/canonical/supply-service/internal/types"
)

type ServiceInterface interface {
	CreateMembership(context.Context, *types.Membership) (*types.Membership, error)
	GetMembership(context.Context, string) (*types.Membership, error)
	ListMemberships(context.Context) ([]*types.Membership, error)
	UpdateMembership(context.Context, *types.Membership) (*types.Membership, error)
	DeleteMembership(context.Context, string) error
}

type StorageInterface interface {
	CreateMembership(context.Context, *types.Membership) (*types.Membership, error)
	GetMembershipByID(context.Context, string) (*types.Membership, error)
	ListMemberships(context.Context) ([]*types.Membership, error)
	UpdateMembership(context.Context, *types.Membership) (*types.Membership, error)
	DeleteMembership(context.Context, string) error
}
