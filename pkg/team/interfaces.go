// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"

	"github.com/canonical/supply-service/internal/types"
)

type ServiceInterface interface {
	GetOverview(ctx context.Context, membershipID string) (*Overview, error)
	InviteMember(ctx context.Context, membershipID, inviterID string, invite *Invitation) (*types.User, error)
	UpdatePermissions(ctx context.Context, membershipID, userID string, p types.Permissions) (*types.User, error)
	DeactivateMember(ctx context.Context, membershipID, userID string) error

	ListChangeRequests(ctx context.Context, membershipID, status string) ([]*types.ChangeRequest, error)
	ReviewChangeRequest(ctx context.Context, membershipID, id, reviewerID, decision, notes string) (*types.ChangeRequest, error)
	MarkChangeRequestImplemented(ctx context.Context, membershipID, id string) (*types.ChangeRequest, error)

	ListOrderRequests(ctx context.Context, membershipID, status string) ([]*types.OrderRequest, error)
	ReviewOrderRequest(ctx context.Context, membershipID, id, reviewerID, decision, notes string) (*types.OrderRequest, error)
	MarkOrderRequestOrdered(ctx context.Context, membershipID, id, orderNumber string) (*types.OrderRequest, error)
	MarkOrderRequestDelivered(ctx context.Context, membershipID, id string, actualCost float64) (*types.OrderRequest, error)
}

type StorageInterface interface {
	GetMembershipByID(context.Context, string) (*types.Membership, error)

	InviteTeamMember(ctx context.Context, u *types.User, limit int) (*types.User, error)
	ListTeamMembers(ctx context.Context, membershipID string) ([]*types.User, error)
	CountActiveTeamMembers(ctx context.Context, membershipID string) (int, error)
	UpdateTeamMemberPermissions(ctx context.Context, membershipID, userID string, p types.Permissions) (*types.User, error)
	DeactivateTeamMember(ctx context.Context, membershipID, userID string) error

	GetChangeRequest(ctx context.Context, membershipID, id string) (*types.ChangeRequest, error)
	ListChangeRequests(ctx context.Context, membershipID, status string) ([]*types.ChangeRequest, error)
	SetChangeRequestStatus(ctx context.Context, membershipID, id, from, to, reviewedBy, notes string) (*types.ChangeRequest, error)
	MarkChangeRequestImplemented(ctx context.Context, membershipID, id string) (*types.ChangeRequest, error)

	GetOrderRequest(ctx context.Context, membershipID, id string) (*types.OrderRequest, error)
	ListOrderRequests(ctx context.Context, membershipID, status string) ([]*types.OrderRequest, error)
	SetOrderRequestStatus(ctx context.Context, membershipID, id, from, to, reviewedBy, notes string) (*types.OrderRequest, error)
	MarkOrderRequestOrdered(ctx context.Context, membershipID, id, orderNumber string) (*types.OrderRequest, error)
	MarkOrderRequestDelivered(ctx context.Context, membershipID, id string, actualCost float64) (*types.OrderRequest, error)
}
