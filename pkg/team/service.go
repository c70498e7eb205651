// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/mail"
	"github.com/canonical/supply-service/internal/monitoring"
	"github.com/canonical/supply-service/internal/tracing"
	"github.com/canonical/supply-service/internal/types"
	"github.com/canonical/supply-service/pkg/authentication"
)

var (
	ErrInvalidDecision      = errors.New("decision must be approved or rejected")
	ErrSubscriptionInactive = errors.New("subscription is not active")
)

// Overview describes a membership's team against its plan capacity.
type Overview struct {
	Members       []*types.User `json:"members"`
	Plan          string        `json:"plan"`
	UserLimit     int           `json:"userLimit"`
	CurrentCount  int           `json:"currentCount"`
	CanInviteMore bool          `json:"canInviteMore"`
}

// Invitation is the payload for admitting a new team-member.
type Invitation struct {
	Email       string
	FirstName   string
	LastName    string
	Permissions *types.Permissions
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	mailer  mail.MailerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, mailer mail.MailerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		mailer:  mailer,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) GetOverview(ctx context.Context, membershipID string) (*Overview, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.GetOverview")
	defer span.End()

	membership, err := s.storage.GetMembershipByID(ctx, membershipID)
	if err != nil {
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}

	members, err := s.storage.ListTeamMembers(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []*types.User{}
	}

	limit := membership.UserLimit()
	count := len(members)

	return &Overview{
		Members:       members,
		Plan:          membership.SubscriptionPlan,
		UserLimit:     limit,
		CurrentCount:  count,
		CanInviteMore: limit == types.UnlimitedUsers || count < limit,
	}, nil
}

// InviteMember admits a team-member under the membership's plan limit. The
// temporary credential is hashed before storage and the plaintext goes out
// through the mailer only.
func (s *Service) InviteMember(ctx context.Context, membershipID, inviterID string, invite *Invitation) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.InviteMember")
	defer span.End()

	membership, err := s.storage.GetMembershipByID(ctx, membershipID)
	if err != nil {
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}

	// The router gate checks this too, but admission must hold even for
	// callers that reach the service another way.
	if !membership.IsSubscriptionActive() {
		return nil, ErrSubscriptionInactive
	}

	tempPassword, err := authentication.GenerateTempPassword()
	if err != nil {
		return nil, err
	}
	hash, err := authentication.HashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	permissions := types.DefaultPermissions()
	if invite.Permissions != nil {
		permissions = *invite.Permissions
	}

	member, err := s.storage.InviteTeamMember(ctx, &types.User{
		Email:        invite.Email,
		PasswordHash: hash,
		Role:         types.RoleTeamMember,
		MembershipID: &membershipID,
		InvitedBy:    &inviterID,
		FirstName:    invite.FirstName,
		LastName:     invite.LastName,
		IsActive:     true,
		Permissions:  permissions,
	}, membership.UserLimit())
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendInvitation(ctx, member.Email, tempPassword); err != nil {
		s.logger.Errorf("failed to deliver invitation for %s: %v", member.Email, err)
	}

	return member, nil
}

func (s *Service) UpdatePermissions(ctx context.Context, membershipID, userID string, p types.Permissions) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.UpdatePermissions")
	defer span.End()

	return s.storage.UpdateTeamMemberPermissions(ctx, membershipID, userID, p)
}

func (s *Service) DeactivateMember(ctx context.Context, membershipID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.DeactivateMember")
	defer span.End()

	return s.storage.DeactivateTeamMember(ctx, membershipID, userID)
}

func (s *Service) ListChangeRequests(ctx context.Context, membershipID, status string) ([]*types.ChangeRequest, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ListChangeRequests")
	defer span.End()

	return s.storage.ListChangeRequests(ctx, membershipID, status)
}

// ReviewChangeRequest decides a pending change request. Reviewing a request
// that is no longer pending is a conflict, not a repeatable decision.
func (s *Service) ReviewChangeRequest(ctx context.Context, membershipID, id, reviewerID, decision, notes string) (*types.ChangeRequest, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ReviewChangeRequest")
	defer span.End()

	if decision != types.StatusApproved && decision != types.StatusRejected {
		return nil, ErrInvalidDecision
	}

	// Resolve first so an absent or cross-tenant ID stays a 404 instead of
	// leaking through the conditional update as a conflict.
	if _, err := s.storage.GetChangeRequest(ctx, membershipID, id); err != nil {
		return nil, err
	}

	return s.storage.SetChangeRequestStatus(ctx, membershipID, id, types.StatusPending, decision, reviewerID, notes)
}

func (s *Service) MarkChangeRequestImplemented(ctx context.Context, membershipID, id string) (*types.ChangeRequest, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.MarkChangeRequestImplemented")
	defer span.End()

	if _, err := s.storage.GetChangeRequest(ctx, membershipID, id); err != nil {
		return nil, err
	}

	return s.storage.MarkChangeRequestImplemented(ctx, membershipID, id)
}

func (s *Service) ListOrderRequests(ctx context.Context, membershipID, status string) ([]*types.OrderRequest, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ListOrderRequests")
	defer span.End()

	return s.storage.ListOrderRequests(ctx, membershipID, status)
}

func (s *Service) ReviewOrderRequest(ctx context.Context, membershipID, id, reviewerID, decision, notes string) (*types.OrderRequest, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ReviewOrderRequest")
	defer span.End()

	if decision != types.StatusApproved && decision != types.StatusRejected {
		return nil, ErrInvalidDecision
	}

	if _, err := s.storage.GetOrderRequest(ctx, membershipID, id); err != nil {
		return nil, err
	}

	return s.storage.SetOrderRequestStatus(ctx, membershipID, id, types.StatusPending, decision, reviewerID, notes)
}

func (s *Service) MarkOrderRequestOrdered(ctx context.Context, membershipID, id, orderNumber string) (*types.OrderRequest, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.MarkOrderRequestOrdered")
	defer span.End()

	if _, err := s.storage.GetOrderRequest(ctx, membershipID, id); err != nil {
		return nil, err
	}

	return s.storage.MarkOrderRequestOrdered(ctx, membershipID, id, orderNumber)
}

func (s *Service) MarkOrderRequestDelivered(ctx context.Context, membershipID, id string, actualCost float64) (*types.OrderRequest, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.MarkOrderRequestDelivered")
	defer span.End()

	if _, err := s.storage.GetOrderRequest(ctx, membershipID, id); err != nil {
		return nil, err
	}

	return s.storage.MarkOrderRequestDelivered(ctx, membershipID, id, actualCost)
}
