// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/mail"
	"github.com/canonical/supply-service/internal/monitoring"
	"github.com/canonical/supply-service/internal/storage"
	"github.com/canonical/supply-service/internal/tracing"
	"github.com/canonical/supply-service/internal/types"
	"github.com/canonical/supply-service/pkg/authentication"
)

var (
	ErrEmailTaken      = errors.New("email is already registered")
	ErrBadCredentials  = errors.New("invalid email or password")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrInvalidRole     = errors.New("invalid role")
	ErrMissingBusiness = errors.New("business details are required for root-admin registration")
)

// registrableRoles are the roles an account may self-register with.
// Team-members are created through invitations and operators are seeded.
var registrableRoles = map[string]bool{
	types.RoleUser:      true,
	types.RoleOwner:     true,
	types.RoleRootAdmin: true,
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tokens  authentication.TokenManagerInterface
	mailer  mail.MailerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tokens authentication.TokenManagerInterface,
	mailer mail.MailerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tokens:  tokens,
		mailer:  mailer,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Register(ctx context.Context, reg *Registration) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.Register")
	defer span.End()

	role := reg.Role
	if role == "" {
		role = types.RoleUser
	}
	if !registrableRoles[role] {
		return nil, ErrInvalidRole
	}

	hash, err := authentication.HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	user := &types.User{
		Email:        reg.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		Permissions:  types.DefaultPermissions(),
	}

	// A root-admin is the first account of a new tenant, so its membership
	// is created alongside it. Both inserts ride the request transaction:
	// a duplicate email rolls the membership back with the user.
	if role == types.RoleRootAdmin {
		if reg.BusinessName == "" || reg.BusinessType == "" || reg.ContactName == "" {
			return nil, ErrMissingBusiness
		}

		membership, err := s.storage.CreateMembership(ctx, &types.Membership{
			BusinessName:       reg.BusinessName,
			BusinessType:       reg.BusinessType,
			ContactName:        reg.ContactName,
			Email:              reg.Email,
			Phone:              reg.Phone,
			SubscriptionStatus: types.SubscriptionTrial,
			SubscriptionPlan:   types.PlanBasic,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return nil, ErrEmailTaken
			}
			return nil, fmt.Errorf("failed to create membership: %w", err)
		}

		user.MembershipID = &membership.ID
	}

	user, err = s.storage.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (string, *types.User, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.Login")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthnFailure(email, "unknown email")
			return "", nil, ErrBadCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !authentication.ComparePassword(user.PasswordHash, password) {
		s.logger.Security().AuthnFailure(user.ID, "bad password")
		return "", nil, ErrBadCredentials
	}

	token, err := s.tokens.IssueToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.storage.SetUserLastLogin(ctx, user.ID); err != nil {
		s.logger.Errorf("failed to stamp last login for %s: %v", user.ID, err)
	}

	return token, user, nil
}

func (s *Service) RenewPassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.RenewPassword")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if !authentication.ComparePassword(user.PasswordHash, oldPassword) {
		s.logger.Security().AuthnFailure(user.ID, "bad password on renewal")
		return ErrBadCredentials
	}

	hash, err := authentication.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.storage.UpdateUserPassword(ctx, userID, hash)
}

// ForgotPassword issues a reset token for known accounts. It succeeds
// regardless of whether the email exists so the endpoint cannot be used to
// probe for accounts.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.ForgotPassword")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := s.tokens.IssueResetToken(user.ID)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		return fmt.Errorf("failed to deliver reset token: %w", err)
	}

	return nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.ResetPassword")
	defer span.End()

	userID, err := s.tokens.VerifyResetToken(token)
	if err != nil {
		s.logger.Security().AuthnFailure("", "invalid reset token")
		return ErrInvalidToken
	}

	hash, err := authentication.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.storage.UpdateUserPassword(ctx, userID, hash); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}
