// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/supply-service/internal/storage"
	"github.com/canonical/supply-service/internal/types"
	"github.com/canonical/supply-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_accounts.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_tokens.go -source=../authentication/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_mail.go -source=../../internal/mail/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage  *MockStorageInterface
	tokens   *MockTokenManagerInterface
	mailer   *MockMailerInterface
	tracer   *MockTracingInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
	monitor  *MockMonitorInterface
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	return &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		tokens:   NewMockTokenManagerInterface(ctrl),
		mailer:   NewMockMailerInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
	}
}

func (m *serviceMocks) service() *Service {
	return NewService(m.storage, m.tokens, m.mailer, m.tracer, m.monitor, m.logger)
}

func (m *serviceMocks) expectSpan(name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).
		Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func TestService_Register(t *testing.T) {
	email := "owner@example.com"
	password := "s3cretpass"

	testCases := []struct {
		name        string
		reg         *Registration
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success - default role",
			reg:  &Registration{Email: email, Password: password},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.Role != types.RoleUser {
							return nil, errors.New("expected default role")
						}
						if !u.IsActive {
							return nil, errors.New("expected active user")
						}
						if u.MembershipID != nil {
							return nil, errors.New("plain user must not get a membership")
						}
						if !authentication.ComparePassword(u.PasswordHash, password) {
							return nil, errors.New("password hash does not verify")
						}
						u.ID = "user-1"
						return u, nil
					})
			},
		},
		{
			name: "success - root-admin opens a tenant",
			reg: &Registration{
				Email:        email,
				Password:     password,
				Role:         types.RoleRootAdmin,
				BusinessName: "Blue Fig Bistro",
				BusinessType: types.BusinessTypeRestaurant,
				ContactName:  "Dana Reyes",
				Phone:        "555-0101",
			},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, mb *types.Membership) (*types.Membership, error) {
						if mb.BusinessName != "Blue Fig Bistro" || mb.BusinessType != types.BusinessTypeRestaurant {
							return nil, errors.New("business details not carried over")
						}
						if mb.Email != email {
							return nil, errors.New("membership contact email not stamped")
						}
						if mb.SubscriptionStatus != types.SubscriptionTrial || mb.SubscriptionPlan != types.PlanBasic {
							return nil, errors.New("new tenant must start on a basic trial")
						}
						mb.ID = "membership-1"
						return mb, nil
					})
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.Role != types.RoleRootAdmin {
							return nil, errors.New("role not preserved")
						}
						if u.MembershipID == nil || *u.MembershipID != "membership-1" {
							return nil, errors.New("root-admin not attached to the new membership")
						}
						return u, nil
					})
			},
		},
		{
			name: "error - root-admin without business details",
			reg: &Registration{
				Email:    email,
				Password: password,
				Role:     types.RoleRootAdmin,
			},
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: ErrMissingBusiness,
		},
		{
			name:        "error - team-member not registrable",
			reg:         &Registration{Email: email, Password: password, Role: types.RoleTeamMember},
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: ErrInvalidRole,
		},
		{
			name: "error - duplicate email",
			reg:  &Registration{Email: email, Password: password, Role: types.RoleUser},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrEmailTaken,
		},
		{
			name: "error - duplicate membership email",
			reg: &Registration{
				Email:        email,
				Password:     password,
				Role:         types.RoleRootAdmin,
				BusinessName: "Blue Fig Bistro",
				BusinessType: types.BusinessTypeRestaurant,
				ContactName:  "Dana Reyes",
			},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrEmailTaken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("accounts.Service.Register")
			tc.setupMocks(m)

			user, err := m.service().Register(context.Background(), tc.reg)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user == nil {
				t.Fatal("expected user but got nil")
			}
			if user.PasswordHash == password {
				t.Error("password stored in clear")
			}
			if tc.reg.Role == types.RoleRootAdmin && user.MembershipID == nil {
				t.Error("root-admin registered without a membership")
			}
		})
	}
}

func TestService_Login(t *testing.T) {
	email := "owner@example.com"
	password := "s3cretpass"
	hash, err := authentication.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &types.User{ID: "user-1", Email: email, PasswordHash: hash, Role: types.RoleOwner, IsActive: true}

	testCases := []struct {
		name          string
		password      string
		setupMocks    func(*serviceMocks)
		expectedToken string
		expectedErr   error
	}{
		{
			name:     "success",
			password: password,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), email).Return(user, nil)
				m.tokens.EXPECT().IssueToken(user).Return("jwt-token", nil)
				m.storage.EXPECT().SetUserLastLogin(gomock.Any(), user.ID).Return(nil)
			},
			expectedToken: "jwt-token",
		},
		{
			name:     "success - last login stamp failure is not fatal",
			password: password,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), email).Return(user, nil)
				m.tokens.EXPECT().IssueToken(user).Return("jwt-token", nil)
				m.storage.EXPECT().SetUserLastLogin(gomock.Any(), user.ID).Return(errors.New("db error"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedToken: "jwt-token",
		},
		{
			name:     "error - unknown email",
			password: password,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), email).Return(nil, storage.ErrNotFound)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthnFailure(email, gomock.Any())
			},
			expectedErr: ErrBadCredentials,
		},
		{
			name:     "error - bad password",
			password: "wrong-password",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), email).Return(user, nil)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthnFailure(user.ID, gomock.Any())
			},
			expectedErr: ErrBadCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("accounts.Service.Login")
			tc.setupMocks(m)

			token, loggedIn, err := m.service().Login(context.Background(), email, tc.password)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != tc.expectedToken {
				t.Errorf("expected token %q, got %q", tc.expectedToken, token)
			}
			if loggedIn == nil {
				t.Fatal("expected user but got nil")
			}
		})
	}
}

func TestService_RenewPassword(t *testing.T) {
	userID := "user-1"
	oldPassword := "old-password"
	hash, err := authentication.HashPassword(oldPassword)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &types.User{ID: userID, PasswordHash: hash}

	testCases := []struct {
		name        string
		oldPassword string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:        "success",
			oldPassword: oldPassword,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), userID).Return(user, nil)
				m.storage.EXPECT().UpdateUserPassword(gomock.Any(), userID, gomock.Any()).Return(nil)
			},
		},
		{
			name:        "error - bad old password",
			oldPassword: "wrong",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), userID).Return(user, nil)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthnFailure(userID, gomock.Any())
			},
			expectedErr: ErrBadCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("accounts.Service.RenewPassword")
			tc.setupMocks(m)

			err := m.service().RenewPassword(context.Background(), userID, tc.oldPassword, "new-password")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_ForgotPassword(t *testing.T) {
	email := "owner@example.com"
	user := &types.User{ID: "user-1", Email: email}

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), email).Return(user, nil)
				m.tokens.EXPECT().IssueResetToken(user.ID).Return("reset-token", nil)
				m.mailer.EXPECT().SendPasswordReset(gomock.Any(), email, "reset-token").Return(nil)
			},
		},
		{
			name: "success - unknown email does not leak",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), email).Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "error - mail delivery failure",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), email).Return(user, nil)
				m.tokens.EXPECT().IssueResetToken(user.ID).Return("reset-token", nil)
				m.mailer.EXPECT().SendPasswordReset(gomock.Any(), email, "reset-token").Return(errors.New("smtp error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("accounts.Service.ForgotPassword")
			tc.setupMocks(m)

			err := m.service().ForgotPassword(context.Background(), email)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_ResetPassword(t *testing.T) {
	token := "reset-token"
	userID := "user-1"

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.tokens.EXPECT().VerifyResetToken(token).Return(userID, nil)
				m.storage.EXPECT().UpdateUserPassword(gomock.Any(), userID, gomock.Any()).Return(nil)
			},
		},
		{
			name: "error - invalid token",
			setupMocks: func(m *serviceMocks) {
				m.tokens.EXPECT().VerifyResetToken(token).Return("", errors.New("expired"))
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthnFailure(gomock.Any(), gomock.Any())
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "error - account no longer exists",
			setupMocks: func(m *serviceMocks) {
				m.tokens.EXPECT().VerifyResetToken(token).Return(userID, nil)
				m.storage.EXPECT().UpdateUserPassword(gomock.Any(), userID, gomock.Any()).Return(storage.ErrNotFound)
			},
			expectedErr: ErrInvalidToken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("accounts.Service.ResetPassword")
			tc.setupMocks(m)

			err := m.service().ResetPassword(context.Background(), token, "new-password")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
