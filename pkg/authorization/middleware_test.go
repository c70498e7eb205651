// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/supply-service/internal/types"
	"github.com/canonical/supply-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_authorization.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type gateMocks struct {
	memberships *MockMembershipLoaderInterface
	tracer      *MockTracingInterface
	logger      *MockLoggerInterface
	security    *MockSecurityLoggerInterface
	monitor     *MockMonitorInterface
}

func newGateMocks(ctrl *gomock.Controller) *gateMocks {
	return &gateMocks{
		memberships: NewMockMembershipLoaderInterface(ctrl),
		tracer:      NewMockTracingInterface(ctrl),
		logger:      NewMockLoggerInterface(ctrl),
		security:    NewMockSecurityLoggerInterface(ctrl),
		monitor:     NewMockMonitorInterface(ctrl),
	}
}

func (m *gateMocks) middleware(legacyTenantExemption bool) *Middleware {
	return NewMiddleware(m.memberships, legacyTenantExemption, m.tracer, m.monitor, m.logger)
}

// expectSpan passes the incoming context through so principals survive the
// span boundary.
func (m *gateMocks) expectSpan(name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).
		DoAndReturn(func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		})
}

func (m *gateMocks) expectAuthzFailure() {
	m.logger.EXPECT().Security().Return(m.security)
	m.security.EXPECT().AuthzFailure(gomock.Any(), gomock.Any())
}

func principalRequest(principal *authentication.Principal) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/users/team", nil)
	if principal == nil {
		return req
	}
	return req.WithContext(authentication.WithPrincipal(req.Context(), principal))
}

func serveGate(gate func(http.Handler) http.Handler, req *http.Request) (*httptest.ResponseRecorder, *bool) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	w := httptest.NewRecorder()
	gate(next).ServeHTTP(w, req)
	return w, &called
}

func TestMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		principal  *authentication.Principal
		setupMocks func(*gateMocks)
		wantStatus int
	}{
		{
			name:       "root admin admitted",
			principal:  &authentication.Principal{ID: "user-1", Role: types.RoleRootAdmin},
			setupMocks: func(m *gateMocks) {},
			wantStatus: http.StatusOK,
		},
		{
			name:      "team member rejected",
			principal: &authentication.Principal{ID: "user-2", Role: types.RoleTeamMember},
			setupMocks: func(m *gateMocks) {
				m.expectAuthzFailure()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no principal",
			principal:  nil,
			setupMocks: func(m *gateMocks) {},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newGateMocks(ctrl)
			m.expectSpan("authorization.Middleware.RequireRole")
			tt.setupMocks(m)

			w, _ := serveGate(m.middleware(true).RequireRole(KindRootAdmin), principalRequest(tt.principal))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestMiddleware_RequireOperator(t *testing.T) {
	tests := []struct {
		name       string
		principal  *authentication.Principal
		setupMocks func(*gateMocks)
		wantStatus int
	}{
		{
			name:       "admin admitted",
			principal:  &authentication.Principal{ID: "user-1", Role: types.RoleAdmin},
			setupMocks: func(m *gateMocks) {},
			wantStatus: http.StatusOK,
		},
		{
			name:      "root admin rejected",
			principal: &authentication.Principal{ID: "user-2", Role: types.RoleRootAdmin},
			setupMocks: func(m *gateMocks) {
				m.expectAuthzFailure()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:      "owner rejected",
			principal: &authentication.Principal{ID: "user-3", Role: types.RoleOwner},
			setupMocks: func(m *gateMocks) {
				m.expectAuthzFailure()
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newGateMocks(ctrl)
			m.expectSpan("authorization.Middleware.RequireOperator")
			tt.setupMocks(m)

			w, _ := serveGate(m.middleware(true).RequireOperator(), principalRequest(tt.principal))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestMiddleware_RequirePermission(t *testing.T) {
	tests := []struct {
		name       string
		principal  *authentication.Principal
		setupMocks func(*gateMocks)
		wantStatus int
	}{
		{
			name: "team member with flag admitted",
			principal: &authentication.Principal{
				ID:          "user-1",
				Role:        types.RoleTeamMember,
				Permissions: types.Permissions{CanViewRecipes: true},
			},
			setupMocks: func(m *gateMocks) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "team member without flag rejected",
			principal: &authentication.Principal{
				ID:   "user-2",
				Role: types.RoleTeamMember,
			},
			setupMocks: func(m *gateMocks) {
				m.expectAuthzFailure()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "root admin bypasses flags",
			principal: &authentication.Principal{
				ID:   "user-3",
				Role: types.RoleRootAdmin,
			},
			setupMocks: func(m *gateMocks) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "legacy user rejected",
			principal: &authentication.Principal{
				ID:          "user-4",
				Role:        types.RoleUser,
				Permissions: types.DefaultPermissions(),
			},
			setupMocks: func(m *gateMocks) {
				m.expectAuthzFailure()
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newGateMocks(ctrl)
			m.expectSpan("authorization.Middleware.RequirePermission")
			tt.setupMocks(m)

			w, _ := serveGate(m.middleware(true).RequirePermission(PermViewRecipes), principalRequest(tt.principal))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestMiddleware_RequireSameMembership(t *testing.T) {
	membershipID := "membership-1"

	tests := []struct {
		name             string
		principal        *authentication.Principal
		legacyExemption  bool
		setupMocks       func(*gateMocks)
		wantStatus       int
		wantMembershipID string
	}{
		{
			name:             "tenant role with membership admitted",
			principal:        &authentication.Principal{ID: "user-1", Role: types.RoleRootAdmin, MembershipID: &membershipID},
			legacyExemption:  true,
			setupMocks:       func(m *gateMocks) {},
			wantStatus:       http.StatusOK,
			wantMembershipID: membershipID,
		},
		{
			name:            "tenant role without membership rejected",
			principal:       &authentication.Principal{ID: "user-2", Role: types.RoleTeamMember},
			legacyExemption: true,
			setupMocks: func(m *gateMocks) {
				m.expectAuthzFailure()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:            "legacy role passes with exemption",
			principal:       &authentication.Principal{ID: "user-3", Role: types.RoleOwner},
			legacyExemption: true,
			setupMocks:      func(m *gateMocks) {},
			wantStatus:      http.StatusOK,
		},
		{
			name:            "legacy role rejected without exemption",
			principal:       &authentication.Principal{ID: "user-4", Role: types.RoleOwner},
			legacyExemption: false,
			setupMocks: func(m *gateMocks) {
				m.expectAuthzFailure()
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newGateMocks(ctrl)
			m.expectSpan("authorization.Middleware.RequireSameMembership")
			tt.setupMocks(m)

			var gotMembershipID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMembershipID, _ = MembershipIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})
			w := httptest.NewRecorder()
			m.middleware(tt.legacyExemption).RequireSameMembership()(next).ServeHTTP(w, principalRequest(tt.principal))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantMembershipID != "" && gotMembershipID != tt.wantMembershipID {
				t.Errorf("expected membership ID %q in context, got %q", tt.wantMembershipID, gotMembershipID)
			}
		})
	}
}

func TestMiddleware_RequireActiveSubscription(t *testing.T) {
	membershipID := "membership-1"
	principal := &authentication.Principal{ID: "user-1", Role: types.RoleRootAdmin, MembershipID: &membershipID}
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name       string
		scoped     bool
		setupMocks func(*gateMocks)
		wantStatus int
	}{
		{
			name:   "active subscription admitted",
			scoped: true,
			setupMocks: func(m *gateMocks) {
				m.memberships.EXPECT().GetMembershipByID(gomock.Any(), membershipID).Return(&types.Membership{
					SubscriptionStatus:  types.SubscriptionActive,
					SubscriptionPlan:    types.PlanPremium,
					SubscriptionExpires: &future,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "expired trial rejected",
			scoped: true,
			setupMocks: func(m *gateMocks) {
				m.memberships.EXPECT().GetMembershipByID(gomock.Any(), membershipID).Return(&types.Membership{
					SubscriptionStatus: types.SubscriptionTrial,
					SubscriptionPlan:   types.PlanBasic,
					TrialEnds:          &past,
				}, nil)
				m.expectAuthzFailure()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "cancelled subscription rejected",
			scoped: true,
			setupMocks: func(m *gateMocks) {
				m.memberships.EXPECT().GetMembershipByID(gomock.Any(), membershipID).Return(&types.Membership{
					SubscriptionStatus: types.SubscriptionCancelled,
					SubscriptionPlan:   types.PlanPremium,
				}, nil)
				m.expectAuthzFailure()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "storage error",
			scoped: true,
			setupMocks: func(m *gateMocks) {
				m.memberships.EXPECT().GetMembershipByID(gomock.Any(), membershipID).Return(nil, errors.New("db error"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unscoped legacy caller passes",
			scoped:     false,
			setupMocks: func(m *gateMocks) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newGateMocks(ctrl)
			m.expectSpan("authorization.Middleware.RequireActiveSubscription")
			tt.setupMocks(m)

			req := principalRequest(principal)
			if tt.scoped {
				req = req.WithContext(WithMembershipID(req.Context(), membershipID))
			}
			w, _ := serveGate(m.middleware(true).RequireActiveSubscription(), req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}
