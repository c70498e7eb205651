// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"net/http"

	httpTypes "github.com/canonical/supply-service/internal/http/types"
	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/monitoring"
	"github.com/canonical/supply-service/internal/tracing"
	"github.com/canonical/supply-service/pkg/authentication"
)

type Middleware struct {
	memberships MembershipLoaderInterface

	// legacyTenantExemption lets legacy kinds act outside tenant scoping.
	legacyTenantExemption bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RequireRole admits only principals of the given kind.
func (m *Middleware) RequireRole(kind RoleKind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireRole")
			defer span.End()

			principal, ok := authentication.PrincipalFromContext(ctx)
			if !ok {
				httpTypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			if KindOf(principal.Role) != kind {
				m.logger.Security().AuthzFailure(principal.ID, "role "+kind.String()+" required")
				httpTypes.WriteError(w, http.StatusForbidden, "insufficient role")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRootAdmin admits membership root admins only.
func (m *Middleware) RequireRootAdmin() func(http.Handler) http.Handler {
	return m.RequireRole(KindRootAdmin)
}

// RequireOperator admits platform operators only.
func (m *Middleware) RequireOperator() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireOperator")
			defer span.End()

			principal, ok := authentication.PrincipalFromContext(ctx)
			if !ok {
				httpTypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			if !KindOf(principal.Role).IsOperator() {
				m.logger.Security().AuthzFailure(principal.ID, "operator access required")
				httpTypes.WriteError(w, http.StatusForbidden, "insufficient role")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermission admits team-members whose permission flag is set. Root
// admins bypass the flags within their own membership.
func (m *Middleware) RequirePermission(perm Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequirePermission")
			defer span.End()

			principal, ok := authentication.PrincipalFromContext(ctx)
			if !ok {
				httpTypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			kind := KindOf(principal.Role)
			if kind == KindRootAdmin {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if kind != KindTeamMember || !perm.Allows(principal.Permissions) {
				m.logger.Security().AuthzFailure(principal.ID, "permission denied")
				httpTypes.WriteError(w, http.StatusForbidden, "permission denied")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSameMembership resolves the caller's tenant scope and attaches it to
// the request context. Tenant kinds must carry a membership. Legacy kinds
// pass through only while the legacy exemption is configured on.
func (m *Middleware) RequireSameMembership() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireSameMembership")
			defer span.End()

			principal, ok := authentication.PrincipalFromContext(ctx)
			if !ok {
				httpTypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			kind := KindOf(principal.Role)

			if kind.IsLegacy() {
				if !m.legacyTenantExemption {
					m.logger.Security().AuthzFailure(principal.ID, "legacy role outside tenant scope")
					httpTypes.WriteError(w, http.StatusForbidden, "membership required")
					return
				}
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if principal.MembershipID == nil || *principal.MembershipID == "" {
				m.logger.Security().AuthzFailure(principal.ID, "no membership")
				httpTypes.WriteError(w, http.StatusForbidden, "membership required")
				return
			}

			ctx = WithMembershipID(ctx, *principal.MembershipID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireActiveSubscription rejects callers whose membership subscription has
// lapsed.
func (m *Middleware) RequireActiveSubscription() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireActiveSubscription")
			defer span.End()

			membershipID, ok := MembershipIDFromContext(ctx)
			if !ok {
				// Legacy principals have no membership to check.
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			membership, err := m.memberships.GetMembershipByID(ctx, membershipID)
			if err != nil {
				m.logger.Errorf("failed to load membership %s: %v", membershipID, err)
				httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if !membership.IsSubscriptionActive() {
				principal, _ := authentication.PrincipalFromContext(ctx)
				if principal != nil {
					m.logger.Security().AuthzFailure(principal.ID, "inactive subscription")
				}
				httpTypes.WriteError(w, http.StatusForbidden, "subscription is not active")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewMiddleware(memberships MembershipLoaderInterface, legacyTenantExemption bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		memberships:           memberships,
		legacyTenantExemption: legacyTenantExemption,
		tracer:                tracer,
		monitor:               monitor,
		logger:                logger,
	}
}
