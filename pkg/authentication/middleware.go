// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"strings"

	httpTypes "github.com/canonical/supply-service/internal/http/types"
	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/monitoring"
	"github.com/canonical/supply-service/internal/storage"
	"github.com/canonical/supply-service/internal/tracing"
)

type Middleware struct {
	tokens TokenManagerInterface
	users  UserLoaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.logger.Security().AuthnFailure("", "missing authorization header")
				httpTypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			claims, err := m.tokens.VerifyToken(token)
			if err != nil {
				m.logger.Debugf("JWT verification failed: %v", err)
				m.logger.Security().AuthnFailure("", "invalid token")
				httpTypes.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			// The user record is authoritative for role, membership and
			// active status. The token only identifies the caller.
			user, err := m.users.GetUserByID(ctx, claims.Subject)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					m.logger.Security().AuthnFailure(claims.Subject, "unknown subject")
					httpTypes.WriteError(w, http.StatusUnauthorized, "invalid token")
					return
				}
				// A lookup failure is not a credential failure.
				m.logger.Errorf("failed to load user %s: %v", claims.Subject, err)
				httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if !user.IsActive {
				m.logger.Security().AuthnFailure(user.ID, "account deactivated")
				httpTypes.WriteError(w, http.StatusForbidden, "account is deactivated")
				return
			}

			ctx = WithPrincipal(ctx, &Principal{
				ID:           user.ID,
				Email:        user.Email,
				Role:         user.Role,
				MembershipID: user.MembershipID,
				Permissions:  user.Permissions,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func NewMiddleware(tokens TokenManagerInterface, users UserLoaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tokens:  tokens,
		users:   users,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
