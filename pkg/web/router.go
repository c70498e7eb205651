// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/supply-service/internal/db"
	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/mail"
	"github.com/canonical/supply-service/internal/monitoring"
	"github.com/canonical/supply-service/internal/storage"
	"github.com/canonical/supply-service/internal/tracing"
	"github.com/canonical/supply-service/pkg/accounts"
	"github.com/canonical/supply-service/pkg/authentication"
	"github.com/canonical/supply-service/pkg/authorization"
	"github.com/canonical/supply-service/pkg/catalog"
	"github.com/canonical/supply-service/pkg/member"
	"github.com/canonical/supply-service/pkg/membership"
	"github.com/canonical/supply-service/pkg/metrics"
	"github.com/canonical/supply-service/pkg/status"
	"github.com/canonical/supply-service/pkg/team"
)

// RouterConfig carries the collaborators and policy knobs the HTTP surface
// needs.
type RouterConfig struct {
	Storage  storage.StorageInterface
	DBClient db.DBClientInterface
	Tokens   authentication.TokenManagerInterface
	Mailer   mail.MailerInterface

	CORSAllowedOrigins    []string
	LegacyTenantExemption bool
}

func NewRouter(
	c *RouterConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	router.Use(
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: c.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}),
		db.TransactionMiddleware(c.DBClient, logger),
	)

	authn := authentication.NewMiddleware(c.Tokens, c.Storage, tracer, monitor, logger)
	authz := authorization.NewMiddleware(c.Storage, c.LegacyTenantExemption, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	accountsService := accounts.NewService(c.Storage, c.Tokens, c.Mailer, tracer, monitor, logger)
	accounts.NewAPI(accountsService, authn.Authenticate(), tracer, monitor, logger).RegisterEndpoints(router)

	// Operator surface.
	membershipService := membership.NewService(c.Storage, tracer, monitor, logger)
	router.Group(func(r chi.Router) {
		r.Use(authn.Authenticate(), authz.RequireOperator())
		membership.NewAPI(membershipService, tracer, monitor, logger).RegisterEndpoints(r)
	})

	// Team management surface, root-admins of a membership with a live
	// subscription.
	teamService := team.NewService(c.Storage, c.Mailer, tracer, monitor, logger)
	router.Group(func(r chi.Router) {
		r.Use(
			authn.Authenticate(),
			authz.RequireRootAdmin(),
			authz.RequireSameMembership(),
			authz.RequireActiveSubscription(),
		)
		team.NewAPI(teamService, tracer, monitor, logger).RegisterEndpoints(r)
	})

	// Team-member surface, gated on an active subscription.
	memberService := member.NewService(c.Storage, tracer, monitor, logger)
	router.Group(func(r chi.Router) {
		r.Use(
			authn.Authenticate(),
			authz.RequireRole(authorization.KindTeamMember),
			authz.RequireSameMembership(),
			authz.RequireActiveSubscription(),
		)
		member.NewAPI(memberService, authz, tracer, monitor, logger).RegisterEndpoints(r)
	})

	// Owner-scoped catalog surface.
	catalogService := catalog.NewService(c.Storage, tracer, monitor, logger)
	router.Group(func(r chi.Router) {
		r.Use(authn.Authenticate())
		catalog.NewAPI(catalogService, tracer, monitor, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
