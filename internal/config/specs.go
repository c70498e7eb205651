// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	JWTSecret          string        `envconfig:"jwt_secret" required:"true"`
	TokenLifetime      time.Duration `envconfig:"token_lifetime" default:"168h"`
	ResetTokenLifetime time.Duration `envconfig:"reset_token_lifetime" default:"15m"`

	// LegacyTenantExemption lets owner and admin accounts without a
	// membership act across tenants. Kept for pre-membership accounts,
	// disable once those are migrated.
	LegacyTenantExemption bool `envconfig:"legacy_tenant_exemption" default:"true"`
}
