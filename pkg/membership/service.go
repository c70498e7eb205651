// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"

	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/monitoring"
	"github.com/canonical/supply-service/internal/tracing"
	"github.com/canonical/supply-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.CreateMembership")
	defer span.End()

	if m.SubscriptionStatus == "" {
		m.SubscriptionStatus = types.SubscriptionTrial
	}
	if m.SubscriptionPlan == "" {
		m.SubscriptionPlan = types.PlanBasic
	}

	return s.storage.CreateMembership(ctx, m)
}

func (s *Service) GetMembership(ctx context.Context, id string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.GetMembership")
	defer span.End()

	return s.storage.GetMembershipByID(ctx, id)
}

func (s *Service) ListMemberships(ctx context.Context) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ListMemberships")
	defer span.End()

	return s.storage.ListMemberships(ctx)
}

func (s *Service) UpdateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.UpdateMembership")
	defer span.End()

	return s.storage.UpdateMembership(ctx, m)
}

func (s *Service) DeleteMembership(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.DeleteMembership")
	defer span.End()

	return s.storage.DeleteMembership(ctx, id)
}
