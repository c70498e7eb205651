// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/monitoring"
	"github.com/canonical/supply-service/internal/tracing"
	"github.com/canonical/supply-service/internal/types"
)

var ErrUnresolvedItems = errors.New("one or more ingredients could not be resolved")

// ChangeProposal is a team-member's suggested change to a catalog entity.
type ChangeProposal struct {
	Type            string
	TargetID        string
	Title           string
	Description     string
	ProposedChanges map[string]interface{}
	Priority        string
}

// OrderProposal is a team-member's purchase request.
type OrderProposal struct {
	Title                 string
	Description           string
	Items                 []types.OrderItem
	PreferredSupplierID   *string
	Urgency               string
	RequestedDeliveryDate *time.Time
}

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

func (s *Service) ListRecipes(ctx context.Context, membershipID string) ([]*types.Recipe, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.ListRecipes")
	defer span.End()

	return s.storage.ListRecipesByMembership(ctx, membershipID)
}

func (s *Service) GetRecipe(ctx context.Context, membershipID, id string) (*types.Recipe, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.GetRecipe")
	defer span.End()

	return s.storage.GetRecipeInMembership(ctx, membershipID, id)
}

func (s *Service) ListIngredients(ctx context.Context, membershipID string) ([]*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.ListIngredients")
	defer span.End()

	return s.storage.ListIngredientsByMembership(ctx, membershipID)
}

func (s *Service) GetIngredient(ctx context.Context, membershipID, id string) (*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.GetIngredient")
	defer span.End()

	return s.storage.GetIngredientInMembership(ctx, membershipID, id)
}

// SubmitRecipeChangeRequest records a change proposal against a recipe of the
// member's own membership. The current state of the target is snapshotted so
// reviewers see what the proposal was made against.
func (s *Service) SubmitRecipeChangeRequest(ctx context.Context, membershipID, submitterID string, proposal *ChangeProposal) (*types.ChangeRequest, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.SubmitRecipeChangeRequest")
	defer span.End()

	// The membership-scoped lookup doubles as the tenancy check: a target
	// outside the caller's membership is indistinguishable from a missing one.
	recipe, err := s.storage.GetRecipeInMembership(ctx, membershipID, proposal.TargetID)
	if err != nil {
		return nil, err
	}

	return s.createChangeRequest(ctx, membershipID, submitterID, types.TargetRecipe, snapshot(recipe), proposal)
}

func (s *Service) SubmitIngredientChangeRequest(ctx context.Context, membershipID, submitterID string, proposal *ChangeProposal) (*types.ChangeRequest, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.SubmitIngredientChangeRequest")
	defer span.End()

	ingredient, err := s.storage.GetIngredientInMembership(ctx, membershipID, proposal.TargetID)
	if err != nil {
		return nil, err
	}

	return s.createChangeRequest(ctx, membershipID, submitterID, types.TargetIngredient, snapshot(ingredient), proposal)
}

func (s *Service) createChangeRequest(ctx context.Context, membershipID, submitterID, targetType string, current map[string]interface{}, proposal *ChangeProposal) (*types.ChangeRequest, error) {
	priority := proposal.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}

	return s.storage.CreateChangeRequest(ctx, &types.ChangeRequest{
		SubmittedBy:     submitterID,
		MembershipID:    membershipID,
		Type:            proposal.Type,
		TargetID:        proposal.TargetID,
		TargetType:      targetType,
		Title:           proposal.Title,
		Description:     proposal.Description,
		ProposedChanges: proposal.ProposedChanges,
		CurrentData:     current,
		Priority:        priority,
	})
}

// SubmitOrderRequest records a purchase proposal. Every item must reference
// an ingredient of the member's own membership.
func (s *Service) SubmitOrderRequest(ctx context.Context, membershipID, submitterID string, order *OrderProposal) (*types.OrderRequest, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.SubmitOrderRequest")
	defer span.End()

	ids := make([]string, 0, len(order.Items))
	seen := make(map[string]bool, len(order.Items))
	for _, item := range order.Items {
		if !seen[item.IngredientID] {
			seen[item.IngredientID] = true
			ids = append(ids, item.IngredientID)
		}
	}

	count, err := s.storage.CountIngredientsInMembership(ctx, membershipID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve order items: %w", err)
	}
	if count != len(ids) {
		return nil, ErrUnresolvedItems
	}

	urgency := order.Urgency
	if urgency == "" {
		urgency = types.PriorityMedium
	}

	return s.storage.CreateOrderRequest(ctx, &types.OrderRequest{
		SubmittedBy:           submitterID,
		MembershipID:          membershipID,
		Title:                 order.Title,
		Description:           order.Description,
		Items:                 order.Items,
		PreferredSupplierID:   order.PreferredSupplierID,
		Urgency:               urgency,
		RequestedDeliveryDate: order.RequestedDeliveryDate,
	})
}

func (s *Service) ListMyChangeRequests(ctx context.Context, userID string) ([]*types.ChangeRequest, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.ListMyChangeRequests")
	defer span.End()

	return s.storage.ListChangeRequestsBySubmitter(ctx, userID)
}

func (s *Service) ListMyOrderRequests(ctx context.Context, userID string) ([]*types.OrderRequest, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.ListMyOrderRequests")
	defer span.End()

	return s.storage.ListOrderRequestsBySubmitter(ctx, userID)
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.GetProfile")
	defer span.End()

	return s.storage.GetUserByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID, firstName, lastName string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.UpdateProfile")
	defer span.End()

	return s.storage.UpdateUserProfile(ctx, userID, firstName, lastName)
}

// snapshot flattens an entity into the jsonb map stored alongside a change
// request.
func snapshot(v interface{}) map[string]interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}
