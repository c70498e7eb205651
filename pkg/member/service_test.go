// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/supply-service/internal/storage"
	"github.com/canonical/supply-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package member -destination ./mock_member.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package member -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package member -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package member -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func setupService(ctrl *gomock.Controller) (*MockStorageInterface, *MockTracingInterface, *Service) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	return mockStorage, mockTracer, NewService(mockStorage, mockTracer, mockMonitor, mockLogger)
}

func expectServiceSpan(mockTracer *MockTracingInterface, name string) {
	mockTracer.EXPECT().Start(gomock.Any(), name).
		Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func TestService_GetRecipe(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetRecipeInMembership(gomock.Any(), "membership-1", "recipe-1").
					Return(&types.Recipe{ID: "recipe-1"}, nil)
			},
		},
		{
			name: "cross-tenant recipe is absent",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetRecipeInMembership(gomock.Any(), "membership-1", "recipe-1").
					Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage, mockTracer, s := setupService(ctrl)
			expectServiceSpan(mockTracer, "member.Service.GetRecipe")
			tc.setupMocks(mockStorage)

			recipe, err := s.GetRecipe(context.Background(), "membership-1", "recipe-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if recipe.ID != "recipe-1" {
				t.Errorf("expected recipe-1, got %q", recipe.ID)
			}
		})
	}
}

func TestService_ListIngredients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage, mockTracer, s := setupService(ctrl)
	expectServiceSpan(mockTracer, "member.Service.ListIngredients")
	mockStorage.EXPECT().ListIngredientsByMembership(gomock.Any(), "membership-1").
		Return([]*types.Ingredient{{ID: "ing-1"}, {ID: "ing-2"}}, nil)

	ingredients, err := s.ListIngredients(context.Background(), "membership-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ingredients) != 2 {
		t.Errorf("expected 2 ingredients, got %d", len(ingredients))
	}
}

func TestService_SubmitRecipeChangeRequest(t *testing.T) {
	membershipID := "membership-1"

	t.Run("snapshots the current target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage, mockTracer, s := setupService(ctrl)
		expectServiceSpan(mockTracer, "member.Service.SubmitRecipeChangeRequest")
		mockStorage.EXPECT().GetRecipeInMembership(gomock.Any(), membershipID, "recipe-1").
			Return(&types.Recipe{ID: "recipe-1", Name: "Minestrone", Servings: 4}, nil)
		mockStorage.EXPECT().CreateChangeRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cr *types.ChangeRequest) (*types.ChangeRequest, error) {
				if cr.TargetType != types.TargetRecipe {
					t.Errorf("expected target type %q, got %q", types.TargetRecipe, cr.TargetType)
				}
				if cr.MembershipID != membershipID || cr.SubmittedBy != "user-2" {
					t.Error("expected submitter scope to be stamped")
				}
				if cr.Priority != types.PriorityMedium {
					t.Errorf("expected default priority, got %q", cr.Priority)
				}
				if cr.CurrentData["name"] != "Minestrone" {
					t.Errorf("expected snapshot of the current recipe, got %+v", cr.CurrentData)
				}
				cr.ID = "cr-1"
				return cr, nil
			})

		created, err := s.SubmitRecipeChangeRequest(context.Background(), membershipID, "user-2", &ChangeProposal{
			Type:     "update",
			TargetID: "recipe-1",
			Title:    "Less salt",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Error("expected assigned ID")
		}
	})

	t.Run("explicit priority survives", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage, mockTracer, s := setupService(ctrl)
		expectServiceSpan(mockTracer, "member.Service.SubmitRecipeChangeRequest")
		mockStorage.EXPECT().GetRecipeInMembership(gomock.Any(), membershipID, "recipe-1").
			Return(&types.Recipe{ID: "recipe-1", Name: "Minestrone"}, nil)
		mockStorage.EXPECT().CreateChangeRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cr *types.ChangeRequest) (*types.ChangeRequest, error) {
				if cr.Priority != "high" {
					t.Errorf("expected explicit priority to survive, got %q", cr.Priority)
				}
				return cr, nil
			})

		_, err := s.SubmitRecipeChangeRequest(context.Background(), membershipID, "user-2", &ChangeProposal{
			Type:     "update",
			TargetID: "recipe-1",
			Title:    "Less salt",
			Priority: "high",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty target is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage, mockTracer, s := setupService(ctrl)
		expectServiceSpan(mockTracer, "member.Service.SubmitRecipeChangeRequest")
		mockStorage.EXPECT().GetRecipeInMembership(gomock.Any(), membershipID, "").
			Return(nil, storage.ErrNotFound)

		_, err := s.SubmitRecipeChangeRequest(context.Background(), membershipID, "user-2", &ChangeProposal{
			Type:  "update",
			Title: "Less salt",
		})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected %v, got %v", storage.ErrNotFound, err)
		}
	})

	t.Run("cross-tenant target is a 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage, mockTracer, s := setupService(ctrl)
		expectServiceSpan(mockTracer, "member.Service.SubmitRecipeChangeRequest")
		mockStorage.EXPECT().GetRecipeInMembership(gomock.Any(), membershipID, "recipe-9").
			Return(nil, storage.ErrNotFound)

		_, err := s.SubmitRecipeChangeRequest(context.Background(), membershipID, "user-2", &ChangeProposal{
			Type:     "update",
			TargetID: "recipe-9",
			Title:    "Less salt",
		})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected %v, got %v", storage.ErrNotFound, err)
		}
	})
}

func TestService_SubmitIngredientChangeRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage, mockTracer, s := setupService(ctrl)
	expectServiceSpan(mockTracer, "member.Service.SubmitIngredientChangeRequest")
	mockStorage.EXPECT().GetIngredientInMembership(gomock.Any(), "membership-1", "ing-1").
		Return(&types.Ingredient{ID: "ing-1", Name: "Basil"}, nil)
	mockStorage.EXPECT().CreateChangeRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cr *types.ChangeRequest) (*types.ChangeRequest, error) {
			if cr.TargetType != types.TargetIngredient {
				t.Errorf("expected target type %q, got %q", types.TargetIngredient, cr.TargetType)
			}
			return cr, nil
		})

	_, err := s.SubmitIngredientChangeRequest(context.Background(), "membership-1", "user-2", &ChangeProposal{
		Type:     "update",
		TargetID: "ing-1",
		Title:    "Switch to fresh basil",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_SubmitOrderRequest(t *testing.T) {
	membershipID := "membership-1"
	items := []types.OrderItem{
		{IngredientID: "ing-1", Quantity: 2},
		{IngredientID: "ing-2", Quantity: 1},
		{IngredientID: "ing-1", Quantity: 3},
	}

	t.Run("deduplicates ingredient lookups", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage, mockTracer, s := setupService(ctrl)
		expectServiceSpan(mockTracer, "member.Service.SubmitOrderRequest")
		mockStorage.EXPECT().CountIngredientsInMembership(gomock.Any(), membershipID, []string{"ing-1", "ing-2"}).
			Return(2, nil)
		mockStorage.EXPECT().CreateOrderRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, or *types.OrderRequest) (*types.OrderRequest, error) {
				if or.Urgency != types.PriorityMedium {
					t.Errorf("expected default urgency, got %q", or.Urgency)
				}
				if len(or.Items) != 3 {
					t.Errorf("expected all items to be kept, got %d", len(or.Items))
				}
				or.ID = "or-1"
				return or, nil
			})

		created, err := s.SubmitOrderRequest(context.Background(), membershipID, "user-2", &OrderProposal{
			Title: "Weekly produce",
			Items: items,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Error("expected assigned ID")
		}
	})

	t.Run("unresolvable ingredient rejects the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage, mockTracer, s := setupService(ctrl)
		expectServiceSpan(mockTracer, "member.Service.SubmitOrderRequest")
		mockStorage.EXPECT().CountIngredientsInMembership(gomock.Any(), membershipID, []string{"ing-1", "ing-2"}).
			Return(1, nil)

		_, err := s.SubmitOrderRequest(context.Background(), membershipID, "user-2", &OrderProposal{
			Title: "Weekly produce",
			Items: items,
		})
		if !errors.Is(err, ErrUnresolvedItems) {
			t.Errorf("expected %v, got %v", ErrUnresolvedItems, err)
		}
	})

	t.Run("storage error wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dbErr := errors.New("db error")

		mockStorage, mockTracer, s := setupService(ctrl)
		expectServiceSpan(mockTracer, "member.Service.SubmitOrderRequest")
		mockStorage.EXPECT().CountIngredientsInMembership(gomock.Any(), membershipID, gomock.Any()).
			Return(0, dbErr)

		_, err := s.SubmitOrderRequest(context.Background(), membershipID, "user-2", &OrderProposal{
			Title: "Weekly produce",
			Items: items,
		})
		if !errors.Is(err, dbErr) {
			t.Errorf("expected wrapped %v, got %v", dbErr, err)
		}
	})
}

func TestService_ListMyChangeRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage, mockTracer, s := setupService(ctrl)
	expectServiceSpan(mockTracer, "member.Service.ListMyChangeRequests")
	mockStorage.EXPECT().ListChangeRequestsBySubmitter(gomock.Any(), "user-2").
		Return([]*types.ChangeRequest{{ID: "cr-1"}}, nil)

	requests, err := s.ListMyChangeRequests(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requests) != 1 {
		t.Errorf("expected 1 request, got %d", len(requests))
	}
}

func TestService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage, mockTracer, s := setupService(ctrl)
	expectServiceSpan(mockTracer, "member.Service.UpdateProfile")
	mockStorage.EXPECT().UpdateUserProfile(gomock.Any(), "user-2", "Jamie", "Cook").
		Return(&types.User{ID: "user-2", FirstName: "Jamie", LastName: "Cook"}, nil)

	user, err := s.UpdateProfile(context.Background(), "user-2", "Jamie", "Cook")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.FirstName != "Jamie" {
		t.Errorf("expected updated first name, got %q", user.FirstName)
	}
}
