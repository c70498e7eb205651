// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/supply-service/internal/storage"
	"github.com/canonical/supply-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_catalog.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

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

func TestService_CreateSupplier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage, mockTracer, s := setupService(ctrl)
	expectServiceSpan(mockTracer, "catalog.Service.CreateSupplier")
	mockStorage.EXPECT().CreateSupplier(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sp *types.Supplier) (*types.Supplier, error) {
			if sp.OwnerID != "owner-1" {
				t.Errorf("expected owner to be stamped, got %q", sp.OwnerID)
			}
			sp.ID = "sup-1"
			return sp, nil
		})

	created, err := s.CreateSupplier(context.Background(), "owner-1", &types.Supplier{Name: "Verde Farms"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected assigned ID")
	}
}

func TestService_CreateIngredient(t *testing.T) {
	supplierID := "sup-1"

	testCases := []struct {
		name        string
		ingredient  *types.Ingredient
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:       "without supplier reference",
			ingredient: &types.Ingredient{Name: "Basil", Unit: "kg"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateIngredient(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, ing *types.Ingredient) (*types.Ingredient, error) {
						if ing.OwnerID != "owner-1" {
							t.Errorf("expected owner to be stamped, got %q", ing.OwnerID)
						}
						return ing, nil
					})
			},
		},
		{
			name:       "valid supplier reference",
			ingredient: &types.Ingredient{Name: "Basil", Unit: "kg", SupplierID: &supplierID},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSupplier(gomock.Any(), "owner-1", supplierID).
					Return(&types.Supplier{ID: supplierID}, nil)
				mockStorage.EXPECT().CreateIngredient(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ing *types.Ingredient) (*types.Ingredient, error) {
						return ing, nil
					})
			},
		},
		{
			name:       "unknown supplier",
			ingredient: &types.Ingredient{Name: "Basil", Unit: "kg", SupplierID: &supplierID},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSupplier(gomock.Any(), "owner-1", supplierID).
					Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrUnknownSupplier,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage, mockTracer, s := setupService(ctrl)
			expectServiceSpan(mockTracer, "catalog.Service.CreateIngredient")
			tc.setupMocks(mockStorage)

			_, err := s.CreateIngredient(context.Background(), "owner-1", tc.ingredient)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_ListIngredientsBySupplier(t *testing.T) {
	t.Run("unknown supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage, mockTracer, s := setupService(ctrl)
		expectServiceSpan(mockTracer, "catalog.Service.ListIngredientsBySupplier")
		mockStorage.EXPECT().GetSupplier(gomock.Any(), "owner-1", "sup-9").Return(nil, storage.ErrNotFound)

		if _, err := s.ListIngredientsBySupplier(context.Background(), "owner-1", "sup-9"); !errors.Is(err, ErrUnknownSupplier) {
			t.Errorf("expected %v, got %v", ErrUnknownSupplier, err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage, mockTracer, s := setupService(ctrl)
		expectServiceSpan(mockTracer, "catalog.Service.ListIngredientsBySupplier")
		mockStorage.EXPECT().GetSupplier(gomock.Any(), "owner-1", "sup-1").
			Return(&types.Supplier{ID: "sup-1"}, nil)
		mockStorage.EXPECT().ListIngredientsBySupplier(gomock.Any(), "owner-1", "sup-1").
			Return([]*types.Ingredient{{ID: "ing-1"}}, nil)

		ingredients, err := s.ListIngredientsBySupplier(context.Background(), "owner-1", "sup-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ingredients) != 1 {
			t.Errorf("expected 1 ingredient, got %d", len(ingredients))
		}
	})
}

func TestService_CreateRecipe(t *testing.T) {
	catalog := []*types.Ingredient{
		{ID: "ing-1", Name: "Tomato"},
		{ID: "ing-2", Name: "Basil"},
	}

	testCases := []struct {
		name        string
		recipe      *types.Recipe
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "references resolve and status defaults",
			recipe: &types.Recipe{
				Name: "Minestrone",
				Ingredients: []types.RecipeIngredient{
					{IngredientID: "ing-1", Quantity: 2},
					{IngredientID: "ing-2", Quantity: 0.5},
				},
			},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListIngredients(gomock.Any(), "owner-1").Return(catalog, nil)
				mockStorage.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.Recipe) (*types.Recipe, error) {
						if r.OwnerID != "owner-1" {
							t.Errorf("expected owner to be stamped, got %q", r.OwnerID)
						}
						if r.Status != "active" {
							t.Errorf("expected default status active, got %q", r.Status)
						}
						return r, nil
					})
			},
		},
		{
			name: "unknown ingredient reference",
			recipe: &types.Recipe{
				Name: "Minestrone",
				Ingredients: []types.RecipeIngredient{
					{IngredientID: "ing-9", Quantity: 1},
				},
			},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListIngredients(gomock.Any(), "owner-1").Return(catalog, nil)
			},
			expectedErr: ErrUnknownIngredient,
		},
		{
			name:   "no ingredients skips the catalog load",
			recipe: &types.Recipe{Name: "Notes only"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.Recipe) (*types.Recipe, error) {
						return r, nil
					})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage, mockTracer, s := setupService(ctrl)
			expectServiceSpan(mockTracer, "catalog.Service.CreateRecipe")
			tc.setupMocks(mockStorage)

			_, err := s.CreateRecipe(context.Background(), "owner-1", tc.recipe)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_GetRecipeCost(t *testing.T) {
	recipe := &types.Recipe{
		ID:       "recipe-1",
		Name:     "Minestrone",
		Servings: 4,
		Ingredients: []types.RecipeIngredient{
			{IngredientID: "ing-1", Quantity: 2, Unit: "kg"},
			{IngredientID: "ing-2", Quantity: 0.5, Unit: "kg"},
			{IngredientID: "ing-gone", Quantity: 1, Unit: "kg"},
		},
	}
	catalog := []*types.Ingredient{
		{ID: "ing-1", Name: "Tomato", PricePerUnit: 3.50},
		{ID: "ing-2", Name: "Basil", PricePerUnit: 8.50},
	}

	t.Run("totals over resolvable lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage, mockTracer, s := setupService(ctrl)
		expectServiceSpan(mockTracer, "catalog.Service.GetRecipeCost")
		mockStorage.EXPECT().GetRecipe(gomock.Any(), "owner-1", "recipe-1").Return(recipe, nil)
		mockStorage.EXPECT().ListIngredients(gomock.Any(), "owner-1").Return(catalog, nil)

		cost, err := s.GetRecipeCost(context.Background(), "owner-1", "recipe-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 2*3.50 + 0.5*8.50; the dangling line is left out.
		if math.Abs(cost.TotalCost-11.25) > 1e-9 {
			t.Errorf("expected total 11.25, got %v", cost.TotalCost)
		}
		if math.Abs(cost.CostPerServing-2.8125) > 1e-9 {
			t.Errorf("expected cost per serving 2.8125, got %v", cost.CostPerServing)
		}
		if len(cost.Breakdown) != 2 {
			t.Errorf("expected 2 breakdown lines, got %d", len(cost.Breakdown))
		}
	})

	t.Run("zero servings leaves per-serving at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		flat := &types.Recipe{
			ID:          "recipe-2",
			Name:        "Stock",
			Servings:    0,
			Ingredients: []types.RecipeIngredient{{IngredientID: "ing-1", Quantity: 1}},
		}

		mockStorage, mockTracer, s := setupService(ctrl)
		expectServiceSpan(mockTracer, "catalog.Service.GetRecipeCost")
		mockStorage.EXPECT().GetRecipe(gomock.Any(), "owner-1", "recipe-2").Return(flat, nil)
		mockStorage.EXPECT().ListIngredients(gomock.Any(), "owner-1").Return(catalog, nil)

		cost, err := s.GetRecipeCost(context.Background(), "owner-1", "recipe-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cost.CostPerServing != 0 {
			t.Errorf("expected cost per serving 0, got %v", cost.CostPerServing)
		}
	})

	t.Run("unknown recipe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage, mockTracer, s := setupService(ctrl)
		expectServiceSpan(mockTracer, "catalog.Service.GetRecipeCost")
		mockStorage.EXPECT().GetRecipe(gomock.Any(), "owner-1", "recipe-9").Return(nil, storage.ErrNotFound)

		if _, err := s.GetRecipeCost(context.Background(), "owner-1", "recipe-9"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected %v, got %v", storage.ErrNotFound, err)
		}
	})
}

func TestService_DeleteSupplier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage, mockTracer, s := setupService(ctrl)
	expectServiceSpan(mockTracer, "catalog.Service.DeleteSupplier")
	mockStorage.EXPECT().DeleteSupplier(gomock.Any(), "owner-1", "sup-1").Return(storage.ErrNotFound)

	if err := s.DeleteSupplier(context.Background(), "owner-1", "sup-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected %v, got %v", storage.ErrNotFound, err)
	}
}

func TestService_IngredientMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage, mockTracer, s := setupService(ctrl)
	expectServiceSpan(mockTracer, "catalog.Service.IngredientCategories")
	expectServiceSpan(mockTracer, "catalog.Service.IngredientUnits")
	mockStorage.EXPECT().DistinctIngredientCategories(gomock.Any(), "owner-1").
		Return([]string{"produce", "dairy"}, nil)
	mockStorage.EXPECT().DistinctIngredientUnits(gomock.Any(), "owner-1").
		Return([]string{"kg", "l"}, nil)

	categories, err := s.IngredientCategories(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(categories))
	}

	units, err := s.IngredientUnits(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(units) != 2 {
		t.Errorf("expected 2 units, got %d", len(units))
	}
}
