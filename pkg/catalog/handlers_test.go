// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/supply-service/internal/storage"
	"github.com/canonical/supply-service/internal/types"
	"github.com/canonical/supply-service/pkg/authentication"
)

func setupHandler(ctrl *gomock.Controller) (*MockServiceInterface, *MockTracingInterface, *MockLoggerInterface, *chi.Mux) {
	mockSvc := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(mockSvc, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	return mockSvc, mockTracer, mockLogger, mux
}

// expectSpan propagates the incoming context so the handler still sees the
// principal the request carries.
func expectSpan(mockTracer *MockTracingInterface, name string) {
	mockTracer.EXPECT().Start(gomock.Any(), name).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		})
}

// ownerRequest carries the principal the authentication middleware would have
// attached for a catalog owner.
func ownerRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := authentication.WithPrincipal(req.Context(), &authentication.Principal{
		ID:   "owner-1",
		Role: types.RoleUser,
	})
	return req.WithContext(ctx)
}

func TestHandler_Suppliers(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.createSupplier")
		mockSvc.EXPECT().CreateSupplier(gomock.Any(), "owner-1", gomock.Any()).
			Return(&types.Supplier{ID: "sup-1", Name: "Verde Farms"}, nil)

		body := `{"name": "Verde Farms", "currency": "EUR"}`
		req := ownerRequest(http.MethodPost, "/api/suppliers/", strings.NewReader(body))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("create without name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.createSupplier")

		req := ownerRequest(http.MethodPost, "/api/suppliers/", strings.NewReader(`{"currency": "EUR"}`))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.getSupplier")
		mockSvc.EXPECT().GetSupplier(gomock.Any(), "owner-1", "sup-9").Return(nil, storage.ErrNotFound)

		req := ownerRequest(http.MethodGet, "/api/suppliers/sup-9", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})

	t.Run("list empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.listSuppliers")
		mockSvc.EXPECT().ListSuppliers(gomock.Any(), "owner-1").Return(nil, nil)

		req := ownerRequest(http.MethodGet, "/api/suppliers/", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		if strings.TrimSpace(w.Body.String()) == "null" {
			t.Error("expected [] for an empty list, got null")
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.deleteSupplier")
		mockSvc.EXPECT().DeleteSupplier(gomock.Any(), "owner-1", "sup-9").Return(storage.ErrNotFound)

		req := ownerRequest(http.MethodDelete, "/api/suppliers/sup-9", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.listSuppliers")

		req := httptest.NewRequest(http.MethodGet, "/api/suppliers/", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", w.Code)
		}
	})
}

func TestHandler_Ingredients(t *testing.T) {
	t.Run("create with unknown supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.createIngredient")
		mockSvc.EXPECT().CreateIngredient(gomock.Any(), "owner-1", gomock.Any()).
			Return(nil, ErrUnknownSupplier)

		body := `{"name": "Basil", "unit": "kg", "supplier": "sup-9"}`
		req := ownerRequest(http.MethodPost, "/api/ingredients/", strings.NewReader(body))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("create defaults availability", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.createIngredient")
		mockSvc.EXPECT().CreateIngredient(gomock.Any(), "owner-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, ing *types.Ingredient) (*types.Ingredient, error) {
				if !ing.Availability {
					t.Error("expected availability to default to true")
				}
				ing.ID = "ing-1"
				return ing, nil
			})

		body := `{"name": "Basil", "unit": "kg", "price_per_unit": 8.5}`
		req := ownerRequest(http.MethodPost, "/api/ingredients/", strings.NewReader(body))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing unit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.createIngredient")

		req := ownerRequest(http.MethodPost, "/api/ingredients/", strings.NewReader(`{"name": "Basil"}`))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})

	t.Run("meta categories resolves before the id route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.ingredientCategories")
		mockSvc.EXPECT().IngredientCategories(gomock.Any(), "owner-1").
			Return([]string{"produce"}, nil)

		req := ownerRequest(http.MethodGet, "/api/ingredients/meta/categories", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var categories []string
		if err := json.Unmarshal(w.Body.Bytes(), &categories); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(categories) != 1 || categories[0] != "produce" {
			t.Errorf("unexpected categories: %v", categories)
		}
	})

	t.Run("meta units", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.ingredientUnits")
		mockSvc.EXPECT().IngredientUnits(gomock.Any(), "owner-1").Return(nil, nil)

		req := ownerRequest(http.MethodGet, "/api/ingredients/meta/units", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		if strings.TrimSpace(w.Body.String()) == "null" {
			t.Error("expected [] for an empty list, got null")
		}
	})

	t.Run("by supplier not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.listIngredientsBySupplier")
		mockSvc.EXPECT().ListIngredientsBySupplier(gomock.Any(), "owner-1", "sup-9").
			Return(nil, ErrUnknownSupplier)

		req := ownerRequest(http.MethodGet, "/api/ingredients/supplier/sup-9", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})

	t.Run("by category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.listIngredientsByCategory")
		mockSvc.EXPECT().ListIngredientsByCategory(gomock.Any(), "owner-1", "produce").
			Return([]*types.Ingredient{{ID: "ing-1"}}, nil)

		req := ownerRequest(http.MethodGet, "/api/ingredients/category/produce", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.updateIngredient")
		mockSvc.EXPECT().UpdateIngredient(gomock.Any(), "owner-1", gomock.Any()).
			Return(nil, storage.ErrNotFound)

		body := `{"name": "Basil", "unit": "kg"}`
		req := ownerRequest(http.MethodPut, "/api/ingredients/ing-9", strings.NewReader(body))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})
}

func TestHandler_Recipes(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.createRecipe")
		mockSvc.EXPECT().CreateRecipe(gomock.Any(), "owner-1", gomock.Any()).
			Return(&types.Recipe{ID: "recipe-1", Name: "Minestrone"}, nil)

		body := `{"name": "Minestrone", "servings": 4, "ingredients": [{"ingredient": "ing-1", "quantity": 2, "unit": "kg"}]}`
		req := ownerRequest(http.MethodPost, "/api/recipes/", strings.NewReader(body))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("create with unknown ingredient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.createRecipe")
		mockSvc.EXPECT().CreateRecipe(gomock.Any(), "owner-1", gomock.Any()).
			Return(nil, ErrUnknownIngredient)

		body := `{"name": "Minestrone", "ingredients": [{"ingredient": "ing-9", "quantity": 2}]}`
		req := ownerRequest(http.MethodPost, "/api/recipes/", strings.NewReader(body))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		// A dangling reference in the payload is the caller's mistake, not an
		// absent resource.
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.getRecipeCost")
		mockSvc.EXPECT().GetRecipeCost(gomock.Any(), "owner-1", "recipe-1").
			Return(&RecipeCost{RecipeID: "recipe-1", TotalCost: 11.25, CostPerServing: 2.8125}, nil)

		req := ownerRequest(http.MethodGet, "/api/recipes/recipe-1/cost", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var cost RecipeCost
		if err := json.Unmarshal(w.Body.Bytes(), &cost); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if cost.TotalCost != 11.25 {
			t.Errorf("expected total 11.25, got %v", cost.TotalCost)
		}
	})

	t.Run("cost for unknown recipe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.getRecipeCost")
		mockSvc.EXPECT().GetRecipeCost(gomock.Any(), "owner-1", "recipe-9").
			Return(nil, storage.ErrNotFound)

		req := ownerRequest(http.MethodGet, "/api/recipes/recipe-9/cost", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})

	t.Run("meta categories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, _, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.recipeCategories")
		mockSvc.EXPECT().RecipeCategories(gomock.Any(), "owner-1").Return([]string{"soup"}, nil)

		req := ownerRequest(http.MethodGet, "/api/recipes/meta/categories", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc, mockTracer, mockLogger, mux := setupHandler(ctrl)
		expectSpan(mockTracer, "catalog.API.listRecipes")
		mockSvc.EXPECT().ListRecipes(gomock.Any(), "owner-1").Return(nil, errors.New("db error"))
		mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())

		req := ownerRequest(http.MethodGet, "/api/recipes/", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", w.Code)
		}
	})
}
