// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/monitoring"
	"github.com/canonical/supply-service/internal/storage"
	"github.com/canonical/supply-service/internal/tracing"
	"github.com/canonical/supply-service/internal/types"
)

var (
	ErrUnknownSupplier   = errors.New("supplier not found")
	ErrUnknownIngredient = errors.New("unknown ingredient reference")
)

// IngredientCost is one line of a recipe cost breakdown.
type IngredientCost struct {
	IngredientID string  `json:"ingredientId"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Cost         float64 `json:"cost"`
}

// RecipeCost is the computed cost of a recipe over its resolvable
// ingredients.
type RecipeCost struct {
	RecipeID       string           `json:"recipeId"`
	Name           string           `json:"name"`
	Servings       int              `json:"servings"`
	TotalCost      float64          `json:"totalCost"`
	CostPerServing float64          `json:"costPerServing"`
	Breakdown      []IngredientCost `json:"breakdown"`
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

func (s *Service) CreateSupplier(ctx context.Context, ownerID string, sp *types.Supplier) (*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.CreateSupplier")
	defer span.End()

	sp.OwnerID = ownerID
	return s.storage.CreateSupplier(ctx, sp)
}

func (s *Service) GetSupplier(ctx context.Context, ownerID, id string) (*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.GetSupplier")
	defer span.End()

	return s.storage.GetSupplier(ctx, ownerID, id)
}

func (s *Service) ListSuppliers(ctx context.Context, ownerID string) ([]*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListSuppliers")
	defer span.End()

	return s.storage.ListSuppliers(ctx, ownerID)
}

func (s *Service) UpdateSupplier(ctx context.Context, ownerID string, sp *types.Supplier) (*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.UpdateSupplier")
	defer span.End()

	sp.OwnerID = ownerID
	return s.storage.UpdateSupplier(ctx, sp)
}

func (s *Service) DeleteSupplier(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.DeleteSupplier")
	defer span.End()

	return s.storage.DeleteSupplier(ctx, ownerID, id)
}

// CreateIngredient validates the supplier reference against the caller's own
// suppliers before inserting.
func (s *Service) CreateIngredient(ctx context.Context, ownerID string, ing *types.Ingredient) (*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.CreateIngredient")
	defer span.End()

	ing.OwnerID = ownerID
	if err := s.checkSupplierRef(ctx, ownerID, ing.SupplierID); err != nil {
		return nil, err
	}

	return s.storage.CreateIngredient(ctx, ing)
}

func (s *Service) GetIngredient(ctx context.Context, ownerID, id string) (*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.GetIngredient")
	defer span.End()

	return s.storage.GetIngredient(ctx, ownerID, id)
}

func (s *Service) ListIngredients(ctx context.Context, ownerID string) ([]*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListIngredients")
	defer span.End()

	return s.storage.ListIngredients(ctx, ownerID)
}

func (s *Service) ListIngredientsBySupplier(ctx context.Context, ownerID, supplierID string) ([]*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListIngredientsBySupplier")
	defer span.End()

	if err := s.checkSupplierRef(ctx, ownerID, &supplierID); err != nil {
		return nil, err
	}

	return s.storage.ListIngredientsBySupplier(ctx, ownerID, supplierID)
}

func (s *Service) ListIngredientsByCategory(ctx context.Context, ownerID, category string) ([]*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListIngredientsByCategory")
	defer span.End()

	return s.storage.ListIngredientsByCategory(ctx, ownerID, category)
}

func (s *Service) IngredientCategories(ctx context.Context, ownerID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.IngredientCategories")
	defer span.End()

	return s.storage.DistinctIngredientCategories(ctx, ownerID)
}

func (s *Service) IngredientUnits(ctx context.Context, ownerID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.IngredientUnits")
	defer span.End()

	return s.storage.DistinctIngredientUnits(ctx, ownerID)
}

func (s *Service) UpdateIngredient(ctx context.Context, ownerID string, ing *types.Ingredient) (*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.UpdateIngredient")
	defer span.End()

	ing.OwnerID = ownerID
	if err := s.checkSupplierRef(ctx, ownerID, ing.SupplierID); err != nil {
		return nil, err
	}

	return s.storage.UpdateIngredient(ctx, ing)
}

func (s *Service) DeleteIngredient(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.DeleteIngredient")
	defer span.End()

	return s.storage.DeleteIngredient(ctx, ownerID, id)
}

// CreateRecipe validates every ingredient reference against the caller's own
// catalog before inserting.
func (s *Service) CreateRecipe(ctx context.Context, ownerID string, r *types.Recipe) (*types.Recipe, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.CreateRecipe")
	defer span.End()

	r.OwnerID = ownerID
	if err := s.checkIngredientRefs(ctx, ownerID, r.Ingredients); err != nil {
		return nil, err
	}
	if r.Status == "" {
		r.Status = "active"
	}

	return s.storage.CreateRecipe(ctx, r)
}

func (s *Service) GetRecipe(ctx context.Context, ownerID, id string) (*types.Recipe, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.GetRecipe")
	defer span.End()

	return s.storage.GetRecipe(ctx, ownerID, id)
}

func (s *Service) ListRecipes(ctx context.Context, ownerID string) ([]*types.Recipe, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListRecipes")
	defer span.End()

	return s.storage.ListRecipes(ctx, ownerID)
}

func (s *Service) RecipeCategories(ctx context.Context, ownerID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.RecipeCategories")
	defer span.End()

	return s.storage.DistinctRecipeCategories(ctx, ownerID)
}

func (s *Service) UpdateRecipe(ctx context.Context, ownerID string, r *types.Recipe) (*types.Recipe, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.UpdateRecipe")
	defer span.End()

	r.OwnerID = ownerID
	if err := s.checkIngredientRefs(ctx, ownerID, r.Ingredients); err != nil {
		return nil, err
	}

	return s.storage.UpdateRecipe(ctx, r)
}

func (s *Service) DeleteRecipe(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.DeleteRecipe")
	defer span.End()

	return s.storage.DeleteRecipe(ctx, ownerID, id)
}

// GetRecipeCost computes the ingredient cost of a recipe. Ingredient lines
// that no longer resolve to a catalog entry are left out of the total.
func (s *Service) GetRecipeCost(ctx context.Context, ownerID, id string) (*RecipeCost, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.GetRecipeCost")
	defer span.End()

	recipe, err := s.storage.GetRecipe(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	catalog, err := s.storage.ListIngredients(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredient catalog: %w", err)
	}

	byID := make(map[string]*types.Ingredient, len(catalog))
	for _, ing := range catalog {
		byID[ing.ID] = ing
	}

	cost := &RecipeCost{
		RecipeID:  recipe.ID,
		Name:      recipe.Name,
		Servings:  recipe.Servings,
		Breakdown: []IngredientCost{},
	}

	for _, line := range recipe.Ingredients {
		ing, ok := byID[line.IngredientID]
		if !ok {
			continue
		}

		lineCost := ing.PricePerUnit * line.Quantity
		cost.TotalCost += lineCost
		cost.Breakdown = append(cost.Breakdown, IngredientCost{
			IngredientID: ing.ID,
			Name:         ing.Name,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
			PricePerUnit: ing.PricePerUnit,
			Cost:         lineCost,
		})
	}

	if recipe.Servings > 0 {
		cost.CostPerServing = cost.TotalCost / float64(recipe.Servings)
	}

	return cost, nil
}

func (s *Service) checkSupplierRef(ctx context.Context, ownerID string, supplierID *string) error {
	if supplierID == nil || *supplierID == "" {
		return nil
	}

	if _, err := s.storage.GetSupplier(ctx, ownerID, *supplierID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUnknownSupplier
		}
		return err
	}
	return nil
}

func (s *Service) checkIngredientRefs(ctx context.Context, ownerID string, lines []types.RecipeIngredient) error {
	if len(lines) == 0 {
		return nil
	}

	catalog, err := s.storage.ListIngredients(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to load ingredient catalog: %w", err)
	}

	known := make(map[string]bool, len(catalog))
	for _, ing := range catalog {
		known[ing.ID] = true
	}

	for _, line := range lines {
		if !known[line.IngredientID] {
			return ErrUnknownIngredient
		}
	}
	return nil
}
