// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"

	"github.com/canonical/supply-service/internal/types"
)

type ServiceInterface interface {
	CreateSupplier(ctx context.Context, ownerID string, sp *types.Supplier) (*types.Supplier, error)
	GetSupplier(ctx context.Context, ownerID, id string) (*types.Supplier, error)
	ListSuppliers(ctx context.Context, ownerID string) ([]*types.Supplier, error)
	UpdateSupplier(ctx context.Context, ownerID string, sp *types.Supplier) (*types.Supplier, error)
	DeleteSupplier(ctx context.Context, ownerID, id string) error

	CreateIngredient(ctx context.Context, ownerID string, ing *types.Ingredient) (*types.Ingredient, error)
	GetIngredient(ctx context.Context, ownerID, id string) (*types.Ingredient, error)
	ListIngredients(ctx context.Context, ownerID string) ([]*types.Ingredient, error)
	ListIngredientsBySupplier(ctx context.Context, ownerID, supplierID string) ([]*types.Ingredient, error)
	ListIngredientsByCategory(ctx context.Context, ownerID, category string) ([]*types.Ingredient, error)
	IngredientCategories(ctx context.Context, ownerID string) ([]string, error)
	IngredientUnits(ctx context.Context, ownerID string) ([]string, error)
	UpdateIngredient(ctx context.Context, ownerID string, ing *types.Ingredient) (*types.Ingredient, error)
	DeleteIngredient(ctx context.Context, ownerID, id string) error

	CreateRecipe(ctx context.Context, ownerID string, r *types.Recipe) (*types.Recipe, error)
	GetRecipe(ctx context.Context, ownerID, id string) (*types.Recipe, error)
	ListRecipes(ctx context.Context, ownerID string) ([]*types.Recipe, error)
	RecipeCategories(ctx context.Context, ownerID string) ([]string, error)
	UpdateRecipe(ctx context.Context, ownerID string, r *types.Recipe) (*types.Recipe, error)
	DeleteRecipe(ctx context.Context, ownerID, id string) error
	GetRecipeCost(ctx context.Context, ownerID, id string) (*RecipeCost, error)
}

type StorageInterface interface {
	CreateSupplier(context.Context, *types.Supplier) (*types.Supplier, error)
	GetSupplier(ctx context.Context, ownerID, id string) (*types.Supplier, error)
	ListSuppliers(ctx context.Context, ownerID string) ([]*types.Supplier, error)
	UpdateSupplier(context.Context, *types.Supplier) (*types.Supplier, error)
	DeleteSupplier(ctx context.Context, ownerID, id string) error

	CreateIngredient(context.Context, *types.Ingredient) (*types.Ingredient, error)
	GetIngredient(ctx context.Context, ownerID, id string) (*types.Ingredient, error)
	ListIngredients(ctx context.Context, ownerID string) ([]*types.Ingredient, error)
	ListIngredientsBySupplier(ctx context.Context, ownerID, supplierID string) ([]*types.Ingredient, error)
	ListIngredientsByCategory(ctx context.Context, ownerID, category string) ([]*types.Ingredient, error)
	DistinctIngredientCategories(ctx context.Context, ownerID string) ([]string, error)
	DistinctIngredientUnits(ctx context.Context, ownerID string) ([]string, error)
	UpdateIngredient(context.Context, *types.Ingredient) (*types.Ingredient, error)
	DeleteIngredient(ctx context.Context, ownerID, id string) error

	CreateRecipe(context.Context, *types.Recipe) (*types.Recipe, error)
	GetRecipe(ctx context.Context, ownerID, id string) (*types.Recipe, error)
	ListRecipes(ctx context.Context, ownerID string) ([]*types.Recipe, error)
	DistinctRecipeCategories(ctx context.Context, ownerID string) ([]string, error)
	UpdateRecipe(context.Context, *types.Recipe) (*types.Recipe, error)
	DeleteRecipe(ctx context.Context, ownerID, id string) error
}
