// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"context"

	"github.com/canonical/supply-service/internal/types"
)

type ServiceInterface interface {
	ListRecipes(ctx context.Context, membershipID string) ([]*types.Recipe, error)
	GetRecipe(ctx context.Context, membershipID, id string) (*types.Recipe, error)
	ListIngredients(ctx context.Context, membershipID string) ([]*types.Ingredient, error)
	GetIngredient(ctx context.Context, membershipID, id string) (*types.Ingredient, error)

	SubmitRecipeChangeRequest(ctx context.Context, membershipID, submitterID string, proposal *ChangeProposal) (*types.ChangeRequest, error)
	SubmitIngredientChangeRequest(ctx context.Context, membershipID, submitterID string, proposal *ChangeProposal) (*types.ChangeRequest, error)
	SubmitOrderRequest(ctx context.Context, membershipID, submitterID string, order *OrderProposal) (*types.OrderRequest, error)
	ListMyChangeRequests(ctx context.Context, userID string) ([]*types.ChangeRequest, error)
	ListMyOrderRequests(ctx context.Context, userID string) ([]*types.OrderRequest, error)

	GetProfile(ctx context.Context, userID string) (*types.User, error)
	UpdateProfile(ctx context.Context, userID, firstName, lastName string) (*types.User, error)
}

type StorageInterface interface {
	ListRecipesByMembership(ctx context.Context, membershipID string) ([]*types.Recipe, error)
	GetRecipeInMembership(ctx context.Context, membershipID, id string) (*types.Recipe, error)
	ListIngredientsByMembership(ctx context.Context, membershipID string) ([]*types.Ingredient, error)
	GetIngredientInMembership(ctx context.Context, membershipID, id string) (*types.Ingredient, error)
	CountIngredientsInMembership(ctx context.Context, membershipID string, ids []string) (int, error)

	CreateChangeRequest(context.Context, *types.ChangeRequest) (*types.ChangeRequest, error)
	ListChangeRequestsBySubmitter(ctx context.Context, userID string) ([]*types.ChangeRequest, error)
	CreateOrderRequest(context.Context, *types.OrderRequest) (*types.OrderRequest, error)
	ListOrderRequestsBySubmitter(ctx context.Context, userID string) ([]*types.OrderRequest, error)

	GetUserByID(context.Context, string) (*types.User, error)
	UpdateUserProfile(ctx context.Context, userID, firstName, lastName string) (*types.User, error)
}
