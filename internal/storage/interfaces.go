// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/supply-service/internal/types"
)

type StorageInterface interface {
	CreateMembership(context.Context, *types.Membership) (*types.Membership, error)
	GetMembershipByID(context.Context, string) (*types.Membership, error)
	ListMemberships(context.Context) ([]*types.Membership, error)
	UpdateMembership(context.Context, *types.Membership) (*types.Membership, error)
	DeleteMembership(context.Context, string) error

	CreateUser(context.Context, *types.User) (*types.User, error)
	InviteTeamMember(ctx context.Context, u *types.User, limit int) (*types.User, error)
	GetUserByID(context.Context, string) (*types.User, error)
	GetUserByEmail(context.Context, string) (*types.User, error)
	GetTeamMember(ctx context.Context, membershipID, userID string) (*types.User, error)
	ListTeamMembers(ctx context.Context, membershipID string) ([]*types.User, error)
	CountActiveTeamMembers(ctx context.Context, membershipID string) (int, error)
	UpdateTeamMemberPermissions(ctx context.Context, membershipID, userID string, p types.Permissions) (*types.User, error)
	DeactivateTeamMember(ctx context.Context, membershipID, userID string) error
	UpdateUserPassword(ctx context.Context, userID, passwordHash string) error
	UpdateUserProfile(ctx context.Context, userID, firstName, lastName string) (*types.User, error)
	SetUserLastLogin(ctx context.Context, userID string) error

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

	ListRecipesByMembership(ctx context.Context, membershipID string) ([]*types.Recipe, error)
	GetRecipeInMembership(ctx context.Context, membershipID, id string) (*types.Recipe, error)
	ListIngredientsByMembership(ctx context.Context, membershipID string) ([]*types.Ingredient, error)
	GetIngredientInMembership(ctx context.Context, membershipID, id string) (*types.Ingredient, error)
	CountIngredientsInMembership(ctx context.Context, membershipID string, ids []string) (int, error)

	CreateChangeRequest(context.Context, *types.ChangeRequest) (*types.ChangeRequest, error)
	GetChangeRequest(ctx context.Context, membershipID, id string) (*types.ChangeRequest, error)
	ListChangeRequests(ctx context.Context, membershipID, status string) ([]*types.ChangeRequest, error)
	ListChangeRequestsBySubmitter(ctx context.Context, userID string) ([]*types.ChangeRequest, error)
	SetChangeRequestStatus(ctx context.Context, membershipID, id, from, to, reviewedBy, notes string) (*types.ChangeRequest, error)
	MarkChangeRequestImplemented(ctx context.Context, membershipID, id string) (*types.ChangeRequest, error)

	CreateOrderRequest(context.Context, *types.OrderRequest) (*types.OrderRequest, error)
	GetOrderRequest(ctx context.Context, membershipID, id string) (*types.OrderRequest, error)
	ListOrderRequests(ctx context.Context, membershipID, status string) ([]*types.OrderRequest, error)
	ListOrderRequestsBySubmitter(ctx context.Context, userID string) ([]*types.OrderRequest, error)
	SetOrderRequestStatus(ctx context.Context, membershipID, id, from, to, reviewedBy, notes string) (*types.OrderRequest, error)
	MarkOrderRequestOrdered(ctx context.Context, membershipID, id, orderNumber string) (*types.OrderRequest, error)
	MarkOrderRequestDelivered(ctx context.Context, membershipID, id string, actualCost float64) (*types.OrderRequest, error)
}
