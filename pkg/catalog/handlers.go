// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/supply-service/internal/http/types"
	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/monitoring"
	"github.com/canonical/supply-service/internal/storage"
	"github.com/canonical/supply-service/internal/tracing"
	"github.com/canonical/supply-service/internal/types"
	"github.com/canonical/supply-service/pkg/authentication"
)

type supplierRequest struct {
	OrderType  string   `json:"order_type"`
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Address    string   `json:"address"`
	Website    string   `json:"website"`
	Currency   string   `json:"currency"`
	Categories []string `json:"categories"`
	Comment    string   `json:"comment"`
}

type ingredientRequest struct {
	Supplier     *string `json:"supplier"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit" validate:"required"`
	PricePerUnit float64 `json:"price_per_unit" validate:"gte=0"`
	Currency     string  `json:"currency"`
	Availability *bool   `json:"availability"`
	ProductCode  string  `json:"product_code"`
	Notes        string  `json:"notes"`
}

type recipeRequest struct {
	Name         string                   `json:"name" validate:"required"`
	Description  string                   `json:"description"`
	Category     string                   `json:"category"`
	Difficulty   string                   `json:"difficulty"`
	Servings     int                      `json:"servings" validate:"gte=0"`
	Ingredients  []types.RecipeIngredient `json:"ingredients"`
	Instructions []types.RecipeStep       `json:"instructions"`
	Tags         []string                 `json:"tags"`
	Status       string                   `json:"status"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RegisterEndpoints mounts the owner-scoped catalog surface. The caller wraps
// the router with authentication; every query is keyed on the caller's own
// user ID.
func (a *API) RegisterEndpoints(r chi.Router) {
	r.Route("/api/suppliers", func(r chi.Router) {
		r.Get("/", a.listSuppliers)
		r.Post("/", a.createSupplier)
		r.Get("/{id}", a.getSupplier)
		r.Put("/{id}", a.updateSupplier)
		r.Delete("/{id}", a.deleteSupplier)
	})

	r.Route("/api/ingredients", func(r chi.Router) {
		r.Get("/", a.listIngredients)
		r.Post("/", a.createIngredient)
		r.Get("/meta/categories", a.ingredientCategories)
		r.Get("/meta/units", a.ingredientUnits)
		r.Get("/supplier/{id}", a.listIngredientsBySupplier)
		r.Get("/category/{name}", a.listIngredientsByCategory)
		r.Get("/{id}", a.getIngredient)
		r.Put("/{id}", a.updateIngredient)
		r.Delete("/{id}", a.deleteIngredient)
	})

	r.Route("/api/recipes", func(r chi.Router) {
		r.Get("/", a.listRecipes)
		r.Post("/", a.createRecipe)
		r.Get("/meta/categories", a.recipeCategories)
		r.Get("/{id}", a.getRecipe)
		r.Get("/{id}/cost", a.getRecipeCost)
		r.Put("/{id}", a.updateRecipe)
		r.Delete("/{id}", a.deleteRecipe)
	})
}

func (a *API) ownerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
		return "", false
	}
	return principal.ID, true
}

func (a *API) listSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.listSuppliers")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	suppliers, err := a.service.ListSuppliers(ctx, ownerID)
	if err != nil {
		a.logger.Errorf("failed to list suppliers: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if suppliers == nil {
		suppliers = []*types.Supplier{}
	}
	httpTypes.WriteJSON(w, http.StatusOK, suppliers)
}

func (a *API) createSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.createSupplier")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	var req supplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := a.service.CreateSupplier(ctx, ownerID, supplierFromRequest(&req))
	if err != nil {
		a.logger.Errorf("failed to create supplier: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) getSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.getSupplier")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	supplier, err := a.service.GetSupplier(ctx, ownerID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "supplier not found")
			return
		}
		a.logger.Errorf("failed to get supplier: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, supplier)
}

func (a *API) updateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.updateSupplier")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	var req supplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	supplier := supplierFromRequest(&req)
	supplier.ID = chi.URLParam(r, "id")

	updated, err := a.service.UpdateSupplier(ctx, ownerID, supplier)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "supplier not found")
			return
		}
		a.logger.Errorf("failed to update supplier: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.deleteSupplier")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteSupplier(ctx, ownerID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "supplier not found")
			return
		}
		a.logger.Errorf("failed to delete supplier: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, map[string]string{"message": "supplier deleted"})
}

func (a *API) listIngredients(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.listIngredients")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	ingredients, err := a.service.ListIngredients(ctx, ownerID)
	if err != nil {
		a.logger.Errorf("failed to list ingredients: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if ingredients == nil {
		ingredients = []*types.Ingredient{}
	}
	httpTypes.WriteJSON(w, http.StatusOK, ingredients)
}

func (a *API) createIngredient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.createIngredient")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	var req ingredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "name and unit are required")
		return
	}

	created, err := a.service.CreateIngredient(ctx, ownerID, ingredientFromRequest(&req))
	if err != nil {
		a.writeIngredientError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) getIngredient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.getIngredient")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	ingredient, err := a.service.GetIngredient(ctx, ownerID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "ingredient not found")
			return
		}
		a.logger.Errorf("failed to get ingredient: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, ingredient)
}

func (a *API) listIngredientsBySupplier(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.listIngredientsBySupplier")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	ingredients, err := a.service.ListIngredientsBySupplier(ctx, ownerID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrUnknownSupplier) {
			httpTypes.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		a.logger.Errorf("failed to list ingredients by supplier: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if ingredients == nil {
		ingredients = []*types.Ingredient{}
	}
	httpTypes.WriteJSON(w, http.StatusOK, ingredients)
}

func (a *API) listIngredientsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.listIngredientsByCategory")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	ingredients, err := a.service.ListIngredientsByCategory(ctx, ownerID, chi.URLParam(r, "name"))
	if err != nil {
		a.logger.Errorf("failed to list ingredients by category: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if ingredients == nil {
		ingredients = []*types.Ingredient{}
	}
	httpTypes.WriteJSON(w, http.StatusOK, ingredients)
}

func (a *API) ingredientCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.ingredientCategories")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	categories, err := a.service.IngredientCategories(ctx, ownerID)
	if err != nil {
		a.logger.Errorf("failed to list ingredient categories: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if categories == nil {
		categories = []string{}
	}
	httpTypes.WriteJSON(w, http.StatusOK, categories)
}

func (a *API) ingredientUnits(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.ingredientUnits")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	units, err := a.service.IngredientUnits(ctx, ownerID)
	if err != nil {
		a.logger.Errorf("failed to list ingredient units: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if units == nil {
		units = []string{}
	}
	httpTypes.WriteJSON(w, http.StatusOK, units)
}

func (a *API) updateIngredient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.updateIngredient")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	var req ingredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "name and unit are required")
		return
	}

	ingredient := ingredientFromRequest(&req)
	ingredient.ID = chi.URLParam(r, "id")

	updated, err := a.service.UpdateIngredient(ctx, ownerID, ingredient)
	if err != nil {
		a.writeIngredientError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) deleteIngredient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.deleteIngredient")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteIngredient(ctx, ownerID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "ingredient not found")
			return
		}
		a.logger.Errorf("failed to delete ingredient: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, map[string]string{"message": "ingredient deleted"})
}

func (a *API) listRecipes(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.listRecipes")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	recipes, err := a.service.ListRecipes(ctx, ownerID)
	if err != nil {
		a.logger.Errorf("failed to list recipes: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if recipes == nil {
		recipes = []*types.Recipe{}
	}
	httpTypes.WriteJSON(w, http.StatusOK, recipes)
}

func (a *API) createRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.createRecipe")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := a.service.CreateRecipe(ctx, ownerID, recipeFromRequest(&req))
	if err != nil {
		a.writeRecipeError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) getRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.getRecipe")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	recipe, err := a.service.GetRecipe(ctx, ownerID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "recipe not found")
			return
		}
		a.logger.Errorf("failed to get recipe: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, recipe)
}

func (a *API) getRecipeCost(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.getRecipeCost")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	cost, err := a.service.GetRecipeCost(ctx, ownerID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "recipe not found")
			return
		}
		a.logger.Errorf("failed to compute recipe cost: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, cost)
}

func (a *API) recipeCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.recipeCategories")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	categories, err := a.service.RecipeCategories(ctx, ownerID)
	if err != nil {
		a.logger.Errorf("failed to list recipe categories: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if categories == nil {
		categories = []string{}
	}
	httpTypes.WriteJSON(w, http.StatusOK, categories)
}

func (a *API) updateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.updateRecipe")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	recipe := recipeFromRequest(&req)
	recipe.ID = chi.URLParam(r, "id")

	updated, err := a.service.UpdateRecipe(ctx, ownerID, recipe)
	if err != nil {
		a.writeRecipeError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.deleteRecipe")
	defer span.End()

	ownerID, ok := a.ownerID(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteRecipe(ctx, ownerID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "recipe not found")
			return
		}
		a.logger.Errorf("failed to delete recipe: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, map[string]string{"message": "recipe deleted"})
}

func (a *API) writeIngredientError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownSupplier):
		httpTypes.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		httpTypes.WriteError(w, http.StatusNotFound, "ingredient not found")
	default:
		a.logger.Errorf("ingredient operation failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (a *API) writeRecipeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownIngredient):
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		httpTypes.WriteError(w, http.StatusNotFound, "recipe not found")
	default:
		a.logger.Errorf("recipe operation failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

func supplierFromRequest(req *supplierRequest) *types.Supplier {
	return &types.Supplier{
		OrderType:  req.OrderType,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Website:    req.Website,
		Currency:   req.Currency,
		Categories: req.Categories,
		Comment:    req.Comment,
	}
}

func ingredientFromRequest(req *ingredientRequest) *types.Ingredient {
	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}

	return &types.Ingredient{
		SupplierID:   req.Supplier,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		Currency:     req.Currency,
		Availability: availability,
		ProductCode:  req.ProductCode,
		Notes:        req.Notes,
	}
}

func recipeFromRequest(req *recipeRequest) *types.Recipe {
	return &types.Recipe{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Difficulty:   req.Difficulty,
		Servings:     req.Servings,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Tags:         req.Tags,
		Status:       req.Status,
	}
}
