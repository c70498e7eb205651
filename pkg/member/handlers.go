// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/supply-service/internal/http/types"
	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/monitoring"
	"github.com/canonical/supply-service/internal/storage"
	"github.com/canonical/supply-service/internal/tracing"
	"github.com/canonical/supply-service/internal/types"
	"github.com/canonical/supply-service/pkg/authentication"
	"github.com/canonical/supply-service/pkg/authorization"
)

type changeRequestPayload struct {
	Type            string                 `json:"type" validate:"required"`
	TargetID        string                 `json:"targetId" validate:"required"`
	Title           string                 `json:"title" validate:"required"`
	Description     string                 `json:"description"`
	ProposedChanges map[string]interface{} `json:"proposedChanges"`
	Priority        string                 `json:"priority"`
}

type orderRequestPayload struct {
	Title                 string            `json:"title" validate:"required"`
	Description           string            `json:"description"`
	Items                 []types.OrderItem `json:"items" validate:"required,min=1"`
	PreferredSupplierID   *string           `json:"preferredSupplierId"`
	Urgency               string            `json:"urgency"`
	RequestedDeliveryDate *time.Time        `json:"requestedDeliveryDate"`
}

type profileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	// permission gates supplied by the authorization middleware.
	viewRecipes      func(http.Handler) http.Handler
	viewIngredients  func(http.Handler) http.Handler
	recommendChanges func(http.Handler) http.Handler
	addToOrders      func(http.Handler) http.Handler

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, authz *authorization.Middleware, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:          service,
		validate:         validator.New(),
		viewRecipes:      authz.RequirePermission(authorization.PermViewRecipes),
		viewIngredients:  authz.RequirePermission(authorization.PermViewIngredients),
		recommendChanges: authz.RequirePermission(authorization.PermRecommendChanges),
		addToOrders:      authz.RequirePermission(authorization.PermAddToOrders),
		tracer:           tracer,
		monitor:          monitor,
		logger:           logger,
	}
}

// RegisterEndpoints mounts the team-member surface. The caller wraps the
// router with authentication, team-member, tenant-scope and subscription
// gates; per-capability permission gates are applied here.
func (a *API) RegisterEndpoints(r chi.Router) {
	r.Route("/api/team", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(a.viewRecipes)
			r.Get("/recipes", a.listRecipes)
			r.Get("/recipes/{id}", a.getRecipe)
		})

		r.Group(func(r chi.Router) {
			r.Use(a.viewIngredients)
			r.Get("/ingredients", a.listIngredients)
			r.Get("/ingredients/{id}", a.getIngredient)
		})

		r.Group(func(r chi.Router) {
			r.Use(a.recommendChanges)
			r.Post("/change-requests/recipe", a.submitRecipeChange)
			r.Post("/change-requests/ingredient", a.submitIngredientChange)
		})

		r.Group(func(r chi.Router) {
			r.Use(a.addToOrders)
			r.Post("/order-requests", a.submitOrderRequest)
		})

		r.Get("/my-change-requests", a.myChangeRequests)
		r.Get("/my-order-requests", a.myOrderRequests)
		r.Get("/profile", a.getProfile)
		r.Put("/profile", a.updateProfile)
	})
}

func (a *API) scope(w http.ResponseWriter, r *http.Request) (membershipID, userID string, ok bool) {
	principal, found := authentication.PrincipalFromContext(r.Context())
	if !found {
		httpTypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
		return "", "", false
	}

	membershipID, found = authorization.MembershipIDFromContext(r.Context())
	if !found {
		httpTypes.WriteError(w, http.StatusForbidden, "membership required")
		return "", "", false
	}

	return membershipID, principal.ID, true
}

func (a *API) listRecipes(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "member.API.listRecipes")
	defer span.End()

	membershipID, _, ok := a.scope(w, r)
	if !ok {
		return
	}

	recipes, err := a.service.ListRecipes(ctx, membershipID)
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

func (a *API) getRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "member.API.getRecipe")
	defer span.End()

	membershipID, _, ok := a.scope(w, r)
	if !ok {
		return
	}

	recipe, err := a.service.GetRecipe(ctx, membershipID, chi.URLParam(r, "id"))
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

func (a *API) listIngredients(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "member.API.listIngredients")
	defer span.End()

	membershipID, _, ok := a.scope(w, r)
	if !ok {
		return
	}

	ingredients, err := a.service.ListIngredients(ctx, membershipID)
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

func (a *API) getIngredient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "member.API.getIngredient")
	defer span.End()

	membershipID, _, ok := a.scope(w, r)
	if !ok {
		return
	}

	ingredient, err := a.service.GetIngredient(ctx, membershipID, chi.URLParam(r, "id"))
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

func (a *API) submitRecipeChange(w http.ResponseWriter, r *http.Request) {
	a.submitChange(w, r, "member.API.submitRecipeChange", a.service.SubmitRecipeChangeRequest)
}

func (a *API) submitIngredientChange(w http.ResponseWriter, r *http.Request) {
	a.submitChange(w, r, "member.API.submitIngredientChange", a.service.SubmitIngredientChangeRequest)
}

func (a *API) submitChange(w http.ResponseWriter, r *http.Request, spanName string, submit func(ctx context.Context, membershipID, submitterID string, proposal *ChangeProposal) (*types.ChangeRequest, error)) {
	ctx, span := a.tracer.Start(r.Context(), spanName)
	defer span.End()

	membershipID, userID, ok := a.scope(w, r)
	if !ok {
		return
	}

	var req changeRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "type, targetId and title are required")
		return
	}

	created, err := submit(ctx, membershipID, userID, &ChangeProposal{
		Type:            req.Type,
		TargetID:        req.TargetID,
		Title:           req.Title,
		Description:     req.Description,
		ProposedChanges: req.ProposedChanges,
		Priority:        req.Priority,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "target not found")
			return
		}
		a.logger.Errorf("failed to submit change request: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) submitOrderRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "member.API.submitOrderRequest")
	defer span.End()

	membershipID, userID, ok := a.scope(w, r)
	if !ok {
		return
	}

	var req orderRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "title and at least one item are required")
		return
	}

	created, err := a.service.SubmitOrderRequest(ctx, membershipID, userID, &OrderProposal{
		Title:                 req.Title,
		Description:           req.Description,
		Items:                 req.Items,
		PreferredSupplierID:   req.PreferredSupplierID,
		Urgency:               req.Urgency,
		RequestedDeliveryDate: req.RequestedDeliveryDate,
	})
	if err != nil {
		if errors.Is(err, ErrUnresolvedItems) {
			httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		a.logger.Errorf("failed to submit order request: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) myChangeRequests(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "member.API.myChangeRequests")
	defer span.End()

	_, userID, ok := a.scope(w, r)
	if !ok {
		return
	}

	requests, err := a.service.ListMyChangeRequests(ctx, userID)
	if err != nil {
		a.logger.Errorf("failed to list change requests: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if requests == nil {
		requests = []*types.ChangeRequest{}
	}
	httpTypes.WriteJSON(w, http.StatusOK, requests)
}

func (a *API) myOrderRequests(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "member.API.myOrderRequests")
	defer span.End()

	_, userID, ok := a.scope(w, r)
	if !ok {
		return
	}

	requests, err := a.service.ListMyOrderRequests(ctx, userID)
	if err != nil {
		a.logger.Errorf("failed to list order requests: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if requests == nil {
		requests = []*types.OrderRequest{}
	}
	httpTypes.WriteJSON(w, http.StatusOK, requests)
}

func (a *API) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "member.API.getProfile")
	defer span.End()

	_, userID, ok := a.scope(w, r)
	if !ok {
		return
	}

	user, err := a.service.GetProfile(ctx, userID)
	if err != nil {
		a.logger.Errorf("failed to load profile: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, user)
}

func (a *API) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "member.API.updateProfile")
	defer span.End()

	_, userID, ok := a.scope(w, r)
	if !ok {
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.service.UpdateProfile(ctx, userID, req.FirstName, req.LastName)
	if err != nil {
		a.logger.Errorf("failed to update profile: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, user)
}
