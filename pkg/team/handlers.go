// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

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
	"github.com/canonical/supply-service/pkg/authorization"
)

type inviteRequest struct {
	Email       string             `json:"email" validate:"required,email"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Permissions *types.Permissions `json:"permissions"`
}

type permissionsRequest struct {
	Permissions types.Permissions `json:"permissions"`
}

type reviewRequest struct {
	Status     string `json:"status" validate:"required"`
	AdminNotes string `json:"adminNotes"`
}

type orderedRequest struct {
	OrderNumber string `json:"orderNumber" validate:"required"`
}

type deliveredRequest struct {
	ActualCost float64 `json:"actualCost" validate:"gte=0"`
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

// RegisterEndpoints mounts the team management surface. The caller wraps the
// router with authentication, root-admin and tenant-scope gates.
func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/api/users/team", a.overview)
	r.Post("/api/users/invite", a.invite)
	r.Put("/api/users/team/{id}/permissions", a.updatePermissions)
	r.Put("/api/users/team/{id}/deactivate", a.deactivate)

	r.Get("/api/users/change-requests", a.listChangeRequests)
	r.Put("/api/users/change-requests/{id}", a.reviewChangeRequest)
	r.Put("/api/users/change-requests/{id}/implemented", a.markImplemented)

	r.Get("/api/users/order-requests", a.listOrderRequests)
	r.Put("/api/users/order-requests/{id}", a.reviewOrderRequest)
	r.Put("/api/users/order-requests/{id}/ordered", a.markOrdered)
	r.Put("/api/users/order-requests/{id}/delivered", a.markDelivered)
}

func (a *API) membershipID(w http.ResponseWriter, r *http.Request) (string, bool) {
	membershipID, ok := authorization.MembershipIDFromContext(r.Context())
	if !ok {
		httpTypes.WriteError(w, http.StatusForbidden, "membership required")
		return "", false
	}
	return membershipID, true
}

func (a *API) overview(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.overview")
	defer span.End()

	membershipID, ok := a.membershipID(w, r)
	if !ok {
		return
	}

	overview, err := a.service.GetOverview(ctx, membershipID)
	if err != nil {
		a.logger.Errorf("failed to load team overview: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, overview)
}

func (a *API) invite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.invite")
	defer span.End()

	membershipID, ok := a.membershipID(w, r)
	if !ok {
		return
	}

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	member, err := a.service.InviteMember(ctx, membershipID, principal.ID, &Invitation{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Permissions: req.Permissions,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUserLimitReached):
			httpTypes.WriteError(w, http.StatusBadRequest, "User limit reached for your subscription plan")
		case errors.Is(err, ErrSubscriptionInactive):
			httpTypes.WriteError(w, http.StatusForbidden, "subscription is not active")
		case errors.Is(err, storage.ErrDuplicateKey):
			httpTypes.WriteError(w, http.StatusConflict, "email is already registered")
		default:
			a.logger.Errorf("failed to invite team member: %v", err)
			httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, member)
}

func (a *API) updatePermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.updatePermissions")
	defer span.End()

	membershipID, ok := a.membershipID(w, r)
	if !ok {
		return
	}

	var req permissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := a.service.UpdatePermissions(ctx, membershipID, chi.URLParam(r, "id"), req.Permissions)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "team member not found")
			return
		}
		a.logger.Errorf("failed to update permissions: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, member)
}

func (a *API) deactivate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.deactivate")
	defer span.End()

	membershipID, ok := a.membershipID(w, r)
	if !ok {
		return
	}

	if err := a.service.DeactivateMember(ctx, membershipID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "team member not found")
			return
		}
		a.logger.Errorf("failed to deactivate team member: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, map[string]string{"message": "team member deactivated"})
}

// statusFilter resolves the review-queue filter: the zero-config view is the
// pending queue, "all" lifts the filter.
func statusFilter(r *http.Request) string {
	status := r.URL.Query().Get("status")
	switch status {
	case "":
		return types.StatusPending
	case "all":
		return ""
	}
	return status
}

func (a *API) listChangeRequests(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.listChangeRequests")
	defer span.End()

	membershipID, ok := a.membershipID(w, r)
	if !ok {
		return
	}

	requests, err := a.service.ListChangeRequests(ctx, membershipID, statusFilter(r))
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

func (a *API) reviewChangeRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.reviewChangeRequest")
	defer span.End()

	membershipID, ok := a.membershipID(w, r)
	if !ok {
		return
	}

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "status is required")
		return
	}

	reviewed, err := a.service.ReviewChangeRequest(ctx, membershipID, chi.URLParam(r, "id"), principal.ID, req.Status, req.AdminNotes)
	if err != nil {
		a.writeReviewError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, reviewed)
}

func (a *API) markImplemented(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.markImplemented")
	defer span.End()

	membershipID, ok := a.membershipID(w, r)
	if !ok {
		return
	}

	request, err := a.service.MarkChangeRequestImplemented(ctx, membershipID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeReviewError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, request)
}

func (a *API) listOrderRequests(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.listOrderRequests")
	defer span.End()

	membershipID, ok := a.membershipID(w, r)
	if !ok {
		return
	}

	requests, err := a.service.ListOrderRequests(ctx, membershipID, statusFilter(r))
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

func (a *API) reviewOrderRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.reviewOrderRequest")
	defer span.End()

	membershipID, ok := a.membershipID(w, r)
	if !ok {
		return
	}

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "status is required")
		return
	}

	reviewed, err := a.service.ReviewOrderRequest(ctx, membershipID, chi.URLParam(r, "id"), principal.ID, req.Status, req.AdminNotes)
	if err != nil {
		a.writeReviewError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, reviewed)
}

func (a *API) markOrdered(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.markOrdered")
	defer span.End()

	membershipID, ok := a.membershipID(w, r)
	if !ok {
		return
	}

	var req orderedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "orderNumber is required")
		return
	}

	request, err := a.service.MarkOrderRequestOrdered(ctx, membershipID, chi.URLParam(r, "id"), req.OrderNumber)
	if err != nil {
		a.writeReviewError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, request)
}

func (a *API) markDelivered(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.markDelivered")
	defer span.End()

	membershipID, ok := a.membershipID(w, r)
	if !ok {
		return
	}

	var req deliveredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "actualCost must not be negative")
		return
	}

	request, err := a.service.MarkOrderRequestDelivered(ctx, membershipID, chi.URLParam(r, "id"), req.ActualCost)
	if err != nil {
		a.writeReviewError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, request)
}

func (a *API) writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidDecision):
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		httpTypes.WriteError(w, http.StatusNotFound, "request not found")
	case errors.Is(err, storage.ErrStaleStatus):
		httpTypes.WriteError(w, http.StatusConflict, "request is not in a reviewable state")
	default:
		a.logger.Errorf("request review failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
