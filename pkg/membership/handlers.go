// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

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
)

type membershipRequest struct {
	BusinessName       string                   `json:"business_name" validate:"required"`
	BusinessType       string                   `json:"business_type"`
	ContactName        string                   `json:"contact_name"`
	Email              string                   `json:"email" validate:"required,email"`
	Phone              string                   `json:"phone"`
	Address            string                   `json:"address"`
	Website            string                   `json:"website"`
	SubscriptionStatus string                   `json:"subscription_status"`
	SubscriptionPlan   string                   `json:"subscription_plan"`
	PaymentToken       string                   `json:"payment_token"`
	Notes              string                   `json:"notes"`
	Settings           types.MembershipSettings `json:"settings"`
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

// RegisterEndpoints mounts the operator membership surface. The caller is
// expected to wrap the router with authentication and operator gates.
func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/api/memberships", a.list)
	r.Post("/api/memberships", a.create)
	r.Get("/api/memberships/{id}", a.get)
	r.Put("/api/memberships/{id}", a.update)
	r.Delete("/api/memberships/{id}", a.delete)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.list")
	defer span.End()

	memberships, err := a.service.ListMemberships(ctx)
	if err != nil {
		a.logger.Errorf("failed to list memberships: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if memberships == nil {
		memberships = []*types.Membership{}
	}
	httpTypes.WriteJSON(w, http.StatusOK, memberships)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.create")
	defer span.End()

	var req membershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "business_name and email are required")
		return
	}

	created, err := a.service.CreateMembership(ctx, &types.Membership{
		BusinessName:       req.BusinessName,
		BusinessType:       req.BusinessType,
		ContactName:        req.ContactName,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		Website:            req.Website,
		SubscriptionStatus: req.SubscriptionStatus,
		SubscriptionPlan:   req.SubscriptionPlan,
		PaymentToken:       req.PaymentToken,
		Notes:              req.Notes,
		Settings:           req.Settings,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			httpTypes.WriteError(w, http.StatusConflict, "a membership with this email already exists")
			return
		}
		a.logger.Errorf("failed to create membership: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.get")
	defer span.End()

	m, err := a.service.GetMembership(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "membership not found")
			return
		}
		a.logger.Errorf("failed to get membership: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, m)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.update")
	defer span.End()

	current, err := a.service.GetMembership(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "membership not found")
			return
		}
		a.logger.Errorf("failed to get membership: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	var req membershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "business_name and email are required")
		return
	}

	current.BusinessName = req.BusinessName
	current.BusinessType = req.BusinessType
	current.ContactName = req.ContactName
	current.Email = req.Email
	current.Phone = req.Phone
	current.Address = req.Address
	current.Website = req.Website
	current.PaymentToken = req.PaymentToken
	current.Notes = req.Notes
	current.Settings = req.Settings
	if req.SubscriptionStatus != "" {
		current.SubscriptionStatus = req.SubscriptionStatus
	}
	if req.SubscriptionPlan != "" {
		current.SubscriptionPlan = req.SubscriptionPlan
	}

	updated, err := a.service.UpdateMembership(ctx, current)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "membership not found")
			return
		}
		a.logger.Errorf("failed to update membership: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.delete")
	defer span.End()

	if err := a.service.DeleteMembership(ctx, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, "membership not found")
			return
		}
		a.logger.Errorf("failed to delete membership: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, map[string]string{"message": "membership deleted"})
}
