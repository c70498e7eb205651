// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/supply-service/internal/http/types"
	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/monitoring"
	"github.com/canonical/supply-service/internal/tracing"
	"github.com/canonical/supply-service/pkg/authentication"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"`

	// Business details for root-admin signups, which open a new tenant.
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType" validate:"omitempty,oneof=restaurant hotel other"`
	ContactName  string `json:"contactName"`
	Phone        string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type renewPasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	// authenticate guards the renew-password route, the rest are public.
	authenticate func(http.Handler) http.Handler

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, authenticate func(http.Handler) http.Handler, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:      service,
		validate:     validator.New(),
		authenticate: authenticate,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", a.register)
		r.Post("/login", a.login)
		r.Post("/forgot-password", a.forgotPassword)
		r.Post("/reset-password", a.resetPassword)

		r.Group(func(r chi.Router) {
			r.Use(a.authenticate)
			r.Post("/renew-password", a.renewPassword)
		})
	})
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.register")
	defer span.End()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := a.service.Register(ctx, &Registration{
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		ContactName:  req.ContactName,
		Phone:        req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrInvalidRole), errors.Is(err, ErrMissingBusiness):
			httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			a.logger.Errorf("registration failed: %v", err)
			httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, user)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.login")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, user, err := a.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		a.logger.Errorf("login failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"role":  user.Role,
	})
}

func (a *API) renewPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.renewPassword")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	var req renewPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "old and new passwords are required")
		return
	}

	if err := a.service.RenewPassword(ctx, principal.ID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, ErrBadCredentials) {
			httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		a.logger.Errorf("password renewal failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func (a *API) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.forgotPassword")
	defer span.End()

	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := a.service.ForgotPassword(ctx, req.Email); err != nil {
		a.logger.Errorf("forgot password failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// Same response whether or not the account exists.
	httpTypes.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "if the account exists, a reset link has been sent",
	})
}

func (a *API) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.resetPassword")
	defer span.End()

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "token and new password are required")
		return
	}

	if err := a.service.ResetPassword(ctx, req.Token, req.NewPassword); err != nil {
		if errors.Is(err, ErrInvalidToken) {
			httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		a.logger.Errorf("password reset failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
