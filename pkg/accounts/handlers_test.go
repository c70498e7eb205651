// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/supply-service/internal/types"
	"github.com/canonical/supply-service/pkg/authentication"
)

func passthroughAuth(next http.Handler) http.Handler {
	return next
}

func authAs(principal *authentication.Principal) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(authentication.WithPrincipal(r.Context(), principal)))
		})
	}
}

func setupAPI(t *testing.T, ctrl *gomock.Controller, authenticate func(http.Handler) http.Handler) (*MockServiceInterface, *MockTracingInterface, *MockLoggerInterface, *chi.Mux) {
	t.Helper()

	mockSvc := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mux := chi.NewMux()
	api := NewAPI(mockSvc, authenticate, mockTracer, mockMonitor, mockLogger)
	api.RegisterEndpoints(mux)

	return mockSvc, mockTracer, mockLogger, mux
}

func TestHandler_Register(t *testing.T) {
	user := &types.User{ID: "user-1", Email: "owner@example.com", Role: types.RoleOwner}

	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface, *MockLoggerInterface)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"email": "owner@example.com", "password": "s3cretpass", "role": "owner"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Register(gomock.Any(), &Registration{
					Email:    "owner@example.com",
					Password: "s3cretpass",
					Role:     "owner",
				}).Return(user, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "success - root-admin with business details",
			body: `{"email": "owner@example.com", "password": "s3cretpass", "role": "root-admin", "businessName": "Blue Fig Bistro", "businessType": "restaurant", "contactName": "Dana Reyes"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Register(gomock.Any(), &Registration{
					Email:        "owner@example.com",
					Password:     "s3cretpass",
					Role:         "root-admin",
					BusinessName: "Blue Fig Bistro",
					BusinessType: "restaurant",
					ContactName:  "Dana Reyes",
				}).Return(user, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "root-admin without business details",
			body: `{"email": "owner@example.com", "password": "s3cretpass", "role": "root-admin"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, ErrMissingBusiness)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid business type",
			body:       `{"email": "owner@example.com", "password": "s3cretpass", "role": "root-admin", "businessName": "B", "businessType": "foodtruck", "contactName": "D"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid body",
			body:       `{not json`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			body:       `{"password": "s3cretpass"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password",
			body:       `{"email": "owner@example.com", "password": "short"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: `{"email": "owner@example.com", "password": "s3cretpass"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, ErrEmailTaken)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"email": "owner@example.com", "password": "s3cretpass"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc, mockTracer, mockLogger, mux := setupAPI(t, ctrl, passthroughAuth)
			mockTracer.EXPECT().Start(gomock.Any(), "accounts.API.register").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockSvc, mockLogger)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus >= 400 {
				var resp struct {
					Status  int    `json:"status"`
					Message string `json:"message"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("error body is not the standard envelope: %v", err)
				}
				if resp.Status != tt.wantStatus {
					t.Errorf("envelope status %d does not match response code %d", resp.Status, tt.wantStatus)
				}
			}
		})
	}
}

func TestHandler_Login(t *testing.T) {
	user := &types.User{ID: "user-1", Email: "owner@example.com", Role: types.RoleOwner}

	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface, *MockLoggerInterface)
		wantStatus int
		wantToken  string
	}{
		{
			name: "success",
			body: `{"email": "owner@example.com", "password": "s3cretpass"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Login(gomock.Any(), "owner@example.com", "s3cretpass").Return("jwt-token", user, nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  "jwt-token",
		},
		{
			name: "bad credentials",
			body: `{"email": "owner@example.com", "password": "wrong-password"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Login(gomock.Any(), "owner@example.com", "wrong-password").Return("", nil, ErrBadCredentials)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing password",
			body:       `{"email": "owner@example.com"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"email": "owner@example.com", "password": "s3cretpass"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Login(gomock.Any(), "owner@example.com", "s3cretpass").Return("", nil, errors.New("db error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc, mockTracer, mockLogger, mux := setupAPI(t, ctrl, passthroughAuth)
			mockTracer.EXPECT().Start(gomock.Any(), "accounts.API.login").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockSvc, mockLogger)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantToken != "" {
				var resp map[string]interface{}
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp["token"] != tt.wantToken {
					t.Errorf("expected token %q, got %v", tt.wantToken, resp["token"])
				}
				if resp["role"] != user.Role {
					t.Errorf("expected role %q, got %v", user.Role, resp["role"])
				}
			}
		})
	}
}

func TestHandler_RenewPassword(t *testing.T) {
	principal := &authentication.Principal{ID: "user-1", Email: "owner@example.com", Role: types.RoleOwner}

	tests := []struct {
		name         string
		authenticate func(http.Handler) http.Handler
		body         string
		setupMocks   func(*MockServiceInterface)
		wantStatus   int
	}{
		{
			name:         "success",
			authenticate: authAs(principal),
			body:         `{"oldPassword": "old-password", "newPassword": "new-password"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().RenewPassword(gomock.Any(), "user-1", "old-password", "new-password").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "no principal",
			authenticate: passthroughAuth,
			body:         `{"oldPassword": "old-password", "newPassword": "new-password"}`,
			setupMocks:   func(mockSvc *MockServiceInterface) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "bad old password",
			authenticate: authAs(principal),
			body:         `{"oldPassword": "wrong", "newPassword": "new-password"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().RenewPassword(gomock.Any(), "user-1", "wrong", "new-password").Return(ErrBadCredentials)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc, mockTracer, _, mux := setupAPI(t, ctrl, tt.authenticate)
			mockTracer.EXPECT().Start(gomock.Any(), "accounts.API.renewPassword").
				DoAndReturn(func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				})
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/renew-password", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandler_ForgotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc, mockTracer, _, mux := setupAPI(t, ctrl, passthroughAuth)
	mockTracer.EXPECT().Start(gomock.Any(), "accounts.API.forgotPassword").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockSvc.EXPECT().ForgotPassword(gomock.Any(), "owner@example.com").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", strings.NewReader(`{"email": "owner@example.com"}`))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandler_ResetPassword(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"token": "reset-token", "newPassword": "new-password"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().ResetPassword(gomock.Any(), "reset-token", "new-password").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid token",
			body: `{"token": "bad-token", "newPassword": "new-password"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().ResetPassword(gomock.Any(), "bad-token", "new-password").Return(ErrInvalidToken)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing token",
			body:       `{"newPassword": "new-password"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc, mockTracer, _, mux := setupAPI(t, ctrl, passthroughAuth)
			mockTracer.EXPECT().Start(gomock.Any(), "accounts.API.resetPassword").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}
