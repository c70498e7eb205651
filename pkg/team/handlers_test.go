// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/supply-service/internal/storage"
	"github.com/canonical/supply-service/internal/types"
	"github.com/canonical/supply-service/pkg/authentication"
	"github.com/canonical/supply-service/pkg/authorization"
)

func setupHandler(ctrl *gomock.Controller) (*MockServiceInterface, *MockTracingInterface, *MockLoggerInterface, *chi.Mux) {
	mockSvc := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(mockSvc, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	return mockSvc, mockTracer, mockLogger, mux
}

// expectSpan propagates the incoming context so the handler still sees the
// principal the request carries.
func expectSpan(mockTracer *MockTracingInterface, name string) {
	mockTracer.EXPECT().Start(gomock.Any(), name).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		})
}

// scopedRequest builds a request carrying the tenant scope and principal the
// authentication and authorization middlewares would have attached.
func scopedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := authorization.WithMembershipID(req.Context(), "membership-1")
	ctx = authentication.WithPrincipal(ctx, &authentication.Principal{ID: "admin-1", Role: types.RoleRootAdmin})
	return req.WithContext(ctx)
}

func TestHandler_Overview(t *testing.T) {
	tests := []struct {
		name       string
		scoped     bool
		setupMocks func(*MockServiceInterface, *MockLoggerInterface)
		wantStatus int
	}{
		{
			name:   "success",
			scoped: true,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().GetOverview(gomock.Any(), "membership-1").
					Return(&Overview{Members: []*types.User{}, Plan: types.PlanBasic, UserLimit: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no membership scope",
			scoped:     false,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "service error",
			scoped: true,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().GetOverview(gomock.Any(), "membership-1").Return(nil, errors.New("db error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc, mockTracer, mockLogger, mux := setupHandler(ctrl)
			expectSpan(mockTracer, "team.API.overview")
			tt.setupMocks(mockSvc, mockLogger)

			req := httptest.NewRequest(http.MethodGet, "/api/users/team", nil)
			if tt.scoped {
				req = scopedRequest(http.MethodGet, "/api/users/team", nil)
			}
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandler_Invite(t *testing.T) {
	invited := &types.User{ID: "user-3", Email: "cook@copperpot.example", Role: types.RoleTeamMember}

	tests := []struct {
		name        string
		body        string
		setupMocks  func(*MockServiceInterface, *MockLoggerInterface)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "success",
			body: `{"email": "cook@copperpot.example", "firstName": "Jamie"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().InviteMember(gomock.Any(), "membership-1", "admin-1", gomock.Any()).
					Return(invited, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid body",
			body:       `{not json`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			body:       `{"firstName": "Jamie"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "user limit reached",
			body: `{"email": "cook@copperpot.example"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().InviteMember(gomock.Any(), "membership-1", "admin-1", gomock.Any()).
					Return(nil, storage.ErrUserLimitReached)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "User limit reached for your subscription plan",
		},
		{
			name: "inactive subscription",
			body: `{"email": "cook@copperpot.example"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().InviteMember(gomock.Any(), "membership-1", "admin-1", gomock.Any()).
					Return(nil, ErrSubscriptionInactive)
			},
			wantStatus:  http.StatusForbidden,
			wantMessage: "subscription is not active",
		},
		{
			name: "duplicate email",
			body: `{"email": "cook@copperpot.example"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().InviteMember(gomock.Any(), "membership-1", "admin-1", gomock.Any()).
					Return(nil, storage.ErrDuplicateKey)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "service error",
			body: `{"email": "cook@copperpot.example"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().InviteMember(gomock.Any(), "membership-1", "admin-1", gomock.Any()).
					Return(nil, errors.New("db error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc, mockTracer, mockLogger, mux := setupHandler(ctrl)
			expectSpan(mockTracer, "team.API.invite")
			tt.setupMocks(mockSvc, mockLogger)

			req := scopedRequest(http.MethodPost, "/api/users/invite", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantMessage != "" && !strings.Contains(w.Body.String(), tt.wantMessage) {
				t.Errorf("expected message %q in response, got %s", tt.wantMessage, w.Body.String())
			}
		})
	}
}

func TestHandler_UpdatePermissions(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockServiceInterface, *MockLoggerInterface)
		wantStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().UpdatePermissions(gomock.Any(), "membership-1", "user-2", gomock.Any()).
					Return(&types.User{ID: "user-2"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().UpdatePermissions(gomock.Any(), "membership-1", "user-2", gomock.Any()).
					Return(nil, storage.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc, mockTracer, mockLogger, mux := setupHandler(ctrl)
			expectSpan(mockTracer, "team.API.updatePermissions")
			tt.setupMocks(mockSvc, mockLogger)

			body := `{"permissions": {"canViewRecipes": true}}`
			req := scopedRequest(http.MethodPut, "/api/users/team/user-2/permissions", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandler_Deactivate(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockServiceInterface, *MockLoggerInterface)
		wantStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().DeactivateMember(gomock.Any(), "membership-1", "user-2").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().DeactivateMember(gomock.Any(), "membership-1", "user-2").Return(storage.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc, mockTracer, mockLogger, mux := setupHandler(ctrl)
			expectSpan(mockTracer, "team.API.deactivate")
			tt.setupMocks(mockSvc, mockLogger)

			req := scopedRequest(http.MethodPut, "/api/users/team/user-2/deactivate", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandler_ListChangeRequests(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantFilter string
	}{
		{
			name:       "defaults to the pending queue",
			target:     "/api/users/change-requests",
			wantFilter: types.StatusPending,
		},
		{
			name:       "explicit status",
			target:     "/api/users/change-requests?status=rejected",
			wantFilter: types.StatusRejected,
		},
		{
			name:       "all lifts the filter",
			target:     "/api/users/change-requests?status=all",
			wantFilter: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc, mockTracer, _, mux := setupHandler(ctrl)
			expectSpan(mockTracer, "team.API.listChangeRequests")
			mockSvc.EXPECT().ListChangeRequests(gomock.Any(), "membership-1", tt.wantFilter).Return(nil, nil)

			req := scopedRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
			if strings.TrimSpace(w.Body.String()) == "null" {
				t.Error("expected [] for an empty list, got null")
			}
		})
	}
}

func TestHandler_ListOrderRequests_DefaultsToPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc, mockTracer, _, mux := setupHandler(ctrl)
	expectSpan(mockTracer, "team.API.listOrderRequests")
	mockSvc.EXPECT().ListOrderRequests(gomock.Any(), "membership-1", types.StatusPending).Return(nil, nil)

	req := scopedRequest(http.MethodGet, "/api/users/order-requests", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestHandler_ReviewChangeRequest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface, *MockLoggerInterface)
		wantStatus int
	}{
		{
			name: "approved",
			body: `{"status": "approved", "adminNotes": "go ahead"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().ReviewChangeRequest(gomock.Any(), "membership-1", "cr-1", "admin-1", "approved", "go ahead").
					Return(&types.ChangeRequest{ID: "cr-1", Status: types.StatusApproved}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing status",
			body:       `{"adminNotes": "go ahead"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid decision",
			body: `{"status": "maybe"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().ReviewChangeRequest(gomock.Any(), "membership-1", "cr-1", "admin-1", "maybe", "").
					Return(nil, ErrInvalidDecision)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "not found",
			body: `{"status": "approved"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().ReviewChangeRequest(gomock.Any(), "membership-1", "cr-1", "admin-1", "approved", "").
					Return(nil, storage.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "already reviewed",
			body: `{"status": "approved"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().ReviewChangeRequest(gomock.Any(), "membership-1", "cr-1", "admin-1", "approved", "").
					Return(nil, storage.ErrStaleStatus)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc, mockTracer, mockLogger, mux := setupHandler(ctrl)
			expectSpan(mockTracer, "team.API.reviewChangeRequest")
			tt.setupMocks(mockSvc, mockLogger)

			req := scopedRequest(http.MethodPut, "/api/users/change-requests/cr-1", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandler_MarkImplemented(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc, mockTracer, _, mux := setupHandler(ctrl)
	expectSpan(mockTracer, "team.API.markImplemented")
	mockSvc.EXPECT().MarkChangeRequestImplemented(gomock.Any(), "membership-1", "cr-1").
		Return(&types.ChangeRequest{ID: "cr-1", Status: types.StatusImplemented}, nil)

	req := scopedRequest(http.MethodPut, "/api/users/change-requests/cr-1/implemented", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandler_ReviewOrderRequest(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockServiceInterface, *MockLoggerInterface)
		wantStatus int
	}{
		{
			name: "rejected",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().ReviewOrderRequest(gomock.Any(), "membership-1", "or-1", "admin-1", "rejected", "over budget").
					Return(&types.OrderRequest{ID: "or-1", Status: types.StatusRejected}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "already reviewed",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().ReviewOrderRequest(gomock.Any(), "membership-1", "or-1", "admin-1", "rejected", "over budget").
					Return(nil, storage.ErrStaleStatus)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc, mockTracer, mockLogger, mux := setupHandler(ctrl)
			expectSpan(mockTracer, "team.API.reviewOrderRequest")
			tt.setupMocks(mockSvc, mockLogger)

			body := `{"status": "rejected", "adminNotes": "over budget"}`
			req := scopedRequest(http.MethodPut, "/api/users/order-requests/or-1", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandler_MarkOrdered(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"orderNumber": "PO-2041"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().MarkOrderRequestOrdered(gomock.Any(), "membership-1", "or-1", "PO-2041").
					Return(&types.OrderRequest{ID: "or-1", Status: types.StatusOrdered}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing order number",
			body:       `{}`,
			setupMocks: func(mockSvc *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc, mockTracer, _, mux := setupHandler(ctrl)
			expectSpan(mockTracer, "team.API.markOrdered")
			tt.setupMocks(mockSvc)

			req := scopedRequest(http.MethodPut, "/api/users/order-requests/or-1/ordered", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandler_MarkDelivered(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"actualCost": 118.40}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().MarkOrderRequestDelivered(gomock.Any(), "membership-1", "or-1", 118.40).
					Return(&types.OrderRequest{ID: "or-1", Status: types.StatusDelivered}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "negative cost",
			body:       `{"actualCost": -3}`,
			setupMocks: func(mockSvc *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc, mockTracer, _, mux := setupHandler(ctrl)
			expectSpan(mockTracer, "team.API.markDelivered")
			tt.setupMocks(mockSvc)

			req := scopedRequest(http.MethodPut, "/api/users/order-requests/or-1/delivered", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}
