// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

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

type handlerMocks struct {
	service  *MockServiceInterface
	tracer   *MockTracingInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
	mux      *chi.Mux
}

func setupHandler(ctrl *gomock.Controller) *handlerMocks {
	mocks := &handlerMocks{
		service:  NewMockServiceInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
		mux:      chi.NewMux(),
	}
	mockMonitor := NewMockMonitorInterface(ctrl)

	// The permission gates share the handler's tracer and logger.
	mocks.tracer.EXPECT().Start(gomock.Any(), "authorization.Middleware.RequirePermission").
		DoAndReturn(passthroughSpan).AnyTimes()

	authz := authorization.NewMiddleware(nil, false, mocks.tracer, mockMonitor, mocks.logger)
	NewAPI(mocks.service, authz, mocks.tracer, mockMonitor, mocks.logger).RegisterEndpoints(mocks.mux)

	return mocks
}

func passthroughSpan(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
	return ctx, trace.SpanFromContext(ctx)
}

func (m *handlerMocks) expectSpan(name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).DoAndReturn(passthroughSpan)
}

// memberRequest carries the principal and tenant scope the upstream
// middlewares would have attached for an authenticated team-member.
func memberRequest(method, target string, body io.Reader, permissions types.Permissions) *http.Request {
	req := httptest.NewRequest(method, target, body)
	membershipID := "membership-1"
	ctx := authentication.WithPrincipal(req.Context(), &authentication.Principal{
		ID:           "user-2",
		Role:         types.RoleTeamMember,
		MembershipID: &membershipID,
		Permissions:  permissions,
	})
	ctx = authorization.WithMembershipID(ctx, membershipID)
	return req.WithContext(ctx)
}

func TestHandler_ListRecipes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mocks := setupHandler(ctrl)
		mocks.expectSpan("member.API.listRecipes")
		mocks.service.EXPECT().ListRecipes(gomock.Any(), "membership-1").Return(nil, nil)

		req := memberRequest(http.MethodGet, "/api/team/recipes", nil, types.DefaultPermissions())
		w := httptest.NewRecorder()
		mocks.mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		if strings.TrimSpace(w.Body.String()) == "null" {
			t.Error("expected [] for an empty list, got null")
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mocks := setupHandler(ctrl)
		mocks.logger.EXPECT().Security().Return(mocks.security)
		mocks.security.EXPECT().AuthzFailure("user-2", gomock.Any())

		req := memberRequest(http.MethodGet, "/api/team/recipes", nil, types.Permissions{})
		w := httptest.NewRecorder()
		mocks.mux.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", w.Code)
		}
	})
}

func TestHandler_GetRecipe(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*handlerMocks)
		wantStatus int
	}{
		{
			name: "success",
			setupMocks: func(mocks *handlerMocks) {
				mocks.service.EXPECT().GetRecipe(gomock.Any(), "membership-1", "recipe-1").
					Return(&types.Recipe{ID: "recipe-1"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			setupMocks: func(mocks *handlerMocks) {
				mocks.service.EXPECT().GetRecipe(gomock.Any(), "membership-1", "recipe-1").
					Return(nil, storage.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := setupHandler(ctrl)
			mocks.expectSpan("member.API.getRecipe")
			tt.setupMocks(mocks)

			req := memberRequest(http.MethodGet, "/api/team/recipes/recipe-1", nil, types.DefaultPermissions())
			w := httptest.NewRecorder()
			mocks.mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandler_GetIngredient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := setupHandler(ctrl)
	mocks.expectSpan("member.API.getIngredient")
	mocks.service.EXPECT().GetIngredient(gomock.Any(), "membership-1", "ing-1").
		Return(&types.Ingredient{ID: "ing-1", Name: "Basil"}, nil)

	req := memberRequest(http.MethodGet, "/api/team/ingredients/ing-1", nil, types.DefaultPermissions())
	w := httptest.NewRecorder()
	mocks.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandler_SubmitRecipeChange(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*handlerMocks)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"type": "recipe-change", "targetId": "recipe-1", "title": "Less salt"}`,
			setupMocks: func(mocks *handlerMocks) {
				mocks.service.EXPECT().SubmitRecipeChangeRequest(gomock.Any(), "membership-1", "user-2", gomock.Any()).
					Return(&types.ChangeRequest{ID: "cr-1", Status: types.StatusPending}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing title",
			body:       `{"type": "recipe-change", "targetId": "recipe-1"}`,
			setupMocks: func(mocks *handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing target",
			body:       `{"type": "recipe-change", "title": "Less salt"}`,
			setupMocks: func(mocks *handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "target not found",
			body: `{"type": "recipe-change", "targetId": "recipe-9", "title": "Less salt"}`,
			setupMocks: func(mocks *handlerMocks) {
				mocks.service.EXPECT().SubmitRecipeChangeRequest(gomock.Any(), "membership-1", "user-2", gomock.Any()).
					Return(nil, storage.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "service error",
			body: `{"type": "recipe-change", "targetId": "recipe-1", "title": "Less salt"}`,
			setupMocks: func(mocks *handlerMocks) {
				mocks.service.EXPECT().SubmitRecipeChangeRequest(gomock.Any(), "membership-1", "user-2", gomock.Any()).
					Return(nil, errors.New("db error"))
				mocks.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := setupHandler(ctrl)
			mocks.expectSpan("member.API.submitRecipeChange")
			tt.setupMocks(mocks)

			req := memberRequest(http.MethodPost, "/api/team/change-requests/recipe", strings.NewReader(tt.body), types.DefaultPermissions())
			w := httptest.NewRecorder()
			mocks.mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandler_SubmitOrderRequest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*handlerMocks)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"title": "Weekly produce", "items": [{"ingredientId": "ing-1", "quantity": 2}]}`,
			setupMocks: func(mocks *handlerMocks) {
				mocks.service.EXPECT().SubmitOrderRequest(gomock.Any(), "membership-1", "user-2", gomock.Any()).
					Return(&types.OrderRequest{ID: "or-1", Status: types.StatusPending}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "no items",
			body:       `{"title": "Weekly produce", "items": []}`,
			setupMocks: func(mocks *handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unresolvable ingredient",
			body: `{"title": "Weekly produce", "items": [{"ingredientId": "ing-9", "quantity": 2}]}`,
			setupMocks: func(mocks *handlerMocks) {
				mocks.service.EXPECT().SubmitOrderRequest(gomock.Any(), "membership-1", "user-2", gomock.Any()).
					Return(nil, ErrUnresolvedItems)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := setupHandler(ctrl)
			mocks.expectSpan("member.API.submitOrderRequest")
			tt.setupMocks(mocks)

			req := memberRequest(http.MethodPost, "/api/team/order-requests", strings.NewReader(tt.body), types.DefaultPermissions())
			w := httptest.NewRecorder()
			mocks.mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandler_MyRequests(t *testing.T) {
	t.Run("change requests", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mocks := setupHandler(ctrl)
		mocks.expectSpan("member.API.myChangeRequests")
		mocks.service.EXPECT().ListMyChangeRequests(gomock.Any(), "user-2").
			Return([]*types.ChangeRequest{{ID: "cr-1"}}, nil)

		req := memberRequest(http.MethodGet, "/api/team/my-change-requests", nil, types.Permissions{})
		w := httptest.NewRecorder()
		mocks.mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("order requests", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mocks := setupHandler(ctrl)
		mocks.expectSpan("member.API.myOrderRequests")
		mocks.service.EXPECT().ListMyOrderRequests(gomock.Any(), "user-2").Return(nil, nil)

		req := memberRequest(http.MethodGet, "/api/team/my-order-requests", nil, types.Permissions{})
		w := httptest.NewRecorder()
		mocks.mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		if strings.TrimSpace(w.Body.String()) == "null" {
			t.Error("expected [] for an empty list, got null")
		}
	})
}

func TestHandler_Profile(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mocks := setupHandler(ctrl)
		mocks.expectSpan("member.API.getProfile")
		mocks.service.EXPECT().GetProfile(gomock.Any(), "user-2").
			Return(&types.User{ID: "user-2", Email: "cook@copperpot.example"}, nil)

		req := memberRequest(http.MethodGet, "/api/team/profile", nil, types.Permissions{})
		w := httptest.NewRecorder()
		mocks.mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mocks := setupHandler(ctrl)
		mocks.expectSpan("member.API.updateProfile")
		mocks.service.EXPECT().UpdateProfile(gomock.Any(), "user-2", "Jamie", "Cook").
			Return(&types.User{ID: "user-2", FirstName: "Jamie", LastName: "Cook"}, nil)

		body := `{"firstName": "Jamie", "lastName": "Cook"}`
		req := memberRequest(http.MethodPut, "/api/team/profile", strings.NewReader(body), types.Permissions{})
		w := httptest.NewRecorder()
		mocks.mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mocks := setupHandler(ctrl)
		mocks.expectSpan("member.API.getProfile")

		req := httptest.NewRequest(http.MethodGet, "/api/team/profile", nil)
		w := httptest.NewRecorder()
		mocks.mux.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", w.Code)
		}
	})
}
