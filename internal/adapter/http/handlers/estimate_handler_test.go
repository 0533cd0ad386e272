package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"builder_estimates/internal/adapter/http/handlers/mocks"
	"builder_estimates/internal/adapter/http/middleware"
	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEstimateRouter(uc *mocks.MockIEstimateUseCase) *gin.Engine {
	h := NewEstimateHandler(uc)
	am := middleware.NewAuthMiddleware(handlerTestSecret)
	r := gin.New()
	r.GET("/v1/estimates/:estimate_number/summary", h.GetSummary)
	r.GET("/v1/estimates", am.RequireAuth(), h.ListMine)
	r.GET("/v1/estimates/:estimate_number", am.RequireAuth(), h.GetMine)
	r.PATCH("/v1/admin/estimates/:estimate_number/status", am.RequireAuth(), middleware.RequireRole(middleware.RoleAdmin), h.UpdateStatus)
	return r
}

func TestEstimateHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().GetByNumber(gomock.Any(), "EST-2024-404").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		w := serve(newEstimateRouter(uc), httptest.NewRequest(http.MethodGet, "/v1/estimates/EST-2024-404/summary", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("malformed number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().GetByNumber(gomock.Any(), "nope").Return(entities.Estimate{}, usecase.ErrInvalidEstimateNumber)

		w := serve(newEstimateRouter(uc), httptest.NewRequest(http.MethodGet, "/v1/estimates/nope/summary", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success hides contact data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().GetByNumber(gomock.Any(), "EST-2024-001").Return(entities.Estimate{
			EstimateNumber: "EST-2024-001", ClientEmail: "pat@example.com", Status: entities.EstimateStatusPending, CreatedAt: time.Now().UTC(),
		}, nil)

		w := serve(newEstimateRouter(uc), httptest.NewRequest(http.MethodGet, "/v1/estimates/EST-2024-001/summary", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("pat@example.com")) {
			t.Fatalf("summary leaked client email: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_Builder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list requires auth", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		w := serve(newEstimateRouter(uc), httptest.NewRequest(http.MethodGet, "/v1/estimates", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().ListForBuilder(gomock.Any(), "builder-1").Return([]entities.Estimate{
			{EstimateNumber: "EST-2024-002"}, {EstimateNumber: "EST-2024-001"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		req.Header.Set("Authorization", bearer(t, "builder-1", ""))
		w := serve(newEstimateRouter(uc), req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 || body[0]["estimate_number"] != "EST-2024-002" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("detail of someone else's estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().GetForBuilder(gomock.Any(), "EST-2024-001", "builder-2").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/EST-2024-001", nil)
		req.Header.Set("Authorization", bearer(t, "builder-2", ""))
		w := serve(newEstimateRouter(uc), req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	path := "/v1/admin/estimates/EST-2024-001/status"

	patch := func(t *testing.T, uc *mocks.MockIEstimateUseCase, role, body string) *httptest.ResponseRecorder {
		req := jsonRequest(http.MethodPatch, path, body)
		req.Header.Set("Authorization", bearer(t, "admin-1", role))
		return serve(newEstimateRouter(uc), req)
	}

	t.Run("non admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		if w := patch(t, uc, "", `{"status":"contacted"}`); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		if w := patch(t, uc, middleware.RoleAdmin, `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "EST-2024-001", entities.EstimateStatus("lost")).Return(entities.Estimate{}, usecase.ErrInvalidEstimateStatus)

		if w := patch(t, uc, middleware.RoleAdmin, `{"status":"Lost"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "EST-2024-001", entities.EstimateStatusArchived).Return(entities.Estimate{}, errors.New("boom"))

		if w := patch(t, uc, middleware.RoleAdmin, `{"status":"archived"}`); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "EST-2024-001", entities.EstimateStatusContacted).
			Return(entities.Estimate{EstimateNumber: "EST-2024-001", Status: entities.EstimateStatusContacted}, nil)

		w := patch(t, uc, middleware.RoleAdmin, `{"status":"contacted"}`)
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"status":"contacted"`)) {
			t.Fatalf("got %d %s", w.Code, w.Body.String())
		}
	})
}
