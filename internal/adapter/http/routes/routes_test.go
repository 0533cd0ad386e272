package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"builder_estimates/internal/adapter/http/handlers"
	"builder_estimates/internal/adapter/http/handlers/mocks"
	"builder_estimates/internal/adapter/sessionstore"
	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/infrastructure/config"
	"builder_estimates/internal/usecase"
	"builder_estimates/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func testRouter(t *testing.T) (*gin.Engine, *mocks.MockICatalogUseCase, *mocks.MockIEstimateUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockICatalogUseCase(ctrl)
	estimates := mocks.NewMockIEstimateUseCase(ctrl)

	cfg := config.Config{
		JWTSecret: "routes-secret",
		Session:   config.SessionConfig{Store: config.SessionStoreMemory, CookieName: "sessionid", TTL: time.Hour},
	}
	r := NewRouter(cfg, Handlers{
		Catalog:  handlers.NewCatalogHandler(catalog),
		Cart:     handlers.NewCartHandler(mocks.NewMockICartUseCase(ctrl)),
		Checkout: handlers.NewCheckoutHandler(mocks.NewMockICheckoutUseCase(ctrl)),
		Estimate: handlers.NewEstimateHandler(estimates),
	}, sessionstore.NewMemoryStore(), logger.NewNop())
	return r, catalog, estimates
}

func TestRouter_Ping(t *testing.T) {
	r, _, _ := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Fatalf("ping should not open a session")
	}
}

func TestRouter_CatalogOpensSession(t *testing.T) {
	r, catalog, _ := testRouter(t)
	catalog.EXPECT().FeaturedPackages(gomock.Any()).Return(nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/packages/featured", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(w.Result().Cookies()) != 1 {
		t.Fatalf("expected a session cookie")
	}
}

func TestRouter_EstimateAccess(t *testing.T) {
	r, _, estimates := testRouter(t)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/v1/estimates", http.StatusUnauthorized},
		{http.MethodGet, "/v1/estimates/EST-2024-001", http.StatusUnauthorized},
		{http.MethodPatch, "/v1/admin/estimates/EST-2024-001/status", http.StatusUnauthorized},
		{http.MethodGet, "/v1/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("public summary", func(t *testing.T) {
		estimates.EXPECT().GetByNumber(gomock.Any(), "EST-2024-001").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/estimates/EST-2024-001/summary", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
