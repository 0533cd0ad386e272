package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"builder_estimates/internal/adapter/sessionstore"
	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/domain/session"
	"builder_estimates/internal/infrastructure/config"
	"builder_estimates/internal/usecase/interfaces"
	"builder_estimates/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var testSessionConfig = config.SessionConfig{CookieName: "sessionid", TTL: time.Hour}

type failingStore struct{}

func (failingStore) Load(context.Context, string) (session.Data, bool, error) {
	return session.Data{}, false, errors.New("down")
}
func (failingStore) Save(context.Context, string, session.Data, time.Duration) error { return nil }
func (failingStore) Delete(context.Context, string) error                          { return nil }

// flakyStore is a MemoryStore whose writes can be made to fail.
type flakyStore struct {
	*sessionstore.MemoryStore
	saveErr   error
	deleteErr error
}

func (f *flakyStore) Save(ctx context.Context, id string, data session.Data, ttl time.Duration) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.MemoryStore.Save(ctx, id, data, ttl)
}

func (f *flakyStore) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.MemoryStore.Delete(ctx, id)
}

func sessionRouter(store interfaces.ISessionStore) *gin.Engine {
	r := gin.New()
	r.Use(Sessions(store, testSessionConfig, logger.NewNop()))
	r.POST("/add", func(c *gin.Context) {
		Cart(c).Add(entities.PackageTemplate{ID: 4, Name: "A", PriceLow: decimal.NewFromInt(100), PriceHigh: decimal.NewFromInt(150)}, 1, false)
		c.Status(http.StatusNoContent)
	})
	r.POST("/clear", func(c *gin.Context) {
		Cart(c).Clear()
		c.Status(http.StatusNoContent)
	})
	r.POST("/checkout", func(c *gin.Context) {
		Cart(c).Clear()
		c.Header("Location", "/estimates/1")
		c.JSON(http.StatusCreated, gin.H{"id": 1})
	})
	r.GET("/count", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"count": Cart(c).Len()})
	})
	return r
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "sessionid" {
			return ck
		}
	}
	t.Fatalf("no session cookie in response")
	return nil
}

func TestSessions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	store := sessionstore.NewMemoryStore()
	r := sessionRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/count", nil))
	first := sessionCookie(t, w)
	if _, found, _ := store.Load(ctx, first.Value); found {
		t.Fatalf("unmodified session must not be stored")
	}

	send := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.AddCookie(first)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	send(http.MethodPost, "/add")
	send(http.MethodPost, "/add")
	data, found, _ := store.Load(ctx, first.Value)
	if !found || data.Cart["4"].Quantity != 2 {
		t.Fatalf("expected stored quantity 2, got found=%v %+v", found, data)
	}

	w = send(http.MethodGet, "/count")
	if w.Body.String() != `{"count":2}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if sessionCookie(t, w).Value != first.Value {
		t.Fatalf("session id changed")
	}

	send(http.MethodPost, "/clear")
	if _, found, _ := store.Load(ctx, first.Value); found {
		t.Fatalf("clear must remove the stored session")
	}
}

func TestSessions_InvalidCookieGetsFreshID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := sessionRouter(sessionstore.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/count", nil)
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: "not-a-uuid"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := sessionCookie(t, w).Value; got == "not-a-uuid" {
		t.Fatalf("expected a new session id")
	}
}

func TestSessions_StoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Sessions(failingStore{}, testSessionConfig, logger.NewNop()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: "7f3c2c1e-8d7b-4b7e-9a57-2f1f4c1d9b10"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestSessions_WriteFailureReplacesResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &flakyStore{MemoryStore: sessionstore.NewMemoryStore()}
	r := sessionRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/add", nil))
	cookie := sessionCookie(t, w)

	send := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("delete fails during checkout", func(t *testing.T) {
		store.deleteErr = errors.New("down")
		defer func() { store.deleteErr = nil }()

		w := send(http.MethodPost, "/checkout")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d: %s", w.Code, w.Body.String())
		}
		if loc := w.Header().Get("Location"); loc != "" {
			t.Fatalf("unexpected Location %q", loc)
		}
		if got := send(http.MethodGet, "/count").Body.String(); got != `{"count":1}` {
			t.Fatalf("cart must be intact, got %s", got)
		}
	})

	t.Run("save fails on add", func(t *testing.T) {
		store.saveErr = errors.New("down")
		defer func() { store.saveErr = nil }()

		if w := send(http.MethodPost, "/add"); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		if got := send(http.MethodGet, "/count").Body.String(); got != `{"count":1}` {
			t.Fatalf("expected count 1, got %s", got)
		}
	})

	t.Run("successful write releases the response", func(t *testing.T) {
		w := send(http.MethodPost, "/checkout")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if w.Header().Get("Location") != "/estimates/1" || w.Body.String() != `{"id":1}` {
			t.Fatalf("unexpected response %v %s", w.Header(), w.Body.String())
		}
		if got := send(http.MethodGet, "/count").Body.String(); got != `{"count":0}` {
			t.Fatalf("expected empty cart, got %s", got)
		}
	})
}
