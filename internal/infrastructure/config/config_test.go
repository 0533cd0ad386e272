package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"HTTP_PORT", "STORAGE_DRIVER", "SESSION_STORE", "SESSION_TTL", "CHECKOUT_MAX_ATTEMPTS", "CATALOG_PAGE_SIZE", "CORS_ALLOWED_ORIGINS", "OTEL_SAMPLER_RATIO"} {
			t.Setenv(k, "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.HTTPPort != "8080" || cfg.StorageDriver != StorageDynamoDB || cfg.Session.Store != SessionStoreRedis {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.Session.CookieName == "" || cfg.Session.TTL != 14*24*time.Hour {
			t.Fatalf("unexpected session defaults: %+v", cfg.Session)
		}
		if cfg.CheckoutMaxAttempts != 3 || cfg.CatalogPageSize != 12 || cfg.Telemetry.SamplerRatio != 1 {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "Postgres")
		t.Setenv("DATABASE_URL", "postgres://localhost/estimates")
		t.Setenv("SESSION_STORE", "memory")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example,")
		t.Setenv("APP_ENV", "production")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.StorageDriver != StoragePostgres || cfg.Session.Store != SessionStoreMemory || !cfg.IsProduction() {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://b.example" {
			t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "sqlite")
		t.Setenv("CHECKOUT_MAX_ATTEMPTS", "many")
		t.Setenv("OTEL_SAMPLER_RATIO", "2")

		_, err := Load()
		if err == nil {
			t.Fatalf("expected error")
		}
		for _, want := range []string{"STORAGE_DRIVER", "CHECKOUT_MAX_ATTEMPTS", "OTEL_SAMPLER_RATIO"} {
			if !strings.Contains(err.Error(), want) {
				t.Fatalf("expected %s in %v", want, err)
			}
		}
	})

	t.Run("postgres needs a url", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "")
		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
			t.Fatalf("expected DATABASE_URL error, got %v", err)
		}
	})
}
