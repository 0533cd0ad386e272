package bootstrap

import (
	"context"
	"testing"

	"builder_estimates/internal/adapter/sessionstore"
	"builder_estimates/internal/infrastructure/config"
	"builder_estimates/pkg/logger"
)

func TestOpenStores_UnknownDriver(t *testing.T) {
	_, err := OpenStores(context.Background(), config.Config{StorageDriver: "sqlite"}, logger.NewNop())
	if err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestOpenStores_DynamoDB(t *testing.T) {
	cfg := config.Config{
		StorageDriver: config.StorageDynamoDB,
		AWS:           config.AWSConfig{Region: "us-east-1", AccessKeyID: "local", SecretAccessKey: "local", DynamoDBEndpoint: "http://localhost:8000"},
	}
	stores, err := OpenStores(context.Background(), cfg, logger.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer stores.Close()
	if stores.Catalog == nil || stores.CatalogWriter == nil || stores.Estimates == nil {
		t.Fatalf("expected every repository to be set: %+v", stores)
	}
}

func TestOpenSessionStore(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		store, release, err := OpenSessionStore(context.Background(), config.Config{Session: config.SessionConfig{Store: config.SessionStoreMemory}}, logger.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer release()
		if _, ok := store.(*sessionstore.MemoryStore); !ok {
			t.Fatalf("expected memory store, got %T", store)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, _, err := OpenSessionStore(context.Background(), config.Config{Session: config.SessionConfig{Store: "file"}}, logger.NewNop()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
