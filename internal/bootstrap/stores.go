// Package bootstrap opens the backing stores selected by configuration.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"builder_estimates/internal/adapter/persistence/repository"
	"builder_estimates/internal/adapter/sessionstore"
	"builder_estimates/internal/infrastructure/config"
	"builder_estimates/internal/infrastructure/database"
	"builder_estimates/internal/usecase/interfaces"
	"builder_estimates/pkg/logger"
)

// Stores holds the catalog and estimate repositories of one storage driver.
type Stores struct {
	Catalog       interfaces.ICatalogRepository
	CatalogWriter interfaces.ICatalogWriter
	Estimates     interfaces.IEstimateRepository

	db *sql.DB
}

func (s *Stores) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// OpenStores connects to DynamoDB or Postgres. Postgres migrations are applied
// before the repositories are returned.
func OpenStores(ctx context.Context, cfg config.Config, log *logger.Logger) (*Stores, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(db, log); err != nil {
			_ = db.Close()
			return nil, err
		}
		catalog := repository.NewCatalogPostgresRepository(db)
		return &Stores{
			Catalog:       catalog,
			CatalogWriter: catalog,
			Estimates:     repository.NewEstimatePostgresRepository(db),
			db:            db,
		}, nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		tables := repository.TableNamesFromEnv()
		catalog := repository.NewCatalogDynamoRepository(ddb, tables)
		return &Stores{
			Catalog:       catalog,
			CatalogWriter: catalog,
			Estimates:     repository.NewEstimateDynamoRepository(ddb, tables),
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// OpenSessionStore returns the configured session store and a func that releases it.
func OpenSessionStore(ctx context.Context, cfg config.Config, log *logger.Logger) (interfaces.ISessionStore, func(), error) {
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		rdb, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return sessionstore.NewRedisStore(rdb, "", log), func() { _ = rdb.Close() }, nil
	case config.SessionStoreMemory:
		return sessionstore.NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}
