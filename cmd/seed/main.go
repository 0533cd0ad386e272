// Command seed loads a YAML catalog into the configured store.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"builder_estimates/internal/bootstrap"
	"builder_estimates/internal/infrastructure/config"
	"builder_estimates/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	file := flag.String("file", "catalog.yaml", "path to the catalog YAML file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()
	appLog = appLog.With("component", "seed")

	f, err := os.Open(*file)
	if err != nil {
		appLog.Fatal("open catalog file", "file", *file, "error", err)
	}
	defer f.Close()

	catalog, err := ParseCatalog(f, time.Now().UTC())
	if err != nil {
		appLog.Fatal("parse catalog", "file", *file, "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	stores, err := bootstrap.OpenStores(ctx, cfg, appLog)
	if err != nil {
		appLog.Fatal("open stores", "error", err)
	}
	defer stores.Close()

	if err := catalog.Load(ctx, stores.CatalogWriter); err != nil {
		appLog.Fatal("load catalog", "error", err)
	}
	appLog.Info("catalog loaded",
		"storage", cfg.StorageDriver,
		"categories", len(catalog.Categories),
		"subcategories", len(catalog.SubCategories),
		"install_phases", len(catalog.InstallPhases),
		"packages", len(catalog.Packages),
	)
}
