package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "builder_estimates/docs"
	"builder_estimates/internal/adapter/http/routes"
	"builder_estimates/internal/infrastructure/config"
	"builder_estimates/internal/infrastructure/telemetry"
	"builder_estimates/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Builder Estimates API
// @version         1.0
// @description     Package catalog, session cart and estimate requests for home builders.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry, cfg.AppEnv, appLog)
	if err != nil {
		appLog.Fatal("failed to init tracing", "error", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			appLog.Warn("tracing shutdown", "error", err)
		}
	}()

	if err := routes.Run(ctx, cfg, appLog); err != nil {
		appLog.Fatal("failed to startup the application", "error", err)
	}
}
