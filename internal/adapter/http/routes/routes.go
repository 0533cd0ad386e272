package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "builder_estimates/docs"
	"builder_estimates/internal/adapter/http/handlers"
	"builder_estimates/internal/adapter/http/middleware"
	"builder_estimates/internal/bootstrap"
	"builder_estimates/internal/infrastructure/config"
	"builder_estimates/internal/usecase"
	"builder_estimates/internal/usecase/interfaces"
	"builder_estimates/pkg"
	"builder_estimates/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handlers groups everything the route table needs.
type Handlers struct {
	Catalog  *handlers.CatalogHandler
	Cart     *handlers.CartHandler
	Checkout *handlers.CheckoutHandler
	Estimate *handlers.EstimateHandler
}

// NewRouter builds the engine with the middleware chain and every /v1 route.
func NewRouter(cfg config.Config, h Handlers, sessions interfaces.ISessionStore, log *logger.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		internal := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(internal.HTTPStatus, internal.ToHTTPError())
	}))
	if cfg.Telemetry.Enabled {
		router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := middleware.NewAuthMiddleware(cfg.JWTSecret)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	shop := v1.Group("")
	shop.Use(middleware.Sessions(sessions, cfg.Session, log))
	addCatalogRoutes(shop, h.Catalog)
	addCartRoutes(shop, h.Cart)
	addCheckoutRoutes(shop, auth, h.Checkout)

	addEstimateRoutes(v1, auth, h.Estimate)
	addAdminRoutes(v1, auth, h.Estimate)

	return router
}

// Run wires the configured stores into the use cases and serves until ctx is done.
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	stores, err := bootstrap.OpenStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stores.Close()

	sessions, closeSessions, err := bootstrap.OpenSessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSessions()

	catalogUseCase := usecase.NewCatalogUseCase(stores.Catalog, cfg.CatalogPageSize)
	cartUseCase := usecase.NewCartUseCase(stores.Catalog)
	checkoutUseCase := usecase.NewCheckoutUseCase(stores.Estimates, stores.Catalog, log, cfg.CheckoutMaxAttempts)
	estimateUseCase := usecase.NewEstimateUseCase(stores.Estimates)

	router := NewRouter(cfg, Handlers{
		Catalog:  handlers.NewCatalogHandler(catalogUseCase),
		Cart:     handlers.NewCartHandler(cartUseCase),
		Checkout: handlers.NewCheckoutHandler(checkoutUseCase),
		Estimate: handlers.NewEstimateHandler(estimateUseCase),
	}, sessions, log)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", srv.Addr, "storage", cfg.StorageDriver, "sessions", cfg.Session.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
