package routes

import (
	"builder_estimates/internal/adapter/http/handlers"
	"builder_estimates/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathAdmin     = "/admin"
)

func addEstimateRoutes(rg *gin.RouterGroup, auth *middleware.AuthMiddleware, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		// The confirmation page is reachable by number alone.
		estimates.GET("/:estimate_number/summary", h.GetSummary)

		estimates.GET("", auth.RequireAuth(), h.ListMine)
		estimates.GET("/:estimate_number", auth.RequireAuth(), h.GetMine)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, auth *middleware.AuthMiddleware, h *handlers.EstimateHandler) {
	admin := rg.Group(PathAdmin, auth.RequireAuth(), middleware.RequireRole(middleware.RoleAdmin))
	{
		admin.PATCH(PathEstimates+"/:estimate_number/status", h.UpdateStatus)
	}
}
