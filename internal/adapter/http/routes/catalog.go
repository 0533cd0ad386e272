package routes

import (
	"builder_estimates/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPackages   = "/packages"
	PathCategories = "/categories"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	packages := rg.Group(PathPackages)
	{
		packages.GET("", h.ListPackages)
		packages.GET("/featured", h.FeaturedPackages)
		packages.GET("/:package_id", h.GetPackage)
	}

	categories := rg.Group(PathCategories)
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:category_id/packages", h.ListCategoryPackages)
	}
}
