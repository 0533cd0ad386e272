package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	response "builder_estimates/internal/adapter/http/dto/response"
	"builder_estimates/internal/usecase"
	"builder_estimates/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPackageID  = pkg.NewDomainErrorSimple("INVALID_PACKAGE_ID", "Invalid package id", http.StatusBadRequest)
	errInvalidCategoryID = pkg.NewDomainErrorSimple("INVALID_CATEGORY_ID", "Invalid category id", http.StatusBadRequest)
	errPageNotFound      = pkg.NewDomainErrorSimple("PAGE_NOT_FOUND", "Invalid page", http.StatusNotFound)
)

// CatalogHandler serves the public catalog browsing endpoints.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListPackages godoc
// @Summary  List active packages
// @Tags     catalog
// @Produce  json
// @Param    page  query     int  false  "Page number"
// @Success  200   {object}  response.PackagePageResponse
// @Failure  404   {object}  pkg.HTTPError
// @Router   /packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		respondError(c, errPageNotFound)
		return
	}

	result, err := h.usecase.ListPackages(c.Request.Context(), page)
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPackagePage(result))
}

// FeaturedPackages godoc
// @Summary  Featured packages for the home page
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  response.PackageResponse
// @Router   /packages/featured [get]
func (h *CatalogHandler) FeaturedPackages(c *gin.Context) {
	pkgs, err := h.usecase.FeaturedPackages(c.Request.Context())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPackages(pkgs))
}

// GetPackage godoc
// @Summary  Package detail
// @Tags     catalog
// @Produce  json
// @Param    package_id  path      int  true  "Package id"
// @Success  200         {object}  response.PackageDetailResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /packages/{package_id} [get]
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	id, ok := int64Param(c, "package_id")
	if !ok {
		respondError(c, errInvalidPackageID)
		return
	}

	detail, err := h.usecase.GetPackageDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPackageDetail(detail))
}

// ListCategories godoc
// @Summary  Active categories with their subcategories
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  response.CategoryResponse
// @Router   /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	cats, err := h.usecase.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCategoriesWithSubCategories(cats))
}

// ListCategoryPackages godoc
// @Summary  Active packages of a category
// @Tags     catalog
// @Produce  json
// @Param    category_id  path      int  true   "Category id"
// @Param    subcategory  query     int  false  "Subcategory filter"
// @Param    page         query     int  false  "Page number"
// @Success  200          {object}  response.CategoryListingResponse
// @Failure  404          {object}  pkg.HTTPError
// @Router   /categories/{category_id}/packages [get]
func (h *CatalogHandler) ListCategoryPackages(c *gin.Context) {
	categoryID, ok := int64Param(c, "category_id")
	if !ok {
		respondError(c, errInvalidCategoryID)
		return
	}

	var subCategoryID int64
	if raw := strings.TrimSpace(c.Query("subcategory")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v <= 0 {
			respondError(c, pkg.NewDomainErrorSimple("INVALID_SUBCATEGORY_ID", "Invalid subcategory id", http.StatusBadRequest))
			return
		}
		subCategoryID = v
	}

	page, ok := pageQuery(c)
	if !ok {
		respondError(c, errPageNotFound)
		return
	}

	listing, err := h.usecase.ListCategoryPackages(c.Request.Context(), categoryID, subCategoryID, page)
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCategoryListing(listing))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPackageID):
		return errInvalidPackageID
	case errors.Is(err, usecase.ErrInvalidCategoryID):
		return errInvalidCategoryID
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPageNotFound):
		return errPageNotFound
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
