package handlers

import (
	"strconv"
	"strings"

	"builder_estimates/pkg"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// int64Param parses a positive integer path parameter.
func int64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// pageQuery reads ?page=; an absent value is the first page.
func pageQuery(c *gin.Context) (int, bool) {
	raw := strings.TrimSpace(c.Query("page"))
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}
