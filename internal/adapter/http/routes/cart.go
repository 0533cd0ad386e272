package routes

import (
	"builder_estimates/internal/adapter/http/handlers"
	"builder_estimates/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathCart     = "/cart"
	PathCheckout = "/checkout"
)

func addCartRoutes(rg *gin.RouterGroup, h *handlers.CartHandler) {
	cart := rg.Group(PathCart)
	{
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items/:package_id", h.AddItem)
		cart.PATCH("/items/:package_id", h.UpdateItem)
		cart.DELETE("/items/:package_id", h.RemoveItem)
	}
}

// Checkout works for guests too; a valid bearer token attaches the estimate to its builder.
func addCheckoutRoutes(rg *gin.RouterGroup, auth *middleware.AuthMiddleware, h *handlers.CheckoutHandler) {
	rg.POST(PathCheckout, auth.OptionalAuth(), h.Checkout)
}
