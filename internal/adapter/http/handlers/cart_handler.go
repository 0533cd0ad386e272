package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	request "builder_estimates/internal/adapter/http/dto/request"
	response "builder_estimates/internal/adapter/http/dto/response"
	"builder_estimates/internal/adapter/http/middleware"
	"builder_estimates/internal/usecase"
	"builder_estimates/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

// CartHandler exposes the session cart. The cart is loaded and saved by the session
// middleware around every request.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetCart godoc
// @Summary  Current cart with totals
// @Tags     cart
// @Produce  json
// @Success  200  {object}  response.CartResponse
// @Router   /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), middleware.Cart(c))
	if err != nil {
		respondError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCartSummary(summary))
}

// AddItem godoc
// @Summary  Add a package to the cart
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    package_id  path      int                      true   "Package id"
// @Param    payload     body      request.CartItemRequest  false  "Quantity, default 1"
// @Success  200         {object}  response.CartMutationResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /cart/items/{package_id} [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	id, payload, ok := cartItemInput(c)
	if !ok {
		return
	}

	cart := middleware.Cart(c)
	p, err := h.usecase.AddPackage(c.Request.Context(), cart, id, payload.ResolveQuantity(1))
	if err != nil {
		respondError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.CartMutationResponse{
		Message: fmt.Sprintf("%s added to your cart.", p.Name),
		Count:   cart.Len(),
	})
}

// UpdateItem godoc
// @Summary  Set the quantity of a cart line; zero or less removes it
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    package_id  path      int                      true   "Package id"
// @Param    payload     body      request.CartItemRequest  false  "Quantity, default 1"
// @Success  200         {object}  response.CartMutationResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /cart/items/{package_id} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, payload, ok := cartItemInput(c)
	if !ok {
		return
	}

	cart := middleware.Cart(c)
	p, kept, err := h.usecase.UpdatePackage(c.Request.Context(), cart, id, payload.ResolveQuantity(1))
	if err != nil {
		respondError(c, mapCartError(err))
		return
	}

	msg := "Cart updated."
	if !kept {
		msg = fmt.Sprintf("%s removed from your cart.", p.Name)
	}
	c.JSON(http.StatusOK, response.CartMutationResponse{Message: msg, Count: cart.Len()})
}

// RemoveItem godoc
// @Summary  Remove a package from the cart
// @Tags     cart
// @Produce  json
// @Param    package_id  path      int  true  "Package id"
// @Success  200         {object}  response.CartMutationResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /cart/items/{package_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := int64Param(c, "package_id")
	if !ok {
		respondError(c, errInvalidPackageID)
		return
	}

	cart := middleware.Cart(c)
	name, err := h.usecase.RemovePackage(c.Request.Context(), cart, id)
	if err != nil {
		respondError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.CartMutationResponse{
		Message: fmt.Sprintf("%s removed from your cart.", name),
		Count:   cart.Len(),
	})
}

// ClearCart godoc
// @Summary  Empty the cart
// @Tags     cart
// @Success  204
// @Router   /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.usecase.Clear(c.Request.Context(), middleware.Cart(c))
	c.Status(http.StatusNoContent)
}

func cartItemInput(c *gin.Context) (int64, request.CartItemRequest, bool) {
	var payload request.CartItemRequest
	id, ok := int64Param(c, "package_id")
	if !ok {
		respondError(c, errInvalidPackageID)
		return 0, payload, false
	}
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, errInvalidCartPayload)
		return 0, payload, false
	}
	return id, payload, true
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be at least 1", http.StatusBadRequest)
	default:
		return mapCatalogError(err)
	}
}
