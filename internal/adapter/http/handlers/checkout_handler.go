package handlers

import (
	"errors"
	"io"
	"net/http"

	request "builder_estimates/internal/adapter/http/dto/request"
	response "builder_estimates/internal/adapter/http/dto/response"
	"builder_estimates/internal/adapter/http/middleware"
	"builder_estimates/internal/usecase"
	"builder_estimates/internal/usecase/interfaces"
	"builder_estimates/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler converts the session cart into an estimate. A valid bearer token
// selects the authenticated flow; otherwise the guest contact fields are required.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// Checkout godoc
// @Summary   Submit the cart as an estimate
// @Tags      checkout
// @Accept    json
// @Produce   json
// @Param     payload  body      request.CheckoutRequest  false "Contact and notes"
// @Success   201      {object}  response.CheckoutResponse
// @Failure   400      {object}  pkg.HTTPError
// @Failure   409      {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	// The body is optional for an authenticated builder.
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, errInvalidCheckoutPayload)
		return
	}

	estimate, err := h.usecase.Checkout(c.Request.Context(), middleware.Cart(c), payload.ToCheckoutInput(middleware.BuilderID(c)))
	if err != nil {
		respondError(c, mapCheckoutError(err))
		return
	}

	c.Header("Location", "/v1/estimates/"+estimate.EstimateNumber+"/summary")
	c.JSON(http.StatusCreated, response.FromCheckout(estimate))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCartEmpty):
		return pkg.NewDomainErrorSimple("CART_EMPTY", "Your cart is empty.", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoAvailablePackages):
		return pkg.NewDomainErrorSimple("NO_AVAILABLE_PACKAGES", "None of the packages in your cart are available any more.", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidGuestContact):
		return pkg.NewDomainErrorSimple("INVALID_GUEST_CONTACT", "Company name, contact person and email are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNumberConflict):
		return pkg.NewDomainErrorSimple("ESTIMATE_NUMBER_CONFLICT", "Could not allocate an estimate number, please retry", http.StatusConflict)
	case errors.Is(err, interfaces.ErrBuilderNotFound):
		return pkg.NewDomainErrorSimple("BUILDER_NOT_FOUND", "Builder account not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrCheckoutTooLarge):
		return pkg.NewDomainErrorSimple("CART_TOO_LARGE", "The cart has too many packages for one estimate", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
