package handlers

import (
	"errors"
	"net/http"

	request "builder_estimates/internal/adapter/http/dto/request"
	response "builder_estimates/internal/adapter/http/dto/response"
	"builder_estimates/internal/adapter/http/middleware"
	"builder_estimates/internal/usecase"
	"builder_estimates/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for persisted estimates.
//
// The summary is public so the thank-you page works for guests; everything else is
// scoped to the authenticated builder, except the admin status change.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// GetSummary godoc
// @Summary  Public estimate summary (thank-you page)
// @Tags     estimates
// @Produce  json
// @Param    estimate_number  path      string  true  "Estimate number, e.g. EST-2024-001"
// @Success  200              {object}  response.EstimateSummaryResponse
// @Failure  404              {object}  pkg.HTTPError
// @Router   /estimates/{estimate_number}/summary [get]
func (h *EstimateHandler) GetSummary(c *gin.Context) {
	estimate, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("estimate_number"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateSummary(estimate))
}

// ListMine godoc
// @Summary   Estimates of the authenticated builder, newest first
// @Tags      estimates
// @Produce   json
// @Success   200  {array}   response.EstimateResponse
// @Failure   401  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /estimates [get]
func (h *EstimateHandler) ListMine(c *gin.Context) {
	list, err := h.usecase.ListForBuilder(c.Request.Context(), middleware.BuilderID(c))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// GetMine godoc
// @Summary   Estimate detail, owner only
// @Tags      estimates
// @Produce   json
// @Param     estimate_number  path      string  true  "Estimate number"
// @Success   200              {object}  response.EstimateResponse
// @Failure   404              {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /estimates/{estimate_number} [get]
func (h *EstimateHandler) GetMine(c *gin.Context) {
	estimate, err := h.usecase.GetForBuilder(c.Request.Context(), c.Param("estimate_number"), middleware.BuilderID(c))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// UpdateStatus godoc
// @Summary   Change an estimate's status (admin)
// @Tags      admin
// @Accept    json
// @Produce   json
// @Param     estimate_number  path      string                         true  "Estimate number"
// @Param     payload          body      request.EstimateStatusRequest  true  "New status"
// @Success   200              {object}  response.EstimateResponse
// @Failure   400              {object}  pkg.HTTPError
// @Failure   404              {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/estimates/{estimate_number}/status [patch]
func (h *EstimateHandler) UpdateStatus(c *gin.Context) {
	var payload request.EstimateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}

	estimate, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("estimate_number"), payload.ResolveStatus())
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateNumber), errors.Is(err, usecase.ErrInvalidBuilderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be one of pending, contacted, converted, archived", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
