package handlers

import (
	"errors"
	"net/http"
	"time"

	request "clinica_billing/internal/adapter/http/dto/request"
	response "clinica_billing/internal/adapter/http/dto/response"
	"clinica_billing/internal/domain/entities"
	"clinica_billing/internal/usecase"
	"clinica_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)
)

// PricingHandler exposes the price-resolution engine to the pricing
// management UI and the billing import workflow.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// ResolvePrice resolves the unit price for one billable code.
//
// Resolution can only fail on malformed input; missing price data comes back
// as a 200 with a low-confidence suggested estimate.
func (h *PricingHandler) ResolvePrice(c *gin.Context) {
	var payload request.ResolvePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	serviceDate, err := payload.ResolveServiceDate()
	if err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Resolve(c.Request.Context(), payload.ResolveClinicID(), payload.ResolveCode(), serviceDate)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResolution(result))
}

// ResolvePriceBatch resolves a list of codes for one clinic and service
// date. Every submitted code gets an entry in the response, degraded codes
// included, so import rows stay aligned with results.
func (h *PricingHandler) ResolvePriceBatch(c *gin.Context) {
	var payload request.ResolvePriceBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	serviceDate, err := payload.ResolveServiceDate()
	if err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	results, err := h.usecase.ResolveBatch(c.Request.Context(), payload.ResolveClinicID(), payload.Codes, serviceDate)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResolutionMap(results))
}

// SetClinicPrice opens a new clinic-scoped price record.
func (h *PricingHandler) SetClinicPrice(c *gin.Context) {
	var payload request.SetClinicPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	h.setPrice(c, payload.ResolveClinicID(), payload.ResolveCode(), payload.ResolvePrice, payload.ResolveEffectiveFrom,
		func(c *gin.Context, clinicID, code string, price float64, effectiveFrom time.Time) error {
			return h.usecase.SetClinicPrice(c.Request.Context(), clinicID, code, price, effectiveFrom)
		})
}

// SetDefaultPrice opens a new organization-default price record.
func (h *PricingHandler) SetDefaultPrice(c *gin.Context) {
	var payload request.SetDefaultPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	h.setPrice(c, entities.OrganizationDefaultScopeID, payload.ResolveCode(), payload.ResolvePrice, payload.ResolveEffectiveFrom,
		func(c *gin.Context, _, code string, price float64, effectiveFrom time.Time) error {
			return h.usecase.SetOrganizationDefaultPrice(c.Request.Context(), code, price, effectiveFrom)
		})
}

func (h *PricingHandler) setPrice(
	c *gin.Context,
	scopeID, code string,
	resolvePrice func() (float64, error),
	resolveEffectiveFrom func() (time.Time, error),
	apply func(c *gin.Context, scopeID, code string, price float64, effectiveFrom time.Time) error,
) {
	price, err := resolvePrice()
	if err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}
	effectiveFrom, err := resolveEffectiveFrom()
	if err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	if err := apply(c, scopeID, code, price, effectiveFrom); err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.PriceUpdateResponse{
		ScopeID:       scopeID,
		Code:          code,
		Price:         price,
		EffectiveFrom: effectiveFrom,
	})
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClinicID),
		errors.Is(err, usecase.ErrInvalidCode),
		errors.Is(err, usecase.ErrInvalidServiceDate),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidEffectiveFrom):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		// Mutation-path store failures: the caller must know the price change
		// did not take effect.
		return pkg.NewDomainError("PRICE_STORE_UNAVAILABLE", "Price update was not applied", err, http.StatusBadGateway)
	}
}
