package routes

import (
	"clinica_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing = "/pricing"
)

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		// Read side: resolution never errors on missing data, only on
		// malformed payloads.
		pricing.POST("/resolve", pricingHandler.ResolvePrice)
		pricing.POST("/resolve/batch", pricingHandler.ResolvePriceBatch)

		// Write side: close-then-open price record mutations.
		pricing.POST("/clinic-prices", pricingHandler.SetClinicPrice)
		pricing.POST("/default-prices", pricingHandler.SetDefaultPrice)
	}
}
