package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/discount-service/internal/service"
)

// DiscountRoutes handles discount-related route registration.
type DiscountRoutes struct {
	handler             *Handler
	pricingRulesHandler *PricingRulesHandler
}

// NewDiscountRoutes creates a new DiscountRoutes instance.
func NewDiscountRoutes(engine service.DiscountEngine, pricingRulesService service.PricingRulesService, opts ...HandlerOption) *DiscountRoutes {
	handler := NewHandler(engine, pricingRulesService, opts...)

	var pricingRulesHandler *PricingRulesHandler
	if pricingRulesService != nil {
		pricingRulesHandler = NewPricingRulesHandler(pricingRulesService, handler)
	}

	return &DiscountRoutes{
		handler:             handler,
		pricingRulesHandler: pricingRulesHandler,
	}
}

// RegisterPublicRoutes registers the discount generation endpoints. These
// stay public in every mode: the commerce platform invokes them per cart
// and carries no admin credentials.
func (r *DiscountRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/discounts/cart", r.handler.GenerateCartDiscounts)
	rg.POST("/discounts/targeted", r.handler.GenerateTargetedDiscounts)
}

// RegisterPricingRulesRoutes registers the pricing rules management
// endpoints on the given group. Pass a protected group to require admin
// authentication.
func (r *DiscountRoutes) RegisterPricingRulesRoutes(rg *gin.RouterGroup) {
	if r.pricingRulesHandler == nil {
		return
	}
	rg.GET("/pricing-rules", r.pricingRulesHandler.GetActivePricingRules)
	rg.PUT("/pricing-rules", r.pricingRulesHandler.UpdatePricingRules)
	rg.GET("/pricing-rules/history", r.pricingRulesHandler.ListPricingRules)
}

// GetHandler returns the underlying discount handler.
func (r *DiscountRoutes) GetHandler() *Handler {
	return r.handler
}
