package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/discount-service/internal/domain/dto"
	"github.com/guttosm/discount-service/internal/middleware"
	"github.com/guttosm/discount-service/internal/service"
)

// PricingRulesHandler provides HTTP handlers for pricing rules routes.
type PricingRulesHandler struct {
	pricingRulesService service.PricingRulesService
	discountHandler     *Handler
}

// NewPricingRulesHandler creates a new PricingRulesHandler instance.
func NewPricingRulesHandler(pricingRulesService service.PricingRulesService, discountHandler *Handler) *PricingRulesHandler {
	return &PricingRulesHandler{
		pricingRulesService: pricingRulesService,
		discountHandler:     discountHandler,
	}
}

// GetActivePricingRules handles GET /api/pricing-rules requests.
//
// @Summary      Get active pricing rules
// @Description  Returns the currently active pricing rules configuration
// @Tags         Pricing Rules
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Active pricing rules"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "No active pricing rules found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pricing-rules [get]
func (h *PricingRulesHandler) GetActivePricingRules(c *gin.Context) {
	builder := NewResponseBuilder(c)

	config, err := h.pricingRulesService.GetActive(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	if config == nil {
		builder.Error(http.StatusNotFound, dto.ErrCodeNotFound, nil)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"rules":      config.Rules,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// UpdatePricingRules handles PUT /api/pricing-rules requests.
//
// @Summary      Update pricing rules
// @Description  Replaces the active pricing rules configuration with a new version
// @Tags         Pricing Rules
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.UpdatePricingRulesRequest true "Pricing rules configuration"
// @Success      200 {object} dto.SuccessResponse "Updated pricing rules"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pricing-rules [put]
func (h *PricingRulesHandler) UpdatePricingRules(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdatePricingRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	config, err := h.pricingRulesService.Create(c.Request.Context(), req.Rules, req.UpdatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	if h.discountHandler != nil {
		h.discountHandler.InvalidatePricingRulesCache()
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_pricing_rules", "Pricing rules configuration updated", map[string]interface{}{
				"version":     config.Version,
				"table_count": len(req.Rules.Tables),
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{
		"rules":      config.Rules,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// ListPricingRules handles GET /api/pricing-rules/history requests.
//
// @Summary      List pricing rules history
// @Description  Returns all pricing rules configurations (history)
// @Tags         Pricing Rules
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Pricing rules history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pricing-rules/history [get]
func (h *PricingRulesHandler) ListPricingRules(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.pricingRulesService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	builder.SuccessOK(configs)
}
