package http

import (
	"context"
	"encoding/json"
	"errors"
	"hash/fnv"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/discount-service/internal/domain/dto"
	"github.com/guttosm/discount-service/internal/domain/model"
	"github.com/guttosm/discount-service/internal/i18n"
	"github.com/guttosm/discount-service/internal/metrics"
	"github.com/guttosm/discount-service/internal/middleware"
	"github.com/guttosm/discount-service/internal/service"
)

// pricingRulesCache provides thread-safe caching of the active pricing rules
// together with the version of the rules document they came from.
type pricingRulesCache struct {
	rules     atomic.Value // holds model.PricingRules
	version   atomic.Value // holds int
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newPricingRulesCache creates a new pricing rules cache with the given TTL.
func newPricingRulesCache(ttl time.Duration) *pricingRulesCache {
	c := &pricingRulesCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns cached pricing rules and their document version if valid, or
// false if expired/empty.
func (c *pricingRulesCache) get() (model.PricingRules, int, bool) {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if rules := c.rules.Load(); rules != nil {
				if r, ok := rules.(model.PricingRules); ok {
					version, _ := c.version.Load().(int)
					return r, version, true
				}
			}
		}
	}
	return model.PricingRules{}, 0, false
}

// set stores pricing rules and their document version in the cache with TTL.
func (c *pricingRulesCache) set(rules model.PricingRules, version int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.rules.Store(rules)
	c.version.Store(version)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *pricingRulesCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// requestDigest produces a cache key from a request payload. Both discount
// entry points are pure, so identical payloads under identical rules can
// share a computed result.
func requestDigest(v interface{}) (uint64, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, false
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64(), true
}

// resultKey folds the rules document version into a request digest so that
// results computed under superseded rules can never be served after another
// instance activates a new version. Version 0 marks the engine's built-in
// rules.
func resultKey(digest uint64, rulesVersion int) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte{
		byte(rulesVersion), byte(rulesVersion >> 8),
		byte(rulesVersion >> 16), byte(rulesVersion >> 24),
	})
	return digest ^ h.Sum64()
}

// Handler provides HTTP handlers for discount generation routes.
type Handler struct {
	engine              service.DiscountEngine
	pricingRulesService service.PricingRulesService
	rulesCache          *pricingRulesCache
	catalogResults      *service.ShardedCache[model.OperationsResult]
	targetedResults     *service.ShardedCache[model.DiscountsResult]
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithPricingRulesCacheTTL sets the TTL for pricing rules caching.
func WithPricingRulesCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.rulesCache = newPricingRulesCache(ttl)
	}
}

// WithResultCache enables response caching for computed discount results.
func WithResultCache(capacity int, ttl time.Duration, shards int) HandlerOption {
	return func(h *Handler) {
		h.catalogResults = service.NewShardedCache[model.OperationsResult](capacity, ttl, shards)
		h.targetedResults = service.NewShardedCache[model.DiscountsResult](capacity, ttl, shards)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(engine service.DiscountEngine, pricingRulesService service.PricingRulesService, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine:              engine,
		pricingRulesService: pricingRulesService,
		rulesCache:          newPricingRulesCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getPricingRules retrieves pricing rules and their document version from
// cache or database. Returns false when no rules document is configured, in
// which case the engine's built-in rules apply.
func (h *Handler) getPricingRules(ctx context.Context) (model.PricingRules, int, bool) {
	// Check cache first
	if rules, version, ok := h.rulesCache.get(); ok {
		return rules, version, true
	}

	// Cache miss - fetch from database
	if h.pricingRulesService == nil {
		return model.PricingRules{}, 0, false
	}

	// Use a timeout for database fetch
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	config, err := h.pricingRulesService.GetActive(ctx)
	if err != nil || config == nil {
		return model.PricingRules{}, 0, false
	}

	// Cache the result
	h.rulesCache.set(config.Rules, config.Version)
	return config.Rules, config.Version, true
}

// InvalidatePricingRulesCache invalidates the pricing rules cache and any
// cached discount results computed under the old rules.
// Call this when pricing rules are updated.
func (h *Handler) InvalidatePricingRulesCache() {
	h.rulesCache.invalidate()
	if h.catalogResults != nil {
		h.catalogResults.Clear()
	}
	if h.targetedResults != nil {
		h.targetedResults.Clear()
	}
}

// GenerateCartDiscounts handles POST /api/discounts/cart requests.
//
// @Summary      Generate catalog volume discounts
// @Description  Computes per-product volume discount operations for a cart. Lines are grouped by product, quantities summed across variants, and the buyer's catalog tier table determines the discounted unit price. An empty cart is rejected. Supports idempotency via Idempotency-Key header.
// @Tags         Discounts
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CartDiscountsRequest true "Cart snapshot and discount context"
// @Success      200 {object} dto.SuccessResponse "Discount operations"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or empty cart"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/discounts/cart [post]
func (h *Handler) GenerateCartDiscounts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CartDiscountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			metrics.RecordDiscountGeneration("catalog", 0, "validation_error")
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationCart, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "generate_cart", "Catalog discount generation requested", map[string]interface{}{
				"line_count":   len(req.Cart.Lines),
				"has_discount": len(req.Discount.DiscountClasses) > 0,
			})
		}
	}

	start := time.Now()

	rules, rulesVersion, haveRules := h.getPricingRules(c.Request.Context())

	digest, cacheable := uint64(0), false
	if h.catalogResults != nil {
		if d, ok := requestDigest(req); ok {
			digest, cacheable = resultKey(d, rulesVersion), true
			if result, hit := h.catalogResults.Get(digest); hit {
				metrics.RecordDiscountGeneration("catalog", time.Since(start), "success")
				builder.SuccessOK(result)
				return
			}
		}
	}

	var result model.OperationsResult
	var err error
	if haveRules {
		result, err = h.engine.GenerateCartOperationsWithRules(req.Cart, req.Discount, rules)
	} else {
		result, err = h.engine.GenerateCartOperations(req.Cart, req.Discount)
	}

	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, model.ErrEmptyCart) {
			metrics.RecordDiscountGeneration("catalog", duration, "empty_cart")
			builder.Error(http.StatusBadRequest, i18n.ErrKeyEmptyCart, err)
			return
		}
		metrics.RecordDiscountGeneration("catalog", duration, "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if cacheable {
		h.catalogResults.Set(digest, result)
	}

	metrics.RecordDiscountGeneration("catalog", duration, "success")
	builder.SuccessOK(result)
}

// GenerateTargetedDiscounts handles POST /api/discounts/targeted requests.
//
// @Summary      Generate targeted volume discounts
// @Description  Computes targeted volume discounts for a B2B cart. Only lines whose merchandise is a variant of a configured target product participate. Non-B2B carts and empty carts yield an empty discount list. Supports idempotency via Idempotency-Key header.
// @Tags         Discounts
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.TargetedDiscountsRequest true "Cart snapshot"
// @Success      200 {object} dto.SuccessResponse "Targeted discounts"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/discounts/targeted [post]
func (h *Handler) GenerateTargetedDiscounts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.TargetedDiscountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			metrics.RecordDiscountGeneration("targeted", 0, "validation_error")
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationCart, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "generate_targeted", "Targeted discount generation requested", map[string]interface{}{
				"line_count": len(req.Cart.Lines),
				"is_b2b":     req.Cart.BuyerIdentity.IsBusinessAccount(),
			})
		}
	}

	start := time.Now()

	rules, rulesVersion, haveRules := h.getPricingRules(c.Request.Context())

	digest, cacheable := uint64(0), false
	if h.targetedResults != nil {
		if d, ok := requestDigest(req); ok {
			digest, cacheable = resultKey(d, rulesVersion), true
			if result, hit := h.targetedResults.Get(digest); hit {
				metrics.RecordDiscountGeneration("targeted", time.Since(start), "success")
				builder.SuccessOK(result)
				return
			}
		}
	}

	var result model.DiscountsResult
	if haveRules {
		result = h.engine.GenerateTargetedDiscountsWithRules(req.Cart, rules)
	} else {
		result = h.engine.GenerateTargetedDiscounts(req.Cart)
	}

	duration := time.Since(start)

	if cacheable {
		h.targetedResults.Set(digest, result)
	}

	metrics.RecordDiscountGeneration("targeted", duration, "success")
	builder.SuccessOK(result)
}
