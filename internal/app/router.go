// Package app provides router configuration.
package app

import (
	"github.com/guttosm/discount-service/config"
	"github.com/guttosm/discount-service/internal/http"
	"github.com/guttosm/discount-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	engine service.DiscountEngine,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var pricingRulesService service.PricingRulesService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.PricingRulesRepo != nil {
			pricingRulesService = service.NewPricingRulesService(dbComponents.PricingRulesRepo)
		}
	}

	handlerOpts := []http.HandlerOption{
		http.WithPricingRulesCacheTTL(cfg.Pricing.CacheTTL),
	}
	if cfg.Pricing.ResultCacheSize > 0 {
		handlerOpts = append(handlerOpts, http.WithResultCache(
			cfg.Pricing.ResultCacheSize,
			cfg.Pricing.ResultCacheTTL,
			cfg.Pricing.ResultCacheShards,
		))
	}

	handler := http.NewHandler(engine, pricingRulesService, handlerOpts...)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.PricingRulesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_pricing_rules", dbComponents.PricingRulesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	authService := initializeAuthService(cfg.Auth)

	routerCfg := http.RouterConfig{
		RateLimit:           cfg.Server.RateLimit,
		RateWindow:          cfg.Server.RateWindow,
		EnableAuth:          cfg.Auth.Enabled,
		APIKeys:             cfg.Auth.APIKeys,
		EnableIdempotency:   true,
		CORSOrigins:         cfg.Server.CORSOrigins,
		SwaggerUser:         cfg.Server.SwaggerUser,
		SwaggerPass:         cfg.Server.SwaggerPass,
		LoggingService:      loggingService,
		PricingRulesService: pricingRulesService,
		AuthService:         authService,
		Engine:              engine,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
