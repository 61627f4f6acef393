// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/discount-service/config"
	"github.com/guttosm/discount-service/internal/circuitbreaker"
	"github.com/guttosm/discount-service/internal/domain/model"
	"github.com/guttosm/discount-service/internal/repository"
	"github.com/guttosm/discount-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	PricingRulesRepo           repository.PricingRulesRepositoryInterface
	LoggingService             service.LoggingService
	PricingRulesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker         *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, baselineRules model.PricingRules) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	pricingRulesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-pricing-rules",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	pricingRulesRepo := repository.NewPricingRulesRepository(db)
	pricingRulesRepoWithCB := repository.NewPricingRulesRepositoryWithCircuitBreaker(pricingRulesRepo, pricingRulesCB)

	// Seed an initial pricing rules configuration if none exists
	if err := initializeDefaultPricingRules(pricingRulesRepoWithCB, baselineRules); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default pricing rules")
	}

	return &DatabaseComponents{
		PricingRulesRepo:           pricingRulesRepoWithCB,
		LoggingService:             loggingService,
		PricingRulesCircuitBreaker: pricingRulesCB,
		LogsCircuitBreaker:         logsCB,
	}
}

// initializeDefaultPricingRules creates a pricing rules configuration from
// the baseline rules if no active configuration exists.
func initializeDefaultPricingRules(repo repository.PricingRulesRepositoryInterface, rules model.PricingRules) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if active == nil {
		if _, err := repo.Create(ctx, rules, "system"); err != nil {
			return err
		}
		log.Info().Int("tables", len(rules.Tables)).Msg("Created default pricing rules")
	}

	return nil
}
