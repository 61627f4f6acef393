// Package app provides service initialization.
package app

import (
	"encoding/json"
	"os"

	"github.com/guttosm/discount-service/config"
	"github.com/guttosm/discount-service/internal/domain/model"
	"github.com/guttosm/discount-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Engine service.DiscountEngine
}

// InitializeServices initializes business logic services. Environment
// overrides for the professional location and target product allow-lists
// replace the corresponding lists of the built-in rules.
func InitializeServices(cfg config.PricingConfig) *ServiceComponents {
	rules := BaselinePricingRules(cfg)
	engine := service.NewDiscountEngineService(service.WithPricingRules(rules))

	return &ServiceComponents{
		Engine: engine,
	}
}

// BaselinePricingRules returns the built-in pricing rules with the
// configured overrides applied. A rules file, when set and valid, replaces
// the built-in rules entirely; the allow-list overrides apply on top.
func BaselinePricingRules(cfg config.PricingConfig) model.PricingRules {
	rules := service.DefaultPricingRules()

	if cfg.RulesFile != "" {
		if loaded, err := loadRulesFile(cfg.RulesFile); err != nil {
			log.Warn().Err(err).Str("file", cfg.RulesFile).
				Msg("Ignoring pricing rules file - using built-in rules")
		} else {
			rules = loaded
		}
	}

	if len(cfg.ProfessionalLocations) > 0 {
		rules.ProfessionalLocations = cfg.ProfessionalLocations
	}
	if len(cfg.TargetProducts) > 0 {
		rules.TargetProducts = cfg.TargetProducts
	}
	return rules
}

// loadRulesFile reads and validates a JSON pricing rules document.
func loadRulesFile(path string) (model.PricingRules, error) {
	var rules model.PricingRules

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, err
	}
	if err := json.Unmarshal(data, &rules); err != nil {
		return rules, err
	}
	if err := rules.Validate(); err != nil {
		return rules, err
	}
	return rules, nil
}
