// Package main is the entry point for the discount-service application.
//
// @title           Discount Service API
// @version         1.0.0
// @description     API for computing B2B volume discounts over cart snapshots.
//
//	This service classifies the buyer, aggregates cart lines per product and
//	applies tiered wholesale pricing to produce discount operations.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/discount-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Discounts
// @tag.description Volume discount computation operations
//
// @tag.name        PricingRules
// @tag.description Pricing rules management endpoints
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/discount-service/docs" // swagger docs

	"github.com/guttosm/discount-service/config"
	"github.com/guttosm/discount-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
