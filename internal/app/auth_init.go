// Package app provides authentication initialization.
package app

import (
	"github.com/guttosm/discount-service/config"
	"github.com/guttosm/discount-service/internal/service"
	"github.com/rs/zerolog/log"
)

// initializeAuthService builds the JWT auth service for the admin surface.
// Returns nil when auth is disabled or no admin credentials are configured,
// which leaves the pricing rules endpoints unprotected.
func initializeAuthService(cfg config.AuthConfig) service.AuthService {
	if !cfg.Enabled {
		return nil
	}

	if cfg.AdminPasswordHash == "" {
		log.Warn().Msg("AUTH_ENABLED is set but ADMIN_PASSWORD_HASH is empty - admin login disabled")
		return nil
	}

	log.Info().Str("admin_user", cfg.AdminUser).Msg("Admin authentication enabled")
	return service.NewAuthService(cfg)
}
