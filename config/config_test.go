package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 5*time.Minute, cfg.Pricing.CacheTTL)
		assert.Equal(t, 1024, cfg.Pricing.ResultCacheSize)
		assert.Equal(t, time.Minute, cfg.Pricing.ResultCacheTTL)
		assert.Equal(t, 8, cfg.Pricing.ResultCacheShards)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, "admin", cfg.Auth.AdminUser)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
		assert.Equal(t, "discount_service", cfg.Database.DatabaseName)
		assert.Equal(t, 30*24*time.Hour, cfg.Database.LogsTTL)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("PRICING_RULES_CACHE_TTL", "10m")
		_ = os.Setenv("PRICING_RULES_FILE", "/etc/discounts/rules.json")
		_ = os.Setenv("RESULT_CACHE_SIZE", "256")
		_ = os.Setenv("RESULT_CACHE_TTL", "30s")
		_ = os.Setenv("RESULT_CACHE_SHARDS", "4")
		_ = os.Setenv("AUTH_ENABLED", "true")
		_ = os.Setenv("API_KEYS", "key1,key2")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("MONGODB_URI", "mongodb://mongo:27017")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 10*time.Minute, cfg.Pricing.CacheTTL)
		assert.Equal(t, "/etc/discounts/rules.json", cfg.Pricing.RulesFile)
		assert.Equal(t, 256, cfg.Pricing.ResultCacheSize)
		assert.Equal(t, 30*time.Second, cfg.Pricing.ResultCacheTTL)
		assert.Equal(t, 4, cfg.Pricing.ResultCacheShards)
		assert.True(t, cfg.Auth.Enabled)
		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, "mongodb://mongo:27017", cfg.Database.URI)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("AUTH_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("RESULT_CACHE_SIZE", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 1024, cfg.Pricing.ResultCacheSize)
	})

	t.Run("parses allow-list overrides with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PROFESSIONAL_LOCATIONS", " Texas Solutions , Santa Cruz Pro ")
		_ = os.Setenv("TARGET_PRODUCTS", "gid://shopify/Product/1, ,gid://shopify/Product/2")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{"Texas Solutions", "Santa Cruz Pro"}, cfg.Pricing.ProfessionalLocations)
		assert.Equal(t, []string{"gid://shopify/Product/1", "gid://shopify/Product/2"}, cfg.Pricing.TargetProducts)
	})

	t.Run("returns nil for empty allow-list overrides", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Pricing.ProfessionalLocations)
		assert.Nil(t, cfg.Pricing.TargetProducts)
	})

	t.Run("parses API keys with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("API_KEYS", " key1 , key2 , key3 ")
		defer os.Clearenv()

		cfg := Load()

		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.True(t, cfg.Auth.APIKeys["key3"])
	})

	t.Run("returns nil for empty API keys", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Auth.APIKeys)
	})

	t.Run("CORS origins keep local defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://admin.example.com")
		defer os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://admin.example.com")
	})
}
