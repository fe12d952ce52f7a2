package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")
	t.Setenv("OWNER_EMAIL", " Owner@Shop.test ")
	t.Setenv("ALLOWED_EMAILS", "a@shop.test, B@shop.test,,")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_BASE_URL", "https://books.shop.test")
	t.Setenv("CURRENCY_CODE", "usd")
	t.Setenv("COGS_METHOD", "matched")
	t.Setenv("MARKETING_KEYWORDS", "Marketing, Ads")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, "owner@shop.test", cfg.OwnerEmail)
	assert.Equal(t, []string{"a@shop.test", "b@shop.test"}, cfg.AllowedEmails)
	assert.Equal(t, []string{"https://books.shop.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "USD", cfg.CurrencyCode)
	assert.Equal(t, "matched", cfg.COGSMethod)
	assert.Equal(t, []string{"marketing", "ads"}, cfg.MarketingKeywords)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DURATION", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList("", false))
	assert.Equal(t, []string{"A", "b"}, splitList(" A ,b", false))
}
