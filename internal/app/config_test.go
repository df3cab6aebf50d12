package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sustainafood/grocery-orders/internal/gateway/sandbox"
	"github.com/sustainafood/grocery-orders/internal/gateway/stripe"
)

func validConfig() Config {
	return Config{
		Addr:        "0.0.0.0:8080",
		DatabaseURL: "postgres://localhost/grocery",
		Auth:        AuthConfig{JWTSecret: "secret"},
		Payment:     PaymentConfig{Currency: "eur", Sandbox: true},
	}
}

func TestConfig_Validate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "no database", mutate: func(c *Config) { c.DatabaseURL = "" }, want: "database URL is required"},
		{name: "no jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }, want: "JWT secret is required"},
		{
			name:   "stripe without publishable key",
			mutate: func(c *Config) { c.Payment.Sandbox, c.Payment.StripeSecretKey = false, "sk_test_123" },
			want:   "publishable key",
		},
		{
			name: "stripe",
			mutate: func(c *Config) {
				c.Payment = PaymentConfig{Currency: "eur", StripeSecretKey: "sk_test_123", StripePublishableKey: "pk_test_123"}
			},
		},
		{
			name:   "no payment provider",
			mutate: func(c *Config) { c.Payment.Sandbox = false },
			want:   "no payment provider",
		},
		{
			name: "stripe and sandbox",
			mutate: func(c *Config) {
				c.Payment.StripeSecretKey, c.Payment.StripePublishableKey = "sk_test_123", "pk_test_123"
			},
			want: "mutually exclusive",
		},
		{
			name: "auto settle without sandbox",
			mutate: func(c *Config) {
				c.Payment = PaymentConfig{
					StripeSecretKey:      "sk_test_123",
					StripePublishableKey: "pk_test_123",
					SandboxAutoSettle:    "succeeded",
				}
			},
			want: "requires the sandbox",
		},
		{
			name:   "bad sandbox outcome",
			mutate: func(c *Config) { c.Payment.SandboxAutoSettle = "maybe" },
			want:   "invalid sandbox auto settle",
		},
		{name: "sandbox failure outcome", mutate: func(c *Config) { c.Payment.SandboxAutoSettle = "failed" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.want == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestConfig_PlatformDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://platform/db")
	t.Setenv("PORT", "9090")

	cfg := Config{Addr: "0.0.0.0:8080"}
	cfg.applyPlatformDefaults()
	assert.Equal(t, "postgres://platform/db", cfg.DatabaseURL)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr)

	explicit := Config{Addr: "127.0.0.1:7000", DatabaseURL: "postgres://explicit/db"}
	explicit.applyPlatformDefaults()
	assert.Equal(t, "postgres://explicit/db", explicit.DatabaseURL)
	assert.Equal(t, "127.0.0.1:7000", explicit.Addr)
}

func TestNewGateway(t *testing.T) {
	lg := zap.NewNop()

	gw, provider, err := newGateway(lg, PaymentConfig{Currency: "eur", Sandbox: true})
	require.NoError(t, err)
	assert.Equal(t, "sandbox", provider)
	assert.IsType(t, &sandbox.Gateway{}, gw)

	// Without the sandbox flag a missing key is an error, not a silent fallback.
	_, _, err = newGateway(lg, PaymentConfig{Currency: "eur"})
	require.Error(t, err)

	gw, provider, err = newGateway(lg, PaymentConfig{StripeSecretKey: "sk_test_123", Currency: "eur"})
	require.NoError(t, err)
	assert.Equal(t, "stripe", provider)
	assert.IsType(t, &stripe.Gateway{}, gw)
}
