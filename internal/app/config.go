package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (GROCERY_ prefix), flags, or YAML config files.
type Config struct {
	Addr        string `default:"0.0.0.0:8080" usage:"API server listen address"`
	DatabaseURL string `usage:"PostgreSQL connection URL (GROCERY_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	Auth        AuthConfig
	Payment     PaymentConfig
	Invoice     InvoiceConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Graceful    GracefulConfig
}

// AuthConfig configures bearer token verification.
type AuthConfig struct {
	JWTSecret string `usage:"HS256 secret shared with the identity service" flag:"jwt-secret"`
}

// PaymentConfig selects and configures the card payment provider.
type PaymentConfig struct {
	StripeSecretKey      string `usage:"Stripe secret key" flag:"stripe-secret-key"`
	StripePublishableKey string `usage:"Stripe publishable key handed to clients" flag:"stripe-publishable-key"`
	Currency             string `default:"eur" usage:"ISO currency code of order totals"`
	// Sandbox selects the in-memory gateway. It never charges anyone and is
	// meant for development only.
	Sandbox bool `default:"false" usage:"Use the in-memory payment sandbox instead of Stripe" flag:"sandbox"`
	// SandboxAutoSettle makes sandbox intents settle immediately ("succeeded" or "failed").
	SandboxAutoSettle string `default:"" usage:"Outcome the sandbox reports for new intents" flag:"sandbox-auto-settle"`
}

// InvoiceConfig controls invoice branding.
type InvoiceConfig struct {
	StoreName string `default:"SustainaFood" usage:"Store name printed on invoices" flag:"store-name"`
	Tagline   string `default:"Reducing food waste together" usage:"Footer line printed on invoices"`
}

// RateLimitConfig controls the per-client sliding window rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables and YAML files,
// then validates required values.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "GROCERY",
		Files:     []string{"config.yaml", "/etc/grocery/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first missing or inconsistent setting.
func (c *Config) Validate() error {
	switch {
	case c.DatabaseURL == "":
		return errors.New("database URL is required: set GROCERY_DATABASE_URL or DATABASE_URL")
	case c.Auth.JWTSecret == "":
		return errors.New("JWT secret is required: set GROCERY_AUTH_JWT_SECRET")
	case c.Payment.StripeSecretKey != "" && c.Payment.StripePublishableKey == "":
		return errors.New("stripe publishable key is required when a secret key is set")
	case c.Payment.StripeSecretKey == "" && !c.Payment.Sandbox:
		return errors.New("no payment provider: set GROCERY_PAYMENT_STRIPE_SECRET_KEY or enable the development sandbox with GROCERY_PAYMENT_SANDBOX=true")
	case c.Payment.StripeSecretKey != "" && c.Payment.Sandbox:
		return errors.New("stripe secret key and sandbox are mutually exclusive")
	case c.Payment.SandboxAutoSettle != "" && !c.Payment.Sandbox:
		return errors.New("sandbox auto settle requires the sandbox to be enabled")
	}
	switch c.Payment.SandboxAutoSettle {
	case "", "succeeded", "failed":
	default:
		return errors.Errorf("invalid sandbox auto settle outcome %q", c.Payment.SandboxAutoSettle)
	}
	return nil
}

// applyPlatformDefaults maps platform-provided environment variables (Railway,
// Render, etc.) that use standard names like DATABASE_URL and PORT to the
// application's GROCERY_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			c.DatabaseURL = v
		}
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}
