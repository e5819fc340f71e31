package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// PayPal modes.
const (
	ModeSandbox = "sandbox"
	ModeLive    = "live"
)

// Application environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	Environment     string
	ShutdownTimeout time.Duration

	PayPalClientID     string
	PayPalClientSecret string
	PayPalMode         string
	PayPalAPIBase      string
	PayPalTimeout      time.Duration

	PayeeEmail      string
	BrandName       string
	DonationPurpose string
	PublicBaseURL   string

	DatabaseURI       string
	AllowedOrigins    []string
	StaticDir         string
	AdminUser         string
	AdminPasswordHash string
}

// Development reports whether verbose errors and debug logging are enabled.
func (c *Config) Development() bool {
	return strings.EqualFold(c.Environment, EnvDevelopment)
}

// Sandbox reports whether PayPal sandbox is used.
func (c *Config) Sandbox() bool {
	return c.PayPalMode == ModeSandbox
}

const (
	defaultRunAddress      = ":3000"
	defaultEnvironment     = EnvProduction
	defaultShutdownTimeout = 10 * time.Second
	defaultPayPalMode      = ModeSandbox
	defaultPayPalTimeout   = 15 * time.Second
	defaultPayeeEmail      = "pawshope@example.com"
	defaultBrandName       = "Paws Hope - Cat Donations"
	defaultDonationPurpose = "Paws Hope - Saving Cats Worldwide"
	defaultAllowedOrigins  = "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5500"
	defaultAdminUser       = "admin"
	defaultEnvFile         = ".env"
)

// Load reads optional .env file, then parses configuration from environment variables and flags.
func Load() (*Config, error) {
	envFile := defaultEnvFile
	if v, ok := os.LookupEnv("ENV_FILE"); ok && v != "" {
		envFile = v
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", envFile, err)
	}
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         runAddress(lookup),
		Environment:        getString(lookup, "APP_ENV", defaultEnvironment),
		PayPalClientID:     getString(lookup, "PAYPAL_CLIENT_ID", ""),
		PayPalClientSecret: getString(lookup, "PAYPAL_CLIENT_SECRET", ""),
		PayPalMode:         getString(lookup, "PAYPAL_MODE", defaultPayPalMode),
		PayPalAPIBase:      getString(lookup, "PAYPAL_API_BASE", ""),
		PayeeEmail:         getString(lookup, "PAYEE_EMAIL", defaultPayeeEmail),
		BrandName:          getString(lookup, "BRAND_NAME", defaultBrandName),
		DonationPurpose:    getString(lookup, "DONATION_PURPOSE", defaultDonationPurpose),
		PublicBaseURL:      strings.TrimRight(getString(lookup, "PUBLIC_BASE_URL", ""), "/"),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		AllowedOrigins:     splitList(getString(lookup, "ALLOWED_ORIGINS", defaultAllowedOrigins)),
		StaticDir:          getString(lookup, "STATIC_DIR", ""),
		AdminUser:          getString(lookup, "ADMIN_USER", defaultAdminUser),
		AdminPasswordHash:  getString(lookup, "ADMIN_PASSWORD_HASH", ""),
	}

	fs := flag.NewFlagSet("pawshope", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr = getString(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
		paypalTimeoutStr   = getString(lookup, "PAYPAL_TIMEOUT", defaultPayPalTimeout.String())
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.Environment, "env", cfg.Environment, "Deployment environment (development|production)")
	fs.StringVar(&cfg.PayPalClientID, "client-id", cfg.PayPalClientID, "PayPal client identifier")
	fs.StringVar(&cfg.PayPalMode, "mode", cfg.PayPalMode, "PayPal mode (sandbox|live)")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for persistent ledger")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&paypalTimeoutStr, "paypal-timeout", paypalTimeoutStr, "PayPal request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.PayPalTimeout, err = time.ParseDuration(paypalTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid paypal timeout: %w", err)
	}

	if secretFile, ok := lookup("PAYPAL_CLIENT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read paypal secret file: %w", err)
		}
		cfg.PayPalClientSecret = strings.TrimSpace(string(content))
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.PayPalTimeout <= 0 {
		cfg.PayPalTimeout = defaultPayPalTimeout
	}

	cfg.PayPalMode = strings.ToLower(strings.TrimSpace(cfg.PayPalMode))
	if cfg.PayPalMode != ModeSandbox && cfg.PayPalMode != ModeLive {
		return nil, fmt.Errorf("paypal mode must be %q or %q, got %q", ModeSandbox, ModeLive, cfg.PayPalMode)
	}

	for _, origin := range cfg.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return nil, fmt.Errorf("allowed origin %q must be \"*\" or an http(s) URL", origin)
		}
	}

	if cfg.PayPalClientID == "" {
		return nil, fmt.Errorf("paypal client id must be provided")
	}

	if cfg.PayPalClientSecret == "" {
		return nil, fmt.Errorf("paypal client secret must be provided")
	}

	return cfg, nil
}

func runAddress(lookup envLookup) string {
	if v, ok := lookup("RUN_ADDRESS"); ok && v != "" {
		return v
	}
	if port, ok := lookup("PORT"); ok && port != "" {
		return ":" + strings.TrimPrefix(port, ":")
	}
	return defaultRunAddress
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
