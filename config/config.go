package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment-based configuration for the auth service.
type Config struct {
	Env  string `env:"ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"8080"`

	DBURL string `env:"DB_URL,required,notEmpty"`

	// Signing algorithm for issued tokens. Must be an HMAC-family method;
	// the signing key itself is generated at boot, not configured.
	TokenAlgorithm string `env:"TOKEN_ALGORITHM" envDefault:"HS256"`
	TokenExpiryMin int    `env:"TOKEN_EXPIRY_MIN" envDefault:"60"`

	// Fingerprint cookie policy. The secure flag is off by default so the
	// service still works behind plain HTTP in development.
	CookieMaxAgeMin int  `env:"FGP_COOKIE_MAX_AGE_MIN" envDefault:"60"`
	CookieSecure    bool `env:"COOKIE_SECURE" envDefault:"false"`

	BcryptCost    int    `env:"BCRYPT_COST" envDefault:"10"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"ru"`
}

// Load reads an optional .env file and parses configuration from the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	switch cfg.TokenAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return nil, fmt.Errorf("unsupported token algorithm %q", cfg.TokenAlgorithm)
	}

	if cfg.TokenExpiryMin <= 0 {
		return nil, fmt.Errorf("token expiry must be positive, got %d", cfg.TokenExpiryMin)
	}

	return cfg, nil
}
