package auth

import (
	"os"
	"time"
)

// Config holds the signing key and token lifetime. It is constructed once
// and passed into the service; there is no ambient singleton.
type Config struct {
	SecretKey string
	TokenTTL  time.Duration
}

// ConfigFromEnv reads auth config from environment variables.
// SECRET_KEY must be overridden outside local development.
func ConfigFromEnv() Config {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "dev-only-secret-key"
	}
	ttl := 60 * time.Minute
	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			ttl = d
		}
	}
	return Config{SecretKey: secret, TokenTTL: ttl}
}
