package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn must not be empty")
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHash != "" && !strings.HasPrefix(c.Auth.PasswordHash, "$argon2id$") {
		return fmt.Errorf("auth.password_hash must be an argon2id PHC string")
	}

	if c.AI.Endpoint == "" {
		return fmt.Errorf("ai.endpoint must not be empty")
	}
	if c.AI.MaxTokens <= 0 {
		return fmt.Errorf("ai.max_tokens must be > 0 (got %d)", c.AI.MaxTokens)
	}
	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		return fmt.Errorf("ai.temperature must be within [0, 2] (got %v)", c.AI.Temperature)
	}

	if c.RateLimit.Enabled && c.RateLimit.MaxPerMinute <= 0 {
		return fmt.Errorf("rate_limit.max_per_minute must be > 0 when enabled (got %d)", c.RateLimit.MaxPerMinute)
	}

	return nil
}
