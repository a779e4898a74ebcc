package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	AI        AIConfig        `yaml:"ai"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds the shared login password and session token settings.
// Password is the plaintext shared secret; PasswordHash takes precedence when
// set and must be an argon2id PHC string. Leaving both empty disables login
// entirely (guests can still read).
type AuthConfig struct {
	Password     string        `yaml:"password"      env:"LOGIN_PASSWORD"`
	PasswordHash string        `yaml:"password_hash" env:"LOGIN_PASSWORD_HASH"`
	JWTSecret    string        `yaml:"jwt_secret"    env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer    string        `yaml:"jwt_issuer"    env:"AUTH_JWT_ISSUER" env-default:"learnlog"`
	TokenTTL     time.Duration `yaml:"token_ttl"     env:"AUTH_TOKEN_TTL"  env-default:"12h"`
}

// AIConfig holds settings for the text-generation endpoint used by the
// summary requester. The endpoint decides which auth header style applies.
type AIConfig struct {
	Endpoint        string        `yaml:"endpoint"           env:"AI_API_ENDPOINT"     env-default:"https://openrouter.ai/api/v1/chat/completions"`
	Model           string        `yaml:"model"              env:"AI_MODEL"            env-default:"deepseek/deepseek-chat-v3-0324"`
	OpenRouterKey   string        `yaml:"openrouter_api_key" env:"OPENROUTER_API_KEY"`
	OpenAIKey       string        `yaml:"openai_api_key"     env:"OPENAI_API_KEY"`
	AnthropicKey    string        `yaml:"anthropic_api_key"  env:"ANTHROPIC_API_KEY"`
	SiteURL         string        `yaml:"site_url"           env:"SITE_URL"            env-default:"http://localhost:3000"`
	MaxTokens       int           `yaml:"max_tokens"         env:"AI_MAX_TOKENS"       env-default:"4000"`
	Temperature     float64       `yaml:"temperature"        env:"AI_TEMPERATURE"      env-default:"0.7"`
	RequestTimeout  time.Duration `yaml:"request_timeout"    env:"AI_REQUEST_TIMEOUT"  env-default:"120s"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-IP rate limiting settings.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	MaxPerMinute    int           `yaml:"max_per_minute"   env:"RATE_LIMIT_MAX_PER_MINUTE"   env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Addr returns the host:port the HTTP server binds to.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
