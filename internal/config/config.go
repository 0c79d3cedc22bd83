package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Logger  LoggerConfig
	Auth    AuthConfig
	Webhook WebhookConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// MongoConfig holds document store connection values.
type MongoConfig struct {
	URL                 string
	Database            string
	SelectionTimeoutSec int
}

// RedisConfig holds Redis connection values. Addr empty disables Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret          string
	AccessTokenTTLDays int
	BcryptCost         int
}

// WebhookConfig holds the shared secret for inbound webhooks.
type WebhookConfig struct {
	Secret string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "devpulse-api"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Mongo: MongoConfig{
			URL:                 getEnv("MONGO_URL", "mongodb://localhost:27017"),
			Database:            getEnv("DB_NAME", "devpulse"),
			SelectionTimeoutSec: getEnvAsInt("MONGO_TIMEOUT_SECONDS", 30),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", "dev-secret-key-change-in-production"),
			AccessTokenTTLDays: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_DAYS", 7),
			BcryptCost:         getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Webhook: WebhookConfig{
			Secret: getEnv("WEBHOOK_SECRET", "dev-webhook-secret"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// IsProduction reports whether the deployment is marked production.
func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

// SelectionTimeout returns the server selection timeout duration.
func (m MongoConfig) SelectionTimeout() time.Duration {
	if m.SelectionTimeoutSec <= 0 {
		return 30 * time.Second
	}
	return time.Duration(m.SelectionTimeoutSec) * time.Second
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
