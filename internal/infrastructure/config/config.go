// Package config reads the service settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"

	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

type Config struct {
	HTTPPort            string
	AppEnv              string
	StorageDriver       string
	DatabaseURL         string
	JWTSecret           string
	CORSAllowedOrigins  []string
	CheckoutMaxAttempts int
	CatalogPageSize     int

	AWS       AWSConfig
	Session   SessionConfig
	Redis     RedisConfig
	Telemetry TelemetryConfig
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type SessionConfig struct {
	Store        string
	CookieName   string
	TTL          time.Duration
	CookieSecure bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	Endpoint     string
	Insecure     bool
	SamplerRatio float64
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production") || strings.EqualFold(c.AppEnv, "prod")
}

// Load reads every setting, applying defaults, and rejects malformed values.
func Load() (Config, error) {
	var errs []string
	intVar := func(key string, def int) int {
		v, err := strconv.Atoi(getenvDefault(key, strconv.Itoa(def)))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s must be an integer", key))
			return def
		}
		return v
	}
	boolVar := func(key string, def bool) bool {
		v, err := strconv.ParseBool(getenvDefault(key, strconv.FormatBool(def)))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s must be a boolean", key))
			return def
		}
		return v
	}

	cfg := Config{
		HTTPPort:            getenvDefault("HTTP_PORT", "8080"),
		AppEnv:              getenvDefault("APP_ENV", "development"),
		StorageDriver:       strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSecret:           os.Getenv("JWT_SECRET_KEY"),
		CORSAllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		CheckoutMaxAttempts: intVar("CHECKOUT_MAX_ATTEMPTS", 3),
		CatalogPageSize:     intVar("CATALOG_PAGE_SIZE", 12),
		AWS: AWSConfig{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Session: SessionConfig{
			Store:        strings.ToLower(getenvDefault("SESSION_STORE", SessionStoreRedis)),
			CookieName:   getenvDefault("SESSION_COOKIE_NAME", "sessionid"),
			TTL:          time.Duration(intVar("SESSION_TTL", 1209600)) * time.Second,
			CookieSecure: boolVar("SESSION_COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       intVar("REDIS_DB", 0),
		},
		Telemetry: TelemetryConfig{
			Enabled:     boolVar("OTEL_ENABLED", false),
			ServiceName: getenvDefault("OTEL_SERVICE_NAME", "builder-estimates"),
			Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Insecure:    boolVar("OTEL_EXPORTER_OTLP_INSECURE", true),
		},
	}

	ratio, err := strconv.ParseFloat(getenvDefault("OTEL_SAMPLER_RATIO", "1"), 64)
	if err != nil || ratio < 0 || ratio > 1 {
		errs = append(errs, "OTEL_SAMPLER_RATIO must be a number between 0 and 1")
	}
	cfg.Telemetry.SamplerRatio = ratio

	switch cfg.StorageDriver {
	case StorageDynamoDB:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			errs = append(errs, "DATABASE_URL is required when STORAGE_DRIVER=postgres")
		}
	default:
		errs = append(errs, fmt.Sprintf("STORAGE_DRIVER %q is not one of dynamodb, postgres", cfg.StorageDriver))
	}

	switch cfg.Session.Store {
	case SessionStoreRedis, SessionStoreMemory:
	default:
		errs = append(errs, fmt.Sprintf("SESSION_STORE %q is not one of redis, memory", cfg.Session.Store))
	}

	if cfg.Session.TTL <= 0 {
		errs = append(errs, "SESSION_TTL must be positive")
	}
	if cfg.CheckoutMaxAttempts <= 0 {
		errs = append(errs, "CHECKOUT_MAX_ATTEMPTS must be positive")
	}
	if cfg.CatalogPageSize <= 0 {
		errs = append(errs, "CATALOG_PAGE_SIZE must be positive")
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
