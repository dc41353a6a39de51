package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"

	CatalogSourcePostgres = "postgres"
	CatalogSourceFile     = "file"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Catalog  CatalogConfig
	Events   EventsConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	AuditLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	OtelEnabled        bool
}

type DatabaseConfig struct {
	Connection string
}

type SessionConfig struct {
	Backend    string // "memory" or "redis"
	TTL        time.Duration
	Secret     string
	CookieName string
	KeyPrefix  string // redis key namespace
}

type CatalogConfig struct {
	Source       string // "postgres" or "file"
	File         string // YAML/JSON catalog for CATALOG_SOURCE=file and cmd/seed
	ImageBaseURL string
}

type EventsConfig struct {
	AdoptionTopic string // in-process watermill topic
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			AuditLogFilePath:   getEnv("AUDIT_LOG_FILE_PATH", "logs/adoption.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Session: SessionConfig{
			Backend:    getEnv("SESSION_BACKEND", SessionBackendMemory),
			TTL:        time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 180)) * time.Minute,
			Secret:     getEnv("SESSION_SECRET", "badger-buds-dev-secret"),
			CookieName: getEnv("SESSION_COOKIE", "bb_session"),
			KeyPrefix:  getEnv("SESSION_KEY_PREFIX", "badgerbuds:session"),
		},
		Catalog: CatalogConfig{
			Source:       getEnv("CATALOG_SOURCE", CatalogSourcePostgres),
			File:         getEnv("CATALOG_FILE", "data/cats.yaml"),
			ImageBaseURL: getEnv("IMAGE_BASE_URL", "https://raw.githubusercontent.com/CS571-F23/hw5-api-static-content/main/cats/"),
		},
		Events: EventsConfig{
			AdoptionTopic: getEnv("ADOPTION_TOPIC", "ADOPTION_RECORDED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
