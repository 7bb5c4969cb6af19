package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	Port string
	Mode string

	// Database configuration
	DatabaseURL string

	// Redis configuration
	RedisURL string

	// Commerce provider configuration
	CommerceAPIURL string
	CommerceAPIKey string
	CommerceSiteID string

	// Pipeline configuration
	FallbackCurrency  string
	DefaultWindowDays int
	CacheTTLSeconds   int
	ServiceName       string
}

var AppConfig *Config

func InitConfig() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Ignore error if .env file doesn't exist
	}

	AppConfig = &Config{
		Port:              getEnv("PORT", "8080"),
		Mode:              getEnv("GIN_MODE", "debug"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		RedisURL:          getEnv("REDIS_URL", ""),
		CommerceAPIURL:    getEnv("COMMERCE_API_URL", "https://api.commerce.example.com"),
		CommerceAPIKey:    getEnv("COMMERCE_API_KEY", ""),
		CommerceSiteID:    getEnv("COMMERCE_SITE_ID", ""),
		FallbackCurrency:  getEnv("FALLBACK_CURRENCY", "EUR"),
		DefaultWindowDays: getEnvInt("DEFAULT_WINDOW_DAYS", 30),
		CacheTTLSeconds:   getEnvInt("CACHE_TTL_SECONDS", 60),
		ServiceName:       getEnv("SERVICE_NAME", "Transactions Service"),
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
