package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort                string
	DatabaseURL               string
	RedisURL                  string
	CacheTTL                  int
	CatalogLatencyMs          int
	DialogflowProjectID       string
	DialogflowCredentialsFile string
	DialogflowLanguageCode    string
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		ServerPort:                getEnv("SERVER_PORT", "5000"),
		DatabaseURL:               getEnv("DATABASE_URL", ""),
		RedisURL:                  getEnv("REDIS_URL", ""),
		CacheTTL:                  getEnvAsInt("CACHE_TTL", 300),
		CatalogLatencyMs:          getEnvAsInt("CATALOG_LATENCY_MS", 0),
		DialogflowProjectID:       getEnv("DIALOGFLOW_PROJECT_ID", ""),
		DialogflowCredentialsFile: getEnv("DIALOGFLOW_CREDENTIALS_FILE", "service-account.json"),
		DialogflowLanguageCode:    getEnv("DIALOGFLOW_LANGUAGE_CODE", "en-US"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
