// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion  string
	Development bool

	// Gateway server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Tool-call client
	GatewayURL      string
	FallbackEnabled bool

	// MongoDB (profile store)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL flight table; empty DSN means the seeded in-memory
	// table is used instead
	PostgresURI string

	// Identity service
	IdentityURL        string
	IdentityServiceKey string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:  getEnv("APP_VERSION", "1.0.0"),
		Development: getEnvAsBool("DEVELOPMENT", false),

		Port:         getEnv("PORT", "8000"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		GatewayURL:      getEnv("MCP_SERVER_URL", "http://localhost:8000"),
		FallbackEnabled: getEnvAsBool("USE_MOCK_DATA", false),

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "flightboard"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", ""),

		IdentityURL:        getEnv("IDENTITY_SERVICE_URL", ""),
		IdentityServiceKey: getEnv("IDENTITY_SERVICE_ROLE_KEY", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
