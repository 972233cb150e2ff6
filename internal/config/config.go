package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Env           string
	Port          string
	StorageDriver string
	DataDir       string
	FrontendDir   string
	Database      DatabaseConfig
}

// DatabaseConfig holds database configuration (postgres driver only)
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	driver := getEnv("STORAGE_DRIVER", DriverFile)
	if driver != DriverFile && driver != DriverPostgres {
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (expected %q or %q)", driver, DriverFile, DriverPostgres)
	}

	return &Config{
		Env:           getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "3001"),
		StorageDriver: driver,
		DataDir:       getEnv("DATA_DIR", "./data"),
		FrontendDir:   os.Getenv("FRONTEND_DIR"),
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			Username: getEnv("PG_USERNAME", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DATABASE", "labostock"),
		},
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
